package observability

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Domain metrics for the scheduling service. HTTP-level metrics come from
// the fiberprometheus middleware; these track what the scheduler itself
// produced.
var (
	// CalendarsGenerated counts completed generation runs by trigger kind.
	CalendarsGenerated = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "mastermind_calendars_generated_total",
		Help: "Number of weekly calendars generated, labeled by trigger.",
	}, []string{"trigger"})

	// PostsScheduled counts posts placed into calendars.
	PostsScheduled = promauto.NewCounter(prometheus.CounterOpts{
		Name: "mastermind_posts_scheduled_total",
		Help: "Number of posts scheduled across all generated calendars.",
	})

	// CommentsScheduled counts comments placed into calendars.
	CommentsScheduled = promauto.NewCounter(prometheus.CounterOpts{
		Name: "mastermind_comments_scheduled_total",
		Help: "Number of comments scheduled across all generated calendars.",
	})

	// SlotsDropped counts slots abandoned because every subreddit was at
	// its weekly cap.
	SlotsDropped = promauto.NewCounter(prometheus.CounterOpts{
		Name: "mastermind_slots_dropped_total",
		Help: "Number of requested post slots dropped for lack of capacity.",
	})

	// QualityScore observes evaluator scores of generated calendars.
	QualityScore = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "mastermind_quality_score",
		Help:    "Distribution of evaluator scores for generated calendars.",
		Buckets: prometheus.LinearBuckets(0, 1, 11),
	})
)

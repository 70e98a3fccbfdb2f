package calendar

import (
	"fmt"
	"math/rand"
	"sort"
	"time"

	"mastermind/internal/models"
)

// Generator produces weekly content calendars. It owns a seedable random
// source so runs can be replayed deterministically in tests; the zero-value
// configuration seeds from the wall clock for runtime variety.
//
// A Generator holds no state across runs. All per-run bookkeeping lives in
// a weekTracker scoped to one Week call, so concurrent runs on separate
// Generators are independent. A single Generator must not be shared across
// goroutines because of the rand source.
type Generator struct {
	rng *rand.Rand
	now func() time.Time
}

// Option configures a Generator.
type Option func(*Generator)

// WithSeed makes the generator's random source deterministic.
func WithSeed(seed int64) Option {
	return func(g *Generator) {
		g.rng = rand.New(rand.NewSource(seed))
	}
}

// WithRand injects a random source directly.
func WithRand(r *rand.Rand) Option {
	return func(g *Generator) {
		g.rng = r
	}
}

// WithClock overrides the generator's notion of "now". Used by the
// current/subsequent week entry points and by tests.
func WithClock(now func() time.Time) Option {
	return func(g *Generator) {
		g.now = now
	}
}

// NewGenerator creates a Generator.
func NewGenerator(opts ...Option) *Generator {
	g := &Generator{
		rng: rand.New(rand.NewSource(time.Now().UnixNano())),
		now: time.Now,
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// weekTracker carries the mutable per-run state threaded through the
// scheduling loop: running subreddit counts and per-persona-per-subreddit
// last post times.
type weekTracker struct {
	subredditPostCounts      map[string]int
	personaSubredditLastPost map[string]map[string]time.Time
}

func newWeekTracker(cfg *models.CalendarConfig) *weekTracker {
	t := &weekTracker{
		subredditPostCounts:      make(map[string]int, len(cfg.Subreddits)),
		personaSubredditLastPost: make(map[string]map[string]time.Time, len(cfg.Personas)),
	}
	for _, sub := range cfg.Subreddits {
		t.subredditPostCounts[sub.Name] = 0
	}
	for _, p := range cfg.Personas {
		t.personaSubredditLastPost[p.Username] = make(map[string]time.Time)
	}
	return t
}

func (t *weekTracker) record(persona models.Persona, subreddit models.Subreddit, ts time.Time) {
	t.subredditPostCounts[subreddit.Name]++
	t.personaSubredditLastPost[persona.Username][subreddit.Name] = ts
}

// checkConfig enforces the structural preconditions of a run. Field-level
// rules (formats, lengths) are the caller's responsibility; the core only
// refuses to run when a required collection is missing entirely.
func checkConfig(cfg *models.CalendarConfig) error {
	if cfg == nil {
		return models.NewConfigError("Config is required")
	}
	if len(cfg.Personas) == 0 {
		return models.NewConfigError("At least one persona is required")
	}
	if len(cfg.Subreddits) == 0 {
		return models.NewConfigError("At least one subreddit is required")
	}
	if len(cfg.ChatQueries) == 0 {
		return models.NewConfigError("At least one keyword query is required")
	}
	return nil
}

// Week generates a content calendar for the week starting at weekStart.
//
// The target volume is spread across the seven days as evenly as possible;
// days that cannot be filled without violating the subreddit cap or the
// persona spacing constraint quietly receive fewer posts. The only error
// returned is a structural configuration failure.
func (g *Generator) Week(cfg *models.CalendarConfig, weekStart time.Time) (*models.WeekCalendar, error) {
	if err := checkConfig(cfg); err != nil {
		return nil, err
	}

	weekEnd := weekStart.AddDate(0, 0, 6)
	weekEnd = time.Date(weekEnd.Year(), weekEnd.Month(), weekEnd.Day(),
		23, 59, 59, int(999*time.Millisecond), weekEnd.Location())

	tracker := newWeekTracker(cfg)
	posts := make([]models.RedditPost, 0, cfg.PostsPerWeek)
	comments := make([]models.RedditComment, 0, cfg.PostsPerWeek*MaxCommentsPerPost)

	postsPerDay := cfg.PostsPerWeek / 7
	extraPosts := cfg.PostsPerWeek % 7

	postCounter := 1
	commentCounter := 1
	for day := 0; day < 7; day++ {
		currentDate := weekStart.AddDate(0, 0, day)

		postsToday := postsPerDay
		if day < extraPosts {
			postsToday++
		}

		for n := 0; n < postsToday; n++ {
			persona, subreddit, ts, ok := g.findValidPostSlot(cfg, currentDate, tracker)
			if !ok {
				// No capacity left anywhere; drop the slot.
				continue
			}

			keywords := g.selectKeywords(cfg.ChatQueries)

			post := g.buildPost(postCounter, subreddit.Name, persona, keywords, cfg.CompanyInfo, ts)
			postCounter++
			posts = append(posts, post)
			tracker.record(persona, subreddit, ts)

			thread := g.buildCommentThread(&post, cfg, &commentCounter)
			comments = append(comments, thread...)
		}
	}

	sort.Slice(posts, func(i, j int) bool {
		return posts[i].Timestamp.Before(posts[j].Timestamp)
	})
	sort.Slice(comments, func(i, j int) bool {
		return comments[i].Timestamp.Before(comments[j].Timestamp)
	})

	return &models.WeekCalendar{
		WeekStart: weekStart,
		WeekEnd:   weekEnd,
		Posts:     posts,
		Comments:  comments,
	}, nil
}

// findValidPostSlot searches the shuffled persona x subreddit cross product
// for the first pair satisfying the subreddit cap and the persona spacing
// constraint, then draws a timestamp in the day's 09:00-20:59 window.
//
// When no pair qualifies it falls back to the first subreddit still under
// its weekly cap with the first shuffled persona at a fixed 10:00, ignoring
// the spacing constraint. With every subreddit at cap the slot is dropped.
func (g *Generator) findValidPostSlot(
	cfg *models.CalendarConfig,
	date time.Time,
	tracker *weekTracker,
) (models.Persona, models.Subreddit, time.Time, bool) {
	shuffledPersonas := shuffled(g.rng, cfg.Personas)
	shuffledSubreddits := shuffled(g.rng, cfg.Subreddits)

	for _, persona := range shuffledPersonas {
		for _, subreddit := range shuffledSubreddits {
			if tracker.subredditPostCounts[subreddit.Name] >= MaxPostsPerSubredditPerWeek {
				continue
			}

			if lastPost, ok := tracker.personaSubredditLastPost[persona.Username][subreddit.Name]; ok {
				hoursSince := date.Sub(lastPost).Hours()
				if hoursSince < MinHoursBetweenPersonaPostsInSubreddit {
					continue
				}
			}

			hour := 9 + g.rng.Intn(12)
			minute := g.rng.Intn(60)
			ts := time.Date(date.Year(), date.Month(), date.Day(), hour, minute, 0, 0, date.Location())
			return persona, subreddit, ts, true
		}
	}

	for _, subreddit := range cfg.Subreddits {
		if tracker.subredditPostCounts[subreddit.Name] < MaxPostsPerSubredditPerWeek {
			ts := time.Date(date.Year(), date.Month(), date.Day(), 10, 0, 0, 0, date.Location())
			return shuffledPersonas[0], subreddit, ts, true
		}
	}

	return models.Persona{}, models.Subreddit{}, time.Time{}, false
}

// selectKeywords samples 1-3 keywords without replacement to seed a post's
// topic. The first selected keyword leads the title and body.
func (g *Generator) selectKeywords(queries []models.ChatQuery) []models.ChatQuery {
	count := 1 + g.rng.Intn(3)
	pool := shuffled(g.rng, queries)
	if count > len(pool) {
		count = len(pool)
	}
	return pool[:count]
}

func (g *Generator) buildPost(
	id int,
	subreddit string,
	persona models.Persona,
	keywords []models.ChatQuery,
	company models.CompanyInfo,
	ts time.Time,
) models.RedditPost {
	primary := keywords[0]
	keywordIDs := make([]string, len(keywords))
	for i, k := range keywords {
		keywordIDs[i] = k.KeywordID
	}

	return models.RedditPost{
		PostID:         fmt.Sprintf("P%d", id),
		Subreddit:      subreddit,
		Title:          g.naturalTitle(primary.Keyword),
		Body:           g.naturalPostBody(primary.Keyword, persona),
		AuthorUsername: persona.Username,
		Timestamp:      ts,
		KeywordIDs:     keywordIDs,
	}
}

// shuffled returns a uniformly permuted copy of the input slice.
func shuffled[T any](rng *rand.Rand, in []T) []T {
	out := make([]T, len(in))
	copy(out, in)
	rng.Shuffle(len(out), func(i, j int) {
		out[i], out[j] = out[j], out[i]
	})
	return out
}

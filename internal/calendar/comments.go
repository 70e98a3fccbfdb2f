package calendar

import (
	"fmt"
	"time"

	"mastermind/internal/models"
)

// buildCommentThread synthesizes 1-3 comments for a freshly scheduled post.
//
// The post's author is excluded from the commenter pool; when that empties
// the pool the post simply receives no comments. The first comment is
// always top-level, later ones are replies with 30% probability, and a
// reply's parent is drawn uniformly from all comments generated so far for
// the post, so thread depth is unbounded. Flattening deep threads is a
// presentation concern, not the scheduler's.
func (g *Generator) buildCommentThread(
	post *models.RedditPost,
	cfg *models.CalendarConfig,
	counter *int,
) []models.RedditComment {
	numComments := MinCommentsPerPost + g.rng.Intn(MaxCommentsPerPost-MinCommentsPerPost+1)

	pool := make([]models.Persona, 0, len(cfg.Personas))
	for _, p := range cfg.Personas {
		if p.Username != post.AuthorUsername {
			pool = append(pool, p)
		}
	}
	if len(pool) == 0 {
		return nil
	}

	delays := shuffled(g.rng, commentDelayHours)

	comments := make([]models.RedditComment, 0, numComments)
	for i := 0; i < numComments; i++ {
		commenter := pool[g.rng.Intn(len(pool))]

		delayHours := i + 1
		if i < len(delays) {
			delayHours = delays[i]
		}
		ts := post.Timestamp.Add(time.Duration(delayHours) * time.Hour)

		var parentID *string
		var text string
		isTopLevel := i == 0 || g.rng.Float64() > 0.3
		if isTopLevel {
			text = g.topLevelComment(commenter, cfg.CompanyInfo)
		} else {
			parent := comments[g.rng.Intn(len(comments))]
			id := parent.CommentID
			parentID = &id
			text = g.replyComment(commenter, cfg.CompanyInfo)
		}

		comments = append(comments, models.RedditComment{
			CommentID:       fmt.Sprintf("C%d", *counter),
			PostID:          post.PostID,
			ParentCommentID: parentID,
			CommentText:     text,
			Username:        commenter.Username,
			Timestamp:       ts,
		})
		*counter++
	}

	return comments
}

package calendar

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mastermind/internal/models"
)

func TestBuildCommentThread(t *testing.T) {
	cfg := testConfig()
	post := models.RedditPost{
		PostID:         "P1",
		Subreddit:      "r/startups",
		AuthorUsername: "maya_ops",
		Timestamp:      mondayUTC().Add(10 * time.Hour),
	}

	for seed := int64(1); seed <= 20; seed++ {
		g := NewGenerator(WithSeed(seed))
		counter := 1
		thread := g.buildCommentThread(&post, cfg, &counter)

		require.GreaterOrEqual(t, len(thread), MinCommentsPerPost)
		require.LessOrEqual(t, len(thread), MaxCommentsPerPost)
		assert.Equal(t, 1+len(thread), counter)

		byID := make(map[string]models.RedditComment, len(thread))
		for i, c := range thread {
			assert.Equal(t, "P1", c.PostID)
			assert.NotEqual(t, "maya_ops", c.Username)
			assert.True(t, c.Timestamp.After(post.Timestamp))
			assert.NotEmpty(t, c.CommentText)

			if i == 0 {
				assert.True(t, c.IsTopLevel(), "first comment must be top-level")
			}
			if !c.IsTopLevel() {
				parent, ok := byID[*c.ParentCommentID]
				require.True(t, ok, "reply %s has unknown parent", c.CommentID)
				assert.Equal(t, "P1", parent.PostID)
			}
			byID[c.CommentID] = c
		}
	}
}

func TestBuildCommentThreadEmptyPool(t *testing.T) {
	// With a single persona who also authored the post there is nobody
	// left to comment.
	cfg := testConfig()
	cfg.Personas = cfg.Personas[:1]

	post := models.RedditPost{
		PostID:         "P1",
		AuthorUsername: "maya_ops",
		Timestamp:      mondayUTC().Add(10 * time.Hour),
	}

	g := NewGenerator(WithSeed(4))
	counter := 1
	thread := g.buildCommentThread(&post, cfg, &counter)

	assert.Empty(t, thread)
	assert.Equal(t, 1, counter)
}

func TestBuildCommentThreadDelaysAreRealistic(t *testing.T) {
	cfg := testConfig()
	post := models.RedditPost{
		PostID:         "P1",
		AuthorUsername: "maya_ops",
		Timestamp:      mondayUTC().Add(10 * time.Hour),
	}

	for seed := int64(1); seed <= 20; seed++ {
		g := NewGenerator(WithSeed(seed))
		counter := 1
		for _, c := range g.buildCommentThread(&post, cfg, &counter) {
			delay := c.Timestamp.Sub(post.Timestamp)
			assert.GreaterOrEqual(t, delay, time.Hour)
			assert.LessOrEqual(t, delay, 24*time.Hour)
		}
	}
}

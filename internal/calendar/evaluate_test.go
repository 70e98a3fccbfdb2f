package calendar

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mastermind/internal/models"
)

func evalPost(id, subreddit, author string) models.RedditPost {
	return models.RedditPost{
		PostID:         id,
		Subreddit:      subreddit,
		AuthorUsername: author,
		Timestamp:      mondayUTC().Add(10 * time.Hour),
	}
}

func evalComment(id, postID, username string) models.RedditComment {
	return models.RedditComment{
		CommentID: id,
		PostID:    postID,
		Username:  username,
		Timestamp: mondayUTC().Add(13 * time.Hour),
	}
}

func TestEvaluateHealthyCalendar(t *testing.T) {
	cal := &models.WeekCalendar{
		Posts: []models.RedditPost{
			evalPost("P1", "r/startups", "maya_ops"),
			evalPost("P2", "r/marketing", "raj_consults"),
		},
		Comments: []models.RedditComment{
			evalComment("C1", "P1", "raj_consults"),
			evalComment("C2", "P2", "maya_ops"),
		},
	}

	assert.Equal(t, 10, Evaluate(cal, testConfig()))
}

func TestEvaluateEmptyCalendar(t *testing.T) {
	// No posts means no distribution to penalize.
	cal := &models.WeekCalendar{}
	assert.Equal(t, 10, Evaluate(cal, testConfig()))
}

func TestEvaluateSubredditOverCap(t *testing.T) {
	cal := &models.WeekCalendar{
		Posts: []models.RedditPost{
			evalPost("P1", "r/startups", "maya_ops"),
			evalPost("P2", "r/startups", "raj_consults"),
			evalPost("P3", "r/startups", "maya_ops"),
		},
		Comments: []models.RedditComment{
			evalComment("C1", "P1", "raj_consults"),
			evalComment("C2", "P2", "maya_ops"),
			evalComment("C3", "P3", "raj_consults"),
		},
	}

	// One subreddit over cap costs two points.
	assert.Equal(t, 8, Evaluate(cal, testConfig()))
}

func TestEvaluatePersonaImbalance(t *testing.T) {
	posts := []models.RedditPost{
		evalPost("P1", "r/startups", "maya_ops"),
		evalPost("P2", "r/marketing", "maya_ops"),
		evalPost("P3", "r/smallbusiness", "maya_ops"),
		evalPost("P4", "r/sales", "maya_ops"),
		evalPost("P5", "r/productivity", "maya_ops"),
		evalPost("P6", "r/saas", "raj_consults"),
	}
	comments := make([]models.RedditComment, 0, len(posts))
	for _, p := range posts {
		comments = append(comments, evalComment("C"+p.PostID, p.PostID, "lena_writes"))
	}

	skewed := &models.WeekCalendar{Posts: posts, Comments: comments}

	// maya has 5 posts against raj's 1; a spread above 3 costs a point.
	assert.Equal(t, 9, Evaluate(skewed, testConfig()))

	// Rebalancing the same volume across authors restores the point.
	balanced := &models.WeekCalendar{Posts: make([]models.RedditPost, len(posts)), Comments: comments}
	copy(balanced.Posts, posts)
	balanced.Posts[1].AuthorUsername = "raj_consults"
	balanced.Posts[2].AuthorUsername = "lena_writes"
	balanced.Posts[3].AuthorUsername = "raj_consults"
	balanced.Comments = make([]models.RedditComment, 0, len(posts))
	for _, p := range balanced.Posts {
		commenter := "maya_ops"
		if p.AuthorUsername == "maya_ops" {
			commenter = "raj_consults"
		}
		balanced.Comments = append(balanced.Comments, evalComment("C"+p.PostID, p.PostID, commenter))
	}

	assert.Equal(t, 10, Evaluate(balanced, testConfig()))
}

func TestEvaluateLowEngagement(t *testing.T) {
	cal := &models.WeekCalendar{
		Posts: []models.RedditPost{
			evalPost("P1", "r/startups", "maya_ops"),
			evalPost("P2", "r/marketing", "raj_consults"),
			evalPost("P3", "r/smallbusiness", "maya_ops"),
			evalPost("P4", "r/sales", "raj_consults"),
			evalPost("P5", "r/productivity", "maya_ops"),
		},
		Comments: []models.RedditComment{
			evalComment("C1", "P1", "raj_consults"),
			evalComment("C2", "P2", "maya_ops"),
			evalComment("C3", "P3", "raj_consults"),
		},
	}

	// 3 of 5 posts have comments, below the 80% threshold.
	assert.Equal(t, 9, Evaluate(cal, testConfig()))
}

func TestEvaluateSelfComments(t *testing.T) {
	cal := &models.WeekCalendar{
		Posts: []models.RedditPost{
			evalPost("P1", "r/startups", "maya_ops"),
			evalPost("P2", "r/marketing", "raj_consults"),
		},
		Comments: []models.RedditComment{
			evalComment("C1", "P1", "maya_ops"),
			evalComment("C2", "P2", "maya_ops"),
		},
	}

	// One self-comment against two posts exceeds the 20% tolerance.
	assert.Equal(t, 9, Evaluate(cal, testConfig()))
}

func TestEvaluateClampsAtZero(t *testing.T) {
	posts := make([]models.RedditPost, 0, 18)
	subs := []string{"r/a", "r/b", "r/c", "r/d", "r/e", "r/f"}
	for i, sub := range subs {
		for j := 0; j < 3; j++ {
			posts = append(posts, evalPost(
				fmt.Sprintf("P%d", i*3+j+1), sub, "maya_ops"))
		}
	}
	cal := &models.WeekCalendar{Posts: posts}

	// Six subreddits over cap alone would take the score below zero.
	assert.Equal(t, 0, Evaluate(cal, testConfig()))
}

func TestEvaluateBalancedVersusSkewedWeek(t *testing.T) {
	subs := []string{"r/startups", "r/marketing", "r/smallbusiness"}
	authors := []string{"maya_ops", "raj_consults", "lena_writes", "sam_builds", "ana_growth"}

	// Seven posts spread across authors and channels, every post engaged.
	balanced := &models.WeekCalendar{}
	for i := 0; i < 7; i++ {
		id := fmt.Sprintf("P%d", i+1)
		balanced.Posts = append(balanced.Posts,
			evalPost(id, subs[i%len(subs)], authors[i%len(authors)]))
		balanced.Comments = append(balanced.Comments,
			evalComment("C"+id, id, authors[(i+1)%len(authors)]))
	}
	assert.GreaterOrEqual(t, Evaluate(balanced, testConfig()), 6)

	// Same volume with one persona writing six of the seven posts, two
	// channels packed over cap, and nothing engaged.
	skewed := &models.WeekCalendar{}
	for i := 0; i < 7; i++ {
		author := "maya_ops"
		if i == 6 {
			author = "raj_consults"
		}
		skewed.Posts = append(skewed.Posts,
			evalPost(fmt.Sprintf("P%d", i+1), subs[i/3], author))
	}
	assert.LessOrEqual(t, Evaluate(skewed, testConfig()), 5)
}

func TestEvaluateIsPure(t *testing.T) {
	cfg := testConfig()
	cal, err := NewGenerator(WithSeed(11)).Week(cfg, mondayUTC())
	require.NoError(t, err)

	first := Evaluate(cal, cfg)
	for i := 0; i < 5; i++ {
		assert.Equal(t, first, Evaluate(cal, cfg))
	}
	assert.GreaterOrEqual(t, first, 0)
	assert.LessOrEqual(t, first, 10)
}

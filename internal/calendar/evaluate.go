package calendar

import "mastermind/internal/models"

// Evaluate scores a generated calendar for distributional health on a 0-10
// scale. It is a pure function: no randomness, no mutation, same score for
// the same inputs.
//
// Starting from 10, independent penalties apply:
//   - 2 for every subreddit over its weekly post cap (cumulative)
//   - 1 when persona post counts spread by more than 3
//   - 1 when fewer than 80% of posts have at least one comment
//   - 1 when self-comments exceed 20% of the post count
//
// The result is clamped to [0, 10] after all penalties.
func Evaluate(cal *models.WeekCalendar, cfg *models.CalendarConfig) int {
	score := 10

	subredditCounts := make(map[string]int)
	for _, post := range cal.Posts {
		subredditCounts[post.Subreddit]++
	}
	for _, count := range subredditCounts {
		if count > MaxPostsPerSubredditPerWeek {
			score -= 2
		}
	}

	personaCounts := make(map[string]int)
	for _, post := range cal.Posts {
		personaCounts[post.AuthorUsername]++
	}
	if len(personaCounts) > 0 {
		maxPosts, minPosts := 0, int(^uint(0)>>1)
		for _, count := range personaCounts {
			if count > maxPosts {
				maxPosts = count
			}
			if count < minPosts {
				minPosts = count
			}
		}
		if maxPosts-minPosts > 3 {
			score--
		}
	}

	if len(cal.Posts) > 0 {
		postsWithComments := make(map[string]struct{})
		for _, c := range cal.Comments {
			postsWithComments[c.PostID] = struct{}{}
		}
		engagementRate := float64(len(postsWithComments)) / float64(len(cal.Posts))
		if engagementRate < 0.8 {
			score--
		}
	}

	// Self-comments should not occur given the commenter-pool exclusion;
	// this guards against future relaxations of that rule.
	postAuthors := make(map[string]string, len(cal.Posts))
	for _, post := range cal.Posts {
		postAuthors[post.PostID] = post.AuthorUsername
	}
	selfInteractions := 0
	for _, c := range cal.Comments {
		if author, ok := postAuthors[c.PostID]; ok && author == c.Username {
			selfInteractions++
		}
	}
	if float64(selfInteractions) > float64(len(cal.Posts))*0.2 {
		score--
	}

	if score < 0 {
		score = 0
	}
	if score > 10 {
		score = 10
	}
	return score
}

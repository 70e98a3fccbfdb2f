// Package calendar implements the weekly content scheduler and the quality
// evaluator. The generator allocates (persona, subreddit, timestamp) slots
// for a target weekly volume under anti-spam constraints and attaches
// templated post and comment text to each slot. The evaluator scores a
// finished calendar for distributional health.
package calendar

// Quality constraints for calendar generation.
const (
	// MaxPostsPerSubredditPerWeek prevents overposting in one destination.
	MaxPostsPerSubredditPerWeek = 2
	// MinHoursBetweenPersonaPostsInSubreddit prevents one persona posting
	// to the same subreddit too frequently.
	MinHoursBetweenPersonaPostsInSubreddit = 48
	// MaxCommentsPerPost keeps conversation depth natural.
	MaxCommentsPerPost = 3
	// MinCommentsPerPost ensures every post gets some engagement.
	MinCommentsPerPost = 1
)

// commentDelayHours is the set of realistic delays between a post and its
// comments. It is shuffled once per post and consumed by comment index.
var commentDelayHours = []int{1, 3, 6, 12, 24}

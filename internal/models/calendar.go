// Package models contains data structures for the application's domain models.
package models

import "time"

// CompanyInfo describes the company being promoted. It is used purely as
// substitution material for generated text.
type CompanyInfo struct {
	Website     string `json:"website" validate:"required,url"`
	Name        string `json:"name" validate:"required"`
	Description string `json:"description" validate:"required,min=50"`
	Industry    string `json:"industry,omitempty"`
}

// CTAStyle selects the call-to-action template family for a persona.
type CTAStyle string

const (
	CTACaseStudy CTAStyle = "case-study"
	CTAInvite    CTAStyle = "invite"
	CTAResource  CTAStyle = "resource"
)

// Persona is a synthetic account identity. Username is the identity key;
// Info is a free-text backstory used for lightweight voice classification.
type Persona struct {
	Username string   `json:"username" validate:"required,persona_username"`
	Name     string   `json:"name" validate:"required"`
	Info     string   `json:"info" validate:"required,min=50"`
	Tone     string   `json:"tone,omitempty" validate:"omitempty,max=120"`
	Dos      string   `json:"dos,omitempty" validate:"omitempty,max=400"`
	Donts    string   `json:"donts,omitempty" validate:"omitempty,max=400"`
	CTAStyle CTAStyle `json:"ctaStyle,omitempty" validate:"omitempty,oneof=case-study invite resource"`
}

// Subreddit is a posting destination, e.g. "r/startups".
type Subreddit struct {
	Name string `json:"name" validate:"required,subreddit_name"`
}

// ChatQuery is a keyword seed for post topics.
type ChatQuery struct {
	KeywordID string `json:"keyword_id" validate:"required,keyword_id"`
	Keyword   string `json:"keyword" validate:"required"`
}

// CalendarConfig is the validated marketing configuration a scheduling run
// consumes. It is immutable for the duration of the run.
type CalendarConfig struct {
	CompanyInfo  CompanyInfo `json:"companyInfo" validate:"required"`
	Personas     []Persona   `json:"personas" validate:"required,min=2,dive"`
	Subreddits   []Subreddit `json:"subreddits" validate:"required,min=1,dive"`
	ChatQueries  []ChatQuery `json:"chatQueries" validate:"required,min=1,dive"`
	PostsPerWeek int         `json:"postsPerWeek" validate:"required,min=1,max=50"`
}

// RedditPost is one scheduled post. Immutable once created.
type RedditPost struct {
	PostID         string    `json:"post_id"`
	Subreddit      string    `json:"subreddit"`
	Title          string    `json:"title"`
	Body           string    `json:"body"`
	AuthorUsername string    `json:"author_username"`
	Timestamp      time.Time `json:"timestamp"`
	KeywordIDs     []string  `json:"keyword_ids"`
}

// RedditComment is one scheduled comment. ParentCommentID is nil for
// top-level comments; a non-nil parent may itself be a reply, so thread
// depth is not bounded by the data model.
type RedditComment struct {
	CommentID       string    `json:"comment_id"`
	PostID          string    `json:"post_id"`
	ParentCommentID *string   `json:"parent_comment_id"`
	CommentText     string    `json:"comment_text"`
	Username        string    `json:"username"`
	Timestamp       time.Time `json:"timestamp"`
}

// IsTopLevel reports whether the comment replies directly to its post.
func (c *RedditComment) IsTopLevel() bool {
	return c.ParentCommentID == nil
}

// WeekCalendar is the output of one scheduling run: a Monday-to-Sunday
// window with posts and comments sorted ascending by timestamp.
type WeekCalendar struct {
	WeekStart time.Time       `json:"weekStart"`
	WeekEnd   time.Time       `json:"weekEnd"`
	Posts     []RedditPost    `json:"posts"`
	Comments  []RedditComment `json:"comments"`
}

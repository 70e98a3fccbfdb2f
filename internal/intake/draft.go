// Package intake drafts reply comments for live "hot" posts found outside
// the scheduled calendar. It reuses the calendar's canonical CTA builder so
// drafted replies close the same way generated ones do.
package intake

import (
	"fmt"
	"strings"

	"mastermind/internal/calendar"
	"mastermind/internal/models"
)

// DraftRequest identifies the live post and the persona/keyword to respond
// with. PostURL is optional.
type DraftRequest struct {
	PersonaUsername string `json:"persona_username"`
	KeywordID       string `json:"keyword_id"`
	Subreddit       string `json:"subreddit"`
	PostTitle       string `json:"post_title"`
	PostURL         string `json:"post_url,omitempty"`
}

// BuildDraftComment assembles a reply draft for a live post from the
// configured persona and keyword. Persona and keyword are looked up by
// identity key in the configuration.
func BuildDraftComment(cfg *models.CalendarConfig, req DraftRequest) (string, error) {
	if cfg == nil {
		return "", models.NewConfigError("Config is required")
	}
	if req.Subreddit == "" || req.PostTitle == "" {
		return "", models.NewValidationError("Subreddit and post title are required")
	}

	var persona *models.Persona
	for i := range cfg.Personas {
		if cfg.Personas[i].Username == req.PersonaUsername {
			persona = &cfg.Personas[i]
			break
		}
	}
	if persona == nil {
		return "", models.NewNotFoundError("Persona", req.PersonaUsername)
	}

	var keyword *models.ChatQuery
	for i := range cfg.ChatQueries {
		if cfg.ChatQueries[i].KeywordID == req.KeywordID {
			keyword = &cfg.ChatQueries[i]
			break
		}
	}
	if keyword == nil {
		return "", models.NewNotFoundError("Keyword", req.KeywordID)
	}

	cta := calendar.BuildCTA(*persona, cfg.CompanyInfo)

	voice := ""
	if persona.Tone != "" {
		voice = fmt.Sprintf("(%s)", persona.Tone)
	}

	lines := []string{
		fmt.Sprintf("Re: %q", req.PostTitle),
		strings.TrimSpace(fmt.Sprintf("Quick take from u/%s %s", persona.Username, voice)),
	}
	if keyword.Keyword != "" {
		lines = append(lines, fmt.Sprintf("On %s: we've tested a few approaches, and the cleanest wins were the ones that balanced speed with editability.", keyword.Keyword))
	}
	if persona.Info != "" {
		lines = append(lines, fmt.Sprintf("Context: %s...", truncate(persona.Info, 180)))
	}
	lines = append(lines, cta)
	if persona.Dos != "" {
		lines = append(lines, fmt.Sprintf("Do: %s", persona.Dos))
	}
	if persona.Donts != "" {
		lines = append(lines, fmt.Sprintf("Don't: %s", persona.Donts))
	}
	if req.PostURL != "" {
		lines = append(lines, fmt.Sprintf("Link: %s", req.PostURL))
	}

	return strings.Join(lines, "\n"), nil
}

func truncate(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n])
}

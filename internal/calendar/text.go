package calendar

import (
	"fmt"
	"strings"

	"mastermind/internal/models"
)

// voice is the persona-voice tag derived from the backstory text. Templates
// branch on it; the classification rules are an ordered list so both can be
// extended without touching the scheduling logic.
type voice int

const (
	voiceGeneric voice = iota
	voiceOperator
	voiceConsultant
)

var voiceRules = []struct {
	v         voice
	substring []string
}{
	{voiceOperator, []string{"startup", "operations"}},
	{voiceConsultant, []string{"consultant", "client"}},
}

// classifyVoice runs case-insensitive substring checks on the persona
// backstory and returns the first matching voice tag.
func classifyVoice(info string) voice {
	lower := strings.ToLower(info)
	for _, rule := range voiceRules {
		for _, s := range rule.substring {
			if strings.Contains(lower, s) {
				return rule.v
			}
		}
	}
	return voiceGeneric
}

var titleTemplates = []string{
	"Best %s?",
	"What's the best %s?",
	"Looking for %s recommendations",
	"%s - what do you recommend?",
	"Anyone have experience with %s?",
	"What %s do you use?",
}

// naturalTitle picks a question-style title seeded by the lead keyword.
func (g *Generator) naturalTitle(keyword string) string {
	tmpl := titleTemplates[g.rng.Intn(len(titleTemplates))]
	return fmt.Sprintf(tmpl, keyword)
}

// naturalPostBody writes the post body in the persona's voice and appends
// the tone parenthetical and do/don't guidance when present.
func (g *Generator) naturalPostBody(keyword string, persona models.Persona) string {
	toneHint := ""
	if persona.Tone != "" {
		toneHint = fmt.Sprintf(" (%s)", persona.Tone)
	}

	var body string
	switch classifyVoice(persona.Info) {
	case voiceOperator:
		body = fmt.Sprintf("Just like it says in the title, what is the best %s? I'm looking for something that makes high quality output I can edit afterwards. Any help appreciated.%s", keyword, toneHint)
	case voiceConsultant:
		body = fmt.Sprintf("Hey everyone, I'm working on a project and need recommendations for %s. Quality and editability are important since I'll be customizing for clients. What's worked well for you?%s", keyword, toneHint)
	default:
		body = fmt.Sprintf("Looking for the best %s. I need something professional that I can customize. Any suggestions?%s", keyword, toneHint)
	}

	if persona.Dos != "" {
		body += fmt.Sprintf("\n\nDo: %s", persona.Dos)
	}
	if persona.Donts != "" {
		body += fmt.Sprintf("\nDon't: %s", persona.Donts)
	}
	return body
}

// BuildCTA derives the call-to-action closing phrase from the persona's
// preferred style. This builder is the single source for post bodies,
// generated comments, and the hot-post intake drafts.
func BuildCTA(persona models.Persona, company models.CompanyInfo) string {
	switch persona.CTAStyle {
	case models.CTAInvite:
		return "Happy to share what worked for us if you want to compare notes."
	case models.CTAResource:
		return "Can drop a short teardown or resource if helpful."
	case models.CTACaseStudy:
		fallthrough
	default:
		return fmt.Sprintf("We saw solid lift using %s; can share the quick breakdown if useful.", company.Name)
	}
}

// topLevelComment writes a comment responding directly to a post, naming
// the company in the persona's voice.
func (g *Generator) topLevelComment(persona models.Persona, company models.CompanyInfo) string {
	cta := BuildCTA(persona, company)

	var templates []string
	switch classifyVoice(persona.Info) {
	case voiceOperator:
		templates = []string{
			fmt.Sprintf("I've been using %s for this exact use case. It's been a game changer for our team. %s", company.Name, cta),
			fmt.Sprintf("Same situation here. We ended up going with %s and it's worked really well. %s", company.Name, cta),
			fmt.Sprintf("%s has been solid for us. The editing capabilities are exactly what you're looking for. %s", company.Name, cta),
		}
	case voiceConsultant:
		templates = []string{
			fmt.Sprintf("I use %s for client work. The quality and customization options are exactly what I need. %s", company.Name, cta),
			fmt.Sprintf("Same here. %s is fine for internal notes but for anything customer facing we end up using it. %s", company.Name, cta),
			fmt.Sprintf("For client deliverables, %s has been my go-to. The output quality is consistent. %s", company.Name, cta),
		}
	default:
		templates = []string{
			fmt.Sprintf("%s is worth checking out. I've had good results with it. %s", company.Name, cta),
			fmt.Sprintf("I'd recommend %s. It fits what you're describing. %s", company.Name, cta),
			fmt.Sprintf("Have you looked at %s? It might be what you need. %s", company.Name, cta),
		}
	}

	return templates[g.rng.Intn(len(templates))]
}

// replyComment writes an agreement-style reply to another comment.
func (g *Generator) replyComment(persona models.Persona, company models.CompanyInfo) string {
	cta := BuildCTA(persona, company)
	templates := []string{
		fmt.Sprintf("Agreed. %s has been reliable for this. %s", company.Name, cta),
		fmt.Sprintf("Second this. We use %s and it's been great. %s", company.Name, cta),
		fmt.Sprintf("Same experience here with %s. %s", company.Name, cta),
		fmt.Sprintf("Yep, %s is solid for this use case. %s", company.Name, cta),
	}
	return templates[g.rng.Intn(len(templates))]
}

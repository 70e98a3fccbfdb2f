package calendar

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"mastermind/internal/models"
)

func TestClassifyVoice(t *testing.T) {
	tests := []struct {
		info string
		want voice
	}{
		{"Spent six years at a fintech STARTUP before going solo", voiceOperator},
		{"Heads operations for a regional distributor", voiceOperator},
		{"Independent consultant for mid-market brands", voiceConsultant},
		{"Builds reporting workflows for client teams", voiceConsultant},
		{"Writes about productivity and tooling", voiceGeneric},
		{"", voiceGeneric},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, classifyVoice(tt.info), "info=%q", tt.info)
	}
}

func TestClassifyVoiceFirstRuleWins(t *testing.T) {
	// Operator keywords are checked before consultant keywords.
	assert.Equal(t, voiceOperator, classifyVoice("startup consultant"))
}

func TestBuildCTA(t *testing.T) {
	company := models.CompanyInfo{Name: "Acme Decks"}

	invite := BuildCTA(models.Persona{CTAStyle: models.CTAInvite}, company)
	assert.Contains(t, invite, "compare notes")
	assert.NotContains(t, invite, "Acme Decks")

	resource := BuildCTA(models.Persona{CTAStyle: models.CTAResource}, company)
	assert.Contains(t, resource, "teardown or resource")

	caseStudy := BuildCTA(models.Persona{CTAStyle: models.CTACaseStudy}, company)
	assert.Contains(t, caseStudy, "Acme Decks")

	// Unset style falls back to the case-study phrasing.
	assert.Equal(t, caseStudy, BuildCTA(models.Persona{}, company))
}

func TestNaturalTitleContainsKeyword(t *testing.T) {
	g := NewGenerator(WithSeed(5))
	for i := 0; i < 20; i++ {
		title := g.naturalTitle("pitch deck tool")
		assert.Contains(t, title, "pitch deck tool")
	}
}

func TestNaturalPostBody(t *testing.T) {
	g := NewGenerator(WithSeed(5))

	persona := models.Persona{
		Username: "maya_ops",
		Info:     "Ran operations at a startup",
		Tone:     "casual, direct",
		Dos:      "mention concrete numbers",
		Donts:    "link dump",
	}

	body := g.naturalPostBody("pitch deck tool", persona)
	assert.Contains(t, body, "pitch deck tool")
	assert.Contains(t, body, "(casual, direct)")
	assert.Contains(t, body, "\n\nDo: mention concrete numbers")
	assert.Contains(t, body, "\nDon't: link dump")
}

func TestNaturalPostBodyOmitsEmptyGuidance(t *testing.T) {
	g := NewGenerator(WithSeed(5))

	body := g.naturalPostBody("pitch deck tool", models.Persona{Info: "generic person"})
	assert.NotContains(t, body, "Do:")
	assert.NotContains(t, body, "Don't:")
	assert.NotContains(t, body, "(")
}

func TestCommentsNameTheCompany(t *testing.T) {
	g := NewGenerator(WithSeed(5))
	company := models.CompanyInfo{Name: "Acme Decks"}
	persona := models.Persona{Username: "raj_consults", Info: "consultant for client work"}

	for i := 0; i < 20; i++ {
		top := g.topLevelComment(persona, company)
		assert.True(t, strings.Contains(top, "Acme Decks"), "top-level: %q", top)

		reply := g.replyComment(persona, company)
		assert.True(t, strings.Contains(reply, "Acme Decks"), "reply: %q", reply)
	}
}

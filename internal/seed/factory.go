// Package seed provides helpers to create sample marketing configurations
// for demos and tests. These helpers are intended for development and
// testing only; real configurations arrive through the HTTP boundary.
package seed

import (
	"fmt"
	"math/rand"
	"strings"
	"time"

	"github.com/brianvoe/gofakeit/v6"

	"mastermind/internal/models"
)

// Options configures the generated sample.
type Options struct {
	NumPersonas   int
	NumSubreddits int
	NumKeywords   int
	PostsPerWeek  int
}

// DefaultOptions is a sample sized like a typical small campaign.
var DefaultOptions = Options{
	NumPersonas:   5,
	NumSubreddits: 3,
	NumKeywords:   4,
	PostsPerWeek:  7,
}

// Factory builds sample configuration entities.
type Factory struct {
	rng *rand.Rand
}

// NewFactory creates a Factory. A zero seed uses the wall clock.
func NewFactory(seed int64) *Factory {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	gofakeit.Seed(seed)
	return &Factory{rng: rand.New(rand.NewSource(seed))}
}

// backstoryTemplates steer the voice classifier: the substrings "startup",
// "operations", "consultant" and "client" are what the scheduler keys on.
var backstoryTemplates = []string{
	"Spent six years running operations at a %s startup, now heads growth at a smaller shop. Posts about tooling and process from the trenches.",
	"Independent consultant who builds %s workflows for mid-market clients. Shares what holds up under real client deadlines.",
	"Former agency strategist turned %s practitioner. Writes long, practical answers and avoids buzzwords wherever possible.",
}

var subredditPool = []string{
	"r/startups", "r/marketing", "r/Entrepreneur", "r/smallbusiness",
	"r/SaaS", "r/productivity", "r/sales", "r/growmybusiness",
}

var keywordPool = []string{
	"AI presentation maker", "pitch deck tool", "slide template library",
	"sales deck software", "proposal builder", "brand kit generator",
	"whiteboard tool", "client report template",
}

var ctaStyles = []models.CTAStyle{models.CTACaseStudy, models.CTAInvite, models.CTAResource}

// CreatePersona builds one sample persona. Optional override functions may
// modify the generated persona.
func (f *Factory) CreatePersona(overrides ...func(*models.Persona)) models.Persona {
	first := strings.ToLower(gofakeit.FirstName())
	persona := models.Persona{
		Username: fmt.Sprintf("%s_%d", first, f.rng.Intn(1000)),
		Name:     gofakeit.Name(),
		Info:     fmt.Sprintf(backstoryTemplates[f.rng.Intn(len(backstoryTemplates))], gofakeit.BuzzWord()),
		Tone:     gofakeit.AdjectiveDescriptive() + ", direct",
		CTAStyle: ctaStyles[f.rng.Intn(len(ctaStyles))],
	}

	for _, override := range overrides {
		override(&persona)
	}
	return persona
}

// CreateConfig builds a complete sample CalendarConfig.
func (f *Factory) CreateConfig(opts Options) *models.CalendarConfig {
	company := models.CompanyInfo{
		Website:     "https://" + gofakeit.DomainName(),
		Name:        gofakeit.Company(),
		Description: gofakeit.Paragraph(1, 3, 12, " "),
		Industry:    gofakeit.BuzzWord(),
	}

	personas := make([]models.Persona, 0, opts.NumPersonas)
	for i := 0; i < opts.NumPersonas; i++ {
		personas = append(personas, f.CreatePersona())
	}

	subs := shuffledStrings(f.rng, subredditPool)
	subreddits := make([]models.Subreddit, 0, opts.NumSubreddits)
	for i := 0; i < opts.NumSubreddits && i < len(subs); i++ {
		subreddits = append(subreddits, models.Subreddit{Name: subs[i]})
	}

	kws := shuffledStrings(f.rng, keywordPool)
	queries := make([]models.ChatQuery, 0, opts.NumKeywords)
	for i := 0; i < opts.NumKeywords && i < len(kws); i++ {
		queries = append(queries, models.ChatQuery{
			KeywordID: fmt.Sprintf("K%d", i+1),
			Keyword:   kws[i],
		})
	}

	return &models.CalendarConfig{
		CompanyInfo:  company,
		Personas:     personas,
		Subreddits:   subreddits,
		ChatQueries:  queries,
		PostsPerWeek: opts.PostsPerWeek,
	}
}

func shuffledStrings(rng *rand.Rand, in []string) []string {
	out := make([]string, len(in))
	copy(out, in)
	rng.Shuffle(len(out), func(i, j int) {
		out[i], out[j] = out[j], out[i]
	})
	return out
}

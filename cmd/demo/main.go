// Command demo generates a sample two-week content calendar from a
// gofakeit-seeded configuration and prints it, with quality scores,
// to stdout. Useful for eyeballing scheduler output without a server.
package main

import (
	"flag"
	"fmt"
	"log"

	"mastermind/internal/calendar"
	"mastermind/internal/models"
	"mastermind/internal/seed"
)

func main() {
	var (
		seedFlag = flag.Int64("seed", 0, "random seed (0 = wall clock)")
		weeks    = flag.Int("weeks", 2, "number of weeks to generate")
		posts    = flag.Int("posts", seed.DefaultOptions.PostsPerWeek, "posts per week")
		personas = flag.Int("personas", seed.DefaultOptions.NumPersonas, "number of personas")
		subs     = flag.Int("subreddits", seed.DefaultOptions.NumSubreddits, "number of subreddits")
		keywords = flag.Int("keywords", seed.DefaultOptions.NumKeywords, "number of keywords")
		showBody = flag.Bool("bodies", false, "print post bodies and comment text")
	)
	flag.Parse()

	factory := seed.NewFactory(*seedFlag)
	cfg := factory.CreateConfig(seed.Options{
		NumPersonas:   *personas,
		NumSubreddits: *subs,
		NumKeywords:   *keywords,
		PostsPerWeek:  *posts,
	})

	fmt.Printf("Company: %s (%s)\n", cfg.CompanyInfo.Name, cfg.CompanyInfo.Website)
	fmt.Printf("Personas: %d  Subreddits: %d  Keywords: %d  Posts/week: %d\n\n",
		len(cfg.Personas), len(cfg.Subreddits), len(cfg.ChatQueries), cfg.PostsPerWeek)

	gen := calendar.NewGenerator(calendar.WithSeed(*seedFlag))

	for w := 0; w < *weeks; w++ {
		cal, err := gen.SubsequentWeek(cfg, w)
		if err != nil {
			log.Fatalf("week %d: %v", w, err)
		}
		printWeek(w, cal, *showBody)
		fmt.Printf("Quality score: %d/10\n\n", calendar.Evaluate(cal, cfg))
	}
}

func printWeek(n int, cal *models.WeekCalendar, showBody bool) {
	fmt.Printf("=== Week %d: %s to %s ===\n", n,
		cal.WeekStart.Format("Mon Jan 2"), cal.WeekEnd.Format("Mon Jan 2"))
	fmt.Printf("%d posts, %d comments\n", len(cal.Posts), len(cal.Comments))

	commentsByPost := make(map[string][]models.RedditComment)
	for _, c := range cal.Comments {
		commentsByPost[c.PostID] = append(commentsByPost[c.PostID], c)
	}

	for _, p := range cal.Posts {
		fmt.Printf("\n[%s] %s u/%s\n  %s\n",
			p.Timestamp.Format("Mon 15:04"), p.Subreddit, p.AuthorUsername, p.Title)
		if showBody {
			fmt.Printf("  %s\n", p.Body)
		}
		for _, c := range commentsByPost[p.PostID] {
			kind := "reply"
			if c.IsTopLevel() {
				kind = "top-level"
			}
			fmt.Printf("    [%s] %s u/%s", c.Timestamp.Format("Mon 15:04"), kind, c.Username)
			if showBody {
				fmt.Printf(": %s", c.CommentText)
			}
			fmt.Println()
		}
	}
	fmt.Println()
}

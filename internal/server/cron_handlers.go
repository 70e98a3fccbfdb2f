package server

import (
	"time"

	"mastermind/internal/cron"

	"github.com/gofiber/fiber/v2"
)

// CronGenerateWeek handles POST /api/cron/generate-week.
// It is the thin trigger wrapper around the scheduler: same body as the
// generate endpoint but weekNumber defaults to 1, i.e. "prepare next week".
func (s *Server) CronGenerateWeek(c *fiber.Ctx) error {
	return s.generate(c, "cron", 1)
}

// CronStatus handles GET /api/cron/generate-week.
// With a matching CRON_SECRET bearer token it acknowledges a scheduler
// ping; otherwise it is a plain health/discovery payload.
func (s *Server) CronStatus(c *fiber.Ctx) error {
	auth := c.Get("Authorization")
	if s.config.CronSecret != "" && auth == "Bearer "+s.config.CronSecret {
		return c.JSON(fiber.Map{
			"status":    "ok",
			"message":   "Cron trigger acknowledged. POST a config to generate the next week's calendar.",
			"timestamp": time.Now().UTC(),
		})
	}

	return c.JSON(fiber.Map{
		"status":    "ok",
		"service":   "mastermind-cron",
		"timestamp": time.Now().UTC(),
		"endpoints": fiber.Map{
			"POST": "Send config and weekNumber in body to generate calendar",
			"GET":  "Health check endpoint",
		},
	})
}

// DescribeSchedule handles GET /api/cron/schedule?expr=...
// It renders a cron expression in human-readable form and computes its
// next run time for weekly schedules.
func (s *Server) DescribeSchedule(c *fiber.Ctx) error {
	expr := c.Query("expr", cron.DefaultSchedule)
	now := time.Now()

	return c.JSON(fiber.Map{
		"schedule":    expr,
		"description": cron.Describe(expr),
		"nextRun":     cron.NextRun(expr, now),
	})
}

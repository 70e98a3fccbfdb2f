package calendar

import (
	"time"

	"mastermind/internal/models"
)

// WeekStart returns the Monday 00:00:00 of the week containing t, in t's
// location.
func WeekStart(t time.Time) time.Time {
	day := int(t.Weekday())
	// time.Weekday counts Sunday as 0; shift so the week starts on Monday.
	diff := day - 1
	if day == 0 {
		diff = 6
	}
	monday := t.AddDate(0, 0, -diff)
	return time.Date(monday.Year(), monday.Month(), monday.Day(), 0, 0, 0, 0, t.Location())
}

// CurrentWeek generates a calendar for the week containing the generator's
// current time.
func (g *Generator) CurrentWeek(cfg *models.CalendarConfig) (*models.WeekCalendar, error) {
	return g.Week(cfg, WeekStart(g.now()))
}

// SubsequentWeek generates a calendar for weekNumber weeks after the
// current week's Monday. weekNumber 0 is the current week.
func (g *Generator) SubsequentWeek(cfg *models.CalendarConfig, weekNumber int) (*models.WeekCalendar, error) {
	target := WeekStart(g.now()).AddDate(0, 0, weekNumber*7)
	return g.Week(cfg, target)
}

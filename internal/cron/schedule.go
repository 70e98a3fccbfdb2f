// Package cron holds the thin trigger bookkeeping around the scheduler:
// job configuration, human-readable schedule descriptions, and next-run
// calculation for weekly schedules. The scheduler itself has no notion of
// elapsed time; this package exists for the trigger wrapper only.
package cron

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// DefaultSchedule runs every Monday at 9 AM (minute hour day month dayOfWeek).
const DefaultSchedule = "0 9 * * 1"

// Job is the persisted-by-the-caller configuration of a recurring
// generation trigger.
type Job struct {
	ID         string     `json:"id"`
	Enabled    bool       `json:"enabled"`
	Schedule   string     `json:"schedule"`
	WeeksAhead int        `json:"weeksAhead"`
	LastRun    *time.Time `json:"lastRun"`
	NextRun    *time.Time `json:"nextRun"`
	RunCount   int        `json:"runCount"`
	CreatedAt  time.Time  `json:"createdAt"`
}

var dayNames = []string{"Sunday", "Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday"}

// Describe renders a cron expression in human-readable form. Expressions it
// does not recognize are returned unchanged.
func Describe(schedule string) string {
	parts := strings.Fields(schedule)
	if len(parts) != 5 {
		return schedule
	}

	minute, hour, dayOfWeek := parts[0], parts[1], parts[4]

	if dayOfWeek != "*" && !strings.Contains(dayOfWeek, ",") {
		dayIdx, err := strconv.Atoi(dayOfWeek)
		if err != nil || dayIdx < 0 || dayIdx > 6 {
			dayIdx = 0
		}
		h, herr := strconv.Atoi(hour)
		m, merr := strconv.Atoi(minute)
		if herr == nil && merr == nil {
			return fmt.Sprintf("Every %s at %02d:%02d", dayNames[dayIdx], h, m)
		}
	}

	if schedule == "0 0 * * *" {
		return "Daily at midnight"
	}

	return schedule
}

// NextRun computes the next fire time of a weekly Monday schedule relative
// to now. Only single-day weekly expressions are supported; anything else
// returns now unchanged, matching the trigger layer's best-effort policy.
func NextRun(schedule string, now time.Time) time.Time {
	parts := strings.Fields(schedule)
	if len(parts) != 5 {
		return now
	}

	minute, hour, dayOfWeek := parts[0], parts[1], parts[4]
	if dayOfWeek != "1" || hour == "*" || minute == "*" {
		return now
	}

	targetHour, err := strconv.Atoi(hour)
	if err != nil {
		targetHour = 9
	}
	targetMinute, err := strconv.Atoi(minute)
	if err != nil {
		targetMinute = 0
	}

	// If it is Monday and the fire time has not passed yet, run today.
	if now.Weekday() == time.Monday {
		today := time.Date(now.Year(), now.Month(), now.Day(), targetHour, targetMinute, 0, 0, now.Location())
		if today.After(now) {
			return today
		}
	}

	daysUntilMonday := (int(time.Monday) - int(now.Weekday()) + 7) % 7
	if daysUntilMonday == 0 {
		daysUntilMonday = 7
	}
	next := now.AddDate(0, 0, daysUntilMonday)
	return time.Date(next.Year(), next.Month(), next.Day(), targetHour, targetMinute, 0, 0, now.Location())
}

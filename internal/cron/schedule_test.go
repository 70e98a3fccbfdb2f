package cron

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDescribe(t *testing.T) {
	tests := []struct {
		schedule string
		want     string
	}{
		{DefaultSchedule, "Every Monday at 09:00"},
		{"30 14 * * 5", "Every Friday at 14:30"},
		{"0 0 * * 0", "Every Sunday at 00:00"},
		{"0 0 * * *", "Daily at midnight"},
		{"not a schedule", "not a schedule"},
		{"*/5 * * * *", "*/5 * * * *"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, Describe(tt.schedule), "schedule=%q", tt.schedule)
	}
}

func TestNextRun(t *testing.T) {
	// 2026-03-02 is a Monday.
	monday := time.Date(2026, time.March, 2, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name string
		now  time.Time
		want time.Time
	}{
		{
			"monday before fire time runs today",
			monday.Add(8 * time.Hour),
			monday.Add(9 * time.Hour),
		},
		{
			"monday after fire time waits a week",
			monday.Add(10 * time.Hour),
			monday.AddDate(0, 0, 7).Add(9 * time.Hour),
		},
		{
			"midweek rolls to next monday",
			monday.AddDate(0, 0, 2).Add(12 * time.Hour),
			monday.AddDate(0, 0, 7).Add(9 * time.Hour),
		},
		{
			"sunday rolls to tomorrow",
			monday.AddDate(0, 0, 6).Add(20 * time.Hour),
			monday.AddDate(0, 0, 7).Add(9 * time.Hour),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NextRun(DefaultSchedule, tt.now))
		})
	}
}

func TestNextRunUnsupportedExpressions(t *testing.T) {
	now := time.Date(2026, time.March, 4, 12, 0, 0, 0, time.UTC)

	// Non-weekly and wildcard expressions fall back to now.
	assert.Equal(t, now, NextRun("0 0 * * *", now))
	assert.Equal(t, now, NextRun("* * * * 1", now))
	assert.Equal(t, now, NextRun("bogus", now))
}

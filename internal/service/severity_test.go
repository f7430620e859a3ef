package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestCalculateSeverity(t *testing.T) {
	tests := []struct {
		name string
		days int
		want Severity
	}{
		{"far overdue", -100, SeverityOverdue},
		{"one day overdue", -1, SeverityOverdue},
		{"due today", 0, SeverityUrgent},
		{"urgent upper bound", 7, SeverityUrgent},
		{"upcoming lower bound", 8, SeverityUpcoming},
		{"upcoming upper bound", 30, SeverityUpcoming},
		{"info lower bound", 31, SeverityInfo},
		{"far out", 365, SeverityInfo},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CalculateSeverity(tt.days))
		})
	}
}

func TestCalculateHoursSeverity(t *testing.T) {
	tests := []struct {
		name  string
		hours int
		want  Severity
	}{
		{"past the service point", -1, SeverityOverdue},
		{"at the service point", 0, SeverityUrgent},
		{"urgent upper bound", 10, SeverityUrgent},
		{"upcoming lower bound", 11, SeverityUpcoming},
		{"upcoming upper bound", 50, SeverityUpcoming},
		{"info lower bound", 51, SeverityInfo},
		{"long way off", 500, SeverityInfo},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CalculateHoursSeverity(tt.hours))
		})
	}
}

func TestSeverityRank(t *testing.T) {
	assert.Less(t, severityRank(SeverityOverdue), severityRank(SeverityUrgent))
	assert.Less(t, severityRank(SeverityUrgent), severityRank(SeverityUpcoming))
	assert.Less(t, severityRank(SeverityUpcoming), severityRank(SeverityInfo))
}

func TestDaysUntil(t *testing.T) {
	// A mid-morning "now" checks that the time-of-day is zeroed before counting
	now := time.Date(2026, 3, 10, 9, 30, 0, 0, time.UTC)

	tests := []struct {
		name string
		due  time.Time
		want int
	}{
		{"due today", time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC), 0},
		{"due tomorrow", time.Date(2026, 3, 11, 0, 0, 0, 0, time.UTC), 1},
		{"due yesterday", time.Date(2026, 3, 9, 0, 0, 0, 0, time.UTC), -1},
		{"due in 30 days", time.Date(2026, 4, 9, 0, 0, 0, 0, time.UTC), 30},
		{"due in 31 days", time.Date(2026, 4, 10, 0, 0, 0, 0, time.UTC), 31},
		{"partial day rounds up", time.Date(2026, 3, 11, 15, 0, 0, 0, time.UTC), 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, daysUntil(tt.due, now))
		})
	}
}

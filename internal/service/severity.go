package service

import "time"

// Severity classifies how pressing an alert is
type Severity string

const (
	SeverityOverdue  Severity = "overdue"
	SeverityUrgent   Severity = "urgent"
	SeverityUpcoming Severity = "upcoming"
	SeverityInfo     Severity = "info"
)

// Date-based severity thresholds, in days until due
const (
	urgentDays   = 7
	upcomingDays = 30
)

// Hours-based severity thresholds, in engine hours remaining
const (
	urgentHours   = 10
	upcomingHours = 50
)

// severityRank orders severities for sorting, most pressing first
func severityRank(s Severity) int {
	switch s {
	case SeverityOverdue:
		return 0
	case SeverityUrgent:
		return 1
	case SeverityUpcoming:
		return 2
	default:
		return 3
	}
}

// CalculateSeverity classifies a due date by how many days remain.
// Negative means the date has passed.
func CalculateSeverity(daysUntilDue int) Severity {
	switch {
	case daysUntilDue < 0:
		return SeverityOverdue
	case daysUntilDue <= urgentDays:
		return SeverityUrgent
	case daysUntilDue <= upcomingDays:
		return SeverityUpcoming
	default:
		return SeverityInfo
	}
}

// CalculateHoursSeverity classifies a service point by how many engine hours
// remain before it. Negative means the meter has already passed it.
func CalculateHoursSeverity(hoursRemaining int) Severity {
	switch {
	case hoursRemaining < 0:
		return SeverityOverdue
	case hoursRemaining <= urgentHours:
		return SeverityUrgent
	case hoursRemaining <= upcomingHours:
		return SeverityUpcoming
	default:
		return SeverityInfo
	}
}

// daysUntil counts days from today until the given date, rounding any
// fraction of a day up. Today's time-of-day is zeroed first, so a due date
// stamped midnight today comes out as 0 and midnight tomorrow as 1.
func daysUntil(due time.Time, now time.Time) int {
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	diff := due.Sub(today)
	days := int(diff.Hours() / 24)
	if diff > 0 && diff%(24*time.Hour) != 0 {
		days++
	}
	return days
}

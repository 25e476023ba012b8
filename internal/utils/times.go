package utils

import (
	"fmt"
	"time"
)

// WeekWindow returns the Monday and Sunday bounds (date-truncated) of the
// week weeksAgo weeks back from now. weeksAgo 0 is the current week.
func WeekWindow(now time.Time, weeksAgo int) (start, end time.Time) {
	day := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	// time.Weekday starts at Sunday; shift so Monday opens the week.
	offset := (int(day.Weekday()) + 6) % 7
	start = day.AddDate(0, 0, -offset-7*weeksAgo)
	end = start.AddDate(0, 0, 6)
	return start, end
}

// MonthWindow returns the trailing 30-day window ending today.
func MonthWindow(now time.Time) (start, end time.Time) {
	day := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	return day.AddDate(0, 0, -30), day
}

// FormatDateRange renders a window the way report headers do,
// e.g. "Jan 05-Jan 11, 2026".
func FormatDateRange(start, end time.Time) string {
	return fmt.Sprintf("%s-%s", start.Format("Jan 02"), end.Format("Jan 02, 2006"))
}

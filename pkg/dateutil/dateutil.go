package dateutil

import (
	"time"
)

// AddMonths adds a specified number of months to a date
func AddMonths(date time.Time, months int) time.Time {
	return date.AddDate(0, months, 0)
}

// MonthLabel returns the human label for the month that is offset months
// after the anchor date, e.g. "Mar 2026". Offset 1 is the month after the
// anchor's month.
func MonthLabel(anchor time.Time, offset int) string {
	return AddMonths(anchor, offset).Format("Jan 2006")
}

// YearMonth returns the ISO year-month string ("2026-03") for the month that
// is offset months after the anchor date.
func YearMonth(anchor time.Time, offset int) string {
	return AddMonths(anchor, offset).Format("2006-01")
}

// DayKey truncates a timestamp to day granularity. Two timestamps within the
// same calendar day map to the same key.
func DayKey(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

package dates

import "time"

// IsBusinessDay reports whether t falls on a weekday.
func IsBusinessDay(t time.Time) bool {
	wd := t.Weekday()
	return wd != time.Saturday && wd != time.Sunday
}

// BusinessDays counts the business days between start and end inclusive,
// skipping Saturdays and Sundays. Returns 0 when end is before start.
func BusinessDays(start, end time.Time) int {
	start = truncateToDay(start)
	end = truncateToDay(end)
	if end.Before(start) {
		return 0
	}

	count := 0
	for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
		if IsBusinessDay(d) {
			count++
		}
	}
	return count
}

// StartOfDay returns midnight at the start of t's calendar day.
func StartOfDay(t time.Time) time.Time {
	return truncateToDay(t)
}

// EndOfDay returns the last nanosecond of t's calendar day.
func EndOfDay(t time.Time) time.Time {
	return truncateToDay(t).AddDate(0, 0, 1).Add(-time.Nanosecond)
}

func truncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

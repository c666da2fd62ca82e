package dates

import (
	"testing"
	"time"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestIsBusinessDay(t *testing.T) {
	cases := []struct {
		date time.Time
		want bool
	}{
		{day(2024, time.June, 3), true},  // Monday
		{day(2024, time.June, 7), true},  // Friday
		{day(2024, time.June, 8), false}, // Saturday
		{day(2024, time.June, 9), false}, // Sunday
	}
	for _, c := range cases {
		got := IsBusinessDay(c.date)
		if got != c.want {
			t.Errorf("IsBusinessDay(%s) = %v, want %v", c.date.Format("2006-01-02"), got, c.want)
		}
	}
}

func TestBusinessDays(t *testing.T) {
	cases := []struct {
		name  string
		start time.Time
		end   time.Time
		want  int
	}{
		{"single weekday", day(2024, time.June, 3), day(2024, time.June, 3), 1},
		{"single saturday", day(2024, time.June, 8), day(2024, time.June, 8), 0},
		{"monday to friday", day(2024, time.June, 3), day(2024, time.June, 7), 5},
		{"friday to monday spans weekend", day(2024, time.June, 7), day(2024, time.June, 10), 2},
		{"two full weeks", day(2024, time.June, 3), day(2024, time.June, 14), 10},
		{"weekend only", day(2024, time.June, 8), day(2024, time.June, 9), 0},
		{"end before start", day(2024, time.June, 10), day(2024, time.June, 3), 0},
		{"crosses month boundary", day(2024, time.May, 30), day(2024, time.June, 4), 4},
	}
	for _, c := range cases {
		got := BusinessDays(c.start, c.end)
		if got != c.want {
			t.Errorf("%s: BusinessDays(%s, %s) = %d, want %d",
				c.name, c.start.Format("2006-01-02"), c.end.Format("2006-01-02"), got, c.want)
		}
	}
}

func TestBusinessDaysIgnoresTimeOfDay(t *testing.T) {
	start := time.Date(2024, time.June, 3, 23, 59, 0, 0, time.UTC)
	end := time.Date(2024, time.June, 4, 0, 1, 0, 0, time.UTC)
	if got := BusinessDays(start, end); got != 2 {
		t.Errorf("BusinessDays across midnight = %d, want 2", got)
	}
}

func TestStartOfDayEndOfDay(t *testing.T) {
	ts := time.Date(2024, time.June, 3, 14, 30, 45, 123, time.UTC)

	start := StartOfDay(ts)
	if start.Hour() != 0 || start.Minute() != 0 || start.Second() != 0 || start.Nanosecond() != 0 {
		t.Errorf("StartOfDay(%v) = %v, want midnight", ts, start)
	}
	if start.Day() != 3 {
		t.Errorf("StartOfDay changed the calendar day: %v", start)
	}

	end := EndOfDay(ts)
	if end.Day() != 3 {
		t.Errorf("EndOfDay changed the calendar day: %v", end)
	}
	if !end.Before(day(2024, time.June, 4)) {
		t.Errorf("EndOfDay(%v) = %v, want before next midnight", ts, end)
	}
	if !end.After(ts) {
		t.Errorf("EndOfDay(%v) = %v, want after the timestamp", ts, end)
	}
}

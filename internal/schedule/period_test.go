package schedule

import (
	"testing"
	"time"
)

func TestResolveHalf(t *testing.T) {
	tests := []struct {
		name  string
		date  time.Time
		year  int
		month int
		half  int
	}{
		{"first_day", date(2026, time.January, 1), 2026, 1, 1},
		{"fifteenth_is_first_half", date(2026, time.January, 15), 2026, 1, 1},
		{"sixteenth_is_second_half", date(2026, time.January, 16), 2026, 1, 2},
		{"last_day", date(2026, time.February, 28), 2026, 2, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			year, month, half := ResolveHalf(tt.date)
			if year != tt.year || month != tt.month || half != tt.half {
				t.Errorf("ResolveHalf(%s) = (%d, %d, %d), want (%d, %d, %d)",
					tt.date.Format("2006-01-02"), year, month, half, tt.year, tt.month, tt.half)
			}
		})
	}
}

func TestPeriodRangeHalves(t *testing.T) {
	start, end := PeriodRange(2026, 1, 1)
	if !start.Equal(date(2026, time.January, 1)) {
		t.Errorf("half 1 start = %s, want Jan 1", start)
	}
	if !end.Equal(time.Date(2026, time.January, 15, 23, 59, 59, 999999999, time.UTC)) {
		t.Errorf("half 1 end = %s, want Jan 15 end of day", end)
	}

	start, end = PeriodRange(2026, 1, 2)
	if !start.Equal(date(2026, time.January, 16)) {
		t.Errorf("half 2 start = %s, want Jan 16", start)
	}
	if !end.Equal(time.Date(2026, time.January, 31, 23, 59, 59, 999999999, time.UTC)) {
		t.Errorf("half 2 end = %s, want Jan 31 end of day", end)
	}
}

// The two halves must partition the month exactly for every month length.
func TestPeriodRangeCoversMonthWithoutGapOrOverlap(t *testing.T) {
	months := []struct {
		name    string
		year    int
		month   int
		lastDay int
	}{
		{"28_days", 2026, 2, 28},
		{"29_days", 2028, 2, 29},
		{"30_days", 2026, 4, 30},
		{"31_days", 2026, 1, 31},
	}

	for _, m := range months {
		t.Run(m.name, func(t *testing.T) {
			start1, end1 := PeriodRange(m.year, m.month, 1)
			start2, end2 := PeriodRange(m.year, m.month, 2)

			if !start1.Equal(time.Date(m.year, time.Month(m.month), 1, 0, 0, 0, 0, time.UTC)) {
				t.Errorf("half 1 does not start on the 1st: %s", start1)
			}
			if !end1.Before(start2) {
				t.Errorf("halves overlap: half 1 ends %s, half 2 starts %s", end1, start2)
			}
			if gap := start2.Sub(end1); gap != time.Nanosecond {
				t.Errorf("gap between halves is %s, want 1ns", gap)
			}
			wantEnd := time.Date(m.year, time.Month(m.month), m.lastDay, 23, 59, 59, 999999999, time.UTC)
			if !end2.Equal(wantEnd) {
				t.Errorf("half 2 ends %s, want %s", end2, wantEnd)
			}
		})
	}
}

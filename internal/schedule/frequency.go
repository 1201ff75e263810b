// Package schedule holds the calendar arithmetic behind recurring
// templates and half-month accounting periods. Everything here is pure:
// no clocks, no storage.
package schedule

import (
	"fmt"
	"time"

	"fortnight/internal/models"
)

// NextDueDate advances a due date by one interval of the given frequency.
// The result is always strictly later than the input.
//
// Month-based frequencies (monthly, quarterly, annual) preserve the
// day-of-month and clamp it to the last day of the target month when it
// would not exist there: Jan 31 + monthly = Feb 28 (29 in leap years).
// This is a deliberate, tested policy and intentionally not time.AddDate,
// which rolls overflow into the following month.
//
// An unknown frequency is a programming error and panics; the enum is
// validated at the API boundary.
func NextDueDate(due time.Time, frequency models.Frequency) time.Time {
	switch frequency {
	case models.FrequencyMonthly:
		return addMonthsClamped(due, 1)
	case models.FrequencyQuarterly:
		return addMonthsClamped(due, 3)
	case models.FrequencyAnnual:
		return addMonthsClamped(due, 12)
	case models.FrequencyWeekly:
		return due.AddDate(0, 0, 7)
	case models.FrequencyBiweekly:
		return due.AddDate(0, 0, 14)
	case models.FrequencySemiMonthly:
		return nextSemiMonthly(due)
	default:
		panic(fmt.Sprintf("schedule: unknown frequency %q", frequency))
	}
}

// nextSemiMonthly advances to the paired date in the 1st-15th / 16th-EOM
// rhythm: day <= 15 moves to day+15 within the same month (clamped to the
// month's last day), day > 15 moves to day-15 of the next month. The
// second branch needs no clamp since day-15 is at most 16.
func nextSemiMonthly(due time.Time) time.Time {
	year, month, day := due.Date()
	hour, min, sec := due.Clock()

	if day <= 15 {
		next := day + 15
		if last := daysInMonth(year, month); next > last {
			next = last
		}
		return time.Date(year, month, next, hour, min, sec, due.Nanosecond(), due.Location())
	}
	return time.Date(year, month+1, day-15, hour, min, sec, due.Nanosecond(), due.Location())
}

// addMonthsClamped adds months while preserving the day-of-month, clamping
// to the target month's last day instead of rolling over.
func addMonthsClamped(t time.Time, months int) time.Time {
	year, month, day := t.Date()
	hour, min, sec := t.Clock()

	target := time.Date(year, month+time.Month(months), 1, 0, 0, 0, 0, t.Location())
	if last := daysInMonth(target.Year(), target.Month()); day > last {
		day = last
	}
	return time.Date(target.Year(), target.Month(), day, hour, min, sec, t.Nanosecond(), t.Location())
}

// daysInMonth returns the number of days in the given month. Day zero of
// the following month normalizes to the last day of this one.
func daysInMonth(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

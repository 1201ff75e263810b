package schedule

import "time"

// ResolveHalf maps a date onto its half-month period key: half 1 for the
// 1st through the 15th, half 2 for the 16th onward.
func ResolveHalf(date time.Time) (year, month, half int) {
	year = date.Year()
	month = int(date.Month())
	half = 1
	if date.Day() > 15 {
		half = 2
	}
	return year, month, half
}

// PeriodRange returns the inclusive date range of a half-month period in
// UTC. Half 1 runs from the 1st at midnight through end of day on the
// 15th; any other half value is treated as half 2, from the 16th through
// end of day on the month's last day. For every month length the two
// ranges are disjoint and together cover the whole month.
func PeriodRange(year, month, half int) (start, end time.Time) {
	m := time.Month(month)
	if half == 1 {
		start = time.Date(year, m, 1, 0, 0, 0, 0, time.UTC)
		end = time.Date(year, m, 15, 23, 59, 59, 999999999, time.UTC)
		return start, end
	}
	start = time.Date(year, m, 16, 0, 0, 0, 0, time.UTC)
	end = time.Date(year, m, daysInMonth(year, m), 23, 59, 59, 999999999, time.UTC)
	return start, end
}

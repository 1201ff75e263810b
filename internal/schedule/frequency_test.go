package schedule

import (
	"testing"
	"time"

	"fortnight/internal/models"
)

func date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

func TestNextDueDate(t *testing.T) {
	tests := []struct {
		name      string
		due       time.Time
		frequency models.Frequency
		want      time.Time
	}{
		{"monthly", date(2026, time.March, 10), models.FrequencyMonthly, date(2026, time.April, 10)},
		{"monthly_clamps_jan_31", date(2026, time.January, 31), models.FrequencyMonthly, date(2026, time.February, 28)},
		{"monthly_clamps_to_leap_day", date(2028, time.January, 31), models.FrequencyMonthly, date(2028, time.February, 29)},
		{"monthly_year_rollover", date(2026, time.December, 15), models.FrequencyMonthly, date(2027, time.January, 15)},
		{"weekly", date(2026, time.January, 5), models.FrequencyWeekly, date(2026, time.January, 12)},
		{"weekly_month_rollover", date(2026, time.January, 28), models.FrequencyWeekly, date(2026, time.February, 4)},
		{"biweekly", date(2026, time.January, 5), models.FrequencyBiweekly, date(2026, time.January, 19)},
		{"quarterly", date(2026, time.February, 10), models.FrequencyQuarterly, date(2026, time.May, 10)},
		{"quarterly_clamps_jan_31", date(2026, time.January, 31), models.FrequencyQuarterly, date(2026, time.April, 30)},
		{"annual", date(2026, time.June, 1), models.FrequencyAnnual, date(2027, time.June, 1)},
		{"annual_clamps_leap_day", date(2028, time.February, 29), models.FrequencyAnnual, date(2029, time.February, 28)},
		{"semi_monthly_first_half", date(2026, time.January, 5), models.FrequencySemiMonthly, date(2026, time.January, 20)},
		{"semi_monthly_second_half", date(2026, time.January, 20), models.FrequencySemiMonthly, date(2026, time.February, 5)},
		{"semi_monthly_first_half_clamps_to_eom", date(2026, time.February, 14), models.FrequencySemiMonthly, date(2026, time.February, 28)},
		{"semi_monthly_first_half_leap_february", date(2028, time.February, 14), models.FrequencySemiMonthly, date(2028, time.February, 29)},
		{"semi_monthly_day_31_lands_on_16th", date(2026, time.January, 31), models.FrequencySemiMonthly, date(2026, time.February, 16)},
		{"semi_monthly_year_rollover", date(2026, time.December, 20), models.FrequencySemiMonthly, date(2027, time.January, 5)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NextDueDate(tt.due, tt.frequency)
			if !got.Equal(tt.want) {
				t.Errorf("NextDueDate(%s, %s) = %s, want %s",
					tt.due.Format("2006-01-02"), tt.frequency, got.Format("2006-01-02"), tt.want.Format("2006-01-02"))
			}
		})
	}
}

func TestNextDueDateStrictlyAdvances(t *testing.T) {
	frequencies := []models.Frequency{
		models.FrequencyMonthly,
		models.FrequencySemiMonthly,
		models.FrequencyWeekly,
		models.FrequencyBiweekly,
		models.FrequencyQuarterly,
		models.FrequencyAnnual,
	}

	// Walk every day of two years, including a leap year.
	for _, freq := range frequencies {
		day := date(2027, time.January, 1)
		for day.Year() < 2029 {
			next := NextDueDate(day, freq)
			if !next.After(day) {
				t.Fatalf("NextDueDate(%s, %s) = %s does not advance",
					day.Format("2006-01-02"), freq, next.Format("2006-01-02"))
			}
			day = day.AddDate(0, 0, 1)
		}
	}
}

func TestNextDueDatePanicsOnUnknownFrequency(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic for unknown frequency")
		}
	}()
	NextDueDate(date(2026, time.January, 1), models.Frequency("fortnightly"))
}

package billingcycle

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestClosingDateClampsShortMonths(t *testing.T) {
	c := Cycle{ClosingDay: 31, DueDay: 10}

	tests := []struct {
		name  string
		year  int
		month time.Month
		want  time.Time
	}{
		{"leap february", 2024, time.February, date(2024, time.February, 29)},
		{"common february", 2023, time.February, date(2023, time.February, 28)},
		{"thirty day month", 2024, time.April, date(2024, time.April, 30)},
		{"long month", 2024, time.January, date(2024, time.January, 31)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := c.ClosingDate(tt.year, tt.month)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.month, got.Month(), "closing date must never roll into the next month")
		})
	}
}

func TestDueDateLagsOneMonth(t *testing.T) {
	c := Cycle{ClosingDay: 25, DueDay: 31}

	tests := []struct {
		name  string
		year  int
		month time.Month
		want  time.Time
	}{
		{"january closes, february due clamped", 2024, time.January, date(2024, time.February, 29)},
		{"march closes, april due clamped", 2023, time.March, date(2023, time.April, 30)},
		{"december rolls the year", 2024, time.December, date(2025, time.January, 31)},
		{"july closes, august due", 2024, time.July, date(2024, time.August, 31)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := c.DueDate(tt.year, tt.month)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, NewPeriod(tt.year, tt.month).Add(1), NewPeriod(got.Year(), got.Month()))
		})
	}
}

func TestBillPeriod(t *testing.T) {
	assert.Equal(t, Period{Year: 2024, Month: time.December}, BillPeriod(date(2025, time.January, 15)))
	assert.Equal(t, Period{Year: 2024, Month: time.May}, BillPeriod(date(2024, time.June, 1)))

	c := Cycle{ClosingDay: 5, DueDay: 15}
	for m := time.January; m <= time.December; m++ {
		due := c.DueDate(2024, m)
		assert.Equal(t, Period{Year: 2024, Month: m}, BillPeriod(due))
	}
}

func TestPeriodForClosingBoundary(t *testing.T) {
	c := Cycle{ClosingDay: 5, DueDay: 15}

	assert.Equal(t, Period{2024, time.March}, c.PeriodFor(date(2024, time.March, 4)))
	assert.Equal(t, Period{2024, time.March}, c.PeriodFor(date(2024, time.March, 5)), "closing day itself is not after closing")
	assert.Equal(t, Period{2024, time.April}, c.PeriodFor(date(2024, time.March, 6)))
	assert.Equal(t, Period{2025, time.January}, c.PeriodFor(date(2024, time.December, 20)))
}

func TestPeriodArithmetic(t *testing.T) {
	p := Period{Year: 2024, Month: time.November}
	assert.Equal(t, Period{2025, time.February}, p.Add(3))
	assert.Equal(t, Period{2023, time.December}, p.Add(-11))
	assert.True(t, p.Before(p.Add(1)))
	assert.False(t, p.Add(1).Before(p))
	assert.Equal(t, "2024-11", p.String())
}

func TestNewCycleValidation(t *testing.T) {
	_, err := NewCycle(0, 10)
	require.Error(t, err)
	_, err = NewCycle(10, 32)
	require.Error(t, err)
	c, err := NewCycle(31, 31)
	require.NoError(t, err)
	assert.Equal(t, 31, c.ClosingDay)
}

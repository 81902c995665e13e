package billingcycle

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sumInstallments(items []Installment) decimal.Decimal {
	sum := decimal.Zero
	for _, it := range items {
		sum = sum.Add(it.Amount)
	}
	return sum
}

func TestScheduleInstallmentsSumToTotal(t *testing.T) {
	c := Cycle{ClosingDay: 10, DueDay: 20}
	totals := []string{"100.00", "1200.00", "0.05", "999.99", "1234.57", "10"}
	counts := []int{1, 2, 3, 7, 12}

	for _, total := range totals {
		for _, count := range counts {
			amount := decimal.RequireFromString(total)
			items, err := c.ScheduleInstallments(date(2024, time.May, 3), count, amount)
			require.NoError(t, err)
			require.Len(t, items, count)
			assert.True(t, sumInstallments(items).Equal(amount), "total %s count %d summed to %s", total, count, sumInstallments(items))

			for i, it := range items {
				assert.Equal(t, i+1, it.Number)
				if i > 0 {
					assert.Equal(t, items[i-1].Period.Add(1), it.Period, "installments advance one cycle at a time")
					assert.True(t, it.DueDate.After(items[i-1].DueDate))
				}
			}
		}
	}
}

func TestScheduleInstallmentsAfterClosing(t *testing.T) {
	c := Cycle{ClosingDay: 5, DueDay: 15}
	purchase := date(2024, time.March, 10)

	items, err := c.ScheduleInstallments(purchase, 3, decimal.RequireFromString("1200.00"))
	require.NoError(t, err)
	require.Len(t, items, 3)

	wantDue := []time.Time{
		date(2024, time.May, 15),
		date(2024, time.June, 15),
		date(2024, time.July, 15),
	}
	for i, it := range items {
		assert.True(t, it.Amount.Equal(decimal.RequireFromString("400.00")), "installment %d amount %s", it.Number, it.Amount)
		assert.Equal(t, wantDue[i], it.DueDate)
		assert.Equal(t, int(purchase.Month())+i+2, int(it.DueDate.Month()))
	}
	assert.Equal(t, date(2024, time.April, 5), items[0].ClosingDate)
}

func TestScheduleInstallmentsOnClosingDay(t *testing.T) {
	c := Cycle{ClosingDay: 5, DueDay: 15}

	onClosing, err := c.ScheduleInstallments(date(2024, time.March, 5), 1, decimal.NewFromInt(50))
	require.NoError(t, err)
	assert.Equal(t, Period{2024, time.March}, onClosing[0].Period)
	assert.Equal(t, date(2024, time.April, 15), onClosing[0].DueDate)

	dayAfter, err := c.ScheduleInstallments(date(2024, time.March, 6), 1, decimal.NewFromInt(50))
	require.NoError(t, err)
	assert.Equal(t, Period{2024, time.April}, dayAfter[0].Period)
	assert.Equal(t, date(2024, time.May, 15), dayAfter[0].DueDate)
}

func TestScheduleInstallmentsRemainderOnLast(t *testing.T) {
	c := Cycle{ClosingDay: 20, DueDay: 1}

	items, err := c.ScheduleInstallments(date(2024, time.January, 2), 3, decimal.RequireFromString("100.00"))
	require.NoError(t, err)

	want := []string{"33.33", "33.33", "33.34"}
	for i, it := range items {
		assert.True(t, it.Amount.Equal(decimal.RequireFromString(want[i])), "installment %d got %s", it.Number, it.Amount)
	}
	assert.True(t, sumInstallments(items).Equal(decimal.RequireFromString("100.00")))
}

func TestScheduleInstallmentsRollsYear(t *testing.T) {
	c := Cycle{ClosingDay: 28, DueDay: 5}

	items, err := c.ScheduleInstallments(date(2024, time.November, 29), 3, decimal.NewFromInt(90))
	require.NoError(t, err)
	assert.Equal(t, Period{2024, time.December}, items[0].Period)
	assert.Equal(t, Period{2025, time.January}, items[1].Period)
	assert.Equal(t, date(2025, time.March, 5), items[2].DueDate)
}

func TestScheduleInstallmentsValidation(t *testing.T) {
	c := Cycle{ClosingDay: 5, DueDay: 15}
	purchase := date(2024, time.March, 1)

	_, err := c.ScheduleInstallments(purchase, 0, decimal.NewFromInt(10))
	assert.Error(t, err)
	_, err = c.ScheduleInstallments(purchase, 2, decimal.Zero)
	assert.Error(t, err)
	_, err = c.ScheduleInstallments(purchase, 2, decimal.NewFromInt(-5))
	assert.Error(t, err)
	_, err = Cycle{ClosingDay: 40, DueDay: 1}.ScheduleInstallments(purchase, 1, decimal.NewFromInt(10))
	assert.Error(t, err)
}

func TestSplitAmount(t *testing.T) {
	parts := SplitAmount(decimal.RequireFromString("10.00"), 3)
	assert.Equal(t, []string{"3.33", "3.33", "3.34"}, []string{parts[0].StringFixed(2), parts[1].StringFixed(2), parts[2].StringFixed(2)})
	assert.Nil(t, SplitAmount(decimal.NewFromInt(1), 0))
}

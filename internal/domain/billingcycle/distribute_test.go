package billingcycle

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDistributeRefundSkipsPaidInstallments(t *testing.T) {
	c := Cycle{ClosingDay: 5, DueDay: 15}
	asOf := date(2024, time.June, 3)

	shares, err := c.DistributeRefund(decimal.RequireFromString("100.00"), 5, 2, asOf)
	require.NoError(t, err)
	require.Len(t, shares, 3)

	sum := decimal.Zero
	for i, s := range shares {
		assert.Equal(t, 3+i, s.Installment)
		assert.Equal(t, Period{2024, time.June}.Add(i), s.Period)
		sum = sum.Add(s.Amount)
	}
	assert.True(t, sum.Equal(decimal.RequireFromString("100.00")))
	assert.True(t, shares[2].Amount.Equal(decimal.RequireFromString("33.34")))
}

func TestDistributeRefundStartsAtOpenStatement(t *testing.T) {
	c := Cycle{ClosingDay: 5, DueDay: 15}

	shares, err := c.DistributeRefund(decimal.NewFromInt(60), 2, 0, date(2024, time.June, 20))
	require.NoError(t, err)
	require.Len(t, shares, 2)
	assert.Equal(t, Period{2024, time.July}, shares[0].Period)
	assert.Equal(t, date(2024, time.August, 15), shares[0].DueDate)
	assert.Equal(t, date(2024, time.September, 15), shares[1].DueDate)
}

func TestDistributeRefundAllPaidUsesSingleShare(t *testing.T) {
	c := Cycle{ClosingDay: 10, DueDay: 20}

	shares, err := c.DistributeRefund(decimal.NewFromInt(25), 3, 3, date(2024, time.June, 1))
	require.NoError(t, err)
	require.Len(t, shares, 1)
	assert.Equal(t, 3, shares[0].Installment)
	assert.True(t, shares[0].Amount.Equal(decimal.NewFromInt(25)))
}

func TestDistributeRefundValidation(t *testing.T) {
	c := Cycle{ClosingDay: 10, DueDay: 20}
	asOf := date(2024, time.June, 1)

	_, err := c.DistributeRefund(decimal.Zero, 3, 0, asOf)
	assert.Error(t, err)
	_, err = c.DistributeRefund(decimal.NewFromInt(10), 0, 0, asOf)
	assert.Error(t, err)
	_, err = c.DistributeRefund(decimal.NewFromInt(10), 3, -1, asOf)
	assert.Error(t, err)
}

func targets(capacities ...string) []RefundTarget {
	c := Cycle{ClosingDay: 10, DueDay: 20}
	out := make([]RefundTarget, len(capacities))
	for i, capacity := range capacities {
		out[i] = RefundTarget{
			Installment: i + 1,
			Capacity:    decimal.RequireFromString(capacity),
			Statement:   c.Statement(Period{2024, time.March}.Add(i)),
		}
	}
	return out
}

func TestAllocateRefund(t *testing.T) {
	testCases := []struct {
		name       string
		refund     string
		capacities []string
		expected   []string
	}{
		{name: "equal_split", refund: "90", capacities: []string{"100", "100", "100"}, expected: []string{"30", "30", "30"}},
		{name: "remainder_on_last", refund: "100", capacities: []string{"100", "100", "100"}, expected: []string{"33.33", "33.33", "33.34"}},
		{name: "capped_target_overflows", refund: "150", capacities: []string{"10", "100", "100"}, expected: []string{"10", "70", "70"}},
		{name: "fills_every_capacity", refund: "300", capacities: []string{"100", "100", "100"}, expected: []string{"100", "100", "100"}},
		{name: "cents_over_many_targets", refund: "0.05", capacities: []string{"1", "1", "1", "1", "1", "1", "1"}, expected: []string{"0.05"}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			shares, err := AllocateRefund(decimal.RequireFromString(tc.refund), targets(tc.capacities...))
			require.NoError(t, err)
			require.Len(t, shares, len(tc.expected))

			sum := decimal.Zero
			for i, s := range shares {
				assert.True(t, decimal.RequireFromString(tc.expected[i]).Equal(s.Amount),
					"share %d: expected %s, got %s", i, tc.expected[i], s.Amount)
				sum = sum.Add(s.Amount)
			}
			assert.True(t, sum.Equal(decimal.RequireFromString(tc.refund)))
		})
	}
}

func TestAllocateRefundSkipsExhaustedTargets(t *testing.T) {
	shares, err := AllocateRefund(decimal.NewFromInt(20), targets("0", "50", "50"))
	require.NoError(t, err)
	require.Len(t, shares, 2)
	assert.Equal(t, 2, shares[0].Installment)
	assert.Equal(t, 3, shares[1].Installment)
	assert.Equal(t, Period{2024, time.April}, shares[0].Period)
	assert.True(t, shares[0].Amount.Equal(decimal.NewFromInt(10)))
}

func TestAllocateRefundExceedingCapacity(t *testing.T) {
	_, err := AllocateRefund(decimal.RequireFromString("200.01"), targets("100", "100"))
	assert.Error(t, err)
	_, err = AllocateRefund(decimal.NewFromInt(1), nil)
	assert.Error(t, err)
	_, err = AllocateRefund(decimal.Zero, targets("100"))
	assert.Error(t, err)
}

package types

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestNormalizeMoney(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"rounds to cent", "10.005", "10.01"},
		{"keeps exact", "33.34", "33.34"},
		{"snaps sub cent positive", "0.004", "0"},
		{"snaps sub cent negative", "-0.0049", "0"},
		{"float noise", "0.0000000001", "0"},
		{"negative totals survive", "-12.5", "-12.5"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NormalizeMoney(decimal.RequireFromString(tt.in))
			assert.True(t, got.Equal(decimal.RequireFromString(tt.want)), "got %s", got)
		})
	}
}

func TestWithinTolerance(t *testing.T) {
	total := decimal.RequireFromString("1200.00")
	assert.True(t, WithinTolerance(total, decimal.RequireFromString("1200.01")))
	assert.True(t, WithinTolerance(total, decimal.RequireFromString("1199.99")))
	assert.False(t, WithinTolerance(total, decimal.RequireFromString("1200.02")))
	assert.False(t, WithinTolerance(total, decimal.RequireFromString("1199.98")))
}

func TestRefundTags(t *testing.T) {
	tags := []string{RefundedPartialTag(1), RefundedInstallmentTag(3), "groceries", RefundedPartialTag(2)}

	assert.Equal(t, 2, CountPartialRefundTags(tags))
	assert.Equal(t, []int{3}, RefundedInstallmentNumbers(tags))

	appended := AppendTags(tags, RefundedPartialTag(2), RefundedPartialTag(3))
	assert.Len(t, appended, 5)
	assert.Equal(t, RefundedPartialTag(3), appended[4])
	assert.Len(t, tags, 4, "input slice must not be modified")
}

func TestRefundTypeValidate(t *testing.T) {
	assert.NoError(t, RefundTypeFull.Validate())
	assert.NoError(t, RefundTypePartial.Validate())
	assert.NoError(t, RefundTypeInstallment.Validate())
	assert.Error(t, RefundType("SOME").Validate())
	assert.Error(t, RefundType("").Validate())
}

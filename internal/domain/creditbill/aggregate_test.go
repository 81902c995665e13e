package creditbill

import (
	"testing"
	"time"

	"github.com/pocketwise/pocketwise/internal/domain/creditexpense"
	"github.com/pocketwise/pocketwise/internal/types"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func expense(amount string, status types.Status) *creditexpense.CreditExpense {
	return &creditexpense.CreditExpense{
		Amount:    decimal.RequireFromString(amount),
		BaseModel: types.BaseModel{Status: status},
	}
}

func credit(amount string) *CreditIncome {
	return &CreditIncome{
		Amount:    decimal.RequireFromString(amount),
		BaseModel: types.BaseModel{Status: types.StatusActive},
	}
}

func TestCalculateTotal(t *testing.T) {
	tests := []struct {
		name     string
		expenses []*creditexpense.CreditExpense
		credits  []*CreditIncome
		want     string
	}{
		{
			name: "no line items",
			want: "0",
		},
		{
			name: "expenses minus credits",
			expenses: []*creditexpense.CreditExpense{
				expense("400", types.StatusActive),
				expense("33.33", types.StatusActive),
			},
			credits: []*CreditIncome{credit("100")},
			want:    "333.33",
		},
		{
			name: "refund records reduce the total",
			expenses: []*creditexpense.CreditExpense{
				expense("400", types.StatusActive),
				expense("-400", types.StatusActive),
			},
			want: "0",
		},
		{
			name: "deleted rows are ignored",
			expenses: []*creditexpense.CreditExpense{
				expense("400", types.StatusActive),
				expense("250", types.StatusDeleted),
			},
			want: "400",
		},
		{
			name: "sub cent residue snaps to zero",
			expenses: []*creditexpense.CreditExpense{
				expense("33.333", types.StatusActive),
			},
			credits: []*CreditIncome{credit("33.33")},
			want:    "0",
		},
		{
			name: "negative totals are kept",
			credits: []*CreditIncome{
				credit("10.5"),
			},
			want: "-10.5",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CalculateTotal(tt.expenses, tt.credits)
			assert.True(t, decimal.RequireFromString(tt.want).Equal(got), "got %s", got)
		})
	}
}

func TestCalculateTotalIsIdempotent(t *testing.T) {
	expenses := []*creditexpense.CreditExpense{
		expense("133.34", types.StatusActive),
		expense("-20", types.StatusActive),
	}
	credits := []*CreditIncome{credit("13.34")}

	first := CalculateTotal(expenses, credits)
	second := CalculateTotal(expenses, credits)
	assert.True(t, first.Equal(second))

	bill := &CreditBill{DueDate: time.Date(2024, time.May, 10, 0, 0, 0, 0, time.UTC)}
	now := time.Date(2024, time.April, 1, 0, 0, 0, 0, time.UTC)
	assert.True(t, bill.Apply(first, now))
	assert.False(t, bill.Apply(second, now))
	assert.True(t, decimal.NewFromInt(100).Equal(bill.TotalAmount))
}

func TestCalculateStatus(t *testing.T) {
	due := time.Date(2024, time.March, 10, 0, 0, 0, 0, time.UTC)
	before := time.Date(2024, time.March, 10, 18, 0, 0, 0, time.UTC)
	after := time.Date(2024, time.March, 11, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name  string
		total string
		paid  string
		now   time.Time
		want  types.CreditBillStatus
	}{
		{"fully paid", "100", "100", after, types.CreditBillStatusPaid},
		{"overpaid", "100", "120", before, types.CreditBillStatusPaid},
		{"zero total", "0", "0", after, types.CreditBillStatusPaid},
		{"nothing paid before due", "100", "0", before, types.CreditBillStatusPending},
		{"nothing paid after due", "100", "0", after, types.CreditBillStatusOverdue},
		{"partly paid before due", "100", "40", before, types.CreditBillStatusPartial},
		{"partly paid after due", "100", "40", after, types.CreditBillStatusPartial},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			bill := &CreditBill{
				DueDate:     due,
				TotalAmount: decimal.RequireFromString(tt.total),
				PaidAmount:  decimal.RequireFromString(tt.paid),
			}
			assert.Equal(t, tt.want, CalculateStatus(bill, tt.now))
		})
	}
}

func TestRefreshStatusStampsPaidAt(t *testing.T) {
	now := time.Date(2024, time.March, 1, 12, 0, 0, 0, time.UTC)
	bill := &CreditBill{
		DueDate:     time.Date(2024, time.March, 10, 0, 0, 0, 0, time.UTC),
		TotalAmount: decimal.NewFromInt(50),
		PaidAmount:  decimal.NewFromInt(50),
		BillStatus:  types.CreditBillStatusPending,
	}

	assert.True(t, bill.RefreshStatus(now))
	assert.Equal(t, types.CreditBillStatusPaid, bill.BillStatus)
	if assert.NotNil(t, bill.PaidAt) {
		assert.Equal(t, now, *bill.PaidAt)
	}

	bill.TotalAmount = decimal.NewFromInt(80)
	assert.True(t, bill.RefreshStatus(now))
	assert.Equal(t, types.CreditBillStatusPartial, bill.BillStatus)
	assert.Nil(t, bill.PaidAt)
}

package creditbill

import (
	"time"

	"github.com/pocketwise/pocketwise/internal/domain/creditexpense"
	"github.com/pocketwise/pocketwise/internal/types"
	"github.com/samber/lo"
	"github.com/shopspring/decimal"
)

// CalculateTotal derives a bill total from its active line items. Refund
// records carry negative amounts so they reduce the total on their own; credit
// lines are subtracted.
func CalculateTotal(expenses []*creditexpense.CreditExpense, credits []*CreditIncome) decimal.Decimal {
	charged := creditexpense.SumAmounts(lo.Filter(expenses, func(e *creditexpense.CreditExpense, _ int) bool {
		return e.Status != types.StatusDeleted
	}))
	credited := lo.Reduce(credits, func(acc decimal.Decimal, c *CreditIncome, _ int) decimal.Decimal {
		if c.Status == types.StatusDeleted {
			return acc
		}
		return acc.Add(c.Amount)
	}, decimal.Zero)
	return types.NormalizeMoney(charged.Sub(credited))
}

// CalculateStatus derives the payment status of a bill at now
func CalculateStatus(bill *CreditBill, now time.Time) types.CreditBillStatus {
	paid := bill.PaidAmount
	switch {
	case paid.GreaterThanOrEqual(bill.TotalAmount):
		return types.CreditBillStatusPaid
	case paid.IsZero() && isPastDue(bill.DueDate, now):
		return types.CreditBillStatusOverdue
	case paid.IsPositive():
		return types.CreditBillStatusPartial
	default:
		return types.CreditBillStatusPending
	}
}

// isPastDue is true from the day after the due date on
func isPastDue(dueDate, now time.Time) bool {
	now = now.UTC()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	due := time.Date(dueDate.Year(), dueDate.Month(), dueDate.Day(), 0, 0, 0, 0, time.UTC)
	return today.After(due)
}

// Apply stores a freshly computed total on the bill and refreshes its status.
// It reports whether anything changed.
func (b *CreditBill) Apply(total decimal.Decimal, now time.Time) bool {
	prevTotal, prevStatus := b.TotalAmount, b.BillStatus
	b.TotalAmount = types.NormalizeMoney(total)
	b.RefreshStatus(now)
	return !prevTotal.Equal(b.TotalAmount) || prevStatus != b.BillStatus
}

// RefreshStatus recomputes the status and stamps PaidAt on the transition to
// PAID
func (b *CreditBill) RefreshStatus(now time.Time) bool {
	prev := b.BillStatus
	b.BillStatus = CalculateStatus(b, now)
	if b.BillStatus == types.CreditBillStatusPaid && b.PaidAt == nil {
		paidAt := now.UTC()
		b.PaidAt = &paidAt
	}
	if b.BillStatus != types.CreditBillStatusPaid {
		b.PaidAt = nil
	}
	return prev != b.BillStatus
}

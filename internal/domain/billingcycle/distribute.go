package billingcycle

import (
	"time"

	ierr "github.com/pocketwise/pocketwise/internal/errors"
	"github.com/pocketwise/pocketwise/internal/types"
	"github.com/shopspring/decimal"
)

// RefundShare is the part of a refund credited on one statement
type RefundShare struct {
	Installment int             `json:"installment_number"`
	Amount      decimal.Decimal `json:"amount"`
	Statement
}

// RefundTarget is an open installment able to absorb part of a refund.
// Capacity is what is still unrefunded on it.
type RefundTarget struct {
	Installment int
	Capacity    decimal.Decimal
	Statement
}

// DistributeRefund spreads a refund over the statements that are still open.
// The installments already paid are skipped: one share is produced for each
// of the remaining totalInstallments-paidInstallments installments, numbered
// after the paid ones, starting with the statement open on asOf. Shares are
// split like installments so they add up to the refund exactly.
func (c Cycle) DistributeRefund(refund decimal.Decimal, totalInstallments, paidInstallments int, asOf time.Time) ([]RefundShare, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	if totalInstallments < 1 || paidInstallments < 0 {
		return nil, ierr.NewError("invalid installment counts").
			WithReportableDetails(map[string]any{
				"total_installments": totalInstallments,
				"paid_installments":  paidInstallments,
			}).
			Mark(ierr.ErrValidation)
	}

	remaining := totalInstallments - paidInstallments
	if remaining < 1 {
		remaining = 1
		paidInstallments = totalInstallments - 1
	}

	first := c.PeriodFor(asOf)
	targets := make([]RefundTarget, remaining)
	for i := range targets {
		targets[i] = RefundTarget{
			Installment: paidInstallments + i + 1,
			Capacity:    refund,
			Statement:   c.Statement(first.Add(i)),
		}
	}
	return AllocateRefund(refund, targets)
}

// AllocateRefund splits a refund over targets like installments, in target
// order. A target never receives more than its capacity; what it cannot take
// is split again over the targets that still can. Targets left with nothing
// produce no share.
func AllocateRefund(refund decimal.Decimal, targets []RefundTarget) ([]RefundShare, error) {
	if !refund.IsPositive() {
		return nil, ierr.NewError("invalid refund amount").
			WithHint("Refund amount must be greater than zero").
			Mark(ierr.ErrValidation)
	}

	capacity := decimal.Zero
	for _, t := range targets {
		if t.Capacity.IsPositive() {
			capacity = capacity.Add(t.Capacity)
		}
	}
	if refund.GreaterThan(capacity) {
		return nil, ierr.NewError("refund exceeds the open installments").
			WithHintf("At most %s can be spread over the open installments", capacity.StringFixed(types.MoneyPrecision)).
			WithReportableDetails(map[string]any{
				"amount":   refund,
				"capacity": capacity,
			}).
			Mark(ierr.ErrValidation)
	}

	allocated := make([]decimal.Decimal, len(targets))
	left := refund
	for left.IsPositive() {
		open := make([]int, 0, len(targets))
		for i, t := range targets {
			if t.Capacity.Sub(allocated[i]).IsPositive() {
				open = append(open, i)
			}
		}

		parts := splitNonNegative(left, len(open))
		for j, i := range open {
			part := decimal.Min(parts[j], targets[i].Capacity.Sub(allocated[i]))
			allocated[i] = allocated[i].Add(part)
			left = left.Sub(part)
		}
	}

	shares := make([]RefundShare, 0, len(targets))
	for i, t := range targets {
		if !allocated[i].IsPositive() {
			continue
		}
		shares = append(shares, RefundShare{
			Installment: t.Installment,
			Amount:      allocated[i],
			Statement:   t.Statement,
		})
	}
	return shares, nil
}

// splitNonNegative is SplitAmount, except that amounts too small to round
// into n parts are truncated so that no part goes negative
func splitNonNegative(total decimal.Decimal, n int) []decimal.Decimal {
	parts := SplitAmount(total, n)
	if !parts[n-1].IsNegative() {
		return parts
	}
	base := total.Div(decimal.NewFromInt(int64(n))).RoundDown(types.MoneyPrecision)
	for i := 0; i < n-1; i++ {
		parts[i] = base
	}
	parts[n-1] = total.Sub(base.Mul(decimal.NewFromInt(int64(n - 1))))
	return parts
}

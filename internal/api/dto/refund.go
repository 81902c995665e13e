package dto

import (
	"github.com/pocketwise/pocketwise/internal/domain/creditbill"
	"github.com/pocketwise/pocketwise/internal/domain/creditexpense"
	"github.com/pocketwise/pocketwise/internal/domain/refund"
	ierr "github.com/pocketwise/pocketwise/internal/errors"
	"github.com/pocketwise/pocketwise/internal/types"
	"github.com/pocketwise/pocketwise/internal/validator"
	"github.com/samber/lo"
	"github.com/shopspring/decimal"
)

// RefundCreditExpenseRequest refunds a purchase. Amount is required for FULL
// and PARTIAL, SelectedInstallments for INSTALLMENT.
type RefundCreditExpenseRequest struct {
	RefundType           types.RefundType `json:"refund_type" validate:"required"`
	Amount               *decimal.Decimal `json:"amount,omitempty"`
	SelectedInstallments []int            `json:"selected_installments,omitempty"`
}

func (r *RefundCreditExpenseRequest) Validate() error {
	if err := validator.ValidateRequest(r); err != nil {
		return err
	}

	if err := r.RefundType.Validate(); err != nil {
		return err
	}

	switch r.RefundType {
	case types.RefundTypeFull, types.RefundTypePartial:
		if r.Amount == nil || !r.Amount.IsPositive() {
			return ierr.NewError("amount must be greater than zero").
				WithHintf("A %s refund needs a positive amount", r.RefundType).
				WithReportableDetails(map[string]any{
					"refund_type": r.RefundType,
				}).
				Mark(ierr.ErrValidation)
		}
	case types.RefundTypeInstallment:
		if len(r.SelectedInstallments) == 0 {
			return ierr.NewError("selected_installments is required").
				WithHint("Please select at least one installment to refund").
				Mark(ierr.ErrValidation)
		}
		if dup := lo.FindDuplicates(r.SelectedInstallments); len(dup) > 0 {
			return ierr.NewError("selected_installments contains duplicates").
				WithHint("Each installment can only be selected once").
				WithReportableDetails(map[string]any{
					"duplicates": dup,
				}).
				Mark(ierr.ErrValidation)
		}
	}

	return nil
}

// GetAmount returns the requested amount rounded to the cent
func (r *RefundCreditExpenseRequest) GetAmount() decimal.Decimal {
	if r.Amount == nil {
		return decimal.Zero
	}
	return types.RoundMoney(*r.Amount)
}

type RefundResult struct {
	CreditExpenseID    string                         `json:"credit_expense_id"`
	RefundType         types.RefundType               `json:"refund_type"`
	RefundedAmount     decimal.Decimal                `json:"refunded_amount"`
	Refunds            []*creditexpense.CreditExpense `json:"refunds"`
	Credits            []*creditbill.CreditIncome     `json:"credits"`
	CancelledIDs       []string                       `json:"cancelled_installment_ids,omitempty"`
	AffectedBillIDs    []string                       `json:"affected_bill_ids"`
	AffectedBillsCount int                            `json:"affected_bills_count"`
	Event              *refund.RefundEvent            `json:"event"`
}

type RefundCreditExpenseResponse struct {
	Message string        `json:"message"`
	Data    *RefundResult `json:"data"`
}

package dto

import (
	"github.com/pocketwise/pocketwise/internal/domain/creditbill"
	"github.com/pocketwise/pocketwise/internal/domain/creditexpense"
	ierr "github.com/pocketwise/pocketwise/internal/errors"
	"github.com/pocketwise/pocketwise/internal/types"
	"github.com/shopspring/decimal"
)

type CreditBillResponse struct {
	*creditbill.CreditBill
	Expenses []*creditexpense.CreditExpense `json:"expenses,omitempty"`
	Credits  []*creditbill.CreditIncome     `json:"credits,omitempty"`
}

// ListCreditBillsResponse represents the response for listing bills
type ListCreditBillsResponse = types.ListResponse[*CreditBillResponse]

type PayCreditBillRequest struct {
	Amount decimal.Decimal `json:"amount"`
}

func (r *PayCreditBillRequest) Validate() error {
	if !r.Amount.IsPositive() {
		return ierr.NewError("amount must be greater than zero").
			WithHint("Please provide a positive payment amount").
			WithReportableDetails(map[string]any{
				"amount": r.Amount,
			}).
			Mark(ierr.ErrValidation)
	}
	return nil
}

// RefreshBillStatusesResponse summarizes a status refresh run
type RefreshBillStatusesResponse struct {
	Cards   int `json:"cards"`
	Bills   int `json:"bills"`
	Changed int `json:"changed"`
	Failed  int `json:"failed"`
}

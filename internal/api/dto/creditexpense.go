package dto

import (
	"context"
	"time"

	"github.com/lib/pq"
	"github.com/pocketwise/pocketwise/internal/domain/creditexpense"
	"github.com/pocketwise/pocketwise/internal/domain/refund"
	ierr "github.com/pocketwise/pocketwise/internal/errors"
	"github.com/pocketwise/pocketwise/internal/types"
	"github.com/pocketwise/pocketwise/internal/validator"
	"github.com/samber/lo"
	"github.com/shopspring/decimal"
)

// CreateCreditExpenseRequest records a purchase split in installments
type CreateCreditExpenseRequest struct {
	CreditCardID string          `json:"credit_card_id" validate:"required"`
	Description  string          `json:"description" validate:"required,max=255"`
	Amount       decimal.Decimal `json:"amount"`
	PurchaseDate string          `json:"purchase_date" validate:"required,datetime=2006-01-02"`
	Installments *int            `json:"installments,omitempty" validate:"omitempty,min=1,max=72"`
}

func (r *CreateCreditExpenseRequest) Validate() error {
	if err := validator.ValidateRequest(r); err != nil {
		return err
	}

	if !r.Amount.IsPositive() {
		return ierr.NewError("amount must be greater than zero").
			WithHint("Please provide a positive purchase amount").
			WithReportableDetails(map[string]any{
				"amount": r.Amount,
			}).
			Mark(ierr.ErrValidation)
	}

	if !r.Amount.Equal(types.RoundMoney(r.Amount)) {
		return ierr.NewError("amount has more than two decimal places").
			WithHint("Amounts are expressed in cents").
			Mark(ierr.ErrValidation)
	}

	return nil
}

func (r *CreateCreditExpenseRequest) GetInstallments() int {
	return lo.FromPtrOr(r.Installments, types.DefaultCreditExpenseInstallment)
}

func (r *CreateCreditExpenseRequest) GetPurchaseDate() time.Time {
	date, _ := time.Parse(time.DateOnly, r.PurchaseDate)
	return date
}

// ToCreditExpense builds the purchase root row
func (r *CreateCreditExpenseRequest) ToCreditExpense(ctx context.Context) *creditexpense.CreditExpense {
	return &creditexpense.CreditExpense{
		ID:           types.GenerateUUIDWithPrefix(types.UUID_PREFIX_CREDIT_EXPENSE),
		CreditCardID: r.CreditCardID,
		Description:  r.Description,
		Amount:       r.Amount,
		PurchaseDate: r.GetPurchaseDate(),
		Installments: r.GetInstallments(),
		ExpenseType:  types.CreditExpenseTypeExpense,
		Tags:         pq.StringArray{},
		BaseModel:    types.GetDefaultBaseModel(ctx),
	}
}

type CreditExpenseResponse struct {
	*creditexpense.CreditExpense
	InstallmentItems []*creditexpense.CreditExpense `json:"installment_items,omitempty"`
	Refunds          []*creditexpense.CreditExpense `json:"refunds,omitempty"`
}

// ListCreditExpensesResponse represents the response for listing purchases
type ListCreditExpensesResponse = types.ListResponse[*CreditExpenseResponse]

// ListRefundEventsResponse is the refund history of a purchase
type ListRefundEventsResponse = types.ListResponse[*refund.RefundEvent]

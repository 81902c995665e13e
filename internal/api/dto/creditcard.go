package dto

import (
	"context"

	"github.com/pocketwise/pocketwise/internal/domain/billingcycle"
	"github.com/pocketwise/pocketwise/internal/domain/creditcard"
	ierr "github.com/pocketwise/pocketwise/internal/errors"
	"github.com/pocketwise/pocketwise/internal/types"
	"github.com/pocketwise/pocketwise/internal/validator"
	"github.com/shopspring/decimal"
)

type CreateCreditCardRequest struct {
	Name        string          `json:"name" validate:"required,max=255"`
	ClosingDay  int             `json:"closing_day" validate:"required,min=1,max=31"`
	DueDay      int             `json:"due_day" validate:"required,min=1,max=31"`
	CreditLimit decimal.Decimal `json:"credit_limit"`
}

func (r *CreateCreditCardRequest) Validate() error {
	if err := validator.ValidateRequest(r); err != nil {
		return err
	}

	if r.CreditLimit.IsNegative() {
		return ierr.NewError("credit_limit must be zero or positive").
			WithHint("Please provide a valid credit limit").
			WithReportableDetails(map[string]any{
				"credit_limit": r.CreditLimit,
			}).
			Mark(ierr.ErrValidation)
	}

	cycle := billingcycle.Cycle{ClosingDay: r.ClosingDay, DueDay: r.DueDay}
	return cycle.Validate()
}

func (r *CreateCreditCardRequest) ToCreditCard(ctx context.Context) *creditcard.CreditCard {
	return &creditcard.CreditCard{
		ID:          types.GenerateUUIDWithPrefix(types.UUID_PREFIX_CREDIT_CARD),
		Name:        r.Name,
		ClosingDay:  r.ClosingDay,
		DueDay:      r.DueDay,
		CreditLimit: types.RoundMoney(r.CreditLimit),
		BaseModel:   types.GetDefaultBaseModel(ctx),
	}
}

// UpdateCreditCardRequest changes the card. New closing and due days only
// apply to bills created afterwards.
type UpdateCreditCardRequest struct {
	Name        *string          `json:"name,omitempty" validate:"omitempty,max=255"`
	ClosingDay  *int             `json:"closing_day,omitempty" validate:"omitempty,min=1,max=31"`
	DueDay      *int             `json:"due_day,omitempty" validate:"omitempty,min=1,max=31"`
	CreditLimit *decimal.Decimal `json:"credit_limit,omitempty"`
}

func (r *UpdateCreditCardRequest) Validate() error {
	if err := validator.ValidateRequest(r); err != nil {
		return err
	}
	if r.CreditLimit != nil && r.CreditLimit.IsNegative() {
		return ierr.NewError("credit_limit must be zero or positive").
			WithHint("Please provide a valid credit limit").
			Mark(ierr.ErrValidation)
	}
	return nil
}

// Apply merges the request into the card
func (r *UpdateCreditCardRequest) Apply(ctx context.Context, card *creditcard.CreditCard) error {
	if r.Name != nil {
		card.Name = *r.Name
	}
	if r.ClosingDay != nil {
		card.ClosingDay = *r.ClosingDay
	}
	if r.DueDay != nil {
		card.DueDay = *r.DueDay
	}
	if r.CreditLimit != nil {
		card.CreditLimit = types.RoundMoney(*r.CreditLimit)
	}
	if err := card.Cycle().Validate(); err != nil {
		return err
	}
	card.Touch(ctx)
	return nil
}

type CreditCardResponse struct {
	*creditcard.CreditCard
}

// ListCreditCardsResponse represents the response for listing credit cards
type ListCreditCardsResponse = types.ListResponse[*CreditCardResponse]

package creditcard

import (
	"github.com/pocketwise/pocketwise/ent"
	"github.com/pocketwise/pocketwise/internal/domain/billingcycle"
	"github.com/pocketwise/pocketwise/internal/types"
	"github.com/shopspring/decimal"
)

// CreditCard is a card owned by one user. Its closing and due days drive the
// statement calendar.
type CreditCard struct {
	ID          string          `db:"id" json:"id"`
	Name        string          `db:"name" json:"name"`
	ClosingDay  int             `db:"closing_day" json:"closing_day"`
	DueDay      int             `db:"due_day" json:"due_day"`
	CreditLimit decimal.Decimal `db:"credit_limit" json:"credit_limit"`

	types.BaseModel
}

// Cycle returns the statement calendar of the card
func (c *CreditCard) Cycle() billingcycle.Cycle {
	return billingcycle.Cycle{
		ClosingDay: c.ClosingDay,
		DueDay:     c.DueDay,
	}
}

// FromEnt converts an ent CreditCard to a domain CreditCard
func FromEnt(e *ent.CreditCard) *CreditCard {
	if e == nil {
		return nil
	}
	return &CreditCard{
		ID:          e.ID,
		Name:        e.Name,
		ClosingDay:  e.ClosingDay,
		DueDay:      e.DueDay,
		CreditLimit: e.CreditLimit,
		BaseModel: types.BaseModel{
			UserID:    e.UserID,
			Status:    types.Status(e.Status),
			CreatedAt: e.CreatedAt,
			UpdatedAt: e.UpdatedAt,
			CreatedBy: e.CreatedBy,
			UpdatedBy: e.UpdatedBy,
		},
	}
}

// FromEntList converts a list of ent CreditCards to domain CreditCards
func FromEntList(list []*ent.CreditCard) []*CreditCard {
	cards := make([]*CreditCard, len(list))
	for i, e := range list {
		cards[i] = FromEnt(e)
	}
	return cards
}

package creditbill

import (
	"time"

	"github.com/pocketwise/pocketwise/ent"
	"github.com/pocketwise/pocketwise/internal/domain/billingcycle"
	"github.com/pocketwise/pocketwise/internal/types"
	"github.com/shopspring/decimal"
)

// CreditBill is the statement of one card for one closing date. TotalAmount
// is a cache derived from the bill's line items.
type CreditBill struct {
	ID           string                 `db:"id" json:"id"`
	CreditCardID string                 `db:"credit_card_id" json:"credit_card_id"`
	ClosingDate  time.Time              `db:"closing_date" json:"closing_date"`
	DueDate      time.Time              `db:"due_date" json:"due_date"`
	TotalAmount  decimal.Decimal        `db:"total_amount" json:"total_amount"`
	PaidAmount   decimal.Decimal        `db:"paid_amount" json:"paid_amount"`
	BillStatus   types.CreditBillStatus `db:"bill_status" json:"bill_status"`
	PaidAt       *time.Time             `db:"paid_at" json:"paid_at,omitempty"`

	types.BaseModel
}

// Period returns the statement period the bill closes
func (b *CreditBill) Period() billingcycle.Period {
	return billingcycle.NewPeriod(b.ClosingDate.Year(), b.ClosingDate.Month())
}

func (b *CreditBill) IsPaid() bool {
	return b.BillStatus == types.CreditBillStatusPaid
}

// RemainingAmount is what is still owed, never negative
func (b *CreditBill) RemainingAmount() decimal.Decimal {
	remaining := b.TotalAmount.Sub(b.PaidAmount)
	if remaining.IsNegative() {
		return decimal.Zero
	}
	return remaining
}

// FromStatement builds an empty PENDING bill for a card statement
func FromStatement(cardID string, st billingcycle.Statement, base types.BaseModel) *CreditBill {
	return &CreditBill{
		ID:           types.GenerateUUIDWithPrefix(types.UUID_PREFIX_CREDIT_BILL),
		CreditCardID: cardID,
		ClosingDate:  st.ClosingDate,
		DueDate:      st.DueDate,
		TotalAmount:  decimal.Zero,
		PaidAmount:   decimal.Zero,
		BillStatus:   types.CreditBillStatusPending,
		BaseModel:    base,
	}
}

// FromEnt converts an ent CreditBill to a domain CreditBill
func FromEnt(e *ent.CreditBill) *CreditBill {
	if e == nil {
		return nil
	}
	return &CreditBill{
		ID:           e.ID,
		CreditCardID: e.CreditCardID,
		ClosingDate:  e.ClosingDate,
		DueDate:      e.DueDate,
		TotalAmount:  e.TotalAmount,
		PaidAmount:   e.PaidAmount,
		BillStatus:   e.BillStatus,
		PaidAt:       e.PaidAt,
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

// FromEntList converts a list of ent CreditBills to domain CreditBills
func FromEntList(list []*ent.CreditBill) []*CreditBill {
	bills := make([]*CreditBill, len(list))
	for i, e := range list {
		bills[i] = FromEnt(e)
	}
	return bills
}

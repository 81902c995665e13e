package refund

import (
	"github.com/lib/pq"
	"github.com/pocketwise/pocketwise/ent"
	"github.com/pocketwise/pocketwise/internal/types"
	"github.com/shopspring/decimal"
)

// RefundEvent is one entry of the append-only refund ledger of a purchase.
// Sequence starts at 1 and is unique per purchase.
type RefundEvent struct {
	ID                 string           `db:"id" json:"id"`
	CreditExpenseID    string           `db:"credit_expense_id" json:"credit_expense_id"`
	CreditCardID       string           `db:"credit_card_id" json:"credit_card_id"`
	RefundType         types.RefundType `db:"refund_type" json:"refund_type"`
	Amount             decimal.Decimal  `db:"amount" json:"amount"`
	Sequence           int              `db:"sequence" json:"sequence"`
	InstallmentNumbers pq.Int64Array    `db:"installment_numbers" json:"installment_numbers"`
	CreditBillIDs      pq.StringArray   `db:"credit_bill_ids" json:"credit_bill_ids"`

	types.BaseModel
}

// PartialTotal sums the PARTIAL refunds of a ledger
func PartialTotal(events []*RefundEvent) decimal.Decimal {
	total := decimal.Zero
	for _, e := range events {
		if e.RefundType == types.RefundTypePartial {
			total = total.Add(e.Amount)
		}
	}
	return total
}

// Total sums every refund of a ledger
func Total(events []*RefundEvent) decimal.Decimal {
	total := decimal.Zero
	for _, e := range events {
		total = total.Add(e.Amount)
	}
	return total
}

// NextSequence returns the sequence of the next ledger entry
func NextSequence(events []*RefundEvent) int {
	next := 1
	for _, e := range events {
		if e.Sequence >= next {
			next = e.Sequence + 1
		}
	}
	return next
}

// FromEnt converts an ent RefundEvent to a ledger entry
func FromEnt(e *ent.RefundEvent) *RefundEvent {
	if e == nil {
		return nil
	}
	return &RefundEvent{
		ID:                 e.ID,
		CreditExpenseID:    e.CreditExpenseID,
		CreditCardID:       e.CreditCardID,
		RefundType:         e.RefundType,
		Amount:             e.Amount,
		Sequence:           e.Sequence,
		InstallmentNumbers: e.InstallmentNumbers,
		CreditBillIDs:      e.CreditBills,
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

func FromEntList(list []*ent.RefundEvent) []*RefundEvent {
	events := make([]*RefundEvent, len(list))
	for i, e := range list {
		events[i] = FromEnt(e)
	}
	return events
}

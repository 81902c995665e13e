package creditexpense

import (
	"time"

	"github.com/lib/pq"
	"github.com/pocketwise/pocketwise/ent"
	"github.com/pocketwise/pocketwise/internal/types"
	"github.com/samber/lo"
	"github.com/shopspring/decimal"
)

// CreditExpense is either a purchase, one installment of a purchase, or a
// refund record.
//
// A purchase is a root row: no parent and no bill. Its installments are child
// rows numbered 1..Installments, each billed on exactly one statement. Refund
// records have type REFUND, a negative amount and the purchase as parent.
type CreditExpense struct {
	ID                string                  `db:"id" json:"id"`
	CreditCardID      string                  `db:"credit_card_id" json:"credit_card_id"`
	Description       string                  `db:"description" json:"description"`
	Amount            decimal.Decimal         `db:"amount" json:"amount"`
	PurchaseDate      time.Time               `db:"purchase_date" json:"purchase_date"`
	Installments      int                     `db:"installments" json:"installments"`
	InstallmentNumber int                     `db:"installment_number" json:"installment_number"`
	ExpenseType       types.CreditExpenseType `db:"expense_type" json:"type"`
	ParentExpenseID   *string                 `db:"parent_expense_id" json:"parent_expense_id,omitempty"`
	CreditBillID      *string                 `db:"credit_bill_id" json:"credit_bill_id,omitempty"`
	DueDate           *time.Time              `db:"due_date" json:"due_date,omitempty"`
	Tags              pq.StringArray          `db:"tags" json:"tags"`

	types.BaseModel
}

// IsRoot reports whether the expense is a purchase rather than a child row
func (e *CreditExpense) IsRoot() bool {
	return e.ParentExpenseID == nil || *e.ParentExpenseID == ""
}

func (e *CreditExpense) IsRefund() bool {
	return e.ExpenseType == types.CreditExpenseTypeRefund
}

// IsFullyRefunded reports whether a FULL refund was already executed
func (e *CreditExpense) IsFullyRefunded() bool {
	return lo.Contains(e.Tags, types.TagRefundedFull)
}

// AddTags appends audit tags, never removing existing ones
func (e *CreditExpense) AddTags(tags ...string) {
	e.Tags = types.AppendTags(e.Tags, tags...)
}

// BillID returns the bill the row is charged on, empty for purchases
func (e *CreditExpense) BillID() string {
	return lo.FromPtr(e.CreditBillID)
}

// SumAmounts adds the amounts of the given rows
func SumAmounts(items []*CreditExpense) decimal.Decimal {
	return lo.Reduce(items, func(acc decimal.Decimal, item *CreditExpense, _ int) decimal.Decimal {
		return acc.Add(item.Amount)
	}, decimal.Zero)
}

// FromEnt converts an ent CreditExpense to a domain CreditExpense
func FromEnt(e *ent.CreditExpense) *CreditExpense {
	if e == nil {
		return nil
	}
	tags := e.Tags
	if tags == nil {
		tags = pq.StringArray{}
	}
	return &CreditExpense{
		ID:                e.ID,
		CreditCardID:      e.CreditCardID,
		Description:       e.Description,
		Amount:            e.Amount,
		PurchaseDate:      e.PurchaseDate,
		Installments:      e.Installments,
		InstallmentNumber: e.InstallmentNumber,
		ExpenseType:       e.ExpenseType,
		ParentExpenseID:   e.ParentExpenseID,
		CreditBillID:      e.CreditBillID,
		DueDate:           e.DueDate,
		Tags:              tags,
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

func FromEntList(list []*ent.CreditExpense) []*CreditExpense {
	return lo.Map(list, func(e *ent.CreditExpense, _ int) *CreditExpense {
		return FromEnt(e)
	})
}

package creditbill

import (
	"time"

	"github.com/pocketwise/pocketwise/ent"
	"github.com/pocketwise/pocketwise/internal/types"
	"github.com/shopspring/decimal"
)

// CreditIncome is a credit line reducing the total of a bill. Amount is
// always positive.
type CreditIncome struct {
	ID                string          `db:"id" json:"id"`
	CreditCardID      string          `db:"credit_card_id" json:"credit_card_id"`
	CreditBillID      string          `db:"credit_bill_id" json:"credit_bill_id"`
	CreditExpenseID   string          `db:"credit_expense_id" json:"credit_expense_id"`
	Description       string          `db:"description" json:"description"`
	Amount            decimal.Decimal `db:"amount" json:"amount"`
	InstallmentNumber int             `db:"installment_number" json:"installment_number"`
	Date              time.Time       `db:"date" json:"date"`

	types.BaseModel
}

func CreditFromEnt(e *ent.CreditIncome) *CreditIncome {
	if e == nil {
		return nil
	}
	return &CreditIncome{
		ID:                e.ID,
		CreditCardID:      e.CreditCardID,
		CreditBillID:      e.CreditBillID,
		CreditExpenseID:   e.CreditExpenseID,
		Description:       e.Description,
		Amount:            e.Amount,
		InstallmentNumber: e.InstallmentNumber,
		Date:              e.Date,
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

func CreditFromEntList(list []*ent.CreditIncome) []*CreditIncome {
	credits := make([]*CreditIncome, len(list))
	for i, e := range list {
		credits[i] = CreditFromEnt(e)
	}
	return credits
}

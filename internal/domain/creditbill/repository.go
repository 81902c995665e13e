package creditbill

import (
	"context"
	"time"

	"github.com/pocketwise/pocketwise/internal/types"
)

// Repository defines persistence operations for bills
type Repository interface {
	Create(ctx context.Context, bill *CreditBill) error
	Get(ctx context.Context, id string) (*CreditBill, error)
	GetByClosingDate(ctx context.Context, creditCardID string, closingDate time.Time) (*CreditBill, error)
	// GetOrCreate returns the bill of the card for bill.ClosingDate, inserting
	// bill when none exists. Concurrent callers get the same row.
	GetOrCreate(ctx context.Context, bill *CreditBill) (*CreditBill, error)
	List(ctx context.Context, filter *types.CreditBillFilter) ([]*CreditBill, error)
	Count(ctx context.Context, filter *types.CreditBillFilter) (int, error)
	Update(ctx context.Context, bill *CreditBill) error
}

// CreditRepository defines persistence operations for credit lines
type CreditRepository interface {
	CreateBulk(ctx context.Context, credits []*CreditIncome) error
	List(ctx context.Context, filter *types.CreditIncomeFilter) ([]*CreditIncome, error)
	Delete(ctx context.Context, ids []string) error
}

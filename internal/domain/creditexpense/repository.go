package creditexpense

import (
	"context"

	"github.com/pocketwise/pocketwise/internal/types"
)

// Repository defines persistence operations for purchases, installments and
// refund records
type Repository interface {
	Create(ctx context.Context, expense *CreditExpense) error
	CreateBulk(ctx context.Context, expenses []*CreditExpense) error
	Get(ctx context.Context, id string) (*CreditExpense, error)
	// GetForUpdate loads the expense and locks its row until the surrounding
	// transaction ends. Concurrent refunds of the same purchase serialize here.
	GetForUpdate(ctx context.Context, id string) (*CreditExpense, error)
	List(ctx context.Context, filter *types.CreditExpenseFilter) ([]*CreditExpense, error)
	Count(ctx context.Context, filter *types.CreditExpenseFilter) (int, error)
	Update(ctx context.Context, expense *CreditExpense) error
	// Delete soft deletes the given rows
	Delete(ctx context.Context, ids []string) error
}

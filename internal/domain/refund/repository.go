package refund

import "context"

// Repository persists the refund ledger. Entries are never updated.
type Repository interface {
	Create(ctx context.Context, event *RefundEvent) error
	ListByCreditExpense(ctx context.Context, creditExpenseID string) ([]*RefundEvent, error)
}

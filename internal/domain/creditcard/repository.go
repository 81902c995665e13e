package creditcard

import (
	"context"

	"github.com/pocketwise/pocketwise/internal/types"
)

// Repository defines persistence operations for credit cards. Every method
// is scoped to the user in the context.
type Repository interface {
	Create(ctx context.Context, card *CreditCard) error
	Get(ctx context.Context, id string) (*CreditCard, error)
	List(ctx context.Context, filter *types.CreditCardFilter) ([]*CreditCard, error)
	Count(ctx context.Context, filter *types.CreditCardFilter) (int, error)
	Update(ctx context.Context, card *CreditCard) error
	Delete(ctx context.Context, id string) error
	// ListUserIDs returns every user owning at least one active card. It is
	// not scoped to the context user and only serves system jobs.
	ListUserIDs(ctx context.Context) ([]string, error)
}

package testutil

import (
	"context"
	"sort"

	"github.com/pocketwise/pocketwise/internal/domain/creditcard"
	ierr "github.com/pocketwise/pocketwise/internal/errors"
	"github.com/pocketwise/pocketwise/internal/types"
	"github.com/samber/lo"
)

// InMemoryCreditCardStore implements creditcard.Repository
type InMemoryCreditCardStore struct {
	*InMemoryStore[*creditcard.CreditCard]
}

func NewInMemoryCreditCardStore() *InMemoryCreditCardStore {
	return &InMemoryCreditCardStore{
		InMemoryStore: NewInMemoryStore[*creditcard.CreditCard](),
	}
}

func copyCreditCard(c *creditcard.CreditCard) *creditcard.CreditCard {
	if c == nil {
		return nil
	}
	copied := *c
	return &copied
}

func creditCardFilterFn(ctx context.Context, c *creditcard.CreditCard, filter interface{}) bool {
	if !CheckUserScope(ctx, c.BaseModel) {
		return false
	}
	f, ok := filter.(*types.CreditCardFilter)
	if !ok || f == nil {
		return true
	}
	return len(f.CreditCardIDs) == 0 || lo.Contains(f.CreditCardIDs, c.ID)
}

func creditCardSortFn(i, j *creditcard.CreditCard) bool {
	return i.CreatedAt.Before(j.CreatedAt)
}

func (s *InMemoryCreditCardStore) Create(ctx context.Context, c *creditcard.CreditCard) error {
	return s.InMemoryStore.Create(ctx, c.ID, copyCreditCard(c))
}

func (s *InMemoryCreditCardStore) Get(ctx context.Context, id string) (*creditcard.CreditCard, error) {
	c, err := s.InMemoryStore.Get(ctx, id)
	if err != nil || !CheckUserScope(ctx, c.BaseModel) {
		return nil, ierr.NewErrorf("credit card %s not found", id).
			WithHint("Credit card not found").
			Mark(ierr.ErrNotFound)
	}
	return copyCreditCard(c), nil
}

func (s *InMemoryCreditCardStore) List(ctx context.Context, filter *types.CreditCardFilter) ([]*creditcard.CreditCard, error) {
	cards, err := s.InMemoryStore.List(ctx, filter, creditCardFilterFn, creditCardSortFn)
	if err != nil {
		return nil, err
	}
	return lo.Map(cards, func(c *creditcard.CreditCard, _ int) *creditcard.CreditCard {
		return copyCreditCard(c)
	}), nil
}

func (s *InMemoryCreditCardStore) Count(ctx context.Context, filter *types.CreditCardFilter) (int, error) {
	return s.InMemoryStore.Count(ctx, filter, creditCardFilterFn)
}

func (s *InMemoryCreditCardStore) Update(ctx context.Context, c *creditcard.CreditCard) error {
	if _, err := s.Get(ctx, c.ID); err != nil {
		return err
	}
	return s.InMemoryStore.Update(ctx, c.ID, copyCreditCard(c))
}

func (s *InMemoryCreditCardStore) Delete(ctx context.Context, id string) error {
	c, err := s.Get(ctx, id)
	if err != nil {
		return err
	}
	c.Status = types.StatusDeleted
	c.Touch(ctx)
	return s.InMemoryStore.Update(ctx, id, c)
}

func (s *InMemoryCreditCardStore) ListUserIDs(ctx context.Context) ([]string, error) {
	cards, err := s.InMemoryStore.List(ctx, nil, func(_ context.Context, c *creditcard.CreditCard, _ interface{}) bool {
		return c.Status == types.StatusActive
	}, nil)
	if err != nil {
		return nil, err
	}
	userIDs := lo.Uniq(lo.Map(cards, func(c *creditcard.CreditCard, _ int) string {
		return c.UserID
	}))
	sort.Strings(userIDs)
	return userIDs, nil
}

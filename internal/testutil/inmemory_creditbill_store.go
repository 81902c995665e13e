package testutil

import (
	"context"
	"sync"
	"time"

	"github.com/pocketwise/pocketwise/internal/domain/creditbill"
	ierr "github.com/pocketwise/pocketwise/internal/errors"
	"github.com/pocketwise/pocketwise/internal/types"
	"github.com/samber/lo"
)

// InMemoryCreditBillStore implements creditbill.Repository
type InMemoryCreditBillStore struct {
	*InMemoryStore[*creditbill.CreditBill]
	createMu sync.Mutex
}

func NewInMemoryCreditBillStore() *InMemoryCreditBillStore {
	return &InMemoryCreditBillStore{
		InMemoryStore: NewInMemoryStore[*creditbill.CreditBill](),
	}
}

func copyCreditBill(b *creditbill.CreditBill) *creditbill.CreditBill {
	if b == nil {
		return nil
	}
	copied := *b
	return &copied
}

func creditBillFilterFn(ctx context.Context, b *creditbill.CreditBill, filter interface{}) bool {
	if !CheckUserScope(ctx, b.BaseModel) {
		return false
	}
	f, ok := filter.(*types.CreditBillFilter)
	if !ok || f == nil {
		return true
	}
	if f.CreditCardID != "" && b.CreditCardID != f.CreditCardID {
		return false
	}
	if len(f.CreditBillIDs) > 0 && !lo.Contains(f.CreditBillIDs, b.ID) {
		return false
	}
	if len(f.BillStatus) > 0 && !lo.Contains(f.BillStatus, b.BillStatus) {
		return false
	}
	return true
}

func creditBillSortFn(i, j *creditbill.CreditBill) bool {
	return i.ClosingDate.Before(j.ClosingDate)
}

func (s *InMemoryCreditBillStore) Create(ctx context.Context, b *creditbill.CreditBill) error {
	if _, err := s.GetByClosingDate(ctx, b.CreditCardID, b.ClosingDate); err == nil {
		return ierr.NewErrorf("credit bill for %s already exists", b.ClosingDate.Format(time.DateOnly)).
			Mark(ierr.ErrAlreadyExists)
	}
	return s.InMemoryStore.Create(ctx, b.ID, copyCreditBill(b))
}

func (s *InMemoryCreditBillStore) Get(ctx context.Context, id string) (*creditbill.CreditBill, error) {
	b, err := s.InMemoryStore.Get(ctx, id)
	if err != nil || !CheckUserScope(ctx, b.BaseModel) {
		return nil, ierr.NewErrorf("credit bill %s not found", id).
			WithHint("Credit bill not found").
			Mark(ierr.ErrNotFound)
	}
	return copyCreditBill(b), nil
}

func (s *InMemoryCreditBillStore) GetByClosingDate(ctx context.Context, creditCardID string, closingDate time.Time) (*creditbill.CreditBill, error) {
	bills, err := s.InMemoryStore.List(ctx, nil, func(ctx context.Context, b *creditbill.CreditBill, _ interface{}) bool {
		return CheckUserScope(ctx, b.BaseModel) &&
			b.CreditCardID == creditCardID &&
			b.ClosingDate.Equal(closingDate)
	}, nil)
	if err != nil {
		return nil, err
	}
	if len(bills) == 0 {
		return nil, ierr.NewErrorf("credit bill closing on %s not found", closingDate.Format(time.DateOnly)).
			Mark(ierr.ErrNotFound)
	}
	return copyCreditBill(bills[0]), nil
}

func (s *InMemoryCreditBillStore) GetOrCreate(ctx context.Context, b *creditbill.CreditBill) (*creditbill.CreditBill, error) {
	s.createMu.Lock()
	defer s.createMu.Unlock()

	existing, err := s.GetByClosingDate(ctx, b.CreditCardID, b.ClosingDate)
	if err == nil {
		return existing, nil
	}
	if err := s.InMemoryStore.Create(ctx, b.ID, copyCreditBill(b)); err != nil {
		return nil, err
	}
	return copyCreditBill(b), nil
}

func (s *InMemoryCreditBillStore) List(ctx context.Context, filter *types.CreditBillFilter) ([]*creditbill.CreditBill, error) {
	bills, err := s.InMemoryStore.List(ctx, filter, creditBillFilterFn, creditBillSortFn)
	if err != nil {
		return nil, err
	}
	return lo.Map(bills, func(b *creditbill.CreditBill, _ int) *creditbill.CreditBill {
		return copyCreditBill(b)
	}), nil
}

func (s *InMemoryCreditBillStore) Count(ctx context.Context, filter *types.CreditBillFilter) (int, error) {
	return s.InMemoryStore.Count(ctx, filter, creditBillFilterFn)
}

func (s *InMemoryCreditBillStore) Update(ctx context.Context, b *creditbill.CreditBill) error {
	if _, err := s.Get(ctx, b.ID); err != nil {
		return err
	}
	return s.InMemoryStore.Update(ctx, b.ID, copyCreditBill(b))
}

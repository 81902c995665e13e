package testutil

import (
	"context"

	"github.com/lib/pq"
	"github.com/pocketwise/pocketwise/internal/domain/creditexpense"
	ierr "github.com/pocketwise/pocketwise/internal/errors"
	"github.com/pocketwise/pocketwise/internal/types"
	"github.com/samber/lo"
)

// InMemoryCreditExpenseStore implements creditexpense.Repository
type InMemoryCreditExpenseStore struct {
	*InMemoryStore[*creditexpense.CreditExpense]
}

func NewInMemoryCreditExpenseStore() *InMemoryCreditExpenseStore {
	return &InMemoryCreditExpenseStore{
		InMemoryStore: NewInMemoryStore[*creditexpense.CreditExpense](),
	}
}

func copyCreditExpense(e *creditexpense.CreditExpense) *creditexpense.CreditExpense {
	if e == nil {
		return nil
	}
	copied := *e
	copied.Tags = append(pq.StringArray{}, e.Tags...)
	return &copied
}

func creditExpenseFilterFn(ctx context.Context, e *creditexpense.CreditExpense, filter interface{}) bool {
	if !CheckUserScope(ctx, e.BaseModel) {
		return false
	}
	f, ok := filter.(*types.CreditExpenseFilter)
	if !ok || f == nil {
		return true
	}
	if f.CreditCardID != "" && e.CreditCardID != f.CreditCardID {
		return false
	}
	if len(f.ParentExpenseIDs) > 0 && !lo.Contains(f.ParentExpenseIDs, lo.FromPtr(e.ParentExpenseID)) {
		return false
	}
	if len(f.CreditBillIDs) > 0 && !lo.Contains(f.CreditBillIDs, e.BillID()) {
		return false
	}
	if len(f.Types) > 0 && !lo.Contains(f.Types, e.ExpenseType) {
		return false
	}
	if f.RootOnly && !e.IsRoot() {
		return false
	}
	return true
}

func creditExpenseSortFn(i, j *creditexpense.CreditExpense) bool {
	if i.InstallmentNumber != j.InstallmentNumber {
		return i.InstallmentNumber < j.InstallmentNumber
	}
	return i.CreatedAt.Before(j.CreatedAt)
}

func (s *InMemoryCreditExpenseStore) Create(ctx context.Context, e *creditexpense.CreditExpense) error {
	return s.InMemoryStore.Create(ctx, e.ID, copyCreditExpense(e))
}

func (s *InMemoryCreditExpenseStore) CreateBulk(ctx context.Context, expenses []*creditexpense.CreditExpense) error {
	for _, e := range expenses {
		if err := s.Create(ctx, e); err != nil {
			return err
		}
	}
	return nil
}

func (s *InMemoryCreditExpenseStore) Get(ctx context.Context, id string) (*creditexpense.CreditExpense, error) {
	e, err := s.InMemoryStore.Get(ctx, id)
	if err != nil || !CheckUserScope(ctx, e.BaseModel) {
		return nil, ierr.NewErrorf("credit expense %s not found", id).
			WithHint("Credit expense not found").
			Mark(ierr.ErrNotFound)
	}
	return copyCreditExpense(e), nil
}

// GetForUpdate behaves like Get. The mock client serializes transactions.
func (s *InMemoryCreditExpenseStore) GetForUpdate(ctx context.Context, id string) (*creditexpense.CreditExpense, error) {
	return s.Get(ctx, id)
}

func (s *InMemoryCreditExpenseStore) List(ctx context.Context, filter *types.CreditExpenseFilter) ([]*creditexpense.CreditExpense, error) {
	expenses, err := s.InMemoryStore.List(ctx, filter, creditExpenseFilterFn, creditExpenseSortFn)
	if err != nil {
		return nil, err
	}
	return lo.Map(expenses, func(e *creditexpense.CreditExpense, _ int) *creditexpense.CreditExpense {
		return copyCreditExpense(e)
	}), nil
}

func (s *InMemoryCreditExpenseStore) Count(ctx context.Context, filter *types.CreditExpenseFilter) (int, error) {
	return s.InMemoryStore.Count(ctx, filter, creditExpenseFilterFn)
}

func (s *InMemoryCreditExpenseStore) Update(ctx context.Context, e *creditexpense.CreditExpense) error {
	if _, err := s.Get(ctx, e.ID); err != nil {
		return err
	}
	return s.InMemoryStore.Update(ctx, e.ID, copyCreditExpense(e))
}

func (s *InMemoryCreditExpenseStore) Delete(ctx context.Context, ids []string) error {
	for _, id := range ids {
		e, err := s.Get(ctx, id)
		if err != nil {
			return err
		}
		e.Status = types.StatusDeleted
		e.Touch(ctx)
		if err := s.InMemoryStore.Update(ctx, id, e); err != nil {
			return err
		}
	}
	return nil
}

// Raw returns a row regardless of its status or owner
func (s *InMemoryCreditExpenseStore) Raw(ctx context.Context, id string) (*creditexpense.CreditExpense, error) {
	e, err := s.InMemoryStore.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	return copyCreditExpense(e), nil
}

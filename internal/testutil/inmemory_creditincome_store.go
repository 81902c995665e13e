package testutil

import (
	"context"

	"github.com/pocketwise/pocketwise/internal/domain/creditbill"
	"github.com/pocketwise/pocketwise/internal/types"
	"github.com/samber/lo"
)

// InMemoryCreditIncomeStore implements creditbill.CreditRepository
type InMemoryCreditIncomeStore struct {
	*InMemoryStore[*creditbill.CreditIncome]
}

func NewInMemoryCreditIncomeStore() *InMemoryCreditIncomeStore {
	return &InMemoryCreditIncomeStore{
		InMemoryStore: NewInMemoryStore[*creditbill.CreditIncome](),
	}
}

func copyCreditIncome(c *creditbill.CreditIncome) *creditbill.CreditIncome {
	if c == nil {
		return nil
	}
	copied := *c
	return &copied
}

func creditIncomeFilterFn(ctx context.Context, c *creditbill.CreditIncome, filter interface{}) bool {
	if !CheckUserScope(ctx, c.BaseModel) {
		return false
	}
	f, ok := filter.(*types.CreditIncomeFilter)
	if !ok || f == nil {
		return true
	}
	if f.CreditCardID != "" && c.CreditCardID != f.CreditCardID {
		return false
	}
	if len(f.CreditBillIDs) > 0 && !lo.Contains(f.CreditBillIDs, c.CreditBillID) {
		return false
	}
	if len(f.CreditExpenseIDs) > 0 && !lo.Contains(f.CreditExpenseIDs, c.CreditExpenseID) {
		return false
	}
	return true
}

func creditIncomeSortFn(i, j *creditbill.CreditIncome) bool {
	if !i.Date.Equal(j.Date) {
		return i.Date.Before(j.Date)
	}
	return i.InstallmentNumber < j.InstallmentNumber
}

func (s *InMemoryCreditIncomeStore) CreateBulk(ctx context.Context, credits []*creditbill.CreditIncome) error {
	for _, c := range credits {
		if err := s.InMemoryStore.Create(ctx, c.ID, copyCreditIncome(c)); err != nil {
			return err
		}
	}
	return nil
}

func (s *InMemoryCreditIncomeStore) List(ctx context.Context, filter *types.CreditIncomeFilter) ([]*creditbill.CreditIncome, error) {
	credits, err := s.InMemoryStore.List(ctx, filter, creditIncomeFilterFn, creditIncomeSortFn)
	if err != nil {
		return nil, err
	}
	return lo.Map(credits, func(c *creditbill.CreditIncome, _ int) *creditbill.CreditIncome {
		return copyCreditIncome(c)
	}), nil
}

func (s *InMemoryCreditIncomeStore) Delete(ctx context.Context, ids []string) error {
	for _, id := range ids {
		c, err := s.InMemoryStore.Get(ctx, id)
		if err != nil {
			return err
		}
		deleted := copyCreditIncome(c)
		deleted.Status = types.StatusDeleted
		deleted.Touch(ctx)
		if err := s.InMemoryStore.Update(ctx, id, deleted); err != nil {
			return err
		}
	}
	return nil
}

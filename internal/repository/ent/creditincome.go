package ent

import (
	"context"
	"time"

	"github.com/pocketwise/pocketwise/ent"
	"github.com/pocketwise/pocketwise/ent/creditincome"
	domainCreditBill "github.com/pocketwise/pocketwise/internal/domain/creditbill"
	"github.com/pocketwise/pocketwise/internal/logger"
	"github.com/pocketwise/pocketwise/internal/postgres"
	"github.com/pocketwise/pocketwise/internal/types"
)

type creditIncomeRepository struct {
	client    postgres.IClient
	log       *logger.Logger
	queryOpts CreditIncomeQueryOptions
}

// NewCreditIncomeRepository stores the credit lines of bills
func NewCreditIncomeRepository(client postgres.IClient, log *logger.Logger) domainCreditBill.CreditRepository {
	return &creditIncomeRepository{
		client:    client,
		log:       log,
		queryOpts: CreditIncomeQueryOptions{},
	}
}

func (r *creditIncomeRepository) CreateBulk(ctx context.Context, credits []*domainCreditBill.CreditIncome) error {
	if len(credits) == 0 {
		return nil
	}

	r.log.Debugw("creating credit lines", "count", len(credits))

	client := r.client.Querier(ctx)
	builders := make([]*ent.CreditIncomeCreate, len(credits))
	for i, c := range credits {
		builders[i] = client.CreditIncome.Create().
			SetID(c.ID).
			SetUserID(c.UserID).
			SetCreditCardID(c.CreditCardID).
			SetCreditBillID(c.CreditBillID).
			SetCreditExpenseID(c.CreditExpenseID).
			SetDescription(c.Description).
			SetAmount(c.Amount).
			SetInstallmentNumber(c.InstallmentNumber).
			SetDate(c.Date).
			SetStatus(string(c.Status)).
			SetCreatedAt(c.CreatedAt).
			SetUpdatedAt(c.UpdatedAt).
			SetCreatedBy(c.CreatedBy).
			SetUpdatedBy(c.UpdatedBy)
	}

	if err := client.CreditIncome.CreateBulk(builders...).Exec(ctx); err != nil {
		return dbError(err, "failed to create credit lines")
	}
	return nil
}

func (r *creditIncomeRepository) List(ctx context.Context, filter *types.CreditIncomeFilter) ([]*domainCreditBill.CreditIncome, error) {
	if filter == nil {
		filter = types.NewNoLimitCreditIncomeFilter()
	}

	query := r.client.Querier(ctx).CreditIncome.Query()
	query = ApplyQueryOptions(ctx, query, filter.QueryFilter, "date", r.queryOpts)
	query = r.queryOpts.applyEntityQueryOptions(ctx, filter, query)

	credits, err := query.All(ctx)
	if err != nil {
		return nil, dbError(err, "failed to list credit lines")
	}
	return domainCreditBill.CreditFromEntList(credits), nil
}

func (r *creditIncomeRepository) Delete(ctx context.Context, ids []string) error {
	if len(ids) == 0 {
		return nil
	}

	userID := types.GetUserID(ctx)
	_, err := r.client.Querier(ctx).CreditIncome.Update().
		Where(
			creditincome.IDIn(ids...),
			creditincome.UserID(userID),
			creditincome.Status(string(types.StatusActive)),
		).
		SetStatus(string(types.StatusDeleted)).
		SetUpdatedAt(time.Now().UTC()).
		SetUpdatedBy(userID).
		Save(ctx)
	if err != nil {
		return dbError(err, "failed to delete credit lines")
	}
	return nil
}

// CreditIncomeQuery type alias for better readability
type CreditIncomeQuery = *ent.CreditIncomeQuery

// CreditIncomeQueryOptions implements BaseQueryOptions for credit line queries
type CreditIncomeQueryOptions struct{}

func (o CreditIncomeQueryOptions) ApplyUserFilter(ctx context.Context, query CreditIncomeQuery) CreditIncomeQuery {
	return query.Where(creditincome.UserID(types.GetUserID(ctx)))
}

func (o CreditIncomeQueryOptions) ApplyStatusFilter(query CreditIncomeQuery, status string) CreditIncomeQuery {
	if status == "" {
		return query.Where(creditincome.StatusNotIn(string(types.StatusDeleted)))
	}
	return query.Where(creditincome.Status(status))
}

func (o CreditIncomeQueryOptions) ApplySortFilter(query CreditIncomeQuery, field string, order string) CreditIncomeQuery {
	orderFunc := ent.Desc
	if order == types.OrderAsc {
		orderFunc = ent.Asc
	}
	return query.Order(orderFunc(o.GetFieldName(field), creditincome.FieldID))
}

func (o CreditIncomeQueryOptions) ApplyPaginationFilter(query CreditIncomeQuery, limit int, offset int) CreditIncomeQuery {
	if limit > 0 {
		query = query.Limit(limit)
	}
	if offset > 0 {
		query = query.Offset(offset)
	}
	return query
}

func (o CreditIncomeQueryOptions) GetFieldName(field string) string {
	switch field {
	case "date":
		return creditincome.FieldDate
	case "created_at":
		return creditincome.FieldCreatedAt
	default:
		return field
	}
}

func (o CreditIncomeQueryOptions) applyEntityQueryOptions(_ context.Context, f *types.CreditIncomeFilter, query CreditIncomeQuery) CreditIncomeQuery {
	if f == nil {
		return query
	}
	if f.CreditCardID != "" {
		query = query.Where(creditincome.CreditCardID(f.CreditCardID))
	}
	if len(f.CreditBillIDs) > 0 {
		query = query.Where(creditincome.CreditBillIDIn(f.CreditBillIDs...))
	}
	if len(f.CreditExpenseIDs) > 0 {
		query = query.Where(creditincome.CreditExpenseIDIn(f.CreditExpenseIDs...))
	}
	return query
}

package ent

import (
	"context"
	"time"

	"github.com/lib/pq"
	"github.com/pocketwise/pocketwise/ent"
	"github.com/pocketwise/pocketwise/ent/creditexpense"
	domainCreditExpense "github.com/pocketwise/pocketwise/internal/domain/creditexpense"
	"github.com/pocketwise/pocketwise/internal/logger"
	"github.com/pocketwise/pocketwise/internal/postgres"
	"github.com/pocketwise/pocketwise/internal/types"
	"github.com/samber/lo"
)

type creditExpenseRepository struct {
	client    postgres.IClient
	log       *logger.Logger
	queryOpts CreditExpenseQueryOptions
}

func NewCreditExpenseRepository(client postgres.IClient, log *logger.Logger) domainCreditExpense.Repository {
	return &creditExpenseRepository{
		client:    client,
		log:       log,
		queryOpts: CreditExpenseQueryOptions{},
	}
}

func (r *creditExpenseRepository) builder(client *ent.Client, e *domainCreditExpense.CreditExpense) *ent.CreditExpenseCreate {
	return client.CreditExpense.Create().
		SetID(e.ID).
		SetUserID(e.UserID).
		SetCreditCardID(e.CreditCardID).
		SetDescription(e.Description).
		SetAmount(e.Amount).
		SetPurchaseDate(e.PurchaseDate).
		SetInstallments(e.Installments).
		SetInstallmentNumber(e.InstallmentNumber).
		SetExpenseType(e.ExpenseType).
		SetNillableParentExpenseID(lo.EmptyableToPtr(lo.FromPtr(e.ParentExpenseID))).
		SetNillableCreditBillID(lo.EmptyableToPtr(e.BillID())).
		SetNillableDueDate(e.DueDate).
		SetTags(tagsOrEmpty(e.Tags)).
		SetStatus(string(e.Status)).
		SetCreatedAt(e.CreatedAt).
		SetUpdatedAt(e.UpdatedAt).
		SetCreatedBy(e.CreatedBy).
		SetUpdatedBy(e.UpdatedBy)
}

func (r *creditExpenseRepository) Create(ctx context.Context, e *domainCreditExpense.CreditExpense) error {
	r.log.Debugw("creating credit expense",
		"credit_expense_id", e.ID,
		"credit_card_id", e.CreditCardID,
		"type", e.ExpenseType,
	)

	if _, err := r.builder(r.client.Querier(ctx), e).Save(ctx); err != nil {
		return dbError(err, "failed to create credit expense")
	}
	return nil
}

func (r *creditExpenseRepository) CreateBulk(ctx context.Context, expenses []*domainCreditExpense.CreditExpense) error {
	if len(expenses) == 0 {
		return nil
	}

	r.log.Debugw("creating credit expenses in bulk", "count", len(expenses))

	client := r.client.Querier(ctx)
	builders := make([]*ent.CreditExpenseCreate, len(expenses))
	for i, e := range expenses {
		builders[i] = r.builder(client, e)
	}

	if err := client.CreditExpense.CreateBulk(builders...).Exec(ctx); err != nil {
		return dbError(err, "failed to create credit expenses")
	}
	return nil
}

func (r *creditExpenseRepository) Get(ctx context.Context, id string) (*domainCreditExpense.CreditExpense, error) {
	query := r.client.Querier(ctx).CreditExpense.Query().
		Where(creditexpense.ID(id))
	query = ApplyBaseFilters(ctx, query, r.queryOpts)

	e, err := query.Only(ctx)
	if err != nil {
		return nil, notFound(err, "credit expense", id)
	}
	return domainCreditExpense.FromEnt(e), nil
}

// GetForUpdate locks the row until the surrounding transaction ends
func (r *creditExpenseRepository) GetForUpdate(ctx context.Context, id string) (*domainCreditExpense.CreditExpense, error) {
	if r.client.TxFromContext(ctx) == nil {
		r.log.Warnw("row lock requested outside of a transaction", "credit_expense_id", id)
	}

	query := r.client.Querier(ctx).CreditExpense.Query().
		Where(creditexpense.ID(id))
	query = ApplyBaseFilters(ctx, query, r.queryOpts)

	e, err := query.ForUpdate().Only(ctx)
	if err != nil {
		return nil, notFound(err, "credit expense", id)
	}
	return domainCreditExpense.FromEnt(e), nil
}

func (r *creditExpenseRepository) List(ctx context.Context, filter *types.CreditExpenseFilter) ([]*domainCreditExpense.CreditExpense, error) {
	if filter == nil {
		filter = types.NewNoLimitCreditExpenseFilter()
	}

	query := r.client.Querier(ctx).CreditExpense.Query()
	query = ApplyQueryOptions(ctx, query, filter.QueryFilter, "purchase_date", r.queryOpts)
	query = r.queryOpts.applyEntityQueryOptions(ctx, filter, query)

	expenses, err := query.All(ctx)
	if err != nil {
		return nil, dbError(err, "failed to list credit expenses")
	}
	return domainCreditExpense.FromEntList(expenses), nil
}

func (r *creditExpenseRepository) Count(ctx context.Context, filter *types.CreditExpenseFilter) (int, error) {
	query := r.client.Querier(ctx).CreditExpense.Query()
	query = ApplyBaseFilters(ctx, query, r.queryOpts)
	query = r.queryOpts.applyEntityQueryOptions(ctx, filter, query)

	count, err := query.Count(ctx)
	if err != nil {
		return 0, dbError(err, "failed to count credit expenses")
	}
	return count, nil
}

// Update writes the mutable columns. Soft deleted rows can be updated so
// their tags stay auditable.
func (r *creditExpenseRepository) Update(ctx context.Context, e *domainCreditExpense.CreditExpense) error {
	r.log.Debugw("updating credit expense",
		"credit_expense_id", e.ID,
		"tags", e.Tags,
	)

	update := r.client.Querier(ctx).CreditExpense.Update().
		Where(
			creditexpense.ID(e.ID),
			creditexpense.UserID(e.UserID),
		).
		SetDescription(e.Description).
		SetAmount(e.Amount).
		SetTags(tagsOrEmpty(e.Tags)).
		SetStatus(string(e.Status)).
		SetUpdatedAt(e.UpdatedAt).
		SetUpdatedBy(e.UpdatedBy)

	if billID := e.BillID(); billID != "" {
		update.SetCreditBillID(billID)
	} else {
		update.ClearCreditBill()
	}
	if e.DueDate != nil {
		update.SetDueDate(*e.DueDate)
	} else {
		update.ClearDueDate()
	}

	n, err := update.Save(ctx)
	if err != nil {
		return dbError(err, "failed to update credit expense")
	}
	return affected(n, "credit expense", e.ID)
}

func (r *creditExpenseRepository) Delete(ctx context.Context, ids []string) error {
	if len(ids) == 0 {
		return nil
	}

	r.log.Debugw("deleting credit expenses", "credit_expense_ids", ids)

	userID := types.GetUserID(ctx)
	_, err := r.client.Querier(ctx).CreditExpense.Update().
		Where(
			creditexpense.IDIn(ids...),
			creditexpense.UserID(userID),
			creditexpense.Status(string(types.StatusActive)),
		).
		SetStatus(string(types.StatusDeleted)).
		SetUpdatedAt(time.Now().UTC()).
		SetUpdatedBy(userID).
		Save(ctx)
	if err != nil {
		return dbError(err, "failed to delete credit expenses")
	}
	return nil
}

func tagsOrEmpty(tags pq.StringArray) pq.StringArray {
	if tags == nil {
		return pq.StringArray{}
	}
	return tags
}

// CreditExpenseQuery type alias for better readability
type CreditExpenseQuery = *ent.CreditExpenseQuery

// CreditExpenseQueryOptions implements BaseQueryOptions for credit expense queries
type CreditExpenseQueryOptions struct{}

func (o CreditExpenseQueryOptions) ApplyUserFilter(ctx context.Context, query CreditExpenseQuery) CreditExpenseQuery {
	return query.Where(creditexpense.UserID(types.GetUserID(ctx)))
}

func (o CreditExpenseQueryOptions) ApplyStatusFilter(query CreditExpenseQuery, status string) CreditExpenseQuery {
	if status == "" {
		return query.Where(creditexpense.StatusNotIn(string(types.StatusDeleted)))
	}
	return query.Where(creditexpense.Status(status))
}

func (o CreditExpenseQueryOptions) ApplySortFilter(query CreditExpenseQuery, field string, order string) CreditExpenseQuery {
	orderFunc := ent.Desc
	if order == types.OrderAsc {
		orderFunc = ent.Asc
	}
	return query.Order(orderFunc(o.GetFieldName(field), creditexpense.FieldInstallmentNumber, creditexpense.FieldID))
}

func (o CreditExpenseQueryOptions) ApplyPaginationFilter(query CreditExpenseQuery, limit int, offset int) CreditExpenseQuery {
	if limit > 0 {
		query = query.Limit(limit)
	}
	if offset > 0 {
		query = query.Offset(offset)
	}
	return query
}

func (o CreditExpenseQueryOptions) GetFieldName(field string) string {
	switch field {
	case "purchase_date":
		return creditexpense.FieldPurchaseDate
	case "created_at":
		return creditexpense.FieldCreatedAt
	default:
		return field
	}
}

func (o CreditExpenseQueryOptions) applyEntityQueryOptions(_ context.Context, f *types.CreditExpenseFilter, query CreditExpenseQuery) CreditExpenseQuery {
	if f == nil {
		return query
	}
	if f.CreditCardID != "" {
		query = query.Where(creditexpense.CreditCardID(f.CreditCardID))
	}
	if len(f.ParentExpenseIDs) > 0 {
		query = query.Where(creditexpense.ParentExpenseIDIn(f.ParentExpenseIDs...))
	}
	if len(f.CreditBillIDs) > 0 {
		query = query.Where(creditexpense.CreditBillIDIn(f.CreditBillIDs...))
	}
	if len(f.Types) > 0 {
		query = query.Where(creditexpense.ExpenseTypeIn(f.Types...))
	}
	if f.RootOnly {
		query = query.Where(creditexpense.ParentExpenseIDIsNil())
	}
	return query
}

// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/pocketwise/pocketwise/ent/creditbill"
	"github.com/pocketwise/pocketwise/ent/creditcard"
	"github.com/pocketwise/pocketwise/ent/creditexpense"
	"github.com/pocketwise/pocketwise/ent/creditincome"
	"github.com/pocketwise/pocketwise/ent/refundevent"
	"github.com/shopspring/decimal"
)

// CreditCardCreate is the builder for creating a CreditCard entity.
type CreditCardCreate struct {
	config
	mutation *CreditCardMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetUserID sets the "user_id" field.
func (ccc *CreditCardCreate) SetUserID(s string) *CreditCardCreate {
	ccc.mutation.SetUserID(s)
	return ccc
}

// SetStatus sets the "status" field.
func (ccc *CreditCardCreate) SetStatus(s string) *CreditCardCreate {
	ccc.mutation.SetStatus(s)
	return ccc
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (ccc *CreditCardCreate) SetNillableStatus(s *string) *CreditCardCreate {
	if s != nil {
		ccc.SetStatus(*s)
	}
	return ccc
}

// SetCreatedAt sets the "created_at" field.
func (ccc *CreditCardCreate) SetCreatedAt(t time.Time) *CreditCardCreate {
	ccc.mutation.SetCreatedAt(t)
	return ccc
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (ccc *CreditCardCreate) SetNillableCreatedAt(t *time.Time) *CreditCardCreate {
	if t != nil {
		ccc.SetCreatedAt(*t)
	}
	return ccc
}

// SetUpdatedAt sets the "updated_at" field.
func (ccc *CreditCardCreate) SetUpdatedAt(t time.Time) *CreditCardCreate {
	ccc.mutation.SetUpdatedAt(t)
	return ccc
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (ccc *CreditCardCreate) SetNillableUpdatedAt(t *time.Time) *CreditCardCreate {
	if t != nil {
		ccc.SetUpdatedAt(*t)
	}
	return ccc
}

// SetCreatedBy sets the "created_by" field.
func (ccc *CreditCardCreate) SetCreatedBy(s string) *CreditCardCreate {
	ccc.mutation.SetCreatedBy(s)
	return ccc
}

// SetNillableCreatedBy sets the "created_by" field if the given value is not nil.
func (ccc *CreditCardCreate) SetNillableCreatedBy(s *string) *CreditCardCreate {
	if s != nil {
		ccc.SetCreatedBy(*s)
	}
	return ccc
}

// SetUpdatedBy sets the "updated_by" field.
func (ccc *CreditCardCreate) SetUpdatedBy(s string) *CreditCardCreate {
	ccc.mutation.SetUpdatedBy(s)
	return ccc
}

// SetNillableUpdatedBy sets the "updated_by" field if the given value is not nil.
func (ccc *CreditCardCreate) SetNillableUpdatedBy(s *string) *CreditCardCreate {
	if s != nil {
		ccc.SetUpdatedBy(*s)
	}
	return ccc
}

// SetName sets the "name" field.
func (ccc *CreditCardCreate) SetName(s string) *CreditCardCreate {
	ccc.mutation.SetName(s)
	return ccc
}

// SetClosingDay sets the "closing_day" field.
func (ccc *CreditCardCreate) SetClosingDay(i int) *CreditCardCreate {
	ccc.mutation.SetClosingDay(i)
	return ccc
}

// SetDueDay sets the "due_day" field.
func (ccc *CreditCardCreate) SetDueDay(i int) *CreditCardCreate {
	ccc.mutation.SetDueDay(i)
	return ccc
}

// SetCreditLimit sets the "credit_limit" field.
func (ccc *CreditCardCreate) SetCreditLimit(d decimal.Decimal) *CreditCardCreate {
	ccc.mutation.SetCreditLimit(d)
	return ccc
}

// SetNillableCreditLimit sets the "credit_limit" field if the given value is not nil.
func (ccc *CreditCardCreate) SetNillableCreditLimit(d *decimal.Decimal) *CreditCardCreate {
	if d != nil {
		ccc.SetCreditLimit(*d)
	}
	return ccc
}

// SetID sets the "id" field.
func (ccc *CreditCardCreate) SetID(s string) *CreditCardCreate {
	ccc.mutation.SetID(s)
	return ccc
}

// AddCreditBillIDs adds the "credit_bills" edge to the CreditBill entity by IDs.
func (ccc *CreditCardCreate) AddCreditBillIDs(ids ...string) *CreditCardCreate {
	ccc.mutation.AddCreditBillIDs(ids...)
	return ccc
}

// AddCreditBills adds the "credit_bills" edges to the CreditBill entity.
func (ccc *CreditCardCreate) AddCreditBills(c ...*CreditBill) *CreditCardCreate {
	ids := make([]string, len(c))
	for i := range c {
		ids[i] = c[i].ID
	}
	return ccc.AddCreditBillIDs(ids...)
}

// AddCreditExpenseIDs adds the "credit_expenses" edge to the CreditExpense entity by IDs.
func (ccc *CreditCardCreate) AddCreditExpenseIDs(ids ...string) *CreditCardCreate {
	ccc.mutation.AddCreditExpenseIDs(ids...)
	return ccc
}

// AddCreditExpenses adds the "credit_expenses" edges to the CreditExpense entity.
func (ccc *CreditCardCreate) AddCreditExpenses(c ...*CreditExpense) *CreditCardCreate {
	ids := make([]string, len(c))
	for i := range c {
		ids[i] = c[i].ID
	}
	return ccc.AddCreditExpenseIDs(ids...)
}

// AddCreditIncomeIDs adds the "credit_incomes" edge to the CreditIncome entity by IDs.
func (ccc *CreditCardCreate) AddCreditIncomeIDs(ids ...string) *CreditCardCreate {
	ccc.mutation.AddCreditIncomeIDs(ids...)
	return ccc
}

// AddCreditIncomes adds the "credit_incomes" edges to the CreditIncome entity.
func (ccc *CreditCardCreate) AddCreditIncomes(c ...*CreditIncome) *CreditCardCreate {
	ids := make([]string, len(c))
	for i := range c {
		ids[i] = c[i].ID
	}
	return ccc.AddCreditIncomeIDs(ids...)
}

// AddRefundEventIDs adds the "refund_events" edge to the RefundEvent entity by IDs.
func (ccc *CreditCardCreate) AddRefundEventIDs(ids ...string) *CreditCardCreate {
	ccc.mutation.AddRefundEventIDs(ids...)
	return ccc
}

// AddRefundEvents adds the "refund_events" edges to the RefundEvent entity.
func (ccc *CreditCardCreate) AddRefundEvents(r ...*RefundEvent) *CreditCardCreate {
	ids := make([]string, len(r))
	for i := range r {
		ids[i] = r[i].ID
	}
	return ccc.AddRefundEventIDs(ids...)
}

// Mutation returns the CreditCardMutation object of the builder.
func (ccc *CreditCardCreate) Mutation() *CreditCardMutation {
	return ccc.mutation
}

// Save creates the CreditCard in the database.
func (ccc *CreditCardCreate) Save(ctx context.Context) (*CreditCard, error) {
	ccc.defaults()
	return withHooks(ctx, ccc.sqlSave, ccc.mutation, ccc.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (ccc *CreditCardCreate) SaveX(ctx context.Context) *CreditCard {
	v, err := ccc.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (ccc *CreditCardCreate) Exec(ctx context.Context) error {
	_, err := ccc.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (ccc *CreditCardCreate) ExecX(ctx context.Context) {
	if err := ccc.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (ccc *CreditCardCreate) defaults() {
	if _, ok := ccc.mutation.Status(); !ok {
		v := creditcard.DefaultStatus
		ccc.mutation.SetStatus(v)
	}
	if _, ok := ccc.mutation.CreatedAt(); !ok {
		v := creditcard.DefaultCreatedAt()
		ccc.mutation.SetCreatedAt(v)
	}
	if _, ok := ccc.mutation.UpdatedAt(); !ok {
		v := creditcard.DefaultUpdatedAt()
		ccc.mutation.SetUpdatedAt(v)
	}
	if _, ok := ccc.mutation.CreditLimit(); !ok {
		v := creditcard.DefaultCreditLimit
		ccc.mutation.SetCreditLimit(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (ccc *CreditCardCreate) check() error {
	if _, ok := ccc.mutation.UserID(); !ok {
		return &ValidationError{Name: "user_id", err: errors.New(`ent: missing required field "CreditCard.user_id"`)}
	}
	if v, ok := ccc.mutation.UserID(); ok {
		if err := creditcard.UserIDValidator(v); err != nil {
			return &ValidationError{Name: "user_id", err: fmt.Errorf(`ent: validator failed for field "CreditCard.user_id": %w`, err)}
		}
	}
	if _, ok := ccc.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "CreditCard.status"`)}
	}
	if _, ok := ccc.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "CreditCard.created_at"`)}
	}
	if _, ok := ccc.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "CreditCard.updated_at"`)}
	}
	if _, ok := ccc.mutation.Name(); !ok {
		return &ValidationError{Name: "name", err: errors.New(`ent: missing required field "CreditCard.name"`)}
	}
	if v, ok := ccc.mutation.Name(); ok {
		if err := creditcard.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "CreditCard.name": %w`, err)}
		}
	}
	if _, ok := ccc.mutation.ClosingDay(); !ok {
		return &ValidationError{Name: "closing_day", err: errors.New(`ent: missing required field "CreditCard.closing_day"`)}
	}
	if v, ok := ccc.mutation.ClosingDay(); ok {
		if err := creditcard.ClosingDayValidator(v); err != nil {
			return &ValidationError{Name: "closing_day", err: fmt.Errorf(`ent: validator failed for field "CreditCard.closing_day": %w`, err)}
		}
	}
	if _, ok := ccc.mutation.DueDay(); !ok {
		return &ValidationError{Name: "due_day", err: errors.New(`ent: missing required field "CreditCard.due_day"`)}
	}
	if v, ok := ccc.mutation.DueDay(); ok {
		if err := creditcard.DueDayValidator(v); err != nil {
			return &ValidationError{Name: "due_day", err: fmt.Errorf(`ent: validator failed for field "CreditCard.due_day": %w`, err)}
		}
	}
	if _, ok := ccc.mutation.CreditLimit(); !ok {
		return &ValidationError{Name: "credit_limit", err: errors.New(`ent: missing required field "CreditCard.credit_limit"`)}
	}
	return nil
}

func (ccc *CreditCardCreate) sqlSave(ctx context.Context) (*CreditCard, error) {
	if err := ccc.check(); err != nil {
		return nil, err
	}
	_node, _spec := ccc.createSpec()
	if err := sqlgraph.CreateNode(ctx, ccc.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(string); ok {
			_node.ID = id
		} else {
			return nil, fmt.Errorf("unexpected CreditCard.ID type: %T", _spec.ID.Value)
		}
	}
	ccc.mutation.id = &_node.ID
	ccc.mutation.done = true
	return _node, nil
}

func (ccc *CreditCardCreate) createSpec() (*CreditCard, *sqlgraph.CreateSpec) {
	var (
		_node = &CreditCard{config: ccc.config}
		_spec = sqlgraph.NewCreateSpec(creditcard.Table, sqlgraph.NewFieldSpec(creditcard.FieldID, field.TypeString))
	)
	_spec.OnConflict = ccc.conflict
	if id, ok := ccc.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := ccc.mutation.UserID(); ok {
		_spec.SetField(creditcard.FieldUserID, field.TypeString, value)
		_node.UserID = value
	}
	if value, ok := ccc.mutation.Status(); ok {
		_spec.SetField(creditcard.FieldStatus, field.TypeString, value)
		_node.Status = value
	}
	if value, ok := ccc.mutation.CreatedAt(); ok {
		_spec.SetField(creditcard.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := ccc.mutation.UpdatedAt(); ok {
		_spec.SetField(creditcard.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if value, ok := ccc.mutation.CreatedBy(); ok {
		_spec.SetField(creditcard.FieldCreatedBy, field.TypeString, value)
		_node.CreatedBy = value
	}
	if value, ok := ccc.mutation.UpdatedBy(); ok {
		_spec.SetField(creditcard.FieldUpdatedBy, field.TypeString, value)
		_node.UpdatedBy = value
	}
	if value, ok := ccc.mutation.Name(); ok {
		_spec.SetField(creditcard.FieldName, field.TypeString, value)
		_node.Name = value
	}
	if value, ok := ccc.mutation.ClosingDay(); ok {
		_spec.SetField(creditcard.FieldClosingDay, field.TypeInt, value)
		_node.ClosingDay = value
	}
	if value, ok := ccc.mutation.DueDay(); ok {
		_spec.SetField(creditcard.FieldDueDay, field.TypeInt, value)
		_node.DueDay = value
	}
	if value, ok := ccc.mutation.CreditLimit(); ok {
		_spec.SetField(creditcard.FieldCreditLimit, field.TypeOther, value)
		_node.CreditLimit = value
	}
	if nodes := ccc.mutation.CreditBillsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   creditcard.CreditBillsTable,
			Columns: []string{creditcard.CreditBillsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(creditbill.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := ccc.mutation.CreditExpensesIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   creditcard.CreditExpensesTable,
			Columns: []string{creditcard.CreditExpensesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(creditexpense.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := ccc.mutation.CreditIncomesIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   creditcard.CreditIncomesTable,
			Columns: []string{creditcard.CreditIncomesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(creditincome.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := ccc.mutation.RefundEventsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   creditcard.RefundEventsTable,
			Columns: []string{creditcard.RefundEventsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(refundevent.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.CreditCard.Create().
//		SetUserID(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.CreditCardUpsert) {
//			SetUserID(v+v).
//		}).
//		Exec(ctx)
func (ccc *CreditCardCreate) OnConflict(opts ...sql.ConflictOption) *CreditCardUpsertOne {
	ccc.conflict = opts
	return &CreditCardUpsertOne{
		create: ccc,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.CreditCard.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (ccc *CreditCardCreate) OnConflictColumns(columns ...string) *CreditCardUpsertOne {
	ccc.conflict = append(ccc.conflict, sql.ConflictColumns(columns...))
	return &CreditCardUpsertOne{
		create: ccc,
	}
}

type (
	// CreditCardUpsertOne is the builder for "upsert"-ing
	//  one CreditCard node.
	CreditCardUpsertOne struct {
		create *CreditCardCreate
	}

	// CreditCardUpsert is the "OnConflict" setter.
	CreditCardUpsert struct {
		*sql.UpdateSet
	}
)

// SetStatus sets the "status" field.
func (u *CreditCardUpsert) SetStatus(v string) *CreditCardUpsert {
	u.Set(creditcard.FieldStatus, v)
	return u
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *CreditCardUpsert) UpdateStatus() *CreditCardUpsert {
	u.SetExcluded(creditcard.FieldStatus)
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *CreditCardUpsert) SetUpdatedAt(v time.Time) *CreditCardUpsert {
	u.Set(creditcard.FieldUpdatedAt, v)
	return u
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *CreditCardUpsert) UpdateUpdatedAt() *CreditCardUpsert {
	u.SetExcluded(creditcard.FieldUpdatedAt)
	return u
}

// SetUpdatedBy sets the "updated_by" field.
func (u *CreditCardUpsert) SetUpdatedBy(v string) *CreditCardUpsert {
	u.Set(creditcard.FieldUpdatedBy, v)
	return u
}

// UpdateUpdatedBy sets the "updated_by" field to the value that was provided on create.
func (u *CreditCardUpsert) UpdateUpdatedBy() *CreditCardUpsert {
	u.SetExcluded(creditcard.FieldUpdatedBy)
	return u
}

// ClearUpdatedBy clears the value of the "updated_by" field.
func (u *CreditCardUpsert) ClearUpdatedBy() *CreditCardUpsert {
	u.SetNull(creditcard.FieldUpdatedBy)
	return u
}

// SetName sets the "name" field.
func (u *CreditCardUpsert) SetName(v string) *CreditCardUpsert {
	u.Set(creditcard.FieldName, v)
	return u
}

// UpdateName sets the "name" field to the value that was provided on create.
func (u *CreditCardUpsert) UpdateName() *CreditCardUpsert {
	u.SetExcluded(creditcard.FieldName)
	return u
}

// SetClosingDay sets the "closing_day" field.
func (u *CreditCardUpsert) SetClosingDay(v int) *CreditCardUpsert {
	u.Set(creditcard.FieldClosingDay, v)
	return u
}

// UpdateClosingDay sets the "closing_day" field to the value that was provided on create.
func (u *CreditCardUpsert) UpdateClosingDay() *CreditCardUpsert {
	u.SetExcluded(creditcard.FieldClosingDay)
	return u
}

// AddClosingDay adds v to the "closing_day" field.
func (u *CreditCardUpsert) AddClosingDay(v int) *CreditCardUpsert {
	u.Add(creditcard.FieldClosingDay, v)
	return u
}

// SetDueDay sets the "due_day" field.
func (u *CreditCardUpsert) SetDueDay(v int) *CreditCardUpsert {
	u.Set(creditcard.FieldDueDay, v)
	return u
}

// UpdateDueDay sets the "due_day" field to the value that was provided on create.
func (u *CreditCardUpsert) UpdateDueDay() *CreditCardUpsert {
	u.SetExcluded(creditcard.FieldDueDay)
	return u
}

// AddDueDay adds v to the "due_day" field.
func (u *CreditCardUpsert) AddDueDay(v int) *CreditCardUpsert {
	u.Add(creditcard.FieldDueDay, v)
	return u
}

// SetCreditLimit sets the "credit_limit" field.
func (u *CreditCardUpsert) SetCreditLimit(v decimal.Decimal) *CreditCardUpsert {
	u.Set(creditcard.FieldCreditLimit, v)
	return u
}

// UpdateCreditLimit sets the "credit_limit" field to the value that was provided on create.
func (u *CreditCardUpsert) UpdateCreditLimit() *CreditCardUpsert {
	u.SetExcluded(creditcard.FieldCreditLimit)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.CreditCard.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(creditcard.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *CreditCardUpsertOne) UpdateNewValues() *CreditCardUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(creditcard.FieldID)
		}
		if _, exists := u.create.mutation.UserID(); exists {
			s.SetIgnore(creditcard.FieldUserID)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(creditcard.FieldCreatedAt)
		}
		if _, exists := u.create.mutation.CreatedBy(); exists {
			s.SetIgnore(creditcard.FieldCreatedBy)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.CreditCard.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *CreditCardUpsertOne) Ignore() *CreditCardUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *CreditCardUpsertOne) DoNothing() *CreditCardUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the CreditCardCreate.OnConflict
// documentation for more info.
func (u *CreditCardUpsertOne) Update(set func(*CreditCardUpsert)) *CreditCardUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&CreditCardUpsert{UpdateSet: update})
	}))
	return u
}

// SetStatus sets the "status" field.
func (u *CreditCardUpsertOne) SetStatus(v string) *CreditCardUpsertOne {
	return u.Update(func(s *CreditCardUpsert) {
		s.SetStatus(v)
	})
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *CreditCardUpsertOne) UpdateStatus() *CreditCardUpsertOne {
	return u.Update(func(s *CreditCardUpsert) {
		s.UpdateStatus()
	})
}

// SetUpdatedAt sets the "updated_at" field.
func (u *CreditCardUpsertOne) SetUpdatedAt(v time.Time) *CreditCardUpsertOne {
	return u.Update(func(s *CreditCardUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *CreditCardUpsertOne) UpdateUpdatedAt() *CreditCardUpsertOne {
	return u.Update(func(s *CreditCardUpsert) {
		s.UpdateUpdatedAt()
	})
}

// SetUpdatedBy sets the "updated_by" field.
func (u *CreditCardUpsertOne) SetUpdatedBy(v string) *CreditCardUpsertOne {
	return u.Update(func(s *CreditCardUpsert) {
		s.SetUpdatedBy(v)
	})
}

// UpdateUpdatedBy sets the "updated_by" field to the value that was provided on create.
func (u *CreditCardUpsertOne) UpdateUpdatedBy() *CreditCardUpsertOne {
	return u.Update(func(s *CreditCardUpsert) {
		s.UpdateUpdatedBy()
	})
}

// ClearUpdatedBy clears the value of the "updated_by" field.
func (u *CreditCardUpsertOne) ClearUpdatedBy() *CreditCardUpsertOne {
	return u.Update(func(s *CreditCardUpsert) {
		s.ClearUpdatedBy()
	})
}

// SetName sets the "name" field.
func (u *CreditCardUpsertOne) SetName(v string) *CreditCardUpsertOne {
	return u.Update(func(s *CreditCardUpsert) {
		s.SetName(v)
	})
}

// UpdateName sets the "name" field to the value that was provided on create.
func (u *CreditCardUpsertOne) UpdateName() *CreditCardUpsertOne {
	return u.Update(func(s *CreditCardUpsert) {
		s.UpdateName()
	})
}

// SetClosingDay sets the "closing_day" field.
func (u *CreditCardUpsertOne) SetClosingDay(v int) *CreditCardUpsertOne {
	return u.Update(func(s *CreditCardUpsert) {
		s.SetClosingDay(v)
	})
}

// AddClosingDay adds v to the "closing_day" field.
func (u *CreditCardUpsertOne) AddClosingDay(v int) *CreditCardUpsertOne {
	return u.Update(func(s *CreditCardUpsert) {
		s.AddClosingDay(v)
	})
}

// UpdateClosingDay sets the "closing_day" field to the value that was provided on create.
func (u *CreditCardUpsertOne) UpdateClosingDay() *CreditCardUpsertOne {
	return u.Update(func(s *CreditCardUpsert) {
		s.UpdateClosingDay()
	})
}

// SetDueDay sets the "due_day" field.
func (u *CreditCardUpsertOne) SetDueDay(v int) *CreditCardUpsertOne {
	return u.Update(func(s *CreditCardUpsert) {
		s.SetDueDay(v)
	})
}

// AddDueDay adds v to the "due_day" field.
func (u *CreditCardUpsertOne) AddDueDay(v int) *CreditCardUpsertOne {
	return u.Update(func(s *CreditCardUpsert) {
		s.AddDueDay(v)
	})
}

// UpdateDueDay sets the "due_day" field to the value that was provided on create.
func (u *CreditCardUpsertOne) UpdateDueDay() *CreditCardUpsertOne {
	return u.Update(func(s *CreditCardUpsert) {
		s.UpdateDueDay()
	})
}

// SetCreditLimit sets the "credit_limit" field.
func (u *CreditCardUpsertOne) SetCreditLimit(v decimal.Decimal) *CreditCardUpsertOne {
	return u.Update(func(s *CreditCardUpsert) {
		s.SetCreditLimit(v)
	})
}

// UpdateCreditLimit sets the "credit_limit" field to the value that was provided on create.
func (u *CreditCardUpsertOne) UpdateCreditLimit() *CreditCardUpsertOne {
	return u.Update(func(s *CreditCardUpsert) {
		s.UpdateCreditLimit()
	})
}

// Exec executes the query.
func (u *CreditCardUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for CreditCardCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *CreditCardUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *CreditCardUpsertOne) ID(ctx context.Context) (id string, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: CreditCardUpsertOne.ID is not supported by MySQL driver. Use CreditCardUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *CreditCardUpsertOne) IDX(ctx context.Context) string {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// CreditCardCreateBulk is the builder for creating many CreditCard entities in bulk.
type CreditCardCreateBulk struct {
	config
	err      error
	builders []*CreditCardCreate
	conflict []sql.ConflictOption
}

// Save creates the CreditCard entities in the database.
func (cccb *CreditCardCreateBulk) Save(ctx context.Context) ([]*CreditCard, error) {
	if cccb.err != nil {
		return nil, cccb.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(cccb.builders))
	nodes := make([]*CreditCard, len(cccb.builders))
	mutators := make([]Mutator, len(cccb.builders))
	for i := range cccb.builders {
		func(i int, root context.Context) {
			builder := cccb.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*CreditCardMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, cccb.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					spec.OnConflict = cccb.conflict
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, cccb.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, cccb.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (cccb *CreditCardCreateBulk) SaveX(ctx context.Context) []*CreditCard {
	v, err := cccb.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (cccb *CreditCardCreateBulk) Exec(ctx context.Context) error {
	_, err := cccb.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (cccb *CreditCardCreateBulk) ExecX(ctx context.Context) {
	if err := cccb.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.CreditCard.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.CreditCardUpsert) {
//			SetUserID(v+v).
//		}).
//		Exec(ctx)
func (cccb *CreditCardCreateBulk) OnConflict(opts ...sql.ConflictOption) *CreditCardUpsertBulk {
	cccb.conflict = opts
	return &CreditCardUpsertBulk{
		create: cccb,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.CreditCard.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (cccb *CreditCardCreateBulk) OnConflictColumns(columns ...string) *CreditCardUpsertBulk {
	cccb.conflict = append(cccb.conflict, sql.ConflictColumns(columns...))
	return &CreditCardUpsertBulk{
		create: cccb,
	}
}

// CreditCardUpsertBulk is the builder for "upsert"-ing
// a bulk of CreditCard nodes.
type CreditCardUpsertBulk struct {
	create *CreditCardCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.CreditCard.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(creditcard.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *CreditCardUpsertBulk) UpdateNewValues() *CreditCardUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(creditcard.FieldID)
			}
			if _, exists := b.mutation.UserID(); exists {
				s.SetIgnore(creditcard.FieldUserID)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(creditcard.FieldCreatedAt)
			}
			if _, exists := b.mutation.CreatedBy(); exists {
				s.SetIgnore(creditcard.FieldCreatedBy)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.CreditCard.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *CreditCardUpsertBulk) Ignore() *CreditCardUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *CreditCardUpsertBulk) DoNothing() *CreditCardUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the CreditCardCreateBulk.OnConflict
// documentation for more info.
func (u *CreditCardUpsertBulk) Update(set func(*CreditCardUpsert)) *CreditCardUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&CreditCardUpsert{UpdateSet: update})
	}))
	return u
}

// SetStatus sets the "status" field.
func (u *CreditCardUpsertBulk) SetStatus(v string) *CreditCardUpsertBulk {
	return u.Update(func(s *CreditCardUpsert) {
		s.SetStatus(v)
	})
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *CreditCardUpsertBulk) UpdateStatus() *CreditCardUpsertBulk {
	return u.Update(func(s *CreditCardUpsert) {
		s.UpdateStatus()
	})
}

// SetUpdatedAt sets the "updated_at" field.
func (u *CreditCardUpsertBulk) SetUpdatedAt(v time.Time) *CreditCardUpsertBulk {
	return u.Update(func(s *CreditCardUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *CreditCardUpsertBulk) UpdateUpdatedAt() *CreditCardUpsertBulk {
	return u.Update(func(s *CreditCardUpsert) {
		s.UpdateUpdatedAt()
	})
}

// SetUpdatedBy sets the "updated_by" field.
func (u *CreditCardUpsertBulk) SetUpdatedBy(v string) *CreditCardUpsertBulk {
	return u.Update(func(s *CreditCardUpsert) {
		s.SetUpdatedBy(v)
	})
}

// UpdateUpdatedBy sets the "updated_by" field to the value that was provided on create.
func (u *CreditCardUpsertBulk) UpdateUpdatedBy() *CreditCardUpsertBulk {
	return u.Update(func(s *CreditCardUpsert) {
		s.UpdateUpdatedBy()
	})
}

// ClearUpdatedBy clears the value of the "updated_by" field.
func (u *CreditCardUpsertBulk) ClearUpdatedBy() *CreditCardUpsertBulk {
	return u.Update(func(s *CreditCardUpsert) {
		s.ClearUpdatedBy()
	})
}

// SetName sets the "name" field.
func (u *CreditCardUpsertBulk) SetName(v string) *CreditCardUpsertBulk {
	return u.Update(func(s *CreditCardUpsert) {
		s.SetName(v)
	})
}

// UpdateName sets the "name" field to the value that was provided on create.
func (u *CreditCardUpsertBulk) UpdateName() *CreditCardUpsertBulk {
	return u.Update(func(s *CreditCardUpsert) {
		s.UpdateName()
	})
}

// SetClosingDay sets the "closing_day" field.
func (u *CreditCardUpsertBulk) SetClosingDay(v int) *CreditCardUpsertBulk {
	return u.Update(func(s *CreditCardUpsert) {
		s.SetClosingDay(v)
	})
}

// AddClosingDay adds v to the "closing_day" field.
func (u *CreditCardUpsertBulk) AddClosingDay(v int) *CreditCardUpsertBulk {
	return u.Update(func(s *CreditCardUpsert) {
		s.AddClosingDay(v)
	})
}

// UpdateClosingDay sets the "closing_day" field to the value that was provided on create.
func (u *CreditCardUpsertBulk) UpdateClosingDay() *CreditCardUpsertBulk {
	return u.Update(func(s *CreditCardUpsert) {
		s.UpdateClosingDay()
	})
}

// SetDueDay sets the "due_day" field.
func (u *CreditCardUpsertBulk) SetDueDay(v int) *CreditCardUpsertBulk {
	return u.Update(func(s *CreditCardUpsert) {
		s.SetDueDay(v)
	})
}

// AddDueDay adds v to the "due_day" field.
func (u *CreditCardUpsertBulk) AddDueDay(v int) *CreditCardUpsertBulk {
	return u.Update(func(s *CreditCardUpsert) {
		s.AddDueDay(v)
	})
}

// UpdateDueDay sets the "due_day" field to the value that was provided on create.
func (u *CreditCardUpsertBulk) UpdateDueDay() *CreditCardUpsertBulk {
	return u.Update(func(s *CreditCardUpsert) {
		s.UpdateDueDay()
	})
}

// SetCreditLimit sets the "credit_limit" field.
func (u *CreditCardUpsertBulk) SetCreditLimit(v decimal.Decimal) *CreditCardUpsertBulk {
	return u.Update(func(s *CreditCardUpsert) {
		s.SetCreditLimit(v)
	})
}

// UpdateCreditLimit sets the "credit_limit" field to the value that was provided on create.
func (u *CreditCardUpsertBulk) UpdateCreditLimit() *CreditCardUpsertBulk {
	return u.Update(func(s *CreditCardUpsert) {
		s.UpdateCreditLimit()
	})
}

// Exec executes the query.
func (u *CreditCardUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the CreditCardCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for CreditCardCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *CreditCardUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

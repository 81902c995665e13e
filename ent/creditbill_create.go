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
	"github.com/pocketwise/pocketwise/internal/types"
	"github.com/shopspring/decimal"
)

// CreditBillCreate is the builder for creating a CreditBill entity.
type CreditBillCreate struct {
	config
	mutation *CreditBillMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetUserID sets the "user_id" field.
func (cbc *CreditBillCreate) SetUserID(s string) *CreditBillCreate {
	cbc.mutation.SetUserID(s)
	return cbc
}

// SetStatus sets the "status" field.
func (cbc *CreditBillCreate) SetStatus(s string) *CreditBillCreate {
	cbc.mutation.SetStatus(s)
	return cbc
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (cbc *CreditBillCreate) SetNillableStatus(s *string) *CreditBillCreate {
	if s != nil {
		cbc.SetStatus(*s)
	}
	return cbc
}

// SetCreatedAt sets the "created_at" field.
func (cbc *CreditBillCreate) SetCreatedAt(t time.Time) *CreditBillCreate {
	cbc.mutation.SetCreatedAt(t)
	return cbc
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (cbc *CreditBillCreate) SetNillableCreatedAt(t *time.Time) *CreditBillCreate {
	if t != nil {
		cbc.SetCreatedAt(*t)
	}
	return cbc
}

// SetUpdatedAt sets the "updated_at" field.
func (cbc *CreditBillCreate) SetUpdatedAt(t time.Time) *CreditBillCreate {
	cbc.mutation.SetUpdatedAt(t)
	return cbc
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (cbc *CreditBillCreate) SetNillableUpdatedAt(t *time.Time) *CreditBillCreate {
	if t != nil {
		cbc.SetUpdatedAt(*t)
	}
	return cbc
}

// SetCreatedBy sets the "created_by" field.
func (cbc *CreditBillCreate) SetCreatedBy(s string) *CreditBillCreate {
	cbc.mutation.SetCreatedBy(s)
	return cbc
}

// SetNillableCreatedBy sets the "created_by" field if the given value is not nil.
func (cbc *CreditBillCreate) SetNillableCreatedBy(s *string) *CreditBillCreate {
	if s != nil {
		cbc.SetCreatedBy(*s)
	}
	return cbc
}

// SetUpdatedBy sets the "updated_by" field.
func (cbc *CreditBillCreate) SetUpdatedBy(s string) *CreditBillCreate {
	cbc.mutation.SetUpdatedBy(s)
	return cbc
}

// SetNillableUpdatedBy sets the "updated_by" field if the given value is not nil.
func (cbc *CreditBillCreate) SetNillableUpdatedBy(s *string) *CreditBillCreate {
	if s != nil {
		cbc.SetUpdatedBy(*s)
	}
	return cbc
}

// SetCreditCardID sets the "credit_card_id" field.
func (cbc *CreditBillCreate) SetCreditCardID(s string) *CreditBillCreate {
	cbc.mutation.SetCreditCardID(s)
	return cbc
}

// SetClosingDate sets the "closing_date" field.
func (cbc *CreditBillCreate) SetClosingDate(t time.Time) *CreditBillCreate {
	cbc.mutation.SetClosingDate(t)
	return cbc
}

// SetDueDate sets the "due_date" field.
func (cbc *CreditBillCreate) SetDueDate(t time.Time) *CreditBillCreate {
	cbc.mutation.SetDueDate(t)
	return cbc
}

// SetTotalAmount sets the "total_amount" field.
func (cbc *CreditBillCreate) SetTotalAmount(d decimal.Decimal) *CreditBillCreate {
	cbc.mutation.SetTotalAmount(d)
	return cbc
}

// SetNillableTotalAmount sets the "total_amount" field if the given value is not nil.
func (cbc *CreditBillCreate) SetNillableTotalAmount(d *decimal.Decimal) *CreditBillCreate {
	if d != nil {
		cbc.SetTotalAmount(*d)
	}
	return cbc
}

// SetPaidAmount sets the "paid_amount" field.
func (cbc *CreditBillCreate) SetPaidAmount(d decimal.Decimal) *CreditBillCreate {
	cbc.mutation.SetPaidAmount(d)
	return cbc
}

// SetNillablePaidAmount sets the "paid_amount" field if the given value is not nil.
func (cbc *CreditBillCreate) SetNillablePaidAmount(d *decimal.Decimal) *CreditBillCreate {
	if d != nil {
		cbc.SetPaidAmount(*d)
	}
	return cbc
}

// SetBillStatus sets the "bill_status" field.
func (cbc *CreditBillCreate) SetBillStatus(tbs types.CreditBillStatus) *CreditBillCreate {
	cbc.mutation.SetBillStatus(tbs)
	return cbc
}

// SetNillableBillStatus sets the "bill_status" field if the given value is not nil.
func (cbc *CreditBillCreate) SetNillableBillStatus(tbs *types.CreditBillStatus) *CreditBillCreate {
	if tbs != nil {
		cbc.SetBillStatus(*tbs)
	}
	return cbc
}

// SetPaidAt sets the "paid_at" field.
func (cbc *CreditBillCreate) SetPaidAt(t time.Time) *CreditBillCreate {
	cbc.mutation.SetPaidAt(t)
	return cbc
}

// SetNillablePaidAt sets the "paid_at" field if the given value is not nil.
func (cbc *CreditBillCreate) SetNillablePaidAt(t *time.Time) *CreditBillCreate {
	if t != nil {
		cbc.SetPaidAt(*t)
	}
	return cbc
}

// SetID sets the "id" field.
func (cbc *CreditBillCreate) SetID(s string) *CreditBillCreate {
	cbc.mutation.SetID(s)
	return cbc
}

// SetCreditCard sets the "credit_card" edge to the CreditCard entity.
func (cbc *CreditBillCreate) SetCreditCard(c *CreditCard) *CreditBillCreate {
	return cbc.SetCreditCardID(c.ID)
}

// AddCreditExpenseIDs adds the "credit_expenses" edge to the CreditExpense entity by IDs.
func (cbc *CreditBillCreate) AddCreditExpenseIDs(ids ...string) *CreditBillCreate {
	cbc.mutation.AddCreditExpenseIDs(ids...)
	return cbc
}

// AddCreditExpenses adds the "credit_expenses" edges to the CreditExpense entity.
func (cbc *CreditBillCreate) AddCreditExpenses(c ...*CreditExpense) *CreditBillCreate {
	ids := make([]string, len(c))
	for i := range c {
		ids[i] = c[i].ID
	}
	return cbc.AddCreditExpenseIDs(ids...)
}

// AddCreditIncomeIDs adds the "credit_incomes" edge to the CreditIncome entity by IDs.
func (cbc *CreditBillCreate) AddCreditIncomeIDs(ids ...string) *CreditBillCreate {
	cbc.mutation.AddCreditIncomeIDs(ids...)
	return cbc
}

// AddCreditIncomes adds the "credit_incomes" edges to the CreditIncome entity.
func (cbc *CreditBillCreate) AddCreditIncomes(c ...*CreditIncome) *CreditBillCreate {
	ids := make([]string, len(c))
	for i := range c {
		ids[i] = c[i].ID
	}
	return cbc.AddCreditIncomeIDs(ids...)
}

// Mutation returns the CreditBillMutation object of the builder.
func (cbc *CreditBillCreate) Mutation() *CreditBillMutation {
	return cbc.mutation
}

// Save creates the CreditBill in the database.
func (cbc *CreditBillCreate) Save(ctx context.Context) (*CreditBill, error) {
	cbc.defaults()
	return withHooks(ctx, cbc.sqlSave, cbc.mutation, cbc.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (cbc *CreditBillCreate) SaveX(ctx context.Context) *CreditBill {
	v, err := cbc.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (cbc *CreditBillCreate) Exec(ctx context.Context) error {
	_, err := cbc.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (cbc *CreditBillCreate) ExecX(ctx context.Context) {
	if err := cbc.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (cbc *CreditBillCreate) defaults() {
	if _, ok := cbc.mutation.Status(); !ok {
		v := creditbill.DefaultStatus
		cbc.mutation.SetStatus(v)
	}
	if _, ok := cbc.mutation.CreatedAt(); !ok {
		v := creditbill.DefaultCreatedAt()
		cbc.mutation.SetCreatedAt(v)
	}
	if _, ok := cbc.mutation.UpdatedAt(); !ok {
		v := creditbill.DefaultUpdatedAt()
		cbc.mutation.SetUpdatedAt(v)
	}
	if _, ok := cbc.mutation.TotalAmount(); !ok {
		v := creditbill.DefaultTotalAmount
		cbc.mutation.SetTotalAmount(v)
	}
	if _, ok := cbc.mutation.PaidAmount(); !ok {
		v := creditbill.DefaultPaidAmount
		cbc.mutation.SetPaidAmount(v)
	}
	if _, ok := cbc.mutation.BillStatus(); !ok {
		v := creditbill.DefaultBillStatus
		cbc.mutation.SetBillStatus(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (cbc *CreditBillCreate) check() error {
	if _, ok := cbc.mutation.UserID(); !ok {
		return &ValidationError{Name: "user_id", err: errors.New(`ent: missing required field "CreditBill.user_id"`)}
	}
	if v, ok := cbc.mutation.UserID(); ok {
		if err := creditbill.UserIDValidator(v); err != nil {
			return &ValidationError{Name: "user_id", err: fmt.Errorf(`ent: validator failed for field "CreditBill.user_id": %w`, err)}
		}
	}
	if _, ok := cbc.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "CreditBill.status"`)}
	}
	if _, ok := cbc.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "CreditBill.created_at"`)}
	}
	if _, ok := cbc.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "CreditBill.updated_at"`)}
	}
	if _, ok := cbc.mutation.CreditCardID(); !ok {
		return &ValidationError{Name: "credit_card_id", err: errors.New(`ent: missing required field "CreditBill.credit_card_id"`)}
	}
	if v, ok := cbc.mutation.CreditCardID(); ok {
		if err := creditbill.CreditCardIDValidator(v); err != nil {
			return &ValidationError{Name: "credit_card_id", err: fmt.Errorf(`ent: validator failed for field "CreditBill.credit_card_id": %w`, err)}
		}
	}
	if _, ok := cbc.mutation.ClosingDate(); !ok {
		return &ValidationError{Name: "closing_date", err: errors.New(`ent: missing required field "CreditBill.closing_date"`)}
	}
	if _, ok := cbc.mutation.DueDate(); !ok {
		return &ValidationError{Name: "due_date", err: errors.New(`ent: missing required field "CreditBill.due_date"`)}
	}
	if _, ok := cbc.mutation.TotalAmount(); !ok {
		return &ValidationError{Name: "total_amount", err: errors.New(`ent: missing required field "CreditBill.total_amount"`)}
	}
	if _, ok := cbc.mutation.PaidAmount(); !ok {
		return &ValidationError{Name: "paid_amount", err: errors.New(`ent: missing required field "CreditBill.paid_amount"`)}
	}
	if _, ok := cbc.mutation.BillStatus(); !ok {
		return &ValidationError{Name: "bill_status", err: errors.New(`ent: missing required field "CreditBill.bill_status"`)}
	}
	if v, ok := cbc.mutation.BillStatus(); ok {
		if err := v.Validate(); err != nil {
			return &ValidationError{Name: "bill_status", err: fmt.Errorf(`ent: validator failed for field "CreditBill.bill_status": %w`, err)}
		}
	}
	if len(cbc.mutation.CreditCardIDs()) == 0 {
		return &ValidationError{Name: "credit_card", err: errors.New(`ent: missing required edge "CreditBill.credit_card"`)}
	}
	return nil
}

func (cbc *CreditBillCreate) sqlSave(ctx context.Context) (*CreditBill, error) {
	if err := cbc.check(); err != nil {
		return nil, err
	}
	_node, _spec := cbc.createSpec()
	if err := sqlgraph.CreateNode(ctx, cbc.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(string); ok {
			_node.ID = id
		} else {
			return nil, fmt.Errorf("unexpected CreditBill.ID type: %T", _spec.ID.Value)
		}
	}
	cbc.mutation.id = &_node.ID
	cbc.mutation.done = true
	return _node, nil
}

func (cbc *CreditBillCreate) createSpec() (*CreditBill, *sqlgraph.CreateSpec) {
	var (
		_node = &CreditBill{config: cbc.config}
		_spec = sqlgraph.NewCreateSpec(creditbill.Table, sqlgraph.NewFieldSpec(creditbill.FieldID, field.TypeString))
	)
	_spec.OnConflict = cbc.conflict
	if id, ok := cbc.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := cbc.mutation.UserID(); ok {
		_spec.SetField(creditbill.FieldUserID, field.TypeString, value)
		_node.UserID = value
	}
	if value, ok := cbc.mutation.Status(); ok {
		_spec.SetField(creditbill.FieldStatus, field.TypeString, value)
		_node.Status = value
	}
	if value, ok := cbc.mutation.CreatedAt(); ok {
		_spec.SetField(creditbill.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := cbc.mutation.UpdatedAt(); ok {
		_spec.SetField(creditbill.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if value, ok := cbc.mutation.CreatedBy(); ok {
		_spec.SetField(creditbill.FieldCreatedBy, field.TypeString, value)
		_node.CreatedBy = value
	}
	if value, ok := cbc.mutation.UpdatedBy(); ok {
		_spec.SetField(creditbill.FieldUpdatedBy, field.TypeString, value)
		_node.UpdatedBy = value
	}
	if value, ok := cbc.mutation.ClosingDate(); ok {
		_spec.SetField(creditbill.FieldClosingDate, field.TypeTime, value)
		_node.ClosingDate = value
	}
	if value, ok := cbc.mutation.DueDate(); ok {
		_spec.SetField(creditbill.FieldDueDate, field.TypeTime, value)
		_node.DueDate = value
	}
	if value, ok := cbc.mutation.TotalAmount(); ok {
		_spec.SetField(creditbill.FieldTotalAmount, field.TypeOther, value)
		_node.TotalAmount = value
	}
	if value, ok := cbc.mutation.PaidAmount(); ok {
		_spec.SetField(creditbill.FieldPaidAmount, field.TypeOther, value)
		_node.PaidAmount = value
	}
	if value, ok := cbc.mutation.BillStatus(); ok {
		_spec.SetField(creditbill.FieldBillStatus, field.TypeString, value)
		_node.BillStatus = value
	}
	if value, ok := cbc.mutation.PaidAt(); ok {
		_spec.SetField(creditbill.FieldPaidAt, field.TypeTime, value)
		_node.PaidAt = &value
	}
	if nodes := cbc.mutation.CreditCardIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   creditbill.CreditCardTable,
			Columns: []string{creditbill.CreditCardColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(creditcard.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.CreditCardID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := cbc.mutation.CreditExpensesIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   creditbill.CreditExpensesTable,
			Columns: []string{creditbill.CreditExpensesColumn},
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
	if nodes := cbc.mutation.CreditIncomesIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   creditbill.CreditIncomesTable,
			Columns: []string{creditbill.CreditIncomesColumn},
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
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.CreditBill.Create().
//		SetUserID(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.CreditBillUpsert) {
//			SetUserID(v+v).
//		}).
//		Exec(ctx)
func (cbc *CreditBillCreate) OnConflict(opts ...sql.ConflictOption) *CreditBillUpsertOne {
	cbc.conflict = opts
	return &CreditBillUpsertOne{
		create: cbc,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.CreditBill.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (cbc *CreditBillCreate) OnConflictColumns(columns ...string) *CreditBillUpsertOne {
	cbc.conflict = append(cbc.conflict, sql.ConflictColumns(columns...))
	return &CreditBillUpsertOne{
		create: cbc,
	}
}

type (
	// CreditBillUpsertOne is the builder for "upsert"-ing
	//  one CreditBill node.
	CreditBillUpsertOne struct {
		create *CreditBillCreate
	}

	// CreditBillUpsert is the "OnConflict" setter.
	CreditBillUpsert struct {
		*sql.UpdateSet
	}
)

// SetStatus sets the "status" field.
func (u *CreditBillUpsert) SetStatus(v string) *CreditBillUpsert {
	u.Set(creditbill.FieldStatus, v)
	return u
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *CreditBillUpsert) UpdateStatus() *CreditBillUpsert {
	u.SetExcluded(creditbill.FieldStatus)
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *CreditBillUpsert) SetUpdatedAt(v time.Time) *CreditBillUpsert {
	u.Set(creditbill.FieldUpdatedAt, v)
	return u
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *CreditBillUpsert) UpdateUpdatedAt() *CreditBillUpsert {
	u.SetExcluded(creditbill.FieldUpdatedAt)
	return u
}

// SetUpdatedBy sets the "updated_by" field.
func (u *CreditBillUpsert) SetUpdatedBy(v string) *CreditBillUpsert {
	u.Set(creditbill.FieldUpdatedBy, v)
	return u
}

// UpdateUpdatedBy sets the "updated_by" field to the value that was provided on create.
func (u *CreditBillUpsert) UpdateUpdatedBy() *CreditBillUpsert {
	u.SetExcluded(creditbill.FieldUpdatedBy)
	return u
}

// ClearUpdatedBy clears the value of the "updated_by" field.
func (u *CreditBillUpsert) ClearUpdatedBy() *CreditBillUpsert {
	u.SetNull(creditbill.FieldUpdatedBy)
	return u
}

// SetDueDate sets the "due_date" field.
func (u *CreditBillUpsert) SetDueDate(v time.Time) *CreditBillUpsert {
	u.Set(creditbill.FieldDueDate, v)
	return u
}

// UpdateDueDate sets the "due_date" field to the value that was provided on create.
func (u *CreditBillUpsert) UpdateDueDate() *CreditBillUpsert {
	u.SetExcluded(creditbill.FieldDueDate)
	return u
}

// SetTotalAmount sets the "total_amount" field.
func (u *CreditBillUpsert) SetTotalAmount(v decimal.Decimal) *CreditBillUpsert {
	u.Set(creditbill.FieldTotalAmount, v)
	return u
}

// UpdateTotalAmount sets the "total_amount" field to the value that was provided on create.
func (u *CreditBillUpsert) UpdateTotalAmount() *CreditBillUpsert {
	u.SetExcluded(creditbill.FieldTotalAmount)
	return u
}

// SetPaidAmount sets the "paid_amount" field.
func (u *CreditBillUpsert) SetPaidAmount(v decimal.Decimal) *CreditBillUpsert {
	u.Set(creditbill.FieldPaidAmount, v)
	return u
}

// UpdatePaidAmount sets the "paid_amount" field to the value that was provided on create.
func (u *CreditBillUpsert) UpdatePaidAmount() *CreditBillUpsert {
	u.SetExcluded(creditbill.FieldPaidAmount)
	return u
}

// SetBillStatus sets the "bill_status" field.
func (u *CreditBillUpsert) SetBillStatus(v types.CreditBillStatus) *CreditBillUpsert {
	u.Set(creditbill.FieldBillStatus, v)
	return u
}

// UpdateBillStatus sets the "bill_status" field to the value that was provided on create.
func (u *CreditBillUpsert) UpdateBillStatus() *CreditBillUpsert {
	u.SetExcluded(creditbill.FieldBillStatus)
	return u
}

// SetPaidAt sets the "paid_at" field.
func (u *CreditBillUpsert) SetPaidAt(v time.Time) *CreditBillUpsert {
	u.Set(creditbill.FieldPaidAt, v)
	return u
}

// UpdatePaidAt sets the "paid_at" field to the value that was provided on create.
func (u *CreditBillUpsert) UpdatePaidAt() *CreditBillUpsert {
	u.SetExcluded(creditbill.FieldPaidAt)
	return u
}

// ClearPaidAt clears the value of the "paid_at" field.
func (u *CreditBillUpsert) ClearPaidAt() *CreditBillUpsert {
	u.SetNull(creditbill.FieldPaidAt)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.CreditBill.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(creditbill.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *CreditBillUpsertOne) UpdateNewValues() *CreditBillUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(creditbill.FieldID)
		}
		if _, exists := u.create.mutation.UserID(); exists {
			s.SetIgnore(creditbill.FieldUserID)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(creditbill.FieldCreatedAt)
		}
		if _, exists := u.create.mutation.CreatedBy(); exists {
			s.SetIgnore(creditbill.FieldCreatedBy)
		}
		if _, exists := u.create.mutation.CreditCardID(); exists {
			s.SetIgnore(creditbill.FieldCreditCardID)
		}
		if _, exists := u.create.mutation.ClosingDate(); exists {
			s.SetIgnore(creditbill.FieldClosingDate)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.CreditBill.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *CreditBillUpsertOne) Ignore() *CreditBillUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *CreditBillUpsertOne) DoNothing() *CreditBillUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the CreditBillCreate.OnConflict
// documentation for more info.
func (u *CreditBillUpsertOne) Update(set func(*CreditBillUpsert)) *CreditBillUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&CreditBillUpsert{UpdateSet: update})
	}))
	return u
}

// SetStatus sets the "status" field.
func (u *CreditBillUpsertOne) SetStatus(v string) *CreditBillUpsertOne {
	return u.Update(func(s *CreditBillUpsert) {
		s.SetStatus(v)
	})
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *CreditBillUpsertOne) UpdateStatus() *CreditBillUpsertOne {
	return u.Update(func(s *CreditBillUpsert) {
		s.UpdateStatus()
	})
}

// SetUpdatedAt sets the "updated_at" field.
func (u *CreditBillUpsertOne) SetUpdatedAt(v time.Time) *CreditBillUpsertOne {
	return u.Update(func(s *CreditBillUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *CreditBillUpsertOne) UpdateUpdatedAt() *CreditBillUpsertOne {
	return u.Update(func(s *CreditBillUpsert) {
		s.UpdateUpdatedAt()
	})
}

// SetUpdatedBy sets the "updated_by" field.
func (u *CreditBillUpsertOne) SetUpdatedBy(v string) *CreditBillUpsertOne {
	return u.Update(func(s *CreditBillUpsert) {
		s.SetUpdatedBy(v)
	})
}

// UpdateUpdatedBy sets the "updated_by" field to the value that was provided on create.
func (u *CreditBillUpsertOne) UpdateUpdatedBy() *CreditBillUpsertOne {
	return u.Update(func(s *CreditBillUpsert) {
		s.UpdateUpdatedBy()
	})
}

// ClearUpdatedBy clears the value of the "updated_by" field.
func (u *CreditBillUpsertOne) ClearUpdatedBy() *CreditBillUpsertOne {
	return u.Update(func(s *CreditBillUpsert) {
		s.ClearUpdatedBy()
	})
}

// SetDueDate sets the "due_date" field.
func (u *CreditBillUpsertOne) SetDueDate(v time.Time) *CreditBillUpsertOne {
	return u.Update(func(s *CreditBillUpsert) {
		s.SetDueDate(v)
	})
}

// UpdateDueDate sets the "due_date" field to the value that was provided on create.
func (u *CreditBillUpsertOne) UpdateDueDate() *CreditBillUpsertOne {
	return u.Update(func(s *CreditBillUpsert) {
		s.UpdateDueDate()
	})
}

// SetTotalAmount sets the "total_amount" field.
func (u *CreditBillUpsertOne) SetTotalAmount(v decimal.Decimal) *CreditBillUpsertOne {
	return u.Update(func(s *CreditBillUpsert) {
		s.SetTotalAmount(v)
	})
}

// UpdateTotalAmount sets the "total_amount" field to the value that was provided on create.
func (u *CreditBillUpsertOne) UpdateTotalAmount() *CreditBillUpsertOne {
	return u.Update(func(s *CreditBillUpsert) {
		s.UpdateTotalAmount()
	})
}

// SetPaidAmount sets the "paid_amount" field.
func (u *CreditBillUpsertOne) SetPaidAmount(v decimal.Decimal) *CreditBillUpsertOne {
	return u.Update(func(s *CreditBillUpsert) {
		s.SetPaidAmount(v)
	})
}

// UpdatePaidAmount sets the "paid_amount" field to the value that was provided on create.
func (u *CreditBillUpsertOne) UpdatePaidAmount() *CreditBillUpsertOne {
	return u.Update(func(s *CreditBillUpsert) {
		s.UpdatePaidAmount()
	})
}

// SetBillStatus sets the "bill_status" field.
func (u *CreditBillUpsertOne) SetBillStatus(v types.CreditBillStatus) *CreditBillUpsertOne {
	return u.Update(func(s *CreditBillUpsert) {
		s.SetBillStatus(v)
	})
}

// UpdateBillStatus sets the "bill_status" field to the value that was provided on create.
func (u *CreditBillUpsertOne) UpdateBillStatus() *CreditBillUpsertOne {
	return u.Update(func(s *CreditBillUpsert) {
		s.UpdateBillStatus()
	})
}

// SetPaidAt sets the "paid_at" field.
func (u *CreditBillUpsertOne) SetPaidAt(v time.Time) *CreditBillUpsertOne {
	return u.Update(func(s *CreditBillUpsert) {
		s.SetPaidAt(v)
	})
}

// UpdatePaidAt sets the "paid_at" field to the value that was provided on create.
func (u *CreditBillUpsertOne) UpdatePaidAt() *CreditBillUpsertOne {
	return u.Update(func(s *CreditBillUpsert) {
		s.UpdatePaidAt()
	})
}

// ClearPaidAt clears the value of the "paid_at" field.
func (u *CreditBillUpsertOne) ClearPaidAt() *CreditBillUpsertOne {
	return u.Update(func(s *CreditBillUpsert) {
		s.ClearPaidAt()
	})
}

// Exec executes the query.
func (u *CreditBillUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for CreditBillCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *CreditBillUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *CreditBillUpsertOne) ID(ctx context.Context) (id string, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: CreditBillUpsertOne.ID is not supported by MySQL driver. Use CreditBillUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *CreditBillUpsertOne) IDX(ctx context.Context) string {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// CreditBillCreateBulk is the builder for creating many CreditBill entities in bulk.
type CreditBillCreateBulk struct {
	config
	err      error
	builders []*CreditBillCreate
	conflict []sql.ConflictOption
}

// Save creates the CreditBill entities in the database.
func (cbcb *CreditBillCreateBulk) Save(ctx context.Context) ([]*CreditBill, error) {
	if cbcb.err != nil {
		return nil, cbcb.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(cbcb.builders))
	nodes := make([]*CreditBill, len(cbcb.builders))
	mutators := make([]Mutator, len(cbcb.builders))
	for i := range cbcb.builders {
		func(i int, root context.Context) {
			builder := cbcb.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*CreditBillMutation)
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
					_, err = mutators[i+1].Mutate(root, cbcb.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					spec.OnConflict = cbcb.conflict
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, cbcb.driver, spec); err != nil {
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
		if _, err := mutators[0].Mutate(ctx, cbcb.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (cbcb *CreditBillCreateBulk) SaveX(ctx context.Context) []*CreditBill {
	v, err := cbcb.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (cbcb *CreditBillCreateBulk) Exec(ctx context.Context) error {
	_, err := cbcb.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (cbcb *CreditBillCreateBulk) ExecX(ctx context.Context) {
	if err := cbcb.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.CreditBill.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.CreditBillUpsert) {
//			SetUserID(v+v).
//		}).
//		Exec(ctx)
func (cbcb *CreditBillCreateBulk) OnConflict(opts ...sql.ConflictOption) *CreditBillUpsertBulk {
	cbcb.conflict = opts
	return &CreditBillUpsertBulk{
		create: cbcb,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.CreditBill.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (cbcb *CreditBillCreateBulk) OnConflictColumns(columns ...string) *CreditBillUpsertBulk {
	cbcb.conflict = append(cbcb.conflict, sql.ConflictColumns(columns...))
	return &CreditBillUpsertBulk{
		create: cbcb,
	}
}

// CreditBillUpsertBulk is the builder for "upsert"-ing
// a bulk of CreditBill nodes.
type CreditBillUpsertBulk struct {
	create *CreditBillCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.CreditBill.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(creditbill.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *CreditBillUpsertBulk) UpdateNewValues() *CreditBillUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(creditbill.FieldID)
			}
			if _, exists := b.mutation.UserID(); exists {
				s.SetIgnore(creditbill.FieldUserID)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(creditbill.FieldCreatedAt)
			}
			if _, exists := b.mutation.CreatedBy(); exists {
				s.SetIgnore(creditbill.FieldCreatedBy)
			}
			if _, exists := b.mutation.CreditCardID(); exists {
				s.SetIgnore(creditbill.FieldCreditCardID)
			}
			if _, exists := b.mutation.ClosingDate(); exists {
				s.SetIgnore(creditbill.FieldClosingDate)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.CreditBill.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *CreditBillUpsertBulk) Ignore() *CreditBillUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *CreditBillUpsertBulk) DoNothing() *CreditBillUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the CreditBillCreateBulk.OnConflict
// documentation for more info.
func (u *CreditBillUpsertBulk) Update(set func(*CreditBillUpsert)) *CreditBillUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&CreditBillUpsert{UpdateSet: update})
	}))
	return u
}

// SetStatus sets the "status" field.
func (u *CreditBillUpsertBulk) SetStatus(v string) *CreditBillUpsertBulk {
	return u.Update(func(s *CreditBillUpsert) {
		s.SetStatus(v)
	})
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *CreditBillUpsertBulk) UpdateStatus() *CreditBillUpsertBulk {
	return u.Update(func(s *CreditBillUpsert) {
		s.UpdateStatus()
	})
}

// SetUpdatedAt sets the "updated_at" field.
func (u *CreditBillUpsertBulk) SetUpdatedAt(v time.Time) *CreditBillUpsertBulk {
	return u.Update(func(s *CreditBillUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *CreditBillUpsertBulk) UpdateUpdatedAt() *CreditBillUpsertBulk {
	return u.Update(func(s *CreditBillUpsert) {
		s.UpdateUpdatedAt()
	})
}

// SetUpdatedBy sets the "updated_by" field.
func (u *CreditBillUpsertBulk) SetUpdatedBy(v string) *CreditBillUpsertBulk {
	return u.Update(func(s *CreditBillUpsert) {
		s.SetUpdatedBy(v)
	})
}

// UpdateUpdatedBy sets the "updated_by" field to the value that was provided on create.
func (u *CreditBillUpsertBulk) UpdateUpdatedBy() *CreditBillUpsertBulk {
	return u.Update(func(s *CreditBillUpsert) {
		s.UpdateUpdatedBy()
	})
}

// ClearUpdatedBy clears the value of the "updated_by" field.
func (u *CreditBillUpsertBulk) ClearUpdatedBy() *CreditBillUpsertBulk {
	return u.Update(func(s *CreditBillUpsert) {
		s.ClearUpdatedBy()
	})
}

// SetDueDate sets the "due_date" field.
func (u *CreditBillUpsertBulk) SetDueDate(v time.Time) *CreditBillUpsertBulk {
	return u.Update(func(s *CreditBillUpsert) {
		s.SetDueDate(v)
	})
}

// UpdateDueDate sets the "due_date" field to the value that was provided on create.
func (u *CreditBillUpsertBulk) UpdateDueDate() *CreditBillUpsertBulk {
	return u.Update(func(s *CreditBillUpsert) {
		s.UpdateDueDate()
	})
}

// SetTotalAmount sets the "total_amount" field.
func (u *CreditBillUpsertBulk) SetTotalAmount(v decimal.Decimal) *CreditBillUpsertBulk {
	return u.Update(func(s *CreditBillUpsert) {
		s.SetTotalAmount(v)
	})
}

// UpdateTotalAmount sets the "total_amount" field to the value that was provided on create.
func (u *CreditBillUpsertBulk) UpdateTotalAmount() *CreditBillUpsertBulk {
	return u.Update(func(s *CreditBillUpsert) {
		s.UpdateTotalAmount()
	})
}

// SetPaidAmount sets the "paid_amount" field.
func (u *CreditBillUpsertBulk) SetPaidAmount(v decimal.Decimal) *CreditBillUpsertBulk {
	return u.Update(func(s *CreditBillUpsert) {
		s.SetPaidAmount(v)
	})
}

// UpdatePaidAmount sets the "paid_amount" field to the value that was provided on create.
func (u *CreditBillUpsertBulk) UpdatePaidAmount() *CreditBillUpsertBulk {
	return u.Update(func(s *CreditBillUpsert) {
		s.UpdatePaidAmount()
	})
}

// SetBillStatus sets the "bill_status" field.
func (u *CreditBillUpsertBulk) SetBillStatus(v types.CreditBillStatus) *CreditBillUpsertBulk {
	return u.Update(func(s *CreditBillUpsert) {
		s.SetBillStatus(v)
	})
}

// UpdateBillStatus sets the "bill_status" field to the value that was provided on create.
func (u *CreditBillUpsertBulk) UpdateBillStatus() *CreditBillUpsertBulk {
	return u.Update(func(s *CreditBillUpsert) {
		s.UpdateBillStatus()
	})
}

// SetPaidAt sets the "paid_at" field.
func (u *CreditBillUpsertBulk) SetPaidAt(v time.Time) *CreditBillUpsertBulk {
	return u.Update(func(s *CreditBillUpsert) {
		s.SetPaidAt(v)
	})
}

// UpdatePaidAt sets the "paid_at" field to the value that was provided on create.
func (u *CreditBillUpsertBulk) UpdatePaidAt() *CreditBillUpsertBulk {
	return u.Update(func(s *CreditBillUpsert) {
		s.UpdatePaidAt()
	})
}

// ClearPaidAt clears the value of the "paid_at" field.
func (u *CreditBillUpsertBulk) ClearPaidAt() *CreditBillUpsertBulk {
	return u.Update(func(s *CreditBillUpsert) {
		s.ClearPaidAt()
	})
}

// Exec executes the query.
func (u *CreditBillUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the CreditBillCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for CreditBillCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *CreditBillUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

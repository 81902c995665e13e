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
	"github.com/shopspring/decimal"
)

// CreditIncomeCreate is the builder for creating a CreditIncome entity.
type CreditIncomeCreate struct {
	config
	mutation *CreditIncomeMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetUserID sets the "user_id" field.
func (cic *CreditIncomeCreate) SetUserID(s string) *CreditIncomeCreate {
	cic.mutation.SetUserID(s)
	return cic
}

// SetStatus sets the "status" field.
func (cic *CreditIncomeCreate) SetStatus(s string) *CreditIncomeCreate {
	cic.mutation.SetStatus(s)
	return cic
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (cic *CreditIncomeCreate) SetNillableStatus(s *string) *CreditIncomeCreate {
	if s != nil {
		cic.SetStatus(*s)
	}
	return cic
}

// SetCreatedAt sets the "created_at" field.
func (cic *CreditIncomeCreate) SetCreatedAt(t time.Time) *CreditIncomeCreate {
	cic.mutation.SetCreatedAt(t)
	return cic
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (cic *CreditIncomeCreate) SetNillableCreatedAt(t *time.Time) *CreditIncomeCreate {
	if t != nil {
		cic.SetCreatedAt(*t)
	}
	return cic
}

// SetUpdatedAt sets the "updated_at" field.
func (cic *CreditIncomeCreate) SetUpdatedAt(t time.Time) *CreditIncomeCreate {
	cic.mutation.SetUpdatedAt(t)
	return cic
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (cic *CreditIncomeCreate) SetNillableUpdatedAt(t *time.Time) *CreditIncomeCreate {
	if t != nil {
		cic.SetUpdatedAt(*t)
	}
	return cic
}

// SetCreatedBy sets the "created_by" field.
func (cic *CreditIncomeCreate) SetCreatedBy(s string) *CreditIncomeCreate {
	cic.mutation.SetCreatedBy(s)
	return cic
}

// SetNillableCreatedBy sets the "created_by" field if the given value is not nil.
func (cic *CreditIncomeCreate) SetNillableCreatedBy(s *string) *CreditIncomeCreate {
	if s != nil {
		cic.SetCreatedBy(*s)
	}
	return cic
}

// SetUpdatedBy sets the "updated_by" field.
func (cic *CreditIncomeCreate) SetUpdatedBy(s string) *CreditIncomeCreate {
	cic.mutation.SetUpdatedBy(s)
	return cic
}

// SetNillableUpdatedBy sets the "updated_by" field if the given value is not nil.
func (cic *CreditIncomeCreate) SetNillableUpdatedBy(s *string) *CreditIncomeCreate {
	if s != nil {
		cic.SetUpdatedBy(*s)
	}
	return cic
}

// SetCreditCardID sets the "credit_card_id" field.
func (cic *CreditIncomeCreate) SetCreditCardID(s string) *CreditIncomeCreate {
	cic.mutation.SetCreditCardID(s)
	return cic
}

// SetCreditBillID sets the "credit_bill_id" field.
func (cic *CreditIncomeCreate) SetCreditBillID(s string) *CreditIncomeCreate {
	cic.mutation.SetCreditBillID(s)
	return cic
}

// SetCreditExpenseID sets the "credit_expense_id" field.
func (cic *CreditIncomeCreate) SetCreditExpenseID(s string) *CreditIncomeCreate {
	cic.mutation.SetCreditExpenseID(s)
	return cic
}

// SetDescription sets the "description" field.
func (cic *CreditIncomeCreate) SetDescription(s string) *CreditIncomeCreate {
	cic.mutation.SetDescription(s)
	return cic
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (cic *CreditIncomeCreate) SetNillableDescription(s *string) *CreditIncomeCreate {
	if s != nil {
		cic.SetDescription(*s)
	}
	return cic
}

// SetAmount sets the "amount" field.
func (cic *CreditIncomeCreate) SetAmount(d decimal.Decimal) *CreditIncomeCreate {
	cic.mutation.SetAmount(d)
	return cic
}

// SetInstallmentNumber sets the "installment_number" field.
func (cic *CreditIncomeCreate) SetInstallmentNumber(i int) *CreditIncomeCreate {
	cic.mutation.SetInstallmentNumber(i)
	return cic
}

// SetNillableInstallmentNumber sets the "installment_number" field if the given value is not nil.
func (cic *CreditIncomeCreate) SetNillableInstallmentNumber(i *int) *CreditIncomeCreate {
	if i != nil {
		cic.SetInstallmentNumber(*i)
	}
	return cic
}

// SetDate sets the "date" field.
func (cic *CreditIncomeCreate) SetDate(t time.Time) *CreditIncomeCreate {
	cic.mutation.SetDate(t)
	return cic
}

// SetID sets the "id" field.
func (cic *CreditIncomeCreate) SetID(s string) *CreditIncomeCreate {
	cic.mutation.SetID(s)
	return cic
}

// SetCreditCard sets the "credit_card" edge to the CreditCard entity.
func (cic *CreditIncomeCreate) SetCreditCard(c *CreditCard) *CreditIncomeCreate {
	return cic.SetCreditCardID(c.ID)
}

// SetCreditBill sets the "credit_bill" edge to the CreditBill entity.
func (cic *CreditIncomeCreate) SetCreditBill(c *CreditBill) *CreditIncomeCreate {
	return cic.SetCreditBillID(c.ID)
}

// SetCreditExpense sets the "credit_expense" edge to the CreditExpense entity.
func (cic *CreditIncomeCreate) SetCreditExpense(c *CreditExpense) *CreditIncomeCreate {
	return cic.SetCreditExpenseID(c.ID)
}

// Mutation returns the CreditIncomeMutation object of the builder.
func (cic *CreditIncomeCreate) Mutation() *CreditIncomeMutation {
	return cic.mutation
}

// Save creates the CreditIncome in the database.
func (cic *CreditIncomeCreate) Save(ctx context.Context) (*CreditIncome, error) {
	cic.defaults()
	return withHooks(ctx, cic.sqlSave, cic.mutation, cic.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (cic *CreditIncomeCreate) SaveX(ctx context.Context) *CreditIncome {
	v, err := cic.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (cic *CreditIncomeCreate) Exec(ctx context.Context) error {
	_, err := cic.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (cic *CreditIncomeCreate) ExecX(ctx context.Context) {
	if err := cic.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (cic *CreditIncomeCreate) defaults() {
	if _, ok := cic.mutation.Status(); !ok {
		v := creditincome.DefaultStatus
		cic.mutation.SetStatus(v)
	}
	if _, ok := cic.mutation.CreatedAt(); !ok {
		v := creditincome.DefaultCreatedAt()
		cic.mutation.SetCreatedAt(v)
	}
	if _, ok := cic.mutation.UpdatedAt(); !ok {
		v := creditincome.DefaultUpdatedAt()
		cic.mutation.SetUpdatedAt(v)
	}
	if _, ok := cic.mutation.Description(); !ok {
		v := creditincome.DefaultDescription
		cic.mutation.SetDescription(v)
	}
	if _, ok := cic.mutation.InstallmentNumber(); !ok {
		v := creditincome.DefaultInstallmentNumber
		cic.mutation.SetInstallmentNumber(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (cic *CreditIncomeCreate) check() error {
	if _, ok := cic.mutation.UserID(); !ok {
		return &ValidationError{Name: "user_id", err: errors.New(`ent: missing required field "CreditIncome.user_id"`)}
	}
	if v, ok := cic.mutation.UserID(); ok {
		if err := creditincome.UserIDValidator(v); err != nil {
			return &ValidationError{Name: "user_id", err: fmt.Errorf(`ent: validator failed for field "CreditIncome.user_id": %w`, err)}
		}
	}
	if _, ok := cic.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "CreditIncome.status"`)}
	}
	if _, ok := cic.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "CreditIncome.created_at"`)}
	}
	if _, ok := cic.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "CreditIncome.updated_at"`)}
	}
	if _, ok := cic.mutation.CreditCardID(); !ok {
		return &ValidationError{Name: "credit_card_id", err: errors.New(`ent: missing required field "CreditIncome.credit_card_id"`)}
	}
	if v, ok := cic.mutation.CreditCardID(); ok {
		if err := creditincome.CreditCardIDValidator(v); err != nil {
			return &ValidationError{Name: "credit_card_id", err: fmt.Errorf(`ent: validator failed for field "CreditIncome.credit_card_id": %w`, err)}
		}
	}
	if _, ok := cic.mutation.CreditBillID(); !ok {
		return &ValidationError{Name: "credit_bill_id", err: errors.New(`ent: missing required field "CreditIncome.credit_bill_id"`)}
	}
	if v, ok := cic.mutation.CreditBillID(); ok {
		if err := creditincome.CreditBillIDValidator(v); err != nil {
			return &ValidationError{Name: "credit_bill_id", err: fmt.Errorf(`ent: validator failed for field "CreditIncome.credit_bill_id": %w`, err)}
		}
	}
	if _, ok := cic.mutation.CreditExpenseID(); !ok {
		return &ValidationError{Name: "credit_expense_id", err: errors.New(`ent: missing required field "CreditIncome.credit_expense_id"`)}
	}
	if v, ok := cic.mutation.CreditExpenseID(); ok {
		if err := creditincome.CreditExpenseIDValidator(v); err != nil {
			return &ValidationError{Name: "credit_expense_id", err: fmt.Errorf(`ent: validator failed for field "CreditIncome.credit_expense_id": %w`, err)}
		}
	}
	if _, ok := cic.mutation.Description(); !ok {
		return &ValidationError{Name: "description", err: errors.New(`ent: missing required field "CreditIncome.description"`)}
	}
	if _, ok := cic.mutation.Amount(); !ok {
		return &ValidationError{Name: "amount", err: errors.New(`ent: missing required field "CreditIncome.amount"`)}
	}
	if _, ok := cic.mutation.InstallmentNumber(); !ok {
		return &ValidationError{Name: "installment_number", err: errors.New(`ent: missing required field "CreditIncome.installment_number"`)}
	}
	if _, ok := cic.mutation.Date(); !ok {
		return &ValidationError{Name: "date", err: errors.New(`ent: missing required field "CreditIncome.date"`)}
	}
	if len(cic.mutation.CreditCardIDs()) == 0 {
		return &ValidationError{Name: "credit_card", err: errors.New(`ent: missing required edge "CreditIncome.credit_card"`)}
	}
	if len(cic.mutation.CreditBillIDs()) == 0 {
		return &ValidationError{Name: "credit_bill", err: errors.New(`ent: missing required edge "CreditIncome.credit_bill"`)}
	}
	if len(cic.mutation.CreditExpenseIDs()) == 0 {
		return &ValidationError{Name: "credit_expense", err: errors.New(`ent: missing required edge "CreditIncome.credit_expense"`)}
	}
	return nil
}

func (cic *CreditIncomeCreate) sqlSave(ctx context.Context) (*CreditIncome, error) {
	if err := cic.check(); err != nil {
		return nil, err
	}
	_node, _spec := cic.createSpec()
	if err := sqlgraph.CreateNode(ctx, cic.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(string); ok {
			_node.ID = id
		} else {
			return nil, fmt.Errorf("unexpected CreditIncome.ID type: %T", _spec.ID.Value)
		}
	}
	cic.mutation.id = &_node.ID
	cic.mutation.done = true
	return _node, nil
}

func (cic *CreditIncomeCreate) createSpec() (*CreditIncome, *sqlgraph.CreateSpec) {
	var (
		_node = &CreditIncome{config: cic.config}
		_spec = sqlgraph.NewCreateSpec(creditincome.Table, sqlgraph.NewFieldSpec(creditincome.FieldID, field.TypeString))
	)
	_spec.OnConflict = cic.conflict
	if id, ok := cic.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := cic.mutation.UserID(); ok {
		_spec.SetField(creditincome.FieldUserID, field.TypeString, value)
		_node.UserID = value
	}
	if value, ok := cic.mutation.Status(); ok {
		_spec.SetField(creditincome.FieldStatus, field.TypeString, value)
		_node.Status = value
	}
	if value, ok := cic.mutation.CreatedAt(); ok {
		_spec.SetField(creditincome.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := cic.mutation.UpdatedAt(); ok {
		_spec.SetField(creditincome.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if value, ok := cic.mutation.CreatedBy(); ok {
		_spec.SetField(creditincome.FieldCreatedBy, field.TypeString, value)
		_node.CreatedBy = value
	}
	if value, ok := cic.mutation.UpdatedBy(); ok {
		_spec.SetField(creditincome.FieldUpdatedBy, field.TypeString, value)
		_node.UpdatedBy = value
	}
	if value, ok := cic.mutation.Description(); ok {
		_spec.SetField(creditincome.FieldDescription, field.TypeString, value)
		_node.Description = value
	}
	if value, ok := cic.mutation.Amount(); ok {
		_spec.SetField(creditincome.FieldAmount, field.TypeOther, value)
		_node.Amount = value
	}
	if value, ok := cic.mutation.InstallmentNumber(); ok {
		_spec.SetField(creditincome.FieldInstallmentNumber, field.TypeInt, value)
		_node.InstallmentNumber = value
	}
	if value, ok := cic.mutation.Date(); ok {
		_spec.SetField(creditincome.FieldDate, field.TypeTime, value)
		_node.Date = value
	}
	if nodes := cic.mutation.CreditCardIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   creditincome.CreditCardTable,
			Columns: []string{creditincome.CreditCardColumn},
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
	if nodes := cic.mutation.CreditBillIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   creditincome.CreditBillTable,
			Columns: []string{creditincome.CreditBillColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(creditbill.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.CreditBillID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := cic.mutation.CreditExpenseIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   creditincome.CreditExpenseTable,
			Columns: []string{creditincome.CreditExpenseColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(creditexpense.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.CreditExpenseID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.CreditIncome.Create().
//		SetUserID(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.CreditIncomeUpsert) {
//			SetUserID(v+v).
//		}).
//		Exec(ctx)
func (cic *CreditIncomeCreate) OnConflict(opts ...sql.ConflictOption) *CreditIncomeUpsertOne {
	cic.conflict = opts
	return &CreditIncomeUpsertOne{
		create: cic,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.CreditIncome.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (cic *CreditIncomeCreate) OnConflictColumns(columns ...string) *CreditIncomeUpsertOne {
	cic.conflict = append(cic.conflict, sql.ConflictColumns(columns...))
	return &CreditIncomeUpsertOne{
		create: cic,
	}
}

type (
	// CreditIncomeUpsertOne is the builder for "upsert"-ing
	//  one CreditIncome node.
	CreditIncomeUpsertOne struct {
		create *CreditIncomeCreate
	}

	// CreditIncomeUpsert is the "OnConflict" setter.
	CreditIncomeUpsert struct {
		*sql.UpdateSet
	}
)

// SetStatus sets the "status" field.
func (u *CreditIncomeUpsert) SetStatus(v string) *CreditIncomeUpsert {
	u.Set(creditincome.FieldStatus, v)
	return u
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *CreditIncomeUpsert) UpdateStatus() *CreditIncomeUpsert {
	u.SetExcluded(creditincome.FieldStatus)
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *CreditIncomeUpsert) SetUpdatedAt(v time.Time) *CreditIncomeUpsert {
	u.Set(creditincome.FieldUpdatedAt, v)
	return u
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *CreditIncomeUpsert) UpdateUpdatedAt() *CreditIncomeUpsert {
	u.SetExcluded(creditincome.FieldUpdatedAt)
	return u
}

// SetUpdatedBy sets the "updated_by" field.
func (u *CreditIncomeUpsert) SetUpdatedBy(v string) *CreditIncomeUpsert {
	u.Set(creditincome.FieldUpdatedBy, v)
	return u
}

// UpdateUpdatedBy sets the "updated_by" field to the value that was provided on create.
func (u *CreditIncomeUpsert) UpdateUpdatedBy() *CreditIncomeUpsert {
	u.SetExcluded(creditincome.FieldUpdatedBy)
	return u
}

// ClearUpdatedBy clears the value of the "updated_by" field.
func (u *CreditIncomeUpsert) ClearUpdatedBy() *CreditIncomeUpsert {
	u.SetNull(creditincome.FieldUpdatedBy)
	return u
}

// SetDescription sets the "description" field.
func (u *CreditIncomeUpsert) SetDescription(v string) *CreditIncomeUpsert {
	u.Set(creditincome.FieldDescription, v)
	return u
}

// UpdateDescription sets the "description" field to the value that was provided on create.
func (u *CreditIncomeUpsert) UpdateDescription() *CreditIncomeUpsert {
	u.SetExcluded(creditincome.FieldDescription)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.CreditIncome.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(creditincome.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *CreditIncomeUpsertOne) UpdateNewValues() *CreditIncomeUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(creditincome.FieldID)
		}
		if _, exists := u.create.mutation.UserID(); exists {
			s.SetIgnore(creditincome.FieldUserID)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(creditincome.FieldCreatedAt)
		}
		if _, exists := u.create.mutation.CreatedBy(); exists {
			s.SetIgnore(creditincome.FieldCreatedBy)
		}
		if _, exists := u.create.mutation.CreditCardID(); exists {
			s.SetIgnore(creditincome.FieldCreditCardID)
		}
		if _, exists := u.create.mutation.CreditBillID(); exists {
			s.SetIgnore(creditincome.FieldCreditBillID)
		}
		if _, exists := u.create.mutation.CreditExpenseID(); exists {
			s.SetIgnore(creditincome.FieldCreditExpenseID)
		}
		if _, exists := u.create.mutation.Amount(); exists {
			s.SetIgnore(creditincome.FieldAmount)
		}
		if _, exists := u.create.mutation.InstallmentNumber(); exists {
			s.SetIgnore(creditincome.FieldInstallmentNumber)
		}
		if _, exists := u.create.mutation.Date(); exists {
			s.SetIgnore(creditincome.FieldDate)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.CreditIncome.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *CreditIncomeUpsertOne) Ignore() *CreditIncomeUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *CreditIncomeUpsertOne) DoNothing() *CreditIncomeUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the CreditIncomeCreate.OnConflict
// documentation for more info.
func (u *CreditIncomeUpsertOne) Update(set func(*CreditIncomeUpsert)) *CreditIncomeUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&CreditIncomeUpsert{UpdateSet: update})
	}))
	return u
}

// SetStatus sets the "status" field.
func (u *CreditIncomeUpsertOne) SetStatus(v string) *CreditIncomeUpsertOne {
	return u.Update(func(s *CreditIncomeUpsert) {
		s.SetStatus(v)
	})
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *CreditIncomeUpsertOne) UpdateStatus() *CreditIncomeUpsertOne {
	return u.Update(func(s *CreditIncomeUpsert) {
		s.UpdateStatus()
	})
}

// SetUpdatedAt sets the "updated_at" field.
func (u *CreditIncomeUpsertOne) SetUpdatedAt(v time.Time) *CreditIncomeUpsertOne {
	return u.Update(func(s *CreditIncomeUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *CreditIncomeUpsertOne) UpdateUpdatedAt() *CreditIncomeUpsertOne {
	return u.Update(func(s *CreditIncomeUpsert) {
		s.UpdateUpdatedAt()
	})
}

// SetUpdatedBy sets the "updated_by" field.
func (u *CreditIncomeUpsertOne) SetUpdatedBy(v string) *CreditIncomeUpsertOne {
	return u.Update(func(s *CreditIncomeUpsert) {
		s.SetUpdatedBy(v)
	})
}

// UpdateUpdatedBy sets the "updated_by" field to the value that was provided on create.
func (u *CreditIncomeUpsertOne) UpdateUpdatedBy() *CreditIncomeUpsertOne {
	return u.Update(func(s *CreditIncomeUpsert) {
		s.UpdateUpdatedBy()
	})
}

// ClearUpdatedBy clears the value of the "updated_by" field.
func (u *CreditIncomeUpsertOne) ClearUpdatedBy() *CreditIncomeUpsertOne {
	return u.Update(func(s *CreditIncomeUpsert) {
		s.ClearUpdatedBy()
	})
}

// SetDescription sets the "description" field.
func (u *CreditIncomeUpsertOne) SetDescription(v string) *CreditIncomeUpsertOne {
	return u.Update(func(s *CreditIncomeUpsert) {
		s.SetDescription(v)
	})
}

// UpdateDescription sets the "description" field to the value that was provided on create.
func (u *CreditIncomeUpsertOne) UpdateDescription() *CreditIncomeUpsertOne {
	return u.Update(func(s *CreditIncomeUpsert) {
		s.UpdateDescription()
	})
}

// Exec executes the query.
func (u *CreditIncomeUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for CreditIncomeCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *CreditIncomeUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *CreditIncomeUpsertOne) ID(ctx context.Context) (id string, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: CreditIncomeUpsertOne.ID is not supported by MySQL driver. Use CreditIncomeUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *CreditIncomeUpsertOne) IDX(ctx context.Context) string {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// CreditIncomeCreateBulk is the builder for creating many CreditIncome entities in bulk.
type CreditIncomeCreateBulk struct {
	config
	err      error
	builders []*CreditIncomeCreate
	conflict []sql.ConflictOption
}

// Save creates the CreditIncome entities in the database.
func (cicb *CreditIncomeCreateBulk) Save(ctx context.Context) ([]*CreditIncome, error) {
	if cicb.err != nil {
		return nil, cicb.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(cicb.builders))
	nodes := make([]*CreditIncome, len(cicb.builders))
	mutators := make([]Mutator, len(cicb.builders))
	for i := range cicb.builders {
		func(i int, root context.Context) {
			builder := cicb.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*CreditIncomeMutation)
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
					_, err = mutators[i+1].Mutate(root, cicb.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					spec.OnConflict = cicb.conflict
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, cicb.driver, spec); err != nil {
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
		if _, err := mutators[0].Mutate(ctx, cicb.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (cicb *CreditIncomeCreateBulk) SaveX(ctx context.Context) []*CreditIncome {
	v, err := cicb.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (cicb *CreditIncomeCreateBulk) Exec(ctx context.Context) error {
	_, err := cicb.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (cicb *CreditIncomeCreateBulk) ExecX(ctx context.Context) {
	if err := cicb.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.CreditIncome.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.CreditIncomeUpsert) {
//			SetUserID(v+v).
//		}).
//		Exec(ctx)
func (cicb *CreditIncomeCreateBulk) OnConflict(opts ...sql.ConflictOption) *CreditIncomeUpsertBulk {
	cicb.conflict = opts
	return &CreditIncomeUpsertBulk{
		create: cicb,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.CreditIncome.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (cicb *CreditIncomeCreateBulk) OnConflictColumns(columns ...string) *CreditIncomeUpsertBulk {
	cicb.conflict = append(cicb.conflict, sql.ConflictColumns(columns...))
	return &CreditIncomeUpsertBulk{
		create: cicb,
	}
}

// CreditIncomeUpsertBulk is the builder for "upsert"-ing
// a bulk of CreditIncome nodes.
type CreditIncomeUpsertBulk struct {
	create *CreditIncomeCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.CreditIncome.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(creditincome.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *CreditIncomeUpsertBulk) UpdateNewValues() *CreditIncomeUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(creditincome.FieldID)
			}
			if _, exists := b.mutation.UserID(); exists {
				s.SetIgnore(creditincome.FieldUserID)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(creditincome.FieldCreatedAt)
			}
			if _, exists := b.mutation.CreatedBy(); exists {
				s.SetIgnore(creditincome.FieldCreatedBy)
			}
			if _, exists := b.mutation.CreditCardID(); exists {
				s.SetIgnore(creditincome.FieldCreditCardID)
			}
			if _, exists := b.mutation.CreditBillID(); exists {
				s.SetIgnore(creditincome.FieldCreditBillID)
			}
			if _, exists := b.mutation.CreditExpenseID(); exists {
				s.SetIgnore(creditincome.FieldCreditExpenseID)
			}
			if _, exists := b.mutation.Amount(); exists {
				s.SetIgnore(creditincome.FieldAmount)
			}
			if _, exists := b.mutation.InstallmentNumber(); exists {
				s.SetIgnore(creditincome.FieldInstallmentNumber)
			}
			if _, exists := b.mutation.Date(); exists {
				s.SetIgnore(creditincome.FieldDate)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.CreditIncome.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *CreditIncomeUpsertBulk) Ignore() *CreditIncomeUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *CreditIncomeUpsertBulk) DoNothing() *CreditIncomeUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the CreditIncomeCreateBulk.OnConflict
// documentation for more info.
func (u *CreditIncomeUpsertBulk) Update(set func(*CreditIncomeUpsert)) *CreditIncomeUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&CreditIncomeUpsert{UpdateSet: update})
	}))
	return u
}

// SetStatus sets the "status" field.
func (u *CreditIncomeUpsertBulk) SetStatus(v string) *CreditIncomeUpsertBulk {
	return u.Update(func(s *CreditIncomeUpsert) {
		s.SetStatus(v)
	})
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *CreditIncomeUpsertBulk) UpdateStatus() *CreditIncomeUpsertBulk {
	return u.Update(func(s *CreditIncomeUpsert) {
		s.UpdateStatus()
	})
}

// SetUpdatedAt sets the "updated_at" field.
func (u *CreditIncomeUpsertBulk) SetUpdatedAt(v time.Time) *CreditIncomeUpsertBulk {
	return u.Update(func(s *CreditIncomeUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *CreditIncomeUpsertBulk) UpdateUpdatedAt() *CreditIncomeUpsertBulk {
	return u.Update(func(s *CreditIncomeUpsert) {
		s.UpdateUpdatedAt()
	})
}

// SetUpdatedBy sets the "updated_by" field.
func (u *CreditIncomeUpsertBulk) SetUpdatedBy(v string) *CreditIncomeUpsertBulk {
	return u.Update(func(s *CreditIncomeUpsert) {
		s.SetUpdatedBy(v)
	})
}

// UpdateUpdatedBy sets the "updated_by" field to the value that was provided on create.
func (u *CreditIncomeUpsertBulk) UpdateUpdatedBy() *CreditIncomeUpsertBulk {
	return u.Update(func(s *CreditIncomeUpsert) {
		s.UpdateUpdatedBy()
	})
}

// ClearUpdatedBy clears the value of the "updated_by" field.
func (u *CreditIncomeUpsertBulk) ClearUpdatedBy() *CreditIncomeUpsertBulk {
	return u.Update(func(s *CreditIncomeUpsert) {
		s.ClearUpdatedBy()
	})
}

// SetDescription sets the "description" field.
func (u *CreditIncomeUpsertBulk) SetDescription(v string) *CreditIncomeUpsertBulk {
	return u.Update(func(s *CreditIncomeUpsert) {
		s.SetDescription(v)
	})
}

// UpdateDescription sets the "description" field to the value that was provided on create.
func (u *CreditIncomeUpsertBulk) UpdateDescription() *CreditIncomeUpsertBulk {
	return u.Update(func(s *CreditIncomeUpsert) {
		s.UpdateDescription()
	})
}

// Exec executes the query.
func (u *CreditIncomeUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the CreditIncomeCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for CreditIncomeCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *CreditIncomeUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

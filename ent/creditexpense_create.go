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
	"github.com/lib/pq"
	"github.com/pocketwise/pocketwise/ent/creditbill"
	"github.com/pocketwise/pocketwise/ent/creditcard"
	"github.com/pocketwise/pocketwise/ent/creditexpense"
	"github.com/pocketwise/pocketwise/ent/creditincome"
	"github.com/pocketwise/pocketwise/ent/refundevent"
	"github.com/pocketwise/pocketwise/internal/types"
	"github.com/shopspring/decimal"
)

// CreditExpenseCreate is the builder for creating a CreditExpense entity.
type CreditExpenseCreate struct {
	config
	mutation *CreditExpenseMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetUserID sets the "user_id" field.
func (cec *CreditExpenseCreate) SetUserID(s string) *CreditExpenseCreate {
	cec.mutation.SetUserID(s)
	return cec
}

// SetStatus sets the "status" field.
func (cec *CreditExpenseCreate) SetStatus(s string) *CreditExpenseCreate {
	cec.mutation.SetStatus(s)
	return cec
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (cec *CreditExpenseCreate) SetNillableStatus(s *string) *CreditExpenseCreate {
	if s != nil {
		cec.SetStatus(*s)
	}
	return cec
}

// SetCreatedAt sets the "created_at" field.
func (cec *CreditExpenseCreate) SetCreatedAt(t time.Time) *CreditExpenseCreate {
	cec.mutation.SetCreatedAt(t)
	return cec
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (cec *CreditExpenseCreate) SetNillableCreatedAt(t *time.Time) *CreditExpenseCreate {
	if t != nil {
		cec.SetCreatedAt(*t)
	}
	return cec
}

// SetUpdatedAt sets the "updated_at" field.
func (cec *CreditExpenseCreate) SetUpdatedAt(t time.Time) *CreditExpenseCreate {
	cec.mutation.SetUpdatedAt(t)
	return cec
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (cec *CreditExpenseCreate) SetNillableUpdatedAt(t *time.Time) *CreditExpenseCreate {
	if t != nil {
		cec.SetUpdatedAt(*t)
	}
	return cec
}

// SetCreatedBy sets the "created_by" field.
func (cec *CreditExpenseCreate) SetCreatedBy(s string) *CreditExpenseCreate {
	cec.mutation.SetCreatedBy(s)
	return cec
}

// SetNillableCreatedBy sets the "created_by" field if the given value is not nil.
func (cec *CreditExpenseCreate) SetNillableCreatedBy(s *string) *CreditExpenseCreate {
	if s != nil {
		cec.SetCreatedBy(*s)
	}
	return cec
}

// SetUpdatedBy sets the "updated_by" field.
func (cec *CreditExpenseCreate) SetUpdatedBy(s string) *CreditExpenseCreate {
	cec.mutation.SetUpdatedBy(s)
	return cec
}

// SetNillableUpdatedBy sets the "updated_by" field if the given value is not nil.
func (cec *CreditExpenseCreate) SetNillableUpdatedBy(s *string) *CreditExpenseCreate {
	if s != nil {
		cec.SetUpdatedBy(*s)
	}
	return cec
}

// SetCreditCardID sets the "credit_card_id" field.
func (cec *CreditExpenseCreate) SetCreditCardID(s string) *CreditExpenseCreate {
	cec.mutation.SetCreditCardID(s)
	return cec
}

// SetDescription sets the "description" field.
func (cec *CreditExpenseCreate) SetDescription(s string) *CreditExpenseCreate {
	cec.mutation.SetDescription(s)
	return cec
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (cec *CreditExpenseCreate) SetNillableDescription(s *string) *CreditExpenseCreate {
	if s != nil {
		cec.SetDescription(*s)
	}
	return cec
}

// SetAmount sets the "amount" field.
func (cec *CreditExpenseCreate) SetAmount(d decimal.Decimal) *CreditExpenseCreate {
	cec.mutation.SetAmount(d)
	return cec
}

// SetPurchaseDate sets the "purchase_date" field.
func (cec *CreditExpenseCreate) SetPurchaseDate(t time.Time) *CreditExpenseCreate {
	cec.mutation.SetPurchaseDate(t)
	return cec
}

// SetInstallments sets the "installments" field.
func (cec *CreditExpenseCreate) SetInstallments(i int) *CreditExpenseCreate {
	cec.mutation.SetInstallments(i)
	return cec
}

// SetNillableInstallments sets the "installments" field if the given value is not nil.
func (cec *CreditExpenseCreate) SetNillableInstallments(i *int) *CreditExpenseCreate {
	if i != nil {
		cec.SetInstallments(*i)
	}
	return cec
}

// SetInstallmentNumber sets the "installment_number" field.
func (cec *CreditExpenseCreate) SetInstallmentNumber(i int) *CreditExpenseCreate {
	cec.mutation.SetInstallmentNumber(i)
	return cec
}

// SetNillableInstallmentNumber sets the "installment_number" field if the given value is not nil.
func (cec *CreditExpenseCreate) SetNillableInstallmentNumber(i *int) *CreditExpenseCreate {
	if i != nil {
		cec.SetInstallmentNumber(*i)
	}
	return cec
}

// SetExpenseType sets the "expense_type" field.
func (cec *CreditExpenseCreate) SetExpenseType(tet types.CreditExpenseType) *CreditExpenseCreate {
	cec.mutation.SetExpenseType(tet)
	return cec
}

// SetNillableExpenseType sets the "expense_type" field if the given value is not nil.
func (cec *CreditExpenseCreate) SetNillableExpenseType(tet *types.CreditExpenseType) *CreditExpenseCreate {
	if tet != nil {
		cec.SetExpenseType(*tet)
	}
	return cec
}

// SetParentExpenseID sets the "parent_expense_id" field.
func (cec *CreditExpenseCreate) SetParentExpenseID(s string) *CreditExpenseCreate {
	cec.mutation.SetParentExpenseID(s)
	return cec
}

// SetNillableParentExpenseID sets the "parent_expense_id" field if the given value is not nil.
func (cec *CreditExpenseCreate) SetNillableParentExpenseID(s *string) *CreditExpenseCreate {
	if s != nil {
		cec.SetParentExpenseID(*s)
	}
	return cec
}

// SetCreditBillID sets the "credit_bill_id" field.
func (cec *CreditExpenseCreate) SetCreditBillID(s string) *CreditExpenseCreate {
	cec.mutation.SetCreditBillID(s)
	return cec
}

// SetNillableCreditBillID sets the "credit_bill_id" field if the given value is not nil.
func (cec *CreditExpenseCreate) SetNillableCreditBillID(s *string) *CreditExpenseCreate {
	if s != nil {
		cec.SetCreditBillID(*s)
	}
	return cec
}

// SetDueDate sets the "due_date" field.
func (cec *CreditExpenseCreate) SetDueDate(t time.Time) *CreditExpenseCreate {
	cec.mutation.SetDueDate(t)
	return cec
}

// SetNillableDueDate sets the "due_date" field if the given value is not nil.
func (cec *CreditExpenseCreate) SetNillableDueDate(t *time.Time) *CreditExpenseCreate {
	if t != nil {
		cec.SetDueDate(*t)
	}
	return cec
}

// SetTags sets the "tags" field.
func (cec *CreditExpenseCreate) SetTags(pa pq.StringArray) *CreditExpenseCreate {
	cec.mutation.SetTags(pa)
	return cec
}

// SetID sets the "id" field.
func (cec *CreditExpenseCreate) SetID(s string) *CreditExpenseCreate {
	cec.mutation.SetID(s)
	return cec
}

// SetCreditCard sets the "credit_card" edge to the CreditCard entity.
func (cec *CreditExpenseCreate) SetCreditCard(c *CreditCard) *CreditExpenseCreate {
	return cec.SetCreditCardID(c.ID)
}

// SetParentID sets the "parent" edge to the CreditExpense entity by ID.
func (cec *CreditExpenseCreate) SetParentID(id string) *CreditExpenseCreate {
	cec.mutation.SetParentID(id)
	return cec
}

// SetNillableParentID sets the "parent" edge to the CreditExpense entity by ID if the given value is not nil.
func (cec *CreditExpenseCreate) SetNillableParentID(id *string) *CreditExpenseCreate {
	if id != nil {
		cec = cec.SetParentID(*id)
	}
	return cec
}

// SetParent sets the "parent" edge to the CreditExpense entity.
func (cec *CreditExpenseCreate) SetParent(c *CreditExpense) *CreditExpenseCreate {
	return cec.SetParentID(c.ID)
}

// AddChildIDs adds the "children" edge to the CreditExpense entity by IDs.
func (cec *CreditExpenseCreate) AddChildIDs(ids ...string) *CreditExpenseCreate {
	cec.mutation.AddChildIDs(ids...)
	return cec
}

// AddChildren adds the "children" edges to the CreditExpense entity.
func (cec *CreditExpenseCreate) AddChildren(c ...*CreditExpense) *CreditExpenseCreate {
	ids := make([]string, len(c))
	for i := range c {
		ids[i] = c[i].ID
	}
	return cec.AddChildIDs(ids...)
}

// SetCreditBill sets the "credit_bill" edge to the CreditBill entity.
func (cec *CreditExpenseCreate) SetCreditBill(c *CreditBill) *CreditExpenseCreate {
	return cec.SetCreditBillID(c.ID)
}

// AddCreditIncomeIDs adds the "credit_incomes" edge to the CreditIncome entity by IDs.
func (cec *CreditExpenseCreate) AddCreditIncomeIDs(ids ...string) *CreditExpenseCreate {
	cec.mutation.AddCreditIncomeIDs(ids...)
	return cec
}

// AddCreditIncomes adds the "credit_incomes" edges to the CreditIncome entity.
func (cec *CreditExpenseCreate) AddCreditIncomes(c ...*CreditIncome) *CreditExpenseCreate {
	ids := make([]string, len(c))
	for i := range c {
		ids[i] = c[i].ID
	}
	return cec.AddCreditIncomeIDs(ids...)
}

// AddRefundEventIDs adds the "refund_events" edge to the RefundEvent entity by IDs.
func (cec *CreditExpenseCreate) AddRefundEventIDs(ids ...string) *CreditExpenseCreate {
	cec.mutation.AddRefundEventIDs(ids...)
	return cec
}

// AddRefundEvents adds the "refund_events" edges to the RefundEvent entity.
func (cec *CreditExpenseCreate) AddRefundEvents(r ...*RefundEvent) *CreditExpenseCreate {
	ids := make([]string, len(r))
	for i := range r {
		ids[i] = r[i].ID
	}
	return cec.AddRefundEventIDs(ids...)
}

// Mutation returns the CreditExpenseMutation object of the builder.
func (cec *CreditExpenseCreate) Mutation() *CreditExpenseMutation {
	return cec.mutation
}

// Save creates the CreditExpense in the database.
func (cec *CreditExpenseCreate) Save(ctx context.Context) (*CreditExpense, error) {
	cec.defaults()
	return withHooks(ctx, cec.sqlSave, cec.mutation, cec.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (cec *CreditExpenseCreate) SaveX(ctx context.Context) *CreditExpense {
	v, err := cec.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (cec *CreditExpenseCreate) Exec(ctx context.Context) error {
	_, err := cec.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (cec *CreditExpenseCreate) ExecX(ctx context.Context) {
	if err := cec.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (cec *CreditExpenseCreate) defaults() {
	if _, ok := cec.mutation.Status(); !ok {
		v := creditexpense.DefaultStatus
		cec.mutation.SetStatus(v)
	}
	if _, ok := cec.mutation.CreatedAt(); !ok {
		v := creditexpense.DefaultCreatedAt()
		cec.mutation.SetCreatedAt(v)
	}
	if _, ok := cec.mutation.UpdatedAt(); !ok {
		v := creditexpense.DefaultUpdatedAt()
		cec.mutation.SetUpdatedAt(v)
	}
	if _, ok := cec.mutation.Description(); !ok {
		v := creditexpense.DefaultDescription
		cec.mutation.SetDescription(v)
	}
	if _, ok := cec.mutation.Installments(); !ok {
		v := creditexpense.DefaultInstallments
		cec.mutation.SetInstallments(v)
	}
	if _, ok := cec.mutation.InstallmentNumber(); !ok {
		v := creditexpense.DefaultInstallmentNumber
		cec.mutation.SetInstallmentNumber(v)
	}
	if _, ok := cec.mutation.ExpenseType(); !ok {
		v := creditexpense.DefaultExpenseType
		cec.mutation.SetExpenseType(v)
	}
	if _, ok := cec.mutation.Tags(); !ok {
		v := creditexpense.DefaultTags
		cec.mutation.SetTags(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (cec *CreditExpenseCreate) check() error {
	if _, ok := cec.mutation.UserID(); !ok {
		return &ValidationError{Name: "user_id", err: errors.New(`ent: missing required field "CreditExpense.user_id"`)}
	}
	if v, ok := cec.mutation.UserID(); ok {
		if err := creditexpense.UserIDValidator(v); err != nil {
			return &ValidationError{Name: "user_id", err: fmt.Errorf(`ent: validator failed for field "CreditExpense.user_id": %w`, err)}
		}
	}
	if _, ok := cec.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "CreditExpense.status"`)}
	}
	if _, ok := cec.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "CreditExpense.created_at"`)}
	}
	if _, ok := cec.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "CreditExpense.updated_at"`)}
	}
	if _, ok := cec.mutation.CreditCardID(); !ok {
		return &ValidationError{Name: "credit_card_id", err: errors.New(`ent: missing required field "CreditExpense.credit_card_id"`)}
	}
	if v, ok := cec.mutation.CreditCardID(); ok {
		if err := creditexpense.CreditCardIDValidator(v); err != nil {
			return &ValidationError{Name: "credit_card_id", err: fmt.Errorf(`ent: validator failed for field "CreditExpense.credit_card_id": %w`, err)}
		}
	}
	if _, ok := cec.mutation.Description(); !ok {
		return &ValidationError{Name: "description", err: errors.New(`ent: missing required field "CreditExpense.description"`)}
	}
	if _, ok := cec.mutation.Amount(); !ok {
		return &ValidationError{Name: "amount", err: errors.New(`ent: missing required field "CreditExpense.amount"`)}
	}
	if _, ok := cec.mutation.PurchaseDate(); !ok {
		return &ValidationError{Name: "purchase_date", err: errors.New(`ent: missing required field "CreditExpense.purchase_date"`)}
	}
	if _, ok := cec.mutation.Installments(); !ok {
		return &ValidationError{Name: "installments", err: errors.New(`ent: missing required field "CreditExpense.installments"`)}
	}
	if _, ok := cec.mutation.InstallmentNumber(); !ok {
		return &ValidationError{Name: "installment_number", err: errors.New(`ent: missing required field "CreditExpense.installment_number"`)}
	}
	if _, ok := cec.mutation.ExpenseType(); !ok {
		return &ValidationError{Name: "expense_type", err: errors.New(`ent: missing required field "CreditExpense.expense_type"`)}
	}
	if v, ok := cec.mutation.ExpenseType(); ok {
		if err := v.Validate(); err != nil {
			return &ValidationError{Name: "expense_type", err: fmt.Errorf(`ent: validator failed for field "CreditExpense.expense_type": %w`, err)}
		}
	}
	if _, ok := cec.mutation.Tags(); !ok {
		return &ValidationError{Name: "tags", err: errors.New(`ent: missing required field "CreditExpense.tags"`)}
	}
	if len(cec.mutation.CreditCardIDs()) == 0 {
		return &ValidationError{Name: "credit_card", err: errors.New(`ent: missing required edge "CreditExpense.credit_card"`)}
	}
	return nil
}

func (cec *CreditExpenseCreate) sqlSave(ctx context.Context) (*CreditExpense, error) {
	if err := cec.check(); err != nil {
		return nil, err
	}
	_node, _spec := cec.createSpec()
	if err := sqlgraph.CreateNode(ctx, cec.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(string); ok {
			_node.ID = id
		} else {
			return nil, fmt.Errorf("unexpected CreditExpense.ID type: %T", _spec.ID.Value)
		}
	}
	cec.mutation.id = &_node.ID
	cec.mutation.done = true
	return _node, nil
}

func (cec *CreditExpenseCreate) createSpec() (*CreditExpense, *sqlgraph.CreateSpec) {
	var (
		_node = &CreditExpense{config: cec.config}
		_spec = sqlgraph.NewCreateSpec(creditexpense.Table, sqlgraph.NewFieldSpec(creditexpense.FieldID, field.TypeString))
	)
	_spec.OnConflict = cec.conflict
	if id, ok := cec.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := cec.mutation.UserID(); ok {
		_spec.SetField(creditexpense.FieldUserID, field.TypeString, value)
		_node.UserID = value
	}
	if value, ok := cec.mutation.Status(); ok {
		_spec.SetField(creditexpense.FieldStatus, field.TypeString, value)
		_node.Status = value
	}
	if value, ok := cec.mutation.CreatedAt(); ok {
		_spec.SetField(creditexpense.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := cec.mutation.UpdatedAt(); ok {
		_spec.SetField(creditexpense.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if value, ok := cec.mutation.CreatedBy(); ok {
		_spec.SetField(creditexpense.FieldCreatedBy, field.TypeString, value)
		_node.CreatedBy = value
	}
	if value, ok := cec.mutation.UpdatedBy(); ok {
		_spec.SetField(creditexpense.FieldUpdatedBy, field.TypeString, value)
		_node.UpdatedBy = value
	}
	if value, ok := cec.mutation.Description(); ok {
		_spec.SetField(creditexpense.FieldDescription, field.TypeString, value)
		_node.Description = value
	}
	if value, ok := cec.mutation.Amount(); ok {
		_spec.SetField(creditexpense.FieldAmount, field.TypeOther, value)
		_node.Amount = value
	}
	if value, ok := cec.mutation.PurchaseDate(); ok {
		_spec.SetField(creditexpense.FieldPurchaseDate, field.TypeTime, value)
		_node.PurchaseDate = value
	}
	if value, ok := cec.mutation.Installments(); ok {
		_spec.SetField(creditexpense.FieldInstallments, field.TypeInt, value)
		_node.Installments = value
	}
	if value, ok := cec.mutation.InstallmentNumber(); ok {
		_spec.SetField(creditexpense.FieldInstallmentNumber, field.TypeInt, value)
		_node.InstallmentNumber = value
	}
	if value, ok := cec.mutation.ExpenseType(); ok {
		_spec.SetField(creditexpense.FieldExpenseType, field.TypeString, value)
		_node.ExpenseType = value
	}
	if value, ok := cec.mutation.DueDate(); ok {
		_spec.SetField(creditexpense.FieldDueDate, field.TypeTime, value)
		_node.DueDate = &value
	}
	if value, ok := cec.mutation.Tags(); ok {
		_spec.SetField(creditexpense.FieldTags, field.TypeOther, value)
		_node.Tags = value
	}
	if nodes := cec.mutation.CreditCardIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   creditexpense.CreditCardTable,
			Columns: []string{creditexpense.CreditCardColumn},
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
	if nodes := cec.mutation.ParentIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   creditexpense.ParentTable,
			Columns: []string{creditexpense.ParentColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(creditexpense.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.ParentExpenseID = &nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := cec.mutation.ChildrenIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   creditexpense.ChildrenTable,
			Columns: []string{creditexpense.ChildrenColumn},
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
	if nodes := cec.mutation.CreditBillIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   creditexpense.CreditBillTable,
			Columns: []string{creditexpense.CreditBillColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(creditbill.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.CreditBillID = &nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := cec.mutation.CreditIncomesIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   creditexpense.CreditIncomesTable,
			Columns: []string{creditexpense.CreditIncomesColumn},
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
	if nodes := cec.mutation.RefundEventsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   creditexpense.RefundEventsTable,
			Columns: []string{creditexpense.RefundEventsColumn},
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
//	client.CreditExpense.Create().
//		SetUserID(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.CreditExpenseUpsert) {
//			SetUserID(v+v).
//		}).
//		Exec(ctx)
func (cec *CreditExpenseCreate) OnConflict(opts ...sql.ConflictOption) *CreditExpenseUpsertOne {
	cec.conflict = opts
	return &CreditExpenseUpsertOne{
		create: cec,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.CreditExpense.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (cec *CreditExpenseCreate) OnConflictColumns(columns ...string) *CreditExpenseUpsertOne {
	cec.conflict = append(cec.conflict, sql.ConflictColumns(columns...))
	return &CreditExpenseUpsertOne{
		create: cec,
	}
}

type (
	// CreditExpenseUpsertOne is the builder for "upsert"-ing
	//  one CreditExpense node.
	CreditExpenseUpsertOne struct {
		create *CreditExpenseCreate
	}

	// CreditExpenseUpsert is the "OnConflict" setter.
	CreditExpenseUpsert struct {
		*sql.UpdateSet
	}
)

// SetStatus sets the "status" field.
func (u *CreditExpenseUpsert) SetStatus(v string) *CreditExpenseUpsert {
	u.Set(creditexpense.FieldStatus, v)
	return u
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *CreditExpenseUpsert) UpdateStatus() *CreditExpenseUpsert {
	u.SetExcluded(creditexpense.FieldStatus)
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *CreditExpenseUpsert) SetUpdatedAt(v time.Time) *CreditExpenseUpsert {
	u.Set(creditexpense.FieldUpdatedAt, v)
	return u
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *CreditExpenseUpsert) UpdateUpdatedAt() *CreditExpenseUpsert {
	u.SetExcluded(creditexpense.FieldUpdatedAt)
	return u
}

// SetUpdatedBy sets the "updated_by" field.
func (u *CreditExpenseUpsert) SetUpdatedBy(v string) *CreditExpenseUpsert {
	u.Set(creditexpense.FieldUpdatedBy, v)
	return u
}

// UpdateUpdatedBy sets the "updated_by" field to the value that was provided on create.
func (u *CreditExpenseUpsert) UpdateUpdatedBy() *CreditExpenseUpsert {
	u.SetExcluded(creditexpense.FieldUpdatedBy)
	return u
}

// ClearUpdatedBy clears the value of the "updated_by" field.
func (u *CreditExpenseUpsert) ClearUpdatedBy() *CreditExpenseUpsert {
	u.SetNull(creditexpense.FieldUpdatedBy)
	return u
}

// SetDescription sets the "description" field.
func (u *CreditExpenseUpsert) SetDescription(v string) *CreditExpenseUpsert {
	u.Set(creditexpense.FieldDescription, v)
	return u
}

// UpdateDescription sets the "description" field to the value that was provided on create.
func (u *CreditExpenseUpsert) UpdateDescription() *CreditExpenseUpsert {
	u.SetExcluded(creditexpense.FieldDescription)
	return u
}

// SetAmount sets the "amount" field.
func (u *CreditExpenseUpsert) SetAmount(v decimal.Decimal) *CreditExpenseUpsert {
	u.Set(creditexpense.FieldAmount, v)
	return u
}

// UpdateAmount sets the "amount" field to the value that was provided on create.
func (u *CreditExpenseUpsert) UpdateAmount() *CreditExpenseUpsert {
	u.SetExcluded(creditexpense.FieldAmount)
	return u
}

// SetCreditBillID sets the "credit_bill_id" field.
func (u *CreditExpenseUpsert) SetCreditBillID(v string) *CreditExpenseUpsert {
	u.Set(creditexpense.FieldCreditBillID, v)
	return u
}

// UpdateCreditBillID sets the "credit_bill_id" field to the value that was provided on create.
func (u *CreditExpenseUpsert) UpdateCreditBillID() *CreditExpenseUpsert {
	u.SetExcluded(creditexpense.FieldCreditBillID)
	return u
}

// ClearCreditBillID clears the value of the "credit_bill_id" field.
func (u *CreditExpenseUpsert) ClearCreditBillID() *CreditExpenseUpsert {
	u.SetNull(creditexpense.FieldCreditBillID)
	return u
}

// SetDueDate sets the "due_date" field.
func (u *CreditExpenseUpsert) SetDueDate(v time.Time) *CreditExpenseUpsert {
	u.Set(creditexpense.FieldDueDate, v)
	return u
}

// UpdateDueDate sets the "due_date" field to the value that was provided on create.
func (u *CreditExpenseUpsert) UpdateDueDate() *CreditExpenseUpsert {
	u.SetExcluded(creditexpense.FieldDueDate)
	return u
}

// ClearDueDate clears the value of the "due_date" field.
func (u *CreditExpenseUpsert) ClearDueDate() *CreditExpenseUpsert {
	u.SetNull(creditexpense.FieldDueDate)
	return u
}

// SetTags sets the "tags" field.
func (u *CreditExpenseUpsert) SetTags(v pq.StringArray) *CreditExpenseUpsert {
	u.Set(creditexpense.FieldTags, v)
	return u
}

// UpdateTags sets the "tags" field to the value that was provided on create.
func (u *CreditExpenseUpsert) UpdateTags() *CreditExpenseUpsert {
	u.SetExcluded(creditexpense.FieldTags)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.CreditExpense.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(creditexpense.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *CreditExpenseUpsertOne) UpdateNewValues() *CreditExpenseUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(creditexpense.FieldID)
		}
		if _, exists := u.create.mutation.UserID(); exists {
			s.SetIgnore(creditexpense.FieldUserID)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(creditexpense.FieldCreatedAt)
		}
		if _, exists := u.create.mutation.CreatedBy(); exists {
			s.SetIgnore(creditexpense.FieldCreatedBy)
		}
		if _, exists := u.create.mutation.CreditCardID(); exists {
			s.SetIgnore(creditexpense.FieldCreditCardID)
		}
		if _, exists := u.create.mutation.PurchaseDate(); exists {
			s.SetIgnore(creditexpense.FieldPurchaseDate)
		}
		if _, exists := u.create.mutation.Installments(); exists {
			s.SetIgnore(creditexpense.FieldInstallments)
		}
		if _, exists := u.create.mutation.InstallmentNumber(); exists {
			s.SetIgnore(creditexpense.FieldInstallmentNumber)
		}
		if _, exists := u.create.mutation.ExpenseType(); exists {
			s.SetIgnore(creditexpense.FieldExpenseType)
		}
		if _, exists := u.create.mutation.ParentExpenseID(); exists {
			s.SetIgnore(creditexpense.FieldParentExpenseID)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.CreditExpense.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *CreditExpenseUpsertOne) Ignore() *CreditExpenseUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *CreditExpenseUpsertOne) DoNothing() *CreditExpenseUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the CreditExpenseCreate.OnConflict
// documentation for more info.
func (u *CreditExpenseUpsertOne) Update(set func(*CreditExpenseUpsert)) *CreditExpenseUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&CreditExpenseUpsert{UpdateSet: update})
	}))
	return u
}

// SetStatus sets the "status" field.
func (u *CreditExpenseUpsertOne) SetStatus(v string) *CreditExpenseUpsertOne {
	return u.Update(func(s *CreditExpenseUpsert) {
		s.SetStatus(v)
	})
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *CreditExpenseUpsertOne) UpdateStatus() *CreditExpenseUpsertOne {
	return u.Update(func(s *CreditExpenseUpsert) {
		s.UpdateStatus()
	})
}

// SetUpdatedAt sets the "updated_at" field.
func (u *CreditExpenseUpsertOne) SetUpdatedAt(v time.Time) *CreditExpenseUpsertOne {
	return u.Update(func(s *CreditExpenseUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *CreditExpenseUpsertOne) UpdateUpdatedAt() *CreditExpenseUpsertOne {
	return u.Update(func(s *CreditExpenseUpsert) {
		s.UpdateUpdatedAt()
	})
}

// SetUpdatedBy sets the "updated_by" field.
func (u *CreditExpenseUpsertOne) SetUpdatedBy(v string) *CreditExpenseUpsertOne {
	return u.Update(func(s *CreditExpenseUpsert) {
		s.SetUpdatedBy(v)
	})
}

// UpdateUpdatedBy sets the "updated_by" field to the value that was provided on create.
func (u *CreditExpenseUpsertOne) UpdateUpdatedBy() *CreditExpenseUpsertOne {
	return u.Update(func(s *CreditExpenseUpsert) {
		s.UpdateUpdatedBy()
	})
}

// ClearUpdatedBy clears the value of the "updated_by" field.
func (u *CreditExpenseUpsertOne) ClearUpdatedBy() *CreditExpenseUpsertOne {
	return u.Update(func(s *CreditExpenseUpsert) {
		s.ClearUpdatedBy()
	})
}

// SetDescription sets the "description" field.
func (u *CreditExpenseUpsertOne) SetDescription(v string) *CreditExpenseUpsertOne {
	return u.Update(func(s *CreditExpenseUpsert) {
		s.SetDescription(v)
	})
}

// UpdateDescription sets the "description" field to the value that was provided on create.
func (u *CreditExpenseUpsertOne) UpdateDescription() *CreditExpenseUpsertOne {
	return u.Update(func(s *CreditExpenseUpsert) {
		s.UpdateDescription()
	})
}

// SetAmount sets the "amount" field.
func (u *CreditExpenseUpsertOne) SetAmount(v decimal.Decimal) *CreditExpenseUpsertOne {
	return u.Update(func(s *CreditExpenseUpsert) {
		s.SetAmount(v)
	})
}

// UpdateAmount sets the "amount" field to the value that was provided on create.
func (u *CreditExpenseUpsertOne) UpdateAmount() *CreditExpenseUpsertOne {
	return u.Update(func(s *CreditExpenseUpsert) {
		s.UpdateAmount()
	})
}

// SetCreditBillID sets the "credit_bill_id" field.
func (u *CreditExpenseUpsertOne) SetCreditBillID(v string) *CreditExpenseUpsertOne {
	return u.Update(func(s *CreditExpenseUpsert) {
		s.SetCreditBillID(v)
	})
}

// UpdateCreditBillID sets the "credit_bill_id" field to the value that was provided on create.
func (u *CreditExpenseUpsertOne) UpdateCreditBillID() *CreditExpenseUpsertOne {
	return u.Update(func(s *CreditExpenseUpsert) {
		s.UpdateCreditBillID()
	})
}

// ClearCreditBillID clears the value of the "credit_bill_id" field.
func (u *CreditExpenseUpsertOne) ClearCreditBillID() *CreditExpenseUpsertOne {
	return u.Update(func(s *CreditExpenseUpsert) {
		s.ClearCreditBillID()
	})
}

// SetDueDate sets the "due_date" field.
func (u *CreditExpenseUpsertOne) SetDueDate(v time.Time) *CreditExpenseUpsertOne {
	return u.Update(func(s *CreditExpenseUpsert) {
		s.SetDueDate(v)
	})
}

// UpdateDueDate sets the "due_date" field to the value that was provided on create.
func (u *CreditExpenseUpsertOne) UpdateDueDate() *CreditExpenseUpsertOne {
	return u.Update(func(s *CreditExpenseUpsert) {
		s.UpdateDueDate()
	})
}

// ClearDueDate clears the value of the "due_date" field.
func (u *CreditExpenseUpsertOne) ClearDueDate() *CreditExpenseUpsertOne {
	return u.Update(func(s *CreditExpenseUpsert) {
		s.ClearDueDate()
	})
}

// SetTags sets the "tags" field.
func (u *CreditExpenseUpsertOne) SetTags(v pq.StringArray) *CreditExpenseUpsertOne {
	return u.Update(func(s *CreditExpenseUpsert) {
		s.SetTags(v)
	})
}

// UpdateTags sets the "tags" field to the value that was provided on create.
func (u *CreditExpenseUpsertOne) UpdateTags() *CreditExpenseUpsertOne {
	return u.Update(func(s *CreditExpenseUpsert) {
		s.UpdateTags()
	})
}

// Exec executes the query.
func (u *CreditExpenseUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for CreditExpenseCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *CreditExpenseUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *CreditExpenseUpsertOne) ID(ctx context.Context) (id string, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: CreditExpenseUpsertOne.ID is not supported by MySQL driver. Use CreditExpenseUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *CreditExpenseUpsertOne) IDX(ctx context.Context) string {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// CreditExpenseCreateBulk is the builder for creating many CreditExpense entities in bulk.
type CreditExpenseCreateBulk struct {
	config
	err      error
	builders []*CreditExpenseCreate
	conflict []sql.ConflictOption
}

// Save creates the CreditExpense entities in the database.
func (cecb *CreditExpenseCreateBulk) Save(ctx context.Context) ([]*CreditExpense, error) {
	if cecb.err != nil {
		return nil, cecb.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(cecb.builders))
	nodes := make([]*CreditExpense, len(cecb.builders))
	mutators := make([]Mutator, len(cecb.builders))
	for i := range cecb.builders {
		func(i int, root context.Context) {
			builder := cecb.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*CreditExpenseMutation)
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
					_, err = mutators[i+1].Mutate(root, cecb.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					spec.OnConflict = cecb.conflict
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, cecb.driver, spec); err != nil {
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
		if _, err := mutators[0].Mutate(ctx, cecb.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (cecb *CreditExpenseCreateBulk) SaveX(ctx context.Context) []*CreditExpense {
	v, err := cecb.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (cecb *CreditExpenseCreateBulk) Exec(ctx context.Context) error {
	_, err := cecb.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (cecb *CreditExpenseCreateBulk) ExecX(ctx context.Context) {
	if err := cecb.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.CreditExpense.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.CreditExpenseUpsert) {
//			SetUserID(v+v).
//		}).
//		Exec(ctx)
func (cecb *CreditExpenseCreateBulk) OnConflict(opts ...sql.ConflictOption) *CreditExpenseUpsertBulk {
	cecb.conflict = opts
	return &CreditExpenseUpsertBulk{
		create: cecb,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.CreditExpense.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (cecb *CreditExpenseCreateBulk) OnConflictColumns(columns ...string) *CreditExpenseUpsertBulk {
	cecb.conflict = append(cecb.conflict, sql.ConflictColumns(columns...))
	return &CreditExpenseUpsertBulk{
		create: cecb,
	}
}

// CreditExpenseUpsertBulk is the builder for "upsert"-ing
// a bulk of CreditExpense nodes.
type CreditExpenseUpsertBulk struct {
	create *CreditExpenseCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.CreditExpense.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(creditexpense.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *CreditExpenseUpsertBulk) UpdateNewValues() *CreditExpenseUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(creditexpense.FieldID)
			}
			if _, exists := b.mutation.UserID(); exists {
				s.SetIgnore(creditexpense.FieldUserID)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(creditexpense.FieldCreatedAt)
			}
			if _, exists := b.mutation.CreatedBy(); exists {
				s.SetIgnore(creditexpense.FieldCreatedBy)
			}
			if _, exists := b.mutation.CreditCardID(); exists {
				s.SetIgnore(creditexpense.FieldCreditCardID)
			}
			if _, exists := b.mutation.PurchaseDate(); exists {
				s.SetIgnore(creditexpense.FieldPurchaseDate)
			}
			if _, exists := b.mutation.Installments(); exists {
				s.SetIgnore(creditexpense.FieldInstallments)
			}
			if _, exists := b.mutation.InstallmentNumber(); exists {
				s.SetIgnore(creditexpense.FieldInstallmentNumber)
			}
			if _, exists := b.mutation.ExpenseType(); exists {
				s.SetIgnore(creditexpense.FieldExpenseType)
			}
			if _, exists := b.mutation.ParentExpenseID(); exists {
				s.SetIgnore(creditexpense.FieldParentExpenseID)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.CreditExpense.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *CreditExpenseUpsertBulk) Ignore() *CreditExpenseUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *CreditExpenseUpsertBulk) DoNothing() *CreditExpenseUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the CreditExpenseCreateBulk.OnConflict
// documentation for more info.
func (u *CreditExpenseUpsertBulk) Update(set func(*CreditExpenseUpsert)) *CreditExpenseUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&CreditExpenseUpsert{UpdateSet: update})
	}))
	return u
}

// SetStatus sets the "status" field.
func (u *CreditExpenseUpsertBulk) SetStatus(v string) *CreditExpenseUpsertBulk {
	return u.Update(func(s *CreditExpenseUpsert) {
		s.SetStatus(v)
	})
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *CreditExpenseUpsertBulk) UpdateStatus() *CreditExpenseUpsertBulk {
	return u.Update(func(s *CreditExpenseUpsert) {
		s.UpdateStatus()
	})
}

// SetUpdatedAt sets the "updated_at" field.
func (u *CreditExpenseUpsertBulk) SetUpdatedAt(v time.Time) *CreditExpenseUpsertBulk {
	return u.Update(func(s *CreditExpenseUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *CreditExpenseUpsertBulk) UpdateUpdatedAt() *CreditExpenseUpsertBulk {
	return u.Update(func(s *CreditExpenseUpsert) {
		s.UpdateUpdatedAt()
	})
}

// SetUpdatedBy sets the "updated_by" field.
func (u *CreditExpenseUpsertBulk) SetUpdatedBy(v string) *CreditExpenseUpsertBulk {
	return u.Update(func(s *CreditExpenseUpsert) {
		s.SetUpdatedBy(v)
	})
}

// UpdateUpdatedBy sets the "updated_by" field to the value that was provided on create.
func (u *CreditExpenseUpsertBulk) UpdateUpdatedBy() *CreditExpenseUpsertBulk {
	return u.Update(func(s *CreditExpenseUpsert) {
		s.UpdateUpdatedBy()
	})
}

// ClearUpdatedBy clears the value of the "updated_by" field.
func (u *CreditExpenseUpsertBulk) ClearUpdatedBy() *CreditExpenseUpsertBulk {
	return u.Update(func(s *CreditExpenseUpsert) {
		s.ClearUpdatedBy()
	})
}

// SetDescription sets the "description" field.
func (u *CreditExpenseUpsertBulk) SetDescription(v string) *CreditExpenseUpsertBulk {
	return u.Update(func(s *CreditExpenseUpsert) {
		s.SetDescription(v)
	})
}

// UpdateDescription sets the "description" field to the value that was provided on create.
func (u *CreditExpenseUpsertBulk) UpdateDescription() *CreditExpenseUpsertBulk {
	return u.Update(func(s *CreditExpenseUpsert) {
		s.UpdateDescription()
	})
}

// SetAmount sets the "amount" field.
func (u *CreditExpenseUpsertBulk) SetAmount(v decimal.Decimal) *CreditExpenseUpsertBulk {
	return u.Update(func(s *CreditExpenseUpsert) {
		s.SetAmount(v)
	})
}

// UpdateAmount sets the "amount" field to the value that was provided on create.
func (u *CreditExpenseUpsertBulk) UpdateAmount() *CreditExpenseUpsertBulk {
	return u.Update(func(s *CreditExpenseUpsert) {
		s.UpdateAmount()
	})
}

// SetCreditBillID sets the "credit_bill_id" field.
func (u *CreditExpenseUpsertBulk) SetCreditBillID(v string) *CreditExpenseUpsertBulk {
	return u.Update(func(s *CreditExpenseUpsert) {
		s.SetCreditBillID(v)
	})
}

// UpdateCreditBillID sets the "credit_bill_id" field to the value that was provided on create.
func (u *CreditExpenseUpsertBulk) UpdateCreditBillID() *CreditExpenseUpsertBulk {
	return u.Update(func(s *CreditExpenseUpsert) {
		s.UpdateCreditBillID()
	})
}

// ClearCreditBillID clears the value of the "credit_bill_id" field.
func (u *CreditExpenseUpsertBulk) ClearCreditBillID() *CreditExpenseUpsertBulk {
	return u.Update(func(s *CreditExpenseUpsert) {
		s.ClearCreditBillID()
	})
}

// SetDueDate sets the "due_date" field.
func (u *CreditExpenseUpsertBulk) SetDueDate(v time.Time) *CreditExpenseUpsertBulk {
	return u.Update(func(s *CreditExpenseUpsert) {
		s.SetDueDate(v)
	})
}

// UpdateDueDate sets the "due_date" field to the value that was provided on create.
func (u *CreditExpenseUpsertBulk) UpdateDueDate() *CreditExpenseUpsertBulk {
	return u.Update(func(s *CreditExpenseUpsert) {
		s.UpdateDueDate()
	})
}

// ClearDueDate clears the value of the "due_date" field.
func (u *CreditExpenseUpsertBulk) ClearDueDate() *CreditExpenseUpsertBulk {
	return u.Update(func(s *CreditExpenseUpsert) {
		s.ClearDueDate()
	})
}

// SetTags sets the "tags" field.
func (u *CreditExpenseUpsertBulk) SetTags(v pq.StringArray) *CreditExpenseUpsertBulk {
	return u.Update(func(s *CreditExpenseUpsert) {
		s.SetTags(v)
	})
}

// UpdateTags sets the "tags" field to the value that was provided on create.
func (u *CreditExpenseUpsertBulk) UpdateTags() *CreditExpenseUpsertBulk {
	return u.Update(func(s *CreditExpenseUpsert) {
		s.UpdateTags()
	})
}

// Exec executes the query.
func (u *CreditExpenseUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the CreditExpenseCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for CreditExpenseCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *CreditExpenseUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

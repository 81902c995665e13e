// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/pocketwise/pocketwise/ent/creditbill"
	"github.com/pocketwise/pocketwise/ent/creditexpense"
	"github.com/pocketwise/pocketwise/ent/creditincome"
	"github.com/pocketwise/pocketwise/ent/predicate"
	"github.com/pocketwise/pocketwise/internal/types"
	"github.com/shopspring/decimal"
)

// CreditBillUpdate is the builder for updating CreditBill entities.
type CreditBillUpdate struct {
	config
	hooks    []Hook
	mutation *CreditBillMutation
}

// Where appends a list predicates to the CreditBillUpdate builder.
func (cbu *CreditBillUpdate) Where(ps ...predicate.CreditBill) *CreditBillUpdate {
	cbu.mutation.Where(ps...)
	return cbu
}

// SetStatus sets the "status" field.
func (cbu *CreditBillUpdate) SetStatus(s string) *CreditBillUpdate {
	cbu.mutation.SetStatus(s)
	return cbu
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (cbu *CreditBillUpdate) SetNillableStatus(s *string) *CreditBillUpdate {
	if s != nil {
		cbu.SetStatus(*s)
	}
	return cbu
}

// SetUpdatedAt sets the "updated_at" field.
func (cbu *CreditBillUpdate) SetUpdatedAt(t time.Time) *CreditBillUpdate {
	cbu.mutation.SetUpdatedAt(t)
	return cbu
}

// SetUpdatedBy sets the "updated_by" field.
func (cbu *CreditBillUpdate) SetUpdatedBy(s string) *CreditBillUpdate {
	cbu.mutation.SetUpdatedBy(s)
	return cbu
}

// SetNillableUpdatedBy sets the "updated_by" field if the given value is not nil.
func (cbu *CreditBillUpdate) SetNillableUpdatedBy(s *string) *CreditBillUpdate {
	if s != nil {
		cbu.SetUpdatedBy(*s)
	}
	return cbu
}

// ClearUpdatedBy clears the value of the "updated_by" field.
func (cbu *CreditBillUpdate) ClearUpdatedBy() *CreditBillUpdate {
	cbu.mutation.ClearUpdatedBy()
	return cbu
}

// SetDueDate sets the "due_date" field.
func (cbu *CreditBillUpdate) SetDueDate(t time.Time) *CreditBillUpdate {
	cbu.mutation.SetDueDate(t)
	return cbu
}

// SetNillableDueDate sets the "due_date" field if the given value is not nil.
func (cbu *CreditBillUpdate) SetNillableDueDate(t *time.Time) *CreditBillUpdate {
	if t != nil {
		cbu.SetDueDate(*t)
	}
	return cbu
}

// SetTotalAmount sets the "total_amount" field.
func (cbu *CreditBillUpdate) SetTotalAmount(d decimal.Decimal) *CreditBillUpdate {
	cbu.mutation.SetTotalAmount(d)
	return cbu
}

// SetNillableTotalAmount sets the "total_amount" field if the given value is not nil.
func (cbu *CreditBillUpdate) SetNillableTotalAmount(d *decimal.Decimal) *CreditBillUpdate {
	if d != nil {
		cbu.SetTotalAmount(*d)
	}
	return cbu
}

// SetPaidAmount sets the "paid_amount" field.
func (cbu *CreditBillUpdate) SetPaidAmount(d decimal.Decimal) *CreditBillUpdate {
	cbu.mutation.SetPaidAmount(d)
	return cbu
}

// SetNillablePaidAmount sets the "paid_amount" field if the given value is not nil.
func (cbu *CreditBillUpdate) SetNillablePaidAmount(d *decimal.Decimal) *CreditBillUpdate {
	if d != nil {
		cbu.SetPaidAmount(*d)
	}
	return cbu
}

// SetBillStatus sets the "bill_status" field.
func (cbu *CreditBillUpdate) SetBillStatus(tbs types.CreditBillStatus) *CreditBillUpdate {
	cbu.mutation.SetBillStatus(tbs)
	return cbu
}

// SetNillableBillStatus sets the "bill_status" field if the given value is not nil.
func (cbu *CreditBillUpdate) SetNillableBillStatus(tbs *types.CreditBillStatus) *CreditBillUpdate {
	if tbs != nil {
		cbu.SetBillStatus(*tbs)
	}
	return cbu
}

// SetPaidAt sets the "paid_at" field.
func (cbu *CreditBillUpdate) SetPaidAt(t time.Time) *CreditBillUpdate {
	cbu.mutation.SetPaidAt(t)
	return cbu
}

// SetNillablePaidAt sets the "paid_at" field if the given value is not nil.
func (cbu *CreditBillUpdate) SetNillablePaidAt(t *time.Time) *CreditBillUpdate {
	if t != nil {
		cbu.SetPaidAt(*t)
	}
	return cbu
}

// ClearPaidAt clears the value of the "paid_at" field.
func (cbu *CreditBillUpdate) ClearPaidAt() *CreditBillUpdate {
	cbu.mutation.ClearPaidAt()
	return cbu
}

// AddCreditExpenseIDs adds the "credit_expenses" edge to the CreditExpense entity by IDs.
func (cbu *CreditBillUpdate) AddCreditExpenseIDs(ids ...string) *CreditBillUpdate {
	cbu.mutation.AddCreditExpenseIDs(ids...)
	return cbu
}

// AddCreditExpenses adds the "credit_expenses" edges to the CreditExpense entity.
func (cbu *CreditBillUpdate) AddCreditExpenses(c ...*CreditExpense) *CreditBillUpdate {
	ids := make([]string, len(c))
	for i := range c {
		ids[i] = c[i].ID
	}
	return cbu.AddCreditExpenseIDs(ids...)
}

// AddCreditIncomeIDs adds the "credit_incomes" edge to the CreditIncome entity by IDs.
func (cbu *CreditBillUpdate) AddCreditIncomeIDs(ids ...string) *CreditBillUpdate {
	cbu.mutation.AddCreditIncomeIDs(ids...)
	return cbu
}

// AddCreditIncomes adds the "credit_incomes" edges to the CreditIncome entity.
func (cbu *CreditBillUpdate) AddCreditIncomes(c ...*CreditIncome) *CreditBillUpdate {
	ids := make([]string, len(c))
	for i := range c {
		ids[i] = c[i].ID
	}
	return cbu.AddCreditIncomeIDs(ids...)
}

// Mutation returns the CreditBillMutation object of the builder.
func (cbu *CreditBillUpdate) Mutation() *CreditBillMutation {
	return cbu.mutation
}

// ClearCreditExpenses clears all "credit_expenses" edges to the CreditExpense entity.
func (cbu *CreditBillUpdate) ClearCreditExpenses() *CreditBillUpdate {
	cbu.mutation.ClearCreditExpenses()
	return cbu
}

// RemoveCreditExpenseIDs removes the "credit_expenses" edge to CreditExpense entities by IDs.
func (cbu *CreditBillUpdate) RemoveCreditExpenseIDs(ids ...string) *CreditBillUpdate {
	cbu.mutation.RemoveCreditExpenseIDs(ids...)
	return cbu
}

// RemoveCreditExpenses removes "credit_expenses" edges to CreditExpense entities.
func (cbu *CreditBillUpdate) RemoveCreditExpenses(c ...*CreditExpense) *CreditBillUpdate {
	ids := make([]string, len(c))
	for i := range c {
		ids[i] = c[i].ID
	}
	return cbu.RemoveCreditExpenseIDs(ids...)
}

// ClearCreditIncomes clears all "credit_incomes" edges to the CreditIncome entity.
func (cbu *CreditBillUpdate) ClearCreditIncomes() *CreditBillUpdate {
	cbu.mutation.ClearCreditIncomes()
	return cbu
}

// RemoveCreditIncomeIDs removes the "credit_incomes" edge to CreditIncome entities by IDs.
func (cbu *CreditBillUpdate) RemoveCreditIncomeIDs(ids ...string) *CreditBillUpdate {
	cbu.mutation.RemoveCreditIncomeIDs(ids...)
	return cbu
}

// RemoveCreditIncomes removes "credit_incomes" edges to CreditIncome entities.
func (cbu *CreditBillUpdate) RemoveCreditIncomes(c ...*CreditIncome) *CreditBillUpdate {
	ids := make([]string, len(c))
	for i := range c {
		ids[i] = c[i].ID
	}
	return cbu.RemoveCreditIncomeIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (cbu *CreditBillUpdate) Save(ctx context.Context) (int, error) {
	cbu.defaults()
	return withHooks(ctx, cbu.sqlSave, cbu.mutation, cbu.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (cbu *CreditBillUpdate) SaveX(ctx context.Context) int {
	affected, err := cbu.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (cbu *CreditBillUpdate) Exec(ctx context.Context) error {
	_, err := cbu.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (cbu *CreditBillUpdate) ExecX(ctx context.Context) {
	if err := cbu.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (cbu *CreditBillUpdate) defaults() {
	if _, ok := cbu.mutation.UpdatedAt(); !ok {
		v := creditbill.UpdateDefaultUpdatedAt()
		cbu.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (cbu *CreditBillUpdate) check() error {
	if v, ok := cbu.mutation.BillStatus(); ok {
		if err := v.Validate(); err != nil {
			return &ValidationError{Name: "bill_status", err: fmt.Errorf(`ent: validator failed for field "CreditBill.bill_status": %w`, err)}
		}
	}
	if cbu.mutation.CreditCardCleared() && len(cbu.mutation.CreditCardIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "CreditBill.credit_card"`)
	}
	return nil
}

func (cbu *CreditBillUpdate) sqlSave(ctx context.Context) (n int, err error) {
	if err := cbu.check(); err != nil {
		return n, err
	}
	_spec := sqlgraph.NewUpdateSpec(creditbill.Table, creditbill.Columns, sqlgraph.NewFieldSpec(creditbill.FieldID, field.TypeString))
	if ps := cbu.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := cbu.mutation.Status(); ok {
		_spec.SetField(creditbill.FieldStatus, field.TypeString, value)
	}
	if value, ok := cbu.mutation.UpdatedAt(); ok {
		_spec.SetField(creditbill.FieldUpdatedAt, field.TypeTime, value)
	}
	if cbu.mutation.CreatedByCleared() {
		_spec.ClearField(creditbill.FieldCreatedBy, field.TypeString)
	}
	if value, ok := cbu.mutation.UpdatedBy(); ok {
		_spec.SetField(creditbill.FieldUpdatedBy, field.TypeString, value)
	}
	if cbu.mutation.UpdatedByCleared() {
		_spec.ClearField(creditbill.FieldUpdatedBy, field.TypeString)
	}
	if value, ok := cbu.mutation.DueDate(); ok {
		_spec.SetField(creditbill.FieldDueDate, field.TypeTime, value)
	}
	if value, ok := cbu.mutation.TotalAmount(); ok {
		_spec.SetField(creditbill.FieldTotalAmount, field.TypeOther, value)
	}
	if value, ok := cbu.mutation.PaidAmount(); ok {
		_spec.SetField(creditbill.FieldPaidAmount, field.TypeOther, value)
	}
	if value, ok := cbu.mutation.BillStatus(); ok {
		_spec.SetField(creditbill.FieldBillStatus, field.TypeString, value)
	}
	if value, ok := cbu.mutation.PaidAt(); ok {
		_spec.SetField(creditbill.FieldPaidAt, field.TypeTime, value)
	}
	if cbu.mutation.PaidAtCleared() {
		_spec.ClearField(creditbill.FieldPaidAt, field.TypeTime)
	}
	if cbu.mutation.CreditExpensesCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := cbu.mutation.RemovedCreditExpensesIDs(); len(nodes) > 0 && !cbu.mutation.CreditExpensesCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := cbu.mutation.CreditExpensesIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if cbu.mutation.CreditIncomesCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := cbu.mutation.RemovedCreditIncomesIDs(); len(nodes) > 0 && !cbu.mutation.CreditIncomesCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := cbu.mutation.CreditIncomesIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if n, err = sqlgraph.UpdateNodes(ctx, cbu.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{creditbill.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	cbu.mutation.done = true
	return n, nil
}

// CreditBillUpdateOne is the builder for updating a single CreditBill entity.
type CreditBillUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *CreditBillMutation
}

// SetStatus sets the "status" field.
func (cbuo *CreditBillUpdateOne) SetStatus(s string) *CreditBillUpdateOne {
	cbuo.mutation.SetStatus(s)
	return cbuo
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (cbuo *CreditBillUpdateOne) SetNillableStatus(s *string) *CreditBillUpdateOne {
	if s != nil {
		cbuo.SetStatus(*s)
	}
	return cbuo
}

// SetUpdatedAt sets the "updated_at" field.
func (cbuo *CreditBillUpdateOne) SetUpdatedAt(t time.Time) *CreditBillUpdateOne {
	cbuo.mutation.SetUpdatedAt(t)
	return cbuo
}

// SetUpdatedBy sets the "updated_by" field.
func (cbuo *CreditBillUpdateOne) SetUpdatedBy(s string) *CreditBillUpdateOne {
	cbuo.mutation.SetUpdatedBy(s)
	return cbuo
}

// SetNillableUpdatedBy sets the "updated_by" field if the given value is not nil.
func (cbuo *CreditBillUpdateOne) SetNillableUpdatedBy(s *string) *CreditBillUpdateOne {
	if s != nil {
		cbuo.SetUpdatedBy(*s)
	}
	return cbuo
}

// ClearUpdatedBy clears the value of the "updated_by" field.
func (cbuo *CreditBillUpdateOne) ClearUpdatedBy() *CreditBillUpdateOne {
	cbuo.mutation.ClearUpdatedBy()
	return cbuo
}

// SetDueDate sets the "due_date" field.
func (cbuo *CreditBillUpdateOne) SetDueDate(t time.Time) *CreditBillUpdateOne {
	cbuo.mutation.SetDueDate(t)
	return cbuo
}

// SetNillableDueDate sets the "due_date" field if the given value is not nil.
func (cbuo *CreditBillUpdateOne) SetNillableDueDate(t *time.Time) *CreditBillUpdateOne {
	if t != nil {
		cbuo.SetDueDate(*t)
	}
	return cbuo
}

// SetTotalAmount sets the "total_amount" field.
func (cbuo *CreditBillUpdateOne) SetTotalAmount(d decimal.Decimal) *CreditBillUpdateOne {
	cbuo.mutation.SetTotalAmount(d)
	return cbuo
}

// SetNillableTotalAmount sets the "total_amount" field if the given value is not nil.
func (cbuo *CreditBillUpdateOne) SetNillableTotalAmount(d *decimal.Decimal) *CreditBillUpdateOne {
	if d != nil {
		cbuo.SetTotalAmount(*d)
	}
	return cbuo
}

// SetPaidAmount sets the "paid_amount" field.
func (cbuo *CreditBillUpdateOne) SetPaidAmount(d decimal.Decimal) *CreditBillUpdateOne {
	cbuo.mutation.SetPaidAmount(d)
	return cbuo
}

// SetNillablePaidAmount sets the "paid_amount" field if the given value is not nil.
func (cbuo *CreditBillUpdateOne) SetNillablePaidAmount(d *decimal.Decimal) *CreditBillUpdateOne {
	if d != nil {
		cbuo.SetPaidAmount(*d)
	}
	return cbuo
}

// SetBillStatus sets the "bill_status" field.
func (cbuo *CreditBillUpdateOne) SetBillStatus(tbs types.CreditBillStatus) *CreditBillUpdateOne {
	cbuo.mutation.SetBillStatus(tbs)
	return cbuo
}

// SetNillableBillStatus sets the "bill_status" field if the given value is not nil.
func (cbuo *CreditBillUpdateOne) SetNillableBillStatus(tbs *types.CreditBillStatus) *CreditBillUpdateOne {
	if tbs != nil {
		cbuo.SetBillStatus(*tbs)
	}
	return cbuo
}

// SetPaidAt sets the "paid_at" field.
func (cbuo *CreditBillUpdateOne) SetPaidAt(t time.Time) *CreditBillUpdateOne {
	cbuo.mutation.SetPaidAt(t)
	return cbuo
}

// SetNillablePaidAt sets the "paid_at" field if the given value is not nil.
func (cbuo *CreditBillUpdateOne) SetNillablePaidAt(t *time.Time) *CreditBillUpdateOne {
	if t != nil {
		cbuo.SetPaidAt(*t)
	}
	return cbuo
}

// ClearPaidAt clears the value of the "paid_at" field.
func (cbuo *CreditBillUpdateOne) ClearPaidAt() *CreditBillUpdateOne {
	cbuo.mutation.ClearPaidAt()
	return cbuo
}

// AddCreditExpenseIDs adds the "credit_expenses" edge to the CreditExpense entity by IDs.
func (cbuo *CreditBillUpdateOne) AddCreditExpenseIDs(ids ...string) *CreditBillUpdateOne {
	cbuo.mutation.AddCreditExpenseIDs(ids...)
	return cbuo
}

// AddCreditExpenses adds the "credit_expenses" edges to the CreditExpense entity.
func (cbuo *CreditBillUpdateOne) AddCreditExpenses(c ...*CreditExpense) *CreditBillUpdateOne {
	ids := make([]string, len(c))
	for i := range c {
		ids[i] = c[i].ID
	}
	return cbuo.AddCreditExpenseIDs(ids...)
}

// AddCreditIncomeIDs adds the "credit_incomes" edge to the CreditIncome entity by IDs.
func (cbuo *CreditBillUpdateOne) AddCreditIncomeIDs(ids ...string) *CreditBillUpdateOne {
	cbuo.mutation.AddCreditIncomeIDs(ids...)
	return cbuo
}

// AddCreditIncomes adds the "credit_incomes" edges to the CreditIncome entity.
func (cbuo *CreditBillUpdateOne) AddCreditIncomes(c ...*CreditIncome) *CreditBillUpdateOne {
	ids := make([]string, len(c))
	for i := range c {
		ids[i] = c[i].ID
	}
	return cbuo.AddCreditIncomeIDs(ids...)
}

// Mutation returns the CreditBillMutation object of the builder.
func (cbuo *CreditBillUpdateOne) Mutation() *CreditBillMutation {
	return cbuo.mutation
}

// ClearCreditExpenses clears all "credit_expenses" edges to the CreditExpense entity.
func (cbuo *CreditBillUpdateOne) ClearCreditExpenses() *CreditBillUpdateOne {
	cbuo.mutation.ClearCreditExpenses()
	return cbuo
}

// RemoveCreditExpenseIDs removes the "credit_expenses" edge to CreditExpense entities by IDs.
func (cbuo *CreditBillUpdateOne) RemoveCreditExpenseIDs(ids ...string) *CreditBillUpdateOne {
	cbuo.mutation.RemoveCreditExpenseIDs(ids...)
	return cbuo
}

// RemoveCreditExpenses removes "credit_expenses" edges to CreditExpense entities.
func (cbuo *CreditBillUpdateOne) RemoveCreditExpenses(c ...*CreditExpense) *CreditBillUpdateOne {
	ids := make([]string, len(c))
	for i := range c {
		ids[i] = c[i].ID
	}
	return cbuo.RemoveCreditExpenseIDs(ids...)
}

// ClearCreditIncomes clears all "credit_incomes" edges to the CreditIncome entity.
func (cbuo *CreditBillUpdateOne) ClearCreditIncomes() *CreditBillUpdateOne {
	cbuo.mutation.ClearCreditIncomes()
	return cbuo
}

// RemoveCreditIncomeIDs removes the "credit_incomes" edge to CreditIncome entities by IDs.
func (cbuo *CreditBillUpdateOne) RemoveCreditIncomeIDs(ids ...string) *CreditBillUpdateOne {
	cbuo.mutation.RemoveCreditIncomeIDs(ids...)
	return cbuo
}

// RemoveCreditIncomes removes "credit_incomes" edges to CreditIncome entities.
func (cbuo *CreditBillUpdateOne) RemoveCreditIncomes(c ...*CreditIncome) *CreditBillUpdateOne {
	ids := make([]string, len(c))
	for i := range c {
		ids[i] = c[i].ID
	}
	return cbuo.RemoveCreditIncomeIDs(ids...)
}

// Where appends a list predicates to the CreditBillUpdate builder.
func (cbuo *CreditBillUpdateOne) Where(ps ...predicate.CreditBill) *CreditBillUpdateOne {
	cbuo.mutation.Where(ps...)
	return cbuo
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (cbuo *CreditBillUpdateOne) Select(field string, fields ...string) *CreditBillUpdateOne {
	cbuo.fields = append([]string{field}, fields...)
	return cbuo
}

// Save executes the query and returns the updated CreditBill entity.
func (cbuo *CreditBillUpdateOne) Save(ctx context.Context) (*CreditBill, error) {
	cbuo.defaults()
	return withHooks(ctx, cbuo.sqlSave, cbuo.mutation, cbuo.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (cbuo *CreditBillUpdateOne) SaveX(ctx context.Context) *CreditBill {
	node, err := cbuo.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (cbuo *CreditBillUpdateOne) Exec(ctx context.Context) error {
	_, err := cbuo.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (cbuo *CreditBillUpdateOne) ExecX(ctx context.Context) {
	if err := cbuo.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (cbuo *CreditBillUpdateOne) defaults() {
	if _, ok := cbuo.mutation.UpdatedAt(); !ok {
		v := creditbill.UpdateDefaultUpdatedAt()
		cbuo.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (cbuo *CreditBillUpdateOne) check() error {
	if v, ok := cbuo.mutation.BillStatus(); ok {
		if err := v.Validate(); err != nil {
			return &ValidationError{Name: "bill_status", err: fmt.Errorf(`ent: validator failed for field "CreditBill.bill_status": %w`, err)}
		}
	}
	if cbuo.mutation.CreditCardCleared() && len(cbuo.mutation.CreditCardIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "CreditBill.credit_card"`)
	}
	return nil
}

func (cbuo *CreditBillUpdateOne) sqlSave(ctx context.Context) (_node *CreditBill, err error) {
	if err := cbuo.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(creditbill.Table, creditbill.Columns, sqlgraph.NewFieldSpec(creditbill.FieldID, field.TypeString))
	id, ok := cbuo.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "CreditBill.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := cbuo.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, creditbill.FieldID)
		for _, f := range fields {
			if !creditbill.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != creditbill.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := cbuo.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := cbuo.mutation.Status(); ok {
		_spec.SetField(creditbill.FieldStatus, field.TypeString, value)
	}
	if value, ok := cbuo.mutation.UpdatedAt(); ok {
		_spec.SetField(creditbill.FieldUpdatedAt, field.TypeTime, value)
	}
	if cbuo.mutation.CreatedByCleared() {
		_spec.ClearField(creditbill.FieldCreatedBy, field.TypeString)
	}
	if value, ok := cbuo.mutation.UpdatedBy(); ok {
		_spec.SetField(creditbill.FieldUpdatedBy, field.TypeString, value)
	}
	if cbuo.mutation.UpdatedByCleared() {
		_spec.ClearField(creditbill.FieldUpdatedBy, field.TypeString)
	}
	if value, ok := cbuo.mutation.DueDate(); ok {
		_spec.SetField(creditbill.FieldDueDate, field.TypeTime, value)
	}
	if value, ok := cbuo.mutation.TotalAmount(); ok {
		_spec.SetField(creditbill.FieldTotalAmount, field.TypeOther, value)
	}
	if value, ok := cbuo.mutation.PaidAmount(); ok {
		_spec.SetField(creditbill.FieldPaidAmount, field.TypeOther, value)
	}
	if value, ok := cbuo.mutation.BillStatus(); ok {
		_spec.SetField(creditbill.FieldBillStatus, field.TypeString, value)
	}
	if value, ok := cbuo.mutation.PaidAt(); ok {
		_spec.SetField(creditbill.FieldPaidAt, field.TypeTime, value)
	}
	if cbuo.mutation.PaidAtCleared() {
		_spec.ClearField(creditbill.FieldPaidAt, field.TypeTime)
	}
	if cbuo.mutation.CreditExpensesCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := cbuo.mutation.RemovedCreditExpensesIDs(); len(nodes) > 0 && !cbuo.mutation.CreditExpensesCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := cbuo.mutation.CreditExpensesIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if cbuo.mutation.CreditIncomesCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := cbuo.mutation.RemovedCreditIncomesIDs(); len(nodes) > 0 && !cbuo.mutation.CreditIncomesCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := cbuo.mutation.CreditIncomesIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &CreditBill{config: cbuo.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, cbuo.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{creditbill.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	cbuo.mutation.done = true
	return _node, nil
}

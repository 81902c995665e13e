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
	"github.com/pocketwise/pocketwise/ent/creditcard"
	"github.com/pocketwise/pocketwise/ent/creditexpense"
	"github.com/pocketwise/pocketwise/ent/creditincome"
	"github.com/pocketwise/pocketwise/ent/predicate"
	"github.com/pocketwise/pocketwise/ent/refundevent"
	"github.com/shopspring/decimal"
)

// CreditCardUpdate is the builder for updating CreditCard entities.
type CreditCardUpdate struct {
	config
	hooks    []Hook
	mutation *CreditCardMutation
}

// Where appends a list predicates to the CreditCardUpdate builder.
func (ccu *CreditCardUpdate) Where(ps ...predicate.CreditCard) *CreditCardUpdate {
	ccu.mutation.Where(ps...)
	return ccu
}

// SetStatus sets the "status" field.
func (ccu *CreditCardUpdate) SetStatus(s string) *CreditCardUpdate {
	ccu.mutation.SetStatus(s)
	return ccu
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (ccu *CreditCardUpdate) SetNillableStatus(s *string) *CreditCardUpdate {
	if s != nil {
		ccu.SetStatus(*s)
	}
	return ccu
}

// SetUpdatedAt sets the "updated_at" field.
func (ccu *CreditCardUpdate) SetUpdatedAt(t time.Time) *CreditCardUpdate {
	ccu.mutation.SetUpdatedAt(t)
	return ccu
}

// SetUpdatedBy sets the "updated_by" field.
func (ccu *CreditCardUpdate) SetUpdatedBy(s string) *CreditCardUpdate {
	ccu.mutation.SetUpdatedBy(s)
	return ccu
}

// SetNillableUpdatedBy sets the "updated_by" field if the given value is not nil.
func (ccu *CreditCardUpdate) SetNillableUpdatedBy(s *string) *CreditCardUpdate {
	if s != nil {
		ccu.SetUpdatedBy(*s)
	}
	return ccu
}

// ClearUpdatedBy clears the value of the "updated_by" field.
func (ccu *CreditCardUpdate) ClearUpdatedBy() *CreditCardUpdate {
	ccu.mutation.ClearUpdatedBy()
	return ccu
}

// SetName sets the "name" field.
func (ccu *CreditCardUpdate) SetName(s string) *CreditCardUpdate {
	ccu.mutation.SetName(s)
	return ccu
}

// SetNillableName sets the "name" field if the given value is not nil.
func (ccu *CreditCardUpdate) SetNillableName(s *string) *CreditCardUpdate {
	if s != nil {
		ccu.SetName(*s)
	}
	return ccu
}

// SetClosingDay sets the "closing_day" field.
func (ccu *CreditCardUpdate) SetClosingDay(i int) *CreditCardUpdate {
	ccu.mutation.ResetClosingDay()
	ccu.mutation.SetClosingDay(i)
	return ccu
}

// SetNillableClosingDay sets the "closing_day" field if the given value is not nil.
func (ccu *CreditCardUpdate) SetNillableClosingDay(i *int) *CreditCardUpdate {
	if i != nil {
		ccu.SetClosingDay(*i)
	}
	return ccu
}

// AddClosingDay adds i to the "closing_day" field.
func (ccu *CreditCardUpdate) AddClosingDay(i int) *CreditCardUpdate {
	ccu.mutation.AddClosingDay(i)
	return ccu
}

// SetDueDay sets the "due_day" field.
func (ccu *CreditCardUpdate) SetDueDay(i int) *CreditCardUpdate {
	ccu.mutation.ResetDueDay()
	ccu.mutation.SetDueDay(i)
	return ccu
}

// SetNillableDueDay sets the "due_day" field if the given value is not nil.
func (ccu *CreditCardUpdate) SetNillableDueDay(i *int) *CreditCardUpdate {
	if i != nil {
		ccu.SetDueDay(*i)
	}
	return ccu
}

// AddDueDay adds i to the "due_day" field.
func (ccu *CreditCardUpdate) AddDueDay(i int) *CreditCardUpdate {
	ccu.mutation.AddDueDay(i)
	return ccu
}

// SetCreditLimit sets the "credit_limit" field.
func (ccu *CreditCardUpdate) SetCreditLimit(d decimal.Decimal) *CreditCardUpdate {
	ccu.mutation.SetCreditLimit(d)
	return ccu
}

// SetNillableCreditLimit sets the "credit_limit" field if the given value is not nil.
func (ccu *CreditCardUpdate) SetNillableCreditLimit(d *decimal.Decimal) *CreditCardUpdate {
	if d != nil {
		ccu.SetCreditLimit(*d)
	}
	return ccu
}

// AddCreditBillIDs adds the "credit_bills" edge to the CreditBill entity by IDs.
func (ccu *CreditCardUpdate) AddCreditBillIDs(ids ...string) *CreditCardUpdate {
	ccu.mutation.AddCreditBillIDs(ids...)
	return ccu
}

// AddCreditBills adds the "credit_bills" edges to the CreditBill entity.
func (ccu *CreditCardUpdate) AddCreditBills(c ...*CreditBill) *CreditCardUpdate {
	ids := make([]string, len(c))
	for i := range c {
		ids[i] = c[i].ID
	}
	return ccu.AddCreditBillIDs(ids...)
}

// AddCreditExpenseIDs adds the "credit_expenses" edge to the CreditExpense entity by IDs.
func (ccu *CreditCardUpdate) AddCreditExpenseIDs(ids ...string) *CreditCardUpdate {
	ccu.mutation.AddCreditExpenseIDs(ids...)
	return ccu
}

// AddCreditExpenses adds the "credit_expenses" edges to the CreditExpense entity.
func (ccu *CreditCardUpdate) AddCreditExpenses(c ...*CreditExpense) *CreditCardUpdate {
	ids := make([]string, len(c))
	for i := range c {
		ids[i] = c[i].ID
	}
	return ccu.AddCreditExpenseIDs(ids...)
}

// AddCreditIncomeIDs adds the "credit_incomes" edge to the CreditIncome entity by IDs.
func (ccu *CreditCardUpdate) AddCreditIncomeIDs(ids ...string) *CreditCardUpdate {
	ccu.mutation.AddCreditIncomeIDs(ids...)
	return ccu
}

// AddCreditIncomes adds the "credit_incomes" edges to the CreditIncome entity.
func (ccu *CreditCardUpdate) AddCreditIncomes(c ...*CreditIncome) *CreditCardUpdate {
	ids := make([]string, len(c))
	for i := range c {
		ids[i] = c[i].ID
	}
	return ccu.AddCreditIncomeIDs(ids...)
}

// AddRefundEventIDs adds the "refund_events" edge to the RefundEvent entity by IDs.
func (ccu *CreditCardUpdate) AddRefundEventIDs(ids ...string) *CreditCardUpdate {
	ccu.mutation.AddRefundEventIDs(ids...)
	return ccu
}

// AddRefundEvents adds the "refund_events" edges to the RefundEvent entity.
func (ccu *CreditCardUpdate) AddRefundEvents(r ...*RefundEvent) *CreditCardUpdate {
	ids := make([]string, len(r))
	for i := range r {
		ids[i] = r[i].ID
	}
	return ccu.AddRefundEventIDs(ids...)
}

// Mutation returns the CreditCardMutation object of the builder.
func (ccu *CreditCardUpdate) Mutation() *CreditCardMutation {
	return ccu.mutation
}

// ClearCreditBills clears all "credit_bills" edges to the CreditBill entity.
func (ccu *CreditCardUpdate) ClearCreditBills() *CreditCardUpdate {
	ccu.mutation.ClearCreditBills()
	return ccu
}

// RemoveCreditBillIDs removes the "credit_bills" edge to CreditBill entities by IDs.
func (ccu *CreditCardUpdate) RemoveCreditBillIDs(ids ...string) *CreditCardUpdate {
	ccu.mutation.RemoveCreditBillIDs(ids...)
	return ccu
}

// RemoveCreditBills removes "credit_bills" edges to CreditBill entities.
func (ccu *CreditCardUpdate) RemoveCreditBills(c ...*CreditBill) *CreditCardUpdate {
	ids := make([]string, len(c))
	for i := range c {
		ids[i] = c[i].ID
	}
	return ccu.RemoveCreditBillIDs(ids...)
}

// ClearCreditExpenses clears all "credit_expenses" edges to the CreditExpense entity.
func (ccu *CreditCardUpdate) ClearCreditExpenses() *CreditCardUpdate {
	ccu.mutation.ClearCreditExpenses()
	return ccu
}

// RemoveCreditExpenseIDs removes the "credit_expenses" edge to CreditExpense entities by IDs.
func (ccu *CreditCardUpdate) RemoveCreditExpenseIDs(ids ...string) *CreditCardUpdate {
	ccu.mutation.RemoveCreditExpenseIDs(ids...)
	return ccu
}

// RemoveCreditExpenses removes "credit_expenses" edges to CreditExpense entities.
func (ccu *CreditCardUpdate) RemoveCreditExpenses(c ...*CreditExpense) *CreditCardUpdate {
	ids := make([]string, len(c))
	for i := range c {
		ids[i] = c[i].ID
	}
	return ccu.RemoveCreditExpenseIDs(ids...)
}

// ClearCreditIncomes clears all "credit_incomes" edges to the CreditIncome entity.
func (ccu *CreditCardUpdate) ClearCreditIncomes() *CreditCardUpdate {
	ccu.mutation.ClearCreditIncomes()
	return ccu
}

// RemoveCreditIncomeIDs removes the "credit_incomes" edge to CreditIncome entities by IDs.
func (ccu *CreditCardUpdate) RemoveCreditIncomeIDs(ids ...string) *CreditCardUpdate {
	ccu.mutation.RemoveCreditIncomeIDs(ids...)
	return ccu
}

// RemoveCreditIncomes removes "credit_incomes" edges to CreditIncome entities.
func (ccu *CreditCardUpdate) RemoveCreditIncomes(c ...*CreditIncome) *CreditCardUpdate {
	ids := make([]string, len(c))
	for i := range c {
		ids[i] = c[i].ID
	}
	return ccu.RemoveCreditIncomeIDs(ids...)
}

// ClearRefundEvents clears all "refund_events" edges to the RefundEvent entity.
func (ccu *CreditCardUpdate) ClearRefundEvents() *CreditCardUpdate {
	ccu.mutation.ClearRefundEvents()
	return ccu
}

// RemoveRefundEventIDs removes the "refund_events" edge to RefundEvent entities by IDs.
func (ccu *CreditCardUpdate) RemoveRefundEventIDs(ids ...string) *CreditCardUpdate {
	ccu.mutation.RemoveRefundEventIDs(ids...)
	return ccu
}

// RemoveRefundEvents removes "refund_events" edges to RefundEvent entities.
func (ccu *CreditCardUpdate) RemoveRefundEvents(r ...*RefundEvent) *CreditCardUpdate {
	ids := make([]string, len(r))
	for i := range r {
		ids[i] = r[i].ID
	}
	return ccu.RemoveRefundEventIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (ccu *CreditCardUpdate) Save(ctx context.Context) (int, error) {
	ccu.defaults()
	return withHooks(ctx, ccu.sqlSave, ccu.mutation, ccu.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (ccu *CreditCardUpdate) SaveX(ctx context.Context) int {
	affected, err := ccu.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (ccu *CreditCardUpdate) Exec(ctx context.Context) error {
	_, err := ccu.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (ccu *CreditCardUpdate) ExecX(ctx context.Context) {
	if err := ccu.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (ccu *CreditCardUpdate) defaults() {
	if _, ok := ccu.mutation.UpdatedAt(); !ok {
		v := creditcard.UpdateDefaultUpdatedAt()
		ccu.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (ccu *CreditCardUpdate) check() error {
	if v, ok := ccu.mutation.Name(); ok {
		if err := creditcard.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "CreditCard.name": %w`, err)}
		}
	}
	if v, ok := ccu.mutation.ClosingDay(); ok {
		if err := creditcard.ClosingDayValidator(v); err != nil {
			return &ValidationError{Name: "closing_day", err: fmt.Errorf(`ent: validator failed for field "CreditCard.closing_day": %w`, err)}
		}
	}
	if v, ok := ccu.mutation.DueDay(); ok {
		if err := creditcard.DueDayValidator(v); err != nil {
			return &ValidationError{Name: "due_day", err: fmt.Errorf(`ent: validator failed for field "CreditCard.due_day": %w`, err)}
		}
	}
	return nil
}

func (ccu *CreditCardUpdate) sqlSave(ctx context.Context) (n int, err error) {
	if err := ccu.check(); err != nil {
		return n, err
	}
	_spec := sqlgraph.NewUpdateSpec(creditcard.Table, creditcard.Columns, sqlgraph.NewFieldSpec(creditcard.FieldID, field.TypeString))
	if ps := ccu.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := ccu.mutation.Status(); ok {
		_spec.SetField(creditcard.FieldStatus, field.TypeString, value)
	}
	if value, ok := ccu.mutation.UpdatedAt(); ok {
		_spec.SetField(creditcard.FieldUpdatedAt, field.TypeTime, value)
	}
	if ccu.mutation.CreatedByCleared() {
		_spec.ClearField(creditcard.FieldCreatedBy, field.TypeString)
	}
	if value, ok := ccu.mutation.UpdatedBy(); ok {
		_spec.SetField(creditcard.FieldUpdatedBy, field.TypeString, value)
	}
	if ccu.mutation.UpdatedByCleared() {
		_spec.ClearField(creditcard.FieldUpdatedBy, field.TypeString)
	}
	if value, ok := ccu.mutation.Name(); ok {
		_spec.SetField(creditcard.FieldName, field.TypeString, value)
	}
	if value, ok := ccu.mutation.ClosingDay(); ok {
		_spec.SetField(creditcard.FieldClosingDay, field.TypeInt, value)
	}
	if value, ok := ccu.mutation.AddedClosingDay(); ok {
		_spec.AddField(creditcard.FieldClosingDay, field.TypeInt, value)
	}
	if value, ok := ccu.mutation.DueDay(); ok {
		_spec.SetField(creditcard.FieldDueDay, field.TypeInt, value)
	}
	if value, ok := ccu.mutation.AddedDueDay(); ok {
		_spec.AddField(creditcard.FieldDueDay, field.TypeInt, value)
	}
	if value, ok := ccu.mutation.CreditLimit(); ok {
		_spec.SetField(creditcard.FieldCreditLimit, field.TypeOther, value)
	}
	if ccu.mutation.CreditBillsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := ccu.mutation.RemovedCreditBillsIDs(); len(nodes) > 0 && !ccu.mutation.CreditBillsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := ccu.mutation.CreditBillsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if ccu.mutation.CreditExpensesCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := ccu.mutation.RemovedCreditExpensesIDs(); len(nodes) > 0 && !ccu.mutation.CreditExpensesCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := ccu.mutation.CreditExpensesIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if ccu.mutation.CreditIncomesCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := ccu.mutation.RemovedCreditIncomesIDs(); len(nodes) > 0 && !ccu.mutation.CreditIncomesCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := ccu.mutation.CreditIncomesIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if ccu.mutation.RefundEventsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := ccu.mutation.RemovedRefundEventsIDs(); len(nodes) > 0 && !ccu.mutation.RefundEventsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := ccu.mutation.RefundEventsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if n, err = sqlgraph.UpdateNodes(ctx, ccu.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{creditcard.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	ccu.mutation.done = true
	return n, nil
}

// CreditCardUpdateOne is the builder for updating a single CreditCard entity.
type CreditCardUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *CreditCardMutation
}

// SetStatus sets the "status" field.
func (ccuo *CreditCardUpdateOne) SetStatus(s string) *CreditCardUpdateOne {
	ccuo.mutation.SetStatus(s)
	return ccuo
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (ccuo *CreditCardUpdateOne) SetNillableStatus(s *string) *CreditCardUpdateOne {
	if s != nil {
		ccuo.SetStatus(*s)
	}
	return ccuo
}

// SetUpdatedAt sets the "updated_at" field.
func (ccuo *CreditCardUpdateOne) SetUpdatedAt(t time.Time) *CreditCardUpdateOne {
	ccuo.mutation.SetUpdatedAt(t)
	return ccuo
}

// SetUpdatedBy sets the "updated_by" field.
func (ccuo *CreditCardUpdateOne) SetUpdatedBy(s string) *CreditCardUpdateOne {
	ccuo.mutation.SetUpdatedBy(s)
	return ccuo
}

// SetNillableUpdatedBy sets the "updated_by" field if the given value is not nil.
func (ccuo *CreditCardUpdateOne) SetNillableUpdatedBy(s *string) *CreditCardUpdateOne {
	if s != nil {
		ccuo.SetUpdatedBy(*s)
	}
	return ccuo
}

// ClearUpdatedBy clears the value of the "updated_by" field.
func (ccuo *CreditCardUpdateOne) ClearUpdatedBy() *CreditCardUpdateOne {
	ccuo.mutation.ClearUpdatedBy()
	return ccuo
}

// SetName sets the "name" field.
func (ccuo *CreditCardUpdateOne) SetName(s string) *CreditCardUpdateOne {
	ccuo.mutation.SetName(s)
	return ccuo
}

// SetNillableName sets the "name" field if the given value is not nil.
func (ccuo *CreditCardUpdateOne) SetNillableName(s *string) *CreditCardUpdateOne {
	if s != nil {
		ccuo.SetName(*s)
	}
	return ccuo
}

// SetClosingDay sets the "closing_day" field.
func (ccuo *CreditCardUpdateOne) SetClosingDay(i int) *CreditCardUpdateOne {
	ccuo.mutation.ResetClosingDay()
	ccuo.mutation.SetClosingDay(i)
	return ccuo
}

// SetNillableClosingDay sets the "closing_day" field if the given value is not nil.
func (ccuo *CreditCardUpdateOne) SetNillableClosingDay(i *int) *CreditCardUpdateOne {
	if i != nil {
		ccuo.SetClosingDay(*i)
	}
	return ccuo
}

// AddClosingDay adds i to the "closing_day" field.
func (ccuo *CreditCardUpdateOne) AddClosingDay(i int) *CreditCardUpdateOne {
	ccuo.mutation.AddClosingDay(i)
	return ccuo
}

// SetDueDay sets the "due_day" field.
func (ccuo *CreditCardUpdateOne) SetDueDay(i int) *CreditCardUpdateOne {
	ccuo.mutation.ResetDueDay()
	ccuo.mutation.SetDueDay(i)
	return ccuo
}

// SetNillableDueDay sets the "due_day" field if the given value is not nil.
func (ccuo *CreditCardUpdateOne) SetNillableDueDay(i *int) *CreditCardUpdateOne {
	if i != nil {
		ccuo.SetDueDay(*i)
	}
	return ccuo
}

// AddDueDay adds i to the "due_day" field.
func (ccuo *CreditCardUpdateOne) AddDueDay(i int) *CreditCardUpdateOne {
	ccuo.mutation.AddDueDay(i)
	return ccuo
}

// SetCreditLimit sets the "credit_limit" field.
func (ccuo *CreditCardUpdateOne) SetCreditLimit(d decimal.Decimal) *CreditCardUpdateOne {
	ccuo.mutation.SetCreditLimit(d)
	return ccuo
}

// SetNillableCreditLimit sets the "credit_limit" field if the given value is not nil.
func (ccuo *CreditCardUpdateOne) SetNillableCreditLimit(d *decimal.Decimal) *CreditCardUpdateOne {
	if d != nil {
		ccuo.SetCreditLimit(*d)
	}
	return ccuo
}

// AddCreditBillIDs adds the "credit_bills" edge to the CreditBill entity by IDs.
func (ccuo *CreditCardUpdateOne) AddCreditBillIDs(ids ...string) *CreditCardUpdateOne {
	ccuo.mutation.AddCreditBillIDs(ids...)
	return ccuo
}

// AddCreditBills adds the "credit_bills" edges to the CreditBill entity.
func (ccuo *CreditCardUpdateOne) AddCreditBills(c ...*CreditBill) *CreditCardUpdateOne {
	ids := make([]string, len(c))
	for i := range c {
		ids[i] = c[i].ID
	}
	return ccuo.AddCreditBillIDs(ids...)
}

// AddCreditExpenseIDs adds the "credit_expenses" edge to the CreditExpense entity by IDs.
func (ccuo *CreditCardUpdateOne) AddCreditExpenseIDs(ids ...string) *CreditCardUpdateOne {
	ccuo.mutation.AddCreditExpenseIDs(ids...)
	return ccuo
}

// AddCreditExpenses adds the "credit_expenses" edges to the CreditExpense entity.
func (ccuo *CreditCardUpdateOne) AddCreditExpenses(c ...*CreditExpense) *CreditCardUpdateOne {
	ids := make([]string, len(c))
	for i := range c {
		ids[i] = c[i].ID
	}
	return ccuo.AddCreditExpenseIDs(ids...)
}

// AddCreditIncomeIDs adds the "credit_incomes" edge to the CreditIncome entity by IDs.
func (ccuo *CreditCardUpdateOne) AddCreditIncomeIDs(ids ...string) *CreditCardUpdateOne {
	ccuo.mutation.AddCreditIncomeIDs(ids...)
	return ccuo
}

// AddCreditIncomes adds the "credit_incomes" edges to the CreditIncome entity.
func (ccuo *CreditCardUpdateOne) AddCreditIncomes(c ...*CreditIncome) *CreditCardUpdateOne {
	ids := make([]string, len(c))
	for i := range c {
		ids[i] = c[i].ID
	}
	return ccuo.AddCreditIncomeIDs(ids...)
}

// AddRefundEventIDs adds the "refund_events" edge to the RefundEvent entity by IDs.
func (ccuo *CreditCardUpdateOne) AddRefundEventIDs(ids ...string) *CreditCardUpdateOne {
	ccuo.mutation.AddRefundEventIDs(ids...)
	return ccuo
}

// AddRefundEvents adds the "refund_events" edges to the RefundEvent entity.
func (ccuo *CreditCardUpdateOne) AddRefundEvents(r ...*RefundEvent) *CreditCardUpdateOne {
	ids := make([]string, len(r))
	for i := range r {
		ids[i] = r[i].ID
	}
	return ccuo.AddRefundEventIDs(ids...)
}

// Mutation returns the CreditCardMutation object of the builder.
func (ccuo *CreditCardUpdateOne) Mutation() *CreditCardMutation {
	return ccuo.mutation
}

// ClearCreditBills clears all "credit_bills" edges to the CreditBill entity.
func (ccuo *CreditCardUpdateOne) ClearCreditBills() *CreditCardUpdateOne {
	ccuo.mutation.ClearCreditBills()
	return ccuo
}

// RemoveCreditBillIDs removes the "credit_bills" edge to CreditBill entities by IDs.
func (ccuo *CreditCardUpdateOne) RemoveCreditBillIDs(ids ...string) *CreditCardUpdateOne {
	ccuo.mutation.RemoveCreditBillIDs(ids...)
	return ccuo
}

// RemoveCreditBills removes "credit_bills" edges to CreditBill entities.
func (ccuo *CreditCardUpdateOne) RemoveCreditBills(c ...*CreditBill) *CreditCardUpdateOne {
	ids := make([]string, len(c))
	for i := range c {
		ids[i] = c[i].ID
	}
	return ccuo.RemoveCreditBillIDs(ids...)
}

// ClearCreditExpenses clears all "credit_expenses" edges to the CreditExpense entity.
func (ccuo *CreditCardUpdateOne) ClearCreditExpenses() *CreditCardUpdateOne {
	ccuo.mutation.ClearCreditExpenses()
	return ccuo
}

// RemoveCreditExpenseIDs removes the "credit_expenses" edge to CreditExpense entities by IDs.
func (ccuo *CreditCardUpdateOne) RemoveCreditExpenseIDs(ids ...string) *CreditCardUpdateOne {
	ccuo.mutation.RemoveCreditExpenseIDs(ids...)
	return ccuo
}

// RemoveCreditExpenses removes "credit_expenses" edges to CreditExpense entities.
func (ccuo *CreditCardUpdateOne) RemoveCreditExpenses(c ...*CreditExpense) *CreditCardUpdateOne {
	ids := make([]string, len(c))
	for i := range c {
		ids[i] = c[i].ID
	}
	return ccuo.RemoveCreditExpenseIDs(ids...)
}

// ClearCreditIncomes clears all "credit_incomes" edges to the CreditIncome entity.
func (ccuo *CreditCardUpdateOne) ClearCreditIncomes() *CreditCardUpdateOne {
	ccuo.mutation.ClearCreditIncomes()
	return ccuo
}

// RemoveCreditIncomeIDs removes the "credit_incomes" edge to CreditIncome entities by IDs.
func (ccuo *CreditCardUpdateOne) RemoveCreditIncomeIDs(ids ...string) *CreditCardUpdateOne {
	ccuo.mutation.RemoveCreditIncomeIDs(ids...)
	return ccuo
}

// RemoveCreditIncomes removes "credit_incomes" edges to CreditIncome entities.
func (ccuo *CreditCardUpdateOne) RemoveCreditIncomes(c ...*CreditIncome) *CreditCardUpdateOne {
	ids := make([]string, len(c))
	for i := range c {
		ids[i] = c[i].ID
	}
	return ccuo.RemoveCreditIncomeIDs(ids...)
}

// ClearRefundEvents clears all "refund_events" edges to the RefundEvent entity.
func (ccuo *CreditCardUpdateOne) ClearRefundEvents() *CreditCardUpdateOne {
	ccuo.mutation.ClearRefundEvents()
	return ccuo
}

// RemoveRefundEventIDs removes the "refund_events" edge to RefundEvent entities by IDs.
func (ccuo *CreditCardUpdateOne) RemoveRefundEventIDs(ids ...string) *CreditCardUpdateOne {
	ccuo.mutation.RemoveRefundEventIDs(ids...)
	return ccuo
}

// RemoveRefundEvents removes "refund_events" edges to RefundEvent entities.
func (ccuo *CreditCardUpdateOne) RemoveRefundEvents(r ...*RefundEvent) *CreditCardUpdateOne {
	ids := make([]string, len(r))
	for i := range r {
		ids[i] = r[i].ID
	}
	return ccuo.RemoveRefundEventIDs(ids...)
}

// Where appends a list predicates to the CreditCardUpdate builder.
func (ccuo *CreditCardUpdateOne) Where(ps ...predicate.CreditCard) *CreditCardUpdateOne {
	ccuo.mutation.Where(ps...)
	return ccuo
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (ccuo *CreditCardUpdateOne) Select(field string, fields ...string) *CreditCardUpdateOne {
	ccuo.fields = append([]string{field}, fields...)
	return ccuo
}

// Save executes the query and returns the updated CreditCard entity.
func (ccuo *CreditCardUpdateOne) Save(ctx context.Context) (*CreditCard, error) {
	ccuo.defaults()
	return withHooks(ctx, ccuo.sqlSave, ccuo.mutation, ccuo.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (ccuo *CreditCardUpdateOne) SaveX(ctx context.Context) *CreditCard {
	node, err := ccuo.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (ccuo *CreditCardUpdateOne) Exec(ctx context.Context) error {
	_, err := ccuo.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (ccuo *CreditCardUpdateOne) ExecX(ctx context.Context) {
	if err := ccuo.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (ccuo *CreditCardUpdateOne) defaults() {
	if _, ok := ccuo.mutation.UpdatedAt(); !ok {
		v := creditcard.UpdateDefaultUpdatedAt()
		ccuo.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (ccuo *CreditCardUpdateOne) check() error {
	if v, ok := ccuo.mutation.Name(); ok {
		if err := creditcard.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "CreditCard.name": %w`, err)}
		}
	}
	if v, ok := ccuo.mutation.ClosingDay(); ok {
		if err := creditcard.ClosingDayValidator(v); err != nil {
			return &ValidationError{Name: "closing_day", err: fmt.Errorf(`ent: validator failed for field "CreditCard.closing_day": %w`, err)}
		}
	}
	if v, ok := ccuo.mutation.DueDay(); ok {
		if err := creditcard.DueDayValidator(v); err != nil {
			return &ValidationError{Name: "due_day", err: fmt.Errorf(`ent: validator failed for field "CreditCard.due_day": %w`, err)}
		}
	}
	return nil
}

func (ccuo *CreditCardUpdateOne) sqlSave(ctx context.Context) (_node *CreditCard, err error) {
	if err := ccuo.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(creditcard.Table, creditcard.Columns, sqlgraph.NewFieldSpec(creditcard.FieldID, field.TypeString))
	id, ok := ccuo.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "CreditCard.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := ccuo.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, creditcard.FieldID)
		for _, f := range fields {
			if !creditcard.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != creditcard.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := ccuo.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := ccuo.mutation.Status(); ok {
		_spec.SetField(creditcard.FieldStatus, field.TypeString, value)
	}
	if value, ok := ccuo.mutation.UpdatedAt(); ok {
		_spec.SetField(creditcard.FieldUpdatedAt, field.TypeTime, value)
	}
	if ccuo.mutation.CreatedByCleared() {
		_spec.ClearField(creditcard.FieldCreatedBy, field.TypeString)
	}
	if value, ok := ccuo.mutation.UpdatedBy(); ok {
		_spec.SetField(creditcard.FieldUpdatedBy, field.TypeString, value)
	}
	if ccuo.mutation.UpdatedByCleared() {
		_spec.ClearField(creditcard.FieldUpdatedBy, field.TypeString)
	}
	if value, ok := ccuo.mutation.Name(); ok {
		_spec.SetField(creditcard.FieldName, field.TypeString, value)
	}
	if value, ok := ccuo.mutation.ClosingDay(); ok {
		_spec.SetField(creditcard.FieldClosingDay, field.TypeInt, value)
	}
	if value, ok := ccuo.mutation.AddedClosingDay(); ok {
		_spec.AddField(creditcard.FieldClosingDay, field.TypeInt, value)
	}
	if value, ok := ccuo.mutation.DueDay(); ok {
		_spec.SetField(creditcard.FieldDueDay, field.TypeInt, value)
	}
	if value, ok := ccuo.mutation.AddedDueDay(); ok {
		_spec.AddField(creditcard.FieldDueDay, field.TypeInt, value)
	}
	if value, ok := ccuo.mutation.CreditLimit(); ok {
		_spec.SetField(creditcard.FieldCreditLimit, field.TypeOther, value)
	}
	if ccuo.mutation.CreditBillsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := ccuo.mutation.RemovedCreditBillsIDs(); len(nodes) > 0 && !ccuo.mutation.CreditBillsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := ccuo.mutation.CreditBillsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if ccuo.mutation.CreditExpensesCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := ccuo.mutation.RemovedCreditExpensesIDs(); len(nodes) > 0 && !ccuo.mutation.CreditExpensesCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := ccuo.mutation.CreditExpensesIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if ccuo.mutation.CreditIncomesCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := ccuo.mutation.RemovedCreditIncomesIDs(); len(nodes) > 0 && !ccuo.mutation.CreditIncomesCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := ccuo.mutation.CreditIncomesIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if ccuo.mutation.RefundEventsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := ccuo.mutation.RemovedRefundEventsIDs(); len(nodes) > 0 && !ccuo.mutation.RefundEventsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := ccuo.mutation.RefundEventsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &CreditCard{config: ccuo.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, ccuo.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{creditcard.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	ccuo.mutation.done = true
	return _node, nil
}

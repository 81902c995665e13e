// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"database/sql/driver"
	"fmt"
	"math"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/pocketwise/pocketwise/ent/creditbill"
	"github.com/pocketwise/pocketwise/ent/creditcard"
	"github.com/pocketwise/pocketwise/ent/creditexpense"
	"github.com/pocketwise/pocketwise/ent/creditincome"
	"github.com/pocketwise/pocketwise/ent/predicate"
)

// CreditBillQuery is the builder for querying CreditBill entities.
type CreditBillQuery struct {
	config
	ctx                *QueryContext
	order              []creditbill.OrderOption
	inters             []Interceptor
	predicates         []predicate.CreditBill
	withCreditCard     *CreditCardQuery
	withCreditExpenses *CreditExpenseQuery
	withCreditIncomes  *CreditIncomeQuery
	modifiers          []func(*sql.Selector)
	// intermediate query (i.e. traversal path).
	sql  *sql.Selector
	path func(context.Context) (*sql.Selector, error)
}

// Where adds a new predicate for the CreditBillQuery builder.
func (cbq *CreditBillQuery) Where(ps ...predicate.CreditBill) *CreditBillQuery {
	cbq.predicates = append(cbq.predicates, ps...)
	return cbq
}

// Limit the number of records to be returned by this query.
func (cbq *CreditBillQuery) Limit(limit int) *CreditBillQuery {
	cbq.ctx.Limit = &limit
	return cbq
}

// Offset to start from.
func (cbq *CreditBillQuery) Offset(offset int) *CreditBillQuery {
	cbq.ctx.Offset = &offset
	return cbq
}

// Unique configures the query builder to filter duplicate records on query.
// By default, unique is set to true, and can be disabled using this method.
func (cbq *CreditBillQuery) Unique(unique bool) *CreditBillQuery {
	cbq.ctx.Unique = &unique
	return cbq
}

// Order specifies how the records should be ordered.
func (cbq *CreditBillQuery) Order(o ...creditbill.OrderOption) *CreditBillQuery {
	cbq.order = append(cbq.order, o...)
	return cbq
}

// QueryCreditCard chains the current query on the "credit_card" edge.
func (cbq *CreditBillQuery) QueryCreditCard() *CreditCardQuery {
	query := (&CreditCardClient{config: cbq.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := cbq.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := cbq.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(creditbill.Table, creditbill.FieldID, selector),
			sqlgraph.To(creditcard.Table, creditcard.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, creditbill.CreditCardTable, creditbill.CreditCardColumn),
		)
		fromU = sqlgraph.SetNeighbors(cbq.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// QueryCreditExpenses chains the current query on the "credit_expenses" edge.
func (cbq *CreditBillQuery) QueryCreditExpenses() *CreditExpenseQuery {
	query := (&CreditExpenseClient{config: cbq.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := cbq.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := cbq.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(creditbill.Table, creditbill.FieldID, selector),
			sqlgraph.To(creditexpense.Table, creditexpense.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, creditbill.CreditExpensesTable, creditbill.CreditExpensesColumn),
		)
		fromU = sqlgraph.SetNeighbors(cbq.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// QueryCreditIncomes chains the current query on the "credit_incomes" edge.
func (cbq *CreditBillQuery) QueryCreditIncomes() *CreditIncomeQuery {
	query := (&CreditIncomeClient{config: cbq.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := cbq.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := cbq.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(creditbill.Table, creditbill.FieldID, selector),
			sqlgraph.To(creditincome.Table, creditincome.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, creditbill.CreditIncomesTable, creditbill.CreditIncomesColumn),
		)
		fromU = sqlgraph.SetNeighbors(cbq.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// First returns the first CreditBill entity from the query.
// Returns a *NotFoundError when no CreditBill was found.
func (cbq *CreditBillQuery) First(ctx context.Context) (*CreditBill, error) {
	nodes, err := cbq.Limit(1).All(setContextOp(ctx, cbq.ctx, ent.OpQueryFirst))
	if err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nil, &NotFoundError{creditbill.Label}
	}
	return nodes[0], nil
}

// FirstX is like First, but panics if an error occurs.
func (cbq *CreditBillQuery) FirstX(ctx context.Context) *CreditBill {
	node, err := cbq.First(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return node
}

// FirstID returns the first CreditBill ID from the query.
// Returns a *NotFoundError when no CreditBill ID was found.
func (cbq *CreditBillQuery) FirstID(ctx context.Context) (id string, err error) {
	var ids []string
	if ids, err = cbq.Limit(1).IDs(setContextOp(ctx, cbq.ctx, ent.OpQueryFirstID)); err != nil {
		return
	}
	if len(ids) == 0 {
		err = &NotFoundError{creditbill.Label}
		return
	}
	return ids[0], nil
}

// FirstIDX is like FirstID, but panics if an error occurs.
func (cbq *CreditBillQuery) FirstIDX(ctx context.Context) string {
	id, err := cbq.FirstID(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return id
}

// Only returns a single CreditBill entity found by the query, ensuring it only returns one.
// Returns a *NotSingularError when more than one CreditBill entity is found.
// Returns a *NotFoundError when no CreditBill entities are found.
func (cbq *CreditBillQuery) Only(ctx context.Context) (*CreditBill, error) {
	nodes, err := cbq.Limit(2).All(setContextOp(ctx, cbq.ctx, ent.OpQueryOnly))
	if err != nil {
		return nil, err
	}
	switch len(nodes) {
	case 1:
		return nodes[0], nil
	case 0:
		return nil, &NotFoundError{creditbill.Label}
	default:
		return nil, &NotSingularError{creditbill.Label}
	}
}

// OnlyX is like Only, but panics if an error occurs.
func (cbq *CreditBillQuery) OnlyX(ctx context.Context) *CreditBill {
	node, err := cbq.Only(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// OnlyID is like Only, but returns the only CreditBill ID in the query.
// Returns a *NotSingularError when more than one CreditBill ID is found.
// Returns a *NotFoundError when no entities are found.
func (cbq *CreditBillQuery) OnlyID(ctx context.Context) (id string, err error) {
	var ids []string
	if ids, err = cbq.Limit(2).IDs(setContextOp(ctx, cbq.ctx, ent.OpQueryOnlyID)); err != nil {
		return
	}
	switch len(ids) {
	case 1:
		id = ids[0]
	case 0:
		err = &NotFoundError{creditbill.Label}
	default:
		err = &NotSingularError{creditbill.Label}
	}
	return
}

// OnlyIDX is like OnlyID, but panics if an error occurs.
func (cbq *CreditBillQuery) OnlyIDX(ctx context.Context) string {
	id, err := cbq.OnlyID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// All executes the query and returns a list of CreditBills.
func (cbq *CreditBillQuery) All(ctx context.Context) ([]*CreditBill, error) {
	ctx = setContextOp(ctx, cbq.ctx, ent.OpQueryAll)
	if err := cbq.prepareQuery(ctx); err != nil {
		return nil, err
	}
	qr := querierAll[[]*CreditBill, *CreditBillQuery]()
	return withInterceptors[[]*CreditBill](ctx, cbq, qr, cbq.inters)
}

// AllX is like All, but panics if an error occurs.
func (cbq *CreditBillQuery) AllX(ctx context.Context) []*CreditBill {
	nodes, err := cbq.All(ctx)
	if err != nil {
		panic(err)
	}
	return nodes
}

// IDs executes the query and returns a list of CreditBill IDs.
func (cbq *CreditBillQuery) IDs(ctx context.Context) (ids []string, err error) {
	if cbq.ctx.Unique == nil && cbq.path != nil {
		cbq.Unique(true)
	}
	ctx = setContextOp(ctx, cbq.ctx, ent.OpQueryIDs)
	if err = cbq.Select(creditbill.FieldID).Scan(ctx, &ids); err != nil {
		return nil, err
	}
	return ids, nil
}

// IDsX is like IDs, but panics if an error occurs.
func (cbq *CreditBillQuery) IDsX(ctx context.Context) []string {
	ids, err := cbq.IDs(ctx)
	if err != nil {
		panic(err)
	}
	return ids
}

// Count returns the count of the given query.
func (cbq *CreditBillQuery) Count(ctx context.Context) (int, error) {
	ctx = setContextOp(ctx, cbq.ctx, ent.OpQueryCount)
	if err := cbq.prepareQuery(ctx); err != nil {
		return 0, err
	}
	return withInterceptors[int](ctx, cbq, querierCount[*CreditBillQuery](), cbq.inters)
}

// CountX is like Count, but panics if an error occurs.
func (cbq *CreditBillQuery) CountX(ctx context.Context) int {
	count, err := cbq.Count(ctx)
	if err != nil {
		panic(err)
	}
	return count
}

// Exist returns true if the query has elements in the graph.
func (cbq *CreditBillQuery) Exist(ctx context.Context) (bool, error) {
	ctx = setContextOp(ctx, cbq.ctx, ent.OpQueryExist)
	switch _, err := cbq.FirstID(ctx); {
	case IsNotFound(err):
		return false, nil
	case err != nil:
		return false, fmt.Errorf("ent: check existence: %w", err)
	default:
		return true, nil
	}
}

// ExistX is like Exist, but panics if an error occurs.
func (cbq *CreditBillQuery) ExistX(ctx context.Context) bool {
	exist, err := cbq.Exist(ctx)
	if err != nil {
		panic(err)
	}
	return exist
}

// Clone returns a duplicate of the CreditBillQuery builder, including all associated steps. It can be
// used to prepare common query builders and use them differently after the clone is made.
func (cbq *CreditBillQuery) Clone() *CreditBillQuery {
	if cbq == nil {
		return nil
	}
	return &CreditBillQuery{
		config:             cbq.config,
		ctx:                cbq.ctx.Clone(),
		order:              append([]creditbill.OrderOption{}, cbq.order...),
		inters:             append([]Interceptor{}, cbq.inters...),
		predicates:         append([]predicate.CreditBill{}, cbq.predicates...),
		withCreditCard:     cbq.withCreditCard.Clone(),
		withCreditExpenses: cbq.withCreditExpenses.Clone(),
		withCreditIncomes:  cbq.withCreditIncomes.Clone(),
		// clone intermediate query.
		sql:  cbq.sql.Clone(),
		path: cbq.path,
	}
}

// WithCreditCard tells the query-builder to eager-load the nodes that are connected to
// the "credit_card" edge. The optional arguments are used to configure the query builder of the edge.
func (cbq *CreditBillQuery) WithCreditCard(opts ...func(*CreditCardQuery)) *CreditBillQuery {
	query := (&CreditCardClient{config: cbq.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	cbq.withCreditCard = query
	return cbq
}

// WithCreditExpenses tells the query-builder to eager-load the nodes that are connected to
// the "credit_expenses" edge. The optional arguments are used to configure the query builder of the edge.
func (cbq *CreditBillQuery) WithCreditExpenses(opts ...func(*CreditExpenseQuery)) *CreditBillQuery {
	query := (&CreditExpenseClient{config: cbq.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	cbq.withCreditExpenses = query
	return cbq
}

// WithCreditIncomes tells the query-builder to eager-load the nodes that are connected to
// the "credit_incomes" edge. The optional arguments are used to configure the query builder of the edge.
func (cbq *CreditBillQuery) WithCreditIncomes(opts ...func(*CreditIncomeQuery)) *CreditBillQuery {
	query := (&CreditIncomeClient{config: cbq.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	cbq.withCreditIncomes = query
	return cbq
}

// GroupBy is used to group vertices by one or more fields/columns.
// It is often used with aggregate functions, like: count, max, mean, min, sum.
//
// Example:
//
//	var v []struct {
//		UserID string `json:"user_id,omitempty"`
//		Count int `json:"count,omitempty"`
//	}
//
//	client.CreditBill.Query().
//		GroupBy(creditbill.FieldUserID).
//		Aggregate(ent.Count()).
//		Scan(ctx, &v)
func (cbq *CreditBillQuery) GroupBy(field string, fields ...string) *CreditBillGroupBy {
	cbq.ctx.Fields = append([]string{field}, fields...)
	grbuild := &CreditBillGroupBy{build: cbq}
	grbuild.flds = &cbq.ctx.Fields
	grbuild.label = creditbill.Label
	grbuild.scan = grbuild.Scan
	return grbuild
}

// Select allows the selection one or more fields/columns for the given query,
// instead of selecting all fields in the entity.
//
// Example:
//
//	var v []struct {
//		UserID string `json:"user_id,omitempty"`
//	}
//
//	client.CreditBill.Query().
//		Select(creditbill.FieldUserID).
//		Scan(ctx, &v)
func (cbq *CreditBillQuery) Select(fields ...string) *CreditBillSelect {
	cbq.ctx.Fields = append(cbq.ctx.Fields, fields...)
	sbuild := &CreditBillSelect{CreditBillQuery: cbq}
	sbuild.label = creditbill.Label
	sbuild.flds, sbuild.scan = &cbq.ctx.Fields, sbuild.Scan
	return sbuild
}

// Aggregate returns a CreditBillSelect configured with the given aggregations.
func (cbq *CreditBillQuery) Aggregate(fns ...AggregateFunc) *CreditBillSelect {
	return cbq.Select().Aggregate(fns...)
}

func (cbq *CreditBillQuery) prepareQuery(ctx context.Context) error {
	for _, inter := range cbq.inters {
		if inter == nil {
			return fmt.Errorf("ent: uninitialized interceptor (forgotten import ent/runtime?)")
		}
		if trv, ok := inter.(Traverser); ok {
			if err := trv.Traverse(ctx, cbq); err != nil {
				return err
			}
		}
	}
	for _, f := range cbq.ctx.Fields {
		if !creditbill.ValidColumn(f) {
			return &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
		}
	}
	if cbq.path != nil {
		prev, err := cbq.path(ctx)
		if err != nil {
			return err
		}
		cbq.sql = prev
	}
	return nil
}

func (cbq *CreditBillQuery) sqlAll(ctx context.Context, hooks ...queryHook) ([]*CreditBill, error) {
	var (
		nodes       = []*CreditBill{}
		_spec       = cbq.querySpec()
		loadedTypes = [3]bool{
			cbq.withCreditCard != nil,
			cbq.withCreditExpenses != nil,
			cbq.withCreditIncomes != nil,
		}
	)
	_spec.ScanValues = func(columns []string) ([]any, error) {
		return (*CreditBill).scanValues(nil, columns)
	}
	_spec.Assign = func(columns []string, values []any) error {
		node := &CreditBill{config: cbq.config}
		nodes = append(nodes, node)
		node.Edges.loadedTypes = loadedTypes
		return node.assignValues(columns, values)
	}
	if len(cbq.modifiers) > 0 {
		_spec.Modifiers = cbq.modifiers
	}
	for i := range hooks {
		hooks[i](ctx, _spec)
	}
	if err := sqlgraph.QueryNodes(ctx, cbq.driver, _spec); err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nodes, nil
	}
	if query := cbq.withCreditCard; query != nil {
		if err := cbq.loadCreditCard(ctx, query, nodes, nil,
			func(n *CreditBill, e *CreditCard) { n.Edges.CreditCard = e }); err != nil {
			return nil, err
		}
	}
	if query := cbq.withCreditExpenses; query != nil {
		if err := cbq.loadCreditExpenses(ctx, query, nodes,
			func(n *CreditBill) { n.Edges.CreditExpenses = []*CreditExpense{} },
			func(n *CreditBill, e *CreditExpense) { n.Edges.CreditExpenses = append(n.Edges.CreditExpenses, e) }); err != nil {
			return nil, err
		}
	}
	if query := cbq.withCreditIncomes; query != nil {
		if err := cbq.loadCreditIncomes(ctx, query, nodes,
			func(n *CreditBill) { n.Edges.CreditIncomes = []*CreditIncome{} },
			func(n *CreditBill, e *CreditIncome) { n.Edges.CreditIncomes = append(n.Edges.CreditIncomes, e) }); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

func (cbq *CreditBillQuery) loadCreditCard(ctx context.Context, query *CreditCardQuery, nodes []*CreditBill, init func(*CreditBill), assign func(*CreditBill, *CreditCard)) error {
	ids := make([]string, 0, len(nodes))
	nodeids := make(map[string][]*CreditBill)
	for i := range nodes {
		fk := nodes[i].CreditCardID
		if _, ok := nodeids[fk]; !ok {
			ids = append(ids, fk)
		}
		nodeids[fk] = append(nodeids[fk], nodes[i])
	}
	if len(ids) == 0 {
		return nil
	}
	query.Where(creditcard.IDIn(ids...))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		nodes, ok := nodeids[n.ID]
		if !ok {
			return fmt.Errorf(`unexpected foreign-key "credit_card_id" returned %v`, n.ID)
		}
		for i := range nodes {
			assign(nodes[i], n)
		}
	}
	return nil
}
func (cbq *CreditBillQuery) loadCreditExpenses(ctx context.Context, query *CreditExpenseQuery, nodes []*CreditBill, init func(*CreditBill), assign func(*CreditBill, *CreditExpense)) error {
	fks := make([]driver.Value, 0, len(nodes))
	nodeids := make(map[string]*CreditBill)
	for i := range nodes {
		fks = append(fks, nodes[i].ID)
		nodeids[nodes[i].ID] = nodes[i]
		if init != nil {
			init(nodes[i])
		}
	}
	if len(query.ctx.Fields) > 0 {
		query.ctx.AppendFieldOnce(creditexpense.FieldCreditBillID)
	}
	query.Where(predicate.CreditExpense(func(s *sql.Selector) {
		s.Where(sql.InValues(s.C(creditbill.CreditExpensesColumn), fks...))
	}))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		fk := n.CreditBillID
		if fk == nil {
			return fmt.Errorf(`foreign-key "credit_bill_id" is nil for node %v`, n.ID)
		}
		node, ok := nodeids[*fk]
		if !ok {
			return fmt.Errorf(`unexpected referenced foreign-key "credit_bill_id" returned %v for node %v`, *fk, n.ID)
		}
		assign(node, n)
	}
	return nil
}
func (cbq *CreditBillQuery) loadCreditIncomes(ctx context.Context, query *CreditIncomeQuery, nodes []*CreditBill, init func(*CreditBill), assign func(*CreditBill, *CreditIncome)) error {
	fks := make([]driver.Value, 0, len(nodes))
	nodeids := make(map[string]*CreditBill)
	for i := range nodes {
		fks = append(fks, nodes[i].ID)
		nodeids[nodes[i].ID] = nodes[i]
		if init != nil {
			init(nodes[i])
		}
	}
	if len(query.ctx.Fields) > 0 {
		query.ctx.AppendFieldOnce(creditincome.FieldCreditBillID)
	}
	query.Where(predicate.CreditIncome(func(s *sql.Selector) {
		s.Where(sql.InValues(s.C(creditbill.CreditIncomesColumn), fks...))
	}))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		fk := n.CreditBillID
		node, ok := nodeids[fk]
		if !ok {
			return fmt.Errorf(`unexpected referenced foreign-key "credit_bill_id" returned %v for node %v`, fk, n.ID)
		}
		assign(node, n)
	}
	return nil
}

func (cbq *CreditBillQuery) sqlCount(ctx context.Context) (int, error) {
	_spec := cbq.querySpec()
	if len(cbq.modifiers) > 0 {
		_spec.Modifiers = cbq.modifiers
	}
	_spec.Node.Columns = cbq.ctx.Fields
	if len(cbq.ctx.Fields) > 0 {
		_spec.Unique = cbq.ctx.Unique != nil && *cbq.ctx.Unique
	}
	return sqlgraph.CountNodes(ctx, cbq.driver, _spec)
}

func (cbq *CreditBillQuery) querySpec() *sqlgraph.QuerySpec {
	_spec := sqlgraph.NewQuerySpec(creditbill.Table, creditbill.Columns, sqlgraph.NewFieldSpec(creditbill.FieldID, field.TypeString))
	_spec.From = cbq.sql
	if unique := cbq.ctx.Unique; unique != nil {
		_spec.Unique = *unique
	} else if cbq.path != nil {
		_spec.Unique = true
	}
	if fields := cbq.ctx.Fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, creditbill.FieldID)
		for i := range fields {
			if fields[i] != creditbill.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, fields[i])
			}
		}
		if cbq.withCreditCard != nil {
			_spec.Node.AddColumnOnce(creditbill.FieldCreditCardID)
		}
	}
	if ps := cbq.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if limit := cbq.ctx.Limit; limit != nil {
		_spec.Limit = *limit
	}
	if offset := cbq.ctx.Offset; offset != nil {
		_spec.Offset = *offset
	}
	if ps := cbq.order; len(ps) > 0 {
		_spec.Order = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	return _spec
}

func (cbq *CreditBillQuery) sqlQuery(ctx context.Context) *sql.Selector {
	builder := sql.Dialect(cbq.driver.Dialect())
	t1 := builder.Table(creditbill.Table)
	columns := cbq.ctx.Fields
	if len(columns) == 0 {
		columns = creditbill.Columns
	}
	selector := builder.Select(t1.Columns(columns...)...).From(t1)
	if cbq.sql != nil {
		selector = cbq.sql
		selector.Select(selector.Columns(columns...)...)
	}
	if cbq.ctx.Unique != nil && *cbq.ctx.Unique {
		selector.Distinct()
	}
	for _, m := range cbq.modifiers {
		m(selector)
	}
	for _, p := range cbq.predicates {
		p(selector)
	}
	for _, p := range cbq.order {
		p(selector)
	}
	if offset := cbq.ctx.Offset; offset != nil {
		// limit is mandatory for offset clause. We start
		// with default value, and override it below if needed.
		selector.Offset(*offset).Limit(math.MaxInt32)
	}
	if limit := cbq.ctx.Limit; limit != nil {
		selector.Limit(*limit)
	}
	return selector
}

// ForUpdate locks the selected rows against concurrent updates, and prevent them from being
// updated, deleted or "selected ... for update" by other sessions, until the transaction is
// either committed or rolled-back.
func (cbq *CreditBillQuery) ForUpdate(opts ...sql.LockOption) *CreditBillQuery {
	if cbq.driver.Dialect() == dialect.Postgres {
		cbq.Unique(false)
	}
	cbq.modifiers = append(cbq.modifiers, func(s *sql.Selector) {
		s.ForUpdate(opts...)
	})
	return cbq
}

// ForShare behaves similarly to ForUpdate, except that it acquires a shared mode lock
// on any rows that are read. Other sessions can read the rows, but cannot modify them
// until your transaction commits.
func (cbq *CreditBillQuery) ForShare(opts ...sql.LockOption) *CreditBillQuery {
	if cbq.driver.Dialect() == dialect.Postgres {
		cbq.Unique(false)
	}
	cbq.modifiers = append(cbq.modifiers, func(s *sql.Selector) {
		s.ForShare(opts...)
	})
	return cbq
}

// CreditBillGroupBy is the group-by builder for CreditBill entities.
type CreditBillGroupBy struct {
	selector
	build *CreditBillQuery
}

// Aggregate adds the given aggregation functions to the group-by query.
func (cbgb *CreditBillGroupBy) Aggregate(fns ...AggregateFunc) *CreditBillGroupBy {
	cbgb.fns = append(cbgb.fns, fns...)
	return cbgb
}

// Scan applies the selector query and scans the result into the given value.
func (cbgb *CreditBillGroupBy) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, cbgb.build.ctx, ent.OpQueryGroupBy)
	if err := cbgb.build.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*CreditBillQuery, *CreditBillGroupBy](ctx, cbgb.build, cbgb, cbgb.build.inters, v)
}

func (cbgb *CreditBillGroupBy) sqlScan(ctx context.Context, root *CreditBillQuery, v any) error {
	selector := root.sqlQuery(ctx).Select()
	aggregation := make([]string, 0, len(cbgb.fns))
	for _, fn := range cbgb.fns {
		aggregation = append(aggregation, fn(selector))
	}
	if len(selector.SelectedColumns()) == 0 {
		columns := make([]string, 0, len(*cbgb.flds)+len(cbgb.fns))
		for _, f := range *cbgb.flds {
			columns = append(columns, selector.C(f))
		}
		columns = append(columns, aggregation...)
		selector.Select(columns...)
	}
	selector.GroupBy(selector.Columns(*cbgb.flds...)...)
	if err := selector.Err(); err != nil {
		return err
	}
	rows := &sql.Rows{}
	query, args := selector.Query()
	if err := cbgb.build.driver.Query(ctx, query, args, rows); err != nil {
		return err
	}
	defer rows.Close()
	return sql.ScanSlice(rows, v)
}

// CreditBillSelect is the builder for selecting fields of CreditBill entities.
type CreditBillSelect struct {
	*CreditBillQuery
	selector
}

// Aggregate adds the given aggregation functions to the selector query.
func (cbs *CreditBillSelect) Aggregate(fns ...AggregateFunc) *CreditBillSelect {
	cbs.fns = append(cbs.fns, fns...)
	return cbs
}

// Scan applies the selector query and scans the result into the given value.
func (cbs *CreditBillSelect) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, cbs.ctx, ent.OpQuerySelect)
	if err := cbs.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*CreditBillQuery, *CreditBillSelect](ctx, cbs.CreditBillQuery, cbs, cbs.inters, v)
}

func (cbs *CreditBillSelect) sqlScan(ctx context.Context, root *CreditBillQuery, v any) error {
	selector := root.sqlQuery(ctx)
	aggregation := make([]string, 0, len(cbs.fns))
	for _, fn := range cbs.fns {
		aggregation = append(aggregation, fn(selector))
	}
	switch n := len(*cbs.selector.flds); {
	case n == 0 && len(aggregation) > 0:
		selector.Select(aggregation...)
	case n != 0 && len(aggregation) > 0:
		selector.AppendSelect(aggregation...)
	}
	rows := &sql.Rows{}
	query, args := selector.Query()
	if err := cbs.driver.Query(ctx, query, args, rows); err != nil {
		return err
	}
	defer rows.Close()
	return sql.ScanSlice(rows, v)
}

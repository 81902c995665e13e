// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
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

// CreditIncomeQuery is the builder for querying CreditIncome entities.
type CreditIncomeQuery struct {
	config
	ctx               *QueryContext
	order             []creditincome.OrderOption
	inters            []Interceptor
	predicates        []predicate.CreditIncome
	withCreditCard    *CreditCardQuery
	withCreditBill    *CreditBillQuery
	withCreditExpense *CreditExpenseQuery
	modifiers         []func(*sql.Selector)
	// intermediate query (i.e. traversal path).
	sql  *sql.Selector
	path func(context.Context) (*sql.Selector, error)
}

// Where adds a new predicate for the CreditIncomeQuery builder.
func (ciq *CreditIncomeQuery) Where(ps ...predicate.CreditIncome) *CreditIncomeQuery {
	ciq.predicates = append(ciq.predicates, ps...)
	return ciq
}

// Limit the number of records to be returned by this query.
func (ciq *CreditIncomeQuery) Limit(limit int) *CreditIncomeQuery {
	ciq.ctx.Limit = &limit
	return ciq
}

// Offset to start from.
func (ciq *CreditIncomeQuery) Offset(offset int) *CreditIncomeQuery {
	ciq.ctx.Offset = &offset
	return ciq
}

// Unique configures the query builder to filter duplicate records on query.
// By default, unique is set to true, and can be disabled using this method.
func (ciq *CreditIncomeQuery) Unique(unique bool) *CreditIncomeQuery {
	ciq.ctx.Unique = &unique
	return ciq
}

// Order specifies how the records should be ordered.
func (ciq *CreditIncomeQuery) Order(o ...creditincome.OrderOption) *CreditIncomeQuery {
	ciq.order = append(ciq.order, o...)
	return ciq
}

// QueryCreditCard chains the current query on the "credit_card" edge.
func (ciq *CreditIncomeQuery) QueryCreditCard() *CreditCardQuery {
	query := (&CreditCardClient{config: ciq.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := ciq.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := ciq.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(creditincome.Table, creditincome.FieldID, selector),
			sqlgraph.To(creditcard.Table, creditcard.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, creditincome.CreditCardTable, creditincome.CreditCardColumn),
		)
		fromU = sqlgraph.SetNeighbors(ciq.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// QueryCreditBill chains the current query on the "credit_bill" edge.
func (ciq *CreditIncomeQuery) QueryCreditBill() *CreditBillQuery {
	query := (&CreditBillClient{config: ciq.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := ciq.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := ciq.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(creditincome.Table, creditincome.FieldID, selector),
			sqlgraph.To(creditbill.Table, creditbill.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, creditincome.CreditBillTable, creditincome.CreditBillColumn),
		)
		fromU = sqlgraph.SetNeighbors(ciq.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// QueryCreditExpense chains the current query on the "credit_expense" edge.
func (ciq *CreditIncomeQuery) QueryCreditExpense() *CreditExpenseQuery {
	query := (&CreditExpenseClient{config: ciq.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := ciq.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := ciq.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(creditincome.Table, creditincome.FieldID, selector),
			sqlgraph.To(creditexpense.Table, creditexpense.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, creditincome.CreditExpenseTable, creditincome.CreditExpenseColumn),
		)
		fromU = sqlgraph.SetNeighbors(ciq.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// First returns the first CreditIncome entity from the query.
// Returns a *NotFoundError when no CreditIncome was found.
func (ciq *CreditIncomeQuery) First(ctx context.Context) (*CreditIncome, error) {
	nodes, err := ciq.Limit(1).All(setContextOp(ctx, ciq.ctx, ent.OpQueryFirst))
	if err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nil, &NotFoundError{creditincome.Label}
	}
	return nodes[0], nil
}

// FirstX is like First, but panics if an error occurs.
func (ciq *CreditIncomeQuery) FirstX(ctx context.Context) *CreditIncome {
	node, err := ciq.First(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return node
}

// FirstID returns the first CreditIncome ID from the query.
// Returns a *NotFoundError when no CreditIncome ID was found.
func (ciq *CreditIncomeQuery) FirstID(ctx context.Context) (id string, err error) {
	var ids []string
	if ids, err = ciq.Limit(1).IDs(setContextOp(ctx, ciq.ctx, ent.OpQueryFirstID)); err != nil {
		return
	}
	if len(ids) == 0 {
		err = &NotFoundError{creditincome.Label}
		return
	}
	return ids[0], nil
}

// FirstIDX is like FirstID, but panics if an error occurs.
func (ciq *CreditIncomeQuery) FirstIDX(ctx context.Context) string {
	id, err := ciq.FirstID(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return id
}

// Only returns a single CreditIncome entity found by the query, ensuring it only returns one.
// Returns a *NotSingularError when more than one CreditIncome entity is found.
// Returns a *NotFoundError when no CreditIncome entities are found.
func (ciq *CreditIncomeQuery) Only(ctx context.Context) (*CreditIncome, error) {
	nodes, err := ciq.Limit(2).All(setContextOp(ctx, ciq.ctx, ent.OpQueryOnly))
	if err != nil {
		return nil, err
	}
	switch len(nodes) {
	case 1:
		return nodes[0], nil
	case 0:
		return nil, &NotFoundError{creditincome.Label}
	default:
		return nil, &NotSingularError{creditincome.Label}
	}
}

// OnlyX is like Only, but panics if an error occurs.
func (ciq *CreditIncomeQuery) OnlyX(ctx context.Context) *CreditIncome {
	node, err := ciq.Only(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// OnlyID is like Only, but returns the only CreditIncome ID in the query.
// Returns a *NotSingularError when more than one CreditIncome ID is found.
// Returns a *NotFoundError when no entities are found.
func (ciq *CreditIncomeQuery) OnlyID(ctx context.Context) (id string, err error) {
	var ids []string
	if ids, err = ciq.Limit(2).IDs(setContextOp(ctx, ciq.ctx, ent.OpQueryOnlyID)); err != nil {
		return
	}
	switch len(ids) {
	case 1:
		id = ids[0]
	case 0:
		err = &NotFoundError{creditincome.Label}
	default:
		err = &NotSingularError{creditincome.Label}
	}
	return
}

// OnlyIDX is like OnlyID, but panics if an error occurs.
func (ciq *CreditIncomeQuery) OnlyIDX(ctx context.Context) string {
	id, err := ciq.OnlyID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// All executes the query and returns a list of CreditIncomes.
func (ciq *CreditIncomeQuery) All(ctx context.Context) ([]*CreditIncome, error) {
	ctx = setContextOp(ctx, ciq.ctx, ent.OpQueryAll)
	if err := ciq.prepareQuery(ctx); err != nil {
		return nil, err
	}
	qr := querierAll[[]*CreditIncome, *CreditIncomeQuery]()
	return withInterceptors[[]*CreditIncome](ctx, ciq, qr, ciq.inters)
}

// AllX is like All, but panics if an error occurs.
func (ciq *CreditIncomeQuery) AllX(ctx context.Context) []*CreditIncome {
	nodes, err := ciq.All(ctx)
	if err != nil {
		panic(err)
	}
	return nodes
}

// IDs executes the query and returns a list of CreditIncome IDs.
func (ciq *CreditIncomeQuery) IDs(ctx context.Context) (ids []string, err error) {
	if ciq.ctx.Unique == nil && ciq.path != nil {
		ciq.Unique(true)
	}
	ctx = setContextOp(ctx, ciq.ctx, ent.OpQueryIDs)
	if err = ciq.Select(creditincome.FieldID).Scan(ctx, &ids); err != nil {
		return nil, err
	}
	return ids, nil
}

// IDsX is like IDs, but panics if an error occurs.
func (ciq *CreditIncomeQuery) IDsX(ctx context.Context) []string {
	ids, err := ciq.IDs(ctx)
	if err != nil {
		panic(err)
	}
	return ids
}

// Count returns the count of the given query.
func (ciq *CreditIncomeQuery) Count(ctx context.Context) (int, error) {
	ctx = setContextOp(ctx, ciq.ctx, ent.OpQueryCount)
	if err := ciq.prepareQuery(ctx); err != nil {
		return 0, err
	}
	return withInterceptors[int](ctx, ciq, querierCount[*CreditIncomeQuery](), ciq.inters)
}

// CountX is like Count, but panics if an error occurs.
func (ciq *CreditIncomeQuery) CountX(ctx context.Context) int {
	count, err := ciq.Count(ctx)
	if err != nil {
		panic(err)
	}
	return count
}

// Exist returns true if the query has elements in the graph.
func (ciq *CreditIncomeQuery) Exist(ctx context.Context) (bool, error) {
	ctx = setContextOp(ctx, ciq.ctx, ent.OpQueryExist)
	switch _, err := ciq.FirstID(ctx); {
	case IsNotFound(err):
		return false, nil
	case err != nil:
		return false, fmt.Errorf("ent: check existence: %w", err)
	default:
		return true, nil
	}
}

// ExistX is like Exist, but panics if an error occurs.
func (ciq *CreditIncomeQuery) ExistX(ctx context.Context) bool {
	exist, err := ciq.Exist(ctx)
	if err != nil {
		panic(err)
	}
	return exist
}

// Clone returns a duplicate of the CreditIncomeQuery builder, including all associated steps. It can be
// used to prepare common query builders and use them differently after the clone is made.
func (ciq *CreditIncomeQuery) Clone() *CreditIncomeQuery {
	if ciq == nil {
		return nil
	}
	return &CreditIncomeQuery{
		config:            ciq.config,
		ctx:               ciq.ctx.Clone(),
		order:             append([]creditincome.OrderOption{}, ciq.order...),
		inters:            append([]Interceptor{}, ciq.inters...),
		predicates:        append([]predicate.CreditIncome{}, ciq.predicates...),
		withCreditCard:    ciq.withCreditCard.Clone(),
		withCreditBill:    ciq.withCreditBill.Clone(),
		withCreditExpense: ciq.withCreditExpense.Clone(),
		// clone intermediate query.
		sql:  ciq.sql.Clone(),
		path: ciq.path,
	}
}

// WithCreditCard tells the query-builder to eager-load the nodes that are connected to
// the "credit_card" edge. The optional arguments are used to configure the query builder of the edge.
func (ciq *CreditIncomeQuery) WithCreditCard(opts ...func(*CreditCardQuery)) *CreditIncomeQuery {
	query := (&CreditCardClient{config: ciq.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	ciq.withCreditCard = query
	return ciq
}

// WithCreditBill tells the query-builder to eager-load the nodes that are connected to
// the "credit_bill" edge. The optional arguments are used to configure the query builder of the edge.
func (ciq *CreditIncomeQuery) WithCreditBill(opts ...func(*CreditBillQuery)) *CreditIncomeQuery {
	query := (&CreditBillClient{config: ciq.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	ciq.withCreditBill = query
	return ciq
}

// WithCreditExpense tells the query-builder to eager-load the nodes that are connected to
// the "credit_expense" edge. The optional arguments are used to configure the query builder of the edge.
func (ciq *CreditIncomeQuery) WithCreditExpense(opts ...func(*CreditExpenseQuery)) *CreditIncomeQuery {
	query := (&CreditExpenseClient{config: ciq.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	ciq.withCreditExpense = query
	return ciq
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
//	client.CreditIncome.Query().
//		GroupBy(creditincome.FieldUserID).
//		Aggregate(ent.Count()).
//		Scan(ctx, &v)
func (ciq *CreditIncomeQuery) GroupBy(field string, fields ...string) *CreditIncomeGroupBy {
	ciq.ctx.Fields = append([]string{field}, fields...)
	grbuild := &CreditIncomeGroupBy{build: ciq}
	grbuild.flds = &ciq.ctx.Fields
	grbuild.label = creditincome.Label
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
//	client.CreditIncome.Query().
//		Select(creditincome.FieldUserID).
//		Scan(ctx, &v)
func (ciq *CreditIncomeQuery) Select(fields ...string) *CreditIncomeSelect {
	ciq.ctx.Fields = append(ciq.ctx.Fields, fields...)
	sbuild := &CreditIncomeSelect{CreditIncomeQuery: ciq}
	sbuild.label = creditincome.Label
	sbuild.flds, sbuild.scan = &ciq.ctx.Fields, sbuild.Scan
	return sbuild
}

// Aggregate returns a CreditIncomeSelect configured with the given aggregations.
func (ciq *CreditIncomeQuery) Aggregate(fns ...AggregateFunc) *CreditIncomeSelect {
	return ciq.Select().Aggregate(fns...)
}

func (ciq *CreditIncomeQuery) prepareQuery(ctx context.Context) error {
	for _, inter := range ciq.inters {
		if inter == nil {
			return fmt.Errorf("ent: uninitialized interceptor (forgotten import ent/runtime?)")
		}
		if trv, ok := inter.(Traverser); ok {
			if err := trv.Traverse(ctx, ciq); err != nil {
				return err
			}
		}
	}
	for _, f := range ciq.ctx.Fields {
		if !creditincome.ValidColumn(f) {
			return &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
		}
	}
	if ciq.path != nil {
		prev, err := ciq.path(ctx)
		if err != nil {
			return err
		}
		ciq.sql = prev
	}
	return nil
}

func (ciq *CreditIncomeQuery) sqlAll(ctx context.Context, hooks ...queryHook) ([]*CreditIncome, error) {
	var (
		nodes       = []*CreditIncome{}
		_spec       = ciq.querySpec()
		loadedTypes = [3]bool{
			ciq.withCreditCard != nil,
			ciq.withCreditBill != nil,
			ciq.withCreditExpense != nil,
		}
	)
	_spec.ScanValues = func(columns []string) ([]any, error) {
		return (*CreditIncome).scanValues(nil, columns)
	}
	_spec.Assign = func(columns []string, values []any) error {
		node := &CreditIncome{config: ciq.config}
		nodes = append(nodes, node)
		node.Edges.loadedTypes = loadedTypes
		return node.assignValues(columns, values)
	}
	if len(ciq.modifiers) > 0 {
		_spec.Modifiers = ciq.modifiers
	}
	for i := range hooks {
		hooks[i](ctx, _spec)
	}
	if err := sqlgraph.QueryNodes(ctx, ciq.driver, _spec); err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nodes, nil
	}
	if query := ciq.withCreditCard; query != nil {
		if err := ciq.loadCreditCard(ctx, query, nodes, nil,
			func(n *CreditIncome, e *CreditCard) { n.Edges.CreditCard = e }); err != nil {
			return nil, err
		}
	}
	if query := ciq.withCreditBill; query != nil {
		if err := ciq.loadCreditBill(ctx, query, nodes, nil,
			func(n *CreditIncome, e *CreditBill) { n.Edges.CreditBill = e }); err != nil {
			return nil, err
		}
	}
	if query := ciq.withCreditExpense; query != nil {
		if err := ciq.loadCreditExpense(ctx, query, nodes, nil,
			func(n *CreditIncome, e *CreditExpense) { n.Edges.CreditExpense = e }); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

func (ciq *CreditIncomeQuery) loadCreditCard(ctx context.Context, query *CreditCardQuery, nodes []*CreditIncome, init func(*CreditIncome), assign func(*CreditIncome, *CreditCard)) error {
	ids := make([]string, 0, len(nodes))
	nodeids := make(map[string][]*CreditIncome)
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
func (ciq *CreditIncomeQuery) loadCreditBill(ctx context.Context, query *CreditBillQuery, nodes []*CreditIncome, init func(*CreditIncome), assign func(*CreditIncome, *CreditBill)) error {
	ids := make([]string, 0, len(nodes))
	nodeids := make(map[string][]*CreditIncome)
	for i := range nodes {
		fk := nodes[i].CreditBillID
		if _, ok := nodeids[fk]; !ok {
			ids = append(ids, fk)
		}
		nodeids[fk] = append(nodeids[fk], nodes[i])
	}
	if len(ids) == 0 {
		return nil
	}
	query.Where(creditbill.IDIn(ids...))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		nodes, ok := nodeids[n.ID]
		if !ok {
			return fmt.Errorf(`unexpected foreign-key "credit_bill_id" returned %v`, n.ID)
		}
		for i := range nodes {
			assign(nodes[i], n)
		}
	}
	return nil
}
func (ciq *CreditIncomeQuery) loadCreditExpense(ctx context.Context, query *CreditExpenseQuery, nodes []*CreditIncome, init func(*CreditIncome), assign func(*CreditIncome, *CreditExpense)) error {
	ids := make([]string, 0, len(nodes))
	nodeids := make(map[string][]*CreditIncome)
	for i := range nodes {
		fk := nodes[i].CreditExpenseID
		if _, ok := nodeids[fk]; !ok {
			ids = append(ids, fk)
		}
		nodeids[fk] = append(nodeids[fk], nodes[i])
	}
	if len(ids) == 0 {
		return nil
	}
	query.Where(creditexpense.IDIn(ids...))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		nodes, ok := nodeids[n.ID]
		if !ok {
			return fmt.Errorf(`unexpected foreign-key "credit_expense_id" returned %v`, n.ID)
		}
		for i := range nodes {
			assign(nodes[i], n)
		}
	}
	return nil
}

func (ciq *CreditIncomeQuery) sqlCount(ctx context.Context) (int, error) {
	_spec := ciq.querySpec()
	if len(ciq.modifiers) > 0 {
		_spec.Modifiers = ciq.modifiers
	}
	_spec.Node.Columns = ciq.ctx.Fields
	if len(ciq.ctx.Fields) > 0 {
		_spec.Unique = ciq.ctx.Unique != nil && *ciq.ctx.Unique
	}
	return sqlgraph.CountNodes(ctx, ciq.driver, _spec)
}

func (ciq *CreditIncomeQuery) querySpec() *sqlgraph.QuerySpec {
	_spec := sqlgraph.NewQuerySpec(creditincome.Table, creditincome.Columns, sqlgraph.NewFieldSpec(creditincome.FieldID, field.TypeString))
	_spec.From = ciq.sql
	if unique := ciq.ctx.Unique; unique != nil {
		_spec.Unique = *unique
	} else if ciq.path != nil {
		_spec.Unique = true
	}
	if fields := ciq.ctx.Fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, creditincome.FieldID)
		for i := range fields {
			if fields[i] != creditincome.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, fields[i])
			}
		}
		if ciq.withCreditCard != nil {
			_spec.Node.AddColumnOnce(creditincome.FieldCreditCardID)
		}
		if ciq.withCreditBill != nil {
			_spec.Node.AddColumnOnce(creditincome.FieldCreditBillID)
		}
		if ciq.withCreditExpense != nil {
			_spec.Node.AddColumnOnce(creditincome.FieldCreditExpenseID)
		}
	}
	if ps := ciq.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if limit := ciq.ctx.Limit; limit != nil {
		_spec.Limit = *limit
	}
	if offset := ciq.ctx.Offset; offset != nil {
		_spec.Offset = *offset
	}
	if ps := ciq.order; len(ps) > 0 {
		_spec.Order = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	return _spec
}

func (ciq *CreditIncomeQuery) sqlQuery(ctx context.Context) *sql.Selector {
	builder := sql.Dialect(ciq.driver.Dialect())
	t1 := builder.Table(creditincome.Table)
	columns := ciq.ctx.Fields
	if len(columns) == 0 {
		columns = creditincome.Columns
	}
	selector := builder.Select(t1.Columns(columns...)...).From(t1)
	if ciq.sql != nil {
		selector = ciq.sql
		selector.Select(selector.Columns(columns...)...)
	}
	if ciq.ctx.Unique != nil && *ciq.ctx.Unique {
		selector.Distinct()
	}
	for _, m := range ciq.modifiers {
		m(selector)
	}
	for _, p := range ciq.predicates {
		p(selector)
	}
	for _, p := range ciq.order {
		p(selector)
	}
	if offset := ciq.ctx.Offset; offset != nil {
		// limit is mandatory for offset clause. We start
		// with default value, and override it below if needed.
		selector.Offset(*offset).Limit(math.MaxInt32)
	}
	if limit := ciq.ctx.Limit; limit != nil {
		selector.Limit(*limit)
	}
	return selector
}

// ForUpdate locks the selected rows against concurrent updates, and prevent them from being
// updated, deleted or "selected ... for update" by other sessions, until the transaction is
// either committed or rolled-back.
func (ciq *CreditIncomeQuery) ForUpdate(opts ...sql.LockOption) *CreditIncomeQuery {
	if ciq.driver.Dialect() == dialect.Postgres {
		ciq.Unique(false)
	}
	ciq.modifiers = append(ciq.modifiers, func(s *sql.Selector) {
		s.ForUpdate(opts...)
	})
	return ciq
}

// ForShare behaves similarly to ForUpdate, except that it acquires a shared mode lock
// on any rows that are read. Other sessions can read the rows, but cannot modify them
// until your transaction commits.
func (ciq *CreditIncomeQuery) ForShare(opts ...sql.LockOption) *CreditIncomeQuery {
	if ciq.driver.Dialect() == dialect.Postgres {
		ciq.Unique(false)
	}
	ciq.modifiers = append(ciq.modifiers, func(s *sql.Selector) {
		s.ForShare(opts...)
	})
	return ciq
}

// CreditIncomeGroupBy is the group-by builder for CreditIncome entities.
type CreditIncomeGroupBy struct {
	selector
	build *CreditIncomeQuery
}

// Aggregate adds the given aggregation functions to the group-by query.
func (cigb *CreditIncomeGroupBy) Aggregate(fns ...AggregateFunc) *CreditIncomeGroupBy {
	cigb.fns = append(cigb.fns, fns...)
	return cigb
}

// Scan applies the selector query and scans the result into the given value.
func (cigb *CreditIncomeGroupBy) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, cigb.build.ctx, ent.OpQueryGroupBy)
	if err := cigb.build.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*CreditIncomeQuery, *CreditIncomeGroupBy](ctx, cigb.build, cigb, cigb.build.inters, v)
}

func (cigb *CreditIncomeGroupBy) sqlScan(ctx context.Context, root *CreditIncomeQuery, v any) error {
	selector := root.sqlQuery(ctx).Select()
	aggregation := make([]string, 0, len(cigb.fns))
	for _, fn := range cigb.fns {
		aggregation = append(aggregation, fn(selector))
	}
	if len(selector.SelectedColumns()) == 0 {
		columns := make([]string, 0, len(*cigb.flds)+len(cigb.fns))
		for _, f := range *cigb.flds {
			columns = append(columns, selector.C(f))
		}
		columns = append(columns, aggregation...)
		selector.Select(columns...)
	}
	selector.GroupBy(selector.Columns(*cigb.flds...)...)
	if err := selector.Err(); err != nil {
		return err
	}
	rows := &sql.Rows{}
	query, args := selector.Query()
	if err := cigb.build.driver.Query(ctx, query, args, rows); err != nil {
		return err
	}
	defer rows.Close()
	return sql.ScanSlice(rows, v)
}

// CreditIncomeSelect is the builder for selecting fields of CreditIncome entities.
type CreditIncomeSelect struct {
	*CreditIncomeQuery
	selector
}

// Aggregate adds the given aggregation functions to the selector query.
func (cis *CreditIncomeSelect) Aggregate(fns ...AggregateFunc) *CreditIncomeSelect {
	cis.fns = append(cis.fns, fns...)
	return cis
}

// Scan applies the selector query and scans the result into the given value.
func (cis *CreditIncomeSelect) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, cis.ctx, ent.OpQuerySelect)
	if err := cis.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*CreditIncomeQuery, *CreditIncomeSelect](ctx, cis.CreditIncomeQuery, cis, cis.inters, v)
}

func (cis *CreditIncomeSelect) sqlScan(ctx context.Context, root *CreditIncomeQuery, v any) error {
	selector := root.sqlQuery(ctx)
	aggregation := make([]string, 0, len(cis.fns))
	for _, fn := range cis.fns {
		aggregation = append(aggregation, fn(selector))
	}
	switch n := len(*cis.selector.flds); {
	case n == 0 && len(aggregation) > 0:
		selector.Select(aggregation...)
	case n != 0 && len(aggregation) > 0:
		selector.AppendSelect(aggregation...)
	}
	rows := &sql.Rows{}
	query, args := selector.Query()
	if err := cis.driver.Query(ctx, query, args, rows); err != nil {
		return err
	}
	defer rows.Close()
	return sql.ScanSlice(rows, v)
}

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
	"github.com/pocketwise/pocketwise/ent/refundevent"
)

// CreditCardQuery is the builder for querying CreditCard entities.
type CreditCardQuery struct {
	config
	ctx                *QueryContext
	order              []creditcard.OrderOption
	inters             []Interceptor
	predicates         []predicate.CreditCard
	withCreditBills    *CreditBillQuery
	withCreditExpenses *CreditExpenseQuery
	withCreditIncomes  *CreditIncomeQuery
	withRefundEvents   *RefundEventQuery
	modifiers          []func(*sql.Selector)
	// intermediate query (i.e. traversal path).
	sql  *sql.Selector
	path func(context.Context) (*sql.Selector, error)
}

// Where adds a new predicate for the CreditCardQuery builder.
func (ccq *CreditCardQuery) Where(ps ...predicate.CreditCard) *CreditCardQuery {
	ccq.predicates = append(ccq.predicates, ps...)
	return ccq
}

// Limit the number of records to be returned by this query.
func (ccq *CreditCardQuery) Limit(limit int) *CreditCardQuery {
	ccq.ctx.Limit = &limit
	return ccq
}

// Offset to start from.
func (ccq *CreditCardQuery) Offset(offset int) *CreditCardQuery {
	ccq.ctx.Offset = &offset
	return ccq
}

// Unique configures the query builder to filter duplicate records on query.
// By default, unique is set to true, and can be disabled using this method.
func (ccq *CreditCardQuery) Unique(unique bool) *CreditCardQuery {
	ccq.ctx.Unique = &unique
	return ccq
}

// Order specifies how the records should be ordered.
func (ccq *CreditCardQuery) Order(o ...creditcard.OrderOption) *CreditCardQuery {
	ccq.order = append(ccq.order, o...)
	return ccq
}

// QueryCreditBills chains the current query on the "credit_bills" edge.
func (ccq *CreditCardQuery) QueryCreditBills() *CreditBillQuery {
	query := (&CreditBillClient{config: ccq.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := ccq.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := ccq.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(creditcard.Table, creditcard.FieldID, selector),
			sqlgraph.To(creditbill.Table, creditbill.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, creditcard.CreditBillsTable, creditcard.CreditBillsColumn),
		)
		fromU = sqlgraph.SetNeighbors(ccq.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// QueryCreditExpenses chains the current query on the "credit_expenses" edge.
func (ccq *CreditCardQuery) QueryCreditExpenses() *CreditExpenseQuery {
	query := (&CreditExpenseClient{config: ccq.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := ccq.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := ccq.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(creditcard.Table, creditcard.FieldID, selector),
			sqlgraph.To(creditexpense.Table, creditexpense.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, creditcard.CreditExpensesTable, creditcard.CreditExpensesColumn),
		)
		fromU = sqlgraph.SetNeighbors(ccq.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// QueryCreditIncomes chains the current query on the "credit_incomes" edge.
func (ccq *CreditCardQuery) QueryCreditIncomes() *CreditIncomeQuery {
	query := (&CreditIncomeClient{config: ccq.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := ccq.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := ccq.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(creditcard.Table, creditcard.FieldID, selector),
			sqlgraph.To(creditincome.Table, creditincome.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, creditcard.CreditIncomesTable, creditcard.CreditIncomesColumn),
		)
		fromU = sqlgraph.SetNeighbors(ccq.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// QueryRefundEvents chains the current query on the "refund_events" edge.
func (ccq *CreditCardQuery) QueryRefundEvents() *RefundEventQuery {
	query := (&RefundEventClient{config: ccq.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := ccq.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := ccq.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(creditcard.Table, creditcard.FieldID, selector),
			sqlgraph.To(refundevent.Table, refundevent.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, creditcard.RefundEventsTable, creditcard.RefundEventsColumn),
		)
		fromU = sqlgraph.SetNeighbors(ccq.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// First returns the first CreditCard entity from the query.
// Returns a *NotFoundError when no CreditCard was found.
func (ccq *CreditCardQuery) First(ctx context.Context) (*CreditCard, error) {
	nodes, err := ccq.Limit(1).All(setContextOp(ctx, ccq.ctx, ent.OpQueryFirst))
	if err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nil, &NotFoundError{creditcard.Label}
	}
	return nodes[0], nil
}

// FirstX is like First, but panics if an error occurs.
func (ccq *CreditCardQuery) FirstX(ctx context.Context) *CreditCard {
	node, err := ccq.First(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return node
}

// FirstID returns the first CreditCard ID from the query.
// Returns a *NotFoundError when no CreditCard ID was found.
func (ccq *CreditCardQuery) FirstID(ctx context.Context) (id string, err error) {
	var ids []string
	if ids, err = ccq.Limit(1).IDs(setContextOp(ctx, ccq.ctx, ent.OpQueryFirstID)); err != nil {
		return
	}
	if len(ids) == 0 {
		err = &NotFoundError{creditcard.Label}
		return
	}
	return ids[0], nil
}

// FirstIDX is like FirstID, but panics if an error occurs.
func (ccq *CreditCardQuery) FirstIDX(ctx context.Context) string {
	id, err := ccq.FirstID(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return id
}

// Only returns a single CreditCard entity found by the query, ensuring it only returns one.
// Returns a *NotSingularError when more than one CreditCard entity is found.
// Returns a *NotFoundError when no CreditCard entities are found.
func (ccq *CreditCardQuery) Only(ctx context.Context) (*CreditCard, error) {
	nodes, err := ccq.Limit(2).All(setContextOp(ctx, ccq.ctx, ent.OpQueryOnly))
	if err != nil {
		return nil, err
	}
	switch len(nodes) {
	case 1:
		return nodes[0], nil
	case 0:
		return nil, &NotFoundError{creditcard.Label}
	default:
		return nil, &NotSingularError{creditcard.Label}
	}
}

// OnlyX is like Only, but panics if an error occurs.
func (ccq *CreditCardQuery) OnlyX(ctx context.Context) *CreditCard {
	node, err := ccq.Only(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// OnlyID is like Only, but returns the only CreditCard ID in the query.
// Returns a *NotSingularError when more than one CreditCard ID is found.
// Returns a *NotFoundError when no entities are found.
func (ccq *CreditCardQuery) OnlyID(ctx context.Context) (id string, err error) {
	var ids []string
	if ids, err = ccq.Limit(2).IDs(setContextOp(ctx, ccq.ctx, ent.OpQueryOnlyID)); err != nil {
		return
	}
	switch len(ids) {
	case 1:
		id = ids[0]
	case 0:
		err = &NotFoundError{creditcard.Label}
	default:
		err = &NotSingularError{creditcard.Label}
	}
	return
}

// OnlyIDX is like OnlyID, but panics if an error occurs.
func (ccq *CreditCardQuery) OnlyIDX(ctx context.Context) string {
	id, err := ccq.OnlyID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// All executes the query and returns a list of CreditCards.
func (ccq *CreditCardQuery) All(ctx context.Context) ([]*CreditCard, error) {
	ctx = setContextOp(ctx, ccq.ctx, ent.OpQueryAll)
	if err := ccq.prepareQuery(ctx); err != nil {
		return nil, err
	}
	qr := querierAll[[]*CreditCard, *CreditCardQuery]()
	return withInterceptors[[]*CreditCard](ctx, ccq, qr, ccq.inters)
}

// AllX is like All, but panics if an error occurs.
func (ccq *CreditCardQuery) AllX(ctx context.Context) []*CreditCard {
	nodes, err := ccq.All(ctx)
	if err != nil {
		panic(err)
	}
	return nodes
}

// IDs executes the query and returns a list of CreditCard IDs.
func (ccq *CreditCardQuery) IDs(ctx context.Context) (ids []string, err error) {
	if ccq.ctx.Unique == nil && ccq.path != nil {
		ccq.Unique(true)
	}
	ctx = setContextOp(ctx, ccq.ctx, ent.OpQueryIDs)
	if err = ccq.Select(creditcard.FieldID).Scan(ctx, &ids); err != nil {
		return nil, err
	}
	return ids, nil
}

// IDsX is like IDs, but panics if an error occurs.
func (ccq *CreditCardQuery) IDsX(ctx context.Context) []string {
	ids, err := ccq.IDs(ctx)
	if err != nil {
		panic(err)
	}
	return ids
}

// Count returns the count of the given query.
func (ccq *CreditCardQuery) Count(ctx context.Context) (int, error) {
	ctx = setContextOp(ctx, ccq.ctx, ent.OpQueryCount)
	if err := ccq.prepareQuery(ctx); err != nil {
		return 0, err
	}
	return withInterceptors[int](ctx, ccq, querierCount[*CreditCardQuery](), ccq.inters)
}

// CountX is like Count, but panics if an error occurs.
func (ccq *CreditCardQuery) CountX(ctx context.Context) int {
	count, err := ccq.Count(ctx)
	if err != nil {
		panic(err)
	}
	return count
}

// Exist returns true if the query has elements in the graph.
func (ccq *CreditCardQuery) Exist(ctx context.Context) (bool, error) {
	ctx = setContextOp(ctx, ccq.ctx, ent.OpQueryExist)
	switch _, err := ccq.FirstID(ctx); {
	case IsNotFound(err):
		return false, nil
	case err != nil:
		return false, fmt.Errorf("ent: check existence: %w", err)
	default:
		return true, nil
	}
}

// ExistX is like Exist, but panics if an error occurs.
func (ccq *CreditCardQuery) ExistX(ctx context.Context) bool {
	exist, err := ccq.Exist(ctx)
	if err != nil {
		panic(err)
	}
	return exist
}

// Clone returns a duplicate of the CreditCardQuery builder, including all associated steps. It can be
// used to prepare common query builders and use them differently after the clone is made.
func (ccq *CreditCardQuery) Clone() *CreditCardQuery {
	if ccq == nil {
		return nil
	}
	return &CreditCardQuery{
		config:             ccq.config,
		ctx:                ccq.ctx.Clone(),
		order:              append([]creditcard.OrderOption{}, ccq.order...),
		inters:             append([]Interceptor{}, ccq.inters...),
		predicates:         append([]predicate.CreditCard{}, ccq.predicates...),
		withCreditBills:    ccq.withCreditBills.Clone(),
		withCreditExpenses: ccq.withCreditExpenses.Clone(),
		withCreditIncomes:  ccq.withCreditIncomes.Clone(),
		withRefundEvents:   ccq.withRefundEvents.Clone(),
		// clone intermediate query.
		sql:  ccq.sql.Clone(),
		path: ccq.path,
	}
}

// WithCreditBills tells the query-builder to eager-load the nodes that are connected to
// the "credit_bills" edge. The optional arguments are used to configure the query builder of the edge.
func (ccq *CreditCardQuery) WithCreditBills(opts ...func(*CreditBillQuery)) *CreditCardQuery {
	query := (&CreditBillClient{config: ccq.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	ccq.withCreditBills = query
	return ccq
}

// WithCreditExpenses tells the query-builder to eager-load the nodes that are connected to
// the "credit_expenses" edge. The optional arguments are used to configure the query builder of the edge.
func (ccq *CreditCardQuery) WithCreditExpenses(opts ...func(*CreditExpenseQuery)) *CreditCardQuery {
	query := (&CreditExpenseClient{config: ccq.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	ccq.withCreditExpenses = query
	return ccq
}

// WithCreditIncomes tells the query-builder to eager-load the nodes that are connected to
// the "credit_incomes" edge. The optional arguments are used to configure the query builder of the edge.
func (ccq *CreditCardQuery) WithCreditIncomes(opts ...func(*CreditIncomeQuery)) *CreditCardQuery {
	query := (&CreditIncomeClient{config: ccq.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	ccq.withCreditIncomes = query
	return ccq
}

// WithRefundEvents tells the query-builder to eager-load the nodes that are connected to
// the "refund_events" edge. The optional arguments are used to configure the query builder of the edge.
func (ccq *CreditCardQuery) WithRefundEvents(opts ...func(*RefundEventQuery)) *CreditCardQuery {
	query := (&RefundEventClient{config: ccq.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	ccq.withRefundEvents = query
	return ccq
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
//	client.CreditCard.Query().
//		GroupBy(creditcard.FieldUserID).
//		Aggregate(ent.Count()).
//		Scan(ctx, &v)
func (ccq *CreditCardQuery) GroupBy(field string, fields ...string) *CreditCardGroupBy {
	ccq.ctx.Fields = append([]string{field}, fields...)
	grbuild := &CreditCardGroupBy{build: ccq}
	grbuild.flds = &ccq.ctx.Fields
	grbuild.label = creditcard.Label
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
//	client.CreditCard.Query().
//		Select(creditcard.FieldUserID).
//		Scan(ctx, &v)
func (ccq *CreditCardQuery) Select(fields ...string) *CreditCardSelect {
	ccq.ctx.Fields = append(ccq.ctx.Fields, fields...)
	sbuild := &CreditCardSelect{CreditCardQuery: ccq}
	sbuild.label = creditcard.Label
	sbuild.flds, sbuild.scan = &ccq.ctx.Fields, sbuild.Scan
	return sbuild
}

// Aggregate returns a CreditCardSelect configured with the given aggregations.
func (ccq *CreditCardQuery) Aggregate(fns ...AggregateFunc) *CreditCardSelect {
	return ccq.Select().Aggregate(fns...)
}

func (ccq *CreditCardQuery) prepareQuery(ctx context.Context) error {
	for _, inter := range ccq.inters {
		if inter == nil {
			return fmt.Errorf("ent: uninitialized interceptor (forgotten import ent/runtime?)")
		}
		if trv, ok := inter.(Traverser); ok {
			if err := trv.Traverse(ctx, ccq); err != nil {
				return err
			}
		}
	}
	for _, f := range ccq.ctx.Fields {
		if !creditcard.ValidColumn(f) {
			return &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
		}
	}
	if ccq.path != nil {
		prev, err := ccq.path(ctx)
		if err != nil {
			return err
		}
		ccq.sql = prev
	}
	return nil
}

func (ccq *CreditCardQuery) sqlAll(ctx context.Context, hooks ...queryHook) ([]*CreditCard, error) {
	var (
		nodes       = []*CreditCard{}
		_spec       = ccq.querySpec()
		loadedTypes = [4]bool{
			ccq.withCreditBills != nil,
			ccq.withCreditExpenses != nil,
			ccq.withCreditIncomes != nil,
			ccq.withRefundEvents != nil,
		}
	)
	_spec.ScanValues = func(columns []string) ([]any, error) {
		return (*CreditCard).scanValues(nil, columns)
	}
	_spec.Assign = func(columns []string, values []any) error {
		node := &CreditCard{config: ccq.config}
		nodes = append(nodes, node)
		node.Edges.loadedTypes = loadedTypes
		return node.assignValues(columns, values)
	}
	if len(ccq.modifiers) > 0 {
		_spec.Modifiers = ccq.modifiers
	}
	for i := range hooks {
		hooks[i](ctx, _spec)
	}
	if err := sqlgraph.QueryNodes(ctx, ccq.driver, _spec); err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nodes, nil
	}
	if query := ccq.withCreditBills; query != nil {
		if err := ccq.loadCreditBills(ctx, query, nodes,
			func(n *CreditCard) { n.Edges.CreditBills = []*CreditBill{} },
			func(n *CreditCard, e *CreditBill) { n.Edges.CreditBills = append(n.Edges.CreditBills, e) }); err != nil {
			return nil, err
		}
	}
	if query := ccq.withCreditExpenses; query != nil {
		if err := ccq.loadCreditExpenses(ctx, query, nodes,
			func(n *CreditCard) { n.Edges.CreditExpenses = []*CreditExpense{} },
			func(n *CreditCard, e *CreditExpense) { n.Edges.CreditExpenses = append(n.Edges.CreditExpenses, e) }); err != nil {
			return nil, err
		}
	}
	if query := ccq.withCreditIncomes; query != nil {
		if err := ccq.loadCreditIncomes(ctx, query, nodes,
			func(n *CreditCard) { n.Edges.CreditIncomes = []*CreditIncome{} },
			func(n *CreditCard, e *CreditIncome) { n.Edges.CreditIncomes = append(n.Edges.CreditIncomes, e) }); err != nil {
			return nil, err
		}
	}
	if query := ccq.withRefundEvents; query != nil {
		if err := ccq.loadRefundEvents(ctx, query, nodes,
			func(n *CreditCard) { n.Edges.RefundEvents = []*RefundEvent{} },
			func(n *CreditCard, e *RefundEvent) { n.Edges.RefundEvents = append(n.Edges.RefundEvents, e) }); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

func (ccq *CreditCardQuery) loadCreditBills(ctx context.Context, query *CreditBillQuery, nodes []*CreditCard, init func(*CreditCard), assign func(*CreditCard, *CreditBill)) error {
	fks := make([]driver.Value, 0, len(nodes))
	nodeids := make(map[string]*CreditCard)
	for i := range nodes {
		fks = append(fks, nodes[i].ID)
		nodeids[nodes[i].ID] = nodes[i]
		if init != nil {
			init(nodes[i])
		}
	}
	if len(query.ctx.Fields) > 0 {
		query.ctx.AppendFieldOnce(creditbill.FieldCreditCardID)
	}
	query.Where(predicate.CreditBill(func(s *sql.Selector) {
		s.Where(sql.InValues(s.C(creditcard.CreditBillsColumn), fks...))
	}))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		fk := n.CreditCardID
		node, ok := nodeids[fk]
		if !ok {
			return fmt.Errorf(`unexpected referenced foreign-key "credit_card_id" returned %v for node %v`, fk, n.ID)
		}
		assign(node, n)
	}
	return nil
}
func (ccq *CreditCardQuery) loadCreditExpenses(ctx context.Context, query *CreditExpenseQuery, nodes []*CreditCard, init func(*CreditCard), assign func(*CreditCard, *CreditExpense)) error {
	fks := make([]driver.Value, 0, len(nodes))
	nodeids := make(map[string]*CreditCard)
	for i := range nodes {
		fks = append(fks, nodes[i].ID)
		nodeids[nodes[i].ID] = nodes[i]
		if init != nil {
			init(nodes[i])
		}
	}
	if len(query.ctx.Fields) > 0 {
		query.ctx.AppendFieldOnce(creditexpense.FieldCreditCardID)
	}
	query.Where(predicate.CreditExpense(func(s *sql.Selector) {
		s.Where(sql.InValues(s.C(creditcard.CreditExpensesColumn), fks...))
	}))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		fk := n.CreditCardID
		node, ok := nodeids[fk]
		if !ok {
			return fmt.Errorf(`unexpected referenced foreign-key "credit_card_id" returned %v for node %v`, fk, n.ID)
		}
		assign(node, n)
	}
	return nil
}
func (ccq *CreditCardQuery) loadCreditIncomes(ctx context.Context, query *CreditIncomeQuery, nodes []*CreditCard, init func(*CreditCard), assign func(*CreditCard, *CreditIncome)) error {
	fks := make([]driver.Value, 0, len(nodes))
	nodeids := make(map[string]*CreditCard)
	for i := range nodes {
		fks = append(fks, nodes[i].ID)
		nodeids[nodes[i].ID] = nodes[i]
		if init != nil {
			init(nodes[i])
		}
	}
	if len(query.ctx.Fields) > 0 {
		query.ctx.AppendFieldOnce(creditincome.FieldCreditCardID)
	}
	query.Where(predicate.CreditIncome(func(s *sql.Selector) {
		s.Where(sql.InValues(s.C(creditcard.CreditIncomesColumn), fks...))
	}))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		fk := n.CreditCardID
		node, ok := nodeids[fk]
		if !ok {
			return fmt.Errorf(`unexpected referenced foreign-key "credit_card_id" returned %v for node %v`, fk, n.ID)
		}
		assign(node, n)
	}
	return nil
}
func (ccq *CreditCardQuery) loadRefundEvents(ctx context.Context, query *RefundEventQuery, nodes []*CreditCard, init func(*CreditCard), assign func(*CreditCard, *RefundEvent)) error {
	fks := make([]driver.Value, 0, len(nodes))
	nodeids := make(map[string]*CreditCard)
	for i := range nodes {
		fks = append(fks, nodes[i].ID)
		nodeids[nodes[i].ID] = nodes[i]
		if init != nil {
			init(nodes[i])
		}
	}
	if len(query.ctx.Fields) > 0 {
		query.ctx.AppendFieldOnce(refundevent.FieldCreditCardID)
	}
	query.Where(predicate.RefundEvent(func(s *sql.Selector) {
		s.Where(sql.InValues(s.C(creditcard.RefundEventsColumn), fks...))
	}))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		fk := n.CreditCardID
		node, ok := nodeids[fk]
		if !ok {
			return fmt.Errorf(`unexpected referenced foreign-key "credit_card_id" returned %v for node %v`, fk, n.ID)
		}
		assign(node, n)
	}
	return nil
}

func (ccq *CreditCardQuery) sqlCount(ctx context.Context) (int, error) {
	_spec := ccq.querySpec()
	if len(ccq.modifiers) > 0 {
		_spec.Modifiers = ccq.modifiers
	}
	_spec.Node.Columns = ccq.ctx.Fields
	if len(ccq.ctx.Fields) > 0 {
		_spec.Unique = ccq.ctx.Unique != nil && *ccq.ctx.Unique
	}
	return sqlgraph.CountNodes(ctx, ccq.driver, _spec)
}

func (ccq *CreditCardQuery) querySpec() *sqlgraph.QuerySpec {
	_spec := sqlgraph.NewQuerySpec(creditcard.Table, creditcard.Columns, sqlgraph.NewFieldSpec(creditcard.FieldID, field.TypeString))
	_spec.From = ccq.sql
	if unique := ccq.ctx.Unique; unique != nil {
		_spec.Unique = *unique
	} else if ccq.path != nil {
		_spec.Unique = true
	}
	if fields := ccq.ctx.Fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, creditcard.FieldID)
		for i := range fields {
			if fields[i] != creditcard.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, fields[i])
			}
		}
	}
	if ps := ccq.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if limit := ccq.ctx.Limit; limit != nil {
		_spec.Limit = *limit
	}
	if offset := ccq.ctx.Offset; offset != nil {
		_spec.Offset = *offset
	}
	if ps := ccq.order; len(ps) > 0 {
		_spec.Order = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	return _spec
}

func (ccq *CreditCardQuery) sqlQuery(ctx context.Context) *sql.Selector {
	builder := sql.Dialect(ccq.driver.Dialect())
	t1 := builder.Table(creditcard.Table)
	columns := ccq.ctx.Fields
	if len(columns) == 0 {
		columns = creditcard.Columns
	}
	selector := builder.Select(t1.Columns(columns...)...).From(t1)
	if ccq.sql != nil {
		selector = ccq.sql
		selector.Select(selector.Columns(columns...)...)
	}
	if ccq.ctx.Unique != nil && *ccq.ctx.Unique {
		selector.Distinct()
	}
	for _, m := range ccq.modifiers {
		m(selector)
	}
	for _, p := range ccq.predicates {
		p(selector)
	}
	for _, p := range ccq.order {
		p(selector)
	}
	if offset := ccq.ctx.Offset; offset != nil {
		// limit is mandatory for offset clause. We start
		// with default value, and override it below if needed.
		selector.Offset(*offset).Limit(math.MaxInt32)
	}
	if limit := ccq.ctx.Limit; limit != nil {
		selector.Limit(*limit)
	}
	return selector
}

// ForUpdate locks the selected rows against concurrent updates, and prevent them from being
// updated, deleted or "selected ... for update" by other sessions, until the transaction is
// either committed or rolled-back.
func (ccq *CreditCardQuery) ForUpdate(opts ...sql.LockOption) *CreditCardQuery {
	if ccq.driver.Dialect() == dialect.Postgres {
		ccq.Unique(false)
	}
	ccq.modifiers = append(ccq.modifiers, func(s *sql.Selector) {
		s.ForUpdate(opts...)
	})
	return ccq
}

// ForShare behaves similarly to ForUpdate, except that it acquires a shared mode lock
// on any rows that are read. Other sessions can read the rows, but cannot modify them
// until your transaction commits.
func (ccq *CreditCardQuery) ForShare(opts ...sql.LockOption) *CreditCardQuery {
	if ccq.driver.Dialect() == dialect.Postgres {
		ccq.Unique(false)
	}
	ccq.modifiers = append(ccq.modifiers, func(s *sql.Selector) {
		s.ForShare(opts...)
	})
	return ccq
}

// CreditCardGroupBy is the group-by builder for CreditCard entities.
type CreditCardGroupBy struct {
	selector
	build *CreditCardQuery
}

// Aggregate adds the given aggregation functions to the group-by query.
func (ccgb *CreditCardGroupBy) Aggregate(fns ...AggregateFunc) *CreditCardGroupBy {
	ccgb.fns = append(ccgb.fns, fns...)
	return ccgb
}

// Scan applies the selector query and scans the result into the given value.
func (ccgb *CreditCardGroupBy) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, ccgb.build.ctx, ent.OpQueryGroupBy)
	if err := ccgb.build.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*CreditCardQuery, *CreditCardGroupBy](ctx, ccgb.build, ccgb, ccgb.build.inters, v)
}

func (ccgb *CreditCardGroupBy) sqlScan(ctx context.Context, root *CreditCardQuery, v any) error {
	selector := root.sqlQuery(ctx).Select()
	aggregation := make([]string, 0, len(ccgb.fns))
	for _, fn := range ccgb.fns {
		aggregation = append(aggregation, fn(selector))
	}
	if len(selector.SelectedColumns()) == 0 {
		columns := make([]string, 0, len(*ccgb.flds)+len(ccgb.fns))
		for _, f := range *ccgb.flds {
			columns = append(columns, selector.C(f))
		}
		columns = append(columns, aggregation...)
		selector.Select(columns...)
	}
	selector.GroupBy(selector.Columns(*ccgb.flds...)...)
	if err := selector.Err(); err != nil {
		return err
	}
	rows := &sql.Rows{}
	query, args := selector.Query()
	if err := ccgb.build.driver.Query(ctx, query, args, rows); err != nil {
		return err
	}
	defer rows.Close()
	return sql.ScanSlice(rows, v)
}

// CreditCardSelect is the builder for selecting fields of CreditCard entities.
type CreditCardSelect struct {
	*CreditCardQuery
	selector
}

// Aggregate adds the given aggregation functions to the selector query.
func (ccs *CreditCardSelect) Aggregate(fns ...AggregateFunc) *CreditCardSelect {
	ccs.fns = append(ccs.fns, fns...)
	return ccs
}

// Scan applies the selector query and scans the result into the given value.
func (ccs *CreditCardSelect) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, ccs.ctx, ent.OpQuerySelect)
	if err := ccs.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*CreditCardQuery, *CreditCardSelect](ctx, ccs.CreditCardQuery, ccs, ccs.inters, v)
}

func (ccs *CreditCardSelect) sqlScan(ctx context.Context, root *CreditCardQuery, v any) error {
	selector := root.sqlQuery(ctx)
	aggregation := make([]string, 0, len(ccs.fns))
	for _, fn := range ccs.fns {
		aggregation = append(aggregation, fn(selector))
	}
	switch n := len(*ccs.selector.flds); {
	case n == 0 && len(aggregation) > 0:
		selector.Select(aggregation...)
	case n != 0 && len(aggregation) > 0:
		selector.AppendSelect(aggregation...)
	}
	rows := &sql.Rows{}
	query, args := selector.Query()
	if err := ccs.driver.Query(ctx, query, args, rows); err != nil {
		return err
	}
	defer rows.Close()
	return sql.ScanSlice(rows, v)
}

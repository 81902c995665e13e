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

// CreditExpenseQuery is the builder for querying CreditExpense entities.
type CreditExpenseQuery struct {
	config
	ctx               *QueryContext
	order             []creditexpense.OrderOption
	inters            []Interceptor
	predicates        []predicate.CreditExpense
	withCreditCard    *CreditCardQuery
	withParent        *CreditExpenseQuery
	withChildren      *CreditExpenseQuery
	withCreditBill    *CreditBillQuery
	withCreditIncomes *CreditIncomeQuery
	withRefundEvents  *RefundEventQuery
	modifiers         []func(*sql.Selector)
	// intermediate query (i.e. traversal path).
	sql  *sql.Selector
	path func(context.Context) (*sql.Selector, error)
}

// Where adds a new predicate for the CreditExpenseQuery builder.
func (ceq *CreditExpenseQuery) Where(ps ...predicate.CreditExpense) *CreditExpenseQuery {
	ceq.predicates = append(ceq.predicates, ps...)
	return ceq
}

// Limit the number of records to be returned by this query.
func (ceq *CreditExpenseQuery) Limit(limit int) *CreditExpenseQuery {
	ceq.ctx.Limit = &limit
	return ceq
}

// Offset to start from.
func (ceq *CreditExpenseQuery) Offset(offset int) *CreditExpenseQuery {
	ceq.ctx.Offset = &offset
	return ceq
}

// Unique configures the query builder to filter duplicate records on query.
// By default, unique is set to true, and can be disabled using this method.
func (ceq *CreditExpenseQuery) Unique(unique bool) *CreditExpenseQuery {
	ceq.ctx.Unique = &unique
	return ceq
}

// Order specifies how the records should be ordered.
func (ceq *CreditExpenseQuery) Order(o ...creditexpense.OrderOption) *CreditExpenseQuery {
	ceq.order = append(ceq.order, o...)
	return ceq
}

// QueryCreditCard chains the current query on the "credit_card" edge.
func (ceq *CreditExpenseQuery) QueryCreditCard() *CreditCardQuery {
	query := (&CreditCardClient{config: ceq.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := ceq.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := ceq.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(creditexpense.Table, creditexpense.FieldID, selector),
			sqlgraph.To(creditcard.Table, creditcard.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, creditexpense.CreditCardTable, creditexpense.CreditCardColumn),
		)
		fromU = sqlgraph.SetNeighbors(ceq.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// QueryParent chains the current query on the "parent" edge.
func (ceq *CreditExpenseQuery) QueryParent() *CreditExpenseQuery {
	query := (&CreditExpenseClient{config: ceq.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := ceq.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := ceq.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(creditexpense.Table, creditexpense.FieldID, selector),
			sqlgraph.To(creditexpense.Table, creditexpense.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, creditexpense.ParentTable, creditexpense.ParentColumn),
		)
		fromU = sqlgraph.SetNeighbors(ceq.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// QueryChildren chains the current query on the "children" edge.
func (ceq *CreditExpenseQuery) QueryChildren() *CreditExpenseQuery {
	query := (&CreditExpenseClient{config: ceq.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := ceq.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := ceq.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(creditexpense.Table, creditexpense.FieldID, selector),
			sqlgraph.To(creditexpense.Table, creditexpense.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, creditexpense.ChildrenTable, creditexpense.ChildrenColumn),
		)
		fromU = sqlgraph.SetNeighbors(ceq.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// QueryCreditBill chains the current query on the "credit_bill" edge.
func (ceq *CreditExpenseQuery) QueryCreditBill() *CreditBillQuery {
	query := (&CreditBillClient{config: ceq.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := ceq.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := ceq.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(creditexpense.Table, creditexpense.FieldID, selector),
			sqlgraph.To(creditbill.Table, creditbill.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, creditexpense.CreditBillTable, creditexpense.CreditBillColumn),
		)
		fromU = sqlgraph.SetNeighbors(ceq.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// QueryCreditIncomes chains the current query on the "credit_incomes" edge.
func (ceq *CreditExpenseQuery) QueryCreditIncomes() *CreditIncomeQuery {
	query := (&CreditIncomeClient{config: ceq.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := ceq.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := ceq.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(creditexpense.Table, creditexpense.FieldID, selector),
			sqlgraph.To(creditincome.Table, creditincome.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, creditexpense.CreditIncomesTable, creditexpense.CreditIncomesColumn),
		)
		fromU = sqlgraph.SetNeighbors(ceq.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// QueryRefundEvents chains the current query on the "refund_events" edge.
func (ceq *CreditExpenseQuery) QueryRefundEvents() *RefundEventQuery {
	query := (&RefundEventClient{config: ceq.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := ceq.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := ceq.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(creditexpense.Table, creditexpense.FieldID, selector),
			sqlgraph.To(refundevent.Table, refundevent.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, creditexpense.RefundEventsTable, creditexpense.RefundEventsColumn),
		)
		fromU = sqlgraph.SetNeighbors(ceq.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// First returns the first CreditExpense entity from the query.
// Returns a *NotFoundError when no CreditExpense was found.
func (ceq *CreditExpenseQuery) First(ctx context.Context) (*CreditExpense, error) {
	nodes, err := ceq.Limit(1).All(setContextOp(ctx, ceq.ctx, ent.OpQueryFirst))
	if err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nil, &NotFoundError{creditexpense.Label}
	}
	return nodes[0], nil
}

// FirstX is like First, but panics if an error occurs.
func (ceq *CreditExpenseQuery) FirstX(ctx context.Context) *CreditExpense {
	node, err := ceq.First(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return node
}

// FirstID returns the first CreditExpense ID from the query.
// Returns a *NotFoundError when no CreditExpense ID was found.
func (ceq *CreditExpenseQuery) FirstID(ctx context.Context) (id string, err error) {
	var ids []string
	if ids, err = ceq.Limit(1).IDs(setContextOp(ctx, ceq.ctx, ent.OpQueryFirstID)); err != nil {
		return
	}
	if len(ids) == 0 {
		err = &NotFoundError{creditexpense.Label}
		return
	}
	return ids[0], nil
}

// FirstIDX is like FirstID, but panics if an error occurs.
func (ceq *CreditExpenseQuery) FirstIDX(ctx context.Context) string {
	id, err := ceq.FirstID(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return id
}

// Only returns a single CreditExpense entity found by the query, ensuring it only returns one.
// Returns a *NotSingularError when more than one CreditExpense entity is found.
// Returns a *NotFoundError when no CreditExpense entities are found.
func (ceq *CreditExpenseQuery) Only(ctx context.Context) (*CreditExpense, error) {
	nodes, err := ceq.Limit(2).All(setContextOp(ctx, ceq.ctx, ent.OpQueryOnly))
	if err != nil {
		return nil, err
	}
	switch len(nodes) {
	case 1:
		return nodes[0], nil
	case 0:
		return nil, &NotFoundError{creditexpense.Label}
	default:
		return nil, &NotSingularError{creditexpense.Label}
	}
}

// OnlyX is like Only, but panics if an error occurs.
func (ceq *CreditExpenseQuery) OnlyX(ctx context.Context) *CreditExpense {
	node, err := ceq.Only(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// OnlyID is like Only, but returns the only CreditExpense ID in the query.
// Returns a *NotSingularError when more than one CreditExpense ID is found.
// Returns a *NotFoundError when no entities are found.
func (ceq *CreditExpenseQuery) OnlyID(ctx context.Context) (id string, err error) {
	var ids []string
	if ids, err = ceq.Limit(2).IDs(setContextOp(ctx, ceq.ctx, ent.OpQueryOnlyID)); err != nil {
		return
	}
	switch len(ids) {
	case 1:
		id = ids[0]
	case 0:
		err = &NotFoundError{creditexpense.Label}
	default:
		err = &NotSingularError{creditexpense.Label}
	}
	return
}

// OnlyIDX is like OnlyID, but panics if an error occurs.
func (ceq *CreditExpenseQuery) OnlyIDX(ctx context.Context) string {
	id, err := ceq.OnlyID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// All executes the query and returns a list of CreditExpenses.
func (ceq *CreditExpenseQuery) All(ctx context.Context) ([]*CreditExpense, error) {
	ctx = setContextOp(ctx, ceq.ctx, ent.OpQueryAll)
	if err := ceq.prepareQuery(ctx); err != nil {
		return nil, err
	}
	qr := querierAll[[]*CreditExpense, *CreditExpenseQuery]()
	return withInterceptors[[]*CreditExpense](ctx, ceq, qr, ceq.inters)
}

// AllX is like All, but panics if an error occurs.
func (ceq *CreditExpenseQuery) AllX(ctx context.Context) []*CreditExpense {
	nodes, err := ceq.All(ctx)
	if err != nil {
		panic(err)
	}
	return nodes
}

// IDs executes the query and returns a list of CreditExpense IDs.
func (ceq *CreditExpenseQuery) IDs(ctx context.Context) (ids []string, err error) {
	if ceq.ctx.Unique == nil && ceq.path != nil {
		ceq.Unique(true)
	}
	ctx = setContextOp(ctx, ceq.ctx, ent.OpQueryIDs)
	if err = ceq.Select(creditexpense.FieldID).Scan(ctx, &ids); err != nil {
		return nil, err
	}
	return ids, nil
}

// IDsX is like IDs, but panics if an error occurs.
func (ceq *CreditExpenseQuery) IDsX(ctx context.Context) []string {
	ids, err := ceq.IDs(ctx)
	if err != nil {
		panic(err)
	}
	return ids
}

// Count returns the count of the given query.
func (ceq *CreditExpenseQuery) Count(ctx context.Context) (int, error) {
	ctx = setContextOp(ctx, ceq.ctx, ent.OpQueryCount)
	if err := ceq.prepareQuery(ctx); err != nil {
		return 0, err
	}
	return withInterceptors[int](ctx, ceq, querierCount[*CreditExpenseQuery](), ceq.inters)
}

// CountX is like Count, but panics if an error occurs.
func (ceq *CreditExpenseQuery) CountX(ctx context.Context) int {
	count, err := ceq.Count(ctx)
	if err != nil {
		panic(err)
	}
	return count
}

// Exist returns true if the query has elements in the graph.
func (ceq *CreditExpenseQuery) Exist(ctx context.Context) (bool, error) {
	ctx = setContextOp(ctx, ceq.ctx, ent.OpQueryExist)
	switch _, err := ceq.FirstID(ctx); {
	case IsNotFound(err):
		return false, nil
	case err != nil:
		return false, fmt.Errorf("ent: check existence: %w", err)
	default:
		return true, nil
	}
}

// ExistX is like Exist, but panics if an error occurs.
func (ceq *CreditExpenseQuery) ExistX(ctx context.Context) bool {
	exist, err := ceq.Exist(ctx)
	if err != nil {
		panic(err)
	}
	return exist
}

// Clone returns a duplicate of the CreditExpenseQuery builder, including all associated steps. It can be
// used to prepare common query builders and use them differently after the clone is made.
func (ceq *CreditExpenseQuery) Clone() *CreditExpenseQuery {
	if ceq == nil {
		return nil
	}
	return &CreditExpenseQuery{
		config:            ceq.config,
		ctx:               ceq.ctx.Clone(),
		order:             append([]creditexpense.OrderOption{}, ceq.order...),
		inters:            append([]Interceptor{}, ceq.inters...),
		predicates:        append([]predicate.CreditExpense{}, ceq.predicates...),
		withCreditCard:    ceq.withCreditCard.Clone(),
		withParent:        ceq.withParent.Clone(),
		withChildren:      ceq.withChildren.Clone(),
		withCreditBill:    ceq.withCreditBill.Clone(),
		withCreditIncomes: ceq.withCreditIncomes.Clone(),
		withRefundEvents:  ceq.withRefundEvents.Clone(),
		// clone intermediate query.
		sql:  ceq.sql.Clone(),
		path: ceq.path,
	}
}

// WithCreditCard tells the query-builder to eager-load the nodes that are connected to
// the "credit_card" edge. The optional arguments are used to configure the query builder of the edge.
func (ceq *CreditExpenseQuery) WithCreditCard(opts ...func(*CreditCardQuery)) *CreditExpenseQuery {
	query := (&CreditCardClient{config: ceq.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	ceq.withCreditCard = query
	return ceq
}

// WithParent tells the query-builder to eager-load the nodes that are connected to
// the "parent" edge. The optional arguments are used to configure the query builder of the edge.
func (ceq *CreditExpenseQuery) WithParent(opts ...func(*CreditExpenseQuery)) *CreditExpenseQuery {
	query := (&CreditExpenseClient{config: ceq.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	ceq.withParent = query
	return ceq
}

// WithChildren tells the query-builder to eager-load the nodes that are connected to
// the "children" edge. The optional arguments are used to configure the query builder of the edge.
func (ceq *CreditExpenseQuery) WithChildren(opts ...func(*CreditExpenseQuery)) *CreditExpenseQuery {
	query := (&CreditExpenseClient{config: ceq.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	ceq.withChildren = query
	return ceq
}

// WithCreditBill tells the query-builder to eager-load the nodes that are connected to
// the "credit_bill" edge. The optional arguments are used to configure the query builder of the edge.
func (ceq *CreditExpenseQuery) WithCreditBill(opts ...func(*CreditBillQuery)) *CreditExpenseQuery {
	query := (&CreditBillClient{config: ceq.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	ceq.withCreditBill = query
	return ceq
}

// WithCreditIncomes tells the query-builder to eager-load the nodes that are connected to
// the "credit_incomes" edge. The optional arguments are used to configure the query builder of the edge.
func (ceq *CreditExpenseQuery) WithCreditIncomes(opts ...func(*CreditIncomeQuery)) *CreditExpenseQuery {
	query := (&CreditIncomeClient{config: ceq.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	ceq.withCreditIncomes = query
	return ceq
}

// WithRefundEvents tells the query-builder to eager-load the nodes that are connected to
// the "refund_events" edge. The optional arguments are used to configure the query builder of the edge.
func (ceq *CreditExpenseQuery) WithRefundEvents(opts ...func(*RefundEventQuery)) *CreditExpenseQuery {
	query := (&RefundEventClient{config: ceq.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	ceq.withRefundEvents = query
	return ceq
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
//	client.CreditExpense.Query().
//		GroupBy(creditexpense.FieldUserID).
//		Aggregate(ent.Count()).
//		Scan(ctx, &v)
func (ceq *CreditExpenseQuery) GroupBy(field string, fields ...string) *CreditExpenseGroupBy {
	ceq.ctx.Fields = append([]string{field}, fields...)
	grbuild := &CreditExpenseGroupBy{build: ceq}
	grbuild.flds = &ceq.ctx.Fields
	grbuild.label = creditexpense.Label
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
//	client.CreditExpense.Query().
//		Select(creditexpense.FieldUserID).
//		Scan(ctx, &v)
func (ceq *CreditExpenseQuery) Select(fields ...string) *CreditExpenseSelect {
	ceq.ctx.Fields = append(ceq.ctx.Fields, fields...)
	sbuild := &CreditExpenseSelect{CreditExpenseQuery: ceq}
	sbuild.label = creditexpense.Label
	sbuild.flds, sbuild.scan = &ceq.ctx.Fields, sbuild.Scan
	return sbuild
}

// Aggregate returns a CreditExpenseSelect configured with the given aggregations.
func (ceq *CreditExpenseQuery) Aggregate(fns ...AggregateFunc) *CreditExpenseSelect {
	return ceq.Select().Aggregate(fns...)
}

func (ceq *CreditExpenseQuery) prepareQuery(ctx context.Context) error {
	for _, inter := range ceq.inters {
		if inter == nil {
			return fmt.Errorf("ent: uninitialized interceptor (forgotten import ent/runtime?)")
		}
		if trv, ok := inter.(Traverser); ok {
			if err := trv.Traverse(ctx, ceq); err != nil {
				return err
			}
		}
	}
	for _, f := range ceq.ctx.Fields {
		if !creditexpense.ValidColumn(f) {
			return &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
		}
	}
	if ceq.path != nil {
		prev, err := ceq.path(ctx)
		if err != nil {
			return err
		}
		ceq.sql = prev
	}
	return nil
}

func (ceq *CreditExpenseQuery) sqlAll(ctx context.Context, hooks ...queryHook) ([]*CreditExpense, error) {
	var (
		nodes       = []*CreditExpense{}
		_spec       = ceq.querySpec()
		loadedTypes = [6]bool{
			ceq.withCreditCard != nil,
			ceq.withParent != nil,
			ceq.withChildren != nil,
			ceq.withCreditBill != nil,
			ceq.withCreditIncomes != nil,
			ceq.withRefundEvents != nil,
		}
	)
	_spec.ScanValues = func(columns []string) ([]any, error) {
		return (*CreditExpense).scanValues(nil, columns)
	}
	_spec.Assign = func(columns []string, values []any) error {
		node := &CreditExpense{config: ceq.config}
		nodes = append(nodes, node)
		node.Edges.loadedTypes = loadedTypes
		return node.assignValues(columns, values)
	}
	if len(ceq.modifiers) > 0 {
		_spec.Modifiers = ceq.modifiers
	}
	for i := range hooks {
		hooks[i](ctx, _spec)
	}
	if err := sqlgraph.QueryNodes(ctx, ceq.driver, _spec); err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nodes, nil
	}
	if query := ceq.withCreditCard; query != nil {
		if err := ceq.loadCreditCard(ctx, query, nodes, nil,
			func(n *CreditExpense, e *CreditCard) { n.Edges.CreditCard = e }); err != nil {
			return nil, err
		}
	}
	if query := ceq.withParent; query != nil {
		if err := ceq.loadParent(ctx, query, nodes, nil,
			func(n *CreditExpense, e *CreditExpense) { n.Edges.Parent = e }); err != nil {
			return nil, err
		}
	}
	if query := ceq.withChildren; query != nil {
		if err := ceq.loadChildren(ctx, query, nodes,
			func(n *CreditExpense) { n.Edges.Children = []*CreditExpense{} },
			func(n *CreditExpense, e *CreditExpense) { n.Edges.Children = append(n.Edges.Children, e) }); err != nil {
			return nil, err
		}
	}
	if query := ceq.withCreditBill; query != nil {
		if err := ceq.loadCreditBill(ctx, query, nodes, nil,
			func(n *CreditExpense, e *CreditBill) { n.Edges.CreditBill = e }); err != nil {
			return nil, err
		}
	}
	if query := ceq.withCreditIncomes; query != nil {
		if err := ceq.loadCreditIncomes(ctx, query, nodes,
			func(n *CreditExpense) { n.Edges.CreditIncomes = []*CreditIncome{} },
			func(n *CreditExpense, e *CreditIncome) { n.Edges.CreditIncomes = append(n.Edges.CreditIncomes, e) }); err != nil {
			return nil, err
		}
	}
	if query := ceq.withRefundEvents; query != nil {
		if err := ceq.loadRefundEvents(ctx, query, nodes,
			func(n *CreditExpense) { n.Edges.RefundEvents = []*RefundEvent{} },
			func(n *CreditExpense, e *RefundEvent) { n.Edges.RefundEvents = append(n.Edges.RefundEvents, e) }); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

func (ceq *CreditExpenseQuery) loadCreditCard(ctx context.Context, query *CreditCardQuery, nodes []*CreditExpense, init func(*CreditExpense), assign func(*CreditExpense, *CreditCard)) error {
	ids := make([]string, 0, len(nodes))
	nodeids := make(map[string][]*CreditExpense)
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
func (ceq *CreditExpenseQuery) loadParent(ctx context.Context, query *CreditExpenseQuery, nodes []*CreditExpense, init func(*CreditExpense), assign func(*CreditExpense, *CreditExpense)) error {
	ids := make([]string, 0, len(nodes))
	nodeids := make(map[string][]*CreditExpense)
	for i := range nodes {
		if nodes[i].ParentExpenseID == nil {
			continue
		}
		fk := *nodes[i].ParentExpenseID
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
			return fmt.Errorf(`unexpected foreign-key "parent_expense_id" returned %v`, n.ID)
		}
		for i := range nodes {
			assign(nodes[i], n)
		}
	}
	return nil
}
func (ceq *CreditExpenseQuery) loadChildren(ctx context.Context, query *CreditExpenseQuery, nodes []*CreditExpense, init func(*CreditExpense), assign func(*CreditExpense, *CreditExpense)) error {
	fks := make([]driver.Value, 0, len(nodes))
	nodeids := make(map[string]*CreditExpense)
	for i := range nodes {
		fks = append(fks, nodes[i].ID)
		nodeids[nodes[i].ID] = nodes[i]
		if init != nil {
			init(nodes[i])
		}
	}
	if len(query.ctx.Fields) > 0 {
		query.ctx.AppendFieldOnce(creditexpense.FieldParentExpenseID)
	}
	query.Where(predicate.CreditExpense(func(s *sql.Selector) {
		s.Where(sql.InValues(s.C(creditexpense.ChildrenColumn), fks...))
	}))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		fk := n.ParentExpenseID
		if fk == nil {
			return fmt.Errorf(`foreign-key "parent_expense_id" is nil for node %v`, n.ID)
		}
		node, ok := nodeids[*fk]
		if !ok {
			return fmt.Errorf(`unexpected referenced foreign-key "parent_expense_id" returned %v for node %v`, *fk, n.ID)
		}
		assign(node, n)
	}
	return nil
}
func (ceq *CreditExpenseQuery) loadCreditBill(ctx context.Context, query *CreditBillQuery, nodes []*CreditExpense, init func(*CreditExpense), assign func(*CreditExpense, *CreditBill)) error {
	ids := make([]string, 0, len(nodes))
	nodeids := make(map[string][]*CreditExpense)
	for i := range nodes {
		if nodes[i].CreditBillID == nil {
			continue
		}
		fk := *nodes[i].CreditBillID
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
func (ceq *CreditExpenseQuery) loadCreditIncomes(ctx context.Context, query *CreditIncomeQuery, nodes []*CreditExpense, init func(*CreditExpense), assign func(*CreditExpense, *CreditIncome)) error {
	fks := make([]driver.Value, 0, len(nodes))
	nodeids := make(map[string]*CreditExpense)
	for i := range nodes {
		fks = append(fks, nodes[i].ID)
		nodeids[nodes[i].ID] = nodes[i]
		if init != nil {
			init(nodes[i])
		}
	}
	if len(query.ctx.Fields) > 0 {
		query.ctx.AppendFieldOnce(creditincome.FieldCreditExpenseID)
	}
	query.Where(predicate.CreditIncome(func(s *sql.Selector) {
		s.Where(sql.InValues(s.C(creditexpense.CreditIncomesColumn), fks...))
	}))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		fk := n.CreditExpenseID
		node, ok := nodeids[fk]
		if !ok {
			return fmt.Errorf(`unexpected referenced foreign-key "credit_expense_id" returned %v for node %v`, fk, n.ID)
		}
		assign(node, n)
	}
	return nil
}
func (ceq *CreditExpenseQuery) loadRefundEvents(ctx context.Context, query *RefundEventQuery, nodes []*CreditExpense, init func(*CreditExpense), assign func(*CreditExpense, *RefundEvent)) error {
	fks := make([]driver.Value, 0, len(nodes))
	nodeids := make(map[string]*CreditExpense)
	for i := range nodes {
		fks = append(fks, nodes[i].ID)
		nodeids[nodes[i].ID] = nodes[i]
		if init != nil {
			init(nodes[i])
		}
	}
	if len(query.ctx.Fields) > 0 {
		query.ctx.AppendFieldOnce(refundevent.FieldCreditExpenseID)
	}
	query.Where(predicate.RefundEvent(func(s *sql.Selector) {
		s.Where(sql.InValues(s.C(creditexpense.RefundEventsColumn), fks...))
	}))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		fk := n.CreditExpenseID
		node, ok := nodeids[fk]
		if !ok {
			return fmt.Errorf(`unexpected referenced foreign-key "credit_expense_id" returned %v for node %v`, fk, n.ID)
		}
		assign(node, n)
	}
	return nil
}

func (ceq *CreditExpenseQuery) sqlCount(ctx context.Context) (int, error) {
	_spec := ceq.querySpec()
	if len(ceq.modifiers) > 0 {
		_spec.Modifiers = ceq.modifiers
	}
	_spec.Node.Columns = ceq.ctx.Fields
	if len(ceq.ctx.Fields) > 0 {
		_spec.Unique = ceq.ctx.Unique != nil && *ceq.ctx.Unique
	}
	return sqlgraph.CountNodes(ctx, ceq.driver, _spec)
}

func (ceq *CreditExpenseQuery) querySpec() *sqlgraph.QuerySpec {
	_spec := sqlgraph.NewQuerySpec(creditexpense.Table, creditexpense.Columns, sqlgraph.NewFieldSpec(creditexpense.FieldID, field.TypeString))
	_spec.From = ceq.sql
	if unique := ceq.ctx.Unique; unique != nil {
		_spec.Unique = *unique
	} else if ceq.path != nil {
		_spec.Unique = true
	}
	if fields := ceq.ctx.Fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, creditexpense.FieldID)
		for i := range fields {
			if fields[i] != creditexpense.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, fields[i])
			}
		}
		if ceq.withCreditCard != nil {
			_spec.Node.AddColumnOnce(creditexpense.FieldCreditCardID)
		}
		if ceq.withParent != nil {
			_spec.Node.AddColumnOnce(creditexpense.FieldParentExpenseID)
		}
		if ceq.withCreditBill != nil {
			_spec.Node.AddColumnOnce(creditexpense.FieldCreditBillID)
		}
	}
	if ps := ceq.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if limit := ceq.ctx.Limit; limit != nil {
		_spec.Limit = *limit
	}
	if offset := ceq.ctx.Offset; offset != nil {
		_spec.Offset = *offset
	}
	if ps := ceq.order; len(ps) > 0 {
		_spec.Order = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	return _spec
}

func (ceq *CreditExpenseQuery) sqlQuery(ctx context.Context) *sql.Selector {
	builder := sql.Dialect(ceq.driver.Dialect())
	t1 := builder.Table(creditexpense.Table)
	columns := ceq.ctx.Fields
	if len(columns) == 0 {
		columns = creditexpense.Columns
	}
	selector := builder.Select(t1.Columns(columns...)...).From(t1)
	if ceq.sql != nil {
		selector = ceq.sql
		selector.Select(selector.Columns(columns...)...)
	}
	if ceq.ctx.Unique != nil && *ceq.ctx.Unique {
		selector.Distinct()
	}
	for _, m := range ceq.modifiers {
		m(selector)
	}
	for _, p := range ceq.predicates {
		p(selector)
	}
	for _, p := range ceq.order {
		p(selector)
	}
	if offset := ceq.ctx.Offset; offset != nil {
		// limit is mandatory for offset clause. We start
		// with default value, and override it below if needed.
		selector.Offset(*offset).Limit(math.MaxInt32)
	}
	if limit := ceq.ctx.Limit; limit != nil {
		selector.Limit(*limit)
	}
	return selector
}

// ForUpdate locks the selected rows against concurrent updates, and prevent them from being
// updated, deleted or "selected ... for update" by other sessions, until the transaction is
// either committed or rolled-back.
func (ceq *CreditExpenseQuery) ForUpdate(opts ...sql.LockOption) *CreditExpenseQuery {
	if ceq.driver.Dialect() == dialect.Postgres {
		ceq.Unique(false)
	}
	ceq.modifiers = append(ceq.modifiers, func(s *sql.Selector) {
		s.ForUpdate(opts...)
	})
	return ceq
}

// ForShare behaves similarly to ForUpdate, except that it acquires a shared mode lock
// on any rows that are read. Other sessions can read the rows, but cannot modify them
// until your transaction commits.
func (ceq *CreditExpenseQuery) ForShare(opts ...sql.LockOption) *CreditExpenseQuery {
	if ceq.driver.Dialect() == dialect.Postgres {
		ceq.Unique(false)
	}
	ceq.modifiers = append(ceq.modifiers, func(s *sql.Selector) {
		s.ForShare(opts...)
	})
	return ceq
}

// CreditExpenseGroupBy is the group-by builder for CreditExpense entities.
type CreditExpenseGroupBy struct {
	selector
	build *CreditExpenseQuery
}

// Aggregate adds the given aggregation functions to the group-by query.
func (cegb *CreditExpenseGroupBy) Aggregate(fns ...AggregateFunc) *CreditExpenseGroupBy {
	cegb.fns = append(cegb.fns, fns...)
	return cegb
}

// Scan applies the selector query and scans the result into the given value.
func (cegb *CreditExpenseGroupBy) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, cegb.build.ctx, ent.OpQueryGroupBy)
	if err := cegb.build.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*CreditExpenseQuery, *CreditExpenseGroupBy](ctx, cegb.build, cegb, cegb.build.inters, v)
}

func (cegb *CreditExpenseGroupBy) sqlScan(ctx context.Context, root *CreditExpenseQuery, v any) error {
	selector := root.sqlQuery(ctx).Select()
	aggregation := make([]string, 0, len(cegb.fns))
	for _, fn := range cegb.fns {
		aggregation = append(aggregation, fn(selector))
	}
	if len(selector.SelectedColumns()) == 0 {
		columns := make([]string, 0, len(*cegb.flds)+len(cegb.fns))
		for _, f := range *cegb.flds {
			columns = append(columns, selector.C(f))
		}
		columns = append(columns, aggregation...)
		selector.Select(columns...)
	}
	selector.GroupBy(selector.Columns(*cegb.flds...)...)
	if err := selector.Err(); err != nil {
		return err
	}
	rows := &sql.Rows{}
	query, args := selector.Query()
	if err := cegb.build.driver.Query(ctx, query, args, rows); err != nil {
		return err
	}
	defer rows.Close()
	return sql.ScanSlice(rows, v)
}

// CreditExpenseSelect is the builder for selecting fields of CreditExpense entities.
type CreditExpenseSelect struct {
	*CreditExpenseQuery
	selector
}

// Aggregate adds the given aggregation functions to the selector query.
func (ces *CreditExpenseSelect) Aggregate(fns ...AggregateFunc) *CreditExpenseSelect {
	ces.fns = append(ces.fns, fns...)
	return ces
}

// Scan applies the selector query and scans the result into the given value.
func (ces *CreditExpenseSelect) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, ces.ctx, ent.OpQuerySelect)
	if err := ces.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*CreditExpenseQuery, *CreditExpenseSelect](ctx, ces.CreditExpenseQuery, ces, ces.inters, v)
}

func (ces *CreditExpenseSelect) sqlScan(ctx context.Context, root *CreditExpenseQuery, v any) error {
	selector := root.sqlQuery(ctx)
	aggregation := make([]string, 0, len(ces.fns))
	for _, fn := range ces.fns {
		aggregation = append(aggregation, fn(selector))
	}
	switch n := len(*ces.selector.flds); {
	case n == 0 && len(aggregation) > 0:
		selector.Select(aggregation...)
	case n != 0 && len(aggregation) > 0:
		selector.AppendSelect(aggregation...)
	}
	rows := &sql.Rows{}
	query, args := selector.Query()
	if err := ces.driver.Query(ctx, query, args, rows); err != nil {
		return err
	}
	defer rows.Close()
	return sql.ScanSlice(rows, v)
}

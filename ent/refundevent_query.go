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
	"github.com/pocketwise/pocketwise/ent/creditcard"
	"github.com/pocketwise/pocketwise/ent/creditexpense"
	"github.com/pocketwise/pocketwise/ent/predicate"
	"github.com/pocketwise/pocketwise/ent/refundevent"
)

// RefundEventQuery is the builder for querying RefundEvent entities.
type RefundEventQuery struct {
	config
	ctx               *QueryContext
	order             []refundevent.OrderOption
	inters            []Interceptor
	predicates        []predicate.RefundEvent
	withCreditExpense *CreditExpenseQuery
	withCreditCard    *CreditCardQuery
	modifiers         []func(*sql.Selector)
	// intermediate query (i.e. traversal path).
	sql  *sql.Selector
	path func(context.Context) (*sql.Selector, error)
}

// Where adds a new predicate for the RefundEventQuery builder.
func (req *RefundEventQuery) Where(ps ...predicate.RefundEvent) *RefundEventQuery {
	req.predicates = append(req.predicates, ps...)
	return req
}

// Limit the number of records to be returned by this query.
func (req *RefundEventQuery) Limit(limit int) *RefundEventQuery {
	req.ctx.Limit = &limit
	return req
}

// Offset to start from.
func (req *RefundEventQuery) Offset(offset int) *RefundEventQuery {
	req.ctx.Offset = &offset
	return req
}

// Unique configures the query builder to filter duplicate records on query.
// By default, unique is set to true, and can be disabled using this method.
func (req *RefundEventQuery) Unique(unique bool) *RefundEventQuery {
	req.ctx.Unique = &unique
	return req
}

// Order specifies how the records should be ordered.
func (req *RefundEventQuery) Order(o ...refundevent.OrderOption) *RefundEventQuery {
	req.order = append(req.order, o...)
	return req
}

// QueryCreditExpense chains the current query on the "credit_expense" edge.
func (req *RefundEventQuery) QueryCreditExpense() *CreditExpenseQuery {
	query := (&CreditExpenseClient{config: req.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := req.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := req.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(refundevent.Table, refundevent.FieldID, selector),
			sqlgraph.To(creditexpense.Table, creditexpense.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, refundevent.CreditExpenseTable, refundevent.CreditExpenseColumn),
		)
		fromU = sqlgraph.SetNeighbors(req.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// QueryCreditCard chains the current query on the "credit_card" edge.
func (req *RefundEventQuery) QueryCreditCard() *CreditCardQuery {
	query := (&CreditCardClient{config: req.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := req.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := req.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(refundevent.Table, refundevent.FieldID, selector),
			sqlgraph.To(creditcard.Table, creditcard.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, refundevent.CreditCardTable, refundevent.CreditCardColumn),
		)
		fromU = sqlgraph.SetNeighbors(req.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// First returns the first RefundEvent entity from the query.
// Returns a *NotFoundError when no RefundEvent was found.
func (req *RefundEventQuery) First(ctx context.Context) (*RefundEvent, error) {
	nodes, err := req.Limit(1).All(setContextOp(ctx, req.ctx, ent.OpQueryFirst))
	if err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nil, &NotFoundError{refundevent.Label}
	}
	return nodes[0], nil
}

// FirstX is like First, but panics if an error occurs.
func (req *RefundEventQuery) FirstX(ctx context.Context) *RefundEvent {
	node, err := req.First(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return node
}

// FirstID returns the first RefundEvent ID from the query.
// Returns a *NotFoundError when no RefundEvent ID was found.
func (req *RefundEventQuery) FirstID(ctx context.Context) (id string, err error) {
	var ids []string
	if ids, err = req.Limit(1).IDs(setContextOp(ctx, req.ctx, ent.OpQueryFirstID)); err != nil {
		return
	}
	if len(ids) == 0 {
		err = &NotFoundError{refundevent.Label}
		return
	}
	return ids[0], nil
}

// FirstIDX is like FirstID, but panics if an error occurs.
func (req *RefundEventQuery) FirstIDX(ctx context.Context) string {
	id, err := req.FirstID(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return id
}

// Only returns a single RefundEvent entity found by the query, ensuring it only returns one.
// Returns a *NotSingularError when more than one RefundEvent entity is found.
// Returns a *NotFoundError when no RefundEvent entities are found.
func (req *RefundEventQuery) Only(ctx context.Context) (*RefundEvent, error) {
	nodes, err := req.Limit(2).All(setContextOp(ctx, req.ctx, ent.OpQueryOnly))
	if err != nil {
		return nil, err
	}
	switch len(nodes) {
	case 1:
		return nodes[0], nil
	case 0:
		return nil, &NotFoundError{refundevent.Label}
	default:
		return nil, &NotSingularError{refundevent.Label}
	}
}

// OnlyX is like Only, but panics if an error occurs.
func (req *RefundEventQuery) OnlyX(ctx context.Context) *RefundEvent {
	node, err := req.Only(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// OnlyID is like Only, but returns the only RefundEvent ID in the query.
// Returns a *NotSingularError when more than one RefundEvent ID is found.
// Returns a *NotFoundError when no entities are found.
func (req *RefundEventQuery) OnlyID(ctx context.Context) (id string, err error) {
	var ids []string
	if ids, err = req.Limit(2).IDs(setContextOp(ctx, req.ctx, ent.OpQueryOnlyID)); err != nil {
		return
	}
	switch len(ids) {
	case 1:
		id = ids[0]
	case 0:
		err = &NotFoundError{refundevent.Label}
	default:
		err = &NotSingularError{refundevent.Label}
	}
	return
}

// OnlyIDX is like OnlyID, but panics if an error occurs.
func (req *RefundEventQuery) OnlyIDX(ctx context.Context) string {
	id, err := req.OnlyID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// All executes the query and returns a list of RefundEvents.
func (req *RefundEventQuery) All(ctx context.Context) ([]*RefundEvent, error) {
	ctx = setContextOp(ctx, req.ctx, ent.OpQueryAll)
	if err := req.prepareQuery(ctx); err != nil {
		return nil, err
	}
	qr := querierAll[[]*RefundEvent, *RefundEventQuery]()
	return withInterceptors[[]*RefundEvent](ctx, req, qr, req.inters)
}

// AllX is like All, but panics if an error occurs.
func (req *RefundEventQuery) AllX(ctx context.Context) []*RefundEvent {
	nodes, err := req.All(ctx)
	if err != nil {
		panic(err)
	}
	return nodes
}

// IDs executes the query and returns a list of RefundEvent IDs.
func (req *RefundEventQuery) IDs(ctx context.Context) (ids []string, err error) {
	if req.ctx.Unique == nil && req.path != nil {
		req.Unique(true)
	}
	ctx = setContextOp(ctx, req.ctx, ent.OpQueryIDs)
	if err = req.Select(refundevent.FieldID).Scan(ctx, &ids); err != nil {
		return nil, err
	}
	return ids, nil
}

// IDsX is like IDs, but panics if an error occurs.
func (req *RefundEventQuery) IDsX(ctx context.Context) []string {
	ids, err := req.IDs(ctx)
	if err != nil {
		panic(err)
	}
	return ids
}

// Count returns the count of the given query.
func (req *RefundEventQuery) Count(ctx context.Context) (int, error) {
	ctx = setContextOp(ctx, req.ctx, ent.OpQueryCount)
	if err := req.prepareQuery(ctx); err != nil {
		return 0, err
	}
	return withInterceptors[int](ctx, req, querierCount[*RefundEventQuery](), req.inters)
}

// CountX is like Count, but panics if an error occurs.
func (req *RefundEventQuery) CountX(ctx context.Context) int {
	count, err := req.Count(ctx)
	if err != nil {
		panic(err)
	}
	return count
}

// Exist returns true if the query has elements in the graph.
func (req *RefundEventQuery) Exist(ctx context.Context) (bool, error) {
	ctx = setContextOp(ctx, req.ctx, ent.OpQueryExist)
	switch _, err := req.FirstID(ctx); {
	case IsNotFound(err):
		return false, nil
	case err != nil:
		return false, fmt.Errorf("ent: check existence: %w", err)
	default:
		return true, nil
	}
}

// ExistX is like Exist, but panics if an error occurs.
func (req *RefundEventQuery) ExistX(ctx context.Context) bool {
	exist, err := req.Exist(ctx)
	if err != nil {
		panic(err)
	}
	return exist
}

// Clone returns a duplicate of the RefundEventQuery builder, including all associated steps. It can be
// used to prepare common query builders and use them differently after the clone is made.
func (req *RefundEventQuery) Clone() *RefundEventQuery {
	if req == nil {
		return nil
	}
	return &RefundEventQuery{
		config:            req.config,
		ctx:               req.ctx.Clone(),
		order:             append([]refundevent.OrderOption{}, req.order...),
		inters:            append([]Interceptor{}, req.inters...),
		predicates:        append([]predicate.RefundEvent{}, req.predicates...),
		withCreditExpense: req.withCreditExpense.Clone(),
		withCreditCard:    req.withCreditCard.Clone(),
		// clone intermediate query.
		sql:  req.sql.Clone(),
		path: req.path,
	}
}

// WithCreditExpense tells the query-builder to eager-load the nodes that are connected to
// the "credit_expense" edge. The optional arguments are used to configure the query builder of the edge.
func (req *RefundEventQuery) WithCreditExpense(opts ...func(*CreditExpenseQuery)) *RefundEventQuery {
	query := (&CreditExpenseClient{config: req.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	req.withCreditExpense = query
	return req
}

// WithCreditCard tells the query-builder to eager-load the nodes that are connected to
// the "credit_card" edge. The optional arguments are used to configure the query builder of the edge.
func (req *RefundEventQuery) WithCreditCard(opts ...func(*CreditCardQuery)) *RefundEventQuery {
	query := (&CreditCardClient{config: req.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	req.withCreditCard = query
	return req
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
//	client.RefundEvent.Query().
//		GroupBy(refundevent.FieldUserID).
//		Aggregate(ent.Count()).
//		Scan(ctx, &v)
func (req *RefundEventQuery) GroupBy(field string, fields ...string) *RefundEventGroupBy {
	req.ctx.Fields = append([]string{field}, fields...)
	grbuild := &RefundEventGroupBy{build: req}
	grbuild.flds = &req.ctx.Fields
	grbuild.label = refundevent.Label
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
//	client.RefundEvent.Query().
//		Select(refundevent.FieldUserID).
//		Scan(ctx, &v)
func (req *RefundEventQuery) Select(fields ...string) *RefundEventSelect {
	req.ctx.Fields = append(req.ctx.Fields, fields...)
	sbuild := &RefundEventSelect{RefundEventQuery: req}
	sbuild.label = refundevent.Label
	sbuild.flds, sbuild.scan = &req.ctx.Fields, sbuild.Scan
	return sbuild
}

// Aggregate returns a RefundEventSelect configured with the given aggregations.
func (req *RefundEventQuery) Aggregate(fns ...AggregateFunc) *RefundEventSelect {
	return req.Select().Aggregate(fns...)
}

func (req *RefundEventQuery) prepareQuery(ctx context.Context) error {
	for _, inter := range req.inters {
		if inter == nil {
			return fmt.Errorf("ent: uninitialized interceptor (forgotten import ent/runtime?)")
		}
		if trv, ok := inter.(Traverser); ok {
			if err := trv.Traverse(ctx, req); err != nil {
				return err
			}
		}
	}
	for _, f := range req.ctx.Fields {
		if !refundevent.ValidColumn(f) {
			return &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
		}
	}
	if req.path != nil {
		prev, err := req.path(ctx)
		if err != nil {
			return err
		}
		req.sql = prev
	}
	return nil
}

func (req *RefundEventQuery) sqlAll(ctx context.Context, hooks ...queryHook) ([]*RefundEvent, error) {
	var (
		nodes       = []*RefundEvent{}
		_spec       = req.querySpec()
		loadedTypes = [2]bool{
			req.withCreditExpense != nil,
			req.withCreditCard != nil,
		}
	)
	_spec.ScanValues = func(columns []string) ([]any, error) {
		return (*RefundEvent).scanValues(nil, columns)
	}
	_spec.Assign = func(columns []string, values []any) error {
		node := &RefundEvent{config: req.config}
		nodes = append(nodes, node)
		node.Edges.loadedTypes = loadedTypes
		return node.assignValues(columns, values)
	}
	if len(req.modifiers) > 0 {
		_spec.Modifiers = req.modifiers
	}
	for i := range hooks {
		hooks[i](ctx, _spec)
	}
	if err := sqlgraph.QueryNodes(ctx, req.driver, _spec); err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nodes, nil
	}
	if query := req.withCreditExpense; query != nil {
		if err := req.loadCreditExpense(ctx, query, nodes, nil,
			func(n *RefundEvent, e *CreditExpense) { n.Edges.CreditExpense = e }); err != nil {
			return nil, err
		}
	}
	if query := req.withCreditCard; query != nil {
		if err := req.loadCreditCard(ctx, query, nodes, nil,
			func(n *RefundEvent, e *CreditCard) { n.Edges.CreditCard = e }); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

func (req *RefundEventQuery) loadCreditExpense(ctx context.Context, query *CreditExpenseQuery, nodes []*RefundEvent, init func(*RefundEvent), assign func(*RefundEvent, *CreditExpense)) error {
	ids := make([]string, 0, len(nodes))
	nodeids := make(map[string][]*RefundEvent)
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
func (req *RefundEventQuery) loadCreditCard(ctx context.Context, query *CreditCardQuery, nodes []*RefundEvent, init func(*RefundEvent), assign func(*RefundEvent, *CreditCard)) error {
	ids := make([]string, 0, len(nodes))
	nodeids := make(map[string][]*RefundEvent)
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

func (req *RefundEventQuery) sqlCount(ctx context.Context) (int, error) {
	_spec := req.querySpec()
	if len(req.modifiers) > 0 {
		_spec.Modifiers = req.modifiers
	}
	_spec.Node.Columns = req.ctx.Fields
	if len(req.ctx.Fields) > 0 {
		_spec.Unique = req.ctx.Unique != nil && *req.ctx.Unique
	}
	return sqlgraph.CountNodes(ctx, req.driver, _spec)
}

func (req *RefundEventQuery) querySpec() *sqlgraph.QuerySpec {
	_spec := sqlgraph.NewQuerySpec(refundevent.Table, refundevent.Columns, sqlgraph.NewFieldSpec(refundevent.FieldID, field.TypeString))
	_spec.From = req.sql
	if unique := req.ctx.Unique; unique != nil {
		_spec.Unique = *unique
	} else if req.path != nil {
		_spec.Unique = true
	}
	if fields := req.ctx.Fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, refundevent.FieldID)
		for i := range fields {
			if fields[i] != refundevent.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, fields[i])
			}
		}
		if req.withCreditExpense != nil {
			_spec.Node.AddColumnOnce(refundevent.FieldCreditExpenseID)
		}
		if req.withCreditCard != nil {
			_spec.Node.AddColumnOnce(refundevent.FieldCreditCardID)
		}
	}
	if ps := req.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if limit := req.ctx.Limit; limit != nil {
		_spec.Limit = *limit
	}
	if offset := req.ctx.Offset; offset != nil {
		_spec.Offset = *offset
	}
	if ps := req.order; len(ps) > 0 {
		_spec.Order = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	return _spec
}

func (req *RefundEventQuery) sqlQuery(ctx context.Context) *sql.Selector {
	builder := sql.Dialect(req.driver.Dialect())
	t1 := builder.Table(refundevent.Table)
	columns := req.ctx.Fields
	if len(columns) == 0 {
		columns = refundevent.Columns
	}
	selector := builder.Select(t1.Columns(columns...)...).From(t1)
	if req.sql != nil {
		selector = req.sql
		selector.Select(selector.Columns(columns...)...)
	}
	if req.ctx.Unique != nil && *req.ctx.Unique {
		selector.Distinct()
	}
	for _, m := range req.modifiers {
		m(selector)
	}
	for _, p := range req.predicates {
		p(selector)
	}
	for _, p := range req.order {
		p(selector)
	}
	if offset := req.ctx.Offset; offset != nil {
		// limit is mandatory for offset clause. We start
		// with default value, and override it below if needed.
		selector.Offset(*offset).Limit(math.MaxInt32)
	}
	if limit := req.ctx.Limit; limit != nil {
		selector.Limit(*limit)
	}
	return selector
}

// ForUpdate locks the selected rows against concurrent updates, and prevent them from being
// updated, deleted or "selected ... for update" by other sessions, until the transaction is
// either committed or rolled-back.
func (req *RefundEventQuery) ForUpdate(opts ...sql.LockOption) *RefundEventQuery {
	if req.driver.Dialect() == dialect.Postgres {
		req.Unique(false)
	}
	req.modifiers = append(req.modifiers, func(s *sql.Selector) {
		s.ForUpdate(opts...)
	})
	return req
}

// ForShare behaves similarly to ForUpdate, except that it acquires a shared mode lock
// on any rows that are read. Other sessions can read the rows, but cannot modify them
// until your transaction commits.
func (req *RefundEventQuery) ForShare(opts ...sql.LockOption) *RefundEventQuery {
	if req.driver.Dialect() == dialect.Postgres {
		req.Unique(false)
	}
	req.modifiers = append(req.modifiers, func(s *sql.Selector) {
		s.ForShare(opts...)
	})
	return req
}

// RefundEventGroupBy is the group-by builder for RefundEvent entities.
type RefundEventGroupBy struct {
	selector
	build *RefundEventQuery
}

// Aggregate adds the given aggregation functions to the group-by query.
func (regb *RefundEventGroupBy) Aggregate(fns ...AggregateFunc) *RefundEventGroupBy {
	regb.fns = append(regb.fns, fns...)
	return regb
}

// Scan applies the selector query and scans the result into the given value.
func (regb *RefundEventGroupBy) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, regb.build.ctx, ent.OpQueryGroupBy)
	if err := regb.build.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*RefundEventQuery, *RefundEventGroupBy](ctx, regb.build, regb, regb.build.inters, v)
}

func (regb *RefundEventGroupBy) sqlScan(ctx context.Context, root *RefundEventQuery, v any) error {
	selector := root.sqlQuery(ctx).Select()
	aggregation := make([]string, 0, len(regb.fns))
	for _, fn := range regb.fns {
		aggregation = append(aggregation, fn(selector))
	}
	if len(selector.SelectedColumns()) == 0 {
		columns := make([]string, 0, len(*regb.flds)+len(regb.fns))
		for _, f := range *regb.flds {
			columns = append(columns, selector.C(f))
		}
		columns = append(columns, aggregation...)
		selector.Select(columns...)
	}
	selector.GroupBy(selector.Columns(*regb.flds...)...)
	if err := selector.Err(); err != nil {
		return err
	}
	rows := &sql.Rows{}
	query, args := selector.Query()
	if err := regb.build.driver.Query(ctx, query, args, rows); err != nil {
		return err
	}
	defer rows.Close()
	return sql.ScanSlice(rows, v)
}

// RefundEventSelect is the builder for selecting fields of RefundEvent entities.
type RefundEventSelect struct {
	*RefundEventQuery
	selector
}

// Aggregate adds the given aggregation functions to the selector query.
func (res *RefundEventSelect) Aggregate(fns ...AggregateFunc) *RefundEventSelect {
	res.fns = append(res.fns, fns...)
	return res
}

// Scan applies the selector query and scans the result into the given value.
func (res *RefundEventSelect) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, res.ctx, ent.OpQuerySelect)
	if err := res.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*RefundEventQuery, *RefundEventSelect](ctx, res.RefundEventQuery, res, res.inters, v)
}

func (res *RefundEventSelect) sqlScan(ctx context.Context, root *RefundEventQuery, v any) error {
	selector := root.sqlQuery(ctx)
	aggregation := make([]string, 0, len(res.fns))
	for _, fn := range res.fns {
		aggregation = append(aggregation, fn(selector))
	}
	switch n := len(*res.selector.flds); {
	case n == 0 && len(aggregation) > 0:
		selector.Select(aggregation...)
	case n != 0 && len(aggregation) > 0:
		selector.AppendSelect(aggregation...)
	}
	rows := &sql.Rows{}
	query, args := selector.Query()
	if err := res.driver.Query(ctx, query, args, rows); err != nil {
		return err
	}
	defer rows.Close()
	return sql.ScanSlice(rows, v)
}

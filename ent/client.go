// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"log"
	"reflect"

	"github.com/pocketwise/pocketwise/ent/migrate"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/pocketwise/pocketwise/ent/creditbill"
	"github.com/pocketwise/pocketwise/ent/creditcard"
	"github.com/pocketwise/pocketwise/ent/creditexpense"
	"github.com/pocketwise/pocketwise/ent/creditincome"
	"github.com/pocketwise/pocketwise/ent/refundevent"
)

// Client is the client that holds all ent builders.
type Client struct {
	config
	// Schema is the client for creating, migrating and dropping schema.
	Schema *migrate.Schema
	// CreditBill is the client for interacting with the CreditBill builders.
	CreditBill *CreditBillClient
	// CreditCard is the client for interacting with the CreditCard builders.
	CreditCard *CreditCardClient
	// CreditExpense is the client for interacting with the CreditExpense builders.
	CreditExpense *CreditExpenseClient
	// CreditIncome is the client for interacting with the CreditIncome builders.
	CreditIncome *CreditIncomeClient
	// RefundEvent is the client for interacting with the RefundEvent builders.
	RefundEvent *RefundEventClient
}

// NewClient creates a new client configured with the given options.
func NewClient(opts ...Option) *Client {
	client := &Client{config: newConfig(opts...)}
	client.init()
	return client
}

func (c *Client) init() {
	c.Schema = migrate.NewSchema(c.driver)
	c.CreditBill = NewCreditBillClient(c.config)
	c.CreditCard = NewCreditCardClient(c.config)
	c.CreditExpense = NewCreditExpenseClient(c.config)
	c.CreditIncome = NewCreditIncomeClient(c.config)
	c.RefundEvent = NewRefundEventClient(c.config)
}

type (
	// config is the configuration for the client and its builder.
	config struct {
		// driver used for executing database requests.
		driver dialect.Driver
		// debug enable a debug logging.
		debug bool
		// log used for logging on debug mode.
		log func(...any)
		// hooks to execute on mutations.
		hooks *hooks
		// interceptors to execute on queries.
		inters *inters
	}
	// Option function to configure the client.
	Option func(*config)
)

// newConfig creates a new config for the client.
func newConfig(opts ...Option) config {
	cfg := config{log: log.Println, hooks: &hooks{}, inters: &inters{}}
	cfg.options(opts...)
	return cfg
}

// options applies the options on the config object.
func (c *config) options(opts ...Option) {
	for _, opt := range opts {
		opt(c)
	}
	if c.debug {
		c.driver = dialect.Debug(c.driver, c.log)
	}
}

// Debug enables debug logging on the ent.Driver.
func Debug() Option {
	return func(c *config) {
		c.debug = true
	}
}

// Log sets the logging function for debug mode.
func Log(fn func(...any)) Option {
	return func(c *config) {
		c.log = fn
	}
}

// Driver configures the client driver.
func Driver(driver dialect.Driver) Option {
	return func(c *config) {
		c.driver = driver
	}
}

// Open opens a database/sql.DB specified by the driver name and
// the data source name, and returns a new client attached to it.
// Optional parameters can be added for configuring the client.
func Open(driverName, dataSourceName string, options ...Option) (*Client, error) {
	switch driverName {
	case dialect.MySQL, dialect.Postgres, dialect.SQLite:
		drv, err := sql.Open(driverName, dataSourceName)
		if err != nil {
			return nil, err
		}
		return NewClient(append(options, Driver(drv))...), nil
	default:
		return nil, fmt.Errorf("unsupported driver: %q", driverName)
	}
}

// ErrTxStarted is returned when trying to start a new transaction from a transactional client.
var ErrTxStarted = errors.New("ent: cannot start a transaction within a transaction")

// Tx returns a new transactional client. The provided context
// is used until the transaction is committed or rolled back.
func (c *Client) Tx(ctx context.Context) (*Tx, error) {
	if _, ok := c.driver.(*txDriver); ok {
		return nil, ErrTxStarted
	}
	tx, err := newTx(ctx, c.driver)
	if err != nil {
		return nil, fmt.Errorf("ent: starting a transaction: %w", err)
	}
	cfg := c.config
	cfg.driver = tx
	return &Tx{
		ctx:           ctx,
		config:        cfg,
		CreditBill:    NewCreditBillClient(cfg),
		CreditCard:    NewCreditCardClient(cfg),
		CreditExpense: NewCreditExpenseClient(cfg),
		CreditIncome:  NewCreditIncomeClient(cfg),
		RefundEvent:   NewRefundEventClient(cfg),
	}, nil
}

// BeginTx returns a transactional client with specified options.
func (c *Client) BeginTx(ctx context.Context, opts *sql.TxOptions) (*Tx, error) {
	if _, ok := c.driver.(*txDriver); ok {
		return nil, errors.New("ent: cannot start a transaction within a transaction")
	}
	tx, err := c.driver.(interface {
		BeginTx(context.Context, *sql.TxOptions) (dialect.Tx, error)
	}).BeginTx(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("ent: starting a transaction: %w", err)
	}
	cfg := c.config
	cfg.driver = &txDriver{tx: tx, drv: c.driver}
	return &Tx{
		ctx:           ctx,
		config:        cfg,
		CreditBill:    NewCreditBillClient(cfg),
		CreditCard:    NewCreditCardClient(cfg),
		CreditExpense: NewCreditExpenseClient(cfg),
		CreditIncome:  NewCreditIncomeClient(cfg),
		RefundEvent:   NewRefundEventClient(cfg),
	}, nil
}

// Debug returns a new debug-client. It's used to get verbose logging on specific operations.
//
//	client.Debug().
//		CreditBill.
//		Query().
//		Count(ctx)
func (c *Client) Debug() *Client {
	if c.debug {
		return c
	}
	cfg := c.config
	cfg.driver = dialect.Debug(c.driver, c.log)
	client := &Client{config: cfg}
	client.init()
	return client
}

// Close closes the database connection and prevents new queries from starting.
func (c *Client) Close() error {
	return c.driver.Close()
}

// Use adds the mutation hooks to all the entity clients.
// In order to add hooks to a specific client, call: `client.Node.Use(...)`.
func (c *Client) Use(hooks ...Hook) {
	c.CreditBill.Use(hooks...)
	c.CreditCard.Use(hooks...)
	c.CreditExpense.Use(hooks...)
	c.CreditIncome.Use(hooks...)
	c.RefundEvent.Use(hooks...)
}

// Intercept adds the query interceptors to all the entity clients.
// In order to add interceptors to a specific client, call: `client.Node.Intercept(...)`.
func (c *Client) Intercept(interceptors ...Interceptor) {
	c.CreditBill.Intercept(interceptors...)
	c.CreditCard.Intercept(interceptors...)
	c.CreditExpense.Intercept(interceptors...)
	c.CreditIncome.Intercept(interceptors...)
	c.RefundEvent.Intercept(interceptors...)
}

// Mutate implements the ent.Mutator interface.
func (c *Client) Mutate(ctx context.Context, m Mutation) (Value, error) {
	switch m := m.(type) {
	case *CreditBillMutation:
		return c.CreditBill.mutate(ctx, m)
	case *CreditCardMutation:
		return c.CreditCard.mutate(ctx, m)
	case *CreditExpenseMutation:
		return c.CreditExpense.mutate(ctx, m)
	case *CreditIncomeMutation:
		return c.CreditIncome.mutate(ctx, m)
	case *RefundEventMutation:
		return c.RefundEvent.mutate(ctx, m)
	default:
		return nil, fmt.Errorf("ent: unknown mutation type %T", m)
	}
}

// CreditBillClient is a client for the CreditBill schema.
type CreditBillClient struct {
	config
}

// NewCreditBillClient returns a client for the CreditBill from the given config.
func NewCreditBillClient(c config) *CreditBillClient {
	return &CreditBillClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `creditbill.Hooks(f(g(h())))`.
func (c *CreditBillClient) Use(hooks ...Hook) {
	c.hooks.CreditBill = append(c.hooks.CreditBill, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `creditbill.Intercept(f(g(h())))`.
func (c *CreditBillClient) Intercept(interceptors ...Interceptor) {
	c.inters.CreditBill = append(c.inters.CreditBill, interceptors...)
}

// Create returns a builder for creating a CreditBill entity.
func (c *CreditBillClient) Create() *CreditBillCreate {
	mutation := newCreditBillMutation(c.config, OpCreate)
	return &CreditBillCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of CreditBill entities.
func (c *CreditBillClient) CreateBulk(builders ...*CreditBillCreate) *CreditBillCreateBulk {
	return &CreditBillCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *CreditBillClient) MapCreateBulk(slice any, setFunc func(*CreditBillCreate, int)) *CreditBillCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &CreditBillCreateBulk{err: fmt.Errorf("calling to CreditBillClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*CreditBillCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &CreditBillCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for CreditBill.
func (c *CreditBillClient) Update() *CreditBillUpdate {
	mutation := newCreditBillMutation(c.config, OpUpdate)
	return &CreditBillUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *CreditBillClient) UpdateOne(cb *CreditBill) *CreditBillUpdateOne {
	mutation := newCreditBillMutation(c.config, OpUpdateOne, withCreditBill(cb))
	return &CreditBillUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *CreditBillClient) UpdateOneID(id string) *CreditBillUpdateOne {
	mutation := newCreditBillMutation(c.config, OpUpdateOne, withCreditBillID(id))
	return &CreditBillUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for CreditBill.
func (c *CreditBillClient) Delete() *CreditBillDelete {
	mutation := newCreditBillMutation(c.config, OpDelete)
	return &CreditBillDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *CreditBillClient) DeleteOne(cb *CreditBill) *CreditBillDeleteOne {
	return c.DeleteOneID(cb.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *CreditBillClient) DeleteOneID(id string) *CreditBillDeleteOne {
	builder := c.Delete().Where(creditbill.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &CreditBillDeleteOne{builder}
}

// Query returns a query builder for CreditBill.
func (c *CreditBillClient) Query() *CreditBillQuery {
	return &CreditBillQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeCreditBill},
		inters: c.Interceptors(),
	}
}

// Get returns a CreditBill entity by its id.
func (c *CreditBillClient) Get(ctx context.Context, id string) (*CreditBill, error) {
	return c.Query().Where(creditbill.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *CreditBillClient) GetX(ctx context.Context, id string) *CreditBill {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryCreditCard queries the credit_card edge of a CreditBill.
func (c *CreditBillClient) QueryCreditCard(cb *CreditBill) *CreditCardQuery {
	query := (&CreditCardClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := cb.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(creditbill.Table, creditbill.FieldID, id),
			sqlgraph.To(creditcard.Table, creditcard.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, creditbill.CreditCardTable, creditbill.CreditCardColumn),
		)
		fromV = sqlgraph.Neighbors(cb.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryCreditExpenses queries the credit_expenses edge of a CreditBill.
func (c *CreditBillClient) QueryCreditExpenses(cb *CreditBill) *CreditExpenseQuery {
	query := (&CreditExpenseClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := cb.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(creditbill.Table, creditbill.FieldID, id),
			sqlgraph.To(creditexpense.Table, creditexpense.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, creditbill.CreditExpensesTable, creditbill.CreditExpensesColumn),
		)
		fromV = sqlgraph.Neighbors(cb.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryCreditIncomes queries the credit_incomes edge of a CreditBill.
func (c *CreditBillClient) QueryCreditIncomes(cb *CreditBill) *CreditIncomeQuery {
	query := (&CreditIncomeClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := cb.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(creditbill.Table, creditbill.FieldID, id),
			sqlgraph.To(creditincome.Table, creditincome.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, creditbill.CreditIncomesTable, creditbill.CreditIncomesColumn),
		)
		fromV = sqlgraph.Neighbors(cb.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *CreditBillClient) Hooks() []Hook {
	return c.hooks.CreditBill
}

// Interceptors returns the client interceptors.
func (c *CreditBillClient) Interceptors() []Interceptor {
	return c.inters.CreditBill
}

func (c *CreditBillClient) mutate(ctx context.Context, m *CreditBillMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&CreditBillCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&CreditBillUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&CreditBillUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&CreditBillDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown CreditBill mutation op: %q", m.Op())
	}
}

// CreditCardClient is a client for the CreditCard schema.
type CreditCardClient struct {
	config
}

// NewCreditCardClient returns a client for the CreditCard from the given config.
func NewCreditCardClient(c config) *CreditCardClient {
	return &CreditCardClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `creditcard.Hooks(f(g(h())))`.
func (c *CreditCardClient) Use(hooks ...Hook) {
	c.hooks.CreditCard = append(c.hooks.CreditCard, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `creditcard.Intercept(f(g(h())))`.
func (c *CreditCardClient) Intercept(interceptors ...Interceptor) {
	c.inters.CreditCard = append(c.inters.CreditCard, interceptors...)
}

// Create returns a builder for creating a CreditCard entity.
func (c *CreditCardClient) Create() *CreditCardCreate {
	mutation := newCreditCardMutation(c.config, OpCreate)
	return &CreditCardCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of CreditCard entities.
func (c *CreditCardClient) CreateBulk(builders ...*CreditCardCreate) *CreditCardCreateBulk {
	return &CreditCardCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *CreditCardClient) MapCreateBulk(slice any, setFunc func(*CreditCardCreate, int)) *CreditCardCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &CreditCardCreateBulk{err: fmt.Errorf("calling to CreditCardClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*CreditCardCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &CreditCardCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for CreditCard.
func (c *CreditCardClient) Update() *CreditCardUpdate {
	mutation := newCreditCardMutation(c.config, OpUpdate)
	return &CreditCardUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *CreditCardClient) UpdateOne(cc *CreditCard) *CreditCardUpdateOne {
	mutation := newCreditCardMutation(c.config, OpUpdateOne, withCreditCard(cc))
	return &CreditCardUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *CreditCardClient) UpdateOneID(id string) *CreditCardUpdateOne {
	mutation := newCreditCardMutation(c.config, OpUpdateOne, withCreditCardID(id))
	return &CreditCardUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for CreditCard.
func (c *CreditCardClient) Delete() *CreditCardDelete {
	mutation := newCreditCardMutation(c.config, OpDelete)
	return &CreditCardDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *CreditCardClient) DeleteOne(cc *CreditCard) *CreditCardDeleteOne {
	return c.DeleteOneID(cc.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *CreditCardClient) DeleteOneID(id string) *CreditCardDeleteOne {
	builder := c.Delete().Where(creditcard.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &CreditCardDeleteOne{builder}
}

// Query returns a query builder for CreditCard.
func (c *CreditCardClient) Query() *CreditCardQuery {
	return &CreditCardQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeCreditCard},
		inters: c.Interceptors(),
	}
}

// Get returns a CreditCard entity by its id.
func (c *CreditCardClient) Get(ctx context.Context, id string) (*CreditCard, error) {
	return c.Query().Where(creditcard.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *CreditCardClient) GetX(ctx context.Context, id string) *CreditCard {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryCreditBills queries the credit_bills edge of a CreditCard.
func (c *CreditCardClient) QueryCreditBills(cc *CreditCard) *CreditBillQuery {
	query := (&CreditBillClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := cc.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(creditcard.Table, creditcard.FieldID, id),
			sqlgraph.To(creditbill.Table, creditbill.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, creditcard.CreditBillsTable, creditcard.CreditBillsColumn),
		)
		fromV = sqlgraph.Neighbors(cc.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryCreditExpenses queries the credit_expenses edge of a CreditCard.
func (c *CreditCardClient) QueryCreditExpenses(cc *CreditCard) *CreditExpenseQuery {
	query := (&CreditExpenseClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := cc.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(creditcard.Table, creditcard.FieldID, id),
			sqlgraph.To(creditexpense.Table, creditexpense.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, creditcard.CreditExpensesTable, creditcard.CreditExpensesColumn),
		)
		fromV = sqlgraph.Neighbors(cc.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryCreditIncomes queries the credit_incomes edge of a CreditCard.
func (c *CreditCardClient) QueryCreditIncomes(cc *CreditCard) *CreditIncomeQuery {
	query := (&CreditIncomeClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := cc.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(creditcard.Table, creditcard.FieldID, id),
			sqlgraph.To(creditincome.Table, creditincome.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, creditcard.CreditIncomesTable, creditcard.CreditIncomesColumn),
		)
		fromV = sqlgraph.Neighbors(cc.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryRefundEvents queries the refund_events edge of a CreditCard.
func (c *CreditCardClient) QueryRefundEvents(cc *CreditCard) *RefundEventQuery {
	query := (&RefundEventClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := cc.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(creditcard.Table, creditcard.FieldID, id),
			sqlgraph.To(refundevent.Table, refundevent.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, creditcard.RefundEventsTable, creditcard.RefundEventsColumn),
		)
		fromV = sqlgraph.Neighbors(cc.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *CreditCardClient) Hooks() []Hook {
	return c.hooks.CreditCard
}

// Interceptors returns the client interceptors.
func (c *CreditCardClient) Interceptors() []Interceptor {
	return c.inters.CreditCard
}

func (c *CreditCardClient) mutate(ctx context.Context, m *CreditCardMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&CreditCardCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&CreditCardUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&CreditCardUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&CreditCardDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown CreditCard mutation op: %q", m.Op())
	}
}

// CreditExpenseClient is a client for the CreditExpense schema.
type CreditExpenseClient struct {
	config
}

// NewCreditExpenseClient returns a client for the CreditExpense from the given config.
func NewCreditExpenseClient(c config) *CreditExpenseClient {
	return &CreditExpenseClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `creditexpense.Hooks(f(g(h())))`.
func (c *CreditExpenseClient) Use(hooks ...Hook) {
	c.hooks.CreditExpense = append(c.hooks.CreditExpense, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `creditexpense.Intercept(f(g(h())))`.
func (c *CreditExpenseClient) Intercept(interceptors ...Interceptor) {
	c.inters.CreditExpense = append(c.inters.CreditExpense, interceptors...)
}

// Create returns a builder for creating a CreditExpense entity.
func (c *CreditExpenseClient) Create() *CreditExpenseCreate {
	mutation := newCreditExpenseMutation(c.config, OpCreate)
	return &CreditExpenseCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of CreditExpense entities.
func (c *CreditExpenseClient) CreateBulk(builders ...*CreditExpenseCreate) *CreditExpenseCreateBulk {
	return &CreditExpenseCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *CreditExpenseClient) MapCreateBulk(slice any, setFunc func(*CreditExpenseCreate, int)) *CreditExpenseCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &CreditExpenseCreateBulk{err: fmt.Errorf("calling to CreditExpenseClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*CreditExpenseCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &CreditExpenseCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for CreditExpense.
func (c *CreditExpenseClient) Update() *CreditExpenseUpdate {
	mutation := newCreditExpenseMutation(c.config, OpUpdate)
	return &CreditExpenseUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *CreditExpenseClient) UpdateOne(ce *CreditExpense) *CreditExpenseUpdateOne {
	mutation := newCreditExpenseMutation(c.config, OpUpdateOne, withCreditExpense(ce))
	return &CreditExpenseUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *CreditExpenseClient) UpdateOneID(id string) *CreditExpenseUpdateOne {
	mutation := newCreditExpenseMutation(c.config, OpUpdateOne, withCreditExpenseID(id))
	return &CreditExpenseUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for CreditExpense.
func (c *CreditExpenseClient) Delete() *CreditExpenseDelete {
	mutation := newCreditExpenseMutation(c.config, OpDelete)
	return &CreditExpenseDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *CreditExpenseClient) DeleteOne(ce *CreditExpense) *CreditExpenseDeleteOne {
	return c.DeleteOneID(ce.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *CreditExpenseClient) DeleteOneID(id string) *CreditExpenseDeleteOne {
	builder := c.Delete().Where(creditexpense.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &CreditExpenseDeleteOne{builder}
}

// Query returns a query builder for CreditExpense.
func (c *CreditExpenseClient) Query() *CreditExpenseQuery {
	return &CreditExpenseQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeCreditExpense},
		inters: c.Interceptors(),
	}
}

// Get returns a CreditExpense entity by its id.
func (c *CreditExpenseClient) Get(ctx context.Context, id string) (*CreditExpense, error) {
	return c.Query().Where(creditexpense.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *CreditExpenseClient) GetX(ctx context.Context, id string) *CreditExpense {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryCreditCard queries the credit_card edge of a CreditExpense.
func (c *CreditExpenseClient) QueryCreditCard(ce *CreditExpense) *CreditCardQuery {
	query := (&CreditCardClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := ce.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(creditexpense.Table, creditexpense.FieldID, id),
			sqlgraph.To(creditcard.Table, creditcard.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, creditexpense.CreditCardTable, creditexpense.CreditCardColumn),
		)
		fromV = sqlgraph.Neighbors(ce.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryParent queries the parent edge of a CreditExpense.
func (c *CreditExpenseClient) QueryParent(ce *CreditExpense) *CreditExpenseQuery {
	query := (&CreditExpenseClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := ce.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(creditexpense.Table, creditexpense.FieldID, id),
			sqlgraph.To(creditexpense.Table, creditexpense.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, creditexpense.ParentTable, creditexpense.ParentColumn),
		)
		fromV = sqlgraph.Neighbors(ce.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryChildren queries the children edge of a CreditExpense.
func (c *CreditExpenseClient) QueryChildren(ce *CreditExpense) *CreditExpenseQuery {
	query := (&CreditExpenseClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := ce.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(creditexpense.Table, creditexpense.FieldID, id),
			sqlgraph.To(creditexpense.Table, creditexpense.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, creditexpense.ChildrenTable, creditexpense.ChildrenColumn),
		)
		fromV = sqlgraph.Neighbors(ce.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryCreditBill queries the credit_bill edge of a CreditExpense.
func (c *CreditExpenseClient) QueryCreditBill(ce *CreditExpense) *CreditBillQuery {
	query := (&CreditBillClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := ce.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(creditexpense.Table, creditexpense.FieldID, id),
			sqlgraph.To(creditbill.Table, creditbill.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, creditexpense.CreditBillTable, creditexpense.CreditBillColumn),
		)
		fromV = sqlgraph.Neighbors(ce.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryCreditIncomes queries the credit_incomes edge of a CreditExpense.
func (c *CreditExpenseClient) QueryCreditIncomes(ce *CreditExpense) *CreditIncomeQuery {
	query := (&CreditIncomeClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := ce.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(creditexpense.Table, creditexpense.FieldID, id),
			sqlgraph.To(creditincome.Table, creditincome.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, creditexpense.CreditIncomesTable, creditexpense.CreditIncomesColumn),
		)
		fromV = sqlgraph.Neighbors(ce.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryRefundEvents queries the refund_events edge of a CreditExpense.
func (c *CreditExpenseClient) QueryRefundEvents(ce *CreditExpense) *RefundEventQuery {
	query := (&RefundEventClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := ce.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(creditexpense.Table, creditexpense.FieldID, id),
			sqlgraph.To(refundevent.Table, refundevent.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, creditexpense.RefundEventsTable, creditexpense.RefundEventsColumn),
		)
		fromV = sqlgraph.Neighbors(ce.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *CreditExpenseClient) Hooks() []Hook {
	return c.hooks.CreditExpense
}

// Interceptors returns the client interceptors.
func (c *CreditExpenseClient) Interceptors() []Interceptor {
	return c.inters.CreditExpense
}

func (c *CreditExpenseClient) mutate(ctx context.Context, m *CreditExpenseMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&CreditExpenseCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&CreditExpenseUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&CreditExpenseUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&CreditExpenseDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown CreditExpense mutation op: %q", m.Op())
	}
}

// CreditIncomeClient is a client for the CreditIncome schema.
type CreditIncomeClient struct {
	config
}

// NewCreditIncomeClient returns a client for the CreditIncome from the given config.
func NewCreditIncomeClient(c config) *CreditIncomeClient {
	return &CreditIncomeClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `creditincome.Hooks(f(g(h())))`.
func (c *CreditIncomeClient) Use(hooks ...Hook) {
	c.hooks.CreditIncome = append(c.hooks.CreditIncome, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `creditincome.Intercept(f(g(h())))`.
func (c *CreditIncomeClient) Intercept(interceptors ...Interceptor) {
	c.inters.CreditIncome = append(c.inters.CreditIncome, interceptors...)
}

// Create returns a builder for creating a CreditIncome entity.
func (c *CreditIncomeClient) Create() *CreditIncomeCreate {
	mutation := newCreditIncomeMutation(c.config, OpCreate)
	return &CreditIncomeCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of CreditIncome entities.
func (c *CreditIncomeClient) CreateBulk(builders ...*CreditIncomeCreate) *CreditIncomeCreateBulk {
	return &CreditIncomeCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *CreditIncomeClient) MapCreateBulk(slice any, setFunc func(*CreditIncomeCreate, int)) *CreditIncomeCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &CreditIncomeCreateBulk{err: fmt.Errorf("calling to CreditIncomeClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*CreditIncomeCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &CreditIncomeCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for CreditIncome.
func (c *CreditIncomeClient) Update() *CreditIncomeUpdate {
	mutation := newCreditIncomeMutation(c.config, OpUpdate)
	return &CreditIncomeUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *CreditIncomeClient) UpdateOne(ci *CreditIncome) *CreditIncomeUpdateOne {
	mutation := newCreditIncomeMutation(c.config, OpUpdateOne, withCreditIncome(ci))
	return &CreditIncomeUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *CreditIncomeClient) UpdateOneID(id string) *CreditIncomeUpdateOne {
	mutation := newCreditIncomeMutation(c.config, OpUpdateOne, withCreditIncomeID(id))
	return &CreditIncomeUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for CreditIncome.
func (c *CreditIncomeClient) Delete() *CreditIncomeDelete {
	mutation := newCreditIncomeMutation(c.config, OpDelete)
	return &CreditIncomeDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *CreditIncomeClient) DeleteOne(ci *CreditIncome) *CreditIncomeDeleteOne {
	return c.DeleteOneID(ci.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *CreditIncomeClient) DeleteOneID(id string) *CreditIncomeDeleteOne {
	builder := c.Delete().Where(creditincome.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &CreditIncomeDeleteOne{builder}
}

// Query returns a query builder for CreditIncome.
func (c *CreditIncomeClient) Query() *CreditIncomeQuery {
	return &CreditIncomeQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeCreditIncome},
		inters: c.Interceptors(),
	}
}

// Get returns a CreditIncome entity by its id.
func (c *CreditIncomeClient) Get(ctx context.Context, id string) (*CreditIncome, error) {
	return c.Query().Where(creditincome.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *CreditIncomeClient) GetX(ctx context.Context, id string) *CreditIncome {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryCreditCard queries the credit_card edge of a CreditIncome.
func (c *CreditIncomeClient) QueryCreditCard(ci *CreditIncome) *CreditCardQuery {
	query := (&CreditCardClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := ci.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(creditincome.Table, creditincome.FieldID, id),
			sqlgraph.To(creditcard.Table, creditcard.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, creditincome.CreditCardTable, creditincome.CreditCardColumn),
		)
		fromV = sqlgraph.Neighbors(ci.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryCreditBill queries the credit_bill edge of a CreditIncome.
func (c *CreditIncomeClient) QueryCreditBill(ci *CreditIncome) *CreditBillQuery {
	query := (&CreditBillClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := ci.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(creditincome.Table, creditincome.FieldID, id),
			sqlgraph.To(creditbill.Table, creditbill.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, creditincome.CreditBillTable, creditincome.CreditBillColumn),
		)
		fromV = sqlgraph.Neighbors(ci.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryCreditExpense queries the credit_expense edge of a CreditIncome.
func (c *CreditIncomeClient) QueryCreditExpense(ci *CreditIncome) *CreditExpenseQuery {
	query := (&CreditExpenseClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := ci.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(creditincome.Table, creditincome.FieldID, id),
			sqlgraph.To(creditexpense.Table, creditexpense.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, creditincome.CreditExpenseTable, creditincome.CreditExpenseColumn),
		)
		fromV = sqlgraph.Neighbors(ci.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *CreditIncomeClient) Hooks() []Hook {
	return c.hooks.CreditIncome
}

// Interceptors returns the client interceptors.
func (c *CreditIncomeClient) Interceptors() []Interceptor {
	return c.inters.CreditIncome
}

func (c *CreditIncomeClient) mutate(ctx context.Context, m *CreditIncomeMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&CreditIncomeCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&CreditIncomeUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&CreditIncomeUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&CreditIncomeDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown CreditIncome mutation op: %q", m.Op())
	}
}

// RefundEventClient is a client for the RefundEvent schema.
type RefundEventClient struct {
	config
}

// NewRefundEventClient returns a client for the RefundEvent from the given config.
func NewRefundEventClient(c config) *RefundEventClient {
	return &RefundEventClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `refundevent.Hooks(f(g(h())))`.
func (c *RefundEventClient) Use(hooks ...Hook) {
	c.hooks.RefundEvent = append(c.hooks.RefundEvent, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `refundevent.Intercept(f(g(h())))`.
func (c *RefundEventClient) Intercept(interceptors ...Interceptor) {
	c.inters.RefundEvent = append(c.inters.RefundEvent, interceptors...)
}

// Create returns a builder for creating a RefundEvent entity.
func (c *RefundEventClient) Create() *RefundEventCreate {
	mutation := newRefundEventMutation(c.config, OpCreate)
	return &RefundEventCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of RefundEvent entities.
func (c *RefundEventClient) CreateBulk(builders ...*RefundEventCreate) *RefundEventCreateBulk {
	return &RefundEventCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *RefundEventClient) MapCreateBulk(slice any, setFunc func(*RefundEventCreate, int)) *RefundEventCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &RefundEventCreateBulk{err: fmt.Errorf("calling to RefundEventClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*RefundEventCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &RefundEventCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for RefundEvent.
func (c *RefundEventClient) Update() *RefundEventUpdate {
	mutation := newRefundEventMutation(c.config, OpUpdate)
	return &RefundEventUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *RefundEventClient) UpdateOne(re *RefundEvent) *RefundEventUpdateOne {
	mutation := newRefundEventMutation(c.config, OpUpdateOne, withRefundEvent(re))
	return &RefundEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *RefundEventClient) UpdateOneID(id string) *RefundEventUpdateOne {
	mutation := newRefundEventMutation(c.config, OpUpdateOne, withRefundEventID(id))
	return &RefundEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for RefundEvent.
func (c *RefundEventClient) Delete() *RefundEventDelete {
	mutation := newRefundEventMutation(c.config, OpDelete)
	return &RefundEventDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *RefundEventClient) DeleteOne(re *RefundEvent) *RefundEventDeleteOne {
	return c.DeleteOneID(re.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *RefundEventClient) DeleteOneID(id string) *RefundEventDeleteOne {
	builder := c.Delete().Where(refundevent.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &RefundEventDeleteOne{builder}
}

// Query returns a query builder for RefundEvent.
func (c *RefundEventClient) Query() *RefundEventQuery {
	return &RefundEventQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeRefundEvent},
		inters: c.Interceptors(),
	}
}

// Get returns a RefundEvent entity by its id.
func (c *RefundEventClient) Get(ctx context.Context, id string) (*RefundEvent, error) {
	return c.Query().Where(refundevent.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *RefundEventClient) GetX(ctx context.Context, id string) *RefundEvent {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryCreditExpense queries the credit_expense edge of a RefundEvent.
func (c *RefundEventClient) QueryCreditExpense(re *RefundEvent) *CreditExpenseQuery {
	query := (&CreditExpenseClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := re.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(refundevent.Table, refundevent.FieldID, id),
			sqlgraph.To(creditexpense.Table, creditexpense.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, refundevent.CreditExpenseTable, refundevent.CreditExpenseColumn),
		)
		fromV = sqlgraph.Neighbors(re.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryCreditCard queries the credit_card edge of a RefundEvent.
func (c *RefundEventClient) QueryCreditCard(re *RefundEvent) *CreditCardQuery {
	query := (&CreditCardClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := re.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(refundevent.Table, refundevent.FieldID, id),
			sqlgraph.To(creditcard.Table, creditcard.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, refundevent.CreditCardTable, refundevent.CreditCardColumn),
		)
		fromV = sqlgraph.Neighbors(re.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *RefundEventClient) Hooks() []Hook {
	return c.hooks.RefundEvent
}

// Interceptors returns the client interceptors.
func (c *RefundEventClient) Interceptors() []Interceptor {
	return c.inters.RefundEvent
}

func (c *RefundEventClient) mutate(ctx context.Context, m *RefundEventMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&RefundEventCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&RefundEventUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&RefundEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&RefundEventDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown RefundEvent mutation op: %q", m.Op())
	}
}

// hooks and interceptors per client, for fast access.
type (
	hooks struct {
		CreditBill, CreditCard, CreditExpense, CreditIncome, RefundEvent []ent.Hook
	}
	inters struct {
		CreditBill, CreditCard, CreditExpense, CreditIncome,
		RefundEvent []ent.Interceptor
	}
)

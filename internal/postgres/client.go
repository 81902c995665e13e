package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/pocketwise/pocketwise/ent"
	"github.com/pocketwise/pocketwise/internal/logger"
	"github.com/pocketwise/pocketwise/internal/metrics"
	"github.com/pocketwise/pocketwise/internal/types"
	"go.uber.org/fx"
)

// IClient defines the interface for postgres client operations
type IClient interface {
	// WithTx runs fn in a transaction. Repositories called with the context
	// handed to fn join that transaction.
	WithTx(ctx context.Context, fn func(context.Context) error) error

	// TxFromContext returns the transaction from context if it exists
	TxFromContext(ctx context.Context) *ent.Tx

	// Querier returns the current transaction client if in a transaction, or the regular client
	Querier(ctx context.Context) *ent.Client
}

// Client wraps ent.Client to provide transaction management
type Client struct {
	entClient *ent.Client
	logger    *logger.Logger
}

// Module provides the pool, the ent client and the instrumented wrapper
func Module() fx.Option {
	return fx.Options(
		fx.Provide(
			NewDB,
			NewEntClient,
			NewClient,
		),
	)
}

// NewClient returns the ent client wrapped with transaction metrics
func NewClient(client *ent.Client, logger *logger.Logger, m *metrics.Metrics) IClient {
	return NewMetricsClient(&Client{entClient: client, logger: logger}, m)
}

// WithTx wraps the given function in a transaction
func (c *Client) WithTx(ctx context.Context, fn func(ctx context.Context) error) error {
	// If we're already in a transaction, reuse it and do not start a new one or commit it
	if tx := c.TxFromContext(ctx); tx != nil {
		return fn(ctx)
	}

	tx, err := c.entClient.Tx(ctx)
	if err != nil {
		return fmt.Errorf("starting transaction: %w", err)
	}

	defer func() {
		if v := recover(); v != nil {
			c.logger.Errorw("rolling back transaction due to panic", "panic", v)
			_ = tx.Rollback()
			panic(v)
		}
	}()

	txCtx := context.WithValue(ctx, types.CtxDBTransaction, tx)

	if err := fn(txCtx); err != nil {
		if rerr := tx.Rollback(); rerr != nil {
			err = fmt.Errorf("rolling back transaction: %v (original error: %w)", rerr, err)
		}
		c.logger.Debugw("rolled back transaction", "error", err)
		return err
	}

	if err := tx.Commit(); err != nil {
		c.logger.Errorw("committing transaction", "error", err)
		return fmt.Errorf("committing transaction: %w", err)
	}
	return nil
}

// TxFromContext returns the transaction from context if it exists
func (c *Client) TxFromContext(ctx context.Context) *ent.Tx {
	if tx, ok := ctx.Value(types.CtxDBTransaction).(*ent.Tx); ok {
		return tx
	}
	return nil
}

// Querier returns the current transaction client if in a transaction, or the regular client
func (c *Client) Querier(ctx context.Context) *ent.Client {
	if tx := c.TxFromContext(ctx); tx != nil {
		return tx.Client()
	}
	return c.entClient
}

var _ IClient = (*MetricsClient)(nil)

// MetricsClient records the outcome and latency of every top level
// transaction
type MetricsClient struct {
	IClient
	metrics *metrics.Metrics
}

func NewMetricsClient(client IClient, m *metrics.Metrics) *MetricsClient {
	return &MetricsClient{IClient: client, metrics: m}
}

func (c *MetricsClient) WithTx(ctx context.Context, fn func(context.Context) error) error {
	if c.TxFromContext(ctx) != nil {
		return c.IClient.WithTx(ctx, fn)
	}
	start := time.Now()
	err := c.IClient.WithTx(ctx, fn)
	c.metrics.ObserveTransaction(err, time.Since(start))
	return err
}

package postgres

import (
	"context"
	"fmt"
	"time"

	"entgo.io/ent/dialect"
	"github.com/pocketwise/pocketwise/internal/logger"
	"github.com/pocketwise/pocketwise/internal/types"
)

// QueryTracer wraps database operations with tracing and logging
type QueryTracer struct {
	logger *logger.Logger
	query  string
	params interface{}
	start  time.Time
	txID   string
}

// NewQueryTracer creates a new query tracer
func NewQueryTracer(logger *logger.Logger, query string, params interface{}, txID string) *QueryTracer {
	return &QueryTracer{
		logger: logger,
		query:  query,
		params: params,
		start:  time.Now(),
		txID:   txID,
	}
}

// Done logs the query completion
func (qt *QueryTracer) Done(err error) {
	fields := []interface{}{
		"duration_ms", time.Since(qt.start).Milliseconds(),
		"query", qt.query,
		"params", fmt.Sprintf("%+v", qt.params),
	}
	if qt.txID != "" {
		fields = append(fields, "tx_id", qt.txID)
	}
	if err != nil {
		fields = append(fields, "error", err.Error())
		qt.logger.Errorw("database query failed", fields...)
		return
	}
	qt.logger.Debugw("database query completed", fields...)
}

// TracedDriver is a dialect.Driver logging every statement it runs
type TracedDriver struct {
	dialect.Driver
	logger *logger.Logger
}

// NewTracedDriver wraps drv with query tracing
func NewTracedDriver(drv dialect.Driver, logger *logger.Logger) *TracedDriver {
	return &TracedDriver{Driver: drv, logger: logger}
}

func (d *TracedDriver) Exec(ctx context.Context, query string, args, v any) error {
	tracer := NewQueryTracer(d.logger, query, args, "")
	err := d.Driver.Exec(ctx, query, args, v)
	tracer.Done(err)
	return err
}

func (d *TracedDriver) Query(ctx context.Context, query string, args, v any) error {
	tracer := NewQueryTracer(d.logger, query, args, "")
	err := d.Driver.Query(ctx, query, args, v)
	tracer.Done(err)
	return err
}

// Tx starts a transaction whose statements carry a shared tx_id
func (d *TracedDriver) Tx(ctx context.Context) (dialect.Tx, error) {
	tx, err := d.Driver.Tx(ctx)
	if err != nil {
		return nil, err
	}
	id := types.GenerateUUID()
	d.logger.Debugw("transaction started", "tx_id", id)
	return &TracedTx{Tx: tx, logger: d.logger, id: id}, nil
}

// TracedTx is a dialect.Tx logging every statement it runs
type TracedTx struct {
	dialect.Tx
	logger *logger.Logger
	id     string
}

func (tx *TracedTx) Exec(ctx context.Context, query string, args, v any) error {
	tracer := NewQueryTracer(tx.logger, query, args, tx.id)
	err := tx.Tx.Exec(ctx, query, args, v)
	tracer.Done(err)
	return err
}

func (tx *TracedTx) Query(ctx context.Context, query string, args, v any) error {
	tracer := NewQueryTracer(tx.logger, query, args, tx.id)
	err := tx.Tx.Query(ctx, query, args, v)
	tracer.Done(err)
	return err
}

func (tx *TracedTx) Commit() error {
	err := tx.Tx.Commit()
	tx.logger.Debugw("transaction committed", "tx_id", tx.id, "error", err)
	return err
}

func (tx *TracedTx) Rollback() error {
	err := tx.Tx.Rollback()
	tx.logger.Debugw("transaction rolled back", "tx_id", tx.id, "error", err)
	return err
}

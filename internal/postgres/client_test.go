package postgres

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"entgo.io/ent/dialect"
	"github.com/pocketwise/pocketwise/ent"
	"github.com/pocketwise/pocketwise/internal/logger"
	"github.com/pocketwise/pocketwise/internal/metrics"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type txMarker struct{}

// stubClient runs fn inline and reports a transaction when the context
// carries txMarker
type stubClient struct {
	calls int
}

func (c *stubClient) WithTx(ctx context.Context, fn func(context.Context) error) error {
	c.calls++
	return fn(context.WithValue(ctx, txMarker{}, true))
}

func (c *stubClient) TxFromContext(ctx context.Context) *ent.Tx {
	if ctx.Value(txMarker{}) != nil {
		return &ent.Tx{}
	}
	return nil
}

func (c *stubClient) Querier(ctx context.Context) *ent.Client {
	return nil
}

func scrape(t *testing.T, m *metrics.Metrics) string {
	t.Helper()
	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	return rec.Body.String()
}

func TestMetricsClientObservesTopLevelTransactions(t *testing.T) {
	m := metrics.NewMetrics()
	stub := &stubClient{}
	client := NewMetricsClient(stub, m)
	ctx := context.Background()

	err := client.WithTx(ctx, func(tx context.Context) error {
		// joins the outer transaction
		return client.WithTx(tx, func(context.Context) error { return nil })
	})
	require.NoError(t, err)

	boom := errors.New("boom")
	err = client.WithTx(ctx, func(context.Context) error { return boom })
	assert.ErrorIs(t, err, boom)

	assert.Equal(t, 3, stub.calls)
	body := scrape(t, m)
	assert.Contains(t, body, `pocketwise_db_transactions_total{result="success"} 1`)
	assert.Contains(t, body, `pocketwise_db_transactions_total{result="error"} 1`)
}

type fakeTx struct {
	queries   []string
	committed bool
}

func (tx *fakeTx) Exec(ctx context.Context, query string, args, v any) error {
	tx.queries = append(tx.queries, query)
	return nil
}

func (tx *fakeTx) Query(ctx context.Context, query string, args, v any) error {
	tx.queries = append(tx.queries, query)
	return nil
}

func (tx *fakeTx) Commit() error {
	tx.committed = true
	return nil
}

func (tx *fakeTx) Rollback() error {
	return errors.New("already committed")
}

type fakeDriver struct {
	queries []string
	err     error
	tx      *fakeTx
}

func (d *fakeDriver) Exec(ctx context.Context, query string, args, v any) error {
	d.queries = append(d.queries, query)
	return d.err
}

func (d *fakeDriver) Query(ctx context.Context, query string, args, v any) error {
	d.queries = append(d.queries, query)
	return d.err
}

func (d *fakeDriver) Tx(ctx context.Context) (dialect.Tx, error) {
	return d.tx, nil
}

func (d *fakeDriver) Close() error { return nil }

func (d *fakeDriver) Dialect() string { return dialect.Postgres }

func TestTracedDriverDelegates(t *testing.T) {
	fake := &fakeDriver{tx: &fakeTx{}}
	drv := NewTracedDriver(fake, logger.NewNoopLogger())
	ctx := context.Background()

	require.NoError(t, drv.Exec(ctx, "UPDATE credit_bills SET total_amount = $1", []any{"0"}, nil))
	fake.err = errors.New("syntax error")
	assert.EqualError(t, drv.Query(ctx, "SELEC 1", []any{}, nil), "syntax error")
	assert.Equal(t, []string{"UPDATE credit_bills SET total_amount = $1", "SELEC 1"}, fake.queries)
	assert.Equal(t, dialect.Postgres, drv.Dialect())

	tx, err := drv.Tx(ctx)
	require.NoError(t, err)
	traced, ok := tx.(*TracedTx)
	require.True(t, ok)
	assert.NotEmpty(t, traced.id)

	require.NoError(t, tx.Exec(ctx, "INSERT INTO refund_events DEFAULT VALUES", []any{}, nil))
	require.NoError(t, tx.Commit())
	assert.Error(t, tx.Rollback())
	assert.Equal(t, []string{"INSERT INTO refund_events DEFAULT VALUES"}, fake.tx.queries)
	assert.True(t, fake.tx.committed)
}

package testutil

import (
	"context"
	"sync"

	"github.com/pocketwise/pocketwise/ent"
	"github.com/pocketwise/pocketwise/internal/logger"
	"github.com/pocketwise/pocketwise/internal/postgres"
	"github.com/pocketwise/pocketwise/internal/types"
)

var _ postgres.IClient = (*MockPostgresClient)(nil) // Ensure MockPostgresClient implements IClient

type mockTx struct{}

// MockPostgresClient is a mock implementation of postgres client for testing.
// Top level transactions are serialized so row locks behave like they do on
// a real database.
type MockPostgresClient struct {
	mu     sync.Mutex
	logger *logger.Logger

	commits   int
	rollbacks int
}

// NewMockPostgresClient creates a new mock postgres client
func NewMockPostgresClient(logger *logger.Logger) *MockPostgresClient {
	return &MockPostgresClient{
		logger: logger,
	}
}

// WithTx executes the given function within a transaction
func (c *MockPostgresClient) WithTx(ctx context.Context, fn func(context.Context) error) error {
	// If we're already in a transaction, reuse it
	if _, ok := ctx.Value(types.CtxDBTransaction).(*mockTx); ok {
		return fn(ctx)
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if err := fn(context.WithValue(ctx, types.CtxDBTransaction, &mockTx{})); err != nil {
		c.rollbacks++
		return err
	}
	c.commits++
	return nil
}

// Commits returns how many top level transactions succeeded
func (c *MockPostgresClient) Commits() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.commits
}

// Rollbacks returns how many top level transactions failed
func (c *MockPostgresClient) Rollbacks() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.rollbacks
}

// TxFromContext always returns nil, the mock has no ent transaction
func (c *MockPostgresClient) TxFromContext(ctx context.Context) *ent.Tx {
	return nil
}

// Querier returns nil, in-memory stores never query
func (c *MockPostgresClient) Querier(ctx context.Context) *ent.Client {
	return nil
}

package cache

import (
	"context"
	"testing"

	"github.com/pocketwise/pocketwise/internal/config"
	"github.com/pocketwise/pocketwise/internal/logger"
	"github.com/stretchr/testify/assert"
)

func newCache(enabled bool) Cache {
	cfg := config.GetDefaultConfig()
	cfg.Cache.Enabled = enabled
	return NewInMemoryCache(cfg, logger.NewNoopLogger())
}

func TestInMemoryCache(t *testing.T) {
	ctx := context.Background()
	c := newCache(true)

	key := GenerateKey(PrefixCreditCard, "user_1", "card_1")
	assert.Equal(t, "creditcard:v1::user_1:card_1", key)

	c.Set(ctx, key, "value", 0)
	got, ok := c.Get(ctx, key)
	assert.True(t, ok)
	assert.Equal(t, "value", got)

	c.Set(ctx, GenerateKey(PrefixCreditCard, "user_1", "card_2"), "other", 0)
	c.Set(ctx, "unrelated", "kept", 0)
	c.DeleteByPrefix(ctx, GenerateKey(PrefixCreditCard, "user_1"))

	_, ok = c.Get(ctx, key)
	assert.False(t, ok)
	_, ok = c.Get(ctx, "unrelated")
	assert.True(t, ok)

	c.Flush(ctx)
	_, ok = c.Get(ctx, "unrelated")
	assert.False(t, ok)
}

func TestInMemoryCacheDisabled(t *testing.T) {
	ctx := context.Background()
	c := newCache(false)

	c.Set(ctx, "key", "value", 0)
	_, ok := c.Get(ctx, "key")
	assert.False(t, ok)
}

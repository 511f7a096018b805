package adapters

import (
	"context"
	"testing"
	"time"

	"order-tracker/internal/core/cache"
	"order-tracker/internal/features/orders/domain"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubProvider counts backend hits for cache verification.
type stubProvider struct {
	order     *domain.Order
	err       error
	getCalls  int
	pingCalls int
}

func (s *stubProvider) GetOrder(ctx context.Context, orderID string) (*domain.Order, error) {
	s.getCalls++
	if s.err != nil {
		return nil, s.err
	}
	return s.order, nil
}

func (s *stubProvider) HealthCheck(ctx context.Context) error {
	s.pingCalls++
	return nil
}

func newTestCache(t *testing.T) cache.Cache {
	t.Helper()
	mr := miniredis.RunT(t)
	adapter, err := cache.NewRedisAdapter("redis://" + mr.Addr())
	require.NoError(t, err)
	t.Cleanup(func() { adapter.Close() })
	return adapter
}

// TestCachedOrderProvider_CacheHit verifies the second lookup is served from
// the cache.
func TestCachedOrderProvider_CacheHit(t *testing.T) {
	inner := &stubProvider{order: &domain.Order{ID: "ORD1", Email: "a@b.c"}}
	provider := NewCachedOrderProvider(inner, newTestCache(t), time.Minute)

	ctx := context.Background()

	first, err := provider.GetOrder(ctx, "ORD1")
	require.NoError(t, err)

	second, err := provider.GetOrder(ctx, "ORD1")
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, 1, inner.getCalls)
}

// TestCachedOrderProvider_ErrorNotCached verifies failures pass through and
// are retried on the next call.
func TestCachedOrderProvider_ErrorNotCached(t *testing.T) {
	inner := &stubProvider{err: domain.ErrOrderNotFound}
	provider := NewCachedOrderProvider(inner, newTestCache(t), time.Minute)

	ctx := context.Background()

	_, err := provider.GetOrder(ctx, "ORD2")
	assert.ErrorIs(t, err, domain.ErrOrderNotFound)

	_, err = provider.GetOrder(ctx, "ORD2")
	assert.ErrorIs(t, err, domain.ErrOrderNotFound)
	assert.Equal(t, 2, inner.getCalls)
}

// TestCachedOrderProvider_HealthCheck verifies both layers are probed.
func TestCachedOrderProvider_HealthCheck(t *testing.T) {
	inner := &stubProvider{}
	provider := NewCachedOrderProvider(inner, newTestCache(t), time.Minute)

	require.NoError(t, provider.HealthCheck(context.Background()))
	assert.Equal(t, 1, inner.pingCalls)
}

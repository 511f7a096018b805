package adapters

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"order-tracker/internal/core/cache"
	"order-tracker/internal/core/logger"
	"order-tracker/internal/features/orders/domain"
	"order-tracker/internal/features/orders/ports"

	"go.uber.org/zap"
)

// CachedOrderProvider decorates an OrderProvider with a short-TTL cache so
// repeated tracking-page loads don't hammer the backend. Cache failures
// degrade to a direct fetch and never fail the request.
type CachedOrderProvider struct {
	inner ports.OrderProvider
	cache cache.Cache
	ttl   time.Duration
}

// NewCachedOrderProvider wraps inner with the given cache and TTL.
func NewCachedOrderProvider(inner ports.OrderProvider, c cache.Cache, ttl time.Duration) *CachedOrderProvider {
	return &CachedOrderProvider{
		inner: inner,
		cache: c,
		ttl:   ttl,
	}
}

func orderCacheKey(orderID string) string {
	return "order:" + orderID
}

// GetOrder returns the cached order if fresh, fetching and caching otherwise.
func (p *CachedOrderProvider) GetOrder(ctx context.Context, orderID string) (*domain.Order, error) {
	key := orderCacheKey(orderID)

	if data, err := p.cache.Get(ctx, key); err == nil {
		var order domain.Order
		if err := json.Unmarshal(data, &order); err == nil {
			return &order, nil
		}
		logger.Get().Warn("Discarding corrupt cached order", zap.String("key", key))
	}

	order, err := p.inner.GetOrder(ctx, orderID)
	if err != nil {
		return nil, err
	}

	if data, err := json.Marshal(order); err == nil {
		if err := p.cache.Set(ctx, key, data, p.ttl); err != nil {
			logger.Get().Warn("Failed to cache order",
				zap.String("key", key),
				zap.Error(err),
			)
		}
	}

	return order, nil
}

// HealthCheck verifies both the cache and the underlying provider.
func (p *CachedOrderProvider) HealthCheck(ctx context.Context) error {
	if err := p.cache.Ping(ctx); err != nil {
		return fmt.Errorf("cache unavailable: %w", err)
	}
	return p.inner.HealthCheck(ctx)
}

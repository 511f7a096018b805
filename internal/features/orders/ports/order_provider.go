package ports

import (
	"context"

	"order-tracker/internal/features/orders/domain"
)

// OrderProvider defines the interface for retrieving order summaries from the
// storefront backend. This is a Secondary Port (Driven Port).
type OrderProvider interface {
	// GetOrder retrieves an order by its unique identifier.
	// Implementations return domain.ErrOrderNotFound when it does not exist.
	GetOrder(ctx context.Context, orderID string) (*domain.Order, error)

	// HealthCheck verifies that the backend is reachable and the credential
	// is valid.
	HealthCheck(ctx context.Context) error
}

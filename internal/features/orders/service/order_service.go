package service

import (
	"context"
	"strings"

	"order-tracker/internal/features/orders/domain"
	"order-tracker/internal/features/orders/ports"
)

// OrderService handles the business logic for retrieving and validating orders.
type OrderService struct {
	// provider is the interface for fetching order data from the backend.
	provider ports.OrderProvider
}

// NewOrderService creates a new instance of OrderService.
func NewOrderService(provider ports.OrderProvider) *OrderService {
	return &OrderService{
		provider: provider,
	}
}

// GetOrder retrieves an order by ID and validates that the provided email
// matches the order's email. The email check keeps one customer from reading
// another's order with a guessed identifier.
func (s *OrderService) GetOrder(ctx context.Context, orderID, email string) (*domain.Order, error) {
	order, err := s.provider.GetOrder(ctx, orderID)
	if err != nil {
		return nil, err
	}

	if order == nil {
		return nil, domain.ErrOrderNotFound
	}

	if !strings.EqualFold(order.Email, email) {
		return nil, domain.ErrEmailMismatch
	}

	return order, nil
}

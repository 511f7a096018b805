package ports

import (
	"context"

	"order-tracker/internal/features/tracking/domain"
)

// TrackingSource defines the interface for fetching one order's tracking
// state from an upstream system. This is a Secondary Port (Driven Port).
type TrackingSource interface {
	// FetchTracking resolves an order identifier into a normalized tracking
	// record. Implementations return an error matching
	// domain.ErrTrackingNotFound when no usable record could be obtained.
	FetchTracking(ctx context.Context, orderID string) (*domain.TrackingRecord, error)
}

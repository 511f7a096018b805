package service

import (
	"context"
	"fmt"
	"strings"

	"order-tracker/internal/features/tracking/domain"
	"order-tracker/internal/features/tracking/ports"
)

// TrackingService resolves an order identifier into a renderable tracking
// view: the normalized record, the timeline steps, and the current-step
// index. It holds no state between calls.
type TrackingService struct {
	source ports.TrackingSource
}

// NewTrackingService creates a new TrackingService backed by the given source.
func NewTrackingService(source ports.TrackingSource) *TrackingService {
	return &TrackingService{
		source: source,
	}
}

// GetTracking fetches and assembles the tracking view for one order.
// An empty or blank identifier fails with domain.ErrInvalidOrderID before any
// network call is made.
func (s *TrackingService) GetTracking(ctx context.Context, orderID string) (*domain.TrackingView, error) {
	if strings.TrimSpace(orderID) == "" {
		return nil, domain.ErrInvalidOrderID
	}

	record, err := s.source.FetchTracking(ctx, orderID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch tracking: %w", err)
	}
	if record == nil {
		return nil, &domain.NotFoundError{}
	}

	timeline := domain.BuildTimeline(record.Updates)

	return &domain.TrackingView{
		Record:       record,
		Timeline:     timeline,
		CurrentIndex: domain.CurrentIndex(timeline, record.CurrentStatus),
	}, nil
}

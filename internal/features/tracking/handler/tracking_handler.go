package handler

import (
	"errors"
	"net/http"

	"order-tracker/internal/core/logger"
	"order-tracker/internal/features/tracking/domain"
	"order-tracker/internal/features/tracking/service"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// TrackingHandler handles HTTP requests for tracking operations.
type TrackingHandler struct {
	trackingService *service.TrackingService
}

// NewTrackingHandler creates a new TrackingHandler.
func NewTrackingHandler(trackingService *service.TrackingService) *TrackingHandler {
	return &TrackingHandler{
		trackingService: trackingService,
	}
}

// ErrorResponse represents an error response with Ray ID.
type ErrorResponse struct {
	// Message is the error description.
	Message string `json:"message"`
	// RayID is the unique request identifier for tracing.
	RayID string `json:"ray_id,omitempty"`
}

// GetTracking godoc
// @Summary Get the tracking timeline for an order
// @Description Resolves an order ID into its normalized tracking record and progress timeline
// @Tags tracking
// @Accept json
// @Produce json
// @Param orderID path string true "Order ID"
// @Success 200 {object} domain.TrackingView
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /tracking/{orderID} [get]
func (h *TrackingHandler) GetTracking(c *fiber.Ctx) error {
	orderID := c.Params("orderID")

	rayID, ok := c.Locals("requestid").(string)
	if !ok {
		rayID = "unknown"
	}

	view, err := h.trackingService.GetTracking(c.UserContext(), orderID)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidOrderID) {
			return c.Status(http.StatusBadRequest).JSON(ErrorResponse{
				Message: "Order ID is required",
				RayID:   rayID,
			})
		}

		logger.Get().Error("Failed to fetch tracking",
			zap.String("order_id", orderID),
			zap.String("ray_id", rayID),
			zap.Error(err),
		)

		if errors.Is(err, domain.ErrTrackingNotFound) {
			var notFound *domain.NotFoundError
			msg := "Tracking not found"
			if errors.As(err, &notFound) {
				msg = notFound.Error()
			}
			return c.Status(http.StatusNotFound).JSON(ErrorResponse{
				Message: msg,
				RayID:   rayID,
			})
		}

		return c.Status(http.StatusInternalServerError).JSON(ErrorResponse{
			Message: err.Error(),
			RayID:   rayID,
		})
	}

	return c.Status(http.StatusOK).JSON(view)
}

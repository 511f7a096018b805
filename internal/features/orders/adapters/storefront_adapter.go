package adapters

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"order-tracker/internal/core/config"
	"order-tracker/internal/core/httpclient"
	"order-tracker/internal/core/logger"
	"order-tracker/internal/features/orders/domain"

	"go.uber.org/zap"
)

// StorefrontAdapter implements the OrderProvider interface using the
// storefront backend REST API.
type StorefrontAdapter struct {
	// client is the HTTP client used for API requests.
	client *http.Client
	// config holds the backend connection details.
	config config.BackendConfig
}

// NewStorefrontAdapter creates a new instance of StorefrontAdapter.
func NewStorefrontAdapter(cfg config.BackendConfig) *StorefrontAdapter {
	return &StorefrontAdapter{
		client: httpclient.NewClient(10 * time.Second),
		config: cfg,
	}
}

// GetOrder fetches an order from the backend and maps it to the domain entity.
func (a *StorefrontAdapter) GetOrder(ctx context.Context, orderID string) (*domain.Order, error) {
	endpoint := fmt.Sprintf("%s/api/orders/%s/", a.config.URL, url.PathEscape(orderID))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+a.config.Token)

	resp, err := a.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to execute request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		if resp.StatusCode == http.StatusNotFound {
			return nil, fmt.Errorf("%w: %s", domain.ErrOrderNotFound, orderID)
		}
		return nil, fmt.Errorf("backend API returned status: %d", resp.StatusCode)
	}

	var raw backendOrder
	if err := json.NewDecoder(resp.Body).Decode(&raw); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}

	return mapToDomain(raw), nil
}

// HealthCheck verifies that the backend API is reachable and the credential
// is valid.
func (a *StorefrontAdapter) HealthCheck(ctx context.Context) error {
	endpoint := fmt.Sprintf("%s/api/orders/?page_size=1", a.config.URL)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return fmt.Errorf("health check failed to create request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+a.config.Token)

	resp, err := a.client.Do(req)
	if err != nil {
		return fmt.Errorf("health check request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("health check failed with status: %d", resp.StatusCode)
	}

	return nil
}

// mapToDomain converts a raw backend order response into a domain Order.
func mapToDomain(raw backendOrder) *domain.Order {
	id := raw.Number
	if id == "" && raw.ID != 0 {
		id = strconv.Itoa(raw.ID)
	}

	shipments := make([]domain.Shipment, 0, len(raw.Shipments))
	for _, s := range raw.Shipments {
		shipments = append(shipments, domain.Shipment{
			TrackingNumber: s.TrackingNumber,
			Carrier:        s.Carrier,
			ShippedAt:      time.Time(s.ShippedAt),
		})
	}

	items := make([]domain.OrderItem, 0, len(raw.Items))
	for _, item := range raw.Items {
		items = append(items, domain.OrderItem{
			Quantity: item.Quantity,
			SKU:      item.SKU,
			Name:     item.Name,
			Picture:  item.Picture,
		})
	}

	return &domain.Order{
		ID:            id,
		Status:        mapStatus(raw.Status, shipments),
		CustomerName:  raw.CustomerName,
		Email:         raw.Email,
		Phone:         raw.Phone,
		Address:       raw.ShippingAddress,
		City:          raw.City,
		PaymentMethod: raw.PaymentMethod,
		CreatedAt:     time.Time(raw.CreatedAt),
		Shipments:     shipments,
		Items:         items,
	}
}

// mapStatus determines the domain OrderStatus from the backend status and the
// shipment list. A dispatched parcel always means shipped, whatever the
// backend status field says.
func mapStatus(status string, shipments []domain.Shipment) domain.OrderStatus {
	if len(shipments) > 0 {
		return domain.OrderStatusShipped
	}

	switch strings.ToLower(status) {
	case "completed", "shipped", "dispatched":
		return domain.OrderStatusShipped
	case "cancelled", "refunded", "failed":
		return domain.OrderStatusCancelled
	case "pending", "processing", "on-hold", "created":
		return domain.OrderStatusCreated
	default:
		return domain.OrderStatusPending
	}
}

// internal structs for mapping

// backendOrder represents the JSON structure of an order from the backend API.
type backendOrder struct {
	// ID is the numeric order ID.
	ID int `json:"id"`
	// Number is the public order number, preferred as the domain ID.
	Number string `json:"order_number"`
	// Status is the backend order status string.
	Status string `json:"status"`
	// CreatedAt is the timestamp when the order was created.
	CreatedAt apiTime `json:"created_at"`
	// CustomerName is the customer's display name.
	CustomerName string `json:"customer_name"`
	// Email is the customer's email address.
	Email string `json:"email"`
	// Phone is the customer's phone number.
	Phone string `json:"phone"`
	// ShippingAddress is the primary address line.
	ShippingAddress string `json:"shipping_address"`
	// City is the shipping city.
	City string `json:"city"`
	// PaymentMethod is the display name of the payment method.
	PaymentMethod string `json:"payment_method"`
	// Items contains the products ordered.
	Items []backendItem `json:"items"`
	// Shipments contains dispatched parcels with tracking data.
	Shipments []backendShipment `json:"shipments"`
}

// backendItem represents a product line in the backend order.
type backendItem struct {
	// Name is the product name.
	Name string `json:"name"`
	// SKU is the product SKU.
	SKU string `json:"sku"`
	// Quantity is the number of units ordered.
	Quantity int `json:"quantity"`
	// Picture is the product image URL.
	Picture string `json:"picture"`
}

// backendShipment represents one dispatched parcel in the backend order.
type backendShipment struct {
	// TrackingNumber is the carrier's tracking identifier.
	TrackingNumber string `json:"tracking_number"`
	// Carrier is the shipping carrier name.
	Carrier string `json:"carrier"`
	// ShippedAt is when the parcel was dispatched.
	ShippedAt apiTime `json:"shipped_at"`
}

// apiTime is a custom helper type for the backend's date formats.
type apiTime time.Time

// UnmarshalJSON parses the backend's date formats, tolerating a missing
// timezone. Unparseable values become the zero time rather than failing the
// whole order.
func (t *apiTime) UnmarshalJSON(b []byte) error {
	s := strings.Trim(string(b), "\"")
	if s == "null" || s == "" {
		*t = apiTime(time.Time{})
		return nil
	}

	parsed, err := time.Parse("2006-01-02T15:04:05", s)
	if err != nil {
		parsed, err = time.Parse(time.RFC3339, s)
	}
	if err != nil {
		logger.Get().Warn("Failed to parse date", zap.String("date", s), zap.Error(err))
		return nil
	}
	*t = apiTime(parsed)
	return nil
}

package adapters

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"order-tracker/internal/core/config"
	"order-tracker/internal/features/orders/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const orderPayload = `{
	"id": 321,
	"order_number": "ORD321",
	"status": "processing",
	"created_at": "2024-02-10T09:30:00",
	"customer_name": "Jane Roe",
	"email": "jane@example.com",
	"phone": "+15550002222",
	"shipping_address": "42 Side St",
	"city": "Springfield",
	"payment_method": "Cash on Delivery",
	"items": [
		{"name": "Widget", "sku": "W-1", "quantity": 2, "picture": "https://cdn.test/w1.jpg"}
	],
	"shipments": [
		{"tracking_number": "TRK99", "carrier": "dhl", "shipped_at": "2024-02-12T10:00:00"}
	]
}`

func newTestAdapter(baseURL string) *StorefrontAdapter {
	return NewStorefrontAdapter(config.BackendConfig{URL: baseURL, Token: "test-token"})
}

// TestStorefrontAdapter_GetOrder verifies response mapping and auth.
func TestStorefrontAdapter_GetOrder(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/orders/ORD321/", r.URL.Path)
		assert.Equal(t, "Bearer test-token", r.Header.Get("Authorization"))
		w.Write([]byte(orderPayload))
	}))
	defer ts.Close()

	order, err := newTestAdapter(ts.URL).GetOrder(context.Background(), "ORD321")
	require.NoError(t, err)
	require.NotNil(t, order)

	assert.Equal(t, "ORD321", order.ID)
	assert.Equal(t, domain.OrderStatusShipped, order.Status, "a dispatched parcel means shipped")
	assert.Equal(t, "Jane Roe", order.CustomerName)
	assert.Equal(t, "jane@example.com", order.Email)
	assert.Equal(t, "42 Side St", order.Address)
	assert.Equal(t, 2024, order.CreatedAt.Year())

	require.Len(t, order.Shipments, 1)
	assert.Equal(t, "TRK99", order.Shipments[0].TrackingNumber)
	assert.Equal(t, "dhl", order.Shipments[0].Carrier)

	require.Len(t, order.Items, 1)
	assert.Equal(t, 2, order.Items[0].Quantity)
}

// TestStorefrontAdapter_GetOrder_NotFound verifies the sentinel on 404.
func TestStorefrontAdapter_GetOrder_NotFound(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer ts.Close()

	order, err := newTestAdapter(ts.URL).GetOrder(context.Background(), "NOPE")
	assert.Nil(t, order)
	assert.ErrorIs(t, err, domain.ErrOrderNotFound)
}

// TestStorefrontAdapter_GetOrder_ServerError verifies non-404 failures.
func TestStorefrontAdapter_GetOrder_ServerError(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer ts.Close()

	_, err := newTestAdapter(ts.URL).GetOrder(context.Background(), "ORD1")
	require.Error(t, err)
	assert.NotErrorIs(t, err, domain.ErrOrderNotFound)
}

// TestStorefrontAdapter_HealthCheck verifies the startup probe.
func TestStorefrontAdapter_HealthCheck(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/orders/", r.URL.Path)
		w.WriteHeader(http.StatusOK)
	}))
	defer ts.Close()

	assert.NoError(t, newTestAdapter(ts.URL).HealthCheck(context.Background()))
}

// TestStorefrontAdapter_HealthCheck_Unauthorized verifies credential failures
// are reported.
func TestStorefrontAdapter_HealthCheck_Unauthorized(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer ts.Close()

	err := newTestAdapter(ts.URL).HealthCheck(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "health check failed with status: 401")
}

func TestMapStatus(t *testing.T) {
	assert.Equal(t, domain.OrderStatusShipped, mapStatus("pending", []domain.Shipment{{TrackingNumber: "T"}}))
	assert.Equal(t, domain.OrderStatusShipped, mapStatus("completed", nil))
	assert.Equal(t, domain.OrderStatusCancelled, mapStatus("refunded", nil))
	assert.Equal(t, domain.OrderStatusCreated, mapStatus("processing", nil))
	assert.Equal(t, domain.OrderStatusPending, mapStatus("weird", nil))
}

func TestAPITime_Unmarshal(t *testing.T) {
	var at apiTime

	require.NoError(t, at.UnmarshalJSON([]byte(`"2024-02-10T09:30:00"`)))
	assert.Equal(t, 10, time.Time(at).Day())

	require.NoError(t, at.UnmarshalJSON([]byte(`null`)))

	// Unparseable values degrade to the zero time without failing.
	var bad apiTime
	require.NoError(t, bad.UnmarshalJSON([]byte(`"10/02/2024"`)))
	assert.True(t, time.Time(bad).IsZero())
}

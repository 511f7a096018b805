package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassifyStatus(t *testing.T) {
	tests := []struct {
		name     string
		raw      string
		expected StatusCode
	}{
		{name: "Empty", raw: "", expected: StatusOrderPlaced},
		{name: "Whitespace", raw: "   ", expected: StatusOrderPlaced},
		{name: "OutForDelivery", raw: "Out for Delivery", expected: StatusOutForDelivery},
		{name: "OutForDeliveryBeatsDelivered", raw: "out for delivery - delivered to hub", expected: StatusOutForDelivery},
		{name: "InTransit", raw: "In Transit", expected: StatusInTransit},
		{name: "PackageInTransitToHub", raw: "package in transit to hub", expected: StatusInTransit},
		{name: "Dispatched", raw: "Dispatched from warehouse", expected: StatusDispatched},
		{name: "Shipped", raw: "Shipped", expected: StatusDispatched},
		{name: "Confirmed", raw: "Order Confirmed", expected: StatusOrderConfirmed},
		{name: "Delivered", raw: "Delivered", expected: StatusDelivered},
		{name: "DeliveredSuccessfully", raw: "Delivered Successfully", expected: StatusDelivered},
		{name: "DeliverySuccess", raw: "delivery success", expected: StatusDelivered},
		{name: "DeliveryComplete", raw: "Delivery complete", expected: StatusDelivered},
		// "Delivery attempted" has the deliver stem but no completion word, so
		// it deliberately resolves to the last mile rather than delivered.
		{name: "DeliveryAttempted", raw: "Delivery attempted", expected: StatusOutForDelivery},
		{name: "Verification", raw: "Phone verification pending", expected: StatusVerification},
		{name: "Verify", raw: "verify address", expected: StatusVerification},
		{name: "Cancelled", raw: "Order cancelled by customer", expected: StatusCancelled},
		{name: "Returned", raw: "Returned to sender", expected: StatusReturned},
		{name: "Placed", raw: "placed", expected: StatusOrderPlaced},
		{name: "Created", raw: "created", expected: StatusOrderPlaced},
		{name: "Pending", raw: "Pending", expected: StatusOrderPlaced},
		{name: "UnknownFallback", raw: "Held at customs", expected: StatusCode("HELD_AT_CUSTOMS")},
		{name: "UnknownSingleWord", raw: "lost", expected: StatusCode("LOST")},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, ClassifyStatus(tc.raw))
		})
	}
}

// TestClassifyStatus_Total verifies that the classifier always yields a
// non-empty code, including for hostile input.
func TestClassifyStatus_Total(t *testing.T) {
	inputs := []string{"", " ", "???", "deliver", "out", "transit", "IN", "ph one", "  mixed CASE value  "}
	for _, raw := range inputs {
		code := ClassifyStatus(raw)
		assert.NotEmpty(t, code, "raw=%q", raw)
	}
}

func TestStatusCode_Canonical(t *testing.T) {
	for _, code := range CanonicalOrder {
		assert.True(t, code.Canonical(), "code=%s", code)
	}
	assert.False(t, StatusCode("HELD_AT_CUSTOMS").Canonical())
	assert.False(t, StatusCode("").Canonical())
}

func TestStatusCode_Label(t *testing.T) {
	assert.Equal(t, "Order Placed", StatusOrderPlaced.Label())
	assert.Equal(t, "Out for Delivery", StatusOutForDelivery.Label())
	assert.Equal(t, "In Transit", StatusInTransit.Label())

	// Ad-hoc codes are humanized.
	assert.Equal(t, "Held At Customs", StatusCode("HELD_AT_CUSTOMS").Label())
	assert.Equal(t, "Lost", StatusCode("LOST").Label())
}

func TestStatusCode_Icon(t *testing.T) {
	assert.Equal(t, "truck", StatusInTransit.Icon())
	assert.Equal(t, "truck", StatusOutForDelivery.Icon())
	assert.Equal(t, "phone", StatusVerification.Icon())
	assert.Equal(t, "package", StatusDelivered.Icon())
	assert.Equal(t, "package", StatusCode("HELD_AT_CUSTOMS").Icon())
}

func TestCanonicalOrder_Shape(t *testing.T) {
	assert.Len(t, CanonicalOrder, 9)
	assert.Equal(t, StatusOrderPlaced, CanonicalOrder[0])
	assert.Equal(t, StatusDelivered, CanonicalOrder[6])
	assert.Equal(t, StatusReturned, CanonicalOrder[8])
}

package domain

// TrackingUpdate represents one status change reported by the backend.
// Values are immutable once built; timestamps are kept as the raw string the
// backend sent (empty when unknown) since the feed is not reliably parseable.
type TrackingUpdate struct {
	// Timestamp is the raw point in time of the event, empty if unknown.
	Timestamp string `json:"timestamp,omitempty"`
	// Status is the normalized status code of the event.
	Status StatusCode `json:"status"`
	// RawStatus is the original, unnormalized status string.
	RawStatus string `json:"raw_status,omitempty"`
	// Location is a free-text location, empty if unknown.
	Location string `json:"location,omitempty"`
	// Message is a free-text note, empty if unknown.
	Message string `json:"message,omitempty"`
}

// TrackingRecord is the normalized view of one order's tracking state.
type TrackingRecord struct {
	// OrderID is the order identifier.
	OrderID string `json:"order_id"`
	// CustomerName is the display name of the customer, if known.
	CustomerName string `json:"customer_name,omitempty"`
	// Phone is the customer's phone number, if known.
	Phone string `json:"phone,omitempty"`
	// Email is the customer's email address, if known.
	Email string `json:"email,omitempty"`
	// ShippingAddress is the delivery address, if known.
	ShippingAddress string `json:"shipping_address,omitempty"`
	// CurrentStatus is the backend-reported current status, falling back to
	// the status of the most recent update.
	CurrentStatus StatusCode `json:"current_status"`
	// UpdatedAt is the raw timestamp of the last known change, if any.
	UpdatedAt string `json:"updated_at,omitempty"`
	// Updates is the event sequence in the order the backend reported it;
	// chronological order is not guaranteed.
	Updates []TrackingUpdate `json:"updates"`
}

// Usable reports whether the record carries enough data to present.
// A record with neither an order ID nor any update is treated as a miss and
// the next candidate endpoint is tried.
func (r *TrackingRecord) Usable() bool {
	if r == nil {
		return false
	}
	return r.OrderID != "" || len(r.Updates) > 0
}

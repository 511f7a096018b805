package adapters

import (
	"strconv"
	"strings"

	"order-tracker/internal/features/tracking/domain"
)

// The backend's tracking payloads come in several loosely related shapes:
// the payload may be wrapped in a "data" envelope, the order fields may sit
// under an "order" key or at the top level, and most field names have two or
// three aliases in the wild. Each field is therefore read through an ordered
// alias list, first present value wins, so the accepted shapes stay auditable
// in one place.

var (
	updateListKeys = []string{"updates", "history", "tracking"}

	updateTimeKeys     = []string{"timestamp", "time", "updated_at", "created_at"}
	updateStatusKeys   = []string{"status", "state", "code", "event"}
	updateLocationKeys = []string{"location", "hub", "city"}
	updateMessageKeys  = []string{"message", "note", "description"}

	orderIDKeys       = []string{"order_id", "orderId", "id", "order_number"}
	customerNameKeys  = []string{"customer_name", "customer", "name"}
	phoneKeys         = []string{"phone", "phone_number", "mobile"}
	emailKeys         = []string{"email", "customer_email"}
	addressKeys       = []string{"shipping_address", "address", "delivery_address"}
	updatedAtKeys     = []string{"updated_at", "last_updated", "modified_at"}
	currentStatusKeys = []string{"current_status", "status", "state"}
)

// normalizeRecord converts a decoded tracking payload of unknown shape into a
// TrackingRecord. Pure; returns nil for a nil payload. Usability of the
// result is the caller's concern.
func normalizeRecord(raw map[string]any) *domain.TrackingRecord {
	if raw == nil {
		return nil
	}

	root := raw
	if data, ok := childMap(raw, "data"); ok {
		root = data
	}

	order := root
	if o, ok := childMap(root, "order"); ok {
		order = o
	}

	updates := normalizeUpdates(probeList(updateListKeys, root, order))

	record := &domain.TrackingRecord{
		OrderID:         probeString(orderIDKeys, order, root),
		CustomerName:    probeString(customerNameKeys, order, root),
		Phone:           probeString(phoneKeys, order, root),
		Email:           probeString(emailKeys, order, root),
		ShippingAddress: probeString(addressKeys, order, root),
		UpdatedAt:       probeString(updatedAtKeys, order, root),
		Updates:         updates,
	}

	if rawStatus := probeString(currentStatusKeys, order, root); rawStatus != "" {
		record.CurrentStatus = domain.ClassifyStatus(rawStatus)
	} else if len(updates) > 0 {
		record.CurrentStatus = updates[len(updates)-1].Status
	} else {
		record.CurrentStatus = domain.ClassifyStatus("")
	}

	return record
}

// normalizeUpdates maps raw event entries into TrackingUpdate values,
// preserving input order. Non-object entries are skipped.
func normalizeUpdates(entries []any) []domain.TrackingUpdate {
	updates := make([]domain.TrackingUpdate, 0, len(entries))
	for _, entry := range entries {
		m, ok := entry.(map[string]any)
		if !ok {
			continue
		}

		rawStatus := probeString(updateStatusKeys, m)
		updates = append(updates, domain.TrackingUpdate{
			Timestamp: probeString(updateTimeKeys, m),
			Status:    domain.ClassifyStatus(rawStatus),
			RawStatus: rawStatus,
			Location:  probeString(updateLocationKeys, m),
			Message:   probeString(updateMessageKeys, m),
		})
	}
	return updates
}

// childMap returns the nested object under key, if present.
func childMap(m map[string]any, key string) (map[string]any, bool) {
	child, ok := m[key].(map[string]any)
	return child, ok
}

// probeString returns the first non-empty string-like value found for any of
// the keys, checking each map in turn. Numeric values are rendered as strings
// since identifiers frequently arrive as JSON numbers.
func probeString(keys []string, maps ...map[string]any) string {
	for _, m := range maps {
		if m == nil {
			continue
		}
		for _, key := range keys {
			v, ok := m[key]
			if !ok {
				continue
			}
			switch val := v.(type) {
			case string:
				if s := strings.TrimSpace(val); s != "" {
					return s
				}
			case float64:
				return strconv.FormatFloat(val, 'f', -1, 64)
			}
		}
	}
	return ""
}

// probeList returns the first array value found for any of the keys, checking
// each map in turn.
func probeList(keys []string, maps ...map[string]any) []any {
	for _, m := range maps {
		if m == nil {
			continue
		}
		for _, key := range keys {
			if list, ok := m[key].([]any); ok {
				return list
			}
		}
	}
	return nil
}

package domain

import (
	"regexp"
	"strings"
)

// StatusCode identifies a logistics state of an order.
//
// The nine canonical codes below form a closed taxonomy. Raw carrier statuses
// that match no classification rule are carried as ad-hoc codes of the same
// type (uppercased, spaces replaced with underscores); Canonical reports
// which kind a value is.
type StatusCode string

const (
	// StatusOrderPlaced indicates the order has been placed.
	StatusOrderPlaced StatusCode = "ORDER_PLACED"
	// StatusOrderConfirmed indicates the order has been confirmed by the store.
	StatusOrderConfirmed StatusCode = "ORDER_CONFIRMED"
	// StatusVerification indicates the order is in phone/identity verification.
	StatusVerification StatusCode = "VERIFICATION"
	// StatusDispatched indicates the parcel has been handed to the carrier.
	StatusDispatched StatusCode = "DISPATCHED"
	// StatusInTransit indicates the parcel is moving between hubs.
	StatusInTransit StatusCode = "IN_TRANSIT"
	// StatusOutForDelivery indicates the parcel is on the last mile.
	StatusOutForDelivery StatusCode = "OUT_FOR_DELIVERY"
	// StatusDelivered indicates the parcel reached the customer.
	StatusDelivered StatusCode = "DELIVERED"
	// StatusCancelled indicates the order was cancelled.
	StatusCancelled StatusCode = "CANCELLED"
	// StatusReturned indicates the parcel was returned to sender.
	StatusReturned StatusCode = "RETURNED"
)

// CanonicalOrder is the expected linear progression of an order, with the two
// absorbing side branches (CANCELLED, RETURNED) at the end. Timeline steps are
// emitted in this order.
var CanonicalOrder = []StatusCode{
	StatusOrderPlaced,
	StatusOrderConfirmed,
	StatusVerification,
	StatusDispatched,
	StatusInTransit,
	StatusOutForDelivery,
	StatusDelivered,
	StatusCancelled,
	StatusReturned,
}

var statusLabels = map[StatusCode]string{
	StatusOrderPlaced:    "Order Placed",
	StatusOrderConfirmed: "Order Confirmed",
	StatusVerification:   "Verification",
	StatusDispatched:     "Dispatched",
	StatusInTransit:      "In Transit",
	StatusOutForDelivery: "Out for Delivery",
	StatusDelivered:      "Delivered",
	StatusCancelled:      "Cancelled",
	StatusReturned:       "Returned",
}

// Canonical reports whether the code belongs to the fixed taxonomy.
func (c StatusCode) Canonical() bool {
	_, ok := statusLabels[c]
	return ok
}

// Label returns the human-readable label for the code. Ad-hoc codes are
// humanized (underscores to spaces, title case).
func (c StatusCode) Label() string {
	if label, ok := statusLabels[c]; ok {
		return label
	}

	words := strings.Split(strings.ToLower(string(c)), "_")
	for i, w := range words {
		if w == "" {
			continue
		}
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}

// Icon returns the icon name a UI should render for the code.
func (c StatusCode) Icon() string {
	switch c {
	case StatusInTransit, StatusOutForDelivery:
		return "truck"
	case StatusVerification:
		return "phone"
	default:
		return "package"
	}
}

// deliveredPattern matches a "deliver" stem eventually followed by a
// completion word, or the literal "delivered". "Delivery attempted" does not
// match and falls through to the looser deliver rule below.
var deliveredPattern = regexp.MustCompile(`deliver(ed|.*success|.*complete)`)

// ClassifyStatus maps a raw carrier status string to a StatusCode.
//
// Rules are case-insensitive substring checks applied in order, first match
// wins. The order matters: "out for delivery - delivered to hub" must hit the
// out-for-delivery rule before any deliver rule, and "delivered" must hit the
// completion pattern before the looser "deliver" check routes it to the last
// mile. An empty input is treated as a freshly placed order. Anything
// unmatched is uppercased and underscored verbatim, so the function is total.
func ClassifyStatus(raw string) StatusCode {
	s := strings.ToLower(strings.TrimSpace(raw))
	if s == "" {
		return StatusOrderPlaced
	}

	switch {
	case strings.Contains(s, "out") && strings.Contains(s, "delivery"):
		return StatusOutForDelivery
	case strings.Contains(s, "in") && strings.Contains(s, "transit"):
		return StatusInTransit
	case strings.Contains(s, "dispatch") || strings.Contains(s, "shipped"):
		return StatusDispatched
	case strings.Contains(s, "confirm"):
		return StatusOrderConfirmed
	case deliveredPattern.MatchString(s):
		return StatusDelivered
	case strings.Contains(s, "deliver"):
		return StatusOutForDelivery
	case strings.Contains(s, "verif") || strings.Contains(s, "phone"):
		return StatusVerification
	case strings.Contains(s, "cancel"):
		return StatusCancelled
	case strings.Contains(s, "return"):
		return StatusReturned
	case strings.Contains(s, "placed") || strings.Contains(s, "created") ||
		strings.Contains(s, "new") || strings.Contains(s, "pending"):
		return StatusOrderPlaced
	}

	return StatusCode(strings.ReplaceAll(strings.ToUpper(strings.TrimSpace(raw)), " ", "_"))
}

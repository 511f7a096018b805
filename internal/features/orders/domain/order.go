package domain

import (
	"errors"
	"time"
)

// OrderStatus represents the current state of an order.
type OrderStatus string

const (
	// OrderStatusCreated indicates the order has been placed but not yet shipped.
	OrderStatusCreated OrderStatus = "CREATED"
	// OrderStatusShipped indicates the order has been handed to the carrier.
	OrderStatusShipped OrderStatus = "SHIPPED"
	// OrderStatusCancelled indicates the order was cancelled or refunded.
	OrderStatusCancelled OrderStatus = "CANCELLED"
	// OrderStatusPending indicates the order state is not yet determined.
	OrderStatusPending OrderStatus = "PENDING"
)

var (
	// ErrOrderNotFound is returned when the order does not exist.
	ErrOrderNotFound = errors.New("order not found")
	// ErrEmailMismatch is returned when the provided email does not match the order's email.
	ErrEmailMismatch = errors.New("email does not match order record")
)

// Shipment represents one parcel dispatched for an order.
type Shipment struct {
	// TrackingNumber is the carrier's tracking identifier.
	TrackingNumber string `json:"tracking_number"`
	// Carrier is the shipping carrier name.
	Carrier string `json:"carrier"`
	// ShippedAt is when the parcel was dispatched.
	ShippedAt time.Time `json:"shipped_at,omitempty"`
}

// Order represents a customer order summary shown on the tracking page.
type Order struct {
	// ID is the unique identifier for the order.
	ID string `json:"order_id"`
	// Status represents the current state of the order.
	Status OrderStatus `json:"status"`
	// CustomerName is the display name of the customer.
	CustomerName string `json:"customer_name"`
	// Email is the contact email for the customer.
	Email string `json:"email"`
	// Phone is the customer's phone number.
	Phone string `json:"phone,omitempty"`
	// Address is the shipping address for the order.
	Address string `json:"address"`
	// City is the city of the shipping address.
	City string `json:"city"`
	// PaymentMethod is the display name of the payment method.
	PaymentMethod string `json:"payment_method,omitempty"`
	// CreatedAt is the timestamp when the order was created.
	CreatedAt time.Time `json:"created_at"`
	// Shipments contains dispatched parcels (can be multiple for partial shipments).
	Shipments []Shipment `json:"shipments"`
	// Items contains the list of products included in the order.
	Items []OrderItem `json:"items"`
}

// OrderItem represents an individual item within an order.
type OrderItem struct {
	// Quantity is the number of units purchased.
	Quantity int `json:"quantity"`
	// SKU is the Stock Keeping Unit identifier for the product.
	SKU string `json:"sku"`
	// Name is the descriptive name of the product.
	Name string `json:"name"`
	// Picture is the URL to an image of the product.
	Picture string `json:"picture,omitempty"`
}

package domain

import "errors"

var (
	// ErrInvalidOrderID is returned when the order identifier is empty.
	ErrInvalidOrderID = errors.New("order id is required")
	// ErrTrackingNotFound is returned when no candidate endpoint yields a
	// usable tracking record.
	ErrTrackingNotFound = errors.New("tracking not found")
)

// NotFoundError carries the best available explanation for an exhausted
// lookup: a backend-supplied message if one was seen, else the last transport
// error, else a static default.
type NotFoundError struct {
	// Message is the user-presentable reason.
	Message string
}

// Error implements the error interface.
func (e *NotFoundError) Error() string {
	if e.Message == "" {
		return "Tracking not found"
	}
	return e.Message
}

// Is makes the error match ErrTrackingNotFound under errors.Is.
func (e *NotFoundError) Is(target error) bool {
	return target == ErrTrackingNotFound
}

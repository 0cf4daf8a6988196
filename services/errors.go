package services

import "errors"

// The service error taxonomy. Every operation fails terminally with one of
// these; nothing below retries on its own, the caller surfaces a message and
// lets the human try again.
var (
	ErrUnauthenticated     = errors.New("unauthenticated")
	ErrEmptyOrder          = errors.New("order has no items")
	ErrInvalidDeliveryInfo = errors.New("delivery address and phone number are required")
	ErrInvalidTransition   = errors.New("invalid status transition")
	ErrPlacementFailed     = errors.New("order placement failed")
	ErrBackendUnavailable  = errors.New("backend unavailable")

	ErrItemUnavailable = errors.New("menu item unavailable")
	ErrForbidden       = errors.New("forbidden")
	ErrNotFound        = errors.New("not found")
)

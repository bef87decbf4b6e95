package order

import "errors"

var (
	// -- Validation & Input --
	ErrEmptyCart     = errors.New("cannot place an order with an empty cart")
	ErrNoLocation    = errors.New("delivery location is not set")
	ErrInvalidStatus = errors.New("invalid order status")

	// -- Resource State --
	ErrOrderNotFound = errors.New("order not found")

	// -- Remote Store Failures --
	ErrRemote = errors.New("order store unavailable")
)

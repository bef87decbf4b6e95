package order

import (
	"time"

	"mazaj-be/internal/cart"
	"mazaj-be/internal/geo"
)

// Status follows the delivery lifecycle. Transitions are driven by the
// shop's back office; this store applies whatever it is told (see
// UpdateStatus) as long as the value is one of the known states.
type Status string

const (
	StatusPending        Status = "Pending"
	StatusConfirmed      Status = "Confirmed"
	StatusOutForDelivery Status = "Out for Delivery"
	StatusDelivered      Status = "Delivered"
)

// ParseStatus validates a client-supplied status string.
func ParseStatus(s string) (Status, error) {
	switch Status(s) {
	case StatusPending, StatusConfirmed, StatusOutForDelivery, StatusDelivered:
		return Status(s), nil
	}
	return "", ErrInvalidStatus
}

// Order is created atomically at checkout and immutable afterwards,
// except for Status. Items are a snapshot of the cart at checkout time.
type Order struct {
	OrderID          string      `json:"order_id"`
	Items            []cart.Line `json:"items"`
	TotalPrice       float64     `json:"total_price"`
	DeliveryLocation geo.Point   `json:"delivery_location"`
	AddressNotes     string      `json:"address_notes"`
	PaymentMethod    string      `json:"payment_method"`
	OrderDate        time.Time   `json:"order_date"`
	Status           Status      `json:"status"`
	UserID           *string     `json:"user_id,omitempty"`
}

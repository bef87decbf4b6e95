package order

import (
	"sync"

	"mazaj-be/internal/cart"
)

// History is the session's order list, most recent first. New orders are
// prepended; a remote reload replaces it wholesale.
type History struct {
	mu     sync.Mutex
	orders []Order
}

func NewHistory() *History {
	return &History{}
}

// Prepend puts the order at the head of the history.
func (h *History) Prepend(o Order) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.orders = append([]Order{cloneOrder(o)}, h.orders...)
}

// Replace swaps the whole history for the given snapshot.
func (h *History) Replace(orders []Order) {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.orders = make([]Order, 0, len(orders))
	for _, o := range orders {
		h.orders = append(h.orders, cloneOrder(o))
	}
}

// List returns a deep copy, most recent first.
func (h *History) List() []Order {
	h.mu.Lock()
	defer h.mu.Unlock()

	out := make([]Order, 0, len(h.orders))
	for _, o := range h.orders {
		out = append(out, cloneOrder(o))
	}
	return out
}

// SetStatus updates the cached copy of an order, if present.
func (h *History) SetStatus(orderID string, status Status) bool {
	h.mu.Lock()
	defer h.mu.Unlock()

	for i := range h.orders {
		if h.orders[i].OrderID == orderID {
			h.orders[i].Status = status
			return true
		}
	}
	return false
}

func (h *History) Len() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.orders)
}

func cloneOrder(o Order) Order {
	clone := o
	clone.Items = make([]cart.Line, len(o.Items))
	copy(clone.Items, o.Items)
	return clone
}

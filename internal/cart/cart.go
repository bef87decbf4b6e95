package cart

import (
	"sync"

	"github.com/google/uuid"
)

// DeliveryFee is the flat fee charged on any non-empty cart.
const DeliveryFee = 5.00

// Cart is the session-owned collection of configured lines, in insertion
// order. A mutex stands in for the single-threaded event dispatch the
// mobile client gets for free: one active mutator at a time.
type Cart struct {
	mu    sync.Mutex
	lines []Line
}

func New() *Cart {
	return &Cart{}
}

// AddLine appends the line, assigning a fresh LineID when absent. It never
// merges with an existing line: every add is its own entry.
func (c *Cart) AddLine(line Line) (Line, error) {
	if line.Quantity < 1 {
		return Line{}, ErrInvalidQuantity
	}
	if line.ExtraCoals < 0 {
		return Line{}, ErrInvalidCoals
	}

	if line.LineID == "" {
		line.LineID = uuid.NewString()
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	c.lines = append(c.lines, line)

	return line, nil
}

// RemoveLine drops the matching line. Removing an unknown id is a no-op.
func (c *Cart) RemoveLine(lineID string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	for i := range c.lines {
		if c.lines[i].LineID == lineID {
			c.lines = append(c.lines[:i], c.lines[i+1:]...)
			return
		}
	}
}

// Clear empties the cart. Safe to call repeatedly.
func (c *Cart) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.lines = nil
}

// Snapshot returns a deep copy of the lines in insertion order.
func (c *Cart) Snapshot() []Line {
	c.mu.Lock()
	defer c.mu.Unlock()

	out := make([]Line, len(c.lines))
	copy(out, c.lines)
	return out
}

func (c *Cart) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.lines)
}

// ComputeTotals derives subtotal, delivery fee and total. Recomputed on
// every call; nothing is cached.
func (c *Cart) ComputeTotals() Totals {
	c.mu.Lock()
	defer c.mu.Unlock()

	var subtotal float64
	for i := range c.lines {
		subtotal += c.lines[i].LineTotal
	}

	var fee float64
	if subtotal > 0 {
		fee = DeliveryFee
	}

	return Totals{
		Subtotal:    subtotal,
		DeliveryFee: fee,
		Total:       subtotal + fee,
	}
}

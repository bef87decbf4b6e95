package pricing

import "errors"

var ErrUnknownHeadType = errors.New("unknown head type")

// HeadType is the bowl the shisha is served with. The set is closed:
// anything else must be rejected before pricing, never defaulted.
type HeadType string

const (
	HeadClay     HeadType = "Clay"
	HeadSilicone HeadType = "Silicone"
	HeadFruit    HeadType = "Fruit"
)

// Surcharge per head type, on top of the base flavor price.
var headSurcharge = map[HeadType]float64{
	HeadClay:     0,
	HeadSilicone: 3,
	HeadFruit:    8,
}

// ExtraCoalPrice is charged per additional coal.
const ExtraCoalPrice = 0.5

// ParseHeadType validates a client-supplied head type string.
func ParseHeadType(s string) (HeadType, error) {
	ht := HeadType(s)
	if _, ok := headSurcharge[ht]; !ok {
		return "", ErrUnknownHeadType
	}
	return ht, nil
}

// UnitPrice returns the price of a single configured unit:
// base price + head surcharge + extra coals.
func UnitPrice(basePrice float64, head HeadType, extraCoals int) float64 {
	return basePrice + headSurcharge[head] + float64(extraCoals)*ExtraCoalPrice
}

// LineTotal returns the price for quantity units of one configuration.
func LineTotal(basePrice float64, head HeadType, extraCoals, quantity int) float64 {
	return UnitPrice(basePrice, head, extraCoals) * float64(quantity)
}

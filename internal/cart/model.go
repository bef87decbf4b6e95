package cart

import "mazaj-be/internal/pricing"

// Line is one configured add-to-cart action. Two adds of the identical
// configuration stay two separate lines; quantities are never merged.
type Line struct {
	LineID     string           `json:"line_id"`
	ProductID  string           `json:"product_id"`
	Name       string           `json:"name"`
	ImageURL   string           `json:"image_url"`
	Quantity   int              `json:"quantity"`
	HeadType   pricing.HeadType `json:"head_type"`
	ExtraCoals int              `json:"extra_coals"`
	UnitPrice  float64          `json:"unit_price"`
	LineTotal  float64          `json:"line_total"`
}

// Totals is the derived money view of a cart.
type Totals struct {
	Subtotal    float64 `json:"subtotal"`
	DeliveryFee float64 `json:"delivery_fee"`
	Total       float64 `json:"total"`
}

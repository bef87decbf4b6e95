package catalog

import "time"

// Product is a purchasable flavor. Immutable once fetched; the cache
// replaces entries wholesale on re-fetch.
type Product struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Price       float64   `json:"price"`
	ImageURL    string    `json:"image_url"`
	Category    string    `json:"category"`
	Available   bool      `json:"available"`
	CreatedAt   time.Time `json:"-"`
	UpdatedAt   time.Time `json:"-"`
}

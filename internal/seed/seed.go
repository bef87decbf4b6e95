package seed

import (
	"context"
	"fmt"

	"mazaj-be/internal/catalog"
	"mazaj-be/internal/logger"

	"go.uber.org/zap"
)

// Products is the launch catalog. Image refs are asset file names the
// mobile client resolves locally.
var Products = []catalog.Product{
	{
		ID:          "DA-01",
		Name:        "Double Apple",
		Category:    "Classic Flavors",
		Price:       25.00,
		ImageURL:    "double apple.png",
		Description: "The timeless classic. A perfect blend of sweet red and tangy green apple with a hint of aniseed.",
		Available:   true,
	},
	{
		ID:          "GM-02",
		Name:        "Grape & Mint",
		Category:    "Classic Flavors",
		Price:       25.00,
		ImageURL:    "grape and mint.png",
		Description: "A refreshing mix of sweet, juicy grapes and a cool, invigorating mint finish.",
		Available:   true,
	},
	{
		ID:          "LM-03",
		Name:        "Lemon & Mint",
		Category:    "Premium Mixes",
		Price:       28.00,
		ImageURL:    "lemon and mint.png",
		Description: "Zesty and vibrant. The sharp taste of fresh lemon perfectly balanced with cooling mint.",
		Available:   true,
	},
	{
		ID:          "BP-04",
		Name:        "Blueberry Passion",
		Category:    "Premium Mixes",
		Price:       30.00,
		ImageURL:    "blueberry passion.png",
		Description: "An exotic and sweet blend of ripe blueberries and tropical passion fruit.",
		Available:   true,
	},
}

// Apply inserts the launch catalog. It is idempotent: existing products
// are updated in place. With clear set, the products collection is wiped
// first.
func Apply(ctx context.Context, repo catalog.Repository, clear bool) error {
	log := logger.FromCtx(ctx)

	if clear {
		if err := repo.DeleteAll(ctx); err != nil {
			return fmt.Errorf("clear products: %w", err)
		}
		log.Info("cleared existing products")
	}

	for _, p := range Products {
		existing, err := repo.GetByID(ctx, p.ID)
		if err != nil {
			return fmt.Errorf("check product %s: %w", p.ID, err)
		}

		if existing != nil {
			if err := repo.Update(ctx, p); err != nil {
				return fmt.Errorf("update product %s: %w", p.ID, err)
			}
			continue
		}

		if _, err := repo.Create(ctx, p); err != nil {
			return fmt.Errorf("insert product %s: %w", p.ID, err)
		}
		log.Info("seeded product", zap.String("id", p.ID), zap.String("name", p.Name))
	}

	return nil
}

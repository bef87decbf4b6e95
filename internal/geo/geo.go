package geo

import (
	"context"
	"errors"

	"mazaj-be/internal/logger"

	"go.uber.org/zap"
)

var ErrPermissionDenied = errors.New("location permission denied")

// Point is a delivery coordinate.
type Point struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// Locator is the device/location collaborator. Implementations may block
// on a permission prompt; they must honor ctx cancellation.
type Locator interface {
	Locate(ctx context.Context) (Point, error)
}

// Resolver turns a locator result into a usable delivery point, falling
// back to a fixed default instead of blocking checkout when permission is
// denied or the lookup fails.
type Resolver struct {
	locator Locator
	def     Point
}

func NewResolver(locator Locator, def Point) *Resolver {
	return &Resolver{locator: locator, def: def}
}

func (r *Resolver) Resolve(ctx context.Context) Point {
	if r.locator == nil {
		return r.def
	}

	p, err := r.locator.Locate(ctx)
	if err != nil {
		logger.FromCtx(ctx).Warn("falling back to default location", zap.Error(err))
		return r.def
	}
	return p
}

// Default returns the fallback point.
func (r *Resolver) Default() Point {
	return r.def
}

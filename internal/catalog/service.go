package catalog

import (
	"context"
	"fmt"

	"mazaj-be/internal/logger"

	"go.uber.org/zap"
)

// Service keeps the local cache in sync with the remote products
// collection. On any remote failure the last-known-good cache is left
// untouched and the error is reported to the caller.
type Service interface {
	FetchAll(ctx context.Context) ([]Product, error)
	FetchByID(ctx context.Context, id string) (*Product, error)
	Cached() []Product
	CachedByID(id string) (Product, bool)
	Create(ctx context.Context, p Product) (*Product, error)
	Update(ctx context.Context, p Product) error
	Delete(ctx context.Context, id string) error
}

type service struct {
	repo  Repository
	cache *Cache
}

func NewService(repo Repository) Service {
	return &service{repo: repo, cache: NewCache()}
}

// FetchAll replaces the local cache wholesale on success.
func (s *service) FetchAll(ctx context.Context) ([]Product, error) {
	log := logger.FromCtx(ctx)

	products, err := s.repo.List(ctx)
	if err != nil {
		log.Error("catalog fetch failed", zap.Error(err))
		return nil, fmt.Errorf("%w: %v", ErrRemote, err)
	}

	s.cache.ReplaceAll(products)
	log.Debug("catalog refreshed", zap.Int("count", len(products)))

	return s.cache.List(), nil
}

// FetchByID merges the single result into the cache.
func (s *service) FetchByID(ctx context.Context, id string) (*Product, error) {
	p, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrRemote, err)
	}
	if p == nil {
		return nil, ErrProductNotFound
	}

	s.cache.Merge(*p)
	return p, nil
}

func (s *service) Cached() []Product {
	return s.cache.List()
}

func (s *service) CachedByID(id string) (Product, bool) {
	return s.cache.Get(id)
}

func (s *service) Create(ctx context.Context, p Product) (*Product, error) {
	created, err := s.repo.Create(ctx, p)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrRemote, err)
	}

	s.cache.Merge(*created)
	return created, nil
}

func (s *service) Update(ctx context.Context, p Product) error {
	if err := s.repo.Update(ctx, p); err != nil {
		if err == ErrProductNotFound {
			return err
		}
		return fmt.Errorf("%w: %v", ErrRemote, err)
	}

	s.cache.Merge(p)
	return nil
}

func (s *service) Delete(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		if err == ErrProductNotFound {
			return err
		}
		return fmt.Errorf("%w: %v", ErrRemote, err)
	}

	// A stale cache entry is acceptable until the next fetch-all; the
	// catalog is eventually-consistent reference data.
	return nil
}

package service

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/guttosm/packlist-service/internal/domain/model"
	"github.com/guttosm/packlist-service/internal/logger"
	"github.com/guttosm/packlist-service/internal/metrics"
	"github.com/guttosm/packlist-service/internal/repository"
)

var (
	// ErrRepositoryNotConfigured is returned when the repository is not configured.
	ErrRepositoryNotConfigured = errors.New("repository not configured")
	// ErrInvalidProduct is returned when a product fails validation.
	ErrInvalidProduct = errors.New("invalid product")
)

// DefaultSnapshotTTL is how long a catalog snapshot is reused between reads.
const DefaultSnapshotTTL = 30 * time.Second

const snapshotCacheName = "catalog_snapshot"

// CatalogService manages catalog products and hands out read-only snapshots
// to the packing calculator.
type CatalogService interface {
	List(ctx context.Context) ([]model.Product, error)
	Get(ctx context.Context, id string) (*model.Product, error)
	Create(ctx context.Context, product model.Product) (*model.Product, error)
	Update(ctx context.Context, product model.Product) (*model.Product, error)
	Delete(ctx context.Context, id string) error
	// Import upserts products by ID and returns how many were written.
	Import(ctx context.Context, products []model.Product) (int, error)
	// Snapshot returns the current catalog. Writes invalidate it.
	Snapshot(ctx context.Context) (model.Catalog, error)
}

// snapshotCache holds the last catalog snapshot. The generation counter stops
// a read that started before an invalidation from storing its stale result.
type snapshotCache struct {
	mu         sync.Mutex
	catalog    model.Catalog
	loaded     bool
	expiresAt  time.Time
	generation uint64
	ttl        time.Duration
}

func (c *snapshotCache) get(now time.Time) (model.Catalog, uint64, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	fresh := c.loaded && now.Before(c.expiresAt)
	return c.catalog, c.generation, fresh
}

func (c *snapshotCache) stale() (model.Catalog, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.catalog, c.loaded
}

func (c *snapshotCache) set(catalog model.Catalog, generation uint64, now time.Time) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if generation != c.generation {
		return
	}
	c.catalog = catalog
	c.loaded = true
	c.expiresAt = now.Add(c.ttl)
}

func (c *snapshotCache) invalidate() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.generation++
	c.expiresAt = time.Time{}
	metrics.RecordCacheOperation(snapshotCacheName, "invalidate", "success")
}

// CatalogServiceImpl implements CatalogService.
type CatalogServiceImpl struct {
	repo  repository.ProductRepositoryInterface
	cache *snapshotCache
	now   func() time.Time
}

// CatalogOption configures a CatalogServiceImpl.
type CatalogOption func(*CatalogServiceImpl)

// WithSnapshotTTL sets how long a snapshot is reused. Zero disables reuse.
func WithSnapshotTTL(ttl time.Duration) CatalogOption {
	return func(s *CatalogServiceImpl) {
		if ttl >= 0 {
			s.cache.ttl = ttl
		}
	}
}

// NewCatalogService creates a catalog service backed by repo.
func NewCatalogService(repo repository.ProductRepositoryInterface, opts ...CatalogOption) *CatalogServiceImpl {
	s := &CatalogServiceImpl{
		repo:  repo,
		cache: &snapshotCache{ttl: DefaultSnapshotTTL},
		now:   time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *CatalogServiceImpl) List(ctx context.Context) ([]model.Product, error) {
	if s.repo == nil {
		return nil, ErrRepositoryNotConfigured
	}
	return s.repo.List(ctx)
}

func (s *CatalogServiceImpl) Get(ctx context.Context, id string) (*model.Product, error) {
	if s.repo == nil {
		return nil, ErrRepositoryNotConfigured
	}
	return s.repo.Get(ctx, id)
}

// Create validates and stores a product. An empty ID is replaced by a UUID.
func (s *CatalogServiceImpl) Create(ctx context.Context, product model.Product) (*model.Product, error) {
	if s.repo == nil {
		return nil, ErrRepositoryNotConfigured
	}
	if strings.TrimSpace(product.ID) == "" {
		product.ID = uuid.NewString()
	}
	if err := ValidateProduct(product); err != nil {
		return nil, err
	}

	created, err := s.repo.Create(ctx, product)
	if err != nil {
		return nil, err
	}
	s.cache.invalidate()
	return created, nil
}

func (s *CatalogServiceImpl) Update(ctx context.Context, product model.Product) (*model.Product, error) {
	if s.repo == nil {
		return nil, ErrRepositoryNotConfigured
	}
	if err := ValidateProduct(product); err != nil {
		return nil, err
	}

	updated, err := s.repo.Update(ctx, product)
	if err != nil {
		return nil, err
	}
	s.cache.invalidate()
	return updated, nil
}

func (s *CatalogServiceImpl) Delete(ctx context.Context, id string) error {
	if s.repo == nil {
		return ErrRepositoryNotConfigured
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.cache.invalidate()
	return nil
}

// Import validates every product before writing any of them.
func (s *CatalogServiceImpl) Import(ctx context.Context, products []model.Product) (int, error) {
	if s.repo == nil {
		return 0, ErrRepositoryNotConfigured
	}
	for i, p := range products {
		if err := ValidateProduct(p); err != nil {
			return 0, fmt.Errorf("product %d (%s): %w", i+1, p.ID, err)
		}
	}

	n, err := s.repo.Upsert(ctx, products)
	if err != nil {
		return 0, err
	}
	s.cache.invalidate()
	return n, nil
}

// Snapshot returns the cached catalog while it is fresh, otherwise reloads it.
// When the reload fails and an older snapshot exists, the older one is served.
func (s *CatalogServiceImpl) Snapshot(ctx context.Context) (model.Catalog, error) {
	if s.repo == nil {
		return model.Catalog{}, ErrRepositoryNotConfigured
	}

	now := s.now()
	catalog, generation, fresh := s.cache.get(now)
	if fresh {
		metrics.RecordCacheOperation(snapshotCacheName, "get", "hit")
		return catalog, nil
	}
	metrics.RecordCacheOperation(snapshotCacheName, "get", "miss")

	products, err := s.repo.List(ctx)
	if err != nil {
		if stale, ok := s.cache.stale(); ok {
			metrics.RecordCacheOperation(snapshotCacheName, "get", "stale")
			logger.FromContext(ctx).Warn().Err(err).Int("products", stale.Len()).Msg("catalog reload failed, serving previous snapshot")
			return stale, nil
		}
		return model.Catalog{}, fmt.Errorf("load catalog: %w", err)
	}

	catalog = model.NewCatalog(products)
	s.cache.set(catalog, generation, now)
	metrics.UpdateCacheSize(snapshotCacheName, catalog.Len())
	return catalog, nil
}

// ValidateProduct checks the fields the packing math relies on.
func ValidateProduct(p model.Product) error {
	var problems []string

	if strings.TrimSpace(p.ID) == "" {
		problems = append(problems, "id is required")
	}
	if strings.TrimSpace(p.Name) == "" {
		problems = append(problems, "name is required")
	}
	if p.PiecesPerCase < 1 {
		problems = append(problems, "pieces_per_case must be at least 1")
	}
	if p.PricePerCase.IsNegative() || p.PricePerPiece.IsNegative() {
		problems = append(problems, "prices must not be negative")
	}
	if !finite(p.NetWeightKg) || !finite(p.PackagingWeightKg) {
		problems = append(problems, "weights must be finite numbers")
	} else if p.NetWeightKg < 0 || p.PackagingWeightKg < 0 {
		problems = append(problems, "weights must not be negative")
	}

	if len(problems) > 0 {
		return fmt.Errorf("%w: %s", ErrInvalidProduct, strings.Join(problems, "; "))
	}
	return nil
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

package repository

import (
	"context"
	"sort"
	"sync"

	"github.com/guttosm/packlist-service/internal/domain/model"
)

// MemoryProductRepository keeps the catalog in process memory. It backs the
// service when MongoDB is disabled and is usually seeded from a spreadsheet.
type MemoryProductRepository struct {
	mu       sync.RWMutex
	products map[string]model.Product
}

// NewMemoryProductRepository creates an in-memory repository seeded with products.
// When two seeds share an ID the first one wins.
func NewMemoryProductRepository(seed []model.Product) *MemoryProductRepository {
	r := &MemoryProductRepository{
		products: make(map[string]model.Product, len(seed)),
	}
	for _, p := range seed {
		if _, ok := r.products[p.ID]; !ok {
			r.products[p.ID] = p
		}
	}
	return r
}

// List returns every product ordered by series and name.
func (r *MemoryProductRepository) List(_ context.Context) ([]model.Product, error) {
	r.mu.RLock()
	products := make([]model.Product, 0, len(r.products))
	for _, p := range r.products {
		products = append(products, p)
	}
	r.mu.RUnlock()

	sort.Slice(products, func(i, j int) bool {
		if products[i].Series != products[j].Series {
			return products[i].Series < products[j].Series
		}
		if products[i].Name != products[j].Name {
			return products[i].Name < products[j].Name
		}
		return products[i].ID < products[j].ID
	})
	return products, nil
}

// Get returns a product by ID, or ErrNotFound.
func (r *MemoryProductRepository) Get(_ context.Context, id string) (*model.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	p, ok := r.products[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &p, nil
}

// Create stores a new product.
func (r *MemoryProductRepository) Create(_ context.Context, product model.Product) (*model.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.products[product.ID]; ok {
		return nil, ErrDuplicateID
	}
	r.products[product.ID] = product
	return &product, nil
}

// Update replaces an existing product.
func (r *MemoryProductRepository) Update(_ context.Context, product model.Product) (*model.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.products[product.ID]; !ok {
		return nil, ErrNotFound
	}
	r.products[product.ID] = product
	return &product, nil
}

// Delete removes a product by ID.
func (r *MemoryProductRepository) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.products[id]; !ok {
		return ErrNotFound
	}
	delete(r.products, id)
	return nil
}

// Upsert inserts or replaces products by ID.
func (r *MemoryProductRepository) Upsert(_ context.Context, products []model.Product) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, p := range products {
		r.products[p.ID] = p
	}
	return len(products), nil
}

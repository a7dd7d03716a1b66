package repository

import (
	"context"
	"errors"

	"github.com/guttosm/packlist-service/internal/circuitbreaker"
	"github.com/guttosm/packlist-service/internal/domain/model"
)

// IsExpectedError reports errors that describe the data rather than the
// database. Breakers guarding repositories use it as Config.IsSuccessful so a
// missing document never trips the circuit.
func IsExpectedError(err error) bool {
	return errors.Is(err, ErrNotFound) || errors.Is(err, ErrDuplicateID)
}

// ProductRepositoryWithCircuitBreaker wraps a product repository with circuit breaker protection.
type ProductRepositoryWithCircuitBreaker struct {
	repo           ProductRepositoryInterface
	circuitBreaker *circuitbreaker.CircuitBreaker
}

// NewProductRepositoryWithCircuitBreaker creates a new repository wrapper with circuit breaker.
func NewProductRepositoryWithCircuitBreaker(repo ProductRepositoryInterface, cb *circuitbreaker.CircuitBreaker) *ProductRepositoryWithCircuitBreaker {
	return &ProductRepositoryWithCircuitBreaker{
		repo:           repo,
		circuitBreaker: cb,
	}
}

// List returns all products with circuit breaker protection.
func (r *ProductRepositoryWithCircuitBreaker) List(ctx context.Context) ([]model.Product, error) {
	var result []model.Product
	err := r.circuitBreaker.Execute(ctx, func() error {
		var cbErr error
		result, cbErr = r.repo.List(ctx)
		return cbErr
	})
	return result, err
}

// Get returns a product with circuit breaker protection.
func (r *ProductRepositoryWithCircuitBreaker) Get(ctx context.Context, id string) (*model.Product, error) {
	var result *model.Product
	err := r.circuitBreaker.Execute(ctx, func() error {
		var cbErr error
		result, cbErr = r.repo.Get(ctx, id)
		return cbErr
	})
	return result, err
}

// Create inserts a product with circuit breaker protection.
func (r *ProductRepositoryWithCircuitBreaker) Create(ctx context.Context, product model.Product) (*model.Product, error) {
	var result *model.Product
	err := r.circuitBreaker.Execute(ctx, func() error {
		var cbErr error
		result, cbErr = r.repo.Create(ctx, product)
		return cbErr
	})
	return result, err
}

// Update replaces a product with circuit breaker protection.
func (r *ProductRepositoryWithCircuitBreaker) Update(ctx context.Context, product model.Product) (*model.Product, error) {
	var result *model.Product
	err := r.circuitBreaker.Execute(ctx, func() error {
		var cbErr error
		result, cbErr = r.repo.Update(ctx, product)
		return cbErr
	})
	return result, err
}

// Delete removes a product with circuit breaker protection.
func (r *ProductRepositoryWithCircuitBreaker) Delete(ctx context.Context, id string) error {
	return r.circuitBreaker.Execute(ctx, func() error {
		return r.repo.Delete(ctx, id)
	})
}

// Upsert writes products in bulk with circuit breaker protection.
func (r *ProductRepositoryWithCircuitBreaker) Upsert(ctx context.Context, products []model.Product) (int, error) {
	var result int
	err := r.circuitBreaker.Execute(ctx, func() error {
		var cbErr error
		result, cbErr = r.repo.Upsert(ctx, products)
		return cbErr
	})
	return result, err
}

// GetCircuitBreaker returns the underlying circuit breaker for monitoring.
func (r *ProductRepositoryWithCircuitBreaker) GetCircuitBreaker() *circuitbreaker.CircuitBreaker {
	return r.circuitBreaker
}

// ProformaRepositoryWithCircuitBreaker wraps a proforma repository with circuit breaker protection.
type ProformaRepositoryWithCircuitBreaker struct {
	repo           ProformaRepositoryInterface
	circuitBreaker *circuitbreaker.CircuitBreaker
}

// NewProformaRepositoryWithCircuitBreaker creates a new repository wrapper with circuit breaker.
func NewProformaRepositoryWithCircuitBreaker(repo ProformaRepositoryInterface, cb *circuitbreaker.CircuitBreaker) *ProformaRepositoryWithCircuitBreaker {
	return &ProformaRepositoryWithCircuitBreaker{
		repo:           repo,
		circuitBreaker: cb,
	}
}

// List returns proformas with circuit breaker protection.
func (r *ProformaRepositoryWithCircuitBreaker) List(ctx context.Context, limit int) ([]model.Proforma, error) {
	var result []model.Proforma
	err := r.circuitBreaker.Execute(ctx, func() error {
		var cbErr error
		result, cbErr = r.repo.List(ctx, limit)
		return cbErr
	})
	return result, err
}

// Get returns a proforma with circuit breaker protection.
func (r *ProformaRepositoryWithCircuitBreaker) Get(ctx context.Context, id string) (*model.Proforma, error) {
	var result *model.Proforma
	err := r.circuitBreaker.Execute(ctx, func() error {
		var cbErr error
		result, cbErr = r.repo.Get(ctx, id)
		return cbErr
	})
	return result, err
}

// Create inserts a proforma with circuit breaker protection.
func (r *ProformaRepositoryWithCircuitBreaker) Create(ctx context.Context, proforma *model.Proforma) error {
	return r.circuitBreaker.Execute(ctx, func() error {
		return r.repo.Create(ctx, proforma)
	})
}

// Update replaces a proforma with circuit breaker protection.
func (r *ProformaRepositoryWithCircuitBreaker) Update(ctx context.Context, proforma *model.Proforma) error {
	return r.circuitBreaker.Execute(ctx, func() error {
		return r.repo.Update(ctx, proforma)
	})
}

// Delete removes a proforma with circuit breaker protection.
func (r *ProformaRepositoryWithCircuitBreaker) Delete(ctx context.Context, id string) error {
	return r.circuitBreaker.Execute(ctx, func() error {
		return r.repo.Delete(ctx, id)
	})
}

// GetCircuitBreaker returns the underlying circuit breaker for monitoring.
func (r *ProformaRepositoryWithCircuitBreaker) GetCircuitBreaker() *circuitbreaker.CircuitBreaker {
	return r.circuitBreaker
}

// LogsRepositoryWithCircuitBreaker wraps LogsRepository with circuit breaker protection.
type LogsRepositoryWithCircuitBreaker struct {
	repo           LogsRepositoryInterface
	circuitBreaker *circuitbreaker.CircuitBreaker
}

// NewLogsRepositoryWithCircuitBreaker creates a new repository wrapper with circuit breaker.
func NewLogsRepositoryWithCircuitBreaker(repo LogsRepositoryInterface, cb *circuitbreaker.CircuitBreaker) *LogsRepositoryWithCircuitBreaker {
	return &LogsRepositoryWithCircuitBreaker{
		repo:           repo,
		circuitBreaker: cb,
	}
}

// Create stores a single log entry. An open circuit drops the entry.
func (r *LogsRepositoryWithCircuitBreaker) Create(ctx context.Context, entry *LogEntryDocument) error {
	err := r.circuitBreaker.Execute(ctx, func() error {
		return r.repo.Create(ctx, entry)
	})
	if errors.Is(err, circuitbreaker.ErrCircuitOpen) {
		return nil
	}
	return err
}

// CreateMany stores a batch of log entries. An open circuit drops the batch.
func (r *LogsRepositoryWithCircuitBreaker) CreateMany(ctx context.Context, entries []*LogEntryDocument) error {
	err := r.circuitBreaker.Execute(ctx, func() error {
		return r.repo.CreateMany(ctx, entries)
	})
	if errors.Is(err, circuitbreaker.ErrCircuitOpen) {
		return nil
	}
	return err
}

// GetCircuitBreaker returns the underlying circuit breaker for monitoring.
func (r *LogsRepositoryWithCircuitBreaker) GetCircuitBreaker() *circuitbreaker.CircuitBreaker {
	return r.circuitBreaker
}

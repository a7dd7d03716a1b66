// Package repository provides interfaces for repository operations.
package repository

import (
	"context"
	"errors"

	"github.com/guttosm/packlist-service/internal/domain/model"
)

var (
	// ErrNotFound is returned when a document does not exist.
	ErrNotFound = errors.New("document not found")
	// ErrDuplicateID is returned when creating a document whose ID is already taken.
	ErrDuplicateID = errors.New("duplicate id")
)

// ProductRepositoryInterface defines the interface for catalog product storage.
type ProductRepositoryInterface interface {
	List(ctx context.Context) ([]model.Product, error)
	Get(ctx context.Context, id string) (*model.Product, error)
	Create(ctx context.Context, product model.Product) (*model.Product, error)
	Update(ctx context.Context, product model.Product) (*model.Product, error)
	Delete(ctx context.Context, id string) error
	// Upsert inserts or replaces products by ID and returns how many were written.
	Upsert(ctx context.Context, products []model.Product) (int, error)
}

// ProformaRepositoryInterface defines the interface for proforma storage.
type ProformaRepositoryInterface interface {
	List(ctx context.Context, limit int) ([]model.Proforma, error)
	Get(ctx context.Context, id string) (*model.Proforma, error)
	Create(ctx context.Context, proforma *model.Proforma) error
	Update(ctx context.Context, proforma *model.Proforma) error
	Delete(ctx context.Context, id string) error
}

// LogsRepositoryInterface defines the interface for logs repository operations.
type LogsRepositoryInterface interface {
	Create(ctx context.Context, entry *LogEntryDocument) error
	CreateMany(ctx context.Context, entries []*LogEntryDocument) error
}

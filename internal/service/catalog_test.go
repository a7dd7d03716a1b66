//go:build !integration

package service_test

import (
	"context"
	"errors"
	"math"
	"testing"
	"time"

	"github.com/guttosm/packlist-service/internal/domain/model"
	"github.com/guttosm/packlist-service/internal/mocks"
	"github.com/guttosm/packlist-service/internal/repository"
	"github.com/guttosm/packlist-service/internal/service"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func soap(id, series string) model.Product {
	return model.Product{
		ID:            id,
		Name:          "Soap " + id,
		Series:        series,
		PricePerCase:  decimal.RequireFromString("12"),
		PricePerPiece: decimal.RequireFromString("1"),
		NetWeightKg:   0.1,
		PiecesPerCase: 12,
	}
}

func TestValidateProduct(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*model.Product)
		wantErr bool
	}{
		{name: "valid", mutate: func(*model.Product) {}},
		{name: "missing name", mutate: func(p *model.Product) { p.Name = " " }, wantErr: true},
		{name: "zero pieces per case", mutate: func(p *model.Product) { p.PiecesPerCase = 0 }, wantErr: true},
		{name: "negative price", mutate: func(p *model.Product) { p.PricePerPiece = decimal.NewFromInt(-1) }, wantErr: true},
		{name: "negative weight", mutate: func(p *model.Product) { p.PackagingWeightKg = -0.5 }, wantErr: true},
		{name: "NaN net weight", mutate: func(p *model.Product) { p.NetWeightKg = math.NaN() }, wantErr: true},
		{name: "infinite packaging weight", mutate: func(p *model.Product) { p.PackagingWeightKg = math.Inf(1) }, wantErr: true},
		{name: "negative infinite net weight", mutate: func(p *model.Product) { p.NetWeightKg = math.Inf(-1) }, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := soap("a", "S1")
			tt.mutate(&p)

			err := service.ValidateProduct(p)
			if tt.wantErr {
				assert.ErrorIs(t, err, service.ErrInvalidProduct)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestCatalogService_Snapshot(t *testing.T) {
	ctx := context.Background()

	t.Run("reuses snapshot within ttl", func(t *testing.T) {
		repo := new(mocks.MockProductRepository)
		repo.On("List", mock.Anything).Return([]model.Product{soap("a", "S1")}, nil).Once()
		svc := service.NewCatalogService(repo, service.WithSnapshotTTL(time.Minute))

		first, err := svc.Snapshot(ctx)
		require.NoError(t, err)
		second, err := svc.Snapshot(ctx)
		require.NoError(t, err)

		assert.Equal(t, 1, first.Len())
		assert.Equal(t, first, second)
		repo.AssertNumberOfCalls(t, "List", 1)
	})

	t.Run("write invalidates snapshot", func(t *testing.T) {
		repo := new(mocks.MockProductRepository)
		repo.On("List", mock.Anything).Return([]model.Product{soap("a", "S1")}, nil).Once()
		repo.On("List", mock.Anything).Return([]model.Product{soap("a", "S1"), soap("b", "S2")}, nil).Once()
		repo.On("Create", mock.Anything, mock.Anything).Return(&model.Product{ID: "b"}, nil)
		svc := service.NewCatalogService(repo, service.WithSnapshotTTL(time.Minute))

		before, err := svc.Snapshot(ctx)
		require.NoError(t, err)
		_, err = svc.Create(ctx, soap("b", "S2"))
		require.NoError(t, err)
		after, err := svc.Snapshot(ctx)
		require.NoError(t, err)

		assert.Equal(t, 1, before.Len())
		assert.Equal(t, 2, after.Len())
	})

	t.Run("serves previous snapshot when reload fails", func(t *testing.T) {
		repo := new(mocks.MockProductRepository)
		repo.On("List", mock.Anything).Return([]model.Product{soap("a", "S1")}, nil).Once()
		repo.On("List", mock.Anything).Return(nil, errors.New("connection reset")).Once()
		svc := service.NewCatalogService(repo, service.WithSnapshotTTL(0))

		_, err := svc.Snapshot(ctx)
		require.NoError(t, err)
		stale, err := svc.Snapshot(ctx)

		require.NoError(t, err)
		_, ok := stale.Lookup("a")
		assert.True(t, ok)
	})

	t.Run("first load failure is returned", func(t *testing.T) {
		repo := new(mocks.MockProductRepository)
		repo.On("List", mock.Anything).Return(nil, errors.New("connection reset"))
		svc := service.NewCatalogService(repo)

		_, err := svc.Snapshot(ctx)
		assert.Error(t, err)
	})
}

func TestCatalogService_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("assigns id when empty", func(t *testing.T) {
		repo := new(mocks.MockProductRepository)
		repo.On("Create", mock.Anything, mock.MatchedBy(func(p model.Product) bool {
			return p.ID != ""
		})).Return(&model.Product{ID: "generated"}, nil)

		p := soap("", "S1")
		created, err := service.NewCatalogService(repo).Create(ctx, p)

		require.NoError(t, err)
		assert.Equal(t, "generated", created.ID)
		repo.AssertExpectations(t)
	})

	t.Run("rejects invalid product before storage", func(t *testing.T) {
		repo := new(mocks.MockProductRepository)
		p := soap("a", "S1")
		p.PiecesPerCase = 0

		_, err := service.NewCatalogService(repo).Create(ctx, p)

		assert.ErrorIs(t, err, service.ErrInvalidProduct)
		repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("duplicate id is passed through", func(t *testing.T) {
		repo := new(mocks.MockProductRepository)
		repo.On("Create", mock.Anything, mock.Anything).Return(nil, repository.ErrDuplicateID)

		_, err := service.NewCatalogService(repo).Create(ctx, soap("a", "S1"))
		assert.ErrorIs(t, err, repository.ErrDuplicateID)
	})
}

func TestCatalogService_Import(t *testing.T) {
	ctx := context.Background()

	t.Run("upserts valid products", func(t *testing.T) {
		repo := new(mocks.MockProductRepository)
		products := []model.Product{soap("a", "S1"), soap("b", "S1")}
		repo.On("Upsert", mock.Anything, products).Return(2, nil)

		n, err := service.NewCatalogService(repo).Import(ctx, products)

		require.NoError(t, err)
		assert.Equal(t, 2, n)
	})

	t.Run("one invalid product aborts import", func(t *testing.T) {
		repo := new(mocks.MockProductRepository)
		bad := soap("b", "S1")
		bad.Name = ""

		_, err := service.NewCatalogService(repo).Import(ctx, []model.Product{soap("a", "S1"), bad})

		assert.ErrorIs(t, err, service.ErrInvalidProduct)
		assert.Contains(t, err.Error(), "product 2 (b)")
		repo.AssertNotCalled(t, "Upsert", mock.Anything, mock.Anything)
	})
}

func TestCatalogService_NilRepository(t *testing.T) {
	svc := service.NewCatalogService(nil)
	ctx := context.Background()

	_, err := svc.List(ctx)
	assert.ErrorIs(t, err, service.ErrRepositoryNotConfigured)
	_, err = svc.Snapshot(ctx)
	assert.ErrorIs(t, err, service.ErrRepositoryNotConfigured)
	assert.ErrorIs(t, svc.Delete(ctx, "a"), service.ErrRepositoryNotConfigured)
}

//go:build integration

package repository

import (
	"context"
	"testing"
	"time"

	"github.com/guttosm/packlist-service/internal/circuitbreaker"
	"github.com/guttosm/packlist-service/internal/domain/model"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMongoDB_Integration(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	db := setupTestDB(t)

	assert.NotNil(t, db.Products)
	assert.NotNil(t, db.Proformas)
	assert.NotNil(t, db.Logs)
	assert.NoError(t, db.HealthCheck(ctx))
	assert.NoError(t, db.SetLogsTTL(ctx, 30))
	assert.NoError(t, db.SetLogsTTL(ctx, 30))
}

func TestProductRepository_Integration(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	repo := NewProductRepository(setupTestDB(t))

	olive := model.Product{
		ID:                "olive",
		Name:              "Olive Soap",
		Series:            "S1",
		PricePerCase:      decimal.RequireFromString("39.24"),
		PricePerPiece:     decimal.RequireFromString("3.27"),
		NetWeightKg:       0.5,
		PiecesPerCase:     12,
		PackagingWeightKg: 1.66,
	}

	_, err := repo.Create(ctx, olive)
	require.NoError(t, err)

	_, err = repo.Create(ctx, olive)
	assert.ErrorIs(t, err, ErrDuplicateID)

	got, err := repo.Get(ctx, "olive")
	require.NoError(t, err)
	assert.True(t, olive.PricePerCase.Equal(got.PricePerCase))
	assert.Equal(t, 12, got.PiecesPerCase)

	olive.Name = "Olive Soap 120g"
	_, err = repo.Update(ctx, olive)
	require.NoError(t, err)

	_, err = repo.Update(ctx, model.Product{ID: "ghost"})
	assert.ErrorIs(t, err, ErrNotFound)

	n, err := repo.Upsert(ctx, []model.Product{
		olive,
		{ID: "travel", Name: "Travel Soap", Series: "PROMO", PiecesPerCase: 100, NetWeightKg: 0.025},
	})
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	products, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, products, 2)
	assert.Equal(t, "PROMO", products[0].Series)
	assert.Equal(t, "Olive Soap 120g", products[1].Name)

	require.NoError(t, repo.Delete(ctx, "travel"))
	assert.ErrorIs(t, repo.Delete(ctx, "travel"), ErrNotFound)

	_, err = repo.Get(ctx, "travel")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestProformaRepository_Integration(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	cb := circuitbreaker.New(circuitbreaker.Config{
		FailureThreshold: 2,
		SuccessThreshold: 1,
		Timeout:          time.Second,
		Name:             "proformas",
		IsSuccessful:     IsExpectedError,
	})
	repo := NewProformaRepositoryWithCircuitBreaker(NewProformaRepository(setupTestDB(t)), cb)

	now := time.Now().UTC().Truncate(time.Millisecond)
	pf := &model.Proforma{
		ID: "pf-1",
		ProformaHeader: model.ProformaHeader{
			Number:   "PF-2026-0001",
			Date:     now,
			Customer: model.Customer{Name: "Green Market GmbH", Country: "DE"},
			Currency: "EUR",
		},
		Unit:  model.UnitCase,
		Lines: []model.OrderLine{{ProductID: "olive", Quantity: 5}},
		Shipment: model.ShipmentInfo{
			Pallets:           []model.Pallet{{Number: 1, WidthCm: 80, LengthCm: 120, HeightCm: 150}},
			WeightPerPalletKg: 20,
		},
		CreatedAt: now,
		UpdatedAt: now,
	}

	require.NoError(t, repo.Create(ctx, pf))

	got, err := repo.Get(ctx, "pf-1")
	require.NoError(t, err)
	assert.Equal(t, pf.Shipment, got.Shipment)
	assert.Equal(t, "Green Market GmbH", got.Customer.Name)

	pf.Notes = "second pallet pending"
	require.NoError(t, repo.Update(ctx, pf))

	list, err := repo.List(ctx, 10)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "second pallet pending", list[0].Notes)

	require.NoError(t, repo.Delete(ctx, "pf-1"))
	_, err = repo.Get(ctx, "pf-1")
	assert.ErrorIs(t, err, ErrNotFound)
	assert.Equal(t, circuitbreaker.StateClosed, cb.State())
}

func TestLogsRepository_Integration(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	db := setupTestDB(t)
	repo := NewLogsRepository(db)

	entry := &LogEntryDocument{Level: "info", Message: "packing calculated", ActionType: model.ActionCalculatePacking}
	require.NoError(t, repo.Create(ctx, entry))
	assert.False(t, entry.ID.IsZero())
	assert.False(t, entry.Timestamp.IsZero())

	require.NoError(t, repo.CreateMany(ctx, []*LogEntryDocument{
		{Level: "info", Message: "one"},
		{Level: "warn", Message: "two"},
	}))
	require.NoError(t, repo.CreateMany(ctx, nil))

	count, err := db.Logs.CountDocuments(ctx, map[string]interface{}{})
	require.NoError(t, err)
	assert.EqualValues(t, 3, count)
}

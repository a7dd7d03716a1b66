//go:build !integration

package repository

import (
	"testing"
	"time"

	"github.com/guttosm/packlist-service/internal/domain/model"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestProductDocument_KeepsDecimalPrices(t *testing.T) {
	p := model.Product{
		ID:            "A",
		Name:          "Olive Soap",
		Series:        "S1",
		PricePerCase:  decimal.RequireFromString("39.24"),
		PricePerPiece: decimal.RequireFromString("3.27"),
		NetWeightKg:   0.5,
		PiecesPerCase: 12,
	}

	got := newProductDocument(p).toModel()

	assert.True(t, p.PricePerCase.Equal(got.PricePerCase))
	assert.True(t, p.PricePerPiece.Equal(got.PricePerPiece))
	assert.Equal(t, p.Name, got.Name)
	assert.Equal(t, p.PiecesPerCase, got.PiecesPerCase)
}

func TestProformaDocument_ShipmentAndLines(t *testing.T) {
	created := time.Date(2026, 10, 1, 9, 0, 0, 0, time.UTC)
	p := &model.Proforma{
		ID: "pf-1",
		ProformaHeader: model.ProformaHeader{
			Number:   "PF-1",
			Customer: model.Customer{Name: "Green Market"},
			Currency: "EUR",
		},
		Unit: model.UnitPiece,
		Lines: []model.OrderLine{
			{ProductID: "A", Quantity: 24, UnitPrice: decimal.RequireFromString("3.27"), Total: decimal.RequireFromString("78.48")},
		},
		Shipment: model.ShipmentInfo{
			Pallets:           []model.Pallet{{Number: 1, WidthCm: 80, LengthCm: 120, HeightCm: 100}},
			WeightPerPalletKg: 22,
		},
		CreatedAt: created,
		UpdatedAt: created,
	}

	got := newProformaDocument(p).toModel()

	assert.Equal(t, p.Shipment, got.Shipment)
	assert.Equal(t, model.UnitPiece, got.Unit)
	assert.Equal(t, "Green Market", got.Customer.Name)
	assert.True(t, p.Lines[0].Total.Equal(got.Lines[0].Total))
	assert.Equal(t, created, got.CreatedAt)
}

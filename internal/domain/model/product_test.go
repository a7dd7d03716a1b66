package model

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestParseCountingUnit(t *testing.T) {
	tests := []struct {
		input    string
		expected CountingUnit
		ok       bool
	}{
		{"case", UnitCase, true},
		{" Cases ", UnitCase, true},
		{"koli", UnitCase, true},
		{"piece", UnitPiece, true},
		{"PCS", UnitPiece, true},
		{"adet", UnitPiece, true},
		{"", "", false},
		{"pallet", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			unit, ok := ParseCountingUnit(tt.input)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.expected, unit)
		})
	}
}

func TestProduct_IsPromotional(t *testing.T) {
	tests := []struct {
		name     string
		series   string
		sentinel string
		expected bool
	}{
		{"default sentinel", "PROMO", "", true},
		{"case insensitive", " promo ", "", true},
		{"commercial series", "S1", "", false},
		{"custom sentinel", "FREE", "free", true},
		{"custom sentinel does not match default", "PROMO", "FREE", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := Product{Series: tt.series}
			assert.Equal(t, tt.expected, p.IsPromotional(tt.sentinel))
		})
	}
}

func TestProduct_UnitPriceAndWeight(t *testing.T) {
	p := Product{
		PricePerCase:  decimal.RequireFromString("39.24"),
		PricePerPiece: decimal.RequireFromString("3.27"),
		NetWeightKg:   0.5,
		PiecesPerCase: 12,
	}

	assert.True(t, p.UnitPrice(UnitCase).Equal(decimal.RequireFromString("39.24")))
	assert.True(t, p.UnitPrice(UnitPiece).Equal(decimal.RequireFromString("3.27")))
	assert.InDelta(t, 6.0, p.NetWeightPerUnit(UnitCase), 1e-9)
	assert.InDelta(t, 0.5, p.NetWeightPerUnit(UnitPiece), 1e-9)

	p.PiecesPerCase = 0
	assert.InDelta(t, 0.5, p.NetWeightPerUnit(UnitCase), 1e-9, "pieces per case is clamped to 1")
}

func TestCatalog(t *testing.T) {
	catalog := NewCatalog([]Product{
		{ID: "a", Name: "first"},
		{ID: "b", Name: "second"},
		{ID: "a", Name: "duplicate"},
	})

	assert.Equal(t, 2, catalog.Len())

	p, ok := catalog.Lookup("a")
	assert.True(t, ok)
	assert.Equal(t, "first", p.Name)

	_, ok = catalog.Lookup("missing")
	assert.False(t, ok)

	products := catalog.Products()
	assert.Equal(t, []string{"a", "b"}, []string{products[0].ID, products[1].ID})

	var empty Catalog
	_, ok = empty.Lookup("a")
	assert.False(t, ok)
	assert.Equal(t, 0, empty.Len())
}

func TestShipmentInfo(t *testing.T) {
	s := ShipmentInfo{
		Pallets:           []Pallet{{Number: 1}, {Number: 2}, {Number: 3}},
		WeightPerPalletKg: 22.5,
	}
	assert.Equal(t, 3, s.PalletCount())
	assert.InDelta(t, 67.5, s.TotalPalletWeightKg(), 1e-9)

	clone := s.ClonePallets()
	clone[0].Number = 99
	assert.Equal(t, 1, s.Pallets[0].Number)

	assert.NotNil(t, ShipmentInfo{}.ClonePallets())
}

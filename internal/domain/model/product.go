// Package model defines the core domain entities for the packing-list service.
package model

import (
	"strings"

	"github.com/shopspring/decimal"
)

// DefaultPromotionalSeries is the series label that marks a product as promotional
// (shipped free of charge). Promotional products never merge with commercial series.
const DefaultPromotionalSeries = "PROMO"

// CountingUnit is the unit order quantities are expressed in.
type CountingUnit string

const (
	// UnitCase counts whole cases (boxes) of a product.
	UnitCase CountingUnit = "case"
	// UnitPiece counts single pieces.
	UnitPiece CountingUnit = "piece"
)

// Valid reports whether u is a known counting unit.
func (u CountingUnit) Valid() bool {
	return u == UnitCase || u == UnitPiece
}

// ParseCountingUnit parses a counting unit, accepting a few common spellings.
// The second return value is false when s is not recognised.
func ParseCountingUnit(s string) (CountingUnit, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "case", "cases", "box", "koli":
		return UnitCase, true
	case "piece", "pieces", "pcs", "adet":
		return UnitPiece, true
	default:
		return "", false
	}
}

// Product is a catalog entry. It is treated as immutable for the duration of a calculation.
//
// @Description Catalog product with pricing and weight data
type Product struct {
	// ID is the product identifier referenced by order lines.
	ID string `json:"id" example:"lavender-soap-100g"`
	// Name is the display name.
	Name string `json:"name" example:"Lavender Soap 100g"`
	// Series is the free-text grouping key, or the promotional sentinel.
	Series string `json:"series" example:"S1"`
	// PricePerCase is the unit price when selling by the case.
	PricePerCase decimal.Decimal `json:"price_per_case" swaggertype:"string" example:"39.24"`
	// PricePerPiece is the unit price when selling by the piece.
	PricePerPiece decimal.Decimal `json:"price_per_piece" swaggertype:"string" example:"3.27"`
	// NetWeightKg is the net weight of a single piece in kilograms.
	NetWeightKg float64 `json:"net_weight_kg" example:"0.5"`
	// PiecesPerCase is the number of pieces packed in one case.
	PiecesPerCase int `json:"pieces_per_case" example:"12"`
	// PackagingWeightKg is the tare weight of one case of packaging in kilograms.
	PackagingWeightKg float64 `json:"packaging_weight_kg" example:"1.66"`
}

// IsPromotional reports whether the product belongs to the promotional series.
// An empty sentinel falls back to DefaultPromotionalSeries.
func (p Product) IsPromotional(sentinel string) bool {
	if sentinel == "" {
		sentinel = DefaultPromotionalSeries
	}
	return strings.EqualFold(strings.TrimSpace(p.Series), strings.TrimSpace(sentinel))
}

// UnitPrice returns the product price for the given counting unit.
func (p Product) UnitPrice(unit CountingUnit) decimal.Decimal {
	if unit == UnitCase {
		return p.PricePerCase
	}
	return p.PricePerPiece
}

// NetWeightPerUnit returns the net weight of one counting unit. In case mode
// this is the piece weight times the pieces per case.
func (p Product) NetWeightPerUnit(unit CountingUnit) float64 {
	if unit == UnitCase {
		return p.NetWeightKg * float64(p.EffectivePiecesPerCase())
	}
	return p.NetWeightKg
}

// EffectivePiecesPerCase returns PiecesPerCase, treating values below 1 as 1.
func (p Product) EffectivePiecesPerCase() int {
	if p.PiecesPerCase < 1 {
		return 1
	}
	return p.PiecesPerCase
}

// Catalog is a read-only snapshot of products keyed by identifier.
// The zero value is an empty catalog.
type Catalog struct {
	byID     map[string]int
	products []Product
}

// NewCatalog builds a catalog snapshot. When two products share an ID the first one wins.
func NewCatalog(products []Product) Catalog {
	c := Catalog{
		byID:     make(map[string]int, len(products)),
		products: make([]Product, 0, len(products)),
	}
	for _, p := range products {
		if _, dup := c.byID[p.ID]; dup {
			continue
		}
		c.byID[p.ID] = len(c.products)
		c.products = append(c.products, p)
	}
	return c
}

// Lookup resolves a product by identifier.
func (c Catalog) Lookup(id string) (Product, bool) {
	idx, ok := c.byID[id]
	if !ok {
		return Product{}, false
	}
	return c.products[idx], true
}

// Len returns the number of products in the snapshot.
func (c Catalog) Len() int {
	return len(c.products)
}

// Products returns a copy of the products in catalog order.
func (c Catalog) Products() []Product {
	out := make([]Product, len(c.products))
	copy(out, c.products)
	return out
}

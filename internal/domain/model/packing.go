package model

import "github.com/shopspring/decimal"

// OrderLine is one row of a proforma as entered by the user. Only ProductID and
// Quantity are inputs; Unit, UnitPrice and Total are struck by normalization.
type OrderLine struct {
	ProductID string          `json:"product_id" example:"lavender-soap-100g"`
	Quantity  float64         `json:"quantity" example:"5"`
	Unit      CountingUnit    `json:"unit,omitempty" example:"case"`
	UnitPrice decimal.Decimal `json:"unit_price" swaggertype:"string" example:"39.24"`
	Total     decimal.Decimal `json:"total" swaggertype:"string" example:"196.2"`
}

// PackingInput is everything the packing calculator depends on.
type PackingInput struct {
	Unit     CountingUnit
	Lines    []OrderLine
	Catalog  Catalog
	Shipment ShipmentInfo
}

// NormalizedLine is an order line resolved against the catalog and priced in
// the selected counting unit.
//
// @Description Order line priced in the selected counting unit
type NormalizedLine struct {
	// Index is the zero-based position of the line in the order.
	Index       int             `json:"index" example:"0"`
	ProductID   string          `json:"product_id" example:"lavender-soap-100g"`
	ProductName string          `json:"product_name" example:"Lavender Soap 100g"`
	Series      string          `json:"series" example:"S1"`
	Quantity    float64         `json:"quantity" example:"5"`
	Unit        CountingUnit    `json:"unit" example:"case"`
	UnitPrice   decimal.Decimal `json:"unit_price" swaggertype:"string" example:"39.24"`
	Total       decimal.Decimal `json:"total" swaggertype:"string" example:"196.2"`
}

// UnresolvedLine is an order line whose product reference is not in the catalog.
// It contributes nothing to any total.
type UnresolvedLine struct {
	Index     int     `json:"index" example:"2"`
	ProductID string  `json:"product_id" example:"unknown-sku"`
	Quantity  float64 `json:"quantity" example:"3"`
}

// SeriesGroup is the unit of pallet weight allocation: one commercial series, or
// a single promotional product.
//
// @Description Per-group weight breakdown
type SeriesGroup struct {
	// Number is the 1-based position of the group in first-seen order.
	Number      int          `json:"number" example:"1"`
	Key         string       `json:"key" example:"S1"`
	Label       string       `json:"label" example:"S1"`
	Series      string       `json:"series" example:"S1"`
	Promotional bool         `json:"promotional" example:"false"`
	ProductIDs  []string     `json:"product_ids"`
	Unit        CountingUnit `json:"unit" example:"case"`

	TotalQuantity          float64 `json:"total_quantity" example:"5"`
	PiecesPerCase          int     `json:"pieces_per_case" example:"12"`
	NetWeightPerUnit       float64 `json:"net_weight_kg_per_unit" example:"6"`
	PackagingWeightPerUnit float64 `json:"packaging_weight_kg_per_case" example:"1.66"`
	PalletWeightPerUnit    float64 `json:"pallet_weight_per_unit" example:"1.538"`
	TarePerUnit            float64 `json:"tare_per_unit" example:"3.198"`
	GrossWeightPerUnit     float64 `json:"brut_weight_per_unit" example:"9.198"`

	TotalNetKg   float64 `json:"total_kg" example:"30"`
	TotalTareKg  float64 `json:"total_tare" example:"15.99"`
	TotalGrossKg float64 `json:"brut_kg" example:"45.99"`
	TotalPieces  float64 `json:"adet_pcs" example:"60"`
}

// ShipmentTotals is the reconciled shipment-wide view shared by every document.
//
// @Description Shipment totals
type ShipmentTotals struct {
	TotalCases          float64         `json:"total_cases" example:"13"`
	TotalPieces         float64         `json:"total_pieces" example:"860"`
	TotalNetKg          float64         `json:"total_net_kg" example:"50"`
	TotalTareKg         float64         `json:"total_tare_kg" example:"28.3"`
	TotalGrossKg        float64         `json:"total_gross_kg" example:"78.3"`
	PalletCount         int             `json:"pallet_count" example:"1"`
	WeightPerPalletKg   float64         `json:"weight_per_pallet_kg" example:"20"`
	TotalPalletWeightKg float64         `json:"total_pallet_weight_kg" example:"20"`
	Pallets             []Pallet        `json:"pallets"`
	InvoiceTotal        decimal.Decimal `json:"invoice_total" swaggertype:"string" example:"196.2"`
}

// PackingList is the full result of a packing calculation.
//
// @Description Normalized lines, series groups and shipment totals
type PackingList struct {
	Unit                CountingUnit     `json:"unit" example:"case"`
	Lines               []NormalizedLine `json:"lines"`
	Unresolved          []UnresolvedLine `json:"unresolved,omitempty"`
	Groups              []SeriesGroup    `json:"groups"`
	PalletWeightPerUnit float64          `json:"pallet_weight_per_unit" example:"1.538"`
	Totals              ShipmentTotals   `json:"totals"`
}

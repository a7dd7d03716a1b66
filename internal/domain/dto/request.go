// Package dto defines the request and response bodies of the HTTP API and the
// order document read by the CLI.
package dto

import (
	"strings"
	"time"

	"github.com/guttosm/packlist-service/internal/domain/model"
	"github.com/shopspring/decimal"
)

// PalletRequest describes one pallet. A zero Number is filled from the pallet's position.
type PalletRequest struct {
	Number   int     `json:"number,omitempty" binding:"gte=0" example:"1"`
	WidthCm  float64 `json:"width_cm" binding:"gte=0" example:"80"`
	LengthCm float64 `json:"length_cm" binding:"gte=0" example:"120"`
	HeightCm float64 `json:"height_cm" binding:"gte=0" example:"150"`
} // @name PalletRequest

// ShipmentRequest carries the pallets and the weight of a single pallet.
type ShipmentRequest struct {
	Pallets           []PalletRequest `json:"pallets" binding:"dive"`
	WeightPerPalletKg float64         `json:"weight_per_pallet_kg" binding:"gte=0" example:"20"`
} // @name ShipmentRequest

// ToModel converts the request to shipment info.
func (r ShipmentRequest) ToModel() model.ShipmentInfo {
	pallets := make([]model.Pallet, len(r.Pallets))
	for i, p := range r.Pallets {
		number := p.Number
		if number == 0 {
			number = i + 1
		}
		pallets[i] = model.Pallet{
			Number:   number,
			WidthCm:  p.WidthCm,
			LengthCm: p.LengthCm,
			HeightCm: p.HeightCm,
		}
	}
	return model.ShipmentInfo{Pallets: pallets, WeightPerPalletKg: r.WeightPerPalletKg}
}

// OrderLineRequest is one order line as typed by the user.
type OrderLineRequest struct {
	ProductID string  `json:"product_id" binding:"required" example:"lavender-soap-100g"`
	Quantity  float64 `json:"quantity" binding:"gte=0" example:"5"`
} // @name OrderLineRequest

// ProductRequest is a catalog product in request bodies and inline catalogs.
type ProductRequest struct {
	ID                string          `json:"id,omitempty" example:"lavender-soap-100g"`
	Name              string          `json:"name" binding:"required" example:"Lavender Soap 100g"`
	Series            string          `json:"series" example:"S1"`
	PricePerCase      decimal.Decimal `json:"price_per_case" binding:"gte=0" swaggertype:"string" example:"39.24"`
	PricePerPiece     decimal.Decimal `json:"price_per_piece" binding:"gte=0" swaggertype:"string" example:"3.27"`
	NetWeightKg       float64         `json:"net_weight_kg" binding:"gte=0" example:"0.5"`
	PiecesPerCase     int             `json:"pieces_per_case" binding:"required,gte=1" example:"12"`
	PackagingWeightKg float64         `json:"packaging_weight_kg" binding:"gte=0" example:"1.66"`
} // @name ProductRequest

// ToModel converts the request to a product.
func (r ProductRequest) ToModel() model.Product {
	return model.Product{
		ID:                strings.TrimSpace(r.ID),
		Name:              strings.TrimSpace(r.Name),
		Series:            strings.TrimSpace(r.Series),
		PricePerCase:      r.PricePerCase,
		PricePerPiece:     r.PricePerPiece,
		NetWeightKg:       r.NetWeightKg,
		PiecesPerCase:     r.PiecesPerCase,
		PackagingWeightKg: r.PackagingWeightKg,
	}
}

// PackingRequest is the input of the packing preview and export.
//
// Products is an optional inline catalog. When it is empty the server catalog is used.
//
// @Description Order lines, counting unit and shipment info to derive a packing list from
type PackingRequest struct {
	Unit     string             `json:"unit,omitempty" binding:"omitempty,counting_unit" example:"case" enums:"case,piece"`
	Lines    []OrderLineRequest `json:"lines" binding:"dive"`
	Shipment ShipmentRequest    `json:"shipment"`
	Products []ProductRequest   `json:"products,omitempty" binding:"omitempty,dive"`
} // @name PackingRequest

// CountingUnit returns the parsed unit, or "" when none or an unknown one was sent.
func (r PackingRequest) CountingUnit() model.CountingUnit {
	unit, _ := model.ParseCountingUnit(r.Unit)
	return unit
}

// HasInlineCatalog reports whether the request carries its own products.
func (r PackingRequest) HasInlineCatalog() bool {
	return len(r.Products) > 0
}

// InlineCatalog builds a catalog from the inline products.
func (r PackingRequest) InlineCatalog() model.Catalog {
	products := make([]model.Product, len(r.Products))
	for i, p := range r.Products {
		products[i] = p.ToModel()
	}
	return model.NewCatalog(products)
}

// OrderLines converts the request lines to order lines.
func (r PackingRequest) OrderLines() []model.OrderLine {
	lines := make([]model.OrderLine, len(r.Lines))
	for i, l := range r.Lines {
		lines[i] = model.OrderLine{ProductID: strings.TrimSpace(l.ProductID), Quantity: l.Quantity}
	}
	return lines
}

// ToInput builds the calculator input against catalog.
func (r PackingRequest) ToInput(catalog model.Catalog) model.PackingInput {
	return model.PackingInput{
		Unit:     r.CountingUnit(),
		Lines:    r.OrderLines(),
		Catalog:  catalog,
		Shipment: r.Shipment.ToModel(),
	}
}

// CustomerRequest is the buyer of a proforma.
type CustomerRequest struct {
	Name    string `json:"name" binding:"required" example:"Green Market GmbH"`
	Address string `json:"address,omitempty" example:"Hauptstrasse 1, Berlin"`
	Country string `json:"country,omitempty" example:"DE"`
	TaxID   string `json:"tax_id,omitempty" example:"DE123456789"`
} // @name CustomerRequest

// HeaderRequest carries the commercial fields printed on the invoice.
type HeaderRequest struct {
	Number       string          `json:"number" binding:"required,max=64" example:"PF-2026-0042"`
	Date         time.Time       `json:"date" example:"2026-10-15T00:00:00Z"`
	Customer     CustomerRequest `json:"customer"`
	Currency     string          `json:"currency" binding:"omitempty,len=3" example:"USD"`
	Incoterm     string          `json:"incoterm,omitempty" example:"FOB"`
	PaymentTerms string          `json:"payment_terms,omitempty" example:"50% advance"`
	Notes        string          `json:"notes,omitempty" binding:"max=2000"`
} // @name HeaderRequest

// ToModel converts the request to a proforma header.
func (r HeaderRequest) ToModel() model.ProformaHeader {
	return model.ProformaHeader{
		Number: strings.TrimSpace(r.Number),
		Date:   r.Date,
		Customer: model.Customer{
			Name:    strings.TrimSpace(r.Customer.Name),
			Address: r.Customer.Address,
			Country: r.Customer.Country,
			TaxID:   r.Customer.TaxID,
		},
		Currency:     strings.ToUpper(strings.TrimSpace(r.Currency)),
		Incoterm:     r.Incoterm,
		PaymentTerms: r.PaymentTerms,
		Notes:        r.Notes,
	}
}

// ExportRequest is a packing request plus the invoice header, rendered as a workbook.
//
// @Description Packing request with invoice header for workbook export
type ExportRequest struct {
	PackingRequest
	Header HeaderRequest `json:"header"`
} // @name ExportRequest

// ProformaRequest creates or replaces a stored proforma.
//
// @Description Proforma invoice to store
type ProformaRequest struct {
	HeaderRequest
	Unit     string             `json:"unit,omitempty" binding:"omitempty,counting_unit" example:"case" enums:"case,piece"`
	Lines    []OrderLineRequest `json:"lines" binding:"dive"`
	Shipment ShipmentRequest    `json:"shipment"`
} // @name ProformaRequest

// ToModel converts the request to a proforma without ID or timestamps.
func (r ProformaRequest) ToModel() model.Proforma {
	unit, _ := model.ParseCountingUnit(r.Unit)
	lines := PackingRequest{Lines: r.Lines}.OrderLines()
	return model.Proforma{
		ProformaHeader: r.HeaderRequest.ToModel(),
		Unit:           unit,
		Lines:          lines,
		Shipment:       r.Shipment.ToModel(),
	}
}

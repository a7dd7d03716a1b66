package model

import "time"

// Customer is the buyer printed on a proforma.
type Customer struct {
	Name    string `json:"name" example:"Green Market GmbH"`
	Address string `json:"address,omitempty" example:"Hauptstrasse 1, Berlin"`
	Country string `json:"country,omitempty" example:"DE"`
	TaxID   string `json:"tax_id,omitempty" example:"DE123456789"`
}

// ProformaHeader carries the commercial fields of a proforma invoice.
type ProformaHeader struct {
	Number       string    `json:"number" example:"PF-2026-0042"`
	Date         time.Time `json:"date" example:"2026-10-15T00:00:00Z"`
	Customer     Customer  `json:"customer"`
	Currency     string    `json:"currency" example:"USD"`
	Incoterm     string    `json:"incoterm,omitempty" example:"FOB"`
	PaymentTerms string    `json:"payment_terms,omitempty" example:"50% advance"`
	Notes        string    `json:"notes,omitempty"`
}

// Proforma is a stored proforma invoice: header, order lines and shipment info.
// Line prices are re-struck from the catalog whenever a packing list is derived.
//
// @Description Stored proforma invoice
type Proforma struct {
	ID string `json:"id" example:"4f6c1a8e-0b7d-4c2a-9c1e-2d5f8a9b3c10"`
	ProformaHeader
	Unit      CountingUnit `json:"unit" example:"case"`
	Lines     []OrderLine  `json:"lines"`
	Shipment  ShipmentInfo `json:"shipment"`
	CreatedAt time.Time    `json:"created_at"`
	UpdatedAt time.Time    `json:"updated_at"`
}

// PackingInput returns the calculator input for this proforma against a catalog.
func (p Proforma) PackingInput(catalog Catalog) PackingInput {
	return PackingInput{
		Unit:     p.Unit,
		Lines:    p.Lines,
		Catalog:  catalog,
		Shipment: p.Shipment,
	}
}

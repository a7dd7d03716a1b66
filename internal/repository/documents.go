package repository

import (
	"time"

	"github.com/guttosm/packlist-service/internal/domain/model"
	"github.com/shopspring/decimal"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ProductDocument is the MongoDB shape of a catalog product.
// Prices are stored as Decimal128 so no precision is lost on the way through BSON.
type ProductDocument struct {
	ID                string               `bson:"_id"`
	Name              string               `bson:"name"`
	Series            string               `bson:"series"`
	PricePerCase      primitive.Decimal128 `bson:"price_per_case"`
	PricePerPiece     primitive.Decimal128 `bson:"price_per_piece"`
	NetWeightKg       float64              `bson:"net_weight_kg"`
	PiecesPerCase     int                  `bson:"pieces_per_case"`
	PackagingWeightKg float64              `bson:"packaging_weight_kg"`
	UpdatedAt         time.Time            `bson:"updated_at"`
}

// OrderLineDocument is the MongoDB shape of a proforma line.
type OrderLineDocument struct {
	ProductID string               `bson:"product_id"`
	Quantity  float64              `bson:"quantity"`
	Unit      string               `bson:"unit,omitempty"`
	UnitPrice primitive.Decimal128 `bson:"unit_price"`
	Total     primitive.Decimal128 `bson:"total"`
}

// PalletDocument is the MongoDB shape of a pallet.
type PalletDocument struct {
	Number   int     `bson:"number"`
	WidthCm  float64 `bson:"width_cm"`
	LengthCm float64 `bson:"length_cm"`
	HeightCm float64 `bson:"height_cm"`
}

// CustomerDocument is the MongoDB shape of a proforma customer.
type CustomerDocument struct {
	Name    string `bson:"name"`
	Address string `bson:"address,omitempty"`
	Country string `bson:"country,omitempty"`
	TaxID   string `bson:"tax_id,omitempty"`
}

// ProformaDocument is the MongoDB shape of a proforma invoice.
type ProformaDocument struct {
	ID                string              `bson:"_id"`
	Number            string              `bson:"number"`
	Date              time.Time           `bson:"date"`
	Customer          CustomerDocument    `bson:"customer"`
	Currency          string              `bson:"currency"`
	Incoterm          string              `bson:"incoterm,omitempty"`
	PaymentTerms      string              `bson:"payment_terms,omitempty"`
	Notes             string              `bson:"notes,omitempty"`
	Unit              string              `bson:"unit"`
	Lines             []OrderLineDocument `bson:"lines"`
	Pallets           []PalletDocument    `bson:"pallets"`
	WeightPerPalletKg float64             `bson:"weight_per_pallet_kg"`
	CreatedAt         time.Time           `bson:"created_at"`
	UpdatedAt         time.Time           `bson:"updated_at"`
}

func toDecimal128(d decimal.Decimal) primitive.Decimal128 {
	v, err := primitive.ParseDecimal128(d.String())
	if err != nil {
		return primitive.NewDecimal128(0, 0)
	}
	return v
}

func fromDecimal128(v primitive.Decimal128) decimal.Decimal {
	d, err := decimal.NewFromString(v.String())
	if err != nil {
		return decimal.Zero
	}
	return d
}

func newProductDocument(p model.Product) ProductDocument {
	return ProductDocument{
		ID:                p.ID,
		Name:              p.Name,
		Series:            p.Series,
		PricePerCase:      toDecimal128(p.PricePerCase),
		PricePerPiece:     toDecimal128(p.PricePerPiece),
		NetWeightKg:       p.NetWeightKg,
		PiecesPerCase:     p.PiecesPerCase,
		PackagingWeightKg: p.PackagingWeightKg,
		UpdatedAt:         time.Now().UTC(),
	}
}

func (d ProductDocument) toModel() model.Product {
	return model.Product{
		ID:                d.ID,
		Name:              d.Name,
		Series:            d.Series,
		PricePerCase:      fromDecimal128(d.PricePerCase),
		PricePerPiece:     fromDecimal128(d.PricePerPiece),
		NetWeightKg:       d.NetWeightKg,
		PiecesPerCase:     d.PiecesPerCase,
		PackagingWeightKg: d.PackagingWeightKg,
	}
}

func newProformaDocument(p *model.Proforma) ProformaDocument {
	lines := make([]OrderLineDocument, len(p.Lines))
	for i, l := range p.Lines {
		lines[i] = OrderLineDocument{
			ProductID: l.ProductID,
			Quantity:  l.Quantity,
			Unit:      string(l.Unit),
			UnitPrice: toDecimal128(l.UnitPrice),
			Total:     toDecimal128(l.Total),
		}
	}

	pallets := make([]PalletDocument, len(p.Shipment.Pallets))
	for i, pl := range p.Shipment.Pallets {
		pallets[i] = PalletDocument(pl)
	}

	return ProformaDocument{
		ID:     p.ID,
		Number: p.Number,
		Date:   p.Date,
		Customer: CustomerDocument{
			Name:    p.Customer.Name,
			Address: p.Customer.Address,
			Country: p.Customer.Country,
			TaxID:   p.Customer.TaxID,
		},
		Currency:          p.Currency,
		Incoterm:          p.Incoterm,
		PaymentTerms:      p.PaymentTerms,
		Notes:             p.Notes,
		Unit:              string(p.Unit),
		Lines:             lines,
		Pallets:           pallets,
		WeightPerPalletKg: p.Shipment.WeightPerPalletKg,
		CreatedAt:         p.CreatedAt,
		UpdatedAt:         p.UpdatedAt,
	}
}

func (d ProformaDocument) toModel() model.Proforma {
	lines := make([]model.OrderLine, len(d.Lines))
	for i, l := range d.Lines {
		lines[i] = model.OrderLine{
			ProductID: l.ProductID,
			Quantity:  l.Quantity,
			Unit:      model.CountingUnit(l.Unit),
			UnitPrice: fromDecimal128(l.UnitPrice),
			Total:     fromDecimal128(l.Total),
		}
	}

	pallets := make([]model.Pallet, len(d.Pallets))
	for i, pl := range d.Pallets {
		pallets[i] = model.Pallet(pl)
	}

	return model.Proforma{
		ID: d.ID,
		ProformaHeader: model.ProformaHeader{
			Number: d.Number,
			Date:   d.Date,
			Customer: model.Customer{
				Name:    d.Customer.Name,
				Address: d.Customer.Address,
				Country: d.Customer.Country,
				TaxID:   d.Customer.TaxID,
			},
			Currency:     d.Currency,
			Incoterm:     d.Incoterm,
			PaymentTerms: d.PaymentTerms,
			Notes:        d.Notes,
		},
		Unit:      model.CountingUnit(d.Unit),
		Lines:     lines,
		Shipment:  model.ShipmentInfo{Pallets: pallets, WeightPerPalletKg: d.WeightPerPalletKg},
		CreatedAt: d.CreatedAt,
		UpdatedAt: d.UpdatedAt,
	}
}

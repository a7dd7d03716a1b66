package service

import (
	"github.com/guttosm/packlist-service/internal/domain/model"
	"github.com/shopspring/decimal"
)

// Summarize reduces normalized lines and series groups to shipment totals.
// Pallets are passed through from the shipment info unchanged.
func Summarize(lines []model.NormalizedLine, groups []model.SeriesGroup, shipment model.ShipmentInfo) model.ShipmentTotals {
	totals := model.ShipmentTotals{
		PalletCount:         shipment.PalletCount(),
		WeightPerPalletKg:   shipment.WeightPerPalletKg,
		TotalPalletWeightKg: shipment.TotalPalletWeightKg(),
		Pallets:             shipment.ClonePallets(),
		InvoiceTotal:        decimal.Zero,
	}

	for _, g := range groups {
		totals.TotalCases += g.TotalQuantity
		totals.TotalPieces += g.TotalPieces
		totals.TotalNetKg += g.TotalNetKg
		totals.TotalTareKg += g.TotalTareKg
		totals.TotalGrossKg += g.TotalGrossKg
	}

	for _, l := range lines {
		totals.InvoiceTotal = totals.InvoiceTotal.Add(l.Total)
	}

	return totals
}

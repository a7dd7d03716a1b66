package service

import (
	"strings"

	"github.com/guttosm/packlist-service/internal/domain/model"
)

const (
	seriesKeyPrefix = "series:"
	promoKeyPrefix  = "promo:"
	freeLabelSuffix = " - FREE"
)

// AllocateWeights groups normalized lines by series and spreads the shipment's
// pallet weight over every unit in proportion to unit count. Promotional
// products are each placed in their own group keyed by product ID.
//
// Groups are returned in first-seen order and numbered from 1. Per-unit figures
// are taken from the first product seen in each group. Quantities are summed
// as entered, without converting between counting units.
//
// The second return value is the pallet weight assigned to a single unit, 0
// when the shipment holds no units.
func AllocateWeights(lines []model.NormalizedLine, catalog model.Catalog, shipment model.ShipmentInfo, promoSeries string) ([]model.SeriesGroup, float64) {
	groups := make([]model.SeriesGroup, 0)
	index := make(map[string]int)

	for _, line := range lines {
		product, ok := catalog.Lookup(line.ProductID)
		if !ok {
			continue
		}

		key, label, promo := groupKey(product, promoSeries)
		if i, seen := index[key]; seen {
			g := &groups[i]
			g.TotalQuantity += line.Quantity
			if !containsString(g.ProductIDs, product.ID) {
				g.ProductIDs = append(g.ProductIDs, product.ID)
			}
			continue
		}

		index[key] = len(groups)
		groups = append(groups, model.SeriesGroup{
			Number:                 len(groups) + 1,
			Key:                    key,
			Label:                  label,
			Series:                 product.Series,
			Promotional:            promo,
			ProductIDs:             []string{product.ID},
			Unit:                   line.Unit,
			TotalQuantity:          line.Quantity,
			PiecesPerCase:          product.EffectivePiecesPerCase(),
			NetWeightPerUnit:       product.NetWeightPerUnit(line.Unit),
			PackagingWeightPerUnit: product.PackagingWeightKg,
		})
	}

	var totalUnits float64
	for _, g := range groups {
		totalUnits += g.TotalQuantity
	}

	var perUnit float64
	if totalUnits > 0 {
		perUnit = shipment.TotalPalletWeightKg() / totalUnits
	}

	for i := range groups {
		g := &groups[i]
		g.PalletWeightPerUnit = perUnit
		g.TarePerUnit = g.PackagingWeightPerUnit + perUnit
		g.GrossWeightPerUnit = g.NetWeightPerUnit + g.TarePerUnit
		g.TotalNetKg = g.NetWeightPerUnit * g.TotalQuantity
		g.TotalTareKg = g.TarePerUnit * g.TotalQuantity
		g.TotalGrossKg = g.GrossWeightPerUnit * g.TotalQuantity
		// display only, never used for weights
		g.TotalPieces = g.TotalQuantity * float64(g.PiecesPerCase)
	}

	return groups, perUnit
}

func groupKey(p model.Product, promoSeries string) (key, label string, promo bool) {
	if p.IsPromotional(promoSeries) {
		return promoKeyPrefix + p.ID, p.Name + freeLabelSuffix, true
	}
	series := strings.TrimSpace(p.Series)
	return seriesKeyPrefix + series, series, false
}

func containsString(values []string, v string) bool {
	for _, s := range values {
		if s == v {
			return true
		}
	}
	return false
}

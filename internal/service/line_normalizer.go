package service

import (
	"github.com/guttosm/packlist-service/internal/domain/model"
	"github.com/shopspring/decimal"
)

// NormalizeLines resolves each order line against the catalog and prices it in
// the given counting unit. Lines whose product is not in the catalog are
// returned separately and take no part in any later stage.
func NormalizeLines(lines []model.OrderLine, catalog model.Catalog, unit model.CountingUnit) ([]model.NormalizedLine, []model.UnresolvedLine) {
	normalized := make([]model.NormalizedLine, 0, len(lines))
	var unresolved []model.UnresolvedLine

	for i, line := range lines {
		product, ok := catalog.Lookup(line.ProductID)
		if !ok {
			unresolved = append(unresolved, model.UnresolvedLine{
				Index:     i,
				ProductID: line.ProductID,
				Quantity:  line.Quantity,
			})
			continue
		}

		unitPrice := product.UnitPrice(unit)
		normalized = append(normalized, model.NormalizedLine{
			Index:       i,
			ProductID:   product.ID,
			ProductName: product.Name,
			Series:      product.Series,
			Quantity:    line.Quantity,
			Unit:        unit,
			UnitPrice:   unitPrice,
			Total:       decimal.NewFromFloat(line.Quantity).Mul(unitPrice),
		})
	}

	return normalized, unresolved
}

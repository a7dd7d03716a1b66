package service

import (
	"github.com/guttosm/packlist-service/internal/domain/model"
)

// PackingCalculator derives a packing list from an order, a catalog snapshot and
// shipment info. Implementations must be pure: the same input always yields the
// same output, and nothing is retained between calls.
type PackingCalculator interface {
	Calculate(input model.PackingInput) model.PackingList
	// PromotionalSeries returns the series label treated as free of charge.
	PromotionalSeries() string
}

// Option configures a PackingCalculatorService.
type Option func(*PackingCalculatorService)

// PackingCalculatorService runs the three packing stages in order:
// line normalization, series grouping with pallet weight allocation, and
// shipment summary. The interactive preview and the workbook export both go
// through Calculate so their numbers cannot diverge.
type PackingCalculatorService struct {
	promoSeries string
	defaultUnit model.CountingUnit
}

// NewPackingCalculatorService creates a calculator with the given options.
func NewPackingCalculatorService(opts ...Option) *PackingCalculatorService {
	s := &PackingCalculatorService{
		promoSeries: model.DefaultPromotionalSeries,
		defaultUnit: model.UnitCase,
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

// WithPromotionalSeries sets the series label that marks promotional products.
func WithPromotionalSeries(series string) Option {
	return func(s *PackingCalculatorService) {
		if series != "" {
			s.promoSeries = series
		}
	}
}

// WithDefaultUnit sets the counting unit used when the input carries none.
func WithDefaultUnit(unit model.CountingUnit) Option {
	return func(s *PackingCalculatorService) {
		if unit.Valid() {
			s.defaultUnit = unit
		}
	}
}

// PromotionalSeries returns the configured promotional series label.
func (s *PackingCalculatorService) PromotionalSeries() string {
	return s.promoSeries
}

// Calculate runs the full pipeline. Every call re-normalizes all lines, so
// switching the counting unit is always a complete re-derivation.
func (s *PackingCalculatorService) Calculate(input model.PackingInput) model.PackingList {
	unit := input.Unit
	if !unit.Valid() {
		unit = s.defaultUnit
	}

	lines, unresolved := NormalizeLines(input.Lines, input.Catalog, unit)
	groups, palletWeightPerUnit := AllocateWeights(lines, input.Catalog, input.Shipment, s.promoSeries)
	totals := Summarize(lines, groups, input.Shipment)

	return model.PackingList{
		Unit:                unit,
		Lines:               lines,
		Unresolved:          unresolved,
		Groups:              groups,
		PalletWeightPerUnit: palletWeightPerUnit,
		Totals:              totals,
	}
}

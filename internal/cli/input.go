package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/guttosm/packlist-service/internal/domain/dto"
	"github.com/guttosm/packlist-service/internal/domain/model"
	"github.com/guttosm/packlist-service/internal/importer"
	"github.com/guttosm/packlist-service/internal/service"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

var errNoCatalog = errors.New("no catalog: pass --catalog or embed products in the order")

// readOrder decodes a JSON order from path ("-" reads stdin) and validates it
// with the same rules as the HTTP API.
func readOrder(cmd *cobra.Command, path string, v interface{}) error {
	var r io.Reader
	if path == "-" {
		r = cmd.InOrStdin()
	} else {
		f, err := os.Open(path)
		if err != nil {
			return fmt.Errorf("open order: %w", err)
		}
		defer f.Close()
		r = f
	}

	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		return fmt.Errorf("decode order: %w", err)
	}
	if err := dto.Validate(v); err != nil {
		return fmt.Errorf("invalid order: %w", err)
	}
	return nil
}

// readCatalogFile parses an xlsx catalog and logs every skipped row.
func readCatalogFile(path string) (model.Catalog, error) {
	f, err := os.Open(path)
	if err != nil {
		return model.Catalog{}, fmt.Errorf("open catalog: %w", err)
	}
	defer f.Close()

	result, err := importer.ParseCatalog(f)
	if err != nil {
		return model.Catalog{}, fmt.Errorf("parse catalog: %w", err)
	}
	for _, re := range result.RowErrors {
		log.Warn().Int("row", re.Row).Str("column", re.Column).Str("reason", re.Message).Msg("Skipped catalog row")
	}
	return model.NewCatalog(result.Products), nil
}

// resolveCatalog prefers the catalog file over products embedded in the order.
func resolveCatalog(req *dto.PackingRequest, catalogPath string) (model.Catalog, error) {
	switch {
	case catalogPath != "":
		return readCatalogFile(catalogPath)
	case req.HasInlineCatalog():
		return req.InlineCatalog(), nil
	default:
		return model.Catalog{}, errNoCatalog
	}
}

// calculate runs the packing pipeline for req. A non-empty unit overrides the
// order's own unit.
func calculate(opts *rootOptions, req *dto.PackingRequest, catalogPath, unit string) (model.PackingList, error) {
	if unit != "" {
		if _, ok := model.ParseCountingUnit(unit); !ok {
			return model.PackingList{}, fmt.Errorf("unknown unit %q: use case or piece", unit)
		}
		req.Unit = unit
	}

	catalog, err := resolveCatalog(req, catalogPath)
	if err != nil {
		return model.PackingList{}, err
	}

	defaultUnit, ok := model.ParseCountingUnit(opts.cfg.Packing.DefaultUnit)
	if !ok {
		defaultUnit = model.UnitCase
	}
	calculator := service.NewPackingCalculatorService(
		service.WithPromotionalSeries(opts.cfg.Packing.PromoSeries),
		service.WithDefaultUnit(defaultUnit),
	)

	packing := calculator.Calculate(req.ToInput(catalog))
	if len(packing.Unresolved) > 0 {
		log.Warn().Strs("product_ids", service.UnresolvedProductIDs(packing.Unresolved)).
			Msg("order lines reference products missing from the catalog")
	}
	return packing, nil
}

package app

import (
	"fmt"
	"os"

	"github.com/guttosm/packlist-service/config"
	"github.com/guttosm/packlist-service/internal/domain/model"
	"github.com/guttosm/packlist-service/internal/importer"
	"github.com/guttosm/packlist-service/internal/logger"
	"github.com/guttosm/packlist-service/internal/repository"
	"github.com/guttosm/packlist-service/internal/service"
	"github.com/rs/zerolog/log"
)

// ServiceComponents holds service-related components.
type ServiceComponents struct {
	Calculator service.PackingCalculator
	Catalog    service.CatalogService
	// Proformas is nil when MongoDB is disabled.
	Proformas service.ProformaService
}

// InitializeServices builds the business services. Without a database the
// catalog lives in memory, seeded from cfg.Catalog.File when one is set.
func InitializeServices(cfg config.Config, db *DatabaseComponents) (*ServiceComponents, error) {
	calculator := service.NewPackingCalculatorService(
		service.WithPromotionalSeries(cfg.Packing.PromoSeries),
		service.WithDefaultUnit(defaultUnit(cfg.Packing.DefaultUnit)),
	)

	var productRepo repository.ProductRepositoryInterface
	if db != nil {
		productRepo = db.ProductRepo
	} else {
		seed, err := loadCatalogFile(cfg.Catalog.File)
		if err != nil {
			return nil, err
		}
		productRepo = repository.NewMemoryProductRepository(seed)
	}

	catalog := service.NewCatalogService(productRepo, service.WithSnapshotTTL(cfg.Catalog.SnapshotTTL))

	components := &ServiceComponents{
		Calculator: calculator,
		Catalog:    catalog,
	}
	if db != nil {
		components.Proformas = service.NewProformaService(db.ProformaRepo, catalog, calculator)
	}
	return components, nil
}

func defaultUnit(s string) model.CountingUnit {
	unit, ok := model.ParseCountingUnit(s)
	if !ok {
		log.Warn().Str("unit", s).Msg("Unknown default counting unit, using case")
		return model.UnitCase
	}
	return unit
}

// loadCatalogFile reads an xlsx catalog. An empty path yields an empty catalog.
func loadCatalogFile(path string) ([]model.Product, error) {
	if path == "" {
		return nil, nil
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open catalog file: %w", err)
	}
	defer f.Close()

	result, err := importer.ParseCatalog(f)
	if err != nil {
		return nil, fmt.Errorf("parse catalog file %s: %w", path, err)
	}

	l := logger.WithFields(map[string]interface{}{"file": path})
	for _, re := range result.RowErrors {
		l.Warn().Int("row", re.Row).Str("column", re.Column).Str("reason", re.Message).Msg("Skipped catalog row")
	}
	l.Info().Int("products", len(result.Products)).Int("skipped", result.Skipped()).Msg("Loaded catalog file")

	return result.Products, nil
}

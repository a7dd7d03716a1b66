package app

import (
	"sort"

	"github.com/guttosm/packlist-service/config"
	"github.com/guttosm/packlist-service/internal/export"
	"github.com/guttosm/packlist-service/internal/http"
	"github.com/guttosm/packlist-service/internal/middleware"
)

// RouterComponents holds router-related components.
type RouterComponents struct {
	Handlers      http.Handlers
	HealthHandler *http.HealthHandler
	Config        http.RouterConfig
}

// InitializeRouter builds the HTTP handlers and router configuration.
func InitializeRouter(
	services *ServiceComponents,
	dbComponents *DatabaseComponents,
	auditLogger *middleware.AsyncLogger,
	cfg config.Config,
) *RouterComponents {
	company := export.Company{
		Name:    cfg.Export.CompanyName,
		Address: cfg.Export.CompanyAddress,
	}

	handlers := http.Handlers{
		Packing: http.NewPackingHandler(services.Calculator, services.Catalog,
			http.WithCompany(company),
			http.WithDefaultCurrency(cfg.Export.Currency),
		),
		Products: http.NewProductHandler(services.Catalog),
	}
	if services.Proformas != nil {
		handlers.Proformas = http.NewProformaHandler(services.Proformas, company)
	}

	healthHandler := http.NewHealthHandler()
	if dbComponents != nil {
		healthHandler.RegisterChecker("mongodb", http.HealthCheckFunc(dbComponents.DB.HealthCheck))

		names := make([]string, 0, len(dbComponents.CircuitBreakers))
		for name := range dbComponents.CircuitBreakers {
			names = append(names, name)
		}
		sort.Strings(names)
		for _, name := range names {
			healthHandler.RegisterCircuitBreaker(name, dbComponents.CircuitBreakers[name])
		}
	}

	routerCfg := http.RouterConfig{
		RateLimit:         cfg.Server.RateLimit,
		RateWindow:        cfg.Server.RateWindow,
		RequestTimeout:    cfg.Server.RequestTimeout,
		EnableIdempotency: true,
		CORSOrigins:       cfg.Server.CORSOrigins,
		SwaggerUser:       cfg.Server.SwaggerUser,
		SwaggerPass:       cfg.Server.SwaggerPass,
		AuditLogger:       auditLogger,
	}

	return &RouterComponents{
		Handlers:      handlers,
		HealthHandler: healthHandler,
		Config:        routerCfg,
	}
}

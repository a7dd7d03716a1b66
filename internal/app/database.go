package app

import (
	"context"
	"time"

	"github.com/guttosm/packlist-service/config"
	"github.com/guttosm/packlist-service/internal/circuitbreaker"
	"github.com/guttosm/packlist-service/internal/metrics"
	"github.com/guttosm/packlist-service/internal/repository"
	"github.com/guttosm/packlist-service/internal/service"
	"github.com/rs/zerolog/log"
)

const (
	breakerProducts  = "mongodb_products"
	breakerProformas = "mongodb_proformas"
	breakerLogs      = "mongodb_logs"
)

// DatabaseComponents holds database-related components.
type DatabaseComponents struct {
	DB              *repository.MongoDB
	ProductRepo     repository.ProductRepositoryInterface
	ProformaRepo    repository.ProformaRepositoryInterface
	LoggingService  service.LoggingService
	CircuitBreakers map[string]*circuitbreaker.CircuitBreaker
}

// InitializeDatabase connects to MongoDB and builds the breaker-wrapped repositories.
// Returns nil if the database is disabled or the connection fails.
func InitializeDatabase(cfg config.DatabaseConfig) *DatabaseComponents {
	if !cfg.Enabled {
		return nil
	}

	db, err := repository.NewMongoDB(cfg.URI, cfg.DatabaseName)
	if err != nil {
		log.Error().Err(err).Msg("Failed to connect to MongoDB - continuing without database")
		return nil
	}

	log.Info().Str("database", cfg.DatabaseName).Msg("Connected to MongoDB")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	ttlDays := int(cfg.LogsTTL.Hours() / 24)
	if ttlDays > 0 {
		if err := db.SetLogsTTL(ctx, ttlDays); err != nil {
			log.Warn().Err(err).Msg("Failed to set logs TTL index (may already exist)")
		}
	}

	productRepo := repository.NewProductRepositoryWithCircuitBreaker(
		repository.NewProductRepository(db), newCircuitBreaker(cfg, breakerProducts))
	proformaRepo := repository.NewProformaRepositoryWithCircuitBreaker(
		repository.NewProformaRepository(db), newCircuitBreaker(cfg, breakerProformas))
	logsRepo := repository.NewLogsRepositoryWithCircuitBreaker(
		repository.NewLogsRepository(db), newCircuitBreaker(cfg, breakerLogs))

	return &DatabaseComponents{
		DB:             db,
		ProductRepo:    productRepo,
		ProformaRepo:   proformaRepo,
		LoggingService: service.NewLoggingService(logsRepo),
		CircuitBreakers: map[string]*circuitbreaker.CircuitBreaker{
			breakerProducts:  productRepo.GetCircuitBreaker(),
			breakerProformas: proformaRepo.GetCircuitBreaker(),
			breakerLogs:      logsRepo.GetCircuitBreaker(),
		},
	}
}

// newCircuitBreaker builds a breaker that ignores not-found and duplicate
// errors and mirrors its state into the metrics gauge.
func newCircuitBreaker(cfg config.DatabaseConfig, name string) *circuitbreaker.CircuitBreaker {
	metrics.SetCircuitBreakerState(name, int(circuitbreaker.StateClosed))
	bc := circuitbreaker.DefaultConfig()
	bc.Name = name
	if cfg.CircuitBreakerFailureThreshold > 0 {
		bc.FailureThreshold = cfg.CircuitBreakerFailureThreshold
	}
	if cfg.CircuitBreakerSuccessThreshold > 0 {
		bc.SuccessThreshold = cfg.CircuitBreakerSuccessThreshold
	}
	if cfg.CircuitBreakerTimeout > 0 {
		bc.Timeout = cfg.CircuitBreakerTimeout
	}
	bc.IsSuccessful = repository.IsExpectedError
	bc.OnStateChange = func(name string, _, to circuitbreaker.State) {
		metrics.SetCircuitBreakerState(name, int(to))
	}
	return circuitbreaker.New(bc)
}

// Close disconnects from MongoDB.
func (d *DatabaseComponents) Close(ctx context.Context) error {
	if d == nil || d.DB == nil {
		return nil
	}
	return d.DB.Close(ctx)
}

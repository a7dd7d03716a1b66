package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/guttosm/packlist-service/internal/domain/model"
	"github.com/guttosm/packlist-service/internal/logger"
	"github.com/guttosm/packlist-service/internal/repository"
	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"
)

// DefaultProformaListLimit caps List when no limit is given.
const DefaultProformaListLimit = 50

// ProformaPacking is a stored proforma together with its derived packing list.
type ProformaPacking struct {
	Proforma model.Proforma   `json:"proforma"`
	Packing  model.PackingList `json:"packing"`
}

// ProformaService manages stored proformas and derives their packing lists.
type ProformaService interface {
	List(ctx context.Context, limit int) ([]model.Proforma, error)
	Get(ctx context.Context, id string) (*model.Proforma, error)
	Create(ctx context.Context, proforma model.Proforma) (*model.Proforma, error)
	Update(ctx context.Context, proforma model.Proforma) (*model.Proforma, error)
	Delete(ctx context.Context, id string) error
	PackingList(ctx context.Context, id string) (*ProformaPacking, error)
}

// ProformaServiceImpl implements ProformaService.
type ProformaServiceImpl struct {
	repo       repository.ProformaRepositoryInterface
	catalog    CatalogService
	calculator PackingCalculator
	now        func() time.Time
}

// NewProformaService creates a proforma service.
func NewProformaService(repo repository.ProformaRepositoryInterface, catalog CatalogService, calculator PackingCalculator) *ProformaServiceImpl {
	return &ProformaServiceImpl{
		repo:       repo,
		catalog:    catalog,
		calculator: calculator,
		now:        func() time.Time { return time.Now().UTC() },
	}
}

func (s *ProformaServiceImpl) List(ctx context.Context, limit int) ([]model.Proforma, error) {
	if s.repo == nil {
		return nil, ErrRepositoryNotConfigured
	}
	if limit <= 0 {
		limit = DefaultProformaListLimit
	}
	return s.repo.List(ctx, limit)
}

func (s *ProformaServiceImpl) Get(ctx context.Context, id string) (*model.Proforma, error) {
	if s.repo == nil {
		return nil, ErrRepositoryNotConfigured
	}
	return s.repo.Get(ctx, id)
}

// Create stores a new proforma with prices struck from the current catalog.
func (s *ProformaServiceImpl) Create(ctx context.Context, proforma model.Proforma) (*model.Proforma, error) {
	if s.repo == nil {
		return nil, ErrRepositoryNotConfigured
	}

	now := s.now()
	proforma.ID = uuid.NewString()
	proforma.CreatedAt = now
	proforma.UpdatedAt = now
	if proforma.Date.IsZero() {
		proforma.Date = now.Truncate(24 * time.Hour)
	}

	if err := s.strikePrices(ctx, &proforma); err != nil {
		return nil, err
	}
	if err := s.repo.Create(ctx, &proforma); err != nil {
		return nil, err
	}
	return &proforma, nil
}

// Update replaces a stored proforma. CreatedAt is kept from the stored copy.
func (s *ProformaServiceImpl) Update(ctx context.Context, proforma model.Proforma) (*model.Proforma, error) {
	if s.repo == nil {
		return nil, ErrRepositoryNotConfigured
	}

	current, err := s.repo.Get(ctx, proforma.ID)
	if err != nil {
		return nil, err
	}
	proforma.CreatedAt = current.CreatedAt
	proforma.UpdatedAt = s.now()
	if proforma.Date.IsZero() {
		proforma.Date = current.Date
	}

	if err := s.strikePrices(ctx, &proforma); err != nil {
		return nil, err
	}
	if err := s.repo.Update(ctx, &proforma); err != nil {
		return nil, err
	}
	return &proforma, nil
}

func (s *ProformaServiceImpl) Delete(ctx context.Context, id string) error {
	if s.repo == nil {
		return ErrRepositoryNotConfigured
	}
	return s.repo.Delete(ctx, id)
}

// PackingList loads the proforma and the catalog snapshot concurrently and
// derives the packing list from both.
func (s *ProformaServiceImpl) PackingList(ctx context.Context, id string) (*ProformaPacking, error) {
	if s.repo == nil {
		return nil, ErrRepositoryNotConfigured
	}

	var (
		proforma *model.Proforma
		catalog  model.Catalog
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		proforma, err = s.repo.Get(gctx, id)
		return err
	})
	g.Go(func() error {
		var err error
		catalog, err = s.catalog.Snapshot(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	packing := s.calculator.Calculate(proforma.PackingInput(catalog))
	if len(packing.Unresolved) > 0 {
		logger.FromContext(ctx).Warn().
			Str("proforma_id", id).
			Strs("product_ids", UnresolvedProductIDs(packing.Unresolved)).
			Msg("proforma references products missing from the catalog")
	}

	return &ProformaPacking{Proforma: *proforma, Packing: packing}, nil
}

// strikePrices fills unit, unit price and total of each line from the catalog.
// Lines whose product is unknown keep a zero price.
func (s *ProformaServiceImpl) strikePrices(ctx context.Context, p *model.Proforma) error {
	p.Currency = strings.ToUpper(strings.TrimSpace(p.Currency))

	catalog, err := s.catalog.Snapshot(ctx)
	if err != nil {
		return fmt.Errorf("strike proforma prices: %w", err)
	}

	packing := s.calculator.Calculate(p.PackingInput(catalog))
	p.Unit = packing.Unit

	lines := make([]model.OrderLine, len(p.Lines))
	for i, l := range p.Lines {
		lines[i] = model.OrderLine{
			ProductID: l.ProductID,
			Quantity:  l.Quantity,
			Unit:      packing.Unit,
			UnitPrice: decimal.Zero,
			Total:     decimal.Zero,
		}
	}
	p.Lines = lines
	for _, line := range packing.Lines {
		p.Lines[line.Index].UnitPrice = line.UnitPrice
		p.Lines[line.Index].Total = line.Total
	}
	return nil
}

// UnresolvedProductIDs lists the distinct product IDs of unresolved lines in order.
func UnresolvedProductIDs(lines []model.UnresolvedLine) []string {
	ids := make([]string, 0, len(lines))
	for _, l := range lines {
		if !containsString(ids, l.ProductID) {
			ids = append(ids, l.ProductID)
		}
	}
	return ids
}

package spare_part

import (
	"context"
	"fmt"
	"time"

	"taller/internal/core/numerator"
	"taller/internal/domain"
)

// Service provides business logic for the SparePart catalog.
// Stock quantities are owned by the inventory domain; this service only
// exposes reads and catalog maintenance.
type Service struct {
	*domain.CatalogService[*SparePart]
	repo      Repository
	numerator numerator.Generator
}

// NewService creates a new SparePart catalog service.
func NewService(repo Repository, gen numerator.Generator) *Service {
	base := domain.NewCatalogService(domain.CatalogServiceConfig[*SparePart]{
		Repo:       repo,
		EntityName: "spare part",
	})

	svc := &Service{
		CatalogService: base,
		repo:           repo,
		numerator:      gen,
	}

	base.Hooks().OnBeforeCreate(svc.prepareForCreate)

	return svc
}

func (s *Service) prepareForCreate(ctx context.Context, p *SparePart) error {
	if p.Code == "" {
		code, err := s.numerator.GetNextNumber(ctx, numerator.DefaultConfig("REP"), nil, time.Now())
		if err != nil {
			return fmt.Errorf("generate code: %w", err)
		}
		p.Code = code
	}
	return nil
}

// FindLowStock retrieves parts with stock at or below minimum.
func (s *Service) FindLowStock(ctx context.Context, filter domain.ListFilter) (domain.ListResult[*SparePart], error) {
	return s.repo.FindLowStock(ctx, filter)
}

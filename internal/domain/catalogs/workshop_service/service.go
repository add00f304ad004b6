package workshop_service

import (
	"context"
	"fmt"
	"time"

	"taller/internal/core/numerator"
	"taller/internal/domain"
)

// Service provides business logic for the WorkshopService catalog.
type Service struct {
	*domain.CatalogService[*WorkshopService]
	repo      Repository
	numerator numerator.Generator
}

// NewService creates a new WorkshopService catalog service.
func NewService(repo Repository, gen numerator.Generator) *Service {
	base := domain.NewCatalogService(domain.CatalogServiceConfig[*WorkshopService]{
		Repo:       repo,
		EntityName: "service",
	})

	svc := &Service{
		CatalogService: base,
		repo:           repo,
		numerator:      gen,
	}

	base.Hooks().OnBeforeCreate(svc.prepareForCreate)

	return svc
}

func (s *Service) prepareForCreate(ctx context.Context, w *WorkshopService) error {
	if w.Code == "" {
		code, err := s.numerator.GetNextNumber(ctx, numerator.DefaultConfig("SRV"), nil, time.Now())
		if err != nil {
			return fmt.Errorf("generate code: %w", err)
		}
		w.Code = code
	}
	return nil
}

// FindActive retrieves active services for selection lists.
func (s *Service) FindActive(ctx context.Context, filter domain.ListFilter) (domain.ListResult[*WorkshopService], error) {
	return s.repo.FindActive(ctx, filter)
}

package employee

import (
	"context"
	"fmt"
	"time"

	"taller/internal/core/numerator"
	"taller/internal/domain"
)

// Service provides business logic for the Employee catalog.
type Service struct {
	*domain.CatalogService[*Employee]
	numerator numerator.Generator
}

// NewService creates a new Employee service.
func NewService(repo Repository, gen numerator.Generator) *Service {
	base := domain.NewCatalogService(domain.CatalogServiceConfig[*Employee]{
		Repo:       repo,
		EntityName: "employee",
	})

	svc := &Service{
		CatalogService: base,
		numerator:      gen,
	}

	base.Hooks().OnBeforeCreate(svc.prepareForCreate)

	return svc
}

func (s *Service) prepareForCreate(ctx context.Context, e *Employee) error {
	if e.Code == "" {
		code, err := s.numerator.GetNextNumber(ctx, numerator.DefaultConfig("EMP"), nil, time.Now())
		if err != nil {
			return fmt.Errorf("generate code: %w", err)
		}
		e.Code = code
	}
	return nil
}

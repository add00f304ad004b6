package payment_method

import (
	"context"
	"fmt"
	"time"

	"taller/internal/core/numerator"
	"taller/internal/domain"
)

// Service provides business logic for the PaymentMethod catalog.
type Service struct {
	*domain.CatalogService[*PaymentMethod]
	numerator numerator.Generator
}

// NewService creates a new PaymentMethod service.
func NewService(repo Repository, gen numerator.Generator) *Service {
	base := domain.NewCatalogService(domain.CatalogServiceConfig[*PaymentMethod]{
		Repo:       repo,
		EntityName: "payment method",
	})

	svc := &Service{
		CatalogService: base,
		numerator:      gen,
	}

	base.Hooks().OnBeforeCreate(svc.prepareForCreate)

	return svc
}

func (s *Service) prepareForCreate(ctx context.Context, m *PaymentMethod) error {
	if m.Code == "" {
		code, err := s.numerator.GetNextNumber(ctx, numerator.DefaultConfig("FP"), nil, time.Now())
		if err != nil {
			return fmt.Errorf("generate code: %w", err)
		}
		m.Code = code
	}
	return nil
}

package client

import (
	"context"
	"fmt"
	"time"

	"taller/internal/core/apperror"
	"taller/internal/core/id"
	"taller/internal/core/numerator"
	"taller/internal/domain"
)

// Service provides business logic for the Client catalog.
// Uses composition with domain.CatalogService for common CRUD operations.
type Service struct {
	*domain.CatalogService[*Client]
	repo      Repository
	numerator numerator.Generator
}

// NewService creates a new Client service.
func NewService(repo Repository, gen numerator.Generator) *Service {
	base := domain.NewCatalogService(domain.CatalogServiceConfig[*Client]{
		Repo:       repo,
		EntityName: "client",
	})

	svc := &Service{
		CatalogService: base,
		repo:           repo,
		numerator:      gen,
	}

	base.Hooks().OnBeforeCreate(svc.prepareForCreate)
	base.Hooks().OnBeforeUpdate(svc.checkNITUnique)

	return svc
}

func (s *Service) prepareForCreate(ctx context.Context, c *Client) error {
	if c.Code == "" {
		code, err := s.numerator.GetNextNumber(ctx, numerator.DefaultConfig("CLI"), nil, time.Now())
		if err != nil {
			return fmt.Errorf("generate code: %w", err)
		}
		c.Code = code
	}

	return s.checkNITUnique(ctx, c)
}

func (s *Service) checkNITUnique(ctx context.Context, c *Client) error {
	if c.NIT == nil || *c.NIT == "" {
		return nil
	}
	if exists, _ := s.nitExists(ctx, *c.NIT, c.ID); exists {
		return apperror.NewDuplicate("client", "nit", *c.NIT)
	}
	return nil
}

func (s *Service) nitExists(ctx context.Context, nit string, excludeID id.ID) (bool, error) {
	existing, err := s.repo.FindByNIT(ctx, nit)
	if err != nil {
		return false, nil
	}
	return existing.ID != excludeID, nil
}

// FindByNIT retrieves a client by tax identification number.
func (s *Service) FindByNIT(ctx context.Context, nit string) (*Client, error) {
	return s.repo.FindByNIT(ctx, nit)
}

package vehicle

import (
	"context"
	"fmt"
	"strings"
	"time"

	"taller/internal/core/apperror"
	"taller/internal/core/id"
	"taller/internal/core/numerator"
	"taller/internal/domain"
)

// Service provides business logic for the Vehicle catalog.
type Service struct {
	*domain.CatalogService[*Vehicle]
	repo      Repository
	numerator numerator.Generator
}

// NewService creates a new Vehicle service.
func NewService(repo Repository, gen numerator.Generator) *Service {
	base := domain.NewCatalogService(domain.CatalogServiceConfig[*Vehicle]{
		Repo:       repo,
		EntityName: "vehicle",
	})

	svc := &Service{
		CatalogService: base,
		repo:           repo,
		numerator:      gen,
	}

	base.Hooks().OnBeforeCreate(svc.prepareForCreate)
	base.Hooks().OnBeforeUpdate(svc.checkPlateUnique)

	return svc
}

func (s *Service) prepareForCreate(ctx context.Context, v *Vehicle) error {
	v.Plate = strings.ToUpper(strings.TrimSpace(v.Plate))

	if v.Code == "" {
		code, err := s.numerator.GetNextNumber(ctx, numerator.DefaultConfig("VEH"), nil, time.Now())
		if err != nil {
			return fmt.Errorf("generate code: %w", err)
		}
		v.Code = code
	}

	return s.checkPlateUnique(ctx, v)
}

func (s *Service) checkPlateUnique(ctx context.Context, v *Vehicle) error {
	if exists, _ := s.plateExists(ctx, v.Plate, v.ID); exists {
		return apperror.NewDuplicate("vehicle", "placa", v.Plate)
	}
	return nil
}

func (s *Service) plateExists(ctx context.Context, plate string, excludeID id.ID) (bool, error) {
	existing, err := s.repo.FindByPlate(ctx, plate)
	if err != nil {
		return false, nil
	}
	return existing.ID != excludeID, nil
}

// FindByPlate retrieves a vehicle by license plate.
func (s *Service) FindByPlate(ctx context.Context, plate string) (*Vehicle, error) {
	return s.repo.FindByPlate(ctx, strings.ToUpper(strings.TrimSpace(plate)))
}

// FindByClient retrieves all vehicles of a client.
func (s *Service) FindByClient(ctx context.Context, clientID id.ID, filter domain.ListFilter) (domain.ListResult[*Vehicle], error) {
	return s.repo.FindByClient(ctx, clientID, filter)
}

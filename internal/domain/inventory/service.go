package inventory

import (
	"context"
	"fmt"
	"time"

	"taller/internal/core/apperror"
	"taller/internal/core/id"
	"taller/internal/core/numerator"
	"taller/internal/core/tx"
	"taller/internal/domain"
	"taller/internal/domain/catalogs/spare_part"
	"taller/pkg/logger"
)

// NumberPrefix is the movement number prefix (MOV-2026-00001).
const NumberPrefix = "MOV"

// Service applies stock movements to spare parts.
type Service struct {
	repo      Repository
	parts     spare_part.Repository
	numerator numerator.Generator
	txManager tx.Manager // Optional. If nil, obtained from context.
}

// NewService creates a new inventory service.
func NewService(repo Repository, parts spare_part.Repository, gen numerator.Generator, txManager tx.Manager) *Service {
	return &Service{
		repo:      repo,
		parts:     parts,
		numerator: gen,
		txManager: txManager,
	}
}

func (s *Service) getTxManager(ctx context.Context) (tx.Manager, error) {
	if s.txManager != nil {
		return s.txManager, nil
	}
	return tx.GetManager(ctx)
}

// Register validates and applies a movement atomically: the part row is
// locked, the stock snapshots are computed, the part stock is updated and
// the movement is inserted in one transaction. An outgoing movement that
// would drive stock negative is rejected.
func (s *Service) Register(ctx context.Context, m *Movement) error {
	if err := m.Validate(ctx); err != nil {
		return err
	}

	if m.Number == "" {
		cfg := numerator.DefaultConfig(NumberPrefix)
		number, err := s.numerator.GetNextNumber(ctx, cfg, &numerator.Options{Strategy: numerator.StrategyCached}, time.Now())
		if err != nil {
			return fmt.Errorf("generate number: %w", err)
		}
		m.Number = number
	}

	txm, err := s.getTxManager(ctx)
	if err != nil {
		return apperror.NewInternal(err).WithDetail("missing", "tx_manager")
	}

	err = txm.RunInTransaction(ctx, func(ctx context.Context) error {
		part, err := s.parts.GetForUpdate(ctx, m.PartID)
		if err != nil {
			return err
		}

		newStock := m.Apply(part.Stock)
		if newStock.IsNegative() {
			return apperror.NewInsufficientStock(
				part.ID.String(),
				m.Quantity.String(),
				part.Stock.String(),
			)
		}

		if err := s.parts.UpdateStock(ctx, part.ID, newStock); err != nil {
			return fmt.Errorf("update stock: %w", err)
		}
		if err := s.repo.Create(ctx, m); err != nil {
			return fmt.Errorf("create movement: %w", err)
		}
		return nil
	})
	if err != nil {
		return err
	}

	logger.Info(ctx, "stock movement registered",
		"number", m.Number,
		"part_id", m.PartID,
		"type", string(m.Type),
		"stock_after", m.StockAfter)

	return nil
}

// GetByID retrieves a movement.
func (s *Service) GetByID(ctx context.Context, movID id.ID) (*Movement, error) {
	return s.repo.GetByID(ctx, movID)
}

// List retrieves movements with filtering.
func (s *Service) List(ctx context.Context, filter ListFilter) (domain.ListResult[*Movement], error) {
	return s.repo.List(ctx, filter)
}

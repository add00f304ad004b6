// Package quotation provides the Quotation document service.
package quotation

import (
	"context"
	"fmt"
	"time"

	"taller/internal/core/apperror"
	"taller/internal/core/id"
	"taller/internal/core/numerator"
	"taller/internal/core/tx"
	"taller/internal/domain"
	"taller/pkg/logger"
)

// Service provides business operations for quotation documents.
type Service struct {
	repo      Repository
	numerator numerator.Generator
	txManager tx.Manager // Optional. If nil, obtained from context.
	hooks     *domain.HookRegistry[*Quotation]
}

// NewService creates a new quotation service.
func NewService(repo Repository, gen numerator.Generator, txManager tx.Manager) *Service {
	return &Service{
		repo:      repo,
		numerator: gen,
		txManager: txManager,
		hooks:     domain.NewHookRegistry[*Quotation](),
	}
}

// Hooks returns the hook registry for registering callbacks.
func (s *Service) Hooks() *domain.HookRegistry[*Quotation] {
	return s.hooks
}

func (s *Service) getTxManager(ctx context.Context) (tx.Manager, error) {
	if s.txManager != nil {
		return s.txManager, nil
	}
	return tx.GetManager(ctx)
}

// Create creates a new quotation. Totals sent by the caller are discarded
// and recalculated from lines and rates.
func (s *Service) Create(ctx context.Context, doc *Quotation) error {
	if err := s.hooks.RunBeforeCreate(ctx, doc); err != nil {
		return err
	}

	if doc.Status == "" {
		doc.Status = StatusPending
	}
	doc.RecalculateTotals()

	if err := doc.Validate(ctx); err != nil {
		return err
	}

	if doc.Number == "" {
		cfg := numerator.DefaultConfig(NumberPrefix)
		number, err := s.numerator.GetNextNumber(ctx, cfg, &numerator.Options{Strategy: NumeratorStrategy}, time.Now())
		if err != nil {
			return fmt.Errorf("generate number: %w", err)
		}
		doc.Number = number
	}

	txm, err := s.getTxManager(ctx)
	if err != nil {
		return apperror.NewInternal(err).WithDetail("missing", "tx_manager")
	}
	err = txm.RunInTransaction(ctx, func(ctx context.Context) error {
		if err := s.repo.Create(ctx, doc); err != nil {
			return fmt.Errorf("create document: %w", err)
		}
		if err := s.repo.SaveLines(ctx, doc.ID, doc.Lines); err != nil {
			return fmt.Errorf("save lines: %w", err)
		}
		return nil
	})
	if err != nil {
		return err
	}

	if err := s.hooks.RunAfterCreate(ctx, doc); err != nil {
		logger.Warn(ctx, "after-create hook failed", "error", err)
	}

	logger.Info(ctx, "quotation created",
		"id", doc.ID,
		"number", doc.Number)

	return nil
}

// GetByID retrieves a quotation with lines.
func (s *Service) GetByID(ctx context.Context, docID id.ID) (*Quotation, error) {
	doc, err := s.repo.GetByID(ctx, docID)
	if err != nil {
		return nil, err
	}

	lines, err := s.repo.GetLines(ctx, docID)
	if err != nil {
		return nil, fmt.Errorf("get lines: %w", err)
	}
	doc.Lines = lines

	return doc, nil
}

// Update updates a quotation. Totals are recalculated before persistence.
func (s *Service) Update(ctx context.Context, doc *Quotation) error {
	if err := s.hooks.RunBeforeUpdate(ctx, doc); err != nil {
		return err
	}

	doc.RecalculateTotals()

	if err := doc.Validate(ctx); err != nil {
		return err
	}

	txm, err := s.getTxManager(ctx)
	if err != nil {
		return apperror.NewInternal(err).WithDetail("missing", "tx_manager")
	}
	err = txm.RunInTransaction(ctx, func(ctx context.Context) error {
		if err := s.repo.Update(ctx, doc); err != nil {
			return fmt.Errorf("update document: %w", err)
		}
		if err := s.repo.SaveLines(ctx, doc.ID, doc.Lines); err != nil {
			return fmt.Errorf("save lines: %w", err)
		}
		return nil
	})
	if err != nil {
		return err
	}

	if err := s.hooks.RunAfterUpdate(ctx, doc); err != nil {
		logger.Warn(ctx, "after-update hook failed", "error", err)
	}

	return nil
}

// ChangeStatus moves a quotation to newStatus and persists the whole
// document. Changing to the current status is a no-op: the stored document
// is returned untouched. Any transition between distinct states is allowed.
func (s *Service) ChangeStatus(ctx context.Context, docID id.ID, newStatus Status) (*Quotation, error) {
	if !newStatus.IsValid() {
		return nil, apperror.NewInvalidStatus("quotation", string(newStatus))
	}

	doc, err := s.GetByID(ctx, docID)
	if err != nil {
		return nil, err
	}

	if doc.Status == newStatus {
		return doc, nil
	}

	doc.Status = newStatus
	doc.Touch()

	if err := s.Update(ctx, doc); err != nil {
		return nil, err
	}

	logger.Info(ctx, "quotation status changed",
		"id", doc.ID,
		"status", string(newStatus))

	return doc, nil
}

// Delete soft-deletes a quotation.
func (s *Service) Delete(ctx context.Context, docID id.ID) error {
	doc, err := s.repo.GetByID(ctx, docID)
	if err != nil {
		return err
	}

	if err := s.hooks.RunBeforeDelete(ctx, doc); err != nil {
		return err
	}

	if err := s.repo.Delete(ctx, docID); err != nil {
		return err
	}

	if err := s.hooks.RunAfterDelete(ctx, doc); err != nil {
		logger.Warn(ctx, "after-delete hook failed", "error", err)
	}
	return nil
}

// List retrieves quotations with filtering.
func (s *Service) List(ctx context.Context, filter ListFilter) (domain.ListResult[*Quotation], error) {
	return s.repo.List(ctx, filter)
}

// Package invoice provides the Invoice document service.
package invoice

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

// Service provides business operations for invoice documents.
type Service struct {
	repo      Repository
	numerator numerator.Generator
	txManager tx.Manager // Optional. If nil, obtained from context.
	hooks     *domain.HookRegistry[*Invoice]
}

// NewService creates a new invoice service.
func NewService(repo Repository, gen numerator.Generator, txManager tx.Manager) *Service {
	return &Service{
		repo:      repo,
		numerator: gen,
		txManager: txManager,
		hooks:     domain.NewHookRegistry[*Invoice](),
	}
}

// Hooks returns the hook registry for registering callbacks.
func (s *Service) Hooks() *domain.HookRegistry[*Invoice] {
	return s.hooks
}

func (s *Service) getTxManager(ctx context.Context) (tx.Manager, error) {
	if s.txManager != nil {
		return s.txManager, nil
	}
	return tx.GetManager(ctx)
}

// Create creates a new invoice. Totals sent by the caller are discarded
// and recalculated from lines and rates.
func (s *Service) Create(ctx context.Context, doc *Invoice) error {
	if err := s.hooks.RunBeforeCreate(ctx, doc); err != nil {
		return err
	}

	if doc.PaymentStatus == "" {
		doc.PaymentStatus = PaymentPending
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

	logger.Info(ctx, "invoice created",
		"id", doc.ID,
		"number", doc.Number)

	return nil
}

// GetByID retrieves an invoice with lines.
func (s *Service) GetByID(ctx context.Context, docID id.ID) (*Invoice, error) {
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

// Update updates an invoice. Totals are recalculated before persistence.
// Voided invoices cannot be updated.
func (s *Service) Update(ctx context.Context, doc *Invoice) error {
	if err := s.hooks.RunBeforeUpdate(ctx, doc); err != nil {
		return err
	}

	stored, err := s.repo.GetByID(ctx, doc.ID)
	if err != nil {
		return err
	}
	if err := stored.CanModify(); err != nil {
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

// ChangeStatus moves an invoice to newStatus and persists the whole
// document. Changing to the current status is a no-op. Any transition
// between distinct states is allowed, including voiding a paid invoice.
func (s *Service) ChangeStatus(ctx context.Context, docID id.ID, newStatus PaymentStatus) (*Invoice, error) {
	if !newStatus.IsValid() {
		return nil, apperror.NewInvalidStatus("invoice", string(newStatus))
	}

	doc, err := s.GetByID(ctx, docID)
	if err != nil {
		return nil, err
	}

	if doc.PaymentStatus == newStatus {
		return doc, nil
	}

	doc.PaymentStatus = newStatus
	doc.Touch()

	doc.RecalculateTotals()
	if err := doc.Validate(ctx); err != nil {
		return nil, err
	}

	txm, err := s.getTxManager(ctx)
	if err != nil {
		return nil, apperror.NewInternal(err).WithDetail("missing", "tx_manager")
	}
	err = txm.RunInTransaction(ctx, func(ctx context.Context) error {
		if err := s.repo.Update(ctx, doc); err != nil {
			return fmt.Errorf("update document: %w", err)
		}
		return s.repo.SaveLines(ctx, doc.ID, doc.Lines)
	})
	if err != nil {
		return nil, err
	}

	logger.Info(ctx, "invoice status changed",
		"id", doc.ID,
		"status", string(newStatus))

	return doc, nil
}

// MarkPaid is the shorthand for moving an invoice to the paid state,
// optionally stamping the payment method snapshot. A voided invoice
// cannot be marked paid.
func (s *Service) MarkPaid(ctx context.Context, docID id.ID, paymentMethod string) (*Invoice, error) {
	doc, err := s.GetByID(ctx, docID)
	if err != nil {
		return nil, err
	}

	if doc.PaymentStatus == PaymentVoid {
		return nil, apperror.NewBusinessRule(
			apperror.CodeInvalidStatus,
			"cannot mark a voided invoice as paid",
		).WithDetail("invoice_id", docID.String())
	}

	if doc.PaymentStatus == PaymentPaid && (paymentMethod == "" || paymentMethod == doc.PaymentMethod) {
		return doc, nil
	}

	doc.PaymentStatus = PaymentPaid
	if paymentMethod != "" {
		doc.PaymentMethod = paymentMethod
	}
	doc.Touch()

	doc.RecalculateTotals()
	if err := doc.Validate(ctx); err != nil {
		return nil, err
	}

	txm, err := s.getTxManager(ctx)
	if err != nil {
		return nil, apperror.NewInternal(err).WithDetail("missing", "tx_manager")
	}
	err = txm.RunInTransaction(ctx, func(ctx context.Context) error {
		if err := s.repo.Update(ctx, doc); err != nil {
			return fmt.Errorf("update document: %w", err)
		}
		return s.repo.SaveLines(ctx, doc.ID, doc.Lines)
	})
	if err != nil {
		return nil, err
	}

	logger.Info(ctx, "invoice marked paid",
		"id", doc.ID,
		"payment_method", doc.PaymentMethod)

	return doc, nil
}

// Delete soft-deletes an invoice.
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

// List retrieves invoices with filtering.
func (s *Service) List(ctx context.Context, filter ListFilter) (domain.ListResult[*Invoice], error) {
	return s.repo.List(ctx, filter)
}

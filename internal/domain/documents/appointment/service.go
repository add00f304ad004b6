// Package appointment provides the Appointment document service.
package appointment

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

// NumberPrefix is the document number prefix (CIT-2026-00001).
const NumberPrefix = "CIT"

// Service provides business operations for appointments.
type Service struct {
	repo      Repository
	numerator numerator.Generator
	txManager tx.Manager // Optional. If nil, obtained from context.
}

// NewService creates a new appointment service.
func NewService(repo Repository, gen numerator.Generator, txManager tx.Manager) *Service {
	return &Service{
		repo:      repo,
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

// Create creates a new appointment.
func (s *Service) Create(ctx context.Context, doc *Appointment) error {
	if doc.Status == "" {
		doc.Status = StatusScheduled
	}

	if err := doc.Validate(ctx); err != nil {
		return err
	}

	if doc.Number == "" {
		cfg := numerator.DefaultConfig(NumberPrefix)
		number, err := s.numerator.GetNextNumber(ctx, cfg, &numerator.Options{Strategy: numerator.StrategyCached}, time.Now())
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
		return s.repo.Create(ctx, doc)
	})
	if err != nil {
		return err
	}

	logger.Info(ctx, "appointment created",
		"id", doc.ID,
		"number", doc.Number,
		"scheduled_at", doc.ScheduledAt)

	return nil
}

// GetByID retrieves an appointment.
func (s *Service) GetByID(ctx context.Context, docID id.ID) (*Appointment, error) {
	return s.repo.GetByID(ctx, docID)
}

// Update updates an appointment.
func (s *Service) Update(ctx context.Context, doc *Appointment) error {
	if err := doc.Validate(ctx); err != nil {
		return err
	}

	txm, err := s.getTxManager(ctx)
	if err != nil {
		return apperror.NewInternal(err).WithDetail("missing", "tx_manager")
	}
	return txm.RunInTransaction(ctx, func(ctx context.Context) error {
		return s.repo.Update(ctx, doc)
	})
}

// ChangeStatus moves an appointment to newStatus and persists the whole
// document. Changing to the current status is a no-op.
func (s *Service) ChangeStatus(ctx context.Context, docID id.ID, newStatus Status) (*Appointment, error) {
	if !newStatus.IsValid() {
		return nil, apperror.NewInvalidStatus("appointment", string(newStatus))
	}

	doc, err := s.repo.GetByID(ctx, docID)
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

	return doc, nil
}

// Delete soft-deletes an appointment.
func (s *Service) Delete(ctx context.Context, docID id.ID) error {
	return s.repo.Delete(ctx, docID)
}

// List retrieves appointments with filtering.
func (s *Service) List(ctx context.Context, filter ListFilter) (domain.ListResult[*Appointment], error) {
	return s.repo.List(ctx, filter)
}

// FindOverlapping returns non-cancelled appointments in a time window.
func (s *Service) FindOverlapping(ctx context.Context, from, to time.Time) ([]*Appointment, error) {
	return s.repo.FindOverlapping(ctx, from, to)
}

// Package appointment provides the Appointment document (cita): a scheduled
// visit of a client's vehicle to the workshop.
package appointment

import (
	"context"
	"time"

	"taller/internal/core/apperror"
	"taller/internal/core/entity"
	"taller/internal/core/id"
)

// Status is the appointment lifecycle state.
type Status string

const (
	StatusScheduled  Status = "programada"
	StatusConfirmed  Status = "confirmada"
	StatusInProgress Status = "en_proceso"
	StatusCompleted  Status = "completada"
	StatusCancelled  Status = "cancelada"
)

// IsValid reports whether the status is a known value.
func (s Status) IsValid() bool {
	switch s {
	case StatusScheduled, StatusConfirmed, StatusInProgress, StatusCompleted, StatusCancelled:
		return true
	}
	return false
}

// Appointment represents a scheduled workshop visit.
type Appointment struct {
	entity.Document

	// ClientID is the visiting client (required)
	ClientID id.ID `db:"client_id" json:"id_cliente"`

	// VehicleID is the optional vehicle being brought in
	VehicleID *id.ID `db:"vehicle_id" json:"id_vehiculo,omitempty"`

	// ScheduledAt is the agreed date and time
	ScheduledAt time.Time `db:"scheduled_at" json:"fecha_cita"`

	// Reason is the stated purpose of the visit
	Reason string `db:"reason" json:"motivo"`

	// Status is the lifecycle state
	Status Status `db:"status" json:"estado"`
}

// NewAppointment creates a new scheduled appointment.
func NewAppointment(clientID id.ID, scheduledAt time.Time, reason string) *Appointment {
	return &Appointment{
		Document:    entity.NewDocument(),
		ClientID:    clientID,
		ScheduledAt: scheduledAt,
		Reason:      reason,
		Status:      StatusScheduled,
	}
}

// Validate implements entity.Validatable.
func (a *Appointment) Validate(ctx context.Context) error {
	if err := a.Document.Validate(ctx); err != nil {
		return err
	}

	if id.IsNil(a.ClientID) {
		return apperror.NewValidation("client is required").
			WithDetail("field", "id_cliente")
	}
	if a.ScheduledAt.IsZero() {
		return apperror.NewValidation("scheduled time is required").
			WithDetail("field", "fecha_cita")
	}
	if a.Reason == "" {
		return apperror.NewValidation("reason is required").
			WithDetail("field", "motivo")
	}
	if !a.Status.IsValid() {
		return apperror.NewInvalidStatus("appointment", string(a.Status))
	}

	return nil
}

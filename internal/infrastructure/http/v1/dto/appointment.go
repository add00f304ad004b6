package dto

import (
	"time"

	"taller/internal/core/id"
	"taller/internal/domain/documents/appointment"
)

// CreateAppointmentRequest for scheduling an appointment.
type CreateAppointmentRequest struct {
	ClientID    string    `json:"id_cliente" binding:"required,uuid"`
	VehicleID   *string   `json:"id_vehiculo,omitempty" binding:"omitempty,uuid"`
	ScheduledAt time.Time `json:"fecha_cita" binding:"required"`
	Reason      string    `json:"motivo" binding:"required"`
	Comment     string    `json:"observaciones,omitempty"`
}

// ToEntity converts request to domain entity.
func (r *CreateAppointmentRequest) ToEntity() (*appointment.Appointment, error) {
	clientID, err := id.Parse(r.ClientID)
	if err != nil {
		return nil, err
	}

	doc := appointment.NewAppointment(clientID, r.ScheduledAt, r.Reason)
	if r.VehicleID != nil {
		vehicleID, err := id.Parse(*r.VehicleID)
		if err != nil {
			return nil, err
		}
		doc.VehicleID = &vehicleID
	}
	doc.Comment = r.Comment
	return doc, nil
}

// UpdateAppointmentRequest for updating an appointment.
type UpdateAppointmentRequest struct {
	VehicleID   *string    `json:"id_vehiculo,omitempty" binding:"omitempty,uuid"`
	ScheduledAt *time.Time `json:"fecha_cita,omitempty"`
	Reason      *string    `json:"motivo,omitempty"`
	Comment     *string    `json:"observaciones,omitempty"`
	Version     int        `json:"version" binding:"required,min=1"`
}

// ApplyTo applies updates to an existing entity.
func (r *UpdateAppointmentRequest) ApplyTo(doc *appointment.Appointment) error {
	if r.VehicleID != nil {
		vehicleID, err := id.Parse(*r.VehicleID)
		if err != nil {
			return err
		}
		doc.VehicleID = &vehicleID
	}
	if r.ScheduledAt != nil {
		doc.ScheduledAt = *r.ScheduledAt
	}
	if r.Reason != nil {
		doc.Reason = *r.Reason
	}
	if r.Comment != nil {
		doc.Comment = *r.Comment
	}
	doc.Version = r.Version
	return nil
}

// ChangeAppointmentStatusRequest moves an appointment through its lifecycle.
type ChangeAppointmentStatusRequest struct {
	Status string `json:"estado" binding:"required"`
}

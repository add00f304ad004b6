package dto

import (
	"time"

	"taller/internal/core/id"
	"taller/internal/domain/documents/ticket"
)

// CreateTicketRequest for opening a work ticket.
// Lines are optional: a ticket may be opened for diagnosis only.
type CreateTicketRequest struct {
	ClientID   string            `json:"id_cliente" binding:"required,uuid"`
	VehicleID  string            `json:"id_vehiculo" binding:"required,uuid"`
	EmployeeID *string           `json:"id_empleado,omitempty" binding:"omitempty,uuid"`
	Problem    string            `json:"problema" binding:"required"`
	Diagnosis  *string           `json:"diagnostico,omitempty"`
	Date       *time.Time        `json:"fecha,omitempty"`
	Comment    string            `json:"observaciones,omitempty"`
	Lines      []LineItemRequest `json:"detalles,omitempty" binding:"omitempty,dive"`
}

// ToEntity converts request to domain entity without lines.
func (r *CreateTicketRequest) ToEntity() (*ticket.WorkTicket, error) {
	clientID, err := id.Parse(r.ClientID)
	if err != nil {
		return nil, err
	}
	vehicleID, err := id.Parse(r.VehicleID)
	if err != nil {
		return nil, err
	}

	doc := ticket.NewWorkTicket(clientID, vehicleID, r.Problem)
	if r.EmployeeID != nil {
		employeeID, err := id.Parse(*r.EmployeeID)
		if err != nil {
			return nil, err
		}
		doc.EmployeeID = &employeeID
	}
	if r.Date != nil {
		doc.Date = *r.Date
	}
	doc.Diagnosis = r.Diagnosis
	doc.Comment = r.Comment
	return doc, nil
}

// UpdateTicketRequest for updating a work ticket.
type UpdateTicketRequest struct {
	EmployeeID *string           `json:"id_empleado,omitempty" binding:"omitempty,uuid"`
	Problem    *string           `json:"problema,omitempty"`
	Diagnosis  *string           `json:"diagnostico,omitempty"`
	Date       *time.Time        `json:"fecha,omitempty"`
	Comment    *string           `json:"observaciones,omitempty"`
	Lines      []LineItemRequest `json:"detalles,omitempty" binding:"omitempty,dive"`
	Version    int               `json:"version" binding:"required,min=1"`
}

// ApplyTo applies scalar updates to an existing entity.
func (r *UpdateTicketRequest) ApplyTo(doc *ticket.WorkTicket) error {
	if r.EmployeeID != nil {
		employeeID, err := id.Parse(*r.EmployeeID)
		if err != nil {
			return err
		}
		doc.EmployeeID = &employeeID
	}
	if r.Problem != nil {
		doc.Problem = *r.Problem
	}
	if r.Diagnosis != nil {
		doc.Diagnosis = r.Diagnosis
	}
	if r.Date != nil {
		doc.Date = *r.Date
	}
	if r.Comment != nil {
		doc.Comment = *r.Comment
	}
	doc.Version = r.Version
	return nil
}

// ChangeTicketStatusRequest moves a ticket through its lifecycle.
type ChangeTicketStatusRequest struct {
	Status string `json:"estado" binding:"required"`
}

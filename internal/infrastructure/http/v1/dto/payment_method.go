package dto

import (
	"taller/internal/domain/catalogs/employee"
	"taller/internal/domain/catalogs/payment_method"
)

// CreatePaymentMethodRequest for registering a payment method.
type CreatePaymentMethodRequest struct {
	Code string `json:"code,omitempty"`
	Name string `json:"nombre" binding:"required"`
}

// ToEntity converts request to domain entity.
func (r *CreatePaymentMethodRequest) ToEntity() *payment_method.PaymentMethod {
	return payment_method.NewPaymentMethod(r.Code, r.Name)
}

// UpdatePaymentMethodRequest for updating a payment method.
type UpdatePaymentMethodRequest struct {
	Code     *string `json:"code,omitempty"`
	Name     *string `json:"nombre,omitempty"`
	IsActive *bool   `json:"activo,omitempty"`
	Version  int     `json:"version" binding:"required,min=1"`
}

// ApplyTo applies updates to an existing entity.
func (r *UpdatePaymentMethodRequest) ApplyTo(m *payment_method.PaymentMethod) {
	if r.Code != nil {
		m.Code = *r.Code
	}
	if r.Name != nil {
		m.Name = *r.Name
	}
	if r.IsActive != nil {
		m.IsActive = *r.IsActive
	}
	m.Version = r.Version
}

// CreateEmployeeRequest for registering an employee.
type CreateEmployeeRequest struct {
	Code     string  `json:"code,omitempty"`
	Name     string  `json:"nombre" binding:"required"`
	Position *string `json:"puesto,omitempty"`
	Phone    *string `json:"telefono,omitempty"`
}

// ToEntity converts request to domain entity.
func (r *CreateEmployeeRequest) ToEntity() *employee.Employee {
	e := employee.NewEmployee(r.Code, r.Name)
	e.Position = r.Position
	e.Phone = r.Phone
	return e
}

// UpdateEmployeeRequest for updating an employee.
type UpdateEmployeeRequest struct {
	Code     *string `json:"code,omitempty"`
	Name     *string `json:"nombre,omitempty"`
	Position *string `json:"puesto,omitempty"`
	Phone    *string `json:"telefono,omitempty"`
	IsActive *bool   `json:"activo,omitempty"`
	Version  int     `json:"version" binding:"required,min=1"`
}

// ApplyTo applies updates to an existing entity.
func (r *UpdateEmployeeRequest) ApplyTo(e *employee.Employee) {
	if r.Code != nil {
		e.Code = *r.Code
	}
	if r.Name != nil {
		e.Name = *r.Name
	}
	if r.Position != nil {
		e.Position = r.Position
	}
	if r.Phone != nil {
		e.Phone = r.Phone
	}
	if r.IsActive != nil {
		e.IsActive = *r.IsActive
	}
	e.Version = r.Version
}

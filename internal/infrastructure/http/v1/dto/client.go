package dto

import (
	"taller/internal/domain/catalogs/client"
)

// CreateClientRequest for registering a client.
type CreateClientRequest struct {
	Code    string  `json:"code,omitempty"`
	Name    string  `json:"nombre" binding:"required"`
	NIT     *string `json:"nit,omitempty"`
	Phone   *string `json:"telefono,omitempty"`
	Email   *string `json:"email,omitempty" binding:"omitempty,email"`
	Address *string `json:"direccion,omitempty"`
}

// ToEntity converts request to domain entity.
func (r *CreateClientRequest) ToEntity() *client.Client {
	c := client.NewClient(r.Code, r.Name)
	c.NIT = r.NIT
	c.Phone = r.Phone
	c.Email = r.Email
	c.Address = r.Address
	return c
}

// UpdateClientRequest for updating a client.
type UpdateClientRequest struct {
	Code    *string `json:"code,omitempty"`
	Name    *string `json:"nombre,omitempty"`
	NIT     *string `json:"nit,omitempty"`
	Phone   *string `json:"telefono,omitempty"`
	Email   *string `json:"email,omitempty" binding:"omitempty,email"`
	Address *string `json:"direccion,omitempty"`
	Version int     `json:"version" binding:"required,min=1"`
}

// ApplyTo applies updates to an existing entity.
func (r *UpdateClientRequest) ApplyTo(c *client.Client) {
	if r.Code != nil {
		c.Code = *r.Code
	}
	if r.Name != nil {
		c.Name = *r.Name
	}
	if r.NIT != nil {
		c.NIT = r.NIT
	}
	if r.Phone != nil {
		c.Phone = r.Phone
	}
	if r.Email != nil {
		c.Email = r.Email
	}
	if r.Address != nil {
		c.Address = r.Address
	}
	c.Version = r.Version
}

// Package client provides the workshop client catalog.
package client

import (
	"context"
	"strings"

	"taller/internal/core/apperror"
	"taller/internal/core/entity"
)

// Client represents a workshop customer.
type Client struct {
	entity.Catalog

	// NIT is the tax identification number
	NIT *string `db:"nit" json:"nit,omitempty"`

	// Phone is the contact phone number
	Phone *string `db:"phone" json:"telefono,omitempty"`

	// Email is the contact email
	Email *string `db:"email" json:"email,omitempty"`

	// Address is the street address
	Address *string `db:"address" json:"direccion,omitempty"`
}

// NewClient creates a new Client with required fields.
func NewClient(code, name string) *Client {
	return &Client{
		Catalog: entity.NewCatalog(code, name),
	}
}

// Validate implements entity.Validatable interface.
func (c *Client) Validate(ctx context.Context) error {
	if err := c.Catalog.Validate(ctx); err != nil {
		return err
	}

	if c.Email != nil && *c.Email != "" && !strings.Contains(*c.Email, "@") {
		return apperror.NewValidation("invalid email address").
			WithDetail("field", "email").
			WithDetail("value", *c.Email)
	}

	return nil
}

package entity

import (
	"context"
	"time"

	"taller/internal/core/apperror"
)

// Document is the base type for business transactions.
// Examples: Quotation, Invoice, Work Ticket, Appointment.
type Document struct {
	BaseDocument

	// Number is the document number (auto-generated, unique within type+year)
	Number string `db:"number" json:"numero"`

	// Date is the business date of the document
	Date time.Time `db:"date" json:"fecha"`

	// Comment is an optional user comment
	Comment string `db:"comment" json:"observaciones,omitempty"`
}

// NewDocument creates a new Document with generated ID and current date.
func NewDocument() Document {
	return Document{
		BaseDocument: NewBaseDocument(),
		Date:         time.Now().UTC(),
	}
}

// Validate implements Validatable interface.
func (d *Document) Validate(ctx context.Context) error {
	if d.Date.IsZero() {
		return apperror.NewValidation("date is required").
			WithDetail("field", "fecha")
	}

	return nil
}

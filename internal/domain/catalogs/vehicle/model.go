// Package vehicle provides the vehicle catalog. Every vehicle belongs to a
// client and is the subject of appointments and work tickets.
package vehicle

import (
	"context"
	"strings"
	"time"

	"taller/internal/core/apperror"
	"taller/internal/core/entity"
	"taller/internal/core/id"
)

// Vehicle represents a client's vehicle.
type Vehicle struct {
	entity.Catalog

	// ClientID is the owning client (required)
	ClientID id.ID `db:"client_id" json:"id_cliente"`

	// Plate is the license plate (unique)
	Plate string `db:"plate" json:"placa"`

	// Brand is the manufacturer name
	Brand string `db:"brand" json:"marca"`

	// Model is the commercial model name
	Model string `db:"model" json:"modelo"`

	// Year is the model year
	Year int `db:"year" json:"anio"`

	// Color is the body color
	Color *string `db:"color" json:"color,omitempty"`

	// VIN is the vehicle identification number
	VIN *string `db:"vin" json:"vin,omitempty"`

	// Mileage is the last recorded odometer reading in km
	Mileage int `db:"mileage" json:"kilometraje"`
}

// NewVehicle creates a new Vehicle for a client.
func NewVehicle(clientID id.ID, plate, brand, model string) *Vehicle {
	plate = strings.ToUpper(strings.TrimSpace(plate))
	v := &Vehicle{
		Catalog:  entity.NewCatalog("", plate),
		ClientID: clientID,
		Plate:    plate,
		Brand:    brand,
		Model:    model,
	}
	return v
}

// Validate implements entity.Validatable interface.
func (v *Vehicle) Validate(ctx context.Context) error {
	if v.Name == "" {
		v.Name = v.Plate
	}
	if err := v.Catalog.Validate(ctx); err != nil {
		return err
	}

	if id.IsNil(v.ClientID) {
		return apperror.NewValidation("client is required").
			WithDetail("field", "id_cliente")
	}
	if strings.TrimSpace(v.Plate) == "" {
		return apperror.NewValidation("plate is required").
			WithDetail("field", "placa")
	}
	if v.Year != 0 && (v.Year < 1900 || v.Year > time.Now().Year()+1) {
		return apperror.NewValidation("invalid model year").
			WithDetail("field", "anio").
			WithDetail("value", v.Year)
	}
	if v.Mileage < 0 {
		return apperror.NewValidation("mileage cannot be negative").
			WithDetail("field", "kilometraje")
	}

	return nil
}

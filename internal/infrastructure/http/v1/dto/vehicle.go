package dto

import (
	"taller/internal/core/id"
	"taller/internal/domain/catalogs/vehicle"
)

// CreateVehicleRequest for registering a vehicle.
type CreateVehicleRequest struct {
	Code     string  `json:"code,omitempty"`
	ClientID string  `json:"id_cliente" binding:"required,uuid"`
	Plate    string  `json:"placa" binding:"required"`
	Brand    string  `json:"marca" binding:"required"`
	Model    string  `json:"modelo" binding:"required"`
	Year     int     `json:"anio,omitempty"`
	Color    *string `json:"color,omitempty"`
	VIN      *string `json:"vin,omitempty"`
	Mileage  int     `json:"kilometraje,omitempty"`
}

// ToEntity converts request to domain entity.
func (r *CreateVehicleRequest) ToEntity() (*vehicle.Vehicle, error) {
	clientID, err := id.Parse(r.ClientID)
	if err != nil {
		return nil, err
	}

	v := vehicle.NewVehicle(clientID, r.Plate, r.Brand, r.Model)
	v.Code = r.Code
	v.Year = r.Year
	v.Color = r.Color
	v.VIN = r.VIN
	v.Mileage = r.Mileage
	return v, nil
}

// UpdateVehicleRequest for updating a vehicle.
type UpdateVehicleRequest struct {
	Code    *string `json:"code,omitempty"`
	Plate   *string `json:"placa,omitempty"`
	Brand   *string `json:"marca,omitempty"`
	Model   *string `json:"modelo,omitempty"`
	Year    *int    `json:"anio,omitempty"`
	Color   *string `json:"color,omitempty"`
	VIN     *string `json:"vin,omitempty"`
	Mileage *int    `json:"kilometraje,omitempty"`
	Version int     `json:"version" binding:"required,min=1"`
}

// ApplyTo applies updates to an existing entity.
func (r *UpdateVehicleRequest) ApplyTo(v *vehicle.Vehicle) {
	if r.Code != nil {
		v.Code = *r.Code
	}
	if r.Plate != nil {
		v.Plate = *r.Plate
	}
	if r.Brand != nil {
		v.Brand = *r.Brand
	}
	if r.Model != nil {
		v.Model = *r.Model
	}
	if r.Year != nil {
		v.Year = *r.Year
	}
	if r.Color != nil {
		v.Color = r.Color
	}
	if r.VIN != nil {
		v.VIN = r.VIN
	}
	if r.Mileage != nil {
		v.Mileage = *r.Mileage
	}
	v.Version = r.Version
}

package dto

import (
	"civicdata_backend/internals/features/core/address/model"
)

// AddressCreateRequest is embedded in the owning entity's create
// payload and validated in the same pass.
type AddressCreateRequest struct {
	StreetAddress  string   `json:"street_address" validate:"required,max=255"`
	StreetAddress2 string   `json:"street_address_2" validate:"max=255"`
	City           string   `json:"city" validate:"required,max=100"`
	Region         string   `json:"region" validate:"max=100"`
	PostalCode     string   `json:"postal_code" validate:"max=20"`
	Country        string   `json:"country" validate:"required,country_code"`
	Latitude       *float64 `json:"latitude" validate:"omitempty,gte=-90,lte=90"`
	Longitude      *float64 `json:"longitude" validate:"omitempty,gte=-180,lte=180"`
}

// AddressUpdateRequest: pointer fields, absent keys stay untouched.
type AddressUpdateRequest struct {
	StreetAddress  *string  `json:"street_address" validate:"omitempty,max=255"`
	StreetAddress2 *string  `json:"street_address_2" validate:"omitempty,max=255"`
	City           *string  `json:"city" validate:"omitempty,max=100"`
	Region         *string  `json:"region" validate:"omitempty,max=100"`
	PostalCode     *string  `json:"postal_code" validate:"omitempty,max=20"`
	Country        *string  `json:"country" validate:"omitempty,country_code"`
	Latitude       *float64 `json:"latitude" validate:"omitempty,gte=-90,lte=90"`
	Longitude      *float64 `json:"longitude" validate:"omitempty,gte=-180,lte=180"`
}

type AddressResponse struct {
	AddressID      string   `json:"address_id"`
	StreetAddress  string   `json:"street_address"`
	StreetAddress2 string   `json:"street_address_2"`
	City           string   `json:"city"`
	Region         string   `json:"region"`
	PostalCode     string   `json:"postal_code"`
	Country        string   `json:"country"`
	Latitude       *float64 `json:"latitude"`
	Longitude      *float64 `json:"longitude"`
}

func FromModelAddress(m *model.AddressModel) *AddressResponse {
	if m == nil {
		return nil
	}
	return &AddressResponse{
		AddressID:      m.AddressID.String(),
		StreetAddress:  m.AddressStreetAddress,
		StreetAddress2: m.AddressStreetAddress2,
		City:           m.AddressCity,
		Region:         m.AddressRegion,
		PostalCode:     m.AddressPostalCode,
		Country:        m.AddressCountryCode,
		Latitude:       m.AddressLatitude,
		Longitude:      m.AddressLongitude,
	}
}

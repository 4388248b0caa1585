package service

import (
	"github.com/google/uuid"
	"gorm.io/gorm"

	"civicdata_backend/internals/features/core/address/dto"
	"civicdata_backend/internals/features/core/address/model"
)

// Addresses are only written from inside their owner's transaction, so
// both functions take the tx handle and trust already-validated input.

func CreateAddress(tx *gorm.DB, req *dto.AddressCreateRequest, actorID uuid.UUID) (*model.AddressModel, error) {
	actor := actorRef(actorID)
	addr := &model.AddressModel{
		AddressStreetAddress:  req.StreetAddress,
		AddressStreetAddress2: req.StreetAddress2,
		AddressCity:           req.City,
		AddressRegion:         req.Region,
		AddressPostalCode:     req.PostalCode,
		AddressCountryCode:    req.Country,
		AddressLatitude:       req.Latitude,
		AddressLongitude:      req.Longitude,
		AddressCreatedBy:      actor,
		AddressUpdatedBy:      actor,
	}
	if err := tx.Create(addr).Error; err != nil {
		return nil, err
	}
	return addr, nil
}

// UpdateAddress applies the present fields in place (partial update).
func UpdateAddress(tx *gorm.DB, addr *model.AddressModel, req *dto.AddressUpdateRequest, actorID uuid.UUID) error {
	if req.StreetAddress != nil {
		addr.AddressStreetAddress = *req.StreetAddress
	}
	if req.StreetAddress2 != nil {
		addr.AddressStreetAddress2 = *req.StreetAddress2
	}
	if req.City != nil {
		addr.AddressCity = *req.City
	}
	if req.Region != nil {
		addr.AddressRegion = *req.Region
	}
	if req.PostalCode != nil {
		addr.AddressPostalCode = *req.PostalCode
	}
	if req.Country != nil {
		addr.AddressCountryCode = *req.Country
	}
	if req.Latitude != nil {
		addr.AddressLatitude = req.Latitude
	}
	if req.Longitude != nil {
		addr.AddressLongitude = req.Longitude
	}
	addr.AddressUpdatedBy = actorRef(actorID)
	return tx.Save(addr).Error
}

func actorRef(actorID uuid.UUID) *uuid.UUID {
	if actorID == uuid.Nil {
		return nil
	}
	id := actorID
	return &id
}

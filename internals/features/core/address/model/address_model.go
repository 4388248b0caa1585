package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// AddressModel is an owned value entity: it only ever exists as the
// home/current address of one political figure and follows its owner's
// lifecycle.
type AddressModel struct {
	AddressID             uuid.UUID      `gorm:"type:uuid;primaryKey;column:address_id" json:"address_id"`
	AddressStreetAddress  string         `gorm:"type:varchar(255);not null;column:address_street_address" json:"street_address"`
	AddressStreetAddress2 string         `gorm:"type:varchar(255);column:address_street_address_2" json:"street_address_2"`
	AddressCity           string         `gorm:"type:varchar(100);not null;column:address_city" json:"city"`
	AddressRegion         string         `gorm:"type:varchar(100);column:address_region" json:"region"`
	AddressPostalCode     string         `gorm:"type:varchar(20);column:address_postal_code" json:"postal_code"`
	AddressCountryCode    string         `gorm:"type:varchar(2);not null;column:address_country_code" json:"country"`
	AddressLatitude       *float64       `gorm:"type:decimal(9,6);column:address_latitude" json:"latitude"`
	AddressLongitude      *float64       `gorm:"type:decimal(9,6);column:address_longitude" json:"longitude"`
	AddressCreatedBy      *uuid.UUID     `gorm:"type:uuid;column:address_created_by" json:"-"`
	AddressUpdatedBy      *uuid.UUID     `gorm:"type:uuid;column:address_updated_by" json:"-"`
	AddressCreatedAt      time.Time      `gorm:"autoCreateTime;column:address_created_at" json:"created_at"`
	AddressUpdatedAt      time.Time      `gorm:"autoUpdateTime;column:address_updated_at" json:"updated_at"`
	AddressDeletedAt      gorm.DeletedAt `gorm:"index;column:address_deleted_at" json:"-"`
}

func (AddressModel) TableName() string {
	return "addresses"
}

func (a *AddressModel) BeforeCreate(tx *gorm.DB) error {
	if a.AddressID == uuid.Nil {
		a.AddressID = uuid.New()
	}
	return nil
}

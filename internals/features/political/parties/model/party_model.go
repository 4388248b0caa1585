package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type PoliticalPartyModel struct {
	PoliticalPartyID           uuid.UUID       `gorm:"type:uuid;primaryKey;column:political_party_id" json:"political_party_id"`
	PoliticalPartyName         string          `gorm:"type:varchar(255);not null;column:political_party_name" json:"name"`
	PoliticalPartySlug         string          `gorm:"type:varchar(50);uniqueIndex;not null;column:political_party_slug" json:"slug"`
	PoliticalPartyAbbreviation string          `gorm:"type:varchar(50);column:political_party_abbreviation" json:"abbreviation"`
	PoliticalPartyDescription  string          `gorm:"type:text;column:political_party_description" json:"description"`
	PoliticalPartyFoundedDate  datatypes.Date  `gorm:"not null;column:political_party_founded_date" json:"founded_date"`
	PoliticalPartyDissolvedDate *datatypes.Date `gorm:"column:political_party_dissolved_date" json:"dissolved_date"`
	PoliticalPartyIdeology     string          `gorm:"type:text;column:political_party_ideology" json:"ideology"`
	PoliticalPartyHQLocation   string          `gorm:"type:varchar(255);column:political_party_hq_location" json:"hq_location"`
	PoliticalPartyWebsite      string          `gorm:"type:text;column:political_party_website" json:"website"`
	PoliticalPartyLogoURL      string          `gorm:"type:text;column:political_party_logo_url" json:"logo_url"`
	PoliticalPartyCreatedBy    *uuid.UUID      `gorm:"type:uuid;column:political_party_created_by" json:"-"`
	PoliticalPartyUpdatedBy    *uuid.UUID      `gorm:"type:uuid;column:political_party_updated_by" json:"-"`
	PoliticalPartyCreatedAt    time.Time       `gorm:"autoCreateTime;column:political_party_created_at" json:"created_at"`
	PoliticalPartyUpdatedAt    time.Time       `gorm:"autoUpdateTime;column:political_party_updated_at" json:"updated_at"`
	PoliticalPartyDeletedAt    gorm.DeletedAt  `gorm:"index;column:political_party_deleted_at" json:"-"`
}

func (PoliticalPartyModel) TableName() string {
	return "political_parties"
}

func (p *PoliticalPartyModel) BeforeCreate(tx *gorm.DB) error {
	if p.PoliticalPartyID == uuid.Nil {
		p.PoliticalPartyID = uuid.New()
	}
	return nil
}

package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	addressModel "civicdata_backend/internals/features/core/address/model"
	partyModel "civicdata_backend/internals/features/political/parties/model"
)

const (
	GenderMale   = "m"
	GenderFemale = "f"
)

// PoliticalFigureModel is the aggregate root: it exclusively owns its
// home and current address rows and cascades soft deletion to them.
type PoliticalFigureModel struct {
	PoliticalFigureID       uuid.UUID       `gorm:"type:uuid;primaryKey;column:political_figure_id" json:"political_figure_id"`
	PoliticalFigureFullName string          `gorm:"type:varchar(255);not null;column:political_figure_full_name" json:"full_name"`
	PoliticalFigureSlug     string          `gorm:"type:varchar(50);uniqueIndex;not null;column:political_figure_slug" json:"slug"`
	PoliticalFigureDOB      *datatypes.Date `gorm:"column:political_figure_date_of_birth" json:"date_of_birth"`
	PoliticalFigureGender   string          `gorm:"type:varchar(1);not null;column:political_figure_gender" json:"gender"`
	PoliticalFigureBio      string          `gorm:"type:text;column:political_figure_biography" json:"biography"`
	PoliticalFigurePhotoURL string          `gorm:"type:text;column:political_figure_photo_url" json:"photo_url"`

	PoliticalFigureHomeAddressID    uuid.UUID `gorm:"type:uuid;not null;column:political_figure_home_address_id" json:"-"`
	PoliticalFigureCurrentAddressID uuid.UUID `gorm:"type:uuid;not null;column:political_figure_current_address_id" json:"-"`

	PoliticalFigurePartyID *uuid.UUID `gorm:"type:uuid;column:political_figure_party_id" json:"-"`

	PoliticalFigureContactNumber string         `gorm:"type:varchar(20);column:political_figure_contact_number" json:"contact_number"`
	PoliticalFigureWebsite       string         `gorm:"type:text;column:political_figure_website" json:"website"`
	PoliticalFigureFacebookURL   string         `gorm:"type:text;column:political_figure_facebook_url" json:"facebook_url"`
	PoliticalFigureTwitterURL    string         `gorm:"type:text;column:political_figure_twitter_url" json:"twitter_url"`
	PoliticalFigureInstagramURL  string         `gorm:"type:text;column:political_figure_instagram_url" json:"instagram_url"`
	PoliticalFigureAliases       pq.StringArray `gorm:"type:text[];column:political_figure_aliases" json:"aliases"`
	PoliticalFigureIsActive      bool           `gorm:"not null;default:true;column:political_figure_is_active" json:"is_active"`

	PoliticalFigureCreatedBy *uuid.UUID     `gorm:"type:uuid;column:political_figure_created_by" json:"-"`
	PoliticalFigureUpdatedBy *uuid.UUID     `gorm:"type:uuid;column:political_figure_updated_by" json:"-"`
	PoliticalFigureCreatedAt time.Time      `gorm:"autoCreateTime;column:political_figure_created_at" json:"created_at"`
	PoliticalFigureUpdatedAt time.Time      `gorm:"autoUpdateTime;column:political_figure_updated_at" json:"updated_at"`
	PoliticalFigureDeletedAt gorm.DeletedAt `gorm:"index;column:political_figure_deleted_at" json:"-"`

	HomeAddress    *addressModel.AddressModel      `gorm:"foreignKey:PoliticalFigureHomeAddressID;references:AddressID" json:"home_address,omitempty"`
	CurrentAddress *addressModel.AddressModel      `gorm:"foreignKey:PoliticalFigureCurrentAddressID;references:AddressID" json:"current_address,omitempty"`
	Party          *partyModel.PoliticalPartyModel `gorm:"foreignKey:PoliticalFigurePartyID;references:PoliticalPartyID" json:"political_party,omitempty"`
}

func (PoliticalFigureModel) TableName() string {
	return "political_figures"
}

func (f *PoliticalFigureModel) BeforeCreate(tx *gorm.DB) error {
	if f.PoliticalFigureID == uuid.Nil {
		f.PoliticalFigureID = uuid.New()
	}
	return nil
}

package dto

import (
	"time"

	addressDTO "civicdata_backend/internals/features/core/address/dto"
	partyDTO "civicdata_backend/internals/features/political/parties/dto"
	"civicdata_backend/internals/features/political/figures/model"
	helper "civicdata_backend/internals/helpers"
)

type FigureCreateRequest struct {
	FullName      string  `json:"full_name" validate:"required,max=255"`
	DateOfBirth   string  `json:"date_of_birth" validate:"omitempty,datetime=2006-01-02"`
	Gender        string  `json:"gender" validate:"required,oneof=m f"`
	Biography     string  `json:"biography"`
	ContactNumber string  `json:"contact_number" validate:"omitempty,nepal_phone"`
	Website       string  `json:"website" validate:"omitempty,url"`
	FacebookURL   string  `json:"facebook_url" validate:"omitempty,url"`
	TwitterURL    string  `json:"twitter_url" validate:"omitempty,url"`
	InstagramURL  string  `json:"instagram_url" validate:"omitempty,url"`
	Aliases       []string `json:"aliases" validate:"omitempty,dive,max=255"`
	PoliticalParty *string `json:"political_party" validate:"omitempty,uuid"`

	// photo arrives either as an uploaded file (multipart) or as a URL
	// already stored (JSON); empty means no photo
	PhotoURL string `json:"photo_url" validate:"omitempty,url"`

	HomeAddress    addressDTO.AddressCreateRequest `json:"home_address" validate:"required"`
	CurrentAddress addressDTO.AddressCreateRequest `json:"current_address" validate:"required"`
}

// FigureUpdateRequest: pointer fields for ordinary partials, tri-state
// nullables where "sent as null" means something different from "not
// sent" (photo, party reference).
type FigureUpdateRequest struct {
	FullName      *string   `json:"full_name" validate:"omitempty,max=255"`
	DateOfBirth   *string   `json:"date_of_birth" validate:"omitempty,datetime=2006-01-02"`
	Gender        *string   `json:"gender" validate:"omitempty,oneof=m f"`
	Biography     *string   `json:"biography"`
	ContactNumber *string   `json:"contact_number" validate:"omitempty,nepal_phone"`
	Website       *string   `json:"website" validate:"omitempty,url"`
	FacebookURL   *string   `json:"facebook_url" validate:"omitempty,url"`
	TwitterURL    *string   `json:"twitter_url" validate:"omitempty,url"`
	InstagramURL  *string   `json:"instagram_url" validate:"omitempty,url"`
	Aliases       *[]string `json:"aliases" validate:"omitempty,dive,max=255"`
	IsActive      *bool     `json:"is_active"`

	Photo          helper.NullableString `json:"photo_url"`
	PoliticalParty helper.NullableUUID   `json:"political_party"`

	HomeAddress    *addressDTO.AddressUpdateRequest `json:"home_address"`
	CurrentAddress *addressDTO.AddressUpdateRequest `json:"current_address"`
}

type FigureResponse struct {
	PoliticalFigureID string   `json:"political_figure_id"`
	FullName          string   `json:"full_name"`
	Slug              string   `json:"slug"`
	DateOfBirth       *string  `json:"date_of_birth"`
	Gender            string   `json:"gender"`
	Biography         string   `json:"biography"`
	PhotoURL          *string  `json:"photo_url"`
	ContactNumber     string   `json:"contact_number"`
	Website           string   `json:"website"`
	FacebookURL       string   `json:"facebook_url"`
	TwitterURL        string   `json:"twitter_url"`
	InstagramURL      string   `json:"instagram_url"`
	Aliases           []string `json:"aliases"`
	IsActive          bool     `json:"is_active"`

	PoliticalPartyID   *string `json:"political_party_id"`
	PoliticalPartyName *string `json:"political_party_name"`
	PoliticalPartySlug *string `json:"political_party_slug"`

	HomeAddress    *addressDTO.AddressResponse `json:"home_address"`
	CurrentAddress *addressDTO.AddressResponse `json:"current_address"`

	CreatedAt string `json:"created_at"`
	UpdatedAt string `json:"updated_at"`
}

func FromModelFigure(m *model.PoliticalFigureModel) *FigureResponse {
	if m == nil {
		return nil
	}
	resp := &FigureResponse{
		PoliticalFigureID: m.PoliticalFigureID.String(),
		FullName:          m.PoliticalFigureFullName,
		Slug:              m.PoliticalFigureSlug,
		Gender:            m.PoliticalFigureGender,
		Biography:         m.PoliticalFigureBio,
		ContactNumber:     m.PoliticalFigureContactNumber,
		Website:           m.PoliticalFigureWebsite,
		FacebookURL:       m.PoliticalFigureFacebookURL,
		TwitterURL:        m.PoliticalFigureTwitterURL,
		InstagramURL:      m.PoliticalFigureInstagramURL,
		Aliases:           []string(m.PoliticalFigureAliases),
		IsActive:          m.PoliticalFigureIsActive,
		HomeAddress:       addressDTO.FromModelAddress(m.HomeAddress),
		CurrentAddress:    addressDTO.FromModelAddress(m.CurrentAddress),
		CreatedAt:         m.PoliticalFigureCreatedAt.Format(time.RFC3339),
		UpdatedAt:         m.PoliticalFigureUpdatedAt.Format(time.RFC3339),
	}
	if resp.Aliases == nil {
		resp.Aliases = []string{}
	}
	if m.PoliticalFigureDOB != nil {
		s := partyDTO.FormatDate(*m.PoliticalFigureDOB)
		resp.DateOfBirth = &s
	}
	if m.PoliticalFigurePhotoURL != "" {
		s := m.PoliticalFigurePhotoURL
		resp.PhotoURL = &s
	}
	if m.PoliticalFigurePartyID != nil {
		id := m.PoliticalFigurePartyID.String()
		resp.PoliticalPartyID = &id
	}
	if m.Party != nil {
		name := m.Party.PoliticalPartyName
		slug := m.Party.PoliticalPartySlug
		resp.PoliticalPartyName = &name
		resp.PoliticalPartySlug = &slug
	}
	return resp
}

func FromModelFigures(ms []model.PoliticalFigureModel) []FigureResponse {
	out := make([]FigureResponse, 0, len(ms))
	for i := range ms {
		out = append(out, *FromModelFigure(&ms[i]))
	}
	return out
}

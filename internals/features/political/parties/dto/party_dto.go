package dto

import (
	"time"

	"gorm.io/datatypes"

	"civicdata_backend/internals/features/political/parties/model"
)

type PartyCreateRequest struct {
	Name          string `json:"name" validate:"required,max=255"`
	Abbreviation  string `json:"abbreviation" validate:"max=50"`
	Description   string `json:"description"`
	FoundedDate   string `json:"founded_date" validate:"required,datetime=2006-01-02"`
	DissolvedDate string `json:"dissolved_date" validate:"omitempty,datetime=2006-01-02"`
	Ideology      string `json:"ideology"`
	HQLocation    string `json:"hq_location" validate:"max=255"`
	Website       string `json:"website" validate:"omitempty,url"`
	LogoURL       string `json:"logo_url" validate:"omitempty,url"`
}

type PartyUpdateRequest struct {
	Name          *string `json:"name" validate:"omitempty,max=255"`
	Abbreviation  *string `json:"abbreviation" validate:"omitempty,max=50"`
	Description   *string `json:"description"`
	FoundedDate   *string `json:"founded_date" validate:"omitempty,datetime=2006-01-02"`
	DissolvedDate *string `json:"dissolved_date" validate:"omitempty,datetime=2006-01-02"`
	Ideology      *string `json:"ideology"`
	HQLocation    *string `json:"hq_location" validate:"omitempty,max=255"`
	Website       *string `json:"website" validate:"omitempty,url"`
	LogoURL       *string `json:"logo_url" validate:"omitempty,url"`
}

type PartyResponse struct {
	PoliticalPartyID string  `json:"political_party_id"`
	Name             string  `json:"name"`
	Slug             string  `json:"slug"`
	Abbreviation     string  `json:"abbreviation"`
	Description      string  `json:"description"`
	FoundedDate      string  `json:"founded_date"`
	DissolvedDate    *string `json:"dissolved_date"`
	Ideology         string  `json:"ideology"`
	HQLocation       string  `json:"hq_location"`
	Website          string  `json:"website"`
	LogoURL          string  `json:"logo_url"`
	CreatedAt        string  `json:"created_at"`
	UpdatedAt        string  `json:"updated_at"`
}

// ParseDate assumes the value already passed datetime validation.
func ParseDate(s string) datatypes.Date {
	t, _ := time.Parse("2006-01-02", s)
	return datatypes.Date(t)
}

func FormatDate(d datatypes.Date) string {
	return time.Time(d).Format("2006-01-02")
}

func FromModelParty(m *model.PoliticalPartyModel) *PartyResponse {
	if m == nil {
		return nil
	}
	resp := &PartyResponse{
		PoliticalPartyID: m.PoliticalPartyID.String(),
		Name:             m.PoliticalPartyName,
		Slug:             m.PoliticalPartySlug,
		Abbreviation:     m.PoliticalPartyAbbreviation,
		Description:      m.PoliticalPartyDescription,
		FoundedDate:      FormatDate(m.PoliticalPartyFoundedDate),
		Ideology:         m.PoliticalPartyIdeology,
		HQLocation:       m.PoliticalPartyHQLocation,
		Website:          m.PoliticalPartyWebsite,
		LogoURL:          m.PoliticalPartyLogoURL,
		CreatedAt:        m.PoliticalPartyCreatedAt.Format(time.RFC3339),
		UpdatedAt:        m.PoliticalPartyUpdatedAt.Format(time.RFC3339),
	}
	if m.PoliticalPartyDissolvedDate != nil {
		s := FormatDate(*m.PoliticalPartyDissolvedDate)
		resp.DissolvedDate = &s
	}
	return resp
}

func FromModelParties(ms []model.PoliticalPartyModel) []PartyResponse {
	out := make([]PartyResponse, 0, len(ms))
	for i := range ms {
		out = append(out, *FromModelParty(&ms[i]))
	}
	return out
}

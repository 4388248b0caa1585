package dto

import (
	"time"

	"civicdata_backend/internals/features/political/achievements/model"
)

type AchievementCreateRequest struct {
	PoliticalFigureID string `json:"political_figure_id" validate:"required,uuid"`
	Title             string `json:"title" validate:"required,max=255"`
	Category          string `json:"category" validate:"required,oneof=leadership academic public_service military other"`
	Description       string `json:"description"`
	Year              int    `json:"year" validate:"required,gte=1000,lte=9999"`
	AwardingBody      string `json:"awarding_body" validate:"max=255"`
	EvidenceLink      string `json:"evidence_link" validate:"omitempty,url"`
	Status            string `json:"status" validate:"omitempty,oneof=unverified pending verified"`
}

type AchievementUpdateRequest struct {
	Title        *string `json:"title" validate:"omitempty,max=255"`
	Category     *string `json:"category" validate:"omitempty,oneof=leadership academic public_service military other"`
	Description  *string `json:"description"`
	Year         *int    `json:"year" validate:"omitempty,gte=1000,lte=9999"`
	AwardingBody *string `json:"awarding_body" validate:"omitempty,max=255"`
	EvidenceLink *string `json:"evidence_link" validate:"omitempty,url"`
	Status       *string `json:"status" validate:"omitempty,oneof=unverified pending verified"`
}

type AchievementResponse struct {
	AchievementID     string `json:"achievement_id"`
	PoliticalFigureID string `json:"political_figure_id"`
	Title             string `json:"title"`
	Category          string `json:"category"`
	Description       string `json:"description"`
	Year              int    `json:"year"`
	AwardingBody      string `json:"awarding_body"`
	EvidenceLink      string `json:"evidence_link"`
	Status            string `json:"status"`
	CreatedAt         string `json:"created_at"`
	UpdatedAt         string `json:"updated_at"`
}

func FromModelAchievement(m *model.AchievementModel) *AchievementResponse {
	if m == nil {
		return nil
	}
	return &AchievementResponse{
		AchievementID:     m.AchievementID.String(),
		PoliticalFigureID: m.AchievementFigureID.String(),
		Title:             m.AchievementTitle,
		Category:          m.AchievementCategory,
		Description:       m.AchievementDescription,
		Year:              m.AchievementYear,
		AwardingBody:      m.AchievementAwardingBody,
		EvidenceLink:      m.AchievementEvidenceLink,
		Status:            m.AchievementStatus,
		CreatedAt:         m.AchievementCreatedAt.Format(time.RFC3339),
		UpdatedAt:         m.AchievementUpdatedAt.Format(time.RFC3339),
	}
}

func FromModelAchievements(ms []model.AchievementModel) []AchievementResponse {
	out := make([]AchievementResponse, 0, len(ms))
	for i := range ms {
		out = append(out, *FromModelAchievement(&ms[i]))
	}
	return out
}

package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	CategoryLeadership    = "leadership"
	CategoryAcademic      = "academic"
	CategoryPublicService = "public_service"
	CategoryMilitary      = "military"
	CategoryOther         = "other"

	StatusUnverified = "unverified"
	StatusPending    = "pending"
	StatusVerified   = "verified"
)

type AchievementModel struct {
	AchievementID           uuid.UUID `gorm:"type:uuid;primaryKey;column:achievement_id" json:"achievement_id"`
	AchievementFigureID     uuid.UUID `gorm:"type:uuid;not null;index;column:achievement_figure_id" json:"political_figure_id"`
	AchievementTitle        string    `gorm:"type:varchar(255);not null;column:achievement_title" json:"title"`
	AchievementCategory     string    `gorm:"type:varchar(20);not null;column:achievement_category" json:"category"`
	AchievementDescription  string    `gorm:"type:text;column:achievement_description" json:"description"`
	AchievementYear         int       `gorm:"not null;column:achievement_year" json:"year"`
	AchievementAwardingBody string    `gorm:"type:varchar(255);column:achievement_awarding_body" json:"awarding_body"`
	AchievementEvidenceLink string    `gorm:"type:text;column:achievement_evidence_link" json:"evidence_link"`
	AchievementStatus       string    `gorm:"type:varchar(20);not null;default:'unverified';column:achievement_status" json:"status"`

	AchievementCreatedBy *uuid.UUID     `gorm:"type:uuid;column:achievement_created_by" json:"-"`
	AchievementUpdatedBy *uuid.UUID     `gorm:"type:uuid;column:achievement_updated_by" json:"-"`
	AchievementCreatedAt time.Time      `gorm:"autoCreateTime;column:achievement_created_at" json:"created_at"`
	AchievementUpdatedAt time.Time      `gorm:"autoUpdateTime;column:achievement_updated_at" json:"updated_at"`
	AchievementDeletedAt gorm.DeletedAt `gorm:"index;column:achievement_deleted_at" json:"-"`
}

func (AchievementModel) TableName() string {
	return "political_figure_achievements"
}

func (a *AchievementModel) BeforeCreate(tx *gorm.DB) error {
	if a.AchievementID == uuid.Nil {
		a.AchievementID = uuid.New()
	}
	return nil
}

package service

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	helper "civicdata_backend/internals/helpers"

	"civicdata_backend/internals/features/political/achievements/dto"
	"civicdata_backend/internals/features/political/achievements/model"
	figureModel "civicdata_backend/internals/features/political/figures/model"
)

type AchievementService struct {
	db *gorm.DB
}

func NewAchievementService(db *gorm.DB) *AchievementService {
	return &AchievementService{db: db}
}

func (s *AchievementService) GetByID(id uuid.UUID) (*model.AchievementModel, error) {
	var m model.AchievementModel
	if err := s.db.First(&m, "achievement_id = ?", id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, helper.NewNotFoundError("Achievement not found")
		}
		return nil, err
	}
	return &m, nil
}

func (s *AchievementService) List(figureID *uuid.UUID, category string, paging helper.Paging) ([]model.AchievementModel, int64, error) {
	q := s.db.Model(&model.AchievementModel{})
	if figureID != nil {
		q = q.Where("achievement_figure_id = ?", *figureID)
	}
	if category = strings.TrimSpace(category); category != "" {
		q = q.Where("achievement_category = ?", category)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var ms []model.AchievementModel
	err := q.Order("achievement_year desc, achievement_title asc").
		Offset(paging.Offset).Limit(paging.Limit).
		Find(&ms).Error
	return ms, total, err
}

func (s *AchievementService) Create(req *dto.AchievementCreateRequest, actorID uuid.UUID) (*model.AchievementModel, error) {
	ec := helper.NewErrorCollector()
	ec.MergeStruct(req)
	validateYearCeiling(ec, req.Year)
	if err := ec.Err(); err != nil {
		return nil, err
	}

	figureID, err := uuid.Parse(req.PoliticalFigureID)
	if err != nil {
		return nil, helper.NewValidationError(map[string][]string{
			"political_figure_id": {"Enter a valid identifier."},
		})
	}
	if err := s.checkFigureExists(figureID); err != nil {
		return nil, err
	}

	title := strings.TrimSpace(req.Title)
	if err := s.checkTripleFree(figureID, title, req.Year, uuid.Nil); err != nil {
		return nil, err
	}

	status := req.Status
	if status == "" {
		status = model.StatusUnverified
	}
	actor := actorRef(actorID)
	m := &model.AchievementModel{
		AchievementFigureID:     figureID,
		AchievementTitle:        title,
		AchievementCategory:     req.Category,
		AchievementDescription:  req.Description,
		AchievementYear:         req.Year,
		AchievementAwardingBody: strings.TrimSpace(req.AwardingBody),
		AchievementEvidenceLink: strings.TrimSpace(req.EvidenceLink),
		AchievementStatus:       status,
		AchievementCreatedBy:    actor,
		AchievementUpdatedBy:    actor,
	}
	if err := s.db.Create(m).Error; err != nil {
		return nil, err
	}
	return m, nil
}

func (s *AchievementService) Update(id uuid.UUID, req *dto.AchievementUpdateRequest, actorID uuid.UUID) (*model.AchievementModel, error) {
	m, err := s.GetByID(id)
	if err != nil {
		return nil, err
	}

	ec := helper.NewErrorCollector()
	ec.MergeStruct(req)
	if req.Year != nil {
		validateYearCeiling(ec, *req.Year)
	}
	if err := ec.Err(); err != nil {
		return nil, err
	}

	title := m.AchievementTitle
	if req.Title != nil {
		title = strings.TrimSpace(*req.Title)
	}
	year := m.AchievementYear
	if req.Year != nil {
		year = *req.Year
	}
	if title != m.AchievementTitle || year != m.AchievementYear {
		if err := s.checkTripleFree(m.AchievementFigureID, title, year, m.AchievementID); err != nil {
			return nil, err
		}
	}

	m.AchievementTitle = title
	m.AchievementYear = year
	if req.Category != nil {
		m.AchievementCategory = *req.Category
	}
	if req.Description != nil {
		m.AchievementDescription = *req.Description
	}
	if req.AwardingBody != nil {
		m.AchievementAwardingBody = strings.TrimSpace(*req.AwardingBody)
	}
	if req.EvidenceLink != nil {
		m.AchievementEvidenceLink = strings.TrimSpace(*req.EvidenceLink)
	}
	if req.Status != nil {
		m.AchievementStatus = *req.Status
	}
	m.AchievementUpdatedBy = actorRef(actorID)

	if err := s.db.Save(m).Error; err != nil {
		return nil, err
	}
	return s.GetByID(id)
}

func (s *AchievementService) Delete(id uuid.UUID) error {
	m, err := s.GetByID(id)
	if err != nil {
		return err
	}
	return s.db.Delete(m).Error
}

// DeleteByFigure soft-deletes every live achievement of one figure.
// Runs inside the figure's own delete transaction.
func DeleteByFigure(tx *gorm.DB, figureID uuid.UUID) error {
	return tx.Delete(&model.AchievementModel{}, "achievement_figure_id = ?", figureID).Error
}

func (s *AchievementService) checkFigureExists(figureID uuid.UUID) error {
	var cnt int64
	err := s.db.Model(&figureModel.PoliticalFigureModel{}).
		Where("political_figure_id = ?", figureID).
		Count(&cnt).Error
	if err != nil {
		return err
	}
	if cnt == 0 {
		return helper.NewValidationError(map[string][]string{
			"political_figure_id": {"Political figure not found."},
		})
	}
	return nil
}

// the (figure, title, year) triple is unique among live rows only.
func (s *AchievementService) checkTripleFree(figureID uuid.UUID, title string, year int, selfID uuid.UUID) error {
	q := s.db.Model(&model.AchievementModel{}).
		Where("achievement_figure_id = ? AND lower(achievement_title) = lower(?) AND achievement_year = ?",
			figureID, title, year)
	if selfID != uuid.Nil {
		q = q.Where("achievement_id <> ?", selfID)
	}
	var cnt int64
	if err := q.Count(&cnt).Error; err != nil {
		return err
	}
	if cnt > 0 {
		return helper.NewValidationError(map[string][]string{
			"title": {"This figure already has that achievement for that year."},
		})
	}
	return nil
}

func validateYearCeiling(ec *helper.ErrorCollector, year int) {
	if year > time.Now().Year() {
		ec.Add("year", "Year cannot be in the future.")
	}
}

func actorRef(actorID uuid.UUID) *uuid.UUID {
	if actorID == uuid.Nil {
		return nil
	}
	id := actorID
	return &id
}

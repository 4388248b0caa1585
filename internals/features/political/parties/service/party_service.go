package service

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	helper "civicdata_backend/internals/helpers"

	"civicdata_backend/internals/features/political/parties/dto"
	"civicdata_backend/internals/features/political/parties/model"
)

var partySlugOpts = helper.SlugOptions{
	Table:      "political_parties",
	SlugColumn: "political_party_slug",
}

type PartyService struct {
	db *gorm.DB
}

func NewPartyService(db *gorm.DB) *PartyService {
	return &PartyService{db: db}
}

func (s *PartyService) GetByID(id uuid.UUID) (*model.PoliticalPartyModel, error) {
	var m model.PoliticalPartyModel
	if err := s.db.First(&m, "political_party_id = ?", id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, helper.NewNotFoundError("Political party not found")
		}
		return nil, err
	}
	return &m, nil
}

func (s *PartyService) GetBySlug(slug string) (*model.PoliticalPartyModel, error) {
	var m model.PoliticalPartyModel
	if err := s.db.First(&m, "political_party_slug = ?", strings.ToLower(strings.TrimSpace(slug))).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, helper.NewNotFoundError("Political party not found")
		}
		return nil, err
	}
	return &m, nil
}

func (s *PartyService) List(search string, paging helper.Paging) ([]model.PoliticalPartyModel, int64, error) {
	q := s.db.Model(&model.PoliticalPartyModel{})
	if search = strings.TrimSpace(search); search != "" {
		like := "%" + strings.ToLower(search) + "%"
		q = q.Where("lower(political_party_name) LIKE ? OR lower(political_party_abbreviation) LIKE ?", like, like)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var ms []model.PoliticalPartyModel
	err := q.Order("political_party_name asc").
		Offset(paging.Offset).Limit(paging.Limit).
		Find(&ms).Error
	return ms, total, err
}

func (s *PartyService) Create(req *dto.PartyCreateRequest, actorID uuid.UUID) (*model.PoliticalPartyModel, error) {
	ec := helper.NewErrorCollector()
	ec.MergeStruct(req)
	validateDissolution(ec, req.FoundedDate, req.DissolvedDate)
	if err := ec.Err(); err != nil {
		return nil, err
	}

	actor := actorRef(actorID)
	m := &model.PoliticalPartyModel{
		PoliticalPartyName:         strings.TrimSpace(req.Name),
		PoliticalPartyAbbreviation: strings.TrimSpace(req.Abbreviation),
		PoliticalPartyDescription:  req.Description,
		PoliticalPartyFoundedDate:  dto.ParseDate(req.FoundedDate),
		PoliticalPartyIdeology:     req.Ideology,
		PoliticalPartyHQLocation:   strings.TrimSpace(req.HQLocation),
		PoliticalPartyWebsite:      strings.TrimSpace(req.Website),
		PoliticalPartyLogoURL:      strings.TrimSpace(req.LogoURL),
		PoliticalPartyCreatedBy:    actor,
		PoliticalPartyUpdatedBy:    actor,
	}
	if req.DissolvedDate != "" {
		d := dto.ParseDate(req.DissolvedDate)
		m.PoliticalPartyDissolvedDate = &d
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		slug, err := helper.AssignSlug(tx, partySlugOpts, m.PoliticalPartyName, m.PoliticalPartySlug)
		if err != nil {
			return err
		}
		m.PoliticalPartySlug = slug
		return tx.Create(m).Error
	})
	if err != nil {
		return nil, err
	}
	return m, nil
}

// Update applies the present fields only. The slug never changes, even
// when the name does.
func (s *PartyService) Update(id uuid.UUID, req *dto.PartyUpdateRequest, actorID uuid.UUID) (*model.PoliticalPartyModel, error) {
	m, err := s.GetByID(id)
	if err != nil {
		return nil, err
	}

	ec := helper.NewErrorCollector()
	ec.MergeStruct(req)

	// the dissolution rule runs against the values as they will stand
	founded := dto.FormatDate(m.PoliticalPartyFoundedDate)
	if req.FoundedDate != nil {
		founded = *req.FoundedDate
	}
	dissolved := ""
	if m.PoliticalPartyDissolvedDate != nil {
		dissolved = dto.FormatDate(*m.PoliticalPartyDissolvedDate)
	}
	if req.DissolvedDate != nil {
		dissolved = *req.DissolvedDate
	}
	validateDissolution(ec, founded, dissolved)
	if err := ec.Err(); err != nil {
		return nil, err
	}

	if req.Name != nil {
		m.PoliticalPartyName = strings.TrimSpace(*req.Name)
	}
	if req.Abbreviation != nil {
		m.PoliticalPartyAbbreviation = strings.TrimSpace(*req.Abbreviation)
	}
	if req.Description != nil {
		m.PoliticalPartyDescription = *req.Description
	}
	if req.FoundedDate != nil {
		m.PoliticalPartyFoundedDate = dto.ParseDate(*req.FoundedDate)
	}
	if req.DissolvedDate != nil {
		if *req.DissolvedDate == "" {
			m.PoliticalPartyDissolvedDate = nil
		} else {
			d := dto.ParseDate(*req.DissolvedDate)
			m.PoliticalPartyDissolvedDate = &d
		}
	}
	if req.Ideology != nil {
		m.PoliticalPartyIdeology = *req.Ideology
	}
	if req.HQLocation != nil {
		m.PoliticalPartyHQLocation = strings.TrimSpace(*req.HQLocation)
	}
	if req.Website != nil {
		m.PoliticalPartyWebsite = strings.TrimSpace(*req.Website)
	}
	if req.LogoURL != nil {
		m.PoliticalPartyLogoURL = strings.TrimSpace(*req.LogoURL)
	}
	m.PoliticalPartyUpdatedBy = actorRef(actorID)

	if err := s.db.Save(m).Error; err != nil {
		return nil, err
	}
	return s.GetByID(id)
}

// Delete soft-deletes the party and detaches every live figure still
// pointing at it, in one transaction.
func (s *PartyService) Delete(id uuid.UUID, actorID uuid.UUID) error {
	m, err := s.GetByID(id)
	if err != nil {
		return err
	}

	return s.db.Transaction(func(tx *gorm.DB) error {
		// raw table reference keeps the figure package out of this one
		err := tx.Table("political_figures").
			Where("political_figure_party_id = ? AND political_figure_deleted_at IS NULL", m.PoliticalPartyID).
			Updates(map[string]any{
				"political_figure_party_id":  nil,
				"political_figure_updated_by": actorRef(actorID),
				"political_figure_updated_at": time.Now(),
			}).Error
		if err != nil {
			return err
		}
		return tx.Delete(m).Error
	})
}

func validateDissolution(ec *helper.ErrorCollector, founded, dissolved string) {
	if founded == "" || dissolved == "" {
		return
	}
	f, errF := time.Parse("2006-01-02", founded)
	d, errD := time.Parse("2006-01-02", dissolved)
	if errF != nil || errD != nil {
		return // format errors already collected by the struct pass
	}
	if !d.After(f) {
		ec.Add("dissolved_date", "Dissolved date must be later than founded date.")
	}
}

func actorRef(actorID uuid.UUID) *uuid.UUID {
	if actorID == uuid.Nil {
		return nil
	}
	id := actorID
	return &id
}

package service

import (
	"context"
	"log"
	"strings"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"

	helper "civicdata_backend/internals/helpers"
	helperOSS "civicdata_backend/internals/helpers/oss"

	addressDTO "civicdata_backend/internals/features/core/address/dto"
	addressModel "civicdata_backend/internals/features/core/address/model"
	addressService "civicdata_backend/internals/features/core/address/service"
	achievementService "civicdata_backend/internals/features/political/achievements/service"
	"civicdata_backend/internals/features/political/figures/dto"
	"civicdata_backend/internals/features/political/figures/model"
	partyDTO "civicdata_backend/internals/features/political/parties/dto"
	partyModel "civicdata_backend/internals/features/political/parties/model"
)

var figureSlugOpts = helper.SlugOptions{
	Table:      "political_figures",
	SlugColumn: "political_figure_slug",
}

// FigureService is the only writer of the figure aggregate. Every
// mutation runs root and owned addresses in one transaction; blob
// cleanup is deferred until after a successful commit.
type FigureService struct {
	db   *gorm.DB
	blob helperOSS.BlobService
}

func NewFigureService(db *gorm.DB, blob helperOSS.BlobService) *FigureService {
	return &FigureService{db: db, blob: blob}
}

func (s *FigureService) GetByID(id uuid.UUID) (*model.PoliticalFigureModel, error) {
	var m model.PoliticalFigureModel
	err := s.db.
		Preload("HomeAddress").
		Preload("CurrentAddress").
		Preload("Party").
		First(&m, "political_figure_id = ?", id).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, helper.NewNotFoundError("Political figure not found")
		}
		return nil, err
	}
	return &m, nil
}

func (s *FigureService) GetBySlug(slug string) (*model.PoliticalFigureModel, error) {
	var m model.PoliticalFigureModel
	err := s.db.
		Preload("HomeAddress").
		Preload("CurrentAddress").
		Preload("Party").
		First(&m, "political_figure_slug = ?", strings.ToLower(strings.TrimSpace(slug))).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, helper.NewNotFoundError("Political figure not found")
		}
		return nil, err
	}
	return &m, nil
}

func (s *FigureService) List(search string, partyID *uuid.UUID, paging helper.Paging) ([]model.PoliticalFigureModel, int64, error) {
	q := s.db.Model(&model.PoliticalFigureModel{})
	if search = strings.TrimSpace(search); search != "" {
		like := "%" + strings.ToLower(search) + "%"
		q = q.Where("lower(political_figure_full_name) LIKE ?", like)
	}
	if partyID != nil {
		q = q.Where("political_figure_party_id = ?", *partyID)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var ms []model.PoliticalFigureModel
	err := q.
		Preload("HomeAddress").
		Preload("CurrentAddress").
		Preload("Party").
		Order("political_figure_full_name asc").
		Offset(paging.Offset).Limit(paging.Limit).
		Find(&ms).Error
	return ms, total, err
}

// Create validates root and both nested addresses in a single pass,
// then persists addresses and root inside one transaction. Either the
// whole aggregate lands or nothing does.
func (s *FigureService) Create(ctx context.Context, req *dto.FigureCreateRequest, actorID uuid.UUID) (*model.PoliticalFigureModel, error) {
	ec := helper.NewErrorCollector()
	ec.MergeStruct(req)
	if err := ec.Err(); err != nil {
		return nil, err
	}

	var partyID *uuid.UUID
	if req.PoliticalParty != nil && *req.PoliticalParty != "" {
		id, err := s.resolveParty(*req.PoliticalParty)
		if err != nil {
			return nil, err
		}
		partyID = id
	}

	actor := actorRef(actorID)
	m := &model.PoliticalFigureModel{
		PoliticalFigureFullName:      strings.TrimSpace(req.FullName),
		PoliticalFigureGender:        req.Gender,
		PoliticalFigureBio:           req.Biography,
		PoliticalFigurePhotoURL:      strings.TrimSpace(req.PhotoURL),
		PoliticalFigurePartyID:       partyID,
		PoliticalFigureContactNumber: strings.TrimSpace(req.ContactNumber),
		PoliticalFigureWebsite:       strings.TrimSpace(req.Website),
		PoliticalFigureFacebookURL:   strings.TrimSpace(req.FacebookURL),
		PoliticalFigureTwitterURL:    strings.TrimSpace(req.TwitterURL),
		PoliticalFigureInstagramURL:  strings.TrimSpace(req.InstagramURL),
		PoliticalFigureAliases:       pq.StringArray(req.Aliases),
		PoliticalFigureIsActive:      true,
		PoliticalFigureCreatedBy:     actor,
		PoliticalFigureUpdatedBy:     actor,
	}
	if req.DateOfBirth != "" {
		d := partyDTO.ParseDate(req.DateOfBirth)
		m.PoliticalFigureDOB = &d
	}

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		home, err := addressService.CreateAddress(tx, &req.HomeAddress, actorID)
		if err != nil {
			return err
		}
		current, err := addressService.CreateAddress(tx, &req.CurrentAddress, actorID)
		if err != nil {
			return err
		}
		m.PoliticalFigureHomeAddressID = home.AddressID
		m.PoliticalFigureCurrentAddressID = current.AddressID

		slug, err := helper.AssignSlug(tx, figureSlugOpts, m.PoliticalFigureFullName, m.PoliticalFigureSlug)
		if err != nil {
			return err
		}
		m.PoliticalFigureSlug = slug

		return tx.Create(m).Error
	})
	if err != nil {
		return nil, err
	}
	return s.GetByID(m.PoliticalFigureID)
}

// Update applies a partial payload. Photo follows tri-state semantics:
// key absent keeps the stored asset, explicit null clears it, a new
// value replaces it. The superseded asset is deleted only after the
// transaction commits.
func (s *FigureService) Update(ctx context.Context, id uuid.UUID, req *dto.FigureUpdateRequest, actorID uuid.UUID) (*model.PoliticalFigureModel, error) {
	m, err := s.GetByID(id)
	if err != nil {
		return nil, err
	}
	oldPhoto := m.PoliticalFigurePhotoURL

	ec := helper.NewErrorCollector()
	ec.MergeStruct(req)
	if err := ec.Err(); err != nil {
		return nil, err
	}

	var partyID *uuid.UUID
	partyChanged := req.PoliticalParty.Present
	if partyChanged && req.PoliticalParty.Valid {
		resolved, err := s.resolveParty(req.PoliticalParty.Value.String())
		if err != nil {
			return nil, err
		}
		partyID = resolved
	}

	var postCommit []func()

	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if req.HomeAddress != nil {
			if err := s.updateOwnedAddress(tx, m.PoliticalFigureHomeAddressID, req.HomeAddress, actorID); err != nil {
				return err
			}
		}
		if req.CurrentAddress != nil {
			if err := s.updateOwnedAddress(tx, m.PoliticalFigureCurrentAddressID, req.CurrentAddress, actorID); err != nil {
				return err
			}
		}

		if req.FullName != nil {
			// the slug was assigned at creation and never moves
			m.PoliticalFigureFullName = strings.TrimSpace(*req.FullName)
		}
		if req.DateOfBirth != nil {
			if *req.DateOfBirth == "" {
				m.PoliticalFigureDOB = nil
			} else {
				d := partyDTO.ParseDate(*req.DateOfBirth)
				m.PoliticalFigureDOB = &d
			}
		}
		if req.Gender != nil {
			m.PoliticalFigureGender = *req.Gender
		}
		if req.Biography != nil {
			m.PoliticalFigureBio = *req.Biography
		}
		if req.ContactNumber != nil {
			m.PoliticalFigureContactNumber = strings.TrimSpace(*req.ContactNumber)
		}
		if req.Website != nil {
			m.PoliticalFigureWebsite = strings.TrimSpace(*req.Website)
		}
		if req.FacebookURL != nil {
			m.PoliticalFigureFacebookURL = strings.TrimSpace(*req.FacebookURL)
		}
		if req.TwitterURL != nil {
			m.PoliticalFigureTwitterURL = strings.TrimSpace(*req.TwitterURL)
		}
		if req.InstagramURL != nil {
			m.PoliticalFigureInstagramURL = strings.TrimSpace(*req.InstagramURL)
		}
		if req.Aliases != nil {
			m.PoliticalFigureAliases = pq.StringArray(*req.Aliases)
		}
		if req.IsActive != nil {
			m.PoliticalFigureIsActive = *req.IsActive
		}
		if partyChanged {
			m.PoliticalFigurePartyID = partyID
		}

		if req.Photo.Present {
			newPhoto := ""
			if req.Photo.Valid {
				newPhoto = strings.TrimSpace(req.Photo.Value)
			}
			m.PoliticalFigurePhotoURL = newPhoto
			if oldPhoto != "" && oldPhoto != newPhoto {
				stale := oldPhoto
				postCommit = append(postCommit, func() {
					s.deleteBlob(ctx, stale)
				})
			}
		}

		m.PoliticalFigureUpdatedBy = actorRef(actorID)

		// associations are already persisted rows; only the root columns move here
		return tx.Omit("HomeAddress", "CurrentAddress", "Party").Save(m).Error
	})
	if err != nil {
		return nil, err
	}

	for _, hook := range postCommit {
		hook()
	}
	return s.GetByID(id)
}

// Delete soft-deletes both owned addresses, the figure's achievements
// and the root as one unit.
func (s *FigureService) Delete(ctx context.Context, id uuid.UUID, actorID uuid.UUID) error {
	m, err := s.GetByID(id)
	if err != nil {
		return err
	}

	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		addrIDs := []uuid.UUID{m.PoliticalFigureHomeAddressID, m.PoliticalFigureCurrentAddressID}
		if err := tx.Delete(&addressModel.AddressModel{}, "address_id IN ?", addrIDs).Error; err != nil {
			return err
		}
		if err := achievementService.DeleteByFigure(tx, m.PoliticalFigureID); err != nil {
			return err
		}
		return tx.Delete(m).Error
	})
	if err != nil {
		return err
	}

	if m.PoliticalFigurePhotoURL != "" {
		s.deleteBlob(ctx, m.PoliticalFigurePhotoURL)
	}
	return nil
}

func (s *FigureService) updateOwnedAddress(tx *gorm.DB, addrID uuid.UUID, req *addressDTO.AddressUpdateRequest, actorID uuid.UUID) error {
	var addr addressModel.AddressModel
	if err := tx.First(&addr, "address_id = ?", addrID).Error; err != nil {
		return err
	}
	return addressService.UpdateAddress(tx, &addr, req, actorID)
}

func (s *FigureService) resolveParty(raw string) (*uuid.UUID, error) {
	id, err := uuid.Parse(raw)
	if err != nil {
		return nil, helper.NewValidationError(map[string][]string{
			"political_party": {"Enter a valid identifier."},
		})
	}
	var party partyModel.PoliticalPartyModel
	if err := s.db.First(&party, "political_party_id = ?", id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, helper.NewValidationError(map[string][]string{
				"political_party": {"Political party not found."},
			})
		}
		return nil, err
	}
	out := party.PoliticalPartyID
	return &out, nil
}

// blob cleanup is best effort: a stale object never blocks or reverts
// a committed update.
func (s *FigureService) deleteBlob(ctx context.Context, publicURL string) {
	if s.blob == nil || publicURL == "" {
		return
	}
	if err := s.blob.DeleteByPublicURL(ctx, publicURL); err != nil {
		log.Printf("[WARN] failed to delete stale photo asset %s: %v", publicURL, err)
	}
}

func actorRef(actorID uuid.UUID) *uuid.UUID {
	if actorID == uuid.Nil {
		return nil
	}
	id := actorID
	return &id
}

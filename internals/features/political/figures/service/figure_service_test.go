package service

import (
	"context"
	"fmt"
	"mime/multipart"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	addressDTO "civicdata_backend/internals/features/core/address/dto"
	addressModel "civicdata_backend/internals/features/core/address/model"
	achievementModel "civicdata_backend/internals/features/political/achievements/model"
	"civicdata_backend/internals/features/political/figures/dto"
	"civicdata_backend/internals/features/political/figures/model"
	partyModel "civicdata_backend/internals/features/political/parties/model"
	helper "civicdata_backend/internals/helpers"
)

// blobRecorder stands in for OSS and records every deletion request.
type blobRecorder struct {
	deleted []string
}

func (b *blobRecorder) UploadImage(ctx context.Context, dir string, fh *multipart.FileHeader) (string, error) {
	return "https://bucket.example.com/" + dir + "/uploaded.webp", nil
}

func (b *blobRecorder) DeleteByPublicURL(ctx context.Context, publicURL string) error {
	b.deleted = append(b.deleted, publicURL)
	return nil
}

func newFigureDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&addressModel.AddressModel{},
		&partyModel.PoliticalPartyModel{},
		&model.PoliticalFigureModel{},
		&achievementModel.AchievementModel{},
	))
	return db
}

func addrReq(street, city string) addressDTO.AddressCreateRequest {
	return addressDTO.AddressCreateRequest{
		StreetAddress: street,
		City:          city,
		Country:       "NP",
	}
}

func createReq(fullName string) *dto.FigureCreateRequest {
	return &dto.FigureCreateRequest{
		FullName:       fullName,
		Gender:         model.GenderFemale,
		HomeAddress:    addrReq("12 Hill Road", "Kathmandu"),
		CurrentAddress: addrReq("99 Valley Street", "Pokhara"),
	}
}

func TestCreateFigureEndToEnd(t *testing.T) {
	db := newFigureDB(t)
	svc := NewFigureService(db, &blobRecorder{})
	actor := uuid.New()

	m, err := svc.Create(context.Background(), createReq("Jane Doe"), actor)
	require.NoError(t, err)

	assert.Equal(t, "jane-doe", m.PoliticalFigureSlug)
	assert.Nil(t, m.PoliticalFigurePartyID)
	require.NotNil(t, m.HomeAddress)
	require.NotNil(t, m.CurrentAddress)
	assert.Equal(t, "12 Hill Road", m.HomeAddress.AddressStreetAddress)
	assert.Equal(t, "Kathmandu", m.HomeAddress.AddressCity)
	assert.Equal(t, "99 Valley Street", m.CurrentAddress.AddressStreetAddress)
	assert.Equal(t, "Pokhara", m.CurrentAddress.AddressCity)
	require.NotNil(t, m.PoliticalFigureCreatedBy)
	assert.Equal(t, actor, *m.PoliticalFigureCreatedBy)

	resp := dto.FromModelFigure(m)
	assert.Nil(t, resp.PoliticalPartyName)
	assert.Nil(t, resp.PoliticalPartySlug)
	assert.Equal(t, "jane-doe", resp.Slug)
}

func TestCreateFigureValidationAggregatesNestedErrors(t *testing.T) {
	db := newFigureDB(t)
	svc := NewFigureService(db, &blobRecorder{})

	req := createReq("")
	req.HomeAddress.City = ""
	req.CurrentAddress.Country = "xx"

	_, err := svc.Create(context.Background(), req, uuid.New())
	var ve *helper.ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Contains(t, ve.Fields, "full_name")
	assert.Contains(t, ve.Fields, "home_address.city")
	assert.Contains(t, ve.Fields, "current_address.country")

	// validation failed before any transaction: nothing persisted
	var addrCount int64
	require.NoError(t, db.Model(&addressModel.AddressModel{}).Count(&addrCount).Error)
	assert.Zero(t, addrCount)
}

func TestCreateFigureRollbackLeavesNoAddresses(t *testing.T) {
	db := newFigureDB(t)
	svc := NewFigureService(db, &blobRecorder{})

	// force root insertion to fail on the second create
	require.NoError(t, db.Exec(
		"CREATE UNIQUE INDEX idx_figures_full_name_test ON political_figures(political_figure_full_name)",
	).Error)

	_, err := svc.Create(context.Background(), createReq("Jane Doe"), uuid.New())
	require.NoError(t, err)

	var before int64
	require.NoError(t, db.Model(&addressModel.AddressModel{}).Count(&before).Error)
	require.EqualValues(t, 2, before)

	_, err = svc.Create(context.Background(), createReq("Jane Doe"), uuid.New())
	require.Error(t, err)

	var after int64
	require.NoError(t, db.Model(&addressModel.AddressModel{}).Count(&after).Error)
	assert.Equal(t, before, after, "rolled-back create must not leave orphan addresses")
}

func TestUpdateSlugImmutable(t *testing.T) {
	db := newFigureDB(t)
	svc := NewFigureService(db, &blobRecorder{})

	m, err := svc.Create(context.Background(), createReq("Jane Doe"), uuid.New())
	require.NoError(t, err)

	newName := "Janet Doeberg"
	updated, err := svc.Update(context.Background(), m.PoliticalFigureID,
		&dto.FigureUpdateRequest{FullName: &newName}, uuid.New())
	require.NoError(t, err)

	assert.Equal(t, "Janet Doeberg", updated.PoliticalFigureFullName)
	assert.Equal(t, "jane-doe", updated.PoliticalFigureSlug)
}

func TestUpdatePartialLeavesAddressesUntouched(t *testing.T) {
	db := newFigureDB(t)
	svc := NewFigureService(db, &blobRecorder{})

	m, err := svc.Create(context.Background(), createReq("Jane Doe"), uuid.New())
	require.NoError(t, err)

	var homeBefore addressModel.AddressModel
	require.NoError(t, db.First(&homeBefore, "address_id = ?", m.PoliticalFigureHomeAddressID).Error)

	bio := "Updated biography only"
	_, err = svc.Update(context.Background(), m.PoliticalFigureID,
		&dto.FigureUpdateRequest{Biography: &bio}, uuid.New())
	require.NoError(t, err)

	var homeAfter addressModel.AddressModel
	require.NoError(t, db.First(&homeAfter, "address_id = ?", m.PoliticalFigureHomeAddressID).Error)

	assert.Equal(t, homeBefore.AddressStreetAddress, homeAfter.AddressStreetAddress)
	assert.Equal(t, homeBefore.AddressCity, homeAfter.AddressCity)
	assert.Equal(t, homeBefore.AddressUpdatedAt, homeAfter.AddressUpdatedAt)
}

func TestUpdateAddressInPlace(t *testing.T) {
	db := newFigureDB(t)
	svc := NewFigureService(db, &blobRecorder{})

	m, err := svc.Create(context.Background(), createReq("Jane Doe"), uuid.New())
	require.NoError(t, err)

	city := "Lalitpur"
	updated, err := svc.Update(context.Background(), m.PoliticalFigureID, &dto.FigureUpdateRequest{
		HomeAddress: &addressDTO.AddressUpdateRequest{City: &city},
	}, uuid.New())
	require.NoError(t, err)

	// same row, new value
	assert.Equal(t, m.PoliticalFigureHomeAddressID, updated.PoliticalFigureHomeAddressID)
	assert.Equal(t, "Lalitpur", updated.HomeAddress.AddressCity)
	assert.Equal(t, "12 Hill Road", updated.HomeAddress.AddressStreetAddress)
}

func TestUpdatePhotoTriState(t *testing.T) {
	const oldPhoto = "https://bucket.example.com/photos/old.webp"

	setup := func(t *testing.T) (*FigureService, *blobRecorder, uuid.UUID) {
		db := newFigureDB(t)
		rec := &blobRecorder{}
		svc := NewFigureService(db, rec)
		req := createReq("Jane Doe")
		req.PhotoURL = oldPhoto
		m, err := svc.Create(context.Background(), req, uuid.New())
		require.NoError(t, err)
		return svc, rec, m.PoliticalFigureID
	}

	t.Run("absent key keeps photo", func(t *testing.T) {
		svc, rec, id := setup(t)
		bio := "no photo key in payload"
		updated, err := svc.Update(context.Background(), id,
			&dto.FigureUpdateRequest{Biography: &bio}, uuid.New())
		require.NoError(t, err)
		assert.Equal(t, oldPhoto, updated.PoliticalFigurePhotoURL)
		assert.Empty(t, rec.deleted)
	})

	t.Run("explicit null clears and deletes old asset", func(t *testing.T) {
		svc, rec, id := setup(t)
		var req dto.FigureUpdateRequest
		req.Photo.SetNull()
		updated, err := svc.Update(context.Background(), id, &req, uuid.New())
		require.NoError(t, err)
		assert.Empty(t, updated.PoliticalFigurePhotoURL)
		assert.Equal(t, []string{oldPhoto}, rec.deleted)
	})

	t.Run("new value replaces and deletes old asset", func(t *testing.T) {
		svc, rec, id := setup(t)
		var req dto.FigureUpdateRequest
		req.Photo.Set("https://bucket.example.com/photos/new.webp")
		updated, err := svc.Update(context.Background(), id, &req, uuid.New())
		require.NoError(t, err)
		assert.Equal(t, "https://bucket.example.com/photos/new.webp", updated.PoliticalFigurePhotoURL)
		assert.Equal(t, []string{oldPhoto}, rec.deleted)
	})

	t.Run("replace with no previous photo deletes nothing", func(t *testing.T) {
		db := newFigureDB(t)
		rec := &blobRecorder{}
		svc := NewFigureService(db, rec)
		m, err := svc.Create(context.Background(), createReq("Jane Doe"), uuid.New())
		require.NoError(t, err)

		var req dto.FigureUpdateRequest
		req.Photo.Set("https://bucket.example.com/photos/new.webp")
		_, err = svc.Update(context.Background(), m.PoliticalFigureID, &req, uuid.New())
		require.NoError(t, err)
		assert.Empty(t, rec.deleted)
	})
}

func TestUpdatePhotoHookSkippedOnRollback(t *testing.T) {
	db := newFigureDB(t)
	rec := &blobRecorder{}
	svc := NewFigureService(db, rec)

	require.NoError(t, db.Exec(
		"CREATE UNIQUE INDEX idx_figures_full_name_test ON political_figures(political_figure_full_name)",
	).Error)

	_, err := svc.Create(context.Background(), createReq("Jane Doe"), uuid.New())
	require.NoError(t, err)

	reqB := createReq("John Roe")
	reqB.PhotoURL = "https://bucket.example.com/photos/john.webp"
	figB, err := svc.Create(context.Background(), reqB, uuid.New())
	require.NoError(t, err)

	// colliding rename forces the root save to fail after the photo
	// disposition was already decided
	collide := "Jane Doe"
	var req dto.FigureUpdateRequest
	req.FullName = &collide
	req.Photo.SetNull()
	_, err = svc.Update(context.Background(), figB.PoliticalFigureID, &req, uuid.New())
	require.Error(t, err)

	assert.Empty(t, rec.deleted, "no blob deletion may fire after a rollback")

	kept, err := svc.GetByID(figB.PoliticalFigureID)
	require.NoError(t, err)
	assert.Equal(t, "https://bucket.example.com/photos/john.webp", kept.PoliticalFigurePhotoURL)
}

func TestUpdatePartyReference(t *testing.T) {
	db := newFigureDB(t)
	svc := NewFigureService(db, &blobRecorder{})

	party := partyModel.PoliticalPartyModel{
		PoliticalPartyName: "Civic Front",
		PoliticalPartySlug: "civic-front",
	}
	require.NoError(t, db.Create(&party).Error)

	m, err := svc.Create(context.Background(), createReq("Jane Doe"), uuid.New())
	require.NoError(t, err)

	var attach dto.FigureUpdateRequest
	require.NoError(t, attach.PoliticalParty.UnmarshalJSON([]byte(`"`+party.PoliticalPartyID.String()+`"`)))
	updated, err := svc.Update(context.Background(), m.PoliticalFigureID, &attach, uuid.New())
	require.NoError(t, err)
	require.NotNil(t, updated.PoliticalFigurePartyID)
	assert.Equal(t, party.PoliticalPartyID, *updated.PoliticalFigurePartyID)
	require.NotNil(t, updated.Party)

	var detach dto.FigureUpdateRequest
	require.NoError(t, detach.PoliticalParty.UnmarshalJSON([]byte(`null`)))
	updated, err = svc.Update(context.Background(), m.PoliticalFigureID, &detach, uuid.New())
	require.NoError(t, err)
	assert.Nil(t, updated.PoliticalFigurePartyID)
}

func TestDeleteFigureCascades(t *testing.T) {
	db := newFigureDB(t)
	rec := &blobRecorder{}
	svc := NewFigureService(db, rec)

	req := createReq("Jane Doe")
	req.PhotoURL = "https://bucket.example.com/photos/jane.webp"
	m, err := svc.Create(context.Background(), req, uuid.New())
	require.NoError(t, err)

	ach := achievementModel.AchievementModel{
		AchievementFigureID: m.PoliticalFigureID,
		AchievementTitle:    "Mayor of Kathmandu",
		AchievementCategory: achievementModel.CategoryLeadership,
		AchievementYear:     2015,
		AchievementStatus:   achievementModel.StatusVerified,
	}
	require.NoError(t, db.Create(&ach).Error)

	require.NoError(t, svc.Delete(context.Background(), m.PoliticalFigureID, uuid.New()))

	_, err = svc.GetByID(m.PoliticalFigureID)
	var nf *helper.NotFoundError
	assert.ErrorAs(t, err, &nf)

	// soft deleted, not gone
	var figUnscoped model.PoliticalFigureModel
	require.NoError(t, db.Unscoped().First(&figUnscoped, "political_figure_id = ?", m.PoliticalFigureID).Error)
	assert.True(t, figUnscoped.PoliticalFigureDeletedAt.Valid)

	var liveAddrs int64
	require.NoError(t, db.Model(&addressModel.AddressModel{}).
		Where("address_id IN ?", []uuid.UUID{m.PoliticalFigureHomeAddressID, m.PoliticalFigureCurrentAddressID}).
		Count(&liveAddrs).Error)
	assert.Zero(t, liveAddrs)

	var liveAchievements int64
	require.NoError(t, db.Model(&achievementModel.AchievementModel{}).
		Where("achievement_figure_id = ?", m.PoliticalFigureID).
		Count(&liveAchievements).Error)
	assert.Zero(t, liveAchievements)

	assert.Equal(t, []string{"https://bucket.example.com/photos/jane.webp"}, rec.deleted)
}

func TestCreateFigureSlugCollision(t *testing.T) {
	db := newFigureDB(t)
	svc := NewFigureService(db, &blobRecorder{})

	first, err := svc.Create(context.Background(), createReq("Jane Doe"), uuid.New())
	require.NoError(t, err)

	second, err := svc.Create(context.Background(), createReq("jane doe"), uuid.New())
	require.NoError(t, err)

	assert.Equal(t, "jane-doe", first.PoliticalFigureSlug)
	assert.NotEqual(t, first.PoliticalFigureSlug, second.PoliticalFigureSlug)
	assert.True(t, strings.HasPrefix(second.PoliticalFigureSlug, "jane-doe-"))
	assert.LessOrEqual(t, len(second.PoliticalFigureSlug), helper.SlugMaxLen)
}

package service

import (
	"context"
	"fmt"
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
	figureDTO "civicdata_backend/internals/features/political/figures/dto"
	figureModel "civicdata_backend/internals/features/political/figures/model"
	figureService "civicdata_backend/internals/features/political/figures/service"
	"civicdata_backend/internals/features/political/parties/dto"
	"civicdata_backend/internals/features/political/parties/model"
	helper "civicdata_backend/internals/helpers"
)

func newPartyDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&model.PoliticalPartyModel{},
		&addressModel.AddressModel{},
		&figureModel.PoliticalFigureModel{},
		&achievementModel.AchievementModel{},
	))
	return db
}

func partyReq(name string) *dto.PartyCreateRequest {
	return &dto.PartyCreateRequest{
		Name:        name,
		FoundedDate: "1990-04-09",
	}
}

func TestCreatePartyAssignsSlug(t *testing.T) {
	db := newPartyDB(t)
	svc := NewPartyService(db)

	m, err := svc.Create(partyReq("Civic Front"), uuid.New())
	require.NoError(t, err)
	assert.Equal(t, "civic-front", m.PoliticalPartySlug)
	assert.Equal(t, "1990-04-09", dto.FormatDate(m.PoliticalPartyFoundedDate))
}

func TestCreatePartyDissolutionInvariant(t *testing.T) {
	db := newPartyDB(t)
	svc := NewPartyService(db)

	req := partyReq("Short Lived Party")
	req.DissolvedDate = "1989-01-01"
	_, err := svc.Create(req, uuid.New())

	var ve *helper.ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Contains(t, ve.Fields, "dissolved_date")

	// dissolved on the founding day is rejected too
	sameDay := partyReq("One Day Party")
	sameDay.DissolvedDate = sameDay.FoundedDate
	_, err = svc.Create(sameDay, uuid.New())
	require.ErrorAs(t, err, &ve)
	assert.Contains(t, ve.Fields, "dissolved_date")
}

func TestCreatePartyDissolvedAfterFoundedOK(t *testing.T) {
	db := newPartyDB(t)
	svc := NewPartyService(db)

	req := partyReq("Dissolved Party")
	req.DissolvedDate = "2005-12-31"
	m, err := svc.Create(req, uuid.New())
	require.NoError(t, err)
	require.NotNil(t, m.PoliticalPartyDissolvedDate)
}

func TestUpdatePartyDissolutionCheckedAgainstEffectiveValues(t *testing.T) {
	db := newPartyDB(t)
	svc := NewPartyService(db)

	m, err := svc.Create(partyReq("Civic Front"), uuid.New())
	require.NoError(t, err)

	bad := "1970-01-01"
	_, err = svc.Update(m.PoliticalPartyID, &dto.PartyUpdateRequest{DissolvedDate: &bad}, uuid.New())
	var ve *helper.ValidationError
	require.ErrorAs(t, err, &ve)

	good := "2001-06-15"
	updated, err := svc.Update(m.PoliticalPartyID, &dto.PartyUpdateRequest{DissolvedDate: &good}, uuid.New())
	require.NoError(t, err)
	require.NotNil(t, updated.PoliticalPartyDissolvedDate)

	// clearing is always accepted
	clear := ""
	updated, err = svc.Update(m.PoliticalPartyID, &dto.PartyUpdateRequest{DissolvedDate: &clear}, uuid.New())
	require.NoError(t, err)
	assert.Nil(t, updated.PoliticalPartyDissolvedDate)
}

func TestUpdatePartySlugImmutable(t *testing.T) {
	db := newPartyDB(t)
	svc := NewPartyService(db)

	m, err := svc.Create(partyReq("Civic Front"), uuid.New())
	require.NoError(t, err)

	newName := "Renamed Front"
	updated, err := svc.Update(m.PoliticalPartyID, &dto.PartyUpdateRequest{Name: &newName}, uuid.New())
	require.NoError(t, err)
	assert.Equal(t, "Renamed Front", updated.PoliticalPartyName)
	assert.Equal(t, "civic-front", updated.PoliticalPartySlug)
}

func TestCreatePartySlugCollision(t *testing.T) {
	db := newPartyDB(t)
	svc := NewPartyService(db)

	first, err := svc.Create(partyReq("Civic Front"), uuid.New())
	require.NoError(t, err)
	second, err := svc.Create(partyReq("CIVIC FRONT"), uuid.New())
	require.NoError(t, err)

	assert.NotEqual(t, first.PoliticalPartySlug, second.PoliticalPartySlug)
	assert.True(t, strings.HasPrefix(second.PoliticalPartySlug, "civic-front-"))
	assert.LessOrEqual(t, len(second.PoliticalPartySlug), helper.SlugMaxLen)
}

func TestDeletePartyNullifiesLiveFigures(t *testing.T) {
	db := newPartyDB(t)
	svc := NewPartyService(db)
	figSvc := figureService.NewFigureService(db, nil)

	party, err := svc.Create(partyReq("Civic Front"), uuid.New())
	require.NoError(t, err)

	partyID := party.PoliticalPartyID.String()
	figReq := &figureDTO.FigureCreateRequest{
		FullName:       "Jane Doe",
		Gender:         figureModel.GenderFemale,
		PoliticalParty: &partyID,
		HomeAddress: addressDTO.AddressCreateRequest{
			StreetAddress: "12 Hill Road", City: "Kathmandu", Country: "NP",
		},
		CurrentAddress: addressDTO.AddressCreateRequest{
			StreetAddress: "99 Valley Street", City: "Pokhara", Country: "NP",
		},
	}
	fig, err := figSvc.Create(context.Background(), figReq, uuid.New())
	require.NoError(t, err)
	require.NotNil(t, fig.PoliticalFigurePartyID)

	require.NoError(t, svc.Delete(party.PoliticalPartyID, uuid.New()))

	// party is soft-deleted
	_, err = svc.GetByID(party.PoliticalPartyID)
	var nf *helper.NotFoundError
	assert.ErrorAs(t, err, &nf)

	// figure survives with the reference cleared
	kept, err := figSvc.GetByID(fig.PoliticalFigureID)
	require.NoError(t, err)
	assert.Nil(t, kept.PoliticalFigurePartyID)
	assert.Nil(t, kept.Party)
}

func TestListPartiesSearch(t *testing.T) {
	db := newPartyDB(t)
	svc := NewPartyService(db)

	_, err := svc.Create(partyReq("Civic Front"), uuid.New())
	require.NoError(t, err)
	_, err = svc.Create(partyReq("Mountain Alliance"), uuid.New())
	require.NoError(t, err)

	paging := helper.Paging{Page: 1, PerPage: 10, Offset: 0, Limit: 10}
	got, total, err := svc.List("civic", paging)
	require.NoError(t, err)
	assert.EqualValues(t, 1, total)
	require.Len(t, got, 1)
	assert.Equal(t, "Civic Front", got[0].PoliticalPartyName)
}

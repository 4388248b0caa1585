package helper

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type slugRow struct {
	ID        uint           `gorm:"primaryKey"`
	Slug      string         `gorm:"column:slug"`
	DeletedAt gorm.DeletedAt `gorm:"column:deleted_at"`
}

func (slugRow) TableName() string { return "slugs" }

var slugTestOpts = SlugOptions{Table: "slugs", SlugColumn: "slug"}

func newSlugDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&slugRow{}))
	return db
}

func TestGenerateSlug(t *testing.T) {
	cases := map[string]string{
		"Jane Doe":            "jane-doe",
		"  Nepali   Congress": "nepali-congress",
		"CPN (UML)":           "cpn-uml",
		"--weird--input--":    "weird-input",
		"ALL CAPS":            "all-caps",
	}
	for in, want := range cases {
		assert.Equal(t, want, GenerateSlug(in), "input %q", in)
	}
}

func TestAssignSlugBasic(t *testing.T) {
	db := newSlugDB(t)

	slug, err := AssignSlug(db, slugTestOpts, "Jane Doe", "")
	require.NoError(t, err)
	assert.Equal(t, "jane-doe", slug)
}

func TestAssignSlugSingleShot(t *testing.T) {
	db := newSlugDB(t)

	_, err := AssignSlug(db, slugTestOpts, "Jane Doe", "jane-doe")
	require.Error(t, err)
	assert.IsType(t, &InternalApplicationError{}, err)
}

func TestAssignSlugCollisionSuffix(t *testing.T) {
	db := newSlugDB(t)
	require.NoError(t, db.Create(&slugRow{Slug: "jane-doe"}).Error)

	slug, err := AssignSlug(db, slugTestOpts, "Jane Doe", "")
	require.NoError(t, err)
	assert.NotEqual(t, "jane-doe", slug)
	assert.True(t, strings.HasPrefix(slug, "jane-doe-"))
	assert.LessOrEqual(t, len(slug), SlugMaxLen)
}

func TestAssignSlugCollisionWithSoftDeletedRow(t *testing.T) {
	db := newSlugDB(t)
	row := slugRow{Slug: "jane-doe"}
	require.NoError(t, db.Create(&row).Error)
	require.NoError(t, db.Delete(&row).Error)

	// the reservation outlives the row
	slug, err := AssignSlug(db, slugTestOpts, "Jane Doe", "")
	require.NoError(t, err)
	assert.NotEqual(t, "jane-doe", slug)
}

func TestAssignSlugLongNameStaysWithinCap(t *testing.T) {
	db := newSlugDB(t)
	long := strings.Repeat("verylongname ", 10)

	first, err := AssignSlug(db, slugTestOpts, long, "")
	require.NoError(t, err)
	require.NoError(t, db.Create(&slugRow{Slug: first}).Error)

	second, err := AssignSlug(db, slugTestOpts, long, "")
	require.NoError(t, err)

	assert.LessOrEqual(t, len(first), SlugMaxLen)
	assert.LessOrEqual(t, len(second), SlugMaxLen)
	assert.NotEqual(t, first, second)
}

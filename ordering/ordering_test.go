package ordering

import (
	"errors"
	"testing"

	"github.com/gekoeducation/geko-api/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(&models.Category{}))
	return db
}

func seedCategories(t *testing.T, db *gorm.DB, n int) []models.Category {
	t.Helper()

	out := make([]models.Category, 0, n)
	for i := 0; i < n; i++ {
		c := models.Category{Order: i}
		require.NoError(t, db.Create(&c).Error)
		out = append(out, c)
	}
	return out
}

func orderByID(t *testing.T, db *gorm.DB) map[uint]int {
	t.Helper()

	var cats []models.Category
	require.NoError(t, db.Find(&cats).Error)
	got := make(map[uint]int, len(cats))
	for _, c := range cats {
		got[c.ID] = c.Order
	}
	return got
}

func TestApplySetsPositions(t *testing.T) {
	db := newTestDB(t)
	cats := seedCategories(t, db, 3)

	ids := []uint{cats[2].ID, cats[0].ID, cats[1].ID}
	require.NoError(t, Apply(db, &models.Category{}, ids))

	got := orderByID(t, db)
	assert.Equal(t, 0, got[cats[2].ID])
	assert.Equal(t, 1, got[cats[0].ID])
	assert.Equal(t, 2, got[cats[1].ID])

	var listed []models.Category
	require.NoError(t, db.Scopes(models.DisplayOrdered).Find(&listed).Error)
	require.Len(t, listed, 3)
	assert.Equal(t, ids[0], listed[0].ID)
	assert.Equal(t, ids[1], listed[1].ID)
	assert.Equal(t, ids[2], listed[2].ID)
}

func TestApplyIdempotent(t *testing.T) {
	db := newTestDB(t)
	cats := seedCategories(t, db, 3)

	ids := []uint{cats[1].ID, cats[2].ID, cats[0].ID}
	require.NoError(t, Apply(db, &models.Category{}, ids))
	first := orderByID(t, db)

	require.NoError(t, Apply(db, &models.Category{}, ids))
	assert.Equal(t, first, orderByID(t, db))
}

func TestApplyOmittedRowsKeepOrder(t *testing.T) {
	db := newTestDB(t)
	cats := seedCategories(t, db, 3)

	require.NoError(t, Apply(db, &models.Category{}, []uint{cats[1].ID}))

	got := orderByID(t, db)
	assert.Equal(t, 0, got[cats[1].ID])
	assert.Equal(t, 0, got[cats[0].ID], "unmentioned row must keep its order")
	assert.Equal(t, 2, got[cats[2].ID], "unmentioned row must keep its order")
}

func TestApplyUnknownIDRollsBack(t *testing.T) {
	db := newTestDB(t)
	cats := seedCategories(t, db, 3)
	before := orderByID(t, db)

	err := Apply(db, &models.Category{}, []uint{cats[2].ID, 9999, cats[0].ID})
	require.Error(t, err)

	var unknown *UnknownIDError
	require.True(t, errors.As(err, &unknown))
	assert.Equal(t, uint(9999), unknown.ID)

	// Validate-all-then-apply: nothing changed, not even ids processed
	// before the bad one.
	assert.Equal(t, before, orderByID(t, db))
}

func TestApplyTieBreaksByID(t *testing.T) {
	db := newTestDB(t)
	cats := seedCategories(t, db, 3)

	// Force an order collision; listing must stay deterministic by id.
	require.NoError(t, db.Model(&models.Category{}).Where("1 = 1").Update("order", 5).Error)

	var listed []models.Category
	require.NoError(t, db.Scopes(models.DisplayOrdered).Find(&listed).Error)
	require.Len(t, listed, 3)
	assert.Equal(t, cats[0].ID, listed[0].ID)
	assert.Equal(t, cats[1].ID, listed[1].ID)
	assert.Equal(t, cats[2].ID, listed[2].ID)
}

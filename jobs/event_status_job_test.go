package jobs

import (
	"testing"
	"time"

	"github.com/gekoeducation/geko-api/database"
	"github.com/gekoeducation/geko-api/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func TestRefreshEventStatuses(t *testing.T) {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	require.NoError(t, db.AutoMigrate(&models.Event{}))
	database.DB = db

	today := time.Now().UTC().Truncate(24 * time.Hour)

	past := models.Event{
		StartDate: today.AddDate(0, 0, -10),
		EndDate:   today.AddDate(0, 0, -8),
		Status:    models.EventUpcoming, // stale
	}
	current := models.Event{
		StartDate: today.AddDate(0, 0, -1),
		EndDate:   today.AddDate(0, 0, 1),
		Status:    models.EventUpcoming, // stale
	}
	future := models.Event{
		StartDate: today.AddDate(0, 0, 8),
		EndDate:   today.AddDate(0, 0, 10),
		Status:    models.EventUpcoming,
	}
	require.NoError(t, db.Create(&past).Error)
	require.NoError(t, db.Create(&current).Error)
	require.NoError(t, db.Create(&future).Error)

	RefreshEventStatuses()

	var got models.Event
	require.NoError(t, db.First(&got, past.ID).Error)
	assert.Equal(t, models.EventCompleted, got.Status)

	got = models.Event{}
	require.NoError(t, db.First(&got, current.ID).Error)
	assert.Equal(t, models.EventHappening, got.Status)

	got = models.Event{}
	require.NoError(t, db.First(&got, future.ID).Error)
	assert.Equal(t, models.EventUpcoming, got.Status)
}

package handlers

import (
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/gekoeducation/geko-api/database"
	"github.com/gekoeducation/geko-api/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetEventNotFound(t *testing.T) {
	app, _ := newTestApp(t)

	resp := doJSON(t, app, http.MethodGet, "/api/events/42", nil)
	require.Equal(t, http.StatusNotFound, resp.StatusCode)

	var body map[string]any
	decodeBody(t, resp, &body)
	assert.Equal(t, "Event not found", body["error"])
}

func TestGetEventWithGalleriesOrdered(t *testing.T) {
	app, _ := newTestApp(t)
	seedLanguage(t, "am", "Amharic")

	event := models.Event{
		StartDate: time.Date(2026, 10, 1, 0, 0, 0, 0, time.UTC),
		EndDate:   time.Date(2026, 10, 3, 0, 0, 0, 0, time.UTC),
		Status:    models.EventUpcoming,
	}
	require.NoError(t, database.DB.Create(&event).Error)

	var lang models.Language
	require.NoError(t, database.DB.Where("code = ?", "am").First(&lang).Error)
	tr := models.EventTranslation{
		EventID: event.ID, LanguageID: lang.ID,
		Title: "የቋንቋ ቀን", Place: "Addis Ababa",
	}
	require.NoError(t, database.DB.Create(&tr).Error)

	urlB := "https://images.example.com/b.png"
	urlA := "https://images.example.com/a.png"
	require.NoError(t, database.DB.Create(&models.EventGallery{EventID: event.ID, ImageURL: &urlB, Order: 1}).Error)
	require.NoError(t, database.DB.Create(&models.EventGallery{EventID: event.ID, ImageURL: &urlA, Order: 0}).Error)

	resp := doJSON(t, app, http.MethodGet, fmt.Sprintf("/api/events/%d?language=am", event.ID), nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var body map[string]any
	decodeBody(t, resp, &body)
	assert.Equal(t, "2026-10-01", body["start_date"])
	assert.Equal(t, models.EventUpcoming, body["status"])

	translation, ok := body["translation"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "የቋንቋ ቀን", translation["title"])
	assert.Equal(t, "Addis Ababa", translation["place"])

	galleries, ok := body["event_galleries"].([]any)
	require.True(t, ok)
	require.Len(t, galleries, 2)
	first := galleries[0].(map[string]any)
	assert.Equal(t, urlA, first["image"], "galleries come back in display order")
}

func TestCreateEventRejectsInvertedDates(t *testing.T) {
	app, _ := newTestApp(t)

	payload := map[string]any{
		"start_date": "2026-10-03",
		"end_date":   "2026-10-01",
	}
	resp := doJSON(t, app, http.MethodPost, "/api/events", payload)
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestCreateEventDerivesStatusWhenOmitted(t *testing.T) {
	app, _ := newTestApp(t)

	start := time.Now().UTC().AddDate(0, 0, 30)
	payload := map[string]any{
		"start_date": start.Format("2006-01-02"),
		"end_date":   start.AddDate(0, 0, 2).Format("2006-01-02"),
	}
	resp := doJSON(t, app, http.MethodPost, "/api/events", payload)
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var body map[string]any
	decodeBody(t, resp, &body)
	assert.Equal(t, models.EventUpcoming, body["status"])
}

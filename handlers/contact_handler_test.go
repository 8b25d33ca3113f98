package handlers

import (
	"errors"
	"net/http"
	"testing"

	"github.com/gekoeducation/geko-api/database"
	"github.com/gekoeducation/geko-api/models"
	"github.com/gekoeducation/geko-api/notifications"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validContactPayload() map[string]any {
	return map[string]any{
		"full_name": "Abel Tesfaye",
		"email":     "abel@example.com",
		"message":   "I want to enroll my daughter.",
		"country":   "Ethiopia",
		"whatsapp":  "+251900000000",
	}
}

func contactMessageCount(t *testing.T) int64 {
	t.Helper()
	var count int64
	require.NoError(t, database.DB.Model(&models.ContactMessage{}).Count(&count).Error)
	return count
}

func TestContactFormSuccess(t *testing.T) {
	app, sender := newTestApp(t)

	resp := doJSON(t, app, http.MethodPost, "/api/contact", validContactPayload())
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var body map[string]any
	decodeBody(t, resp, &body)
	assert.Equal(t, "Email sent successfully and message saved!", body["message"])

	assert.EqualValues(t, 1, contactMessageCount(t))

	require.Len(t, sender.Sent, 2)
	assert.Equal(t, "gekoeducation@gmail.com", sender.Sent[0].To)
	assert.Equal(t, "New Contact Message", sender.Sent[0].Subject)
	assert.Contains(t, sender.Sent[0].Body, "Abel Tesfaye")
	assert.Contains(t, sender.Sent[0].Body, "Category: N/A")
	assert.Equal(t, "abel@example.com", sender.Sent[1].To)
	assert.Equal(t, "Thank you for contacting us!", sender.Sent[1].Subject)
}

func TestContactFormInvalidEmail(t *testing.T) {
	app, sender := newTestApp(t)

	payload := validContactPayload()
	payload["email"] = "not-an-email"
	resp := doJSON(t, app, http.MethodPost, "/api/contact", payload)
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)

	var body map[string]any
	decodeBody(t, resp, &body)
	assert.Equal(t, "Enter a valid email address.", body["email"])

	assert.Zero(t, contactMessageCount(t), "nothing persists on validation failure")
	assert.Empty(t, sender.Sent, "no notification attempt on validation failure")
}

func TestContactFormMissingFields(t *testing.T) {
	app, _ := newTestApp(t)

	resp := doJSON(t, app, http.MethodPost, "/api/contact", map[string]any{"email": "a@b.com"})
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)

	var body map[string]any
	decodeBody(t, resp, &body)
	assert.Equal(t, "This field is required.", body["full_name"])
	assert.Equal(t, "This field is required.", body["message"])
	assert.Equal(t, "This field is required.", body["country"])
	assert.Equal(t, "This field is required.", body["whatsapp"])

	assert.Zero(t, contactMessageCount(t))
}

func TestContactFormTransportFailureKeepsMessage(t *testing.T) {
	app, sender := newTestApp(t)
	sender.Fail = errors.New("dial tcp: connection refused")

	resp := doJSON(t, app, http.MethodPost, "/api/contact", validContactPayload())
	require.Equal(t, http.StatusInternalServerError, resp.StatusCode)

	var body map[string]any
	decodeBody(t, resp, &body)
	assert.Contains(t, body["error"], "An error occurred while sending the email")

	assert.EqualValues(t, 1, contactMessageCount(t), "persisted message is not rolled back")
}

func TestContactFormHeaderFailureKeepsMessage(t *testing.T) {
	app, sender := newTestApp(t)
	sender.Fail = notifications.ErrBadHeader

	resp := doJSON(t, app, http.MethodPost, "/api/contact", validContactPayload())
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)

	var body map[string]any
	decodeBody(t, resp, &body)
	assert.Equal(t, "Invalid header found in the email.", body["error"])

	assert.EqualValues(t, 1, contactMessageCount(t))
}

func TestContactFormUnknownCategory(t *testing.T) {
	app, _ := newTestApp(t)

	payload := validContactPayload()
	payload["category"] = 42
	resp := doJSON(t, app, http.MethodPost, "/api/contact", payload)
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)

	var body map[string]any
	decodeBody(t, resp, &body)
	assert.Equal(t, "Invalid category id", body["category"])
	assert.Zero(t, contactMessageCount(t))
}

func TestContactFormWithCategoryLabel(t *testing.T) {
	app, sender := newTestApp(t)
	seedLanguage(t, "en", "English")
	c := seedCategory(t, 0, map[string]string{"en": "Languages"})

	payload := validContactPayload()
	payload["category"] = c.ID
	resp := doJSON(t, app, http.MethodPost, "/api/contact", payload)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	resp.Body.Close()

	require.Len(t, sender.Sent, 2)
	assert.Contains(t, sender.Sent[0].Body, "Category: Languages")

	var saved models.ContactMessage
	require.NoError(t, database.DB.First(&saved).Error)
	require.NotNil(t, saved.CategoryID)
	assert.Equal(t, c.ID, *saved.CategoryID)
}

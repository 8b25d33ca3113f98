package handlers

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListLanguages(t *testing.T) {
	app, _ := newTestApp(t)
	seedLanguage(t, "en", "English")
	seedLanguage(t, "am", "Amharic")

	resp := doJSON(t, app, http.MethodGet, "/api/languages", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var body []map[string]any
	decodeBody(t, resp, &body)
	require.Len(t, body, 2)
	assert.Equal(t, "en", body[0]["code"])
	assert.Equal(t, "English", body[0]["name"])
}

func TestDeleteLanguageInUse(t *testing.T) {
	app, _ := newTestApp(t)
	lang := seedLanguage(t, "en", "English")
	seedCategory(t, 0, map[string]string{"en": "Languages"})

	resp := doJSON(t, app, http.MethodDelete, fmt.Sprintf("/api/languages/%d", lang.ID), nil)
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)

	var body map[string]any
	decodeBody(t, resp, &body)
	assert.Equal(t, "Language is still referenced by translations", body["error"])
}

func TestDeleteUnusedLanguage(t *testing.T) {
	app, _ := newTestApp(t)
	lang := seedLanguage(t, "fr", "French")

	resp := doJSON(t, app, http.MethodDelete, fmt.Sprintf("/api/languages/%d", lang.ID), nil)
	require.Equal(t, http.StatusNoContent, resp.StatusCode)
}

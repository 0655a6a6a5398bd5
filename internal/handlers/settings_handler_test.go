package handlers_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSettingsAreStateless(t *testing.T) {
	h := newServer()

	rec := doRequest(t, h, http.MethodGet, "/api/settings", nil, "")
	require.Equal(t, http.StatusOK, rec.Code)
	var settings map[string]any
	decodeBody(t, rec, &settings)
	assert.Equal(t, "light", settings["theme"])

	rec = doRequest(t, h, http.MethodPost, "/api/settings", map[string]any{"theme": "dark"}, "")
	require.Equal(t, http.StatusOK, rec.Code)
	var updated map[string]any
	decodeBody(t, rec, &updated)
	assert.Equal(t, "Settings updated", updated["message"])

	// Nothing persisted: the next GET still serves the defaults.
	rec = doRequest(t, h, http.MethodGet, "/api/settings", nil, "")
	decodeBody(t, rec, &settings)
	assert.Equal(t, "light", settings["theme"])
}

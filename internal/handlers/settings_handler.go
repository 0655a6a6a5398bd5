package handlers

import (
	"net/http"

	"github.com/Aditya4234/LMS-project/internal/httperr"
)

// SettingsHandler is stateless: the dashboard settings page round-trips its
// form through these endpoints but nothing persists beyond the call.
type SettingsHandler struct{}

func NewSettingsHandler() *SettingsHandler {
	return &SettingsHandler{}
}

func (h *SettingsHandler) GetSettings(w http.ResponseWriter, r *http.Request) {
	httperr.JSON(w, http.StatusOK, map[string]any{
		"theme":         "light",
		"notifications": true,
		"language":      "en",
	})
}

func (h *SettingsHandler) UpdateSettings(w http.ResponseWriter, r *http.Request) {
	var settings map[string]any
	if err := decodeJSON(r, &settings); err != nil {
		httperr.Write(w, err)
		return
	}
	httperr.JSON(w, http.StatusOK, map[string]any{"message": "Settings updated", "settings": settings})
}

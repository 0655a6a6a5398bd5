package httperr

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
)

// JSON writes v as the response body with the given status code.
func JSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("Failed to encode response: %v", err)
	}
}

// Write maps err onto the error taxonomy and writes the matching JSON body.
// Anything unrecognized becomes a 500 with an {error, status} body.
func Write(w http.ResponseWriter, err error) {
	var ve *ValidationError
	if errors.As(err, &ve) {
		body := map[string]any{"message": ve.Message}
		if len(ve.Fields) > 0 {
			body["errors"] = ve.Fields
		}
		JSON(w, ve.Status(), body)
		return
	}

	var ae *AuthError
	if errors.As(err, &ae) {
		JSON(w, ae.Status(), map[string]any{"message": ae.Message})
		return
	}

	var nfe *NotFoundError
	if errors.As(err, &nfe) {
		JSON(w, nfe.Status(), map[string]any{"message": nfe.Message})
		return
	}

	var se *StoreError
	if errors.As(err, &se) {
		body := map[string]any{"message": se.Message}
		if se.Err != nil {
			body["error"] = se.Err.Error()
		}
		JSON(w, se.Status(), body)
		return
	}

	log.Printf("Unhandled error: %v", err)
	JSON(w, http.StatusInternalServerError, map[string]any{
		"error":  "Internal Server Error",
		"status": http.StatusInternalServerError,
	})
}

package handlers_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/Aditya4234/LMS-project/internal/auth"
	"github.com/Aditya4234/LMS-project/internal/routes"
	"github.com/Aditya4234/LMS-project/internal/store"
)

func newServer() http.Handler {
	st := store.NewMemory()
	tokens := auth.NewManager("test-secret", time.Hour)
	return routes.SetupRouter(st, tokens, "lms_test")
}

func doRequest(t *testing.T, h http.Handler, method, path string, body any, token string) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder, v any) {
	t.Helper()
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), v))
}

// register creates a user through the API and returns its token.
func register(t *testing.T, h http.Handler, name, email, password, role string) string {
	t.Helper()
	rec := doRequest(t, h, http.MethodPost, "/api/auth/register", map[string]any{
		"name": name, "email": email, "password": password, "role": role,
	}, "")
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	var resp struct {
		Token string `json:"token"`
	}
	decodeBody(t, rec, &resp)
	require.NotEmpty(t, resp.Token)
	return resp.Token
}

// createDoc POSTs body to path and returns the created document's id, taking
// the id either from the bare document or from a wrapped {key: doc} response.
func createDoc(t *testing.T, h http.Handler, path string, body map[string]any, wrapKey string) string {
	t.Helper()
	rec := doRequest(t, h, http.MethodPost, path, body, "")
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	var doc map[string]any
	if wrapKey == "" {
		decodeBody(t, rec, &doc)
	} else {
		var wrapped map[string]json.RawMessage
		decodeBody(t, rec, &wrapped)
		require.Contains(t, wrapped, wrapKey)
		require.NoError(t, json.Unmarshal(wrapped[wrapKey], &doc))
	}
	id, _ := doc["_id"].(string)
	require.NotEmpty(t, id, "created document must carry a generated id: %s", rec.Body.String())
	return id
}

func missingID() string {
	return fmt.Sprintf("%024x", 0xdead)
}

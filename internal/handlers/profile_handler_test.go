package handlers_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProfileRequiresToken(t *testing.T) {
	h := newServer()

	rec := doRequest(t, h, http.MethodGet, "/api/profile", nil, "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = doRequest(t, h, http.MethodPut, "/api/profile", map[string]any{"name": "X"}, "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestProfileGetAndUpdate(t *testing.T) {
	h := newServer()
	token := register(t, h, "Ada", "ada@example.com", "s3cret", "")

	rec := doRequest(t, h, http.MethodGet, "/api/profile", nil, token)
	require.Equal(t, http.StatusOK, rec.Code)
	var profile map[string]any
	decodeBody(t, rec, &profile)
	assert.Equal(t, "Ada", profile["name"])
	assert.NotContains(t, profile, "password")

	rec = doRequest(t, h, http.MethodPut, "/api/profile", map[string]any{"name": "Ada Lovelace"}, token)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	// A name-only update must not re-hash: the old password still logs in.
	rec = doRequest(t, h, http.MethodPost, "/api/auth/login", map[string]any{
		"email": "ada@example.com", "password": "s3cret",
	}, "")
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestProfilePasswordChange(t *testing.T) {
	h := newServer()
	token := register(t, h, "Ada", "ada@example.com", "s3cret", "")

	rec := doRequest(t, h, http.MethodPut, "/api/profile", map[string]any{"password": "abc"}, token)
	assert.Equal(t, http.StatusBadRequest, rec.Code, "short password rejected")

	rec = doRequest(t, h, http.MethodPut, "/api/profile", map[string]any{"password": "newpass"}, token)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	rec = doRequest(t, h, http.MethodPost, "/api/auth/login", map[string]any{
		"email": "ada@example.com", "password": "s3cret",
	}, "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code, "old password no longer valid")

	rec = doRequest(t, h, http.MethodPost, "/api/auth/login", map[string]any{
		"email": "ada@example.com", "password": "newpass",
	}, "")
	assert.Equal(t, http.StatusOK, rec.Code)
}

package handlers_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAdminRequiresAdminToken(t *testing.T) {
	h := newServer()
	studentToken := register(t, h, "Student", "student@x.y", "s3cret", "student")

	rec := doRequest(t, h, http.MethodGet, "/api/admin/stats", nil, "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = doRequest(t, h, http.MethodGet, "/api/admin/stats", nil, studentToken)
	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestAdminCollectionBrowser(t *testing.T) {
	h := newServer()
	adminToken := register(t, h, "Admin", "admin@x.y", "s3cret", "admin")
	id := createDoc(t, h, "/api/courses", map[string]any{"title": "Go", "instructor": "Rob"}, "")

	rec := doRequest(t, h, http.MethodGet, "/api/admin/collections", nil, adminToken)
	require.Equal(t, http.StatusOK, rec.Code)
	var all struct {
		Collections map[string][]map[string]any `json:"collections"`
		Stats       map[string]int64            `json:"stats"`
	}
	decodeBody(t, rec, &all)
	assert.Len(t, all.Collections["courses"], 1)
	assert.EqualValues(t, 1, all.Stats["courses"])
	assert.EqualValues(t, 1, all.Stats["users"]) // the admin account

	rec = doRequest(t, h, http.MethodGet, "/api/admin/collection/courses", nil, adminToken)
	require.Equal(t, http.StatusOK, rec.Code)
	var col struct {
		Collection string           `json:"collection"`
		Count      int              `json:"count"`
		Data       []map[string]any `json:"data"`
	}
	decodeBody(t, rec, &col)
	assert.Equal(t, "courses", col.Collection)
	assert.Equal(t, 1, col.Count)

	rec = doRequest(t, h, http.MethodGet, "/api/admin/collection/secrets", nil, adminToken)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = doRequest(t, h, http.MethodDelete, "/api/admin/collection/courses/"+id, nil, adminToken)
	assert.Equal(t, http.StatusOK, rec.Code)
	rec = doRequest(t, h, http.MethodDelete, "/api/admin/collection/courses/"+id, nil, adminToken)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	rec = doRequest(t, h, http.MethodDelete, "/api/admin/collection/secrets/"+id, nil, adminToken)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestAdminStats(t *testing.T) {
	h := newServer()
	adminToken := register(t, h, "Admin", "admin@x.y", "s3cret", "admin")

	rec := doRequest(t, h, http.MethodGet, "/api/admin/stats", nil, adminToken)
	require.Equal(t, http.StatusOK, rec.Code)
	var stats struct {
		Database    string           `json:"database"`
		Connected   bool             `json:"connected"`
		Collections map[string]int64 `json:"collections"`
	}
	decodeBody(t, rec, &stats)
	assert.Equal(t, "lms_test", stats.Database)
	assert.True(t, stats.Connected)
	assert.EqualValues(t, 1, stats.Collections["users"])
}

package handlers_test

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStudentCRUD(t *testing.T) {
	h := newServer()

	id := createDoc(t, h, "/api/students", map[string]any{
		"name": "Grace Hopper", "email": "grace@example.com", "phone": "555-0100",
	}, "student")

	rec := doRequest(t, h, http.MethodGet, "/api/students/"+id, nil, "")
	require.Equal(t, http.StatusOK, rec.Code)
	var wrapped map[string]json.RawMessage
	decodeBody(t, rec, &wrapped)
	var student map[string]any
	require.NoError(t, json.Unmarshal(wrapped["student"], &student))
	assert.Equal(t, "Grace Hopper", student["name"])
	assert.Equal(t, "Active", student["status"])                  // schema default
	assert.Equal(t, "https://i.pravatar.cc/150", student["img"]) // schema default

	rec = doRequest(t, h, http.MethodPut, "/api/students/"+id, map[string]any{"status": "Inactive"}, "")
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	rec = doRequest(t, h, http.MethodDelete, "/api/students/"+id, nil, "")
	require.Equal(t, http.StatusOK, rec.Code)
	var deleted map[string]any
	decodeBody(t, rec, &deleted)
	assert.Equal(t, id, deleted["id"])

	rec = doRequest(t, h, http.MethodGet, "/api/students/"+id, nil, "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestStudentListWrappedAndSorted(t *testing.T) {
	h := newServer()
	createDoc(t, h, "/api/students", map[string]any{"name": "One", "email": "one@x.y"}, "student")
	createDoc(t, h, "/api/students", map[string]any{"name": "Two", "email": "two@x.y"}, "student")

	rec := doRequest(t, h, http.MethodGet, "/api/students", nil, "")
	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Students []map[string]any `json:"students"`
	}
	decodeBody(t, rec, &resp)
	require.Len(t, resp.Students, 2)
}

func TestStudentDuplicateEmail(t *testing.T) {
	h := newServer()
	first := createDoc(t, h, "/api/students", map[string]any{"name": "One", "email": "dup@x.y"}, "student")

	rec := doRequest(t, h, http.MethodPost, "/api/students", map[string]any{
		"name": "Two", "email": "dup@x.y",
	}, "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	// The first document remains retrievable.
	rec = doRequest(t, h, http.MethodGet, "/api/students/"+first, nil, "")
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestStudentEnumRejected(t *testing.T) {
	h := newServer()
	rec := doRequest(t, h, http.MethodPost, "/api/students", map[string]any{
		"name": "Bad", "email": "bad@x.y", "status": "Suspended",
	}, "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

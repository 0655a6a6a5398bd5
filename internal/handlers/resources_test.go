package handlers_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAssignmentCreateAndValidation(t *testing.T) {
	h := newServer()

	id := createDoc(t, h, "/api/assignments", map[string]any{
		"title": "Homework 1", "course": "Go Basics", "dueDate": "2026-09-15T00:00:00Z",
	}, "")

	rec := doRequest(t, h, http.MethodGet, "/api/assignments/"+id, nil, "")
	require.Equal(t, http.StatusOK, rec.Code)
	var assignment map[string]any
	decodeBody(t, rec, &assignment)
	assert.Equal(t, "Pending", assignment["status"]) // schema default

	// Missing dueDate and bad status are both 400s.
	rec = doRequest(t, h, http.MethodPost, "/api/assignments", map[string]any{
		"title": "No due date", "course": "Go Basics",
	}, "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = doRequest(t, h, http.MethodPost, "/api/assignments", map[string]any{
		"title": "Bad status", "course": "Go Basics", "dueDate": "2026-09-15T00:00:00Z", "status": "Late",
	}, "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestAttendanceCreateAndValidation(t *testing.T) {
	h := newServer()

	id := createDoc(t, h, "/api/attendance", map[string]any{
		"studentName": "Grace", "status": "Present", "course": "Go Basics",
	}, "")

	rec := doRequest(t, h, http.MethodGet, "/api/attendance/"+id, nil, "")
	require.Equal(t, http.StatusOK, rec.Code)
	var record map[string]any
	decodeBody(t, rec, &record)
	assert.Equal(t, "Present", record["status"])
	assert.NotEmpty(t, record["date"]) // defaulted to now

	rec = doRequest(t, h, http.MethodPost, "/api/attendance", map[string]any{
		"studentName": "Grace", "status": "Sleeping",
	}, "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = doRequest(t, h, http.MethodPost, "/api/attendance", map[string]any{
		"studentName": "Grace",
	}, "")
	assert.Equal(t, http.StatusBadRequest, rec.Code, "status is required")

	rec = doRequest(t, h, http.MethodDelete, "/api/attendance/"+id, nil, "")
	assert.Equal(t, http.StatusOK, rec.Code)
	rec = doRequest(t, h, http.MethodDelete, "/api/attendance/"+id, nil, "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestGradeCreateAndValidation(t *testing.T) {
	h := newServer()

	id := createDoc(t, h, "/api/grades", map[string]any{
		"studentName": "Grace", "course": "Go Basics", "grade": "A", "score": 95,
	}, "")

	rec := doRequest(t, h, http.MethodGet, "/api/grades/"+id, nil, "")
	require.Equal(t, http.StatusOK, rec.Code)
	var grade map[string]any
	decodeBody(t, rec, &grade)
	assert.Equal(t, "A", grade["grade"])
	assert.EqualValues(t, 95, grade["score"])

	rec = doRequest(t, h, http.MethodPost, "/api/grades", map[string]any{
		"studentName": "Grace", "course": "Go Basics",
	}, "")
	assert.Equal(t, http.StatusBadRequest, rec.Code, "grade is required")
}

func TestAnnouncementCreateAndValidation(t *testing.T) {
	h := newServer()

	id := createDoc(t, h, "/api/announcements", map[string]any{
		"title": "Exam week", "content": "Finals start Monday", "author": "Admin",
	}, "")

	rec := doRequest(t, h, http.MethodGet, "/api/announcements/"+id, nil, "")
	require.Equal(t, http.StatusOK, rec.Code)
	var announcement map[string]any
	decodeBody(t, rec, &announcement)
	assert.Equal(t, "Medium", announcement["priority"]) // schema default

	rec = doRequest(t, h, http.MethodPost, "/api/announcements", map[string]any{
		"title": "Bad", "content": "x", "priority": "Urgent",
	}, "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = doRequest(t, h, http.MethodDelete, "/api/announcements/"+id, nil, "")
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestInstructorDuplicateEmail(t *testing.T) {
	h := newServer()
	createDoc(t, h, "/api/instructors", map[string]any{
		"name": "Rob", "email": "rob@x.y", "subject": "Go",
	}, "")

	rec := doRequest(t, h, http.MethodPost, "/api/instructors", map[string]any{
		"name": "Robert", "email": "rob@x.y", "subject": "Go",
	}, "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestContactCreateAndList(t *testing.T) {
	h := newServer()

	rec := doRequest(t, h, http.MethodPost, "/api/contact", map[string]any{
		"name": "Visitor", "email": "visitor@x.y", "message": "Hello there",
	}, "")
	require.Equal(t, http.StatusCreated, rec.Code)
	var created map[string]any
	decodeBody(t, rec, &created)
	assert.Equal(t, "Message sent successfully", created["message"])

	rec = doRequest(t, h, http.MethodPost, "/api/contact", map[string]any{
		"name": "Visitor", "email": "visitor@x.y",
	}, "")
	assert.Equal(t, http.StatusBadRequest, rec.Code, "message body is required")

	rec = doRequest(t, h, http.MethodGet, "/api/contact", nil, "")
	require.Equal(t, http.StatusOK, rec.Code)
	var messages []map[string]any
	decodeBody(t, rec, &messages)
	require.Len(t, messages, 1)
	assert.Equal(t, "New", messages[0]["status"]) // schema default
}

func TestDeleteMissingAcrossResources(t *testing.T) {
	h := newServer()
	for _, path := range []string{
		"/api/courses/", "/api/students/", "/api/instructors/", "/api/assignments/",
		"/api/attendance/", "/api/grades/", "/api/announcements/", "/api/contact/",
	} {
		rec := doRequest(t, h, http.MethodDelete, path+missingID(), nil, "")
		assert.Equal(t, http.StatusNotFound, rec.Code, "DELETE %s", path)
	}
}

package handlers

import (
	"net/http"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/Aditya4234/LMS-project/internal/httperr"
	"github.com/Aditya4234/LMS-project/internal/models"
	"github.com/Aditya4234/LMS-project/internal/store"
	"github.com/Aditya4234/LMS-project/internal/validation"
)

type AssignmentHandler struct {
	store store.Store
}

func NewAssignmentHandler(st store.Store) *AssignmentHandler {
	return &AssignmentHandler{store: st}
}

func (h *AssignmentHandler) GetAssignments(w http.ResponseWriter, r *http.Request) {
	assignments := []models.Assignment{}
	if err := h.store.FindAll(r.Context(), models.AssignmentsCollection, store.ListOptions{}, &assignments); err != nil {
		httperr.Write(w, httperr.NewStore("Error fetching assignments", err))
		return
	}
	httperr.JSON(w, http.StatusOK, assignments)
}

func (h *AssignmentHandler) GetAssignment(w http.ResponseWriter, r *http.Request) {
	var assignment models.Assignment
	err := h.store.FindByID(r.Context(), models.AssignmentsCollection, routeID(r), &assignment)
	if err != nil {
		httperr.Write(w, storeFail(err, "Assignment not found", "", "Error fetching assignment"))
		return
	}
	httperr.JSON(w, http.StatusOK, assignment)
}

func (h *AssignmentHandler) CreateAssignment(w http.ResponseWriter, r *http.Request) {
	var assignment models.Assignment
	if err := decodeJSON(r, &assignment); err != nil {
		httperr.Write(w, err)
		return
	}
	assignment.ApplyDefaults()
	if err := validation.Struct(&assignment); err != nil {
		httperr.Write(w, err)
		return
	}

	assignment.ID = primitive.NewObjectID()
	now := time.Now()
	assignment.CreatedAt = now
	assignment.UpdatedAt = now

	if _, err := h.store.Insert(r.Context(), models.AssignmentsCollection, assignment); err != nil {
		httperr.Write(w, storeFail(err, "", "Duplicate assignment", "Error creating assignment"))
		return
	}
	httperr.JSON(w, http.StatusCreated, assignment)
}

func (h *AssignmentHandler) UpdateAssignment(w http.ResponseWriter, r *http.Request) {
	id := routeID(r)

	var assignment models.Assignment
	if err := h.store.FindByID(r.Context(), models.AssignmentsCollection, id, &assignment); err != nil {
		httperr.Write(w, storeFail(err, "Assignment not found", "", "Error fetching assignment"))
		return
	}
	if err := decodeJSON(r, &assignment); err != nil {
		httperr.Write(w, err)
		return
	}
	if err := validation.Struct(&assignment); err != nil {
		httperr.Write(w, err)
		return
	}

	set, err := updateSet(assignment)
	if err != nil {
		httperr.Write(w, httperr.NewStore("Error updating assignment", err))
		return
	}

	var updated models.Assignment
	if err := h.store.UpdateByID(r.Context(), models.AssignmentsCollection, id, set, &updated); err != nil {
		httperr.Write(w, storeFail(err, "Assignment not found", "Duplicate assignment", "Error updating assignment"))
		return
	}
	httperr.JSON(w, http.StatusOK, updated)
}

func (h *AssignmentHandler) DeleteAssignment(w http.ResponseWriter, r *http.Request) {
	id := routeID(r)
	if err := h.store.DeleteByID(r.Context(), models.AssignmentsCollection, id); err != nil {
		httperr.Write(w, storeFail(err, "Assignment not found", "", "Error deleting assignment"))
		return
	}
	httperr.JSON(w, http.StatusOK, map[string]any{"message": "Assignment deleted", "id": id})
}

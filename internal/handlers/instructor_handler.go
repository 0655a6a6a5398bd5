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

type InstructorHandler struct {
	store store.Store
}

func NewInstructorHandler(st store.Store) *InstructorHandler {
	return &InstructorHandler{store: st}
}

func (h *InstructorHandler) GetInstructors(w http.ResponseWriter, r *http.Request) {
	instructors := []models.Instructor{}
	if err := h.store.FindAll(r.Context(), models.InstructorsCollection, store.ListOptions{}, &instructors); err != nil {
		httperr.Write(w, httperr.NewStore("Error fetching instructors", err))
		return
	}
	httperr.JSON(w, http.StatusOK, instructors)
}

func (h *InstructorHandler) GetInstructor(w http.ResponseWriter, r *http.Request) {
	var instructor models.Instructor
	err := h.store.FindByID(r.Context(), models.InstructorsCollection, routeID(r), &instructor)
	if err != nil {
		httperr.Write(w, storeFail(err, "Instructor not found", "", "Error fetching instructor"))
		return
	}
	httperr.JSON(w, http.StatusOK, instructor)
}

func (h *InstructorHandler) CreateInstructor(w http.ResponseWriter, r *http.Request) {
	var instructor models.Instructor
	if err := decodeJSON(r, &instructor); err != nil {
		httperr.Write(w, err)
		return
	}
	instructor.ApplyDefaults()
	if err := validation.Struct(&instructor); err != nil {
		httperr.Write(w, err)
		return
	}

	var existing models.Instructor
	if err := h.store.FindOne(r.Context(), models.InstructorsCollection, map[string]any{"email": instructor.Email}, &existing); err == nil {
		httperr.Write(w, httperr.NewValidation("Email already exists"))
		return
	}

	instructor.ID = primitive.NewObjectID()
	now := time.Now()
	instructor.CreatedAt = now
	instructor.UpdatedAt = now

	if _, err := h.store.Insert(r.Context(), models.InstructorsCollection, instructor); err != nil {
		httperr.Write(w, storeFail(err, "", "Email already exists", "Error creating instructor"))
		return
	}
	httperr.JSON(w, http.StatusCreated, instructor)
}

func (h *InstructorHandler) UpdateInstructor(w http.ResponseWriter, r *http.Request) {
	id := routeID(r)

	var instructor models.Instructor
	if err := h.store.FindByID(r.Context(), models.InstructorsCollection, id, &instructor); err != nil {
		httperr.Write(w, storeFail(err, "Instructor not found", "", "Error fetching instructor"))
		return
	}
	if err := decodeJSON(r, &instructor); err != nil {
		httperr.Write(w, err)
		return
	}
	if err := validation.Struct(&instructor); err != nil {
		httperr.Write(w, err)
		return
	}

	set, err := updateSet(instructor)
	if err != nil {
		httperr.Write(w, httperr.NewStore("Error updating instructor", err))
		return
	}

	var updated models.Instructor
	if err := h.store.UpdateByID(r.Context(), models.InstructorsCollection, id, set, &updated); err != nil {
		httperr.Write(w, storeFail(err, "Instructor not found", "Email already exists", "Error updating instructor"))
		return
	}
	httperr.JSON(w, http.StatusOK, updated)
}

func (h *InstructorHandler) DeleteInstructor(w http.ResponseWriter, r *http.Request) {
	id := routeID(r)
	if err := h.store.DeleteByID(r.Context(), models.InstructorsCollection, id); err != nil {
		httperr.Write(w, storeFail(err, "Instructor not found", "", "Error deleting instructor"))
		return
	}
	httperr.JSON(w, http.StatusOK, map[string]any{"message": "Instructor deleted", "id": id})
}

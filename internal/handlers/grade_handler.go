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

type GradeHandler struct {
	store store.Store
}

func NewGradeHandler(st store.Store) *GradeHandler {
	return &GradeHandler{store: st}
}

func (h *GradeHandler) GetGrades(w http.ResponseWriter, r *http.Request) {
	grades := []models.Grade{}
	if err := h.store.FindAll(r.Context(), models.GradesCollection, store.ListOptions{}, &grades); err != nil {
		httperr.Write(w, httperr.NewStore("Error fetching grades", err))
		return
	}
	httperr.JSON(w, http.StatusOK, grades)
}

func (h *GradeHandler) GetGrade(w http.ResponseWriter, r *http.Request) {
	var grade models.Grade
	err := h.store.FindByID(r.Context(), models.GradesCollection, routeID(r), &grade)
	if err != nil {
		httperr.Write(w, storeFail(err, "Grade not found", "", "Error fetching grade"))
		return
	}
	httperr.JSON(w, http.StatusOK, grade)
}

func (h *GradeHandler) CreateGrade(w http.ResponseWriter, r *http.Request) {
	var grade models.Grade
	if err := decodeJSON(r, &grade); err != nil {
		httperr.Write(w, err)
		return
	}
	grade.ApplyDefaults()
	if err := validation.Struct(&grade); err != nil {
		httperr.Write(w, err)
		return
	}

	grade.ID = primitive.NewObjectID()
	now := time.Now()
	grade.CreatedAt = now
	grade.UpdatedAt = now

	if _, err := h.store.Insert(r.Context(), models.GradesCollection, grade); err != nil {
		httperr.Write(w, storeFail(err, "", "Duplicate grade", "Error creating grade"))
		return
	}
	httperr.JSON(w, http.StatusCreated, grade)
}

func (h *GradeHandler) UpdateGrade(w http.ResponseWriter, r *http.Request) {
	id := routeID(r)

	var grade models.Grade
	if err := h.store.FindByID(r.Context(), models.GradesCollection, id, &grade); err != nil {
		httperr.Write(w, storeFail(err, "Grade not found", "", "Error fetching grade"))
		return
	}
	if err := decodeJSON(r, &grade); err != nil {
		httperr.Write(w, err)
		return
	}
	if err := validation.Struct(&grade); err != nil {
		httperr.Write(w, err)
		return
	}

	set, err := updateSet(grade)
	if err != nil {
		httperr.Write(w, httperr.NewStore("Error updating grade", err))
		return
	}

	var updated models.Grade
	if err := h.store.UpdateByID(r.Context(), models.GradesCollection, id, set, &updated); err != nil {
		httperr.Write(w, storeFail(err, "Grade not found", "Duplicate grade", "Error updating grade"))
		return
	}
	httperr.JSON(w, http.StatusOK, updated)
}

func (h *GradeHandler) DeleteGrade(w http.ResponseWriter, r *http.Request) {
	id := routeID(r)
	if err := h.store.DeleteByID(r.Context(), models.GradesCollection, id); err != nil {
		httperr.Write(w, storeFail(err, "Grade not found", "", "Error deleting grade"))
		return
	}
	httperr.JSON(w, http.StatusOK, map[string]any{"message": "Grade deleted", "id": id})
}

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

type StudentHandler struct {
	store store.Store
}

func NewStudentHandler(st store.Store) *StudentHandler {
	return &StudentHandler{store: st}
}

// GetStudents retrieves all students, most recent first
func (h *StudentHandler) GetStudents(w http.ResponseWriter, r *http.Request) {
	students := []models.Student{}
	opts := store.ListOptions{SortBy: "createdAt", Desc: true}
	if err := h.store.FindAll(r.Context(), models.StudentsCollection, opts, &students); err != nil {
		httperr.Write(w, httperr.NewStore("Error fetching students", err))
		return
	}
	httperr.JSON(w, http.StatusOK, map[string]any{"students": students})
}

// GetStudent retrieves a single student by id
func (h *StudentHandler) GetStudent(w http.ResponseWriter, r *http.Request) {
	var student models.Student
	err := h.store.FindByID(r.Context(), models.StudentsCollection, routeID(r), &student)
	if err != nil {
		httperr.Write(w, storeFail(err, "Student not found", "", "Error fetching student"))
		return
	}
	httperr.JSON(w, http.StatusOK, map[string]any{"student": student})
}

// CreateStudent handles creating a new student
func (h *StudentHandler) CreateStudent(w http.ResponseWriter, r *http.Request) {
	var student models.Student
	if err := decodeJSON(r, &student); err != nil {
		httperr.Write(w, err)
		return
	}
	student.ApplyDefaults()
	if err := validation.Struct(&student); err != nil {
		httperr.Write(w, err)
		return
	}

	var existing models.Student
	if err := h.store.FindOne(r.Context(), models.StudentsCollection, map[string]any{"email": student.Email}, &existing); err == nil {
		httperr.Write(w, httperr.NewValidation("Email already exists"))
		return
	}

	student.ID = primitive.NewObjectID()
	now := time.Now()
	student.CreatedAt = now
	student.UpdatedAt = now

	if _, err := h.store.Insert(r.Context(), models.StudentsCollection, student); err != nil {
		httperr.Write(w, storeFail(err, "", "Email already exists", "Error creating student"))
		return
	}
	httperr.JSON(w, http.StatusCreated, map[string]any{"message": "Student created successfully", "student": student})
}

// UpdateStudent replaces the supplied fields and re-validates the result
func (h *StudentHandler) UpdateStudent(w http.ResponseWriter, r *http.Request) {
	id := routeID(r)

	var student models.Student
	if err := h.store.FindByID(r.Context(), models.StudentsCollection, id, &student); err != nil {
		httperr.Write(w, storeFail(err, "Student not found", "", "Error fetching student"))
		return
	}
	if err := decodeJSON(r, &student); err != nil {
		httperr.Write(w, err)
		return
	}
	if err := validation.Struct(&student); err != nil {
		httperr.Write(w, err)
		return
	}

	set, err := updateSet(student)
	if err != nil {
		httperr.Write(w, httperr.NewStore("Error updating student", err))
		return
	}

	var updated models.Student
	if err := h.store.UpdateByID(r.Context(), models.StudentsCollection, id, set, &updated); err != nil {
		httperr.Write(w, storeFail(err, "Student not found", "Email already exists", "Error updating student"))
		return
	}
	httperr.JSON(w, http.StatusOK, map[string]any{"message": "Student updated successfully", "student": updated})
}

// DeleteStudent removes a student by id
func (h *StudentHandler) DeleteStudent(w http.ResponseWriter, r *http.Request) {
	id := routeID(r)
	if err := h.store.DeleteByID(r.Context(), models.StudentsCollection, id); err != nil {
		httperr.Write(w, storeFail(err, "Student not found", "", "Error deleting student"))
		return
	}
	httperr.JSON(w, http.StatusOK, map[string]any{"message": "Student deleted successfully", "id": id})
}

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

type CourseHandler struct {
	store store.Store
}

func NewCourseHandler(st store.Store) *CourseHandler {
	return &CourseHandler{store: st}
}

// GetCourses retrieves all courses
func (h *CourseHandler) GetCourses(w http.ResponseWriter, r *http.Request) {
	courses := []models.Course{}
	if err := h.store.FindAll(r.Context(), models.CoursesCollection, store.ListOptions{}, &courses); err != nil {
		httperr.Write(w, httperr.NewStore("Error fetching courses", err))
		return
	}
	httperr.JSON(w, http.StatusOK, courses)
}

// GetCourse retrieves a single course by id
func (h *CourseHandler) GetCourse(w http.ResponseWriter, r *http.Request) {
	var course models.Course
	err := h.store.FindByID(r.Context(), models.CoursesCollection, routeID(r), &course)
	if err != nil {
		httperr.Write(w, storeFail(err, "Course not found", "", "Error fetching course"))
		return
	}
	httperr.JSON(w, http.StatusOK, course)
}

// CreateCourse handles creating a new course
func (h *CourseHandler) CreateCourse(w http.ResponseWriter, r *http.Request) {
	var course models.Course
	if err := decodeJSON(r, &course); err != nil {
		httperr.Write(w, err)
		return
	}
	course.ApplyDefaults()
	if err := validation.Struct(&course); err != nil {
		httperr.Write(w, err)
		return
	}

	course.ID = primitive.NewObjectID()
	now := time.Now()
	course.CreatedAt = now
	course.UpdatedAt = now

	if _, err := h.store.Insert(r.Context(), models.CoursesCollection, course); err != nil {
		httperr.Write(w, storeFail(err, "", "Duplicate course", "Error creating course"))
		return
	}
	httperr.JSON(w, http.StatusCreated, course)
}

// UpdateCourse replaces the supplied fields and re-validates the result
func (h *CourseHandler) UpdateCourse(w http.ResponseWriter, r *http.Request) {
	id := routeID(r)

	var course models.Course
	if err := h.store.FindByID(r.Context(), models.CoursesCollection, id, &course); err != nil {
		httperr.Write(w, storeFail(err, "Course not found", "", "Error fetching course"))
		return
	}
	if err := decodeJSON(r, &course); err != nil {
		httperr.Write(w, err)
		return
	}
	if err := validation.Struct(&course); err != nil {
		httperr.Write(w, err)
		return
	}

	set, err := updateSet(course)
	if err != nil {
		httperr.Write(w, httperr.NewStore("Error updating course", err))
		return
	}

	var updated models.Course
	if err := h.store.UpdateByID(r.Context(), models.CoursesCollection, id, set, &updated); err != nil {
		httperr.Write(w, storeFail(err, "Course not found", "Duplicate course", "Error updating course"))
		return
	}
	httperr.JSON(w, http.StatusOK, updated)
}

// DeleteCourse removes a course by id
func (h *CourseHandler) DeleteCourse(w http.ResponseWriter, r *http.Request) {
	id := routeID(r)
	if err := h.store.DeleteByID(r.Context(), models.CoursesCollection, id); err != nil {
		httperr.Write(w, storeFail(err, "Course not found", "", "Error deleting course"))
		return
	}
	httperr.JSON(w, http.StatusOK, map[string]any{"message": "Course deleted successfully", "id": id})
}

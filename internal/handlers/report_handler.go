package handlers

import (
	"net/http"

	"github.com/Aditya4234/LMS-project/internal/httperr"
	"github.com/Aditya4234/LMS-project/internal/models"
	"github.com/Aditya4234/LMS-project/internal/store"
)

// revenuePerStudent is a placeholder rate, not a billing computation. The
// dashboard only needs a plausible figure derived from live enrollment.
const revenuePerStudent = 500

type ReportHandler struct {
	store store.Store
}

func NewReportHandler(st store.Store) *ReportHandler {
	return &ReportHandler{store: st}
}

// GetReports recomputes the dashboard statistics from live counts on every
// call; nothing is cached.
func (h *ReportHandler) GetReports(w http.ResponseWriter, r *http.Request) {
	totalStudents, err := h.store.Count(r.Context(), models.StudentsCollection)
	if err != nil {
		httperr.Write(w, httperr.NewStore("Error fetching reports", err))
		return
	}
	totalCourses, err := h.store.Count(r.Context(), models.CoursesCollection)
	if err != nil {
		httperr.Write(w, httperr.NewStore("Error fetching reports", err))
		return
	}
	activeInstructors, err := h.store.Count(r.Context(), models.InstructorsCollection)
	if err != nil {
		httperr.Write(w, httperr.NewStore("Error fetching reports", err))
		return
	}

	httperr.JSON(w, http.StatusOK, map[string]any{
		"totalStudents":     totalStudents,
		"totalCourses":      totalCourses,
		"activeInstructors": activeInstructors,
		"revenue":           totalStudents * revenuePerStudent,
		"recentActivity": []map[string]string{
			{"action": "New Student Registered", "time": "2 mins ago"},
			{"action": "Course \"React Basics\" updated", "time": "1 hour ago"},
		},
	})
}

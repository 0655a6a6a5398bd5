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

type AttendanceHandler struct {
	store store.Store
}

func NewAttendanceHandler(st store.Store) *AttendanceHandler {
	return &AttendanceHandler{store: st}
}

// GetAttendance retrieves all attendance records, most recent date first
func (h *AttendanceHandler) GetAttendance(w http.ResponseWriter, r *http.Request) {
	records := []models.Attendance{}
	opts := store.ListOptions{SortBy: "date", Desc: true}
	if err := h.store.FindAll(r.Context(), models.AttendanceCollection, opts, &records); err != nil {
		httperr.Write(w, httperr.NewStore("Error fetching attendance", err))
		return
	}
	httperr.JSON(w, http.StatusOK, records)
}

func (h *AttendanceHandler) GetAttendanceRecord(w http.ResponseWriter, r *http.Request) {
	var record models.Attendance
	err := h.store.FindByID(r.Context(), models.AttendanceCollection, routeID(r), &record)
	if err != nil {
		httperr.Write(w, storeFail(err, "Attendance record not found", "", "Error fetching attendance"))
		return
	}
	httperr.JSON(w, http.StatusOK, record)
}

func (h *AttendanceHandler) CreateAttendance(w http.ResponseWriter, r *http.Request) {
	var record models.Attendance
	if err := decodeJSON(r, &record); err != nil {
		httperr.Write(w, err)
		return
	}
	record.ApplyDefaults()
	if err := validation.Struct(&record); err != nil {
		httperr.Write(w, err)
		return
	}

	record.ID = primitive.NewObjectID()
	now := time.Now()
	record.CreatedAt = now
	record.UpdatedAt = now

	if _, err := h.store.Insert(r.Context(), models.AttendanceCollection, record); err != nil {
		httperr.Write(w, storeFail(err, "", "Duplicate attendance record", "Error creating attendance"))
		return
	}
	httperr.JSON(w, http.StatusCreated, record)
}

func (h *AttendanceHandler) UpdateAttendance(w http.ResponseWriter, r *http.Request) {
	id := routeID(r)

	var record models.Attendance
	if err := h.store.FindByID(r.Context(), models.AttendanceCollection, id, &record); err != nil {
		httperr.Write(w, storeFail(err, "Attendance record not found", "", "Error fetching attendance"))
		return
	}
	if err := decodeJSON(r, &record); err != nil {
		httperr.Write(w, err)
		return
	}
	if err := validation.Struct(&record); err != nil {
		httperr.Write(w, err)
		return
	}

	set, err := updateSet(record)
	if err != nil {
		httperr.Write(w, httperr.NewStore("Error updating attendance", err))
		return
	}

	var updated models.Attendance
	if err := h.store.UpdateByID(r.Context(), models.AttendanceCollection, id, set, &updated); err != nil {
		httperr.Write(w, storeFail(err, "Attendance record not found", "Duplicate attendance record", "Error updating attendance"))
		return
	}
	httperr.JSON(w, http.StatusOK, updated)
}

func (h *AttendanceHandler) DeleteAttendance(w http.ResponseWriter, r *http.Request) {
	id := routeID(r)
	if err := h.store.DeleteByID(r.Context(), models.AttendanceCollection, id); err != nil {
		httperr.Write(w, storeFail(err, "Attendance record not found", "", "Error deleting attendance"))
		return
	}
	httperr.JSON(w, http.StatusOK, map[string]any{"message": "Attendance record deleted", "id": id})
}

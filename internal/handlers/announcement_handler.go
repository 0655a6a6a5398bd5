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

type AnnouncementHandler struct {
	store store.Store
}

func NewAnnouncementHandler(st store.Store) *AnnouncementHandler {
	return &AnnouncementHandler{store: st}
}

func (h *AnnouncementHandler) GetAnnouncements(w http.ResponseWriter, r *http.Request) {
	announcements := []models.Announcement{}
	if err := h.store.FindAll(r.Context(), models.AnnouncementsCollection, store.ListOptions{}, &announcements); err != nil {
		httperr.Write(w, httperr.NewStore("Error fetching announcements", err))
		return
	}
	httperr.JSON(w, http.StatusOK, announcements)
}

func (h *AnnouncementHandler) GetAnnouncement(w http.ResponseWriter, r *http.Request) {
	var announcement models.Announcement
	err := h.store.FindByID(r.Context(), models.AnnouncementsCollection, routeID(r), &announcement)
	if err != nil {
		httperr.Write(w, storeFail(err, "Announcement not found", "", "Error fetching announcement"))
		return
	}
	httperr.JSON(w, http.StatusOK, announcement)
}

func (h *AnnouncementHandler) CreateAnnouncement(w http.ResponseWriter, r *http.Request) {
	var announcement models.Announcement
	if err := decodeJSON(r, &announcement); err != nil {
		httperr.Write(w, err)
		return
	}
	announcement.ApplyDefaults()
	if err := validation.Struct(&announcement); err != nil {
		httperr.Write(w, err)
		return
	}

	announcement.ID = primitive.NewObjectID()
	now := time.Now()
	announcement.CreatedAt = now
	announcement.UpdatedAt = now

	if _, err := h.store.Insert(r.Context(), models.AnnouncementsCollection, announcement); err != nil {
		httperr.Write(w, storeFail(err, "", "Duplicate announcement", "Error creating announcement"))
		return
	}
	httperr.JSON(w, http.StatusCreated, announcement)
}

func (h *AnnouncementHandler) UpdateAnnouncement(w http.ResponseWriter, r *http.Request) {
	id := routeID(r)

	var announcement models.Announcement
	if err := h.store.FindByID(r.Context(), models.AnnouncementsCollection, id, &announcement); err != nil {
		httperr.Write(w, storeFail(err, "Announcement not found", "", "Error fetching announcement"))
		return
	}
	if err := decodeJSON(r, &announcement); err != nil {
		httperr.Write(w, err)
		return
	}
	if err := validation.Struct(&announcement); err != nil {
		httperr.Write(w, err)
		return
	}

	set, err := updateSet(announcement)
	if err != nil {
		httperr.Write(w, httperr.NewStore("Error updating announcement", err))
		return
	}

	var updated models.Announcement
	if err := h.store.UpdateByID(r.Context(), models.AnnouncementsCollection, id, set, &updated); err != nil {
		httperr.Write(w, storeFail(err, "Announcement not found", "Duplicate announcement", "Error updating announcement"))
		return
	}
	httperr.JSON(w, http.StatusOK, updated)
}

func (h *AnnouncementHandler) DeleteAnnouncement(w http.ResponseWriter, r *http.Request) {
	id := routeID(r)
	if err := h.store.DeleteByID(r.Context(), models.AnnouncementsCollection, id); err != nil {
		httperr.Write(w, storeFail(err, "Announcement not found", "", "Error deleting announcement"))
		return
	}
	httperr.JSON(w, http.StatusOK, map[string]any{"message": "Announcement deleted", "id": id})
}

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

type ContactHandler struct {
	store store.Store
}

func NewContactHandler(st store.Store) *ContactHandler {
	return &ContactHandler{store: st}
}

// GetContacts retrieves all contact messages, newest first
func (h *ContactHandler) GetContacts(w http.ResponseWriter, r *http.Request) {
	contacts := []models.Contact{}
	opts := store.ListOptions{SortBy: "createdAt", Desc: true}
	if err := h.store.FindAll(r.Context(), models.ContactsCollection, opts, &contacts); err != nil {
		httperr.Write(w, httperr.NewStore("Error fetching messages", err))
		return
	}
	httperr.JSON(w, http.StatusOK, contacts)
}

func (h *ContactHandler) GetContact(w http.ResponseWriter, r *http.Request) {
	var contact models.Contact
	err := h.store.FindByID(r.Context(), models.ContactsCollection, routeID(r), &contact)
	if err != nil {
		httperr.Write(w, storeFail(err, "Message not found", "", "Error fetching message"))
		return
	}
	httperr.JSON(w, http.StatusOK, contact)
}

// CreateContact stores a contact-form submission
func (h *ContactHandler) CreateContact(w http.ResponseWriter, r *http.Request) {
	var contact models.Contact
	if err := decodeJSON(r, &contact); err != nil {
		httperr.Write(w, err)
		return
	}
	contact.ApplyDefaults()
	if err := validation.Struct(&contact); err != nil {
		httperr.Write(w, err)
		return
	}

	contact.ID = primitive.NewObjectID()
	now := time.Now()
	contact.CreatedAt = now
	contact.UpdatedAt = now

	if _, err := h.store.Insert(r.Context(), models.ContactsCollection, contact); err != nil {
		httperr.Write(w, storeFail(err, "", "Duplicate message", "Error sending message"))
		return
	}
	httperr.JSON(w, http.StatusCreated, map[string]any{"message": "Message sent successfully", "contact": contact})
}

// UpdateContact lets an admin move a message through New/Read/Replied
func (h *ContactHandler) UpdateContact(w http.ResponseWriter, r *http.Request) {
	id := routeID(r)

	var contact models.Contact
	if err := h.store.FindByID(r.Context(), models.ContactsCollection, id, &contact); err != nil {
		httperr.Write(w, storeFail(err, "Message not found", "", "Error fetching message"))
		return
	}
	if err := decodeJSON(r, &contact); err != nil {
		httperr.Write(w, err)
		return
	}
	if err := validation.Struct(&contact); err != nil {
		httperr.Write(w, err)
		return
	}

	set, err := updateSet(contact)
	if err != nil {
		httperr.Write(w, httperr.NewStore("Error updating message", err))
		return
	}

	var updated models.Contact
	if err := h.store.UpdateByID(r.Context(), models.ContactsCollection, id, set, &updated); err != nil {
		httperr.Write(w, storeFail(err, "Message not found", "Duplicate message", "Error updating message"))
		return
	}
	httperr.JSON(w, http.StatusOK, updated)
}

func (h *ContactHandler) DeleteContact(w http.ResponseWriter, r *http.Request) {
	id := routeID(r)
	if err := h.store.DeleteByID(r.Context(), models.ContactsCollection, id); err != nil {
		httperr.Write(w, storeFail(err, "Message not found", "", "Error deleting message"))
		return
	}
	httperr.JSON(w, http.StatusOK, map[string]any{"message": "Message deleted", "id": id})
}

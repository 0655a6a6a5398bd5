package handlers

import (
	"net/http"

	"github.com/gorilla/mux"
	"go.mongodb.org/mongo-driver/bson"

	"github.com/Aditya4234/LMS-project/internal/httperr"
	"github.com/Aditya4234/LMS-project/internal/models"
	"github.com/Aditya4234/LMS-project/internal/store"
)

// browseCap bounds every admin listing; the browser has no pagination.
const browseCap = 100

// AdminHandler is a generic collection browser over the fixed allow-list in
// models.Collections. It requires an admin-role token.
type AdminHandler struct {
	store  store.Store
	dbName string
}

func NewAdminHandler(st store.Store, dbName string) *AdminHandler {
	return &AdminHandler{store: st, dbName: dbName}
}

// GetCollections returns up to browseCap documents from every collection plus
// full counts.
func (h *AdminHandler) GetCollections(w http.ResponseWriter, r *http.Request) {
	collections := map[string]any{}
	stats := map[string]int64{}

	for _, name := range models.Collections {
		docs := []bson.M{}
		if err := h.store.FindAll(r.Context(), name, store.ListOptions{Limit: browseCap}, &docs); err != nil {
			httperr.Write(w, httperr.NewStore("Error fetching collections", err))
			return
		}
		count, err := h.store.Count(r.Context(), name)
		if err != nil {
			httperr.Write(w, httperr.NewStore("Error fetching collections", err))
			return
		}
		collections[name] = docs
		stats[name] = count
	}

	httperr.JSON(w, http.StatusOK, map[string]any{"collections": collections, "stats": stats})
}

// GetCollection returns one collection's documents, capped at browseCap.
func (h *AdminHandler) GetCollection(w http.ResponseWriter, r *http.Request) {
	name := mux.Vars(r)["name"]
	if !models.KnownCollection(name) {
		httperr.Write(w, httperr.NewNotFound("Collection not found"))
		return
	}

	docs := []bson.M{}
	if err := h.store.FindAll(r.Context(), name, store.ListOptions{Limit: browseCap}, &docs); err != nil {
		httperr.Write(w, httperr.NewStore("Error fetching collection", err))
		return
	}

	httperr.JSON(w, http.StatusOK, map[string]any{
		"collection": name,
		"count":      len(docs),
		"data":       docs,
	})
}

// DeleteDocument removes a single document from an allow-listed collection.
func (h *AdminHandler) DeleteDocument(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	name, id := vars["name"], vars["id"]
	if !models.KnownCollection(name) {
		httperr.Write(w, httperr.NewNotFound("Collection not found"))
		return
	}

	if err := h.store.DeleteByID(r.Context(), name, id); err != nil {
		httperr.Write(w, storeFail(err, "Document not found", "", "Error deleting document"))
		return
	}
	httperr.JSON(w, http.StatusOK, map[string]any{"message": "Document deleted successfully", "id": id})
}

// GetStats reports per-collection document counts and store reachability.
func (h *AdminHandler) GetStats(w http.ResponseWriter, r *http.Request) {
	counts := map[string]int64{}
	connected := true
	for _, name := range models.Collections {
		count, err := h.store.Count(r.Context(), name)
		if err != nil {
			connected = false
			break
		}
		counts[name] = count
	}

	httperr.JSON(w, http.StatusOK, map[string]any{
		"database":    h.dbName,
		"connected":   connected,
		"collections": counts,
	})
}

package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"go.mongodb.org/mongo-driver/bson"

	"github.com/Aditya4234/LMS-project/internal/httperr"
	"github.com/Aditya4234/LMS-project/internal/store"
)

func routeID(r *http.Request) string {
	return mux.Vars(r)["id"]
}

func decodeJSON(r *http.Request, v any) error {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		return httperr.NewValidation("Invalid request payload")
	}
	return nil
}

// storeFail translates a store error into the response taxonomy. Raw store
// errors never reach the client directly.
func storeFail(err error, notFoundMsg, duplicateMsg, failMsg string) error {
	switch {
	case errors.Is(err, store.ErrNotFound):
		return httperr.NewNotFound(notFoundMsg)
	case errors.Is(err, store.ErrDuplicate):
		return httperr.NewValidation(duplicateMsg)
	default:
		return httperr.NewStore(failMsg, err)
	}
}

// updateSet flattens the updated entity into a $set document, dropping the
// immutable fields and stamping updatedAt.
func updateSet(v any) (map[string]any, error) {
	raw, err := bson.Marshal(v)
	if err != nil {
		return nil, err
	}
	var doc map[string]any
	if err := bson.Unmarshal(raw, &doc); err != nil {
		return nil, err
	}
	delete(doc, "_id")
	delete(doc, "createdAt")
	doc["updatedAt"] = time.Now()
	return doc, nil
}

package handlers

import (
	"net/http"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/Aditya4234/LMS-project/internal/httperr"
	"github.com/Aditya4234/LMS-project/internal/middleware"
	"github.com/Aditya4234/LMS-project/internal/models"
	"github.com/Aditya4234/LMS-project/internal/store"
	"github.com/Aditya4234/LMS-project/internal/validation"
)

// ProfileHandler exposes the authenticated user's own account. Both routes
// sit behind the auth middleware.
type ProfileHandler struct {
	store store.Store
}

func NewProfileHandler(st store.Store) *ProfileHandler {
	return &ProfileHandler{store: st}
}

func (h *ProfileHandler) GetProfile(w http.ResponseWriter, r *http.Request) {
	var user models.User
	err := h.store.FindByID(r.Context(), models.UsersCollection, middleware.UserID(r), &user)
	if err != nil {
		httperr.Write(w, storeFail(err, "User not found", "", "Error fetching profile"))
		return
	}
	httperr.JSON(w, http.StatusOK, user)
}

type profileUpdate struct {
	Name     *string `json:"name"`
	Email    *string `json:"email"`
	Password *string `json:"password"`
}

// UpdateProfile changes name, email and optionally the password. The password
// is re-hashed only when a new plaintext value is supplied; updates that do
// not touch it leave the stored hash alone.
func (h *ProfileHandler) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	id := middleware.UserID(r)

	var user models.User
	if err := h.store.FindByID(r.Context(), models.UsersCollection, id, &user); err != nil {
		httperr.Write(w, storeFail(err, "User not found", "", "Error fetching profile"))
		return
	}

	var req profileUpdate
	if err := decodeJSON(r, &req); err != nil {
		httperr.Write(w, err)
		return
	}

	set := map[string]any{"updatedAt": time.Now()}
	if req.Name != nil {
		user.Name = *req.Name
		set["name"] = *req.Name
	}
	if req.Email != nil {
		user.Email = *req.Email
		set["email"] = *req.Email
	}
	if err := validation.Struct(&user); err != nil {
		httperr.Write(w, err)
		return
	}
	if req.Password != nil && *req.Password != "" {
		if len(*req.Password) < 4 {
			httperr.Write(w, httperr.NewValidation("Password must be at least 4 characters"))
			return
		}
		hashed, err := bcrypt.GenerateFromPassword([]byte(*req.Password), bcrypt.DefaultCost)
		if err != nil {
			httperr.Write(w, httperr.NewStore("Error hashing password", err))
			return
		}
		set["password"] = string(hashed)
	}

	var updated models.User
	if err := h.store.UpdateByID(r.Context(), models.UsersCollection, id, set, &updated); err != nil {
		httperr.Write(w, storeFail(err, "User not found", "Email already exists", "Error updating profile"))
		return
	}
	httperr.JSON(w, http.StatusOK, map[string]any{"message": "Profile updated", "profile": updated})
}

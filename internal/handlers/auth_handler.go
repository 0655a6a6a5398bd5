package handlers

import (
	"errors"
	"net/http"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"golang.org/x/crypto/bcrypt"

	"github.com/Aditya4234/LMS-project/internal/auth"
	"github.com/Aditya4234/LMS-project/internal/httperr"
	"github.com/Aditya4234/LMS-project/internal/middleware"
	"github.com/Aditya4234/LMS-project/internal/models"
	"github.com/Aditya4234/LMS-project/internal/store"
	"github.com/Aditya4234/LMS-project/internal/validation"
)

// invalidCredentials is the single 401 body for every login failure, so the
// response never reveals whether the email exists.
const invalidCredentials = "Invalid email or password"

type AuthHandler struct {
	store  store.Store
	tokens *auth.Manager
}

func NewAuthHandler(st store.Store, tokens *auth.Manager) *AuthHandler {
	return &AuthHandler{store: st, tokens: tokens}
}

type registerRequest struct {
	Name     string `json:"name" validate:"required,min=2"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=4"`
	Role     string `json:"role" validate:"omitempty,oneof=student teacher admin"`
}

// Register creates a User with a bcrypt-hashed password and returns a signed
// token plus the user view.
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req registerRequest
	if err := decodeJSON(r, &req); err != nil {
		httperr.Write(w, err)
		return
	}
	if err := validation.Struct(&req); err != nil {
		httperr.Write(w, err)
		return
	}

	var existing models.User
	err := h.store.FindOne(r.Context(), models.UsersCollection, map[string]any{"email": req.Email}, &existing)
	if err == nil {
		httperr.Write(w, httperr.NewValidation("Email already exists"))
		return
	}
	if !errors.Is(err, store.ErrNotFound) {
		httperr.Write(w, httperr.NewStore("Error checking email availability", err))
		return
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		httperr.Write(w, httperr.NewStore("Error hashing password", err))
		return
	}

	now := time.Now()
	user := models.User{
		ID:        primitive.NewObjectID(),
		Name:      req.Name,
		Email:     req.Email,
		Password:  string(hashed),
		Role:      models.UserRole(req.Role),
		IsActive:  true,
		CreatedAt: now,
		UpdatedAt: now,
	}
	user.ApplyDefaults()

	// The unique index backstops the pre-check above under concurrent
	// registrations with the same email.
	if _, err := h.store.Insert(r.Context(), models.UsersCollection, user); err != nil {
		httperr.Write(w, storeFail(err, "", "Email already exists", "Error creating user"))
		return
	}

	token, err := h.tokens.Issue(user.ID.Hex(), string(user.Role))
	if err != nil {
		httperr.Write(w, httperr.NewStore("Error issuing token", err))
		return
	}

	httperr.JSON(w, http.StatusCreated, map[string]any{"token": token, "user": user})
}

type loginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// Login verifies credentials and returns a signed token plus the user view.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := decodeJSON(r, &req); err != nil {
		httperr.Write(w, err)
		return
	}
	if err := validation.Struct(&req); err != nil {
		httperr.Write(w, err)
		return
	}

	var user models.User
	err := h.store.FindOne(r.Context(), models.UsersCollection, map[string]any{"email": req.Email}, &user)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			httperr.Write(w, httperr.NewAuth(invalidCredentials))
			return
		}
		httperr.Write(w, httperr.NewStore("Error fetching user", err))
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		httperr.Write(w, httperr.NewAuth(invalidCredentials))
		return
	}

	token, err := h.tokens.Issue(user.ID.Hex(), string(user.Role))
	if err != nil {
		httperr.Write(w, httperr.NewStore("Error issuing token", err))
		return
	}

	httperr.JSON(w, http.StatusOK, map[string]any{"token": token, "user": user})
}

// Me returns the user behind the bearer token; used by the frontend to
// restore a session.
func (h *AuthHandler) Me(w http.ResponseWriter, r *http.Request) {
	var user models.User
	err := h.store.FindByID(r.Context(), models.UsersCollection, middleware.UserID(r), &user)
	if err != nil {
		httperr.Write(w, storeFail(err, "User not found", "", "Error fetching user"))
		return
	}
	httperr.JSON(w, http.StatusOK, map[string]any{"user": user})
}

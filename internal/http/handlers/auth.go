package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/sunflix/backend/internal/auth"
	"github.com/sunflix/backend/internal/http/respond"
	"github.com/sunflix/backend/internal/middleware"
	"github.com/sunflix/backend/internal/models"
	"github.com/sunflix/backend/internal/storage"
)

// AuthHandler owns signup, login, admin-login, and the current-user
// endpoint. It is the only place credentials are handled; the plaintext
// password never reaches a log line or the store.
type AuthHandler struct {
	store  storage.UserStore
	tokens *auth.TokenManager
}

// NewAuthHandler constructs the handler.
func NewAuthHandler(store storage.UserStore, tokens *auth.TokenManager) *AuthHandler {
	return &AuthHandler{store: store, tokens: tokens}
}

type signupRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type authResponse struct {
	Token string      `json:"token"`
	User  models.User `json:"user"`
}

// Signup registers a new viewer account and returns a fresh token. The
// duplicate-email check is the insert itself: the store maps its unique
// index violation to ErrAlreadyExists, so concurrent signups with the
// same email cannot both succeed.
func (h *AuthHandler) Signup(w http.ResponseWriter, r *http.Request) {
	var req signupRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.Error(w, http.StatusBadRequest, "Invalid JSON payload")
		return
	}
	req.Name = strings.TrimSpace(req.Name)
	req.Email = strings.TrimSpace(req.Email)
	if req.Name == "" || req.Email == "" || req.Password == "" {
		respond.Error(w, http.StatusBadRequest, "Missing required fields")
		return
	}

	passwordHash, err := auth.HashPassword(req.Password)
	if err != nil {
		log.Error().Err(err).Msg("signup: hash password")
		respond.Error(w, http.StatusInternalServerError, "Signup failed")
		return
	}

	user := models.User{
		Name:          req.Name,
		Email:         req.Email,
		PasswordHash:  passwordHash,
		Role:          models.RoleUser,
		Approved:      false,
		Favorites:     []string{},
		Subscriptions: []string{},
	}
	created, err := h.store.CreateUser(r.Context(), user)
	if err != nil {
		if errors.Is(err, storage.ErrAlreadyExists) {
			respond.Error(w, http.StatusBadRequest, "User already exists")
			return
		}
		log.Error().Err(err).Msg("signup: create user")
		respond.Error(w, http.StatusInternalServerError, "Signup failed")
		return
	}

	h.respondWithToken(w, created, "Signup failed")
}

// Login authenticates by email and password. An unknown email and a wrong
// password produce the identical response, so the endpoint never reveals
// which one failed.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.Error(w, http.StatusBadRequest, "Invalid JSON payload")
		return
	}
	if strings.TrimSpace(req.Email) == "" || req.Password == "" {
		respond.Error(w, http.StatusBadRequest, "Missing email or password")
		return
	}

	user, err := h.store.FindUserByEmail(r.Context(), strings.TrimSpace(req.Email))
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			respond.Error(w, http.StatusUnauthorized, "Invalid credentials")
			return
		}
		log.Error().Err(err).Msg("login: fetch user")
		respond.Error(w, http.StatusInternalServerError, "Login failed")
		return
	}
	if !auth.VerifyPassword(req.Password, user.PasswordHash) {
		respond.Error(w, http.StatusUnauthorized, "Invalid credentials")
		return
	}

	h.respondWithToken(w, user, "Login failed")
}

// AdminLogin behaves like Login but only matches admin accounts. A
// correct password on a non-admin account fails exactly like a wrong
// password; the role is never revealed.
func (h *AuthHandler) AdminLogin(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.Error(w, http.StatusBadRequest, "Invalid JSON payload")
		return
	}
	if strings.TrimSpace(req.Email) == "" || req.Password == "" {
		respond.Error(w, http.StatusBadRequest, "Missing email or password")
		return
	}

	user, err := h.store.FindAdminByEmail(r.Context(), strings.TrimSpace(req.Email))
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			respond.Error(w, http.StatusUnauthorized, "Invalid admin credentials")
			return
		}
		log.Error().Err(err).Msg("admin login: fetch user")
		respond.Error(w, http.StatusInternalServerError, "Admin login failed")
		return
	}
	if !auth.VerifyPassword(req.Password, user.PasswordHash) {
		respond.Error(w, http.StatusUnauthorized, "Invalid admin credentials")
		return
	}

	h.respondWithToken(w, user, "Admin login failed")
}

// Me returns the caller's current record. The token only proves identity;
// the record is re-read so deactivated accounts surface as 404.
func (h *AuthHandler) Me(w http.ResponseWriter, r *http.Request) {
	user, err := h.store.FindUserByID(r.Context(), middleware.UserID(r.Context()))
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			respond.Error(w, http.StatusNotFound, "User not found")
			return
		}
		log.Error().Err(err).Msg("me: fetch user")
		respond.Error(w, http.StatusInternalServerError, "Failed to fetch user")
		return
	}
	respond.JSON(w, http.StatusOK, user)
}

func (h *AuthHandler) respondWithToken(w http.ResponseWriter, user models.User, failMsg string) {
	token, err := h.tokens.Generate(user.ID)
	if err != nil {
		log.Error().Err(err).Msg("issue token")
		respond.Error(w, http.StatusInternalServerError, failMsg)
		return
	}
	respond.JSON(w, http.StatusOK, authResponse{Token: token, User: user})
}

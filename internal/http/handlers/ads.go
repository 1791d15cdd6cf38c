package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"github.com/sunflix/backend/internal/http/respond"
	"github.com/sunflix/backend/internal/models"
	"github.com/sunflix/backend/internal/storage"
)

// defaultAdPosition is where an ad renders when the creator names no slot.
const defaultAdPosition = "banner"

// AdHandler serves ad listing publicly and ad mutations behind the admin
// role gate. Internal error detail never reaches the response body.
type AdHandler struct {
	store storage.AdStore
}

// NewAdHandler constructs the handler.
func NewAdHandler(store storage.AdStore) *AdHandler {
	return &AdHandler{store: store}
}

type adRequest struct {
	Title    string `json:"title"`
	ImageURL string `json:"imageUrl"`
	ClickURL string `json:"clickUrl"`
	Position string `json:"position"`
	Active   *bool  `json:"active"`
}

// List returns all active ads.
func (h *AdHandler) List(w http.ResponseWriter, r *http.Request) {
	ads, err := h.store.ListActiveAds(r.Context())
	if err != nil {
		log.Error().Err(err).Msg("list ads")
		respond.Error(w, http.StatusInternalServerError, "Failed to fetch ads")
		return
	}
	respond.JSON(w, http.StatusOK, ads)
}

// Create inserts a new ad. Unset active defaults to true; unset position
// defaults to the banner slot.
func (h *AdHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req adRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.Error(w, http.StatusBadRequest, "Invalid JSON payload")
		return
	}
	if strings.TrimSpace(req.Title) == "" || strings.TrimSpace(req.ImageURL) == "" || strings.TrimSpace(req.ClickURL) == "" {
		respond.Error(w, http.StatusBadRequest, "Missing required fields: title, imageUrl, clickUrl")
		return
	}

	ad := models.Ad{
		Title:    req.Title,
		ImageURL: req.ImageURL,
		ClickURL: req.ClickURL,
		Position: req.Position,
		Active:   req.Active == nil || *req.Active,
	}
	if ad.Position == "" {
		ad.Position = defaultAdPosition
	}

	created, err := h.store.CreateAd(r.Context(), ad)
	if err != nil {
		log.Error().Err(err).Msg("create ad")
		respond.Error(w, http.StatusInternalServerError, "Failed to create ad")
		return
	}
	respond.JSON(w, http.StatusOK, created)
}

// Update applies a partial update to an existing ad.
func (h *AdHandler) Update(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Title    *string `json:"title"`
		ImageURL *string `json:"imageUrl"`
		ClickURL *string `json:"clickUrl"`
		Position *string `json:"position"`
		Active   *bool   `json:"active"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.Error(w, http.StatusBadRequest, "Invalid JSON payload")
		return
	}

	upd := storage.AdUpdate{
		Title:    req.Title,
		ImageURL: req.ImageURL,
		ClickURL: req.ClickURL,
		Position: req.Position,
		Active:   req.Active,
	}
	updated, err := h.store.UpdateAd(r.Context(), chi.URLParam(r, "id"), upd)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			respond.Error(w, http.StatusNotFound, "Ad not found")
			return
		}
		log.Error().Err(err).Msg("update ad")
		respond.Error(w, http.StatusInternalServerError, "Failed to update ad")
		return
	}
	respond.JSON(w, http.StatusOK, updated)
}

// Delete removes an ad.
func (h *AdHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.store.DeleteAd(r.Context(), chi.URLParam(r, "id")); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			respond.Error(w, http.StatusNotFound, "Ad not found")
			return
		}
		log.Error().Err(err).Msg("delete ad")
		respond.Error(w, http.StatusInternalServerError, "Failed to delete ad")
		return
	}
	respond.JSON(w, http.StatusOK, map[string]bool{"success": true})
}

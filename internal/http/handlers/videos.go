package handlers

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"github.com/sunflix/backend/internal/http/respond"
	"github.com/sunflix/backend/internal/models"
	"github.com/sunflix/backend/internal/storage"
)

// VideoHandler serves the public catalog. Listings only ever surface
// published videos; drafts are reachable by ID only.
type VideoHandler struct {
	store storage.VideoStore
}

// NewVideoHandler constructs the handler.
func NewVideoHandler(store storage.VideoStore) *VideoHandler {
	return &VideoHandler{store: store}
}

// List returns published videos, optionally filtered by ?category=.
func (h *VideoHandler) List(w http.ResponseWriter, r *http.Request) {
	videos, err := h.store.ListVideos(r.Context(), r.URL.Query().Get("category"))
	if err != nil {
		log.Error().Err(err).Msg("list videos")
		respond.Error(w, http.StatusInternalServerError, "Failed to fetch videos")
		return
	}
	respond.JSON(w, http.StatusOK, videos)
}

// Trending returns published videos flagged trending.
func (h *VideoHandler) Trending(w http.ResponseWriter, r *http.Request) {
	videos, err := h.store.ListTrendingVideos(r.Context())
	if err != nil {
		log.Error().Err(err).Msg("list trending videos")
		respond.Error(w, http.StatusInternalServerError, "Failed to fetch trending videos")
		return
	}
	respond.JSON(w, http.StatusOK, videos)
}

// Featured returns published videos flagged featured.
func (h *VideoHandler) Featured(w http.ResponseWriter, r *http.Request) {
	videos, err := h.store.ListFeaturedVideos(r.Context())
	if err != nil {
		log.Error().Err(err).Msg("list featured videos")
		respond.Error(w, http.StatusInternalServerError, "Failed to fetch featured videos")
		return
	}
	respond.JSON(w, http.StatusOK, videos)
}

// Search matches ?q= against titles and descriptions. An empty query is
// an empty result, not an error.
func (h *VideoHandler) Search(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query().Get("q")
	if q == "" {
		respond.JSON(w, http.StatusOK, []models.Video{})
		return
	}
	videos, err := h.store.SearchVideos(r.Context(), q)
	if err != nil {
		log.Error().Err(err).Msg("search videos")
		respond.Error(w, http.StatusInternalServerError, "Search failed")
		return
	}
	respond.JSON(w, http.StatusOK, videos)
}

// Get returns a single video by ID.
func (h *VideoHandler) Get(w http.ResponseWriter, r *http.Request) {
	video, err := h.store.FindVideoByID(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			respond.Error(w, http.StatusNotFound, "Video not found")
			return
		}
		log.Error().Err(err).Msg("fetch video")
		respond.Error(w, http.StatusInternalServerError, "Failed to fetch video")
		return
	}
	respond.JSON(w, http.StatusOK, video)
}

package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"github.com/sunflix/backend/internal/http/respond"
	"github.com/sunflix/backend/internal/middleware"
	"github.com/sunflix/backend/internal/models"
	"github.com/sunflix/backend/internal/storage"
)

// CommentHandler serves per-video comments. Creation requires a valid
// token; the commenter's display name is captured at write time.
type CommentHandler struct {
	comments storage.CommentStore
	videos   storage.VideoStore
	users    storage.UserStore
}

// NewCommentHandler constructs the handler.
func NewCommentHandler(comments storage.CommentStore, videos storage.VideoStore, users storage.UserStore) *CommentHandler {
	return &CommentHandler{comments: comments, videos: videos, users: users}
}

// List returns a video's comments, newest first.
func (h *CommentHandler) List(w http.ResponseWriter, r *http.Request) {
	comments, err := h.comments.ListCommentsByVideo(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		log.Error().Err(err).Msg("list comments")
		respond.Error(w, http.StatusInternalServerError, "Failed to fetch comments")
		return
	}
	respond.JSON(w, http.StatusOK, comments)
}

// Create attaches a comment to a video on behalf of the authenticated user.
func (h *CommentHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Text string `json:"text"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.Error(w, http.StatusBadRequest, "Invalid JSON payload")
		return
	}
	if strings.TrimSpace(req.Text) == "" {
		respond.Error(w, http.StatusBadRequest, "Missing comment text")
		return
	}

	videoID := chi.URLParam(r, "id")
	if _, err := h.videos.FindVideoByID(r.Context(), videoID); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			respond.Error(w, http.StatusNotFound, "Video not found")
			return
		}
		log.Error().Err(err).Msg("comment: fetch video")
		respond.Error(w, http.StatusInternalServerError, "Failed to create comment")
		return
	}

	user, err := h.users.FindUserByID(r.Context(), middleware.UserID(r.Context()))
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			respond.Error(w, http.StatusNotFound, "User not found")
			return
		}
		log.Error().Err(err).Msg("comment: fetch user")
		respond.Error(w, http.StatusInternalServerError, "Failed to create comment")
		return
	}

	comment, err := h.comments.CreateComment(r.Context(), models.Comment{
		VideoID:  videoID,
		UserID:   user.ID,
		UserName: user.Name,
		Text:     req.Text,
	})
	if err != nil {
		log.Error().Err(err).Msg("create comment")
		respond.Error(w, http.StatusInternalServerError, "Failed to create comment")
		return
	}
	respond.JSON(w, http.StatusOK, comment)
}

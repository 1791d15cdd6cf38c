package handlers

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/sunflix/backend/internal/http/respond"
	"github.com/sunflix/backend/internal/models"
	"github.com/sunflix/backend/internal/storage"
)

// MessageHandler serves the contact-form inbox.
type MessageHandler struct {
	store storage.MessageStore
}

// NewMessageHandler constructs the handler.
func NewMessageHandler(store storage.MessageStore) *MessageHandler {
	return &MessageHandler{store: store}
}

// List returns all messages, newest first.
func (h *MessageHandler) List(w http.ResponseWriter, r *http.Request) {
	messages, err := h.store.ListMessages(r.Context())
	if err != nil {
		log.Error().Err(err).Msg("list messages")
		respond.Error(w, http.StatusInternalServerError, "Failed to fetch messages")
		return
	}
	respond.JSON(w, http.StatusOK, messages)
}

// Create stores a contact-form submission.
func (h *MessageHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Name    string `json:"name"`
		Email   string `json:"email"`
		Subject string `json:"subject"`
		Body    string `json:"body"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.Error(w, http.StatusBadRequest, "Invalid JSON payload")
		return
	}
	if strings.TrimSpace(req.Body) == "" {
		respond.Error(w, http.StatusBadRequest, "Missing message body")
		return
	}

	msg, err := h.store.CreateMessage(r.Context(), models.Message{
		Name:    req.Name,
		Email:   req.Email,
		Subject: req.Subject,
		Body:    req.Body,
	})
	if err != nil {
		log.Error().Err(err).Msg("create message")
		respond.Error(w, http.StatusInternalServerError, "Failed to create message")
		return
	}
	respond.JSON(w, http.StatusOK, msg)
}

package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/sunflix/backend/internal/http/respond"
)

// Pinger reports backing-database reachability.
type Pinger interface {
	Ping(ctx context.Context) error
}

// HealthHandler returns uptime, database reachability, and basic status.
type HealthHandler struct {
	db        Pinger
	startedAt time.Time
}

// NewHealthHandler creates a health endpoint handler.
func NewHealthHandler(db Pinger, startedAt time.Time) *HealthHandler {
	return &HealthHandler{db: db, startedAt: startedAt}
}

// Health reports process status. A down database does not fail the
// endpoint; it is reported in the body so probes can tell the two apart.
func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
	defer cancel()

	respond.JSON(w, http.StatusOK, map[string]any{
		"status":      "ok",
		"dbConnected": h.db.Ping(ctx) == nil,
		"uptime":      time.Since(h.startedAt).Truncate(time.Second).String(),
		"timestamp":   time.Now().UTC().Format(time.RFC3339),
	})
}

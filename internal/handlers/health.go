package handlers

import (
	"context"
	"net/http"
)

// Pinger checks connectivity to the persistence boundary.
type Pinger interface {
	PingContext(ctx context.Context) error
}

// NewHealthHandler returns an HTTP liveness handler.
// @Summary Health check
// @Tags health
// @Produce json
// @Success 200 {object} handlers.MessageResponse
// @Failure 503 {object} handlers.ErrorResponse
// @Router /health [get]
func NewHealthHandler(db Pinger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := db.PingContext(r.Context()); err != nil {
			writeJSON(w, http.StatusServiceUnavailable, ErrorResponse{Error: "database unavailable"})
			return
		}
		writeJSON(w, http.StatusOK, MessageResponse{Message: "ok"})
	}
}

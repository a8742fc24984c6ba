package handlers

import (
	"context"
	"net/http"

	"github.com/staffhub-dev/staffhub/internal/logger"
	"github.com/staffhub-dev/staffhub/internal/models"
)

// StatsProvider defines the interface that the stats service must implement.
type StatsProvider interface {
	Stats(ctx context.Context) (*models.Stats, error)
}

// NewStatsHandler returns an HTTP handler serving dashboard counters.
// @Summary Dashboard stats
// @Tags stats
// @Produce json
// @Security BearerAuth
// @Success 200 {object} models.Stats
// @Failure 500 {object} handlers.ErrorResponse
// @Router /stats [get]
func NewStatsHandler(svc StatsProvider) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		stats, err := svc.Stats(r.Context())
		if err != nil {
			logger.Log.Errorw("internal server error", "err", err)
			writeJSON(w, http.StatusInternalServerError, ErrorResponse{Error: "Internal server error"})
			return
		}
		writeJSON(w, http.StatusOK, stats)
	}
}

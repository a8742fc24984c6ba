package handlers

import (
	"context"
	"net/http"
	"strconv"

	"github.com/staffhub-dev/staffhub/internal/models"
)

// ActivityProvider defines the interface that the activity service must implement.
type ActivityProvider interface {
	Recent(ctx context.Context, limit int) []models.ActivityDB
}

// NewActivitiesHandler returns an HTTP handler serving the recent activity feed.
// @Summary Recent activity feed
// @Description Returns the most recent mutations, newest first. A read failure yields an empty array.
// @Tags activities
// @Produce json
// @Security BearerAuth
// @Param limit query int false "Number of entries" default(10)
// @Success 200 {array} models.ActivityDB
// @Router /activities [get]
func NewActivitiesHandler(svc ActivityProvider) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
		writeJSON(w, http.StatusOK, svc.Recent(r.Context(), limit))
	}
}

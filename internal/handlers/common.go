package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/staffhub-dev/staffhub/internal/middlewares"
)

// ErrorResponse represents an error response body
// swagger:model ErrorResponse
type ErrorResponse struct {
	// Error message
	// example: Internal server error
	Error string `json:"error"`
}

// MessageResponse represents a confirmation response body
// swagger:model MessageResponse
type MessageResponse struct {
	// Success message
	// example: User deleted successfully
	Message string `json:"message"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

// actorID returns the authenticated user id placed in the context by the
// auth middleware. Zero when the route is not behind the middleware.
func actorID(r *http.Request) int64 {
	id, _ := middlewares.GetUserIDFromContext(r.Context())
	return id
}

// parseID parses the {id} route parameter.
func parseID(r *http.Request) (int64, error) {
	return strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
}

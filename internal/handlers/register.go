package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/staffhub-dev/staffhub/internal/logger"
	"github.com/staffhub-dev/staffhub/internal/models"
	"github.com/staffhub-dev/staffhub/internal/services"
)

// Registerer defines the interface that the registration service must implement.
type Registerer interface {
	Register(ctx context.Context, in models.UserCreate) (*models.UserDB, error)
}

// NewRegisterHandler returns an HTTP handler for account registration.
// @Summary Register a new account
// @Description Creates a new user account. Email must be unique. The password is hashed before storing and never returned.
// @Tags auth
// @Accept json
// @Produce json
// @Param registerRequest body models.UserCreate true "Account registration request"
// @Success 201 {object} models.UserDB "Account created"
// @Failure 400 {object} handlers.ErrorResponse "Email already exists / invalid request"
// @Failure 500 {object} handlers.ErrorResponse
// @Router /auth/register [post]
func NewRegisterHandler(svc Registerer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var in models.UserCreate
		if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
			writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: "Invalid request body"})
			return
		}

		user, err := svc.Register(r.Context(), in)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrEmailAlreadyExists):
				writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: "Email already exists"})
			case errors.Is(err, services.ErrValidation):
				writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: err.Error()})
			default:
				logger.Log.Errorw("internal server error", "err", err)
				writeJSON(w, http.StatusInternalServerError, ErrorResponse{Error: "Internal server error"})
			}
			return
		}

		writeJSON(w, http.StatusCreated, user)
	}
}

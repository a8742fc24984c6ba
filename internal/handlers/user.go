package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/staffhub-dev/staffhub/internal/logger"
	"github.com/staffhub-dev/staffhub/internal/models"
	"github.com/staffhub-dev/staffhub/internal/services"
)

// UserManager defines the interface that the user service must implement.
type UserManager interface {
	List(ctx context.Context) ([]models.UserDB, error)
	Get(ctx context.Context, id int64) (*models.UserDB, error)
	Search(ctx context.Context, term string) ([]models.UserDB, error)
	Create(ctx context.Context, actorID int64, in models.UserCreate) (*models.UserDB, error)
	Update(ctx context.Context, actorID int64, id int64, patch models.UserPatch) (*models.UserDB, error)
	Delete(ctx context.Context, actorID int64, id int64) error
}

// NewListUsersHandler returns an HTTP handler listing all users.
// @Summary List users
// @Description Returns all users, most recent first. Password hashes are never included.
// @Tags users
// @Produce json
// @Security BearerAuth
// @Success 200 {array} models.UserDB
// @Failure 500 {object} handlers.ErrorResponse
// @Router /users [get]
func NewListUsersHandler(svc UserManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		users, err := svc.List(r.Context())
		if err != nil {
			logger.Log.Errorw("internal server error", "err", err)
			writeJSON(w, http.StatusInternalServerError, ErrorResponse{Error: "Internal server error"})
			return
		}
		writeJSON(w, http.StatusOK, users)
	}
}

// NewGetUserHandler returns an HTTP handler fetching one user by id.
// @Summary Get user
// @Tags users
// @Produce json
// @Security BearerAuth
// @Param id path int true "User ID"
// @Success 200 {object} models.UserDB
// @Failure 404 {object} handlers.ErrorResponse
// @Failure 500 {object} handlers.ErrorResponse
// @Router /users/{id} [get]
func NewGetUserHandler(svc UserManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := parseID(r)
		if err != nil {
			writeJSON(w, http.StatusNotFound, ErrorResponse{Error: "User not found"})
			return
		}

		user, err := svc.Get(r.Context(), id)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrUserNotFound):
				writeJSON(w, http.StatusNotFound, ErrorResponse{Error: "User not found"})
			default:
				logger.Log.Errorw("internal server error", "err", err)
				writeJSON(w, http.StatusInternalServerError, ErrorResponse{Error: "Internal server error"})
			}
			return
		}
		writeJSON(w, http.StatusOK, user)
	}
}

// NewSearchUsersHandler returns an HTTP handler searching users by term.
// @Summary Search users
// @Description Case-insensitive substring match over name, email and role.
// @Tags users
// @Produce json
// @Security BearerAuth
// @Param term path string true "Search term"
// @Success 200 {array} models.UserDB
// @Failure 500 {object} handlers.ErrorResponse
// @Router /users/search/{term} [get]
func NewSearchUsersHandler(svc UserManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		users, err := svc.Search(r.Context(), chi.URLParam(r, "term"))
		if err != nil {
			logger.Log.Errorw("internal server error", "err", err)
			writeJSON(w, http.StatusInternalServerError, ErrorResponse{Error: "Internal server error"})
			return
		}
		writeJSON(w, http.StatusOK, users)
	}
}

// NewCreateUserHandler returns an HTTP handler creating a user.
// @Summary Create user
// @Description Creates a new user. Email must be unique; the password is hashed before storing and never returned.
// @Tags users
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param user body models.UserCreate true "User to create"
// @Success 201 {object} models.UserDB
// @Failure 400 {object} handlers.ErrorResponse "Email already exists / invalid payload"
// @Failure 500 {object} handlers.ErrorResponse
// @Router /users [post]
func NewCreateUserHandler(svc UserManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var in models.UserCreate
		if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
			writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: "Invalid request body"})
			return
		}

		user, err := svc.Create(r.Context(), actorID(r), in)
		if err != nil {
			writeUserMutationError(w, err)
			return
		}
		writeJSON(w, http.StatusCreated, user)
	}
}

// NewUpdateUserHandler returns an HTTP handler applying a partial update.
// @Summary Update user
// @Description Applies only the provided fields. An empty patch is a no-op reported as not found.
// @Tags users
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "User ID"
// @Param patch body models.UserPatch true "Fields to update"
// @Success 200 {object} models.UserDB
// @Failure 400 {object} handlers.ErrorResponse
// @Failure 404 {object} handlers.ErrorResponse
// @Failure 500 {object} handlers.ErrorResponse
// @Router /users/{id} [put]
func NewUpdateUserHandler(svc UserManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := parseID(r)
		if err != nil {
			writeJSON(w, http.StatusNotFound, ErrorResponse{Error: "User not found"})
			return
		}

		var patch models.UserPatch
		if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
			writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: "Invalid request body"})
			return
		}

		user, err := svc.Update(r.Context(), actorID(r), id, patch)
		if err != nil {
			writeUserMutationError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, user)
	}
}

// NewDeleteUserHandler returns an HTTP handler deleting one user.
// @Summary Delete user
// @Tags users
// @Produce json
// @Security BearerAuth
// @Param id path int true "User ID"
// @Success 200 {object} handlers.MessageResponse
// @Failure 404 {object} handlers.ErrorResponse
// @Failure 500 {object} handlers.ErrorResponse
// @Router /users/{id} [delete]
func NewDeleteUserHandler(svc UserManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := parseID(r)
		if err != nil {
			writeJSON(w, http.StatusNotFound, ErrorResponse{Error: "User not found"})
			return
		}

		if err := svc.Delete(r.Context(), actorID(r), id); err != nil {
			writeUserMutationError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, MessageResponse{Message: "User deleted successfully"})
	}
}

func writeUserMutationError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, services.ErrUserNotFound):
		writeJSON(w, http.StatusNotFound, ErrorResponse{Error: "User not found"})
	case errors.Is(err, services.ErrEmailAlreadyExists):
		writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: "Email already exists"})
	case errors.Is(err, services.ErrValidation):
		writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: err.Error()})
	default:
		logger.Log.Errorw("internal server error", "err", err)
		writeJSON(w, http.StatusInternalServerError, ErrorResponse{Error: "Internal server error"})
	}
}

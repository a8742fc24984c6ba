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

// CandidateManager defines the interface that the candidate service must implement.
type CandidateManager interface {
	List(ctx context.Context) ([]models.CandidateDB, error)
	Get(ctx context.Context, id int64) (*models.CandidateDB, error)
	Search(ctx context.Context, term string) ([]models.CandidateDB, error)
	ByStatus(ctx context.Context, status string) ([]models.CandidateDB, error)
	Create(ctx context.Context, actorID int64, in models.CandidateCreate) (*models.CandidateDB, error)
	Update(ctx context.Context, actorID int64, id int64, patch models.CandidatePatch) (*models.CandidateDB, error)
	Delete(ctx context.Context, actorID int64, id int64) error
}

// NewListCandidatesHandler returns an HTTP handler listing all candidates.
// @Summary List candidates
// @Tags candidates
// @Produce json
// @Security BearerAuth
// @Success 200 {array} models.CandidateDB
// @Failure 500 {object} handlers.ErrorResponse
// @Router /candidates [get]
func NewListCandidatesHandler(svc CandidateManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		candidates, err := svc.List(r.Context())
		if err != nil {
			logger.Log.Errorw("internal server error", "err", err)
			writeJSON(w, http.StatusInternalServerError, ErrorResponse{Error: "Internal server error"})
			return
		}
		writeJSON(w, http.StatusOK, candidates)
	}
}

// NewGetCandidateHandler returns an HTTP handler fetching one candidate by id.
// @Summary Get candidate
// @Tags candidates
// @Produce json
// @Security BearerAuth
// @Param id path int true "Candidate ID"
// @Success 200 {object} models.CandidateDB
// @Failure 404 {object} handlers.ErrorResponse
// @Failure 500 {object} handlers.ErrorResponse
// @Router /candidates/{id} [get]
func NewGetCandidateHandler(svc CandidateManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := parseID(r)
		if err != nil {
			writeJSON(w, http.StatusNotFound, ErrorResponse{Error: "Candidate not found"})
			return
		}

		candidate, err := svc.Get(r.Context(), id)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrCandidateNotFound):
				writeJSON(w, http.StatusNotFound, ErrorResponse{Error: "Candidate not found"})
			default:
				logger.Log.Errorw("internal server error", "err", err)
				writeJSON(w, http.StatusInternalServerError, ErrorResponse{Error: "Internal server error"})
			}
			return
		}
		writeJSON(w, http.StatusOK, candidate)
	}
}

// NewSearchCandidatesHandler returns an HTTP handler searching candidates by term.
// @Summary Search candidates
// @Description Case-insensitive substring match over name, email and position, or exact skill membership.
// @Tags candidates
// @Produce json
// @Security BearerAuth
// @Param term path string true "Search term"
// @Success 200 {array} models.CandidateDB
// @Failure 500 {object} handlers.ErrorResponse
// @Router /candidates/search/{term} [get]
func NewSearchCandidatesHandler(svc CandidateManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		candidates, err := svc.Search(r.Context(), chi.URLParam(r, "term"))
		if err != nil {
			logger.Log.Errorw("internal server error", "err", err)
			writeJSON(w, http.StatusInternalServerError, ErrorResponse{Error: "Internal server error"})
			return
		}
		writeJSON(w, http.StatusOK, candidates)
	}
}

// NewCandidatesByStatusHandler returns an HTTP handler filtering candidates by status.
// @Summary List candidates by status
// @Tags candidates
// @Produce json
// @Security BearerAuth
// @Param status path string true "Candidate status" Enums(available, interviewing, placed, unavailable)
// @Success 200 {array} models.CandidateDB
// @Failure 400 {object} handlers.ErrorResponse
// @Failure 500 {object} handlers.ErrorResponse
// @Router /candidates/status/{status} [get]
func NewCandidatesByStatusHandler(svc CandidateManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		candidates, err := svc.ByStatus(r.Context(), chi.URLParam(r, "status"))
		if err != nil {
			switch {
			case errors.Is(err, services.ErrValidation):
				writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: err.Error()})
			default:
				logger.Log.Errorw("internal server error", "err", err)
				writeJSON(w, http.StatusInternalServerError, ErrorResponse{Error: "Internal server error"})
			}
			return
		}
		writeJSON(w, http.StatusOK, candidates)
	}
}

// NewCreateCandidateHandler returns an HTTP handler creating a candidate.
// @Summary Create candidate
// @Tags candidates
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param candidate body models.CandidateCreate true "Candidate to create"
// @Success 201 {object} models.CandidateDB
// @Failure 400 {object} handlers.ErrorResponse "Email already exists / invalid payload"
// @Failure 500 {object} handlers.ErrorResponse
// @Router /candidates [post]
func NewCreateCandidateHandler(svc CandidateManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var in models.CandidateCreate
		if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
			writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: "Invalid request body"})
			return
		}

		candidate, err := svc.Create(r.Context(), actorID(r), in)
		if err != nil {
			writeCandidateMutationError(w, err)
			return
		}
		writeJSON(w, http.StatusCreated, candidate)
	}
}

// NewUpdateCandidateHandler returns an HTTP handler applying a partial update.
// @Summary Update candidate
// @Tags candidates
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Candidate ID"
// @Param patch body models.CandidatePatch true "Fields to update"
// @Success 200 {object} models.CandidateDB
// @Failure 400 {object} handlers.ErrorResponse
// @Failure 404 {object} handlers.ErrorResponse
// @Failure 500 {object} handlers.ErrorResponse
// @Router /candidates/{id} [put]
func NewUpdateCandidateHandler(svc CandidateManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := parseID(r)
		if err != nil {
			writeJSON(w, http.StatusNotFound, ErrorResponse{Error: "Candidate not found"})
			return
		}

		var patch models.CandidatePatch
		if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
			writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: "Invalid request body"})
			return
		}

		candidate, err := svc.Update(r.Context(), actorID(r), id, patch)
		if err != nil {
			writeCandidateMutationError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, candidate)
	}
}

// NewDeleteCandidateHandler returns an HTTP handler deleting one candidate.
// @Summary Delete candidate
// @Tags candidates
// @Produce json
// @Security BearerAuth
// @Param id path int true "Candidate ID"
// @Success 200 {object} handlers.MessageResponse
// @Failure 404 {object} handlers.ErrorResponse
// @Failure 500 {object} handlers.ErrorResponse
// @Router /candidates/{id} [delete]
func NewDeleteCandidateHandler(svc CandidateManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := parseID(r)
		if err != nil {
			writeJSON(w, http.StatusNotFound, ErrorResponse{Error: "Candidate not found"})
			return
		}

		if err := svc.Delete(r.Context(), actorID(r), id); err != nil {
			writeCandidateMutationError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, MessageResponse{Message: "Candidate deleted successfully"})
	}
}

func writeCandidateMutationError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, services.ErrCandidateNotFound):
		writeJSON(w, http.StatusNotFound, ErrorResponse{Error: "Candidate not found"})
	case errors.Is(err, services.ErrEmailAlreadyExists):
		writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: "Email already exists"})
	case errors.Is(err, services.ErrValidation):
		writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: err.Error()})
	default:
		logger.Log.Errorw("internal server error", "err", err)
		writeJSON(w, http.StatusInternalServerError, ErrorResponse{Error: "Internal server error"})
	}
}

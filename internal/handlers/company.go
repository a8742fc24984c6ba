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

// CompanyManager defines the interface that the company service must implement.
type CompanyManager interface {
	List(ctx context.Context) ([]models.CompanyDB, error)
	Get(ctx context.Context, id int64) (*models.CompanyDB, error)
	Search(ctx context.Context, term string) ([]models.CompanyDB, error)
	Create(ctx context.Context, actorID int64, in models.CompanyCreate) (*models.CompanyDB, error)
	Update(ctx context.Context, actorID int64, id int64, patch models.CompanyPatch) (*models.CompanyDB, error)
	Delete(ctx context.Context, actorID int64, id int64) error
}

// NewListCompaniesHandler returns an HTTP handler listing all companies.
// @Summary List companies
// @Tags companies
// @Produce json
// @Security BearerAuth
// @Success 200 {array} models.CompanyDB
// @Failure 500 {object} handlers.ErrorResponse
// @Router /companies [get]
func NewListCompaniesHandler(svc CompanyManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		companies, err := svc.List(r.Context())
		if err != nil {
			logger.Log.Errorw("internal server error", "err", err)
			writeJSON(w, http.StatusInternalServerError, ErrorResponse{Error: "Internal server error"})
			return
		}
		writeJSON(w, http.StatusOK, companies)
	}
}

// NewGetCompanyHandler returns an HTTP handler fetching one company by id.
// @Summary Get company
// @Tags companies
// @Produce json
// @Security BearerAuth
// @Param id path int true "Company ID"
// @Success 200 {object} models.CompanyDB
// @Failure 404 {object} handlers.ErrorResponse
// @Failure 500 {object} handlers.ErrorResponse
// @Router /companies/{id} [get]
func NewGetCompanyHandler(svc CompanyManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := parseID(r)
		if err != nil {
			writeJSON(w, http.StatusNotFound, ErrorResponse{Error: "Company not found"})
			return
		}

		company, err := svc.Get(r.Context(), id)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrCompanyNotFound):
				writeJSON(w, http.StatusNotFound, ErrorResponse{Error: "Company not found"})
			default:
				logger.Log.Errorw("internal server error", "err", err)
				writeJSON(w, http.StatusInternalServerError, ErrorResponse{Error: "Internal server error"})
			}
			return
		}
		writeJSON(w, http.StatusOK, company)
	}
}

// NewSearchCompaniesHandler returns an HTTP handler searching companies by term.
// @Summary Search companies
// @Description Case-insensitive substring match over name, industry and location.
// @Tags companies
// @Produce json
// @Security BearerAuth
// @Param term path string true "Search term"
// @Success 200 {array} models.CompanyDB
// @Failure 500 {object} handlers.ErrorResponse
// @Router /companies/search/{term} [get]
func NewSearchCompaniesHandler(svc CompanyManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		companies, err := svc.Search(r.Context(), chi.URLParam(r, "term"))
		if err != nil {
			logger.Log.Errorw("internal server error", "err", err)
			writeJSON(w, http.StatusInternalServerError, ErrorResponse{Error: "Internal server error"})
			return
		}
		writeJSON(w, http.StatusOK, companies)
	}
}

// NewCreateCompanyHandler returns an HTTP handler creating a company.
// @Summary Create company
// @Tags companies
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param company body models.CompanyCreate true "Company to create"
// @Success 201 {object} models.CompanyDB
// @Failure 400 {object} handlers.ErrorResponse "Email already exists / invalid payload"
// @Failure 500 {object} handlers.ErrorResponse
// @Router /companies [post]
func NewCreateCompanyHandler(svc CompanyManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var in models.CompanyCreate
		if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
			writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: "Invalid request body"})
			return
		}

		company, err := svc.Create(r.Context(), actorID(r), in)
		if err != nil {
			writeCompanyMutationError(w, err)
			return
		}
		writeJSON(w, http.StatusCreated, company)
	}
}

// NewUpdateCompanyHandler returns an HTTP handler applying a partial update.
// @Summary Update company
// @Tags companies
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Company ID"
// @Param patch body models.CompanyPatch true "Fields to update"
// @Success 200 {object} models.CompanyDB
// @Failure 400 {object} handlers.ErrorResponse
// @Failure 404 {object} handlers.ErrorResponse
// @Failure 500 {object} handlers.ErrorResponse
// @Router /companies/{id} [put]
func NewUpdateCompanyHandler(svc CompanyManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := parseID(r)
		if err != nil {
			writeJSON(w, http.StatusNotFound, ErrorResponse{Error: "Company not found"})
			return
		}

		var patch models.CompanyPatch
		if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
			writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: "Invalid request body"})
			return
		}

		company, err := svc.Update(r.Context(), actorID(r), id, patch)
		if err != nil {
			writeCompanyMutationError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, company)
	}
}

// NewDeleteCompanyHandler returns an HTTP handler deleting one company.
// @Summary Delete company
// @Tags companies
// @Produce json
// @Security BearerAuth
// @Param id path int true "Company ID"
// @Success 200 {object} handlers.MessageResponse
// @Failure 404 {object} handlers.ErrorResponse
// @Failure 500 {object} handlers.ErrorResponse
// @Router /companies/{id} [delete]
func NewDeleteCompanyHandler(svc CompanyManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := parseID(r)
		if err != nil {
			writeJSON(w, http.StatusNotFound, ErrorResponse{Error: "Company not found"})
			return
		}

		if err := svc.Delete(r.Context(), actorID(r), id); err != nil {
			writeCompanyMutationError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, MessageResponse{Message: "Company deleted successfully"})
	}
}

func writeCompanyMutationError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, services.ErrCompanyNotFound):
		writeJSON(w, http.StatusNotFound, ErrorResponse{Error: "Company not found"})
	case errors.Is(err, services.ErrEmailAlreadyExists):
		writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: "Email already exists"})
	case errors.Is(err, services.ErrValidation):
		writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: err.Error()})
	default:
		logger.Log.Errorw("internal server error", "err", err)
		writeJSON(w, http.StatusInternalServerError, ErrorResponse{Error: "Internal server error"})
	}
}

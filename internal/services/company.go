package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/staffhub-dev/staffhub/internal/logger"
	"github.com/staffhub-dev/staffhub/internal/models"
)

// ErrCompanyNotFound is returned when no company exists for the given id.
var ErrCompanyNotFound = errors.New("company not found")

// CompanyReader defines read-only operations for companies.
type CompanyReader interface {
	List(ctx context.Context) ([]models.CompanyDB, error)
	GetByID(ctx context.Context, id int64) (*models.CompanyDB, error)
	GetByEmail(ctx context.Context, email string) (*models.CompanyDB, error)
	Search(ctx context.Context, term string) ([]models.CompanyDB, error)
}

// CompanyWriter defines write operations for companies.
type CompanyWriter interface {
	Create(ctx context.Context, in models.CompanyCreate) (*models.CompanyDB, error)
	Update(ctx context.Context, id int64, patch models.CompanyPatch) (*models.CompanyDB, error)
	Delete(ctx context.Context, id int64) (bool, error)
}

// CompanyService wraps the company store with validation and activity recording.
type CompanyService struct {
	reader   CompanyReader
	writer   CompanyWriter
	recorder Recorder
}

// NewCompanyService creates a new CompanyService instance.
func NewCompanyService(reader CompanyReader, writer CompanyWriter, recorder Recorder) *CompanyService {
	return &CompanyService{
		reader:   reader,
		writer:   writer,
		recorder: recorder,
	}
}

// List returns all companies, most recent first.
func (svc *CompanyService) List(ctx context.Context) ([]models.CompanyDB, error) {
	return svc.reader.List(ctx)
}

// Get returns the company with the given id.
func (svc *CompanyService) Get(ctx context.Context, id int64) (*models.CompanyDB, error) {
	company, err := svc.reader.GetByID(ctx, id)
	if err != nil {
		logger.Log.Errorw("failed to get company", "id", id, "error", err)
		return nil, err
	}
	if company == nil {
		return nil, ErrCompanyNotFound
	}
	return company, nil
}

// Search returns companies matching the term.
func (svc *CompanyService) Search(ctx context.Context, term string) ([]models.CompanyDB, error) {
	return svc.reader.Search(ctx, term)
}

// Create validates the input, stores the company, and records the mutation.
func (svc *CompanyService) Create(ctx context.Context, actorID int64, in models.CompanyCreate) (*models.CompanyDB, error) {
	if err := validateCompanyCreate(&in); err != nil {
		return nil, err
	}

	company, err := svc.writer.Create(ctx, in)
	if err != nil {
		logger.Log.Errorw("failed to create company", "email", in.Email, "error", err)
		return nil, mapUniqueViolation(err)
	}

	svc.recorder.Record(ctx, actorID, models.ActionCreate, models.EntityCompanies, company.ID, fmt.Sprintf("Created company: %s", company.Name))
	return company, nil
}

// Update applies a partial update. An empty patch is a no-op surfaced as
// ErrCompanyNotFound, matching the store's absent result.
func (svc *CompanyService) Update(ctx context.Context, actorID int64, id int64, patch models.CompanyPatch) (*models.CompanyDB, error) {
	if err := validateCompanyPatch(&patch); err != nil {
		return nil, err
	}

	company, err := svc.writer.Update(ctx, id, patch)
	if err != nil {
		return nil, mapUniqueViolation(err)
	}
	if company == nil {
		return nil, ErrCompanyNotFound
	}

	svc.recorder.Record(ctx, actorID, models.ActionUpdate, models.EntityCompanies, company.ID, fmt.Sprintf("Updated company: %s", company.Name))
	return company, nil
}

// Delete removes the company with the given id and records the mutation.
func (svc *CompanyService) Delete(ctx context.Context, actorID int64, id int64) error {
	company, err := svc.reader.GetByID(ctx, id)
	if err != nil {
		logger.Log.Errorw("failed to get company before delete", "id", id, "error", err)
		return err
	}
	if company == nil {
		return ErrCompanyNotFound
	}

	deleted, err := svc.writer.Delete(ctx, id)
	if err != nil {
		logger.Log.Errorw("failed to delete company", "id", id, "error", err)
		return err
	}
	if !deleted {
		return ErrCompanyNotFound
	}

	svc.recorder.Record(ctx, actorID, models.ActionDelete, models.EntityCompanies, id, fmt.Sprintf("Deleted company: %s", company.Name))
	return nil
}

func validateCompanyCreate(in *models.CompanyCreate) error {
	if in.Name == "" {
		return validationError("name is required")
	}
	if in.Industry == "" {
		return validationError("industry is required")
	}
	if in.Location == "" {
		return validationError("location is required")
	}
	if !validEmail(in.Email) {
		return validationError("invalid email")
	}
	if in.Employees < 0 {
		return validationError("employees must be non-negative")
	}
	if in.Status == "" {
		in.Status = models.CompanyStatusActive
	}
	if !models.IsValidCompanyStatus(in.Status) {
		return validationError("invalid status %q", in.Status)
	}
	return nil
}

func validateCompanyPatch(patch *models.CompanyPatch) error {
	if patch.Name != nil && *patch.Name == "" {
		return validationError("name cannot be empty")
	}
	if patch.Email != nil && !validEmail(*patch.Email) {
		return validationError("invalid email")
	}
	if patch.Employees != nil && *patch.Employees < 0 {
		return validationError("employees must be non-negative")
	}
	if patch.Status != nil && !models.IsValidCompanyStatus(*patch.Status) {
		return validationError("invalid status %q", *patch.Status)
	}
	return nil
}

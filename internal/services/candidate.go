package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/staffhub-dev/staffhub/internal/logger"
	"github.com/staffhub-dev/staffhub/internal/models"
)

// ErrCandidateNotFound is returned when no candidate exists for the given id.
var ErrCandidateNotFound = errors.New("candidate not found")

// CandidateReader defines read-only operations for candidates.
type CandidateReader interface {
	List(ctx context.Context) ([]models.CandidateDB, error)
	GetByID(ctx context.Context, id int64) (*models.CandidateDB, error)
	GetByEmail(ctx context.Context, email string) (*models.CandidateDB, error)
	ListByStatus(ctx context.Context, status string) ([]models.CandidateDB, error)
	Search(ctx context.Context, term string) ([]models.CandidateDB, error)
}

// CandidateWriter defines write operations for candidates.
type CandidateWriter interface {
	Create(ctx context.Context, in models.CandidateCreate) (*models.CandidateDB, error)
	Update(ctx context.Context, id int64, patch models.CandidatePatch) (*models.CandidateDB, error)
	Delete(ctx context.Context, id int64) (bool, error)
}

// CandidateService wraps the candidate store with validation and activity recording.
type CandidateService struct {
	reader   CandidateReader
	writer   CandidateWriter
	recorder Recorder
}

// NewCandidateService creates a new CandidateService instance.
func NewCandidateService(reader CandidateReader, writer CandidateWriter, recorder Recorder) *CandidateService {
	return &CandidateService{
		reader:   reader,
		writer:   writer,
		recorder: recorder,
	}
}

// List returns all candidates, most recent first.
func (svc *CandidateService) List(ctx context.Context) ([]models.CandidateDB, error) {
	return svc.reader.List(ctx)
}

// Get returns the candidate with the given id.
func (svc *CandidateService) Get(ctx context.Context, id int64) (*models.CandidateDB, error) {
	candidate, err := svc.reader.GetByID(ctx, id)
	if err != nil {
		logger.Log.Errorw("failed to get candidate", "id", id, "error", err)
		return nil, err
	}
	if candidate == nil {
		return nil, ErrCandidateNotFound
	}
	return candidate, nil
}

// Search returns candidates matching the term by text or exact skill.
func (svc *CandidateService) Search(ctx context.Context, term string) ([]models.CandidateDB, error) {
	return svc.reader.Search(ctx, term)
}

// ByStatus returns candidates with the given status.
func (svc *CandidateService) ByStatus(ctx context.Context, status string) ([]models.CandidateDB, error) {
	if !models.IsValidCandidateStatus(status) {
		return nil, validationError("invalid status %q", status)
	}
	return svc.reader.ListByStatus(ctx, status)
}

// Create validates the input, stores the candidate, and records the mutation.
func (svc *CandidateService) Create(ctx context.Context, actorID int64, in models.CandidateCreate) (*models.CandidateDB, error) {
	if err := validateCandidateCreate(&in); err != nil {
		return nil, err
	}

	candidate, err := svc.writer.Create(ctx, in)
	if err != nil {
		logger.Log.Errorw("failed to create candidate", "email", in.Email, "error", err)
		return nil, mapUniqueViolation(err)
	}

	svc.recorder.Record(ctx, actorID, models.ActionCreate, models.EntityCandidates, candidate.ID, fmt.Sprintf("Created candidate: %s", candidate.Name))
	return candidate, nil
}

// Update applies a partial update. An empty patch is a no-op surfaced as
// ErrCandidateNotFound, matching the store's absent result.
func (svc *CandidateService) Update(ctx context.Context, actorID int64, id int64, patch models.CandidatePatch) (*models.CandidateDB, error) {
	if err := validateCandidatePatch(&patch); err != nil {
		return nil, err
	}

	candidate, err := svc.writer.Update(ctx, id, patch)
	if err != nil {
		return nil, mapUniqueViolation(err)
	}
	if candidate == nil {
		return nil, ErrCandidateNotFound
	}

	svc.recorder.Record(ctx, actorID, models.ActionUpdate, models.EntityCandidates, candidate.ID, fmt.Sprintf("Updated candidate: %s", candidate.Name))
	return candidate, nil
}

// Delete removes the candidate with the given id and records the mutation.
func (svc *CandidateService) Delete(ctx context.Context, actorID int64, id int64) error {
	candidate, err := svc.reader.GetByID(ctx, id)
	if err != nil {
		logger.Log.Errorw("failed to get candidate before delete", "id", id, "error", err)
		return err
	}
	if candidate == nil {
		return ErrCandidateNotFound
	}

	deleted, err := svc.writer.Delete(ctx, id)
	if err != nil {
		logger.Log.Errorw("failed to delete candidate", "id", id, "error", err)
		return err
	}
	if !deleted {
		return ErrCandidateNotFound
	}

	svc.recorder.Record(ctx, actorID, models.ActionDelete, models.EntityCandidates, id, fmt.Sprintf("Deleted candidate: %s", candidate.Name))
	return nil
}

func validateCandidateCreate(in *models.CandidateCreate) error {
	if in.Name == "" {
		return validationError("name is required")
	}
	if !validEmail(in.Email) {
		return validationError("invalid email")
	}
	if in.Position == "" {
		return validationError("position is required")
	}
	if in.Status == "" {
		in.Status = models.CandidateStatusAvailable
	}
	if !models.IsValidCandidateStatus(in.Status) {
		return validationError("invalid status %q", in.Status)
	}
	return nil
}

func validateCandidatePatch(patch *models.CandidatePatch) error {
	if patch.Name != nil && *patch.Name == "" {
		return validationError("name cannot be empty")
	}
	if patch.Email != nil && !validEmail(*patch.Email) {
		return validationError("invalid email")
	}
	if patch.Status != nil && !models.IsValidCandidateStatus(*patch.Status) {
		return validationError("invalid status %q", *patch.Status)
	}
	return nil
}

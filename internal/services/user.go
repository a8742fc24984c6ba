package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/staffhub-dev/staffhub/internal/logger"
	"github.com/staffhub-dev/staffhub/internal/models"
	"golang.org/x/crypto/bcrypt"
)

// ErrUserNotFound is returned when no user exists for the given id.
var ErrUserNotFound = errors.New("user not found")

// UserReader defines read-only operations for users.
type UserReader interface {
	List(ctx context.Context) ([]models.UserDB, error)
	GetByID(ctx context.Context, id int64) (*models.UserDB, error)
	GetByEmail(ctx context.Context, email string) (*models.UserDB, error)
	Search(ctx context.Context, term string) ([]models.UserDB, error)
}

// UserWriter defines write operations for users.
type UserWriter interface {
	Create(ctx context.Context, in models.UserCreate) (*models.UserDB, error)
	Update(ctx context.Context, id int64, patch models.UserPatch) (*models.UserDB, error)
	Delete(ctx context.Context, id int64) (bool, error)
}

// Recorder records one activity entry per successful mutation.
// Implementations must never fail the triggering mutation.
type Recorder interface {
	Record(ctx context.Context, actorID int64, action, entityType string, entityID int64, description string)
}

// UserService wraps the user store with validation, password hashing,
// and activity recording.
type UserService struct {
	reader   UserReader
	writer   UserWriter
	recorder Recorder
}

// NewUserService creates a new UserService instance.
func NewUserService(reader UserReader, writer UserWriter, recorder Recorder) *UserService {
	return &UserService{
		reader:   reader,
		writer:   writer,
		recorder: recorder,
	}
}

// List returns all users, most recent first.
func (svc *UserService) List(ctx context.Context) ([]models.UserDB, error) {
	return svc.reader.List(ctx)
}

// Get returns the user with the given id.
func (svc *UserService) Get(ctx context.Context, id int64) (*models.UserDB, error) {
	user, err := svc.reader.GetByID(ctx, id)
	if err != nil {
		logger.Log.Errorw("failed to get user", "id", id, "error", err)
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}
	return user, nil
}

// Search returns users matching the term.
func (svc *UserService) Search(ctx context.Context, term string) ([]models.UserDB, error) {
	return svc.reader.Search(ctx, term)
}

// Create validates the input, hashes the password, stores the user, and
// records the mutation.
func (svc *UserService) Create(ctx context.Context, actorID int64, in models.UserCreate) (*models.UserDB, error) {
	if err := validateUserCreate(&in); err != nil {
		return nil, err
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		logger.Log.Errorw("failed to hash password", "error", err)
		return nil, err
	}
	in.Password = string(hashed)

	user, err := svc.writer.Create(ctx, in)
	if err != nil {
		logger.Log.Errorw("failed to create user", "email", in.Email, "error", err)
		return nil, mapUniqueViolation(err)
	}

	svc.recorder.Record(ctx, actorID, models.ActionCreate, models.EntityUsers, user.ID, fmt.Sprintf("Created user: %s", user.Name))
	return user, nil
}

// Update applies a partial update. An empty patch is a no-op surfaced as
// ErrUserNotFound, matching the store's absent result.
func (svc *UserService) Update(ctx context.Context, actorID int64, id int64, patch models.UserPatch) (*models.UserDB, error) {
	if err := validateUserPatch(&patch); err != nil {
		return nil, err
	}

	if patch.Password != nil {
		hashed, err := bcrypt.GenerateFromPassword([]byte(*patch.Password), bcrypt.DefaultCost)
		if err != nil {
			logger.Log.Errorw("failed to hash password", "error", err)
			return nil, err
		}
		h := string(hashed)
		patch.Password = &h
	}

	user, err := svc.writer.Update(ctx, id, patch)
	if err != nil {
		return nil, mapUniqueViolation(err)
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	svc.recorder.Record(ctx, actorID, models.ActionUpdate, models.EntityUsers, user.ID, fmt.Sprintf("Updated user: %s", user.Name))
	return user, nil
}

// Delete removes the user with the given id and records the mutation.
func (svc *UserService) Delete(ctx context.Context, actorID int64, id int64) error {
	user, err := svc.reader.GetByID(ctx, id)
	if err != nil {
		logger.Log.Errorw("failed to get user before delete", "id", id, "error", err)
		return err
	}
	if user == nil {
		return ErrUserNotFound
	}

	deleted, err := svc.writer.Delete(ctx, id)
	if err != nil {
		logger.Log.Errorw("failed to delete user", "id", id, "error", err)
		return err
	}
	if !deleted {
		return ErrUserNotFound
	}

	svc.recorder.Record(ctx, actorID, models.ActionDelete, models.EntityUsers, id, fmt.Sprintf("Deleted user: %s", user.Name))
	return nil
}

func validateUserCreate(in *models.UserCreate) error {
	if in.Name == "" {
		return validationError("name is required")
	}
	if !validEmail(in.Email) {
		return validationError("invalid email")
	}
	if in.Password == "" {
		return validationError("password is required")
	}
	if in.Role == "" {
		return validationError("role is required")
	}
	if in.Status == "" {
		in.Status = models.UserStatusActive
	}
	if !models.IsValidUserStatus(in.Status) {
		return validationError("invalid status %q", in.Status)
	}
	return nil
}

func validateUserPatch(patch *models.UserPatch) error {
	if patch.Email != nil && !validEmail(*patch.Email) {
		return validationError("invalid email")
	}
	if patch.Name != nil && *patch.Name == "" {
		return validationError("name cannot be empty")
	}
	if patch.Password != nil && *patch.Password == "" {
		return validationError("password cannot be empty")
	}
	if patch.Status != nil && !models.IsValidUserStatus(*patch.Status) {
		return validationError("invalid status %q", *patch.Status)
	}
	return nil
}

package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/jmoiron/sqlx"
	"github.com/staffhub-dev/staffhub/internal/logger"
	"github.com/staffhub-dev/staffhub/internal/models"
)

// userColumns are the columns returned by every user read projection.
// The password hash is only selected by GetByEmail (login path).
const userColumns = "id, name, email, phone, role, department, join_date, status, created_at, updated_at"

// UserReadRepository handles user read operations
type UserReadRepository struct {
	db *sqlx.DB
}

func NewUserReadRepository(db *sqlx.DB) *UserReadRepository {
	return &UserReadRepository{db: db}
}

// List returns all users ordered by creation time, most recent first.
func (r *UserReadRepository) List(ctx context.Context) ([]models.UserDB, error) {
	query := `
		SELECT ` + userColumns + `
		FROM users
		ORDER BY created_at DESC
	`

	users := []models.UserDB{}
	err := r.db.SelectContext(ctx, &users, query)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"result", len(users),
		"error", err,
	)

	return users, err
}

// GetByID returns the user with the given id, or nil if absent.
func (r *UserReadRepository) GetByID(ctx context.Context, id int64) (*models.UserDB, error) {
	query := `
		SELECT ` + userColumns + `
		FROM users
		WHERE id = $1
	`

	var user models.UserDB
	err := r.db.GetContext(ctx, &user, query, id)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{id},
		"error", err,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// GetByEmail returns the user with the given email including the password
// hash, or nil if absent. Exact, case-sensitive match.
func (r *UserReadRepository) GetByEmail(ctx context.Context, email string) (*models.UserDB, error) {
	query := `
		SELECT id, name, email, password, phone, role, department, join_date, status, created_at, updated_at
		FROM users
		WHERE email = $1
	`

	var user models.UserDB
	err := r.db.GetContext(ctx, &user, query, email)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{email},
		"error", err,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// Search returns users whose name, email or role contains the term,
// case-insensitively, most recent first.
func (r *UserReadRepository) Search(ctx context.Context, term string) ([]models.UserDB, error) {
	query := `
		SELECT ` + userColumns + `
		FROM users
		WHERE name ILIKE $1 OR email ILIKE $1 OR role ILIKE $1
		ORDER BY created_at DESC
	`

	users := []models.UserDB{}
	err := r.db.SelectContext(ctx, &users, query, "%"+term+"%")

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{term},
		"result", len(users),
		"error", err,
	)

	return users, err
}

// UserWriteRepository handles user write operations
type UserWriteRepository struct {
	db *sqlx.DB
}

func NewUserWriteRepository(db *sqlx.DB) *UserWriteRepository {
	return &UserWriteRepository{db: db}
}

// Create inserts a new user and returns the stored record.
// in.Password must already be hashed by the caller.
func (r *UserWriteRepository) Create(ctx context.Context, in models.UserCreate) (*models.UserDB, error) {
	query := `
		INSERT INTO users (name, email, password, phone, role, department, join_date, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, NOW(), NOW())
		RETURNING ` + userColumns + `
	`
	args := []any{in.Name, in.Email, in.Password, in.Phone, in.Role, in.Department, in.JoinDate, in.Status}

	var user models.UserDB
	err := r.db.GetContext(ctx, &user, query, args...)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{in.Name, in.Email},
		"error", err,
	)

	if isUniqueViolation(err) {
		return nil, ErrUniqueViolation
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// Update applies the non-nil patch fields to the user with the given id.
// Returns (nil, nil) when the patch is empty or no such user exists.
// updated_at is refreshed on every applied update.
func (r *UserWriteRepository) Update(ctx context.Context, id int64, patch models.UserPatch) (*models.UserDB, error) {
	set := []string{}
	args := []any{}
	n := 1

	add := func(col string, val any) {
		set = append(set, fmt.Sprintf("%s = $%d", col, n))
		args = append(args, val)
		n++
	}

	if patch.Name != nil {
		add("name", *patch.Name)
	}
	if patch.Email != nil {
		add("email", *patch.Email)
	}
	if patch.Password != nil {
		add("password", *patch.Password)
	}
	if patch.Phone != nil {
		add("phone", *patch.Phone)
	}
	if patch.Role != nil {
		add("role", *patch.Role)
	}
	if patch.Department != nil {
		add("department", *patch.Department)
	}
	if patch.JoinDate != nil {
		add("join_date", *patch.JoinDate)
	}
	if patch.Status != nil {
		add("status", *patch.Status)
	}

	if len(set) == 0 {
		return nil, nil
	}

	set = append(set, "updated_at = NOW()")
	args = append(args, id)

	query := fmt.Sprintf(`
		UPDATE users
		SET %s
		WHERE id = $%d
		RETURNING `+userColumns+`
	`, strings.Join(set, ", "), n)

	var user models.UserDB
	err := r.db.GetContext(ctx, &user, query, args...)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{id},
		"error", err,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if isUniqueViolation(err) {
		return nil, ErrUniqueViolation
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// Delete removes the user with the given id. Returns true if a row was removed.
func (r *UserWriteRepository) Delete(ctx context.Context, id int64) (bool, error) {
	query := `DELETE FROM users WHERE id = $1`

	res, err := r.db.ExecContext(ctx, query, id)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}

	logger.Log.Infow(
		"query", query,
		"args", []any{id},
		"result", rowsAffected,
		"error", err,
	)

	if err != nil {
		return false, err
	}
	return rowsAffected > 0, nil
}

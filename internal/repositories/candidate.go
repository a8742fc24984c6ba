package repositories

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/jmoiron/sqlx"
	"github.com/staffhub-dev/staffhub/internal/logger"
	"github.com/staffhub-dev/staffhub/internal/models"
)

const candidateColumns = "id, name, email, phone, location, position, experience, education, skills, salary, status, resume_url, created_at, updated_at"

// CandidateReadRepository handles candidate read operations
type CandidateReadRepository struct {
	db *sqlx.DB
}

func NewCandidateReadRepository(db *sqlx.DB) *CandidateReadRepository {
	return &CandidateReadRepository{db: db}
}

// List returns all candidates ordered by creation time, most recent first.
func (r *CandidateReadRepository) List(ctx context.Context) ([]models.CandidateDB, error) {
	query := `
		SELECT ` + candidateColumns + `
		FROM candidates
		ORDER BY created_at DESC
	`

	candidates := []models.CandidateDB{}
	err := r.db.SelectContext(ctx, &candidates, query)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"result", len(candidates),
		"error", err,
	)

	return candidates, err
}

// GetByID returns the candidate with the given id, or nil if absent.
func (r *CandidateReadRepository) GetByID(ctx context.Context, id int64) (*models.CandidateDB, error) {
	query := `
		SELECT ` + candidateColumns + `
		FROM candidates
		WHERE id = $1
	`

	var candidate models.CandidateDB
	err := r.db.GetContext(ctx, &candidate, query, id)

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
	return &candidate, nil
}

// GetByEmail returns the candidate with the given email, or nil if absent.
func (r *CandidateReadRepository) GetByEmail(ctx context.Context, email string) (*models.CandidateDB, error) {
	query := `
		SELECT ` + candidateColumns + `
		FROM candidates
		WHERE email = $1
	`

	var candidate models.CandidateDB
	err := r.db.GetContext(ctx, &candidate, query, email)

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
	return &candidate, nil
}

// ListByStatus returns candidates with the given status, most recent first.
func (r *CandidateReadRepository) ListByStatus(ctx context.Context, status string) ([]models.CandidateDB, error) {
	query := `
		SELECT ` + candidateColumns + `
		FROM candidates
		WHERE status = $1
		ORDER BY created_at DESC
	`

	candidates := []models.CandidateDB{}
	err := r.db.SelectContext(ctx, &candidates, query, status)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{status},
		"result", len(candidates),
		"error", err,
	)

	return candidates, err
}

// Search returns candidates whose name, email or position contains the term
// case-insensitively, or whose skill list contains the term exactly.
// Ordered by creation time, most recent first.
func (r *CandidateReadRepository) Search(ctx context.Context, term string) ([]models.CandidateDB, error) {
	query := `
		SELECT ` + candidateColumns + `
		FROM candidates
		WHERE name ILIKE $1 OR email ILIKE $1 OR position ILIKE $1 OR skills @> $2
		ORDER BY created_at DESC
	`

	// Exact skill membership via JSONB containment.
	skillTerm, _ := json.Marshal([]string{term})

	candidates := []models.CandidateDB{}
	err := r.db.SelectContext(ctx, &candidates, query, "%"+term+"%", skillTerm)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{term},
		"result", len(candidates),
		"error", err,
	)

	return candidates, err
}

// CandidateWriteRepository handles candidate write operations
type CandidateWriteRepository struct {
	db *sqlx.DB
}

func NewCandidateWriteRepository(db *sqlx.DB) *CandidateWriteRepository {
	return &CandidateWriteRepository{db: db}
}

// Create inserts a new candidate and returns the stored record.
func (r *CandidateWriteRepository) Create(ctx context.Context, in models.CandidateCreate) (*models.CandidateDB, error) {
	query := `
		INSERT INTO candidates (name, email, phone, location, position, experience, education, skills, salary, status, resume_url, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, NOW(), NOW())
		RETURNING ` + candidateColumns + `
	`
	args := []any{in.Name, in.Email, in.Phone, in.Location, in.Position,
		in.Experience, in.Education, in.Skills, in.Salary, in.Status, in.ResumeURL}

	var candidate models.CandidateDB
	err := r.db.GetContext(ctx, &candidate, query, args...)

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
	return &candidate, nil
}

// Update applies the non-nil patch fields to the candidate with the given id.
// Returns (nil, nil) when the patch is empty or no such candidate exists.
func (r *CandidateWriteRepository) Update(ctx context.Context, id int64, patch models.CandidatePatch) (*models.CandidateDB, error) {
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
	if patch.Phone != nil {
		add("phone", *patch.Phone)
	}
	if patch.Location != nil {
		add("location", *patch.Location)
	}
	if patch.Position != nil {
		add("position", *patch.Position)
	}
	if patch.Experience != nil {
		add("experience", *patch.Experience)
	}
	if patch.Education != nil {
		add("education", *patch.Education)
	}
	if patch.Skills != nil {
		add("skills", *patch.Skills)
	}
	if patch.Salary != nil {
		add("salary", *patch.Salary)
	}
	if patch.Status != nil {
		add("status", *patch.Status)
	}
	if patch.ResumeURL != nil {
		add("resume_url", *patch.ResumeURL)
	}

	if len(set) == 0 {
		return nil, nil
	}

	set = append(set, "updated_at = NOW()")
	args = append(args, id)

	query := fmt.Sprintf(`
		UPDATE candidates
		SET %s
		WHERE id = $%d
		RETURNING `+candidateColumns+`
	`, strings.Join(set, ", "), n)

	var candidate models.CandidateDB
	err := r.db.GetContext(ctx, &candidate, query, args...)

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
	return &candidate, nil
}

// Delete removes the candidate with the given id. Returns true if a row was removed.
func (r *CandidateWriteRepository) Delete(ctx context.Context, id int64) (bool, error) {
	query := `DELETE FROM candidates WHERE id = $1`

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

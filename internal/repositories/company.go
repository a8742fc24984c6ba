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

const companyColumns = "id, name, industry, location, website, email, phone, employees, founded, status, created_at, updated_at"

// CompanyReadRepository handles company read operations
type CompanyReadRepository struct {
	db *sqlx.DB
}

func NewCompanyReadRepository(db *sqlx.DB) *CompanyReadRepository {
	return &CompanyReadRepository{db: db}
}

// List returns all companies ordered by creation time, most recent first.
func (r *CompanyReadRepository) List(ctx context.Context) ([]models.CompanyDB, error) {
	query := `
		SELECT ` + companyColumns + `
		FROM companies
		ORDER BY created_at DESC
	`

	companies := []models.CompanyDB{}
	err := r.db.SelectContext(ctx, &companies, query)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"result", len(companies),
		"error", err,
	)

	return companies, err
}

// GetByID returns the company with the given id, or nil if absent.
func (r *CompanyReadRepository) GetByID(ctx context.Context, id int64) (*models.CompanyDB, error) {
	query := `
		SELECT ` + companyColumns + `
		FROM companies
		WHERE id = $1
	`

	var company models.CompanyDB
	err := r.db.GetContext(ctx, &company, query, id)

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
	return &company, nil
}

// GetByEmail returns the company with the given email, or nil if absent.
func (r *CompanyReadRepository) GetByEmail(ctx context.Context, email string) (*models.CompanyDB, error) {
	query := `
		SELECT ` + companyColumns + `
		FROM companies
		WHERE email = $1
	`

	var company models.CompanyDB
	err := r.db.GetContext(ctx, &company, query, email)

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
	return &company, nil
}

// Search returns companies whose name, industry or location contains the term,
// case-insensitively, most recent first.
func (r *CompanyReadRepository) Search(ctx context.Context, term string) ([]models.CompanyDB, error) {
	query := `
		SELECT ` + companyColumns + `
		FROM companies
		WHERE name ILIKE $1 OR industry ILIKE $1 OR location ILIKE $1
		ORDER BY created_at DESC
	`

	companies := []models.CompanyDB{}
	err := r.db.SelectContext(ctx, &companies, query, "%"+term+"%")

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{term},
		"result", len(companies),
		"error", err,
	)

	return companies, err
}

// CompanyWriteRepository handles company write operations
type CompanyWriteRepository struct {
	db *sqlx.DB
}

func NewCompanyWriteRepository(db *sqlx.DB) *CompanyWriteRepository {
	return &CompanyWriteRepository{db: db}
}

// Create inserts a new company and returns the stored record.
func (r *CompanyWriteRepository) Create(ctx context.Context, in models.CompanyCreate) (*models.CompanyDB, error) {
	query := `
		INSERT INTO companies (name, industry, location, website, email, phone, employees, founded, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, NOW(), NOW())
		RETURNING ` + companyColumns + `
	`
	args := []any{in.Name, in.Industry, in.Location, in.Website, in.Email, in.Phone, in.Employees, in.Founded, in.Status}

	var company models.CompanyDB
	err := r.db.GetContext(ctx, &company, query, args...)

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
	return &company, nil
}

// Update applies the non-nil patch fields to the company with the given id.
// Returns (nil, nil) when the patch is empty or no such company exists.
func (r *CompanyWriteRepository) Update(ctx context.Context, id int64, patch models.CompanyPatch) (*models.CompanyDB, error) {
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
	if patch.Industry != nil {
		add("industry", *patch.Industry)
	}
	if patch.Location != nil {
		add("location", *patch.Location)
	}
	if patch.Website != nil {
		add("website", *patch.Website)
	}
	if patch.Email != nil {
		add("email", *patch.Email)
	}
	if patch.Phone != nil {
		add("phone", *patch.Phone)
	}
	if patch.Employees != nil {
		add("employees", *patch.Employees)
	}
	if patch.Founded != nil {
		add("founded", *patch.Founded)
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
		UPDATE companies
		SET %s
		WHERE id = $%d
		RETURNING `+companyColumns+`
	`, strings.Join(set, ", "), n)

	var company models.CompanyDB
	err := r.db.GetContext(ctx, &company, query, args...)

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
	return &company, nil
}

// Delete removes the company with the given id. Returns true if a row was removed.
func (r *CompanyWriteRepository) Delete(ctx context.Context, id int64) (bool, error) {
	query := `DELETE FROM companies WHERE id = $1`

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

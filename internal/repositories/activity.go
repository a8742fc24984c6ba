package repositories

import (
	"context"
	"strings"

	"github.com/jmoiron/sqlx"
	"github.com/staffhub-dev/staffhub/internal/logger"
	"github.com/staffhub-dev/staffhub/internal/models"
)

// ActivityWriteRepository appends immutable activity log entries.
// Entries are never updated or deleted by the application.
type ActivityWriteRepository struct {
	db *sqlx.DB
}

func NewActivityWriteRepository(db *sqlx.DB) *ActivityWriteRepository {
	return &ActivityWriteRepository{db: db}
}

// Save appends one activity log entry.
func (r *ActivityWriteRepository) Save(ctx context.Context, actorID int64, action, entityType string, entityID int64, description string) error {
	query := `
		INSERT INTO activity_logs (user_id, action, entity_type, entity_id, description, created_at)
		VALUES ($1, $2, $3, $4, $5, NOW())
	`
	args := []any{actorID, action, entityType, entityID, description}

	res, err := r.db.ExecContext(ctx, query, args...)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", args,
		"result", rowsAffected,
		"error", err,
	)

	return err
}

// ActivityReadRepository reads the most recent activity log entries.
type ActivityReadRepository struct {
	db *sqlx.DB
}

func NewActivityReadRepository(db *sqlx.DB) *ActivityReadRepository {
	return &ActivityReadRepository{db: db}
}

// ListRecent returns the most recent entries, newest first, joined with the
// actor's display name. The actor may have been deleted since, so the join is
// a LEFT JOIN and user_name can be null.
func (r *ActivityReadRepository) ListRecent(ctx context.Context, limit int) ([]models.ActivityDB, error) {
	query := `
		SELECT al.id, al.user_id, u.name AS user_name, al.action, al.entity_type, al.entity_id, al.description, al.created_at
		FROM activity_logs al
		LEFT JOIN users u ON al.user_id = u.id
		ORDER BY al.created_at DESC
		LIMIT $1
	`

	entries := []models.ActivityDB{}
	err := r.db.SelectContext(ctx, &entries, query, limit)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{limit},
		"result", len(entries),
		"error", err,
	)

	return entries, err
}

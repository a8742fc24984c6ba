package repositories

import (
	"context"
	"strings"

	"github.com/jmoiron/sqlx"
	"github.com/staffhub-dev/staffhub/internal/logger"
	"github.com/staffhub-dev/staffhub/internal/models"
)

// StatsReadRepository reads dashboard counters in a single statement.
type StatsReadRepository struct {
	db *sqlx.DB
}

func NewStatsReadRepository(db *sqlx.DB) *StatsReadRepository {
	return &StatsReadRepository{db: db}
}

// GetCounts returns totals for each resource kind.
func (r *StatsReadRepository) GetCounts(ctx context.Context) (*models.Stats, error) {
	query := `
		SELECT
			(SELECT COUNT(*) FROM users) AS users,
			(SELECT COUNT(*) FROM companies) AS companies,
			(SELECT COUNT(*) FROM candidates) AS candidates,
			(SELECT COUNT(*) FROM candidates WHERE status = 'available') AS available_candidates
	`

	var stats models.Stats
	err := r.db.GetContext(ctx, &stats, query)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"result", stats,
		"error", err,
	)

	if err != nil {
		return nil, err
	}
	return &stats, nil
}

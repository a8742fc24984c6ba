package services

import (
	"context"

	"github.com/staffhub-dev/staffhub/internal/logger"
	"github.com/staffhub-dev/staffhub/internal/models"
)

// StatsReader reads dashboard counters.
type StatsReader interface {
	GetCounts(ctx context.Context) (*models.Stats, error)
}

// StatsService serves dashboard counters.
type StatsService struct {
	reader StatsReader
}

// NewStatsService creates a new StatsService instance.
func NewStatsService(reader StatsReader) *StatsService {
	return &StatsService{reader: reader}
}

// Stats returns totals for each resource kind.
func (svc *StatsService) Stats(ctx context.Context) (*models.Stats, error) {
	stats, err := svc.reader.GetCounts(ctx)
	if err != nil {
		logger.Log.Errorw("failed to get stats", "error", err)
		return nil, err
	}
	return stats, nil
}

package repositories

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/staffhub-dev/staffhub/internal/logger"
	"github.com/staffhub-dev/staffhub/internal/models"
)

// activityFeedKey is the single cache key for the recent activity feed.
// A single key keeps invalidation to one DEL, no pattern scans.
const activityFeedKey = "activities:recent"

// ActivityCacheRepository caches the recent activity feed in Redis.
// Postgres stays authoritative; the cache is invalidated on every write
// and repopulated on the next read.
type ActivityCacheRepository struct {
	client *redis.Client
	exp    time.Duration // expiration for the cached feed
}

// NewActivityCacheRepository creates a new repository instance with the given TTL.
func NewActivityCacheRepository(client *redis.Client, expiration time.Duration) *ActivityCacheRepository {
	return &ActivityCacheRepository{
		client: client,
		exp:    expiration,
	}
}

// GetRecent returns the cached feed. A cache miss returns (nil, nil).
func (r *ActivityCacheRepository) GetRecent(ctx context.Context) ([]models.ActivityDB, error) {
	val, err := r.client.Get(ctx, activityFeedKey).Result()
	if err != nil {
		logger.Log.Infow(
			"key", activityFeedKey,
			"error", err,
		)
		if err == redis.Nil {
			return nil, nil
		}
		return nil, err
	}

	var entries []models.ActivityDB
	if err := json.Unmarshal([]byte(val), &entries); err != nil {
		logger.Log.Errorw("failed to decode cached activity feed", "key", activityFeedKey, "error", err)
		return nil, err
	}

	logger.Log.Infow(
		"key", activityFeedKey,
		"result", len(entries),
		"error", nil,
	)

	return entries, nil
}

// SetRecent caches the feed with the configured expiration.
func (r *ActivityCacheRepository) SetRecent(ctx context.Context, entries []models.ActivityDB) error {
	data, err := json.Marshal(entries)
	if err != nil {
		return err
	}

	err = r.client.Set(ctx, activityFeedKey, data, r.exp).Err()

	logger.Log.Infow(
		"key", activityFeedKey,
		"entries", len(entries),
		"error", err,
	)

	return err
}

// Invalidate drops the cached feed.
func (r *ActivityCacheRepository) Invalidate(ctx context.Context) error {
	err := r.client.Del(ctx, activityFeedKey).Err()

	logger.Log.Infow(
		"key", activityFeedKey,
		"result", "invalidated",
		"error", err,
	)

	return err
}

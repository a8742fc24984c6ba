package services

import (
	"context"
	"encoding/json"
	"strconv"
	"time"

	"github.com/segmentio/kafka-go"
	"github.com/staffhub-dev/staffhub/internal/logger"
	"github.com/staffhub-dev/staffhub/internal/models"
)

const (
	// defaultFeedLimit is the number of entries returned when none is requested.
	defaultFeedLimit = 10
	// feedCacheSize is how many entries the cache holds; reads are served from
	// this window and sliced to the requested limit.
	feedCacheSize = 50
)

// ActivityWriter appends activity log entries.
type ActivityWriter interface {
	Save(ctx context.Context, actorID int64, action, entityType string, entityID int64, description string) error
}

// ActivityReader reads recent activity log entries.
type ActivityReader interface {
	ListRecent(ctx context.Context, limit int) ([]models.ActivityDB, error)
}

// ActivityCache caches the recent feed.
type ActivityCache interface {
	GetRecent(ctx context.Context) ([]models.ActivityDB, error)
	SetRecent(ctx context.Context, entries []models.ActivityDB) error
	Invalidate(ctx context.Context) error
}

// KafkaWriter defines a Kafka writer abstraction.
type KafkaWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// ActivityService records mutations and serves the recent feed.
// Recording is strictly best-effort: it runs after the triggering store
// operation has committed, and no failure in here may surface to the caller.
type ActivityService struct {
	writer      ActivityWriter
	reader      ActivityReader
	cache       ActivityCache
	kafkaWriter KafkaWriter
}

// NewActivityService creates a new ActivityService. cache and kafkaWriter may
// be nil, in which case caching and event publishing are skipped.
func NewActivityService(writer ActivityWriter, reader ActivityReader, cache ActivityCache, kafkaWriter KafkaWriter) *ActivityService {
	return &ActivityService{
		writer:      writer,
		reader:      reader,
		cache:       cache,
		kafkaWriter: kafkaWriter,
	}
}

// Record appends one activity entry, invalidates the cached feed, and
// publishes the event to Kafka. Errors are logged and swallowed: a mutation
// that already committed must succeed regardless of logging outcome.
func (s *ActivityService) Record(ctx context.Context, actorID int64, action, entityType string, entityID int64, description string) {
	if err := s.writer.Save(ctx, actorID, action, entityType, entityID, description); err != nil {
		logger.Log.Errorw("failed to record activity",
			"actor_id", actorID, "action", action, "entity_type", entityType, "entity_id", entityID, "error", err)
		return
	}

	if s.cache != nil {
		if err := s.cache.Invalidate(ctx); err != nil {
			logger.Log.Errorw("failed to invalidate activity feed cache", "error", err)
		}
	}

	s.publishEvent(ctx, models.ActivityEvent{
		UserID:      actorID,
		Action:      action,
		EntityType:  entityType,
		EntityID:    entityID,
		Description: description,
		Timestamp:   time.Now().Unix(),
	})
}

// publishEvent publishes an activity event to Kafka, fire-and-forget.
func (s *ActivityService) publishEvent(ctx context.Context, event models.ActivityEvent) {
	if s.kafkaWriter == nil {
		return
	}

	data, err := json.Marshal(event)
	if err != nil {
		logger.Log.Errorw("failed to marshal activity event", "error", err)
		return
	}

	msg := kafka.Message{
		Key:   []byte(event.EntityType + ":" + strconv.FormatInt(event.EntityID, 10)),
		Value: data,
	}

	if err := s.kafkaWriter.WriteMessages(ctx, msg); err != nil {
		logger.Log.Errorw("failed to publish activity event", "entity_type", event.EntityType, "entity_id", event.EntityID, "error", err)
	} else {
		logger.Log.Infow("activity event published", "entity_type", event.EntityType, "entity_id", event.EntityID, "action", event.Action)
	}
}

// Recent returns the most recent entries, newest first. A read failure yields
// an empty feed, never an error to the caller.
func (s *ActivityService) Recent(ctx context.Context, limit int) []models.ActivityDB {
	if limit <= 0 {
		limit = defaultFeedLimit
	}
	if limit > feedCacheSize {
		limit = feedCacheSize
	}

	if s.cache != nil {
		cached, err := s.cache.GetRecent(ctx)
		if err == nil && len(cached) >= limit {
			return cached[:limit]
		}
	}

	entries, err := s.reader.ListRecent(ctx, feedCacheSize)
	if err != nil {
		logger.Log.Errorw("failed to read activity feed", "error", err)
		return []models.ActivityDB{}
	}

	if s.cache != nil {
		if err := s.cache.SetRecent(ctx, entries); err != nil {
			logger.Log.Errorw("failed to cache activity feed", "error", err)
		}
	}

	if len(entries) > limit {
		entries = entries[:limit]
	}
	return entries
}

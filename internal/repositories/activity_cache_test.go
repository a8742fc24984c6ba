package repositories

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/staffhub-dev/staffhub/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

func TestActivityCacheRepository(t *testing.T) {
	ctx := context.Background()

	req := testcontainers.ContainerRequest{
		Image:        "redis:7.0-alpine",
		ExposedPorts: []string{"6379/tcp"},
		WaitingFor:   wait.ForListeningPort("6379/tcp"),
	}
	redisC, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	assert.NoError(t, err)
	defer redisC.Terminate(ctx)

	host, err := redisC.Host(ctx)
	assert.NoError(t, err)
	port, err := redisC.MappedPort(ctx, "6379")
	assert.NoError(t, err)

	rdb := redis.NewClient(&redis.Options{
		Addr: fmt.Sprintf("%s:%s", host, port.Port()),
	})
	defer rdb.Close()

	err = rdb.Ping(ctx).Err()
	assert.NoError(t, err)

	repo := NewActivityCacheRepository(rdb, 2*time.Second)

	feed := []models.ActivityDB{
		{ID: 2, UserID: 1, Action: models.ActionUpdate, EntityType: models.EntityUsers, EntityID: 5, Description: "Updated user: Bob"},
		{ID: 1, UserID: 1, Action: models.ActionCreate, EntityType: models.EntityUsers, EntityID: 5, Description: "Created user: Bob"},
	}

	t.Run("miss returns nil, nil", func(t *testing.T) {
		got, err := repo.GetRecent(ctx)
		assert.NoError(t, err)
		assert.Nil(t, got)
	})

	t.Run("set and get round-trip", func(t *testing.T) {
		err := repo.SetRecent(ctx, feed)
		assert.NoError(t, err)

		got, err := repo.GetRecent(ctx)
		assert.NoError(t, err)
		assert.Equal(t, feed, got)
	})

	t.Run("invalidate drops the feed", func(t *testing.T) {
		assert.NoError(t, repo.SetRecent(ctx, feed))
		assert.NoError(t, repo.Invalidate(ctx))

		got, err := repo.GetRecent(ctx)
		assert.NoError(t, err)
		assert.Nil(t, got)
	})

	t.Run("cached feed expires", func(t *testing.T) {
		assert.NoError(t, repo.SetRecent(ctx, feed))

		// Wait for expiration (2s)
		time.Sleep(3 * time.Second)

		got, err := repo.GetRecent(ctx)
		assert.NoError(t, err)
		assert.Nil(t, got)
	})
}

package cache_test

import (
	"context"
	"testing"
	"time"

	"github.com/Ketan-K17/wallpaper-app/internal/cache"
	"github.com/Ketan-K17/wallpaper-app/pkg/models"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

// setupRedis spins up a Redis container and returns a connected RedisCache.
func setupRedis(t *testing.T) *cache.RedisCache {
	t.Helper()
	ctx := context.Background()

	req := testcontainers.ContainerRequest{
		Image:        "redis:7-alpine",
		ExposedPorts: []string{"6379/tcp"},
		WaitingFor:   wait.ForLog("Ready to accept connections").WithStartupTimeout(30 * time.Second),
	}
	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	require.NoError(t, err)
	t.Cleanup(func() { require.NoError(t, container.Terminate(ctx)) })

	host, err := container.Host(ctx)
	require.NoError(t, err)
	port, err := container.MappedPort(ctx, "6379")
	require.NoError(t, err)

	rc, err := cache.NewRedisCache("redis://" + host + ":" + port.Port())
	require.NoError(t, err)
	t.Cleanup(func() { require.NoError(t, rc.Close()) })

	return rc
}

func TestJobStatus_Roundtrip(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}
	rc := setupRedis(t)
	ctx := context.Background()
	jobID := uuid.New()

	_, found, err := rc.GetJobStatus(ctx, jobID)
	require.NoError(t, err)
	assert.False(t, found)

	require.NoError(t, rc.SetJobStatus(ctx, jobID, models.JobStatusProcessing, time.Minute))

	status, found, err := rc.GetJobStatus(ctx, jobID)
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, models.JobStatusProcessing, status)
}

func TestJobStatus_TTLExpires(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}
	rc := setupRedis(t)
	ctx := context.Background()
	jobID := uuid.New()

	require.NoError(t, rc.SetJobStatus(ctx, jobID, models.JobStatusCompleted, 100*time.Millisecond))
	time.Sleep(300 * time.Millisecond)

	_, found, err := rc.GetJobStatus(ctx, jobID)
	require.NoError(t, err)
	assert.False(t, found)
}

func TestNoop(t *testing.T) {
	var c cache.Cache = cache.Noop{}
	ctx := context.Background()

	assert.NoError(t, c.Ping(ctx))
	assert.NoError(t, c.SetJobStatus(ctx, uuid.New(), models.JobStatusPending, time.Minute))

	_, found, err := c.GetJobStatus(ctx, uuid.New())
	assert.NoError(t, err)
	assert.False(t, found)
}

//go:build integration

package redis_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/jhoicas/sistema-estoque/internal/domain"
	"github.com/jhoicas/sistema-estoque/internal/domain/entity"
	infraredis "github.com/jhoicas/sistema-estoque/internal/infrastructure/redis"
	"github.com/jhoicas/sistema-estoque/pkg/config"
)

func startRedis(t *testing.T) *infraredis.SessionStore {
	t.Helper()
	ctx := context.Background()

	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: testcontainers.ContainerRequest{
			Image:        "redis:7-alpine",
			ExposedPorts: []string{"6379/tcp"},
			WaitingFor:   wait.ForLog("Ready to accept connections").WithStartupTimeout(60 * time.Second),
		},
		Started: true,
	})
	require.NoError(t, err, "arrancar contenedor redis")
	t.Cleanup(func() {
		cleanupCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		if err := container.Terminate(cleanupCtx); err != nil {
			t.Logf("terminar contenedor redis: %v", err)
		}
	})

	host, err := container.Host(ctx)
	require.NoError(t, err)
	port, err := container.MappedPort(ctx, "6379")
	require.NoError(t, err)

	client, err := infraredis.NewClient(ctx, config.RedisConfig{Addr: host + ":" + port.Port()})
	require.NoError(t, err)
	t.Cleanup(func() { _ = client.Close() })
	return infraredis.NewSessionStore(client)
}

func TestIntegration_RedisSessionStore(t *testing.T) {
	store := startRedis(t)
	ctx := context.Background()
	now := time.Now()

	session := &entity.Session{ID: "sess-1", UserID: 7, CreatedAt: now, ExpiresAt: now.Add(2 * time.Second)}
	require.NoError(t, store.Create(ctx, session))

	got, err := store.Get(ctx, "sess-1")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, int64(7), got.UserID)
	assert.WithinDuration(t, session.ExpiresAt, got.ExpiresAt, time.Millisecond)

	missing, err := store.Get(ctx, "nao-existe")
	require.NoError(t, err)
	assert.Nil(t, missing)

	require.NoError(t, store.Delete(ctx, "sess-1"))
	gone, err := store.Get(ctx, "sess-1")
	require.NoError(t, err)
	assert.Nil(t, gone)
	require.NoError(t, store.Delete(ctx, "sess-1"), "borrar dos veces no es error")

	t.Run("expira por TTL", func(t *testing.T) {
		short := &entity.Session{ID: "sess-2", UserID: 7, CreatedAt: time.Now(), ExpiresAt: time.Now().Add(time.Second)}
		require.NoError(t, store.Create(ctx, short))
		assert.Eventually(t, func() bool {
			s, err := store.Get(ctx, "sess-2")
			return err == nil && s == nil
		}, 5*time.Second, 100*time.Millisecond)
	})

	t.Run("sesión ya expirada", func(t *testing.T) {
		past := &entity.Session{ID: "sess-3", UserID: 7, CreatedAt: now.Add(-time.Hour), ExpiresAt: now.Add(-time.Minute)}
		assert.ErrorIs(t, store.Create(ctx, past), domain.ErrValidation)
	})
}

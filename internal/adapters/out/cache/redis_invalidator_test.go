package cache_test

import (
	"context"
	"testing"
	"time"

	"packing/internal/adapters/out/cache"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
	"go.uber.org/zap/zaptest"
)

func startRedis(t *testing.T) *redis.Client {
	t.Helper()
	if testing.Short() {
		t.Skip("skipping redis integration test in short mode")
	}

	ctx := context.Background()
	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: testcontainers.ContainerRequest{
			Image:        "redis:7-alpine",
			ExposedPorts: []string{"6379/tcp"},
			WaitingFor:   wait.ForLog("Ready to accept connections").WithStartupTimeout(30 * time.Second),
		},
		Started: true,
	})
	require.NoError(t, err)
	t.Cleanup(func() {
		_ = container.Terminate(context.Background())
	})

	endpoint, err := container.Endpoint(ctx, "")
	require.NoError(t, err)

	client := redis.NewClient(&redis.Options{Addr: endpoint})
	t.Cleanup(func() {
		_ = client.Close()
	})
	require.NoError(t, client.Ping(ctx).Err())
	return client
}

func TestRedisShipmentInvalidator(t *testing.T) {
	client := startRedis(t)
	ctx := context.Background()

	for _, key := range []string{"shipments:list", "shipments:SHP-1", "shipments:SHP-2", "sessions:keep"} {
		require.NoError(t, client.Set(ctx, key, "cached", 0).Err())
	}

	sub := client.Subscribe(ctx, cache.DefaultShipmentChannel)
	defer sub.Close()
	_, err := sub.Receive(ctx)
	require.NoError(t, err)

	invalidator := cache.NewRedisShipmentInvalidator(client, cache.WithInvalidatorLogger(zaptest.NewLogger(t)))
	invalidator.Invalidate(ctx)

	assert.Eventually(t, func() bool {
		keys, err := client.Keys(ctx, "shipments:*").Result()
		return err == nil && len(keys) == 0
	}, 5*time.Second, 20*time.Millisecond)
	invalidator.Close()
	exists, err := client.Exists(ctx, "sessions:keep").Result()
	require.NoError(t, err)
	assert.Equal(t, int64(1), exists)

	select {
	case msg := <-sub.Channel():
		assert.Equal(t, cache.DefaultShipmentKeyPrefix, msg.Payload)
	case <-time.After(5 * time.Second):
		t.Fatal("no invalidation message received")
	}
}

func TestRedisShipmentInvalidator_UnreachableServerDoesNotPanic(t *testing.T) {
	client := redis.NewClient(&redis.Options{Addr: "127.0.0.1:1", DialTimeout: 50 * time.Millisecond})
	defer client.Close()

	invalidator := cache.NewRedisShipmentInvalidator(client, cache.WithInvalidateTimeout(200*time.Millisecond))
	assert.NotPanics(t, func() { invalidator.Invalidate(context.Background()) })
	invalidator.Close()
}

func TestRedisShipmentInvalidator_InvalidateDoesNotWaitForRedis(t *testing.T) {
	client := redis.NewClient(&redis.Options{
		Addr:        "10.255.255.1:6379",
		DialTimeout: time.Second,
		MaxRetries:  -1,
	})
	defer client.Close()

	invalidator := cache.NewRedisShipmentInvalidator(client, cache.WithInvalidateTimeout(time.Second))

	start := time.Now()
	for range 50 {
		invalidator.Invalidate(context.Background())
	}
	assert.Less(t, time.Since(start), 100*time.Millisecond)

	invalidator.Close()
	assert.NotPanics(t, func() { invalidator.Close() })
}

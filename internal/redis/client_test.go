package redis_test

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/rpg-economy/internal/redis"
)

func TestNewClientRequiresEndpoint(t *testing.T) {
	_, err := redis.NewClient("", nil)
	assert.Error(t, err)

	_, err = redis.NewClusterClient(nil, nil)
	assert.Error(t, err)
}

func TestConnect(t *testing.T) {
	mr := miniredis.RunT(t)

	client, err := redis.Connect(context.Background(), []string{mr.Addr()}, &redis.Options{PoolSize: 2})
	require.NoError(t, err)
	defer func() { _ = client.Close() }()

	_, err = client.Get(context.Background(), "missing").Result()
	assert.True(t, redis.IsNil(err))
}

func TestConnectFailsWhenUnreachable(t *testing.T) {
	mr := miniredis.RunT(t)
	addr := mr.Addr()
	mr.Close()

	_, err := redis.Connect(context.Background(), []string{addr}, &redis.Options{MaxRetries: -1})
	assert.Error(t, err)

	_, err = redis.Connect(context.Background(), nil, nil)
	assert.Error(t, err)
}

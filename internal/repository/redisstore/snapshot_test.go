//go:build integration
// +build integration

package redisstore

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Pesokrava/beverage_stock/internal/config"
	"github.com/Pesokrava/beverage_stock/internal/domain"
	"github.com/Pesokrava/beverage_stock/internal/pkg/cache"
	"github.com/Pesokrava/beverage_stock/internal/pkg/logger"
)

func TestSnapshotRepository_Redis(t *testing.T) {
	cfg, err := config.Load()
	require.NoError(t, err)

	client, err := cache.WaitForRedis(context.Background(), cfg, logger.Nop(), 5, 2*time.Second)
	require.NoError(t, err)
	defer client.Close()

	repo := NewSnapshotRepository(client)
	ctx := context.Background()
	name := fmt.Sprintf("test-%d", time.Now().UnixNano())
	defer client.Del(ctx, repo.key(name))

	_, err = repo.Load(ctx, name)
	assert.ErrorIs(t, err, domain.ErrNotFound)

	require.NoError(t, repo.Save(ctx, name, []byte(`{"schemaVersion":1}`)))

	data, err := repo.Load(ctx, name)
	require.NoError(t, err)
	assert.JSONEq(t, `{"schemaVersion":1}`, string(data))

	ttl, err := client.TTL(ctx, repo.key(name)).Result()
	require.NoError(t, err)
	assert.Equal(t, time.Duration(-1), ttl)
}

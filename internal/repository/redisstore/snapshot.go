package redisstore

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/Pesokrava/beverage_stock/internal/domain"
)

// SnapshotRepository implements domain.SnapshotRepository on plain Redis string keys
type SnapshotRepository struct {
	client *redis.Client
	prefix string
}

// NewSnapshotRepository creates a new Redis snapshot repository
func NewSnapshotRepository(client *redis.Client) *SnapshotRepository {
	return &SnapshotRepository{client: client, prefix: "snapshot"}
}

func (r *SnapshotRepository) key(name string) string {
	return fmt.Sprintf("%s:%s", r.prefix, name)
}

// Load returns the blob stored under name
func (r *SnapshotRepository) Load(ctx context.Context, name string) ([]byte, error) {
	data, err := r.client.Get(ctx, r.key(name)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("failed to load snapshot %q: %w", name, err)
	}
	return data, nil
}

// Save replaces the blob stored under name. Snapshots never expire.
func (r *SnapshotRepository) Save(ctx context.Context, name string, data []byte) error {
	if err := r.client.Set(ctx, r.key(name), data, 0).Err(); err != nil {
		return fmt.Errorf("failed to save snapshot %q: %w", name, err)
	}
	return nil
}

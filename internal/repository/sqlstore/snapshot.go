// Package sqlstore keeps inventory data in SQLite or PostgreSQL through sqlx.
// Queries are written with ? placeholders and rebound for the connected driver.
package sqlstore

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/Pesokrava/beverage_stock/internal/domain"
)

// SnapshotRepository implements domain.SnapshotRepository on the inventory_snapshots table
type SnapshotRepository struct {
	db  *sqlx.DB
	now func() time.Time
}

// NewSnapshotRepository creates a new SQL snapshot repository
func NewSnapshotRepository(db *sqlx.DB) *SnapshotRepository {
	return &SnapshotRepository{db: db, now: time.Now}
}

// Load returns the blob stored under name
func (r *SnapshotRepository) Load(ctx context.Context, name string) ([]byte, error) {
	query := r.db.Rebind(`SELECT payload FROM inventory_snapshots WHERE name = ?`)

	var payload []byte
	err := r.db.GetContext(ctx, &payload, query, name)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("failed to load snapshot %q: %w", name, err)
	}

	return payload, nil
}

// Save upserts the blob stored under name
func (r *SnapshotRepository) Save(ctx context.Context, name string, data []byte) error {
	query := r.db.Rebind(`
		INSERT INTO inventory_snapshots (name, payload, updated_at)
		VALUES (?, ?, ?)
		ON CONFLICT (name) DO UPDATE
		SET payload = excluded.payload, updated_at = excluded.updated_at
	`)

	// Sent as text so PostgreSQL accepts it into a JSONB column
	if _, err := r.db.ExecContext(ctx, query, name, string(data), r.now().UTC()); err != nil {
		return fmt.Errorf("failed to save snapshot %q: %w", name, err)
	}

	return nil
}

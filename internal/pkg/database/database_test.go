package database

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Pesokrava/beverage_stock/internal/config"
	"github.com/Pesokrava/beverage_stock/internal/pkg/logger"
)

func sqliteConfig(t *testing.T) *config.Config {
	t.Helper()
	return &config.Config{
		Storage: config.StorageConfig{
			Driver:     config.StorageSQLite,
			Key:        "inventory-storage",
			SQLitePath: filepath.Join(t.TempDir(), "test.db"),
		},
	}
}

func TestTargetFor(t *testing.T) {
	cfg := sqliteConfig(t)
	target := TargetFor(cfg)
	assert.Equal(t, DriverSQLite, target.Driver)
	assert.Contains(t, target.DSN, cfg.Storage.SQLitePath)

	cfg.Storage.Driver = config.StorageRedis
	assert.Equal(t, DriverSQLite, TargetFor(cfg).Driver)

	cfg.Storage.Driver = config.StoragePostgres
	cfg.Database = config.DatabaseConfig{Host: "db", Port: "5432", User: "u", Password: "p", Name: "stock", SSLMode: "disable"}
	target = TargetFor(cfg)
	assert.Equal(t, DriverPostgres, target.Driver)
	assert.Equal(t, "host=db port=5432 user=u password=p dbname=stock sslmode=disable", target.DSN)
}

func TestRunMigrations_SQLite(t *testing.T) {
	cfg := sqliteConfig(t)
	target := TargetFor(cfg)
	log := logger.Nop()

	require.NoError(t, RunMigrations(target, log))
	// Second run is a no-op
	require.NoError(t, RunMigrations(target, log))

	version, dirty, err := MigrationVersion(target)
	require.NoError(t, err)
	assert.Equal(t, uint(2), version)
	assert.False(t, dirty)

	db, err := Open(cfg, target)
	require.NoError(t, err)
	defer db.Close()

	var tables []string
	require.NoError(t, db.Select(&tables, `SELECT name FROM sqlite_master WHERE type = 'table' AND name IN ('inventory_snapshots', 'stock_alerts') ORDER BY name`))
	assert.Equal(t, []string{"inventory_snapshots", "stock_alerts"}, tables)

	require.NoError(t, MigrateDown(target, 1, log))
	version, _, err = MigrationVersion(target)
	require.NoError(t, err)
	assert.Equal(t, uint(1), version)
}

// Package database opens the SQL database behind the inventory and runs its
// embedded migrations.
package database

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	_ "modernc.org/sqlite"

	"github.com/Pesokrava/beverage_stock/internal/config"
	"github.com/Pesokrava/beverage_stock/internal/pkg/logger"
)

// Driver names registered with database/sql
const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
)

// Target is a resolved driver name and data source
type Target struct {
	Driver string
	DSN    string
}

// TargetFor picks the SQL database for the configuration. PostgreSQL is used
// only when STORAGE_DRIVER=postgres; everything else shares the SQLite file.
func TargetFor(cfg *config.Config) Target {
	if cfg.Storage.Driver == config.StoragePostgres {
		return Target{Driver: DriverPostgres, DSN: cfg.GetDSN()}
	}
	return Target{Driver: DriverSQLite, DSN: sqliteDSN(cfg.Storage.SQLitePath)}
}

func sqliteDSN(path string) string {
	return fmt.Sprintf("file:%s?_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)", path)
}

// Open creates a new database connection for the target
func Open(cfg *config.Config, target Target) (*sqlx.DB, error) {
	db, err := sqlx.Connect(target.Driver, target.DSN)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to %s database: %w", target.Driver, err)
	}

	if target.Driver == DriverSQLite {
		// One writer at a time keeps SQLite out of SQLITE_BUSY
		db.SetMaxOpenConns(1)
	} else {
		db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
		db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
		db.SetConnMaxLifetime(cfg.Database.ConnMaxLifetime)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return db, nil
}

// WaitForDB retries Open until it succeeds, retries run out or ctx is cancelled
func WaitForDB(ctx context.Context, cfg *config.Config, target Target, log *logger.Logger, maxRetries int, retryDelay time.Duration) (*sqlx.DB, error) {
	var err error

	for attempt := 1; attempt <= maxRetries; attempt++ {
		var db *sqlx.DB
		db, err = Open(cfg, target)
		if err == nil {
			return db, nil
		}

		if attempt == maxRetries {
			break
		}
		log.Warnf("Database not ready (attempt %d/%d): %v", attempt, maxRetries, err)

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(retryDelay):
		}
	}

	return nil, fmt.Errorf("failed to connect to database after %d retries: %w", maxRetries, err)
}

package database

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/golang-migrate/migrate/v4"
	migratedb "github.com/golang-migrate/migrate/v4/database"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/database/sqlite"
	"github.com/golang-migrate/migrate/v4/source/iofs"

	"github.com/Pesokrava/beverage_stock/internal/pkg/logger"
	"github.com/Pesokrava/beverage_stock/migrations"
)

// newMigrator opens a dedicated connection for golang-migrate, which closes
// the connection it is given when the migrator is closed.
func newMigrator(target Target) (*migrate.Migrate, error) {
	conn, err := sql.Open(target.Driver, target.DSN)
	if err != nil {
		return nil, fmt.Errorf("failed to open database for migration: %w", err)
	}

	var driver migratedb.Driver
	switch target.Driver {
	case DriverSQLite:
		driver, err = sqlite.WithInstance(conn, &sqlite.Config{})
	case DriverPostgres:
		driver, err = postgres.WithInstance(conn, &postgres.Config{})
	default:
		err = fmt.Errorf("unsupported migration driver %q", target.Driver)
	}
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to create migration driver: %w", err)
	}

	src, err := iofs.New(migrations.FS, target.Driver)
	if err != nil {
		driver.Close()
		return nil, fmt.Errorf("failed to load embedded migrations: %w", err)
	}

	m, err := migrate.NewWithInstance("iofs", src, target.Driver, driver)
	if err != nil {
		driver.Close()
		return nil, fmt.Errorf("failed to create migrate instance: %w", err)
	}
	return m, nil
}

// RunMigrations applies every pending up migration
func RunMigrations(target Target, log *logger.Logger) error {
	m, err := newMigrator(target)
	if err != nil {
		return err
	}
	defer m.Close()

	from, dirty, err := m.Version()
	if err != nil && !errors.Is(err, migrate.ErrNilVersion) {
		return fmt.Errorf("failed to read migration version: %w", err)
	}
	if dirty {
		return fmt.Errorf("database is dirty at migration version %d", from)
	}

	if err := m.Up(); err != nil {
		if errors.Is(err, migrate.ErrNoChange) {
			log.Debugf("No new migrations, schema at version %d", from)
			return nil
		}
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	to, _, err := m.Version()
	if err != nil {
		return fmt.Errorf("failed to read migration version: %w", err)
	}

	log.WithFields(map[string]any{
		"driver":       target.Driver,
		"from_version": from,
		"to_version":   to,
	}).Info("Migrations applied")

	return nil
}

// MigrateDown rolls back the given number of migrations
func MigrateDown(target Target, steps int, log *logger.Logger) error {
	m, err := newMigrator(target)
	if err != nil {
		return err
	}
	defer m.Close()

	if err := m.Steps(-steps); err != nil {
		return fmt.Errorf("failed to roll back %d migrations: %w", steps, err)
	}

	log.Infof("Rolled back %d migrations on %s", steps, target.Driver)
	return nil
}

// MigrationVersion reports the current schema version and dirty flag
func MigrationVersion(target Target) (uint, bool, error) {
	m, err := newMigrator(target)
	if err != nil {
		return 0, false, err
	}
	defer m.Close()

	version, dirty, err := m.Version()
	if errors.Is(err, migrate.ErrNilVersion) {
		return 0, false, nil
	}
	return version, dirty, err
}

package main

import (
	"context"
	"time"

	"github.com/Pesokrava/beverage_stock/internal/config"
	"github.com/Pesokrava/beverage_stock/internal/domain"
	"github.com/Pesokrava/beverage_stock/internal/pkg/cache"
	"github.com/Pesokrava/beverage_stock/internal/pkg/database"
	"github.com/Pesokrava/beverage_stock/internal/pkg/logger"
	"github.com/Pesokrava/beverage_stock/internal/repository/redisstore"
	"github.com/Pesokrava/beverage_stock/internal/repository/sqlstore"
)

const (
	connectRetries    = 10
	connectRetryDelay = 2 * time.Second
)

// storage bundles the repositories the API reads and writes
type storage struct {
	snapshots domain.SnapshotRepository
	alerts    *sqlstore.AlertRepository
	closers   []func()
}

// Close releases every connection opened by openStorage
func (s *storage) Close() {
	for i := len(s.closers) - 1; i >= 0; i-- {
		s.closers[i]()
	}
}

// openStorage connects the configured snapshot backend and the SQL database
// holding the stock alerts recorded by the alert worker. With the Redis
// driver the alerts still live in the SQLite file the worker writes to.
func openStorage(ctx context.Context, cfg *config.Config, log *logger.Logger) (*storage, error) {
	st := &storage{}

	target := database.TargetFor(cfg)
	log.Infof("Connecting to %s...", target.Driver)
	db, err := database.WaitForDB(ctx, cfg, target, log, connectRetries, connectRetryDelay)
	if err != nil {
		return nil, err
	}
	st.closers = append(st.closers, func() { _ = db.Close() })
	log.Infof("Connected to %s successfully", target.Driver)

	if err := database.RunMigrations(target, log); err != nil {
		st.Close()
		return nil, err
	}

	st.alerts = sqlstore.NewAlertRepository(db)

	if cfg.Storage.Driver != config.StorageRedis {
		st.snapshots = sqlstore.NewSnapshotRepository(db)
		return st, nil
	}

	log.Info("Connecting to Redis...")
	client, err := cache.WaitForRedis(ctx, cfg, log, connectRetries, connectRetryDelay)
	if err != nil {
		st.Close()
		return nil, err
	}
	st.closers = append(st.closers, func() { _ = client.Close() })
	log.Info("Connected to Redis successfully")

	st.snapshots = redisstore.NewSnapshotRepository(client)
	return st, nil
}

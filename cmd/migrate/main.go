// Command migrate applies or rolls back the schema of the configured SQL storage.
//
//	migrate up
//	migrate down [steps]
//	migrate version
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"strconv"

	"github.com/Pesokrava/beverage_stock/internal/config"
	"github.com/Pesokrava/beverage_stock/internal/pkg/database"
	"github.com/Pesokrava/beverage_stock/internal/pkg/logger"
)

func main() {
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "usage: %s up | down [steps] | version\n", os.Args[0])
	}
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	appLogger := logger.New(cfg.Env, logger.WithLevel(cfg.LogLevel)).WithComponent("migrate")

	if !cfg.UsesSQL() {
		appLogger.Infof("Storage driver %q has no schema, nothing to migrate", cfg.Storage.Driver)
		return
	}
	target := database.TargetFor(cfg)

	switch flag.Arg(0) {
	case "up":
		if err := database.RunMigrations(target, appLogger); err != nil {
			appLogger.Fatal("Migration failed", err)
		}
	case "down":
		steps := 1
		if arg := flag.Arg(1); arg != "" {
			steps, err = strconv.Atoi(arg)
			if err != nil || steps < 1 {
				log.Fatalf("Invalid step count %q", arg)
			}
		}
		if err := database.MigrateDown(target, steps, appLogger); err != nil {
			appLogger.Fatal("Rollback failed", err)
		}
	case "version":
		version, dirty, err := database.MigrationVersion(target)
		if err != nil {
			appLogger.Fatal("Failed to read migration version", err)
		}
		appLogger.WithFields(map[string]any{
			"driver":  target.Driver,
			"version": version,
			"dirty":   dirty,
		}).Info("Current migration version")
	default:
		flag.Usage()
		os.Exit(2)
	}
}

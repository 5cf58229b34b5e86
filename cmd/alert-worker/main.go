package main

import (
	"context"
	"errors"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/nats-io/nats.go"

	"github.com/Pesokrava/beverage_stock/internal/config"
	"github.com/Pesokrava/beverage_stock/internal/delivery/events"
	"github.com/Pesokrava/beverage_stock/internal/pkg/database"
	"github.com/Pesokrava/beverage_stock/internal/pkg/logger"
	"github.com/Pesokrava/beverage_stock/internal/repository/sqlstore"
	"github.com/Pesokrava/beverage_stock/internal/worker"
)

const (
	fetchBatch   = 10
	fetchMaxWait = 5 * time.Second
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	appLogger := logger.New(cfg.Env, logger.WithLevel(cfg.LogLevel)).WithComponent("alert-worker")
	appLogger.Info("Starting alert worker...")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	target := database.TargetFor(cfg)
	appLogger.Infof("Connecting to %s...", target.Driver)
	db, err := database.WaitForDB(ctx, cfg, target, appLogger, 10, 2*time.Second)
	if err != nil {
		appLogger.Fatal("Failed to connect to database", err)
	}
	defer db.Close()

	if err := database.RunMigrations(target, appLogger); err != nil {
		appLogger.Fatal("Failed to run migrations", err)
	}

	recorder := worker.NewAlertRecorder(sqlstore.NewAlertRepository(db), appLogger)
	alertWorker := worker.NewAlertWorker(recorder, cfg.Alerts.DebounceWindow, appLogger)

	nc, err := events.Connect(cfg, "beverage-stock-alert-worker", appLogger)
	if err != nil {
		appLogger.Fatal("Failed to connect to NATS", err)
	}
	defer nc.Close()

	js, err := nc.JetStream()
	if err != nil {
		appLogger.Fatal("Failed to create JetStream context", err)
	}

	streamConfig := events.NewStreamConfig(js, appLogger)
	if err := streamConfig.EnsureStream(); err != nil {
		appLogger.Fatal("Failed to ensure stream", err)
	}
	if err := streamConfig.EnsureConsumer(); err != nil {
		appLogger.Fatal("Failed to ensure consumer", err)
	}

	sub, err := js.PullSubscribe(events.StreamSubjects, events.ConsumerName, nats.ManualAck())
	if err != nil {
		appLogger.Fatal("Failed to subscribe to JetStream consumer", err)
	}

	appLogger.WithFields(map[string]any{
		"stream":   events.StreamName,
		"consumer": events.ConsumerName,
	}).Info("Subscribed to JetStream consumer")

	done := make(chan struct{})
	go func() {
		defer close(done)
		consume(ctx, sub, alertWorker, appLogger)
	}()

	<-ctx.Done()
	appLogger.Info("Received shutdown signal")
	<-done

	if err := sub.Unsubscribe(); err != nil {
		appLogger.Warnf("Failed to unsubscribe from JetStream: %v", err)
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := alertWorker.Shutdown(shutdownCtx); err != nil {
		appLogger.Error("Error during shutdown", err)
	}

	appLogger.Info("Alert worker stopped")
}

// consume fetches batches until ctx is cancelled. Undecodable messages are
// nacked and redelivered with the consumer backoff until MaxDeliver.
func consume(ctx context.Context, sub *nats.Subscription, w *worker.AlertWorker, log *logger.Logger) {
	for ctx.Err() == nil {
		msgs, err := sub.Fetch(fetchBatch, nats.MaxWait(fetchMaxWait))
		if err != nil {
			if errors.Is(err, nats.ErrTimeout) {
				continue
			}
			log.Error("Failed to fetch messages from JetStream", err)
			select {
			case <-ctx.Done():
			case <-time.After(fetchMaxWait):
			}
			continue
		}

		for _, msg := range msgs {
			if err := w.HandleEvent(msg.Data); err != nil {
				log.Error("Failed to handle event", err)
				if nakErr := msg.Nak(); nakErr != nil {
					log.Error("Failed to NAK message", nakErr)
				}
				continue
			}

			if ackErr := msg.Ack(); ackErr != nil {
				log.Error("Failed to ACK message", ackErr)
			}
		}
	}
}

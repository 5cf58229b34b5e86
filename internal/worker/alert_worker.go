package worker

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/Pesokrava/beverage_stock/internal/domain"
	"github.com/Pesokrava/beverage_stock/internal/pkg/logger"
	"github.com/Pesokrava/beverage_stock/internal/usecase/inventory"
)

const (
	// DefaultDebounceWindow collects events for the same product within this duration
	DefaultDebounceWindow = 1 * time.Second

	maxRetries     = 3
	initialBackoff = 100 * time.Millisecond
	attemptTimeout = 5 * time.Second
)

// AlertWorker consumes inventory events and keeps stock alerts current.
// Bursts of events for one product collapse into a single write of the
// newest state.
type AlertWorker struct {
	recorder       *AlertRecorder
	logger         *logger.Logger
	debounceWindow time.Duration

	mu         sync.Mutex
	pending    map[string]*pendingUpdate
	applied    map[string]time.Time
	shutdownCh chan struct{}
	wg         sync.WaitGroup
	ctx        context.Context
	cancel     context.CancelFunc
}

type pendingUpdate struct {
	product   *domain.Product
	timestamp time.Time
	timer     *time.Timer
}

// NewAlertWorker creates a new alert worker. A non-positive window falls
// back to DefaultDebounceWindow.
func NewAlertWorker(recorder *AlertRecorder, debounceWindow time.Duration, log *logger.Logger) *AlertWorker {
	if debounceWindow <= 0 {
		debounceWindow = DefaultDebounceWindow
	}
	ctx, cancel := context.WithCancel(context.Background())

	return &AlertWorker{
		recorder:       recorder,
		logger:         log,
		debounceWindow: debounceWindow,
		pending:        make(map[string]*pendingUpdate),
		applied:        make(map[string]time.Time),
		shutdownCh:     make(chan struct{}),
		ctx:            ctx,
		cancel:         cancel,
	}
}

// HandleEvent schedules an alert update for every product the event touched
func (w *AlertWorker) HandleEvent(data []byte) error {
	var event inventory.InventoryEvent
	if err := json.Unmarshal(data, &event); err != nil {
		return fmt.Errorf("failed to unmarshal inventory event: %w", err)
	}

	w.logger.WithFields(map[string]any{
		"event_type":  event.EventType,
		"product_ids": event.ProductIDs,
		"timestamp":   event.Timestamp,
	}).Info("Received inventory event")

	for _, id := range event.ProductIDs {
		var product *domain.Product
		for i := range event.Products {
			if event.Products[i].ID == id {
				product = &event.Products[i]
				break
			}
		}
		w.scheduleUpdate(id, product, event.Timestamp)
	}

	return nil
}

// scheduleUpdate (re)arms the debounce timer of a product with the newest state
func (w *AlertWorker) scheduleUpdate(productID string, product *domain.Product, timestamp time.Time) {
	w.mu.Lock()
	defer w.mu.Unlock()

	select {
	case <-w.shutdownCh:
		w.logger.Info("Worker shutting down, ignoring new event")
		return
	default:
	}

	if last, ok := w.applied[productID]; ok && timestamp.Before(last) {
		w.logger.WithFields(map[string]any{
			"product_id": productID,
			"applied_ts": last,
			"event_ts":   timestamp,
		}).Debug("Ignoring event older than recorded state")
		return
	}

	existing, found := w.pending[productID]
	if found && timestamp.Before(existing.timestamp) {
		w.logger.WithFields(map[string]any{
			"product_id":  productID,
			"existing_ts": existing.timestamp,
			"event_ts":    timestamp,
		}).Debug("Ignoring stale event")
		return
	}

	// A stopped timer hands its WaitGroup slot to the new one. A timer that
	// already fired releases its own slot.
	if !found || !existing.timer.Stop() {
		w.wg.Add(1)
	}

	update := &pendingUpdate{
		product:   product,
		timestamp: timestamp,
	}
	update.timer = time.AfterFunc(w.debounceWindow, func() {
		w.processUpdate(productID, update)
	})
	w.pending[productID] = update
}

// processUpdate records the alerts with retries and exponential backoff
func (w *AlertWorker) processUpdate(productID string, update *pendingUpdate) {
	defer w.wg.Done()

	w.mu.Lock()
	if w.pending[productID] != update {
		w.mu.Unlock()
		return
	}
	delete(w.pending, productID)
	w.mu.Unlock()

	w.logger.WithFields(map[string]any{
		"product_id": productID,
	}).Info("Processing alert update")

	var lastErr error
	backoff := initialBackoff

	for attempt := 0; attempt < maxRetries; attempt++ {
		if attempt > 0 {
			w.logger.WithFields(map[string]any{
				"product_id": productID,
				"attempt":    attempt + 1,
				"backoff_ms": backoff.Milliseconds(),
			}).Warn("Retrying alert update")

			select {
			case <-time.After(backoff):
			case <-w.ctx.Done():
				w.logger.Info("Worker context cancelled, aborting retry")
				return
			}

			backoff *= 2
		}

		ctx, cancel := context.WithTimeout(w.ctx, attemptTimeout)
		err := w.recorder.Record(ctx, productID, update.product)
		cancel()

		if err == nil {
			w.mu.Lock()
			if update.timestamp.After(w.applied[productID]) {
				w.applied[productID] = update.timestamp
			}
			w.mu.Unlock()
			return
		}

		lastErr = err
		w.logger.WithFields(map[string]any{
			"product_id": productID,
			"attempt":    attempt + 1,
		}).Error("Failed to update alerts", err)
	}

	w.logger.WithFields(map[string]any{
		"product_id":  productID,
		"max_retries": maxRetries,
	}).Error("Alert update failed after all retries", lastErr)
}

// Shutdown stops accepting events, cancels pending timers and waits for
// in-flight updates until ctx expires
func (w *AlertWorker) Shutdown(ctx context.Context) error {
	w.logger.Info("Shutting down alert worker...")

	w.mu.Lock()
	close(w.shutdownCh)
	w.cancel()

	cancelled := 0
	for _, update := range w.pending {
		if update.timer.Stop() {
			w.wg.Done()
			cancelled++
		}
	}
	w.pending = make(map[string]*pendingUpdate)
	w.mu.Unlock()

	w.logger.WithFields(map[string]any{
		"cancelled_updates": cancelled,
	}).Info("Cancelled pending updates")

	done := make(chan struct{})
	go func() {
		w.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		w.logger.Info("All in-flight updates completed")
		return nil
	case <-ctx.Done():
		w.logger.Warn("Shutdown timeout reached, forcing exit")
		return ctx.Err()
	}
}

// GetPendingCount returns the number of debounced updates not yet started
func (w *AlertWorker) GetPendingCount() int {
	w.mu.Lock()
	defer w.mu.Unlock()
	return len(w.pending)
}

package inventory

import (
	"context"
	"encoding/json"
	"time"

	"github.com/Pesokrava/beverage_stock/internal/domain"
)

// EventsSubject is the subject inventory events are published on
const EventsSubject = "inventory.events"

// Event types
const (
	EventCatalogSeeded    = "catalog.seeded"
	EventProductCreated   = "product.created"
	EventProductUpdated   = "product.updated"
	EventProductDeleted   = "product.deleted"
	EventVariantCreated   = "variant.created"
	EventVariantUpdated   = "variant.updated"
	EventVariantDeleted   = "variant.deleted"
	EventThresholdUpdated = "threshold.updated"
	EventSaleRecorded     = "sale.recorded"
	EventStockReceived    = "stock.received"
)

// EventPublisher defines the interface for publishing events
type EventPublisher interface {
	Publish(ctx context.Context, subject string, data []byte) error
}

// InventoryEvent describes a committed mutation. Products holds the state of
// every touched product after the mutation; a product listed in ProductIDs
// but missing from Products was deleted.
type InventoryEvent struct {
	EventType  string           `json:"event_type"`
	Timestamp  time.Time        `json:"timestamp"`
	ProductIDs []string         `json:"product_ids"`
	Products   []domain.Product `json:"products"`
}

// publishEvent publishes an inventory event (non-blocking)
func (s *Store) publishEvent(event InventoryEvent) {
	if s.publisher == nil {
		return
	}

	data, err := json.Marshal(event)
	if err != nil {
		s.logger.Errorf(err, "Failed to marshal %s event", event.EventType)
		return
	}

	go func() {
		if err := s.publisher.Publish(context.Background(), EventsSubject, data); err != nil {
			s.logger.Errorf(err, "Failed to publish %s event", event.EventType)
		}
	}()
}

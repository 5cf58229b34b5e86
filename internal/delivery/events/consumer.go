package events

import (
	"encoding/json"
	"fmt"

	"github.com/nats-io/nats.go"

	"github.com/Pesokrava/beverage_stock/internal/config"
	"github.com/Pesokrava/beverage_stock/internal/pkg/logger"
	"github.com/Pesokrava/beverage_stock/internal/usecase/inventory"
)

// Consumer is a plain NATS subscriber. It sees every event on the subject
// without taking messages away from the work-queue consumer.
type Consumer struct {
	nc     *nats.Conn
	logger *logger.Logger
	sub    *nats.Subscription
}

// NewConsumer creates a new NATS consumer
func NewConsumer(cfg *config.Config, log *logger.Logger) (*Consumer, error) {
	nc, err := Connect(cfg, "beverage-stock-notifier", log)
	if err != nil {
		return nil, err
	}

	return &Consumer{
		nc:     nc,
		logger: log,
	}, nil
}

// Subscribe subscribes to a NATS subject and processes messages
func (c *Consumer) Subscribe(subject string, handler func(data []byte) error) error {
	sub, err := c.nc.Subscribe(subject, func(msg *nats.Msg) {
		c.logger.Debugf("Received message on subject %s", subject)

		if err := handler(msg.Data); err != nil {
			c.logger.Errorf(err, "Failed to handle message on subject %s", subject)
		}
	})
	if err != nil {
		return fmt.Errorf("failed to subscribe to subject %s: %w", subject, err)
	}

	c.sub = sub
	c.logger.Infof("Subscribed to NATS subject: %s", subject)
	return nil
}

// Close closes the NATS connection
func (c *Consumer) Close() {
	if c.sub != nil {
		if err := c.sub.Unsubscribe(); err != nil {
			c.logger.Warnf("Failed to unsubscribe from NATS: %v", err)
		}
	}
	if c.nc != nil {
		c.nc.Close()
		c.logger.Info("NATS consumer connection closed")
	}
}

// LoggingHandler logs a one-line summary of each inventory event followed by
// its pretty-printed body
func LoggingHandler(log *logger.Logger) func(data []byte) error {
	return func(data []byte) error {
		var event inventory.InventoryEvent
		if err := json.Unmarshal(data, &event); err != nil {
			return fmt.Errorf("failed to unmarshal inventory event: %w", err)
		}

		var raw map[string]any
		if err := json.Unmarshal(data, &raw); err != nil {
			return fmt.Errorf("failed to unmarshal inventory event: %w", err)
		}
		pretty, err := json.MarshalIndent(raw, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to format inventory event: %w", err)
		}

		log.WithFields(map[string]any{
			"event_type":  event.EventType,
			"product_ids": event.ProductIDs,
			"timestamp":   event.Timestamp,
		}).Infof("Received inventory event:\n%s", string(pretty))
		return nil
	}
}

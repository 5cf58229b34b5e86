package events

import (
	"fmt"
	"time"

	"github.com/nats-io/nats.go"

	"github.com/Pesokrava/beverage_stock/internal/config"
	"github.com/Pesokrava/beverage_stock/internal/pkg/logger"
)

// Connect opens a NATS connection that keeps reconnecting in the background
// and logs connection state changes.
func Connect(cfg *config.Config, name string, log *logger.Logger) (*nats.Conn, error) {
	nc, err := nats.Connect(cfg.NATS.URL,
		nats.Name(name),
		nats.MaxReconnects(-1),
		nats.ReconnectWait(2*time.Second),
		nats.DisconnectErrHandler(func(_ *nats.Conn, err error) {
			if err != nil {
				log.Warnf("Disconnected from NATS: %v", err)
			}
		}),
		nats.ReconnectHandler(func(c *nats.Conn) {
			log.Infof("Reconnected to NATS at %s", c.ConnectedUrl())
		}),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to NATS: %w", err)
	}

	log.WithFields(map[string]any{
		"url":    cfg.NATS.URL,
		"client": name,
	}).Info("Connected to NATS")

	return nc, nil
}

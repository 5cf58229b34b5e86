package events

import (
	"testing"
	"time"

	"github.com/nats-io/nats.go"
	"github.com/stretchr/testify/assert"
)

func TestExponentialBackoff(t *testing.T) {
	tests := []struct {
		attempts int
		want     []time.Duration
	}{
		{0, nil},
		{1, nil},
		{2, []time.Duration{time.Second}},
		{3, []time.Duration{time.Second, 2 * time.Second}},
		{5, []time.Duration{time.Second, 2 * time.Second, 4 * time.Second, 8 * time.Second}},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, exponentialBackoff(tt.attempts), "attempts=%d", tt.attempts)
	}
}

func TestStreamSettings(t *testing.T) {
	cfg := streamSettings()

	assert.Equal(t, "INVENTORY", cfg.Name)
	assert.Equal(t, []string{"inventory.events"}, cfg.Subjects)
	assert.Equal(t, nats.WorkQueuePolicy, cfg.Retention)
	assert.Equal(t, nats.FileStorage, cfg.Storage)
	assert.Equal(t, 24*time.Hour, cfg.MaxAge)
}

func TestConsumerSettings(t *testing.T) {
	cfg := consumerSettings()

	assert.Equal(t, "alert-worker", cfg.Durable)
	assert.Equal(t, nats.AckExplicitPolicy, cfg.AckPolicy)
	assert.Equal(t, MaxDeliveryAttempts, cfg.MaxDeliver)
	assert.Equal(t, StreamSubjects, cfg.FilterSubject)
	// MaxDeliver N requires exactly N-1 backoff steps or the server rejects the consumer
	assert.Len(t, cfg.BackOff, MaxDeliveryAttempts-1)
}

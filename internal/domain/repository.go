package domain

import (
	"context"
	"time"
)

// SnapshotRepository stores the serialized inventory state as one named blob
type SnapshotRepository interface {
	// Load returns the blob stored under name, or ErrNotFound if none was written yet
	Load(ctx context.Context, name string) ([]byte, error)

	// Save replaces the blob stored under name
	Save(ctx context.Context, name string, data []byte) error
}

// StockAlert is a persisted low or critical stock condition for one variant
type StockAlert struct {
	ProductID   string     `json:"product_id" db:"product_id"`
	ProductName string     `json:"product_name" db:"product_name"`
	Volume      string     `json:"volume" db:"volume"`
	Level       StockLevel `json:"level" db:"level"`
	CurrentSets int        `json:"current_sets" db:"current_sets"`
	Threshold   int        `json:"threshold" db:"threshold"`
	DetectedAt  time.Time  `json:"detected_at" db:"detected_at"`
}

// AlertRepository keeps the current set of stock alerts per product
type AlertRepository interface {
	// ReplaceForProduct swaps all alerts of a product for the given ones
	ReplaceForProduct(ctx context.Context, productID string, alerts []StockAlert) error

	// ListByProduct returns the current alerts of a product
	ListByProduct(ctx context.Context, productID string) ([]StockAlert, error)
}

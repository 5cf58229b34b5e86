package worker

import (
	"context"
	"fmt"
	"time"

	"github.com/Pesokrava/beverage_stock/internal/domain"
	"github.com/Pesokrava/beverage_stock/internal/pkg/logger"
)

// AlertRecorder keeps the stock_alerts rows of a product in line with its
// latest known state
type AlertRecorder struct {
	alerts domain.AlertRepository
	logger *logger.Logger
	now    func() time.Time
}

// NewAlertRecorder creates a new alert recorder
func NewAlertRecorder(alerts domain.AlertRepository, log *logger.Logger) *AlertRecorder {
	return &AlertRecorder{
		alerts: alerts,
		logger: log,
		now:    time.Now,
	}
}

// BuildAlerts returns one alert per low or critical variant of the product
func BuildAlerts(product domain.Product, detectedAt time.Time) []domain.StockAlert {
	alerts := []domain.StockAlert{}
	for _, v := range product.Variants {
		level := v.Level()
		if level == domain.StockHealthy {
			continue
		}
		alerts = append(alerts, domain.StockAlert{
			ProductID:   product.ID,
			ProductName: product.Name,
			Volume:      v.Volume,
			Level:       level,
			CurrentSets: v.CurrentSets,
			Threshold:   v.Threshold,
			DetectedAt:  detectedAt,
		})
	}
	return alerts
}

// Record replaces the stored alerts of productID. A nil product means the
// product was deleted and its alerts are cleared.
// Rows are rebuilt from the full product state every time, so replaying an
// event is harmless.
func (r *AlertRecorder) Record(ctx context.Context, productID string, product *domain.Product) error {
	alerts := []domain.StockAlert{}
	if product != nil {
		alerts = BuildAlerts(*product, r.now())
	}

	if err := r.alerts.ReplaceForProduct(ctx, productID, alerts); err != nil {
		return fmt.Errorf("failed to record alerts: %w", err)
	}

	critical := 0
	for _, a := range alerts {
		if a.Level == domain.StockCritical {
			critical++
		}
	}

	r.logger.WithFields(map[string]any{
		"product_id": productID,
		"deleted":    product == nil,
		"alerts":     len(alerts),
		"critical":   critical,
	}).Info("Stock alerts updated")

	return nil
}

package sqlstore

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/Pesokrava/beverage_stock/internal/domain"
)

// AlertRepository implements domain.AlertRepository on the stock_alerts table
type AlertRepository struct {
	db *sqlx.DB
}

// NewAlertRepository creates a new SQL stock alert repository
func NewAlertRepository(db *sqlx.DB) *AlertRepository {
	return &AlertRepository{db: db}
}

// ReplaceForProduct swaps the stored alerts of a product in one transaction
func (r *AlertRepository) ReplaceForProduct(ctx context.Context, productID string, alerts []domain.StockAlert) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, tx.Rebind(`DELETE FROM stock_alerts WHERE product_id = ?`), productID); err != nil {
		return fmt.Errorf("failed to clear alerts for product %q: %w", productID, err)
	}

	insert := `
		INSERT INTO stock_alerts (product_id, product_name, volume, level, current_sets, threshold, detected_at)
		VALUES (:product_id, :product_name, :volume, :level, :current_sets, :threshold, :detected_at)
	`
	for _, alert := range alerts {
		if _, err := tx.NamedExecContext(ctx, insert, alert); err != nil {
			return fmt.Errorf("failed to insert alert for %s %s: %w", alert.ProductID, alert.Volume, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit alerts: %w", err)
	}

	return nil
}

// ListByProduct returns the stored alerts of a product ordered by volume
func (r *AlertRepository) ListByProduct(ctx context.Context, productID string) ([]domain.StockAlert, error) {
	query := r.db.Rebind(`
		SELECT product_id, product_name, volume, level, current_sets, threshold, detected_at
		FROM stock_alerts
		WHERE product_id = ?
		ORDER BY volume
	`)

	alerts := []domain.StockAlert{}
	if err := r.db.SelectContext(ctx, &alerts, query, productID); err != nil {
		return nil, fmt.Errorf("failed to list alerts for product %q: %w", productID, err)
	}

	return alerts, nil
}

// List returns every stored alert, critical first, then by product and volume
func (r *AlertRepository) List(ctx context.Context) ([]domain.StockAlert, error) {
	query := `
		SELECT product_id, product_name, volume, level, current_sets, threshold, detected_at
		FROM stock_alerts
		ORDER BY CASE level WHEN 'critical' THEN 0 ELSE 1 END, product_name, volume
	`

	alerts := []domain.StockAlert{}
	if err := r.db.SelectContext(ctx, &alerts, query); err != nil {
		return nil, fmt.Errorf("failed to list alerts: %w", err)
	}

	return alerts, nil
}

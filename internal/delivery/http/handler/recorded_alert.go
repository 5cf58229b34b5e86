package handler

import (
	"context"
	"net/http"

	"github.com/Pesokrava/beverage_stock/internal/delivery/http/response"
	"github.com/Pesokrava/beverage_stock/internal/domain"
	"github.com/Pesokrava/beverage_stock/internal/pkg/logger"
)

// AlertReader reads the stock alerts kept by the alert worker
type AlertReader interface {
	List(ctx context.Context) ([]domain.StockAlert, error)
	ListByProduct(ctx context.Context, productID string) ([]domain.StockAlert, error)
}

// RecordedAlertHandler serves the alert rows written by the alert worker
type RecordedAlertHandler struct {
	alerts AlertReader
	logger *logger.Logger
}

// NewRecordedAlertHandler creates a new recorded alert handler
func NewRecordedAlertHandler(alerts AlertReader, log *logger.Logger) *RecordedAlertHandler {
	return &RecordedAlertHandler{
		alerts: alerts,
		logger: log,
	}
}

// List handles GET /api/v1/alerts/recorded
// @Summary Recorded stock alerts
// @Description Alerts as last recorded by the alert worker, critical first. Lags the live view by the debounce window.
// @Tags Dashboard
// @Produce json
// @Param productId query string false "Only alerts of this product"
// @Success 200 {object} map[string]interface{} "Recorded alerts"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /alerts/recorded [get]
func (h *RecordedAlertHandler) List(w http.ResponseWriter, r *http.Request) {
	var (
		alerts []domain.StockAlert
		err    error
	)
	if productID := r.URL.Query().Get("productId"); productID != "" {
		alerts, err = h.alerts.ListByProduct(r.Context(), productID)
	} else {
		alerts, err = h.alerts.List(r.Context())
	}
	if err != nil {
		writeError(w, h.logger, err, "Product not found")
		return
	}

	response.Success(w, alerts)
}

package handler

import (
	"net/http"

	"github.com/Pesokrava/beverage_stock/internal/delivery/http/request"
	"github.com/Pesokrava/beverage_stock/internal/delivery/http/response"
	"github.com/Pesokrava/beverage_stock/internal/domain"
	"github.com/Pesokrava/beverage_stock/internal/pkg/logger"
	"github.com/Pesokrava/beverage_stock/internal/usecase/inventory"
)

// DashboardHandler serves the inventory overview and stock alerts
type DashboardHandler struct {
	store  *inventory.Store
	logger *logger.Logger
}

// NewDashboardHandler creates a new dashboard handler
func NewDashboardHandler(store *inventory.Store, log *logger.Logger) *DashboardHandler {
	return &DashboardHandler{
		store:  store,
		logger: log,
	}
}

// DashboardResponse is the body of GET /dashboard
type DashboardResponse struct {
	Summary       domain.InventorySummary `json:"summary"`
	TodaysSales   int                     `json:"todaysSales"`
	TodaysRevenue float64                 `json:"todaysRevenue"`
	RecentSales   []domain.Sale           `json:"recentSales"`
	LowStock      []domain.VariantRef     `json:"lowStock"`
	CriticalStock []domain.VariantRef     `json:"criticalStock"`
}

// Dashboard handles GET /api/v1/dashboard
// @Summary Inventory overview
// @Description Catalog totals, today's sales count and revenue, recent sales and stock alerts
// @Tags Dashboard
// @Produce json
// @Success 200 {object} map[string]interface{} "Dashboard data"
// @Router /dashboard [get]
func (h *DashboardHandler) Dashboard(w http.ResponseWriter, r *http.Request) {
	today := h.store.GetTodaysSales()

	response.Success(w, DashboardResponse{
		Summary:       h.store.GetTotalInventoryValue(),
		TodaysSales:   len(today),
		TodaysRevenue: h.store.TodaysRevenue(),
		RecentSales:   h.store.GetRecentSales(),
		LowStock:      h.store.GetLowStockVariants(),
		CriticalStock: h.store.GetCriticalStockVariants(),
	})
}

// Alerts handles GET /api/v1/alerts
// @Summary Stock alerts
// @Description Critical and low stock variants, critical first
// @Tags Dashboard
// @Produce json
// @Param severity query string false "all, critical or low" default(all)
// @Param search query string false "Case-insensitive product or volume filter"
// @Param sort query string false "urgency, product or stock" default(urgency)
// @Success 200 {object} map[string]interface{} "Alerts"
// @Failure 400 {object} map[string]string "Invalid filter"
// @Router /alerts [get]
func (h *DashboardHandler) Alerts(w http.ResponseWriter, r *http.Request) {
	filter := inventory.AlertFilter{
		Severity: request.GetStringQuery(r, "severity", inventory.SeverityAll),
		Search:   r.URL.Query().Get("search"),
		SortBy:   request.GetStringQuery(r, "sort", inventory.SortByUrgency),
	}

	switch filter.Severity {
	case inventory.SeverityAll, inventory.SeverityCritical, inventory.SeverityLow:
	default:
		response.Error(w, http.StatusBadRequest, "severity must be all, critical or low")
		return
	}
	switch filter.SortBy {
	case inventory.SortByUrgency, inventory.SortByProduct, inventory.SortByStock:
	default:
		response.Error(w, http.StatusBadRequest, "sort must be urgency, product or stock")
		return
	}

	alerts := h.store.Alerts(filter)
	summary := h.store.GetTotalInventoryValue()

	response.Success(w, map[string]any{
		"alerts":        alerts,
		"criticalCount": summary.CriticalStockCount,
		"lowCount":      summary.LowStockCount,
	})
}

package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Pesokrava/beverage_stock/internal/domain"
	"github.com/Pesokrava/beverage_stock/internal/pkg/logger"
)

func TestDashboardHandler_Dashboard(t *testing.T) {
	store := newSeededStore(t)
	handler := NewDashboardHandler(store, logger.Nop())
	ctx := context.Background()

	_, err := store.RecordSale(ctx, domain.Sale{
		CustomerName: "Gupta Mart",
		Items:        []domain.SaleItem{{ProductID: "coca-cola", Volume: "200ml", SetsSold: 45}},
		TotalAmount:  9000,
	})
	require.NoError(t, err)
	_, err = store.RecordSale(ctx, domain.Sale{
		CustomerName: "Gupta Mart",
		Items:        []domain.SaleItem{{ProductID: "sprite", Volume: "750ml", SetsSold: 22}},
		TotalAmount:  500,
	})
	require.NoError(t, err)

	w := httptest.NewRecorder()
	handler.Dashboard(w, newRequest(t, http.MethodGet, "/api/v1/dashboard", nil, nil))

	require.Equal(t, http.StatusOK, w.Code)
	var resp DashboardResponse
	decodeData(t, w, &resp)
	assert.Equal(t, 7, resp.Summary.TotalProducts)
	assert.Equal(t, 20, resp.Summary.TotalVariants)
	assert.Equal(t, 1, resp.Summary.CriticalStockCount)
	assert.Equal(t, 1, resp.Summary.LowStockCount)
	assert.Equal(t, 2, resp.TodaysSales)
	assert.InDelta(t, 9500.0, resp.TodaysRevenue, 0.001)
	require.Len(t, resp.RecentSales, 2)
	require.Len(t, resp.CriticalStock, 1)
	assert.Equal(t, "200ml", resp.CriticalStock[0].Variant.Volume)
	require.Len(t, resp.LowStock, 1)
	assert.Equal(t, "sprite", resp.LowStock[0].Product.ID)
}

func TestDashboardHandler_Alerts(t *testing.T) {
	store := newSeededStore(t)
	handler := NewDashboardHandler(store, logger.Nop())
	ctx := context.Background()

	require.NoError(t, store.UpdateVariant(ctx, "fanta", "2.25L", domain.VariantUpdate{CurrentSets: ptr(0)}))
	require.NoError(t, store.UpdateVariant(ctx, "maaza", "600ml", domain.VariantUpdate{CurrentSets: ptr(2)}))

	w := httptest.NewRecorder()
	handler.Alerts(w, newRequest(t, http.MethodGet, "/api/v1/alerts", nil, nil))

	require.Equal(t, http.StatusOK, w.Code)
	data := decodeBody(t, w)["data"].(map[string]any)
	alerts := data["alerts"].([]any)
	require.Len(t, alerts, 2)
	first := alerts[0].(map[string]any)
	assert.Equal(t, "fanta", first["product"].(map[string]any)["id"])
	assert.EqualValues(t, 1, data["criticalCount"])
	assert.EqualValues(t, 1, data["lowCount"])

	w = httptest.NewRecorder()
	handler.Alerts(w, newRequest(t, http.MethodGet, "/api/v1/alerts?severity=low&search=MAA", nil, nil))
	require.Equal(t, http.StatusOK, w.Code)
	data = decodeBody(t, w)["data"].(map[string]any)
	assert.Len(t, data["alerts"], 1)

	for _, query := range []string{"severity=urgent", "sort=price"} {
		w = httptest.NewRecorder()
		handler.Alerts(w, newRequest(t, http.MethodGet, "/api/v1/alerts?"+query, nil, nil))
		assert.Equal(t, http.StatusBadRequest, w.Code, query)
	}
}

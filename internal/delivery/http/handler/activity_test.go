package handler

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/Pesokrava/beverage_stock/internal/domain"
	"github.com/Pesokrava/beverage_stock/internal/export"
	"github.com/Pesokrava/beverage_stock/internal/pkg/logger"
	"github.com/Pesokrava/beverage_stock/internal/usecase/inventory"
)

func newActivityStore(t *testing.T, now time.Time) *inventory.Store {
	t.Helper()
	clock := now
	store := inventory.NewStore(nil, nil, logger.Nop(), inventory.WithClock(func() time.Time { return clock }))
	ctx := context.Background()

	_, err := store.InitializeProducts(ctx)
	require.NoError(t, err)

	clock = now.AddDate(0, -1, 0)
	_, err = store.RecordIncoming(ctx, domain.IncomingEntry{ProductID: "kinley", ProductName: "Kinley", Volume: "1L", SetSize: 12, SetsReceived: 5})
	require.NoError(t, err)

	clock = now.Add(-time.Hour)
	_, err = store.RecordSale(ctx, domain.Sale{
		CustomerName: "Sharma Stores",
		Items:        []domain.SaleItem{{ProductID: "sprite", ProductName: "Sprite", Volume: "200ml", SetSize: 24, SetsSold: 3}},
		TotalAmount:  600,
	})
	require.NoError(t, err)
	return store
}

func TestActivityHandler_Preview(t *testing.T) {
	now := time.Date(2026, 5, 20, 15, 0, 0, 0, time.Local)
	handler := NewActivityHandler(newActivityStore(t, now), "coca-cola", logger.Nop())
	handler.now = func() time.Time { return now }

	w := httptest.NewRecorder()
	handler.Preview(w, newRequest(t, http.MethodGet, "/api/v1/activity", nil, nil))

	require.Equal(t, http.StatusOK, w.Code)
	data := decodeBody(t, w)["data"].(map[string]any)
	records := data["records"].([]any)
	require.Len(t, records, 2)
	assert.Equal(t, "Sale", records[0].(map[string]any)["type"])
	summary := data["summary"].(map[string]any)
	assert.EqualValues(t, 1, summary["sales"])
	assert.EqualValues(t, 1, summary["incoming"])
	assert.EqualValues(t, 600, summary["totalRevenue"])

	w = httptest.NewRecorder()
	handler.Preview(w, newRequest(t, http.MethodGet, "/api/v1/activity?range=today&sort=quantity&order=asc", nil, nil))
	require.Equal(t, http.StatusOK, w.Code)
	data = decodeBody(t, w)["data"].(map[string]any)
	assert.Len(t, data["records"], 1)

	for _, query := range []string{"range=week", "sort=price", "order=up"} {
		w = httptest.NewRecorder()
		handler.Preview(w, newRequest(t, http.MethodGet, "/api/v1/activity?"+query, nil, nil))
		assert.Equal(t, http.StatusBadRequest, w.Code, query)
	}
}

func TestActivityHandler_Export(t *testing.T) {
	now := time.Date(2026, 5, 20, 15, 0, 0, 0, time.Local)
	handler := NewActivityHandler(newActivityStore(t, now), "coca-cola", logger.Nop())
	handler.now = func() time.Time { return now }

	w := httptest.NewRecorder()
	handler.Export(w, newRequest(t, http.MethodGet, "/api/v1/export/all", nil, map[string]string{"range": "all"}))

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, export.ContentType, w.Header().Get("Content-Type"))
	assert.Equal(t, `attachment; filename="coca-cola-all-activity-2026-05-20.xlsx"`, w.Header().Get("Content-Disposition"))

	f, err := excelize.OpenReader(bytes.NewReader(w.Body.Bytes()))
	require.NoError(t, err)
	defer f.Close()
	rows, err := f.GetRows(export.SheetName)
	require.NoError(t, err)
	assert.Len(t, rows, 3)

	w = httptest.NewRecorder()
	handler.Export(w, newRequest(t, http.MethodGet, "/api/v1/export/month", nil, map[string]string{"range": "month"}))
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, `attachment; filename="coca-cola-month-2026-05.xlsx"`, w.Header().Get("Content-Disposition"))
}

func TestActivityHandler_Export_Errors(t *testing.T) {
	now := time.Date(2026, 5, 20, 15, 0, 0, 0, time.Local)
	handler := NewActivityHandler(newActivityStore(t, now), "coca-cola", logger.Nop())
	handler.now = func() time.Time { return now.AddDate(0, 0, 1) }

	w := httptest.NewRecorder()
	handler.Export(w, newRequest(t, http.MethodGet, "/api/v1/export/today", nil, map[string]string{"range": "today"}))
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "No records found for the selected period", decodeBody(t, w)["error"])

	w = httptest.NewRecorder()
	handler.Export(w, newRequest(t, http.MethodGet, "/api/v1/export/year", nil, map[string]string{"range": "year"}))
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

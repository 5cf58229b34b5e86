package handler

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Pesokrava/beverage_stock/internal/domain"
	"github.com/Pesokrava/beverage_stock/internal/pkg/logger"
)

func TestIncomingHandler_Create_Batch(t *testing.T) {
	store := newSeededStore(t)
	handler := NewIncomingHandler(store, logger.Nop())

	body := CreateIncomingRequest{Entries: []IncomingEntryRequest{
		{ProductID: "maaza", Volume: "1.2L", SetsReceived: 6, Notes: "truck 12"},
		{ProductID: "kinley", Volume: "2L", SetsReceived: 4},
	}}

	w := httptest.NewRecorder()
	handler.Create(w, newRequest(t, http.MethodPost, "/api/v1/incoming", body, nil))

	require.Equal(t, http.StatusCreated, w.Code)
	var entries []domain.IncomingEntry
	decodeData(t, w, &entries)
	require.Len(t, entries, 2)
	assert.Equal(t, "Maaza", entries[0].ProductName)
	assert.Equal(t, 12, entries[0].SetSize)
	assert.NotEqual(t, entries[0].ID, entries[1].ID)

	maaza, _ := store.GetProductVariant("maaza", "1.2L")
	kinley, _ := store.GetProductVariant("kinley", "2L")
	assert.Equal(t, 20, maaza.Variant.CurrentSets)
	assert.Equal(t, 20, kinley.Variant.CurrentSets)

	w = httptest.NewRecorder()
	handler.List(w, newRequest(t, http.MethodGet, "/api/v1/incoming", nil, nil))
	require.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, decodeBody(t, w)["data"], 2)
}

func TestIncomingHandler_Create_Errors(t *testing.T) {
	tests := []struct {
		name       string
		body       any
		wantStatus int
	}{
		{"invalid json", "nope", http.StatusBadRequest},
		{"empty batch", CreateIncomingRequest{}, http.StatusBadRequest},
		{"zero sets", CreateIncomingRequest{Entries: []IncomingEntryRequest{{ProductID: "maaza", Volume: "1.2L"}}}, http.StatusBadRequest},
		{"unknown variant rejects whole batch", CreateIncomingRequest{Entries: []IncomingEntryRequest{
			{ProductID: "maaza", Volume: "1.2L", SetsReceived: 1},
			{ProductID: "maaza", Volume: "9L", SetsReceived: 1},
		}}, http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := newSeededStore(t)
			handler := NewIncomingHandler(store, logger.Nop())

			w := httptest.NewRecorder()
			handler.Create(w, newRequest(t, http.MethodPost, "/api/v1/incoming", tt.body, nil))

			assert.Equal(t, tt.wantStatus, w.Code)
			assert.Empty(t, store.IncomingHistory())
		})
	}
}

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

func TestProductHandler_List(t *testing.T) {
	handler := NewProductHandler(newSeededStore(t), logger.Nop())

	w := httptest.NewRecorder()
	handler.List(w, newRequest(t, http.MethodGet, "/api/v1/products", nil, nil))

	assert.Equal(t, http.StatusOK, w.Code)
	var products []domain.Product
	decodeData(t, w, &products)
	assert.Len(t, products, 7)
	assert.Equal(t, "coca-cola", products[0].ID)
}

func TestProductHandler_GetByID(t *testing.T) {
	handler := NewProductHandler(newSeededStore(t), logger.Nop())

	w := httptest.NewRecorder()
	handler.GetByID(w, newRequest(t, http.MethodGet, "/api/v1/products/sprite", nil, map[string]string{"id": "sprite"}))

	assert.Equal(t, http.StatusOK, w.Code)
	var product domain.Product
	decodeData(t, w, &product)
	assert.Equal(t, "Sprite", product.Name)

	w = httptest.NewRecorder()
	handler.GetByID(w, newRequest(t, http.MethodGet, "/api/v1/products/pepsi", nil, map[string]string{"id": "pepsi"}))

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "Product not found", decodeBody(t, w)["error"])
}

func TestProductHandler_Create_Success(t *testing.T) {
	store := newSeededStore(t)
	handler := NewProductHandler(store, logger.Nop())

	body := CreateProductRequest{
		Name:  "Minute Maid",
		Color: "from-orange-400 to-orange-600",
		Variants: []VariantRequest{
			{Volume: "400ml", SetSize: 24, CurrentSets: 10, Threshold: 4},
		},
	}

	w := httptest.NewRecorder()
	handler.Create(w, newRequest(t, http.MethodPost, "/api/v1/products", body, nil))

	assert.Equal(t, http.StatusCreated, w.Code)
	var product domain.Product
	decodeData(t, w, &product)
	assert.Equal(t, "minute-maid", product.ID)

	_, ok := store.Product("minute-maid")
	assert.True(t, ok)
}

func TestProductHandler_Create_Errors(t *testing.T) {
	tests := []struct {
		name       string
		body       any
		wantStatus int
	}{
		{"invalid json", "invalid json", http.StatusBadRequest},
		{"missing name", CreateProductRequest{Variants: []VariantRequest{{Volume: "1L", SetSize: 12}}}, http.StatusBadRequest},
		{"blank name", CreateProductRequest{Name: "   ", Variants: []VariantRequest{{Volume: "1L", SetSize: 6}}}, http.StatusBadRequest},
		{"whitespace name", `{"name":"\t\n ","variants":[{"volume":"1L","setSize":6}]}`, http.StatusBadRequest},
		{"no variants", CreateProductRequest{Name: "Pepsi"}, http.StatusBadRequest},
		{"zero set size", CreateProductRequest{Name: "Pepsi", Variants: []VariantRequest{{Volume: "1L"}}}, http.StatusBadRequest},
		{"negative stock", CreateProductRequest{Name: "Pepsi", Variants: []VariantRequest{{Volume: "1L", SetSize: 12, CurrentSets: -1}}}, http.StatusBadRequest},
		{"duplicate volumes", CreateProductRequest{Name: "Pepsi", Variants: []VariantRequest{{Volume: "1L", SetSize: 12}, {Volume: "1L", SetSize: 6}}}, http.StatusConflict},
		{"existing id", CreateProductRequest{Name: "Coca Cola", Variants: []VariantRequest{{Volume: "1L", SetSize: 12}}}, http.StatusConflict},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := newSeededStore(t)
			handler := NewProductHandler(store, logger.Nop())

			w := httptest.NewRecorder()
			handler.Create(w, newRequest(t, http.MethodPost, "/api/v1/products", tt.body, nil))

			assert.Equal(t, tt.wantStatus, w.Code)
			assert.Len(t, store.Products(), 7)
		})
	}
}

func TestProductHandler_Create_BlankNameLeavesNoUnreachableProduct(t *testing.T) {
	store := newSeededStore(t)
	handler := NewProductHandler(store, logger.Nop())

	w := httptest.NewRecorder()
	handler.Create(w, newRequest(t, http.MethodPost, "/api/v1/products",
		`{"name":"   ","variants":[{"volume":"1L","setSize":6}]}`, nil))

	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "notblank")
	_, exists := store.Product("")
	assert.False(t, exists)
}

func TestProductHandler_Update_BlankName(t *testing.T) {
	store := newSeededStore(t)
	handler := NewProductHandler(store, logger.Nop())

	w := httptest.NewRecorder()
	handler.Update(w, newRequest(t, http.MethodPut, "/api/v1/products/sprite",
		UpdateProductRequest{Name: ptr("  ")}, map[string]string{"id": "sprite"}))

	assert.Equal(t, http.StatusBadRequest, w.Code)
	product, _ := store.Product("sprite")
	assert.Equal(t, "Sprite", product.Name)
}

func TestProductHandler_Update(t *testing.T) {
	store := newSeededStore(t)
	handler := NewProductHandler(store, logger.Nop())

	w := httptest.NewRecorder()
	handler.Update(w, newRequest(t, http.MethodPut, "/api/v1/products/limca",
		UpdateProductRequest{Name: ptr("Limca Lemon")}, map[string]string{"id": "limca"}))

	assert.Equal(t, http.StatusOK, w.Code)
	limca, _ := store.Product("limca")
	assert.Equal(t, "Limca Lemon", limca.Name)
	assert.Equal(t, "from-lime-500 via-green-400 to-emerald-500", limca.Color)

	w = httptest.NewRecorder()
	handler.Update(w, newRequest(t, http.MethodPut, "/api/v1/products/pepsi",
		UpdateProductRequest{Name: ptr("Pepsi")}, map[string]string{"id": "pepsi"}))
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = httptest.NewRecorder()
	handler.Update(w, newRequest(t, http.MethodPut, "/api/v1/products/limca",
		UpdateProductRequest{Name: ptr("")}, map[string]string{"id": "limca"}))
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestProductHandler_Delete(t *testing.T) {
	store := newSeededStore(t)
	handler := NewProductHandler(store, logger.Nop())

	w := httptest.NewRecorder()
	handler.Delete(w, newRequest(t, http.MethodDelete, "/api/v1/products/kinley", nil, map[string]string{"id": "kinley"}))

	assert.Equal(t, http.StatusNoContent, w.Code)
	_, ok := store.Product("kinley")
	assert.False(t, ok)

	w = httptest.NewRecorder()
	handler.Delete(w, newRequest(t, http.MethodDelete, "/api/v1/products/kinley", nil, map[string]string{"id": "kinley"}))
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestProductHandler_Variants(t *testing.T) {
	store := newSeededStore(t)
	handler := NewProductHandler(store, logger.Nop())
	params := func(volume string) map[string]string {
		return map[string]string{"id": "limca", "volume": volume}
	}

	w := httptest.NewRecorder()
	handler.AddVariant(w, newRequest(t, http.MethodPost, "/api/v1/products/limca/variants",
		VariantRequest{Volume: "2L", SetSize: 6, CurrentSets: 3, Threshold: 4}, map[string]string{"id": "limca"}))
	require.Equal(t, http.StatusCreated, w.Code)

	w = httptest.NewRecorder()
	handler.AddVariant(w, newRequest(t, http.MethodPost, "/api/v1/products/limca/variants",
		VariantRequest{Volume: "2L", SetSize: 6}, map[string]string{"id": "limca"}))
	assert.Equal(t, http.StatusConflict, w.Code)

	w = httptest.NewRecorder()
	handler.GetVariant(w, newRequest(t, http.MethodGet, "/api/v1/products/limca/variants/2L", nil, params("2L")))
	require.Equal(t, http.StatusOK, w.Code)
	data := decodeBody(t, w)["data"].(map[string]any)
	assert.Equal(t, "low", data["level"])
	assert.EqualValues(t, 18, data["bottles"])

	w = httptest.NewRecorder()
	handler.UpdateVariant(w, newRequest(t, http.MethodPatch, "/api/v1/products/limca/variants/2L",
		UpdateVariantRequest{Volume: ptr("2.25L"), CurrentSets: ptr(0)}, params("2L")))
	require.Equal(t, http.StatusOK, w.Code)
	var variant domain.ProductVariant
	decodeData(t, w, &variant)
	assert.Equal(t, "2.25L", variant.Volume)
	assert.Equal(t, 0, variant.CurrentSets)

	w = httptest.NewRecorder()
	handler.UpdateVariant(w, newRequest(t, http.MethodPatch, "/api/v1/products/limca/variants/2.25L",
		UpdateVariantRequest{SetSize: ptr(0)}, params("2.25L")))
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = httptest.NewRecorder()
	handler.UpdateThreshold(w, newRequest(t, http.MethodPut, "/api/v1/products/limca/variants/200ml/threshold",
		UpdateThresholdRequest{Threshold: ptr(0)}, params("200ml")))
	require.Equal(t, http.StatusOK, w.Code)
	ref, _ := store.GetProductVariant("limca", "200ml")
	assert.Equal(t, 0, ref.Variant.Threshold)

	w = httptest.NewRecorder()
	handler.UpdateThreshold(w, newRequest(t, http.MethodPut, "/api/v1/products/limca/variants/200ml/threshold",
		map[string]any{}, params("200ml")))
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = httptest.NewRecorder()
	handler.DeleteVariant(w, newRequest(t, http.MethodDelete, "/api/v1/products/limca/variants/2.25L", nil, params("2.25L")))
	assert.Equal(t, http.StatusNoContent, w.Code)

	w = httptest.NewRecorder()
	handler.GetVariant(w, newRequest(t, http.MethodGet, "/api/v1/products/limca/variants/2.25L", nil, params("2.25L")))
	assert.Equal(t, http.StatusNotFound, w.Code)
}

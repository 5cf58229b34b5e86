package request

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeJSON(t *testing.T) {
	var body struct {
		Name string `json:"name"`
	}

	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"name":"Sprite"}`))
	require.NoError(t, DecodeJSON(req, &body))
	assert.Equal(t, "Sprite", body.Name)

	req = httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{`))
	assert.Error(t, DecodeJSON(req, &body))
}

func TestGetPathParam(t *testing.T) {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add("volume", "1%20L")
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req = req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))

	volume, err := GetPathParam(req, "volume")
	require.NoError(t, err)
	assert.Equal(t, "1 L", volume)

	_, err = GetPathParam(req, "id")
	assert.Error(t, err)
}

func TestGetPaginationParams(t *testing.T) {
	tests := []struct {
		query      string
		wantLimit  int
		wantOffset int
	}{
		{"", 20, 0},
		{"limit=5&offset=10", 5, 10},
		{"limit=500&offset=-1", 20, 0},
		{"limit=abc", 20, 0},
	}

	for _, tt := range tests {
		t.Run(tt.query, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/?"+tt.query, nil)
			limit, offset := GetPaginationParams(req)
			assert.Equal(t, tt.wantLimit, limit)
			assert.Equal(t, tt.wantOffset, offset)
		})
	}
}

func TestPaginate(t *testing.T) {
	items := []int{1, 2, 3, 4, 5}

	assert.Equal(t, []int{1, 2}, Paginate(items, 2, 0))
	assert.Equal(t, []int{5}, Paginate(items, 2, 4))
	assert.Equal(t, []int{}, Paginate(items, 2, 9))
}

func TestValidate(t *testing.T) {
	type payload struct {
		Sets int `json:"sets" validate:"gt=0"`
	}

	assert.NoError(t, Validate(payload{Sets: 1}))
	assert.Error(t, Validate(payload{Sets: 0}))
}

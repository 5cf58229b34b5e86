package handler

import (
	"fmt"
	"net/http"

	"github.com/Pesokrava/beverage_stock/internal/delivery/http/request"
	"github.com/Pesokrava/beverage_stock/internal/delivery/http/response"
	"github.com/Pesokrava/beverage_stock/internal/domain"
	"github.com/Pesokrava/beverage_stock/internal/pkg/logger"
	"github.com/Pesokrava/beverage_stock/internal/usecase/inventory"
)

// SaleHandler handles HTTP requests for sales
type SaleHandler struct {
	store  *inventory.Store
	logger *logger.Logger
}

// NewSaleHandler creates a new sale handler
func NewSaleHandler(store *inventory.Store, log *logger.Logger) *SaleHandler {
	return &SaleHandler{
		store:  store,
		logger: log,
	}
}

// SaleItemRequest represents one line of a sale
type SaleItemRequest struct {
	ProductID   string   `json:"productId" validate:"required"`
	Volume      string   `json:"volume" validate:"required"`
	SetsSold    int      `json:"setsSold" validate:"required,gt=0"`
	PricePerSet *float64 `json:"pricePerSet" validate:"required,gte=0"`
}

// CreateSaleRequest represents the request body for recording a sale
type CreateSaleRequest struct {
	CustomerName    string            `json:"customerName" validate:"required,max=255"`
	CustomerAddress string            `json:"customerAddress" validate:"max=500"`
	CustomerPhone   string            `json:"customerPhone" validate:"max=50"`
	Notes           string            `json:"notes" validate:"max=1000"`
	Items           []SaleItemRequest `json:"items" validate:"required,min=1,dive"`
	TotalAmount     *float64          `json:"totalAmount,omitempty" validate:"omitempty,gte=0"`
}

// Create handles POST /api/v1/sales
// @Summary Record a sale
// @Description Record a bill with one or more items. Every item must name an existing variant
// @Description and may not ask for more sets than are on hand. The total defaults to the sum of the items.
// @Tags Sales
// @Accept json
// @Produce json
// @Param sale body CreateSaleRequest true "Sale details"
// @Success 201 {object} map[string]interface{} "Sale recorded"
// @Failure 400 {object} map[string]string "Invalid request"
// @Failure 404 {object} map[string]string "Variant not found"
// @Failure 409 {object} map[string]string "Insufficient stock"
// @Router /sales [post]
func (h *SaleHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req CreateSaleRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	items := make([]domain.SaleItem, 0, len(req.Items))
	var total float64
	for _, it := range req.Items {
		ref, ok := h.store.GetProductVariant(it.ProductID, it.Volume)
		if !ok {
			response.Error(w, http.StatusNotFound, fmt.Sprintf("Variant %s %s not found", it.ProductID, it.Volume))
			return
		}

		price := *it.PricePerSet
		item := domain.SaleItem{
			ProductID:   ref.Product.ID,
			ProductName: ref.Product.Name,
			Volume:      ref.Variant.Volume,
			SetSize:     ref.Variant.SetSize,
			SetsSold:    it.SetsSold,
			PricePerSet: price,
			TotalPrice:  float64(it.SetsSold) * price,
		}
		total += item.TotalPrice
		items = append(items, item)
	}

	if req.TotalAmount != nil {
		total = *req.TotalAmount
	}

	sale, err := h.store.RecordCheckedSale(r.Context(), domain.Sale{
		CustomerName:    req.CustomerName,
		CustomerAddress: req.CustomerAddress,
		CustomerPhone:   req.CustomerPhone,
		Items:           items,
		TotalAmount:     total,
		Notes:           req.Notes,
	})
	if err != nil {
		h.handleError(w, err)
		return
	}

	response.Created(w, sale)
}

// List handles GET /api/v1/sales
// @Summary List sales
// @Description Paginated sales, oldest first
// @Tags Sales
// @Produce json
// @Param limit query int false "Number of items per page (max 100)" default(20)
// @Param offset query int false "Number of items to skip" default(0)
// @Success 200 {object} map[string]interface{} "Paginated list of sales"
// @Router /sales [get]
func (h *SaleHandler) List(w http.ResponseWriter, r *http.Request) {
	limit, offset := request.GetPaginationParams(r)

	sales := h.store.Sales()
	response.Paginated(w, request.Paginate(sales, limit, offset), len(sales), limit, offset)
}

// Today handles GET /api/v1/sales/today
// @Summary Today's sales
// @Tags Sales
// @Produce json
// @Success 200 {object} map[string]interface{} "Sales since local midnight"
// @Router /sales/today [get]
func (h *SaleHandler) Today(w http.ResponseWriter, r *http.Request) {
	response.Success(w, h.store.GetTodaysSales())
}

// Recent handles GET /api/v1/sales/recent
// @Summary Recent sales
// @Tags Sales
// @Produce json
// @Success 200 {object} map[string]interface{} "Up to ten sales, newest first"
// @Router /sales/recent [get]
func (h *SaleHandler) Recent(w http.ResponseWriter, r *http.Request) {
	response.Success(w, h.store.GetRecentSales())
}

// handleError handles store errors and returns appropriate HTTP responses
func (h *SaleHandler) handleError(w http.ResponseWriter, err error) {
	writeError(w, h.logger, err, "Product or variant not found")
}

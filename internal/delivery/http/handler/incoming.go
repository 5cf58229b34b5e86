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

// IncomingHandler handles HTTP requests for incoming deliveries
type IncomingHandler struct {
	store  *inventory.Store
	logger *logger.Logger
}

// NewIncomingHandler creates a new incoming stock handler
func NewIncomingHandler(store *inventory.Store, log *logger.Logger) *IncomingHandler {
	return &IncomingHandler{
		store:  store,
		logger: log,
	}
}

// IncomingEntryRequest represents one delivered variant
type IncomingEntryRequest struct {
	ProductID    string `json:"productId" validate:"required"`
	Volume       string `json:"volume" validate:"required"`
	SetsReceived int    `json:"setsReceived" validate:"required,gt=0"`
	Notes        string `json:"notes" validate:"max=1000"`
}

// CreateIncomingRequest represents a batch of deliveries saved together
type CreateIncomingRequest struct {
	Entries []IncomingEntryRequest `json:"entries" validate:"required,min=1,dive"`
}

// Create handles POST /api/v1/incoming
// @Summary Record incoming stock
// @Description Record a batch of deliveries. Each entry is committed on its own, in order.
// @Tags Incoming
// @Accept json
// @Produce json
// @Param incoming body CreateIncomingRequest true "Delivered entries"
// @Success 201 {object} map[string]interface{} "Entries recorded"
// @Failure 400 {object} map[string]string "Invalid request"
// @Failure 404 {object} map[string]string "Variant not found"
// @Router /incoming [post]
func (h *IncomingHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req CreateIncomingRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	entries := make([]domain.IncomingEntry, 0, len(req.Entries))
	for _, e := range req.Entries {
		ref, ok := h.store.GetProductVariant(e.ProductID, e.Volume)
		if !ok {
			response.Error(w, http.StatusNotFound, fmt.Sprintf("Variant %s %s not found", e.ProductID, e.Volume))
			return
		}
		entries = append(entries, domain.IncomingEntry{
			ProductID:    ref.Product.ID,
			ProductName:  ref.Product.Name,
			Volume:       ref.Variant.Volume,
			SetSize:      ref.Variant.SetSize,
			SetsReceived: e.SetsReceived,
			Notes:        e.Notes,
		})
	}

	recorded := make([]domain.IncomingEntry, 0, len(entries))
	for _, entry := range entries {
		saved, err := h.store.RecordIncoming(r.Context(), entry)
		if err != nil {
			h.logger.Warnf("Incoming batch stopped after %d of %d entries: %v", len(recorded), len(entries), err)
			h.handleError(w, err)
			return
		}
		recorded = append(recorded, saved)
	}

	response.Created(w, recorded)
}

// List handles GET /api/v1/incoming
// @Summary List incoming deliveries
// @Description Paginated deliveries, oldest first
// @Tags Incoming
// @Produce json
// @Param limit query int false "Number of items per page (max 100)" default(20)
// @Param offset query int false "Number of items to skip" default(0)
// @Success 200 {object} map[string]interface{} "Paginated list of deliveries"
// @Router /incoming [get]
func (h *IncomingHandler) List(w http.ResponseWriter, r *http.Request) {
	limit, offset := request.GetPaginationParams(r)

	history := h.store.IncomingHistory()
	response.Paginated(w, request.Paginate(history, limit, offset), len(history), limit, offset)
}

// handleError handles store errors and returns appropriate HTTP responses
func (h *IncomingHandler) handleError(w http.ResponseWriter, err error) {
	writeError(w, h.logger, err, "Product or variant not found")
}

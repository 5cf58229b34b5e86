package handler

import (
	"bytes"
	"errors"
	"net/http"
	"time"

	"github.com/Pesokrava/beverage_stock/internal/delivery/http/request"
	"github.com/Pesokrava/beverage_stock/internal/delivery/http/response"
	"github.com/Pesokrava/beverage_stock/internal/export"
	"github.com/Pesokrava/beverage_stock/internal/pkg/logger"
	"github.com/Pesokrava/beverage_stock/internal/usecase/inventory"
)

// ActivityHandler serves the activity log and its spreadsheet export
type ActivityHandler struct {
	store          *inventory.Store
	logger         *logger.Logger
	filenamePrefix string
	now            func() time.Time
}

// NewActivityHandler creates a new activity handler
func NewActivityHandler(store *inventory.Store, filenamePrefix string, log *logger.Logger) *ActivityHandler {
	return &ActivityHandler{
		store:          store,
		logger:         log,
		filenamePrefix: filenamePrefix,
		now:            time.Now,
	}
}

// Preview handles GET /api/v1/activity
// @Summary Activity log
// @Description Sales and deliveries as one log with search and sort, plus totals
// @Tags Activity
// @Produce json
// @Param range query string false "today, month or all" default(all)
// @Param search query string false "Case-insensitive product, volume, type or customer filter"
// @Param sort query string false "date, type, product, volume or quantity" default(date)
// @Param order query string false "asc or desc" default(desc)
// @Success 200 {object} map[string]interface{} "Records and summary"
// @Failure 400 {object} map[string]string "Invalid query"
// @Router /activity [get]
func (h *ActivityHandler) Preview(w http.ResponseWriter, r *http.Request) {
	rng, err := export.ParseRange(request.GetStringQuery(r, "range", string(export.RangeAll)))
	if err != nil {
		response.Error(w, http.StatusBadRequest, "range must be today, month or all")
		return
	}

	sortField := request.GetStringQuery(r, "sort", export.SortDate)
	switch sortField {
	case export.SortDate, export.SortType, export.SortProduct, export.SortVolume, export.SortQuantity:
	default:
		response.Error(w, http.StatusBadRequest, "sort must be date, type, product, volume or quantity")
		return
	}

	order := request.GetStringQuery(r, "order", "desc")
	if order != "asc" && order != "desc" {
		response.Error(w, http.StatusBadRequest, "order must be asc or desc")
		return
	}

	records := export.Filter(export.BuildRecords(h.store.Sales(), h.store.IncomingHistory()), rng, h.now())
	records = export.Preview(records, export.PreviewQuery{
		Search:    r.URL.Query().Get("search"),
		SortField: sortField,
		Ascending: order == "asc",
	})

	response.Success(w, map[string]any{
		"records": records,
		"summary": export.Summarize(records),
	})
}

// Export handles GET /api/v1/export/{range}
// @Summary Download the activity log as a spreadsheet
// @Tags Activity
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param range path string true "today, month or all"
// @Success 200 {file} file "XLSX workbook"
// @Failure 400 {object} map[string]string "Invalid range"
// @Failure 404 {object} map[string]string "No records found for the selected period"
// @Router /export/{range} [get]
func (h *ActivityHandler) Export(w http.ResponseWriter, r *http.Request) {
	param, err := request.GetPathParam(r, "range")
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid range")
		return
	}
	rng, err := export.ParseRange(param)
	if err != nil {
		response.Error(w, http.StatusBadRequest, "range must be today, month or all")
		return
	}

	now := h.now()
	records := export.Filter(export.BuildRecords(h.store.Sales(), h.store.IncomingHistory()), rng, now)

	var buf bytes.Buffer
	if err := export.WriteXLSX(&buf, records); err != nil {
		if errors.Is(err, export.ErrNoData) {
			response.Error(w, http.StatusNotFound, export.ErrNoData.Error())
			return
		}
		h.logger.Error("Failed to render export", err)
		response.Error(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	filename := export.Filename(h.filenamePrefix, rng, now)
	h.logger.WithFields(map[string]any{
		"range":    rng,
		"records":  len(records),
		"filename": filename,
	}).Info("Activity exported")

	response.Attachment(w, export.ContentType, filename, buf.Bytes())
}

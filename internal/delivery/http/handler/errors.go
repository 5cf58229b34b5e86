package handler

import (
	"errors"
	"net/http"

	"github.com/Pesokrava/beverage_stock/internal/delivery/http/request"
	"github.com/Pesokrava/beverage_stock/internal/delivery/http/response"
	"github.com/Pesokrava/beverage_stock/internal/domain"
	"github.com/Pesokrava/beverage_stock/internal/pkg/logger"
	"github.com/Pesokrava/beverage_stock/internal/pkg/validator"
)

// writeError maps store errors to HTTP responses
func writeError(w http.ResponseWriter, log *logger.Logger, err error, notFound string) {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		response.Error(w, http.StatusNotFound, notFound)
	case errors.Is(err, domain.ErrDuplicateVariant):
		response.Error(w, http.StatusConflict, "A variant with this volume already exists")
	case errors.Is(err, domain.ErrAlreadyExists):
		response.Error(w, http.StatusConflict, "Product already exists")
	case errors.Is(err, domain.ErrInsufficientStock):
		response.Error(w, http.StatusConflict, err.Error())
	case errors.Is(err, domain.ErrInvalidInput):
		response.Error(w, http.StatusBadRequest, "Invalid input")
	default:
		log.Error("Internal error in handler", err)
		response.Error(w, http.StatusInternalServerError, "Internal server error")
	}
}

// decodeAndValidate reads the JSON body into v and validates it, writing a
// 400 response on failure
func decodeAndValidate(w http.ResponseWriter, r *http.Request, v any) bool {
	if err := request.DecodeJSON(r, v); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body")
		return false
	}
	if err := request.Validate(v); err != nil {
		response.ValidationError(w, validator.Messages(err))
		return false
	}
	return true
}

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

// ProductHandler handles HTTP requests for products and their variants
type ProductHandler struct {
	store  *inventory.Store
	logger *logger.Logger
}

// NewProductHandler creates a new product handler
func NewProductHandler(store *inventory.Store, log *logger.Logger) *ProductHandler {
	return &ProductHandler{
		store:  store,
		logger: log,
	}
}

// VariantRequest represents one variant in a request body
type VariantRequest struct {
	Volume      string `json:"volume" validate:"required,min=1,max=50"`
	SetSize     int    `json:"setSize" validate:"required,gt=0"`
	CurrentSets int    `json:"currentSets" validate:"gte=0"`
	Threshold   int    `json:"threshold" validate:"gte=0"`
}

func (v VariantRequest) toDomain() domain.ProductVariant {
	return domain.ProductVariant{
		Volume:      v.Volume,
		SetSize:     v.SetSize,
		CurrentSets: v.CurrentSets,
		Threshold:   v.Threshold,
	}
}

// CreateProductRequest represents the request body for creating a product
type CreateProductRequest struct {
	Name     string           `json:"name" validate:"required,notblank,max=255"`
	Color    string           `json:"color" validate:"max=255"`
	Variants []VariantRequest `json:"variants" validate:"required,min=1,dive"`
}

// UpdateProductRequest represents the request body for updating a product
type UpdateProductRequest struct {
	Name  *string `json:"name,omitempty" validate:"omitempty,notblank,max=255"`
	Color *string `json:"color,omitempty" validate:"omitempty,max=255"`
}

// UpdateVariantRequest represents a partial variant update
type UpdateVariantRequest struct {
	Volume      *string `json:"volume,omitempty" validate:"omitempty,min=1,max=50"`
	SetSize     *int    `json:"setSize,omitempty" validate:"omitempty,gt=0"`
	CurrentSets *int    `json:"currentSets,omitempty" validate:"omitempty,gte=0"`
	Threshold   *int    `json:"threshold,omitempty" validate:"omitempty,gte=0"`
}

// UpdateThresholdRequest represents the request body for changing a threshold
type UpdateThresholdRequest struct {
	Threshold *int `json:"threshold" validate:"required,gte=0"`
}

// List handles GET /api/v1/products
// @Summary List all products
// @Description Get every product with its variants in catalog order
// @Tags Products
// @Produce json
// @Success 200 {object} map[string]interface{} "List of products"
// @Router /products [get]
func (h *ProductHandler) List(w http.ResponseWriter, r *http.Request) {
	response.Success(w, h.store.Products())
}

// GetByID handles GET /api/v1/products/{id}
// @Summary Get a product by ID
// @Tags Products
// @Produce json
// @Param id path string true "Product ID (slug)"
// @Success 200 {object} map[string]interface{} "Product details"
// @Failure 404 {object} map[string]string "Product not found"
// @Router /products/{id} [get]
func (h *ProductHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	id, err := request.GetPathParam(r, "id")
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid product ID")
		return
	}

	product, ok := h.store.Product(id)
	if !ok {
		response.Error(w, http.StatusNotFound, "Product not found")
		return
	}

	response.Success(w, product)
}

// Create handles POST /api/v1/products
// @Summary Create a new product
// @Description Create a product with at least one variant. The ID is derived from the name.
// @Tags Products
// @Accept json
// @Produce json
// @Param product body CreateProductRequest true "Product details"
// @Success 201 {object} map[string]interface{} "Product created successfully"
// @Failure 400 {object} map[string]string "Invalid request body"
// @Failure 409 {object} map[string]string "Product already exists"
// @Router /products [post]
func (h *ProductHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req CreateProductRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	id := domain.Slug(req.Name)
	if id == "" {
		response.ValidationError(w, []string{"name: notblank"})
		return
	}
	if _, exists := h.store.Product(id); exists {
		h.handleError(w, fmt.Errorf("product %q: %w", id, domain.ErrAlreadyExists))
		return
	}

	variants := make([]domain.ProductVariant, 0, len(req.Variants))
	seen := make(map[string]bool, len(req.Variants))
	for _, v := range req.Variants {
		if seen[v.Volume] {
			writeError(w, h.logger, domain.ErrDuplicateVariant, "")
			return
		}
		seen[v.Volume] = true
		variants = append(variants, v.toDomain())
	}

	product, err := h.store.AddNewProduct(r.Context(), domain.Product{
		ID:       id,
		Name:     req.Name,
		Color:    req.Color,
		Variants: variants,
	})
	if err != nil {
		h.handleError(w, err)
		return
	}

	response.Created(w, product)
}

// Update handles PUT /api/v1/products/{id}
// @Summary Update a product
// @Description Change the name or color of a product. History keeps the old name.
// @Tags Products
// @Accept json
// @Produce json
// @Param id path string true "Product ID (slug)"
// @Param product body UpdateProductRequest true "Fields to change"
// @Success 200 {object} map[string]interface{} "Product updated successfully"
// @Failure 400 {object} map[string]string "Invalid request"
// @Failure 404 {object} map[string]string "Product not found"
// @Router /products/{id} [put]
func (h *ProductHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := request.GetPathParam(r, "id")
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid product ID")
		return
	}

	var req UpdateProductRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	if err := h.store.UpdateProduct(r.Context(), id, domain.ProductUpdate{Name: req.Name, Color: req.Color}); err != nil {
		h.handleError(w, err)
		return
	}

	product, _ := h.store.Product(id)
	response.Success(w, product)
}

// Delete handles DELETE /api/v1/products/{id}
// @Summary Delete a product
// @Description Remove a product and all its variants. Sales and deliveries are kept.
// @Tags Products
// @Param id path string true "Product ID (slug)"
// @Success 204 "Product deleted successfully"
// @Failure 404 {object} map[string]string "Product not found"
// @Router /products/{id} [delete]
func (h *ProductHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := request.GetPathParam(r, "id")
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid product ID")
		return
	}

	if err := h.store.DeleteProduct(r.Context(), id); err != nil {
		h.handleError(w, err)
		return
	}

	response.NoContent(w)
}

// AddVariant handles POST /api/v1/products/{id}/variants
// @Summary Add a variant
// @Tags Variants
// @Accept json
// @Produce json
// @Param id path string true "Product ID (slug)"
// @Param variant body VariantRequest true "Variant details"
// @Success 201 {object} map[string]interface{} "Variant created"
// @Failure 404 {object} map[string]string "Product not found"
// @Failure 409 {object} map[string]string "Volume already exists"
// @Router /products/{id}/variants [post]
func (h *ProductHandler) AddVariant(w http.ResponseWriter, r *http.Request) {
	id, err := request.GetPathParam(r, "id")
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid product ID")
		return
	}

	var req VariantRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	if err := h.store.AddNewVariant(r.Context(), id, req.toDomain()); err != nil {
		h.handleError(w, err)
		return
	}

	response.Created(w, req.toDomain())
}

// GetVariant handles GET /api/v1/products/{id}/variants/{volume}
// @Summary Get a variant
// @Tags Variants
// @Produce json
// @Param id path string true "Product ID (slug)"
// @Param volume path string true "Variant volume"
// @Success 200 {object} map[string]interface{} "Product and variant"
// @Failure 404 {object} map[string]string "Variant not found"
// @Router /products/{id}/variants/{volume} [get]
func (h *ProductHandler) GetVariant(w http.ResponseWriter, r *http.Request) {
	id, volume, ok := variantParams(w, r)
	if !ok {
		return
	}

	ref, found := h.store.GetProductVariant(id, volume)
	if !found {
		response.Error(w, http.StatusNotFound, "Variant not found")
		return
	}

	response.Success(w, map[string]any{
		"product": ref.Product,
		"variant": ref.Variant,
		"level":   ref.Variant.Level(),
		"bottles": ref.Variant.Bottles(),
	})
}

// UpdateVariant handles PATCH /api/v1/products/{id}/variants/{volume}
// @Summary Update a variant
// @Description Merge volume, set size, stock or threshold changes into a variant
// @Tags Variants
// @Accept json
// @Produce json
// @Param id path string true "Product ID (slug)"
// @Param volume path string true "Variant volume"
// @Param variant body UpdateVariantRequest true "Fields to change"
// @Success 200 {object} map[string]interface{} "Variant updated"
// @Failure 404 {object} map[string]string "Variant not found"
// @Failure 409 {object} map[string]string "Volume already exists"
// @Router /products/{id}/variants/{volume} [patch]
func (h *ProductHandler) UpdateVariant(w http.ResponseWriter, r *http.Request) {
	id, volume, ok := variantParams(w, r)
	if !ok {
		return
	}

	var req UpdateVariantRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	err := h.store.UpdateVariant(r.Context(), id, volume, domain.VariantUpdate{
		Volume:      req.Volume,
		SetSize:     req.SetSize,
		CurrentSets: req.CurrentSets,
		Threshold:   req.Threshold,
	})
	if err != nil {
		h.handleError(w, err)
		return
	}

	if req.Volume != nil {
		volume = *req.Volume
	}
	ref, _ := h.store.GetProductVariant(id, volume)
	response.Success(w, ref.Variant)
}

// UpdateThreshold handles PUT /api/v1/products/{id}/variants/{volume}/threshold
// @Summary Set the low stock threshold of a variant
// @Tags Variants
// @Accept json
// @Produce json
// @Param id path string true "Product ID (slug)"
// @Param volume path string true "Variant volume"
// @Param threshold body UpdateThresholdRequest true "New threshold in sets"
// @Success 200 {object} map[string]interface{} "Threshold updated"
// @Failure 404 {object} map[string]string "Variant not found"
// @Router /products/{id}/variants/{volume}/threshold [put]
func (h *ProductHandler) UpdateThreshold(w http.ResponseWriter, r *http.Request) {
	id, volume, ok := variantParams(w, r)
	if !ok {
		return
	}

	var req UpdateThresholdRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	if err := h.store.UpdateThreshold(r.Context(), id, volume, *req.Threshold); err != nil {
		h.handleError(w, err)
		return
	}

	ref, _ := h.store.GetProductVariant(id, volume)
	response.Success(w, ref.Variant)
}

// DeleteVariant handles DELETE /api/v1/products/{id}/variants/{volume}
// @Summary Delete a variant
// @Tags Variants
// @Param id path string true "Product ID (slug)"
// @Param volume path string true "Variant volume"
// @Success 204 "Variant deleted"
// @Failure 404 {object} map[string]string "Variant not found"
// @Router /products/{id}/variants/{volume} [delete]
func (h *ProductHandler) DeleteVariant(w http.ResponseWriter, r *http.Request) {
	id, volume, ok := variantParams(w, r)
	if !ok {
		return
	}

	if err := h.store.DeleteVariant(r.Context(), id, volume); err != nil {
		h.handleError(w, err)
		return
	}

	response.NoContent(w)
}

func variantParams(w http.ResponseWriter, r *http.Request) (id, volume string, ok bool) {
	id, err := request.GetPathParam(r, "id")
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid product ID")
		return "", "", false
	}
	volume, err = request.GetPathParam(r, "volume")
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid volume")
		return "", "", false
	}
	return id, volume, true
}

// handleError handles store errors and returns appropriate HTTP responses
func (h *ProductHandler) handleError(w http.ResponseWriter, err error) {
	writeError(w, h.logger, err, "Product or variant not found")
}

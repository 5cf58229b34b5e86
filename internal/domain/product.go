package domain

import (
	"regexp"
	"strings"
	"time"
)

// Product is a beverage brand carried by the distributor
type Product struct {
	ID          string           `json:"id"`
	Name        string           `json:"name" validate:"required,min=1,max=255"`
	Color       string           `json:"color"`
	Variants    []ProductVariant `json:"variants" validate:"dive"`
	LastUpdated time.Time        `json:"lastUpdated"`
}

// ProductVariant is one packaging size of a product with its own stock level
type ProductVariant struct {
	Volume      string `json:"volume" validate:"required,min=1,max=50"`
	SetSize     int    `json:"setSize" validate:"required,gt=0"`
	CurrentSets int    `json:"currentSets" validate:"gte=0"`
	Threshold   int    `json:"threshold" validate:"gte=0"`
}

// ProductUpdate carries the mutable presentation fields of a product.
// Nil fields are left untouched.
type ProductUpdate struct {
	Name  *string `json:"name,omitempty"`
	Color *string `json:"color,omitempty"`
}

// VariantUpdate is a partial variant update. Nil fields are left untouched.
type VariantUpdate struct {
	Volume      *string `json:"volume,omitempty"`
	SetSize     *int    `json:"setSize,omitempty"`
	CurrentSets *int    `json:"currentSets,omitempty"`
	Threshold   *int    `json:"threshold,omitempty"`
}

// VariantRef pairs a variant with the product that owns it
type VariantRef struct {
	Product Product        `json:"product"`
	Variant ProductVariant `json:"variant"`
}

// InventorySummary holds aggregate counts over the whole catalog
type InventorySummary struct {
	TotalProducts      int `json:"totalProducts"`
	TotalVariants      int `json:"totalVariants"`
	TotalSets          int `json:"totalSets"`
	LowStockCount      int `json:"lowStockCount"`
	CriticalStockCount int `json:"criticalStockCount"`
}

// Variant returns the variant with the given volume
func (p *Product) Variant(volume string) (ProductVariant, bool) {
	for _, v := range p.Variants {
		if v.Volume == volume {
			return v, true
		}
	}
	return ProductVariant{}, false
}

// HasVariant reports whether the product has a variant with the given volume
func (p *Product) HasVariant(volume string) bool {
	_, ok := p.Variant(volume)
	return ok
}

// Clone returns a copy that shares no variant storage with p
func (p Product) Clone() Product {
	variants := make([]ProductVariant, len(p.Variants))
	copy(variants, p.Variants)
	p.Variants = variants
	return p
}

var whitespace = regexp.MustCompile(`\s+`)

// Slug derives a product id from its display name: lower case, runs of
// whitespace replaced by a single dash.
func Slug(name string) string {
	return whitespace.ReplaceAllString(strings.ToLower(strings.TrimSpace(name)), "-")
}

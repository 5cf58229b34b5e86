package inventory

import (
	"slices"
	"sort"
	"strings"
	"time"

	"github.com/Pesokrava/beverage_stock/internal/domain"
)

// recentSalesLimit caps GetRecentSales
const recentSalesLimit = 10

func (s *Store) snapshot() *state {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.cur
}

func cloneProducts(products []domain.Product) []domain.Product {
	out := make([]domain.Product, len(products))
	for i, p := range products {
		out[i] = p.Clone()
	}
	return out
}

func cloneSales(sales []domain.Sale) []domain.Sale {
	out := make([]domain.Sale, len(sales))
	for i, sale := range sales {
		out[i] = sale.Clone()
	}
	return out
}

// Products returns the catalog in insertion order
func (s *Store) Products() []domain.Product {
	return cloneProducts(s.snapshot().products)
}

// Product returns one product by id
func (s *Store) Product(productID string) (domain.Product, bool) {
	st := s.snapshot()
	idx := indexOfProduct(st.products, productID)
	if idx < 0 {
		return domain.Product{}, false
	}
	return st.products[idx].Clone(), true
}

// Sales returns every recorded sale, oldest first
func (s *Store) Sales() []domain.Sale {
	return cloneSales(s.snapshot().sales)
}

// IncomingHistory returns every recorded delivery, oldest first
func (s *Store) IncomingHistory() []domain.IncomingEntry {
	return slices.Clone(s.snapshot().incoming)
}

// GetProductVariant returns the product and variant for an id and volume
func (s *Store) GetProductVariant(productID, volume string) (domain.VariantRef, bool) {
	product, ok := s.Product(productID)
	if !ok {
		return domain.VariantRef{}, false
	}
	variant, ok := product.Variant(volume)
	if !ok {
		return domain.VariantRef{}, false
	}
	return domain.VariantRef{Product: product, Variant: variant}, true
}

func (s *Store) variantsWhere(st *state, keep func(domain.ProductVariant) bool) []domain.VariantRef {
	refs := []domain.VariantRef{}
	for _, p := range st.products {
		for _, v := range p.Variants {
			if keep(v) {
				refs = append(refs, domain.VariantRef{Product: p.Clone(), Variant: v})
			}
		}
	}
	return refs
}

// GetLowStockVariants returns variants with 0 < currentSets <= threshold
// in product-then-variant order
func (s *Store) GetLowStockVariants() []domain.VariantRef {
	return s.variantsWhere(s.snapshot(), domain.ProductVariant.IsLow)
}

// GetCriticalStockVariants returns variants with no sets on hand
func (s *Store) GetCriticalStockVariants() []domain.VariantRef {
	return s.variantsWhere(s.snapshot(), domain.ProductVariant.IsCritical)
}

// GetTotalInventoryValue aggregates catalog counts over the current snapshot
func (s *Store) GetTotalInventoryValue() domain.InventorySummary {
	st := s.snapshot()

	summary := domain.InventorySummary{TotalProducts: len(st.products)}
	for _, p := range st.products {
		summary.TotalVariants += len(p.Variants)
		for _, v := range p.Variants {
			summary.TotalSets += v.CurrentSets
			switch v.Level() {
			case domain.StockLow:
				summary.LowStockCount++
			case domain.StockCritical:
				summary.CriticalStockCount++
			}
		}
	}
	return summary
}

// GetTodaysSales returns sales recorded since local midnight
func (s *Store) GetTodaysSales() []domain.Sale {
	now := s.now()
	midnight := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	today := []domain.Sale{}
	for _, sale := range s.snapshot().sales {
		if !sale.Timestamp.Before(midnight) {
			today = append(today, sale.Clone())
		}
	}
	return today
}

// TodaysRevenue sums the total amount of today's sales
func (s *Store) TodaysRevenue() float64 {
	var total float64
	for _, sale := range s.GetTodaysSales() {
		total += sale.TotalAmount
	}
	return total
}

// GetRecentSales returns up to ten sales, newest first
func (s *Store) GetRecentSales() []domain.Sale {
	sales := s.snapshot().sales
	start := max(0, len(sales)-recentSalesLimit)

	recent := cloneSales(sales[start:])
	slices.Reverse(recent)
	return recent
}

// Alert severities and sort orders accepted by Alerts
const (
	SeverityAll      = "all"
	SeverityCritical = "critical"
	SeverityLow      = "low"

	SortByUrgency = "urgency"
	SortByProduct = "product"
	SortByStock   = "stock"
)

// AlertFilter narrows the alert list
type AlertFilter struct {
	Severity string
	Search   string
	SortBy   string
}

// Alerts returns critical then low variants, filtered and sorted
func (s *Store) Alerts(filter AlertFilter) []domain.VariantRef {
	st := s.snapshot()

	var alerts []domain.VariantRef
	if filter.Severity != SeverityLow {
		alerts = append(alerts, s.variantsWhere(st, domain.ProductVariant.IsCritical)...)
	}
	if filter.Severity != SeverityCritical {
		alerts = append(alerts, s.variantsWhere(st, domain.ProductVariant.IsLow)...)
	}

	if term := strings.ToLower(strings.TrimSpace(filter.Search)); term != "" {
		alerts = slices.DeleteFunc(alerts, func(a domain.VariantRef) bool {
			return !strings.Contains(strings.ToLower(a.Product.Name), term) &&
				!strings.Contains(strings.ToLower(a.Variant.Volume), term)
		})
	}

	switch filter.SortBy {
	case SortByProduct:
		sort.SliceStable(alerts, func(i, j int) bool {
			return alerts[i].Product.Name < alerts[j].Product.Name
		})
	case SortByStock:
		sort.SliceStable(alerts, func(i, j int) bool {
			return alerts[i].Variant.CurrentSets < alerts[j].Variant.CurrentSets
		})
	case SortByUrgency, "":
		sort.SliceStable(alerts, func(i, j int) bool {
			ci, cj := alerts[i].Variant.IsCritical(), alerts[j].Variant.IsCritical()
			if ci != cj {
				return ci
			}
			return alerts[i].Variant.CurrentSets < alerts[j].Variant.CurrentSets
		})
	}

	if alerts == nil {
		alerts = []domain.VariantRef{}
	}
	return alerts
}

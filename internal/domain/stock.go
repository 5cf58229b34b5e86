package domain

// StockLevel classifies a variant's stock against its threshold
type StockLevel string

const (
	StockCritical StockLevel = "critical"
	StockLow      StockLevel = "low"
	StockHealthy  StockLevel = "healthy"
)

// Level returns the stock classification of the variant.
// Zero sets is critical, never low.
func (v ProductVariant) Level() StockLevel {
	switch {
	case v.CurrentSets == 0:
		return StockCritical
	case v.CurrentSets <= v.Threshold:
		return StockLow
	default:
		return StockHealthy
	}
}

// IsCritical reports whether the variant is out of stock
func (v ProductVariant) IsCritical() bool {
	return v.Level() == StockCritical
}

// IsLow reports whether the variant is in stock but at or below its threshold
func (v ProductVariant) IsLow() bool {
	return v.Level() == StockLow
}

// Bottles returns the number of bottles on hand
func (v ProductVariant) Bottles() int {
	return v.CurrentSets * v.SetSize
}

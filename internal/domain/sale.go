package domain

import "time"

// Sale is a recorded transaction that depletes stock. Items carry a copy of
// the product and variant data at sale time so later catalog edits do not
// rewrite history.
type Sale struct {
	ID              string     `json:"id"`
	CustomerName    string     `json:"customerName"`
	CustomerAddress string     `json:"customerAddress"`
	CustomerPhone   string     `json:"customerPhone"`
	Items           []SaleItem `json:"items"`
	TotalAmount     float64    `json:"totalAmount"`
	Notes           string     `json:"notes,omitempty"`
	Timestamp       time.Time  `json:"timestamp"`
}

// SaleItem is one line of a sale
type SaleItem struct {
	ProductID   string  `json:"productId"`
	ProductName string  `json:"productName"`
	Volume      string  `json:"volume"`
	SetSize     int     `json:"setSize"`
	SetsSold    int     `json:"setsSold"`
	PricePerSet float64 `json:"pricePerSet"`
	TotalPrice  float64 `json:"totalPrice"`
}

// Clone returns a copy that shares no item storage with s
func (s Sale) Clone() Sale {
	items := make([]SaleItem, len(s.Items))
	copy(items, s.Items)
	s.Items = items
	return s
}

// IncomingEntry is a recorded delivery that replenishes one variant
type IncomingEntry struct {
	ID           string    `json:"id"`
	ProductID    string    `json:"productId"`
	ProductName  string    `json:"productName"`
	Volume       string    `json:"volume"`
	SetSize      int       `json:"setSize"`
	SetsReceived int       `json:"setsReceived"`
	Notes        string    `json:"notes,omitempty"`
	Timestamp    time.Time `json:"timestamp"`
}

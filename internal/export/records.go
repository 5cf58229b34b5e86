// Package export turns sales and deliveries into activity records and renders
// them as a spreadsheet.
package export

import (
	"cmp"
	"errors"
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/Pesokrava/beverage_stock/internal/domain"
)

// ErrNoData is returned when a range selects no records
var ErrNoData = errors.New("No records found for the selected period")

// ErrInvalidRange is returned by ParseRange for an unknown range name
var ErrInvalidRange = errors.New("invalid export range")

const (
	dateLayout = "Jan 2, 2006"
	timeLayout = "15:04"
)

// RecordType tells sale rows from delivery rows
type RecordType string

const (
	TypeSale     RecordType = "Sale"
	TypeIncoming RecordType = "Incoming"
)

// Record is one row of the activity log
type Record struct {
	ID           string     `json:"id"`
	Timestamp    time.Time  `json:"timestamp"`
	Date         string     `json:"date"`
	Time         string     `json:"time"`
	Type         RecordType `json:"type"`
	ProductName  string     `json:"productName"`
	Volume       string     `json:"volume"`
	Sets         int        `json:"sets"`
	Bottles      int        `json:"bottles"`
	CustomerName string     `json:"customerName,omitempty"`
	Notes        string     `json:"notes,omitempty"`
	Amount       *float64   `json:"amount,omitempty"`
}

// BuildRecords merges sales and deliveries into one log, newest first.
// A sale with several items becomes a single row.
func BuildRecords(sales []domain.Sale, incoming []domain.IncomingEntry) []Record {
	records := make([]Record, 0, len(sales)+len(incoming))

	for _, sale := range sales {
		products := make([]string, len(sale.Items))
		volumes := make([]string, len(sale.Items))
		var sets, bottles int
		for i, item := range sale.Items {
			products[i] = item.ProductName + " " + item.Volume
			volumes[i] = item.Volume
			sets += item.SetsSold
			bottles += item.SetsSold * item.SetSize
		}

		amount := sale.TotalAmount
		records = append(records, Record{
			ID:           "sale-" + sale.ID,
			Timestamp:    sale.Timestamp,
			Date:         sale.Timestamp.Format(dateLayout),
			Time:         sale.Timestamp.Format(timeLayout),
			Type:         TypeSale,
			ProductName:  strings.Join(products, ", "),
			Volume:       strings.Join(volumes, ", "),
			Sets:         sets,
			Bottles:      bottles,
			CustomerName: sale.CustomerName,
			Notes:        sale.Notes,
			Amount:       &amount,
		})
	}

	for _, entry := range incoming {
		records = append(records, Record{
			ID:          "incoming-" + entry.ID,
			Timestamp:   entry.Timestamp,
			Date:        entry.Timestamp.Format(dateLayout),
			Time:        entry.Timestamp.Format(timeLayout),
			Type:        TypeIncoming,
			ProductName: entry.ProductName,
			Volume:      entry.Volume,
			Sets:        entry.SetsReceived,
			Bottles:     entry.SetsReceived * entry.SetSize,
			Notes:       entry.Notes,
		})
	}

	slices.SortStableFunc(records, func(a, b Record) int {
		return b.Timestamp.Compare(a.Timestamp)
	})
	return records
}

// Range selects the period an export covers
type Range string

const (
	RangeToday Range = "today"
	RangeMonth Range = "month"
	RangeAll   Range = "all"
)

// ParseRange validates a range name
func ParseRange(s string) (Range, error) {
	switch r := Range(strings.ToLower(s)); r {
	case RangeToday, RangeMonth, RangeAll:
		return r, nil
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidRange, s)
}

// Filter keeps the records inside the range, judged in now's time zone
func Filter(records []Record, r Range, now time.Time) []Record {
	if r == RangeAll {
		return slices.Clone(records)
	}

	out := []Record{}
	for _, rec := range records {
		ts := rec.Timestamp.In(now.Location())
		sameMonth := ts.Year() == now.Year() && ts.Month() == now.Month()
		if (r == RangeMonth && sameMonth) || (r == RangeToday && sameMonth && ts.Day() == now.Day()) {
			out = append(out, rec)
		}
	}
	return out
}

// Filename returns the download name for a range
func Filename(prefix string, r Range, now time.Time) string {
	switch r {
	case RangeToday:
		return fmt.Sprintf("%s-today-%s.xlsx", prefix, now.Format("2006-01-02"))
	case RangeMonth:
		return fmt.Sprintf("%s-month-%s.xlsx", prefix, now.Format("2006-01"))
	default:
		return fmt.Sprintf("%s-all-activity-%s.xlsx", prefix, now.Format("2006-01-02"))
	}
}

// Sort fields accepted by Preview
const (
	SortDate     = "date"
	SortType     = "type"
	SortProduct  = "product"
	SortVolume   = "volume"
	SortQuantity = "quantity"
)

// PreviewQuery narrows and orders the activity preview
type PreviewQuery struct {
	Search    string
	SortField string
	Ascending bool
}

// Preview filters records by a case-insensitive search over product, volume,
// type and customer, then sorts them. The default order is newest first.
func Preview(records []Record, q PreviewQuery) []Record {
	out := slices.Clone(records)

	if term := strings.ToLower(strings.TrimSpace(q.Search)); term != "" {
		out = slices.DeleteFunc(out, func(r Record) bool {
			return !strings.Contains(strings.ToLower(r.ProductName), term) &&
				!strings.Contains(strings.ToLower(r.Volume), term) &&
				!strings.Contains(strings.ToLower(string(r.Type)), term) &&
				!strings.Contains(strings.ToLower(r.CustomerName), term)
		})
	}

	var compare func(a, b Record) int
	switch q.SortField {
	case SortType:
		compare = func(a, b Record) int { return compareFold(string(a.Type), string(b.Type)) }
	case SortProduct:
		compare = func(a, b Record) int { return compareFold(a.ProductName, b.ProductName) }
	case SortVolume:
		compare = func(a, b Record) int { return compareFold(a.Volume, b.Volume) }
	case SortQuantity:
		compare = func(a, b Record) int { return cmp.Compare(a.Sets, b.Sets) }
	default:
		compare = func(a, b Record) int { return a.Timestamp.Compare(b.Timestamp) }
	}

	slices.SortStableFunc(out, func(a, b Record) int {
		if q.Ascending {
			return compare(a, b)
		}
		return compare(b, a)
	})
	return out
}

func compareFold(a, b string) int {
	return strings.Compare(strings.ToLower(a), strings.ToLower(b))
}

// Summary totals a set of records
type Summary struct {
	Records      int     `json:"records"`
	Sales        int     `json:"sales"`
	Incoming     int     `json:"incoming"`
	TotalSets    int     `json:"totalSets"`
	TotalBottles int     `json:"totalBottles"`
	TotalRevenue float64 `json:"totalRevenue"`
}

// Summarize counts sales and deliveries and sums sets, bottles and revenue
func Summarize(records []Record) Summary {
	s := Summary{Records: len(records)}
	for _, r := range records {
		switch r.Type {
		case TypeSale:
			s.Sales++
			if r.Amount != nil {
				s.TotalRevenue += *r.Amount
			}
		case TypeIncoming:
			s.Incoming++
		}
		s.TotalSets += r.Sets
		s.TotalBottles += r.Bottles
	}
	return s
}

package export

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"
)

// SheetName is the worksheet the activity log is written to
const SheetName = "Activity Data"

// ContentType is the MIME type of the workbook written by WriteXLSX
const ContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

type column struct {
	header string
	width  float64
	value  func(Record) any
}

var columns = []column{
	{"Date", 12, func(r Record) any { return r.Date }},
	{"Time", 8, func(r Record) any { return r.Time }},
	{"Type", 10, func(r Record) any { return string(r.Type) }},
	{"Product", 25, func(r Record) any { return r.ProductName }},
	{"Volume", 10, func(r Record) any { return r.Volume }},
	{"Sets", 8, func(r Record) any { return r.Sets }},
	{"Bottles", 10, func(r Record) any { return r.Bottles }},
	{"Customer", 20, func(r Record) any { return r.CustomerName }},
	{"Notes", 30, func(r Record) any { return r.Notes }},
	// A zero amount is left blank like a missing one
	{"Amount", 12, func(r Record) any {
		if r.Amount == nil || *r.Amount == 0 {
			return ""
		}
		return *r.Amount
	}},
}

// WriteXLSX renders records as a single-sheet workbook
func WriteXLSX(w io.Writer, records []Record) error {
	if len(records) == 0 {
		return ErrNoData
	}

	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName(f.GetSheetName(0), SheetName); err != nil {
		return fmt.Errorf("failed to name sheet: %w", err)
	}

	header := make([]any, len(columns))
	for i, col := range columns {
		header[i] = col.header
		name, err := excelize.ColumnNumberToName(i + 1)
		if err != nil {
			return err
		}
		if err := f.SetColWidth(SheetName, name, name, col.width); err != nil {
			return fmt.Errorf("failed to set width of column %s: %w", col.header, err)
		}
	}
	if err := f.SetSheetRow(SheetName, "A1", &header); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}

	for i, rec := range records {
		row := make([]any, len(columns))
		for j, col := range columns {
			row[j] = col.value(rec)
		}

		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(SheetName, cell, &row); err != nil {
			return fmt.Errorf("failed to write row %d: %w", i+2, err)
		}
	}

	if err := f.Write(w); err != nil {
		return fmt.Errorf("failed to write workbook: %w", err)
	}
	return nil
}

// Package report renders the basket comparison as CSV, console text and
// optional PNG charts.
package report

import (
	"encoding/csv"
	"fmt"
	"io"

	"github.com/godilite/fredbasket/internal/service"
)

// WriteCSV writes one record per basket item in catalog order. The two value
// columns are named after the requested years; absent values become empty
// fields, never zeroes.
func WriteCSV(w io.Writer, rows []service.ComparisonRow, yearA, yearB int) error {
	cw := csv.NewWriter(w)

	header := []string{
		"item",
		"unit",
		fmt.Sprintf("year_%d", yearA),
		fmt.Sprintf("year_%d", yearB),
		"source",
	}
	if err := cw.Write(header); err != nil {
		return fmt.Errorf("write csv header: %w", err)
	}

	for _, r := range rows {
		record := []string{r.Item, r.Unit, formatAmount(r.Base), formatAmount(r.Compare), r.Source}
		if err := cw.Write(record); err != nil {
			return fmt.Errorf("write csv row %q: %w", r.Item, err)
		}
	}

	cw.Flush()
	return cw.Error()
}

func formatAmount(a service.Amount) string {
	if !a.Valid {
		return ""
	}
	return fmt.Sprintf("%.3f", a.Value)
}

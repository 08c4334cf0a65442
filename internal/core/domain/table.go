package domain

import (
	"bytes"
	"encoding/csv"
	"fmt"
)

// Table is tabular data recovered from a pipe-delimited answer block.
// The first row of the source block is treated as column headers.
type Table struct {
	// Headers are the column names.
	Headers []string

	// Rows are the data rows. Every row has len(Headers) cells.
	Rows [][]string
}

// CSV serialises the table as standard comma-separated text: header row
// first, one row per line, no index column.
func (t Table) CSV() (string, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if err := w.Write(t.Headers); err != nil {
		return "", fmt.Errorf("write header: %w", err)
	}
	for i, row := range t.Rows {
		if err := w.Write(row); err != nil {
			return "", fmt.Errorf("write row %d: %w", i, err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return "", fmt.Errorf("flush csv: %w", err)
	}
	return buf.String(), nil
}

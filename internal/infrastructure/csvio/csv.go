// Package csvio converts between delimited catalog files and catalog rows.
// The first CSV line supplies the field names; every following line
// becomes one row keyed by those names.
package csvio

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"io"
	"strings"

	"github.com/cataloglens/backend/internal/domain"
)

// ParseCatalog reads header-keyed CSV into catalog rows. A UTF-8 BOM is
// tolerated, quoting is lax, and short records are padded with empty
// values so every row carries every header key.
func ParseCatalog(r io.Reader) ([]domain.Row, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read catalog: %w", err)
	}
	data = bytes.TrimPrefix(data, []byte("\xef\xbb\xbf"))
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, fmt.Errorf("catalog file is empty")
	}

	cr := csv.NewReader(bytes.NewReader(data))
	cr.FieldsPerRecord = -1
	cr.LazyQuotes = true
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if err != nil {
		return nil, fmt.Errorf("read header: %w", err)
	}
	for i := range header {
		header[i] = strings.TrimSpace(header[i])
	}

	var rows []domain.Row
	for {
		record, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read row %d: %w", len(rows)+1, err)
		}

		row := domain.NewRow()
		for i, key := range header {
			if key == "" {
				continue
			}
			var value string
			if i < len(record) {
				value = strings.TrimSpace(record[i])
			}
			row.Set(key, value)
		}
		rows = append(rows, row)
	}

	if len(rows) == 0 {
		return nil, fmt.Errorf("catalog file has no data rows")
	}
	return rows, nil
}

// WriteCatalog serializes rows back to CSV. The column order is the
// first-seen key order across all rows, so enriched columns land after
// the original ones.
func WriteCatalog(w io.Writer, rows []domain.Row) error {
	if len(rows) == 0 {
		return fmt.Errorf("no rows to write")
	}

	var columns []string
	seen := make(map[string]bool)
	for _, row := range rows {
		for _, key := range row.Keys() {
			if !seen[key] {
				seen[key] = true
				columns = append(columns, key)
			}
		}
	}

	cw := csv.NewWriter(w)
	if err := cw.Write(columns); err != nil {
		return fmt.Errorf("write header: %w", err)
	}
	record := make([]string, len(columns))
	for i, row := range rows {
		for j, col := range columns {
			record[j] = row.Get(col)
		}
		if err := cw.Write(record); err != nil {
			return fmt.Errorf("write row %d: %w", i+1, err)
		}
	}
	cw.Flush()
	return cw.Error()
}

// Package csvsongs parses song-import CSV files into import rows.
// Pure function: reader in, rows out. No database dependencies.
package csvsongs

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"

	"github.com/tabline/tabline-backend/internal/service/songimport"
)

// Parse reads a song-import CSV with date, title and author columns.
// A header row is detected by its first cell and skipped. Rows may omit
// the author column. Fully empty rows are ignored.
func Parse(r io.Reader) ([]songimport.ImportRow, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1 // allow variable column count
	reader.TrimLeadingSpace = true

	var rows []songimport.ImportRow
	first := true

	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read row: %w", err)
		}

		if first {
			first = false
			if isHeader(record) {
				continue
			}
		}

		if isEmpty(record) {
			continue
		}

		row := songimport.ImportRow{Date: field(record, 0), Title: field(record, 1)}
		if len(record) > 2 {
			row.Author = field(record, 2)
		}
		rows = append(rows, row)
	}

	return rows, nil
}

// isHeader reports whether the record looks like a column header row.
func isHeader(record []string) bool {
	if len(record) == 0 {
		return false
	}
	switch strings.ToLower(strings.TrimSpace(record[0])) {
	case "date", "дата":
		return true
	}
	return false
}

func isEmpty(record []string) bool {
	for _, cell := range record {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}

func field(record []string, i int) string {
	if i >= len(record) {
		return ""
	}
	return strings.TrimSpace(record[i])
}

package parser

import (
	"encoding/csv"
	"fmt"
	"io"

	"github.com/aarabil/xlreport-go/pkg/xlreport/models"
)

// ReadCSV reads comma separated records into a Table.
// Without a header the columns are named by letter (A, B, ...).
func ReadCSV(r io.Reader, header bool) (*models.Table, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.LazyQuotes = true

	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read csv: %w", err)
	}

	table := &models.Table{}
	if len(records) == 0 {
		return table, nil
	}

	body := records
	if header {
		table.Columns = append([]string(nil), records[0]...)
		body = records[1:]
	}

	width := len(table.Columns)
	for _, rec := range body {
		row := make([]interface{}, len(rec))
		for i, field := range rec {
			if field != "" {
				row[i] = parseValue(field)
			}
		}
		if len(row) > width {
			width = len(row)
		}
		table.Rows = append(table.Rows, row)
	}

	if len(table.Columns) < width {
		table.Columns = append(table.Columns, columnNames(len(table.Columns)+1, width)...)
	}

	return table, nil
}

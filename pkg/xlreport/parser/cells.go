// Package parser reads tables, bounds and picture anchors out of workbooks.
package parser

import (
	"math"
	"strconv"

	"github.com/aarabil/xlreport-go/pkg/xlreport/models"
	"github.com/xuri/excelize/v2"
)

// ReadOptions configures ReadTable.
type ReadOptions struct {
	// Header treats the first row of the region as column labels.
	Header bool
	// Range restricts the region. If nil, the data bounds of the sheet are used.
	Range *models.Range
}

// ReadTable reads a region of a sheet into a Table.
// Empty cells become nil values; numeric cells become int64 or float64.
func ReadTable(f *excelize.File, sheetName string, opts ReadOptions) (*models.Table, error) {
	rows, err := f.GetRows(sheetName)
	if err != nil {
		return nil, err
	}

	var area models.Range
	if opts.Range != nil {
		area = clipToRows(*opts.Range, rows)
	} else {
		minRow, maxRow, minCol, maxCol := findDataBounds(rows)
		if minRow < 0 {
			return &models.Table{}, nil
		}
		area = models.Range{R1: minRow + 1, C1: minCol + 1, R2: maxRow + 1, C2: maxCol + 1}
	}
	if area.Rows() <= 0 || area.Cols() <= 0 {
		return &models.Table{}, nil
	}

	table := &models.Table{}
	first := area.R1
	if opts.Header {
		table.Columns = make([]string, area.Cols())
		for i := range table.Columns {
			table.Columns[i] = cellAt(rows, area.R1, area.C1+i)
		}
		first++
	} else {
		table.Columns = columnNames(area.C1, area.C2)
	}

	for r := first; r <= area.R2; r++ {
		row := make([]interface{}, area.Cols())
		for i := range row {
			if v := cellAt(rows, r, area.C1+i); v != "" {
				row[i] = parseValue(v)
			}
		}
		table.Rows = append(table.Rows, row)
	}

	return table, nil
}

// clipToRows limits area to the rows and columns present in a GetRows result.
func clipToRows(area models.Range, rows [][]string) models.Range {
	if area.R2 > len(rows) {
		area.R2 = len(rows)
	}
	width := 0
	for _, r := range rows {
		if len(r) > width {
			width = len(r)
		}
	}
	if area.C2 > width {
		area.C2 = width
	}
	return area
}

// cellAt returns the value at the 1-based (row, col) of a GetRows result.
func cellAt(rows [][]string, row, col int) string {
	if row < 1 || row > len(rows) {
		return ""
	}
	r := rows[row-1]
	if col < 1 || col > len(r) {
		return ""
	}
	return r[col-1]
}

// columnNames returns the column letters from first to last (1-based, inclusive).
func columnNames(first, last int) []string {
	var names []string
	for c := first; c <= last; c++ {
		name, err := excelize.ColumnNumberToName(c)
		if err != nil {
			name = strconv.Itoa(c)
		}
		names = append(names, name)
	}
	return names
}

// parseValue attempts to parse a string value as a number.
// Returns int64 for integers, float64 for decimals, or the original string.
// NaN and infinity tokens stay strings.
func parseValue(s string) interface{} {
	// Try integer first
	if i, err := strconv.ParseInt(s, 10, 64); err == nil {
		return i
	}
	// Try float
	if f, err := strconv.ParseFloat(s, 64); err == nil && !math.IsNaN(f) && !math.IsInf(f, 0) {
		return f
	}
	return s
}

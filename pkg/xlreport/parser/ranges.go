package parser

import (
	"fmt"
	"strings"

	"github.com/aarabil/xlreport-go/pkg/xlreport/models"
	"github.com/xuri/excelize/v2"
)

// ParseRange parses a reference such as "A1:D10", "$A$1:$D$10" or "'Sheet 1'!A1:B2".
// A single cell reference yields a one-cell range.
func ParseRange(ref string) (models.Range, error) {
	ref = stripSheet(strings.TrimSpace(ref))

	if !strings.Contains(ref, ":") {
		row, col, err := ParseCell(ref)
		if err != nil {
			return models.Range{}, err
		}
		return models.Range{R1: row, C1: col, R2: row, C2: col}, nil
	}

	area := parseRangeToArea(ref)
	if area == nil {
		return models.Range{}, fmt.Errorf("invalid range %q", ref)
	}
	return *area, nil
}

// ParseCell parses a cell reference such as "B3" or "$B$3" into 1-based row and column.
func ParseCell(ref string) (row, col int, err error) {
	ref = strings.ReplaceAll(stripSheet(strings.TrimSpace(ref)), "$", "")
	col, row, err = excelize.CellNameToCoordinates(ref)
	if err != nil {
		return 0, 0, fmt.Errorf("invalid cell %q: %w", ref, err)
	}
	return row, col, nil
}

// stripSheet removes a leading sheet qualifier.
func stripSheet(ref string) string {
	if idx := strings.LastIndex(ref, "!"); idx >= 0 {
		return ref[idx+1:]
	}
	return ref
}

// parseRangeToArea parses a range string like $A$1:$D$10.
// The corners are normalised so that R1 <= R2 and C1 <= C2.
func parseRangeToArea(rangeStr string) *models.Range {
	rangeStr = strings.ReplaceAll(rangeStr, "$", "")

	parts := strings.Split(rangeStr, ":")
	if len(parts) != 2 {
		return nil
	}

	startCol, startRow, err := excelize.CellNameToCoordinates(parts[0])
	if err != nil {
		return nil
	}

	endCol, endRow, err := excelize.CellNameToCoordinates(parts[1])
	if err != nil {
		return nil
	}

	if endRow < startRow {
		startRow, endRow = endRow, startRow
	}
	if endCol < startCol {
		startCol, endCol = endCol, startCol
	}

	return &models.Range{
		R1: startRow,
		C1: startCol,
		R2: endRow,
		C2: endCol,
	}
}

package parser

import (
	"github.com/aarabil/xlreport-go/pkg/xlreport/models"
	"github.com/xuri/excelize/v2"
)

// DataBounds returns the bounding box of non-empty cells in a sheet.
// The boolean is false when the sheet holds no values.
func DataBounds(f *excelize.File, sheetName string) (models.Range, bool, error) {
	rows, err := f.GetRows(sheetName)
	if err != nil {
		return models.Range{}, false, err
	}

	minRow, maxRow, minCol, maxCol := findDataBounds(rows)
	if minRow < 0 {
		return models.Range{}, false, nil
	}

	return models.Range{R1: minRow + 1, C1: minCol + 1, R2: maxRow + 1, C2: maxCol + 1}, true, nil
}

// findDataBounds finds the bounding box of non-empty cells (0-based, -1 when empty).
func findDataBounds(rows [][]string) (minRow, maxRow, minCol, maxCol int) {
	minRow, maxRow = -1, -1
	minCol, maxCol = -1, -1

	for rowIdx, row := range rows {
		for colIdx, cell := range row {
			if cell != "" {
				if minRow < 0 || rowIdx < minRow {
					minRow = rowIdx
				}
				if maxRow < 0 || rowIdx > maxRow {
					maxRow = rowIdx
				}
				if minCol < 0 || colIdx < minCol {
					minCol = colIdx
				}
				if maxCol < 0 || colIdx > maxCol {
					maxCol = colIdx
				}
			}
		}
	}

	return
}

package xlreport

import (
	"fmt"
	"math"
	"strings"
	"unicode/utf8"

	"github.com/mattn/go-runewidth"
	"github.com/xuri/excelize/v2"
)

// bestFitPadding is added to the measured width so text does not touch the cell border.
const bestFitPadding = 2

// ResizeColumns sets the width of every populated column of the active sheet.
// Columns without values keep their current width.
func (w *Writer) ResizeColumns(policy ResizePolicy) error {
	s, err := w.requireActive()
	if err != nil {
		return err
	}

	var measure func(string) float64
	switch policy {
	case BestFit:
		measure = bestFitWidth
	case ContentFit:
		measure = contentWidth
	default:
		return configError("unknown resize policy %q", policy)
	}

	rows, err := w.file.GetRows(s.name)
	if err != nil {
		return fmt.Errorf("read rows of sheet %q: %w", s.name, err)
	}

	for i, width := range columnWidths(rows, measure) {
		if width == 0 {
			continue
		}
		width = math.Min(width, excelize.MaxColumnWidth)
		name, err := excelize.ColumnNumberToName(i + 1)
		if err != nil {
			return err
		}
		if err := w.file.SetColWidth(s.name, name, name, width); err != nil {
			return fmt.Errorf("set width of column %s: %w", name, err)
		}
		s.widths[i+1] = width
	}

	w.logger.Debug("columns resized", "sheet", s.name, "policy", string(policy), "columns", len(s.widths))
	return nil
}

// columnWidths returns the largest measured value per column (0-based).
func columnWidths(rows [][]string, measure func(string) float64) []float64 {
	var widths []float64
	for _, row := range rows {
		for col, value := range row {
			for len(widths) <= col {
				widths = append(widths, 0)
			}
			if v := measure(value); v > widths[col] {
				widths[col] = v
			}
		}
	}
	return widths
}

// contentWidth is the character count of the value.
func contentWidth(value string) float64 {
	return float64(utf8.RuneCountInString(value))
}

// bestFitWidth is the display width of the widest line, wide runes counting double.
func bestFitWidth(value string) float64 {
	if value == "" {
		return 0
	}
	widest := 0
	for _, line := range strings.Split(value, "\n") {
		if w := runewidth.StringWidth(line); w > widest {
			widest = w
		}
	}
	return float64(widest) + bestFitPadding
}

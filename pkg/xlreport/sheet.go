package xlreport

import (
	"github.com/aarabil/xlreport-go/pkg/xlreport/models"
	"github.com/xuri/excelize/v2"
)

// Sheet is the bookkeeping handle of a worksheet owned by a Writer.
type Sheet struct {
	name   string
	maxRow int
	maxCol int
	widths map[int]float64
	images []models.Image
}

func newSheet(name string) *Sheet {
	return &Sheet{
		name:   name,
		widths: make(map[int]float64),
	}
}

// Name returns the sheet name.
func (s *Sheet) Name() string { return s.name }

// MaxRow returns the last populated row (1-based, 0 when empty).
func (s *Sheet) MaxRow() int { return s.maxRow }

// MaxCol returns the last populated column (1-based, 0 when empty).
func (s *Sheet) MaxCol() int { return s.maxCol }

// Empty reports whether nothing has been written to the sheet.
func (s *Sheet) Empty() bool { return s.maxRow == 0 && s.maxCol == 0 }

// ColWidth returns the width set by the last resize for a 1-based column.
func (s *Sheet) ColWidth(col int) (float64, bool) {
	w, ok := s.widths[col]
	return w, ok
}

// Images returns the pictures anchored on the sheet.
func (s *Sheet) Images() []models.Image {
	return append([]models.Image(nil), s.images...)
}

// Summary returns a serializable snapshot of the sheet.
func (s *Sheet) Summary() models.SheetSummary {
	sum := models.SheetSummary{
		Name:   s.name,
		MaxRow: s.maxRow,
		MaxCol: s.maxCol,
		Images: s.Images(),
	}
	if len(s.widths) > 0 {
		sum.Widths = make(map[string]float64, len(s.widths))
		for col, w := range s.widths {
			name, err := excelize.ColumnNumberToName(col)
			if err != nil {
				continue
			}
			sum.Widths[name] = w
		}
	}
	return sum
}

func (s *Sheet) extend(row, col int) {
	if row > s.maxRow {
		s.maxRow = row
	}
	if col > s.maxCol {
		s.maxCol = col
	}
}

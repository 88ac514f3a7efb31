package xlreport

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/aarabil/xlreport-go/pkg/xlreport/models"
	"github.com/aarabil/xlreport-go/pkg/xlreport/parser"
	"github.com/xuri/excelize/v2"
)

// Writer accumulates tables and chart images in a workbook and saves it on Close.
// A Writer is not safe for concurrent use.
type Writer struct {
	path    string
	file    *excelize.File
	sheets  map[string]*Sheet // keyed by lower-cased name
	active  *Sheet
	logger  *slog.Logger
	tempDir string
	closed  bool

	// placeholder is the library's default sheet, left out of SheetNames until the first
	// SelectSheet renames it.
	placeholder string
}

func newWriter(path string, f *excelize.File, opts Options) *Writer {
	w := &Writer{
		path:    path,
		file:    f,
		sheets:  make(map[string]*Sheet),
		logger:  opts.Logger,
		tempDir: opts.TempDir,
	}
	if w.logger == nil {
		w.logger = slog.Default()
	}
	if w.tempDir == "" {
		w.tempDir = os.TempDir()
	}
	return w
}

// Create starts a new workbook at path, creating the parent directory if needed.
// A placeholder file is written immediately so an aborted run still leaves a workbook behind.
//
// The library's default sheet is left out of SheetNames until the first SelectSheet
// renames it. A workbook closed without any SelectSheet still holds that default
// sheet, and it is listed once the file is reopened.
func Create(path string, opts Options) (*Writer, error) {
	if ext := filepath.Ext(path); !strings.EqualFold(ext, ".xlsx") {
		return nil, configError("unsupported workbook extension %q", ext)
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, NewIOError("mkdir", dir, err)
	}

	f := excelize.NewFile()
	w := newWriter(path, f, opts)
	w.placeholder = f.GetSheetName(0)

	if err := w.save(); err != nil {
		f.Close()
		return nil, err
	}

	w.logger.Debug("workbook created", "path", path)
	return w, nil
}

// Open loads an existing workbook for modification.
// Sheet bounds and picture anchors are rebuilt from the file.
func Open(path string, opts Options) (*Writer, error) {
	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, path)
		}
		return nil, NewIOError("stat", path, err)
	}

	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrFormat, path, err)
	}

	w := newWriter(path, f, opts)

	pictures, err := parser.ExtractPictures(path)
	if err != nil {
		w.logger.Warn("picture anchors unavailable", "path", path, "error", err)
	}

	for _, name := range f.GetSheetList() {
		s := newSheet(name)
		bounds, ok, err := parser.DataBounds(f, name)
		if err != nil {
			f.Close()
			return nil, fmt.Errorf("%w: sheet %q: %v", ErrFormat, name, err)
		}
		if ok {
			s.extend(bounds.R2, bounds.C2)
		}
		s.images = pictures[name]
		w.sheets[sheetKey(name)] = s
	}

	w.logger.Debug("workbook opened", "path", path, "sheets", len(w.sheets))
	return w, nil
}

// Path returns the file the workbook is saved to.
func (w *Writer) Path() string { return w.path }

// Active returns the selected sheet, or nil before the first SelectSheet.
func (w *Writer) Active() *Sheet { return w.active }

// SelectSheet makes name the active sheet, appending a new empty sheet when it does not exist.
func (w *Writer) SelectSheet(name string) error {
	if w.closed {
		return ErrClosed
	}

	if s, ok := w.sheets[sheetKey(name)]; ok {
		w.activate(s)
		return nil
	}

	if w.placeholder != "" {
		if err := w.file.SetSheetName(w.placeholder, name); err != nil {
			return configError("sheet name %q: %v", name, err)
		}
		w.placeholder = ""
	} else if _, err := w.file.NewSheet(name); err != nil {
		return configError("sheet name %q: %v", name, err)
	}

	s := newSheet(name)
	w.sheets[sheetKey(name)] = s
	w.activate(s)

	w.logger.Debug("sheet created", "sheet", name)
	return nil
}

func (w *Writer) activate(s *Sheet) {
	w.active = s
	if idx, err := w.file.GetSheetIndex(s.name); err == nil && idx >= 0 {
		w.file.SetActiveSheet(idx)
	}
}

// SheetNames returns the sheet names in tab order.
func (w *Writer) SheetNames() []string {
	var names []string
	for _, name := range w.file.GetSheetList() {
		if w.placeholder != "" && name == w.placeholder {
			continue
		}
		names = append(names, name)
	}
	return names
}

// Sheets returns the sheet handles keyed by name.
func (w *Writer) Sheets() map[string]*Sheet {
	result := make(map[string]*Sheet, len(w.sheets))
	for _, s := range w.sheets {
		result[s.name] = s
	}
	return result
}

// Summary returns the workbook bookkeeping in tab order.
func (w *Writer) Summary() models.WorkbookSummary {
	sum := models.WorkbookSummary{
		BookName: filepath.Base(w.path),
		Sheets:   []models.SheetSummary{},
	}
	if w.active != nil {
		sum.Active = w.active.name
	}
	for _, name := range w.SheetNames() {
		if s, ok := w.sheets[sheetKey(name)]; ok {
			sum.Sheets = append(sum.Sheets, s.Summary())
		}
	}
	return sum
}

// WriteTable writes a table into the active sheet.
// Parameters are validated before anything is written.
func (w *Writer) WriteTable(t *models.Table, opts TableOptions) error {
	s, err := w.requireActive()
	if err != nil {
		return err
	}
	if err := opts.validate(); err != nil {
		return err
	}
	if t == nil {
		return configError("nil table")
	}
	if len(t.Index) > 0 && len(t.Index) != len(t.Rows) {
		return configError("index has %d labels for %d rows", len(t.Index), len(t.Rows))
	}
	if len(t.Columns) > 0 {
		for i, row := range t.Rows {
			if len(row) > len(t.Columns) {
				return configError("row %d has %d values for %d columns", i, len(row), len(t.Columns))
			}
		}
	}

	grid := tableGrid(t, opts)
	if len(grid) == 0 {
		return nil
	}
	width := t.Width()
	if opts.Index {
		width++
	}
	if width == 0 {
		return nil
	}

	row, col := 1, 1
	switch opts.Position {
	case PositionRight:
		col = s.maxCol + 2
	case PositionBottom:
		row = s.maxRow + 2
	default:
		if opts.StartRow == 0 && opts.StartCol == 0 && !s.Empty() {
			return ErrRegionOccupied
		}
		if opts.StartRow > 0 {
			row = opts.StartRow
		}
		if opts.StartCol > 0 {
			col = opts.StartCol
		}
	}

	lastRow, lastCol := row+len(grid)-1, col+width-1
	if lastRow > excelize.TotalRows || lastCol > excelize.MaxColumns {
		return configError("table ending at row %d col %d exceeds the sheet limits", lastRow, lastCol)
	}

	for i := range grid {
		cell, err := excelize.CoordinatesToCellName(col, row+i)
		if err != nil {
			return configError("start cell: %v", err)
		}
		if err := w.file.SetSheetRow(s.name, cell, &grid[i]); err != nil {
			return fmt.Errorf("write row %d of sheet %q: %w", row+i, s.name, err)
		}
	}
	s.extend(lastRow, lastCol)

	start, _ := excelize.CoordinatesToCellName(col, row)
	w.logger.Debug("table written", "sheet", s.name, "cell", start, "rows", len(grid), "cols", width)
	return nil
}

// tableGrid lays out the header and body rows, with the index column first when requested.
func tableGrid(t *models.Table, opts TableOptions) [][]interface{} {
	var grid [][]interface{}

	if opts.ShouldWriteHeader() && len(t.Columns) > 0 {
		header := make([]interface{}, 0, len(t.Columns)+1)
		if opts.Index {
			header = append(header, t.IndexName)
		}
		for _, c := range t.Columns {
			header = append(header, c)
		}
		grid = append(grid, header)
	}

	for i, values := range t.Rows {
		row := make([]interface{}, 0, len(values)+1)
		if opts.Index {
			row = append(row, t.IndexLabel(i))
		}
		row = append(row, values...)
		grid = append(grid, row)
	}

	return grid
}

// Close saves the workbook to its path and releases it.
// Any further call on the writer returns ErrClosed.
func (w *Writer) Close() error {
	if w.closed {
		return ErrClosed
	}
	w.closed = true

	saveErr := w.save()
	closeErr := w.file.Close()
	if saveErr != nil {
		return saveErr
	}
	if closeErr != nil {
		return NewIOError("close", w.path, closeErr)
	}

	w.logger.Debug("workbook saved", "path", w.path, "sheets", len(w.sheets))
	return nil
}

// Discard releases the workbook without saving it.
// The file on disk keeps its last saved state.
func (w *Writer) Discard() error {
	if w.closed {
		return ErrClosed
	}
	w.closed = true
	if err := w.file.Close(); err != nil {
		return NewIOError("close", w.path, err)
	}
	return nil
}

// save writes the workbook to a sibling temporary file and renames it onto the path.
func (w *Writer) save() error {
	tmp, err := os.CreateTemp(filepath.Dir(w.path), ".xlreport-*.xlsx")
	if err != nil {
		return NewIOError("save", w.path, err)
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName)

	if err := w.file.Write(tmp); err != nil {
		tmp.Close()
		return NewIOError("save", w.path, err)
	}
	if err := tmp.Close(); err != nil {
		return NewIOError("save", w.path, err)
	}
	if err := os.Rename(tmpName, w.path); err != nil {
		return NewIOError("save", w.path, err)
	}
	return nil
}

func (w *Writer) requireActive() (*Sheet, error) {
	if w.closed {
		return nil, ErrClosed
	}
	if w.active == nil {
		return nil, ErrNoActiveSheet
	}
	return w.active, nil
}

func sheetKey(name string) string {
	return strings.ToLower(name)
}

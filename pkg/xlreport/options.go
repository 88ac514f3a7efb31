// Package xlreport writes tables and chart images into multi-sheet xlsx workbooks.
package xlreport

import (
	"io"
	"log/slog"
)

// Position selects where a table is written relative to existing content.
type Position string

const (
	// PositionNone writes at the top-left corner or at the explicit start cell.
	PositionNone Position = ""
	// PositionRight starts one empty column after the last populated column.
	PositionRight Position = "right"
	// PositionBottom starts one empty row after the last populated row.
	PositionBottom Position = "bottom"
)

// ResizePolicy selects how ResizeColumns computes widths.
type ResizePolicy string

const (
	// BestFit estimates widths from the display width of each column's values.
	BestFit ResizePolicy = "best-fit"
	// ContentFit sets each width to the character count of the column's longest value.
	ContentFit ResizePolicy = "content-fit"
)

// DefaultImageScale is the raster quality factor used when ImageOptions.Scale is zero.
const DefaultImageScale = 2.0

// Options configures a Writer.
type Options struct {
	// Logger receives debug records for each mutation. If nil, slog.Default() is used.
	Logger *slog.Logger
	// TempDir holds the temporary chart rasters. If empty, os.TempDir() is used.
	TempDir string
}

// DefaultOptions returns default writer options.
func DefaultOptions() Options {
	return Options{
		Logger: slog.Default(),
	}
}

// TableOptions configures WriteTable.
type TableOptions struct {
	// Position derives the start cell from existing content.
	// It cannot be combined with StartRow or StartCol.
	Position Position
	// StartRow is the explicit 1-based start row (0 means row 1).
	StartRow int
	// StartCol is the explicit 1-based start column (0 means column A).
	StartCol int
	// Index writes the row labels as the first column.
	Index bool
	// Header specifies whether to write the column labels.
	// If nil, defaults to true.
	Header *bool
}

// ShouldWriteHeader returns whether to write the header row.
func (o TableOptions) ShouldWriteHeader() bool {
	if o.Header != nil {
		return *o.Header
	}
	return true
}

func (o TableOptions) validate() error {
	switch o.Position {
	case PositionNone, PositionRight, PositionBottom:
	default:
		return configError("unknown position %q", o.Position)
	}
	if o.StartRow < 0 || o.StartCol < 0 {
		return configError("start cell must be positive, got row %d col %d", o.StartRow, o.StartCol)
	}
	if o.Position != PositionNone && (o.StartRow > 0 || o.StartCol > 0) {
		return configError("position %q cannot be combined with an explicit start cell", o.Position)
	}
	return nil
}

// ImageOptions configures AddImage.
type ImageOptions struct {
	// Cell is an explicit anchor cell such as "H2".
	Cell string
	// Column is a zero-based column offset; the image is anchored in row 1 of that column.
	// It cannot be combined with Cell.
	Column *int
	// Scale is the raster quality factor. If zero, DefaultImageScale is used.
	Scale float64
}

// ScaleOrDefault returns the scale to render with.
func (o ImageOptions) ScaleOrDefault() float64 {
	if o.Scale == 0 {
		return DefaultImageScale
	}
	return o.Scale
}

func (o ImageOptions) validate() error {
	if o.Cell != "" && o.Column != nil {
		return configError("cell anchor %q cannot be combined with a column offset", o.Cell)
	}
	if o.Column != nil && *o.Column < 0 {
		return configError("column offset must not be negative, got %d", *o.Column)
	}
	if o.Scale < 0 {
		return configError("scale must be positive, got %g", o.Scale)
	}
	return nil
}

// Renderer rasterizes a chart as PNG.
// The output must be scale times the chart's logical size.
type Renderer interface {
	Render(w io.Writer, scale float64) error
}

// RendererFunc adapts a function to the Renderer interface.
type RendererFunc func(w io.Writer, scale float64) error

// Render calls fn(w, scale).
func (fn RendererFunc) Render(w io.Writer, scale float64) error {
	return fn(w, scale)
}

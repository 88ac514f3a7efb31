package xlreport

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/aarabil/xlreport-go/pkg/xlreport/models"
	"github.com/aarabil/xlreport-go/pkg/xlreport/parser"
	"github.com/google/uuid"
	"github.com/xuri/excelize/v2"
)

// AddImage renders a chart and anchors it on the active sheet.
// Without an anchor the image goes to row 1, one empty column after the populated columns.
func (w *Writer) AddImage(r Renderer, opts ImageOptions) error {
	s, err := w.requireActive()
	if err != nil {
		return err
	}
	if err := opts.validate(); err != nil {
		return err
	}
	if r == nil {
		return configError("nil renderer")
	}

	cell, err := imageAnchor(s, opts)
	if err != nil {
		return err
	}

	scale := opts.ScaleOrDefault()
	if err := w.insertRendered(s.name, cell, r, scale); err != nil {
		return err
	}
	s.images = append(s.images, models.Image{Cell: cell, Scale: scale})

	w.logger.Debug("image added", "sheet", s.name, "cell", cell, "scale", scale)
	return nil
}

func imageAnchor(s *Sheet, opts ImageOptions) (string, error) {
	var row, col int
	switch {
	case opts.Cell != "":
		r, c, err := parser.ParseCell(opts.Cell)
		if err != nil {
			return "", configError("image anchor: %v", err)
		}
		row, col = r, c
	case opts.Column != nil:
		row, col = 1, *opts.Column+1
	default:
		row, col = 1, s.maxCol+2
	}

	cell, err := excelize.CoordinatesToCellName(col, row)
	if err != nil {
		return "", configError("image anchor: %v", err)
	}
	return cell, nil
}

// insertRendered rasterizes r into its own temporary file and embeds it.
// The file is removed on every path out of this function.
func (w *Writer) insertRendered(sheet, cell string, r Renderer, scale float64) error {
	name := filepath.Join(w.tempDir, "xlreport-chart-"+uuid.NewString()+".png")
	out, err := os.OpenFile(name, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o600)
	if err != nil {
		return NewIOError("render", name, err)
	}
	defer os.Remove(name)

	if err := r.Render(out, scale); err != nil {
		out.Close()
		return fmt.Errorf("render chart: %w", err)
	}
	if err := out.Close(); err != nil {
		return NewIOError("render", name, err)
	}

	err = w.file.AddPicture(sheet, cell, name, &excelize.GraphicOptions{
		ScaleX: 1 / scale,
		ScaleY: 1 / scale,
	})
	if err != nil {
		return fmt.Errorf("add picture at %s: %w", cell, err)
	}
	return nil
}

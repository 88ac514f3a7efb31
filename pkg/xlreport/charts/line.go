package charts

import (
	"fmt"
	"io"

	"github.com/aarabil/xlreport-go/pkg/xlreport/models"
	"github.com/wcharczuk/go-chart/v2"
)

// Line plots one or more series against shared X values.
type Line struct {
	Title  string
	Width  int
	Height int
	X      []float64
	Series []Series
}

// LineFromTable builds a line chart with x as the X column and one series per y column.
func LineFromTable(t *models.Table, x string, ys ...string) (*Line, error) {
	xs, err := numericColumn(t, x)
	if err != nil {
		return nil, err
	}
	l := &Line{X: xs}
	for _, y := range ys {
		values, err := numericColumn(t, y)
		if err != nil {
			return nil, err
		}
		l.Series = append(l.Series, Series{Name: y, Values: values})
	}
	return l, nil
}

// Render writes the chart as PNG at scale times its logical size.
func (l *Line) Render(w io.Writer, scale float64) error {
	if len(l.X) < 2 || len(l.Series) == 0 {
		return ErrNoData
	}
	width, height, dpi, err := dimensions(l.Width, l.Height, scale)
	if err != nil {
		return err
	}

	graph := chart.Chart{
		Title:  l.Title,
		Width:  width,
		Height: height,
		DPI:    dpi,
	}
	for _, s := range l.Series {
		if len(s.Values) != len(l.X) {
			return fmt.Errorf("series %q has %d values for %d x values", s.Name, len(s.Values), len(l.X))
		}
		graph.Series = append(graph.Series, chart.ContinuousSeries{
			Name:    s.Name,
			XValues: l.X,
			YValues: s.Values,
		})
	}
	if len(l.Series) > 1 {
		graph.Elements = []chart.Renderable{chart.Legend(&graph)}
	}

	if err := graph.Render(chart.PNG, w); err != nil {
		return fmt.Errorf("render line chart: %w", err)
	}
	return nil
}

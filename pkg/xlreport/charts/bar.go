package charts

import (
	"fmt"
	"io"

	"github.com/aarabil/xlreport-go/pkg/xlreport/models"
	"github.com/wcharczuk/go-chart/v2"
)

// Bar plots one labelled bar per value.
type Bar struct {
	Title  string
	Width  int
	Height int
	Labels []string
	Values []float64
}

// BarFromTable builds a bar chart labelled by the label column with heights from the value column.
func BarFromTable(t *models.Table, label, value string) (*Bar, error) {
	labels, ok := t.Column(label)
	if !ok {
		return nil, fmt.Errorf("column %q not found", label)
	}
	values, err := numericColumn(t, value)
	if err != nil {
		return nil, err
	}
	b := &Bar{Values: values}
	for _, l := range labels {
		b.Labels = append(b.Labels, fmt.Sprint(l))
	}
	return b, nil
}

// Render writes the chart as PNG at scale times its logical size.
func (b *Bar) Render(w io.Writer, scale float64) error {
	if len(b.Values) == 0 {
		return ErrNoData
	}
	if len(b.Labels) != len(b.Values) {
		return fmt.Errorf("bar chart has %d labels for %d values", len(b.Labels), len(b.Values))
	}
	width, height, dpi, err := dimensions(b.Width, b.Height, scale)
	if err != nil {
		return err
	}

	graph := chart.BarChart{
		Title:  b.Title,
		Width:  width,
		Height: height,
		DPI:    dpi,
	}
	for i, v := range b.Values {
		graph.Bars = append(graph.Bars, chart.Value{Label: b.Labels[i], Value: v})
	}

	if err := graph.Render(chart.PNG, w); err != nil {
		return fmt.Errorf("render bar chart: %w", err)
	}
	return nil
}

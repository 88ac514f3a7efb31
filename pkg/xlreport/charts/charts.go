// Package charts rasterizes line and bar charts as PNG for embedding in workbooks.
package charts

import (
	"errors"
	"fmt"
	"math"
	"strconv"

	"github.com/aarabil/xlreport-go/pkg/xlreport/models"
	"github.com/wcharczuk/go-chart/v2"
)

// Default logical chart size in pixels.
const (
	DefaultWidth  = 640
	DefaultHeight = 400
)

// ErrNoData indicates a chart without values to plot.
var ErrNoData = errors.New("chart has no data")

// Series is a named sequence of Y values.
type Series struct {
	Name   string
	Values []float64
}

// dimensions returns the pixel size and DPI for a render at scale.
func dimensions(width, height int, scale float64) (int, int, float64, error) {
	if scale <= 0 {
		return 0, 0, 0, fmt.Errorf("scale must be positive, got %g", scale)
	}
	if width <= 0 {
		width = DefaultWidth
	}
	if height <= 0 {
		height = DefaultHeight
	}
	return int(float64(width) * scale), int(float64(height) * scale), chart.DefaultDPI * scale, nil
}

// toFloat converts a table cell to a finite float.
func toFloat(v interface{}) (float64, error) {
	f, err := numberOf(v)
	if err != nil {
		return 0, err
	}
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, fmt.Errorf("non-finite value %v", v)
	}
	return f, nil
}

func numberOf(v interface{}) (float64, error) {
	switch n := v.(type) {
	case float64:
		return n, nil
	case float32:
		return float64(n), nil
	case int:
		return float64(n), nil
	case int64:
		return float64(n), nil
	case int32:
		return float64(n), nil
	case string:
		return strconv.ParseFloat(n, 64)
	case nil:
		return 0, errors.New("empty value")
	default:
		return 0, fmt.Errorf("unsupported value type %T", v)
	}
}

// numericColumn returns the named column of t as floats.
func numericColumn(t *models.Table, name string) ([]float64, error) {
	values, ok := t.Column(name)
	if !ok {
		return nil, fmt.Errorf("column %q not found", name)
	}
	result := make([]float64, len(values))
	for i, v := range values {
		f, err := toFloat(v)
		if err != nil {
			return nil, fmt.Errorf("column %q row %d: %w", name, i, err)
		}
		result[i] = f
	}
	return result, nil
}

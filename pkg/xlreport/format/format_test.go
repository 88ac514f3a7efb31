package format

import (
	"strings"
	"testing"

	"github.com/aarabil/xlreport-go/pkg/xlreport/models"
	"github.com/stretchr/testify/assert"
)

func TestFloat(t *testing.T) {
	tests := []struct {
		input    float64
		expected string
	}{
		{1234.5, "1,234.50"},
		{0, "0.00"},
		{-9876543.219, "-9,876,543.22"},
		{12, "12.00"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, Float(tt.input), "Float(%v)", tt.input)
	}
}

func TestText(t *testing.T) {
	table := &models.Table{
		Columns: []string{"name", "amount"},
		Rows: [][]interface{}{
			{"alice", 1500.0},
			{"bob", nil},
			{"carol", int64(3)},
		},
	}

	out := Text(table, 2)
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	assert.Equal(t, []string{
		"name   amount",
		"alice  1,500.00",
		"bob    ",
		"... 1 more rows",
	}, lines)
}

func TestLaTeX(t *testing.T) {
	table := &models.Table{
		Columns: []string{"item_name", "share %"},
		Rows:    [][]interface{}{{"R&D", 0.25}},
	}

	expected := "\\begin{center}\n" +
		"\\begin{tabular}{ll}\n" +
		"\\hline\n" +
		"item\\_name & share \\% \\\\\n" +
		"\\hline\n" +
		"R\\&D & 0.25 \\\\\n" +
		"\\hline\n" +
		"\\end{tabular}\n" +
		"\\end{center}\n"
	assert.Equal(t, expected, LaTeX(table))
}

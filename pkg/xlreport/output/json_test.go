package output

import (
	"testing"

	"github.com/aarabil/xlreport-go/pkg/xlreport/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToJSON(t *testing.T) {
	wb := &models.WorkbookSummary{
		BookName: "out.xlsx",
		Active:   "Data",
		Sheets: []models.SheetSummary{
			{Name: "Data", MaxRow: 4, MaxCol: 2, Images: []models.Image{{Cell: "D1", Scale: 2}}},
		},
	}

	data, err := ToJSON(wb, false)
	require.NoError(t, err)
	assert.JSONEq(t, `{
		"book_name": "out.xlsx",
		"active": "Data",
		"sheets": [{"name": "Data", "max_row": 4, "max_col": 2, "images": [{"cell": "D1", "scale": 2}]}]
	}`, string(data))

	pretty, err := ToJSON(wb, true)
	require.NoError(t, err)
	assert.Contains(t, string(pretty), "\n  \"book_name\"")
}

func TestSheetNamesToJSON(t *testing.T) {
	data, err := SheetNamesToJSON(nil, false)
	require.NoError(t, err)
	assert.Equal(t, "[]", string(data))

	data, err = SheetNamesToJSON([]string{"b", "a"}, false)
	require.NoError(t, err)
	assert.Equal(t, `["b","a"]`, string(data))
}

func TestTableToJSON(t *testing.T) {
	data, err := TableToJSON(&models.Table{
		Columns: []string{"a"},
		Rows:    [][]interface{}{{int64(1)}, {nil}},
	}, false)
	require.NoError(t, err)
	assert.JSONEq(t, `{"columns": ["a"], "rows": [[1], [null]]}`, string(data))
}

func TestSheetToJSON(t *testing.T) {
	sheet := &models.SheetSummary{Name: "Data", MaxRow: 3, MaxCol: 2, Widths: map[string]float64{"A": 7}}

	data, err := SheetToJSON(sheet, false)
	require.NoError(t, err)
	assert.JSONEq(t, `{"name": "Data", "max_row": 3, "max_col": 2, "widths": {"A": 7}}`, string(data))
}

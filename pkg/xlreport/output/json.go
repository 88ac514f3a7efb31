// Package output serializes workbook summaries and tables.
package output

import (
	"github.com/aarabil/xlreport-go/pkg/xlreport/models"
	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// ToJSON serializes a workbook summary.
func ToJSON(wb *models.WorkbookSummary, pretty bool) ([]byte, error) {
	return marshal(wb, pretty)
}

// SheetToJSON serializes a single sheet summary.
func SheetToJSON(sheet *models.SheetSummary, pretty bool) ([]byte, error) {
	return marshal(sheet, pretty)
}

// TableToJSON serializes a table.
func TableToJSON(t *models.Table, pretty bool) ([]byte, error) {
	return marshal(t, pretty)
}

// SheetNamesToJSON serializes an ordered list of sheet names.
func SheetNamesToJSON(names []string, pretty bool) ([]byte, error) {
	if names == nil {
		names = []string{}
	}
	return marshal(names, pretty)
}

func marshal(v interface{}, pretty bool) ([]byte, error) {
	if pretty {
		return json.MarshalIndent(v, "", "  ")
	}
	return json.Marshal(v)
}

package parser

import (
	"testing"

	"github.com/aarabil/xlreport-go/pkg/xlreport/models"
	"github.com/xuri/excelize/v2"
)

func TestDataBounds(t *testing.T) {
	f := excelize.NewFile()
	defer f.Close()

	f.SetCellValue("Sheet1", "C2", "x")
	f.SetCellValue("Sheet1", "E5", 1)

	bounds, ok, err := DataBounds(f, "Sheet1")
	if err != nil {
		t.Fatalf("DataBounds failed: %v", err)
	}
	if !ok {
		t.Fatal("Expected data bounds")
	}
	expected := models.Range{R1: 2, C1: 3, R2: 5, C2: 5}
	if bounds != expected {
		t.Errorf("DataBounds = %+v, expected %+v", bounds, expected)
	}
}

func TestDataBoundsEmpty(t *testing.T) {
	f := excelize.NewFile()
	defer f.Close()

	_, ok, err := DataBounds(f, "Sheet1")
	if err != nil {
		t.Fatalf("DataBounds failed: %v", err)
	}
	if ok {
		t.Error("Expected no bounds for an empty sheet")
	}
}

func TestFindDataBounds(t *testing.T) {
	rows := [][]string{
		{},
		{"", "", "a"},
		{"b"},
	}
	minRow, maxRow, minCol, maxCol := findDataBounds(rows)
	if minRow != 1 || maxRow != 2 || minCol != 0 || maxCol != 2 {
		t.Errorf("findDataBounds = (%d, %d, %d, %d), expected (1, 2, 0, 2)", minRow, maxRow, minCol, maxCol)
	}
}

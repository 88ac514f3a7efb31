package parser

import (
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/xuri/excelize/v2"
)

func writeTestPNG(t *testing.T, dir string) string {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, 4, 4))
	img.Set(1, 1, color.RGBA{R: 255, A: 255})

	name := filepath.Join(dir, "pixel.png")
	out, err := os.Create(name)
	if err != nil {
		t.Fatalf("Failed to create png: %v", err)
	}
	defer out.Close()
	if err := png.Encode(out, img); err != nil {
		t.Fatalf("Failed to encode png: %v", err)
	}
	return name
}

func TestExtractPictures(t *testing.T) {
	dir := t.TempDir()
	pic := writeTestPNG(t, dir)

	f := excelize.NewFile()
	if _, err := f.NewSheet("Charts"); err != nil {
		t.Fatalf("NewSheet failed: %v", err)
	}
	f.SetCellValue("Sheet1", "A1", "no pictures here")
	if err := f.AddPicture("Charts", "E3", pic, nil); err != nil {
		t.Fatalf("AddPicture failed: %v", err)
	}
	if err := f.AddPicture("Charts", "B10", pic, nil); err != nil {
		t.Fatalf("AddPicture failed: %v", err)
	}

	xlsxPath := filepath.Join(dir, "pictures.xlsx")
	if err := f.SaveAs(xlsxPath); err != nil {
		t.Fatalf("SaveAs failed: %v", err)
	}
	f.Close()

	result, err := ExtractPictures(xlsxPath)
	if err != nil {
		t.Fatalf("ExtractPictures failed: %v", err)
	}

	if _, ok := result["Sheet1"]; ok {
		t.Errorf("Expected no pictures on Sheet1, got %v", result["Sheet1"])
	}
	images := result["Charts"]
	if len(images) != 2 {
		t.Fatalf("Expected 2 pictures on Charts, got %d", len(images))
	}
	cells := map[string]bool{images[0].Cell: true, images[1].Cell: true}
	if !cells["E3"] || !cells["B10"] {
		t.Errorf("Expected anchors E3 and B10, got %v", images)
	}
}

func TestParseDrawingPicturesSkipsShapes(t *testing.T) {
	drawing := []byte(`<xdr:wsDr xmlns:xdr="http://schemas.openxmlformats.org/drawingml/2006/spreadsheetDrawing">
<xdr:twoCellAnchor>
  <xdr:from><xdr:col>1</xdr:col><xdr:colOff>0</xdr:colOff><xdr:row>2</xdr:row><xdr:rowOff>0</xdr:rowOff></xdr:from>
  <xdr:to><xdr:col>5</xdr:col><xdr:colOff>0</xdr:colOff><xdr:row>9</xdr:row><xdr:rowOff>0</xdr:rowOff></xdr:to>
  <xdr:sp><xdr:nvSpPr><xdr:cNvPr id="2" name="Rectangle 1"/></xdr:nvSpPr></xdr:sp>
</xdr:twoCellAnchor>
<xdr:oneCellAnchor>
  <xdr:from><xdr:col>3</xdr:col><xdr:colOff>0</xdr:colOff><xdr:row>0</xdr:row><xdr:rowOff>0</xdr:rowOff></xdr:from>
  <xdr:pic><xdr:nvPicPr><xdr:cNvPr id="3" name="Picture 2"/></xdr:nvPicPr></xdr:pic>
</xdr:oneCellAnchor>
</xdr:wsDr>`)

	images := parseDrawingPictures(drawing)
	if len(images) != 1 {
		t.Fatalf("Expected 1 picture, got %d", len(images))
	}
	if images[0].Cell != "D1" || images[0].Name != "Picture 2" {
		t.Errorf("Unexpected picture %+v", images[0])
	}
}

func TestResolveRelativePath(t *testing.T) {
	tests := []struct {
		target   string
		baseDir  string
		expected string
	}{
		{"../drawings/drawing1.xml", "xl/worksheets", "xl/drawings/drawing1.xml"},
		{"/xl/drawings/drawing1.xml", "xl/worksheets", "xl/drawings/drawing1.xml"},
		{"worksheets/sheet1.xml", "xl", "xl/worksheets/sheet1.xml"},
	}

	for _, tt := range tests {
		result := resolveRelativePath(tt.target, tt.baseDir)
		if result != tt.expected {
			t.Errorf("resolveRelativePath(%q, %q) = %q, expected %q",
				tt.target, tt.baseDir, result, tt.expected)
		}
	}
}

func TestFindDrawingRelationship(t *testing.T) {
	rels := []byte(`<Relationships xmlns="http://schemas.openxmlformats.org/package/2006/relationships">
<Relationship Id="rId1" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/vmlDrawing" Target="../drawings/vmlDrawing1.vml"/>
<Relationship Id="rId2" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/drawing" Target="../drawings/drawing1.xml"/>
</Relationships>`)

	if got := findDrawingRelationship(rels); got != "../drawings/drawing1.xml" {
		t.Errorf("findDrawingRelationship = %q, expected ../drawings/drawing1.xml", got)
	}
}

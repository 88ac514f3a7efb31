package parser

import (
	"archive/zip"
	"bytes"
	"encoding/xml"
	"io"
	"path"
	"strconv"
	"strings"

	"github.com/aarabil/xlreport-go/pkg/xlreport/models"
	"github.com/xuri/excelize/v2"
)

// ExtractPictures returns the pictures anchored on each sheet of an xlsx file.
// Sheets without pictures are omitted from the result.
func ExtractPictures(xlsxPath string) (map[string][]models.Image, error) {
	r, err := zip.OpenReader(xlsxPath)
	if err != nil {
		return nil, err
	}
	defer r.Close()

	sheetDrawingMap, err := getSheetDrawingMap(&r.Reader)
	if err != nil {
		return nil, err
	}

	result := make(map[string][]models.Image)
	for sheetName, drawingPath := range sheetDrawingMap {
		drawingXML, err := readZipFile(&r.Reader, drawingPath)
		if err != nil || drawingXML == nil {
			continue
		}
		if images := parseDrawingPictures(drawingXML); len(images) > 0 {
			result[sheetName] = images
		}
	}

	return result, nil
}

// getSheetDrawingMap returns a mapping of sheet names to their drawing part paths.
func getSheetDrawingMap(r *zip.Reader) (map[string]string, error) {
	result := make(map[string]string)

	workbookXML, err := readZipFile(r, "xl/workbook.xml")
	if err != nil {
		return nil, err
	}

	sheetsInfo := parseWorkbookSheets(workbookXML)
	if len(sheetsInfo) == 0 {
		return result, nil
	}

	wbRelsXML, err := readZipFile(r, "xl/_rels/workbook.xml.rels")
	if err != nil {
		return nil, err
	}

	sheetFiles := parseWorkbookRels(wbRelsXML, sheetsInfo)

	for sheetName, sheetPath := range sheetFiles {
		relsPath := path.Join(path.Dir(sheetPath), "_rels", path.Base(sheetPath)+".rels")

		sheetRelsXML, err := readZipFile(r, relsPath)
		if err != nil || sheetRelsXML == nil {
			continue
		}

		if target := findDrawingRelationship(sheetRelsXML); target != "" {
			result[sheetName] = resolveRelativePath(target, path.Dir(sheetPath))
		}
	}

	return result, nil
}

// parseDrawingPictures returns the picture anchors found in a drawing part.
func parseDrawingPictures(data []byte) []models.Image {
	var images []models.Image

	decoder := xml.NewDecoder(bytes.NewReader(data))
	for {
		token, err := decoder.Token()
		if err != nil {
			break
		}

		if se, ok := token.(xml.StartElement); ok {
			switch se.Name.Local {
			case "twoCellAnchor", "oneCellAnchor":
				if img, ok := parsePictureAnchor(decoder); ok {
					images = append(images, img)
				}
			}
		}
	}

	return images
}

// parsePictureAnchor consumes an anchor element and reports whether it holds a picture.
func parsePictureAnchor(decoder *xml.Decoder) (models.Image, bool) {
	var img models.Image
	col, row := -1, -1
	inFrom, isPicture := false, false

	depth := 1
	for depth > 0 {
		token, err := decoder.Token()
		if err != nil {
			break
		}

		switch t := token.(type) {
		case xml.StartElement:
			depth++
			switch t.Name.Local {
			case "from":
				inFrom = true
			case "col", "row":
				if !inFrom {
					continue
				}
				text, err := readElementText(decoder)
				depth--
				if err != nil {
					continue
				}
				n, err := strconv.Atoi(strings.TrimSpace(text))
				if err != nil {
					continue
				}
				if t.Name.Local == "col" {
					col = n
				} else {
					row = n
				}
			case "pic":
				isPicture = true
			case "cNvPr":
				if !isPicture {
					continue
				}
				for _, attr := range t.Attr {
					if attr.Name.Local == "name" {
						img.Name = attr.Value
					}
				}
			}
		case xml.EndElement:
			depth--
			if t.Name.Local == "from" {
				inFrom = false
			}
		}
	}

	if !isPicture || col < 0 || row < 0 {
		return img, false
	}

	cell, err := excelize.CoordinatesToCellName(col+1, row+1)
	if err != nil {
		return img, false
	}
	img.Cell = cell
	return img, true
}

// Helper functions

func readZipFile(r *zip.Reader, name string) ([]byte, error) {
	for _, f := range r.File {
		if f.Name == name {
			rc, err := f.Open()
			if err != nil {
				return nil, err
			}
			defer rc.Close()
			return io.ReadAll(rc)
		}
	}
	return nil, nil
}

func readElementText(decoder *xml.Decoder) (string, error) {
	var text string
	depth := 1
	for depth > 0 {
		token, err := decoder.Token()
		if err != nil {
			return text, err
		}
		switch t := token.(type) {
		case xml.CharData:
			text += string(t)
		case xml.StartElement:
			depth++
		case xml.EndElement:
			depth--
		}
	}
	return text, nil
}

// resolveRelativePath resolves a relationship target against the directory of its source part.
// Absolute targets are relative to the package root.
func resolveRelativePath(target, baseDir string) string {
	if strings.HasPrefix(target, "/") {
		return strings.TrimPrefix(target, "/")
	}
	return path.Join(baseDir, target)
}

func parseWorkbookSheets(data []byte) map[string]string {
	result := make(map[string]string) // rId -> sheet name
	decoder := xml.NewDecoder(bytes.NewReader(data))

	for {
		token, err := decoder.Token()
		if err != nil {
			break
		}
		if se, ok := token.(xml.StartElement); ok && se.Name.Local == "sheet" {
			var name, rID string
			for _, attr := range se.Attr {
				switch attr.Name.Local {
				case "name":
					name = attr.Value
				case "id":
					rID = attr.Value
				}
			}
			if name != "" && rID != "" {
				result[rID] = name
			}
		}
	}

	return result
}

func parseWorkbookRels(data []byte, sheetsInfo map[string]string) map[string]string {
	result := make(map[string]string) // sheet name -> part path
	decoder := xml.NewDecoder(bytes.NewReader(data))

	for {
		token, err := decoder.Token()
		if err != nil {
			break
		}
		if se, ok := token.(xml.StartElement); ok && se.Name.Local == "Relationship" {
			var rID, target string
			for _, attr := range se.Attr {
				switch attr.Name.Local {
				case "Id":
					rID = attr.Value
				case "Target":
					target = attr.Value
				}
			}
			if sheetName, ok := sheetsInfo[rID]; ok && strings.Contains(strings.ToLower(target), "worksheet") {
				result[sheetName] = resolveRelativePath(target, "xl")
			}
		}
	}

	return result
}

func findDrawingRelationship(data []byte) string {
	decoder := xml.NewDecoder(bytes.NewReader(data))

	for {
		token, err := decoder.Token()
		if err != nil {
			break
		}
		if se, ok := token.(xml.StartElement); ok && se.Name.Local == "Relationship" {
			var relType, target string
			for _, attr := range se.Attr {
				switch attr.Name.Local {
				case "Type":
					relType = attr.Value
				case "Target":
					target = attr.Value
				}
			}
			// vmlDrawing parts hold comment boxes, not pictures
			if strings.HasSuffix(relType, "/drawing") {
				return target
			}
		}
	}

	return ""
}

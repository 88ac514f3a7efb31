package models

// SheetSummary represents the bookkeeping of a single sheet.
type SheetSummary struct {
	// Name is the sheet (tab) name.
	Name string `json:"name"`
	// MaxRow is the last populated row (1-based, 0 when empty).
	MaxRow int `json:"max_row"`
	// MaxCol is the last populated column (1-based, 0 when empty).
	MaxCol int `json:"max_col"`
	// Widths maps column names to widths set by a resize.
	Widths map[string]float64 `json:"widths,omitempty"`
	// Images contains pictures anchored on the sheet.
	Images []Image `json:"images,omitempty"`
}

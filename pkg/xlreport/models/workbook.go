package models

// WorkbookSummary represents a workbook with its sheets in tab order.
type WorkbookSummary struct {
	// BookName is the workbook file name (no path).
	BookName string `json:"book_name"`
	// Active is the name of the selected sheet, if any.
	Active string `json:"active,omitempty"`
	// Sheets lists the sheets in tab order.
	Sheets []SheetSummary `json:"sheets"`
}

// SheetNames returns the sheet names in tab order.
func (w WorkbookSummary) SheetNames() []string {
	names := make([]string, len(w.Sheets))
	for i, s := range w.Sheets {
		names[i] = s.Name
	}
	return names
}

// Package models defines data structures for workbook reports.
package models

import "strconv"

// Table represents a rectangular block of named columns.
type Table struct {
	// Columns holds the header labels in column order.
	Columns []string `json:"columns"`
	// Index holds optional row labels. When empty, rows are labelled 0..n-1.
	Index []string `json:"index,omitempty"`
	// IndexName is the header label of the index column.
	IndexName string `json:"index_name,omitempty"`
	// Rows holds the body values, one slice per row.
	Rows [][]interface{} `json:"rows"`
}

// Width returns the number of columns the body occupies.
// Rows wider than the header count towards the width.
func (t *Table) Width() int {
	w := len(t.Columns)
	for _, row := range t.Rows {
		if len(row) > w {
			w = len(row)
		}
	}
	return w
}

// IndexLabel returns the label of row i.
func (t *Table) IndexLabel(i int) string {
	if i < len(t.Index) {
		return t.Index[i]
	}
	return strconv.Itoa(i)
}

// Column returns the values of the named column and whether it exists.
func (t *Table) Column(name string) ([]interface{}, bool) {
	idx := -1
	for i, c := range t.Columns {
		if c == name {
			idx = i
			break
		}
	}
	if idx < 0 {
		return nil, false
	}

	values := make([]interface{}, len(t.Rows))
	for i, row := range t.Rows {
		if idx < len(row) {
			values[i] = row[idx]
		}
	}
	return values, true
}

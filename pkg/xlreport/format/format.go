// Package format renders tables for display.
package format

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/aarabil/xlreport-go/pkg/xlreport/models"
	"github.com/dustin/go-humanize"
)

// Float renders v with a thousands separator and two decimals (1,234.50).
func Float(v float64) string {
	return humanize.FormatFloat("#,###.##", v)
}

// Value renders a table cell for display. Floats go through Float.
func Value(v interface{}) string {
	switch n := v.(type) {
	case nil:
		return ""
	case float64:
		return Float(n)
	case float32:
		return Float(float64(n))
	default:
		return fmt.Sprint(v)
	}
}

// Text renders t as aligned plain text, limited to maxRows body rows (all rows if maxRows <= 0).
func Text(t *models.Table, maxRows int) string {
	var sb strings.Builder
	tw := tabwriter.NewWriter(&sb, 0, 0, 2, ' ', 0)

	fmt.Fprintln(tw, strings.Join(t.Columns, "\t"))
	rows := t.Rows
	if maxRows > 0 && len(rows) > maxRows {
		rows = rows[:maxRows]
	}
	for _, row := range rows {
		cells := make([]string, len(row))
		for i, v := range row {
			cells[i] = Value(v)
		}
		fmt.Fprintln(tw, strings.Join(cells, "\t"))
	}
	tw.Flush()

	if len(rows) < len(t.Rows) {
		fmt.Fprintf(&sb, "... %d more rows\n", len(t.Rows)-len(rows))
	}
	return sb.String()
}

var latexEscaper = strings.NewReplacer(
	`\`, `\textbackslash{}`,
	`&`, `\&`,
	`%`, `\%`,
	`$`, `\$`,
	`#`, `\#`,
	`_`, `\_`,
	`{`, `\{`,
	`}`, `\}`,
	`~`, `\textasciitilde{}`,
	`^`, `\textasciicircum{}`,
)

// LaTeX renders t as a centered tabular environment.
func LaTeX(t *models.Table) string {
	var sb strings.Builder

	sb.WriteString("\\begin{center}\n")
	fmt.Fprintf(&sb, "\\begin{tabular}{%s}\n", strings.Repeat("l", len(t.Columns)))
	sb.WriteString("\\hline\n")

	header := make([]string, len(t.Columns))
	for i, c := range t.Columns {
		header[i] = latexEscaper.Replace(c)
	}
	sb.WriteString(strings.Join(header, " & ") + " \\\\\n\\hline\n")

	for _, row := range t.Rows {
		cells := make([]string, len(t.Columns))
		for i := range cells {
			if i < len(row) {
				cells[i] = latexEscaper.Replace(Value(row[i]))
			}
		}
		sb.WriteString(strings.Join(cells, " & ") + " \\\\\n")
	}

	sb.WriteString("\\hline\n\\end{tabular}\n\\end{center}\n")
	return sb.String()
}

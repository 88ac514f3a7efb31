package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/aarabil/xlreport-go/pkg/xlreport"
	"github.com/aarabil/xlreport-go/pkg/xlreport/output"
	"github.com/spf13/cobra"
)

var (
	sheetsPretty    bool
	sheetsNamesOnly bool
	sheetsOutput    string
	sheetsName      string
)

func newSheetsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sheets [input.xlsx]",
		Short: "List the sheets of a workbook as JSON",
		Args:  cobra.ExactArgs(1),
		RunE:  runSheets,
	}

	cmd.Flags().BoolVar(&sheetsPretty, "pretty", false, "Pretty-print JSON output")
	cmd.Flags().BoolVar(&sheetsNamesOnly, "names-only", false, "List sheet names only")
	cmd.Flags().StringVarP(&sheetsOutput, "output", "o", "", "Output file path (default: stdout)")
	cmd.Flags().StringVar(&sheetsName, "sheet", "", "Summarize a single sheet")

	return cmd
}

func runSheets(cmd *cobra.Command, args []string) error {
	w, err := xlreport.Open(args[0], writerOptions())
	if err != nil {
		return err
	}
	defer w.Discard()

	var jsonData []byte
	switch {
	case sheetsName != "":
		sheet, ok := findSheet(w, sheetsName)
		if !ok {
			return fmt.Errorf("sheet not found: %s", sheetsName)
		}
		summary := sheet.Summary()
		jsonData, err = output.SheetToJSON(&summary, sheetsPretty)
	case sheetsNamesOnly:
		jsonData, err = output.SheetNamesToJSON(w.SheetNames(), sheetsPretty)
	default:
		summary := w.Summary()
		jsonData, err = output.ToJSON(&summary, sheetsPretty)
	}
	if err != nil {
		return fmt.Errorf("serialization failed: %w", err)
	}

	if sheetsOutput != "" {
		if err := os.WriteFile(sheetsOutput, jsonData, 0644); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
		return nil
	}
	fmt.Fprintln(cmd.OutOrStdout(), string(jsonData))
	return nil
}

// findSheet looks name up case-insensitively, as SelectSheet does.
func findSheet(w *xlreport.Writer, name string) (*xlreport.Sheet, bool) {
	for sheetName, sheet := range w.Sheets() {
		if strings.EqualFold(sheetName, name) {
			return sheet, true
		}
	}
	return nil, false
}

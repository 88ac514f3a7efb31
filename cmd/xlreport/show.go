package main

import (
	"fmt"
	"os"

	"github.com/aarabil/xlreport-go/pkg/xlreport/format"
	"github.com/aarabil/xlreport-go/pkg/xlreport/output"
	"github.com/aarabil/xlreport-go/pkg/xlreport/parser"
	"github.com/spf13/cobra"
	"github.com/xuri/excelize/v2"
)

var (
	showSheet    string
	showRange    string
	showNoHeader bool
	showFormat   string
	showRows     int
)

func newShowCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show [input.xlsx]",
		Short: "Print a table from a sheet as text, LaTeX or JSON",
		Args:  cobra.ExactArgs(1),
		RunE:  runShow,
	}

	cmd.Flags().StringVarP(&showSheet, "sheet", "s", "", "Sheet name (default: active sheet)")
	cmd.Flags().StringVar(&showRange, "range", "", "Cell range such as A1:D20 (default: data bounds)")
	cmd.Flags().BoolVar(&showNoHeader, "no-header", false, "First row is data, not column labels")
	cmd.Flags().StringVar(&showFormat, "format", "text", "Output format: text, latex, json")
	cmd.Flags().IntVar(&showRows, "rows", 20, "Maximum rows in text output (0 for all)")

	return cmd
}

func runShow(cmd *cobra.Command, args []string) error {
	inputPath := args[0]

	if _, err := os.Stat(inputPath); os.IsNotExist(err) {
		return fmt.Errorf("file not found: %s", inputPath)
	}

	f, err := excelize.OpenFile(inputPath)
	if err != nil {
		return fmt.Errorf("failed to open workbook: %w", err)
	}
	defer f.Close()

	sheet := showSheet
	if sheet == "" {
		sheet = f.GetSheetName(f.GetActiveSheetIndex())
	}

	opts := parser.ReadOptions{Header: !showNoHeader}
	if showRange != "" {
		area, err := parser.ParseRange(showRange)
		if err != nil {
			return err
		}
		opts.Range = &area
	}

	t, err := parser.ReadTable(f, sheet, opts)
	if err != nil {
		return fmt.Errorf("read %s: %w", sheet, err)
	}
	logger.Debug("table read", "sheet", sheet, "rows", len(t.Rows), "cols", len(t.Columns))

	out := cmd.OutOrStdout()
	switch showFormat {
	case "text":
		fmt.Fprint(out, format.Text(t, showRows))
	case "latex":
		fmt.Fprint(out, format.LaTeX(t))
	case "json":
		jsonData, err := output.TableToJSON(t, true)
		if err != nil {
			return fmt.Errorf("serialization failed: %w", err)
		}
		fmt.Fprintln(out, string(jsonData))
	default:
		return fmt.Errorf("invalid format: %s (must be text, latex or json)", showFormat)
	}
	return nil
}

package main

import (
	"fmt"
	"os"

	"github.com/aarabil/xlreport-go/pkg/xlreport"
	"github.com/aarabil/xlreport-go/pkg/xlreport/models"
	"github.com/aarabil/xlreport-go/pkg/xlreport/parser"
	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"
)

var (
	writeOut      string
	writeSheet    string
	writePosition string
	writeRow      int
	writeCol      int
	writeIndex    bool
	writeNoHeader bool
	writeAppend   bool
	writeResize   string
)

func newWriteCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "write [input.csv...]",
		Short: "Write CSV tables into a sheet",
		Long: `Write one or more CSV files as tables into a sheet. The first table is
placed by --position, --row and --col; later tables are stacked below
unless --position says otherwise.`,
		Args: cobra.MinimumNArgs(1),
		RunE: runWrite,
	}

	cmd.Flags().StringVarP(&writeOut, "out", "o", "", "Workbook path (default: <report dir>/report.xlsx)")
	cmd.Flags().StringVarP(&writeSheet, "sheet", "s", "Sheet1", "Target sheet name")
	cmd.Flags().StringVar(&writePosition, "position", "", "Placement relative to existing content: right, bottom")
	cmd.Flags().IntVar(&writeRow, "row", 0, "Start row (1-based)")
	cmd.Flags().IntVar(&writeCol, "col", 0, "Start column (1-based)")
	cmd.Flags().BoolVar(&writeIndex, "index", false, "Write row labels in a leading column")
	cmd.Flags().BoolVar(&writeNoHeader, "no-header", false, "Input CSV has no header row and no header is written")
	cmd.Flags().BoolVar(&writeAppend, "append", false, "Open the workbook if it exists instead of replacing it")
	cmd.Flags().StringVar(&writeResize, "resize", "", "Column resize policy: best-fit, content-fit, none (default from config)")

	return cmd
}

func runWrite(cmd *cobra.Command, args []string) error {
	position, err := parsePosition(writePosition)
	if err != nil {
		return err
	}
	resize := writeResize
	if resize == "" {
		resize = cfg.Report.Resize
	}
	policy, doResize, err := parseResize(resize)
	if err != nil {
		return err
	}

	tables := make([]*models.Table, 0, len(args))
	for _, input := range args {
		t, err := readCSVFile(input, !writeNoHeader)
		if err != nil {
			return err
		}
		tables = append(tables, t)
	}

	out := writeOut
	if out == "" {
		out = defaultReportPath()
	}

	w, err := openOrCreate(out, writeAppend)
	if err != nil {
		return fmt.Errorf("open workbook: %w", err)
	}
	if err := w.SelectSheet(writeSheet); err != nil {
		w.Discard()
		return err
	}

	header := !writeNoHeader
	for i, t := range tables {
		opts := xlreport.TableOptions{Index: writeIndex, Header: &header}
		if i == 0 {
			opts.Position = position
			opts.StartRow = writeRow
			opts.StartCol = writeCol
		} else if position != xlreport.PositionNone {
			opts.Position = position
		} else {
			opts.Position = xlreport.PositionBottom
		}
		if err := w.WriteTable(t, opts); err != nil {
			w.Discard()
			return fmt.Errorf("write %s: %w", args[i], err)
		}
	}

	if doResize {
		if err := w.ResizeColumns(policy); err != nil {
			w.Discard()
			return err
		}
	}

	if err := w.Close(); err != nil {
		return err
	}

	info, err := os.Stat(out)
	if err != nil {
		return err
	}
	logger.Info("workbook written", "path", out, "sheet", writeSheet, "tables", len(tables))
	fmt.Fprintf(cmd.OutOrStdout(), "wrote %d table(s) to %s!%s (%s)\n",
		len(tables), out, writeSheet, humanize.Bytes(uint64(info.Size())))
	return nil
}

func readCSVFile(path string, header bool) (*models.Table, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("file not found: %s", path)
		}
		return nil, err
	}
	defer f.Close()

	t, err := parser.ReadCSV(f, header)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return t, nil
}

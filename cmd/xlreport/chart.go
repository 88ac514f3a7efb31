package main

import (
	"fmt"
	"strings"

	"github.com/aarabil/xlreport-go/pkg/xlreport"
	"github.com/aarabil/xlreport-go/pkg/xlreport/charts"
	"github.com/aarabil/xlreport-go/pkg/xlreport/models"
	"github.com/spf13/cobra"
)

var (
	chartOut       string
	chartSheet     string
	chartKind      string
	chartX         string
	chartY         []string
	chartTitle     string
	chartCell      string
	chartColumn    int
	chartScale     float64
	chartWidth     int
	chartHeight    int
	chartWithTable bool
)

func newChartCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "chart [input.csv]",
		Short: "Render a CSV table as a chart and embed it in a sheet",
		Long: `Render a line or bar chart from columns of a CSV file and anchor the image
on a sheet. Without --cell or --column the chart goes to row 1, one empty
column after the sheet's content. An existing workbook is updated in place.`,
		Args: cobra.ExactArgs(1),
		RunE: runChart,
	}

	cmd.Flags().StringVarP(&chartOut, "out", "o", "", "Workbook path (default: <report dir>/report.xlsx)")
	cmd.Flags().StringVarP(&chartSheet, "sheet", "s", "Charts", "Target sheet name")
	cmd.Flags().StringVar(&chartKind, "kind", "line", "Chart kind: line, bar")
	cmd.Flags().StringVar(&chartX, "x", "", "X column (line) or label column (bar)")
	cmd.Flags().StringSliceVar(&chartY, "y", nil, "Value column(s); bar charts take exactly one")
	cmd.Flags().StringVar(&chartTitle, "title", "", "Chart title")
	cmd.Flags().StringVar(&chartCell, "cell", "", "Anchor cell, e.g. H2")
	cmd.Flags().IntVar(&chartColumn, "column", 0, "Zero-based anchor column in row 1")
	cmd.Flags().Float64Var(&chartScale, "scale", 0, "Raster quality factor (default from config)")
	cmd.Flags().IntVar(&chartWidth, "width", charts.DefaultWidth, "Logical chart width in pixels")
	cmd.Flags().IntVar(&chartHeight, "height", charts.DefaultHeight, "Logical chart height in pixels")
	cmd.Flags().BoolVar(&chartWithTable, "with-table", false, "Also write the table below the sheet's content before the chart")
	cmd.MarkFlagRequired("x")
	cmd.MarkFlagRequired("y")

	return cmd
}

func runChart(cmd *cobra.Command, args []string) error {
	t, err := readCSVFile(args[0], true)
	if err != nil {
		return err
	}

	renderer, err := buildChart(t)
	if err != nil {
		return err
	}

	opts := xlreport.ImageOptions{Cell: chartCell, Scale: chartScale}
	if opts.Scale == 0 {
		opts.Scale = cfg.Report.ImageScale
	}
	if cmd.Flags().Changed("column") {
		column := chartColumn
		opts.Column = &column
	}

	out := chartOut
	if out == "" {
		out = defaultReportPath()
	}

	w, err := openOrCreate(out, true)
	if err != nil {
		return fmt.Errorf("open workbook: %w", err)
	}
	if err := w.SelectSheet(chartSheet); err != nil {
		w.Discard()
		return err
	}

	if chartWithTable {
		tableOpts := xlreport.TableOptions{}
		if !w.Active().Empty() {
			tableOpts.Position = xlreport.PositionBottom
		}
		if err := w.WriteTable(t, tableOpts); err != nil {
			w.Discard()
			return err
		}
	}

	if err := w.AddImage(renderer, opts); err != nil {
		w.Discard()
		return fmt.Errorf("add chart: %w", err)
	}
	images := w.Active().Images()
	anchor := images[len(images)-1].Cell

	if err := w.Close(); err != nil {
		return err
	}

	logger.Info("chart added", "path", out, "sheet", chartSheet, "cell", anchor, "kind", chartKind)
	fmt.Fprintf(cmd.OutOrStdout(), "added %s chart to %s!%s at %s\n", chartKind, out, chartSheet, anchor)
	return nil
}

func buildChart(t *models.Table) (xlreport.Renderer, error) {
	switch strings.ToLower(chartKind) {
	case "line":
		l, err := charts.LineFromTable(t, chartX, chartY...)
		if err != nil {
			return nil, err
		}
		l.Title, l.Width, l.Height = chartTitle, chartWidth, chartHeight
		return l, nil
	case "bar":
		if len(chartY) != 1 {
			return nil, fmt.Errorf("bar charts take exactly one --y column, got %d", len(chartY))
		}
		b, err := charts.BarFromTable(t, chartX, chartY[0])
		if err != nil {
			return nil, err
		}
		b.Title, b.Width, b.Height = chartTitle, chartWidth, chartHeight
		return b, nil
	default:
		return nil, fmt.Errorf("invalid chart kind: %s (must be line or bar)", chartKind)
	}
}

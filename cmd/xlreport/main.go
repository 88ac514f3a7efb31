// Package main provides the CLI entry point for xlreport.
package main

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/aarabil/xlreport-go/internal/config"
	"github.com/aarabil/xlreport-go/internal/logging"
	"github.com/aarabil/xlreport-go/pkg/workspace"
	"github.com/aarabil/xlreport-go/pkg/xlreport"
	"github.com/spf13/cobra"
)

var (
	configPath string
	logLevel   string
	workDir    string
	up         bool

	cfg      *config.Config
	logger   *slog.Logger
	closeLog func() error
	session  *workspace.Session
)

func main() {
	err := newRootCmd().Execute()
	cleanup()
	if err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "xlreport",
		Short: "Write tables and charts into multi-sheet Excel reports",
		Long: `xlreport writes CSV tables and rendered charts into named sheets of an
.xlsx workbook, placing each block to the right of or below what the sheet
already holds.`,
		SilenceUsage:      true,
		PersistentPreRunE: setup,
	}

	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "YAML config file")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "Log level: debug, info, warn, error (overrides config)")
	rootCmd.PersistentFlags().StringVar(&workDir, "workdir", "", "Directory to run in")
	rootCmd.PersistentFlags().BoolVar(&up, "up", false, "Run in the parent of the current directory")

	rootCmd.AddCommand(newWriteCmd(), newChartCmd(), newSheetsCmd(), newShowCmd())
	return rootCmd
}

func setup(cmd *cobra.Command, args []string) error {
	var err error
	cfg, err = config.Load(configPath)
	if err != nil {
		return err
	}
	if logLevel != "" {
		cfg.Logging.Level = logLevel
		if err := cfg.Validate(); err != nil {
			return err
		}
	}

	logger, closeLog, err = logging.New(cfg.Logging)
	if err != nil {
		return err
	}

	session, err = workspace.Setup(workspace.Options{Dir: workDir, Up: up})
	if err != nil {
		return err
	}
	logger.Debug("session started", "dir", session.Dir(), "command", cmd.Name())
	return nil
}

// cleanup restores the working directory and closes the log, whatever state setup reached.
func cleanup() {
	if session != nil {
		if err := session.Teardown(); err != nil {
			fmt.Fprintln(os.Stderr, err)
		}
		session = nil
	}
	if closeLog != nil {
		closeLog()
		closeLog = nil
	}
}

func writerOptions() xlreport.Options {
	opts := xlreport.DefaultOptions()
	opts.Logger = logger
	opts.TempDir = cfg.Report.TempDir
	return opts
}

func defaultReportPath() string {
	return filepath.Join(cfg.Report.Dir, "report.xlsx")
}

// openOrCreate opens path when it exists and appending is allowed, otherwise creates it.
func openOrCreate(path string, appendTo bool) (*xlreport.Writer, error) {
	if appendTo {
		if _, err := os.Stat(path); err == nil {
			return xlreport.Open(path, writerOptions())
		}
	}
	return xlreport.Create(path, writerOptions())
}

func parsePosition(s string) (xlreport.Position, error) {
	switch s {
	case "":
		return xlreport.PositionNone, nil
	case "right":
		return xlreport.PositionRight, nil
	case "bottom":
		return xlreport.PositionBottom, nil
	default:
		return "", fmt.Errorf("invalid position: %s (must be right or bottom)", s)
	}
}

// parseResize returns false when no resize should happen.
func parseResize(s string) (xlreport.ResizePolicy, bool, error) {
	switch s {
	case "none":
		return "", false, nil
	case string(xlreport.BestFit):
		return xlreport.BestFit, true, nil
	case string(xlreport.ContentFit):
		return xlreport.ContentFit, true, nil
	default:
		return "", false, fmt.Errorf("invalid resize policy: %s (must be best-fit, content-fit or none)", s)
	}
}

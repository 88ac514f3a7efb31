package logging

import (
	"bytes"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/aarabil/xlreport-go/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStreamHandler(t *testing.T) {
	var buf bytes.Buffer
	logger, closeFn, err := newLogger(config.LoggingConfig{Level: "warn", Handler: "stream"}, &buf)
	require.NoError(t, err)
	defer closeFn()

	logger.Info("hidden")
	logger.Warn("shown", "sheet", "Data")

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, `"msg":"shown"`)
	assert.Contains(t, out, `"sheet":"Data"`)
}

func TestBothHandler(t *testing.T) {
	var buf bytes.Buffer
	path := filepath.Join(t.TempDir(), "log_book", "logs.log")

	logger, closeFn, err := newLogger(config.LoggingConfig{Level: "debug", Handler: "both", FilePath: path}, &buf)
	require.NoError(t, err)

	logger.Debug("workbook saved")
	require.NoError(t, closeFn())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "workbook saved")
	assert.Contains(t, buf.String(), "workbook saved")
}

func TestFileHandlerSkipsStream(t *testing.T) {
	var buf bytes.Buffer
	path := filepath.Join(t.TempDir(), "app.log")

	logger, closeFn, err := newLogger(config.LoggingConfig{Level: "info", Handler: "file", FilePath: path}, &buf)
	require.NoError(t, err)
	logger.Info("to file")
	require.NoError(t, closeFn())

	assert.Empty(t, buf.String())
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "to file")
}

func TestParseLevel(t *testing.T) {
	tests := map[string]slog.Level{
		"debug":   slog.LevelDebug,
		"INFO":    slog.LevelInfo,
		"warning": slog.LevelWarn,
		"error":   slog.LevelError,
		"":        slog.LevelInfo,
	}
	for in, expected := range tests {
		assert.Equal(t, expected, ParseLevel(in), in)
	}
}

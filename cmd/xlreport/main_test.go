package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/aarabil/xlreport-go/pkg/xlreport"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	root := newRootCmd()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(append([]string{"--log-level", "error"}, args...))
	err := root.Execute()
	cleanup()
	return out.String(), err
}

func writeCSV(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestParsePosition(t *testing.T) {
	tests := []struct {
		in      string
		want    xlreport.Position
		wantErr bool
	}{
		{"", xlreport.PositionNone, false},
		{"right", xlreport.PositionRight, false},
		{"bottom", xlreport.PositionBottom, false},
		{"left", "", true},
	}
	for _, tt := range tests {
		got, err := parsePosition(tt.in)
		if tt.wantErr {
			assert.Error(t, err, tt.in)
			continue
		}
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, got)
	}
}

func TestParseResize(t *testing.T) {
	_, ok, err := parseResize("none")
	require.NoError(t, err)
	assert.False(t, ok)

	policy, ok, err := parseResize("content-fit")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, xlreport.ContentFit, policy)

	_, _, err = parseResize("shrink")
	assert.Error(t, err)
}

func TestWriteStacksTables(t *testing.T) {
	dir := t.TempDir()
	first := writeCSV(t, dir, "a.csv", "id,name\n1,alpha\n2,beta\n")
	second := writeCSV(t, dir, "b.csv", "x,y\n3,4\n")
	out := filepath.Join(dir, "out.xlsx")

	stdout, err := execute(t, "write", first, second, "-o", out, "--sheet", "Data", "--resize", "none")
	require.NoError(t, err)
	assert.Contains(t, stdout, "wrote 2 table(s)")

	f, err := excelize.OpenFile(out)
	require.NoError(t, err)
	defer f.Close()
	assert.Equal(t, []string{"Data"}, f.GetSheetList())

	v, err := f.GetCellValue("Data", "A1")
	require.NoError(t, err)
	assert.Equal(t, "id", v)
	// Three rows for the first table, one blank row, then the second header.
	v, err = f.GetCellValue("Data", "A5")
	require.NoError(t, err)
	assert.Equal(t, "x", v)
}

func TestWriteAppendRight(t *testing.T) {
	dir := t.TempDir()
	in := writeCSV(t, dir, "a.csv", "id,name\n1,alpha\n")
	out := filepath.Join(dir, "out.xlsx")

	_, err := execute(t, "write", in, "-o", out, "--sheet", "Data")
	require.NoError(t, err)
	_, err = execute(t, "write", in, "-o", out, "--sheet", "Data", "--append", "--position", "right")
	require.NoError(t, err)

	f, err := excelize.OpenFile(out)
	require.NoError(t, err)
	defer f.Close()
	v, err := f.GetCellValue("Data", "D1")
	require.NoError(t, err)
	assert.Equal(t, "id", v)
}

func TestWriteRejectsBadPosition(t *testing.T) {
	dir := t.TempDir()
	in := writeCSV(t, dir, "a.csv", "id\n1\n")

	_, err := execute(t, "write", in, "-o", filepath.Join(dir, "out.xlsx"), "--position", "up")
	assert.Error(t, err)
}

func TestChartAndSheets(t *testing.T) {
	dir := t.TempDir()
	in := writeCSV(t, dir, "sales.csv", "month,sales\n1,10\n2,15\n3,12\n")
	out := filepath.Join(dir, "out.xlsx")

	_, err := execute(t, "write", in, "-o", out, "--sheet", "Data")
	require.NoError(t, err)

	stdout, err := execute(t, "chart", in, "-o", out, "--sheet", "Data", "--x", "month", "--y", "sales", "--scale", "1")
	require.NoError(t, err)
	assert.Contains(t, stdout, "at D1")

	stdout, err = execute(t, "sheets", out, "--names-only")
	require.NoError(t, err)
	assert.Equal(t, `["Data"]`, strings.TrimSpace(stdout))

	stdout, err = execute(t, "sheets", out, "--sheet", "data")
	require.NoError(t, err)
	assert.Contains(t, stdout, `"name":"Data"`)
	assert.Contains(t, stdout, `"cell":"D1"`)

	_, err = execute(t, "sheets", out, "--sheet", "Missing")
	assert.Error(t, err)
}

func TestShowText(t *testing.T) {
	dir := t.TempDir()
	in := writeCSV(t, dir, "a.csv", "id,name\n1,alpha\n2,beta\n")
	out := filepath.Join(dir, "out.xlsx")

	_, err := execute(t, "write", in, "-o", out, "--sheet", "Data")
	require.NoError(t, err)

	stdout, err := execute(t, "show", out, "--sheet", "Data")
	require.NoError(t, err)
	assert.Contains(t, stdout, "alpha")
	assert.Contains(t, stdout, "name")
}

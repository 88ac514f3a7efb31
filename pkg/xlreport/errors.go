package xlreport

import (
	"errors"
	"fmt"
)

// ErrNotFound indicates the workbook file does not exist.
var ErrNotFound = errors.New("file not found")

// ErrFormat indicates the file is not a readable xlsx workbook.
var ErrFormat = errors.New("invalid xlsx format")

// ErrNoActiveSheet indicates an operation needs a sheet but none was selected.
var ErrNoActiveSheet = errors.New("no active sheet")

// ErrConfiguration indicates conflicting or invalid parameters.
var ErrConfiguration = errors.New("invalid configuration")

// ErrRegionOccupied indicates a table without a position was written to a sheet that already holds data.
var ErrRegionOccupied = fmt.Errorf("%w: sheet already holds data, use a position or explicit start cell", ErrConfiguration)

// ErrClosed indicates the writer was already closed.
var ErrClosed = errors.New("writer closed")

// IOError represents a file system failure while persisting a workbook.
type IOError struct {
	Op   string // "mkdir", "save", "render", "close"
	Path string
	Err  error
}

func (e *IOError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Err)
}

func (e *IOError) Unwrap() error {
	return e.Err
}

// NewIOError creates a new IOError.
func NewIOError(op, path string, err error) *IOError {
	return &IOError{
		Op:   op,
		Path: path,
		Err:  err,
	}
}

// configError wraps a parameter problem as ErrConfiguration.
func configError(format string, args ...interface{}) error {
	return fmt.Errorf("%w: %s", ErrConfiguration, fmt.Sprintf(format, args...))
}

// Package workspace changes the working directory for the length of a session.
//
// Analyses are usually run from a subdirectory (notebooks/, scripts/) of a
// project whose data and reports live one level up. A Session moves there on
// Setup and restores the original directory on Teardown.
package workspace

import (
	"errors"
	"fmt"
	"os"
)

// ErrTornDown indicates Teardown was already called.
var ErrTornDown = errors.New("workspace session already torn down")

// Options configures Setup.
type Options struct {
	// Dir is the directory to change to. It takes precedence over Up.
	Dir string
	// Up changes to the parent of the current directory.
	Up bool
}

// Session records the directory to restore on Teardown.
type Session struct {
	original string
	dir      string
	done     bool
}

// Setup records the current directory and changes to the one selected by opts.
// With neither Dir nor Up set the directory is left unchanged.
func Setup(opts Options) (*Session, error) {
	original, err := os.Getwd()
	if err != nil {
		return nil, fmt.Errorf("get working directory: %w", err)
	}

	target := ""
	switch {
	case opts.Dir != "":
		target = opts.Dir
	case opts.Up:
		target = ".."
	}

	if target != "" {
		if err := os.Chdir(target); err != nil {
			return nil, fmt.Errorf("change directory to %s: %w", target, err)
		}
	}

	dir, err := os.Getwd()
	if err != nil {
		os.Chdir(original)
		return nil, fmt.Errorf("get working directory: %w", err)
	}

	return &Session{original: original, dir: dir}, nil
}

// Dir returns the working directory selected by Setup.
func (s *Session) Dir() string { return s.dir }

// Original returns the directory that Teardown restores.
func (s *Session) Original() string { return s.original }

// Teardown restores the original working directory.
func (s *Session) Teardown() error {
	if s.done {
		return ErrTornDown
	}
	s.done = true
	if err := os.Chdir(s.original); err != nil {
		return fmt.Errorf("restore working directory %s: %w", s.original, err)
	}
	return nil
}

package core

import (
	"errors"
	"fmt"
)

// Domain errors - centralized error definitions
var (
	// ErrInputMissing signals that the dataset file does not exist. This is a
	// user-visible condition that aborts the run without writing a report.
	ErrInputMissing = errors.New("input dataset not found")

	// ErrEmptyDataset signals a dataset file with no header row.
	ErrEmptyDataset = errors.New("dataset has no header row")
)

// NewInputMissingError wraps ErrInputMissing with the offending path
func NewInputMissingError(path string) error {
	return fmt.Errorf("%w: %s", ErrInputMissing, path)
}

// IsInputMissing reports whether err indicates a missing dataset file
func IsInputMissing(err error) bool {
	return errors.Is(err, ErrInputMissing)
}

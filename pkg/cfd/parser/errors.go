// Package parser loads chart configurations and entry tables from files.
package parser

import (
	"errors"
	"fmt"
)

// ErrUnsupportedFormat indicates a file extension no reader handles.
var ErrUnsupportedFormat = errors.New("unsupported file format")

// ErrNoHeader indicates a table without a header row naming a date column.
var ErrNoHeader = errors.New("no header row with a date column")

// ParseError represents a table row that could not be read.
type ParseError struct {
	Source string // file or sheet name
	Row    int    // 1-based row number
	Err    error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse error in %s row %d: %v", e.Source, e.Row, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// NewParseError creates a new ParseError.
func NewParseError(source string, row int, err error) *ParseError {
	return &ParseError{
		Source: source,
		Row:    row,
		Err:    err,
	}
}

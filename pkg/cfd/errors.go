package cfd

import (
	"errors"
	"fmt"
)

// ErrNoConfig indicates a nil configuration.
var ErrNoConfig = errors.New("no settings")

// ErrNoSurface indicates a missing drawing surface or one that is not SVG.
var ErrNoSurface = errors.New("no svg")

// ErrNoData indicates a configuration without a dataset.
var ErrNoData = errors.New("no data")

// ErrNoEntries indicates a dataset whose entries were never set.
var ErrNoEntries = errors.New("no data entries")

// ErrEmptyEntries indicates a dataset with zero entries.
var ErrEmptyEntries = errors.New("empty data entries")

// ErrNoToDo indicates a dataset without to-do status keys.
var ErrNoToDo = errors.New("no toDo status defined")

// ErrNoProgress indicates a dataset without progress status keys.
var ErrNoProgress = errors.New("no progress status defined")

// ErrNoDone indicates a dataset without done status keys.
var ErrNoDone = errors.New("no done status defined")

// ErrDegenerateTrend indicates a prediction whose trend line never reaches
// completion: the start and the last entry share an x position, or done
// work is not growing between them.
var ErrDegenerateTrend = errors.New("prediction trend never reaches completion")

// ValidationError represents a configuration that cannot be drawn.
type ValidationError struct {
	Field string // "config", "svg", "data", "data.entries", "data.toDo", ...
	Err   error
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid chart settings (%s): %v", e.Field, e.Err)
}

func (e *ValidationError) Unwrap() error {
	return e.Err
}

// NewValidationError creates a new ValidationError.
func NewValidationError(field string, err error) *ValidationError {
	return &ValidationError{
		Field: field,
		Err:   err,
	}
}

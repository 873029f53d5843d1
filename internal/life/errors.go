package life

import (
	"errors"
	"fmt"
)

// Domain errors for board persistence.
var (
	// ErrDimensionMismatch indicates a saved board whose dimensions differ
	// from the grid it is being loaded into.
	ErrDimensionMismatch = errors.New("life: file dimensions do not match grid dimensions")
)

// DimensionError carries both dimension pairs of a failed load. It wraps
// ErrDimensionMismatch so callers can match with errors.Is.
type DimensionError struct {
	FileWidth, FileHeight int
	GridWidth, GridHeight int
}

func (e *DimensionError) Error() string {
	return fmt.Sprintf("life: file dimensions (%d, %d) don't match grid dimensions (%d, %d)",
		e.FileWidth, e.FileHeight, e.GridWidth, e.GridHeight)
}

func (e *DimensionError) Unwrap() error {
	return ErrDimensionMismatch
}

package bitnn

import (
	"errors"
	"fmt"
)

var (
	// ErrNoRandomSource is returned by Perturb when no random source was
	// configured and no default could be installed.
	ErrNoRandomSource = errors.New("no random source configured")
)

// ErrDimensionMismatch indicates a buffer whose length does not match the
// layer geometry.
type ErrDimensionMismatch struct {
	Expected int
	Actual   int
}

func (e *ErrDimensionMismatch) Error() string {
	return fmt.Sprintf("dimension mismatch: expected %d, got %d", e.Expected, e.Actual)
}

// ErrInvalidDimension indicates an invalid configured layer dimension.
type ErrInvalidDimension struct {
	Dimension int
}

func (e *ErrInvalidDimension) Error() string {
	return fmt.Sprintf("invalid dimension: %d", e.Dimension)
}

// ErrInvalidColumn indicates a column index outside the layer.
type ErrInvalidColumn struct {
	Index   int
	Columns int
}

func (e *ErrInvalidColumn) Error() string {
	return fmt.Sprintf("invalid column index %d: layer has %d columns", e.Index, e.Columns)
}

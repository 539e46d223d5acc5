package linalg

import (
	"errors"
	"fmt"
)

// Domain errors for matrix and vector operations.
var (
	// ErrIndexOutOfBounds indicates a row or column outside the matrix shape.
	ErrIndexOutOfBounds = errors.New("linalg: index out of bounds")

	// ErrDimensionMismatch indicates operands whose shapes are incompatible.
	ErrDimensionMismatch = errors.New("linalg: dimension mismatch")

	// ErrDegenerateVector indicates a zero-magnitude vector where a direction is required.
	ErrDegenerateVector = errors.New("linalg: degenerate (zero magnitude) vector")

	// ErrInvalidDimensions indicates a non-positive row or column count.
	ErrInvalidDimensions = errors.New("linalg: dimensions must be > 0")
)

func indexErrorf(method string, row, col int) error {
	return fmt.Errorf("Matrix.%s(%d,%d): %w", method, row, col, ErrIndexOutOfBounds)
}

func shapeErrorf(method string, r1, c1, r2, c2 int) error {
	return fmt.Errorf("Matrix.%s(%dx%d, %dx%d): %w", method, r1, c1, r2, c2, ErrDimensionMismatch)
}

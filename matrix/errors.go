// SPDX-License-Identifier: MIT

package matrix

import (
	"errors"
	"fmt"
)

// Every message is prefixed with "matrix: ". Return sentinels wrapped with an
// operation tag via matrixErrorf; callers match with errors.Is.
var (
	// ErrInvalidDimensions indicates that requested matrix dimensions are non-positive.
	ErrInvalidDimensions = errors.New("matrix: dimensions must be > 0")

	// ErrBadShape indicates ragged input rows.
	ErrBadShape = errors.New("matrix: invalid shape")

	// ErrOutOfRange indicates that a row or column index is outside valid bounds.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrDimensionMismatch indicates incompatible dimensions between operands.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrNonSquare signals that a square matrix was required but the input wasn't.
	ErrNonSquare = errors.New("matrix: matrix is not square")

	// ErrNilMatrix indicates that a nil *Dense was passed.
	ErrNilMatrix = errors.New("matrix: nil matrix")

	// ErrShortInput indicates the input stream ended before all entries were read.
	ErrShortInput = errors.New("matrix: not enough values in input")

	// ErrBadToken indicates a token in the input stream is not an integer.
	ErrBadToken = errors.New("matrix: malformed integer")
)

// Operation tags for error wrapping.
const (
	opMul       = "Mul"
	opStrassen  = "Strassen"
	opAt        = "At"
	opSet       = "Set"
	opFromRows  = "FromRows"
	opReadPair  = "ReadPair"
	opWriteDiag = "WriteDiagonal"
	opWriteMat  = "WriteMatrix"
	opRandom    = "Random"
)

// matrixErrorf wraps err with an operation tag, preserving it for errors.Is.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// This file defines ONLY package-level sentinel errors used across the matrix
// package. All functions return these sentinels (possibly wrapped with
// context) and tests check them via errors.Is. Nothing here panics on
// user-triggered error conditions.

package matrix

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/lvpath/core"
)

var (
	// ErrBadShape is returned when requested shape is invalid (r<=0, c<=0,
	// or ragged rows).
	ErrBadShape = errors.New("matrix: invalid shape")

	// ErrOutOfRange indicates that an index (row or column) is outside valid bounds.
	// Public indexers (At/Set/Row) return this, not panic.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrNonSquare signals that a square matrix was required but the input wasn't.
	ErrNonSquare = errors.New("matrix: matrix is not square")

	// ErrNonZeroDiagonal signals a distance matrix whose diagonal is not zero.
	ErrNonZeroDiagonal = errors.New("matrix: diagonal not zero")

	// ErrNilMatrix indicates that a nil *Dense was used.
	ErrNilMatrix = errors.New("matrix: nil receiver")

	// ErrGraphNil indicates that a nil *core.Graph was passed into an adapter.
	ErrGraphNil = errors.New("matrix: graph is nil")

	// ErrDistanceOverflow indicates that a path sum would reach the Inf sentinel.
	ErrDistanceOverflow = errors.New("matrix: path length overflows the distance range")

	// ErrUnreachable indicates a path request between vertices with no finite path.
	ErrUnreachable = errors.New("matrix: destination is unreachable")

	// ErrInvalidWeight indicates a negative entry in a distance matrix.
	ErrInvalidWeight = fmt.Errorf("matrix: %w", core.ErrInvalidWeight)
)

// matrixErrorf prefixes err with the operation tag.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

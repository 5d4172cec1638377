// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//  - Provide a single, canonical source of truth for distance-matrix checks.
//  - Keep kernels minimal by delegating nil/shape/weight checks here.
//  - Return sentinel errors tagged with the validator name.
//
// Determinism & Performance:
//  - All checks are pure, deterministic and allocate nothing.
//
// Note:
//  - Composite validators follow a fixed sequence: NotNil → Square → Entries.

package matrix

import "fmt"

// validatorErrorf wraps an underlying error with the given validator tag.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// ValidateSquare ensures m is non-nil and square.
//
// Errors: ErrNilMatrix, ErrNonSquare.
// Complexity: O(1).
func ValidateSquare(m *Dense) error {
	if m == nil {
		return validatorErrorf("ValidateSquare", ErrNilMatrix)
	}
	if m.r != m.c {
		return validatorErrorf("ValidateSquare", fmt.Errorf("%dx%d: %w", m.r, m.c, ErrNonSquare))
	}

	return nil
}

// ValidateDistances ensures m is a legal Floyd–Warshall input: square,
// zero diagonal, and every off-diagonal entry either Inf or ≥ 0.
//
// Errors: ErrNilMatrix, ErrNonSquare, ErrNonZeroDiagonal, ErrInvalidWeight.
// Complexity: O(n²).
func ValidateDistances(m *Dense) error {
	if err := ValidateSquare(m); err != nil {
		return err
	}

	n := m.r
	var i, j int
	var v int64
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			v = m.data[i*n+j]
			if i == j {
				if v != 0 {
					return validatorErrorf("ValidateDistances",
						fmt.Errorf("[%d,%d]=%d: %w", i, j, v, ErrNonZeroDiagonal))
				}
				continue
			}
			if v < 0 {
				return validatorErrorf("ValidateDistances",
					fmt.Errorf("[%d,%d]=%d: %w", i, j, v, ErrInvalidWeight))
			}
		}
	}

	return nil
}

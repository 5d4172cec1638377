// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Canonical dense APSP (Floyd–Warshall) implementation with deterministic loop order.
//   - In-place on the distance matrix, O(n³) time; optional next-hop table for paths.
//
// Contract:
//   - Square matrix; Inf means “no path”; diagonal must be 0; entries ≥ 0.

package matrix

import "fmt"

// Operation name constants for unified error wrapping.
const opFloydWarshall = "FloydWarshall"

// FloydWarshall computes all-pairs shortest paths in-place on d.
//
// Contract:
//   - d must pass ValidateDistances; a negative entry returns
//     ErrInvalidWeight before any cell is touched.
//   - ErrDistanceOverflow is returned after the closure completes, when some
//     pair is connected only by paths whose length reaches Inf. d then holds
//     every representable shortest distance and Inf for those pairs.
//
// Determinism:
//   - Loop order is fixed (k → i → j). k must be outermost: after round k,
//     d[i,j] is optimal over paths whose intermediates are all ≤ k.
//
// Complexity: Time O(n^3), Extra space O(1).
func FloydWarshall(d *Dense) error {
	if err := ValidateDistances(d); err != nil {
		return matrixErrorf(opFloydWarshall, err)
	}
	if err := floydWarshallInPlace(d, nil); err != nil {
		return matrixErrorf(opFloydWarshall, err)
	}

	return nil
}

// floydWarshallInPlace runs the APSP closure on a validated square *Dense.
// If next is non-nil it must have n*n entries; next[i*n+j] is rewritten to
// next[i*n+k] whenever the route i→j is improved through k.
//
// Inf legs are skipped before adding, and every finite sum is checked
// against the sentinel, so Inf never takes part in arithmetic. A sum that
// would reach Inf cannot improve any cell and is skipped; it only counts as
// an error if its cell is still Inf once all rounds are done.
func floydWarshallInPlace(d *Dense, next []int) error {
	n := d.r

	var (
		k, i, j      int   // loop indices
		baseK, baseI int   // row base offsets for K and I in the flat buffer
		ik, kj       int64 // distances d[i,k], d[k,j]
		cand         int64 // candidate path length via k
	)
	var overflow map[int][2]int64 // cell → first unrepresentable legs

	data := d.data
	for k = 0; k < n; k++ { // outer: pick intermediate vertex k
		baseK = k * n

		for i = 0; i < n; i++ { // middle: source vertex i
			ik = data[i*n+k]
			if ik == Inf { // i cannot reach k, so no path via k improves i→j
				continue
			}
			baseI = i * n

			for j = 0; j < n; j++ { // inner: destination vertex j
				kj = data[baseK+j]
				if kj == Inf {
					continue
				}
				if kj >= Inf-ik {
					if overflow == nil {
						overflow = make(map[int][2]int64)
					}
					if _, seen := overflow[baseI+j]; !seen {
						overflow[baseI+j] = [2]int64{ik, kj}
					}
					continue
				}
				cand = ik + kj
				if cand < data[baseI+j] { // strict improvement only (deterministic tie rule)
					data[baseI+j] = cand
					if next != nil {
						next[baseI+j] = next[baseI+k]
					}
				}
			}
		}
	}

	return overflowError(data, n, overflow)
}

// overflowError reports the first cell, in row-major order, that was only
// reachable through an unrepresentable sum.
func overflowError(data []int64, n int, overflow map[int][2]int64) error {
	bad := -1
	for cell := range overflow {
		if data[cell] == Inf && (bad < 0 || cell < bad) {
			bad = cell
		}
	}
	if bad < 0 {
		return nil
	}
	legs := overflow[bad]

	return fmt.Errorf("(%d,%d) %d + %d: %w", bad/n, bad%n, legs[0], legs[1], ErrDistanceOverflow)
}

package matrix

import (
	"fmt"

	"github.com/katalvlaran/lvpath/core"
)

// FromGraph builds the initial PairwiseDistanceMatrix of g:
//
//	diag = 0; arc u→v of weight w → min(current, w); everything else Inf.
//
// Parallel arcs keep the cheapest weight. A self-loop never lowers the
// diagonal below 0 because weights are non-negative.
//
// Errors: ErrGraphNil, ErrBadShape (empty graph), ErrInvalidWeight.
// Complexity: O(V² + E).
func FromGraph(g *core.Graph) (*Dense, error) {
	if g == nil {
		return nil, ErrGraphNil
	}

	adj := g.Adjacency()
	n := len(adj)
	if n == 0 {
		return nil, fmt.Errorf("FromGraph: empty graph: %w", ErrBadShape)
	}

	d := newDistances(n)
	for u, arcs := range adj {
		for _, a := range arcs {
			if a.Weight < 0 {
				return nil, fmt.Errorf("FromGraph: arc %d→%d weight=%d: %w", u, a.To, a.Weight, ErrInvalidWeight)
			}
			idx := u*n + int(a.To)
			if int(a.To) != u && a.Weight < d.data[idx] {
				d.data[idx] = a.Weight
			}
		}
	}

	return d, nil
}

// FromRows builds a distance matrix from a row-major table, using Inf for
// "no edge". The input is validated with ValidateDistances before it is
// returned, so a negative entry fails here, before any computation.
//
// Errors: ErrBadShape (no rows or ragged rows), ErrNonSquare,
// ErrNonZeroDiagonal, ErrInvalidWeight.
// Complexity: O(n²).
func FromRows(rows [][]int64) (*Dense, error) {
	r := len(rows)
	if r == 0 {
		return nil, fmt.Errorf("FromRows: %w", ErrBadShape)
	}
	c := len(rows[0])
	if c == 0 {
		return nil, fmt.Errorf("FromRows: %w", ErrBadShape)
	}

	d := &Dense{r: r, c: c, data: make([]int64, 0, r*c)}
	for i, row := range rows {
		if len(row) != c {
			return nil, fmt.Errorf("FromRows: row %d has %d entries, want %d: %w", i, len(row), c, ErrBadShape)
		}
		d.data = append(d.data, row...)
	}
	if err := ValidateDistances(d); err != nil {
		return nil, matrixErrorf("FromRows", err)
	}

	return d, nil
}

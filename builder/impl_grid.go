// SPDX-License-Identifier: MIT
//
// impl_grid.go - Grid(rows, cols): 4-neighborhood lattice, a road-network
// style fixture for shortest paths.
//
// Contract:
//   - Vertex IDs are "r,c" (row-major), independent of cfg.idFn.
//   - Emits right then down neighbors per cell in row-major order.
//   - Directed graphs get both directions, each with its own weight draw.

package builder

import (
	"fmt"

	"github.com/katalvlaran/lvpath/core"
)

const (
	methodGrid = "Grid"
	minGridDim = 1
	gridIDFmt  = "%d,%d"
)

// GridID returns the vertex name Grid uses for cell (r, c).
func GridID(r, c int) string { return fmt.Sprintf(gridIDFmt, r, c) }

// Grid returns a Constructor for an R×C 4-neighborhood grid.
// Complexity: O(R*C).
func Grid(rows, cols int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if rows < minGridDim || cols < minGridDim {
			return fmt.Errorf("%s: rows=%d, cols=%d (each must be ≥ %d): %w",
				methodGrid, rows, cols, minGridDim, ErrTooFewVertices)
		}

		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				id := GridID(r, c)
				if _, err := g.AddVertex(id); err != nil {
					return fmt.Errorf("%s: AddVertex(%s): %w", methodGrid, id, err)
				}
			}
		}

		directed := g.Directed()
		link := func(u, v string) error {
			if err := addEdge(methodGrid, g, cfg, u, v); err != nil {
				return err
			}
			if directed {
				return addEdge(methodGrid, g, cfg, v, u)
			}

			return nil
		}

		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				u := GridID(r, c)
				if c+1 < cols {
					if err := link(u, GridID(r, c+1)); err != nil {
						return err
					}
				}
				if r+1 < rows {
					if err := link(u, GridID(r+1, c)); err != nil {
						return err
					}
				}
			}
		}

		return nil
	}
}

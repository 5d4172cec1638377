// SPDX-License-Identifier: MIT
//
// impl_path.go - Path(n) and Cycle(n).
//
// Contract:
//   - Adds vertices via cfg.idFn in ascending index order (0..n-1).
//   - Emits edges i-1 → i in increasing i; Cycle adds the closing n-1 → 0.
//   - One weight draw per emitted edge.

package builder

import (
	"fmt"

	"github.com/katalvlaran/lvpath/core"
)

const (
	methodPath    = "Path"
	methodCycle   = "Cycle"
	minPathNodes  = 2
	minCycleNodes = 3
)

// Path returns a Constructor that builds the simple path P_n (n ≥ 2).
// Complexity: O(n).
func Path(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minPathNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodPath, n, minPathNodes, ErrTooFewVertices)
		}

		return chain(methodPath, g, cfg, n, false)
	}
}

// Cycle returns a Constructor that builds the simple cycle C_n (n ≥ 3).
// Complexity: O(n).
func Cycle(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minCycleNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodCycle, n, minCycleNodes, ErrTooFewVertices)
		}

		return chain(methodCycle, g, cfg, n, true)
	}
}

func chain(method string, g *core.Graph, cfg builderConfig, n int, closed bool) error {
	if err := addVertices(method, g, cfg, n); err != nil {
		return err
	}
	for i := 1; i < n; i++ {
		if err := addEdge(method, g, cfg, cfg.idFn(i-1), cfg.idFn(i)); err != nil {
			return err
		}
	}
	if closed {
		return addEdge(method, g, cfg, cfg.idFn(n-1), cfg.idFn(0))
	}

	return nil
}

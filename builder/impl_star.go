package builder

import (
	"fmt"

	"github.com/katalvlaran/lvpath/core"
)

const (
	methodStar   = "Star"
	minStarNodes = 2
)

// Star returns a Constructor for a hub (index 0) with n-1 spokes 0 → i.
// Complexity: O(n).
func Star(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minStarNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodStar, n, minStarNodes, ErrTooFewVertices)
		}
		if err := addVertices(methodStar, g, cfg, n); err != nil {
			return err
		}
		hub := cfg.idFn(0)
		for i := 1; i < n; i++ {
			if err := addEdge(methodStar, g, cfg, hub, cfg.idFn(i)); err != nil {
				return err
			}
		}

		return nil
	}
}

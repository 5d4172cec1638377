package builder

import (
	"fmt"

	"github.com/katalvlaran/lvpath/core"
)

const (
	methodComplete   = "Complete"
	minCompleteNodes = 1
)

// Complete returns a Constructor for K_n. Undirected graphs get one edge
// per unordered pair (i<j); directed graphs get both i → j and j → i, each
// with its own weight draw.
// Complexity: O(n²).
func Complete(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minCompleteNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodComplete, n, minCompleteNodes, ErrTooFewVertices)
		}
		if err := addVertices(methodComplete, g, cfg, n); err != nil {
			return err
		}

		directed := g.Directed()
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				if err := addEdge(methodComplete, g, cfg, cfg.idFn(i), cfg.idFn(j)); err != nil {
					return err
				}
				if directed {
					if err := addEdge(methodComplete, g, cfg, cfg.idFn(j), cfg.idFn(i)); err != nil {
						return err
					}
				}
			}
		}

		return nil
	}
}

package builder

import (
	"fmt"
	"math/rand"

	"github.com/katalvlaran/lvpath/core"
)

// WeightFn draws one edge weight. rng is nil when no seed was configured.
type WeightFn func(rng *rand.Rand) int64

// ConstantWeightFn always returns value. Panics unless 0 ≤ value < core.Infinity.
func ConstantWeightFn(value int64) WeightFn {
	if value < 0 || value == core.Infinity {
		panic(fmt.Sprintf("ConstantWeightFn: value must be in [0, Infinity), got %d", value))
	}

	return func(_ *rand.Rand) int64 { return value }
}

// UniformWeightFn draws uniformly from [min,max]. Without an rng it returns
// min, so unseeded builds stay deterministic.
// Panics unless 0 ≤ min ≤ max < core.Infinity.
func UniformWeightFn(min, max int64) WeightFn {
	if min < 0 || max < min || max == core.Infinity {
		panic(fmt.Sprintf("UniformWeightFn: require 0 ≤ min ≤ max < Infinity, got min=%d, max=%d", min, max))
	}

	return func(rng *rand.Rand) int64 {
		if rng == nil || max == min {
			return min
		}

		return min + rng.Int63n(max-min+1)
	}
}

// WithConstantWeight is WithWeightFn(ConstantWeightFn(w)).
func WithConstantWeight(w int64) BuilderOption {
	return WithWeightFn(ConstantWeightFn(w))
}

// WithUniformWeight is WithWeightFn(UniformWeightFn(min, max)).
func WithUniformWeight(min, max int64) BuilderOption {
	return WithWeightFn(UniformWeightFn(min, max))
}

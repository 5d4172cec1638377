package builder

import (
	"math/rand"
	"strconv"
)

// builderConfig is the resolved option set shared by every Constructor of
// one BuildGraph call.
type builderConfig struct {
	idFn     IDFn       // index → vertex name
	rng      *rand.Rand // nil unless WithSeed/WithRand
	weightFn WeightFn   // draws one edge weight
}

// DefaultEdgeWeight is the weight of every edge unless a WeightFn is set.
const DefaultEdgeWeight int64 = 1

func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		idFn:     DefaultIDFn,
		weightFn: ConstantWeightFn(DefaultEdgeWeight),
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// BuilderOption customizes a BuildGraph call.
type BuilderOption func(*builderConfig)

// WithIDScheme sets the vertex naming scheme. Panics on nil.
func WithIDScheme(fn IDFn) BuilderOption {
	if fn == nil {
		panic("builder: WithIDScheme(nil)")
	}
	return func(c *builderConfig) { c.idFn = fn }
}

// WithRand uses r for every random draw. Panics on nil.
func WithRand(r *rand.Rand) BuilderOption {
	if r == nil {
		panic("builder: WithRand(nil)")
	}
	return func(c *builderConfig) { c.rng = r }
}

// WithSeed uses a fresh source seeded with seed.
func WithSeed(seed int64) BuilderOption {
	return func(c *builderConfig) { c.rng = rand.New(rand.NewSource(seed)) }
}

// WithWeightFn sets the edge weight distribution. Panics on nil.
func WithWeightFn(fn WeightFn) BuilderOption {
	if fn == nil {
		panic("builder: WithWeightFn(nil)")
	}
	return func(c *builderConfig) { c.weightFn = fn }
}

// IDFn maps a vertex index to its name.
type IDFn func(idx int) string

// DefaultIDFn names vertices "0","1",….
func DefaultIDFn(idx int) string { return strconv.Itoa(idx) }

// SymbolIDFn names vertices "A".."Z". Panics outside [0,25].
func SymbolIDFn(idx int) string {
	if idx < 0 || idx > 25 {
		panic("builder: SymbolIDFn index out of [0,25]: " + strconv.Itoa(idx))
	}

	return string(rune('A' + idx))
}

// ExcelColumnIDFn names vertices like spreadsheet columns: "A".."Z","AA","AB",….
func ExcelColumnIDFn(idx int) string {
	if idx < 0 {
		panic("builder: ExcelColumnIDFn negative index: " + strconv.Itoa(idx))
	}
	var runes []rune
	for i := idx; i >= 0; i = i/26 - 1 {
		runes = append(runes, rune('A'+(i%26)))
	}
	for i, j := 0, len(runes)-1; i < j; i, j = i+1, j-1 {
		runes[i], runes[j] = runes[j], runes[i]
	}

	return string(runes)
}

// SymbolNumberIDFn names vertices prefix+index, e.g. "S0","S1".
func SymbolNumberIDFn(prefix string) IDFn {
	return func(idx int) string { return prefix + strconv.Itoa(idx) }
}

// WithSymbolIDs is WithIDScheme(SymbolIDFn).
func WithSymbolIDs() BuilderOption { return WithIDScheme(SymbolIDFn) }

// WithExcelColumnIDs is WithIDScheme(ExcelColumnIDFn).
func WithExcelColumnIDs() BuilderOption { return WithIDScheme(ExcelColumnIDFn) }

// WithSymbNumb is WithIDScheme(SymbolNumberIDFn(prefix)).
func WithSymbNumb(prefix string) BuilderOption { return WithIDScheme(SymbolNumberIDFn(prefix)) }

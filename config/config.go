// Package config reads a TOML graph description: the network, the query to
// run against it, and the logging setup.
//
//	directed = false
//	vertices = ["F"]          # optional, for vertices with no edges
//
//	[[edge]]
//	from = "A"
//	to = "B"
//	weight = 10
//
//	[query]
//	mode = "single"           # or "all"
//	source = "A"
//	thousands = false
//
//	[logging]
//	level = "info"
//	format = "text"
//	logfile = ""              # rotate to this file when set
//	max_log_size = 10
//	max_log_age = 7
package config

import (
	"errors"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/katalvlaran/lvpath/core"
	"github.com/katalvlaran/lvpath/internal/logging"
)

// Query modes.
const (
	ModeSingle = "single"
	ModeAll    = "all"
)

var (
	// ErrNoEdges is returned for a description without any [[edge]].
	ErrNoEdges = errors.New("config: no edges")

	// ErrBadMode is returned for a query mode other than "single" or "all".
	ErrBadMode = errors.New("config: query mode must be \"single\" or \"all\"")

	// ErrNoSource is returned for a single-source query without a source.
	ErrNoSource = errors.New("config: single-source query needs a source")

	// ErrUnknownKey is returned when the file has keys no field decodes.
	ErrUnknownKey = errors.New("config: unknown key")
)

// Edge is one [[edge]] entry.
type Edge struct {
	From   string `toml:"from"`
	To     string `toml:"to"`
	Weight int64  `toml:"weight"`
}

// Query is the [query] table.
type Query struct {
	Mode      string `toml:"mode"`
	Source    string `toml:"source"`
	Thousands bool   `toml:"thousands"`
}

// Config is a whole graph description.
type Config struct {
	Directed bool           `toml:"directed"`
	Vertices []string       `toml:"vertices"`
	Edges    []Edge         `toml:"edge"`
	Query    Query          `toml:"query"`
	Logging  logging.Config `toml:"logging"`
}

// Default returns the values used for keys a file leaves out.
func Default() Config {
	return Config{
		Query: Query{Mode: ModeSingle},
		Logging: logging.Config{
			Level:   "info",
			Format:  "text",
			MaxSize: 10,
			MaxAge:  7,
		},
	}
}

// Load decodes the TOML file at filename over Default. It rejects unknown
// keys but leaves Validate to the caller, so command-line overrides can be
// applied first.
func Load(filename string) (*Config, error) {
	if filename == "" {
		return nil, fmt.Errorf("config: no TOML file provided")
	}
	c := Default()
	md, err := toml.DecodeFile(filename, &c)
	if err != nil {
		return nil, fmt.Errorf("config: could not decode %s: %w", filename, err)
	}

	return checkKeys(&c, md)
}

// Decode is Load for an io.Reader.
func Decode(r io.Reader) (*Config, error) {
	c := Default()
	md, err := toml.NewDecoder(r).Decode(&c)
	if err != nil {
		return nil, fmt.Errorf("config: could not decode: %w", err)
	}

	return checkKeys(&c, md)
}

func checkKeys(c *Config, md toml.MetaData) (*Config, error) {
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		sort.Strings(keys)

		return nil, fmt.Errorf("%w: %s", ErrUnknownKey, strings.Join(keys, ", "))
	}

	return c, nil
}

// Validate checks the parts of c that can be judged without building the graph.
// Weights and self-loops are left to core.Graph.
func (c *Config) Validate() error {
	if len(c.Edges) == 0 {
		return ErrNoEdges
	}
	c.Query.Mode = strings.ToLower(c.Query.Mode)
	switch c.Query.Mode {
	case ModeSingle:
		if c.Query.Source == "" {
			return ErrNoSource
		}
	case ModeAll:
	default:
		return fmt.Errorf("%w: %q", ErrBadMode, c.Query.Mode)
	}

	return nil
}

// Graph builds and freezes the described graph. Vertices listed under
// vertices are registered first, in order, then edge endpoints as they appear.
func (c *Config) Graph() (*core.Graph, error) {
	g := core.NewGraph(core.WithDirected(c.Directed), core.WithCapacity(len(c.Vertices)+len(c.Edges)))
	for _, name := range c.Vertices {
		if name == "" {
			return nil, fmt.Errorf("config: empty vertex name")
		}
		if _, err := g.AddVertex(name); err != nil {
			return nil, err
		}
	}
	for i, e := range c.Edges {
		if e.From == "" || e.To == "" {
			return nil, fmt.Errorf("config: edge %d: empty endpoint", i)
		}
		if err := g.AddEdgeByName(e.From, e.To, e.Weight); err != nil {
			return nil, fmt.Errorf("config: edge %d %s-%s: %w", i, e.From, e.To, err)
		}
	}
	g.Freeze()

	return g, nil
}

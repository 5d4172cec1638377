package app

import (
	"errors"

	"github.com/katalvlaran/lvpath/config"
)

// Config holds the command-line settings for one run. Empty strings leave
// the value from the description file in place.
type Config struct {
	ConfigPath string // TOML graph description

	Source    string
	Mode      string
	Thousands bool

	LogFormat string
	LogLevel  string
	LogFile   string
}

// NewConfig validates cfg and returns a copy.
func NewConfig(cfg Config) (*Config, error) {
	if cfg.ConfigPath == "" {
		return nil, errors.New("ConfigPath is a required configuration field and cannot be empty")
	}

	return &cfg, nil
}

// apply overlays the command-line settings on a loaded description.
func (c *Config) apply(d *config.Config) {
	if c.Source != "" {
		d.Query.Source = c.Source
	}
	if c.Mode != "" {
		d.Query.Mode = c.Mode
	}
	if c.Thousands {
		d.Query.Thousands = true
	}
	if c.LogLevel != "" {
		d.Logging.Level = c.LogLevel
	}
	if c.LogFormat != "" {
		d.Logging.Format = c.LogFormat
	}
	if c.LogFile != "" {
		d.Logging.Logfile = c.LogFile
	}
}

// Package logging builds the slog.Logger used by the lvpath command, with an
// optional rotating log file.
package logging

import (
	"io"
	"log/slog"
	"strings"

	"github.com/natefinch/lumberjack"
)

// Config is the [logging] table of a graph description.
type Config struct {
	Level   string `toml:"level"`
	Format  string `toml:"format"`
	Logfile string `toml:"logfile"`
	MaxSize int    `toml:"max_log_size"` // megabytes
	MaxAge  int    `toml:"max_log_age"`  // days
}

// New creates a logger writing to outW. Unknown levels fall back to info and
// any format other than "json" produces text. It does not set the global logger.
func New(levelStr, formatStr string, outW io.Writer) *slog.Logger {
	var level slog.Level
	switch strings.ToLower(levelStr) {
	case "debug":
		level = slog.LevelDebug
	case "info":
		level = slog.LevelInfo
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}

	handlerOpts := &slog.HandlerOptions{Level: level}
	var handler slog.Handler

	if strings.ToLower(formatStr) == "json" {
		handler = slog.NewJSONHandler(outW, handlerOpts)
	} else {
		handler = slog.NewTextHandler(outW, handlerOpts)
	}

	return slog.New(handler)
}

// Open returns a logger for c and the closer for its sink. With no Logfile
// the logger writes to fallback and the closer is a no-op; otherwise records
// go to a lumberjack file rotated by size and age.
func Open(c Config, fallback io.Writer) (*slog.Logger, io.Closer) {
	if c.Logfile == "" {
		return New(c.Level, c.Format, fallback), nopCloser{}
	}
	l := &lumberjack.Logger{
		Filename: c.Logfile,
		MaxSize:  c.MaxSize,
		MaxAge:   c.MaxAge,
	}

	return New(c.Level, c.Format, l), l
}

// ValidLevel reports whether s names a level New understands.
func ValidLevel(s string) bool {
	switch strings.ToLower(s) {
	case "debug", "info", "warn", "error":
		return true
	}

	return false
}

// ValidFormat reports whether s is "text" or "json".
func ValidFormat(s string) bool {
	s = strings.ToLower(s)

	return s == "text" || s == "json"
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

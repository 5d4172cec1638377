package cli

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"strings"

	"github.com/katalvlaran/lvpath/config"
	"github.com/katalvlaran/lvpath/internal/app"
	"github.com/katalvlaran/lvpath/internal/logging"
)

// ExitError is an error that carries the process exit code.
type ExitError struct {
	Code    int
	Message string
}

// Error implements the error interface for ExitError.
func (e *ExitError) Error() string {
	return e.Message
}

// Parse processes command-line arguments. It returns the populated
// app.Config, whether the program should exit cleanly (help or no input),
// or an *ExitError.
func Parse(args []string, output io.Writer) (*app.Config, bool, error) {
	flagSet := flag.NewFlagSet("lvpath", flag.ContinueOnError)
	flagSet.SetOutput(output)

	flagSet.Usage = func() {
		fmt.Fprint(output, `
lvpath - shortest paths over a weighted graph.

Usage:
  lvpath [options] [CONFIG]

Arguments:
  CONFIG
    Path to a TOML graph description.

Options:
`)
		flagSet.PrintDefaults()
	}

	configFlag := flagSet.String("config", "", "Path to the TOML graph description.")
	sourceFlag := flagSet.String("source", "", "Source vertex for a single-source query. Overrides [query] source.")
	modeFlag := flagSet.String("mode", "", "Query mode. Options: 'single' or 'all'. Overrides [query] mode.")
	thousandsFlag := flagSet.Bool("thousands", false, "Group digits of distances with commas.")
	logFormatFlag := flagSet.String("log-format", "", "Log output format. Options: 'text' or 'json'.")
	logLevelFlag := flagSet.String("log-level", "", "Set the logging level. Options: 'debug', 'info', 'warn', 'error'.")
	logFileFlag := flagSet.String("log-file", "", "Write logs to this rotating file instead of stderr.")

	if err := flagSet.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil, true, nil
		}
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}

	path := *configFlag
	if path == "" && flagSet.NArg() > 0 {
		path = flagSet.Arg(0)
	}
	if path == "" {
		flagSet.Usage()
		return nil, true, nil
	}

	mode := strings.ToLower(*modeFlag)
	if mode != "" && mode != config.ModeSingle && mode != config.ModeAll {
		return nil, false, &ExitError{Code: 2, Message: "invalid mode: must be 'single' or 'all'"}
	}
	if *logFormatFlag != "" && !logging.ValidFormat(*logFormatFlag) {
		return nil, false, &ExitError{Code: 2, Message: "invalid log-format: must be 'text' or 'json'"}
	}
	if *logLevelFlag != "" && !logging.ValidLevel(*logLevelFlag) {
		return nil, false, &ExitError{Code: 2, Message: "invalid log-level: must be 'debug', 'info', 'warn', or 'error'"}
	}

	cfg, err := app.NewConfig(app.Config{
		ConfigPath: path,
		Source:     *sourceFlag,
		Mode:       mode,
		Thousands:  *thousandsFlag,
		LogFormat:  strings.ToLower(*logFormatFlag),
		LogLevel:   strings.ToLower(*logLevelFlag),
		LogFile:    *logFileFlag,
	})
	if err != nil {
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}

	return cfg, false, nil
}

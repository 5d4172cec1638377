package app

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/DmitriyVTitov/size"
	"github.com/dustin/go-humanize"

	"github.com/katalvlaran/lvpath/config"
	"github.com/katalvlaran/lvpath/core"
	"github.com/katalvlaran/lvpath/dijkstra"
	"github.com/katalvlaran/lvpath/internal/logging"
	"github.com/katalvlaran/lvpath/matrix"
	"github.com/katalvlaran/lvpath/report"
)

// App runs one query. Reports go to outW, log records to errW unless the
// description names a log file.
type App struct {
	outW io.Writer
	errW io.Writer
	cfg  *Config
}

// NewApp is the constructor for the application.
func NewApp(outW, errW io.Writer, cfg *Config) *App {
	return &App{outW: outW, errW: errW, cfg: cfg}
}

// Run loads the description, builds the graph and writes the report for the
// configured query mode.
func (a *App) Run(ctx context.Context) (err error) {
	desc, err := config.Load(a.cfg.ConfigPath)
	if err != nil {
		return err
	}
	a.cfg.apply(desc)
	if err = desc.Validate(); err != nil {
		return err
	}

	logger, closer := logging.Open(desc.Logging, a.errW)
	defer func() {
		if cerr := closer.Close(); err == nil {
			err = cerr
		}
	}()
	logger.Debug("Description loaded.", "path", a.cfg.ConfigPath, "mode", desc.Query.Mode)

	g, err := desc.Graph()
	if err != nil {
		return err
	}
	st := g.Stats()
	logger.Info("Graph built.",
		"directed", st.Directed,
		"vertices", humanize.Comma(int64(st.VertexCount)),
		"edges", humanize.Comma(int64(st.EdgeCount)),
	)

	if err = ctx.Err(); err != nil {
		return err
	}

	var opts []report.Option
	if desc.Query.Thousands {
		opts = append(opts, report.WithThousands())
	}

	start := time.Now()
	switch desc.Query.Mode {
	case config.ModeAll:
		err = a.allPairs(g, logger, opts)
	default:
		err = a.singleSource(g, desc.Query.Source, logger, opts)
	}
	if err != nil {
		return err
	}
	logger.Info("Query complete.", "mode", desc.Query.Mode, "elapsed", time.Since(start))

	return nil
}

func (a *App) singleSource(g *core.Graph, source string, logger *slog.Logger, opts []report.Option) error {
	res, err := dijkstra.DijkstraByName(g, source, dijkstra.WithLogger(logger))
	if err != nil {
		return err
	}
	logger.Debug("Distance table ready.",
		"reached", len(res.ReachableVertices()),
		"bytes", humanize.Bytes(uint64(size.Of(res))),
	)
	if err = report.ShortestPaths(a.outW, g, res, opts...); err != nil {
		return err
	}
	if _, err = fmt.Fprintln(a.outW); err != nil {
		return err
	}
	if err = report.Routes(a.outW, g, res, opts...); err != nil {
		return err
	}
	if _, err = fmt.Fprintln(a.outW); err != nil {
		return err
	}

	return report.Reachable(a.outW, g, res, opts...)
}

func (a *App) allPairs(g *core.Graph, logger *slog.Logger, opts []report.Option) error {
	p, err := matrix.AllPairs(g, matrix.WithLogger(logger))
	if err != nil {
		return err
	}
	logger.Debug("Distance matrix ready.", "bytes", humanize.Bytes(uint64(size.Of(p))))

	return report.Matrix(a.outW, g, p.Dist, opts...)
}

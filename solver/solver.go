// Package solver runs every configured constraint set over heat-loss grids.
//
// A Solver parses each input once and runs one independent search per
// variant. Many inputs can be solved concurrently with SolveFiles; a single
// search is never split across goroutines.
package solver

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/heatpath/config"
	"github.com/katalvlaran/heatpath/dijkstra"
	"github.com/katalvlaran/heatpath/gridgraph"
)

// Answer is the outcome of one variant on one grid.
// When Reachable is false Cost is meaningless and Path is nil.
type Answer struct {
	Variant   string
	Cost      int64
	Reachable bool
	Path      []gridgraph.Point
	Settled   int
	Duration  time.Duration
}

// Report collects the answers for one input, in variant order.
type Report struct {
	Source  string
	Width   int
	Height  int
	Answers []Answer
}

// Solver is safe for concurrent use; it holds no per-search state.
type Solver struct {
	cfg    config.Config
	logger *slog.Logger
	opts   []dijkstra.Option
}

// New validates cfg and returns a Solver. A nil logger discards output.
func New(cfg config.Config, logger *slog.Logger) (*Solver, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Solver{cfg: cfg, logger: logger, opts: cfg.Search.Options()}, nil
}

// SolveFiles solves each file independently, at most cfg.Workers at a time.
// Reports are returned in the order of paths. The first failure cancels the
// remaining work and is returned.
func (s *Solver) SolveFiles(ctx context.Context, paths []string) ([]Report, error) {
	reports := make([]Report, len(paths))
	g, gCtx := errgroup.WithContext(ctx)
	g.SetLimit(s.cfg.Workers)

	for i, path := range paths {
		g.Go(func() error {
			f, err := os.Open(path)
			if err != nil {
				return fmt.Errorf("solver: %w", err)
			}
			defer f.Close()

			rep, err := s.Solve(gCtx, path, f)
			if err != nil {
				return err
			}
			reports[i] = rep
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return reports, nil
}

// Solve parses r as a digit grid and solves every variant.
// source names the input in logs, traces and errors.
func (s *Solver) Solve(ctx context.Context, source string, r io.Reader) (Report, error) {
	g, err := gridgraph.Parse(r)
	if err != nil {
		parseErrors.Inc()
		return Report{}, fmt.Errorf("solver: %s: %w", source, err)
	}
	return s.SolveGrid(ctx, source, g)
}

// SolveGrid solves every variant on an already parsed grid.
// An unreachable goal is reported as Reachable=false, not as an error.
func (s *Solver) SolveGrid(ctx context.Context, source string, g *gridgraph.GridGraph) (Report, error) {
	ctx, span := tracer.Start(ctx, "solver.SolveGrid",
		trace.WithAttributes(
			attribute.String("source", source),
			attribute.Int("width", g.Width),
			attribute.Int("height", g.Height),
			attribute.Int("variants", len(s.cfg.Variants)),
		),
	)
	defer span.End()

	rep := Report{
		Source:  source,
		Width:   g.Width,
		Height:  g.Height,
		Answers: make([]Answer, 0, len(s.cfg.Variants)),
	}
	for _, v := range s.cfg.Variants {
		ans, err := s.searchVariant(ctx, source, g, v)
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
			return Report{}, fmt.Errorf("solver: %s: variant %s: %w", source, v.Name, err)
		}
		rep.Answers = append(rep.Answers, ans)
	}

	span.SetStatus(codes.Ok, "")
	return rep, nil
}

// searchVariant runs a single constrained search and records its metrics.
func (s *Solver) searchVariant(ctx context.Context, source string, g *gridgraph.GridGraph, v config.Variant) (Answer, error) {
	ctx, span := tracer.Start(ctx, "solver.searchVariant",
		trace.WithAttributes(
			attribute.String("variant", v.Name),
			attribute.Int("min_run", v.MinRun),
			attribute.Int("max_run", v.MaxRun),
		),
	)
	defer span.End()

	opts := make([]dijkstra.Option, 0, len(s.opts)+2)
	opts = append(opts, s.opts...)
	opts = append(opts,
		dijkstra.WithConstraints(v.Constraints()),
		dijkstra.WithLogger(s.logger.With(slog.String("source", source), slog.String("variant", v.Name))),
	)

	start := time.Now()
	res, err := dijkstra.Search(ctx, g, opts...)
	elapsed := time.Since(start)
	solveDuration.WithLabelValues(v.Name).Observe(elapsed.Seconds())

	ans := Answer{
		Variant:  v.Name,
		Settled:  res.Settled,
		Duration: elapsed,
	}
	switch {
	case errors.Is(err, dijkstra.ErrUnreachable):
		solveTotal.WithLabelValues(v.Name, resultUnreachable).Inc()
		settledStates.WithLabelValues(v.Name).Observe(float64(res.Settled))
		span.SetAttributes(attribute.Bool("reachable", false))
		s.logger.Warn("goal unreachable",
			slog.String("source", source),
			slog.String("variant", v.Name),
			slog.Int("settled", res.Settled),
		)
		return ans, nil
	case err != nil:
		solveTotal.WithLabelValues(v.Name, resultError).Inc()
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return Answer{}, err
	}

	solveTotal.WithLabelValues(v.Name, resultOK).Inc()
	settledStates.WithLabelValues(v.Name).Observe(float64(res.Settled))
	span.SetAttributes(
		attribute.Bool("reachable", true),
		attribute.Int64("cost", res.Cost),
		attribute.Int("settled", res.Settled),
	)
	s.logger.Info("variant solved",
		slog.String("source", source),
		slog.String("variant", v.Name),
		slog.Int64("cost", res.Cost),
		slog.Int("settled", res.Settled),
		slog.Duration("elapsed", elapsed),
	)

	ans.Cost = res.Cost
	ans.Reachable = true
	ans.Path = res.Path
	return ans, nil
}

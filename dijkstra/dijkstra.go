// Package dijkstra implements Dijkstra's shortest-path algorithm over the
// constrained state space of a cost grid.
//
// The search expands StateKey values in order of increasing accumulated cost
// using a min-heap priority queue. Duplicates are pushed freely and discarded
// when popped if their state was already settled.
//
// Complexity:
//
//   - Time:  O(S log S), S = cells × 4 × MaxRun
//   - Each state is settled at most once.
//   - Each settle pushes at most 4 entries.
//   - Space: O(S)
//
// Notes on implementation choices:
//
//   - We validate constraints up front and fail fast with ErrBadRunBounds.
//   - We treat any cell with cost ≥ Impassable as a “wall”, and skip the
//     search when walls disconnect the goal from the start.
//   - We check the context once per pop; cancellation discards all state.
//   - We use a “lazy” decrease-key strategy: pushing duplicates into the heap and ignoring stale entries.
package dijkstra

import (
	"container/heap"
	"context"
	"fmt"
	"log/slog"

	"github.com/katalvlaran/heatpath/gridgraph"
)

// Search computes the minimum accumulated cost of a route from the top-left
// to the bottom-right cell of g, where every move costs the value of the cell
// entered and run lengths obey Options.Constraints.
//
// The search starts from two synthetic states at the top-left cell, facing
// Right and Down with run length 0. A popped state ends the search when it is
// at the goal cell with Run >= MinRun. A state at the goal with a shorter run
// is settled like any other but does not stop the search. If the frontier
// empties first, the settled-set is scanned for the cheapest qualifying goal
// state; if there is none, ErrUnreachable is returned together with the
// work counters.
//
// A 1×1 grid has start == goal: the result is cost 0 with no moves, whatever
// the constraints.
//
// Preconditions and validation (in order):
//  1. g must be non-nil (ErrNilGraph).
//  2. Constraints must satisfy 1 <= MinRun <= MaxRun (ErrBadRunBounds).
//
// Other errors:
//
//   - ErrFrontierLimit when the frontier would exceed its bound.
//   - ctx.Err(), wrapped, when ctx is cancelled during the search.
func Search(ctx context.Context, g *gridgraph.GridGraph, opts ...Option) (Result, error) {
	// 1) Build Options
	cfg := DefaultOptions()
	var opt Option
	for _, opt = range opts {
		opt(&cfg)
	}

	// 2) Validate graph is non-nil
	if g == nil {
		return Result{}, ErrNilGraph
	}

	// 3) Validate run bounds
	if err := cfg.Constraints.Validate(); err != nil {
		return Result{}, err
	}

	// 4) Trivial case: start is the goal, nothing to move.
	if g.Start() == g.Goal() {
		res := Result{End: StateKey{Pos: g.Start()}}
		if cfg.ReturnPath {
			res.Path = []gridgraph.Point{g.Start()}
		}
		return res, nil
	}

	// 5) Walls may cut the goal off entirely; no need to search then.
	if cfg.Impassable <= gridgraph.MaxCost && !g.Reachable(g.Start(), g.Goal(), cfg.Impassable) {
		return Result{}, ErrUnreachable
	}

	limit := cfg.MaxFrontier
	if limit == 0 {
		limit = frontierBound(g, cfg.Constraints)
	}

	r := &runner{
		g:       g,
		options: cfg,
		goal:    g.Goal(),
		limit:   limit,
		pq:      make(frontier, 0, 64),
		settled: make(settledSet, g.Cells()*4),
		buf:     make([]Transition, 0, 4),
	}
	if cfg.ReturnPath {
		r.prev = make(map[StateKey]StateKey, g.Cells()*4)
	}

	cfg.Logger.Debug("dijkstra: search started",
		slog.Int("width", g.Width),
		slog.Int("height", g.Height),
		slog.Int("min_run", cfg.Constraints.MinRun),
		slog.Int("max_run", cfg.Constraints.MaxRun),
		slog.Int("frontier_limit", limit),
	)

	res, err := r.run(ctx)

	cfg.Logger.Debug("dijkstra: search finished",
		slog.Int64("cost", res.Cost),
		slog.Int("settled", res.Settled),
		slog.Int("pushed", res.Pushed),
		slog.Int("stale", res.Stale),
		slog.Int("peak_frontier", res.PeakFrontier),
		slog.Any("error", err),
	)

	return res, err
}

// frontierBound sizes the frontier for the whole state space: every
// (cell, direction, run) state pushed once by each of its 4 possible parents.
// A straight run can never be longer than the grid, whatever MaxRun says.
func frontierBound(g *gridgraph.GridGraph, c Constraints) int {
	runs := min(c.MaxRun, max(g.Width, g.Height))
	return g.Cells() * 4 * (runs + 1) * 4
}

// runner holds the mutable state for a single search.
type runner struct {
	g       *gridgraph.GridGraph  // The input grid; read-only within Search.
	options Options               // Configuration options (constraints, hooks, etc.).
	goal    gridgraph.Point       // Bottom-right cell.
	limit   int                   // Maximum pending frontier entries.
	pq      frontier              // Min-heap of pending states.
	settled settledSet            // Finalized states and their costs.
	prev    map[StateKey]StateKey // Settled state → state it was expanded from; nil unless ReturnPath.
	buf     []Transition          // Reused neighbor buffer.
	seq     uint64                // Next insertion number.
	stats   Result                // Work counters.
}

// run seeds the frontier and drives pop → settle → goal check → expand.
func (r *runner) run(ctx context.Context) (Result, error) {
	start := r.g.Start()
	for _, d := range []gridgraph.Direction{gridgraph.Right, gridgraph.Down} {
		if err := r.push(frontierItem{key: StateKey{Pos: start, Dir: d}}); err != nil {
			return Result{}, err
		}
	}

	minRun := r.options.Constraints.MinRun
	for r.pq.Len() > 0 {
		// 1) Honour cancellation once per pop.
		if err := ctx.Err(); err != nil {
			return Result{}, fmt.Errorf("dijkstra: search cancelled: %w", err)
		}

		// 2) Pop the cheapest pending entry.
		item := heap.Pop(&r.pq).(frontierItem)

		// 3) Drop it if its state is already settled (stale duplicate).
		if !r.settled.settle(item.key, item.cost) {
			r.stats.Stale++
			continue
		}
		r.stats.Settled++
		if r.prev != nil && !item.key.IsStart() {
			r.prev[item.key] = item.parent
		}
		if r.options.OnSettle != nil {
			r.options.OnSettle(item.key, item.cost)
		}

		// 4) A goal state that may stop here ends the search.
		if item.key.Pos == r.goal && item.key.Run >= minRun {
			return r.finish(item.key, item.cost), nil
		}

		// 5) Expand; duplicates are resolved when popped.
		r.buf = appendNeighbors(r.buf[:0], r.g, item.key, r.options.Constraints, r.options.Impassable)
		for _, t := range r.buf {
			err := r.push(frontierItem{
				cost:   item.cost + t.Cost,
				key:    t.Key,
				parent: item.key,
			})
			if err != nil {
				return Result{}, err
			}
		}
	}

	// Frontier exhausted: fall back to the best qualifying goal state settled so far.
	end, cost, ok := r.settled.bestAt(r.goal, minRun)
	if !ok {
		return r.stats, ErrUnreachable
	}

	return r.finish(end, cost), nil
}

// push inserts item into the frontier, enforcing the size limit.
func (r *runner) push(item frontierItem) error {
	if r.pq.Len() >= r.limit {
		return fmt.Errorf("%w: %d pending entries", ErrFrontierLimit, r.limit)
	}
	item.seq = r.seq
	r.seq++
	heap.Push(&r.pq, item)

	r.stats.Pushed++
	if n := r.pq.Len(); n > r.stats.PeakFrontier {
		r.stats.PeakFrontier = n
	}
	if r.options.OnPush != nil {
		r.options.OnPush(Transition{Key: item.key, Cost: item.cost})
	}

	return nil
}

// finish assembles the result for goal state end.
func (r *runner) finish(end StateKey, cost int64) Result {
	res := r.stats
	res.Cost = cost
	res.End = end
	if r.prev != nil {
		res.Path = r.path(end)
	}
	return res
}

// path walks predecessors from end back to a start state and returns the
// visited cells in start→end order.
func (r *runner) path(end StateKey) []gridgraph.Point {
	cells := []gridgraph.Point{end.Pos}
	for at := end; !at.IsStart(); {
		at = r.prev[at]
		cells = append(cells, at.Pos)
	}
	for i, j := 0, len(cells)-1; i < j; i, j = i+1, j-1 {
		cells[i], cells[j] = cells[j], cells[i]
	}
	return cells
}

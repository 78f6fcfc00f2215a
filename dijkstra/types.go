// Package dijkstra defines core types and configuration options
// for Dijkstra's shortest-path search over a constrained-state grid.
//
// The search does not walk raw grid cells. Its nodes are StateKey triples
// (position, last direction, consecutive run length), so that run-length
// limits are part of the state and a settled state can never be improved.
//
// Complexity:
//
//	– Time:  O(S log S)   where S = cells × 4 directions × MaxRun
//	   • Each state is settled at most once (S settles).
//	   • Each settle pushes at most 3 successors (4 from a start state).
//	   • Each heap operation (push/pop) costs O(log S).
//	– Space: O(S)
//	   • O(S) for the settled-set and (optional) predecessor map.
//	   • O(S) frontier entries in the worst case (lazy deletion).
//
// Options:
//
//	– Constraints:  MinRun/MaxRun consecutive-step bounds (default Part1).
//	– ReturnPath:   if true, return the cell sequence of one optimal route.
//	– MaxFrontier:  cap on pending frontier entries (0 = automatic bound).
//	– Impassable:   cells with cost >= this threshold are walls.
//
// Errors (sentinel):
//
//	– ErrNilGraph       if the provided grid pointer is nil.
//	– ErrBadRunBounds   if the constraints are not 1 <= MinRun <= MaxRun.
//	– ErrUnreachable    if no qualifying goal state exists.
//	– ErrFrontierLimit  if the frontier would exceed its bound.
//	– ErrBadMaxFrontier if MaxFrontier < 0.
//	– ErrBadImpassable  if Impassable <= 0.
package dijkstra

import (
	"errors"
	"fmt"
	"log/slog"
	"math"

	"github.com/katalvlaran/heatpath/gridgraph"
)

// Sentinel errors returned by the search.
var (
	// ErrNilGraph indicates that a nil *gridgraph.GridGraph was passed to Search.
	ErrNilGraph = errors.New("dijkstra: graph is nil")

	// ErrBadRunBounds indicates constraints outside 1 <= MinRun <= MaxRun.
	ErrBadRunBounds = errors.New("dijkstra: run bounds must satisfy 1 <= MinRun <= MaxRun")

	// ErrUnreachable indicates the frontier was exhausted without settling a
	// goal state whose run length satisfies MinRun. It is a result, not a fault:
	// the grid was valid, there is just no admissible route.
	ErrUnreachable = errors.New("dijkstra: goal unreachable under the given constraints")

	// ErrFrontierLimit indicates the frontier grew past its bound.
	ErrFrontierLimit = errors.New("dijkstra: frontier size limit exceeded")

	// ErrBadMaxFrontier indicates that MaxFrontier was set to a negative value.
	ErrBadMaxFrontier = errors.New("dijkstra: MaxFrontier must be non-negative")

	// ErrBadImpassable indicates that Impassable was set to zero or a negative value,
	// which would turn every cell into a wall.
	ErrBadImpassable = errors.New("dijkstra: Impassable threshold must be positive")
)

// StateKey is the unit of search state: a position, the direction of the
// move that reached it, and how many consecutive moves were made in that
// direction. Run is 0 only for the synthetic start states.
//
// Two keys are equal iff all three fields are equal; the same cell entered
// with a different direction or run length is a different state.
type StateKey struct {
	Pos gridgraph.Point
	Dir gridgraph.Direction
	Run int
}

// IsStart reports whether k is a synthetic start state (no move made yet).
func (k StateKey) IsStart() bool { return k.Run == 0 }

// String formats k as "x,y/dir×run".
func (k StateKey) String() string {
	return fmt.Sprintf("%v/%v×%d", k.Pos, k.Dir, k.Run)
}

// Transition is one admissible move: the successor state and the cost of
// the cell it enters.
type Transition struct {
	Key  StateKey
	Cost int64
}

// Constraints bounds the number of consecutive moves in one direction.
// A route must move at least MinRun times before turning or stopping, and
// never more than MaxRun times in a row.
type Constraints struct {
	MinRun int
	MaxRun int
}

// Part1 returns the ordinary crucible constraints: turn at will, at most 3 in a row.
func Part1() Constraints { return Constraints{MinRun: 1, MaxRun: 3} }

// Part2 returns the ultra crucible constraints: 4 to 10 moves in a row.
func Part2() Constraints { return Constraints{MinRun: 4, MaxRun: 10} }

// Validate returns ErrBadRunBounds unless 1 <= MinRun <= MaxRun.
func (c Constraints) Validate() error {
	if c.MinRun < 1 || c.MaxRun < c.MinRun {
		return fmt.Errorf("%w: got min=%d max=%d", ErrBadRunBounds, c.MinRun, c.MaxRun)
	}
	return nil
}

// Options configures the behavior of the search.
//
// Constraints – run-length bounds (default Part1).
// ReturnPath  – if true, Result.Path holds the cells of one optimal route.
// MaxFrontier – cap on pending frontier entries; 0 derives a bound from the
//
//	size of the state space. Must be >= 0.
//
// Impassable  – cells whose cost >= this threshold are never entered.
//
//	Must be > 0. Default is math.MaxInt (no walls).
//
// OnSettle    – called once per state, in settle order, with its final cost.
// OnPush      – called for every frontier insertion with the accumulated cost.
// Logger      – receives Debug records at search start and finish.
type Options struct {
	Constraints Constraints
	ReturnPath  bool
	MaxFrontier int
	Impassable  int
	OnSettle    func(key StateKey, cost int64)
	OnPush      func(t Transition)
	Logger      *slog.Logger
}

// Option represents a functional option for configuring Search.
type Option func(*Options)

// WithConstraints sets both run-length bounds. They are validated by Search.
func WithConstraints(c Constraints) Option {
	return func(o *Options) {
		o.Constraints = c
	}
}

// WithMinRun sets the minimum number of moves before a turn or a stop.
func WithMinRun(n int) Option {
	return func(o *Options) {
		o.Constraints.MinRun = n
	}
}

// WithMaxRun sets the maximum number of consecutive moves in one direction.
func WithMaxRun(n int) Option {
	return func(o *Options) {
		o.Constraints.MaxRun = n
	}
}

// WithReturnPath enables reconstruction of the optimal route in Result.Path.
func WithReturnPath() Option {
	return func(o *Options) {
		o.ReturnPath = true
	}
}

// WithMaxFrontier caps the number of pending frontier entries.
// Must pass a non-negative value; negative values panic with ErrBadMaxFrontier.
// Zero restores the automatic bound.
func WithMaxFrontier(n int) Option {
	return func(o *Options) {
		if n < 0 {
			panic(ErrBadMaxFrontier.Error())
		}
		o.MaxFrontier = n
	}
}

// WithImpassable treats every cell whose cost is >= threshold as a wall.
// Must pass a positive value; zero or negative panic with ErrBadImpassable.
func WithImpassable(threshold int) Option {
	return func(o *Options) {
		if threshold <= 0 {
			panic(ErrBadImpassable.Error())
		}
		o.Impassable = threshold
	}
}

// WithOnSettle registers a hook invoked each time a state is settled.
func WithOnSettle(fn func(key StateKey, cost int64)) Option {
	return func(o *Options) {
		o.OnSettle = fn
	}
}

// WithOnPush registers a hook invoked for every frontier insertion.
// Transition.Cost is the accumulated cost of the pushed entry.
func WithOnPush(fn func(t Transition)) Option {
	return func(o *Options) {
		o.OnPush = fn
	}
}

// WithLogger routes search diagnostics to l. A nil logger is ignored.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// DefaultOptions returns an Options struct initialized with sensible defaults.
//
// Defaults:
//   - Constraints: Part1() (MinRun=1, MaxRun=3).
//   - ReturnPath:  false.
//   - MaxFrontier: 0 (automatic bound).
//   - Impassable:  math.MaxInt (no walls).
//   - Logger:      discards everything.
func DefaultOptions() Options {
	return Options{
		Constraints: Part1(),
		ReturnPath:  false,
		MaxFrontier: 0,
		Impassable:  math.MaxInt,
		Logger:      slog.New(slog.DiscardHandler),
	}
}

// Result is the outcome of a search.
//
// Cost is the minimum accumulated cost from the top-left to the bottom-right
// cell. End is the goal state that produced it. Path is the cell sequence
// start→goal when ReturnPath is set, nil otherwise. The counters describe
// the work done and are filled in even when Search returns ErrUnreachable.
type Result struct {
	Cost         int64
	End          StateKey
	Path         []gridgraph.Point
	Settled      int
	Pushed       int
	Stale        int
	PeakFrontier int
}

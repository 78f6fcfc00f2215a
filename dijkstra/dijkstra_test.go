// Package dijkstra_test contains unit tests for the constrained grid search.
// These tests validate input checks, the published crucible examples under
// both constraint sets, unreachable goals, path reconstruction and the
// frontier and cancellation limits.
package dijkstra_test

import (
	"context"
	"errors"
	"testing"

	"github.com/katalvlaran/heatpath/dijkstra"
	"github.com/katalvlaran/heatpath/gridgraph"
)

// example is the published 13×13 heat-loss map.
const example = `2413432311323
3215453535623
3255245654254
3446585845452
4546657867536
1438598798454
4457876987766
3637877979653
4654967986887
4564679986453
1224686865563
2546548887735
4322674655533
`

// unfortunate is the second published map, built to punish stopping early.
const unfortunate = `111111111111
999999999991
999999999991
999999999991
999999999991
`

func mustParse(t testing.TB, s string) *gridgraph.GridGraph {
	t.Helper()
	g, err := gridgraph.ParseString(s)
	if err != nil {
		t.Fatalf("ParseString: %v", err)
	}
	return g
}

// ------------------------------------------------------------------------
// 1. Validation Tests: Ensure errors are returned for invalid inputs.
// ------------------------------------------------------------------------

func TestSearch_NilGraph(t *testing.T) {
	_, err := dijkstra.Search(context.Background(), nil)
	if err != dijkstra.ErrNilGraph {
		t.Fatalf("Expected ErrNilGraph, got %v", err)
	}
}

func TestSearch_BadRunBounds(t *testing.T) {
	g := mustParse(t, "12\n34\n")
	cases := map[string][]dijkstra.Option{
		"zero min":      {dijkstra.WithMinRun(0)},
		"max below min": {dijkstra.WithConstraints(dijkstra.Constraints{MinRun: 5, MaxRun: 3})},
		"zero max":      {dijkstra.WithMaxRun(0)},
	}
	for name, opts := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := dijkstra.Search(context.Background(), g, opts...)
			if !errors.Is(err, dijkstra.ErrBadRunBounds) {
				t.Fatalf("Expected ErrBadRunBounds, got %v", err)
			}
		})
	}
}

// ------------------------------------------------------------------------
// 2. Published examples: both constraint sets on the same grid.
// ------------------------------------------------------------------------

func TestSearch_Example(t *testing.T) {
	g := mustParse(t, example)
	cases := []struct {
		name string
		c    dijkstra.Constraints
		want int64
	}{
		{"part1", dijkstra.Part1(), 102},
		{"part2", dijkstra.Part2(), 94},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			res, err := dijkstra.Search(context.Background(), g, dijkstra.WithConstraints(tc.c))
			if err != nil {
				t.Fatal(err)
			}
			if res.Cost != tc.want {
				t.Errorf("Cost = %d; want %d", res.Cost, tc.want)
			}
			if res.End.Pos != g.Goal() || res.End.Run < tc.c.MinRun {
				t.Errorf("End = %v; want goal %v with run >= %d", res.End, g.Goal(), tc.c.MinRun)
			}
		})
	}
}

func TestSearch_UnfortunatePart2(t *testing.T) {
	g := mustParse(t, unfortunate)
	res, err := dijkstra.Search(context.Background(), g, dijkstra.WithConstraints(dijkstra.Part2()))
	if err != nil {
		t.Fatal(err)
	}
	if res.Cost != 71 {
		t.Errorf("Cost = %d; want 71", res.Cost)
	}
}

func TestSearch_MinRunOverridesOnlyPart(t *testing.T) {
	// WithMinRun/WithMaxRun compose with the default constraints.
	g := mustParse(t, example)
	res, err := dijkstra.Search(context.Background(), g, dijkstra.WithMaxRun(10), dijkstra.WithMinRun(4))
	if err != nil {
		t.Fatal(err)
	}
	if res.Cost != 94 {
		t.Errorf("Cost = %d; want 94", res.Cost)
	}
}

// ------------------------------------------------------------------------
// 3. Edge cases: single cell, unreachable goals, walls.
// ------------------------------------------------------------------------

func TestSearch_SingleCell(t *testing.T) {
	g := mustParse(t, "7\n")
	for _, c := range []dijkstra.Constraints{dijkstra.Part1(), dijkstra.Part2()} {
		res, err := dijkstra.Search(context.Background(), g, dijkstra.WithConstraints(c), dijkstra.WithReturnPath())
		if err != nil {
			t.Fatalf("constraints %+v: %v", c, err)
		}
		if res.Cost != 0 {
			t.Errorf("constraints %+v: Cost = %d; want 0", c, res.Cost)
		}
		if len(res.Path) != 1 || res.Path[0] != g.Start() {
			t.Errorf("constraints %+v: Path = %v; want [start]", c, res.Path)
		}
	}
}

func TestSearch_UnreachableTooLong(t *testing.T) {
	// Four moves right in a single row exceed MaxRun=3.
	g := mustParse(t, "11111\n")
	res, err := dijkstra.Search(context.Background(), g)
	if !errors.Is(err, dijkstra.ErrUnreachable) {
		t.Fatalf("Expected ErrUnreachable, got %v (cost %d)", err, res.Cost)
	}
	if res.Settled == 0 {
		t.Error("work counters should be reported with ErrUnreachable")
	}

	// The same row is fine for the ultra constraints: exactly 4 moves.
	res, err = dijkstra.Search(context.Background(), g, dijkstra.WithConstraints(dijkstra.Part2()))
	if err != nil {
		t.Fatal(err)
	}
	if res.Cost != 4 {
		t.Errorf("part2 Cost = %d; want 4", res.Cost)
	}
}

func TestSearch_UnreachableTooShort(t *testing.T) {
	// Two moves right: too few to stop under MinRun=4.
	g := mustParse(t, "111\n")
	_, err := dijkstra.Search(context.Background(), g, dijkstra.WithConstraints(dijkstra.Part2()))
	if !errors.Is(err, dijkstra.ErrUnreachable) {
		t.Fatalf("Expected ErrUnreachable, got %v", err)
	}
}

func TestSearch_GoalSettledButNotQualifying(t *testing.T) {
	// With MinRun=2 the only arrival at the goal is right,right then down
	// (run 1). That state is settled but may not stop, and continuing down
	// leaves the grid, so the goal is unreachable.
	g := mustParse(t, "011\n111\n")
	var goalRuns []int
	_, err := dijkstra.Search(context.Background(), g,
		dijkstra.WithConstraints(dijkstra.Constraints{MinRun: 2, MaxRun: 3}),
		dijkstra.WithOnSettle(func(k dijkstra.StateKey, _ int64) {
			if k.Pos == g.Goal() {
				goalRuns = append(goalRuns, k.Run)
			}
		}),
	)
	if !errors.Is(err, dijkstra.ErrUnreachable) {
		t.Fatalf("Expected ErrUnreachable, got %v", err)
	}
	if len(goalRuns) != 1 || goalRuns[0] != 1 {
		t.Errorf("goal states settled with runs %v; want [1]", goalRuns)
	}
}

func TestSearch_Impassable(t *testing.T) {
	g := mustParse(t, "19\n11\n")
	res, err := dijkstra.Search(context.Background(), g)
	if err != nil {
		t.Fatal(err)
	}
	if res.Cost != 2 {
		t.Fatalf("Cost = %d; want 2 via the bottom row", res.Cost)
	}

	// Walling off the bottom-left cell leaves only the expensive route.
	g = mustParse(t, "15\n91\n")
	res, err = dijkstra.Search(context.Background(), g, dijkstra.WithImpassable(9))
	if err != nil {
		t.Fatal(err)
	}
	if res.Cost != 6 {
		t.Errorf("Cost = %d; want 6", res.Cost)
	}

	// Walling off both middle cells disconnects the goal.
	g = mustParse(t, "19\n91\n")
	_, err = dijkstra.Search(context.Background(), g, dijkstra.WithImpassable(9))
	if !errors.Is(err, dijkstra.ErrUnreachable) {
		t.Errorf("Expected ErrUnreachable, got %v", err)
	}
}

func TestOptions_Panics(t *testing.T) {
	mustPanic := func(name string, fn func()) {
		t.Helper()
		defer func() {
			if recover() == nil {
				t.Errorf("%s: expected panic", name)
			}
		}()
		fn()
	}
	mustPanic("WithMaxFrontier(-1)", func() { dijkstra.WithMaxFrontier(-1)(&dijkstra.Options{}) })
	mustPanic("WithImpassable(0)", func() { dijkstra.WithImpassable(0)(&dijkstra.Options{}) })
}

// ------------------------------------------------------------------------
// 4. Path reconstruction.
// ------------------------------------------------------------------------

func TestSearch_SmallPath(t *testing.T) {
	g := mustParse(t, "12\n34\n")
	res, err := dijkstra.Search(context.Background(), g, dijkstra.WithReturnPath())
	if err != nil {
		t.Fatal(err)
	}
	if res.Cost != 6 {
		t.Errorf("Cost = %d; want 6", res.Cost)
	}
	want := []gridgraph.Point{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 1, Y: 1}}
	if len(res.Path) != len(want) {
		t.Fatalf("Path = %v; want %v", res.Path, want)
	}
	for i := range want {
		if res.Path[i] != want[i] {
			t.Errorf("Path[%d] = %v; want %v", i, res.Path[i], want[i])
		}
	}
}

func TestSearch_NoPathByDefault(t *testing.T) {
	g := mustParse(t, example)
	res, err := dijkstra.Search(context.Background(), g)
	if err != nil {
		t.Fatal(err)
	}
	if res.Path != nil {
		t.Errorf("expected nil Path without WithReturnPath, got %d cells", len(res.Path))
	}
}

// ------------------------------------------------------------------------
// 5. Resource limits and cancellation.
// ------------------------------------------------------------------------

func TestSearch_FrontierLimit(t *testing.T) {
	g := mustParse(t, example)
	_, err := dijkstra.Search(context.Background(), g, dijkstra.WithMaxFrontier(8))
	if !errors.Is(err, dijkstra.ErrFrontierLimit) {
		t.Fatalf("Expected ErrFrontierLimit, got %v", err)
	}
}

func TestSearch_Cancelled(t *testing.T) {
	g := mustParse(t, example)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := dijkstra.Search(ctx, g)
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("Expected context.Canceled, got %v", err)
	}
}

func TestSearch_CancelledMidway(t *testing.T) {
	g := mustParse(t, example)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	settled := 0
	_, err := dijkstra.Search(ctx, g, dijkstra.WithOnSettle(func(dijkstra.StateKey, int64) {
		settled++
		if settled == 50 {
			cancel()
		}
	}))
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("Expected context.Canceled, got %v", err)
	}
	if settled != 50 {
		t.Errorf("settled %d states; cancellation should stop at the next pop", settled)
	}
}

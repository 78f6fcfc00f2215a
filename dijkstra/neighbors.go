package dijkstra

import (
	"math"

	"github.com/katalvlaran/heatpath/gridgraph"
)

// Neighbors returns the admissible successors of key on g under c, with the
// cost of the cell each successor enters.
//
// Rules, applied to each of the four directions in gridgraph.Directions order:
//
//   - The reverse of key.Dir is rejected (no backtracking).
//   - Continuing in key.Dir increments the run; a run above MaxRun is rejected.
//   - Turning resets the run to 1 and is rejected while key.Run < MinRun.
//   - Positions outside the grid are rejected.
//
// A start state (Run == 0) is exempt from the first and third rules.
// Constraints are not validated here; Search validates them once.
func Neighbors(g *gridgraph.GridGraph, key StateKey, c Constraints) []Transition {
	return appendNeighbors(make([]Transition, 0, 4), g, key, c, math.MaxInt)
}

// appendNeighbors is Neighbors writing into dst, with cells whose cost is
// >= wall treated as impassable.
func appendNeighbors(dst []Transition, g *gridgraph.GridGraph, key StateKey, c Constraints, wall int) []Transition {
	start := key.IsStart()
	for _, d := range gridgraph.Directions() {
		run := 1
		switch {
		case d == key.Dir:
			run = key.Run + 1
			if run > c.MaxRun {
				continue
			}
		case start:
			// free choice of the first heading
		case d == key.Dir.Reverse():
			continue
		case key.Run < c.MinRun:
			continue
		}

		next := key.Pos.Add(d)
		if !g.Contains(next) {
			continue
		}
		cost := g.Cost(next)
		if cost >= wall {
			continue
		}
		dst = append(dst, Transition{
			Key:  StateKey{Pos: next, Dir: d, Run: run},
			Cost: int64(cost),
		})
	}

	return dst
}

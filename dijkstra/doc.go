// Package dijkstra provides a shortest-path search over a digit cost grid in
// which routes are limited in how far they may travel in a straight line.
//
// Overview:
//
//   - A route starts at the top-left cell and ends at the bottom-right cell.
//     Every move goes one cell up, down, left or right and costs the value
//     of the cell entered.
//   - A route may not reverse, may not make more than MaxRun consecutive
//     moves in one direction, and must make at least MinRun consecutive moves
//     before it turns or stops.
//   - Because those rules depend on the recent history of the route, the
//     search runs Dijkstra over StateKey{Pos, Dir, Run} rather than over
//     cells. The same cell may be settled once per direction and run length.
//
// When to use:
//
//   - Crucible routing: Part1() = {MinRun: 1, MaxRun: 3},
//     Part2() = {MinRun: 4, MaxRun: 10}.
//   - Any grid route with momentum-style limits on straight segments.
//
// Key features:
//
//   - Functional options allow fine-tuning behavior without changing the API signature.
//   - WithReturnPath: returns the cells of one optimal route.
//   - WithMaxFrontier: bounds frontier growth and reports ErrFrontierLimit.
//   - WithImpassable: treats cells with cost ≥ threshold as walls.
//   - WithOnSettle / WithOnPush: hooks to observe the expansion order.
//   - context.Context: cancellation is checked once per frontier pop.
//
// Performance and complexity:
//
//   - Time:  O(S log S), S = W × H × 4 × MaxRun
//   - Space: O(S) for the settled-set, predecessors and frontier.
//
// Error handling (sentinel errors):
//
//   - ErrNilGraph:       Search was given a nil grid.
//   - ErrBadRunBounds:   constraints violate 1 ≤ MinRun ≤ MaxRun.
//   - ErrUnreachable:    no route satisfies the constraints; distinct from cost 0.
//   - ErrFrontierLimit:  the frontier grew past its bound.
//   - ErrBadMaxFrontier: (via panic) negative WithMaxFrontier.
//   - ErrBadImpassable:  (via panic) non-positive WithImpassable.
//
// API reference:
//
//	func Search(
//	    ctx context.Context,
//	    g *gridgraph.GridGraph,
//	    opts ...Option,
//	) (Result, error)
//
//	func Neighbors(
//	    g *gridgraph.GridGraph,
//	    key StateKey,
//	    c Constraints,
//	) []Transition
//
// Thread safety:
//
//   - A single search is sequential. The grid is only read, so any number
//     of searches may share one grid concurrently.
package dijkstra

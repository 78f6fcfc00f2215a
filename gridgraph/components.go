package gridgraph

// Component returns the row-major indices of every cell connected to from by
// orthogonal moves into cells whose cost is below wall. from itself is always
// included, whatever its cost, because a route never pays to leave a cell.
// Indices are in BFS order; convert them back with Coordinate.
//
// Time:   O(W·H).
// Memory: O(W·H) for visited flags and output.
func (gg *GridGraph) Component(from Point, wall int) []int {
	if !gg.Contains(from) {
		return nil
	}
	seen := make([]bool, gg.Cells())
	i0 := gg.Index(from)
	seen[i0] = true
	queue := []int{i0}

	for qi := 0; qi < len(queue); qi++ {
		ux, uy := gg.Coordinate(queue[qi])
		u := Point{X: ux, Y: uy}
		for _, d := range Directions() {
			v := u.Add(d)
			if !gg.Contains(v) || gg.Cost(v) >= wall {
				continue
			}
			vi := gg.Index(v)
			if !seen[vi] {
				seen[vi] = true
				queue = append(queue, vi)
			}
		}
	}
	return queue
}

// Reachable reports whether to can be reached from from, ignoring any limit
// on straight runs. It is a necessary condition for a constrained route.
func (gg *GridGraph) Reachable(from, to Point, wall int) bool {
	if from == to {
		return true
	}
	if !gg.Contains(to) || gg.Cost(to) >= wall {
		return false
	}
	target := gg.Index(to)
	for _, i := range gg.Component(from, wall) {
		if i == target {
			return true
		}
	}
	return false
}

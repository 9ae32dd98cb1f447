package pathing

// SearchOption configures a single FindPath call.
type SearchOption func(*searchConfig)

type searchConfig struct {
	maxExpansions int
}

// WithMaxExpansions bounds how many nodes one search may finalize. A search
// that exceeds the budget behaves like an exhausted one and returns nil.
// Zero or negative means unbounded.
func WithMaxExpansions(n int) SearchOption {
	return func(c *searchConfig) { c.maxExpansions = n }
}

// 4-connected movement. The step cost is exactly the entered tile's cost, so
// the Manhattan heuristic scaled by the map's cheapest tile never
// overestimates and the returned path cost is optimal.
var neighborOffsets = [4][2]int{
	{1, 0}, {-1, 0}, {0, 1}, {0, -1},
}

// FindPath returns the cheapest traversable route from start to goal as an
// ordered sequence of points, start first and goal last inclusive. It returns
// nil when either endpoint is out of bounds or a wall, or when every route is
// blocked; an unreachable goal is a normal outcome, not an error.
func FindPath(start, goal Point, m *PathMap, opts ...SearchOption) []Point {
	s, ok := m.NodeAt(start.X, start.Y)
	if !ok {
		return nil
	}
	g, ok := m.NodeAt(goal.X, goal.Y)
	if !ok {
		return nil
	}
	return FindPathNodes(s, g, m, opts...)
}

// FindPathNodes is FindPath for endpoints already resolved against m.
func FindPathNodes(start, goal *Node, m *PathMap, opts ...SearchOption) []Point {
	if start == nil || goal == nil || start.Wall || goal.Wall {
		return nil
	}
	if start.X == goal.X && start.Y == goal.Y {
		return []Point{start.Point()}
	}

	var cfg searchConfig
	for _, opt := range opts {
		opt(&cfg)
	}

	scale := m.MinCost()
	heuristic := func(n *Node) float64 {
		return float64(intAbs(n.X-goal.X)+intAbs(n.Y-goal.Y)) * scale
	}

	// Search state is call-local and keyed by node identity. The nodes
	// themselves stay untouched so concurrent searches can share the map.
	open := NewHeap[*Node]()
	gScore := map[*Node]float64{start: 0}
	cameFrom := make(map[*Node]*Node)
	closed := make(map[*Node]bool)

	open.Push(start, heuristic(start))

	expanded := 0
	for {
		current, ok := open.Pop()
		if !ok {
			return nil
		}
		if current == goal {
			return buildPath(cameFrom, current)
		}
		closed[current] = true
		expanded++
		if cfg.maxExpansions > 0 && expanded >= cfg.maxExpansions {
			return nil
		}

		for _, d := range neighborOffsets {
			next, ok := m.NodeAt(current.X+d[0], current.Y+d[1])
			if !ok || next.Wall || closed[next] {
				continue
			}
			tentative := gScore[current] + next.Cost
			if prev, seen := gScore[next]; seen && tentative >= prev {
				continue
			}
			cameFrom[next] = current
			gScore[next] = tentative
			f := tentative + heuristic(next)
			if !open.Rescore(next, f) {
				open.Push(next, f)
			}
		}
	}
}

// buildPath walks the back-pointers from goal to start and reverses.
func buildPath(cameFrom map[*Node]*Node, end *Node) []Point {
	var path []Point
	for n := end; n != nil; n = cameFrom[n] {
		path = append(path, n.Point())
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path
}

func intAbs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

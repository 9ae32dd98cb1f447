package game

import (
	"fmt"

	"github.com/calder-james/wayfind/internal/pathing"
)

// AgentState represents the high-level behaviour state.
type AgentState int

const (
	AgentIdle   AgentState = iota // no destination
	AgentMoving                   // walking along a path
	AgentStuck                    // last search found no route
)

func (s AgentState) String() string {
	switch s {
	case AgentIdle:
		return "idle"
	case AgentMoving:
		return "moving"
	case AgentStuck:
		return "stuck"
	default:
		return "unknown"
	}
}

// Agent is a wanderer that requests paths from the engine and walks them
// tile by tile. Slow ground charges more movement points per step, so the
// walking pace matches the cost model the paths were planned with.
type Agent struct {
	ID       int
	Col, Row int

	state     AgentState
	goal      pathing.Point
	path      []pathing.Point
	pathIndex int
	budget    float64 // movement points saved toward the next step

	// Counters for run reports.
	PathsComputed  int
	FailedSearches int
	Replans        int
	Arrivals       int
	TilesWalked    int
	PathCostTotal  float64
}

// NewAgent creates an idle agent standing at (col, row).
func NewAgent(id, col, row int) *Agent {
	return &Agent{ID: id, Col: col, Row: row}
}

// Label returns the short log label, e.g. "A3".
func (a *Agent) Label() string {
	return fmt.Sprintf("A%d", a.ID)
}

// State returns the current behaviour state.
func (a *Agent) State() AgentState {
	return a.state
}

// Goal returns the current destination. Only meaningful while moving.
func (a *Agent) Goal() pathing.Point {
	return a.goal
}

// Path returns the remaining waypoints, current position first.
func (a *Agent) Path() []pathing.Point {
	if a.state != AgentMoving || a.pathIndex >= len(a.path) {
		return nil
	}
	return a.path[a.pathIndex:]
}

// SetGoal plans a route to goal against pm and reports whether one exists.
// A failed search leaves the agent stuck where it stands.
func (a *Agent) SetGoal(goal pathing.Point, pm *pathing.PathMap) bool {
	if a.state == AgentMoving {
		a.Replans++
	}
	a.PathsComputed++
	path := pathing.FindPath(pathing.Point{X: a.Col, Y: a.Row}, goal, pm)
	if len(path) == 0 {
		a.FailedSearches++
		a.state = AgentStuck
		a.path = nil
		return false
	}
	a.goal = goal
	a.path = path
	a.pathIndex = 1 // path[0] is the tile the agent stands on
	a.budget = 0
	if len(path) == 1 {
		a.state = AgentIdle
		a.Arrivals++
		return true
	}
	a.state = AgentMoving
	for _, p := range path[1:] {
		n, ok := pm.NodeAt(p.X, p.Y)
		if ok {
			a.PathCostTotal += n.Cost
		}
	}
	return true
}

// Step advances the agent by one tick. Each tick grants one movement point;
// a step onto the next tile is taken once the saved points cover its cost.
func (a *Agent) Step(tm *TileMap) {
	if a.state != AgentMoving {
		return
	}
	a.budget += 1.0
	for a.pathIndex < len(a.path) {
		next := a.path[a.pathIndex]
		cost := tm.TraversalCost(next.X, next.Y)
		if a.budget < cost {
			return
		}
		a.budget -= cost
		a.Col, a.Row = next.X, next.Y
		a.pathIndex++
		a.TilesWalked++
	}
	a.state = AgentIdle
	a.Arrivals++
}

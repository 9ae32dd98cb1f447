package pathing

import (
	"errors"
	"math"
)

// DefaultImpassableCost is the traversal cost at or above which a tile is
// treated as a wall unless the map was built with WithImpassableCost.
const DefaultImpassableCost = 100

// ErrNilSource is returned when a PathMap is built without a cost source.
var ErrNilSource = errors.New("pathing: nil cost source")

// CostSource supplies the traversal cost of entering each tile. A cost of 0
// means free passage. Returning ok=false marks the tile as missing; missing
// tiles become walls rather than faults. Row-major arrays, sparse maps and
// procedural terrain all adapt to this one capability.
type CostSource interface {
	CostAt(x, y int) (cost float64, ok bool)
}

// CostFunc adapts a plain function to CostSource.
type CostFunc func(x, y int) (float64, bool)

// CostAt implements CostSource.
func (f CostFunc) CostAt(x, y int) (float64, bool) {
	return f(x, y)
}

// MapOption configures PathMap construction.
type MapOption func(*PathMap)

// WithImpassableCost overrides the wall threshold for one map.
func WithImpassableCost(c float64) MapOption {
	return func(m *PathMap) { m.impassable = c }
}

// PathMap is the searchable grid built once from terrain. It is read-only
// after construction and safe to share across concurrent searches; rebuild it
// (single-writer, before any search) when the terrain changes.
type PathMap struct {
	grid       *Grid[*Node]
	width      int
	height     int
	impassable float64
	minCost    float64
}

// NewPathMap builds one Node per coordinate of a width×height grid, reading
// costs from src. A tile whose cost meets the impassable threshold, or that
// src does not cover, becomes a wall.
func NewPathMap(width, height int, src CostSource, opts ...MapOption) (*PathMap, error) {
	if src == nil {
		return nil, ErrNilSource
	}
	grid, err := NewGrid[*Node](width, height)
	if err != nil {
		return nil, err
	}
	m := &PathMap{
		grid:       grid,
		width:      width,
		height:     height,
		impassable: DefaultImpassableCost,
	}
	for _, opt := range opts {
		opt(m)
	}

	minCost := math.Inf(1)
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			n := &Node{X: x, Y: y}
			cost, ok := src.CostAt(x, y)
			switch {
			case !ok:
				n.Cost = m.impassable
				n.Wall = true
			case cost >= m.impassable:
				n.Cost = cost
				n.Wall = true
			default:
				if cost < 0 {
					cost = 0
				}
				n.Cost = cost
				if cost < minCost {
					minCost = cost
				}
			}
			grid.Set(x, y, n)
		}
	}
	if math.IsInf(minCost, 1) {
		// All walls. No search can succeed, so the scale is moot.
		minCost = 1
	}
	m.minCost = minCost
	return m, nil
}

// Grid returns the underlying node grid.
func (m *PathMap) Grid() *Grid[*Node] {
	return m.grid
}

// Size returns the map dimensions.
func (m *PathMap) Size() (width, height int) {
	return m.width, m.height
}

// NodeAt returns the node at (x, y), or nil and false out of bounds.
func (m *PathMap) NodeAt(x, y int) (*Node, bool) {
	return m.grid.Get(x, y)
}

// ImpassableCost returns the wall threshold this map was built with.
func (m *PathMap) ImpassableCost() float64 {
	return m.impassable
}

// MinCost returns the cheapest non-wall traversal cost on the map. The
// search heuristic is scaled by it so the estimate stays admissible for any
// non-negative cost model.
func (m *PathMap) MinCost() float64 {
	return m.minCost
}

package game

import (
	"github.com/calder-james/wayfind/internal/pathing"
)

// GroundType identifies the base surface of a tile.
type GroundType uint8

const (
	GroundGrass     GroundType = iota // Default open ground
	GroundDirt                        // Packed earth path
	GroundRoad                        // Paved surface, fast travel
	GroundMud                         // Wet / churned ground
	GroundWater                       // Shallow water, very slow
	GroundRubble                      // Scattered debris
	groundTypeCount                   // sentinel
)

// groundMovementMul returns the movement speed multiplier for a ground type.
func groundMovementMul(g GroundType) float64 {
	switch g {
	case GroundGrass:
		return 1.0
	case GroundDirt:
		return 0.95
	case GroundRoad:
		return 1.25
	case GroundMud:
		return 0.6
	case GroundWater:
		return 0.3
	case GroundRubble:
		return 0.5
	default:
		return 1.0
	}
}

// ObjectType identifies an object sitting on a tile.
type ObjectType uint8

const (
	ObjectNone      ObjectType = iota // Empty cell
	ObjectWall                        // Structural wall
	ObjectTree                        // Tree trunk
	ObjectCrate                       // Wooden crate
	ObjectFence                       // Low fence, climbable but slow
	objectTypeCount                   // sentinel
)

// objectBlocksMovement returns true if the object is impassable.
func objectBlocksMovement(o ObjectType) bool {
	switch o {
	case ObjectWall, ObjectTree, ObjectCrate:
		return true
	default:
		return false
	}
}

// objectMovementMul returns the speed multiplier for objects that slow but
// don't block. Only meaningful when objectBlocksMovement returns false.
func objectMovementMul(o ObjectType) float64 {
	switch o {
	case ObjectFence:
		return 0.5
	default:
		return 1.0
	}
}

// Tile represents one cell of the world.
type Tile struct {
	Ground GroundType
	Object ObjectType
}

// TileMap is the authoritative per-cell terrain representation.
type TileMap struct {
	Cols  int
	Rows  int
	Tiles []Tile // row-major: index = row*Cols + col
}

// NewTileMap creates a tile map with default grass ground.
func NewTileMap(cols, rows int) *TileMap {
	return &TileMap{Cols: cols, Rows: rows, Tiles: make([]Tile, cols*rows)}
}

// inBounds returns true if (col, row) is within the tile map.
func (tm *TileMap) inBounds(col, row int) bool {
	return col >= 0 && col < tm.Cols && row >= 0 && row < tm.Rows
}

// At returns a pointer to the tile at (col, row), or nil if out of bounds.
func (tm *TileMap) At(col, row int) *Tile {
	if !tm.inBounds(col, row) {
		return nil
	}
	return &tm.Tiles[row*tm.Cols+col]
}

// Ground returns the ground type at (col, row).
func (tm *TileMap) Ground(col, row int) GroundType {
	if !tm.inBounds(col, row) {
		return GroundGrass
	}
	return tm.Tiles[row*tm.Cols+col].Ground
}

// ObjectAt returns the object type at (col, row).
func (tm *TileMap) ObjectAt(col, row int) ObjectType {
	if !tm.inBounds(col, row) {
		return ObjectNone
	}
	return tm.Tiles[row*tm.Cols+col].Object
}

// IsPassable returns true if an agent can walk through (col, row).
func (tm *TileMap) IsPassable(col, row int) bool {
	if !tm.inBounds(col, row) {
		return false
	}
	return !objectBlocksMovement(tm.Tiles[row*tm.Cols+col].Object)
}

// SetGround sets the ground type for a tile.
func (tm *TileMap) SetGround(col, row int, g GroundType) {
	if !tm.inBounds(col, row) {
		return
	}
	tm.Tiles[row*tm.Cols+col].Ground = g
}

// SetObject places an object on a tile.
func (tm *TileMap) SetObject(col, row int, o ObjectType) {
	if !tm.inBounds(col, row) {
		return
	}
	tm.Tiles[row*tm.Cols+col].Object = o
}

// TraversalCost returns the pathfinding cost of entering (col, row): the
// inverse of the tile's speed multiplier, so slow ground is expensive.
// Blocking objects and out-of-bounds cells cost the impassable threshold.
func (tm *TileMap) TraversalCost(col, row int) float64 {
	if !tm.inBounds(col, row) {
		return pathing.DefaultImpassableCost
	}
	t := &tm.Tiles[row*tm.Cols+col]
	if objectBlocksMovement(t.Object) {
		return pathing.DefaultImpassableCost
	}
	mul := groundMovementMul(t.Ground) * objectMovementMul(t.Object)
	if mul < 0.1 {
		mul = 0.1
	}
	return 1.0 / mul
}

// BuildPathMap builds a fresh searchable map from the current terrain.
// The result is read-only; rebuild after terrain edits.
func (tm *TileMap) BuildPathMap() (*pathing.PathMap, error) {
	return pathing.NewPathMap(tm.Cols, tm.Rows, pathing.CostFunc(func(x, y int) (float64, bool) {
		if !tm.inBounds(x, y) {
			return 0, false
		}
		return tm.TraversalCost(x, y), true
	}))
}

package pathing

import "errors"

// ErrBadDimensions is returned when a grid or map is built with a
// non-positive width or height.
var ErrBadDimensions = errors.New("pathing: width and height must be positive")

// Grid is a fixed-size 2D container backed by a flat row-major slice.
// All accessors are bounds-checked and never panic on out-of-range input.
type Grid[T any] struct {
	width  int
	height int
	cells  []T
}

// NewGrid creates a width×height grid of zero values.
func NewGrid[T any](width, height int) (*Grid[T], error) {
	if width <= 0 || height <= 0 {
		return nil, ErrBadDimensions
	}
	return &Grid[T]{
		width:  width,
		height: height,
		cells:  make([]T, width*height),
	}, nil
}

// InBounds returns true if (x, y) lies within the grid.
func (g *Grid[T]) InBounds(x, y int) bool {
	return x >= 0 && x < g.width && y >= 0 && y < g.height
}

// Get returns the value at (x, y), or the zero value and false out of bounds.
func (g *Grid[T]) Get(x, y int) (T, bool) {
	if !g.InBounds(x, y) {
		var zero T
		return zero, false
	}
	return g.cells[y*g.width+x], true
}

// Set stores v at (x, y). It reports whether the coordinate was in bounds.
func (g *Grid[T]) Set(x, y int, v T) bool {
	if !g.InBounds(x, y) {
		return false
	}
	g.cells[y*g.width+x] = v
	return true
}

// Size returns the grid dimensions.
func (g *Grid[T]) Size() (width, height int) {
	return g.width, g.height
}

package pathing

// Point is a grid coordinate.
type Point struct {
	X, Y int
}

// Node is one searchable cell of a PathMap: its coordinate, the cost of
// entering it, and whether that cost makes it a wall. Nodes are created when
// the PathMap is built and never mutated afterwards; they are shared by every
// search that runs against the map.
type Node struct {
	X, Y int
	Cost float64
	Wall bool
}

// Point returns the node's grid coordinate.
func (n *Node) Point() Point {
	return Point{X: n.X, Y: n.Y}
}

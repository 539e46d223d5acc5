package scene

import "github.com/san-kum/wirecube/internal/linalg"

// Corners is the number of cube vertices.
const Corners = 8

// Edges lists the twelve corner pairs joined by a cube edge, indexed in
// CreateCube order.
var Edges = [12][2]int{
	{0, 1}, {0, 2}, {0, 4}, {3, 2},
	{5, 2}, {7, 6}, {7, 3}, {7, 5},
	{1, 6}, {4, 6}, {1, 3}, {4, 5},
}

// CreateCube returns the corners of the axis-aligned box with origin corner
// (x, y, z) and extent (w, h, d). Corner 0 is the origin corner and corner 7
// the opposite one.
func CreateCube(x, y, z, w, h, d float64) [Corners]linalg.Vector3 {
	return [Corners]linalg.Vector3{
		linalg.NewVector3(x, y, z),
		linalg.NewVector3(x+w, y, z),
		linalg.NewVector3(x, y+h, z),
		linalg.NewVector3(x+w, y+h, z),
		linalg.NewVector3(x, y, z+d),
		linalg.NewVector3(x, y+h, z+d),
		linalg.NewVector3(x+w, y, z+d),
		linalg.NewVector3(x+w, y+h, z+d),
	}
}

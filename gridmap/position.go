package gridmap

import "github.com/golang/geo/r2"

// Position is a continuous world-frame coordinate, in meters. It is the
// planar counterpart of the r3.Vector the rest of the dependency surface
// uses for 3-D points.
type Position = r2.Point

// NewPosition builds a Position from x/y coordinates in meters.
func NewPosition(x, y float64) Position {
	return r2.Point{X: x, Y: y}
}

// Indices are integer (col, row) grid coordinates. Col indexes the x axis,
// row indexes the y axis.
type Indices struct {
	Col, Row int
}

// NewIndices builds an Indices pair.
func NewIndices(col, row int) Indices {
	return Indices{Col: col, Row: row}
}

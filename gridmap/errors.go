// Package gridmap implements a uniform 2-D raster over a rectangular
// workspace, each cell holding either nothing, an obstacle marker, or a
// stored value of a parametric type.
package gridmap

import "github.com/pkg/errors"

// ErrOutOfBounds is returned when a position or set of indices lies outside
// a GridMap's extent.
var ErrOutOfBounds = errors.New("position or indices out of bounds")

// ErrInvalidGeometry is returned at construction time when resolution is
// non-positive or the max point does not exceed the min point on every
// axis.
var ErrInvalidGeometry = errors.New("invalid grid map geometry")

// ErrObstacleCell is returned when a caller tries to write a value onto a
// cell already marked Obstacle. Obstacle cells never carry a value; once
// set, a cell stays Obstacle until the map is rebuilt.
var ErrObstacleCell = errors.New("cannot set value on obstacle cell")

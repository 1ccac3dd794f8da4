package costmap

import (
	"github.com/viamrobotics/gridnav/gridmap"
	"github.com/viamrobotics/gridnav/logging"
)

// ObstacleDistanceMap builds a GridMap[uint8] seeded at every Obstacle cell
// of obstacle, where each free cell holds its 8-connected hop distance to
// the nearest obstacle (clamped to 255). logger may be nil, in which case
// the build logs nothing.
//
// This is a preserved quirk from the reference implementation (spec.md §9,
// §4.3): the planner sums these raw values weighted by a small positive
// coefficient, which rewards proximity to obstacles rather than penalizing
// it. ObstacleDistanceMap does not invert or negate anything — the sign
// convention is a call-site weighting concern, not this function's.
func ObstacleDistanceMap(obstacle *gridmap.GridMap[uint8], logger logging.Logger) (*gridmap.GridMap[uint8], error) {
	seeds := make([]gridmap.Indices, 0)
	for row := 0; row < obstacle.Height(); row++ {
		for col := 0; col < obstacle.Width(); col++ {
			idx := gridmap.Indices{Col: col, Row: row}
			cell, ok := obstacle.CellByIndices(idx)
			if ok && cell.IsObstacle() {
				seeds = append(seeds, idx)
			}
		}
	}
	return wavefront(obstacle, seeds, logger)
}

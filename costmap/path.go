package costmap

import (
	"github.com/viamrobotics/gridnav/gridmap"
	"github.com/viamrobotics/gridnav/logging"
)

// PathDistanceMap builds a GridMap[uint8] seeded at every index in path
// (the global planner's waypoint polyline, treated as an opaque ordered
// sequence of grid indices — spec.md §6), where each free cell holds its
// 8-connected hop distance to the nearest path cell (clamped to 255).
// logger may be nil, in which case the build logs nothing.
func PathDistanceMap(obstacle *gridmap.GridMap[uint8], path []gridmap.Indices, logger logging.Logger) (*gridmap.GridMap[uint8], error) {
	return wavefront(obstacle, path, logger)
}

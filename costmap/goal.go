package costmap

import (
	"github.com/viamrobotics/gridnav/gridmap"
	"github.com/viamrobotics/gridnav/logging"
)

// GoalDistanceMap builds a GridMap[uint8] seeded at goal, where each free
// cell holds its 8-connected hop distance to goal (clamped to 255). Smaller
// raw values mean closer to the goal, so a positive weight on this layer
// rewards goal proximity. logger may be nil, in which case the build logs
// nothing.
func GoalDistanceMap(obstacle *gridmap.GridMap[uint8], goal gridmap.Indices, logger logging.Logger) (*gridmap.GridMap[uint8], error) {
	return wavefront(obstacle, []gridmap.Indices{goal}, logger)
}

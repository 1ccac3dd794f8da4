// Package costmap builds GridMap[uint8] cost layers by multi-source
// breadth-first (wavefront) expansion over a base obstacle map, grounded on
// the seed-and-expand structure of a flow-field solver: a flat direction
// table walked with bounds and obstacle checks per neighbor (compare
// lixenwraith-vi-fighter's navigation.FlowField.Compute), specialized here
// to unweighted 8-connected BFS since every step costs one hop.
package costmap

import (
	"github.com/viamrobotics/gridnav/gridmap"
	"github.com/viamrobotics/gridnav/logging"
)

// direction8 lists the eight 8-connected neighbor offsets (col, row),
// matching the convention recommended by spec.md §9 for smoother
// potentials than a 4-connected expansion would give.
var direction8 = [8][2]int{
	{1, 0}, {1, 1}, {0, 1}, {-1, 1},
	{-1, 0}, {-1, -1}, {0, -1}, {1, -1},
}

const maxDistance = 255

// wavefront runs a multi-source, unweighted BFS over obstacle, seeded at
// every index in seeds, and returns a GridMap[uint8] of the same geometry
// where each reached free cell holds its shortest hop-count from the
// nearest seed (clamped to maxDistance). Obstacle cells remain Obstacle.
// Cells never reached remain Uninitialized. logger defaults to a no-op
// sink if nil.
func wavefront(obstacle *gridmap.GridMap[uint8], seeds []gridmap.Indices, logger logging.Logger) (*gridmap.GridMap[uint8], error) {
	if logger == nil {
		logger = logging.NewNopLogger()
	}

	out, err := gridmap.New[uint8](obstacle.MinPoint(), obstacle.MaxPoint(), obstacle.Resolution())
	if err != nil {
		return nil, err
	}

	width, height := out.Width(), out.Height()
	visited := make([]bool, width*height)
	queue := make([]gridmap.Indices, 0, len(seeds))

	markObstacles(obstacle, out)

	for _, seed := range seeds {
		cell, ok := obstacle.CellByIndices(seed)
		if !ok {
			continue
		}
		flat := out.ToIndexByIndices(seed)
		if visited[flat] {
			continue
		}
		visited[flat] = true
		// An Obstacle seed stays Obstacle in out but still expands as a
		// distance-0 source, so its free neighbors get distance 1.
		if !cell.IsObstacle() {
			if err := out.SetValueByIndices(seed, 0); err != nil {
				return nil, err
			}
		}
		queue = append(queue, seed)
	}
	logger.Debugw("wavefront BFS seeded", "requested", len(seeds), "admitted", len(queue))
	if len(queue) == 0 {
		logger.Warnw("wavefront BFS seeded with zero admissible cells", "requested", len(seeds))
	}

	for head := 0; head < len(queue); head++ {
		current := queue[head]
		cell, _ := out.CellByIndices(current)
		currentDist, _ := cell.Value()

		for _, d := range direction8 {
			next := gridmap.Indices{Col: current.Col + d[0], Row: current.Row + d[1]}
			obstacleCell, ok := obstacle.CellByIndices(next)
			if !ok || obstacleCell.IsObstacle() {
				continue
			}
			flat := out.ToIndexByIndices(next)
			if visited[flat] {
				continue
			}
			visited[flat] = true
			nextDist := currentDist
			if nextDist < maxDistance {
				nextDist++
			}
			if err := out.SetValueByIndices(next, nextDist); err != nil {
				return nil, err
			}
			queue = append(queue, next)
		}
	}

	return out, nil
}

// markObstacles copies obstacle's Obstacle cells onto out, preserving
// exactly the same set of blocked indices in the distance field output.
func markObstacles(obstacle, out *gridmap.GridMap[uint8]) {
	for row := 0; row < obstacle.Height(); row++ {
		for col := 0; col < obstacle.Width(); col++ {
			idx := gridmap.Indices{Col: col, Row: row}
			cell, ok := obstacle.CellByIndices(idx)
			if ok && cell.IsObstacle() {
				_ = out.SetObstacleByIndices(idx)
			}
		}
	}
}

package costmap

import (
	"fmt"
	"strings"

	"github.com/viamrobotics/gridnav/gridmap"
)

// asciiArt renders a uint8 GridMap as a grid of characters for debugging
// test failures, mirroring the reference implementation's show_ascii_map
// test helper (grid_map/src/dwa_planner.rs). It is never part of the
// package's public API.
func asciiArt(m *gridmap.GridMap[uint8]) string {
	var b strings.Builder
	for row := m.Height() - 1; row >= 0; row-- {
		for col := 0; col < m.Width(); col++ {
			cell, _ := m.CellByIndices(gridmap.Indices{Col: col, Row: row})
			switch {
			case cell.IsObstacle():
				b.WriteByte('#')
			case cell.IsUninitialized():
				b.WriteByte('.')
			default:
				v, _ := cell.Value()
				fmt.Fprintf(&b, "%d", v%10)
			}
		}
		b.WriteByte('\n')
	}
	return b.String()
}

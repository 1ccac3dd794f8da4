package gridmap

import (
	"math"

	"github.com/pkg/errors"
)

// GridMap is a uniform 2-D raster over the rectangle [MinPoint, MaxPoint),
// each cell holding a Cell[T]. Cells are stored row-major: index = row *
// width + col.
type GridMap[T any] struct {
	minPoint, maxPoint Position
	resolution         float64
	width, height      int
	cells              []Cell[T]
}

// New builds a GridMap spanning [min, max) at the given resolution (meters
// per cell). Width and height are the number of cells needed to cover the
// rectangle, rounded up. Every cell starts Uninitialized.
//
// New returns ErrInvalidGeometry if resolution is non-positive or if max
// does not strictly exceed min on both axes.
func New[T any](min, max Position, resolution float64) (*GridMap[T], error) {
	if resolution <= 0 {
		return nil, errors.Wrapf(ErrInvalidGeometry, "resolution %g must be positive", resolution)
	}
	if max.X <= min.X || max.Y <= min.Y {
		return nil, errors.Wrapf(ErrInvalidGeometry, "max point %v must exceed min point %v on both axes", max, min)
	}
	width := int(math.Ceil((max.X - min.X) / resolution))
	height := int(math.Ceil((max.Y - min.Y) / resolution))
	return &GridMap[T]{
		minPoint:   min,
		maxPoint:   max,
		resolution: resolution,
		width:      width,
		height:     height,
		cells:      make([]Cell[T], width*height),
	}, nil
}

// MinPoint returns the world-frame lower-left corner of the map.
func (g *GridMap[T]) MinPoint() Position { return g.minPoint }

// MaxPoint returns the world-frame upper-right corner of the map.
func (g *GridMap[T]) MaxPoint() Position { return g.maxPoint }

// Resolution returns the map's meters-per-cell spacing.
func (g *GridMap[T]) Resolution() float64 { return g.resolution }

// Width returns the number of columns.
func (g *GridMap[T]) Width() int { return g.width }

// Height returns the number of rows.
func (g *GridMap[T]) Height() int { return g.height }

// inBoundsIndices reports whether (col, row) lies within the raster.
func (g *GridMap[T]) inBoundsIndices(idx Indices) bool {
	return idx.Col >= 0 && idx.Col < g.width && idx.Row >= 0 && idx.Row < g.height
}

// PositionToIndices converts a world position to grid indices, flooring
// toward -infinity after subtracting MinPoint. It returns false if p lies
// outside [MinPoint, MaxPoint) on either axis; a point exactly on MaxPoint
// is out of bounds.
func (g *GridMap[T]) PositionToIndices(p Position) (Indices, bool) {
	if p.X < g.minPoint.X || p.X >= g.maxPoint.X || p.Y < g.minPoint.Y || p.Y >= g.maxPoint.Y {
		return Indices{}, false
	}
	col := int(math.Floor((p.X - g.minPoint.X) / g.resolution))
	row := int(math.Floor((p.Y - g.minPoint.Y) / g.resolution))
	idx := Indices{Col: col, Row: row}
	if !g.inBoundsIndices(idx) {
		return Indices{}, false
	}
	return idx, true
}

// IndicesToPosition returns the world-frame lower-left corner of the cell
// at idx, or false if idx is out of bounds.
func (g *GridMap[T]) IndicesToPosition(idx Indices) (Position, bool) {
	if !g.inBoundsIndices(idx) {
		return Position{}, false
	}
	return NewPosition(
		g.minPoint.X+float64(idx.Col)*g.resolution,
		g.minPoint.Y+float64(idx.Row)*g.resolution,
	), true
}

// ToIndexByIndices flattens (col, row) to a row-major index: row*width+col.
func (g *GridMap[T]) ToIndexByIndices(idx Indices) int {
	return idx.Row*g.width + idx.Col
}

// ToIndicesFromIndex is the inverse of ToIndexByIndices. It returns false
// if k is out of range.
func (g *GridMap[T]) ToIndicesFromIndex(k int) (Indices, bool) {
	if k < 0 || k >= len(g.cells) {
		return Indices{}, false
	}
	return Indices{Col: k % g.width, Row: k / g.width}, true
}

// ToIndexByPosition composes PositionToIndices and ToIndexByIndices.
func (g *GridMap[T]) ToIndexByPosition(p Position) (int, bool) {
	idx, ok := g.PositionToIndices(p)
	if !ok {
		return 0, false
	}
	return g.ToIndexByIndices(idx), true
}

// CellByIndices returns the cell at idx, or false if idx is out of bounds.
func (g *GridMap[T]) CellByIndices(idx Indices) (Cell[T], bool) {
	if !g.inBoundsIndices(idx) {
		return Cell[T]{}, false
	}
	return g.cells[g.ToIndexByIndices(idx)], true
}

// CellByPosition returns the cell containing p, or false if p is outside
// the map.
func (g *GridMap[T]) CellByPosition(p Position) (Cell[T], bool) {
	idx, ok := g.PositionToIndices(p)
	if !ok {
		return Cell[T]{}, false
	}
	return g.cells[g.ToIndexByIndices(idx)], true
}

// SetObstacleByIndices marks the cell at idx as a permanent obstacle.
func (g *GridMap[T]) SetObstacleByIndices(idx Indices) error {
	if !g.inBoundsIndices(idx) {
		return errors.Wrapf(ErrOutOfBounds, "indices %v", idx)
	}
	g.cells[g.ToIndexByIndices(idx)] = ObstacleCell[T]()
	return nil
}

// SetValueByIndices stores v at idx. It returns ErrObstacleCell without
// modifying the cell if idx is already marked Obstacle — obstacle status
// is permanent until the map is rebuilt.
func (g *GridMap[T]) SetValueByIndices(idx Indices, v T) error {
	if !g.inBoundsIndices(idx) {
		return errors.Wrapf(ErrOutOfBounds, "indices %v", idx)
	}
	flat := g.ToIndexByIndices(idx)
	if g.cells[flat].IsObstacle() {
		return errors.Wrapf(ErrObstacleCell, "indices %v", idx)
	}
	g.cells[flat] = ValueCell(v)
	return nil
}

// SetValueByPosition stores v at the cell containing p. It returns
// ErrObstacleCell without modifying the cell if that cell is already
// marked Obstacle.
func (g *GridMap[T]) SetValueByPosition(p Position, v T) error {
	idx, ok := g.PositionToIndices(p)
	if !ok {
		return errors.Wrapf(ErrOutOfBounds, "position %v", p)
	}
	return g.SetValueByIndices(idx, v)
}

// Clone returns a deep copy of the map.
func (g *GridMap[T]) Clone() *GridMap[T] {
	clone := *g
	clone.cells = make([]Cell[T], len(g.cells))
	copy(clone.cells, g.cells)
	return &clone
}

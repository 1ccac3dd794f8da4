package gridmap

import (
	"testing"

	"github.com/pkg/errors"
	"go.viam.com/test"
)

func TestNewInvalidGeometry(t *testing.T) {
	t.Run("non-positive resolution", func(t *testing.T) {
		_, err := New[uint8](NewPosition(0, 0), NewPosition(1, 1), 0)
		test.That(t, err, test.ShouldNotBeNil)
		test.That(t, errors.Is(err, ErrInvalidGeometry), test.ShouldBeTrue)
	})

	t.Run("max does not exceed min", func(t *testing.T) {
		_, err := New[uint8](NewPosition(1, 1), NewPosition(0, 0), 0.1)
		test.That(t, err, test.ShouldNotBeNil)
	})
}

func TestDimensions(t *testing.T) {
	m, err := New[uint8](NewPosition(-1.05, -1.05), NewPosition(3.05, 1.05), 0.05)
	test.That(t, err, test.ShouldBeNil)
	test.That(t, m.Width(), test.ShouldEqual, 82)
	test.That(t, m.Height(), test.ShouldEqual, 42)
}

// S1: round trip, from spec.md §8 scenario S1.
func TestRoundTripS1(t *testing.T) {
	m, err := New[uint8](NewPosition(-1.05, -1.05), NewPosition(3.05, 1.05), 0.05)
	test.That(t, err, test.ShouldBeNil)

	idx, ok := m.PositionToIndices(NewPosition(0, 0))
	test.That(t, ok, test.ShouldBeTrue)
	test.That(t, idx, test.ShouldResemble, Indices{Col: 21, Row: 21})

	pos, ok := m.IndicesToPosition(idx)
	test.That(t, ok, test.ShouldBeTrue)
	test.That(t, pos.X, test.ShouldAlmostEqual, 0.0, 0.05)
	test.That(t, pos.Y, test.ShouldAlmostEqual, 0.0, 0.05)
}

// Invariant 1: round-trip geometry for arbitrary in-bounds positions.
func TestRoundTripGeometryProperty(t *testing.T) {
	m, err := New[uint8](NewPosition(0, 0), NewPosition(2, 2), 0.1)
	test.That(t, err, test.ShouldBeNil)

	for _, p := range []Position{
		NewPosition(0, 0),
		NewPosition(1.95, 1.95),
		NewPosition(0.04, 1.01),
		NewPosition(1.999, 0.001),
	} {
		idx, ok := m.PositionToIndices(p)
		test.That(t, ok, test.ShouldBeTrue)
		back, ok := m.IndicesToPosition(idx)
		test.That(t, ok, test.ShouldBeTrue)
		test.That(t, back.X, test.ShouldAlmostEqual, p.X, m.Resolution())
		test.That(t, back.Y, test.ShouldAlmostEqual, p.Y, m.Resolution())
	}
}

func TestMaxPointIsOutOfBounds(t *testing.T) {
	m, err := New[uint8](NewPosition(0, 0), NewPosition(1, 1), 0.5)
	test.That(t, err, test.ShouldBeNil)
	_, ok := m.PositionToIndices(NewPosition(1, 1))
	test.That(t, ok, test.ShouldBeFalse)
	_, ok = m.PositionToIndices(NewPosition(0, 1))
	test.That(t, ok, test.ShouldBeFalse)
}

// Invariant 2: index bijection.
func TestIndexBijection(t *testing.T) {
	m, err := New[uint8](NewPosition(0, 0), NewPosition(5, 3), 1)
	test.That(t, err, test.ShouldBeNil)

	for row := 0; row < m.Height(); row++ {
		for col := 0; col < m.Width(); col++ {
			idx := Indices{Col: col, Row: row}
			flat := m.ToIndexByIndices(idx)
			back, ok := m.ToIndicesFromIndex(flat)
			test.That(t, ok, test.ShouldBeTrue)
			test.That(t, back, test.ShouldResemble, idx)
		}
	}
}

func TestToIndicesFromIndexOutOfRange(t *testing.T) {
	m, err := New[uint8](NewPosition(0, 0), NewPosition(1, 1), 1)
	test.That(t, err, test.ShouldBeNil)
	_, ok := m.ToIndicesFromIndex(-1)
	test.That(t, ok, test.ShouldBeFalse)
	_, ok = m.ToIndicesFromIndex(m.Width() * m.Height())
	test.That(t, ok, test.ShouldBeFalse)
}

func TestCellDefaultsUninitialized(t *testing.T) {
	m, err := New[uint8](NewPosition(0, 0), NewPosition(1, 1), 1)
	test.That(t, err, test.ShouldBeNil)
	cell, ok := m.CellByIndices(Indices{Col: 0, Row: 0})
	test.That(t, ok, test.ShouldBeTrue)
	test.That(t, cell.IsUninitialized(), test.ShouldBeTrue)
}

func TestSetObstaclePreventsValue(t *testing.T) {
	m, err := New[uint8](NewPosition(0, 0), NewPosition(1, 1), 1)
	test.That(t, err, test.ShouldBeNil)
	test.That(t, m.SetObstacleByIndices(Indices{Col: 0, Row: 0}), test.ShouldBeNil)
	cell, ok := m.CellByIndices(Indices{Col: 0, Row: 0})
	test.That(t, ok, test.ShouldBeTrue)
	test.That(t, cell.IsObstacle(), test.ShouldBeTrue)

	err = m.SetValueByIndices(Indices{Col: 0, Row: 0}, uint8(7))
	test.That(t, err, test.ShouldNotBeNil)
	test.That(t, errors.Is(err, ErrObstacleCell), test.ShouldBeTrue)

	cell, _ = m.CellByIndices(Indices{Col: 0, Row: 0})
	test.That(t, cell.IsObstacle(), test.ShouldBeTrue)
	_, hasValue := cell.Value()
	test.That(t, hasValue, test.ShouldBeFalse)
}

func TestSetValueByPositionPreventsObstacleOverwrite(t *testing.T) {
	m, err := New[uint8](NewPosition(0, 0), NewPosition(1, 1), 1)
	test.That(t, err, test.ShouldBeNil)
	test.That(t, m.SetObstacleByIndices(Indices{Col: 0, Row: 0}), test.ShouldBeNil)

	err = m.SetValueByPosition(NewPosition(0.5, 0.5), uint8(7))
	test.That(t, err, test.ShouldNotBeNil)
	test.That(t, errors.Is(err, ErrObstacleCell), test.ShouldBeTrue)
}

func TestSettersOutOfBounds(t *testing.T) {
	m, err := New[uint8](NewPosition(0, 0), NewPosition(1, 1), 0.5)
	test.That(t, err, test.ShouldBeNil)

	test.That(t, m.SetObstacleByIndices(Indices{Col: 10, Row: 10}), test.ShouldNotBeNil)
	test.That(t, m.SetValueByIndices(Indices{Col: -1, Row: 0}, uint8(1)), test.ShouldNotBeNil)
	test.That(t, m.SetValueByPosition(NewPosition(5, 5), uint8(1)), test.ShouldNotBeNil)
}

func TestCloneIsIndependent(t *testing.T) {
	m, err := New[uint8](NewPosition(0, 0), NewPosition(1, 1), 0.5)
	test.That(t, err, test.ShouldBeNil)
	test.That(t, m.SetValueByIndices(Indices{Col: 0, Row: 0}, uint8(1)), test.ShouldBeNil)

	clone := m.Clone()
	test.That(t, clone.SetValueByIndices(Indices{Col: 0, Row: 0}, uint8(9)), test.ShouldBeNil)

	orig, _ := m.CellByIndices(Indices{Col: 0, Row: 0})
	v, _ := orig.Value()
	test.That(t, v, test.ShouldEqual, uint8(1))

	cloned, _ := clone.CellByIndices(Indices{Col: 0, Row: 0})
	v, _ = cloned.Value()
	test.That(t, v, test.ShouldEqual, uint8(9))
}

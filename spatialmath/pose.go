package spatialmath

import (
	"math"

	"github.com/viamrobotics/gridnav/gridmap"
)

// Position is a planar world-frame coordinate; re-exported from gridmap so
// callers constructing Poses don't need to import both packages.
type Position = gridmap.Position

// Pose is a 2-D rigid isometry (SE(2)): a translation plus a rotation.
// There is no off-the-shelf 2-D isometry type anywhere in the dependency
// surface available to this module (gonum's num/quat and num/dualquat, the
// rotation types the rest of the stack uses, represent SO(3)/SE(3) and
// would needlessly pull a third dimension through every pose in this
// system), so Pose is hand-rolled arithmetic, same as the reference's use
// of nalgebra's Isometry2 but spelled out with math.Sin/math.Cos.
type Pose struct {
	Point Position
	Theta float64
}

// NewPose builds a Pose at (x, y) with heading theta (radians). Angles are
// unwrapped: no canonicalization to [-pi, pi) is performed anywhere in this
// package, since composition is well-defined regardless.
func NewPose(x, y, theta float64) Pose {
	return Pose{Point: gridmap.NewPosition(x, y), Theta: theta}
}

// Compose returns the SE(2) product A.Compose(B): B is applied in A's local
// frame. Composition is not commutative.
func (a Pose) Compose(b Pose) Pose {
	sin, cos := math.Sincos(a.Theta)
	rotatedX := cos*b.Point.X - sin*b.Point.Y
	rotatedY := sin*b.Point.X + cos*b.Point.Y
	return Pose{
		Point: gridmap.NewPosition(a.Point.X+rotatedX, a.Point.Y+rotatedY),
		Theta: a.Theta + b.Theta,
	}
}

// VelocityToPose returns the one-step local-frame delta pose a velocity v
// produces over duration dt: a forward translation along x (no lateral
// component, matching the differential-drive Velocity contract) and a
// rotation about the origin.
func VelocityToPose(v Velocity, dt float64) Pose {
	return NewPose(v.X*dt, 0, v.Theta*dt)
}

// Package spatialmath implements the 2-D rigid-body primitives the planner
// composes: SE(2) poses and the velocity/acceleration/limit types sampled
// and integrated by dwaplanner.
package spatialmath

import "go.uber.org/multierr"

// Velocity is a differential-drive command: linear velocity along the
// robot's forward axis (m/s) and angular velocity (rad/s). There is no
// lateral component.
type Velocity struct {
	X     float64
	Theta float64
}

// Acceleration has the same axes as Velocity, in units per second squared.
type Acceleration struct {
	X     float64
	Theta float64
}

// Limits bounds the velocities and accelerations the planner may sample.
type Limits struct {
	MaxVelocity Velocity
	MinVelocity Velocity
	MaxAccel    Acceleration
	MinAccel    Acceleration
}

// Validate reports every componentwise violation of the invariant min <=
// max, aggregated into a single error via go.uber.org/multierr rather than
// failing on only the first violation found.
func (l Limits) Validate() error {
	var err error
	if l.MinVelocity.X > l.MaxVelocity.X {
		err = multierr.Append(err, errLimitOrder("min velocity x", l.MinVelocity.X, l.MaxVelocity.X))
	}
	if l.MinVelocity.Theta > l.MaxVelocity.Theta {
		err = multierr.Append(err, errLimitOrder("min velocity theta", l.MinVelocity.Theta, l.MaxVelocity.Theta))
	}
	if l.MinAccel.X > l.MaxAccel.X {
		err = multierr.Append(err, errLimitOrder("min accel x", l.MinAccel.X, l.MaxAccel.X))
	}
	if l.MinAccel.Theta > l.MaxAccel.Theta {
		err = multierr.Append(err, errLimitOrder("min accel theta", l.MinAccel.Theta, l.MaxAccel.Theta))
	}
	return err
}

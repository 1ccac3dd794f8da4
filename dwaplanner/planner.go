// Package dwaplanner implements the Dynamic Window Approach: sampling
// candidate velocities within one-step acceleration reach, rolling each
// forward kinematically over a fixed horizon, and scoring the resulting
// trajectories against a weighted sum of gridmap cost layers.
package dwaplanner

import (
	"context"
	"math"
	"sort"

	"github.com/pkg/errors"
	"github.com/viamrobotics/gridnav/gridmap"
	"github.com/viamrobotics/gridnav/internal/rdkutils"
	"github.com/viamrobotics/gridnav/logging"
	"github.com/viamrobotics/gridnav/spatialmath"
)

// Plan is the result of one planning tick: the chosen velocity command, its
// total weighted cost, and the predicted trajectory that earned it. Path
// does not include the starting pose — Path[0] is the pose one
// controller-dt ahead, ready to be used directly as the next commanded
// pose (spec.md §9).
type Plan struct {
	Velocity spatialmath.Velocity
	Cost     float64
	Path     []spatialmath.Pose
}

// stallPlan is returned whenever no admissible candidate exists: zero
// velocity, infinite cost, empty path. The supervising controller decides
// how to respond (emergency stop, replan, wait) — spec.md §7.
func stallPlan() Plan {
	return Plan{Velocity: spatialmath.Velocity{}, Cost: math.Inf(1)}
}

// DwaPlanner holds the immutable parameters of one DWA configuration. A
// *DwaPlanner mutates nothing after construction, so PlanLocalPath is safe
// to call concurrently with distinct arguments from multiple goroutines
// (spec.md §5).
type DwaPlanner struct {
	limits             spatialmath.Limits
	mapNameWeight      map[string]float64
	controllerDT       float64
	simulationDuration float64
	numVelSample       int

	logger  logging.Logger
	metrics *Metrics
}

// Option configures optional DwaPlanner fields at construction time.
type Option func(*DwaPlanner)

// WithLogger attaches a logging.Logger. Without this option the planner
// logs nothing.
func WithLogger(logger logging.Logger) Option {
	return func(p *DwaPlanner) { p.logger = logger }
}

// WithMetrics attaches a Metrics sink. Without this option the planner
// records nothing; every Metrics method is also nil-safe on its own, so
// this option exists purely for readability at call sites.
func WithMetrics(metrics *Metrics) Option {
	return func(p *DwaPlanner) { p.metrics = metrics }
}

// New builds a DwaPlanner. It validates every parameter eagerly
// (controllerDT > 0, simulationDuration >= controllerDT, numVelSample >= 1,
// and limits.Validate()) and returns ErrInvalidParameters rather than
// deferring the failure to the first PlanLocalPath call, per spec.md §7's
// policy that geometry/configuration errors surface at construction.
func New(
	limits spatialmath.Limits,
	mapNameWeight map[string]float64,
	controllerDT, simulationDuration float64,
	numVelSample int,
	opts ...Option,
) (*DwaPlanner, error) {
	if err := limits.Validate(); err != nil {
		return nil, errors.Wrap(ErrInvalidParameters, err.Error())
	}
	if controllerDT <= 0 {
		return nil, errors.Wrapf(ErrInvalidParameters, "controller dt %g must be positive", controllerDT)
	}
	if simulationDuration < controllerDT {
		return nil, errors.Wrapf(ErrInvalidParameters,
			"simulation duration %g must be at least controller dt %g", simulationDuration, controllerDT)
	}
	if numVelSample < 1 {
		return nil, errors.Wrapf(ErrInvalidParameters, "num vel sample %d must be at least 1", numVelSample)
	}

	weights := make(map[string]float64, len(mapNameWeight))
	for name, w := range mapNameWeight {
		weights[name] = w
	}

	p := &DwaPlanner{
		limits:             limits,
		mapNameWeight:      weights,
		controllerDT:       controllerDT,
		simulationDuration: simulationDuration,
		numVelSample:       numVelSample,
		logger:             logging.NewNopLogger(),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p, nil
}

// sampleVelocity computes the dynamic window around currentVelocity and
// returns every candidate velocity within it: an (N+1)x(N+1) grid over the
// reachable (x, theta) box, plus one zero-linear-velocity, in-place-rotate
// sample per theta row (spec.md §4.4).
func (p *DwaPlanner) sampleVelocity(currentVelocity spatialmath.Velocity) []spatialmath.Velocity {
	maxX := rdkutils.Clamp(
		currentVelocity.X+p.limits.MaxAccel.X*p.controllerDT,
		p.limits.MinVelocity.X, p.limits.MaxVelocity.X)
	minX := rdkutils.Clamp(
		currentVelocity.X+p.limits.MinAccel.X*p.controllerDT,
		p.limits.MinVelocity.X, p.limits.MaxVelocity.X)
	maxTheta := rdkutils.Clamp(
		currentVelocity.Theta+p.limits.MaxAccel.Theta*p.controllerDT,
		p.limits.MinVelocity.Theta, p.limits.MaxVelocity.Theta)
	minTheta := rdkutils.Clamp(
		currentVelocity.Theta+p.limits.MinAccel.Theta*p.controllerDT,
		p.limits.MinVelocity.Theta, p.limits.MaxVelocity.Theta)

	n := p.numVelSample
	dx := (maxX - minX) / float64(n)
	dTheta := (maxTheta - minTheta) / float64(n)

	velocities := make([]spatialmath.Velocity, 0, (n+1)*(n+1)+(n+1))
	for i := 0; i <= n; i++ {
		theta := minTheta + dTheta*float64(i)
		for j := 0; j <= n; j++ {
			velocities = append(velocities, spatialmath.Velocity{
				X:     minX + dx*float64(j),
				Theta: theta,
			})
		}
		velocities = append(velocities, spatialmath.Velocity{X: 0, Theta: theta})
	}
	return velocities
}

// forwardSimulation rolls velocity forward from currentPose for
// floor(simulationDuration/controllerDT) steps, composing the per-step
// local-frame delta pose onto the running pose. The returned slice does
// not include currentPose (spec.md §4.4, §9).
func (p *DwaPlanner) forwardSimulation(currentPose spatialmath.Pose, velocity spatialmath.Velocity) []spatialmath.Pose {
	steps := int(p.simulationDuration / p.controllerDT)
	delta := spatialmath.VelocityToPose(velocity, p.controllerDT)

	poses := make([]spatialmath.Pose, 0, steps)
	last := currentPose
	for i := 0; i < steps; i++ {
		last = last.Compose(delta)
		poses = append(poses, last)
	}
	return poses
}

// accumulateValuesByPositions sums the uint8 values of the cells beneath
// positions in layer. Any position that is out of bounds, Uninitialized, or
// Obstacle disqualifies the whole trajectory: the function returns +Inf
// immediately (spec.md §4.4 scoring step 2).
func accumulateValuesByPositions(layer *gridmap.GridMap[uint8], positions []spatialmath.Position) float64 {
	var cost float64
	for _, pos := range positions {
		cell, ok := layer.CellByPosition(pos)
		if !ok {
			return math.Inf(1)
		}
		v, hasValue := cell.Value()
		if !hasValue {
			return math.Inf(1)
		}
		cost += float64(v)
	}
	return cost
}

// PlanLocalPath samples candidate velocities around currentVelocity, rolls
// each forward from currentPose over the configured horizon, scores every
// resulting trajectory against the weighted layered cost maps, and returns
// the minimum-cost Plan. Ties are broken by first-encountered in sampling
// order. If every candidate is disqualified (or sampling somehow yields no
// candidates), PlanLocalPath returns the stall plan: zero velocity,
// infinite cost.
//
// PlanLocalPath is a pure function of its arguments: it mutates no
// DwaPlanner state and retains no reference to layered after it returns
// (spec.md §5). ctx is used only to correlate logs/metrics with a caller's
// tracing span; the computation itself is synchronous and
// non-preemptible (spec.md §5), so ctx cancellation is never checked
// mid-computation.
func (p *DwaPlanner) PlanLocalPath(
	ctx context.Context,
	currentPose spatialmath.Pose,
	currentVelocity spatialmath.Velocity,
	layered *gridmap.LayeredGridMap[uint8],
) (Plan, error) {
	// Layers are visited in sorted name order so the float sum below does
	// not depend on Go's randomized map iteration order.
	names := make([]string, 0, len(p.mapNameWeight))
	for name := range p.mapNameWeight {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		if _, ok := layered.Layer(name); !ok {
			return Plan{}, errors.Wrapf(ErrLayerMissing, "layer %q", name)
		}
	}

	stop := p.metrics.startTimer()
	defer stop()

	candidates := p.sampleVelocity(currentVelocity)
	p.logger.Debugw("sampled candidate velocities", "count", len(candidates))

	best := stallPlan()
	bestCost := math.Inf(1)

	for _, v := range candidates {
		path := p.forwardSimulation(currentPose, v)
		positions := make([]spatialmath.Position, len(path))
		for i, pose := range path {
			positions[i] = pose.Point
		}

		var totalCost float64
		for _, name := range names {
			layer, _ := layered.Layer(name)
			totalCost += p.mapNameWeight[name] * accumulateValuesByPositions(layer, positions)
		}

		if totalCost < bestCost {
			bestCost = totalCost
			best = Plan{Velocity: v, Cost: totalCost, Path: path}
		}
	}

	if math.IsInf(best.Cost, 1) {
		p.logger.Warnw("no admissible candidate, returning stall plan", "candidates", len(candidates))
		p.metrics.recordStall()
		return stallPlan(), nil
	}

	p.metrics.recordCost(best.Cost)
	return best, nil
}

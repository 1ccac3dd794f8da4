package dwaplanner

import "github.com/pkg/errors"

// ErrLayerMissing is returned when a layer named in a DwaPlanner's weight
// table is absent from the LayeredGridMap passed to PlanLocalPath. This is
// a fatal precondition violation (spec.md §7), not a per-tick recoverable
// condition: the caller configured the planner or assembled its maps
// incorrectly.
var ErrLayerMissing = errors.New("weighted layer missing from layered grid map")

// ErrInvalidParameters is returned by New when controllerDT,
// simulationDuration, numVelSample, or limits violate their invariants.
var ErrInvalidParameters = errors.New("invalid dwa planner parameters")

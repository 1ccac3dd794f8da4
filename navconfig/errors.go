package navconfig

import "github.com/pkg/errors"

// ErrInvalidConfig is returned when a config file fails to parse or
// violates one of the planner's construction preconditions.
var ErrInvalidConfig = errors.New("invalid navconfig config")

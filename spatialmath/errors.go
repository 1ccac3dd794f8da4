package spatialmath

import "github.com/pkg/errors"

// ErrInvalidLimits is the sentinel wrapped by every Limits.Validate
// failure.
var ErrInvalidLimits = errors.New("invalid limits")

func errLimitOrder(field string, min, max float64) error {
	return errors.Wrapf(ErrInvalidLimits, "%s: min %g exceeds max %g", field, min, max)
}

// Package rdkutils holds small numeric helpers; its one helper, Clamp, is
// used by dwaplanner's velocity sampler. It follows the spirit of the teacher's own
// go.viam.com/rdk/utils grab-bag package (Clamp is named the way that
// package names its own generic clamp helper).
package rdkutils

import "golang.org/x/exp/constraints"

// Clamp restricts v to [lo, hi]. Generic over any ordered type, per
// golang.org/x/exp/constraints; the velocity sampler calls it with float64.
func Clamp[T constraints.Ordered](v, lo, hi T) T {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

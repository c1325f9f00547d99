package calculator

import (
	"errors"
	"math"
)

// Tolerance is the numeric slack allowed when checking float64 balance sums
// against zero, and the threshold below which a transfer is considered
// rounding noise and not emitted.
const Tolerance = 1e-12

// ErrInvariant reports broken settlement arithmetic: a balance sum drifting
// from zero, a negative transfer amount, or a residual balance after
// settlement. It signals a defect in the computation or its input, never a
// recoverable runtime condition.
var ErrInvariant = errors.New("settlement invariant violated")

// negligible reports whether x is zero within Tolerance.
func negligible(x float64) bool {
	return math.Abs(x) <= Tolerance
}

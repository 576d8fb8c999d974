package grid

import "math"

// MaskedLog2 returns log2(x) for positive x and 0 for any other input.
//
// Entropy sums over estimated probabilities need the convention
// 0*log2(0) = 0: an empty histogram bin contributes nothing, rather than
// NaN or negative infinity. Every entropy computation in this module goes
// through this helper so the zero-handling policy cannot drift between
// methods. Negative inputs cannot occur for valid probabilities; they are
// masked to 0 as well so the mask covers the whole non-positive domain.
func MaskedLog2(x float64) float64 {
	if x <= 0 {
		return 0
	}
	return math.Log2(x)
}

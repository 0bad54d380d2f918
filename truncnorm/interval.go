package truncnorm

import "math"

// tailSwitch is the bound beyond which the direct probability-space
// subtraction is abandoned in favor of the log-space tail decomposition.
// Inside [-tailSwitch, tailSwitch] the normal CDF is representable in
// float64, so the direct form is both accurate and cheap.
const tailSwitch = 30

// IntervalLogProb returns log(Φ(b) - Φ(a)) for the standard normal CDF Φ,
// for any a <= b including infinite bounds. The result is never NaN and
// never +Inf: a zero-width or numerically empty interval yields -Inf, and
// the full line (a = -Inf, b = +Inf) yields 0.
//
// The computation switches between a direct probability-space regime and
// two log-space tail regimes per element, so intervals dozens of standard
// deviations into either tail keep full relative accuracy instead of
// collapsing to log(0).
func IntervalLogProb(a, b float64) float64 {
	if a == b {
		// Degenerate interval. Handled up front so that b = a = ±Inf does
		// not feed Inf - Inf into the tail decomposition below.
		return math.Inf(-1)
	}

	// Direct regime: at least one bound is inside the moderate range, so
	// the interval mass does not live entirely in an extreme tail.
	if a <= tailSwitch && b >= -tailSwitch {
		var p float64
		if a > 0 {
			// Reflect so the larger CDF value is the minuend; subtracting
			// two upper-tail survival masses this way avoids cancellation
			// between values that are both close to 1.
			p = stdNormal.CDF(-a) - stdNormal.CDF(-b)
		} else {
			p = stdNormal.CDF(b) - stdNormal.CDF(a)
		}
		// Rounding can push a vanishing mass slightly negative.
		if p > 0 {
			return math.Log(p)
		}
		// Underflowed to zero: fall through to the tail regimes.
	}

	// Tail regimes. The decomposition anchors the leading term at the
	// bound nearer zero and folds the subtracted mass into log1p, keeping
	// the dominant tail as an additive log term:
	//
	//	log(Φ(b) - Φ(a)) = logΦ(b*) + log1p(-exp(logΦ(a*) - logΦ(b*)))
	//
	// evaluated on the original bounds in the lower tail and on the
	// reflected bounds (-b, -a) in the upper tail.
	if b < 0 || math.Abs(a) >= math.Abs(b) {
		// Interval in the lower tail: Φ(b) dominates.
		la, lb := LogNormalCDF(a), LogNormalCDF(b)
		return lb + math.Log1p(-math.Exp(la-lb))
	}
	// Interval in the upper tail: reflect, Φ(-a) dominates.
	la, lb := LogNormalCDF(-b), LogNormalCDF(-a)
	return lb + math.Log1p(-math.Exp(la-lb))
}

// IntervalLogProbs evaluates IntervalLogProb elementwise over equal-length
// bound slices, writing into dst. If dst is nil a new slice is allocated.
// It panics if the slice lengths differ.
func IntervalLogProbs(dst, a, b []float64) []float64 {
	if len(a) != len(b) {
		panic("truncnorm: bound slice length mismatch")
	}
	if dst == nil {
		dst = make([]float64, len(a))
	} else if len(dst) != len(a) {
		panic("truncnorm: dst length mismatch")
	}
	for i := range a {
		dst[i] = IntervalLogProb(a[i], b[i])
	}
	return dst
}

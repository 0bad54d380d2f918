// Package truncnorm implements the truncated normal distribution together
// with a numerically stable primitive for the log probability mass of a
// standard normal interval.
//
// The interval primitive log(Φ(b) - Φ(a)) is the normalizing constant of
// the truncated density and the part that breaks first under a naive
// implementation: for bounds a few dozen standard deviations into a tail,
// Φ underflows and the subtraction cancels catastrophically. IntervalLogProb
// switches between a probability-space regime and two log-space tail
// decompositions per element and is guaranteed to return neither NaN nor
// +Inf for any a <= b.
package truncnorm

import "math"

// TruncatedNormal is a normal distribution with mean Loc and standard
// deviation Scale, truncated to [Loc + A·Scale, Loc + B·Scale]. A and B are
// expressed in standardized units and may be ±Inf.
//
// The zero value is not usable; Scale must be positive.
type TruncatedNormal struct {
	Loc   float64
	Scale float64
	A     float64
	B     float64
}

// LogProb returns the log density of x under the truncated normal.
// Values whose standardized residual falls outside [A, B] have zero
// density and evaluate to -Inf; the boundaries themselves are inside.
func (t TruncatedNormal) LogProb(x float64) float64 {
	v := (x - t.Loc) / t.Scale
	if v < t.A || v > t.B {
		return math.Inf(-1)
	}
	return logPDF(v) - IntervalLogProb(t.A, t.B) - math.Log(t.Scale)
}

// LogProbs evaluates the log density elementwise for per-observation
// location, scale and standardized bounds, writing into dst. All slices
// must share the length of x. If dst is nil a new slice is allocated.
func LogProbs(dst, x, loc, scale, a, b []float64) []float64 {
	if dst == nil {
		dst = make([]float64, len(x))
	}
	for i := range x {
		dst[i] = TruncatedNormal{Loc: loc[i], Scale: scale[i], A: a[i], B: b[i]}.LogProb(x[i])
	}
	return dst
}

package truncnorm

import (
	"math"
	"testing"
)

// testBounds is a grid of interval endpoints covering interior values,
// regime switchovers and deep tails.
var testBounds = []float64{
	math.Inf(-1), -500, -100, -50, -31, -30.001, -30, -29.999, -10,
	-2, -0.5, 0, 0.5, 2, 10, 29.999, 30, 30.001, 31, 50, 100, 500, math.Inf(1),
}

func TestIntervalLogProbNeverNaNOrPosInf(t *testing.T) {
	for _, a := range testBounds {
		for _, b := range testBounds {
			if a > b {
				continue
			}
			got := IntervalLogProb(a, b)
			if math.IsNaN(got) {
				t.Errorf("IntervalLogProb(%v, %v) = NaN", a, b)
			}
			if math.IsInf(got, 1) {
				t.Errorf("IntervalLogProb(%v, %v) = +Inf", a, b)
			}
			if got > 0 {
				t.Errorf("IntervalLogProb(%v, %v) = %v, want <= 0", a, b, got)
			}
		}
	}
}

func TestIntervalLogProbEdgeCases(t *testing.T) {
	tests := []struct {
		name string
		a, b float64
		want float64
	}{
		{name: "full line", a: math.Inf(-1), b: math.Inf(1), want: 0},
		{name: "degenerate at zero", a: 0, b: 0, want: math.Inf(-1)},
		{name: "degenerate in tail", a: 50, b: 50, want: math.Inf(-1)},
		{name: "degenerate at -Inf", a: math.Inf(-1), b: math.Inf(-1), want: math.Inf(-1)},
		{name: "degenerate at +Inf", a: math.Inf(1), b: math.Inf(1), want: math.Inf(-1)},
		{name: "half line", a: math.Inf(-1), b: 0, want: math.Log(0.5)},
		{name: "symmetric unit interval", a: -1, b: 1, want: math.Log(0.6826894921370859)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := IntervalLogProb(tt.a, tt.b)
			if math.IsInf(tt.want, -1) {
				if !math.IsInf(got, -1) {
					t.Errorf("IntervalLogProb(%v, %v) = %v, want -Inf", tt.a, tt.b, got)
				}
				return
			}
			if math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("IntervalLogProb(%v, %v) = %v, want %v", tt.a, tt.b, got, tt.want)
			}
		})
	}
}

func TestIntervalLogProbMonotone(t *testing.T) {
	// Widening the interval cannot shrink its mass: non-decreasing in b,
	// non-increasing in a.
	for _, a := range testBounds {
		prev := math.Inf(-1)
		for _, b := range testBounds {
			if a > b {
				continue
			}
			got := IntervalLogProb(a, b)
			if got < prev-1e-12 {
				t.Errorf("IntervalLogProb(%v, %v) = %v < previous %v, not monotone in b", a, b, got, prev)
			}
			if got > prev {
				prev = got
			}
		}
	}
	for _, b := range testBounds {
		prev := math.Inf(-1)
		for i := len(testBounds) - 1; i >= 0; i-- {
			a := testBounds[i]
			if a > b {
				continue
			}
			got := IntervalLogProb(a, b)
			if got < prev-1e-12 {
				t.Errorf("IntervalLogProb(%v, %v) = %v < previous %v, not monotone in a", a, b, got, prev)
			}
			if got > prev {
				prev = got
			}
		}
	}
}

func TestIntervalLogProbSymmetry(t *testing.T) {
	// Reflection of the standard normal: mass of [a,b] equals mass of [-b,-a].
	for _, a := range testBounds {
		for _, b := range testBounds {
			if a > b {
				continue
			}
			lhs := IntervalLogProb(a, b)
			rhs := IntervalLogProb(-b, -a)
			if math.IsInf(lhs, -1) && math.IsInf(rhs, -1) {
				continue
			}
			tol := 1e-9 * (1 + math.Abs(lhs))
			if math.Abs(lhs-rhs) > tol {
				t.Errorf("IntervalLogProb(%v, %v) = %v, reflected = %v", a, b, lhs, rhs)
			}
		}
	}
}

func TestIntervalLogProbRegimeContinuity(t *testing.T) {
	// Near the ±30 switchover both the direct subtraction and the log-space
	// tail decomposition are representable, so their results must agree.
	for a := 25.0; a <= 29.5; a += 0.5 {
		b := a + 1

		direct := math.Log(stdNormal.CDF(-a) - stdNormal.CDF(-b))
		la, lb := LogNormalCDF(-b), LogNormalCDF(-a)
		tail := lb + math.Log1p(-math.Exp(la-lb))
		got := IntervalLogProb(a, b)

		if math.Abs(direct-tail) > 1e-8*math.Abs(direct) {
			t.Errorf("regimes disagree at a=%v: direct %v, tail %v", a, direct, tail)
		}
		if math.Abs(got-tail) > 1e-8*math.Abs(tail) {
			t.Errorf("IntervalLogProb(%v, %v) = %v, want about %v", a, b, got, tail)
		}
	}

	// Walking b across -30 must not produce a jump.
	prev := IntervalLogProb(-40, -29.5)
	for b := -29.5; b >= -30.5; b -= 0.01 {
		cur := IntervalLogProb(-40, b)
		if prev-cur > 0.5 {
			t.Fatalf("discontinuity at b=%v: step %v", b, prev-cur)
		}
		if cur > prev {
			t.Fatalf("not monotone at b=%v", b)
		}
		prev = cur
	}
}

func TestIntervalLogProbs(t *testing.T) {
	a := []float64{-1, 0, 40}
	b := []float64{1, 0, 41}
	got := IntervalLogProbs(nil, a, b)
	for i := range a {
		want := IntervalLogProb(a[i], b[i])
		if got[i] != want && !(math.IsInf(got[i], -1) && math.IsInf(want, -1)) {
			t.Errorf("IntervalLogProbs[%d] = %v, want %v", i, got[i], want)
		}
	}
}

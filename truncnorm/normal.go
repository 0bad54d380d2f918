package truncnorm

import (
	"math"

	"gonum.org/v1/gonum/stat/distuv"
)

const (
	logHalf    = -0.6931471805599453         // log(1/2)
	logSqrt2Pi = 0.9189385332046727          // log(sqrt(2*pi))
	invSqrt2   = 0.7071067811865476          // 1/sqrt(2)
)

// stdNormal is the unit normal used for probability-space CDF evaluation
// in the direct regime and for the standard normal log density.
var stdNormal = distuv.UnitNormal

// LogNormalCDF returns log(Φ(x)) for the standard normal CDF Φ, accurate
// for all x including arguments deep in the lower tail where Φ(x)
// underflows float64.
//
// Three ranges are used:
//   - x >= 0: log1p of the complementary mass, so log(Φ(x)) stays accurate
//     as Φ(x) approaches 1.
//   - -37 <= x < 0: erfc in probability space, which does not underflow
//     until around x = -37.5.
//   - x < -37: the standard asymptotic expansion of the Mills ratio,
//     log(Φ(x)) = -x²/2 - log(-x) - log(√(2π)) + log1p(Σ (-1)ⁿ (2n-1)!!/x²ⁿ).
func LogNormalCDF(x float64) float64 {
	switch {
	case math.IsInf(x, 1):
		return 0
	case math.IsInf(x, -1):
		return math.Inf(-1)
	case x >= 0:
		// Φ(x) = 1 - Φ(-x); erfc is well-conditioned here.
		return math.Log1p(-0.5 * math.Erfc(x*invSqrt2))
	case x >= -37:
		return logHalf + math.Log(math.Erfc(-x*invSqrt2))
	default:
		// Asymptotic lower tail. With |x| >= 37 the series below converges
		// to full float64 precision in four terms.
		z := 1 / (x * x)
		series := -z * (1 - 3*z*(1-5*z*(1-7*z)))
		return -0.5*x*x - math.Log(-x) - logSqrt2Pi + math.Log1p(series)
	}
}

// logPDF returns the log density of the standard normal at x.
func logPDF(x float64) float64 {
	return -0.5*x*x - logSqrt2Pi
}

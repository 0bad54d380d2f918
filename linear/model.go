package linear

import (
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat/distuv"

	"github.com/YuminosukeSato/censgo/core/parallel"
	"github.com/YuminosukeSato/censgo/pkg/errors"
	"github.com/YuminosukeSato/censgo/truncnorm"
)

// Censoring indicator values, derived once from (y, l, r) and never
// mutated afterwards.
const (
	leftCensored  int8 = -1
	observed      int8 = 0
	rightCensored int8 = 1
)

// defaultUpperBound stands in for +Inf when no upper threshold is
// configured: the solver's internal standardized bounds must stay finite.
const defaultUpperBound = 100

// parallelThreshold is the batch size above which per-element likelihood
// evaluation runs on multiple cores.
const parallelThreshold = 8

var stdNormal = distuv.UnitNormal

// censoredFit holds the immutable training data of one estimation run:
// per-element design matrices and responses, the derived censoring
// indicator, and the global thresholds in the solver's internal form.
type censoredFit struct {
	X []*mat.Dense
	y []*mat.VecDense
	z [][]int8

	l, r     float64 // l may be -Inf; r is always finite
	k        int
	totalObs int
}

func newCensoredFit(X []*mat.Dense, y []*mat.VecDense, hasLower bool, lower float64, hasUpper bool, upper float64) (*censoredFit, error) {
	if len(X) == 0 {
		return nil, errors.NewModelError("TobitRegression.Fit", "empty batch", errors.ErrEmptyData)
	}
	if len(y) != len(X) {
		return nil, errors.NewDimensionError("TobitRegression.Fit", len(X), len(y), 0)
	}
	if hasLower && hasUpper && lower >= upper {
		return nil, errors.NewValidationError("thresholds", "lower threshold must be below upper threshold", [2]float64{lower, upper})
	}

	c := &censoredFit{
		X: X,
		y: y,
		z: make([][]int8, len(X)),
	}

	_, c.k = X[0].Dims()
	if c.k == 0 {
		return nil, errors.NewModelError("TobitRegression.Fit", "no regressors", errors.ErrEmptyData)
	}
	for b := range X {
		rows, cols := X[b].Dims()
		if cols != c.k {
			return nil, errors.NewDimensionError("TobitRegression.Fit", c.k, cols, 1)
		}
		if y[b].Len() != rows {
			return nil, errors.NewDimensionError("TobitRegression.Fit", rows, y[b].Len(), 0)
		}
		if rows == 0 {
			return nil, errors.NewModelError("TobitRegression.Fit", "empty batch element", errors.ErrEmptyData)
		}
		c.totalObs += rows

		z := make([]int8, rows)
		for i := 0; i < rows; i++ {
			yv := y[b].AtVec(i)
			switch {
			case hasLower && yv <= lower:
				z[i] = leftCensored
			case hasUpper && yv >= upper:
				z[i] = rightCensored
			}
		}
		c.z[b] = z
	}

	c.l = math.Inf(-1)
	if hasLower {
		c.l = lower
	}
	c.r = defaultUpperBound
	if hasUpper {
		c.r = upper
	}
	return c, nil
}

// initialParams seeds the optimizer with per-element ordinary least
// squares restricted to interior (uncensored) observations. Elements
// without interior observations fall back to zero coefficients and unit
// variance rather than failing.
//
// Note the scale parameter is seeded with the raw residual variance, not
// its logarithm, even though the model exponentiates it at use time; the
// first iterations therefore run at an effective scale of exp(σ₀²).
// Changing this seeding convention alters every downstream estimate.
func (c *censoredFit) initialParams() (beta [][]float64, s []float64) {
	B := len(c.X)
	beta = make([][]float64, B)
	s = make([]float64, B)

	for b := 0; b < B; b++ {
		beta[b] = make([]float64, c.k)

		var interior []int
		for i, zi := range c.z[b] {
			if zi == observed {
				interior = append(interior, i)
			}
		}
		if len(interior) == 0 {
			s[b] = 1
			continue
		}

		yy := mat.NewVecDense(len(interior), nil)
		for j, i := range interior {
			yy.SetVec(j, c.y[b].AtVec(i))
		}

		if len(interior) >= c.k {
			XX := mat.NewDense(len(interior), c.k, nil)
			for j, i := range interior {
				XX.SetRow(j, c.X[b].RawRowView(i))
			}

			var qr mat.QR
			qr.Factorize(XX)
			sol := mat.NewDense(c.k, 1, nil)
			if err := qr.SolveTo(sol, false, yy); err == nil {
				for j := 0; j < c.k; j++ {
					beta[b][j] = sol.At(j, 0)
				}
			}
		}

		// Residual variance of the interior observations under the seed
		// coefficients (zero coefficients when the system was degenerate).
		var rss float64
		for j, i := range interior {
			resid := yy.AtVec(j) - floats.Dot(c.X[b].RawRowView(i), beta[b])
			rss += resid * resid
		}
		s[b] = rss / float64(len(interior))
	}
	return beta, s
}

// Parameter vector layout: coefficients for all batch elements first
// (B×k, row-major), then the per-element log-scale parameters (B).
func (c *censoredFit) nParams() int {
	return len(c.X)*c.k + len(c.X)
}

// lossGrad evaluates the averaged negative log-likelihood at params and
// writes its gradient into grad. Batch elements are independent, so each
// element fills only its own gradient slots; the final reduction over
// elements is sequential, keeping results deterministic regardless of the
// degree of parallelism.
//
// Observations whose standardized value falls outside the truncation
// interval contribute -Inf to the element log-likelihood (driving the
// loss to +Inf) and zero to the gradient, matching reverse-mode
// differentiation through a masked assignment.
func (c *censoredFit) lossGrad(params, grad []float64) float64 {
	B := len(c.X)
	k := c.k
	elemLL := make([]float64, B)
	for i := range grad {
		grad[i] = 0
	}

	parallel.ParallelizeWithThreshold(B, parallelThreshold, func(start, end int) {
		for b := start; b < end; b++ {
			beta := params[b*k : (b+1)*k]
			sParam := params[B*k+b]
			sigma := math.Exp(sParam)
			gBeta := grad[b*k : (b+1)*k]

			var gS, ll float64
			n := c.y[b].Len()
			for i := 0; i < n; i++ {
				row := c.X[b].RawRowView(i)
				mu := floats.Dot(row, beta)
				yv := c.y[b].AtVec(i)

				a := (c.l - mu) / sigma
				bd := (c.r - mu) / sigma
				v := (yv - mu) / sigma

				dist := truncnorm.TruncatedNormal{Loc: mu, Scale: sigma, A: a, B: bd}
				lp := dist.LogProb(yv)
				if math.IsInf(lp, -1) || math.IsInf(lp, 1) {
					// Out-of-support value or numerically empty truncation
					// interval: constant contribution, zero gradient.
					ll = math.Inf(-1)
					continue
				}
				ll += lp

				logDelta := truncnorm.IntervalLogProb(a, bd)

				// Hazard-type ratios φ(x)/Δ, formed in log space so deep
				// tails neither underflow nor overflow.
				var ra, rb, ara, brb float64
				if !math.IsInf(a, 0) {
					ra = math.Exp(stdNormal.LogProb(a) - logDelta)
					ara = a * ra
				}
				if !math.IsInf(bd, 0) {
					rb = math.Exp(stdNormal.LogProb(bd) - logDelta)
					brb = bd * rb
				}

				dMu := (v - ra + rb) / sigma
				dS := v*v - (ara - brb) - 1

				// Accumulate the negative log-likelihood gradient.
				for j := 0; j < k; j++ {
					gBeta[j] -= dMu * row[j]
				}
				gS -= dS
			}

			elemLL[b] = ll
			grad[B*k+b] = gS
		}
	})

	var total float64
	for _, v := range elemLL {
		total += v
	}
	invN := 1 / float64(c.totalObs)
	floats.Scale(invN, grad)
	return -total * invN
}

// logLikelihoods returns the per-element log-likelihood at params without
// computing gradients.
func (c *censoredFit) logLikelihoods(params []float64) []float64 {
	B := len(c.X)
	k := c.k
	elemLL := make([]float64, B)

	parallel.ParallelizeWithThreshold(B, parallelThreshold, func(start, end int) {
		for b := start; b < end; b++ {
			beta := params[b*k : (b+1)*k]
			sigma := math.Exp(params[B*k+b])

			var ll float64
			n := c.y[b].Len()
			for i := 0; i < n; i++ {
				row := c.X[b].RawRowView(i)
				mu := floats.Dot(row, beta)

				dist := truncnorm.TruncatedNormal{
					Loc:   mu,
					Scale: sigma,
					A:     (c.l - mu) / sigma,
					B:     (c.r - mu) / sigma,
				}
				ll += dist.LogProb(c.y[b].AtVec(i))
			}
			elemLL[b] = ll
		}
	})
	return elemLL
}

package linear

import (
	"fmt"
	"math"
	"time"

	"gonum.org/v1/gonum/mat"

	"github.com/YuminosukeSato/censgo/core/model"
	"github.com/YuminosukeSato/censgo/metrics"
	"github.com/YuminosukeSato/censgo/optim"
	"github.com/YuminosukeSato/censgo/pkg/errors"
	"github.com/YuminosukeSato/censgo/pkg/log"
)

// TobitRegression estimates batched linear regressions from censored
// responses by maximizing a truncated-normal likelihood. Each batch
// element carries its own design matrix, coefficient vector and noise
// scale; all elements share the censoring thresholds and are optimized
// jointly with AdamW under a cosine learning-rate schedule.
//
// The zero value is not usable; construct with NewTobitRegression.
type TobitRegression struct {
	state  *model.StateManager
	logger log.Logger

	// Hyperparameters, set at construction time through options.
	lr          float64
	minLR       float64
	maxIter     int
	tol         float64
	weightDecay float64
	gradClip    float64
	verbose     bool
	logEvery    int

	lower    float64
	hasLower bool
	upper    float64
	hasUpper bool

	// Fitted state.
	coef      [][]float64
	logSigma  []float64
	converged bool
	nIter     int
	lossHist  []float64
}

var (
	_ model.BatchFitter      = (*TobitRegression)(nil)
	_ model.BatchPredictor   = (*TobitRegression)(nil)
	_ model.BatchLinearModel = (*TobitRegression)(nil)
)

// NewTobitRegression returns an estimator with the default
// hyperparameters, modified by the given options: learning rate 0.1
// annealed to 1e-3, at most 1000 iterations, convergence tolerance 1e-5,
// weight decay 1e-4, and responses left-censored at zero.
func NewTobitRegression(opts ...Option) *TobitRegression {
	t := &TobitRegression{
		state:       model.NewStateManager(),
		logger:      log.GetLoggerWithName("TobitRegression"),
		lr:          0.1,
		minLR:       1e-3,
		maxIter:     1000,
		tol:         1e-5,
		weightDecay: 1e-4,
		logEvery:    100,
		lower:       0,
		hasLower:    true,
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// Fit estimates coefficients and noise scales from the batch of design
// matrices X and censored responses y. Every X[b] must have the same
// number of columns; row counts may differ between elements.
//
// The reported coefficients are the best encountered during optimization
// rather than the final iterate, so a late divergence cannot degrade an
// earlier good fit.
func (t *TobitRegression) Fit(X []*mat.Dense, y []*mat.VecDense) (err error) {
	defer errors.Recover(&err, "TobitRegression.Fit")

	started := time.Now()

	if t.maxIter <= 0 {
		return errors.NewValidationError("max_iter", "must be positive", t.maxIter)
	}
	if t.lr <= 0 {
		return errors.NewValidationError("learning_rate", "must be positive", t.lr)
	}
	if t.tol < 0 {
		return errors.NewValidationError("tol", "must be non-negative", t.tol)
	}

	fit, err := newCensoredFit(X, y, t.hasLower, t.lower, t.hasUpper, t.upper)
	if err != nil {
		return err
	}
	B := len(X)
	k := fit.k

	if t.verbose {
		t.logger.Info("starting fit",
			log.OperationKey, "fit",
			log.BatchKey, B,
			log.FeaturesKey, k,
			log.SamplesKey, fit.totalObs,
			log.CensoredKey, countCensored(fit.z),
		)
	}

	beta0, s0 := fit.initialParams()
	params := make([]float64, fit.nParams())
	for b := 0; b < B; b++ {
		copy(params[b*k:(b+1)*k], beta0[b])
		params[B*k+b] = s0[b]
	}

	opt := optim.NewAdamW(t.lr, t.weightDecay, len(params))
	sched := optim.NewCosineAnnealingLR(t.lr, t.minLR, t.maxIter)

	grad := make([]float64, len(params))
	bestLoss := math.Inf(1)
	bestParams := make([]float64, len(params))
	copy(bestParams, params)

	t.lossHist = t.lossHist[:0]
	t.converged = false
	prevLoss := math.Inf(1)
	warnedNaN := false

	var iter int
	for iter = 0; iter < t.maxIter; iter++ {
		loss := fit.lossGrad(params, grad)
		t.lossHist = append(t.lossHist, loss)

		if !warnedNaN {
			if w := errors.CheckScalar("TobitRegression.Fit", loss, iter); w != nil {
				errors.Warn(w)
				warnedNaN = true
			}
		}

		if t.gradClip > 0 {
			grad = errors.ClipGradient(grad, t.gradClip)
		}
		opt.Update(params, grad)
		opt.SetLR(sched.Step())

		// Snapshot after the step, keyed by the pre-step loss.
		if loss < bestLoss {
			bestLoss = loss
			copy(bestParams, params)
		}

		if t.verbose && t.logEvery > 0 && iter%t.logEvery == 0 {
			t.logger.Info("iteration",
				log.IterationKey, iter,
				log.LossKey, loss,
				log.BestLossKey, bestLoss,
				log.LearningRateKey, opt.LR(),
			)
		}

		if math.Abs(loss-prevLoss) <= t.tol {
			t.converged = true
			iter++
			break
		}
		prevLoss = loss
	}
	t.nIter = iter

	if !t.converged {
		errors.Warn(errors.NewConvergenceWarning("TobitRegression", t.maxIter,
			"loss change stayed above tolerance; consider raising WithMaxIter or loosening WithTol"))
	}

	t.coef = make([][]float64, B)
	t.logSigma = make([]float64, B)
	for b := 0; b < B; b++ {
		t.coef[b] = make([]float64, k)
		copy(t.coef[b], bestParams[b*k:(b+1)*k])
		t.logSigma[b] = bestParams[B*k+b]
	}

	t.state.SetDimensions(B, k, fit.totalObs)
	t.state.SetFitted()

	if t.verbose {
		t.logger.Info("fit finished",
			log.OperationKey, "fit",
			log.IterationKey, t.nIter,
			log.BestLossKey, bestLoss,
			log.ConvergedKey, t.converged,
			log.DurationMsKey, time.Since(started).Milliseconds(),
		)
	}
	return nil
}

// Predict returns the latent linear predictions X[b]·β[b] for each batch
// element. Predictions are not clipped to the censoring thresholds.
func (t *TobitRegression) Predict(X []*mat.Dense) ([]*mat.VecDense, error) {
	if err := t.state.RequireFitted("TobitRegression", "Predict"); err != nil {
		return nil, err
	}
	batch, nFeatures, _ := t.state.GetDimensions()
	if len(X) != batch {
		return nil, errors.NewDimensionError("TobitRegression.Predict", batch, len(X), 0)
	}

	out := make([]*mat.VecDense, len(X))
	for b := range X {
		rows, cols := X[b].Dims()
		if cols != nFeatures {
			return nil, errors.NewDimensionError("TobitRegression.Predict", nFeatures, cols, 1)
		}
		beta := mat.NewVecDense(len(t.coef[b]), t.coef[b])
		pred := mat.NewVecDense(rows, nil)
		pred.MulVec(X[b], beta)
		out[b] = pred
	}
	return out, nil
}

// Coef returns a copy of the fitted coefficient vectors, one per batch
// element.
func (t *TobitRegression) Coef() ([][]float64, error) {
	if err := t.state.RequireFitted("TobitRegression", "Coef"); err != nil {
		return nil, err
	}
	out := make([][]float64, len(t.coef))
	for b := range t.coef {
		out[b] = make([]float64, len(t.coef[b]))
		copy(out[b], t.coef[b])
	}
	return out, nil
}

// Sigma returns the fitted noise standard deviations, one per batch
// element.
func (t *TobitRegression) Sigma() ([]float64, error) {
	if err := t.state.RequireFitted("TobitRegression", "Sigma"); err != nil {
		return nil, err
	}
	out := make([]float64, len(t.logSigma))
	for b := range t.logSigma {
		out[b] = math.Exp(t.logSigma[b])
	}
	return out, nil
}

// Score returns the coefficient of determination of the latent
// predictions, averaged over batch elements.
func (t *TobitRegression) Score(X []*mat.Dense, y []*mat.VecDense) (float64, error) {
	pred, err := t.Predict(X)
	if err != nil {
		return 0, err
	}
	if len(y) != len(pred) {
		return 0, errors.NewDimensionError("TobitRegression.Score", len(pred), len(y), 0)
	}

	var sum float64
	for b := range pred {
		r2, err := metrics.R2Score(y[b], pred[b])
		if err != nil {
			return 0, err
		}
		sum += r2
	}
	return sum / float64(len(pred)), nil
}

// IsFitted reports whether Fit has completed successfully.
func (t *TobitRegression) IsFitted() bool { return t.state.IsFitted() }

// Converged reports whether the last Fit reached the loss tolerance
// before exhausting its iteration budget.
func (t *TobitRegression) Converged() bool { return t.converged }

// NIter returns the number of iterations the last Fit performed.
func (t *TobitRegression) NIter() int { return t.nIter }

// LossHistory returns the per-iteration losses recorded by the last Fit.
func (t *TobitRegression) LossHistory() []float64 {
	out := make([]float64, len(t.lossHist))
	copy(out, t.lossHist)
	return out
}

func (t *TobitRegression) String() string {
	if !t.IsFitted() {
		return fmt.Sprintf("TobitRegression(lr=%g, maxIter=%d, not fitted)", t.lr, t.maxIter)
	}
	batch, nFeatures, _ := t.state.GetDimensions()
	return fmt.Sprintf("TobitRegression(batch=%d, features=%d, converged=%t, iterations=%d)",
		batch, nFeatures, t.converged, t.nIter)
}

// FitTobit is a convenience wrapper that constructs a TobitRegression
// with the given options, fits it, and returns the estimator.
func FitTobit(X []*mat.Dense, y []*mat.VecDense, opts ...Option) (*TobitRegression, error) {
	t := NewTobitRegression(opts...)
	if err := t.Fit(X, y); err != nil {
		return nil, err
	}
	return t, nil
}

func countCensored(z [][]int8) int {
	var n int
	for _, zb := range z {
		for _, zi := range zb {
			if zi != observed {
				n++
			}
		}
	}
	return n
}

package linear

import "github.com/YuminosukeSato/censgo/pkg/log"

// Option configures a TobitRegression.
type Option func(*TobitRegression)

// WithLearningRate sets the initial learning rate of the AdamW optimizer.
func WithLearningRate(lr float64) Option {
	return func(t *TobitRegression) {
		t.lr = lr
	}
}

// WithMinLearningRate sets the floor of the cosine annealing schedule.
func WithMinLearningRate(lr float64) Option {
	return func(t *TobitRegression) {
		t.minLR = lr
	}
}

// WithMaxIter sets the iteration budget for the optimization loop.
func WithMaxIter(n int) Option {
	return func(t *TobitRegression) {
		t.maxIter = n
	}
}

// WithTol sets the convergence tolerance on the iteration-to-iteration
// change of the loss.
func WithTol(tol float64) Option {
	return func(t *TobitRegression) {
		t.tol = tol
	}
}

// WithWeightDecay sets the decoupled weight-decay coefficient.
func WithWeightDecay(decay float64) Option {
	return func(t *TobitRegression) {
		t.weightDecay = decay
	}
}

// WithLowerThreshold sets the lower censoring threshold. The default is 0.
func WithLowerThreshold(l float64) Option {
	return func(t *TobitRegression) {
		t.lower = l
		t.hasLower = true
	}
}

// WithoutLowerThreshold disables lower censoring.
func WithoutLowerThreshold() Option {
	return func(t *TobitRegression) {
		t.hasLower = false
	}
}

// WithUpperThreshold sets the upper censoring threshold. By default the
// response is treated as uncensored from above.
func WithUpperThreshold(r float64) Option {
	return func(t *TobitRegression) {
		t.upper = r
		t.hasUpper = true
	}
}

// WithGradClip rescales each gradient to an L2 norm of at most maxNorm.
// Zero (the default) disables clipping.
func WithGradClip(maxNorm float64) Option {
	return func(t *TobitRegression) {
		t.gradClip = maxNorm
	}
}

// WithVerbose enables per-iteration progress logging.
func WithVerbose(verbose bool) Option {
	return func(t *TobitRegression) {
		t.verbose = verbose
	}
}

// WithLogEvery sets how many iterations pass between progress records
// when verbose logging is enabled.
func WithLogEvery(n int) Option {
	return func(t *TobitRegression) {
		t.logEvery = n
	}
}

// WithLogger replaces the logger used for progress and warnings.
func WithLogger(logger log.Logger) Option {
	return func(t *TobitRegression) {
		t.logger = logger
	}
}

package log

// Standard attribute keys for estimation runs. Using these constants keeps
// field names consistent across packages and makes log streams filterable.

// Model and operation context.
const (
	// ModelNameKey identifies the estimator type, e.g. "TobitRegression".
	ModelNameKey = "model.name"

	// OperationKey is the operation being performed: "fit", "predict",
	// "score".
	OperationKey = "ml.operation"

	// ComponentKey identifies the package performing the operation.
	ComponentKey = "ml.component"
)

// Data shape.
const (
	// BatchKey is the number of independent regression problems in a batch.
	BatchKey = "data.batch"

	// SamplesKey is the total number of observations across the batch.
	SamplesKey = "data.samples"

	// FeaturesKey is the number of regressors shared across the batch.
	FeaturesKey = "data.features"

	// CensoredKey is the number of censored observations across the batch.
	CensoredKey = "data.censored"
)

// Training progress.
const (
	// IterationKey is the current optimizer iteration.
	IterationKey = "train.iteration"

	// LossKey is the averaged negative log-likelihood at an iteration.
	LossKey = "train.loss"

	// BestLossKey is the lowest loss observed so far in the run.
	BestLossKey = "train.best_loss"

	// LearningRateKey is the scheduled learning rate at an iteration.
	LearningRateKey = "train.lr"

	// ConvergedKey reports whether the tolerance was met before the
	// iteration budget ran out.
	ConvergedKey = "train.converged"

	// DurationMsKey is the wall-clock duration of an operation in
	// milliseconds.
	DurationMsKey = "perf.duration_ms"
)

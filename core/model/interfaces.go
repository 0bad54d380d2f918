package model

import "gonum.org/v1/gonum/mat"

// BatchFitter is a model trained on a batch of independent regression
// problems. X[i] is the n_i×k design matrix and y[i] the response vector
// of the i-th problem; k is shared across the batch.
type BatchFitter interface {
	Fit(X []*mat.Dense, y []*mat.VecDense) error
}

// BatchPredictor produces fitted values for each batch element of a
// fitted model.
type BatchPredictor interface {
	Predict(X []*mat.Dense) ([]*mat.VecDense, error)
}

// BatchLinearModel exposes the per-element parameters of a fitted batched
// linear model.
type BatchLinearModel interface {
	// Coef returns the fitted coefficients, one row per batch element.
	Coef() ([][]float64, error)
	// Score returns the mean coefficient of determination (R²) across the
	// batch.
	Score(X []*mat.Dense, y []*mat.VecDense) (float64, error)
}

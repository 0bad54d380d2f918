// Package censgo provides censored (Tobit-type) regression for Go,
// designed for backend services that need maximum-likelihood estimates
// from clipped or thresholded response data.
//
// CensGo fits batched linear regression models whose response variable is
// only observed inside a bounded range: values below the lower threshold or
// above the upper threshold collapse to the boundary. Estimation maximizes
// a truncated-normal likelihood with a numerically stable evaluation of the
// normal interval mass, so the solver stays finite even when truncation
// bounds sit dozens of standard deviations into a tail.
//
// # Quick Start
//
// Fitting a batch of two censored regression problems:
//
//	package main
//
//	import (
//	    "fmt"
//	    "log"
//
//	    "github.com/YuminosukeSato/censgo/linear"
//	    "gonum.org/v1/gonum/mat"
//	)
//
//	func main() {
//	    // Two regression problems, three observations each, two regressors.
//	    X := []*mat.Dense{
//	        mat.NewDense(3, 2, []float64{1, 0.5, 1, 1.0, 1, 1.5}),
//	        mat.NewDense(3, 2, []float64{1, 0.2, 1, 0.4, 1, 0.9}),
//	    }
//	    y := []*mat.VecDense{
//	        mat.NewVecDense(3, []float64{0, 0.8, 1.4}),
//	        mat.NewVecDense(3, []float64{0.1, 0.3, 0.9}),
//	    }
//
//	    model := linear.NewTobitRegression(linear.WithMaxIter(500))
//	    if err := model.Fit(X, y); err != nil {
//	        log.Fatal(err)
//	    }
//	    coef, _ := model.Coef()
//	    fmt.Println("Coefficients:", coef)
//	}
//
// # Packages
//
// The library is organized into several packages:
//
//   - linear: the TobitRegression estimator and its likelihood model
//   - truncnorm: truncated normal distribution and the stable interval
//     log-probability primitive
//   - optim: AdamW optimizer and cosine annealing learning-rate schedule
//   - metrics: regression evaluation metrics (MSE, RMSE, MAE, R²)
//   - diagnostics: training loss-curve plotting
//   - core/model: estimator state management
//   - core/parallel: CPU-parallel batch processing helpers
//
// # Numerical Guarantees
//
// The interval log-probability primitive in package truncnorm never returns
// NaN or +Inf for any pair of bounds a <= b, finite or infinite. Degenerate
// zero-width intervals evaluate to -Inf, which the estimator treats as an
// ordinary domain value rather than an error.
package censgo

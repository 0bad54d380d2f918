// Package optim provides the first-order optimizer and learning-rate
// schedule used by the estimation drivers in this library.
package optim

import "math"

// AdamW implements Adam with bias correction and decoupled weight decay.
//
// Update rule per parameter:
//
//	m[i] = β1·m[i] + (1-β1)·g[i]
//	v[i] = β2·v[i] + (1-β2)·g[i]²
//	m̂[i] = m[i] / (1 - β1^t)
//	v̂[i] = v[i] / (1 - β2^t)
//	w[i] = w[i] - lr·(m̂[i] / (√v̂[i] + ε) + λ·w[i])
//
// where λ is the weight-decay coefficient, applied to the parameter
// directly rather than folded into the gradient.
type AdamW struct {
	lr           float64
	beta1, beta2 float64
	eps          float64
	decay        float64

	m, v []float64
	step int
}

// NewAdamW creates an AdamW optimizer for n parameters with the given
// learning rate and weight-decay coefficient. Moment defaults are the
// standard β1=0.9, β2=0.999, ε=1e-8.
func NewAdamW(lr, weightDecay float64, n int) *AdamW {
	return &AdamW{
		lr:    lr,
		beta1: 0.9,
		beta2: 0.999,
		eps:   1e-8,
		decay: weightDecay,
		m:     make([]float64, n),
		v:     make([]float64, n),
	}
}

// Update applies one optimizer step in place. params and grads must have
// the length the optimizer was created with.
func (a *AdamW) Update(params, grads []float64) {
	if len(params) != len(a.m) || len(grads) != len(a.m) {
		panic("optim: parameter length mismatch")
	}
	a.step++

	c1 := 1 - math.Pow(a.beta1, float64(a.step))
	c2 := 1 - math.Pow(a.beta2, float64(a.step))

	for i, g := range grads {
		a.m[i] = a.beta1*a.m[i] + (1-a.beta1)*g
		a.v[i] = a.beta2*a.v[i] + (1-a.beta2)*g*g

		mHat := a.m[i] / c1
		vHat := a.v[i] / c2

		params[i] -= a.lr * (mHat/(math.Sqrt(vHat)+a.eps) + a.decay*params[i])
	}
}

// SetLR updates the learning rate; used by schedules between steps.
func (a *AdamW) SetLR(lr float64) {
	a.lr = lr
}

// LR returns the current learning rate.
func (a *AdamW) LR() float64 {
	return a.lr
}

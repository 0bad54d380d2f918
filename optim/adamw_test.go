package optim

import (
	"math"
	"testing"
)

func TestAdamWMinimizesQuadratic(t *testing.T) {
	// f(w) = Σ (w[i]-c[i])², gradient 2(w-c). AdamW should land near c.
	c := []float64{3, -2, 0.5}
	params := make([]float64, 3)
	grads := make([]float64, 3)
	opt := NewAdamW(0.1, 0, 3)

	for iter := 0; iter < 2000; iter++ {
		for i := range params {
			grads[i] = 2 * (params[i] - c[i])
		}
		opt.Update(params, grads)
	}

	for i := range params {
		if math.Abs(params[i]-c[i]) > 1e-3 {
			t.Errorf("params[%d] = %v, want %v", i, params[i], c[i])
		}
	}
}

func TestAdamWWeightDecayShrinksTowardZero(t *testing.T) {
	// With zero gradient, decoupled decay contracts the weight
	// geometrically: w' = w·(1 - lr·λ).
	params := []float64{10}
	grads := []float64{0}
	opt := NewAdamW(0.5, 0.1, 1)

	opt.Update(params, grads)
	want := 10 * (1 - 0.5*0.1)
	if math.Abs(params[0]-want) > 1e-12 {
		t.Errorf("params[0] = %v, want %v", params[0], want)
	}
}

func TestAdamWFirstStepIsLearningRateSized(t *testing.T) {
	// Bias correction makes the very first update step have magnitude
	// close to lr regardless of gradient scale.
	for _, g := range []float64{1e-4, 1, 1e4} {
		params := []float64{0}
		opt := NewAdamW(0.1, 0, 1)
		opt.Update(params, []float64{g})
		if math.Abs(math.Abs(params[0])-0.1) > 1e-4 {
			t.Errorf("first step for gradient %v moved %v, want about 0.1", g, params[0])
		}
	}
}

func TestAdamWSetLR(t *testing.T) {
	opt := NewAdamW(0.1, 0, 1)
	opt.SetLR(0.05)
	if opt.LR() != 0.05 {
		t.Errorf("LR() = %v, want 0.05", opt.LR())
	}
}

func TestAdamWLengthMismatchPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic on length mismatch")
		}
	}()
	opt := NewAdamW(0.1, 0, 2)
	opt.Update([]float64{1}, []float64{1})
}

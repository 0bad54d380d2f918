package optim

import (
	"math"
	"testing"
)

func TestCosineAnnealingEndpoints(t *testing.T) {
	s := NewCosineAnnealingLR(0.1, 1e-3, 100)

	if got := s.LR(); math.Abs(got-0.1) > 1e-15 {
		t.Errorf("initial LR = %v, want 0.1", got)
	}

	var last float64
	for i := 0; i < 100; i++ {
		last = s.Step()
	}
	if math.Abs(last-1e-3) > 1e-12 {
		t.Errorf("final LR = %v, want 1e-3", last)
	}
}

func TestCosineAnnealingMonotoneDecay(t *testing.T) {
	s := NewCosineAnnealingLR(0.1, 1e-3, 1000)
	prev := s.LR()
	for i := 0; i < 1000; i++ {
		cur := s.Step()
		if cur > prev+1e-15 {
			t.Fatalf("LR increased at step %d: %v > %v", i, cur, prev)
		}
		prev = cur
	}
}

func TestCosineAnnealingMidpoint(t *testing.T) {
	// At t = T/2 the rate sits halfway between lr0 and etaMin.
	s := NewCosineAnnealingLR(0.2, 0, 10)
	var got float64
	for i := 0; i < 5; i++ {
		got = s.Step()
	}
	if math.Abs(got-0.1) > 1e-12 {
		t.Errorf("midpoint LR = %v, want 0.1", got)
	}
}

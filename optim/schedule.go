package optim

import "math"

// CosineAnnealingLR decays a learning rate smoothly from its initial value
// down to a floor over a fixed step budget:
//
//	lr(t) = ηmin + ½·(lr₀ - ηmin)·(1 + cos(π·t/T))
type CosineAnnealingLR struct {
	lr0    float64
	etaMin float64
	tMax   int
	t      int
}

// NewCosineAnnealingLR creates a schedule decaying from lr0 to etaMin over
// tMax steps.
func NewCosineAnnealingLR(lr0, etaMin float64, tMax int) *CosineAnnealingLR {
	return &CosineAnnealingLR{lr0: lr0, etaMin: etaMin, tMax: tMax}
}

// LR returns the learning rate at the current tick.
func (s *CosineAnnealingLR) LR() float64 {
	return s.etaMin + 0.5*(s.lr0-s.etaMin)*(1+math.Cos(math.Pi*float64(s.t)/float64(s.tMax)))
}

// Step advances the schedule one tick and returns the new learning rate.
func (s *CosineAnnealingLR) Step() float64 {
	s.t++
	return s.LR()
}

// Package model provides shared estimator machinery: fitted-state
// management and the interfaces batched estimators implement.
package model

import (
	"sync"

	"github.com/YuminosukeSato/censgo/pkg/errors"
)

// StateManager manages the fitted state of an estimator in a thread-safe
// manner. Estimators hold it by composition rather than embedding.
type StateManager struct {
	mu     sync.RWMutex
	fitted bool

	// Dimensions seen during fitting.
	batch     int
	nFeatures int
	nSamples  int
}

// NewStateManager creates an unfitted StateManager.
func NewStateManager() *StateManager {
	return &StateManager{}
}

// IsFitted reports whether the estimator has been fitted.
func (s *StateManager) IsFitted() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.fitted
}

// SetFitted marks the estimator as fitted.
func (s *StateManager) SetFitted() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.fitted = true
}

// Reset clears the fitted state and recorded dimensions.
func (s *StateManager) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.fitted = false
	s.batch = 0
	s.nFeatures = 0
	s.nSamples = 0
}

// SetDimensions records the batch size, feature count and total sample
// count seen during fitting.
func (s *StateManager) SetDimensions(batch, nFeatures, nSamples int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.batch = batch
	s.nFeatures = nFeatures
	s.nSamples = nSamples
}

// GetDimensions returns the dimensions recorded during fitting.
func (s *StateManager) GetDimensions() (batch, nFeatures, nSamples int) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.batch, s.nFeatures, s.nSamples
}

// RequireFitted returns a NotFittedError naming the model and method if
// the estimator has not been fitted.
func (s *StateManager) RequireFitted(modelName, method string) error {
	if !s.IsFitted() {
		return errors.NewNotFittedError(modelName, method)
	}
	return nil
}

package model

import (
	"sync"
	"testing"

	"github.com/YuminosukeSato/censgo/pkg/errors"
)

func TestStateManagerLifecycle(t *testing.T) {
	sm := NewStateManager()

	if sm.IsFitted() {
		t.Error("new StateManager reports fitted")
	}
	if err := sm.RequireFitted("TestModel", "Predict"); err == nil {
		t.Error("RequireFitted on unfitted state: expected error")
	}

	sm.SetDimensions(4, 3, 200)
	sm.SetFitted()

	if !sm.IsFitted() {
		t.Error("IsFitted = false after SetFitted")
	}
	if err := sm.RequireFitted("TestModel", "Predict"); err != nil {
		t.Errorf("RequireFitted on fitted state: %v", err)
	}

	batch, nFeatures, nSamples := sm.GetDimensions()
	if batch != 4 || nFeatures != 3 || nSamples != 200 {
		t.Errorf("GetDimensions() = (%d, %d, %d), want (4, 3, 200)", batch, nFeatures, nSamples)
	}

	sm.Reset()
	if sm.IsFitted() {
		t.Error("IsFitted = true after Reset")
	}
	if batch, _, _ := sm.GetDimensions(); batch != 0 {
		t.Errorf("batch = %d after Reset, want 0", batch)
	}
}

func TestStateManagerNotFittedErrorFields(t *testing.T) {
	sm := NewStateManager()
	err := sm.RequireFitted("TobitRegression", "Coef")

	var nf *errors.NotFittedError
	if !errors.As(err, &nf) {
		t.Fatalf("error %v is not a NotFittedError", err)
	}
	if nf.ModelName != "TobitRegression" || nf.Method != "Coef" {
		t.Errorf("fields = (%q, %q), want (TobitRegression, Coef)", nf.ModelName, nf.Method)
	}
}

func TestStateManagerConcurrentAccess(t *testing.T) {
	sm := NewStateManager()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			sm.SetFitted()
		}()
		go func() {
			defer wg.Done()
			_ = sm.IsFitted()
		}()
	}
	wg.Wait()

	if !sm.IsFitted() {
		t.Error("IsFitted = false after concurrent SetFitted calls")
	}
}

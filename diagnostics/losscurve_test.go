package diagnostics

import (
	"math"
	"os"
	"path/filepath"
	"testing"
)

func TestPlotLossCurve(t *testing.T) {
	losses := make([]float64, 100)
	for i := range losses {
		losses[i] = 1 / float64(i+1)
	}

	path := filepath.Join(t.TempDir(), "loss.png")
	if err := PlotLossCurve(losses, path); err != nil {
		t.Fatalf("PlotLossCurve: %v", err)
	}

	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("stat: %v", err)
	}
	if info.Size() == 0 {
		t.Error("wrote an empty file")
	}
}

func TestPlotLossCurveSkipsNonFinite(t *testing.T) {
	losses := []float64{math.Inf(1), 2, math.NaN(), 1, 0.5}
	path := filepath.Join(t.TempDir(), "loss.png")
	if err := PlotLossCurve(losses, path); err != nil {
		t.Fatalf("PlotLossCurve: %v", err)
	}
}

func TestPlotLossCurveErrors(t *testing.T) {
	tests := []struct {
		name   string
		losses []float64
	}{
		{name: "empty history", losses: nil},
		{name: "all non-finite", losses: []float64{math.NaN(), math.Inf(1)}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "loss.png")
			if err := PlotLossCurve(tt.losses, path); err == nil {
				t.Error("expected error, got nil")
			}
		})
	}
}

// Package diagnostics renders training diagnostics for fitted estimators.
package diagnostics

import (
	"math"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/YuminosukeSato/censgo/pkg/errors"
)

// PlotLossCurve renders the per-iteration loss history of a fit as a line
// chart and writes it to path. The file format follows the extension
// (png, svg, pdf, eps or tif).
func PlotLossCurve(losses []float64, path string) error {
	if len(losses) == 0 {
		return errors.NewModelError("diagnostics.PlotLossCurve", "empty loss history", errors.ErrEmptyData)
	}

	// Non-finite losses (a diverged or infeasible iterate) would wreck
	// the axis ranges; skip them and keep the iteration index.
	pts := make(plotter.XYs, 0, len(losses))
	for i, l := range losses {
		if math.IsNaN(l) || math.IsInf(l, 0) {
			continue
		}
		pts = append(pts, plotter.XY{X: float64(i), Y: l})
	}
	if len(pts) == 0 {
		return errors.NewModelError("diagnostics.PlotLossCurve", "no finite losses", errors.ErrEmptyData)
	}

	p := plot.New()
	p.Title.Text = "Training loss"
	p.X.Label.Text = "iteration"
	p.Y.Label.Text = "negative log-likelihood per observation"

	line, err := plotter.NewLine(pts)
	if err != nil {
		return errors.Wrap(err, "censgo: building loss curve")
	}
	p.Add(line, plotter.NewGrid())

	if err := p.Save(6*vg.Inch, 4*vg.Inch, path); err != nil {
		return errors.Wrap(err, "censgo: saving loss curve")
	}
	return nil
}

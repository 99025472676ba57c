package report

import (
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/palette/moreland"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/regsuite/regsuite/ols"
	"github.com/regsuite/regsuite/pkg/errors"
)

// ResidualPlot saves a fitted-versus-residuals scatter plot for one model
// as a PNG. A funnel shape in this plot is the visual counterpart of a
// failed Breusch-Pagan test.
func ResidualPlot(m *ols.FittedModel, path string) error {
	pts := make(plotter.XYs, len(m.Residuals))
	for i := range pts {
		pts[i].X = m.Fitted[i]
		pts[i].Y = m.Residuals[i]
	}

	p := plot.New()
	p.Title.Text = m.Response + ": residuals vs fitted"
	p.X.Label.Text = "fitted"
	p.Y.Label.Text = "residual"

	scatter, err := plotter.NewScatter(pts)
	if err != nil {
		return errors.Wrapf(err, "report: residual plot for %q", m.Response)
	}
	scatter.Radius = vg.Points(2)
	p.Add(scatter, plotter.NewGrid())

	zero := plotter.NewFunction(func(float64) float64 { return 0 })
	p.Add(zero)

	if err := p.Save(6*vg.Inch, 4*vg.Inch, path); err != nil {
		return errors.Wrapf(err, "report: residual plot for %q", m.Response)
	}
	return nil
}

// corrGrid adapts a symmetric correlation matrix to the plotter grid
// interface, one cell per variable pair.
type corrGrid struct {
	m *mat.SymDense
}

func (g corrGrid) Dims() (int, int)   { n := g.m.SymmetricDim(); return n, n }
func (g corrGrid) X(c int) float64    { return float64(c) }
func (g corrGrid) Y(r int) float64    { return float64(r) }
func (g corrGrid) Z(c, r int) float64 { return g.m.At(r, c) }

// CorrelationHeatmap saves the correlation matrix of the table's columns
// as a PNG heat map. Diverging colors are centered on zero so positive
// and negative association read differently at a glance.
func CorrelationHeatmap(corr *mat.SymDense, names []string, path string) error {
	if corr.SymmetricDim() != len(names) {
		return errors.NewDimensionError("report.CorrelationHeatmap", len(names), corr.SymmetricDim(), 0)
	}

	pal := moreland.SmoothBlueRed()
	pal.SetMin(-1)
	pal.SetMax(1)
	hm := plotter.NewHeatMap(corrGrid{m: corr}, pal.Palette(255))
	hm.Min = -1
	hm.Max = 1

	p := plot.New()
	p.Title.Text = "correlation matrix"
	p.Add(hm)

	ticks := make([]plot.Tick, len(names))
	for i, name := range names {
		ticks[i] = plot.Tick{Value: float64(i), Label: name}
	}
	p.X.Tick.Marker = plot.ConstantTicks(ticks)
	p.Y.Tick.Marker = plot.ConstantTicks(ticks)

	if err := p.Save(6*vg.Inch, 6*vg.Inch, path); err != nil {
		return errors.Wrap(err, "report: correlation heatmap")
	}
	return nil
}

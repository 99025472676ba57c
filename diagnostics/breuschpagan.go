// Package diagnostics checks fitted models against the constant-variance
// assumption and quantifies the practical impact of their coefficients.
// Everything here is advisory: a diagnostic failure is recorded against
// its model and never aborts the batch.
package diagnostics

import (
	"math"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"
	"gonum.org/v1/gonum/stat/distuv"

	"github.com/regsuite/regsuite/ols"
	"github.com/regsuite/regsuite/pkg/errors"
)

// HeteroscedasticityResult classifies one model's residual variance.
// Homoscedastic is true iff the Breusch-Pagan test fails to reject the
// null of constant variance at the given significance level.
type HeteroscedasticityResult struct {
	Response         string
	Statistic        float64
	DegreesOfFreedom int
	PValue           float64
	Homoscedastic    bool
}

// BreuschPagan runs the Breusch-Pagan test on a fitted model: the squared
// residuals are regressed on the model's own predictors, and the LM
// statistic n * R2_aux is referred to a chi-squared distribution with one
// degree of freedom per predictor.
//
// The test always produces a result. On a numeric failure in the
// auxiliary regression the model is classified as not homoscedastic and
// the error is returned alongside the defaulted result, so callers can
// attach it to the response without losing the classification row.
func BreuschPagan(m *ols.FittedModel, alpha float64) (HeteroscedasticityResult, error) {
	k := len(m.Predictors)
	result := HeteroscedasticityResult{
		Response:         m.Response,
		Statistic:        math.NaN(),
		DegreesOfFreedom: k,
		PValue:           math.NaN(),
		Homoscedastic:    false,
	}

	n := m.NObs
	sqResid := make([]float64, n)
	for i, e := range m.Residuals {
		sqResid[i] = e * e
	}

	r2Aux, err := auxiliaryRSquared(m.PredictorData(), sqResid)
	if err != nil {
		return result, errors.Wrapf(err, "diagnostics.BreuschPagan: response %q", m.Response)
	}

	// LM statistic is non-negative by construction; clamp the tiny
	// negative values float arithmetic can produce.
	lm := float64(n) * r2Aux
	if lm < 0 {
		lm = 0
	}

	chi2 := distuv.ChiSquared{K: float64(k)}
	result.Statistic = lm
	result.PValue = chi2.Survival(lm)
	result.Homoscedastic = result.PValue >= alpha
	return result, nil
}

// auxiliaryRSquared fits y on X (with an intercept) by least squares and
// returns the R-squared of that auxiliary regression. A response with no
// variance has nothing to explain, so its R-squared is 0.
func auxiliaryRSquared(X *mat.Dense, y []float64) (float64, error) {
	n, k := X.Dims()
	p := k + 1

	design := mat.NewDense(n, p, nil)
	for i := 0; i < n; i++ {
		design.Set(i, 0, 1)
		for j := 0; j < k; j++ {
			design.Set(i, j+1, X.At(i, j))
		}
	}
	yVec := mat.NewVecDense(n, y)

	var xt mat.Dense
	xt.CloneFrom(design.T())

	var xtx mat.Dense
	xtx.Mul(&xt, design)

	var xtxInv mat.Dense
	if err := xtxInv.Inverse(&xtx); err != nil {
		return 0, errors.Wrap(err, "auxiliary regression: singular design")
	}

	var xty mat.VecDense
	xty.MulVec(&xt, yVec)

	beta := mat.NewVecDense(p, nil)
	beta.MulVec(&xtxInv, &xty)

	fitted := mat.NewVecDense(n, nil)
	fitted.MulVec(design, beta)

	resid := mat.NewVecDense(n, nil)
	resid.SubVec(yVec, fitted)
	rss := mat.Dot(resid, resid)

	yMean := stat.Mean(y, nil)
	var sstot float64
	for _, v := range y {
		d := v - yMean
		sstot += d * d
	}
	if sstot == 0 {
		return 0, nil
	}

	r2 := 1 - rss/sstot
	if err := errors.CheckScalar("auxiliary regression R2", r2); err != nil {
		return 0, err
	}
	return r2, nil
}

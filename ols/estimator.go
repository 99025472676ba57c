// Package ols fits ordinary least-squares linear models against a fixed
// predictor set and derives the inferential statistics the rest of the
// pipeline filters on: coefficient standard errors, t statistics and
// p-values, R-squared, adjusted R-squared, and the overall F test.
package ols

import (
	"math"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"
	"gonum.org/v1/gonum/stat/distuv"

	"github.com/regsuite/regsuite/core/parallel"
	"github.com/regsuite/regsuite/dataset"
	"github.com/regsuite/regsuite/pkg/errors"
)

// InterceptName is the reserved coefficient name for the intercept term.
// Downstream stages identify the intercept by this name, never by
// position or by substring matching on rendered output.
const InterceptName = "(Intercept)"

// FittedModel is the immutable result of one least-squares fit of a
// response against an ordered predictor set. Coefficient slices are
// ordered intercept first, then the predictors in their given order.
type FittedModel struct {
	Response   string
	Predictors []string

	Coefficients []float64
	StdErrors    []float64
	TStats       []float64
	PValues      []float64

	Fitted    []float64
	Residuals []float64

	NObs    int
	NParams int // design columns, intercept included
	Sigma2  float64

	R2      float64
	AdjR2   float64
	FStat   float64
	FPValue float64

	predictorData  *mat.Dense // complete-row predictor values, no intercept column
	predictorMeans []float64
	fittedMean     float64
}

// Fit estimates one model of response on the ordered predictor columns of
// tbl. Rows with a missing value in any used column are dropped for this
// fit only. The fit fails with an InsufficientDataError when the complete
// rows do not outnumber the design columns, and with a
// SingularDesignError when the predictors are collinear.
func Fit(tbl *dataset.Table, response string, predictors []string, opts ...Option) (*FittedModel, error) {
	const op = "ols.Fit"

	cfg := defaultFitConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	if len(predictors) == 0 {
		return nil, errors.NewValueError(op, "empty predictor list")
	}

	used := make([]string, 0, len(predictors)+1)
	used = append(used, predictors...)
	used = append(used, response)
	rows, err := tbl.CompleteRows(used)
	if err != nil {
		return nil, err
	}

	n := len(rows)
	p := len(predictors) + 1
	if n <= p {
		return nil, errors.NewInsufficientDataError(op, n, p)
	}

	cols := make([][]float64, len(predictors))
	for j, name := range predictors {
		col, err := tbl.Gather(name, rows)
		if err != nil {
			return nil, err
		}
		cols[j] = col
	}
	yData, err := tbl.Gather(response, rows)
	if err != nil {
		return nil, err
	}

	// Design matrix with the intercept column of ones prepended.
	X := mat.NewDense(n, p, nil)
	parallel.ChunksWithThreshold(n, cfg.parallelThreshold, func(start, end int) {
		for i := start; i < end; i++ {
			X.Set(i, 0, 1)
			for j, col := range cols {
				X.Set(i, j+1, col[i])
			}
		}
	})
	y := mat.NewVecDense(n, yData)

	// Normal equations: beta = (X'X)^-1 X'y.
	var xt mat.Dense
	xt.CloneFrom(X.T())

	var xtx mat.Dense
	xtx.Mul(&xt, X)

	var xtxInv mat.Dense
	if err := xtxInv.Inverse(&xtx); err != nil {
		return nil, errors.NewSingularDesignError(op, predictors)
	}

	var xty mat.VecDense
	xty.MulVec(&xt, y)

	beta := mat.NewVecDense(p, nil)
	beta.MulVec(&xtxInv, &xty)

	fitted := mat.NewVecDense(n, nil)
	fitted.MulVec(X, beta)

	resid := mat.NewVecDense(n, nil)
	resid.SubVec(y, fitted)

	rss := mat.Dot(resid, resid)
	df := n - p
	sigma2 := rss / float64(df)

	coeffs := make([]float64, p)
	stdErrs := make([]float64, p)
	tStats := make([]float64, p)
	pValues := make([]float64, p)

	tdist := distuv.StudentsT{Mu: 0, Sigma: 1, Nu: float64(df)}
	for j := 0; j < p; j++ {
		coeffs[j] = beta.AtVec(j)
		stdErrs[j] = math.Sqrt(sigma2 * xtxInv.At(j, j))
		tStats[j], pValues[j] = tTest(coeffs[j], stdErrs[j], tdist)
	}

	yMean := stat.Mean(yData, nil)
	var sstot float64
	for _, v := range yData {
		d := v - yMean
		sstot += d * d
	}
	if sstot == 0 {
		return nil, errors.Wrapf(errors.ErrZeroVariance, "%s: response %q", op, response)
	}

	r2 := 1 - rss/sstot
	adjR2 := 1 - (1-r2)*float64(n-1)/float64(df)

	fStat, fPValue := fTest(sstot, rss, p, df)

	return &FittedModel{
		Response:       response,
		Predictors:     append([]string(nil), predictors...),
		Coefficients:   coeffs,
		StdErrors:      stdErrs,
		TStats:         tStats,
		PValues:        pValues,
		Fitted:         vecSlice(fitted),
		Residuals:      vecSlice(resid),
		NObs:           n,
		NParams:        p,
		Sigma2:         sigma2,
		R2:             r2,
		AdjR2:          adjR2,
		FStat:          fStat,
		FPValue:        fPValue,
		predictorData:  predictorMatrix(cols, n),
		predictorMeans: columnMeans(cols),
		fittedMean:     stat.Mean(vecSlice(fitted), nil),
	}, nil
}

// tTest returns the t statistic and two-sided p-value for one
// coefficient. A zero standard error happens only on an exact fit; the
// p-value then degenerates to 0 or 1 depending on the estimate.
func tTest(estimate, stdErr float64, tdist distuv.StudentsT) (tStat, pValue float64) {
	if stdErr == 0 {
		if estimate == 0 {
			return 0, 1
		}
		return math.Inf(sign(estimate)), 0
	}
	tStat = estimate / stdErr
	pValue = 2 * tdist.Survival(math.Abs(tStat))
	return tStat, pValue
}

// fTest returns the overall F statistic and its p-value under
// F(p-1, n-p). An exact fit (zero residual sum of squares) degenerates to
// an infinite statistic with p-value 0.
func fTest(sstot, rss float64, p, df int) (fStat, pValue float64) {
	if rss == 0 {
		return math.Inf(1), 0
	}
	fStat = ((sstot - rss) / float64(p-1)) / (rss / float64(df))
	fdist := distuv.F{D1: float64(p - 1), D2: float64(df)}
	return fStat, fdist.Survival(fStat)
}

// DegreesOfFreedom returns the residual degrees of freedom n - p.
func (m *FittedModel) DegreesOfFreedom() int {
	return m.NObs - m.NParams
}

// CoefficientNames returns the coefficient names in estimation order:
// intercept first, then the predictors.
func (m *FittedModel) CoefficientNames() []string {
	names := make([]string, 0, len(m.Predictors)+1)
	names = append(names, InterceptName)
	names = append(names, m.Predictors...)
	return names
}

// PredictorData returns a copy of the complete-row predictor values used
// by the fit, one column per predictor, without the intercept column.
// Auxiliary regressions (such as the Breusch-Pagan test) run on exactly
// these rows.
func (m *FittedModel) PredictorData() *mat.Dense {
	return mat.DenseCopyOf(m.predictorData)
}

// PredictorMean returns the mean of the named predictor over the rows
// used by the fit. For InterceptName the mean of the constant column is 1.
func (m *FittedModel) PredictorMean(name string) (float64, bool) {
	if name == InterceptName {
		return 1, true
	}
	for j, p := range m.Predictors {
		if p == name {
			return m.predictorMeans[j], true
		}
	}
	return 0, false
}

// FittedMean returns the mean of the fitted values.
func (m *FittedModel) FittedMean() float64 {
	return m.fittedMean
}

// Predict evaluates the fitted equation at one predictor vector, ordered
// as the model's predictors.
func (m *FittedModel) Predict(x []float64) (float64, error) {
	if len(x) != len(m.Predictors) {
		return 0, errors.NewDimensionError("ols.Predict", len(m.Predictors), len(x), 1)
	}
	pred := m.Coefficients[0]
	for j, v := range x {
		pred += m.Coefficients[j+1] * v
	}
	return pred, nil
}

func sign(v float64) int {
	if v < 0 {
		return -1
	}
	return 1
}

func vecSlice(v *mat.VecDense) []float64 {
	out := make([]float64, v.Len())
	for i := range out {
		out[i] = v.AtVec(i)
	}
	return out
}

func predictorMatrix(cols [][]float64, n int) *mat.Dense {
	k := len(cols)
	data := mat.NewDense(n, k, nil)
	for j, col := range cols {
		for i := 0; i < n; i++ {
			data.Set(i, j, col[i])
		}
	}
	return data
}

func columnMeans(cols [][]float64) []float64 {
	means := make([]float64, len(cols))
	for j, col := range cols {
		means[j] = stat.Mean(col, nil)
	}
	return means
}

package diagnostics

import (
	"math"

	"github.com/regsuite/regsuite/ols"
	"github.com/regsuite/regsuite/pkg/errors"
)

// SensitivityRecord quantifies one coefficient's practical impact in a
// homoscedastic model. Elasticity is the responsiveness of the predicted
// response to the predictor, evaluated at sample means. Delta is the
// coefficient's standard error as a percentage of the estimate; it is
// undefined for a zero estimate, in which case DeltaDefined is false and
// Delta is NaN (a sentinel, never a silent infinity).
type SensitivityRecord struct {
	Name         string
	Elasticity   float64
	Delta        float64
	DeltaDefined bool
}

// Sensitivity computes elasticity and delta for every coefficient of a
// fitted model, intercept included. It is intended for models already
// classified as homoscedastic; the caller gates on the Breusch-Pagan
// result. A zero coefficient yields elasticity exactly 0 and an undefined
// delta reported through the warning hook. A zero mean prediction leaves
// every elasticity undefined and fails the whole model.
func Sensitivity(m *ols.FittedModel) ([]SensitivityRecord, error) {
	const op = "diagnostics.Sensitivity"

	yMean := m.FittedMean()
	if yMean == 0 {
		return nil, errors.NewDivisionByZeroError(op, "mean prediction for "+m.Response)
	}

	names := m.CoefficientNames()
	records := make([]SensitivityRecord, len(names))
	for j, name := range names {
		xMean, _ := m.PredictorMean(name)
		records[j] = sensitivityFor(name, m.Coefficients[j], m.StdErrors[j], xMean, yMean)
		if !records[j].DeltaDefined {
			errors.Warn(errors.NewDivisionByZeroError(op, "coefficient "+name+" of "+m.Response))
		}
	}
	return records, nil
}

// sensitivityFor derives one coefficient's record. Callers guarantee
// yMean is nonzero.
func sensitivityFor(name string, beta, stdErr, xMean, yMean float64) SensitivityRecord {
	if beta == 0 {
		return SensitivityRecord{
			Name:         name,
			Elasticity:   0,
			Delta:        math.NaN(),
			DeltaDefined: false,
		}
	}
	return SensitivityRecord{
		Name:         name,
		Elasticity:   beta * xMean / yMean,
		Delta:        100 * stdErr / beta,
		DeltaDefined: true,
	}
}

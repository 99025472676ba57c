package ols

// CoefficientRecord is the inferential summary of one coefficient.
// Records belong to exactly one model and are keyed by Name; the
// intercept carries InterceptName.
type CoefficientRecord struct {
	Name     string
	Estimate float64
	StdError float64
	TStat    float64
	PValue   float64
}

// ModelSummary is the flattened, immutable summary of a FittedModel:
// the model-level fit statistics plus its ordered coefficient records
// (intercept first, then predictors in estimation order).
type ModelSummary struct {
	Response string
	NObs     int

	R2      float64
	AdjR2   float64
	FStat   float64
	FPValue float64

	Coefficients []CoefficientRecord
}

// Summarize flattens a fitted model into a ModelSummary. It extracts
// fields only; every coefficient record keeps a one-to-one, name-keyed
// correspondence with the model's coefficients so downstream filters and
// the equation renderer never have to rely on positions.
func Summarize(m *FittedModel) *ModelSummary {
	names := m.CoefficientNames()
	coeffs := make([]CoefficientRecord, len(names))
	for j, name := range names {
		coeffs[j] = CoefficientRecord{
			Name:     name,
			Estimate: m.Coefficients[j],
			StdError: m.StdErrors[j],
			TStat:    m.TStats[j],
			PValue:   m.PValues[j],
		}
	}

	return &ModelSummary{
		Response:     m.Response,
		NObs:         m.NObs,
		R2:           m.R2,
		AdjR2:        m.AdjR2,
		FStat:        m.FStat,
		FPValue:      m.FPValue,
		Coefficients: coeffs,
	}
}

// Coefficient looks up a coefficient record by name.
func (s *ModelSummary) Coefficient(name string) (CoefficientRecord, bool) {
	for _, c := range s.Coefficients {
		if c.Name == name {
			return c, true
		}
	}
	return CoefficientRecord{}, false
}

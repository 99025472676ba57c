package ols

import "sort"

// DefaultAlpha is the significance level used throughout the pipeline
// when none is configured.
const DefaultAlpha = 0.05

// SignificantModels selects the summaries whose overall F-test p-value is
// at or below alpha and ranks them by descending adjusted R-squared. The
// sort is stable, so ties keep their input order. An empty result simply
// means no model passed; it is not an error.
func SignificantModels(summaries []*ModelSummary, alpha float64) []*ModelSummary {
	selected := make([]*ModelSummary, 0, len(summaries))
	for _, s := range summaries {
		if s.FPValue <= alpha {
			selected = append(selected, s)
		}
	}
	sort.SliceStable(selected, func(i, j int) bool {
		return selected[i].AdjR2 > selected[j].AdjR2
	})
	return selected
}

// SignificantCoefficients selects the coefficient records of one model
// with p-value at or below alpha, preserving the model's coefficient
// order. The intercept is kept only if it is itself significant. An empty
// result is legal and renders as the canonical empty equation downstream.
func SignificantCoefficients(s *ModelSummary, alpha float64) []CoefficientRecord {
	selected := make([]CoefficientRecord, 0, len(s.Coefficients))
	for _, c := range s.Coefficients {
		if c.PValue <= alpha {
			selected = append(selected, c)
		}
	}
	return selected
}

package dataset

import (
	"math"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"

	"github.com/regsuite/regsuite/pkg/errors"
)

// ColumnSummary holds descriptive statistics for one column, computed
// over its non-missing values.
type ColumnSummary struct {
	Name    string
	Count   int
	Missing int
	Mean    float64
	StdDev  float64
	Min     float64
	Max     float64
}

// Describe computes per-column descriptive statistics in declaration
// order. A column with no observed values gets NaN statistics.
func Describe(t *Table) []ColumnSummary {
	summaries := make([]ColumnSummary, 0, len(t.names))
	for i, name := range t.names {
		present := make([]float64, 0, t.rows)
		for _, v := range t.cols[i] {
			if !math.IsNaN(v) {
				present = append(present, v)
			}
		}

		s := ColumnSummary{
			Name:    name,
			Count:   len(present),
			Missing: t.rows - len(present),
			Mean:    math.NaN(),
			StdDev:  math.NaN(),
			Min:     math.NaN(),
			Max:     math.NaN(),
		}
		if len(present) > 0 {
			s.Mean = stat.Mean(present, nil)
			s.StdDev = stat.StdDev(present, nil)
			s.Min, s.Max = present[0], present[0]
			for _, v := range present[1:] {
				s.Min = math.Min(s.Min, v)
				s.Max = math.Max(s.Max, v)
			}
		}
		summaries = append(summaries, s)
	}
	return summaries
}

// CorrelationMatrix computes the Pearson correlation of every pair of
// columns over their pairwise-complete rows. The returned matrix rows and
// columns follow the table's declaration order.
func CorrelationMatrix(t *Table) (*mat.SymDense, []string, error) {
	k := len(t.names)
	if k == 0 {
		return nil, nil, errors.Wrap(errors.ErrEmptyData, "dataset.CorrelationMatrix")
	}

	corr := mat.NewSymDense(k, nil)
	for i := 0; i < k; i++ {
		corr.SetSym(i, i, 1)
		for j := i + 1; j < k; j++ {
			xi, xj := pairwiseComplete(t.cols[i], t.cols[j])
			if len(xi) < 2 {
				corr.SetSym(i, j, math.NaN())
				continue
			}
			corr.SetSym(i, j, stat.Correlation(xi, xj, nil))
		}
	}
	return corr, t.Names(), nil
}

func pairwiseComplete(a, b []float64) ([]float64, []float64) {
	xa := make([]float64, 0, len(a))
	xb := make([]float64, 0, len(b))
	for r := range a {
		if math.IsNaN(a[r]) || math.IsNaN(b[r]) {
			continue
		}
		xa = append(xa, a[r])
		xb = append(xb, b[r])
	}
	return xa, xb
}

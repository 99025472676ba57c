package ols

import (
	"math"
	"testing"
)

func TestSummarize(t *testing.T) {
	tbl := newTable(t, []string{"a", "b", "y"}, [][]float64{
		{1, 2, 3, 4, 5, 6},
		{2, 1, 4, 3, 6, 5},
		{3.1, 4.2, 7.0, 8.1, 11.2, 11.9},
	})
	m, err := Fit(tbl, "y", []string{"a", "b"})
	if err != nil {
		t.Fatalf("Fit() error = %v", err)
	}

	s := Summarize(m)
	if s.Response != "y" {
		t.Errorf("Response = %q, want %q", s.Response, "y")
	}
	if s.NObs != m.NObs {
		t.Errorf("NObs = %d, want %d", s.NObs, m.NObs)
	}
	if s.R2 != m.R2 || s.AdjR2 != m.AdjR2 || s.FStat != m.FStat || s.FPValue != m.FPValue {
		t.Error("Summarize() did not carry fit statistics through unchanged")
	}
	if len(s.Coefficients) != m.NParams {
		t.Fatalf("len(Coefficients) = %d, want %d", len(s.Coefficients), m.NParams)
	}

	names := m.CoefficientNames()
	for i, rec := range s.Coefficients {
		if rec.Name != names[i] {
			t.Errorf("Coefficients[%d].Name = %q, want %q", i, rec.Name, names[i])
		}
		if rec.Estimate != m.Coefficients[i] {
			t.Errorf("Coefficients[%d].Estimate = %v, want %v", i, rec.Estimate, m.Coefficients[i])
		}
		if rec.StdError != m.StdErrors[i] {
			t.Errorf("Coefficients[%d].StdError = %v, want %v", i, rec.StdError, m.StdErrors[i])
		}
		if rec.TStat != m.TStats[i] {
			t.Errorf("Coefficients[%d].TStat = %v, want %v", i, rec.TStat, m.TStats[i])
		}
		if rec.PValue != m.PValues[i] {
			t.Errorf("Coefficients[%d].PValue = %v, want %v", i, rec.PValue, m.PValues[i])
		}
	}
}

func TestModelSummaryCoefficientLookup(t *testing.T) {
	s := &ModelSummary{
		Response: "y",
		Coefficients: []CoefficientRecord{
			{Name: InterceptName, Estimate: 1.5},
			{Name: "a", Estimate: -2.0},
		},
	}

	rec, ok := s.Coefficient("a")
	if !ok {
		t.Fatal("Coefficient(a): not found")
	}
	if math.Abs(rec.Estimate+2.0) > 0 {
		t.Errorf("Coefficient(a).Estimate = %v, want -2", rec.Estimate)
	}

	if _, ok := s.Coefficient("missing"); ok {
		t.Error("Coefficient(missing) reported found")
	}
}

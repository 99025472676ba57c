package report

import (
	"bytes"
	"math"
	"strings"
	"testing"

	"github.com/regsuite/regsuite/analysis"
	"github.com/regsuite/regsuite/diagnostics"
	"github.com/regsuite/regsuite/ols"
	"github.com/regsuite/regsuite/pkg/errors"
)

func sampleSummaries() []*ols.ModelSummary {
	return []*ols.ModelSummary{
		{
			Response: "yield",
			NObs:     120,
			R2:       0.91,
			AdjR2:    0.9042,
			FStat:    210.4,
			FPValue:  1.2e-40,
			Coefficients: []ols.CoefficientRecord{
				{Name: ols.InterceptName, Estimate: 4.2, StdError: 0.3, TStat: 14.0, PValue: 1e-20},
				{Name: "rainfall", Estimate: 0.8, StdError: 0.05, TStat: 16.0, PValue: 1e-25},
			},
		},
		{
			Response: "runoff",
			NObs:     120,
			R2:       0.42,
			AdjR2:    0.4005,
			FStat:    12.1,
			FPValue:  0.002,
			Coefficients: []ols.CoefficientRecord{
				{Name: ols.InterceptName, Estimate: -1.1, StdError: 0.6, TStat: -1.83, PValue: 0.07},
			},
		},
	}
}

func TestWriteModelTable(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteModelTable(&buf, sampleSummaries()); err != nil {
		t.Fatalf("WriteModelTable() error = %v", err)
	}
	out := buf.String()

	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	if len(lines) != 3 {
		t.Fatalf("got %d lines, want header + 2 rows:\n%s", len(lines), out)
	}
	for _, want := range []string{"response", "yield", "runoff", "0.9042", "1.2e-40"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
	// Rows keep input order.
	if strings.Index(out, "yield") > strings.Index(out, "runoff") {
		t.Error("rows are not in input order")
	}
}

func TestWriteCoefficientTable(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteCoefficientTable(&buf, sampleSummaries()[0]); err != nil {
		t.Fatalf("WriteCoefficientTable() error = %v", err)
	}
	out := buf.String()
	for _, want := range []string{"yield (n=120)", ols.InterceptName, "rainfall", "0.8000", "16.0000"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestWriteRanking(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteRanking(&buf, sampleSummaries()); err != nil {
		t.Fatalf("WriteRanking() error = %v", err)
	}
	out := buf.String()
	if !strings.Contains(out, "  1. yield") || !strings.Contains(out, "  2. runoff") {
		t.Errorf("ranking lines missing or misnumbered:\n%s", out)
	}

	buf.Reset()
	if err := WriteRanking(&buf, nil); err != nil {
		t.Fatalf("WriteRanking(nil) error = %v", err)
	}
	if !strings.Contains(buf.String(), "no models passed") {
		t.Errorf("empty ranking message missing:\n%s", buf.String())
	}
}

func TestWriteEquations(t *testing.T) {
	summaries := sampleSummaries()
	equations := map[string]string{
		"yield":  "yield = 4.2000 + 0.8000*rainfall",
		"runoff": "runoff = 0",
	}

	var buf bytes.Buffer
	if err := WriteEquations(&buf, summaries, equations); err != nil {
		t.Fatalf("WriteEquations() error = %v", err)
	}
	want := "yield = 4.2000 + 0.8000*rainfall\nrunoff = 0\n"
	if buf.String() != want {
		t.Errorf("output = %q, want %q", buf.String(), want)
	}
}

func TestWriteHeteroscedasticity(t *testing.T) {
	results := []diagnostics.HeteroscedasticityResult{
		{Response: "yield", Statistic: 2.31, DegreesOfFreedom: 2, PValue: 0.315, Homoscedastic: true},
		{Response: "runoff", Statistic: 19.8, DegreesOfFreedom: 2, PValue: 5.0e-5, Homoscedastic: false},
	}

	var buf bytes.Buffer
	if err := WriteHeteroscedasticity(&buf, results); err != nil {
		t.Fatalf("WriteHeteroscedasticity() error = %v", err)
	}
	out := buf.String()
	for _, want := range []string{"homoscedastic", "heteroscedastic", "2.3100", "5e-05"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestWriteSensitivityRendersUndefinedDeltaAsDash(t *testing.T) {
	summaries := sampleSummaries()
	sensitivity := map[string][]diagnostics.SensitivityRecord{
		"yield": {
			{Name: ols.InterceptName, Elasticity: 0.52, Delta: 7.1, DeltaDefined: true},
			{Name: "rainfall", Elasticity: 0, Delta: math.NaN(), DeltaDefined: false},
		},
	}

	var buf bytes.Buffer
	if err := WriteSensitivity(&buf, summaries, sensitivity); err != nil {
		t.Fatalf("WriteSensitivity() error = %v", err)
	}
	out := buf.String()
	if !strings.Contains(out, "7.1000") {
		t.Errorf("defined delta missing:\n%s", out)
	}
	if strings.Contains(out, "NaN") {
		t.Errorf("undefined delta leaked NaN:\n%s", out)
	}
	lines := strings.Split(out, "\n")
	var dashed bool
	for _, line := range lines {
		if strings.HasPrefix(line, "rainfall") && strings.HasSuffix(strings.TrimRight(line, " "), "-") {
			dashed = true
		}
	}
	if !dashed {
		t.Errorf("undefined delta not rendered as dash:\n%s", out)
	}
}

func TestWriteReportComposesSections(t *testing.T) {
	summaries := sampleSummaries()
	res := &analysis.Result{
		Responses:   []string{"yield", "runoff", "broken"},
		Predictors:  []string{"rainfall"},
		Alpha:       ols.DefaultAlpha,
		Summaries:   summaries,
		Significant: summaries[:1],
		Equations:   map[string]string{"yield": "yield = 4.2000 + 0.8000*rainfall"},
		Heteroscedasticity: []diagnostics.HeteroscedasticityResult{
			{Response: "yield", Statistic: 1.1, DegreesOfFreedom: 1, PValue: 0.29, Homoscedastic: true},
		},
		Sensitivity: map[string][]diagnostics.SensitivityRecord{
			"yield": {{Name: "rainfall", Elasticity: 0.48, Delta: 6.25, DeltaDefined: true}},
		},
		Failures: map[string]error{"broken": errors.NewInsufficientDataError("ols.Fit", 1, 2)},
	}

	var buf bytes.Buffer
	if err := WriteReport(&buf, res); err != nil {
		t.Fatalf("WriteReport() error = %v", err)
	}
	out := buf.String()

	headers := []string{
		"== fitted models ==",
		"== significant models ==",
		"== equations ==",
		"== heteroscedasticity ==",
		"== sensitivity ==",
		"== failed fits ==",
	}
	last := -1
	for _, h := range headers {
		idx := strings.Index(out, h)
		if idx < 0 {
			t.Fatalf("section %q missing:\n%s", h, out)
		}
		if idx < last {
			t.Errorf("section %q out of order", h)
		}
		last = idx
	}
	if !strings.Contains(out, "broken") {
		t.Errorf("failed response missing from report:\n%s", out)
	}
}

func TestWriteFailuresIsSortedAndStable(t *testing.T) {
	failures := map[string]error{
		"zeta":  errors.New("boom"),
		"alpha": errors.NewInsufficientDataError("ols.Fit", 2, 4),
	}

	var first, second bytes.Buffer
	if err := WriteFailures(&first, failures); err != nil {
		t.Fatalf("WriteFailures() error = %v", err)
	}
	if err := WriteFailures(&second, failures); err != nil {
		t.Fatalf("WriteFailures() error = %v", err)
	}
	if first.String() != second.String() {
		t.Error("output differs between runs over the same map")
	}
	if strings.Index(first.String(), "alpha") > strings.Index(first.String(), "zeta") {
		t.Errorf("failures not sorted by response:\n%s", first.String())
	}
}

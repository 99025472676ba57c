// Package report renders pipeline results as flat, diff-friendly text
// tables and as plots. The text layout is fixed-width so two runs over
// the same data produce byte-identical output.
package report

import (
	"fmt"
	"io"
	"sort"

	"github.com/regsuite/regsuite/analysis"
	"github.com/regsuite/regsuite/diagnostics"
	"github.com/regsuite/regsuite/ols"
	"github.com/regsuite/regsuite/pkg/errors"
)

// WriteModelTable writes one row per fitted model, in declared response
// order, with the model-level statistics.
func WriteModelTable(w io.Writer, summaries []*ols.ModelSummary) error {
	if _, err := fmt.Fprintf(w, "%-16s %6s %10s %10s %12s %12s\n",
		"response", "n", "r2", "adj_r2", "f_stat", "f_pvalue"); err != nil {
		return errors.Wrap(err, "report: model table")
	}
	for _, s := range summaries {
		if _, err := fmt.Fprintf(w, "%-16s %6d %10.4f %10.4f %12.4f %12.4g\n",
			s.Response, s.NObs, s.R2, s.AdjR2, s.FStat, s.FPValue); err != nil {
			return errors.Wrap(err, "report: model table")
		}
	}
	return nil
}

// WriteCoefficientTable writes the per-coefficient inference table of a
// single model.
func WriteCoefficientTable(w io.Writer, s *ols.ModelSummary) error {
	if _, err := fmt.Fprintf(w, "%s (n=%d)\n%-16s %12s %12s %10s %12s\n",
		s.Response, s.NObs, "term", "estimate", "std_error", "t_stat", "p_value"); err != nil {
		return errors.Wrap(err, "report: coefficient table")
	}
	for _, c := range s.Coefficients {
		if _, err := fmt.Fprintf(w, "%-16s %12.4f %12.4f %10.4f %12.4g\n",
			c.Name, c.Estimate, c.StdError, c.TStat, c.PValue); err != nil {
			return errors.Wrap(err, "report: coefficient table")
		}
	}
	return nil
}

// WriteRanking writes the significant models in their ranked order with
// the statistic the ranking is based on.
func WriteRanking(w io.Writer, significant []*ols.ModelSummary) error {
	if len(significant) == 0 {
		_, err := fmt.Fprintln(w, "no models passed the significance filter")
		return errors.Wrap(err, "report: ranking")
	}
	for i, s := range significant {
		if _, err := fmt.Fprintf(w, "%3d. %-16s adj_r2=%.4f f_pvalue=%.4g\n",
			i+1, s.Response, s.AdjR2, s.FPValue); err != nil {
			return errors.Wrap(err, "report: ranking")
		}
	}
	return nil
}

// WriteEquations writes one rendered equation per line, following the
// given summary order so the output is stable.
func WriteEquations(w io.Writer, significant []*ols.ModelSummary, equations map[string]string) error {
	for _, s := range significant {
		eq, ok := equations[s.Response]
		if !ok {
			continue
		}
		if _, err := fmt.Fprintln(w, eq); err != nil {
			return errors.Wrap(err, "report: equations")
		}
	}
	return nil
}

// WriteHeteroscedasticity writes the Breusch-Pagan classification table.
func WriteHeteroscedasticity(w io.Writer, results []diagnostics.HeteroscedasticityResult) error {
	if _, err := fmt.Fprintf(w, "%-16s %12s %4s %12s %-14s\n",
		"response", "lm_stat", "df", "p_value", "verdict"); err != nil {
		return errors.Wrap(err, "report: heteroscedasticity")
	}
	for _, r := range results {
		verdict := "heteroscedastic"
		if r.Homoscedastic {
			verdict = "homoscedastic"
		}
		if _, err := fmt.Fprintf(w, "%-16s %12.4f %4d %12.4g %-14s\n",
			r.Response, r.Statistic, r.DegreesOfFreedom, r.PValue, verdict); err != nil {
			return errors.Wrap(err, "report: heteroscedasticity")
		}
	}
	return nil
}

// WriteSensitivity writes the per-coefficient sensitivity table of every
// analyzed model, following the given summary order. An undefined delta
// renders as a dash.
func WriteSensitivity(w io.Writer, summaries []*ols.ModelSummary, sensitivity map[string][]diagnostics.SensitivityRecord) error {
	for _, s := range summaries {
		records, ok := sensitivity[s.Response]
		if !ok {
			continue
		}
		if _, err := fmt.Fprintf(w, "%s\n%-16s %12s %12s\n",
			s.Response, "term", "elasticity", "delta_pct"); err != nil {
			return errors.Wrap(err, "report: sensitivity")
		}
		for _, r := range records {
			delta := "-"
			if r.DeltaDefined {
				delta = fmt.Sprintf("%12.4f", r.Delta)
			}
			if _, err := fmt.Fprintf(w, "%-16s %12.4f %12s\n",
				r.Name, r.Elasticity, delta); err != nil {
				return errors.Wrap(err, "report: sensitivity")
			}
		}
	}
	return nil
}

// WriteFailures writes one line per response that could not be fitted,
// sorted by response name for stable output.
func WriteFailures(w io.Writer, failures map[string]error) error {
	names := make([]string, 0, len(failures))
	for name := range failures {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		if _, err := fmt.Fprintf(w, "%-16s %v\n", name, failures[name]); err != nil {
			return errors.Wrap(err, "report: failures")
		}
	}
	return nil
}

// WriteReport composes the full text report for one pipeline run.
func WriteReport(w io.Writer, res *analysis.Result) error {
	sections := []struct {
		title string
		write func() error
	}{
		{"fitted models", func() error { return WriteModelTable(w, res.Summaries) }},
		{"significant models", func() error { return WriteRanking(w, res.Significant) }},
		{"equations", func() error { return WriteEquations(w, res.Summaries, res.Equations) }},
		{"heteroscedasticity", func() error { return WriteHeteroscedasticity(w, res.Heteroscedasticity) }},
		{"sensitivity", func() error { return WriteSensitivity(w, res.Summaries, res.Sensitivity) }},
	}
	if len(res.Failures) > 0 {
		sections = append(sections, struct {
			title string
			write func() error
		}{"failed fits", func() error { return WriteFailures(w, res.Failures) }})
	}

	for i, sec := range sections {
		if i > 0 {
			if _, err := fmt.Fprintln(w); err != nil {
				return errors.Wrap(err, "report: compose")
			}
		}
		if _, err := fmt.Fprintf(w, "== %s ==\n", sec.title); err != nil {
			return errors.Wrap(err, "report: compose")
		}
		if err := sec.write(); err != nil {
			return err
		}
	}
	return nil
}

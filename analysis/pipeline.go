// Package analysis runs the full multi-response regression pipeline:
// one OLS model per response column, model- and coefficient-level
// significance filtering, equation rendering, heteroscedasticity
// testing, and sensitivity analysis for the models that survive.
//
// A failed fit never aborts the run. Each response succeeds or fails on
// its own; failures are collected per response and every downstream
// stage operates on the models that remain.
package analysis

import (
	"io"
	"log/slog"
	"time"

	"github.com/regsuite/regsuite/core/parallel"
	"github.com/regsuite/regsuite/dataset"
	"github.com/regsuite/regsuite/diagnostics"
	"github.com/regsuite/regsuite/equation"
	"github.com/regsuite/regsuite/ols"
	"github.com/regsuite/regsuite/pkg/errors"
	"github.com/regsuite/regsuite/pkg/log"
)

// Result holds everything a pipeline run produced. Slices follow the
// declared response order except Significant, which follows the ranking
// produced by ols.SignificantModels. The significance filter feeds only
// the ranking; the equation and diagnostic stages cover every
// successful fit.
type Result struct {
	// Responses and Predictors echo the run's inputs.
	Responses  []string
	Predictors []string

	// Alpha is the significance level the run used.
	Alpha float64

	// Models maps each successfully fitted response to its model.
	Models map[string]*ols.FittedModel

	// Summaries lists the summaries of the successful fits in declared
	// response order, before any filtering.
	Summaries []*ols.ModelSummary

	// Failures maps each response that could not be fitted to its error.
	Failures map[string]error

	// Significant is the model-level filter output: summaries whose
	// F-test passed, ranked by descending adjusted R-squared.
	Significant []*ols.ModelSummary

	// Equations maps every fitted response to its rendered equation,
	// built from that model's significant coefficients only. A model
	// with no significant coefficients renders as "response = 0".
	Equations map[string]string

	// Heteroscedasticity holds one Breusch-Pagan result per successful
	// fit, in declared response order, regardless of the model's
	// significance-filter status.
	Heteroscedasticity []diagnostics.HeteroscedasticityResult

	// Sensitivity maps each homoscedastic fitted response to its
	// per-coefficient sensitivity records.
	Sensitivity map[string][]diagnostics.SensitivityRecord

	// Warnings collects the non-fatal problems hit per response, such as
	// a Breusch-Pagan auxiliary regression that could not be computed.
	Warnings map[string][]error
}

// Run fits one model per response against the shared predictor set and
// drives the filtered results through the diagnostic stages. The only
// errors Run itself returns are input errors; per-response fit errors
// land in Result.Failures instead.
func Run(tbl *dataset.Table, responses, predictors []string, opts ...Option) (*Result, error) {
	cfg := runConfig{
		alpha:  ols.DefaultAlpha,
		logger: log.NewLogger(io.Discard, "info"),
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	if tbl == nil {
		return nil, errors.Wrap(errors.ErrEmptyData, "analysis: nil table")
	}
	if len(responses) == 0 {
		return nil, errors.NewValueError("analysis", "no response columns given")
	}
	if len(predictors) == 0 {
		return nil, errors.NewValueError("analysis", "no predictor columns given")
	}
	seen := make(map[string]struct{}, len(responses))
	for _, r := range responses {
		if _, dup := seen[r]; dup {
			return nil, errors.NewValueError("analysis", "duplicate response column "+r)
		}
		seen[r] = struct{}{}
	}

	res := &Result{
		Responses:   append([]string(nil), responses...),
		Predictors:  append([]string(nil), predictors...),
		Alpha:       cfg.alpha,
		Models:      make(map[string]*ols.FittedModel, len(responses)),
		Failures:    make(map[string]error),
		Equations:   make(map[string]string),
		Sensitivity: make(map[string][]diagnostics.SensitivityRecord),
		Warnings:    make(map[string][]error),
	}

	res.fitAll(tbl, &cfg)
	res.filterModels(&cfg)
	res.renderEquations(&cfg)
	res.testHeteroscedasticity(&cfg)
	res.analyzeSensitivity(&cfg)

	return res, nil
}

// fitAll fits every response concurrently into an index-addressed slice,
// then aggregates into maps sequentially so the result is deterministic
// and no locking is needed.
func (res *Result) fitAll(tbl *dataset.Table, cfg *runConfig) {
	type fitOutcome struct {
		model *ols.FittedModel
		err   error
	}
	outcomes := make([]fitOutcome, len(res.Responses))

	fitOne := func(i int) {
		start := time.Now()
		m, err := ols.Fit(tbl, res.Responses[i], res.Predictors, cfg.fitOptions...)
		outcomes[i] = fitOutcome{model: m, err: err}

		logger := cfg.logger.With(
			slog.String(log.ComponentKey, "analysis"),
			slog.String(log.OperationKey, "fit"),
			slog.String(log.ResponseKey, res.Responses[i]),
			slog.Int64(log.DurationMsKey, time.Since(start).Milliseconds()),
		)
		if err != nil {
			logger.Warn("model fit failed", log.ErrAttr(err))
			return
		}
		logger.Info("model fitted", slog.Int(log.ObservationsKey, m.NObs))
	}

	if cfg.sequential {
		for i := range res.Responses {
			fitOne(i)
		}
	} else {
		parallel.Each(len(res.Responses), fitOne)
	}

	for i, out := range outcomes {
		name := res.Responses[i]
		if out.err != nil {
			res.Failures[name] = out.err
			continue
		}
		res.Models[name] = out.model
		res.Summaries = append(res.Summaries, ols.Summarize(out.model))
	}
}

func (res *Result) filterModels(cfg *runConfig) {
	res.Significant = ols.SignificantModels(res.Summaries, cfg.alpha)
	cfg.logger.Info("model significance filter",
		slog.String(log.ComponentKey, "analysis"),
		slog.String(log.OperationKey, "filter"),
		slog.Float64(log.AlphaKey, cfg.alpha),
		slog.Int("fitted", len(res.Summaries)),
		slog.Int("significant", len(res.Significant)),
	)
}

func (res *Result) renderEquations(cfg *runConfig) {
	for _, s := range res.Summaries {
		coeffs := ols.SignificantCoefficients(s, cfg.alpha)
		res.Equations[s.Response] = equation.Render(s.Response, coeffs)
	}
}

// testHeteroscedasticity covers every fitted model, not just the
// significant ones; constant error variance is a property of the fit
// itself, independent of how the model ranks.
func (res *Result) testHeteroscedasticity(cfg *runConfig) {
	for _, s := range res.Summaries {
		result, err := diagnostics.BreuschPagan(res.Models[s.Response], cfg.alpha)
		res.Heteroscedasticity = append(res.Heteroscedasticity, result)
		if err != nil {
			res.Warnings[s.Response] = append(res.Warnings[s.Response], err)
			cfg.logger.Warn("heteroscedasticity test degraded",
				slog.String(log.ComponentKey, "analysis"),
				slog.String(log.OperationKey, "breusch_pagan"),
				slog.String(log.ResponseKey, s.Response),
				log.ErrAttr(err),
			)
		}
	}
}

// analyzeSensitivity runs only on the fitted models whose residuals
// tested homoscedastic; elasticity against a heteroscedastic fit would
// rest on standard errors the Breusch-Pagan test just discredited.
func (res *Result) analyzeSensitivity(cfg *runConfig) {
	homoscedastic := make(map[string]bool, len(res.Heteroscedasticity))
	for _, h := range res.Heteroscedasticity {
		homoscedastic[h.Response] = h.Homoscedastic
	}

	for _, s := range res.Summaries {
		if !homoscedastic[s.Response] {
			continue
		}
		records, err := diagnostics.Sensitivity(res.Models[s.Response])
		if err != nil {
			res.Warnings[s.Response] = append(res.Warnings[s.Response], err)
			cfg.logger.Warn("sensitivity analysis skipped",
				slog.String(log.ComponentKey, "analysis"),
				slog.String(log.OperationKey, "sensitivity"),
				slog.String(log.ResponseKey, s.Response),
				log.ErrAttr(err),
			)
			continue
		}
		res.Sensitivity[s.Response] = records
	}
}

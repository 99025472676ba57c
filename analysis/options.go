package analysis

import (
	"log/slog"

	"github.com/regsuite/regsuite/ols"
)

type runConfig struct {
	alpha      float64
	logger     *slog.Logger
	sequential bool
	fitOptions []ols.Option
}

// Option configures a pipeline run.
type Option func(*runConfig)

// WithAlpha sets the significance level used by every filtering stage:
// the model F-test filter, the coefficient filter, and the
// heteroscedasticity verdict. Defaults to ols.DefaultAlpha.
func WithAlpha(alpha float64) Option {
	return func(c *runConfig) {
		c.alpha = alpha
	}
}

// WithLogger routes the pipeline's structured log output to logger. By
// default the pipeline is silent.
func WithLogger(logger *slog.Logger) Option {
	return func(c *runConfig) {
		c.logger = logger
	}
}

// Sequential disables the concurrent per-response fitting and runs the
// fits one at a time in declared order. Mostly useful for debugging.
func Sequential() Option {
	return func(c *runConfig) {
		c.sequential = true
	}
}

// WithFitOptions forwards options to every ols.Fit call made by the run.
func WithFitOptions(opts ...ols.Option) Option {
	return func(c *runConfig) {
		c.fitOptions = opts
	}
}

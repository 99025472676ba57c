package ols

// fitConfig holds tunables for a single fit.
type fitConfig struct {
	parallelThreshold int
}

func defaultFitConfig() fitConfig {
	return fitConfig{
		// Below this many rows the design matrix is filled sequentially.
		parallelThreshold: 1000,
	}
}

// Option configures a fit.
type Option func(*fitConfig)

// WithParallelThreshold sets the row count above which design-matrix
// assembly is parallelized across CPU cores.
func WithParallelThreshold(rows int) Option {
	return func(cfg *fitConfig) {
		cfg.parallelThreshold = rows
	}
}

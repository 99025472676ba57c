// Package regsuite screens many candidate response variables against a
// shared set of predictors using ordinary least squares.
//
// For every response the pipeline fits a linear model, ranks the models
// whose overall F-test is significant by adjusted R-squared, filters
// each fitted model down to its significant coefficients, and renders
// them as a plain-text equation. Independently of that ranking, every
// fitted model is checked for heteroscedasticity with the Breusch-Pagan
// test, and the homoscedastic ones get a per-coefficient sensitivity
// analysis (elasticity at the means and the relative standard error).
//
// A single bad response never aborts a run: fits fail independently and
// every downstream stage works with whatever models remain.
//
// The packages compose bottom-up:
//
//   - dataset: immutable numeric tables with NaN-coded missing values
//     and CSV loading
//   - ols: model fitting, inference summaries, significance filters
//   - equation: rendering and parsing of fitted equations
//   - diagnostics: Breusch-Pagan test and sensitivity analysis
//   - analysis: the batch pipeline tying the stages together
//   - report: text tables and plots for a pipeline result
//
// Minimal use:
//
//	tbl, err := dataset.LoadCSVFile("field_trials.csv")
//	if err != nil {
//		log.Fatal(err)
//	}
//	res, err := analysis.Run(tbl,
//		[]string{"yield", "runoff"},
//		[]string{"rainfall", "fertilizer", "temperature"},
//	)
//	if err != nil {
//		log.Fatal(err)
//	}
//	report.WriteReport(os.Stdout, res)
package regsuite

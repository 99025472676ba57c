package log

// Standard attribute keys for regression pipeline log records. Using the
// same keys everywhere keeps per-response lines filterable when many
// models are fitted in one run.
const (
	// ResponseKey identifies the response (dependent) variable of a fit.
	ResponseKey = "response"

	// PredictorsKey carries the ordered predictor names of a fit.
	PredictorsKey = "predictors"

	// ObservationsKey is the number of complete observations used by a fit.
	ObservationsKey = "observations"

	// OperationKey names the pipeline stage: "fit", "filter", "breusch_pagan",
	// "sensitivity", "report".
	OperationKey = "operation"

	// ComponentKey identifies the package performing the operation.
	ComponentKey = "component"

	// AlphaKey is the significance level in effect for a filter stage.
	AlphaKey = "alpha"

	// DurationMsKey reports elapsed wall time for a stage in milliseconds.
	DurationMsKey = "duration_ms"

	// FailedOpKey carries the operation recorded by a taxonomy error,
	// added automatically when a record logs one under ErrAttrKey.
	FailedOpKey = "failed_operation"
)

package errors

import (
	"math"
)

// CheckFinite returns an error if any value is NaN or infinite.
// Estimation results are checked before they are handed downstream so a
// degenerate fit is reported against its response instead of poisoning
// derived statistics.
func CheckFinite(operation string, values []float64) error {
	for _, v := range values {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return Newf("regsuite: %s: non-finite value %v in result", operation, v)
		}
	}
	return nil
}

// CheckScalar checks a single value for numerical instability.
func CheckScalar(operation string, value float64) error {
	if math.IsNaN(value) || math.IsInf(value, 0) {
		return Newf("regsuite: %s: non-finite value %v in result", operation, value)
	}
	return nil
}

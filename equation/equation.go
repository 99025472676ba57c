// Package equation renders fitted linear models as human-readable
// equation strings. Terms are assembled structurally from coefficient
// records: the sign separator comes from the coefficient's sign and the
// intercept is identified by its reserved name, so variable names
// containing "Intercept", "+", or "-" can never corrupt the output the
// way post-hoc text substitution would.
package equation

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/regsuite/regsuite/ols"
	"github.com/regsuite/regsuite/pkg/errors"
)

// Render builds the equation string for a response from its coefficient
// records, typically the significance-filtered set. Coefficients are
// rounded to 4 decimal places, the intercept renders as a bare constant,
// and negative coefficients render with a minus separator, never "+ -".
// An empty record set renders the canonical empty model "response = 0".
func Render(response string, coeffs []ols.CoefficientRecord) string {
	if len(coeffs) == 0 {
		return response + " = 0"
	}

	var b strings.Builder
	b.WriteString(response)
	b.WriteString(" = ")
	for i, c := range coeffs {
		neg := c.Estimate < 0
		switch {
		case i == 0 && neg:
			b.WriteString("-")
		case i > 0 && neg:
			b.WriteString(" - ")
		case i > 0:
			b.WriteString(" + ")
		}
		b.WriteString(formatTerm(c))
	}
	return b.String()
}

func formatTerm(c ols.CoefficientRecord) string {
	magnitude := c.Estimate
	if magnitude < 0 {
		magnitude = -magnitude
	}
	if c.Name == ols.InterceptName {
		return fmt.Sprintf("%.4f", magnitude)
	}
	return fmt.Sprintf("%.4f*%s", magnitude, c.Name)
}

// Parse inverts Render for canonical equation strings, returning the
// response name and the coefficient value per name (the intercept under
// ols.InterceptName). Only strings produced by Render are supported;
// variable names containing spaces or '*' are outside the canonical form.
func Parse(s string) (string, map[string]float64, error) {
	const op = "equation.Parse"

	response, rhs, found := strings.Cut(s, " = ")
	if !found || response == "" {
		return "", nil, errors.NewValueError(op, "missing \" = \" separator in "+strconv.Quote(s))
	}

	coeffs := make(map[string]float64)
	if rhs == "0" {
		return response, coeffs, nil
	}

	sign := 1.0
	for i, token := range strings.Fields(rhs) {
		switch token {
		case "+":
			sign = 1
			continue
		case "-":
			sign = -1
			continue
		}

		term := token
		if i == 0 && strings.HasPrefix(term, "-") {
			sign = -1
			term = term[1:]
		}

		valueStr, name, hasName := strings.Cut(term, "*")
		if !hasName {
			name = ols.InterceptName
		}
		value, err := strconv.ParseFloat(valueStr, 64)
		if err != nil {
			return "", nil, errors.Wrapf(err, "%s: term %q", op, token)
		}
		if name == "" {
			return "", nil, errors.NewValueError(op, "empty variable name in term "+strconv.Quote(token))
		}
		if _, dup := coeffs[name]; dup {
			return "", nil, errors.NewValueError(op, "duplicate term for "+name)
		}

		coeffs[name] = sign * value
		sign = 1
	}

	return response, coeffs, nil
}

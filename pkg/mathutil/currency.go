// Package mathutil provides common mathematical utility functions.
package mathutil

import (
	"math"

	"github.com/brokerdesk/dealmargin/pkg/constants"
)

// Round rounds a value to two decimals, i.e. to represent real currency.
// Used for making logical comparisons.
func Round(val float64) float64 {
	return math.Round(val*constants.DecimalPrecision) / constants.DecimalPrecision
}

// WithinTolerance checks if two values are within a specified tolerance
func WithinTolerance(val1, val2, tolerance float64) bool {
	return math.Abs(val1-val2) <= tolerance
}

// Max returns the maximum of two float64 values
func Max(a, b float64) float64 {
	if a > b {
		return a
	}
	return b
}

// ApplyPercentage applies a percentage to a value
func ApplyPercentage(value, percentage float64) float64 {
	return value * (percentage / constants.PercentageMultiplier)
}

// NumberOrZero coerces a malformed numeric value to zero. The commission and
// pricing engines call this at every input boundary so that partial form
// state degrades to a zero contribution instead of propagating NaN.
func NumberOrZero(value float64) float64 {
	if math.IsNaN(value) || math.IsInf(value, 0) {
		return 0
	}
	return value
}

// OptionalOrZero is NumberOrZero for optional inputs; a nil pointer counts
// as zero.
func OptionalOrZero(value *float64) float64 {
	if value == nil {
		return 0
	}
	return NumberOrZero(*value)
}

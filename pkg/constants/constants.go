// Package constants provides shared constants for the dealmargin application.
package constants

// Financial constants
const (
	// DecimalPrecision is the precision for currency rounding (2 decimal places)
	DecimalPrecision = 100

	// CurrencyTolerance is the tolerance for currency comparisons (1 cent)
	CurrencyTolerance = 0.01

	// PercentageMultiplier is used for percentage conversions
	PercentageMultiplier = 100.0

	// ShareSumTarget is the required total of participant percent shares
	ShareSumTarget = 100.0

	// ShareSumTolerance is the allowed deviation when checking that
	// participant shares total 100%
	ShareSumTolerance = 0.01
)

// Vehicle model year constants
const (
	// MinVehicleYear is the earliest accepted manufacture or model year
	MinVehicleYear = 1900

	// MaxYearOffset is added to the current year to allow next-year models
	MaxYearOffset = 1
)

// Output format constants
const (
	// OutputFormatPretty is the human-readable output format
	OutputFormatPretty = "pretty"

	// OutputFormatCSV is the CSV output format
	OutputFormatCSV = "csv"

	// OutputFormatJSON is the machine-readable JSON output format
	OutputFormatJSON = "json"
)

// Configuration file constants
const (
	// DefaultConfigFile is the default configuration file name
	DefaultConfigFile = "config.yaml"

	// ExampleConfigFile is the example configuration file name
	ExampleConfigFile = "config.yaml.example"
)

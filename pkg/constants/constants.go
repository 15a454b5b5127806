// Package constants provides shared constants for the home-buyer application.
package constants

// Financial constants
const (
	// MonthsPerYear is the number of months in a year
	MonthsPerYear = 12

	// DecimalPrecision is the precision for currency rounding (2 decimal places)
	DecimalPrecision = 100

	// MaxScheduleMonths is the number of months the projection simulates (30 years)
	MaxScheduleMonths = 360

	// PMIDownPaymentCutoff is the down payment fraction at or above which PMI never applies
	PMIDownPaymentCutoff = 0.20
)

// Wizard constants
const (
	// SpreadsheetPageStride is the number of rows a page up/down moves the cursor
	SpreadsheetPageStride = 10
)

// Configuration file constants
const (
	// DefaultConfigFile is the default configuration file name
	DefaultConfigFile = "home-buyer.yaml"
)

// Export file constants
const (
	// DefaultSpreadsheetFile is the default destination for spreadsheet exports
	DefaultSpreadsheetFile = "mortgage_spreadsheet.csv"

	// DefaultSummaryFile is the default destination for summary exports
	DefaultSummaryFile = "mortgage_analysis.csv"
)

// Validation constants
const (
	// ToleranceForComparison is the tolerance for financial comparisons
	ToleranceForComparison = 1.0

	// CurrencyTolerance is the tolerance for currency comparisons (1 cent)
	CurrencyTolerance = 0.01

	// PercentageMultiplier is used for percentage conversions
	PercentageMultiplier = 100.0
)

// Package format provides display formatting for currency and rate values.
package format

import (
	"fmt"
	"math"

	"github.com/iwvelando/home-buyer/pkg/constants"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var printer = message.NewPrinter(language.English)

// Currency returns a whole-dollar currency string with a dollar sign and
// thousands separators (e.g., "-$1,234").
func Currency(amount float64) string {
	formatted := printer.Sprintf("%.0f", math.Abs(amount))
	if amount < 0 {
		return "-$" + formatted
	}
	return "$" + formatted
}

// CurrencyCents returns a currency string with two decimals and thousands
// separators (e.g., "-$1,234.56").
func CurrencyCents(amount float64) string {
	formatted := printer.Sprintf("%.2f", math.Abs(amount))
	if amount < 0 {
		return "-$" + formatted
	}
	return "$" + formatted
}

// Percent renders an annual fraction as a percentage with two decimals
// (e.g., 0.065 becomes "6.50%").
func Percent(rate float64) string {
	return fmt.Sprintf("%.2f%%", rate*constants.PercentageMultiplier)
}

// Years renders a month count as "N (Y.Y years)".
func Years(months int) string {
	return fmt.Sprintf("%d (%.1f years)", months, float64(months)/constants.MonthsPerYear)
}

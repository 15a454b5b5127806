// Package validation provides common validation utilities.
package validation

import (
	"fmt"
	"strconv"
)

// DecimalDefault checks whether a configured default entry would parse as a
// decimal number once the wizard runs. It returns a warning string, or empty
// when the entry is fine. An empty entry is fine; the wizard requires text
// before it advances.
func DecimalDefault(name, value string) string {
	if value == "" {
		return ""
	}
	if _, err := strconv.ParseFloat(value, 64); err != nil {
		return fmt.Sprintf("%s '%s' is not numeric and will block the projection until corrected", name, value)
	}
	return ""
}

// TermDefault checks whether a configured loan term entry is a positive whole
// number of years. It returns a warning string, or empty when the entry is
// fine or absent.
func TermDefault(name, value string) string {
	if value == "" {
		return ""
	}
	if years, err := strconv.Atoi(value); err != nil || years <= 0 {
		return fmt.Sprintf("%s '%s' is not a positive integer", name, value)
	}
	return ""
}

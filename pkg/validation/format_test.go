package validation

import (
	"strings"
	"testing"
)

func TestDecimalDefault(t *testing.T) {
	tests := []struct {
		name       string
		value      string
		expectWarn bool
	}{
		{
			name:       "Whole number",
			value:      "300000",
			expectWarn: false,
		},
		{
			name:       "Decimal number",
			value:      "6.5",
			expectWarn: false,
		},
		{
			name:       "Negative number",
			value:      "-2",
			expectWarn: false,
		},
		{
			name:       "Empty entry is left to the wizard",
			value:      "",
			expectWarn: false,
		},
		{
			name:       "Words are not numeric",
			value:      "lots",
			expectWarn: true,
		},
		{
			name:       "Bare minus sign",
			value:      "-",
			expectWarn: true,
		},
		{
			name:       "Double decimal point",
			value:      "6..5",
			expectWarn: true,
		},
		{
			name:       "Embedded spaces",
			value:      "1 000",
			expectWarn: true,
		},
		{
			name:       "Currency symbol",
			value:      "$300000",
			expectWarn: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			warning := DecimalDefault("defaults.houseValue", tt.value)

			if tt.expectWarn {
				if warning == "" {
					t.Errorf("DecimalDefault(%q) expected a warning but got none", tt.value)
				}
			} else {
				if warning != "" {
					t.Errorf("DecimalDefault(%q) unexpected warning = %s", tt.value, warning)
				}
			}
		})
	}
}

func TestDecimalDefaultWarningMessage(t *testing.T) {
	warning := DecimalDefault("defaults.interestRate", "six")

	if !strings.Contains(warning, "defaults.interestRate") {
		t.Errorf("Warning should name the field: %s", warning)
	}
	if !strings.Contains(warning, "'six'") {
		t.Errorf("Warning should quote the offending value: %s", warning)
	}
}

func TestTermDefault(t *testing.T) {
	tests := []struct {
		name       string
		value      string
		expectWarn bool
	}{
		{
			name:       "Standard term",
			value:      "30",
			expectWarn: false,
		},
		{
			name:       "Short term",
			value:      "15",
			expectWarn: false,
		},
		{
			name:       "Empty entry is left to the wizard",
			value:      "",
			expectWarn: false,
		},
		{
			name:       "Zero years",
			value:      "0",
			expectWarn: true,
		},
		{
			name:       "Negative years",
			value:      "-5",
			expectWarn: true,
		},
		{
			name:       "Fractional years",
			value:      "7.5",
			expectWarn: true,
		},
		{
			name:       "Words are not a term",
			value:      "thirty",
			expectWarn: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			warning := TermDefault("defaults.loanTermYears", tt.value)

			if tt.expectWarn {
				if warning == "" {
					t.Errorf("TermDefault(%q) expected a warning but got none", tt.value)
				}
			} else {
				if warning != "" {
					t.Errorf("TermDefault(%q) unexpected warning = %s", tt.value, warning)
				}
			}
		})
	}
}

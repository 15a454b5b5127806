// Package config defines conversion utilities for configuration objects.
package config

import (
	"github.com/iwvelando/home-buyer/internal/wizard"
)

// ToWizardDefaults converts the defaults section to wizard seed text. Unset
// entries keep the standard defaults, so a partial config only overrides
// what it names.
func (d *DefaultsConfig) ToWizardDefaults() wizard.Defaults {
	defaults := wizard.StandardDefaults()
	if d == nil {
		return defaults
	}

	override := func(dst *string, src string) {
		if src != "" {
			*dst = src
		}
	}
	override(&defaults.HouseValue, d.HouseValue)
	override(&defaults.DownPaymentPercent, d.DownPaymentPercent)
	override(&defaults.DownPaymentAmount, d.DownPaymentAmount)
	override(&defaults.HOAFee, d.HOAFee)
	override(&defaults.InterestRate, d.InterestRate)
	override(&defaults.PropertyTaxPercent, d.PropertyTaxPercent)
	override(&defaults.PropertyTaxAmount, d.PropertyTaxAmount)
	override(&defaults.InsurancePercent, d.InsurancePercent)
	override(&defaults.InsuranceAmount, d.InsuranceAmount)
	override(&defaults.MaintenancePercent, d.MaintenancePercent)
	override(&defaults.MaintenanceAmount, d.MaintenanceAmount)
	override(&defaults.PMIPercent, d.PMIPercent)
	override(&defaults.PMIAmount, d.PMIAmount)
	override(&defaults.AppreciationRate, d.AppreciationRate)
	override(&defaults.LoanTermYears, d.LoanTermYears)
	override(&defaults.ExtraPrincipal, d.ExtraPrincipal)

	return defaults
}

// ToExportPaths converts the export section to the wizard's destinations.
// Empty entries let the session fall back to the package defaults.
func (e *ExportConfig) ToExportPaths() wizard.ExportPaths {
	if e == nil {
		return wizard.ExportPaths{}
	}
	return wizard.ExportPaths{
		Spreadsheet: e.SpreadsheetFile,
		Summary:     e.SummaryFile,
	}
}

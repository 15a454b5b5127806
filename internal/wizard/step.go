package wizard

// Step enumerates the wizard states in fixed forward order.
type Step int

const (
	StepHouseValue Step = iota
	StepDownPayment
	StepHOAFee
	StepInterestRate
	StepPropertyTax
	StepInsurance
	StepMaintenance
	StepPMI
	StepHouseAppreciation
	StepLoanTerm
	StepExtraPrincipal
	StepSpreadsheet
	StepSummary
)

var stepNames = map[Step]string{
	StepHouseValue:        "HouseValue",
	StepDownPayment:       "DownPayment",
	StepHOAFee:            "HOAFee",
	StepInterestRate:      "InterestRate",
	StepPropertyTax:       "PropertyTax",
	StepInsurance:         "Insurance",
	StepMaintenance:       "Maintenance",
	StepPMI:               "PMI",
	StepHouseAppreciation: "HouseAppreciation",
	StepLoanTerm:          "LoanTerm",
	StepExtraPrincipal:    "ExtraPrincipal",
	StepSpreadsheet:       "Spreadsheet",
	StepSummary:           "Summary",
}

func (s Step) String() string {
	if name, ok := stepNames[s]; ok {
		return name
	}
	return "Unknown"
}

// IsInput reports whether the step collects a field value.
func (s Step) IsInput() bool {
	return s >= StepHouseValue && s <= StepExtraPrincipal
}

// IsDual reports whether the step edits a percent-or-amount field.
func (s Step) IsDual() bool {
	switch s {
	case StepDownPayment, StepPropertyTax, StepInsurance, StepMaintenance, StepPMI:
		return true
	}
	return false
}

package wizard

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/iwvelando/home-buyer/internal/mortgage"
	"github.com/iwvelando/home-buyer/pkg/constants"
)

// InputError identifies the buffer whose text could not be interpreted when
// a projection was requested.
type InputError struct {
	Field string
	Text  string
	Err   error
}

func (e *InputError) Error() string {
	return fmt.Sprintf("invalid %s %q: %v", e.Field, e.Text, e.Err)
}

func (e *InputError) Unwrap() error {
	return e.Err
}

// Defaults holds the text pre-seeded into each input buffer. Empty strings
// leave a buffer blank. Dual fields always start on their percent side.
type Defaults struct {
	HouseValue         string
	DownPaymentPercent string
	DownPaymentAmount  string
	HOAFee             string
	InterestRate       string
	PropertyTaxPercent string
	PropertyTaxAmount  string
	InsurancePercent   string
	InsuranceAmount    string
	MaintenancePercent string
	MaintenanceAmount  string
	PMIPercent         string
	PMIAmount          string
	AppreciationRate   string
	LoanTermYears      string
	ExtraPrincipal     string
}

// StandardDefaults describes a typical purchase: 20% down at 6.5% over 30
// years with percent-based recurring costs.
func StandardDefaults() Defaults {
	return Defaults{
		DownPaymentPercent: "20",
		HOAFee:             "0",
		InterestRate:       "6.5",
		PropertyTaxPercent: "2",
		InsurancePercent:   "0.35",
		MaintenancePercent: "1",
		PMIPercent:         "0.5",
		AppreciationRate:   "3",
		LoanTermYears:      "30",
		ExtraPrincipal:     "0",
	}
}

// Inputs holds the editable buffer for every input step.
type Inputs struct {
	HouseValue     Field
	DownPayment    DualField
	HOAFee         Field
	InterestRate   Field
	PropertyTax    DualField
	Insurance      DualField
	Maintenance    DualField
	PMI            DualField
	Appreciation   Field
	LoanTerm       Field
	ExtraPrincipal Field
}

// NewInputs builds the buffers pre-seeded from d.
func NewInputs(d Defaults) Inputs {
	return Inputs{
		HouseValue:     NewField(DecimalChars, d.HouseValue),
		DownPayment:    NewDualField(d.DownPaymentPercent, d.DownPaymentAmount),
		HOAFee:         NewField(DecimalChars, d.HOAFee),
		InterestRate:   NewField(DecimalChars, d.InterestRate),
		PropertyTax:    NewDualField(d.PropertyTaxPercent, d.PropertyTaxAmount),
		Insurance:      NewDualField(d.InsurancePercent, d.InsuranceAmount),
		Maintenance:    NewDualField(d.MaintenancePercent, d.MaintenanceAmount),
		PMI:            NewDualField(d.PMIPercent, d.PMIAmount),
		Appreciation:   NewField(SignedDecimalChars, d.AppreciationRate),
		LoanTerm:       NewField(IntegerChars, d.LoanTermYears),
		ExtraPrincipal: NewField(DecimalChars, d.ExtraPrincipal),
	}
}

// ActiveField returns the buffer edited on the given input step, following
// the selector on dual steps. It returns nil for non-input steps.
func (in *Inputs) ActiveField(step Step) *Field {
	switch step {
	case StepHouseValue:
		return &in.HouseValue
	case StepDownPayment:
		return in.DownPayment.Active()
	case StepHOAFee:
		return &in.HOAFee
	case StepInterestRate:
		return &in.InterestRate
	case StepPropertyTax:
		return in.PropertyTax.Active()
	case StepInsurance:
		return in.Insurance.Active()
	case StepMaintenance:
		return in.Maintenance.Active()
	case StepPMI:
		return in.PMI.Active()
	case StepHouseAppreciation:
		return &in.Appreciation
	case StepLoanTerm:
		return &in.LoanTerm
	case StepExtraPrincipal:
		return &in.ExtraPrincipal
	}
	return nil
}

// DualFor returns the dual field a toggle on the given step switches, or nil
// when the step has a single buffer.
func (in *Inputs) DualFor(step Step) *DualField {
	switch step {
	case StepDownPayment:
		return &in.DownPayment
	case StepPropertyTax:
		return &in.PropertyTax
	case StepInsurance:
		return &in.Insurance
	case StepMaintenance:
		return &in.Maintenance
	case StepPMI:
		return &in.PMI
	}
	return nil
}

// PMIRequired reports whether the entered house value and down payment imply
// mortgage insurance. ok is false while either buffer fails to parse.
func (in *Inputs) PMIRequired() (required, ok bool) {
	houseValue, err := strconv.ParseFloat(in.HouseValue.Text(), 64)
	if err != nil {
		return false, false
	}
	var fraction float64
	if in.DownPayment.UsePercent() {
		percent, err := strconv.ParseFloat(in.DownPayment.Percent.Text(), 64)
		if err != nil {
			return false, false
		}
		fraction = percent / constants.PercentageMultiplier
	} else {
		amount, err := strconv.ParseFloat(in.DownPayment.Amount.Text(), 64)
		if err != nil {
			return false, false
		}
		fraction = amount / houseValue
	}
	return fraction < constants.PMIDownPaymentCutoff, true
}

func parseAmount(name string, f *Field) (float64, error) {
	value, err := strconv.ParseFloat(f.Text(), 64)
	if err != nil {
		return 0, &InputError{Field: name, Text: f.Text(), Err: err}
	}
	return value, nil
}

func parseFraction(name string, f *Field) (float64, error) {
	value, err := parseAmount(name, f)
	if err != nil {
		return 0, err
	}
	return value / constants.PercentageMultiplier, nil
}

func parseCost(name string, d *DualField) (mortgage.Cost, error) {
	if d.UsePercent() {
		fraction, err := parseFraction(name, &d.Percent)
		if err != nil {
			return mortgage.Cost{}, err
		}
		return mortgage.Percent(fraction), nil
	}
	amount, err := parseAmount(name, &d.Amount)
	if err != nil {
		return mortgage.Cost{}, err
	}
	return mortgage.Amount(amount), nil
}

// Parameters parses the active side of every buffer into the frozen numeric
// parameters the projection engine consumes. Percent entries are converted
// from percent points to fractions.
func (in *Inputs) Parameters() (mortgage.Parameters, error) {
	var params mortgage.Parameters
	var err error

	if params.HouseValue, err = parseAmount("house value", &in.HouseValue); err != nil {
		return mortgage.Parameters{}, err
	}
	if params.HouseValue <= 0 {
		return mortgage.Parameters{}, &InputError{
			Field: "house value",
			Text:  in.HouseValue.Text(),
			Err:   errors.New("must be greater than zero"),
		}
	}
	if params.DownPayment, err = parseCost("down payment", &in.DownPayment); err != nil {
		return mortgage.Parameters{}, err
	}
	if params.MonthlyHOA, err = parseAmount("HOA fee", &in.HOAFee); err != nil {
		return mortgage.Parameters{}, err
	}
	if params.AnnualInterestRate, err = parseFraction("interest rate", &in.InterestRate); err != nil {
		return mortgage.Parameters{}, err
	}
	if params.PropertyTax, err = parseCost("property tax", &in.PropertyTax); err != nil {
		return mortgage.Parameters{}, err
	}
	if params.Insurance, err = parseCost("insurance", &in.Insurance); err != nil {
		return mortgage.Parameters{}, err
	}
	if params.Maintenance, err = parseCost("maintenance", &in.Maintenance); err != nil {
		return mortgage.Parameters{}, err
	}
	if params.PMI, err = parseCost("PMI", &in.PMI); err != nil {
		return mortgage.Parameters{}, err
	}
	if params.AnnualAppreciationRate, err = parseFraction("appreciation rate", &in.Appreciation); err != nil {
		return mortgage.Parameters{}, err
	}

	term, err := strconv.Atoi(in.LoanTerm.Text())
	if err != nil {
		return mortgage.Parameters{}, &InputError{Field: "loan term", Text: in.LoanTerm.Text(), Err: err}
	}
	if term <= 0 {
		return mortgage.Parameters{}, &InputError{
			Field: "loan term",
			Text:  in.LoanTerm.Text(),
			Err:   errors.New("must be greater than zero"),
		}
	}
	params.LoanTermYears = term

	if params.ExtraPrincipal, err = parseAmount("extra principal", &in.ExtraPrincipal); err != nil {
		return mortgage.Parameters{}, err
	}
	return params, nil
}

// Package mortgage defines the data structures for a home purchase projection
// and includes functions for computing the month-by-month schedule.
package mortgage

// Basis identifies how a cost category is expressed.
type Basis int

const (
	// PercentBasis expresses a cost as an annual fraction of a reference value.
	PercentBasis Basis = iota

	// AmountBasis expresses a cost as a fixed dollar figure.
	AmountBasis
)

// Cost carries exactly one active representation for a cost category; the
// engine only ever reads the representation the Basis selects.
type Cost struct {
	Basis Basis
	Value float64
}

// Percent builds a Cost expressed as an annual fraction of a reference value.
func Percent(fraction float64) Cost {
	return Cost{Basis: PercentBasis, Value: fraction}
}

// Amount builds a Cost expressed as a fixed dollar figure.
func Amount(dollars float64) Cost {
	return Cost{Basis: AmountBasis, Value: dollars}
}

// Resolve returns the dollar figure for the cost against a reference value:
// percent costs apply their fraction to the reference, amount costs ignore it.
func (c Cost) Resolve(reference float64) float64 {
	if c.Basis == PercentBasis {
		return reference * c.Value
	}
	return c.Value
}

// Parameters holds the frozen numeric inputs for one projection run. All
// rates are fractions (0.065 for 6.5%), never percent points.
type Parameters struct {
	HouseValue float64

	// DownPayment is a fraction of the house value or absolute dollars.
	DownPayment Cost

	MonthlyHOA         float64
	AnnualInterestRate float64

	// PropertyTax, Insurance, and Maintenance are annual fractions of the
	// current (appreciated) house value or absolute annual dollars.
	PropertyTax Cost
	Insurance   Cost
	Maintenance Cost

	// PMI is an annual fraction of the remaining loan balance or absolute
	// monthly dollars. It only applies while the down payment fraction at
	// origination is below the cutoff.
	PMI Cost

	// AnnualAppreciationRate may be negative.
	AnnualAppreciationRate float64

	LoanTermYears  int
	ExtraPrincipal float64
}

// Row is one month of the projection.
type Row struct {
	Month          int
	Interest       float64
	Principal      float64
	ExtraPrincipal float64
	RepairCosts    float64
	HOA            float64
	Taxes          float64
	Insurance      float64
	PMI            float64
	ActualPayment  float64
	CostOfCapital  float64
	WasteCost      float64
	Cost           float64
	Debt           float64
	InterestRate   float64
	HouseValue     float64
	Equity         float64
}

// Summary aggregates the projection after the final simulated month.
type Summary struct {
	TotalInterest         float64
	TotalPrincipal        float64
	TotalTaxes            float64
	TotalInsurance        float64
	TotalMaintenance      float64
	TotalPMI              float64
	TotalHOA              float64
	TotalPayments         float64
	TotalCostOfCapital    float64
	TotalWasteCost        float64
	FinalHouseValue       float64
	FinalEquity           float64
	MonthsToPayoff        int
	EffectiveInterestRate float64
}

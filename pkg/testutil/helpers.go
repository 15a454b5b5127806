// Package testutil provides common utility functions for testing.
package testutil

import (
	"github.com/iwvelando/home-buyer/internal/mortgage"
)

// BaseParameters returns the canonical 30-year fixed scenario shared across
// test packages: a 300k house with 20% down at 6% and no recurring costs.
func BaseParameters() mortgage.Parameters {
	return mortgage.Parameters{
		HouseValue:         300000,
		DownPayment:        mortgage.Percent(0.20),
		AnnualInterestRate: 0.06,
		PropertyTax:        mortgage.Amount(0),
		Insurance:          mortgage.Amount(0),
		Maintenance:        mortgage.Amount(0),
		PMI:                mortgage.Amount(0),
		LoanTermYears:      30,
	}
}

// RealisticParameters returns a fully-populated scenario with every cost
// category on its percent side.
func RealisticParameters() mortgage.Parameters {
	return mortgage.Parameters{
		HouseValue:             300000,
		DownPayment:            mortgage.Percent(0.10),
		MonthlyHOA:             150,
		AnnualInterestRate:     0.065,
		PropertyTax:            mortgage.Percent(0.02),
		Insurance:              mortgage.Percent(0.0035),
		Maintenance:            mortgage.Percent(0.01),
		PMI:                    mortgage.Percent(0.005),
		AnnualAppreciationRate: 0.03,
		LoanTermYears:          30,
	}
}

// Package annuity provides level-payment loan math shared by the projection engine.
package annuity

import (
	"math"

	"github.com/iwvelando/home-buyer/pkg/constants"
)

// MonthlyPayment calculates the fixed monthly payment for a loan using the
// standard amortization formula. The interest rate is an annual fraction
// (0.06 for 6%).
func MonthlyPayment(loanAmount, annualInterestRate float64, termMonths int) float64 {
	if annualInterestRate == 0 {
		// For zero interest, simply divide the loan amount by term
		return loanAmount / float64(termMonths)
	}

	periodicInterestRate := annualInterestRate / constants.MonthsPerYear
	power := math.Pow((1.00 + periodicInterestRate), float64(termMonths))
	discountFactor := (power - 1.00) / power
	return loanAmount * periodicInterestRate / discountFactor
}

// InterestPayment calculates the interest portion of a monthly payment given
// the remaining balance and the annual rate as a fraction.
func InterestPayment(remainingBalance, annualInterestRate float64) float64 {
	return remainingBalance * annualInterestRate / constants.MonthsPerYear
}

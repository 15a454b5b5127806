package mortgage

import (
	"fmt"

	"github.com/iwvelando/home-buyer/pkg/annuity"
	"github.com/iwvelando/home-buyer/pkg/constants"
	"github.com/iwvelando/home-buyer/pkg/mathutil"
	"go.uber.org/zap"
)

// Compute runs the monthly projection for the given parameters and returns
// the schedule plus its summary. It is pure: identical parameters always
// produce identical output, and no state is carried between invocations.
//
// The simulation covers at most MaxScheduleMonths months and stops early
// once the loan balance reaches zero. A loan amount of zero or less (a full
// cash purchase) yields an empty schedule and a zeroed summary apart from
// the final house value.
func Compute(logger *zap.Logger, params Parameters) ([]Row, Summary) {
	if logger == nil {
		logger = zap.NewNop()
	}

	downPayment := params.DownPayment.Resolve(params.HouseValue)
	loanAmount := params.HouseValue - downPayment

	// PMI eligibility is fixed at origination from the original house value;
	// the percentage-based amount still floats with the declining balance.
	downPaymentFraction := downPayment / params.HouseValue
	pmiApplies := downPaymentFraction < constants.PMIDownPaymentCutoff

	termMonths := params.LoanTermYears * constants.MonthsPerYear
	monthlyPayment := annuity.MonthlyPayment(loanAmount, params.AnnualInterestRate, termMonths)
	monthlyAppreciationRate := params.AnnualAppreciationRate / constants.MonthsPerYear

	logger.Debug(fmt.Sprintf("monthly payment %.2f for loan amount %.2f over %d months",
		monthlyPayment, loanAmount, termMonths),
		zap.String("op", "mortgage.Compute"),
	)

	rows := make([]Row, 0, constants.MaxScheduleMonths)
	var summary Summary

	remainingBalance := loanAmount
	currentHouseValue := params.HouseValue

	for month := 1; month <= constants.MaxScheduleMonths; month++ {
		if remainingBalance <= 0 {
			break
		}

		interestPayment := annuity.InterestPayment(remainingBalance, params.AnnualInterestRate)

		// Cap the principal portions so the final month pays off exactly.
		principalPayment := mathutil.Min(monthlyPayment-interestPayment, remainingBalance)
		extraPrincipal := mathutil.Min(params.ExtraPrincipal, remainingBalance-principalPayment)

		// The house appreciates before costs are assessed, so percent-based
		// costs are charged against the compounded value.
		currentHouseValue *= 1.0 + monthlyAppreciationRate

		monthlyTaxes := params.PropertyTax.Resolve(currentHouseValue) / constants.MonthsPerYear
		monthlyInsurance := params.Insurance.Resolve(currentHouseValue) / constants.MonthsPerYear
		monthlyRepairs := params.Maintenance.Resolve(currentHouseValue) / constants.MonthsPerYear

		monthlyPMI := 0.0
		if pmiApplies && remainingBalance > 0 {
			if params.PMI.Basis == PercentBasis {
				monthlyPMI = params.PMI.Resolve(remainingBalance) / constants.MonthsPerYear
			} else {
				monthlyPMI = params.PMI.Value
			}
		}

		actualPayment := interestPayment + principalPayment + extraPrincipal +
			monthlyRepairs + params.MonthlyHOA + monthlyTaxes + monthlyInsurance + monthlyPMI

		// Equity and its opportunity cost use the balance before this
		// month's principal reduction.
		equity := currentHouseValue - remainingBalance
		costOfCapital := equity * params.AnnualInterestRate / constants.MonthsPerYear
		wasteCost := interestPayment + monthlyRepairs + params.MonthlyHOA + monthlyTaxes +
			monthlyInsurance + monthlyPMI + costOfCapital
		totalCost := actualPayment - principalPayment - extraPrincipal + costOfCapital

		remainingBalance -= principalPayment + extraPrincipal
		if mathutil.Round(remainingBalance) == 0 {
			// We will get machine error otherwise so just set to 0.
			remainingBalance = 0
		}

		summary.TotalInterest += interestPayment
		summary.TotalPrincipal += principalPayment + extraPrincipal
		summary.TotalTaxes += monthlyTaxes
		summary.TotalInsurance += monthlyInsurance
		summary.TotalMaintenance += monthlyRepairs
		summary.TotalPMI += monthlyPMI
		summary.TotalHOA += params.MonthlyHOA
		summary.TotalPayments += actualPayment
		summary.TotalCostOfCapital += costOfCapital
		summary.TotalWasteCost += wasteCost
		summary.MonthsToPayoff = month

		rows = append(rows, Row{
			Month:          month,
			Interest:       interestPayment,
			Principal:      principalPayment,
			ExtraPrincipal: extraPrincipal,
			RepairCosts:    monthlyRepairs,
			HOA:            params.MonthlyHOA,
			Taxes:          monthlyTaxes,
			Insurance:      monthlyInsurance,
			PMI:            monthlyPMI,
			ActualPayment:  actualPayment,
			CostOfCapital:  costOfCapital,
			WasteCost:      wasteCost,
			Cost:           totalCost,
			Debt:           remainingBalance,
			InterestRate:   params.AnnualInterestRate,
			HouseValue:     currentHouseValue,
			Equity:         equity,
		})
	}

	summary.FinalHouseValue = currentHouseValue
	summary.FinalEquity = summary.FinalHouseValue
	if summary.TotalPrincipal > 0 {
		summary.EffectiveInterestRate = (summary.TotalInterest / summary.TotalPrincipal) *
			(constants.MonthsPerYear / float64(summary.MonthsToPayoff))
	}

	logger.Debug(fmt.Sprintf("projection complete after %d months with %.2f total interest",
		summary.MonthsToPayoff, summary.TotalInterest),
		zap.String("op", "mortgage.Compute"),
	)

	return rows, summary
}

// Package export writes a computed projection to a comma-separated file:
// one row per month followed by an optional summary section.
package export

import (
	"bufio"
	"fmt"
	"os"

	"github.com/iwvelando/home-buyer/internal/mortgage"
)

// scheduleHeader names every monthly column in output order.
const scheduleHeader = "Month,Interest,Principal,Extra Principal,Repair Costs,HOA,Taxes,Insurance,PMI,Actual Payment,Cost of Capital,Waste Cost,Cost,Debt,Interest Rate,House Cost,Equity"

// WriteSchedule writes rows and, when present, the summary section to path,
// replacing any existing file. Currency fields carry two decimal places and
// rates four.
func WriteSchedule(path string, rows []mortgage.Row, summary *mortgage.Summary) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s, %v", path, err)
	}

	w := bufio.NewWriter(file)
	fmt.Fprintln(w, scheduleHeader)
	for _, row := range rows {
		fmt.Fprintf(w, "%d,%.2f,%.2f,%.2f,%.2f,%.2f,%.2f,%.2f,%.2f,%.2f,%.2f,%.2f,%.2f,%.2f,%.4f,%.2f,%.2f\n",
			row.Month,
			row.Interest,
			row.Principal,
			row.ExtraPrincipal,
			row.RepairCosts,
			row.HOA,
			row.Taxes,
			row.Insurance,
			row.PMI,
			row.ActualPayment,
			row.CostOfCapital,
			row.WasteCost,
			row.Cost,
			row.Debt,
			row.InterestRate,
			row.HouseValue,
			row.Equity,
		)
	}

	if summary != nil {
		fmt.Fprintln(w)
		fmt.Fprintln(w, "Summary Statistics")
		fmt.Fprintf(w, "Total Interest Paid,%.2f\n", summary.TotalInterest)
		fmt.Fprintf(w, "Total Principal Paid,%.2f\n", summary.TotalPrincipal)
		fmt.Fprintf(w, "Total Taxes Paid,%.2f\n", summary.TotalTaxes)
		fmt.Fprintf(w, "Total Insurance Paid,%.2f\n", summary.TotalInsurance)
		fmt.Fprintf(w, "Total Maintenance Paid,%.2f\n", summary.TotalMaintenance)
		fmt.Fprintf(w, "Total PMI Paid,%.2f\n", summary.TotalPMI)
		fmt.Fprintf(w, "Total HOA Paid,%.2f\n", summary.TotalHOA)
		fmt.Fprintf(w, "Total Payments,%.2f\n", summary.TotalPayments)
		fmt.Fprintf(w, "Total Cost of Capital,%.2f\n", summary.TotalCostOfCapital)
		fmt.Fprintf(w, "Total Waste Cost,%.2f\n", summary.TotalWasteCost)
		fmt.Fprintf(w, "Final House Value,%.2f\n", summary.FinalHouseValue)
		fmt.Fprintf(w, "Final Equity,%.2f\n", summary.FinalEquity)
		fmt.Fprintf(w, "Months to Payoff,%d\n", summary.MonthsToPayoff)
		fmt.Fprintf(w, "Effective Interest Rate,%.4f\n", summary.EffectiveInterestRate)
	}

	if err := w.Flush(); err != nil {
		file.Close()
		return fmt.Errorf("failed to write %s, %v", path, err)
	}
	if err := file.Close(); err != nil {
		return fmt.Errorf("failed to close %s, %v", path, err)
	}
	return nil
}

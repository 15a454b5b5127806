package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/iwvelando/home-buyer/internal/mortgage"
	"github.com/iwvelando/home-buyer/internal/wizard"
	"github.com/iwvelando/home-buyer/pkg/format"
)

// inputScreen holds the prompt and value decoration for one input step.
// Dual steps render both representations and ignore prefix and suffix.
type inputScreen struct {
	prompt string
	prefix string
	suffix string
	help   string
}

const (
	helpContinue  = "Enter/l/→: continue | Esc/h/←: back"
	helpFirst     = "Enter/l/→: continue | Esc/q: exit"
	helpDual      = "Tab: toggle between % and $ | Enter/l/→: continue | Esc/h/←: back"
	helpCalculate = "Enter/l/→: calculate | Esc/h/←: back"
)

var inputScreens = map[wizard.Step]inputScreen{
	wizard.StepHouseValue: {
		prompt: "What is the value of the house you're considering buying?",
		prefix: "$",
		help:   helpFirst,
	},
	wizard.StepDownPayment: {
		prompt: "Down Payment - Press Tab to switch between options",
		help:   helpDual,
	},
	wizard.StepHOAFee: {
		prompt: "What is the monthly HOA fee? (0 if none)",
		prefix: "$",
		help:   helpContinue,
	},
	wizard.StepInterestRate: {
		prompt: "What is your expected interest rate? (%)",
		suffix: "%",
		help:   helpContinue,
	},
	wizard.StepPropertyTax: {
		prompt: "Property Tax - Press Tab to switch between options",
		help:   helpDual,
	},
	wizard.StepInsurance: {
		prompt: "Homeowners Insurance - Press Tab to switch between options",
		help:   helpDual,
	},
	wizard.StepMaintenance: {
		prompt: "Maintenance/Repair Costs - Press Tab to switch between options",
		help:   helpDual,
	},
	wizard.StepPMI: {
		prompt: "PMI - Private Mortgage Insurance - Press Tab to switch between options",
		help:   helpDual,
	},
	wizard.StepHouseAppreciation: {
		prompt: "Annual House Appreciation/Inflation Rate (%) - can be negative",
		suffix: "%",
		help:   helpContinue,
	},
	wizard.StepLoanTerm: {
		prompt: "Loan Term (years) - common values: 15, 20, 30",
		help:   helpContinue,
	},
	wizard.StepExtraPrincipal: {
		prompt: "Extra Monthly Principal Payment (optional)",
		prefix: "$",
		help:   helpCalculate,
	},
}

func (m Model) viewInput(step wizard.Step) string {
	screen := inputScreens[step]

	sections := []string{
		titleStyle.Render("Home Buyer Calculator"),
		"",
		promptStyle.Render(screen.prompt),
	}

	if step.IsDual() {
		sections = append(sections, m.dualOptions(step))
	} else {
		value := screen.prefix + m.session.Inputs().ActiveField(step).Text() + screen.suffix
		sections = append(sections, boxStyle.Render(inputValueStyle.Render(value)))
	}

	if step == wizard.StepPMI {
		if required, ok := m.session.Inputs().PMIRequired(); ok {
			note := "(Not required: down payment >= 20%)"
			if required {
				note = "(Required: down payment < 20%)"
			}
			sections = append(sections, noteStyle.Render(note))
		}
	}

	if status := m.session.Status(); status != "" {
		sections = append(sections, "", statusStyle.Render(status))
	}

	sections = append(sections, "", helpStyle.Render(screen.help))
	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

// dualOptions renders the percent and amount representations with the active
// side marked and highlighted.
func (m Model) dualOptions(step wizard.Step) string {
	dual := m.session.Inputs().DualFor(step)

	percentLine := fmt.Sprintf("Percentage: %s%%", dual.Percent.Text())
	amountLine := fmt.Sprintf("Dollar Amount: $%s", dual.Amount.Text())
	if dual.UsePercent() {
		percentLine = activeOptionStyle.Render("▶ " + percentLine)
		amountLine = inactiveOptionStyle.Render("  " + amountLine)
	} else {
		percentLine = inactiveOptionStyle.Render("  " + percentLine)
		amountLine = activeOptionStyle.Render("▶ " + amountLine)
	}
	return boxStyle.Render(lipgloss.JoinVertical(lipgloss.Left, percentLine, amountLine))
}

var spreadsheetColumns = []struct {
	title string
	width int
}{
	{"Month", 6},
	{"Interest", 10},
	{"Principal", 10},
	{"Extra Principal", 16},
	{"Repair Costs", 13},
	{"HOA", 8},
	{"Taxes", 10},
	{"Insurance", 10},
	{"PMI", 8},
	{"Actual Payment", 15},
	{"Cost of Capital", 16},
	{"Waste Cost", 11},
	{"Cost", 10},
	{"Debt", 12},
	{"Interest Rate", 14},
	{"House Cost", 12},
	{"Equity", 12},
}

func rowCells(row mortgage.Row) []string {
	return []string{
		fmt.Sprintf("%d", row.Month),
		format.Currency(row.Interest),
		format.Currency(row.Principal),
		format.Currency(row.ExtraPrincipal),
		format.Currency(row.RepairCosts),
		format.Currency(row.HOA),
		format.Currency(row.Taxes),
		format.Currency(row.Insurance),
		format.Currency(row.PMI),
		format.Currency(row.ActualPayment),
		format.Currency(row.CostOfCapital),
		format.Currency(row.WasteCost),
		format.Currency(row.Cost),
		format.Currency(row.Debt),
		format.Percent(row.InterestRate),
		format.Currency(row.HouseValue),
		format.Currency(row.Equity),
	}
}

func padCells(cells []string) string {
	var b strings.Builder
	for i, cell := range cells {
		b.WriteString(fmt.Sprintf("%-*s", spreadsheetColumns[i].width, cell))
	}
	return strings.TrimRight(b.String(), " ")
}

// visibleRows returns how many schedule rows fit under the header and
// footer chrome.
func (m Model) visibleRows() int {
	height := m.height
	if height == 0 {
		height = 24
	}
	visible := height - 5
	if visible < 5 {
		visible = 5
	}
	return visible
}

func (m Model) viewSpreadsheet() string {
	rows := m.session.Rows()
	cursor := m.session.Cursor()
	visible := m.visibleRows()

	// Keep the selected row centered once the schedule outgrows the window.
	start := cursor - visible/2
	if start > len(rows)-visible {
		start = len(rows) - visible
	}
	if start < 0 {
		start = 0
	}
	end := start + visible
	if end > len(rows) {
		end = len(rows)
	}

	headers := make([]string, len(spreadsheetColumns))
	for i, column := range spreadsheetColumns {
		headers[i] = column.title
	}

	sections := []string{
		titleStyle.Render("Mortgage Spreadsheet"),
		tableHeaderStyle.Render("   " + padCells(headers)),
	}
	for i := start; i < end; i++ {
		line := padCells(rowCells(rows[i]))
		if i == cursor {
			sections = append(sections, selectedRowStyle.Render(">> "+line))
		} else {
			sections = append(sections, "   "+line)
		}
	}
	if len(rows) == 0 {
		sections = append(sections, noteStyle.Render("   no monthly payments: the purchase is fully covered by the down payment"))
	}

	if status := m.session.Status(); status != "" {
		sections = append(sections, "", statusStyle.Render(status))
	}
	sections = append(sections, "",
		helpStyle.Render("j/k or ↑/↓: navigate | g/G: top/bottom | s: summary | e: export CSV | h/←: back | q: quit"))
	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (m Model) viewSummary() string {
	sections := []string{
		titleStyle.Render("Mortgage Summary"),
		"",
	}

	if summary := m.session.Summary(); summary != nil {
		// Summary totals carry cents, matching the exported summary section.
		lines := []string{
			labelStyle.Render("Total Payments: ") + format.CurrencyCents(summary.TotalPayments),
			"",
			labelStyle.Render("Principal Paid: ") + gainStyle.Render(format.CurrencyCents(summary.TotalPrincipal)),
			labelStyle.Render("Interest Paid: ") + lossStyle.Render(format.CurrencyCents(summary.TotalInterest)),
			labelStyle.Render("Property Taxes: ") + spendStyle.Render(format.CurrencyCents(summary.TotalTaxes)),
			labelStyle.Render("Insurance: ") + spendStyle.Render(format.CurrencyCents(summary.TotalInsurance)),
			labelStyle.Render("Maintenance: ") + spendStyle.Render(format.CurrencyCents(summary.TotalMaintenance)),
			labelStyle.Render("PMI: ") + spendStyle.Render(format.CurrencyCents(summary.TotalPMI)),
			labelStyle.Render("HOA Fees: ") + spendStyle.Render(format.CurrencyCents(summary.TotalHOA)),
			"",
			labelStyle.Render("Cost of Capital: ") + tieUpStyle.Render(format.CurrencyCents(summary.TotalCostOfCapital)),
			labelStyle.Render("Total Waste Cost: ") + lossStyle.Render(format.CurrencyCents(summary.TotalWasteCost)),
			"",
			labelStyle.Render("Final House Value: ") + valueStyle.Render(format.CurrencyCents(summary.FinalHouseValue)),
			labelStyle.Render("Final Equity: ") + gainStyle.Render(format.CurrencyCents(summary.FinalEquity)),
			"",
			labelStyle.Render("Months to Payoff: ") + format.Years(summary.MonthsToPayoff),
			labelStyle.Render("Effective Interest Rate: ") + format.Percent(summary.EffectiveInterestRate),
		}
		sections = append(sections, boxStyle.Render(lipgloss.JoinVertical(lipgloss.Left, lines...)))
	}

	if status := m.session.Status(); status != "" {
		sections = append(sections, "", statusStyle.Render(status))
	}
	sections = append(sections, "",
		helpStyle.Render("e: export to CSV | h/←: back to spreadsheet | q: quit"))
	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

package tui

import (
	"github.com/charmbracelet/lipgloss"
)

var (
	titleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("14")).
			Bold(true)

	promptStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("7")).
			Bold(true)

	boxStyle = lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			Padding(0, 1)

	inputValueStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("11"))

	activeOptionStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("11")).
				Bold(true)

	inactiveOptionStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("8"))

	noteStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("14"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("8"))

	statusStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("11")).
			Italic(true)

	tableHeaderStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("11")).
				Bold(true)

	selectedRowStyle = lipgloss.NewStyle().
				Background(lipgloss.Color("8"))

	labelStyle = lipgloss.NewStyle().
			Bold(true)

	gainStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	lossStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	spendStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
	tieUpStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("13"))
	valueStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("14"))
)

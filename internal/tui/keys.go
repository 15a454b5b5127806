package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/iwvelando/home-buyer/internal/wizard"
)

// actionFor translates a key event into the canonical action for the current
// step. The second return is false for keys with no meaning on that step.
func actionFor(step wizard.Step, msg tea.KeyMsg) (wizard.Action, bool) {
	if step.IsInput() {
		return inputAction(msg)
	}
	if step == wizard.StepSpreadsheet {
		return spreadsheetAction(msg)
	}
	return summaryAction(msg)
}

func inputAction(msg tea.KeyMsg) (wizard.Action, bool) {
	switch key := msg.String(); key {
	case "enter", "right", "l":
		return wizard.Action{Kind: wizard.ActionAdvance}, true
	case "esc", "left", "h":
		return wizard.Action{Kind: wizard.ActionRetreat}, true
	case "q", "ctrl+c":
		return wizard.Action{Kind: wizard.ActionCancel}, true
	case "backspace":
		return wizard.Action{Kind: wizard.ActionErase}, true
	case "tab":
		return wizard.Action{Kind: wizard.ActionToggle}, true
	}
	if msg.Type == tea.KeyRunes && len(msg.Runes) == 1 {
		return wizard.Character(msg.Runes[0]), true
	}
	return wizard.Action{}, false
}

func spreadsheetAction(msg tea.KeyMsg) (wizard.Action, bool) {
	switch msg.String() {
	case "q", "Q", "ctrl+c":
		return wizard.Action{Kind: wizard.ActionQuit}, true
	case "esc", "left", "h":
		return wizard.Action{Kind: wizard.ActionRetreat}, true
	case "s", "S":
		return wizard.Action{Kind: wizard.ActionShowSummary}, true
	case "e", "E":
		return wizard.Action{Kind: wizard.ActionExport}, true
	case "j", "down":
		return wizard.Action{Kind: wizard.ActionNextRow}, true
	case "k", "up":
		return wizard.Action{Kind: wizard.ActionPreviousRow}, true
	case "g":
		return wizard.Action{Kind: wizard.ActionTop}, true
	case "G":
		return wizard.Action{Kind: wizard.ActionBottom}, true
	case "ctrl+d", "pgdown":
		return wizard.Action{Kind: wizard.ActionPageForward}, true
	case "ctrl+u", "pgup":
		return wizard.Action{Kind: wizard.ActionPageBackward}, true
	}
	return wizard.Action{}, false
}

func summaryAction(msg tea.KeyMsg) (wizard.Action, bool) {
	switch msg.String() {
	case "q", "Q", "ctrl+c":
		return wizard.Action{Kind: wizard.ActionQuit}, true
	case "esc", "left", "h":
		return wizard.Action{Kind: wizard.ActionRetreat}, true
	case "e", "E":
		return wizard.Action{Kind: wizard.ActionExport}, true
	}
	return wizard.Action{}, false
}

package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/iwvelando/home-buyer/internal/wizard"
)

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestInputStepKeys(t *testing.T) {
	tests := []struct {
		name string
		msg  tea.KeyMsg
		want wizard.ActionKind
	}{
		{"enter advances", tea.KeyMsg{Type: tea.KeyEnter}, wizard.ActionAdvance},
		{"right advances", tea.KeyMsg{Type: tea.KeyRight}, wizard.ActionAdvance},
		{"l advances", runeKey('l'), wizard.ActionAdvance},
		{"esc retreats", tea.KeyMsg{Type: tea.KeyEsc}, wizard.ActionRetreat},
		{"left retreats", tea.KeyMsg{Type: tea.KeyLeft}, wizard.ActionRetreat},
		{"h retreats", runeKey('h'), wizard.ActionRetreat},
		{"q cancels", runeKey('q'), wizard.ActionCancel},
		{"ctrl+c cancels", tea.KeyMsg{Type: tea.KeyCtrlC}, wizard.ActionCancel},
		{"backspace erases", tea.KeyMsg{Type: tea.KeyBackspace}, wizard.ActionErase},
		{"tab toggles", tea.KeyMsg{Type: tea.KeyTab}, wizard.ActionToggle},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			action, ok := actionFor(wizard.StepDownPayment, tt.msg)
			if !ok {
				t.Fatalf("actionFor() ok = false")
			}
			if action.Kind != tt.want {
				t.Errorf("actionFor() kind = %v, want %v", action.Kind, tt.want)
			}
		})
	}
}

func TestInputStepDigitsBecomeCharacters(t *testing.T) {
	action, ok := actionFor(wizard.StepHouseValue, runeKey('7'))
	if !ok {
		t.Fatal("actionFor() ok = false for a digit")
	}
	if action.Kind != wizard.ActionCharacter || action.Char != '7' {
		t.Errorf("actionFor() = %+v, want Character('7')", action)
	}

	// Letters still arrive as characters; the field filter discards them.
	action, ok = actionFor(wizard.StepHouseValue, runeKey('x'))
	if !ok || action.Kind != wizard.ActionCharacter {
		t.Errorf("actionFor('x') = %+v ok=%v, want a character action", action, ok)
	}
}

func TestSpreadsheetKeys(t *testing.T) {
	tests := []struct {
		name string
		msg  tea.KeyMsg
		want wizard.ActionKind
	}{
		{"q quits", runeKey('q'), wizard.ActionQuit},
		{"Q quits", runeKey('Q'), wizard.ActionQuit},
		{"ctrl+c quits", tea.KeyMsg{Type: tea.KeyCtrlC}, wizard.ActionQuit},
		{"esc goes back", tea.KeyMsg{Type: tea.KeyEsc}, wizard.ActionRetreat},
		{"h goes back", runeKey('h'), wizard.ActionRetreat},
		{"s shows summary", runeKey('s'), wizard.ActionShowSummary},
		{"e exports", runeKey('e'), wizard.ActionExport},
		{"j moves down", runeKey('j'), wizard.ActionNextRow},
		{"down moves down", tea.KeyMsg{Type: tea.KeyDown}, wizard.ActionNextRow},
		{"k moves up", runeKey('k'), wizard.ActionPreviousRow},
		{"up moves up", tea.KeyMsg{Type: tea.KeyUp}, wizard.ActionPreviousRow},
		{"g jumps to top", runeKey('g'), wizard.ActionTop},
		{"G jumps to bottom", runeKey('G'), wizard.ActionBottom},
		{"ctrl+d pages forward", tea.KeyMsg{Type: tea.KeyCtrlD}, wizard.ActionPageForward},
		{"pgdown pages forward", tea.KeyMsg{Type: tea.KeyPgDown}, wizard.ActionPageForward},
		{"ctrl+u pages backward", tea.KeyMsg{Type: tea.KeyCtrlU}, wizard.ActionPageBackward},
		{"pgup pages backward", tea.KeyMsg{Type: tea.KeyPgUp}, wizard.ActionPageBackward},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			action, ok := actionFor(wizard.StepSpreadsheet, tt.msg)
			if !ok {
				t.Fatalf("actionFor() ok = false")
			}
			if action.Kind != tt.want {
				t.Errorf("actionFor() kind = %v, want %v", action.Kind, tt.want)
			}
		})
	}

	// Digits mean nothing on the spreadsheet.
	if _, ok := actionFor(wizard.StepSpreadsheet, runeKey('7')); ok {
		t.Error("actionFor('7') ok = true on the spreadsheet, want ignored")
	}
}

func TestSummaryKeys(t *testing.T) {
	tests := []struct {
		name string
		msg  tea.KeyMsg
		want wizard.ActionKind
	}{
		{"q quits", runeKey('q'), wizard.ActionQuit},
		{"esc goes back", tea.KeyMsg{Type: tea.KeyEsc}, wizard.ActionRetreat},
		{"left goes back", tea.KeyMsg{Type: tea.KeyLeft}, wizard.ActionRetreat},
		{"e exports", runeKey('e'), wizard.ActionExport},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			action, ok := actionFor(wizard.StepSummary, tt.msg)
			if !ok {
				t.Fatalf("actionFor() ok = false")
			}
			if action.Kind != tt.want {
				t.Errorf("actionFor() kind = %v, want %v", action.Kind, tt.want)
			}
		})
	}

	// The summary has no forward transition.
	if _, ok := actionFor(wizard.StepSummary, runeKey('s')); ok {
		t.Error("actionFor('s') ok = true on the summary, want ignored")
	}
}

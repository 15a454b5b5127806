package wizard

// ActionKind enumerates the canonical input actions the session understands.
// The presentation layer translates key events into these; the session never
// sees raw key codes.
type ActionKind int

const (
	// ActionCharacter appends the carried rune to the active field.
	ActionCharacter ActionKind = iota

	// ActionErase removes the last character of the active field.
	ActionErase

	// ActionToggle flips a dual field between its percent and amount sides.
	ActionToggle

	// ActionAdvance moves forward one step; from the last input step it
	// runs the projection.
	ActionAdvance

	// ActionRetreat moves back one step; from the first it ends the session.
	ActionRetreat

	// ActionCancel ends the session from any input step.
	ActionCancel

	// ActionQuit ends the session from the spreadsheet or summary.
	ActionQuit

	// Spreadsheet cursor movement.
	ActionNextRow
	ActionPreviousRow
	ActionTop
	ActionBottom
	ActionPageForward
	ActionPageBackward

	// ActionShowSummary moves from the spreadsheet to the summary.
	ActionShowSummary

	// ActionExport writes the current results to the step's CSV destination.
	ActionExport
)

// Action is one canonical input delivered to the session.
type Action struct {
	Kind ActionKind
	Char rune
}

// Character builds a character-entry action carrying r.
func Character(r rune) Action {
	return Action{Kind: ActionCharacter, Char: r}
}

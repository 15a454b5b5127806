package wizard

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/iwvelando/home-buyer/internal/export"
	"github.com/iwvelando/home-buyer/internal/mortgage"
	"github.com/iwvelando/home-buyer/pkg/constants"
)

// ExportPaths names the CSV destinations for the two export contexts. Empty
// entries fall back to the package defaults.
type ExportPaths struct {
	Spreadsheet string
	Summary     string
}

// Session is the single in-memory state object for one run: the current
// step, the input buffers, and the most recent projection. It consumes
// canonical actions and never sees raw key events.
type Session struct {
	logger *zap.Logger

	step   Step
	inputs Inputs

	rows    []mortgage.Row
	summary *mortgage.Summary
	cursor  int

	// status carries the most recent export or parse outcome and clears on
	// the next action.
	status string

	spreadsheetFile string
	summaryFile     string
}

// NewSession returns a session positioned at the first input step with
// buffers seeded from defaults.
func NewSession(logger *zap.Logger, defaults Defaults, exports ExportPaths) *Session {
	if logger == nil {
		logger = zap.NewNop()
	}
	if exports.Spreadsheet == "" {
		exports.Spreadsheet = constants.DefaultSpreadsheetFile
	}
	if exports.Summary == "" {
		exports.Summary = constants.DefaultSummaryFile
	}
	return &Session{
		logger:          logger,
		step:            StepHouseValue,
		inputs:          NewInputs(defaults),
		spreadsheetFile: exports.Spreadsheet,
		summaryFile:     exports.Summary,
	}
}

// Step returns the current wizard step.
func (s *Session) Step() Step {
	return s.step
}

// Inputs exposes the editable buffers for rendering.
func (s *Session) Inputs() *Inputs {
	return &s.inputs
}

// Rows returns the projection rows from the most recent computation.
func (s *Session) Rows() []mortgage.Row {
	return s.rows
}

// Summary returns the aggregate totals, or nil before the first successful
// computation.
func (s *Session) Summary() *mortgage.Summary {
	return s.summary
}

// Cursor returns the selected spreadsheet row index.
func (s *Session) Cursor() int {
	return s.cursor
}

// Status returns the transient message from the most recent action.
func (s *Session) Status() string {
	return s.status
}

// Apply consumes one action and reports whether the session has ended.
func (s *Session) Apply(action Action) bool {
	s.status = ""
	switch {
	case s.step.IsInput():
		return s.applyInput(action)
	case s.step == StepSpreadsheet:
		return s.applySpreadsheet(action)
	default:
		return s.applySummary(action)
	}
}

func (s *Session) applyInput(action Action) bool {
	switch action.Kind {
	case ActionCharacter:
		s.inputs.ActiveField(s.step).Type(action.Char)
	case ActionErase:
		s.inputs.ActiveField(s.step).Erase()
	case ActionToggle:
		if dual := s.inputs.DualFor(s.step); dual != nil {
			dual.Toggle()
		}
	case ActionAdvance:
		s.advance()
	case ActionRetreat:
		if s.step == StepHouseValue {
			s.logger.Debug("session ended from the first input step",
				zap.String("op", "wizard.Session.Apply"),
			)
			return true
		}
		s.step--
	case ActionCancel:
		s.logger.Debug(fmt.Sprintf("session cancelled on step %s", s.step),
			zap.String("op", "wizard.Session.Apply"),
		)
		return true
	}
	return false
}

// advance moves forward one input step, or from the last input step parses
// the buffers and runs the projection. An empty active buffer blocks the
// transition without any message.
func (s *Session) advance() {
	if s.inputs.ActiveField(s.step).Empty() {
		return
	}
	if s.step != StepExtraPrincipal {
		s.step++
		return
	}

	params, err := s.inputs.Parameters()
	if err != nil {
		s.rows = nil
		s.summary = nil
		s.status = err.Error()
		s.logger.Debug(fmt.Sprintf("projection not run, %v", err),
			zap.String("op", "wizard.Session.advance"),
		)
		return
	}

	rows, summary := mortgage.Compute(s.logger, params)
	s.rows = rows
	s.summary = &summary
	s.cursor = 0
	s.step = StepSpreadsheet
	s.logger.Debug(fmt.Sprintf("projection computed over %d months", summary.MonthsToPayoff),
		zap.String("op", "wizard.Session.advance"),
	)
}

func (s *Session) applySpreadsheet(action Action) bool {
	switch action.Kind {
	case ActionQuit:
		return true
	case ActionRetreat:
		s.step = StepExtraPrincipal
	case ActionShowSummary:
		s.step = StepSummary
	case ActionExport:
		s.export(s.spreadsheetFile)
	case ActionNextRow:
		s.moveCursor(1)
	case ActionPreviousRow:
		s.moveCursor(-1)
	case ActionTop:
		s.cursor = 0
	case ActionBottom:
		if len(s.rows) > 0 {
			s.cursor = len(s.rows) - 1
		}
	case ActionPageForward:
		s.moveCursor(constants.SpreadsheetPageStride)
	case ActionPageBackward:
		s.moveCursor(-constants.SpreadsheetPageStride)
	}
	return false
}

func (s *Session) applySummary(action Action) bool {
	switch action.Kind {
	case ActionQuit:
		return true
	case ActionRetreat:
		s.step = StepSpreadsheet
	case ActionExport:
		s.export(s.summaryFile)
	}
	return false
}

// moveCursor shifts the selected row by delta, clamped to the row range.
// No-op while there are no rows.
func (s *Session) moveCursor(delta int) {
	if len(s.rows) == 0 {
		return
	}
	next := s.cursor + delta
	if next < 0 {
		next = 0
	}
	if last := len(s.rows) - 1; next > last {
		next = last
	}
	s.cursor = next
}

// export writes the current projection to path and records the outcome in
// the status message. Wizard state is never changed by an export.
func (s *Session) export(path string) {
	if err := export.WriteSchedule(path, s.rows, s.summary); err != nil {
		s.status = fmt.Sprintf("export failed: %v", err)
		s.logger.Error(fmt.Sprintf("failed to export to %s, %v", path, err),
			zap.String("op", "wizard.Session.export"),
		)
		return
	}
	s.status = fmt.Sprintf("exported to %s", path)
	s.logger.Info(fmt.Sprintf("exported to %s", path),
		zap.String("op", "wizard.Session.export"),
	)
}

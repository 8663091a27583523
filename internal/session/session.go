// Package session holds the per-run controller: the report being edited, the
// active view mode and the generation state machine.
package session

import (
	"time"

	"github.com/alexanderramin/genbaflow/internal/domain"
)

// GenericFailureMessage is the only failure text shown to users; causes are
// logged by the generation layer.
const GenericFailureMessage = "Report generation failed. Check the connection and settings, then try again."

// Session owns the single report of a run. It is mutated only from the UI
// event loop and needs no locking.
type Session struct {
	Report *domain.DailyReportData
	Mode   domain.AppMode

	state State
	seq   uint64
}

// New starts a session with a fresh report dated now, in field-entry mode.
func New(now time.Time) *Session {
	return NewWithReport(domain.NewDailyReport(now))
}

// NewWithReport starts a session over an existing report.
func NewWithReport(report *domain.DailyReportData) *Session {
	return &Session{
		Report: report,
		Mode:   domain.ModeField,
		state:  Idle{},
	}
}

// State returns the current generation state.
func (s *Session) State() State {
	return s.state
}

// Generating reports whether a request is in flight.
func (s *Session) Generating() bool {
	return s.state.Kind() == StateGenerating
}

// Begin enters the generating state from any state and returns the request's
// sequence number with a snapshot of the report to send.
func (s *Session) Begin() (uint64, domain.DailyReportData) {
	s.seq++
	s.state = Generating{Seq: s.seq}
	return s.seq, s.Report.Clone()
}

// Complete applies the outcome of request seq. Outcomes of superseded requests
// are dropped and Complete returns false. A failure replaces any previous
// successful result.
func (s *Session) Complete(seq uint64, text string, err error) bool {
	if seq != s.seq || s.state.Kind() != StateGenerating {
		return false
	}
	if err != nil {
		s.state = Failed{Message: GenericFailureMessage}
		return true
	}
	s.state = Done{Text: text}
	return true
}

// Result returns the generated text when the session is done.
func (s *Session) Result() (string, bool) {
	d, ok := s.state.(Done)
	return d.Text, ok
}

// ToggleMode switches between field-entry and admin views. Generation state
// is untouched.
func (s *Session) ToggleMode() domain.AppMode {
	s.Mode = s.Mode.Toggle()
	return s.Mode
}

// Totals returns the live man-hours and cost of the report.
func (s *Session) Totals() domain.Totals {
	return s.Report.Totals()
}

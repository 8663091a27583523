package cli

import "github.com/alexanderramin/genbaflow/internal/session"

// SharedState holds context shared across all views via pointer.
type SharedState struct {
	App     *App
	Session *session.Session

	// SpinnerFrame is the current spinner frame while a request is in flight.
	SpinnerFrame string

	// Terminal dimensions
	Width  int
	Height int
}

// ContentHeight returns the available height for view content,
// accounting for header (2 lines: title + separator) and
// status bar (2 lines: separator + hints).
func (s *SharedState) ContentHeight() int {
	h := s.Height - 4
	if h < 1 {
		return 1
	}
	return h
}

// ContentWidth returns the wrap width for rendered text.
func (s *SharedState) ContentWidth() int {
	if s.Width <= 4 {
		return 80
	}
	return s.Width - 4
}

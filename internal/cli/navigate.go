package cli

import (
	"errors"

	"github.com/alexanderramin/genbaflow/internal/cli/formatter"
	"github.com/alexanderramin/genbaflow/internal/clipboard"
	"github.com/alexanderramin/genbaflow/internal/domain"
	tea "github.com/charmbracelet/bubbletea"
)

// Messages used by views to request transitions from the appModel.

// pushViewMsg pushes a new view onto the navigation stack.
type pushViewMsg struct {
	view View
}

// noticeMsg carries a one-line confirmation or error for the status bar.
type noticeMsg struct {
	text string
}

// wizardCompleteMsg is sent when a wizard form completes or is cancelled.
// The appModel handles it atomically: pop the wizard view, then run nextCmd.
type wizardCompleteMsg struct {
	nextCmd tea.Cmd
}

// generateRequestMsg asks the appModel to start a generation.
type generateRequestMsg struct{}

// generationDoneMsg carries the outcome of request seq back to the event loop.
type generationDoneMsg struct {
	seq  uint64
	text string
	err  error
}

func pushView(v View) tea.Cmd {
	return func() tea.Msg { return pushViewMsg{view: v} }
}

func noticeCmd(text string) tea.Cmd {
	return func() tea.Msg { return noticeMsg{text: text} }
}

func requestGenerate() tea.Msg { return generateRequestMsg{} }

// wizardCompleteNotice pops the wizard and shows text.
func wizardCompleteNotice(text string) tea.Msg {
	return wizardCompleteMsg{nextCmd: noticeCmd(text)}
}

// errorNotice renders err for the status bar. Domain errors get a
// user-oriented sentence; anything else is shown as is.
func errorNotice(err error) string {
	var msg string
	switch {
	case errors.Is(err, domain.ErrLastWorker):
		msg = "At least one worker must remain on the report."
	case errors.Is(err, domain.ErrWorkerNotFound):
		msg = "That worker no longer exists."
	case errors.Is(err, clipboard.ErrUnsupported):
		msg = "Clipboard is not available in this terminal."
	default:
		msg = err.Error()
	}
	return formatter.StyleRed.Render("Error: ") + msg
}

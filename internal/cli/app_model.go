package cli

import (
	"context"
	"strings"

	"github.com/alexanderramin/genbaflow/internal/cli/formatter"
	"github.com/alexanderramin/genbaflow/internal/domain"
	"github.com/alexanderramin/genbaflow/internal/intelligence"
	"github.com/alexanderramin/genbaflow/internal/session"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"
)

// appModel is the root bubbletea Model for the TUI. It owns the session,
// a view stack with the report editor at the bottom, and the generation
// lifecycle.
type appModel struct {
	state     *SharedState
	viewStack []View
	spinner   spinner.Model
	quitting  bool

	// Transient confirmation or error shown in the status bar until the
	// next key press.
	notice string
}

func newAppModel(app *App) appModel {
	state := &SharedState{
		App:     app,
		Session: session.New(app.now()),
	}

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = formatter.StylePurple

	m := appModel{
		state:   state,
		spinner: sp,
	}
	m.viewStack = []View{newReportView(state)}
	return m
}

// activeView returns the top view on the stack, or nil.
func (m *appModel) activeView() View {
	if len(m.viewStack) == 0 {
		return nil
	}
	return m.viewStack[len(m.viewStack)-1]
}

// setActiveView replaces the top of the view stack.
func (m *appModel) setActiveView(v View) {
	if len(m.viewStack) > 0 {
		m.viewStack[len(m.viewStack)-1] = v
	}
}

// ── bubbletea interface ──────────────────────────────────────────────────────

func (m appModel) Init() tea.Cmd {
	if v := m.activeView(); v != nil {
		return v.Init()
	}
	return nil
}

func (m appModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.WindowSizeMsg:
		m.state.Width = msg.Width
		m.state.Height = msg.Height
		if v := m.activeView(); v != nil {
			updated, cmd := v.Update(msg)
			m.setActiveView(updated.(View))
			return m, cmd
		}
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case pushViewMsg:
		m.notice = ""
		m.viewStack = append(m.viewStack, msg.view)
		return m, msg.view.Init()

	case wizardCompleteMsg:
		if len(m.viewStack) > 1 {
			m.viewStack = m.viewStack[:len(m.viewStack)-1]
		}
		return m, msg.nextCmd

	case noticeMsg:
		m.notice = msg.text
		return m, nil

	case generateRequestMsg:
		return m.startGeneration()

	case generationDoneMsg:
		if !m.state.Session.Complete(msg.seq, msg.text, msg.err) {
			m.state.App.logger().Debug("dropping stale generation result", zap.Uint64("seq", msg.seq))
		}
		m.state.SpinnerFrame = ""
		return m, nil

	case spinner.TickMsg:
		if !m.state.Session.Generating() {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		m.state.SpinnerFrame = m.spinner.View()
		return m, cmd
	}

	if v := m.activeView(); v != nil {
		updated, cmd := v.Update(msg)
		m.setActiveView(updated.(View))
		return m, cmd
	}
	return m, nil
}

func (m appModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.Type == tea.KeyCtrlC {
		m.quitting = true
		return m, tea.Quit
	}

	m.notice = ""

	// Forms receive every key so typed text is never taken as a shortcut.
	if v := m.activeView(); v != nil && viewCapturesInput(v) {
		updated, cmd := v.Update(msg)
		m.setActiveView(updated.(View))
		return m, cmd
	}

	switch {
	case msg.String() == "q":
		m.quitting = true
		return m, tea.Quit

	case msg.Type == tea.KeyTab:
		m.state.Session.ToggleMode()
		return m, nil

	case msg.Type == tea.KeyEsc:
		if len(m.viewStack) > 1 {
			m.viewStack = m.viewStack[:len(m.viewStack)-1]
		}
		return m, nil
	}

	if v := m.activeView(); v != nil {
		updated, cmd := v.Update(msg)
		m.setActiveView(updated.(View))
		return m, cmd
	}
	return m, nil
}

// startGeneration begins a request unless one is already in flight.
func (m appModel) startGeneration() (tea.Model, tea.Cmd) {
	if m.state.Session.Generating() {
		m.notice = formatter.Dim("Already generating; please wait.")
		return m, nil
	}
	seq, snapshot := m.state.Session.Begin()
	reports, err := m.state.App.reports()
	if err != nil {
		// An unusable client is a failed generation like any other.
		m.state.App.logger().Warn("building report service failed", zap.Error(err))
		m.state.Session.Complete(seq, "", err)
		return m, nil
	}

	m.state.SpinnerFrame = m.spinner.View()
	return m, tea.Batch(generateCmd(reports, seq, snapshot), m.spinner.Tick)
}

// generateCmd runs one request against snapshot off the event loop.
func generateCmd(reports intelligence.ReportService, seq uint64, snapshot domain.DailyReportData) tea.Cmd {
	return func() tea.Msg {
		text, err := reports.Generate(context.Background(), snapshot)
		return generationDoneMsg{seq: seq, text: text, err: err}
	}
}

func (m appModel) View() string {
	if m.quitting {
		return ""
	}

	var sections []string
	sections = append(sections, m.renderHeader())
	if v := m.activeView(); v != nil {
		sections = append(sections, v.View())
	}
	sections = append(sections, m.renderStatusBar())

	result := strings.Join(sections, "\n")

	// Pad to terminal height to prevent stale line artifacts from
	// bubbletea's line-diff renderer in alt-screen mode.
	if m.state.Height > 0 {
		lines := strings.Count(result, "\n") + 1
		if lines < m.state.Height {
			result += strings.Repeat("\n", m.state.Height-lines)
		}
	}
	return result
}

// ── rendering helpers ────────────────────────────────────────────────────────

func (m *appModel) renderHeader() string {
	title := formatter.StyleHeader.Render("genbaflow")

	var crumbs []string
	for _, v := range m.viewStack {
		if t := v.Title(); t != "" {
			crumbs = append(crumbs, t)
		}
	}
	breadcrumb := ""
	if len(crumbs) > 1 {
		breadcrumb = " " + formatter.Dim("›") + " " + formatter.Dim(strings.Join(crumbs[1:], " › "))
	}

	header := title + "  " + formatter.ModeTabs(m.state.Session.Mode) +
		"  " + formatter.StateIndicator(m.state.Session.State().Kind()) + breadcrumb

	sep := formatter.Dim(strings.Repeat("─", max(m.state.Width, 20)))
	return header + "\n" + sep
}

func (m *appModel) renderStatusBar() string {
	var hints []string
	if m.notice != "" {
		hints = append(hints, m.notice)
	} else if v := m.activeView(); v != nil {
		for _, b := range v.ShortHelp() {
			hints = append(hints, formatter.Dim(b.Help().Key+": "+b.Help().Desc))
		}
		if !viewCapturesInput(v) {
			hints = append(hints, formatter.Dim("tab: switch mode"), formatter.Dim("q: quit"))
		}
	}

	sep := formatter.Dim(strings.Repeat("─", max(m.state.Width, 20)))
	return sep + "\n" + strings.Join(hints, "  ")
}

// viewCapturesInput returns true if the active view has its own text input
// and should receive all key events.
func viewCapturesInput(v View) bool {
	return v != nil && v.ID() == ViewForm
}

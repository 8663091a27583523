package cli

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/genbaflow/internal/cli/formatter"
	"github.com/alexanderramin/genbaflow/internal/clipboard"
	"github.com/alexanderramin/genbaflow/internal/domain"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// minResultLines keeps a few rows of the result pane visible on short terminals.
const minResultLines = 3

type reportKeyMap struct {
	Up       key.Binding
	Down     key.Binding
	Project  key.Binding
	Add      key.Binding
	Remove   key.Binding
	Edit     key.Binding
	Notes    key.Binding
	EditRate key.Binding
	Generate key.Binding
	Copy     key.Binding
	PageUp   key.Binding
	PageDown key.Binding
}

var reportKeys = reportKeyMap{
	Up:       key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
	Down:     key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
	Project:  key.NewBinding(key.WithKeys("p"), key.WithHelp("p", "project")),
	Add:      key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "add worker")),
	Remove:   key.NewBinding(key.WithKeys("x"), key.WithHelp("x", "remove")),
	Edit:     key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "edit worker")),
	Notes:    key.NewBinding(key.WithKeys("n"), key.WithHelp("n", "work notes")),
	EditRate: key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "edit rate")),
	Generate: key.NewBinding(key.WithKeys("g"), key.WithHelp("g", "generate")),
	Copy:     key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "copy")),
	PageUp:   key.NewBinding(key.WithKeys("pgup"), key.WithHelp("pgup", "scroll report")),
	PageDown: key.NewBinding(key.WithKeys("pgdown"), key.WithHelp("pgdn", "scroll report")),
}

// reportView is the home view. It renders the field-entry or admin layout
// depending on the session mode, and the generation result below either.
type reportView struct {
	state  *SharedState
	cursor int
	result viewport.Model
	shown  string // content currently loaded into result
}

func newReportView(state *SharedState) *reportView {
	return &reportView{state: state, result: viewport.New(0, 0)}
}

func (v *reportView) Init() tea.Cmd { return nil }

func (v *reportView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return v, nil
	}

	report := v.state.Session.Report
	v.clampCursor()

	switch {
	case key.Matches(keyMsg, reportKeys.Up):
		if v.cursor > 0 {
			v.cursor--
		}
		return v, nil
	case key.Matches(keyMsg, reportKeys.Down):
		if v.cursor < len(report.Workers)-1 {
			v.cursor++
		}
		return v, nil
	case key.Matches(keyMsg, reportKeys.Generate):
		return v, requestGenerate
	case key.Matches(keyMsg, reportKeys.Copy):
		return v, v.copyResult()
	case key.Matches(keyMsg, reportKeys.PageUp):
		v.layoutResult(lipgloss.Height(v.renderForm()))
		v.result.HalfPageUp()
		return v, nil
	case key.Matches(keyMsg, reportKeys.PageDown):
		v.layoutResult(lipgloss.Height(v.renderForm()))
		v.result.HalfPageDown()
		return v, nil
	}

	if v.state.Session.Mode == domain.ModeAdmin {
		if key.Matches(keyMsg, reportKeys.EditRate) {
			return v, pushView(newRateFormView(v.state, v.selectedID()))
		}
		return v, nil
	}

	switch {
	case key.Matches(keyMsg, reportKeys.Project):
		return v, pushView(newProjectFormView(v.state))
	case key.Matches(keyMsg, reportKeys.Notes):
		return v, pushView(newNarrativeFormView(v.state))
	case key.Matches(keyMsg, reportKeys.Edit):
		return v, pushView(newWorkerFormView(v.state, v.selectedID()))
	case key.Matches(keyMsg, reportKeys.Add):
		report.AddWorker()
		v.cursor = len(report.Workers) - 1
		return v, noticeCmd(formatter.StyleGreen.Render(
			fmt.Sprintf("Added worker #%d with the default shift.", len(report.Workers))))
	case key.Matches(keyMsg, reportKeys.Remove):
		if err := report.RemoveWorker(v.selectedID()); err != nil {
			return v, noticeCmd(errorNotice(err))
		}
		v.clampCursor()
		return v, noticeCmd(formatter.Dim("Worker removed."))
	}
	return v, nil
}

// copyResult copies the last generated text. Nothing is copied unless the
// session holds a successful result.
func (v *reportView) copyResult() tea.Cmd {
	text, ok := v.state.Session.Result()
	if !ok {
		return noticeCmd(formatter.Dim("Nothing to copy yet."))
	}
	clip := v.state.App.Clipboard
	if clip == nil {
		return noticeCmd(errorNotice(clipboard.ErrUnsupported))
	}
	return func() tea.Msg {
		if err := clip.Copy(text); err != nil {
			return noticeMsg{text: errorNotice(err)}
		}
		return noticeMsg{text: formatter.StyleGreen.Render("Copied report to clipboard.")}
	}
}

func (v *reportView) selectedID() string {
	workers := v.state.Session.Report.Workers
	if v.cursor < 0 || v.cursor >= len(workers) {
		return ""
	}
	return workers[v.cursor].ID
}

func (v *reportView) clampCursor() {
	n := len(v.state.Session.Report.Workers)
	if v.cursor >= n {
		v.cursor = n - 1
	}
	if v.cursor < 0 {
		v.cursor = 0
	}
}

func (v *reportView) View() string {
	form := v.renderForm()
	v.layoutResult(lipgloss.Height(form))
	return form + "\n" + v.result.View()
}

// renderForm renders everything above the result pane.
func (v *reportView) renderForm() string {
	report := v.state.Session.Report
	var b strings.Builder

	if v.state.Session.Mode == domain.ModeAdmin {
		b.WriteString(formatter.Header("Labor cost") + "\n")
		b.WriteString(formatter.FormatAdminWorkers(report.Workers, v.cursor) + "\n")
		b.WriteString(formatter.FormatTotals(report.Totals()) + "\n\n")
	} else {
		b.WriteString(formatter.Header("Site") + "\n")
		b.WriteString(formatter.FormatReportFields(*report) + "\n\n")
		b.WriteString(formatter.Header("Workers") + "\n")
		b.WriteString(formatter.FormatFieldWorkers(report.Workers, v.cursor) + "\n")
	}

	b.WriteString(formatter.Header("Daily report"))
	return b.String()
}

// layoutResult fits the result pane into the rows left below the form and
// loads the current generation state into it. A long report scrolls.
func (v *reportView) layoutResult(formLines int) {
	content := formatter.FormatResult(v.state.Session.State(), v.state.SpinnerFrame, v.state.ContentWidth())

	height := max(v.state.ContentHeight()-formLines, minResultLines)
	height = min(height, lipgloss.Height(content))

	v.result.Width = v.state.ContentWidth()
	v.result.Height = height
	if content != v.shown {
		v.shown = content
		v.result.SetContent(content)
		v.result.GotoTop()
	}
}

func (v *reportView) ID() ViewID    { return ViewReport }
func (v *reportView) Title() string { return "Report" }

func (v *reportView) ShortHelp() []key.Binding {
	if v.state.Session.Mode == domain.ModeAdmin {
		return []key.Binding{reportKeys.Up, reportKeys.Down, reportKeys.EditRate, reportKeys.Generate, reportKeys.Copy, reportKeys.PageDown}
	}
	return []key.Binding{
		reportKeys.Up, reportKeys.Down, reportKeys.Project, reportKeys.Add,
		reportKeys.Remove, reportKeys.Edit, reportKeys.Notes, reportKeys.Generate, reportKeys.Copy,
		reportKeys.PageDown,
	}
}

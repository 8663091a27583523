package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/alexanderramin/genbaflow/internal/cli/formatter"
	"github.com/alexanderramin/genbaflow/internal/domain"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
)

func formErrorOutput(err error) tea.Msg {
	return noticeMsg{text: errorNotice(err)}
}

func formSuccessOutput(msg string) tea.Msg {
	return noticeMsg{text: formatter.StyleGreen.Render(msg)}
}

// wizardErrorView returns a wizard that just shows an error and pops back.
func wizardErrorView(state *SharedState, title string, err error) View {
	form := newForm(huh.NewGroup(huh.NewNote().Title("Error").Description(err.Error())))
	return newWizardView(state, title, form, func() tea.Cmd {
		return func() tea.Msg { return formErrorOutput(err) }
	})
}

// ── worker ───────────────────────────────────────────────────────────────────

type workerFields struct {
	name     string
	start    string
	end      string
	breakMin string
}

// newWorkerFormView edits a worker's name and shift.
func newWorkerFormView(state *SharedState, workerID string) View {
	w, err := state.Session.Report.Worker(workerID)
	if err != nil {
		return wizardErrorView(state, "Edit Worker", err)
	}

	fields := &workerFields{
		name:     w.Name,
		start:    w.StartTime,
		end:      w.EndTime,
		breakMin: strconv.Itoa(w.BreakMinutes),
	}

	form := newForm(
		huh.NewGroup(
			huh.NewInput().Title("Name").Placeholder("田中").Value(&fields.name),
			clockInput("Start", &fields.start),
			clockInput("End", &fields.end),
			huh.NewInput().
				Title("Break (minutes)").
				Placeholder(strconv.Itoa(domain.DefaultBreakMinutes)).
				Value(&fields.breakMin).
				Validate(validateBreak),
		),
	)

	return newWizardView(state, "Edit Worker", form, func() tea.Cmd {
		return func() tea.Msg { return applyWorkerEdit(state.Session.Report, workerID, fields) }
	})
}

func applyWorkerEdit(report *domain.DailyReportData, workerID string, f *workerFields) tea.Msg {
	start := strings.TrimSpace(f.start)
	end := strings.TrimSpace(f.end)
	if err := domain.ValidateClock(start); err != nil {
		return formErrorOutput(err)
	}
	if err := domain.ValidateClock(end); err != nil {
		return formErrorOutput(err)
	}
	if err := domain.ValidateBreak(f.breakMin); err != nil {
		return formErrorOutput(err)
	}
	breakMin, _ := strconv.Atoi(strings.TrimSpace(f.breakMin))

	var updated domain.WorkerEntry
	err := report.UpdateWorker(workerID, func(w *domain.WorkerEntry) {
		w.Name = strings.TrimSpace(f.name)
		w.StartTime = start
		w.EndTime = end
		w.BreakMinutes = breakMin
		updated = *w
	})
	if err != nil {
		return formErrorOutput(err)
	}
	return formSuccessOutput(fmt.Sprintf("Updated %s: %s worked.",
		workerLabel(updated), formatter.FormatHours(updated.Hours())))
}

// ── hourly rate ──────────────────────────────────────────────────────────────

// newRateFormView edits a worker's hourly rate from the admin view.
func newRateFormView(state *SharedState, workerID string) View {
	w, err := state.Session.Report.Worker(workerID)
	if err != nil {
		return wizardErrorView(state, "Hourly Rate", err)
	}

	rate := ""
	if w.HourlyRate > 0 {
		rate = strconv.FormatFloat(w.HourlyRate, 'f', -1, 64)
	}

	form := newForm(
		huh.NewGroup(
			huh.NewInput().
				Title(fmt.Sprintf("Hourly rate for %s (yen)", workerLabel(*w))).
				Placeholder("2500").
				Value(&rate).
				Validate(validateRate),
		),
	)

	return newWizardView(state, "Hourly Rate", form, func() tea.Cmd {
		return func() tea.Msg { return applyRateEdit(state.Session.Report, workerID, rate) }
	})
}

func applyRateEdit(report *domain.DailyReportData, workerID, rate string) tea.Msg {
	if err := validateRate(rate); err != nil {
		return formErrorOutput(err)
	}
	var updated domain.WorkerEntry
	err := report.UpdateWorker(workerID, func(w *domain.WorkerEntry) {
		w.HourlyRate = parseRate(rate)
		updated = *w
	})
	if err != nil {
		return formErrorOutput(err)
	}
	return formSuccessOutput(fmt.Sprintf("%s: %s, cost %s.",
		workerLabel(updated), formatter.FormatRate(updated.HourlyRate),
		formatter.FormatCost(domain.WorkerCost(updated))))
}

// ── project ──────────────────────────────────────────────────────────────────

type projectFields struct {
	name string
	date string
}

// newProjectFormView edits the project name and report date.
func newProjectFormView(state *SharedState) View {
	r := state.Session.Report
	fields := &projectFields{name: r.ProjectName, date: r.Date}

	form := newForm(
		huh.NewGroup(
			huh.NewInput().Title("Project name").Placeholder("佐藤邸 新築工事").Value(&fields.name),
			huh.NewInput().
				Title("Date (YYYY-MM-DD)").
				Placeholder(r.Date).
				Value(&fields.date).
				Validate(validateOptionalDate),
		),
	)

	return newWizardView(state, "Project", form, func() tea.Cmd {
		return func() tea.Msg { return applyProjectEdit(state.Session.Report, fields) }
	})
}

func applyProjectEdit(report *domain.DailyReportData, f *projectFields) tea.Msg {
	if err := validateOptionalDate(f.date); err != nil {
		return formErrorOutput(err)
	}
	report.ProjectName = strings.TrimSpace(f.name)
	if d := strings.TrimSpace(f.date); d != "" {
		report.Date = d
	}
	return formSuccessOutput("Project updated.")
}

// ── narrative ────────────────────────────────────────────────────────────────

type narrativeFields struct {
	work      string
	safety    string
	machines  string
	materials string
	tomorrow  string
	memo      string
}

// newNarrativeFormView edits the free-text sections of the report, one page
// per topic.
func newNarrativeFormView(state *SharedState) View {
	r := state.Session.Report
	fields := &narrativeFields{
		work:      r.WorkContent,
		safety:    r.SafetyNotes,
		machines:  r.MachinesUsed,
		materials: r.MaterialsProcurement,
		tomorrow:  r.TomorrowPlan,
		memo:      r.Memo,
	}

	form := newForm(
		huh.NewGroup(
			notesInput("Work content", "基礎型枠の組立", &fields.work),
			notesInput("Safety notes", "開口部の養生", &fields.safety),
		),
		huh.NewGroup(
			notesInput("Machines used", "バックホウ", &fields.machines),
			notesInput("Materials procurement", "型枠材 20枚", &fields.materials),
		),
		huh.NewGroup(
			notesInput("Tomorrow's plan", "コンクリート打設", &fields.tomorrow),
			notesInput("Memo", "", &fields.memo),
		),
	)

	return newWizardView(state, "Work Notes", form, func() tea.Cmd {
		return func() tea.Msg { return applyNarrativeEdit(state.Session.Report, fields) }
	})
}

func applyNarrativeEdit(report *domain.DailyReportData, f *narrativeFields) tea.Msg {
	report.WorkContent = f.work
	report.SafetyNotes = f.safety
	report.MachinesUsed = f.machines
	report.MaterialsProcurement = f.materials
	report.TomorrowPlan = f.tomorrow
	report.Memo = f.memo
	return formSuccessOutput("Work notes updated.")
}

func workerLabel(w domain.WorkerEntry) string {
	if strings.TrimSpace(w.Name) == "" {
		return "unnamed worker"
	}
	return w.Name
}

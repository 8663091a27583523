package formatter

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/alexanderramin/genbaflow/internal/domain"
	"github.com/alexanderramin/genbaflow/internal/session"
)

const shareBarWidth = 12

// FormatFieldWorkers renders the field-entry worker table: name, shift, break
// and hours. Rates are not shown.
func FormatFieldWorkers(workers []domain.WorkerEntry, cursor int) string {
	headers := []string{"#", "NAME", "START", "END", "BREAK", "HOURS"}
	rows := make([][]string, 0, len(workers))
	for i, w := range workers {
		rows = append(rows, []string{
			fmt.Sprintf("%d", i+1),
			Placeholder(w.Name, "(unnamed)"),
			w.StartTime,
			w.EndTime,
			FormatMinutes(w.BreakMinutes),
			FormatHours(w.Hours()),
		})
	}
	return RenderTable(headers, rows, cursor)
}

// FormatAdminWorkers renders the admin worker table with rates, per-worker
// cost and each worker's share of the day's cost.
func FormatAdminWorkers(workers []domain.WorkerEntry, cursor int) string {
	totals := domain.CalculateTotals(workers)
	headers := []string{"#", "NAME", "HOURS", "RATE", "COST", "SHARE"}
	rows := make([][]string, 0, len(workers))
	for i, w := range workers {
		cost := domain.WorkerCost(w)
		rows = append(rows, []string{
			fmt.Sprintf("%d", i+1),
			Placeholder(w.Name, "(unnamed)"),
			FormatHours(w.Hours()),
			FormatRate(w.HourlyRate),
			FormatCost(cost),
			RenderShare(cost, totals.Cost, shareBarWidth),
		})
	}
	return RenderTable(headers, rows, cursor)
}

// FormatTotals renders the two summary figures shown in admin mode.
func FormatTotals(t domain.Totals) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s  %s\n", StyleDim.Render("Total man-hours"), StyleBold.Render(FormatHours(t.ManHours)))
	fmt.Fprintf(&b, "%s  %s", StyleDim.Render("Total labor cost"), StyleYellow.Bold(true).Render(FormatCost(t.Cost)))
	return RenderBox("Totals", b.String())
}

// FormatReportFields renders the project line and the narrative fields, with
// dim placeholders for anything left empty.
func FormatReportFields(r domain.DailyReportData) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s %s   %s %s\n\n",
		StyleDim.Render("Project:"), Placeholder(r.ProjectName, "(not set)"),
		StyleDim.Render("Date:"), r.Date)

	fields := []struct{ label, value string }{
		{"Work content", r.WorkContent},
		{"Machines", r.MachinesUsed},
		{"Materials", r.MaterialsProcurement},
		{"Safety", r.SafetyNotes},
		{"Tomorrow", r.TomorrowPlan},
		{"Memo", r.Memo},
	}
	for _, f := range fields {
		fmt.Fprintf(&b, "%s %s\n", StyleDim.Render(fmt.Sprintf("%-13s", f.label)), firstLine(f.value))
	}
	return strings.TrimRight(b.String(), "\n")
}

// FormatResult renders the generation pane for the current state. spinner is
// the current spinner frame shown while a request is in flight.
func FormatResult(state session.State, spinner string, width int) string {
	switch s := state.(type) {
	case session.Generating:
		return fmt.Sprintf("%s %s", spinner, StylePurple.Render("Generating report..."))
	case session.Done:
		// Shown as generated so it can be copied straight into a chat thread.
		return lipgloss.NewStyle().Width(width).Render(s.Text)
	case session.Failed:
		return StyleRed.Render(s.Message)
	default:
		return Dim("No report generated yet. Press g to generate.")
	}
}

// FormatCalc renders the output of the calc command.
func FormatCalc(w domain.WorkerEntry) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s %s〜%s (break %s)\n", StyleDim.Render("Shift:"), w.StartTime, w.EndTime, FormatMinutes(w.BreakMinutes))
	fmt.Fprintf(&b, "%s %s\n", StyleDim.Render("Hours:"), StyleBold.Render(FormatHours(w.Hours())))
	if w.HourlyRate > 0 {
		fmt.Fprintf(&b, "%s %s\n", StyleDim.Render("Cost: "), StyleYellow.Render(FormatCost(domain.WorkerCost(w))))
	}
	return b.String()
}

func firstLine(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return Dim("—")
	}
	line, rest, found := strings.Cut(s, "\n")
	if found && strings.TrimSpace(rest) != "" {
		return line + Dim(" …")
	}
	return line
}

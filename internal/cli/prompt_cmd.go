package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/alexanderramin/genbaflow/internal/domain"
	"github.com/alexanderramin/genbaflow/internal/intelligence"
	"github.com/spf13/cobra"
)

func newPromptCmd(app *App) *cobra.Command {
	var project, date string
	var workers []string
	var notes reportNotes

	cmd := &cobra.Command{
		Use:   "prompt",
		Short: "Print the generation prompt for a report built from flags (no network)",
		Long: `Print the prompt that would be sent to the generation service.

Workers are given as --worker "name,start,end,break", e.g. --worker "田中,08:00,17:00,60".
Omitted shift parts fall back to 08:00, 17:00 and 60 minutes.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			report := domain.NewDailyReport(app.now())
			report.ProjectName = project
			if date != "" {
				report.Date = date
			}
			if len(workers) > 0 {
				report.Workers = report.Workers[:0]
				for _, arg := range workers {
					w, err := parseWorkerFlag(arg)
					if err != nil {
						return err
					}
					report.Workers = append(report.Workers, w)
				}
			}
			notes.applyTo(report)

			fmt.Fprintln(cmd.OutOrStdout(), intelligence.ComposeReportPrompt(*report))
			return nil
		},
	}

	f := cmd.Flags()
	f.StringVar(&project, "project", "", "Project name")
	f.StringVar(&date, "date", "", "Report date (YYYY-MM-DD, default today)")
	f.StringArrayVar(&workers, "worker", nil, `Worker as "name,start,end,break" (repeatable)`)
	f.StringVar(&notes.work, "work", "", "Work content")
	f.StringVar(&notes.machines, "machines", "", "Machines used")
	f.StringVar(&notes.materials, "materials", "", "Materials procurement")
	f.StringVar(&notes.safety, "safety", domain.DefaultSafetyNotes, "Safety notes")
	f.StringVar(&notes.tomorrow, "tomorrow", "", "Tomorrow's plan")
	f.StringVar(&notes.memo, "memo", "", "Memo")

	return cmd
}

type reportNotes struct {
	work, machines, materials, safety, tomorrow, memo string
}

func (n reportNotes) applyTo(r *domain.DailyReportData) {
	r.WorkContent = n.work
	r.MachinesUsed = n.machines
	r.MaterialsProcurement = n.materials
	r.SafetyNotes = n.safety
	r.TomorrowPlan = n.tomorrow
	r.Memo = n.memo
}

// parseWorkerFlag parses "name,start,end,break". Missing trailing parts keep
// the default shift.
func parseWorkerFlag(arg string) (domain.WorkerEntry, error) {
	w := domain.NewWorkerEntry()
	parts := strings.Split(arg, ",")
	if len(parts) > 4 {
		return w, fmt.Errorf("--worker %q: expected name,start,end,break", arg)
	}
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}

	w.Name = parts[0]
	if len(parts) > 1 && parts[1] != "" {
		if err := domain.ValidateClock(parts[1]); err != nil {
			return w, fmt.Errorf("--worker %q: %w", arg, err)
		}
		w.StartTime = parts[1]
	}
	if len(parts) > 2 && parts[2] != "" {
		if err := domain.ValidateClock(parts[2]); err != nil {
			return w, fmt.Errorf("--worker %q: %w", arg, err)
		}
		w.EndTime = parts[2]
	}
	if len(parts) > 3 && parts[3] != "" {
		if err := domain.ValidateBreak(parts[3]); err != nil {
			return w, fmt.Errorf("--worker %q: %w", arg, err)
		}
		w.BreakMinutes, _ = strconv.Atoi(parts[3])
	}
	return w, nil
}

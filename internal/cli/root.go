package cli

import (
	"errors"
	"fmt"
	"time"

	"github.com/alexanderramin/genbaflow/internal/clipboard"
	"github.com/alexanderramin/genbaflow/internal/intelligence"
	"github.com/alexanderramin/genbaflow/internal/llm"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// App holds the configuration and services shared by the TUI and the
// subcommands.
type App struct {
	Config llm.LLMConfig

	// Reports generates report text. When nil it is built from Config by
	// NewReports after command-line overrides are applied.
	Reports    intelligence.ReportService
	NewReports func(llm.LLMConfig) (intelligence.ReportService, error)

	Clipboard clipboard.Clipboard
	Logger    *zap.Logger

	Now           func() time.Time
	IsInteractive func() bool
}

func (a *App) now() time.Time {
	if a.Now != nil {
		return a.Now()
	}
	return time.Now()
}

func (a *App) logger() *zap.Logger {
	if a.Logger != nil {
		return a.Logger
	}
	return zap.NewNop()
}

// reports returns the report service, building it on first use.
func (a *App) reports() (intelligence.ReportService, error) {
	if a.Reports != nil {
		return a.Reports, nil
	}
	if a.NewReports == nil {
		return nil, errors.New("no report service configured")
	}
	svc, err := a.NewReports(a.Config)
	if err != nil {
		return nil, fmt.Errorf("building report service: %w", err)
	}
	a.Reports = svc
	return svc, nil
}

// NewRootCmd creates the top-level "genba" command. Without a subcommand it
// opens the interactive daily report editor.
func NewRootCmd(app *App) *cobra.Command {
	var flags llmFlags

	root := &cobra.Command{
		Use:           "genba",
		Short:         "Construction site daily reports with AI-drafted summaries",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return flags.apply(cmd.Flags(), &app.Config)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if app.IsInteractive != nil && !app.IsInteractive() {
				return errors.New("genba needs an interactive terminal; see 'genba --help' for subcommands")
			}
			return runTUI(app)
		},
	}

	flags.bind(root.PersistentFlags())

	root.AddCommand(
		newCalcCmd(),
		newPromptCmd(app),
	)

	return root
}

func runTUI(app *App) error {
	if _, err := app.reports(); err != nil {
		return err
	}
	p := tea.NewProgram(newAppModel(app), tea.WithAltScreen())
	_, err := p.Run()
	return err
}

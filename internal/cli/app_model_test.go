package cli

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/alexanderramin/genbaflow/internal/domain"
	"github.com/alexanderramin/genbaflow/internal/intelligence"
	"github.com/alexanderramin/genbaflow/internal/llm"
	"github.com/alexanderramin/genbaflow/internal/session"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTUI_InitialFieldView(t *testing.T) {
	app, _ := testApp(&fakeReports{})
	d := NewTestDriver(t, app)

	assert.Equal(t, ViewReport, d.ActiveViewID())
	assert.Equal(t, domain.ModeField, d.Session().Mode)
	assert.Equal(t, session.StateIdle, d.Session().State().Kind())

	out := d.PlainView()
	assert.Contains(t, out, "Field Entry")
	assert.Contains(t, out, "IDLE")
	assert.Contains(t, out, "WORKERS")
	assert.Contains(t, out, "08:00")
	assert.Contains(t, out, "2025-06-15")
	assert.Contains(t, out, "No report generated yet")
}

func TestTUI_TabTogglesModeWithoutTouchingState(t *testing.T) {
	reports := &fakeReports{text: "工事日報"}
	app, _ := testApp(reports)
	d := NewTestDriver(t, app)

	d.PressKey('g')
	require.Equal(t, session.StateDone, d.Session().State().Kind())

	d.PressTab()
	assert.Equal(t, domain.ModeAdmin, d.Session().Mode)
	assert.Equal(t, session.StateDone, d.Session().State().Kind())

	out := d.PlainView()
	assert.Contains(t, out, "LABOR COST")
	assert.Contains(t, out, "TOTALS")
	assert.Contains(t, out, "Total labor cost")
	assert.Contains(t, out, "工事日報")

	d.PressTab()
	assert.Equal(t, domain.ModeField, d.Session().Mode)
}

func TestTUI_GenerateSuccessShowsResult(t *testing.T) {
	reports := &fakeReports{text: "本日の作業報告"}
	app, _ := testApp(reports)
	d := NewTestDriver(t, app)

	d.PressKey('g')

	assert.Equal(t, 1, reports.calls)
	text, ok := d.Session().Result()
	require.True(t, ok)
	assert.Equal(t, "本日の作業報告", text)
	assert.Contains(t, d.PlainView(), "本日の作業報告")
	assert.Contains(t, d.PlainView(), "DONE")
}

func TestTUI_GenerateSendsSnapshotOfReport(t *testing.T) {
	reports := &fakeReports{text: "ok"}
	app, _ := testApp(reports)
	d := NewTestDriver(t, app)

	d.Session().Report.ProjectName = "佐藤邸 新築工事"
	d.PressKey('g')

	assert.Equal(t, "佐藤邸 新築工事", reports.last.ProjectName)
	if diff := cmp.Diff(*d.Session().Report, reports.last); diff != "" {
		t.Errorf("snapshot mismatch (-live +sent):\n%s", diff)
	}
}

func TestTUI_GenerateFailureShowsGenericMessageAndKeepsData(t *testing.T) {
	reports := &fakeReports{err: llm.ErrServiceError}
	app, _ := testApp(reports)
	d := NewTestDriver(t, app)

	d.Session().Report.ProjectName = "佐藤邸"
	d.Session().Report.WorkContent = "配筋"
	before := d.Session().Report.Clone()

	d.PressKey('g')

	state, ok := d.Session().State().(session.Failed)
	require.True(t, ok, "expected Failed, got %T", d.Session().State())
	assert.Equal(t, session.GenericFailureMessage, state.Message)
	assert.Empty(t, cmp.Diff(before, *d.Session().Report))

	out := d.PlainView()
	assert.Contains(t, out, "Report generation failed")
	assert.NotContains(t, out, llm.ErrServiceError.Error())
}

func TestTUI_MissingCredentialFailsWithoutNetwork(t *testing.T) {
	cfg := llm.DefaultConfig()
	client, err := llm.NewGeminiClient(cfg, nil)
	require.NoError(t, err)

	app, _ := testApp(nil)
	app.Reports = intelligence.NewReportService(client, nil)
	d := NewTestDriver(t, app)

	d.PressKey('g')

	assert.Equal(t, session.StateFailed, d.Session().State().Kind())
	assert.Contains(t, d.PlainView(), "Report generation failed")
}

func TestTUI_GenerateIgnoredWhileGenerating(t *testing.T) {
	reports := &fakeReports{text: "first"}
	app, _ := testApp(reports)
	d := NewTestDriver(t, app, holdGeneration())

	d.PressKey('g')
	require.True(t, d.Session().Generating())
	assert.Contains(t, d.PlainView(), "Generating report...")
	require.Len(t, d.Held(), 1)

	d.PressKey('g')
	assert.Equal(t, 1, reports.calls)
	assert.Contains(t, d.Notice(), "Already generating")

	d.Release()
	text, ok := d.Session().Result()
	require.True(t, ok)
	assert.Equal(t, "first", text)
}

func TestTUI_EditingAllowedWhileGenerating(t *testing.T) {
	reports := &fakeReports{text: "done"}
	app, _ := testApp(reports)
	d := NewTestDriver(t, app, holdGeneration())

	d.PressKey('g')
	d.PressKey('a')

	assert.Len(t, d.Session().Report.Workers, 2)
	assert.True(t, d.Session().Generating())
	assert.Len(t, reports.last.Workers, 1, "snapshot taken before the edit")

	d.Release()
	assert.Equal(t, session.StateDone, d.Session().State().Kind())
	assert.Len(t, d.Session().Report.Workers, 2)
}

func TestTUI_FailureAfterSuccessClearsResult(t *testing.T) {
	reports := &fakeReports{text: "first"}
	app, _ := testApp(reports)
	d := NewTestDriver(t, app)

	d.PressKey('g')
	require.Equal(t, session.StateDone, d.Session().State().Kind())

	reports.text, reports.err = "", llm.ErrServiceUnavailable
	d.PressKey('g')

	_, ok := d.Session().Result()
	assert.False(t, ok)
	assert.NotContains(t, d.PlainView(), "first")
}

func TestTUI_EmptyCompletionShowsFallbackText(t *testing.T) {
	client := &stubLLM{resp: &llm.GenerateResponse{Text: "  "}}
	app, _ := testApp(nil)
	app.Reports = intelligence.NewReportService(client, nil)
	d := NewTestDriver(t, app)

	d.PressKey('g')

	text, ok := d.Session().Result()
	require.True(t, ok)
	assert.Equal(t, intelligence.ReportFallbackText, text)
}

func TestTUI_CopyResult(t *testing.T) {
	reports := &fakeReports{text: "日報本文"}
	app, clip := testApp(reports)
	d := NewTestDriver(t, app)

	d.PressKey('c')
	assert.Equal(t, 0, clip.Copies)
	assert.Contains(t, d.Notice(), "Nothing to copy")

	d.PressKey('g')
	d.PressKey('c')
	assert.Equal(t, 1, clip.Copies)
	assert.Equal(t, "日報本文", clip.Text)
	assert.Contains(t, d.Notice(), "Copied")
}

func TestTUI_CopyFailureShowsError(t *testing.T) {
	reports := &fakeReports{text: "日報本文"}
	app, clip := testApp(reports)
	clip.Err = errors.New("no display")
	d := NewTestDriver(t, app)

	d.PressKey('g')
	d.PressKey('c')
	assert.Contains(t, d.Notice(), "no display")
}

func TestTUI_AddAndRemoveWorkers(t *testing.T) {
	app, _ := testApp(&fakeReports{})
	d := NewTestDriver(t, app)

	d.PressKey('a')
	require.Len(t, d.Session().Report.Workers, 2)
	assert.Contains(t, d.Notice(), "Added worker #2")

	d.PressKey('x')
	assert.Len(t, d.Session().Report.Workers, 1)

	d.PressKey('x')
	assert.Len(t, d.Session().Report.Workers, 1)
	assert.Contains(t, d.Notice(), "At least one worker")
}

func TestTUI_RemoveSelectedWorker(t *testing.T) {
	app, _ := testApp(&fakeReports{})
	d := NewTestDriver(t, app)

	d.PressKey('a')
	d.PressKey('a')
	workers := d.Session().Report.Workers
	keep0, removed, keep2 := workers[0].ID, workers[1].ID, workers[2].ID

	d.PressUp()
	d.PressKey('x')

	ids := []string{}
	for _, w := range d.Session().Report.Workers {
		ids = append(ids, w.ID)
	}
	assert.Equal(t, []string{keep0, keep2}, ids)
	assert.NotContains(t, ids, removed)
}

func TestTUI_EnterOpensWorkerFormAndEscCancels(t *testing.T) {
	app, _ := testApp(&fakeReports{})
	d := NewTestDriver(t, app)

	d.PressEnter()
	require.Equal(t, ViewForm, d.ActiveViewID())
	assert.Equal(t, "Edit Worker", d.ActiveViewTitle())

	// Typed shortcuts go to the form, not the app.
	d.PressKey('q')
	assert.False(t, d.Quitting)
	d.PressTab()
	assert.Equal(t, domain.ModeField, d.Session().Mode)

	d.PressEsc()
	assert.Equal(t, ViewReport, d.ActiveViewID())
	assert.Equal(t, 1, d.ViewStackLen())
	assert.Contains(t, d.Notice(), "Cancelled.")
}

func TestTUI_FieldShortcutsOpenForms(t *testing.T) {
	app, _ := testApp(&fakeReports{})
	d := NewTestDriver(t, app)

	d.PressKey('p')
	assert.Equal(t, "Project", d.ActiveViewTitle())
	d.PressEsc()

	d.PressKey('n')
	assert.Equal(t, "Work Notes", d.ActiveViewTitle())
	d.PressEsc()
	assert.Equal(t, 1, d.ViewStackLen())
}

func TestTUI_AdminEnterEditsRate(t *testing.T) {
	app, _ := testApp(&fakeReports{})
	d := NewTestDriver(t, app)

	d.PressTab()
	d.PressEnter()
	assert.Equal(t, "Hourly Rate", d.ActiveViewTitle())
	d.PressEsc()

	// Field-only shortcuts do nothing in admin mode.
	d.PressKey('a')
	assert.Len(t, d.Session().Report.Workers, 1)
	d.PressKey('p')
	assert.Equal(t, ViewReport, d.ActiveViewID())
}

func TestTUI_AdminShowsLiveTotals(t *testing.T) {
	app, _ := testApp(&fakeReports{})
	d := NewTestDriver(t, app)

	w := &d.Session().Report.Workers[0]
	w.Name = "田中"
	w.HourlyRate = 2500

	d.PressTab()
	out := d.PlainView()
	assert.Contains(t, out, "田中")
	assert.Contains(t, out, "8h")
	assert.Contains(t, out, "¥20,000")
}

func TestTUI_QuitKeys(t *testing.T) {
	app, _ := testApp(&fakeReports{})
	d := NewTestDriver(t, app)
	d.PressKey('q')
	assert.True(t, d.Quitting)

	d2 := NewTestDriver(t, app)
	d2.PressCtrlC()
	assert.True(t, d2.Quitting)
}

func TestTUI_ServiceBuildFailureMarksGenerationFailed(t *testing.T) {
	app, _ := testApp(nil)
	app.Reports = nil
	app.NewReports = func(llm.LLMConfig) (intelligence.ReportService, error) {
		return nil, llm.ErrUnknownProvider
	}
	d := NewTestDriver(t, app)

	d.PressKey('g')

	state, ok := d.Session().State().(session.Failed)
	require.True(t, ok, "state is %T", d.Session().State())
	assert.Equal(t, session.GenericFailureMessage, state.Message)
	assert.False(t, d.Session().Generating())
	assert.Contains(t, d.PlainView(), "Report generation failed")

	// The form stays editable and a retry goes through the same path.
	d.PressKey('g')
	assert.Equal(t, session.StateFailed, d.Session().State().Kind())
}

func TestTUI_LongReportScrollsInsideResultPane(t *testing.T) {
	var lines []string
	for i := 1; i <= 60; i++ {
		lines = append(lines, fmt.Sprintf("・行%02d", i))
	}
	app, _ := testApp(&fakeReports{text: strings.Join(lines, "\n")})
	d := NewTestDriver(t, app)

	d.PressKey('g')
	require.Equal(t, session.StateDone, d.Session().State().Kind())

	out := d.PlainView()
	assert.LessOrEqual(t, strings.Count(out, "\n")+1, 40, "view fits the terminal")
	assert.Contains(t, out, "・行01")
	assert.NotContains(t, out, "・行60")
	assert.Contains(t, out, "WORKERS", "form stays on screen")

	for range 20 {
		d.SendKey(tea.KeyMsg{Type: tea.KeyPgDown})
	}
	out = d.PlainView()
	assert.Contains(t, out, "・行60")
	assert.NotContains(t, out, "・行01")
	assert.LessOrEqual(t, strings.Count(out, "\n")+1, 40)

	for range 20 {
		d.SendKey(tea.KeyMsg{Type: tea.KeyPgUp})
	}
	assert.Contains(t, d.PlainView(), "・行01")
}

// stubLLM is an llm.LLMClient returning a fixed response.
type stubLLM struct {
	resp *llm.GenerateResponse
	err  error
}

func (s *stubLLM) Generate(context.Context, llm.GenerateRequest) (*llm.GenerateResponse, error) {
	return s.resp, s.err
}

func (s *stubLLM) Available(context.Context) bool { return true }

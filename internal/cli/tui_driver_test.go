package cli

import (
	"context"
	"testing"
	"time"

	"github.com/alexanderramin/genbaflow/internal/clipboard"
	"github.com/alexanderramin/genbaflow/internal/domain"
	"github.com/alexanderramin/genbaflow/internal/session"
	"github.com/alexanderramin/genbaflow/internal/teatest"
	"github.com/alexanderramin/genbaflow/internal/testutil"
	tea "github.com/charmbracelet/bubbletea"
)

// fakeReports is a scripted report service that records what it was sent.
type fakeReports struct {
	text  string
	err   error
	calls int
	last  domain.DailyReportData
}

func (f *fakeReports) Generate(_ context.Context, data domain.DailyReportData) (string, error) {
	f.calls++
	f.last = data
	return f.text, f.err
}

func testApp(reports *fakeReports) (*App, *clipboard.Memory) {
	clip := &clipboard.Memory{}
	return &App{
		Reports:   reports,
		Clipboard: clip,
		Now:       func() time.Time { return testutil.FixedNow },
	}, clip
}

// TestDriver wraps teatest.Driver with inspection of appModel internals.
type TestDriver struct {
	*teatest.Driver
}

// NewTestDriver constructs the appModel, sets terminal size and drains Init().
func NewTestDriver(t *testing.T, app *App, opts ...teatest.Option) *TestDriver {
	t.Helper()

	m := newAppModel(app)
	d := teatest.New(t, m, append([]teatest.Option{teatest.WithSize(120, 40)}, opts...)...)
	d.DrainInit()

	return &TestDriver{Driver: d}
}

// holdGeneration parks generation results until Release is called.
func holdGeneration() teatest.Option {
	return teatest.WithHold(func(msg tea.Msg) bool {
		_, ok := msg.(generationDoneMsg)
		return ok
	})
}

func (d *TestDriver) appModel() appModel {
	return d.Model.(appModel)
}

// Session returns the live session.
func (d *TestDriver) Session() *session.Session {
	return d.appModel().state.Session
}

// ActiveViewID returns the ViewID of the top view on the stack.
func (d *TestDriver) ActiveViewID() ViewID {
	m := d.appModel()
	v := m.activeView()
	if v == nil {
		return ViewID(-1)
	}
	return v.ID()
}

// ActiveViewTitle returns the Title() of the top view on the stack.
func (d *TestDriver) ActiveViewTitle() string {
	m := d.appModel()
	if v := m.activeView(); v != nil {
		return v.Title()
	}
	return ""
}

// ViewStackLen returns the number of views on the stack.
func (d *TestDriver) ViewStackLen() int {
	return len(d.appModel().viewStack)
}

// Notice returns the transient status-bar message.
func (d *TestDriver) Notice() string {
	return d.appModel().notice
}

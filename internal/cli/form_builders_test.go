package cli

import (
	"testing"

	"github.com/alexanderramin/genbaflow/internal/domain"
	"github.com/alexanderramin/genbaflow/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidators(t *testing.T) {
	assert.NoError(t, validateClock("8:00"))
	assert.NoError(t, validateClock(" 17:30 "))
	assert.Error(t, validateClock("24:00"))
	assert.Error(t, validateClock("8:5"))

	assert.NoError(t, validateBreak("0"))
	assert.Error(t, validateBreak("-5"))
	assert.Error(t, validateBreak("half"))

	assert.NoError(t, validateRate(""))
	assert.NoError(t, validateRate("2,500"))
	assert.Error(t, validateRate("-1"))
	assert.Error(t, validateRate("abc"))

	assert.NoError(t, validateOptionalDate(""))
	assert.NoError(t, validateOptionalDate("2025-06-15"))
	assert.Error(t, validateOptionalDate("15/06/2025"))
}

func TestApplyWorkerEdit_UpdatesWorker(t *testing.T) {
	report := testutil.NewTestReport()
	id := report.Workers[0].ID

	msg := applyWorkerEdit(report, id, &workerFields{
		name: " 鈴木 ", start: "08:00", end: "12:00", breakMin: "90",
	})
	out, ok := msg.(noticeMsg)
	require.True(t, ok, "expected noticeMsg, got %T", msg)
	assert.Contains(t, out.text, "Updated 鈴木")
	assert.Contains(t, out.text, "2.5h")

	w := report.Workers[0]
	assert.Equal(t, "鈴木", w.Name)
	assert.Equal(t, "12:00", w.EndTime)
	assert.Equal(t, 90, w.BreakMinutes)
}

func TestApplyWorkerEdit_RejectsInvalidInput(t *testing.T) {
	report := testutil.NewTestReport()
	id := report.Workers[0].ID
	before := report.Workers[0]

	msg := applyWorkerEdit(report, id, &workerFields{start: "25:00", end: "17:00", breakMin: "60"})
	out, ok := msg.(noticeMsg)
	require.True(t, ok)
	assert.Contains(t, out.text, "Error:")
	assert.Equal(t, before, report.Workers[0])
}

func TestApplyWorkerEdit_UnknownWorker(t *testing.T) {
	report := testutil.NewTestReport()
	msg := applyWorkerEdit(report, "missing", &workerFields{start: "08:00", end: "17:00", breakMin: "60"})
	out, ok := msg.(noticeMsg)
	require.True(t, ok)
	assert.Contains(t, out.text, "no longer exists")
}

func TestApplyRateEdit(t *testing.T) {
	report := testutil.NewTestReport()
	id := report.Workers[0].ID

	assert.Equal(t, float64(domain.DefaultHourlyRate), report.Workers[0].HourlyRate)

	msg := applyRateEdit(report, id, "3,000")
	out, ok := msg.(noticeMsg)
	require.True(t, ok)
	assert.Contains(t, out.text, "¥24,000")
	assert.Equal(t, 3000.0, report.Workers[0].HourlyRate)

	applyRateEdit(report, id, "")
	assert.Equal(t, 0.0, report.Workers[0].HourlyRate)
}

func TestApplyProjectEdit(t *testing.T) {
	report := testutil.NewTestReport()
	date := report.Date

	applyProjectEdit(report, &projectFields{name: " 佐藤邸 ", date: ""})
	assert.Equal(t, "佐藤邸", report.ProjectName)
	assert.Equal(t, date, report.Date)

	applyProjectEdit(report, &projectFields{name: "佐藤邸", date: "2025-07-01"})
	assert.Equal(t, "2025-07-01", report.Date)

	msg := applyProjectEdit(report, &projectFields{name: "x", date: "bad"})
	out := msg.(noticeMsg)
	assert.Contains(t, out.text, "YYYY-MM-DD")
	assert.Equal(t, "2025-07-01", report.Date)
}

func TestApplyNarrativeEdit(t *testing.T) {
	report := testutil.NewTestReport()
	applyNarrativeEdit(report, &narrativeFields{
		work: "基礎型枠の組立", safety: "開口部の養生", machines: "バックホウ",
		materials: "型枠材", tomorrow: "打設", memo: "雨天注意",
	})

	assert.Equal(t, "基礎型枠の組立", report.WorkContent)
	assert.Equal(t, "開口部の養生", report.SafetyNotes)
	assert.Equal(t, "バックホウ", report.MachinesUsed)
	assert.Equal(t, "型枠材", report.MaterialsProcurement)
	assert.Equal(t, "打設", report.TomorrowPlan)
	assert.Equal(t, "雨天注意", report.Memo)
}

package testutil

import (
	"time"

	"github.com/alexanderramin/genbaflow/internal/domain"
	"github.com/google/uuid"
)

// FixedNow is the session start used by report fixtures.
var FixedNow = time.Date(2025, 6, 15, 7, 30, 0, 0, time.UTC)

// Report options
type ReportOption func(*domain.DailyReportData)

func WithProject(name string) ReportOption {
	return func(r *domain.DailyReportData) {
		r.ProjectName = name
	}
}

func WithDate(date string) ReportOption {
	return func(r *domain.DailyReportData) {
		r.Date = date
	}
}

// WithWorker appends a worker. The first WithWorker replaces the default
// worker that every new report starts with.
func WithWorker(name, start, end string, breakMin int, rate float64) ReportOption {
	return func(r *domain.DailyReportData) {
		w := domain.WorkerEntry{
			ID:           uuid.New().String(),
			Name:         name,
			StartTime:    start,
			EndTime:      end,
			BreakMinutes: breakMin,
			HourlyRate:   rate,
		}
		if len(r.Workers) == 1 && r.Workers[0].Name == "" && r.Workers[0].HourlyRate == domain.DefaultHourlyRate {
			r.Workers[0] = w
			return
		}
		r.Workers = append(r.Workers, w)
	}
}

func WithWorkContent(s string) ReportOption {
	return func(r *domain.DailyReportData) {
		r.WorkContent = s
	}
}

func WithSafetyNotes(s string) ReportOption {
	return func(r *domain.DailyReportData) {
		r.SafetyNotes = s
	}
}

// WithOptionalNotes sets machines, materials, tomorrow's plan and memo.
func WithOptionalNotes(machines, materials, tomorrow, memo string) ReportOption {
	return func(r *domain.DailyReportData) {
		r.MachinesUsed = machines
		r.MaterialsProcurement = materials
		r.TomorrowPlan = tomorrow
		r.Memo = memo
	}
}

func WithSubcontractor(name string, count int) ReportOption {
	return func(r *domain.DailyReportData) {
		r.Subcontractors = append(r.Subcontractors, domain.SubcontractorEntry{
			ID:    uuid.New().String(),
			Name:  name,
			Count: count,
		})
	}
}

// NewTestReport returns a fresh report dated FixedNow with opts applied.
func NewTestReport(opts ...ReportOption) *domain.DailyReportData {
	r := domain.NewDailyReport(FixedNow)
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// NewSampleReport returns a fully filled-in report used across package tests.
func NewSampleReport() *domain.DailyReportData {
	return NewTestReport(
		WithProject("佐藤邸 新築工事"),
		WithWorker("田中", "08:00", "17:00", 60, 2500),
		WithWorker("鈴木", "08:00", "12:00", 90, 2000),
		WithWorkContent("基礎型枠の組立\n配筋検査の立会い"),
		WithSafetyNotes("開口部の養生を徹底"),
		WithOptionalNotes("バックホウ 0.25m3", "型枠材 20枚", "コンクリート打設", ""),
	)
}

package domain

import (
	"fmt"
	"slices"
	"time"

	"github.com/google/uuid"
)

// Default shift and rate applied to every newly added worker.
const (
	DefaultStartTime    = "08:00"
	DefaultEndTime      = "17:00"
	DefaultBreakMinutes = 60
	DefaultHourlyRate   = 2500
)

// WorkerEntry is one worker's shift on the report day.
type WorkerEntry struct {
	ID           string
	Name         string
	StartTime    string // "HH:MM", same day as EndTime
	EndTime      string
	BreakMinutes int
	HourlyRate   float64
}

// SubcontractorEntry is carried on the report but is not yet collected,
// costed or sent to the generation service.
type SubcontractorEntry struct {
	ID    string
	Name  string
	Count int
}

// DailyReportData is the single in-memory report edited during a session.
type DailyReportData struct {
	ProjectName    string
	Date           string // ISO "2006-01-02"
	Workers        []WorkerEntry
	Subcontractors []SubcontractorEntry

	WorkContent          string
	MachinesUsed         string
	MaterialsProcurement string
	SafetyNotes          string
	TomorrowPlan         string
	Memo                 string
}

// NewWorkerEntry returns a worker with a fresh id and the default shift.
func NewWorkerEntry() WorkerEntry {
	return WorkerEntry{
		ID:           uuid.New().String(),
		StartTime:    DefaultStartTime,
		EndTime:      DefaultEndTime,
		BreakMinutes: DefaultBreakMinutes,
		HourlyRate:   DefaultHourlyRate,
	}
}

// DefaultSafetyNotes is the safety line a new report starts with.
const DefaultSafetyNotes = "異常なし。整理整頓の徹底。"

// NewDailyReport returns the report a session starts with: dated now, with a
// single default worker and the standard safety line.
func NewDailyReport(now time.Time) *DailyReportData {
	return &DailyReportData{
		Date:        now.Format(time.DateOnly),
		Workers:     []WorkerEntry{NewWorkerEntry()},
		SafetyNotes: DefaultSafetyNotes,
	}
}

// AddWorker appends a default worker and returns it.
func (r *DailyReportData) AddWorker() WorkerEntry {
	w := NewWorkerEntry()
	r.Workers = append(r.Workers, w)
	return w
}

// RemoveWorker deletes the worker with the given id. The last remaining worker
// cannot be removed.
func (r *DailyReportData) RemoveWorker(id string) error {
	idx := r.workerIndex(id)
	if idx < 0 {
		return fmt.Errorf("removing %s: %w", id, ErrWorkerNotFound)
	}
	if len(r.Workers) <= 1 {
		return ErrLastWorker
	}
	r.Workers = slices.Delete(r.Workers, idx, idx+1)
	return nil
}

// Worker returns a pointer to the worker with the given id for in-place edits.
func (r *DailyReportData) Worker(id string) (*WorkerEntry, error) {
	idx := r.workerIndex(id)
	if idx < 0 {
		return nil, fmt.Errorf("worker %s: %w", id, ErrWorkerNotFound)
	}
	return &r.Workers[idx], nil
}

// UpdateWorker applies fn to the worker with the given id.
func (r *DailyReportData) UpdateWorker(id string, fn func(*WorkerEntry)) error {
	w, err := r.Worker(id)
	if err != nil {
		return err
	}
	fn(w)
	return nil
}

// Totals returns the derived man-hours and cost of the current worker list.
func (r *DailyReportData) Totals() Totals {
	return CalculateTotals(r.Workers)
}

// Clone returns a deep copy suitable for handing to a background call while
// the live report keeps being edited.
func (r *DailyReportData) Clone() DailyReportData {
	c := *r
	c.Workers = slices.Clone(r.Workers)
	c.Subcontractors = slices.Clone(r.Subcontractors)
	return c
}

func (r *DailyReportData) workerIndex(id string) int {
	return slices.IndexFunc(r.Workers, func(w WorkerEntry) bool { return w.ID == id })
}

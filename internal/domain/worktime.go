package domain

import (
	"fmt"
	"strconv"
	"strings"
)

// Totals are the derived aggregates over a worker list. They are recomputed
// from the current entries on demand and never stored.
type Totals struct {
	ManHours float64
	Cost     float64
}

// ParseClock parses a same-day "HH:MM" wall-clock value into minutes after
// midnight.
func ParseClock(s string) (int, error) {
	hh, mm, ok := strings.Cut(strings.TrimSpace(s), ":")
	if !ok || len(mm) != 2 || len(hh) == 0 || len(hh) > 2 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidClock, s)
	}
	h, err := strconv.Atoi(hh)
	if err != nil || h < 0 || h > 23 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidClock, s)
	}
	m, err := strconv.Atoi(mm)
	if err != nil || m < 0 || m > 59 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidClock, s)
	}
	return h*60 + m, nil
}

// FormatClock renders minutes after midnight as "HH:MM".
func FormatClock(minutes int) string {
	return fmt.Sprintf("%02d:%02d", minutes/60, minutes%60)
}

// ValidateClock accepts a valid "HH:MM" value.
func ValidateClock(s string) error {
	_, err := ParseClock(s)
	return err
}

// ValidateBreak accepts a non-negative whole number of minutes.
func ValidateBreak(s string) error {
	v, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return fmt.Errorf("break must be a whole number of minutes")
	}
	if v < 0 {
		return ErrNegativeBreak
	}
	return nil
}

// WorkedMinutes returns (end - start) - break in minutes, clamped at zero.
// Unparsable times contribute no elapsed time and a negative break counts as
// none, so the result is always defined.
func WorkedMinutes(start, end string, breakMin int) int {
	s, errS := ParseClock(start)
	e, errE := ParseClock(end)
	elapsed := 0
	if errS == nil && errE == nil {
		elapsed = e - s
	}
	if breakMin < 0 {
		breakMin = 0
	}
	return max(0, elapsed-breakMin)
}

// WorkedHours returns the worked time of a shift in hours, never negative.
func WorkedHours(start, end string, breakMin int) float64 {
	return float64(WorkedMinutes(start, end, breakMin)) / 60
}

// Hours returns the worked hours of the entry.
func (w WorkerEntry) Hours() float64 {
	return WorkedHours(w.StartTime, w.EndTime, w.BreakMinutes)
}

// WorkerCost returns worked hours multiplied by the hourly rate.
func WorkerCost(w WorkerEntry) float64 {
	return w.Hours() * w.HourlyRate
}

// CalculateTotals sums worked hours and cost across workers. An empty list
// yields zero totals.
func CalculateTotals(workers []WorkerEntry) Totals {
	var t Totals
	for _, w := range workers {
		t.ManHours += w.Hours()
		t.Cost += WorkerCost(w)
	}
	return t
}

package domain

import "errors"

var (
	// ErrInvalidClock indicates a wall-clock value that is not a valid "HH:MM".
	ErrInvalidClock = errors.New("invalid clock time")

	// ErrNegativeBreak indicates a break duration below zero.
	ErrNegativeBreak = errors.New("break minutes must not be negative")

	// ErrWorkerNotFound indicates no worker with the given id exists in the report.
	ErrWorkerNotFound = errors.New("worker not found")

	// ErrLastWorker indicates a removal that would leave the worker list empty.
	ErrLastWorker = errors.New("a report needs at least one worker")
)

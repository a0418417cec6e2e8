package jobs

import "errors"

var (
	// ErrNotFound indicates an entity was not found.
	ErrNotFound = errors.New("not found")

	// ErrInvalidInput indicates validation or bad input.
	ErrInvalidInput = errors.New("invalid input")

	// ErrJobClosed indicates the job no longer accepts applications.
	ErrJobClosed = errors.New("job is closed")

	// ErrAlreadyApplied indicates the user already applied to the job.
	ErrAlreadyApplied = errors.New("already applied")
)

package grouping

import "errors"

// Sentinel errors returned by the Planner.
var (
	// ErrSourceRequired is returned when the roster source is nil.
	ErrSourceRequired = errors.New("roster source is required")

	// ErrReadInput is wrapped around I/O failures from the roster source.
	ErrReadInput = errors.New("failed to read input")
)

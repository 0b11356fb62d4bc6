package types

import "context"

// RosterSource collects the groups to be reorganized.
//
// Implementations cover the supported input modes:
//   - Interactive: line-at-a-time terminal input with capacity-capped accumulation
//   - Stream: blank-line-delimited batch blocks from a pipe or file
//   - Static: fixed list for testing and library embedding
//
// The Planner calls ReadGroups exactly once per run.
type RosterSource interface {
	// ReadGroups returns the accumulated input groups in arrival order.
	//
	// Implementations that read external input must check ctx between reads
	// and, on cancellation, return the groups accumulated so far with a nil
	// error. Cancellation ends input early; it is not a failure.
	//
	// Parameters:
	//   - ctx: Context for cooperative cancellation between reads
	//
	// Returns:
	//   - []Group: Accumulated groups (each with at least one member)
	//   - error: I/O error reading input (nil on success or cancellation)
	ReadGroups(ctx context.Context) ([]Group, error)
}

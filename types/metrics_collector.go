package types

// MetricsCollector defines methods for recording operational metrics.
//
// Implementations should be non-blocking and handle failures gracefully.
//
// This interface composes smaller, domain-focused interfaces for better
// modularity.
type MetricsCollector interface {
	RosterMetrics
	ReorganizerMetrics
}

// RosterMetrics defines metrics for input accumulation.
type RosterMetrics interface {
	// RecordMemberAccepted records one identifier accepted into the roster.
	RecordMemberAccepted()

	// RecordMemberRemoved records one identifier removed by a delete command.
	RecordMemberRemoved()

	// RecordInputCancelled records an input session ended early by
	// cooperative cancellation.
	RecordInputCancelled()
}

// ReorganizerMetrics defines metrics for reorganization runs.
type ReorganizerMetrics interface {
	// RecordReorganizeDuration records the time taken by a reorganization.
	//
	// Parameters:
	//   - duration: Time taken in seconds
	//   - mode: Strategy name ("incremental", "batch")
	RecordReorganizeDuration(duration float64, mode string)

	// RecordGroupCount sets the number of groups in the final partition.
	RecordGroupCount(count int)

	// RecordGroupSize observes the size of one final group.
	RecordGroupSize(size int)

	// RecordUnplacedMembers records members left unplaced by a run
	// (the degenerate single-member case).
	RecordUnplacedMembers(count int)
}

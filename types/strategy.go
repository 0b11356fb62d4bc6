package types

// ReorganizeStrategy produces a final partition from accumulated groups.
//
// Implementations repair the accumulated groups so that every output group
// has MinGroupSize to GroupCapacity members:
//   - Incremental: preserves full groups, randomly redistributes members of
//     partial groups (live, capacity-capped accumulation)
//   - Batch: deterministic split/merge repair of pre-delimited blocks
//
// Strategy implementations should:
//   - Be total: every well-formed input produces a result, never an error
//   - Conserve members: no identifier is created or dropped
//   - Never emit a group of fewer than MinGroupSize members
//   - Be stateless (no side effects between calls)
type ReorganizeStrategy interface {
	// Reorganize computes the final partition for the given groups.
	//
	// The second return value lists members that could not be placed in any
	// group. It is empty except in the degenerate case of a single member
	// total with no group to attach it to, in which case it holds that one
	// member. Unplaced members are a business-rule warning surfaced by the
	// output collaborator, not a failure.
	//
	// Parameters:
	//   - groups: Accumulated input groups (full or partial, never empty groups)
	//
	// Returns:
	//   - Partition: Final groups, each with 2 or 3 members
	//   - []string: Members left unplaced (at most one)
	Reorganize(groups []Group) (Partition, []string)

	// Name returns a short identifier for the strategy ("incremental",
	// "batch"), used for logging and metric labels.
	Name() string
}

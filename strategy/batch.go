package strategy

import "github.com/maysay-D/grouping-tool/types"

// Batch implements deterministic reorganization for pre-delimited blocks.
//
// Submitted groupings are preserved wherever already valid. Oversized
// groups are split into chunks of 2-3, singleton groups are merged with
// their neighbors, and a final repair pass re-splits any group pushed over
// capacity by the merge. No randomization.
type Batch struct{}

var _ types.ReorganizeStrategy = (*Batch)(nil)

// NewBatch creates a new batch strategy.
//
// Returns:
//   - *Batch: Initialized batch strategy
//
// Example:
//
//	planner, err := grouping.NewPlanner(src, grouping.WithStrategy(strategy.NewBatch()))
func NewBatch() *Batch {
	return &Batch{}
}

// Name returns "batch".
func (s *Batch) Name() string {
	return "batch"
}

// Reorganize computes the final partition for batch-submitted groups.
//
// Three passes:
//  1. Split: groups above GroupCapacity are split into consecutive chunks
//     of 2-3 (exactly four members split 2+2, never 3+1)
//  2. Merge: size-1 groups are queued rather than emitted; three pending
//     singletons flush as a group, and when a larger group is reached the
//     queue first tops up the previously emitted group, then forms groups
//     of its own. A single leftover attaches to the nearest group even if
//     that temporarily exceeds capacity
//  3. Repair: any group left above capacity by the merge is re-split
//
// Parameters:
//   - groups: Submitted groups in block order (unbounded sizes)
//
// Returns:
//   - types.Partition: Final groups of 2-3 members, block order preserved
//   - []string: Unplaced members (at most one, the single-member roster)
func (s *Batch) Reorganize(groups []types.Group) (types.Partition, []string) {
	// Pass 1: split oversized groups. Empty groups carry no members to
	// place and are dropped here so later passes never emit them.
	split := make([]types.Group, 0, len(groups))
	for _, g := range groups {
		switch {
		case g.Size() == 0:
		case g.Size() <= types.GroupCapacity:
			split = append(split, g.Clone())
		default:
			split = append(split, splitGroup(g)...)
		}
	}

	// Pass 2: merge singleton groups.
	var (
		out     types.Partition
		pending []string
	)
	for _, g := range split {
		if g.Size() == 1 {
			pending = append(pending, g.Members[0])
			if len(pending) == types.GroupCapacity {
				out = append(out, types.NewGroup(pending...))
				pending = nil
			}

			continue
		}

		pending = settlePending(&out, pending, &g)
		out = append(out, g)
	}

	// End of input: pending members group among themselves; a lone leftover
	// attaches to the last emitted group. Unlike the mid-stream case, the
	// preceding group is not topped up, so valid submitted groupings at the
	// tail stay intact.
	var unplaced []string
	if len(pending) == 1 {
		if len(out) == 0 {
			unplaced = pending
		} else {
			attach(&out[len(out)-1], pending[0])
		}
	} else if len(pending) > 1 {
		members := pending
		for _, size := range chunkSizes(len(members)) {
			out = append(out, types.NewGroup(members[:size]...))
			members = members[size:]
		}
	}

	// Pass 3: repair groups pushed over capacity by leftover attachment.
	repaired := make(types.Partition, 0, len(out))
	for _, g := range out {
		if g.Size() <= types.GroupCapacity {
			repaired = append(repaired, g)
		} else {
			repaired = append(repaired, splitGroup(g)...)
		}
	}

	return repaired, unplaced
}

// settlePending resolves queued singletons when a larger group is reached.
//
// Order of preference: top up the previously emitted group to capacity,
// form 2-3 member groups from the rest, and attach an exactly-one leftover
// to the preceding emitted group, or failing that to the upcoming group,
// even if the host temporarily exceeds capacity. Always returns nil.
func settlePending(out *types.Partition, pending []string, next *types.Group) []string {
	if len(pending) == 0 {
		return nil
	}

	if n := len(*out); n > 0 {
		last := &(*out)[n-1]
		for last.Size() < types.GroupCapacity && len(pending) > 0 {
			last.Add(pending[0])
			pending = pending[1:]
		}
	}

	if len(pending) >= types.MinGroupSize {
		for _, size := range chunkSizes(len(pending)) {
			*out = append(*out, types.NewGroup(pending[:size]...))
			pending = pending[size:]
		}
	}

	if len(pending) == 1 {
		if n := len(*out); n > 0 {
			attach(&(*out)[n-1], pending[0])
		} else {
			attach(next, pending[0])
		}
	}

	return nil
}

// attach appends a member regardless of capacity. Overflow is corrected by
// the repair pass.
func attach(g *types.Group, member string) {
	g.Members = append(g.Members, member)
}

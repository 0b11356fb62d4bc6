package strategy

import (
	"math/rand/v2"

	"github.com/maysay-D/grouping-tool/types"
)

// Incremental implements randomized reorganization for live accumulation.
//
// Full groups are preserved verbatim. Members of partial groups are pooled,
// shuffled uniformly, and re-chunked into groups of 2-3. The final
// composition depends only on the shuffled order, never on identifier
// content.
type Incremental struct {
	shuffle func(n int, swap func(i, j int))
}

var _ types.ReorganizeStrategy = (*Incremental)(nil)

// NewIncremental creates a new incremental strategy.
//
// Randomization uses the process-local random source with no seeding
// contract: callers must not depend on a specific composition, only on the
// size and conservation invariants.
//
// Returns:
//   - *Incremental: Initialized incremental strategy
//
// Example:
//
//	planner, err := grouping.NewPlanner(src, grouping.WithStrategy(strategy.NewIncremental()))
func NewIncremental() *Incremental {
	return &Incremental{shuffle: rand.Shuffle}
}

// Name returns "incremental".
func (s *Incremental) Name() string {
	return "incremental"
}

// Reorganize computes the final partition for live-accumulated groups.
//
// The algorithm:
//  1. Preserve groups of exactly GroupCapacity members, in input order
//  2. Pool members of partial groups, concatenated in input order
//  3. Shuffle the pool uniformly at random
//  4. Consume the pool in chunks of 3, splitting an exact remainder of 4
//     as 2+2 so a singleton can never trail
//
// A lone pool member is never emitted as a group: one member is borrowed
// from the last preserved group to pair with it. If no preserved group
// exists, the lone member is returned as unplaced.
//
// Parameters:
//   - groups: Accumulated groups, each full (3) or partial (1-2 members)
//
// Returns:
//   - types.Partition: Preserved groups first, then newly formed groups
//   - []string: Unplaced members (at most one)
func (s *Incremental) Reorganize(groups []types.Group) (types.Partition, []string) {
	final := make(types.Partition, 0, len(groups))

	var pool []string
	for _, g := range groups {
		if g.IsFull() {
			final = append(final, g.Clone())
		} else {
			pool = append(pool, g.Members...)
		}
	}

	s.shuffle(len(pool), func(i, j int) {
		pool[i], pool[j] = pool[j], pool[i]
	})

	switch {
	case len(pool) == 0:
		// Nothing to redistribute.
	case len(pool) == 1:
		if len(final) == 0 {
			// One member total: cannot form a valid group.
			return final, pool
		}
		// Pair the lone member with a borrowed one; every preserved group
		// is full here, so the donor group drops to two members.
		last := &final[len(final)-1]
		donor := last.Members[last.Size()-1]
		last.Members = last.Members[:last.Size()-1]
		final = append(final, types.NewGroup(donor, pool[0]))
	default:
		for _, size := range chunkSizes(len(pool)) {
			final = append(final, types.NewGroup(pool[:size]...))
			pool = pool[size:]
		}
	}

	return final, nil
}

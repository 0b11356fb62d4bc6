package types

import "slices"

const (
	// GroupCapacity is the target group size. Add refuses members beyond it,
	// and both reorganize strategies emit groups of at most this size.
	GroupCapacity = 3

	// MinGroupSize is the smallest group size a final partition may contain.
	// Groups of one member are never emitted; the sole exception is the
	// degenerate one-member-total roster, which yields an unplaced member
	// instead of a group.
	MinGroupSize = 2
)

// Group is an ordered collection of member identifiers.
//
// Members are opaque, trimmed, non-empty tokens. Uniqueness is not enforced;
// duplicates are treated as independent members. The zero value is an empty
// group ready for use.
type Group struct {
	// Members holds the group's member identifiers in insertion order.
	Members []string `json:"members"`
}

// Add appends a member if the group is below capacity.
//
// Adding to a full group is a silent no-op rather than an error. This is
// intentional capacity clamping: callers that need overflow detection must
// check Size before calling.
func (g *Group) Add(member string) {
	if len(g.Members) < GroupCapacity {
		g.Members = append(g.Members, member)
	}
}

// Remove deletes the first member equal to the given identifier.
//
// Used by the input collaborator's delete command before groups are
// finalized. Reports whether a member was removed.
func (g *Group) Remove(member string) bool {
	for i, m := range g.Members {
		if m == member {
			g.Members = slices.Delete(g.Members, i, i+1)
			return true
		}
	}

	return false
}

// Size returns the number of members in the group.
func (g Group) Size() int {
	return len(g.Members)
}

// IsFull reports whether the group has reached capacity.
func (g Group) IsFull() bool {
	return len(g.Members) >= GroupCapacity
}

// Clone returns a deep copy of the group.
func (g Group) Clone() Group {
	return Group{Members: slices.Clone(g.Members)}
}

// NewGroup creates a group from the given members.
//
// Unlike Add, the constructor does not clamp at capacity: batch input blocks
// are unbounded during accumulation and are split down to size by the batch
// strategy afterwards.
func NewGroup(members ...string) Group {
	return Group{Members: slices.Clone(members)}
}

// Partition is the final ordered collection of groups produced by a
// reorganize strategy.
//
// Invariant: every group in a returned partition has MinGroupSize to
// GroupCapacity members.
type Partition []Group

// MemberCount returns the total number of members across all groups.
func (p Partition) MemberCount() int {
	total := 0
	for _, g := range p {
		total += g.Size()
	}

	return total
}

// Sizes returns the group sizes in partition order.
func (p Partition) Sizes() []int {
	sizes := make([]int, len(p))
	for i, g := range p {
		sizes[i] = g.Size()
	}

	return sizes
}

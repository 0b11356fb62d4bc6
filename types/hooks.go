package types

// Hooks defines callbacks for roster and reorganization events.
//
// All hooks are optional. They are invoked synchronously from the reading
// loop, so the interactive CLI can echo feedback between line reads.
// Implementations should complete quickly and must not mutate their
// arguments.
type Hooks struct {
	// OnMemberAdded is called after an identifier is accepted into the
	// group currently being filled. groupIndex is the zero-based index the
	// group will have in the accumulated list.
	OnMemberAdded func(member string, groupIndex int)

	// OnGroupComplete is called when live accumulation fills a group to
	// capacity, or when the input collaborator seals a partial group.
	OnGroupComplete func(groupIndex int, group Group)

	// OnReorganized is called with the final partition and any unplaced
	// members before Plan returns them.
	OnReorganized func(partition Partition, unplaced []string)
}

// MemberAdded invokes OnMemberAdded if set. Nil receivers are allowed.
func (h *Hooks) MemberAdded(member string, groupIndex int) {
	if h != nil && h.OnMemberAdded != nil {
		h.OnMemberAdded(member, groupIndex)
	}
}

// GroupComplete invokes OnGroupComplete if set. Nil receivers are allowed.
func (h *Hooks) GroupComplete(groupIndex int, group Group) {
	if h != nil && h.OnGroupComplete != nil {
		h.OnGroupComplete(groupIndex, group)
	}
}

// Reorganized invokes OnReorganized if set. Nil receivers are allowed.
func (h *Hooks) Reorganized(partition Partition, unplaced []string) {
	if h != nil && h.OnReorganized != nil {
		h.OnReorganized(partition, unplaced)
	}
}

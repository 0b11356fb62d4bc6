package types

import "slices"

// Builder accumulates identifiers into capacity-capped groups as they arrive.
//
// Identifiers fill the current group; when it reaches GroupCapacity the group
// is sealed and a fresh one is started. Builder is the accumulation half of
// the pipeline: the sealed groups it produces become immutable inputs to a
// ReorganizeStrategy.
//
// Builder is not safe for concurrent use. The reading loop that feeds it is
// single-threaded; cancellation is handled by the caller between reads.
type Builder struct {
	sealed  []Group
	current Group
}

// NewBuilder creates an empty builder.
func NewBuilder() *Builder {
	return &Builder{}
}

// Add appends an identifier to the current group.
//
// Reports whether the addition completed a group. When it does, the full
// group is sealed and subsequent identifiers start a new group.
func (b *Builder) Add(member string) bool {
	b.current.Add(member)
	if b.current.IsFull() {
		b.sealed = append(b.sealed, b.current)
		b.current = Group{}

		return true
	}

	return false
}

// Remove deletes the first occurrence of the identifier, searching the
// current group first and then sealed groups newest-first.
//
// Supports the input collaborator's delete command. Reports whether a member
// was removed. A sealed group left below capacity by removal is repaired
// later by the reorganize strategy, not by the builder; a sealed group
// drained to zero members is dropped so Groups never returns an empty group.
func (b *Builder) Remove(member string) bool {
	if b.current.Remove(member) {
		return true
	}
	for i := len(b.sealed) - 1; i >= 0; i-- {
		if b.sealed[i].Remove(member) {
			if b.sealed[i].Size() == 0 {
				b.sealed = slices.Delete(b.sealed, i, i+1)
			}

			return true
		}
	}

	return false
}

// Next seals the current group even if it is below capacity and starts a new
// one. Empty current groups are discarded, not sealed.
func (b *Builder) Next() {
	if b.current.Size() > 0 {
		b.sealed = append(b.sealed, b.current)
		b.current = Group{}
	}
}

// SealedCount returns the number of groups sealed so far. It is also the
// index the group currently being filled will receive once sealed.
func (b *Builder) SealedCount() int {
	return len(b.sealed)
}

// SealedGroup returns a copy of the sealed group at the given index.
func (b *Builder) SealedGroup(i int) Group {
	return b.sealed[i].Clone()
}

// Count returns the total number of accumulated identifiers.
func (b *Builder) Count() int {
	total := b.current.Size()
	for _, g := range b.sealed {
		total += g.Size()
	}

	return total
}

// CurrentSize returns the size of the group currently being filled.
func (b *Builder) CurrentSize() int {
	return b.current.Size()
}

// Groups seals the current group and returns all accumulated groups in
// arrival order. Every returned group has at least one member.
func (b *Builder) Groups() []Group {
	b.Next()

	return b.sealed
}

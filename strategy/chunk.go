package strategy

import "github.com/maysay-D/grouping-tool/types"

// chunkSizes returns the group sizes used to consume n members front to
// back: greedy chunks of GroupCapacity, except exactly four remaining
// members split 2+2 instead of 3+1.
//
// For n >= 2 every returned size is 2 or 3. n == 1 yields a single size-1
// chunk that the caller must merge away; n <= 0 yields nil.
func chunkSizes(n int) []int {
	if n <= 0 {
		return nil
	}
	if n == 1 {
		return []int{1}
	}

	var sizes []int
	for n > 0 {
		switch {
		case n == types.GroupCapacity+1:
			// Taking a full chunk would strand a singleton; leave 2 instead.
			sizes = append(sizes, types.MinGroupSize)
			n -= types.MinGroupSize
		case n >= types.GroupCapacity:
			sizes = append(sizes, types.GroupCapacity)
			n -= types.GroupCapacity
		default:
			// n == 2 is the only remaining case for n >= 2 inputs.
			sizes = append(sizes, n)
			n = 0
		}
	}

	return sizes
}

// splitGroup splits a group into consecutive chunks sized by chunkSizes,
// preserving member order.
func splitGroup(g types.Group) []types.Group {
	members := g.Members
	chunks := chunkSizes(len(members))

	out := make([]types.Group, 0, len(chunks))
	for _, size := range chunks {
		out = append(out, types.NewGroup(members[:size]...))
		members = members[size:]
	}

	return out
}

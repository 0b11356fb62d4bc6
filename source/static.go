package source

import (
	"context"
	"sync"

	"github.com/maysay-D/grouping-tool/types"
)

// Static implements a roster source with a fixed list of groups.
type Static struct {
	mu     sync.RWMutex
	groups []types.Group
}

var _ types.RosterSource = (*Static)(nil)

// NewStatic creates a new static roster source.
//
// The source returns a fixed list of groups. Useful for testing and for
// embedding the library where groups are assembled by other means.
//
// Parameters:
//   - groups: Fixed list of groups
//
// Returns:
//   - *Static: Initialized static source
//
// Example:
//
//	src := source.NewStatic([]types.Group{
//	    types.NewGroup("S001", "S002", "S003"),
//	    types.NewGroup("S004"),
//	})
//	planner, err := grouping.NewPlanner(src)
func NewStatic(groups []types.Group) *Static {
	s := &Static{}
	s.Update(groups)

	return s
}

// ReadGroups returns a copy of the static group list.
//
// Returns:
//   - []types.Group: The fixed list of groups
//   - error: Always nil (never fails)
func (s *Static) ReadGroups(_ context.Context) ([]types.Group, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]types.Group, len(s.groups))
	for i, g := range s.groups {
		result[i] = g.Clone()
	}

	return result, nil
}

// Update replaces the group list, allowing a single source to be reused
// across planner runs in tests.
func (s *Static) Update(groups []types.Group) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.groups = make([]types.Group, len(groups))
	for i, g := range groups {
		s.groups[i] = g.Clone()
	}
}

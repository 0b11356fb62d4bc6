package grouping

import "github.com/maysay-D/grouping-tool/types"

// Re-export types from the types subpackage.
//
// This file provides a stable public API for the library's core types and
// interfaces. It uses type aliases to re-export definitions from the `types`
// subpackage, which contains the actual implementations.
//
// This pattern solves the "import cycle" problem by allowing internal
// packages to depend on `types` without depending on the root `grouping`
// package, while still providing a convenient `grouping.Group`,
// `grouping.Partition`, etc. for users.
type (
	Group     = types.Group
	Partition = types.Partition
	Builder   = types.Builder
)

// Re-export interfaces from the types subpackage for convenience.
type (
	ReorganizeStrategy = types.ReorganizeStrategy
	RosterSource       = types.RosterSource
	MetricsCollector   = types.MetricsCollector
	Logger             = types.Logger
	Hooks              = types.Hooks
)

// Re-export size constants from the types subpackage.
const (
	GroupCapacity = types.GroupCapacity
	MinGroupSize  = types.MinGroupSize
)

// NewGroup creates a group from the given members. See types.NewGroup.
func NewGroup(members ...string) Group {
	return types.NewGroup(members...)
}

// NewBuilder creates an empty accumulation builder. See types.NewBuilder.
func NewBuilder() *Builder {
	return types.NewBuilder()
}

// Package source provides built-in roster source implementations.
//
// A roster source is the input collaborator of the grouping pipeline: it
// collects identifiers into groups and hands them to the Planner. Three
// sources are included:
//
//   - Interactive: line-at-a-time input with capacity-capped accumulation,
//     per-line feedback hooks and remove/next commands (terminal sessions)
//   - Stream: blank-line-delimited blocks, one group per block, unbounded
//     block size (pipes and files, paired with the batch strategy)
//   - Static: fixed group list (tests and library embedding)
//
// Interactive and Stream check their context between line reads; on
// cancellation they return the groups accumulated so far with a nil error,
// so an interrupted session still produces a partition from the input read
// up to that point.
package source

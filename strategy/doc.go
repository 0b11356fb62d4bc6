// Package strategy provides built-in reorganize strategy implementations.
//
// Reorganize strategies repair accumulated groups into a final partition in
// which every group has 2 or 3 members. The package includes two built-in
// strategies:
//
//   - Incremental: randomized redistribution of partial-group members
//     (recommended for live, capacity-capped terminal input)
//   - Batch: deterministic split/merge repair of pre-delimited blocks
//     (recommended for piped or file input)
//
// # Strategy Selection Guide
//
// Incremental:
//   - Use when identifiers arrive one at a time and groups fill to capacity
//   - Preserves already-full groups verbatim
//   - Shuffles members of partial groups so composition never depends on
//     input order (avoids alphabetic or submission-order clustering)
//
// Batch:
//   - Use when whole groups are submitted up front (blank-line-delimited)
//   - Deterministic: preserves submitted groupings wherever already valid
//   - Splits oversized groups and merges singleton groups with neighbors
//
// Both strategies conserve membership and never emit a group of fewer than
// two members; the only exception is a roster of exactly one member, which
// is reported as unplaced rather than emitted.
//
// Custom strategies can be implemented by satisfying the
// types.ReorganizeStrategy interface.
package strategy

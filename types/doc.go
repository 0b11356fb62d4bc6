// Package types provides core type definitions and interfaces for the grouping library.
//
// This package contains shared types that are used across multiple packages in the
// library. By keeping these types in a separate package, we avoid import cycles
// between the main grouping package and its internal implementations.
//
// Key types:
//   - Group: Ordered collection of member identifiers, capacity 3
//   - Partition: Final ordered collection of groups
//   - Builder: Incremental capacity-capped group accumulation
//   - ReorganizeStrategy: Partition repair algorithm interface
//   - RosterSource: Input collaborator interface
//   - Logger: Structured logging interface
//   - MetricsCollector: Metrics recording interface
package types

// Package grouping partitions a roster of identifiers into groups of two or
// three members.
//
// The library reads identifiers from an input collaborator, accumulates them
// into capacity-capped groups, and reorganizes the result so that every
// final group has 2 or 3 members. Already-full groups are preserved; members
// of partial groups are redistributed, randomly in incremental mode or
// deterministically in batch mode.
//
// # Quick Start
//
//	src := source.NewStatic(groups)
//	planner, err := grouping.NewPlanner(src)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	partition, unplaced, err := planner.Plan(ctx)
//
// # Modes
//
// Incremental (default): identifiers arrive one at a time and fill groups of
// three; leftover members of partial groups are shuffled and re-chunked.
// Used for interactive terminal input.
//
// Batch: whole groups are submitted up front as blank-line-delimited blocks;
// oversized groups are split and singleton groups merged, deterministically.
// Used for piped or file input. Select it with
// grouping.WithStrategy(strategy.NewBatch()).
//
// # Guarantees
//
//   - Conservation: no identifier is created or dropped
//   - Size bound: every final group has 2 or 3 members
//   - No singletons: a group of one is never emitted; a roster of exactly
//     one member is returned as unplaced instead, a warning for the caller
//
// # Advanced Usage
//
// Optional dependencies are injected with functional options:
//
//	planner, err := grouping.NewPlanner(src,
//	    grouping.WithStrategy(strategy.NewBatch()),
//	    grouping.WithLogger(logger),
//	    grouping.WithHooks(&grouping.Hooks{
//	        OnGroupComplete: func(i int, g grouping.Group) {
//	            fmt.Printf("group %s complete\n", grouping.GroupLabel(i))
//	        },
//	    }),
//	)
package grouping

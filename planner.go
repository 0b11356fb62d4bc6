package grouping

import (
	"context"
	"fmt"
	"time"

	"github.com/maysay-D/grouping-tool/internal/logger"
	"github.com/maysay-D/grouping-tool/internal/metrics"
	"github.com/maysay-D/grouping-tool/strategy"
)

// Planner runs the grouping pipeline: collect groups from a roster source,
// reorganize them with the configured strategy, and report the final
// partition.
//
// Planner is the main entry point of the library. The algorithmic core is a
// pure, synchronous transformation; the only blocking work is reading the
// roster source, which honors context cancellation between reads.
//
// Returns a concrete *Planner struct following the "accept interfaces,
// return structs" principle. Consumers can define their own interfaces for
// testing if needed.
type Planner struct {
	source RosterSource

	// Optional dependencies
	strategy ReorganizeStrategy
	hooks    *Hooks
	metrics  MetricsCollector
	logger   Logger
}

// NewPlanner creates a new Planner for the given roster source.
//
// Optional dependencies default to the incremental strategy, a no-op logger
// and a no-op metrics collector.
//
// Parameters:
//   - source: Roster source supplying the accumulated input groups
//   - opts: Optional configuration (strategy, hooks, metrics, logger)
//
// Returns:
//   - *Planner: Initialized planner instance
//   - error: ErrSourceRequired when the source is nil
//
// Example:
//
//	src := source.NewStream(os.Stdin)
//	planner, err := grouping.NewPlanner(src, grouping.WithStrategy(strategy.NewBatch()))
func NewPlanner(source RosterSource, opts ...Option) (*Planner, error) {
	if source == nil {
		return nil, ErrSourceRequired
	}

	options := &plannerOptions{}
	for _, opt := range opts {
		opt(options)
	}

	if options.strategy == nil {
		options.strategy = strategy.NewIncremental()
	}
	if options.logger == nil {
		options.logger = logger.NewNop()
	}
	if options.metrics == nil {
		options.metrics = metrics.NewNop()
	}

	return &Planner{
		source:   source,
		strategy: options.strategy,
		hooks:    options.hooks,
		metrics:  options.metrics,
		logger:   options.logger,
	}, nil
}

// Plan collects the roster and computes the final partition.
//
// The roster source is read once; cancellation of ctx ends input early and
// the run completes with whatever was accumulated. The reorganization
// itself is total: the only error condition is an I/O failure from the
// source.
//
// Parameters:
//   - ctx: Context for cooperative cancellation of input reading
//
// Returns:
//   - Partition: Final groups, each with 2 or 3 members
//   - []string: Members left unplaced (at most one, the single-member roster)
//   - error: Input read error (wrapped ErrReadInput), nil otherwise
func (p *Planner) Plan(ctx context.Context) (Partition, []string, error) {
	groups, err := p.source.ReadGroups(ctx)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: %w", ErrReadInput, err)
	}

	total := 0
	for _, g := range groups {
		total += g.Size()
	}
	p.logger.Debug("roster collected", "groups", len(groups), "members", total)

	start := time.Now()
	partition, unplaced := p.strategy.Reorganize(groups)
	p.metrics.RecordReorganizeDuration(time.Since(start).Seconds(), p.strategy.Name())

	p.metrics.RecordGroupCount(len(partition))
	for _, g := range partition {
		p.metrics.RecordGroupSize(g.Size())
	}
	p.metrics.RecordUnplacedMembers(len(unplaced))

	if len(unplaced) > 0 {
		p.logger.Warn("members could not be grouped",
			"unplaced", len(unplaced),
			"reason", "a group needs at least two members",
		)
	}
	p.logger.Info("reorganization complete",
		"mode", p.strategy.Name(),
		"groups", len(partition),
		"members", partition.MemberCount(),
	)

	p.hooks.Reorganized(partition, unplaced)

	return partition, unplaced, nil
}

// Strategy returns the configured reorganize strategy.
func (p *Planner) Strategy() ReorganizeStrategy {
	return p.strategy
}

package grouping

// Option configures a Planner with optional dependencies.
type Option func(*plannerOptions)

// plannerOptions holds optional Planner configuration.
type plannerOptions struct {
	strategy ReorganizeStrategy
	hooks    *Hooks
	metrics  MetricsCollector
	logger   Logger
}

// WithStrategy sets the reorganize strategy.
//
// The default is the randomized incremental strategy; pass
// strategy.NewBatch() for deterministic batch reorganization.
//
// Parameters:
//   - s: ReorganizeStrategy implementation
//
// Returns:
//   - Option: Functional option for NewPlanner
//
// Example:
//
//	planner, err := grouping.NewPlanner(src, grouping.WithStrategy(strategy.NewBatch()))
func WithStrategy(s ReorganizeStrategy) Option {
	return func(o *plannerOptions) {
		o.strategy = s
	}
}

// WithHooks sets roster and reorganization event hooks.
//
// Parameters:
//   - hooks: Hooks structure with callback functions
//
// Returns:
//   - Option: Functional option for NewPlanner
//
// Example:
//
//	hooks := &grouping.Hooks{
//	    OnReorganized: func(p grouping.Partition, unplaced []string) {
//	        render(p, unplaced)
//	    },
//	}
//	planner, err := grouping.NewPlanner(src, grouping.WithHooks(hooks))
func WithHooks(hooks *Hooks) Option {
	return func(o *plannerOptions) {
		o.hooks = hooks
	}
}

// WithMetrics sets a metrics collector.
//
// Parameters:
//   - metrics: MetricsCollector implementation
//
// Returns:
//   - Option: Functional option for NewPlanner
func WithMetrics(metrics MetricsCollector) Option {
	return func(o *plannerOptions) {
		o.metrics = metrics
	}
}

// WithLogger sets a logger.
//
// Parameters:
//   - logger: Logger implementation (compatible with zap.SugaredLogger)
//
// Returns:
//   - Option: Functional option for NewPlanner
func WithLogger(logger Logger) Option {
	return func(o *plannerOptions) {
		o.logger = logger
	}
}

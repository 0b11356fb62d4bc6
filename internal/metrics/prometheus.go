package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/maysay-D/grouping-tool/types"
)

// PrometheusCollector implements types.MetricsCollector backed by Prometheus.
type PrometheusCollector struct {
	reg       prometheus.Registerer
	namespace string
	once      sync.Once

	membersAccepted prometheus.Counter
	membersRemoved  prometheus.Counter
	inputCancelled  prometheus.Counter

	reorganizeDuration *prometheus.HistogramVec
	groupCount         prometheus.Gauge
	groupSizes         prometheus.Histogram
	unplacedMembers    prometheus.Gauge
}

// Compile-time assertion that PrometheusCollector implements MetricsCollector.
var _ types.MetricsCollector = (*PrometheusCollector)(nil)

// NewPrometheus creates a new Prometheus-backed metrics collector.
//
// Parameters:
//   - reg: Prometheus registerer (uses prometheus.DefaultRegisterer if nil)
//   - namespace: Metrics namespace (defaults to "grouping" if empty)
//
// Returns:
//   - *PrometheusCollector: A MetricsCollector implementation using Prometheus
func NewPrometheus(reg prometheus.Registerer, namespace string) *PrometheusCollector {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	if namespace == "" {
		namespace = "grouping"
	}

	return &PrometheusCollector{reg: reg, namespace: namespace}
}

func (p *PrometheusCollector) ensureRegistered() {
	p.once.Do(func() {
		p.membersAccepted = prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: p.namespace,
			Subsystem: "roster",
			Name:      "members_accepted_total",
			Help:      "Total identifiers accepted into the roster.",
		})

		p.membersRemoved = prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: p.namespace,
			Subsystem: "roster",
			Name:      "members_removed_total",
			Help:      "Total identifiers removed by delete commands.",
		})

		p.inputCancelled = prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: p.namespace,
			Subsystem: "roster",
			Name:      "input_cancelled_total",
			Help:      "Input sessions ended early by cooperative cancellation.",
		})

		p.reorganizeDuration = prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: p.namespace,
			Subsystem: "reorganizer",
			Name:      "duration_seconds",
			Help:      "Reorganization duration in seconds by mode.",
			Buckets:   prometheus.ExponentialBuckets(0.0001, 4, 8), // 100µs .. ~1.6s
		}, []string{"mode"})

		p.groupCount = prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: p.namespace,
			Subsystem: "reorganizer",
			Name:      "groups_current",
			Help:      "Number of groups in the most recent final partition.",
		})

		p.groupSizes = prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: p.namespace,
			Subsystem: "reorganizer",
			Name:      "group_size",
			Help:      "Sizes of groups in final partitions.",
			Buckets:   []float64{1, 2, 3, 4},
		})

		p.unplacedMembers = prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: p.namespace,
			Subsystem: "reorganizer",
			Name:      "unplaced_members",
			Help:      "Members left unplaced by the most recent run.",
		})

		p.reg.MustRegister(p.membersAccepted)
		p.reg.MustRegister(p.membersRemoved)
		p.reg.MustRegister(p.inputCancelled)
		p.reg.MustRegister(p.reorganizeDuration)
		p.reg.MustRegister(p.groupCount)
		p.reg.MustRegister(p.groupSizes)
		p.reg.MustRegister(p.unplacedMembers)
	})
}

// RecordMemberAccepted increments the accepted-members counter.
func (p *PrometheusCollector) RecordMemberAccepted() {
	p.ensureRegistered()
	p.membersAccepted.Inc()
}

// RecordMemberRemoved increments the removed-members counter.
func (p *PrometheusCollector) RecordMemberRemoved() {
	p.ensureRegistered()
	p.membersRemoved.Inc()
}

// RecordInputCancelled increments the cancelled-sessions counter.
func (p *PrometheusCollector) RecordInputCancelled() {
	p.ensureRegistered()
	p.inputCancelled.Inc()
}

// RecordReorganizeDuration observes a reorganization duration for the mode.
func (p *PrometheusCollector) RecordReorganizeDuration(duration float64, mode string) {
	p.ensureRegistered()
	p.reorganizeDuration.WithLabelValues(mode).Observe(duration)
}

// RecordGroupCount sets the final group count gauge.
func (p *PrometheusCollector) RecordGroupCount(count int) {
	p.ensureRegistered()
	p.groupCount.Set(float64(count))
}

// RecordGroupSize observes one final group size.
func (p *PrometheusCollector) RecordGroupSize(size int) {
	p.ensureRegistered()
	p.groupSizes.Observe(float64(size))
}

// RecordUnplacedMembers sets the unplaced-members gauge.
func (p *PrometheusCollector) RecordUnplacedMembers(count int) {
	p.ensureRegistered()
	p.unplacedMembers.Set(float64(count))
}

// Package metrics provides MetricsCollector implementations for the
// grouping library.
package metrics

import "github.com/maysay-D/grouping-tool/types"

// NopMetrics is a no-op metrics collector that discards all measurements.
//
// Used as the default collector so callers never need nil checks before
// recording.
type NopMetrics struct{}

// Compile-time assertion that NopMetrics implements MetricsCollector.
var _ types.MetricsCollector = (*NopMetrics)(nil)

// NewNop creates a new no-op metrics collector.
func NewNop() *NopMetrics {
	return &NopMetrics{}
}

// RecordMemberAccepted discards the measurement.
func (n *NopMetrics) RecordMemberAccepted() {}

// RecordMemberRemoved discards the measurement.
func (n *NopMetrics) RecordMemberRemoved() {}

// RecordInputCancelled discards the measurement.
func (n *NopMetrics) RecordInputCancelled() {}

// RecordReorganizeDuration discards the measurement.
func (n *NopMetrics) RecordReorganizeDuration(_ float64, _ string) {}

// RecordGroupCount discards the measurement.
func (n *NopMetrics) RecordGroupCount(_ int) {}

// RecordGroupSize discards the measurement.
func (n *NopMetrics) RecordGroupSize(_ int) {}

// RecordUnplacedMembers discards the measurement.
func (n *NopMetrics) RecordUnplacedMembers(_ int) {}

package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"
)

func TestPrometheusCollector_RecordsCounters(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewPrometheus(reg, "grouping_test")

	m.RecordMemberAccepted()
	m.RecordMemberAccepted()
	m.RecordMemberRemoved()
	m.RecordInputCancelled()

	require.InDelta(t, 2.0, testutil.ToFloat64(m.membersAccepted), 0.001)
	require.InDelta(t, 1.0, testutil.ToFloat64(m.membersRemoved), 0.001)
	require.InDelta(t, 1.0, testutil.ToFloat64(m.inputCancelled), 0.001)
}

func TestPrometheusCollector_RecordsGauges(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewPrometheus(reg, "grouping_test")

	m.RecordGroupCount(4)
	m.RecordUnplacedMembers(1)
	m.RecordGroupSize(3)
	m.RecordReorganizeDuration(0.002, "batch")

	require.InDelta(t, 4.0, testutil.ToFloat64(m.groupCount), 0.001)
	require.InDelta(t, 1.0, testutil.ToFloat64(m.unplacedMembers), 0.001)
}

func TestNewPrometheus_Defaults(t *testing.T) {
	// Nil registerer falls back to the default registerer; a private
	// registry keeps the test isolated, so only check construction here.
	m := NewPrometheus(nil, "")

	require.NotNil(t, m)
	require.Equal(t, "grouping", m.namespace)
	require.Equal(t, prometheus.DefaultRegisterer, m.reg)
}

func TestPrometheusCollector_RegistersOnce(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewPrometheus(reg, "grouping_test")

	// MustRegister panics on duplicate registration; repeated recording
	// must register exactly once.
	require.NotPanics(t, func() {
		m.RecordGroupCount(1)
		m.RecordGroupCount(2)
		m.RecordMemberAccepted()
	})
}

package metrics

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewNop(t *testing.T) {
	m := NewNop()

	require.NotNil(t, m)
	require.IsType(t, &NopMetrics{}, m)
}

func TestNopMetrics_DiscardsEverything(t *testing.T) {
	m := NewNop()

	// Should not panic with various inputs
	require.NotPanics(t, func() {
		m.RecordMemberAccepted()
		m.RecordMemberRemoved()
		m.RecordInputCancelled()
		m.RecordReorganizeDuration(0.5, "incremental")
		m.RecordReorganizeDuration(-1, "")
		m.RecordGroupCount(0)
		m.RecordGroupSize(-1)
		m.RecordUnplacedMembers(1)
	})
}

func BenchmarkNopMetrics_RecordGroupSize(b *testing.B) {
	m := NewNop()
	for b.Loop() {
		m.RecordGroupSize(3)
	}
}

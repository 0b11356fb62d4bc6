package testing

import (
	"sync"

	"github.com/maysay-D/grouping-tool/types"
)

// RecordingMetrics is a MetricsCollector that captures every observation in
// memory so tests can assert on what a component reported.
//
// All methods are safe for concurrent use.
type RecordingMetrics struct {
	mu sync.Mutex

	MembersAccepted int
	MembersRemoved  int
	InputCancelled  int

	Durations  map[string][]float64
	GroupCount int
	GroupSizes []int
	Unplaced   int
}

var _ types.MetricsCollector = (*RecordingMetrics)(nil)

// NewRecordingMetrics creates an empty recording collector.
func NewRecordingMetrics() *RecordingMetrics {
	return &RecordingMetrics{Durations: make(map[string][]float64)}
}

func (m *RecordingMetrics) RecordMemberAccepted() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.MembersAccepted++
}

func (m *RecordingMetrics) RecordMemberRemoved() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.MembersRemoved++
}

func (m *RecordingMetrics) RecordInputCancelled() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.InputCancelled++
}

func (m *RecordingMetrics) RecordReorganizeDuration(duration float64, mode string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Durations[mode] = append(m.Durations[mode], duration)
}

func (m *RecordingMetrics) RecordGroupCount(count int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.GroupCount = count
}

func (m *RecordingMetrics) RecordGroupSize(size int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.GroupSizes = append(m.GroupSizes, size)
}

func (m *RecordingMetrics) RecordUnplacedMembers(count int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Unplaced = count
}

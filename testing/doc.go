// Package testing provides test utilities for the grouping library.
//
// It follows Go's convention of keeping test helpers in a dedicated package
// (similar to net/http/httptest) so that both internal tests and downstream
// consumers can reuse them.
//
// Key utilities:
//   - NewTestLogger: types.Logger backed by testing.T
//   - NewRecordingMetrics: types.MetricsCollector that captures observations
//
// Example usage:
//
//	import (
//	    "testing"
//	    gtest "github.com/maysay-D/grouping-tool/testing"
//	)
//
//	func TestMyComponent(t *testing.T) {
//	    planner, err := grouping.NewPlanner(src, grouping.WithLogger(gtest.NewTestLogger(t)))
//	    // ...
//	}
package testing

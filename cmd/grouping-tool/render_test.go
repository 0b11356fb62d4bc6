package main

import (
	"testing"

	"github.com/stretchr/testify/require"

	grouping "github.com/maysay-D/grouping-tool"
	"github.com/maysay-D/grouping-tool/types"
)

func TestRenderReport(t *testing.T) {
	t.Run("lists groups with letter labels and totals", func(t *testing.T) {
		partition := grouping.Partition{
			types.NewGroup("S001", "S002", "S003"),
			types.NewGroup("S004", "S005"),
		}

		out := renderReport(partition, nil)

		require.Contains(t, out, "Group A (3 members)")
		require.Contains(t, out, "Group B (2 members)")
		require.Contains(t, out, "S001")
		require.Contains(t, out, "S005")
		require.Contains(t, out, "2 groups, 5 members")
		require.NotContains(t, out, "could not place")
	})

	t.Run("warns about unplaced members", func(t *testing.T) {
		out := renderReport(nil, []string{"S001"})

		require.Contains(t, out, "could not place S001")
	})

	t.Run("reports empty input", func(t *testing.T) {
		out := renderReport(nil, nil)

		require.Contains(t, out, "no identifiers were entered")
	})
}

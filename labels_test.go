package grouping

import (
	"math"
	"regexp"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestGroupLabel(t *testing.T) {
	cases := []struct {
		index int
		want  string
	}{
		{index: -1, want: ""},
		{index: 0, want: "A"},
		{index: 1, want: "B"},
		{index: 25, want: "Z"},
		{index: 26, want: "AA"},
		{index: 27, want: "AB"},
		{index: 51, want: "AZ"},
		{index: 52, want: "BA"},
		{index: 701, want: "ZZ"},
		{index: 702, want: "AAA"},
	}

	for _, tc := range cases {
		require.Equal(t, tc.want, GroupLabel(tc.index), "index=%d", tc.index)
	}
}

func TestGroupLabel_TotalOverAllIndices(t *testing.T) {
	// Labels keep growing past "ZZ"; no index may panic or produce a
	// malformed label.
	pattern := regexp.MustCompile(`^[A-Z]+$`)
	for _, index := range []int{18277, 475253, math.MaxInt32, math.MaxInt} {
		require.Regexp(t, pattern, GroupLabel(index), "index=%d", index)
	}
}

func TestGroupLabel_TwoLetterRangeIsUnique(t *testing.T) {
	seen := make(map[string]int, 702)
	for i := range 702 {
		label := GroupLabel(i)
		prev, dup := seen[label]
		require.False(t, dup, "label %q for both %d and %d", label, prev, i)
		seen[label] = i
	}
}

package source

import (
	"context"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/maysay-D/grouping-tool/types"
)

func TestStream_ReadGroups(t *testing.T) {
	t.Run("one group per blank-line-delimited block", func(t *testing.T) {
		input := "S001\nS002\n\nS003\nS004\nS005\nS006\n"
		src := NewStream(strings.NewReader(input))

		groups, err := src.ReadGroups(context.Background())

		require.NoError(t, err)
		require.Len(t, groups, 2)
		require.Equal(t, []string{"S001", "S002"}, groups[0].Members)
		// Blocks are unbounded; splitting is the batch strategy's job.
		require.Equal(t, []string{"S003", "S004", "S005", "S006"}, groups[1].Members)
	})

	t.Run("skips empty blocks", func(t *testing.T) {
		input := "\n\nS001\n\n\n\nS002\n\n"
		src := NewStream(strings.NewReader(input))

		groups, err := src.ReadGroups(context.Background())

		require.NoError(t, err)
		require.Len(t, groups, 2)
		require.Equal(t, []string{"S001"}, groups[0].Members)
		require.Equal(t, []string{"S002"}, groups[1].Members)
	})

	t.Run("seals a trailing block without a final blank line", func(t *testing.T) {
		input := "S001\nS002"
		src := NewStream(strings.NewReader(input))

		groups, err := src.ReadGroups(context.Background())

		require.NoError(t, err)
		require.Len(t, groups, 1)
		require.Equal(t, 2, groups[0].Size())
	})

	t.Run("handles empty input", func(t *testing.T) {
		src := NewStream(strings.NewReader(""))

		groups, err := src.ReadGroups(context.Background())

		require.NoError(t, err)
		require.Empty(t, groups)
	})

	t.Run("returns accumulated groups on cancellation", func(t *testing.T) {
		pr, pw := io.Pipe()
		src := NewStream(pr)
		ctx, cancel := context.WithCancel(context.Background())

		type result struct {
			groups []types.Group
			err    error
		}
		done := make(chan result, 1)
		go func() {
			groups, err := src.ReadGroups(ctx)
			done <- result{groups: groups, err: err}
		}()

		_, err := io.WriteString(pw, "S001\n\nS002\n")
		require.NoError(t, err)

		time.Sleep(50 * time.Millisecond)
		cancel()
		require.NoError(t, pw.Close())

		select {
		case res := <-done:
			require.NoError(t, res.err)
			require.Len(t, res.groups, 2)
			require.Equal(t, []string{"S001"}, res.groups[0].Members)
			require.Equal(t, []string{"S002"}, res.groups[1].Members)
		case <-time.After(2 * time.Second):
			t.Fatal("reader did not return after cancellation")
		}
	})
}

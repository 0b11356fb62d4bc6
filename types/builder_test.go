package types

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBuilder_Add(t *testing.T) {
	t.Run("seals a group at capacity and rolls over", func(t *testing.T) {
		b := NewBuilder()

		require.False(t, b.Add("S001"))
		require.False(t, b.Add("S002"))
		require.True(t, b.Add("S003"))
		require.False(t, b.Add("S004"))

		groups := b.Groups()
		require.Len(t, groups, 2)
		require.Equal(t, []string{"S001", "S002", "S003"}, groups[0].Members)
		require.Equal(t, []string{"S004"}, groups[1].Members)
	})

	t.Run("counts members across sealed and current groups", func(t *testing.T) {
		b := NewBuilder()
		for _, id := range []string{"a", "b", "c", "d"} {
			b.Add(id)
		}

		require.Equal(t, 4, b.Count())
		require.Equal(t, 1, b.CurrentSize())
	})
}

func TestBuilder_Next(t *testing.T) {
	t.Run("seals a partial group early", func(t *testing.T) {
		b := NewBuilder()
		b.Add("S001")
		b.Add("S002")
		b.Next()
		b.Add("S003")

		groups := b.Groups()
		require.Len(t, groups, 2)
		require.Equal(t, 2, groups[0].Size())
		require.Equal(t, 1, groups[1].Size())
	})

	t.Run("discards an empty current group", func(t *testing.T) {
		b := NewBuilder()
		b.Next()
		b.Next()

		require.Empty(t, b.Groups())
	})
}

func TestBuilder_Remove(t *testing.T) {
	t.Run("prefers the current group", func(t *testing.T) {
		b := NewBuilder()
		for _, id := range []string{"S001", "S002", "S003", "S001"} {
			b.Add(id)
		}

		require.True(t, b.Remove("S001"))

		groups := b.Groups()
		require.Len(t, groups, 1)
		require.Equal(t, []string{"S001", "S002", "S003"}, groups[0].Members)
	})

	t.Run("falls back to sealed groups newest first", func(t *testing.T) {
		b := NewBuilder()
		for _, id := range []string{"a", "b", "c", "d", "e", "f"} {
			b.Add(id)
		}

		require.True(t, b.Remove("e"))
		require.False(t, b.Remove("zz"))
		require.Equal(t, 5, b.Count())

		groups := b.Groups()
		require.Equal(t, []string{"d", "f"}, groups[1].Members)
	})

	t.Run("drops a sealed group drained to zero members", func(t *testing.T) {
		b := NewBuilder()
		for _, id := range []string{"a", "b", "c", "d"} {
			b.Add(id)
		}

		require.True(t, b.Remove("a"))
		require.True(t, b.Remove("b"))
		require.True(t, b.Remove("c"))
		require.Equal(t, 0, b.SealedCount())

		groups := b.Groups()
		require.Len(t, groups, 1)
		require.Equal(t, []string{"d"}, groups[0].Members)
	})
}

package source

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/maysay-D/grouping-tool/types"
)

func TestStatic_ReadGroups(t *testing.T) {
	t.Run("returns the fixed list", func(t *testing.T) {
		src := NewStatic([]types.Group{
			types.NewGroup("S001", "S002", "S003"),
			types.NewGroup("S004"),
		})

		groups, err := src.ReadGroups(context.Background())

		require.NoError(t, err)
		require.Len(t, groups, 2)
		require.Equal(t, []string{"S001", "S002", "S003"}, groups[0].Members)
		require.Equal(t, []string{"S004"}, groups[1].Members)
	})

	t.Run("returns independent copies", func(t *testing.T) {
		src := NewStatic([]types.Group{types.NewGroup("S001", "S002")})

		first, err := src.ReadGroups(context.Background())
		require.NoError(t, err)
		first[0].Add("S999")

		second, err := src.ReadGroups(context.Background())
		require.NoError(t, err)
		require.Equal(t, []string{"S001", "S002"}, second[0].Members)
	})
}

func TestStatic_Update(t *testing.T) {
	src := NewStatic(nil)

	groups, err := src.ReadGroups(context.Background())
	require.NoError(t, err)
	require.Empty(t, groups)

	src.Update([]types.Group{types.NewGroup("S001", "S002")})

	groups, err = src.ReadGroups(context.Background())
	require.NoError(t, err)
	require.Len(t, groups, 1)
}

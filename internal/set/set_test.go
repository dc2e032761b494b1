package set

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestInsert(t *testing.T) {
	var s Set[string]
	require.Equal(t, 0, s.Len())
	require.False(t, s.Has("a"))

	require.True(t, s.Insert("a"))
	require.False(t, s.Insert("a"))
	require.True(t, s.Insert("b"))

	require.True(t, s.Has("a"))
	require.Equal(t, 2, s.Len())
}

func TestOf(t *testing.T) {
	s := Of(3, 1, 3, 2, 1)
	require.Equal(t, 3, s.Len())
	require.Equal(t, []int{1, 2, 3}, slices.Sorted(s.Values()))
}

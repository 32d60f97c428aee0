package converter

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSchema_AddPreservesFirstSeenOrder(t *testing.T) {
	s := NewSchema()

	require.Equal(t, 0, s.Add("benchmark"))
	require.Equal(t, 1, s.Add("size"))
	require.Equal(t, 2, s.Add("time"))

	// Re-adding a known key returns its original position
	require.Equal(t, 1, s.Add("size"))
	require.Equal(t, 0, s.Add("benchmark"))

	require.Equal(t, []string{"benchmark", "size", "time"}, s.Keys())
	require.Equal(t, 3, s.Len())
}

func TestSchema_EmptyKeyIsDistinctColumn(t *testing.T) {
	s := NewSchema()

	require.Equal(t, 0, s.Add("a"))
	require.Equal(t, 1, s.Add(""))
	require.Equal(t, 1, s.Add(""))

	require.Equal(t, []string{"a", ""}, s.Keys())
}

func TestSchema_Empty(t *testing.T) {
	s := NewSchema()

	require.Equal(t, 0, s.Len())
	require.Empty(t, s.Keys())
}

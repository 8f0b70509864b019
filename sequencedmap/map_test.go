package sequencedmap_test

import (
	"maps"
	"slices"
	"testing"

	"github.com/speakeasy-api/oasparams/sequencedmap"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMap_Set_PreservesOrder(t *testing.T) {
	t.Parallel()

	m := sequencedmap.New(
		sequencedmap.NewElem("b", 2),
		sequencedmap.NewElem("a", 1),
	)
	m.Set("c", 3)
	m.Set("b", 20)

	assert.Equal(t, []string{"b", "a", "c"}, slices.Collect(m.Keys()))
	assert.Equal(t, []int{20, 1, 3}, slices.Collect(m.Values()))
	assert.Equal(t, 3, m.Len())

	v, ok := m.Get("b")
	require.True(t, ok)
	assert.Equal(t, 20, v)
}

func TestMap_Delete_Success(t *testing.T) {
	t.Parallel()

	m := sequencedmap.New(
		sequencedmap.NewElem("a", 1),
		sequencedmap.NewElem("b", 2),
		sequencedmap.NewElem("c", 3),
	)
	m.Delete("b")
	m.Delete("missing")

	assert.False(t, m.Has("b"))
	assert.Equal(t, []string{"a", "c"}, slices.Collect(m.Keys()))
}

func TestMap_NilSafe(t *testing.T) {
	t.Parallel()

	var m *sequencedmap.Map[string, int]

	assert.Equal(t, 0, m.Len())
	assert.False(t, m.Has("a"))
	assert.Equal(t, 0, m.GetOrZero("a"))
	assert.Empty(t, slices.Collect(m.Keys()))
	m.Delete("a")
}

func TestMap_From_Success(t *testing.T) {
	t.Parallel()

	m := sequencedmap.From(maps.All(map[string]int{"a": 1}))
	assert.Equal(t, 1, m.GetOrZero("a"))
}

func TestMap_IsEqual_Success(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		map1     *sequencedmap.Map[string, int]
		map2     *sequencedmap.Map[string, int]
		expected bool
	}{
		{
			name:     "both nil",
			expected: true,
		},
		{
			name:     "nil and empty",
			map2:     sequencedmap.New[string, int](),
			expected: true,
		},
		{
			name:     "same pairs in different order",
			map1:     sequencedmap.New(sequencedmap.NewElem("a", 1), sequencedmap.NewElem("b", 2)),
			map2:     sequencedmap.New(sequencedmap.NewElem("b", 2), sequencedmap.NewElem("a", 1)),
			expected: true,
		},
		{
			name:     "different values",
			map1:     sequencedmap.New(sequencedmap.NewElem("a", 1)),
			map2:     sequencedmap.New(sequencedmap.NewElem("a", 2)),
			expected: false,
		},
		{
			name:     "different lengths",
			map1:     sequencedmap.New(sequencedmap.NewElem("a", 1)),
			map2:     sequencedmap.New(sequencedmap.NewElem("a", 1), sequencedmap.NewElem("b", 2)),
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.expected, tt.map1.IsEqual(tt.map2))
		})
	}
}

func TestMap_IsEqualFunc_WithCustomLogic(t *testing.T) {
	t.Parallel()

	map1 := sequencedmap.New(sequencedmap.NewElem("a", 1))
	map2 := sequencedmap.New(sequencedmap.NewElem("a", -1))

	assert.False(t, map1.IsEqual(map2))
	assert.True(t, map1.IsEqualFunc(map2, func(a, b int) bool {
		return a == -b
	}))
}

package rangeindex_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/deltasrc/taglight/internal/rangeindex"
)

func TestIndex_Empty(t *testing.T) {
	t.Parallel()

	ix := rangeindex.New[string]()

	assert.Equal(t, 0, ix.Len())
	assert.Nil(t, ix.At(0))
}

func TestIndex_At(t *testing.T) {
	t.Parallel()

	ix := rangeindex.New[string]()
	ix.Insert(10, 20, "a")

	tests := map[string]struct {
		point int
		want  int
	}{
		"before":          {point: 5, want: 0},
		"start inclusive": {point: 10, want: 1},
		"inside":          {point: 15, want: 1},
		"end exclusive":   {point: 20, want: 0},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			assert.Len(t, ix.At(tc.point), tc.want)
		})
	}
}

func TestIndex_OverlappingInsertionOrder(t *testing.T) {
	t.Parallel()

	ix := rangeindex.New[string]()
	ix.Insert(0, 10, "first")
	ix.Insert(5, 15, "second")
	ix.Insert(2, 8, "third")

	entries := ix.Overlapping(0, 20)

	require := []string{"first", "second", "third"}
	for i, e := range entries {
		assert.Equal(t, require[i], e.Payload)
	}
}

func TestIndex_OverlappingExcludesDisjoint(t *testing.T) {
	t.Parallel()

	ix := rangeindex.New[int]()
	ix.Insert(0, 5, 1)
	ix.Insert(10, 15, 2)

	entries := ix.Overlapping(5, 10)
	assert.Empty(t, entries)
}

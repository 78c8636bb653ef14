package generics

import (
	"slices"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSortedKeys(t *testing.T) {
	m := map[string]int{"b": 2, "e": 5, "a": 1}
	// Since the builtin map iterator in Go is deliberately non-deterministic, we
	// run it a bunch of times to show it is stably sorted.
	want := []string{"a", "b", "e"}
	for range 100 {
		got := slices.Collect(SortedKeys(m))
		if !slices.Equal(got, want) {
			t.Errorf("got %v, want %v", got, want)
		}
	}
}

func TestSortedKeysAndValues(t *testing.T) {
	m := map[int]string{1: "1", 5: "5", 3: "3"}
	var keys []int
	var values []string
	for range 100 {
		keys, values = keys[:0], values[:0]
		for k, v := range SortedKeysAndValues(m) {
			keys = append(keys, k)
			values = append(values, v)
		}
		assert.Equal(t, []int{1, 3, 5}, keys)
		assert.Equal(t, []string{"1", "3", "5"}, values)
	}

	// Early break.
	for k := range SortedKeysAndValues(m) {
		assert.Equal(t, 1, k)
		break
	}
}

func TestSet(t *testing.T) {
	// Sets are created empty.
	s := MakeSet[int](10)
	assert.Len(t, s, 0)

	// Check inserting and recovery.
	s.Insert(3, 7)
	assert.Len(t, s, 2)
	assert.True(t, s.Has(3))
	assert.True(t, s.Has(7))
	assert.False(t, s.Has(5))

	s2 := SetWith(5, 7)
	assert.Len(t, s2, 2)
	assert.True(t, s2.Has(5))
	assert.False(t, s2.Has(3))
}

func TestSlices(t *testing.T) {
	assert.Equal(t, []string{"1", "2", "3"}, SliceMap([]int{1, 2, 3}, strconv.Itoa))
}

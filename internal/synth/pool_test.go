package synth

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAllocateUnique(t *testing.T) {
	t.Run("returns first unoccupied candidate", func(t *testing.T) {
		occupied := map[int]struct{}{1: {}, 2: {}}
		draws := []int{1, 2, 3}
		i := 0
		next := func() int { v := draws[i]; i++; return v }

		got, err := AllocateUnique("test values", 10, next, occupied)
		require.NoError(t, err)
		assert.Equal(t, 3, got)
		assert.Contains(t, occupied, 3)
	})

	t.Run("inserts the winner into the occupancy set", func(t *testing.T) {
		occupied := make(map[string]struct{})
		_, err := AllocateUnique("test values", 1, func() string { return "a" }, occupied)
		require.NoError(t, err)

		_, err = AllocateUnique("test values", 5, func() string { return "a" }, occupied)
		require.Error(t, err)
	})

	t.Run("exhaustion names the resource and budget", func(t *testing.T) {
		occupied := map[int]struct{}{7: {}}
		_, err := AllocateUnique("VLAN IDs", 25, func() int { return 7 }, occupied)

		var exhausted *ResourceExhaustedError
		require.ErrorAs(t, err, &exhausted)
		assert.Equal(t, "VLAN IDs", exhausted.Resource)
		assert.Equal(t, 25, exhausted.Attempts)
		assert.Contains(t, err.Error(), "VLAN IDs")
	})

	t.Run("exhaustion leaves the set untouched", func(t *testing.T) {
		occupied := map[int]struct{}{7: {}}
		_, err := AllocateUnique("VLAN IDs", 3, func() int { return 7 }, occupied)
		require.Error(t, err)
		assert.Len(t, occupied, 1)
	})
}

func TestAllocateUniqueFillsSmallSpace(t *testing.T) {
	// A round-robin candidate source over a 10-value space must yield all
	// 10 values, then exhaust.
	occupied := make(map[int]struct{})
	n := 0
	next := func() int { n++; return n % 10 }

	for i := 0; i < 10; i++ {
		_, err := AllocateUnique("small space", 100, next, occupied)
		require.NoError(t, err)
	}
	assert.Len(t, occupied, 10)

	_, err := AllocateUnique("small space", 100, next, occupied)
	var exhausted *ResourceExhaustedError
	assert.True(t, errors.As(err, &exhausted))
}

package synth

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRecencyCache(t *testing.T) {
	t.Run("stores and retrieves", func(t *testing.T) {
		c := newRecencyCache(2)
		c.put(1, "one")

		v, ok := c.get(1)
		assert.True(t, ok)
		assert.Equal(t, "one", v)

		_, ok = c.get(2)
		assert.False(t, ok)
	})

	t.Run("evicts least recently used", func(t *testing.T) {
		c := newRecencyCache(2)
		c.put(1, "one")
		c.put(2, "two")
		c.get(1) // refresh 1; 2 is now oldest
		c.put(3, "three")

		_, ok := c.get(2)
		assert.False(t, ok, "2 should have been evicted")
		_, ok = c.get(1)
		assert.True(t, ok)
		_, ok = c.get(3)
		assert.True(t, ok)
	})

	t.Run("put refreshes existing key", func(t *testing.T) {
		c := newRecencyCache(2)
		c.put(1, "one")
		c.put(2, "two")
		c.put(1, "uno") // refresh 1; 2 is now oldest
		c.put(3, "three")

		v, ok := c.get(1)
		assert.True(t, ok)
		assert.Equal(t, "uno", v)
		_, ok = c.get(2)
		assert.False(t, ok)
	})

	t.Run("capacity is bounded", func(t *testing.T) {
		c := newRecencyCache(4)
		for i := 0; i < 100; i++ {
			c.put(i, "v")
		}
		assert.Equal(t, 4, c.len())
	})

	t.Run("reset empties the cache", func(t *testing.T) {
		c := newRecencyCache(4)
		c.put(1, "one")
		c.reset()
		assert.Equal(t, 0, c.len())
		_, ok := c.get(1)
		assert.False(t, ok)
	})
}

package synth

import "container/list"

// recencyCache is a fixed-capacity LRU cache for small repeated lookups.
// When full, inserting a new key evicts the least-recently-used entry.
type recencyCache struct {
	capacity int
	order    *list.List
	entries  map[int]*list.Element
}

type cacheEntry struct {
	key   int
	value string
}

func newRecencyCache(capacity int) *recencyCache {
	return &recencyCache{
		capacity: capacity,
		order:    list.New(),
		entries:  make(map[int]*list.Element, capacity),
	}
}

// get returns the cached value and marks the key most recently used.
func (c *recencyCache) get(key int) (string, bool) {
	elem, ok := c.entries[key]
	if !ok {
		return "", false
	}
	c.order.MoveToFront(elem)
	return elem.Value.(*cacheEntry).value, true
}

// put inserts or refreshes a key, evicting the oldest entry when full.
func (c *recencyCache) put(key int, value string) {
	if elem, ok := c.entries[key]; ok {
		elem.Value.(*cacheEntry).value = value
		c.order.MoveToFront(elem)
		return
	}
	if c.order.Len() >= c.capacity {
		oldest := c.order.Back()
		c.order.Remove(oldest)
		delete(c.entries, oldest.Value.(*cacheEntry).key)
	}
	c.entries[key] = c.order.PushFront(&cacheEntry{key: key, value: value})
}

// reset drops every entry.
func (c *recencyCache) reset() {
	c.order.Init()
	clear(c.entries)
}

func (c *recencyCache) len() int {
	return c.order.Len()
}

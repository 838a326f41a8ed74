package lookout

var _ Cache[any] = &SimpleCache[any]{}

// SimpleCache stores items densely, addressable by QueryKey or by index.
type SimpleCache[T any] struct {
	items       []T
	itemIndices map[QueryKey]int
	maxCapacity int
}

func (c *SimpleCache[T]) GetIndex(key QueryKey) (int, bool) {
	index, ok := c.itemIndices[key]
	return index, ok
}

func (c *SimpleCache[T]) GetItem(index int) T {
	return c.items[index]
}

// Register stores item under key. A key may only be registered once.
func (c *SimpleCache[T]) Register(key QueryKey, item T) (int, error) {
	if _, ok := c.itemIndices[key]; ok {
		return -1, DuplicateKeyError{Key: key}
	}
	if len(c.itemIndices) >= c.maxCapacity {
		return -1, CacheCapacityError{Capacity: c.maxCapacity}
	}

	idx := len(c.items)
	c.itemIndices[key] = idx
	c.items = append(c.items, item)

	return idx, nil
}

func (c *SimpleCache[T]) Len() int {
	return len(c.items)
}

// Items returns the cached items in registration order.
func (c *SimpleCache[T]) Items() []T {
	return c.items
}

func (c *SimpleCache[T]) Clear() {
	clear(c.items)
	c.items = c.items[:0]
	c.itemIndices = make(map[QueryKey]int)
}

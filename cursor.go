package lookout

var _ iCursor = &Cursor{}

// Cursor walks a view while holding its storage lock. Mutations issued
// through the storage's Enqueue methods inside the loop are applied once the
// cursor is exhausted or Reset.
type Cursor struct {
	view    View
	storage Storage

	matches     []Match
	index       int
	initialized bool
	ownsLock    bool
}

func newCursor(view View, storage Storage) *Cursor {
	return &Cursor{
		view:    view,
		storage: storage,
	}
}

func (c *Cursor) Next() bool {
	if !c.initialized {
		c.initialize()
	}
	if c.index < len(c.matches) {
		c.index++
		return true
	}
	c.Reset()
	return false
}

func (c *Cursor) initialize() {
	if c.initialized {
		return
	}
	if c.storage != nil && !c.storage.Locked() {
		c.storage.Lock()
		c.ownsLock = true
	}
	c.matches = c.view.Snapshot()
	c.index = 0
	c.initialized = true
}

// Entity returns the entity at the cursor position.
func (c *Cursor) Entity() Entity {
	return c.matches[c.index-1].Entity
}

// Tuple returns the tuple at the cursor position.
func (c *Cursor) Tuple() Tuple {
	return c.matches[c.index-1].Tuple
}

func (c *Cursor) Remaining() int {
	return len(c.matches) - c.index
}

// TotalMatched returns the size of the snapshot being walked, or the view's
// current size before iteration starts.
func (c *Cursor) TotalMatched() int {
	if !c.initialized {
		return c.view.Size()
	}
	return len(c.matches)
}

// Reset ends iteration and releases the storage lock, applying queued
// operations.
func (c *Cursor) Reset() {
	c.matches = nil
	c.index = 0
	c.initialized = false
	if c.ownsLock {
		c.ownsLock = false
		c.storage.Unlock()
	}
}

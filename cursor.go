// Package cursor provides a bounded position tracker and a generic list
// built around it. A Cursor walks indexes inside a fixed capacity and can
// optionally rotate past either end. A List pairs a slice with its own
// Cursor and keeps the two in step whenever the slice is replaced through
// the list's mutation methods.
//
//	songs := cursor.NewList[string]().Rotatable(true).WithElements(playlist)
//	next, err := songs.Next()
package cursor

// Cursor tracks a position inside a sequence of known length. It never
// touches the sequence itself, only the capacity it was told about, so it
// can serve on its own wherever a bounded index is needed.
type Cursor struct {
	capacity int
	rotation bool
	index    int
}

// NewCursor creates a cursor over capacity elements, positioned at 0.
func NewCursor(capacity int) *Cursor {
	if capacity < 0 {
		capacity = 0
	}
	return &Cursor{capacity: capacity}
}

// SetRotation toggles wrap-around for Increase and Decrease.
func (c *Cursor) SetRotation(rotation bool) {
	c.rotation = rotation
}

// Value returns the current index. It is meaningful only while the
// capacity is above zero.
func (c *Cursor) Value() int {
	return c.index
}

// SetValue assigns the index directly. The upper bound is inclusive:
// value may equal the capacity, which parks the cursor one past the last
// subscript, and reads through that position report ErrOutOfRange.
func (c *Cursor) SetValue(value int) error {
	if value < 0 || value > c.capacity {
		return ErrOutOfRange
	}
	c.index = value
	return nil
}

// SetCapacity resizes the range the cursor may walk and clamps the index
// to the new last element. A capacity of zero or below keeps the index
// parked at 0, since there is no last element to clamp to.
func (c *Cursor) SetCapacity(capacity int) {
	if capacity < 0 {
		capacity = 0
	}
	c.capacity = capacity
	if capacity == 0 {
		c.index = 0
		return
	}
	if c.index >= capacity {
		c.index = capacity - 1
	}
}

// Increase moves the index one step forward. At the last element it wraps
// to 0 when rotation is on and reports ErrMaxOut when it is off.
func (c *Cursor) Increase() error {
	if c.capacity == 0 {
		return ErrEmptyContainer
	}
	if c.index == c.capacity-1 {
		if !c.rotation {
			return ErrMaxOut
		}
		c.index = 0
		return nil
	}
	c.index++
	return nil
}

// Decrease moves the index one step backward. At the first element it
// wraps to the last when rotation is on and reports ErrMinOut when it is
// off.
func (c *Cursor) Decrease() error {
	if c.capacity == 0 {
		return ErrEmptyContainer
	}
	if c.index == 0 {
		if !c.rotation {
			return ErrMinOut
		}
		c.index = c.capacity - 1
		return nil
	}
	c.index--
	return nil
}

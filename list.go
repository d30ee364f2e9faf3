package cursor

// List pairs a slice with a Cursor that walks it. Moves through the list
// either return errors from the bounded family (Next, Prev and friends)
// or fall back to whatever element the cursor lands on (the Always
// family).
//
// Mutations made through SetElements and Modify resynchronize the cursor
// automatically. The raw slice operations (Append, Remove, Retain,
// Truncate, Elements) deliberately do not, so a batch of edits can run
// without the cursor snapping around in between. After such a batch the
// cursor may point past the data until UpdateCursor is called, and reads
// in that window report ErrOutOfRange.
type List[T any] struct {
	elements []T
	cursor   Cursor
}

// NewList creates an empty list with a non-rotating cursor at 0.
func NewList[T any]() *List[T] {
	return &List[T]{}
}

// Rotatable sets wrap-around moves and returns the list for chaining.
func (l *List[T]) Rotatable(rotatable bool) *List[T] {
	l.cursor.SetRotation(rotatable)
	return l
}

// WithElements assigns the backing slice and returns the list for chaining.
func (l *List[T]) WithElements(elements []T) *List[T] {
	l.SetElements(elements)
	return l
}

// SetRotatable toggles wrap-around moves.
func (l *List[T]) SetRotatable(rotatable bool) {
	l.cursor.SetRotation(rotatable)
}

// SetElements replaces the backing slice and resynchronizes the cursor.
func (l *List[T]) SetElements(elements []T) {
	l.elements = elements
	l.UpdateCursor()
}

// Modify hands the backing slice to fn, adopts the slice fn returns and
// resynchronizes the cursor exactly once afterwards.
func (l *List[T]) Modify(fn func([]T) []T) {
	l.elements = fn(l.elements)
	l.UpdateCursor()
}

// UpdateCursor recomputes the cursor bounds from the current length,
// clamping the index to the last element. Calling it again without a
// mutation in between changes nothing.
func (l *List[T]) UpdateCursor() {
	l.cursor.SetCapacity(len(l.elements))
}

// Current returns the element under the cursor without moving it.
func (l *List[T]) Current() (T, error) {
	if l.Empty() {
		var zero T
		return zero, ErrEmptyContainer
	}
	return l.at(l.cursor.Value())
}

// Next moves the cursor one step forward and returns the element it
// lands on. A refused step reports ErrMaxOut and leaves the cursor where
// it was.
func (l *List[T]) Next() (T, error) {
	return l.NextN(1)
}

// NextN moves the cursor up to n steps forward and returns the element
// it lands on. The walk aborts at the first refused step with ErrMaxOut,
// keeping the position the earlier steps reached. n below one moves
// nothing and reads in place.
func (l *List[T]) NextN(n int) (T, error) {
	if l.Empty() {
		var zero T
		return zero, ErrEmptyContainer
	}
	for i := 0; i < n; i++ {
		if l.cursor.Increase() != nil {
			var zero T
			return zero, ErrMaxOut
		}
	}
	return l.at(l.cursor.Value())
}

// NextAlways moves the cursor one step forward if it can and returns the
// element it ends up on either way. ok is false when the list is empty
// or the cursor points past the data.
func (l *List[T]) NextAlways() (T, bool) {
	return l.NextNAlways(1)
}

// NextNAlways moves the cursor up to n steps forward, stops at the first
// refused step and returns the element at the resulting position.
func (l *List[T]) NextNAlways(n int) (T, bool) {
	if l.Empty() {
		var zero T
		return zero, false
	}
	for i := 0; i < n; i++ {
		if l.cursor.Increase() != nil {
			break
		}
	}
	v, err := l.at(l.cursor.Value())
	return v, err == nil
}

// Prev moves the cursor one step backward and returns the element it
// lands on. A refused step reports ErrMinOut and leaves the cursor where
// it was.
func (l *List[T]) Prev() (T, error) {
	return l.PrevN(1)
}

// PrevN moves the cursor up to n steps backward and returns the element
// it lands on. The walk aborts at the first refused step with ErrMinOut,
// keeping the position the earlier steps reached. n below one moves
// nothing and reads in place.
func (l *List[T]) PrevN(n int) (T, error) {
	if l.Empty() {
		var zero T
		return zero, ErrEmptyContainer
	}
	for i := 0; i < n; i++ {
		if l.cursor.Decrease() != nil {
			var zero T
			return zero, ErrMinOut
		}
	}
	return l.at(l.cursor.Value())
}

// PrevAlways moves the cursor one step backward if it can and returns
// the element it ends up on either way. ok is false when the list is
// empty or the cursor points past the data.
func (l *List[T]) PrevAlways() (T, bool) {
	return l.PrevNAlways(1)
}

// PrevNAlways moves the cursor up to n steps backward, stops at the
// first refused step and returns the element at the resulting position.
func (l *List[T]) PrevNAlways(n int) (T, bool) {
	if l.Empty() {
		var zero T
		return zero, false
	}
	for i := 0; i < n; i++ {
		if l.cursor.Decrease() != nil {
			break
		}
	}
	v, err := l.at(l.cursor.Value())
	return v, err == nil
}

// MoveNext moves the cursor one step forward without reading.
func (l *List[T]) MoveNext() error {
	if l.Empty() {
		return ErrEmptyContainer
	}
	return l.cursor.Increase()
}

// MovePrev moves the cursor one step backward without reading.
func (l *List[T]) MovePrev() error {
	if l.Empty() {
		return ErrEmptyContainer
	}
	return l.cursor.Decrease()
}

// Cursor returns the cursor index. ok is false when the list is empty,
// in which case the index carries no meaning.
func (l *List[T]) Cursor() (int, bool) {
	if l.Empty() {
		return 0, false
	}
	return l.cursor.Value(), true
}

// SetCursor places the cursor at index. The bound is inclusive on the
// upper end, so index may equal Len; Current then reports ErrOutOfRange
// until the cursor moves back in.
func (l *List[T]) SetCursor(index int) error {
	return l.cursor.SetValue(index)
}

// Len returns the number of elements.
func (l *List[T]) Len() int {
	return len(l.elements)
}

// Empty reports whether the list holds no elements.
func (l *List[T]) Empty() bool {
	return len(l.elements) == 0
}

// At reads the element at index without touching the cursor.
func (l *List[T]) At(index int) (T, bool) {
	v, err := l.at(index)
	return v, err == nil
}

// Elements exposes the backing slice. Edits made through it bypass the
// cursor, see UpdateCursor.
func (l *List[T]) Elements() []T {
	return l.elements
}

// ForEach calls fn for every element in order.
func (l *List[T]) ForEach(fn func(T)) {
	for _, element := range l.elements {
		fn(element)
	}
}

// Append adds elements to the end without resynchronizing the cursor.
func (l *List[T]) Append(elements ...T) {
	l.elements = append(l.elements, elements...)
}

// Remove deletes the element at index without resynchronizing the
// cursor. It reports whether index named an element.
func (l *List[T]) Remove(index int) bool {
	if index < 0 || index >= len(l.elements) {
		return false
	}
	l.elements = append(l.elements[:index], l.elements[index+1:]...)
	return true
}

// Retain keeps only the elements keep approves of, preserving order,
// without resynchronizing the cursor.
func (l *List[T]) Retain(keep func(T) bool) {
	kept := l.elements[:0]
	for _, element := range l.elements {
		if keep(element) {
			kept = append(kept, element)
		}
	}
	l.elements = kept
}

// Truncate drops every element past the first n without resynchronizing
// the cursor.
func (l *List[T]) Truncate(n int) {
	if n < 0 {
		n = 0
	}
	if n < len(l.elements) {
		l.elements = l.elements[:n]
	}
}

func (l *List[T]) at(index int) (T, error) {
	if index < 0 || index >= len(l.elements) {
		var zero T
		return zero, ErrOutOfRange
	}
	return l.elements[index], nil
}

package circularbuffer

import "fmt"

var (
	ErrEmptyBuffer = fmt.Errorf("buffer is empty")
	ErrFullBuffer  = fmt.Errorf("buffer is full")
)

type CircularBuffer[T any] struct {
	slots       []slot[T]
	capacity    uint64
	writeCursor uint64 // in [0, 2*capacity)
	readCursor  uint64 // in [0, 2*capacity)
}

// New creates an empty buffer holding up to capacity elements.
// Capacity 0 is valid: the buffer is always both empty and full.
func New[T any](capacity uint64) *CircularBuffer[T] {
	return &CircularBuffer[T]{
		slots:    make([]slot[T], capacity),
		capacity: capacity,
	}
}

// Capacity returns the fixed buffer capacity.
func (b *CircularBuffer[T]) Capacity() uint64 {
	return b.capacity
}

// cursorMax is the cursor modulus. Keeping cursors in [0, 2*capacity)
// lets w == r mean empty while w - r == capacity means full.
func (b *CircularBuffer[T]) cursorMax() uint64 {
	return 2 * b.capacity
}

// advance moves a cursor by one position. Must not be called when capacity is 0.
func (b *CircularBuffer[T]) advance(cursor uint64) uint64 {
	return (cursor + 1) % b.cursorMax()
}

// Len returns the number of elements currently held, in [0, Capacity()].
func (b *CircularBuffer[T]) Len() uint64 {
	if b.capacity == 0 {
		return 0
	}
	return (b.writeCursor + b.cursorMax() - b.readCursor) % b.cursorMax()
}

// Full reports whether Len() == Capacity().
func (b *CircularBuffer[T]) Full() bool {
	return b.Len() == b.capacity
}

// IsEmpty reports whether there is nothing to read.
func (b *CircularBuffer[T]) IsEmpty() bool {
	return b.writeCursor == b.readCursor
}

// Write appends v as the newest element.
// Returns ErrFullBuffer if the buffer is full; the buffer is left unchanged
// and v stays with the caller.
func (b *CircularBuffer[T]) Write(v T) error {
	if b.Full() {
		return ErrFullBuffer
	}

	s := &b.slots[b.writeCursor%b.capacity]
	if s.live {
		panic("unreached")
	}
	s.put(v)
	b.writeCursor = b.advance(b.writeCursor)

	return nil
}

// Read removes and returns the oldest element.
// Returns (zero, ErrEmptyBuffer) if the buffer is empty.
func (b *CircularBuffer[T]) Read() (T, error) {
	if b.IsEmpty() {
		var zero T
		return zero, ErrEmptyBuffer
	}

	v, ok := b.slots[b.readCursor%b.capacity].take()
	if !ok {
		panic("unreached")
	}
	b.readCursor = b.advance(b.readCursor)

	return v, nil
}

// Clear drops every element currently held, oldest first.
func (b *CircularBuffer[T]) Clear() {
	for {
		if _, err := b.Read(); err != nil {
			return
		}
	}
}

// Overwrite writes v, evicting the oldest element first if the buffer is full.
// It never fails. On a zero-capacity buffer there is no room at all and v is
// silently discarded.
func (b *CircularBuffer[T]) Overwrite(v T) {
	if b.Full() {
		// evicted element is dropped
		_, _ = b.Read()
	}

	_ = b.Write(v)
}

// Close drops every element still held and releases the storage.
// A closed buffer behaves like one created with capacity 0.
func (b *CircularBuffer[T]) Close() {
	b.Clear()
	b.slots = nil
	b.capacity = 0
	b.writeCursor = 0
	b.readCursor = 0
}

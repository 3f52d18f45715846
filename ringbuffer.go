package circularbuffer

// CircularBuffer: fixed capacity, single owner, FIFO.
// Not safe for concurrent use; callers that share a buffer must synchronize externally.

// slot holds one element. live is set between the write that filled the slot
// and the read that drained it; val is the zero value whenever live is false.
type slot[T any] struct {
	val  T    // element stored in this slot
	live bool // slot holds an element not yet read
}

// put stores v. The slot must not be live.
func (s *slot[T]) put(v T) {
	s.val = v
	s.live = true
}

// take moves the element out and resets the slot, so the buffer keeps
// no reference to a value it already handed over.
func (s *slot[T]) take() (T, bool) {
	var zero T
	if !s.live {
		return zero, false
	}
	v := s.val
	s.val = zero
	s.live = false
	return v, true
}

package solve

import (
	"sort"
	"sync"
)

// Sorted is a sequence kept ordered ascending by an integer key function,
// in the spirit of using sort.Search directly but without the
// insertion-point bookkeeping at every call site.
//
// Insert places new items at the leftmost position among equal keys,
// before any existing ties. Finding the position is
// O(log n); the shift on insert is O(n), which is fine at the top-k sizes
// this program tracks but would not scale to large mutable sets.
//
// The collection expects a single writer. Readers get short point-in-time
// snapshot copies under a read lock and never block the writer for
// unbounded time.
type Sorted[T any] struct {
	mu    sync.RWMutex
	key   func(T) int
	keys  []int
	items []T
}

// NewSorted returns an empty collection ordered by key.
func NewSorted[T any](key func(T) int) *Sorted[T] {
	return &Sorted[T]{key: key}
}

// Insert adds item, keeping the sequence sorted. Equal keys are added to
// the left of any existing ties.
func (s *Sorted[T]) Insert(item T) {
	k := s.key(item)

	s.mu.Lock()
	defer s.mu.Unlock()

	i := sort.SearchInts(s.keys, k)

	s.keys = append(s.keys, 0)
	copy(s.keys[i+1:], s.keys[i:])
	s.keys[i] = k

	var zero T
	s.items = append(s.items, zero)
	copy(s.items[i+1:], s.items[i:])
	s.items[i] = item
}

// Len returns the number of items held.
func (s *Sorted[T]) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.items)
}

// At returns the item at position i in ascending key order. It panics
// if i is out of range, like a slice index would.
func (s *Sorted[T]) At(i int) T {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.items[i]
}

// Tail returns a copy of the last n items in ascending key order. If the
// collection holds fewer than n items, all of them are returned.
func (s *Sorted[T]) Tail(n int) []T {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if n > len(s.items) {
		n = len(s.items)
	}
	if n <= 0 {
		return nil
	}
	tail := make([]T, n)
	copy(tail, s.items[len(s.items)-n:])
	return tail
}

// Slice returns a snapshot copy of all items in ascending key order.
func (s *Sorted[T]) Slice() []T {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]T, len(s.items))
	copy(out, s.items)
	return out
}

// Descending returns a snapshot copy of all items, largest key first.
func (s *Sorted[T]) Descending() []T {
	out := s.Slice()
	for i, j := 0, len(out)-1; i < j; i, j = i+1, j-1 {
		out[i], out[j] = out[j], out[i]
	}
	return out
}

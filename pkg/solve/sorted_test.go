package solve

import (
	"math/rand"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func byLen(w string) int { return len(w) }

func TestSortedInsertKeepsOrder(t *testing.T) {
	s := NewSorted(byLen)
	for _, w := range []string{"cat", "at", "letter", "a", "press", "tac"} {
		s.Insert(w)
	}

	items := s.Slice()
	require.Len(t, items, 6)
	for i := 1; i < len(items); i++ {
		assert.LessOrEqual(t, len(items[i-1]), len(items[i]), "items: %v", items)
	}
}

func TestSortedInsertTiesGoLeft(t *testing.T) {
	s := NewSorted(byLen)
	s.Insert("cat")
	s.Insert("act")
	s.Insert("tac")

	assert.Equal(t, []string{"tac", "act", "cat"}, s.Slice())
}

func TestSortedAt(t *testing.T) {
	s := NewSorted(byLen)
	for _, w := range []string{"cat", "a", "lette"} {
		s.Insert(w)
	}

	assert.Equal(t, "a", s.At(0))
	assert.Equal(t, "cat", s.At(1))
	assert.Equal(t, "lette", s.At(2))
	assert.Panics(t, func() { s.At(3) })
	assert.Panics(t, func() { s.At(-1) })
}

func TestSortedTail(t *testing.T) {
	s := NewSorted(byLen)
	for _, w := range []string{"a", "at", "cat", "pres", "lette"} {
		s.Insert(w)
	}

	assert.Equal(t, []string{"cat", "pres", "lette"}, s.Tail(3))
	assert.Equal(t, []string{"a", "at", "cat", "pres", "lette"}, s.Tail(99))
	assert.Nil(t, s.Tail(0))

	empty := NewSorted(byLen)
	assert.Nil(t, empty.Tail(5))
}

func TestSortedDescending(t *testing.T) {
	s := NewSorted(byLen)
	for _, w := range []string{"at", "lette", "cat"} {
		s.Insert(w)
	}
	assert.Equal(t, []string{"lette", "cat", "at"}, s.Descending())
	// Snapshot, not a view.
	s.Insert("abcdef")
	assert.Equal(t, []string{"abcdef", "lette", "cat", "at"}, s.Descending())
}

func TestSortedRandomizedInvariant(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	s := NewSorted(func(n int) int { return n })

	for i := 0; i < 500; i++ {
		s.Insert(rng.Intn(50))
	}

	items := s.Slice()
	require.Len(t, items, 500)
	for i := 1; i < len(items); i++ {
		assert.LessOrEqual(t, items[i-1], items[i])
	}
}

// One writer inserting while readers snapshot: readers must always see a
// sorted sequence and never block the writer indefinitely.
func TestSortedReadersDuringWrites(t *testing.T) {
	s := NewSorted(byLen)
	words := []string{"a", "at", "cat", "tacs", "press", "letter", "presses"}

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		for i := 0; i < 200; i++ {
			for _, w := range words {
				s.Insert(w)
			}
		}
	}()

	for i := 0; i < 50; i++ {
		items := s.Tail(10)
		for i := 1; i < len(items); i++ {
			assert.LessOrEqual(t, len(items[i-1]), len(items[i]))
		}
		_ = s.Len()
		_ = s.Descending()
	}
	wg.Wait()

	assert.Equal(t, 200*len(words), s.Len())
}

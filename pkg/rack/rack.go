// Package rack models the fixed multiset of letters a search runs against
// and the sub-multiset test that decides whether a word can be spelled
// from it.
package rack

import (
	"errors"
	"strings"
)

// ErrEmptyRack is returned when a rack is built from an empty string.
var ErrEmptyRack = errors.New("rack: no letters supplied")

// Rack is an immutable count-per-letter view of the available tiles.
// It is built once at startup and safe for unsynchronized concurrent
// reads; nothing mutates it after New returns.
type Rack struct {
	letters string
	counts  map[rune]int
	size    int
}

// New builds a Rack from the raw rack string. Letters are lower-cased;
// any rune is accepted as a tile. An empty string is a configuration
// error, not a valid empty rack.
func New(letters string) (*Rack, error) {
	lowered := strings.ToLower(strings.TrimSpace(letters))
	if lowered == "" {
		return nil, ErrEmptyRack
	}

	counts := make(map[rune]int)
	size := 0
	for _, r := range lowered {
		counts[r]++
		size++
	}
	return &Rack{letters: lowered, counts: counts, size: size}, nil
}

// Letters returns the normalized rack string.
func (rk *Rack) Letters() string { return rk.letters }

// Size returns the total tile count, which equals len(Letters()).
func (rk *Rack) Size() int { return rk.size }

// Count returns how many tiles of the given letter the rack holds.
func (rk *Rack) Count(r rune) int { return rk.counts[r] }

// Fits reports whether word can be spelled using no more copies of each
// letter than the rack supplies.
//
// Each call works on its own scratch copy of the counts. The rack itself
// is never written, so Fits may be invoked from any number of goroutines
// at once without coordination.
func (rk *Rack) Fits(word string) bool {
	if word == "" {
		return true
	}

	remaining := make(map[rune]int, len(rk.counts))
	for r, n := range rk.counts {
		remaining[r] = n
	}

	for _, r := range word {
		n := remaining[r]
		if n == 0 {
			return false
		}
		remaining[r] = n - 1
	}
	return true
}

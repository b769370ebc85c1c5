/*
Package dictionary loads the candidate word list a search runs over.

Input is a line-oriented text file, one word per line. Words are
lower-cased, whitespace-trimmed, deduplicated and filtered down to
lengths that could possibly fit the rack (1 < len <= rack size). The
surviving words are kept sorted ascending by length so that work blocks
trend from short words to long ones and the "best so far" signal means
something early in a run.

Words live in a patricia trie; a failed Insert is the duplicate signal
and the trie also backs Contains lookups after loading.
*/
package dictionary

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/tchap/go-patricia/v2/patricia"
)

// Dictionary is the immutable, filtered word list. Built once by Load or
// Read and never mutated afterwards, so it is safe to share across
// goroutines.
type Dictionary struct {
	trie  *patricia.Trie
	words []string
}

// Load reads the word list at path. A missing or unreadable file is a
// fatal startup condition for callers; the error carries the path.
func Load(path string, maxLen int) (*Dictionary, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open word list %s: %w", path, err)
	}
	defer file.Close()

	return Read(file, maxLen)
}

// Read builds a Dictionary from any line-oriented reader. maxLen is the
// rack size; words longer than it can never fit and are dropped, as are
// empty and single-letter entries.
func Read(r io.Reader, maxLen int) (*Dictionary, error) {
	d := &Dictionary{trie: patricia.NewTrie()}

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		word := strings.ToLower(strings.TrimSpace(scanner.Text()))
		// Letter counts, not byte counts: a multi-byte rack must not
		// drop its own spelling.
		n := utf8.RuneCountInString(word)
		if n <= 1 || n > maxLen {
			continue
		}
		if d.trie.Insert(patricia.Prefix(word), struct{}{}) {
			d.words = append(d.words, word)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read word list: %w", err)
	}

	// Stable so equal-length words keep file order.
	sort.SliceStable(d.words, func(i, j int) bool {
		return utf8.RuneCountInString(d.words[i]) < utf8.RuneCountInString(d.words[j])
	})
	return d, nil
}

// Words returns the filtered list, sorted ascending by word length.
// Callers must not modify the returned slice.
func (d *Dictionary) Words() []string { return d.words }

// Len returns the number of candidate words after filtering.
func (d *Dictionary) Len() int { return len(d.words) }

// Contains reports whether word survived loading.
func (d *Dictionary) Contains(word string) bool {
	return d.trie.Get(patricia.Prefix(strings.ToLower(word))) != nil
}

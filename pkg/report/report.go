/*
Package report formats the final best-words line and optionally exports
the full result set as a compact msgpack payload.

The export uses short msgpack field tags to keep the binary small; it is
a user-requested artifact of a single run, not persistence between runs.
*/
package report

import (
	"fmt"
	"os"
	"strings"
	"unicode/utf8"

	"github.com/vmihailenco/msgpack/v5"
)

// Entry is one collected match in the export payload.
type Entry struct {
	Word   string `msgpack:"w"`
	Length int    `msgpack:"l"`
}

// Summary is the export payload for a finished run.
type Summary struct {
	Letters    string  `msgpack:"rack"`
	Evaluated  int     `msgpack:"n"`
	EvalErrors uint64  `msgpack:"e,omitempty"`
	State      string  `msgpack:"st"`
	Words      []Entry `msgpack:"words"`
}

// NewSummary builds the export payload from the solver's descending word
// list.
func NewSummary(letters string, evaluated int, evalErrors uint64, state string, words []string) *Summary {
	entries := make([]Entry, len(words))
	for i, w := range words {
		entries[i] = Entry{Word: w, Length: utf8.RuneCountInString(w)}
	}
	return &Summary{
		Letters:    letters,
		Evaluated:  evaluated,
		EvalErrors: evalErrors,
		State:      state,
		Words:      entries,
	}
}

// Format renders the final best-words log line: every collected word,
// longest first, comma-joined. An empty run reads as an explicit "no
// matches" so the report line is never blank.
func Format(words []string) string {
	if len(words) == 0 {
		return "no matches"
	}
	return strings.Join(words, ", ")
}

// WriteFile marshals the summary to path.
func WriteFile(path string, s *Summary) error {
	data, err := msgpack.Marshal(s)
	if err != nil {
		return fmt.Errorf("encode summary: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write summary %s: %w", path, err)
	}
	return nil
}

// ReadFile loads a previously exported summary.
func ReadFile(path string) (*Summary, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read summary %s: %w", path, err)
	}
	var s Summary
	if err := msgpack.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("decode summary %s: %w", path, err)
	}
	return &s, nil
}

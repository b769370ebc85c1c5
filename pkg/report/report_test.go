package report

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormat(t *testing.T) {
	assert.Equal(t, "no matches", Format(nil))
	assert.Equal(t, "no matches", Format([]string{}))
	assert.Equal(t, "cat", Format([]string{"cat"}))
	assert.Equal(t, "cat, act, at, a", Format([]string{"cat", "act", "at", "a"}))
}

func TestExportRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "results.bin")
	s := NewSummary("cat", 5, 0, "done", []string{"cat", "act", "at"})

	require.NoError(t, WriteFile(path, s))

	got, err := ReadFile(path)
	require.NoError(t, err)

	assert.Equal(t, "cat", got.Letters)
	assert.Equal(t, 5, got.Evaluated)
	assert.Equal(t, "done", got.State)
	require.Len(t, got.Words, 3)
	assert.Equal(t, Entry{Word: "cat", Length: 3}, got.Words[0])
	assert.Equal(t, Entry{Word: "at", Length: 2}, got.Words[2])
}

func TestNewSummaryCountsLetters(t *testing.T) {
	s := NewSummary("café", 2, 0, "done", []string{"café", "fa"})

	require.Len(t, s.Words, 2)
	assert.Equal(t, Entry{Word: "café", Length: 4}, s.Words[0])
	assert.Equal(t, Entry{Word: "fa", Length: 2}, s.Words[1])
}

func TestReadFileMissing(t *testing.T) {
	_, err := ReadFile(filepath.Join(t.TempDir(), "nope.bin"))
	assert.Error(t, err)
}

package dictionary

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadNormalizesAndFilters(t *testing.T) {
	input := strings.Join([]string{
		"  Cat ",
		"AT",
		"a",       // too short
		"act",
		"cat",     // duplicate after lowering
		"catered", // longer than the rack
		"",
		"tac",
	}, "\n")

	d, err := Read(strings.NewReader(input), 3)
	require.NoError(t, err)

	assert.Equal(t, 4, d.Len())
	assert.Equal(t, []string{"at", "cat", "act", "tac"}, d.Words())

	assert.True(t, d.Contains("cat"))
	assert.True(t, d.Contains("AT"))
	assert.False(t, d.Contains("a"))
	assert.False(t, d.Contains("catered"))
}

func TestReadSortsAscendingByLength(t *testing.T) {
	input := "lettuce\nox\npepper\nbun\ntomato\nat\n"

	d, err := Read(strings.NewReader(input), 10)
	require.NoError(t, err)

	words := d.Words()
	for i := 1; i < len(words); i++ {
		assert.LessOrEqual(t, len(words[i-1]), len(words[i]),
			"words must be sorted ascending by length: %v", words)
	}
	// Equal lengths keep file order.
	assert.Equal(t, []string{"ox", "at", "bun", "pepper", "tomato", "lettuce"}, words)
}

func TestReadCountsLettersNotBytes(t *testing.T) {
	// "café" is 4 letters in 5 bytes; a rack of size 4 must keep it.
	input := "café\ncafés\né\nfa\n"

	d, err := Read(strings.NewReader(input), 4)
	require.NoError(t, err)

	assert.True(t, d.Contains("café"))
	assert.False(t, d.Contains("cafés")) // 5 letters, over the rack
	assert.False(t, d.Contains("é"))     // single letter despite 2 bytes
	assert.Equal(t, []string{"fa", "café"}, d.Words())
}

func TestReadEmptyInput(t *testing.T) {
	d, err := Read(strings.NewReader(""), 5)
	require.NoError(t, err)
	assert.Zero(t, d.Len())
	assert.Empty(t, d.Words())
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.txt"), 5)
	assert.Error(t, err)
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "words.txt")
	require.NoError(t, os.WriteFile(path, []byte("cat\nat\ndog\n"), 0o644))

	d, err := Load(path, 3)
	require.NoError(t, err)
	assert.Equal(t, []string{"at", "cat", "dog"}, d.Words())
}

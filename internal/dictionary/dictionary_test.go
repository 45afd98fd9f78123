package dictionary_test

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kumarlokesh/morse-decoder/internal/dictionary"
	"github.com/kumarlokesh/morse-decoder/internal/morse"
	"github.com/kumarlokesh/morse-decoder/internal/trie"
)

func TestRead(t *testing.T) {
	words, err := dictionary.Read(strings.NewReader("test\n  east \n\n\r\ndance\r\n"))
	require.NoError(t, err)
	assert.Equal(t, []string{"test", "east", "dance"}, words)
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()

	path := filepath.Join(dir, "dictionary.txt")
	require.NoError(t, os.WriteFile(path, []byte("hello\nworld\n"), 0o644))
	words, err := dictionary.Load(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"hello", "world"}, words)

	empty := filepath.Join(dir, "empty.txt")
	require.NoError(t, os.WriteFile(empty, []byte("\n \n"), 0o644))
	_, err = dictionary.Load(empty)
	assert.ErrorIs(t, err, dictionary.ErrEmptyDictionary)

	_, err = dictionary.Load(filepath.Join(dir, "missing.txt"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestNormalizer(t *testing.T) {
	n := dictionary.NewNormalizer()
	assert.Equal(t, "TEST", n.Normalize(" test\t"))
	assert.Equal(t, "X-RAY", n.Normalize("x-ray"))
	assert.Equal(t, "R2D2", n.Normalize("r2d2"))
}

func TestEntries_SkipsUnsupported(t *testing.T) {
	var logs bytes.Buffer
	logger := zerolog.New(&logs)

	entries, stats := dictionary.Entries(
		[]string{"test", "can't", "café", "", "sos"},
		dictionary.WithLogger(logger),
	)

	require.Len(t, entries, 2)
	assert.Equal(t, "TEST", entries[0].Word)
	assert.Equal(t, []morse.Token{"-", ".", "...", "-"}, entries[0].Sequence)
	assert.Equal(t, "SOS", entries[1].Word)

	assert.Equal(t, dictionary.Stats{Lines: 5, Encoded: 2, Skipped: 3}, stats)
	assert.Contains(t, logs.String(), "can't")
	assert.Contains(t, logs.String(), "café")
}

func TestBuild(t *testing.T) {
	words := []string{"first", "emit", "second"}
	tr, stats := dictionary.Build(words, dictionary.WithDuplicatePolicy(trie.KeepFirst))

	assert.Equal(t, trie.KeepFirst, tr.Policy())
	assert.Equal(t, 3, tr.Len())
	assert.Equal(t, 3, stats.Encoded)
	assert.Zero(t, stats.Collisions)

	seq, err := morse.EncodeWord("EMIT")
	require.NoError(t, err)
	word, ok := tr.Lookup(seq)
	assert.True(t, ok)
	assert.Equal(t, "EMIT", word)
}

func TestBuild_RepeatedWords(t *testing.T) {
	// Per-character encoding is injective, so only repeats of the same
	// normalized word can share a sequence and those are not collisions.
	tr, stats := dictionary.Build([]string{"Test", "TEST", "test"})
	assert.Equal(t, 1, tr.Len())
	assert.Zero(t, stats.Collisions)
	assert.Equal(t, 3, stats.Encoded)
}

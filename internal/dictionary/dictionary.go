// Package dictionary turns a newline-delimited word list into trie entries.
package dictionary

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/rs/zerolog"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/kumarlokesh/morse-decoder/internal/morse"
	"github.com/kumarlokesh/morse-decoder/internal/trie"
)

var (
	// ErrEmptyDictionary is returned when a word list yields no usable entry.
	ErrEmptyDictionary = errors.New("dictionary has no usable words")
)

// Stats summarizes a dictionary load.
type Stats struct {
	Lines      int
	Encoded    int
	Skipped    int
	Collisions int
}

// Option configures dictionary processing.
type Option func(*options)

type options struct {
	logger zerolog.Logger
	policy trie.DuplicatePolicy
}

// WithLogger sets the logger used to report skipped words and collisions.
func WithLogger(l zerolog.Logger) Option {
	return func(o *options) {
		o.logger = l
	}
}

// WithDuplicatePolicy sets the trie's duplicate-encoding policy.
func WithDuplicatePolicy(p trie.DuplicatePolicy) Option {
	return func(o *options) {
		o.policy = p
	}
}

func newOptions(opts []Option) *options {
	o := &options{logger: zerolog.Nop(), policy: trie.KeepLast}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// Read returns the non-blank lines of r, trimmed.
func Read(r io.Reader) ([]string, error) {
	var words []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		words = append(words, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read word list: %w", err)
	}
	return words, nil
}

// Load reads the word list at path.
func Load(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open dictionary: %w", err)
	}
	defer f.Close()

	words, err := Read(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	if len(words) == 0 {
		return nil, fmt.Errorf("%s: %w", path, ErrEmptyDictionary)
	}
	return words, nil
}

// Normalizer trims and uppercases dictionary words. It is not safe for
// concurrent use.
type Normalizer struct {
	caser cases.Caser
}

// NewNormalizer creates a Normalizer.
func NewNormalizer() *Normalizer {
	return &Normalizer{caser: cases.Upper(language.Und)}
}

// Normalize returns w trimmed and uppercased.
func (n *Normalizer) Normalize(w string) string {
	return n.caser.String(strings.TrimSpace(w))
}

// Entries normalizes and encodes words. Blank words and words containing
// characters outside the Morse alphabet are skipped and logged.
func Entries(words []string, opts ...Option) ([]trie.Entry, Stats) {
	o := newOptions(opts)
	return entries(words, o)
}

func entries(words []string, o *options) ([]trie.Entry, Stats) {
	norm := NewNormalizer()
	stats := Stats{Lines: len(words)}
	out := make([]trie.Entry, 0, len(words))

	for i, raw := range words {
		w := norm.Normalize(raw)
		if w == "" {
			stats.Skipped++
			continue
		}
		seq, err := morse.EncodeWord(w)
		if err != nil {
			stats.Skipped++
			o.logger.Warn().Err(err).Int("line", i+1).Str("word", raw).Msg("Skipping dictionary word")
			continue
		}
		out = append(out, trie.Entry{Word: w, Sequence: seq})
	}
	stats.Encoded = len(out)
	return out, stats
}

// Build encodes words and inserts them into a fresh trie.
func Build(words []string, opts ...Option) (*trie.Trie, Stats) {
	o := newOptions(opts)
	es, stats := entries(words, o)

	t := trie.Build(es,
		trie.WithDuplicatePolicy(o.policy),
		trie.WithCollisionFunc(func(existing, incoming, kept string, seq []morse.Token) {
			stats.Collisions++
			o.logger.Debug().
				Str("existing", existing).
				Str("incoming", incoming).
				Str("kept", kept).
				Str("morse", morse.Join(seq)).
				Msg("Duplicate morse encoding")
		}),
	)

	o.logger.Info().
		Int("lines", stats.Lines).
		Int("encoded", stats.Encoded).
		Int("skipped", stats.Skipped).
		Int("collisions", stats.Collisions).
		Int("nodes", t.NodeCount()).
		Msg("Built morse trie")
	return t, stats
}

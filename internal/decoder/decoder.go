// Package decoder resolves masked Morse queries against a dictionary trie.
//
// A query is a sequence of per-character tokens whose first symbol may be
// unknown. The decoder walks the trie depth-first, trying the dash and then
// the dot resolution at every masked position, and collects the words whose
// encoding ends exactly at the end of the query.
package decoder

import (
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/kumarlokesh/morse-decoder/internal/morse"
	"github.com/kumarlokesh/morse-decoder/internal/trie"
)

// Query is a parsed masked query.
type Query []morse.QueryToken

// ParseQuery validates raw tokens. The mask may only appear as the first
// symbol of a token.
func ParseQuery(raw []string, mask byte) (Query, error) {
	q := make(Query, len(raw))
	for i, s := range raw {
		tok, err := morse.ParseMasked(s, mask)
		if err != nil {
			var tokErr *morse.TokenError
			if errors.As(err, &tokErr) {
				tokErr.Index = i
			}
			return nil, fmt.Errorf("invalid query: %w", err)
		}
		q[i] = tok
	}
	return q, nil
}

// Masked returns the number of masked positions in q.
func (q Query) Masked() int {
	n := 0
	for _, tok := range q {
		if tok.Masked {
			n++
		}
	}
	return n
}

// Option configures a Decoder.
type Option func(*Decoder)

// WithLogger sets the decoder's logger.
func WithLogger(l zerolog.Logger) Option {
	return func(d *Decoder) {
		d.logger = l
	}
}

// WithMask sets the placeholder symbol used by Decode. The default is 'x'.
func WithMask(mask byte) Option {
	return func(d *Decoder) {
		d.mask = mask
	}
}

// Decoder searches a built trie. It never mutates the trie, so one Decoder
// can serve concurrent callers.
type Decoder struct {
	trie   *trie.Trie
	logger zerolog.Logger
	mask   byte
}

// New creates a Decoder over t.
func New(t *trie.Trie, opts ...Option) *Decoder {
	d := &Decoder{
		trie:   t,
		logger: zerolog.Nop(),
		mask:   morse.DefaultMask,
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// frame is one pending (position, node) pair of the search.
type frame struct {
	index int
	node  *trie.Node
}

// Candidates returns every stored word consistent with q, in search order:
// depth-first, dash resolution before dot resolution at each masked position.
// A query with no match yields an empty slice.
func (d *Decoder) Candidates(q Query) []string {
	words := []string{}
	stack := []frame{{index: 0, node: d.trie.Root()}}
	var expanded int

	for len(stack) > 0 {
		f := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		expanded++

		if f.index == len(q) {
			if w, ok := f.node.Word(); ok {
				words = append(words, w)
			}
			continue
		}

		// Push in reverse so the first candidate is explored first.
		cands := q[f.index].Candidates()
		for i := len(cands) - 1; i >= 0; i-- {
			if child, ok := f.node.Child(cands[i]); ok {
				stack = append(stack, frame{index: f.index + 1, node: child})
			}
		}
	}

	d.logger.Debug().
		Int("tokens", len(q)).
		Int("masked", q.Masked()).
		Int("expanded", expanded).
		Int("matches", len(words)).
		Msg("Resolved masked query")
	return words
}

// Decode parses raw with the decoder's mask and returns the matching words.
func (d *Decoder) Decode(raw []string) ([]string, error) {
	q, err := ParseQuery(raw, d.mask)
	if err != nil {
		return nil, err
	}
	return d.Candidates(q), nil
}

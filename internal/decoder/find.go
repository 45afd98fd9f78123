package decoder

import (
	"github.com/kumarlokesh/morse-decoder/internal/dictionary"
)

// FindCandidateWords encodes dictionaryWords, builds a trie over them and
// returns the words consistent with maskedSequence. Words the Morse alphabet
// cannot encode are skipped. The mask symbol is 'x' unless WithMask is given.
func FindCandidateWords(maskedSequence []string, dictionaryWords []string, opts ...Option) ([]string, error) {
	d := New(nil, opts...)
	q, err := ParseQuery(maskedSequence, d.mask)
	if err != nil {
		return nil, err
	}

	t, _ := dictionary.Build(dictionaryWords, dictionary.WithLogger(d.logger))
	d.trie = t
	return d.Candidates(q), nil
}

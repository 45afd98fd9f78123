package morse_test

import (
	"testing"

	"github.com/kumarlokesh/morse-decoder/internal/morse"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAlphabet_RoundTrip(t *testing.T) {
	alphabet := morse.Alphabet()
	require.Len(t, alphabet, 37)

	seen := make(map[morse.Token]rune)
	for _, c := range alphabet {
		tok, err := morse.EncodeChar(c)
		require.NoError(t, err, "encode %q", c)

		prev, dup := seen[tok]
		assert.False(t, dup, "%q and %q share token %s", prev, c, tok)
		seen[tok] = c

		got, err := morse.DecodeToken(tok)
		require.NoError(t, err)
		assert.Equal(t, c, got)
	}
}

func TestEncodeChar_Unsupported(t *testing.T) {
	for _, c := range []rune{'a', 'z', ' ', '\'', 'É', '.'} {
		_, err := morse.EncodeChar(c)
		assert.ErrorIs(t, err, morse.ErrUnsupportedCharacter, "char %q", c)
	}
}

func TestDecodeToken_Unknown(t *testing.T) {
	for _, tok := range []morse.Token{"", "......", "x", "--.--."} {
		_, err := morse.DecodeToken(tok)
		assert.ErrorIs(t, err, morse.ErrUnknownToken, "token %q", tok)
	}
}

func TestEncodeWord(t *testing.T) {
	tests := []struct {
		name string
		word string
		want []morse.Token
	}{
		{name: "test", word: "TEST", want: []morse.Token{"-", ".", "...", "-"}},
		{name: "hello", word: "HELLO", want: []morse.Token{"....", ".", ".-..", ".-..", "---"}},
		{name: "digits and separator", word: "A-1", want: []morse.Token{".-", "-....-", ".----"}},
		{name: "empty", word: "", want: []morse.Token{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := morse.EncodeWord(tt.word)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)

			back, err := morse.DecodeSequence(got)
			require.NoError(t, err)
			assert.Equal(t, tt.word, back)
		})
	}
}

func TestEncodeWord_ReportsPosition(t *testing.T) {
	_, err := morse.EncodeWord("CAN'T")
	require.ErrorIs(t, err, morse.ErrUnsupportedCharacter)

	var charErr *morse.CharError
	require.ErrorAs(t, err, &charErr)
	assert.Equal(t, '\'', charErr.Char)
	assert.Equal(t, 3, charErr.Pos)
}

func TestDecodeSequence_UnknownToken(t *testing.T) {
	_, err := morse.DecodeSequence([]morse.Token{"....", "......."})
	require.ErrorIs(t, err, morse.ErrUnknownToken)

	var tokErr *morse.TokenError
	require.ErrorAs(t, err, &tokErr)
	assert.Equal(t, 1, tokErr.Index)
}

func TestJoinSplit(t *testing.T) {
	seq := []morse.Token{"-", ".", "...", "-"}
	assert.Equal(t, "- . ... -", morse.Join(seq))
	assert.Equal(t, seq, morse.Split("  -  . ...   - "))
}

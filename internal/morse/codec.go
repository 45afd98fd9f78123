// Package morse converts between alphanumeric characters and International
// Morse code tokens.
package morse

import (
	"strings"
)

// Token is the dot/dash encoding of a single character, e.g. ".-" for A.
type Token string

// Morse primitive symbols.
const (
	Dot  = '.'
	Dash = '-'
)

// letterToMorse covers A-Z, 0-9 and the hyphen separator.
var letterToMorse = map[rune]Token{
	'A': ".-",
	'B': "-...",
	'C': "-.-.",
	'D': "-..",
	'E': ".",
	'F': "..-.",
	'G': "--.",
	'H': "....",
	'I': "..",
	'J': ".---",
	'K': "-.-",
	'L': ".-..",
	'M': "--",
	'N': "-.",
	'O': "---",
	'P': ".--.",
	'Q': "--.-",
	'R': ".-.",
	'S': "...",
	'T': "-",
	'U': "..-",
	'V': "...-",
	'W': ".--",
	'X': "-..-",
	'Y': "-.--",
	'Z': "--..",
	'0': "-----",
	'1': ".----",
	'2': "..---",
	'3': "...--",
	'4': "....-",
	'5': ".....",
	'6': "-....",
	'7': "--...",
	'8': "---..",
	'9': "----.",
	'-': "-....-",
}

// morseToLetter is the inverse of letterToMorse, built once at init.
var morseToLetter = func() map[Token]rune {
	m := make(map[Token]rune, len(letterToMorse))
	for c, t := range letterToMorse {
		m[t] = c
	}
	return m
}()

// Alphabet returns the supported characters in table order: A-Z, 0-9, '-'.
func Alphabet() []rune {
	out := make([]rune, 0, len(letterToMorse))
	for c := 'A'; c <= 'Z'; c++ {
		out = append(out, c)
	}
	for c := '0'; c <= '9'; c++ {
		out = append(out, c)
	}
	return append(out, '-')
}

// EncodeChar returns the Morse token for c. Lowercase letters are not
// accepted; callers normalize input first.
func EncodeChar(c rune) (Token, error) {
	t, ok := letterToMorse[c]
	if !ok {
		return "", &CharError{Char: c, Pos: -1, Err: ErrUnsupportedCharacter}
	}
	return t, nil
}

// DecodeToken returns the character encoded by t.
func DecodeToken(t Token) (rune, error) {
	c, ok := morseToLetter[t]
	if !ok {
		return 0, &TokenError{Token: string(t), Index: -1, Err: ErrUnknownToken}
	}
	return c, nil
}

// EncodeWord encodes every character of w, preserving order.
func EncodeWord(w string) ([]Token, error) {
	seq := make([]Token, 0, len(w))
	for i, c := range []rune(w) {
		t, err := EncodeChar(c)
		if err != nil {
			return nil, &CharError{Char: c, Pos: i, Err: ErrUnsupportedCharacter}
		}
		seq = append(seq, t)
	}
	return seq, nil
}

// DecodeSequence decodes fully specified tokens back into a word. Decoding
// stops at the first unrecognized token.
func DecodeSequence(seq []Token) (string, error) {
	var sb strings.Builder
	sb.Grow(len(seq))
	for i, t := range seq {
		c, err := DecodeToken(t)
		if err != nil {
			return "", &TokenError{Token: string(t), Index: i, Err: ErrUnknownToken}
		}
		sb.WriteRune(c)
	}
	return sb.String(), nil
}

// Join renders a token sequence space separated, the way it is usually
// written down by hand.
func Join(seq []Token) string {
	parts := make([]string, len(seq))
	for i, t := range seq {
		parts[i] = string(t)
	}
	return strings.Join(parts, " ")
}

// Split parses a space separated token string produced by Join.
func Split(s string) []Token {
	fields := strings.Fields(s)
	seq := make([]Token, len(fields))
	for i, f := range fields {
		seq[i] = Token(f)
	}
	return seq
}

// String implements fmt.Stringer.
func (t Token) String() string {
	return string(t)
}

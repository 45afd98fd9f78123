package morse

import (
	"errors"
	"fmt"
)

var (
	// ErrUnsupportedCharacter is returned when a character has no Morse encoding.
	ErrUnsupportedCharacter = errors.New("unsupported character")
	// ErrUnknownToken is returned when a token does not decode to any character.
	ErrUnknownToken = errors.New("unknown morse token")
	// ErrInvalidMaskPosition is returned when the mask appears anywhere but
	// the first symbol of a token, or more than once.
	ErrInvalidMaskPosition = errors.New("mask must be the first symbol of a token")
	// ErrMalformedToken is returned for empty tokens or tokens containing
	// symbols other than dot, dash and the mask.
	ErrMalformedToken = errors.New("malformed morse token")
)

// CharError reports a character that could not be encoded.
type CharError struct {
	Char rune
	// Pos is the rune offset within the word, or -1 for a lone character.
	Pos int
	Err error
}

func (e *CharError) Error() string {
	if e.Pos < 0 {
		return fmt.Sprintf("%v: %q", e.Err, e.Char)
	}
	return fmt.Sprintf("%v: %q at position %d", e.Err, e.Char, e.Pos)
}

func (e *CharError) Unwrap() error { return e.Err }

// TokenError reports a token that could not be decoded or parsed.
type TokenError struct {
	Token string
	// Index is the token's position in its sequence, or -1 for a lone token.
	Index int
	Err   error
}

func (e *TokenError) Error() string {
	if e.Index < 0 {
		return fmt.Sprintf("%v: %q", e.Err, e.Token)
	}
	return fmt.Sprintf("%v: %q at index %d", e.Err, e.Token, e.Index)
}

func (e *TokenError) Unwrap() error { return e.Err }

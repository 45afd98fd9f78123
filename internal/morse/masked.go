package morse

// DefaultMask is the placeholder for an unknown leading symbol.
const DefaultMask = 'x'

// QueryToken is one position of a masked query. When Masked is set the first
// symbol is unknown and Suffix holds the remaining, fully specified symbols
// (possibly none). Otherwise Suffix is the complete token.
type QueryToken struct {
	Masked bool
	Suffix string
}

// ParseMasked parses s using mask as the placeholder symbol. The mask may
// only occupy the first position and may appear at most once.
func ParseMasked(s string, mask byte) (QueryToken, error) {
	if s == "" {
		return QueryToken{}, &TokenError{Token: s, Index: -1, Err: ErrMalformedToken}
	}
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case Dot, Dash:
		case mask:
			if i != 0 {
				return QueryToken{}, &TokenError{Token: s, Index: -1, Err: ErrInvalidMaskPosition}
			}
		default:
			return QueryToken{}, &TokenError{Token: s, Index: -1, Err: ErrMalformedToken}
		}
	}
	if s[0] == mask {
		return QueryToken{Masked: true, Suffix: s[1:]}, nil
	}
	return QueryToken{Suffix: s}, nil
}

// Exact returns a QueryToken matching t and nothing else.
func Exact(t Token) QueryToken {
	return QueryToken{Suffix: string(t)}
}

// Candidates returns the tokens this position can resolve to. A masked
// position yields the dash resolution before the dot resolution.
func (q QueryToken) Candidates() []Token {
	if !q.Masked {
		return []Token{Token(q.Suffix)}
	}
	return []Token{
		Token(string(rune(Dash)) + q.Suffix),
		Token(string(rune(Dot)) + q.Suffix),
	}
}

// Format renders q with mask standing in for the unknown symbol.
func (q QueryToken) Format(mask byte) string {
	if q.Masked {
		return string(mask) + q.Suffix
	}
	return q.Suffix
}

// Package strlit decodes double-quoted string literals of the Kconfig
// source-inclusion subset, expanding the escape-sequence mini-language.
package strlit

import (
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/kconf-lang/kconfparse/parser/errors"
)

// Decode decodes a string literal. lit must span the whole literal
// including both quote characters, which the grammar guarantees for any
// String token. The interior may be empty.
//
// When the literal contains no escape sequence the result is a zero-copy
// view of lit. Decode errors carry loc, the span of the entire literal.
func Decode(lit string, loc errors.SourceLocation) (string, error) {
	if len(lit) < 2 || lit[0] != '"' || lit[len(lit)-1] != '"' {
		return "", errors.New(errors.Shape, errors.ErrMalformedLiteral, loc,
			"malformed string literal: %q", lit)
	}

	s := lit[1 : len(lit)-1]
	if !strings.ContainsRune(s, '\\') {
		return s, nil
	}

	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); {
		c := s[i]
		if c != '\\' {
			// Multi-byte runes pass through untouched; only ASCII
			// characters participate in escape sequences.
			b.WriteByte(c)
			i++
			continue
		}

		if i+1 >= len(s) {
			return "", errors.New(errors.Decode, errors.ErrTruncatedEscape, loc,
				"truncated escape: lone '\\' before closing quote")
		}

		esc := s[i+1]
		i += 2
		switch esc {
		case 'n':
			b.WriteByte('\n')
		case 'r':
			b.WriteByte('\r')
		case 't':
			b.WriteByte('\t')
		case '\\':
			b.WriteByte('\\')
		case '0':
			b.WriteByte(0)
		case '\'':
			b.WriteByte('\'')
		case '"':
			b.WriteByte('"')
		case 'x':
			if i+2 > len(s) {
				return "", errors.New(errors.Decode, errors.ErrTruncatedEscape, loc,
					"truncated hex escape: \\x%s", s[i:])
			}
			v, err := strconv.ParseUint(s[i:i+2], 16, 8)
			if err != nil {
				return "", errors.New(errors.Decode, errors.ErrInvalidHexEscape, loc,
					"invalid hex escape: \\x%s", s[i:i+2])
			}
			b.WriteRune(rune(v))
			i += 2
		case 'u':
			n, r, err := decodeUnicode(s[i:], loc)
			if err != nil {
				return "", err
			}
			b.WriteRune(r)
			i += n
		default:
			return "", errors.New(errors.Decode, errors.ErrInvalidEscape, loc,
				"invalid escape: \\%c", esc)
		}
	}

	return b.String(), nil
}

// decodeUnicode decodes the "{hex+}" tail of a \u escape. It returns the
// number of bytes consumed and the decoded scalar value.
func decodeUnicode(s string, loc errors.SourceLocation) (int, rune, error) {
	if len(s) == 0 || s[0] != '{' {
		return 0, 0, errors.New(errors.Decode, errors.ErrInvalidUnicode, loc,
			"invalid unicode escape: expected '{' after \\u")
	}

	end := strings.IndexByte(s, '}')
	if end < 0 {
		return 0, 0, errors.New(errors.Decode, errors.ErrTruncatedEscape, loc,
			"truncated unicode escape: missing '}'")
	}

	hex := s[1:end]
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return 0, 0, errors.New(errors.Decode, errors.ErrInvalidUnicode, loc,
			"invalid unicode escape: \\u{%s}", hex)
	}
	r := rune(v)
	if !utf8.ValidRune(r) {
		return 0, 0, errors.New(errors.Decode, errors.ErrInvalidCodepoint, loc,
			"invalid unicode codepoint: \\u{%s}", hex)
	}

	return end + 1, r, nil
}

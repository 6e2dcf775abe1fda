package lexer

import (
	"go.redy.dev/internal/diagnostic"
	"go.redy.dev/internal/token"
)

func isDigit(r rune) bool { return r >= '0' && r <= '9' }
func isHexDigit(r rune) bool {
	return isDigit(r) || (r >= 'a' && r <= 'f') || (r >= 'A' && r <= 'F')
}
func isBinDigit(r rune) bool { return r == '0' || r == '1' }
func isOctDigit(r rune) bool { return r >= '0' && r <= '7' }

// lexNumeric implements spec.md §4.3's numeric sub-language: hex/
// binary/octal prefixes each requiring >=1 valid digit, else decimal
// with an optional fractional part and exponent, plus an optional
// single-letter suffix.
func (l *Lexer) lexNumeric(start token.Location) (token.Token, *diagnostic.SourceError, bool) {
	first, _ := l.stream.Peek()
	if first == '0' {
		if second, ok := l.stream.PeekAt(1); ok {
			switch second {
			case 'x', 'X':
				return l.lexPrefixed(start, token.Hexadecimal, isHexDigit, "0x")
			case 'b', 'B':
				return l.lexPrefixed(start, token.Binary, isBinDigit, "0b")
			case 'o', 'O':
				return l.lexPrefixed(start, token.Octal, isOctDigit, "0o")
			}
		}
	}
	return l.lexDecimal(start)
}

func (l *Lexer) lexPrefixed(start token.Location, kind token.Kind, isValidDigit func(rune) bool, prefix string) (token.Token, *diagnostic.SourceError, bool) {
	l.stream.Next()
	l.stream.Next()
	n := uint32(2)
	digits := 0
	invalid := false
	for {
		cp, ok := l.stream.Peek()
		if !ok || !isXIDContinue(cp) {
			break
		}
		if isValidDigit(cp) {
			digits++
		} else {
			// an invalid-class digit/letter inside the prefixed form is
			// still consumed so the token covers the whole malformed
			// literal, matching spec.md's example (`0b2` has length 3).
			invalid = true
		}
		l.stream.Next()
		n++
	}
	if digits == 0 || invalid {
		err := l.errorAt(start, n, diagnostic.InvalidNumericLiteral, "invalid_numeric_literal", prefix)
		return token.Token{Kind: kind, Start: start, Length: n}, &err, false
	}
	return token.Token{Kind: kind, Start: start, Length: n}, nil, false
}

func (l *Lexer) lexDecimal(start token.Location) (token.Token, *diagnostic.SourceError, bool) {
	var n uint32
	hasDigit := false
	for {
		cp, ok := l.stream.Peek()
		if !ok || !isDigit(cp) {
			break
		}
		hasDigit = true
		l.stream.Next()
		n++
	}

	if cp, ok := l.stream.Peek(); ok && cp == '.' {
		if next, ok := l.stream.PeekAt(1); ok && isDigit(next) {
			l.stream.Next()
			n++
			for {
				cp, ok := l.stream.Peek()
				if !ok || !isDigit(cp) {
					break
				}
				hasDigit = true
				l.stream.Next()
				n++
			}
		}
	}

	var expErr *diagnostic.SourceError
	if cp, ok := l.stream.Peek(); ok && (cp == 'e' || cp == 'E') {
		consumed := uint32(1)
		l.stream.Next()
		if sign, ok := l.stream.Peek(); ok && (sign == '+' || sign == '-') {
			l.stream.Next()
			consumed++
		}
		expDigits := uint32(0)
		for {
			cp, ok := l.stream.Peek()
			if !ok || !isDigit(cp) {
				break
			}
			l.stream.Next()
			consumed++
			expDigits++
		}
		n += consumed
		if expDigits == 0 {
			e := l.errorAt(start, n, diagnostic.InvalidNumericLiteral, "invalid_numeric_literal", "exponent")
			expErr = &e
		}
	}

	if !hasDigit {
		err := l.errorAt(start, n+1, diagnostic.InvalidNumericLiteral, "invalid_numeric_literal", "")
		l.stream.Next()
		return token.Token{Kind: token.Decimal, Start: start, Length: n + 1}, &err, false
	}

	if expErr != nil {
		return token.Token{Kind: token.Decimal, Start: start, Length: n}, expErr, false
	}

	if cp, ok := l.stream.Peek(); ok {
		switch cp {
		case 'f', 'd', 'L':
			l.stream.Next()
			n++
		default:
			if isXIDStart(cp) {
				l.stream.Next()
				n++
				err := l.errorAt(start, n, diagnostic.InvalidNumericLiteral, "invalid_numeric_literal", string(cp))
				return token.Token{Kind: token.Decimal, Start: start, Length: n}, &err, false
			}
		}
	}

	return token.Token{Kind: token.Decimal, Start: start, Length: n}, nil, false
}

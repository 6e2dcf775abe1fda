package lexer

import (
	"go.redy.dev/internal/diagnostic"
	"go.redy.dev/internal/token"
)

func isSingleCharEscape(r rune) bool {
	switch r {
	case 'n', 'r', 't', '\\', '\'', '"', '?', 'a', 'b', 'f', 'v':
		return true
	default:
		return false
	}
}

// lexString implements spec.md §4.3's string sub-language.
func (l *Lexer) lexString(start token.Location) (token.Token, *diagnostic.SourceError, bool) {
	l.stream.Next() // opening quote
	var n uint32 = 1
	var firstErr *diagnostic.SourceError

	for {
		cp, ok := l.stream.Peek()
		if !ok {
			err := l.errorAt(start, 1, diagnostic.UnterminatedStringLiteral, "opening_quote_here")
			err.Annotations = append(err.Annotations, diagnostic.Annotation{
				Severity: diagnostic.AnnotationHelp, MessageTrKey: "expected_closing_quote",
			})
			return token.Token{Kind: token.String, Start: start, Length: n}, &err, false
		}
		l.stream.Next()
		n++
		if cp == '"' {
			break
		}
		if cp == '\\' {
			consumed, err := l.lexEscape(start)
			n += consumed
			if err != nil && firstErr == nil {
				firstErr = err
			}
		}
	}
	return token.Token{Kind: token.String, Start: start, Length: n}, firstErr, false
}

// lexEscape consumes one escape sequence's body (after the backslash
// already consumed by the caller) and returns how many additional code
// points it consumed.
func (l *Lexer) lexEscape(start token.Location) (uint32, *diagnostic.SourceError) {
	cp, ok := l.stream.Peek()
	if !ok {
		return 0, nil
	}

	switch {
	case isSingleCharEscape(cp):
		l.stream.Next()
		return 1, nil
	case cp == 'x':
		l.stream.Next()
		n := uint32(1)
		digits := 0
		for {
			cp, ok := l.stream.Peek()
			if !ok || !isHexDigit(cp) {
				break
			}
			l.stream.Next()
			n++
			digits++
		}
		if digits == 0 {
			err := l.errorAt(start, n+1, diagnostic.InvalidEscapeSequence, "invalid_escape_sequence")
			return n, &err
		}
		return n, nil
	case cp == 'u' || cp == 'U':
		want := 4
		if cp == 'U' {
			want = 8
		}
		l.stream.Next()
		n := uint32(1)
		digits := 0
		for digits < want {
			c, ok := l.stream.Peek()
			if !ok || !isHexDigit(c) {
				break
			}
			l.stream.Next()
			n++
			digits++
		}
		if digits != want {
			err := l.errorAt(start, n+1, diagnostic.InvalidEscapeSequence, "invalid_escape_sequence")
			return n, &err
		}
		return n, nil
	case isOctDigit(cp):
		n := uint32(0)
		digits := 0
		for digits < 3 {
			c, ok := l.stream.Peek()
			if !ok || !isOctDigit(c) {
				break
			}
			l.stream.Next()
			n++
			digits++
		}
		return n, nil
	default:
		l.stream.Next()
		err := l.errorAt(start, 2, diagnostic.InvalidEscapeSequence, "invalid_escape_sequence")
		return 1, &err
	}
}

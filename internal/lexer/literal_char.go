package lexer

import (
	"go.redy.dev/internal/diagnostic"
	"go.redy.dev/internal/token"
)

// lexCharacter implements spec.md §4.3's character sub-language: a
// single logical character (ASCII, escape, or one UTF-8 code point)
// bounded by single quotes.
func (l *Lexer) lexCharacter(start token.Location) (token.Token, *diagnostic.SourceError, bool) {
	l.stream.Next() // opening quote
	var n uint32 = 1

	cp, ok := l.stream.Peek()
	if !ok {
		err := l.errorAt(start, 1, diagnostic.UnterminatedCharacterLiteral, "opening_quote_here")
		return token.Token{Kind: token.Character, Start: start, Length: n}, &err, false
	}
	l.stream.Next()
	n++
	var bodyErr *diagnostic.SourceError
	if cp == '\\' {
		consumed, err := l.lexEscape(start)
		n += consumed
		bodyErr = err
	}

	closing, ok := l.stream.Peek()
	if !ok || closing != '\'' {
		err := l.errorAt(start, n, diagnostic.UnterminatedCharacterLiteral, "opening_quote_here")
		return token.Token{Kind: token.Character, Start: start, Length: n}, &err, false
	}
	l.stream.Next()
	n++
	return token.Token{Kind: token.Character, Start: start, Length: n}, bodyErr, false
}

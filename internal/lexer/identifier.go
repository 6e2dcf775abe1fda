package lexer

import (
	"go.redy.dev/internal/diagnostic"
	"go.redy.dev/internal/keyword"
	"go.redy.dev/internal/token"
)

// lexIdentifier greedily consumes XID_CONTINUE code points starting
// from an XID_START and classifies the resulting slice via the
// keyword table.
func (l *Lexer) lexIdentifier(start token.Location) (token.Token, *diagnostic.SourceError, bool) {
	var runes []rune
	for {
		cp, ok := l.stream.Peek()
		if !ok || !isXIDContinue(cp) {
			break
		}
		runes = append(runes, cp)
		l.stream.Next()
	}
	word := string(runes)
	kind := keyword.Lookup(word)
	return token.Token{Kind: kind, Start: start, Length: uint32(len(runes))}, nil, false
}

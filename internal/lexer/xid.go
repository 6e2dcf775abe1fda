package lexer

import "unicode"

// isXIDStart and isXIDContinue approximate Unicode's XID_Start/
// XID_Continue classes with the stdlib unicode package. No pack repo
// ships an importable XID table (see DESIGN.md), so identifier
// classification is expressed directly against unicode.IsLetter/
// IsDigit the way Go's own tokenizers do it.
func isXIDStart(r rune) bool {
	return r == '_' || unicode.IsLetter(r)
}

func isXIDContinue(r rune) bool {
	return r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r)
}

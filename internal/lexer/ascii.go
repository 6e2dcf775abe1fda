package lexer

import (
	"go.redy.dev/internal/diagnostic"
	"go.redy.dev/internal/token"
)

// lexASCII dispatches a single ASCII lead code point to its literal or
// operator/delimiter sub-lexer.
func (l *Lexer) lexASCII(cp rune, start token.Location) (token.Token, *diagnostic.SourceError, bool) {
	switch {
	case cp >= '0' && cp <= '9':
		return l.lexNumeric(start)
	case cp == '"':
		return l.lexString(start)
	case cp == '\'':
		return l.lexCharacter(start)
	case isXIDStart(cp):
		return l.lexIdentifier(start)
	default:
		return l.lexOperator(start)
	}
}

// operatorTable lists every multi-character operator/delimiter, longest
// first within each lead byte, so longest-match lexing falls out of a
// simple linear scan.
var operatorTable = []struct {
	lexeme []rune
	kind   token.Kind
}{
	{[]rune("<<="), token.LtLtEq}, {[]rune(">>="), token.GtGtEq},
	{[]rune("<=>"), token.ThreeWay},
	{[]rune("++"), token.PlusPlus}, {[]rune("--"), token.MinusMinus},
	{[]rune("**"), token.StarStar},
	{[]rune("<<"), token.LtLt}, {[]rune(">>"), token.GtGt},
	{[]rune("=="), token.EqEq}, {[]rune("!="), token.NotEqual}, {[]rune("=>"), token.FatArrow},
	{[]rune("<="), token.Le}, {[]rune(">="), token.Ge},
	{[]rune("&&"), token.AndAnd}, {[]rune("||"), token.PipePipe},
	{[]rune(":="), token.ColonEqual}, {[]rune("->"), token.Arrow}, {[]rune("::"), token.ColonColon},
	{[]rune(".."), token.DotDot},
	{[]rune("+="), token.PlusEq}, {[]rune("-="), token.MinusEq},
	{[]rune("*="), token.StarEq}, {[]rune("/="), token.SlashEq},
	{[]rune("%="), token.PercentEq}, {[]rune("&="), token.AndEq},
	{[]rune("|="), token.PipeEq}, {[]rune("^="), token.CaretEq},

	{[]rune("!"), token.Bang}, {[]rune("~"), token.Tilde},
	{[]rune("*"), token.Star}, {[]rune("/"), token.Slash}, {[]rune("%"), token.Percent},
	{[]rune("+"), token.Plus}, {[]rune("-"), token.Minus},
	{[]rune("<"), token.Lt}, {[]rune(">"), token.Gt},
	{[]rune("&"), token.And}, {[]rune("^"), token.Caret}, {[]rune("|"), token.Pipe},
	{[]rune("="), token.Equal},
	{[]rune(":"), token.Colon}, {[]rune(";"), token.Semicolon}, {[]rune(","), token.Comma},
	{[]rune("."), token.Dot},
	{[]rune("("), token.LeftParen}, {[]rune(")"), token.RightParen},
	{[]rune("{"), token.LeftBrace}, {[]rune("}"), token.RightBrace},
	{[]rune("["), token.LeftBracket}, {[]rune("]"), token.RightBracket},
	{[]rune("@"), token.At}, {[]rune("#"), token.Hash}, {[]rune("$"), token.Dollar},
	{[]rune("?"), token.Question},
}

func (l *Lexer) lexOperator(start token.Location) (token.Token, *diagnostic.SourceError, bool) {
	for _, entry := range operatorTable {
		if l.stream.ConsumeSequence(entry.lexeme) {
			return token.Token{Kind: entry.kind, Start: start, Length: uint32(len(entry.lexeme))}, nil, false
		}
	}
	l.stream.Next()
	err := l.errorAt(start, 1, diagnostic.InvalidToken, "unrecognized_character")
	return token.Token{Kind: token.Unknown, Start: start, Length: 1}, &err, false
}

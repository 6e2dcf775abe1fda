package lexer

import (
	"go.redy.dev/internal/diagnostic"
	"go.redy.dev/internal/token"
)

// triviaResult is returned by tryLexTrivia: when emit is true, tok/err
// are a trivia token the caller should return immediately; when emit
// is false but consumed is true, some whitespace/comment was silently
// discarded and the caller should loop again; when both are false the
// current position is not trivia at all.
type triviaResult struct {
	tok      token.Token
	err      *diagnostic.SourceError
	emit     bool
	consumed bool
}

// tryLexTrivia classifies whitespace/newline/comments at the current
// position according to the active mode:
//   - CodeAnalysis: whitespace and all comments are silently dropped;
//     Newline is always significant and handled by the caller, not here.
//   - DocumentGen: as CodeAnalysis, but "//@" doc comments are emitted.
//   - Format: every trivia class is emitted as its own token.
func (l *Lexer) tryLexTrivia() triviaResult {
	cp, ok := l.stream.Peek()
	if !ok || cp == '\n' {
		return triviaResult{}
	}

	if cp == ' ' || cp == '\t' || cp == '\r' {
		start := l.loc()
		n := l.consumeWhitespaceRun()
		if l.mode == Format {
			return triviaResult{tok: token.Token{Kind: token.Whitespace, Start: start, Length: n}, emit: true}
		}
		return triviaResult{consumed: true}
	}

	if cp != '/' {
		return triviaResult{}
	}
	next, ok := l.stream.PeekAt(1)
	if !ok {
		return triviaResult{}
	}

	switch next {
	case '/':
		return l.lexLineComment()
	case '*':
		return l.lexBlockComment()
	default:
		return triviaResult{}
	}
}

func (l *Lexer) consumeWhitespaceRun() uint32 {
	var n uint32
	for {
		cp, ok := l.stream.Peek()
		if !ok || (cp != ' ' && cp != '\t' && cp != '\r') {
			return n
		}
		l.stream.Next()
		n++
	}
}

func (l *Lexer) lexLineComment() triviaResult {
	start := l.loc()
	isDoc := false
	if third, ok := l.stream.PeekAt(2); ok && third == '@' {
		isDoc = true
	}
	var n uint32
	for {
		cp, ok := l.stream.Peek()
		if !ok || cp == '\n' {
			break
		}
		l.stream.Next()
		n++
	}
	kind := token.InlineComment
	if isDoc {
		kind = token.DocumentationComment
	}
	if l.mode == Format || (isDoc && l.mode == DocumentGen) {
		return triviaResult{tok: token.Token{Kind: kind, Start: start, Length: n}, emit: true}
	}
	return triviaResult{consumed: true}
}

// unterminatedBlockComment builds the trivia result for a block comment
// that never properly closed, pointing the diagnostic at the opener.
func (l *Lexer) unterminatedBlockComment(start token.Location, n uint32) triviaResult {
	err := l.errorAt(start, 2, diagnostic.UnterminatedBlockComment, "opening_comment_here")
	err.Annotations = append(err.Annotations, diagnostic.Annotation{
		Severity: diagnostic.AnnotationHelp, MessageTrKey: "expected_closing_comment",
	})
	return triviaResult{tok: token.Token{Kind: token.BlockComment, Start: start, Length: n}, err: &err, emit: true}
}

func (l *Lexer) lexBlockComment() triviaResult {
	start := l.loc()
	l.stream.Next()
	l.stream.Next()
	var n uint32 = 2
	closedAtEOF := false
	for {
		cp, ok := l.stream.Peek()
		if !ok {
			return l.unterminatedBlockComment(start, n)
		}
		l.stream.Next()
		n++
		if cp == '*' {
			if close, ok := l.stream.Peek(); ok && close == '/' {
				l.stream.Next()
				n++
				if _, ok := l.stream.Peek(); !ok {
					// The closer landed on the file's last two bytes.
					// original_source re-checks eof() against the
					// position just past the consumed closer, so this
					// case is quirkily still flagged unterminated.
					closedAtEOF = true
				}
				break
			}
		}
	}
	if closedAtEOF {
		return l.unterminatedBlockComment(start, n)
	}
	if l.mode == Format {
		return triviaResult{tok: token.Token{Kind: token.BlockComment, Start: start, Length: n}, emit: true}
	}
	return triviaResult{consumed: true}
}

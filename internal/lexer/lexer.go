// Package lexer implements the multi-mode tokenizer described by
// spec.md §4.3, grounded on original_source/src/frontend/processor/lexer/*
// for algorithm shape and teacher pkg/lexer.go for the overall
// state-carrying struct/method idiom.
package lexer

import (
	"go.redy.dev/internal/diagnostic"
	"go.redy.dev/internal/token"
	"go.redy.dev/internal/unicode/utf8"
)

// Mode selects which trivia classes are preserved in the emitted token
// stream.
type Mode uint8

const (
	// CodeAnalysis suppresses all trivia except Newline.
	CodeAnalysis Mode = iota
	// DocumentGen additionally emits DocumentationComment tokens.
	DocumentGen
	// Format emits every trivia class, enabling byte-exact
	// reconstruction of the source (spec.md P4).
	Format
)

// Status tracks a Lexer's lifecycle.
type Status uint8

const (
	StatusNotInitialized Status = iota
	StatusReadyToTokenize
	StatusErrorOccurred
	StatusTokenizeCompleted
)

// predictedTokensPerLine sizes the initial token slice capacity.
const predictedTokensPerLine = 12

// Lexer tokenizes one Stream's code points under a single Mode.
type Lexer struct {
	stream  *utf8.Stream
	fileID  utf8.FileId
	mode    Mode
	status  Status
	manager *utf8.FileManager
}

// New returns an uninitialized Lexer.
func New() *Lexer {
	return &Lexer{status: StatusNotInitialized}
}

// Init binds the lexer to a loaded, UTF-8-valid file. If the stream's
// own validation fails, Init returns a fatal DiagnosticEntry instead of
// proceeding; per spec.md §4.2, a lexer must never run over an Invalid
// stream.
func (l *Lexer) Init(manager *utf8.FileManager, fileID utf8.FileId, mode Mode) (*diagnostic.Entry, error) {
	s := utf8.NewStream()
	offset, err := s.Init(manager, fileID)
	if err != nil {
		return nil, err
	}
	if s.Status() != utf8.StreamValid {
		entry := diagnostic.NewEntryBuilder(diagnostic.SeverityFatal, diagnostic.InvalidUtfSequence).
			LabelRange(uint32(fileID), token.NewRange(token.Location{Line: 1, Column: 1}, 1), diagnostic.MarkerLine,
				"invalid_utf_sequence", diagnostic.NewFormatArgs()).
			Annotation(diagnostic.AnnotationHelp, "change_charset_to_utf8", diagnostic.NewFormatArgs()).
			Build()
		_ = offset
		return &entry, nil
	}
	l.stream = s
	l.fileID = fileID
	l.mode = mode
	l.manager = manager
	l.status = StatusReadyToTokenize
	return nil, nil
}

func (l *Lexer) loc() token.Location {
	return token.Location{Line: l.stream.Line(), Column: l.stream.Column(), FileID: l.fileID}
}

// Tokenize runs tokenizeNext to completion. If strict, it stops at the
// first error; otherwise it collects every error and always appends a
// terminal Eof.
func (l *Lexer) Tokenize(strict bool) ([]token.Token, []diagnostic.SourceError) {
	tokens := make([]token.Token, 0, int(l.lineCount())*predictedTokensPerLine)
	var errs []diagnostic.SourceError
	for {
		tok, err, fatal := l.TokenizeNext()
		if err != nil {
			errs = append(errs, *err)
			if strict {
				tokens = append(tokens, token.Token{Kind: token.Eof, Start: l.loc()})
				return tokens, errs
			}
			if fatal {
				continue
			}
		}
		tokens = append(tokens, tok)
		if tok.Kind == token.Eof {
			return tokens, errs
		}
	}
}

func (l *Lexer) lineCount() int {
	if l.manager == nil {
		return 1
	}
	f, err := l.manager.File(l.fileID)
	if err != nil {
		return 1
	}
	return f.LineCount()
}

// TokenizeNext produces one token, or a recoverable SourceError plus a
// token.Unknown placeholder the caller may append and continue past.
// fatal is set when the error came from a trivia token (an unterminated
// block comment); Tokenize then records the error, drops that token and
// keeps going, whereas on a non-fatal error it appends the token.
func (l *Lexer) TokenizeNext() (token.Token, *diagnostic.SourceError, bool) {
	for {
		res := l.tryLexTrivia()
		if res.emit {
			return res.tok, res.err, res.err != nil
		}
		if res.consumed {
			continue
		}
		break
	}

	start := l.loc()
	cp, ok := l.stream.Peek()
	if !ok {
		l.status = StatusTokenizeCompleted
		return token.Token{Kind: token.Eof, Start: start, Length: 0}, nil, false
	}

	if cp == '\n' {
		l.stream.Next()
		return token.Token{Kind: token.Newline, Start: start, Length: 1}, nil, false
	}

	if cp <= 0x7F {
		return l.lexASCII(cp, start)
	}
	if isXIDStart(cp) {
		return l.lexIdentifier(start)
	}
	l.stream.Next()
	err := l.errorAt(start, 1, diagnostic.UnrecognizedCharacter, "unrecognized_character")
	return token.Token{Kind: token.Unknown, Start: start, Length: 1}, &err, false
}

func (l *Lexer) errorAt(start token.Location, length uint32, id diagnostic.ID, key string, args ...string) diagnostic.SourceError {
	return diagnostic.SourceError{
		ID: id, Severity: diagnostic.SeverityError, FileID: uint32(l.fileID),
		Range: token.NewRange(start, length), MarkerType: diagnostic.MarkerLine,
		MessageKey: key, Args: diagnostic.NewFormatArgs(args...),
	}
}


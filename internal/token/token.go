package token

import "go.redy.dev/internal/unicode/utf8"

// Token is a classified lexical unit. The lexeme is never stored; it
// is retrieved on demand from the owning file by slicing the start
// line at Start.Column-1 for Length code points (see Stream.Lexeme).
type Token struct {
	Kind   Kind
	Start  Location
	Length uint32
}

// IsEof reports whether t is the terminal end-of-file token.
func (t Token) IsEof() bool { return t.Kind == Eof }

// Stream is a finite sequence of tokens ending in an Eof sentinel, with
// a current position and a back-reference to the owning file for
// lexeme retrieval.
type Stream struct {
	tokens  []Token
	file    *utf8.File
	fileMgr *utf8.FileManager
	fileID  utf8.FileId
	pos     int
}

// NewStream wraps tokens (whose last element must be Eof) bound to
// fileID for lexeme lookups.
func NewStream(tokens []Token, manager *utf8.FileManager, fileID utf8.FileId) *Stream {
	return &Stream{tokens: tokens, fileMgr: manager, fileID: fileID}
}

// FileID returns the id of the file this stream's tokens were lexed
// from.
func (s *Stream) FileID() utf8.FileId { return s.fileID }

// Size returns the total token count, including the trailing Eof.
func (s *Stream) Size() int { return len(s.tokens) }

// Position returns the current index into the token slice.
func (s *Stream) Position() int { return s.pos }

// Eof reports whether the current token's kind is Eof.
func (s *Stream) Eof() bool { return s.Peek(0).Kind == Eof }

// Peek returns the token k positions ahead of current without
// advancing. Past the end of the slice it returns the trailing Eof
// token.
func (s *Stream) Peek(k int) Token {
	idx := s.pos + k
	if idx < 0 {
		idx = 0
	}
	if idx >= len(s.tokens) {
		return s.tokens[len(s.tokens)-1]
	}
	return s.tokens[idx]
}

// Previous returns the token immediately before current.
func (s *Stream) Previous() Token { return s.Peek(-1) }

// Next advances past the current token and returns the new current
// token.
func (s *Stream) Next() Token {
	if s.pos < len(s.tokens)-1 {
		s.pos++
	}
	return s.Peek(0)
}

// Check reports whether the token k ahead has the given kind.
func (s *Stream) Check(kind Kind, k int) bool { return s.Peek(k).Kind == kind }

// Match consumes the current token if it has the given kind, reporting
// whether it did.
func (s *Stream) Match(kind Kind) bool {
	if s.Check(kind, 0) {
		s.Next()
		return true
	}
	return false
}

// Rewind moves the current position back to pos.
func (s *Stream) Rewind(pos int) {
	if pos < 0 {
		pos = 0
	}
	if pos > len(s.tokens)-1 {
		pos = len(s.tokens) - 1
	}
	s.pos = pos
}

// Lexeme slices the token's owning line for Length code points
// starting at Start.Column-1, returning it as a string.
func (s *Stream) Lexeme(t Token) (string, error) {
	line, err := s.fileMgr.Line(s.fileID, int(t.Start.Line))
	if err != nil {
		return "", err
	}
	cps := decodeLine(line)
	startIdx := int(t.Start.Column) - 1
	endIdx := startIdx + int(t.Length)
	if startIdx < 0 || endIdx > len(cps) {
		return "", nil
	}
	return string(cps[startIdx:endIdx]), nil
}

func decodeLine(b []byte) []rune {
	out := make([]rune, 0, len(b))
	for i := 0; i < len(b); {
		cp, n := utf8.Decode(b[i:])
		out = append(out, cp)
		if n == 0 {
			n = 1
		}
		i += n
	}
	return out
}

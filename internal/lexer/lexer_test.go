package lexer

import (
	"testing"

	"github.com/stretchr/testify/require"
	"go.redy.dev/internal/token"
	"go.redy.dev/internal/unicode/utf8"
)

func tokenizeString(t *testing.T, content string, mode Mode, strict bool) ([]token.Token, []error) {
	t.Helper()
	m := utf8.NewFileManager()
	id := m.RegisterLoaded("t.ry", []byte(content))
	l := New()
	entry, err := l.Init(m, id, mode)
	require.NoError(t, err)
	require.Nil(t, entry)
	toks, errs := l.Tokenize(strict)
	var errIfaces []error
	for _, e := range errs {
		errIfaces = append(errIfaces, e)
	}
	return toks, errIfaces
}

func kinds(toks []token.Token) []token.Kind {
	out := make([]token.Kind, len(toks))
	for i, t := range toks {
		out[i] = t.Kind
	}
	return out
}

func TestAssignmentScenario(t *testing.T) {
	toks, errs := tokenizeString(t, "x := 42; y: i32 = 57;", CodeAnalysis, false)
	require.Empty(t, errs)
	require.Equal(t, []token.Kind{
		token.Identifier, token.ColonEqual, token.Decimal, token.Semicolon,
		token.Identifier, token.Colon, token.I32, token.Equal, token.Decimal, token.Semicolon,
		token.Eof,
	}, kinds(toks))
}

func TestKeywordDisambiguation(t *testing.T) {
	toks, errs := tokenizeString(t, "if ifoo { return 0 }", CodeAnalysis, false)
	require.Empty(t, errs)
	require.Equal(t, []token.Kind{
		token.If, token.Identifier, token.LeftBrace, token.Return, token.Decimal, token.RightBrace, token.Eof,
	}, kinds(toks))
}

func TestMalformedNumber(t *testing.T) {
	toks, errs := tokenizeString(t, "z := 0b2;", CodeAnalysis, false)
	require.Len(t, errs, 1)
	require.Equal(t, []token.Kind{
		token.Identifier, token.ColonEqual, token.Binary, token.Semicolon, token.Eof,
	}, kinds(toks))
}

func TestUnterminatedStringAtEOF(t *testing.T) {
	_, errs := tokenizeString(t, `s := "hello`, CodeAnalysis, false)
	require.Len(t, errs, 1)
}

func TestUnterminatedBlockComment(t *testing.T) {
	_, errs := tokenizeString(t, "/* /* */", CodeAnalysis, false)
	require.Len(t, errs, 1)
}

func TestCodeAnalysisSuppressesTrivia(t *testing.T) {
	toks, _ := tokenizeString(t, "// hi\nx  y", CodeAnalysis, false)
	for _, tk := range toks {
		require.NotContains(t, []token.Kind{token.Whitespace, token.InlineComment, token.BlockComment, token.DocumentationComment}, tk.Kind)
	}
}

func TestEmptyFileYieldsOnlyEOF(t *testing.T) {
	toks, errs := tokenizeString(t, "", CodeAnalysis, false)
	require.Empty(t, errs)
	require.Equal(t, []token.Kind{token.Eof}, kinds(toks))
}

func TestFormatModeRoundTrip(t *testing.T) {
	content := "//c\nx  y"
	m := utf8.NewFileManager()
	id := m.RegisterLoaded("t.ry", []byte(content))
	l := New()
	_, err := l.Init(m, id, Format)
	require.NoError(t, err)
	toks, errs := l.Tokenize(false)
	require.Empty(t, errs)

	ts := token.NewStream(toks, m, id)
	var rebuilt string
	for _, tk := range toks {
		switch tk.Kind {
		case token.Eof:
			continue
		case token.Newline:
			rebuilt += "\n"
		default:
			lex, err := ts.Lexeme(tk)
			require.NoError(t, err)
			rebuilt += lex
		}
	}
	require.Equal(t, content, rebuilt)
}

func TestHexPrefixWithNoDigits(t *testing.T) {
	toks, errs := tokenizeString(t, "0x;", CodeAnalysis, false)
	require.Len(t, errs, 1)
	require.Equal(t, token.Hexadecimal, toks[0].Kind)
}

package parser

import (
	"testing"

	"github.com/stretchr/testify/require"

	"go.redy.dev/internal/ast"
	"go.redy.dev/internal/intern"
	"go.redy.dev/internal/lexer"
	"go.redy.dev/internal/token"
	"go.redy.dev/internal/unicode/utf8"
)

func parseAll(t *testing.T, content string, strict bool) ([]ast.NodeId, *ast.Context, []error) {
	t.Helper()
	m := utf8.NewFileManager()
	id := m.RegisterLoaded("t.ry", []byte(content))

	l := lexer.New()
	fatal, err := l.Init(m, id, lexer.CodeAnalysis)
	require.NoError(t, err)
	require.Nil(t, fatal)

	toks, lexErrs := l.Tokenize(strict)
	require.Empty(t, lexErrs)
	ts := token.NewStream(toks, m, id)

	ctx := ast.NewContext()
	p := New(ts, ctx, intern.New())
	items, parseErrs := p.ParseAll(strict)

	var errIfaces []error
	for _, e := range parseErrs {
		errIfaces = append(errIfaces, e)
	}
	return items, ctx, errIfaces
}

func TestParseFunctionDeclaration(t *testing.T) {
	items, ctx, errs := parseAll(t, "fn add(a: i32, b: i32) -> i32 { a + b }\n", false)
	require.Empty(t, errs)
	require.Len(t, items, 1)

	n := ctx.Node(items[0])
	require.Equal(t, ast.KindFunctionDeclaration, n.Kind)
}

func TestParseStructDeclaration(t *testing.T) {
	items, ctx, errs := parseAll(t, "struct Point { x: i32, y: i32 }\n", false)
	require.Empty(t, errs)
	require.Len(t, items, 1)
	require.Equal(t, ast.KindStructDeclaration, ctx.Node(items[0]).Kind)
}

func TestParseIfElseChain(t *testing.T) {
	items, ctx, errs := parseAll(t, "fn f() { if a { 1 } else if b { 2 } else { 3 } }\n", false)
	require.Empty(t, errs)
	require.Len(t, items, 1)
	require.Equal(t, ast.KindFunctionDeclaration, ctx.Node(items[0]).Kind)
}

func TestParsePrecedenceClimbing(t *testing.T) {
	items, ctx, errs := parseAll(t, "fn f() { 1 + 2 * 3 }\n", false)
	require.Empty(t, errs)
	n := ctx.Node(items[0])
	require.Equal(t, ast.KindFunctionDeclaration, n.Kind)
	fd := ctx.FunctionDeclarations.Get(ast.NewPayloadId[ast.FunctionDeclarationPayload](n.PayloadIdx))
	body := ctx.BlockExpressions.Get(fd.Body)
	require.True(t, body.Trailing.Valid())

	trailing := ctx.Node(body.Trailing)
	require.Equal(t, ast.KindBinaryExpression, trailing.Kind)
	top := ctx.BinaryExpressions.Get(ast.NewPayloadId[ast.BinaryExpressionPayload](trailing.PayloadIdx))
	require.Equal(t, token.Plus, top.Op, "lowest-precedence operator should be the root of the tree")

	rhs := ctx.Node(top.Rhs)
	require.Equal(t, ast.KindBinaryExpression, rhs.Kind, "the * subexpression should nest under the + node, not the other way round")
}

func TestParseErrorRecoverySynchronizes(t *testing.T) {
	items, _, errs := parseAll(t, "fn broken( { }\nfn ok() { }\n", false)
	require.NotEmpty(t, errs)
	found := false
	for _, id := range items {
		_ = id
		found = true
	}
	require.True(t, found, "parser should recover and still parse the following declaration")
}

func TestParseMethodCallChain(t *testing.T) {
	items, ctx, errs := parseAll(t, "fn f() { a.b().c }\n", false)
	require.Empty(t, errs)
	require.Len(t, items, 1)
	require.Equal(t, ast.KindFunctionDeclaration, ctx.Node(items[0]).Kind)
}

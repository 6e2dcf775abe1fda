package resolver

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"

	"go.redy.dev/internal/ast"
	"go.redy.dev/internal/diagnostic"
	"go.redy.dev/internal/hir"
	"go.redy.dev/internal/intern"
	"go.redy.dev/internal/lexer"
	"go.redy.dev/internal/parser"
	"go.redy.dev/internal/token"
	"go.redy.dev/internal/unicode/utf8"
)

// analyze runs the full lex/parse/resolve pipeline over content and
// returns the lowered HIR plus every resolver diagnostic.
func analyze(t *testing.T, content string) (*hir.Context, []diagnostic.SourceError) {
	t.Helper()
	m := utf8.NewFileManager()
	id := m.RegisterLoaded("t.ry", []byte(content))

	l := lexer.New()
	fatal, err := l.Init(m, id, lexer.CodeAnalysis)
	require.NoError(t, err)
	require.Nil(t, fatal)

	toks, lexErrs := l.Tokenize(false)
	require.Empty(t, lexErrs)
	ts := token.NewStream(toks, m, id)

	interner := intern.New()
	astCtx := ast.NewContext()
	p := parser.New(ts, astCtx, interner)
	items, parseErrs := p.ParseAll(false)
	require.Empty(t, parseErrs)

	r := New(astCtx, interner, diagnostic.FileID(id))
	return r.Analyze(items), r.Errors()
}

func TestResolverResolvesForwardReferencedFunction(t *testing.T) {
	_, errs := analyze(t, "fn a() { b() }\nfn b() { }\n")
	require.Empty(t, errs)
}

func TestResolverUndefinedSymbolReportsDiagnostic(t *testing.T) {
	_, errs := analyze(t, "fn a() { nonexistent() }\n")
	require.Len(t, errs, 1)
	require.Equal(t, diagnostic.UndefinedSymbol, errs[0].ID)
}

func TestResolverSuggestsCloseName(t *testing.T) {
	_, errs := analyze(t, "fn count() { }\nfn a() { counnt() }\n")
	require.Len(t, errs, 1)
	require.NotEmpty(t, errs[0].Annotations, "a close-edit-distance candidate should be suggested")
}

func TestResolverRedeclarationInSameScope(t *testing.T) {
	_, errs := analyze(t, "fn dup() { }\nfn dup() { }\n")
	require.Len(t, errs, 1)
	require.Equal(t, diagnostic.Redeclaration, errs[0].ID)
}

func TestResolverLocalShadowsOuterFunction(t *testing.T) {
	_, errs := analyze(t, "fn value() { }\nfn a() { value := 1\nvalue() }\n")
	// value() calls the local integer binding, not the outer function;
	// this is not itself an error the resolver can detect (no type
	// information), so only a clean resolve is asserted here.
	require.Empty(t, errs)
}

// diagShape strips the source-range/argument noise from a SourceError
// down to the fields that identify which diagnostic fired, so a
// multi-error batch can be diffed as a whole rather than field by
// field.
type diagShape struct {
	ID       diagnostic.ID
	Severity diagnostic.Severity
	Key      string
}

func shapeOf(errs []diagnostic.SourceError) []diagShape {
	out := make([]diagShape, len(errs))
	for i, e := range errs {
		out[i] = diagShape{ID: e.ID, Severity: e.Severity, Key: e.MessageKey}
	}
	return out
}

// TestResolverDiagnosticBatchShape diffs an entire batch of resolver
// diagnostics at once with go-cmp: a single require.Equal on the raw
// []diagnostic.SourceError would bury which of several diagnostics
// diverged under the whole batch's worth of ranges and args.
func TestResolverDiagnosticBatchShape(t *testing.T) {
	_, errs := analyze(t, "fn dup() { }\nfn dup() { }\nfn a() { nonexistent() }\n")

	want := []diagShape{
		{ID: diagnostic.Redeclaration, Severity: diagnostic.SeverityError, Key: "redeclaration"},
		{ID: diagnostic.UndefinedSymbol, Severity: diagnostic.SeverityError, Key: "undefined_symbol"},
	}
	if diff := cmp.Diff(want, shapeOf(errs)); diff != "" {
		t.Fatalf("diagnostic batch shape mismatch (-want +got):\n%s", diff)
	}
}

// TestResolverDefTargetKindsStructuralDiff diffs the node kind of each
// top-level DefId's target against an expected kind sequence with
// go-cmp: comparing plain hir.NodeKind values needs no
// unexported-field options to reach into HirId/DefId's packed
// representation.
func TestResolverDefTargetKindsStructuralDiff(t *testing.T) {
	hirCtx, errs := analyze(t, "struct Point { x: i32, y: i32 }\nfn a() { b() }\nfn b() { }\n")
	require.Empty(t, errs)

	got := make([]hir.NodeKind, len(hirCtx.Defs))
	for i, target := range hirCtx.Defs {
		got[i] = hirCtx.Node(target).Kind
	}

	want := []hir.NodeKind{
		hir.KindStructDeclaration,
		hir.KindFunctionDeclaration,
		hir.KindFunctionDeclaration,
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("top-level def kind sequence mismatch (-want +got):\n%s", diff)
	}
}

package diagnostic

import (
	"testing"

	"github.com/stretchr/testify/require"
	"go.redy.dev/internal/i18n"
	"go.redy.dev/internal/token"
	"go.redy.dev/internal/unicode/utf8"
)

func newTestEngine(t *testing.T, content string) (*Engine, FileID) {
	t.Helper()
	m := utf8.NewFileManager()
	id := m.RegisterLoaded("src/main.ry", []byte(content))
	translator := i18n.New(i18n.DefaultConfig(), i18n.DefaultEnglishTable)
	return NewEngine(NewFileResolver(m), translator), FileID(id)
}

func TestCodeFormat(t *testing.T) {
	require.Equal(t, "e0036", Code(UndefinedSymbol, SeverityError))
}

func TestEntryBuilderRequiresLabelBeforeAnnotation(t *testing.T) {
	b := NewEntryBuilder(SeverityError, UndefinedSymbol)
	require.Panics(t, func() {
		b.Annotation(AnnotationNote, "not_declared_in_scope", NewFormatArgs("x"))
	})
}

func TestRenderUndeclaredVariable(t *testing.T) {
	eng, fileID := newTestEngine(t, "y := x + 1;\n")
	entry := NewEntryBuilder(SeverityError, UndefinedSymbol).
		LabelRange(fileID, token.NewRange(token.Location{Line: 1, Column: 6}, 1), MarkerLine,
			"use_of_undeclared_variable", NewFormatArgs("x")).
		Annotation(AnnotationNote, "not_declared_in_scope", NewFormatArgs("x")).
		Annotation(AnnotationHelp, "did_you_mean", NewFormatArgs("z")).
		Build()
	eng.Push(entry)

	out := eng.PopAndClear()
	require.Contains(t, out, "error: [e0036] - undefined_symbol")
	require.Contains(t, out, "1 | y := x + 1;")
	require.Contains(t, out, "use of undeclared variable `x`")
	require.Contains(t, out, "= note: `x` was not declared in this scope")
	require.Contains(t, out, "= help: did you mean `z`?")
	require.Equal(t, 0, eng.Len())
}

func TestFormatBatchAndClearEmptiesQueue(t *testing.T) {
	eng, fileID := newTestEngine(t, "x;\n")
	eng.Push(NewEntryBuilder(SeverityWarn, UnusedVariable).
		LabelRange(fileID, token.NewRange(token.Location{Line: 1, Column: 1}, 1), MarkerLine, "unused_variable", NewFormatArgs()).
		Build())
	first := eng.FormatBatchAndClear()
	require.NotEmpty(t, first)
	require.Equal(t, "", eng.FormatBatchAndClear())
}

package resolver

import (
	"testing"

	"github.com/stretchr/testify/require"

	"go.redy.dev/internal/hir"
	"go.redy.dev/internal/intern"
)

func TestSymbolTableResolvesDeclaredName(t *testing.T) {
	st := NewSymbolTable()
	st.PushScope()
	target := hir.HirIdFromDef(hir.NewDefId(7))
	st.Declare(intern.ID(3), target)
	require.Equal(t, target, st.Resolve(intern.ID(3)))
}

func TestSymbolTableResolveMissingIsInvalid(t *testing.T) {
	st := NewSymbolTable()
	require.False(t, st.Resolve(intern.ID(42)).Valid())
}

// TestSymbolTablePopScopeRestoresOuterBinding covers the resolver's
// shadowing-restore property: after a matched push_scope/pop_scope,
// resolve(name) returns whatever it returned before the push, even if
// the inner scope redeclared the same name.
func TestSymbolTablePopScopeRestoresOuterBinding(t *testing.T) {
	st := NewSymbolTable()
	name := intern.ID(1)
	outer := hir.HirIdFromLocal(hir.NewLocalId(0))

	st.PushScope()
	st.Declare(name, outer)
	before := st.Resolve(name)

	st.PushScope()
	st.Declare(name, hir.HirIdFromLocal(hir.NewLocalId(1)))
	require.NotEqual(t, before, st.Resolve(name))
	st.PopScope()

	require.Equal(t, before, st.Resolve(name))
}

func TestSymbolTableDeclaredInCurrentScope(t *testing.T) {
	st := NewSymbolTable()
	name := intern.ID(5)

	st.PushScope()
	require.False(t, st.DeclaredInCurrentScope(name))
	st.Declare(name, hir.HirIdFromLocal(hir.NewLocalId(0)))
	require.True(t, st.DeclaredInCurrentScope(name))

	st.PushScope()
	require.False(t, st.DeclaredInCurrentScope(name), "shadowing in a nested scope is not a same-scope redeclaration")
	st.PopScope()
}

func TestSymbolTableVisibleNamesExcludesPoppedScope(t *testing.T) {
	st := NewSymbolTable()
	st.PushScope()
	st.Declare(intern.ID(1), hir.HirIdFromLocal(hir.NewLocalId(0)))
	st.PushScope()
	st.Declare(intern.ID(2), hir.HirIdFromLocal(hir.NewLocalId(1)))
	st.PopScope()

	require.ElementsMatch(t, []intern.ID{1}, st.VisibleNames())
}

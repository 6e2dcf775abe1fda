// Package resolver walks an ast.Context in declaration order, lowering
// it into an hir.Context while resolving every PathExpression against
// a lexically scoped SymbolTable. Grounded on
// original_source/src/frontend/processor/resolver/{resolver.cc,
// symbol/symbol_table.cc}.
package resolver

import (
	"go.redy.dev/internal/hir"
	"go.redy.dev/internal/intern"
)

type symbolEntry struct {
	name   intern.ID
	target hir.HirId
	prev   int32
}

// SymbolTable is a push-only log of declarations plus a per-name
// "currently visible" index, giving O(1) lookup and O(entries-in-scope)
// push/pop. See symbol_table_test.go for the shadowing property this
// shape is built to satisfy.
type SymbolTable struct {
	symbols      []symbolEntry
	topOfName    []int32
	scopeMarkers []int
}

// NewSymbolTable returns an empty table with the teacher-sized
// reservations original_source uses for a typical single-file program.
func NewSymbolTable() *SymbolTable {
	return &SymbolTable{
		symbols:      make([]symbolEntry, 0, 128),
		scopeMarkers: make([]int, 0, 32),
	}
}

// PushScope opens a new lexical scope at the current log position.
func (t *SymbolTable) PushScope() {
	t.scopeMarkers = append(t.scopeMarkers, len(t.symbols))
}

// PopScope closes the innermost scope, restoring top_of_name for every
// symbol declared since the matching PushScope via its prev link.
func (t *SymbolTable) PopScope() {
	marker := t.scopeMarkers[len(t.scopeMarkers)-1]
	t.scopeMarkers = t.scopeMarkers[:len(t.scopeMarkers)-1]
	for len(t.symbols) > marker {
		e := t.symbols[len(t.symbols)-1]
		t.topOfName[e.name] = e.prev
		t.symbols = t.symbols[:len(t.symbols)-1]
	}
}

func (t *SymbolTable) ensureTopSize(name intern.ID) {
	if int(name) >= len(t.topOfName) {
		grown := make([]int32, name+1)
		for i := len(t.topOfName); i < len(grown); i++ {
			grown[i] = -1
		}
		copy(grown, t.topOfName)
		t.topOfName = grown
	}
}

// Declare binds name to target in the current scope. If name already
// has a visible binding, it is shadowed, not overwritten: the previous
// entry stays reachable through the log's prev chain and reappears on
// PopScope.
func (t *SymbolTable) Declare(name intern.ID, target hir.HirId) {
	t.ensureTopSize(name)
	prev := t.topOfName[name]
	idx := int32(len(t.symbols))
	t.symbols = append(t.symbols, symbolEntry{name: name, target: target, prev: prev})
	t.topOfName[name] = idx
}

// Resolve returns the currently visible binding for name, or
// InvalidHirId if none is visible.
func (t *SymbolTable) Resolve(name intern.ID) hir.HirId {
	if int(name) >= len(t.topOfName) {
		return hir.InvalidHirId
	}
	idx := t.topOfName[name]
	if idx < 0 {
		return hir.InvalidHirId
	}
	return t.symbols[idx].target
}

// DeclaredInCurrentScope reports whether name was already declared
// since the innermost PushScope, used to raise Redeclaration instead
// of silently shadowing within the same scope.
func (t *SymbolTable) DeclaredInCurrentScope(name intern.ID) bool {
	if int(name) >= len(t.topOfName) {
		return false
	}
	idx := t.topOfName[name]
	if idx < 0 || len(t.scopeMarkers) == 0 {
		return false
	}
	return int(idx) >= t.scopeMarkers[len(t.scopeMarkers)-1]
}

// VisibleNames returns every name currently visible in some scope,
// used by the UndefinedSymbol diagnostic to compute a "did you mean"
// suggestion over the live candidate set rather than the whole log.
func (t *SymbolTable) VisibleNames() []intern.ID {
	names := make([]intern.ID, 0, len(t.topOfName))
	for name, idx := range t.topOfName {
		if idx >= 0 {
			names = append(names, intern.ID(name))
		}
	}
	return names
}

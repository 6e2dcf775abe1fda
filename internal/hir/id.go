// Package hir is the arena-based high-level intermediate representation
// produced by internal/resolver: the same { payload_id, kind } node
// shape as internal/ast, but with every name replaced by a resolved
// HirId/DefId/LocalId instead of a lexeme. Grounded on
// original_source/src/frontend/data/hir/{base,context.h}.
package hir

// DefId names one top-level or block-scoped declaration's binding
// site. Simplified from original_source's uint64 DefId (which reserves
// bits for cross-module linkage this single-file core does not need)
// down to a dense uint32 arena index.
type DefId struct {
	idx   uint32
	valid bool
}

// HirKind tags which id space a HirId's index was drawn from, since
// DefId and LocalId are independently numbered (a top-level function
// and a block-local variable can share the same numeric index without
// this tag making them collide in the symbol table).
type HirKind uint8

const (
	HirKindDef HirKind = iota
	HirKindLocal
)

// HirId is a reference to a DefId or LocalId as seen from a use site:
// either the resolved binding the path expression names, or
// InvalidHirId when resolution failed.
type HirId struct {
	idx   uint32
	kind  HirKind
	valid bool
}

// LocalId names a function-local binding (parameter or block-scoped
// declaration) distinctly from module-level DefIds, mirroring the
// original's three-id scheme even though this core does not yet
// distinguish local storage classes beyond name resolution.
type LocalId struct {
	idx   uint32
	valid bool
}

var (
	InvalidDefId   = DefId{}
	InvalidHirId   = HirId{}
	InvalidLocalId = LocalId{}
)

func NewDefId(idx uint32) DefId     { return DefId{idx: idx, valid: true} }
func NewHirId(idx uint32) HirId     { return HirId{idx: idx, valid: true} }
func NewLocalId(idx uint32) LocalId { return LocalId{idx: idx, valid: true} }

func (id DefId) Valid() bool   { return id.valid }
func (id DefId) Index() uint32 { return id.idx }

func (id HirId) Valid() bool    { return id.valid }
func (id HirId) Index() uint32  { return id.idx }
func (id HirId) Kind() HirKind  { return id.kind }

func (id LocalId) Valid() bool   { return id.valid }
func (id LocalId) Index() uint32 { return id.idx }

// HirIdFromDef views a DefId as the HirId a use site resolving to it
// should carry.
func HirIdFromDef(d DefId) HirId { return HirId{idx: d.idx, kind: HirKindDef, valid: d.valid} }

// HirIdFromLocal views a LocalId as the HirId a use site resolving to
// it should carry.
func HirIdFromLocal(l LocalId) HirId { return HirId{idx: l.idx, kind: HirKindLocal, valid: l.valid} }

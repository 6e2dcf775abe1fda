package ast

// StorageAttribute is a bitset over the declaration-prefix keywords.
// Conflict invariants (enforced by the parser, not here):
// Mutable XOR Constant, Extern XOR Static.
type StorageAttribute uint8

const (
	AttrMutable StorageAttribute = 1 << iota
	AttrConstant
	AttrExtern
	AttrStatic
	AttrThreadLocal
	AttrPublic
	AttrAsync
)

func (s StorageAttribute) Has(flag StorageAttribute) bool { return s&flag != 0 }

// MutableConstantConflict reports whether both Mutable and Constant
// are set.
func (s StorageAttribute) MutableConstantConflict() bool {
	return s.Has(AttrMutable) && s.Has(AttrConstant)
}

// ExternStaticConflict reports whether both Extern and Static are set.
func (s StorageAttribute) ExternStaticConflict() bool {
	return s.Has(AttrExtern) && s.Has(AttrStatic)
}

package hir

// PayloadId and PayloadRange/Arena duplicate internal/ast's generic
// arena shape rather than sharing it: both contexts specialize the
// same pattern from original_source's shared base::Arena<T> template
// over disjoint payload sets, and keeping them as two small
// self-contained arenas avoids coupling the AST's allocation lifetime
// to the HIR's.
type PayloadId[T any] struct {
	idx   uint32
	valid bool
}

func (id PayloadId[T]) Valid() bool   { return id.valid }
func (id PayloadId[T]) Index() uint32 { return id.idx }

type PayloadRange[T any] struct {
	Begin PayloadId[T]
	Size  uint32
}

func (r PayloadRange[T]) Len() int { return int(r.Size) }

type Arena[T any] struct {
	items []T
}

func (a *Arena[T]) Alloc(payload T) PayloadId[T] {
	id := PayloadId[T]{idx: uint32(len(a.items)), valid: true}
	a.items = append(a.items, payload)
	return id
}

func (a *Arena[T]) AllocContiguous(payloads []T) PayloadRange[T] {
	begin := PayloadId[T]{idx: uint32(len(a.items)), valid: true}
	a.items = append(a.items, payloads...)
	return PayloadRange[T]{Begin: begin, Size: uint32(len(payloads))}
}

func (a *Arena[T]) Get(id PayloadId[T]) *T { return &a.items[id.idx] }

func (a *Arena[T]) Slice(r PayloadRange[T]) []T {
	return a.items[r.Begin.idx : r.Begin.idx+r.Size]
}

func (a *Arena[T]) Len() int { return len(a.items) }

func (a *Arena[T]) InBounds(id PayloadId[T]) bool {
	return id.valid && int(id.idx) < len(a.items)
}

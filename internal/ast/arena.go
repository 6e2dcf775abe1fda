// Package ast defines the arena-based abstract syntax tree: one
// append-only payload arena per node kind, plus a central Node array
// whose entries are {payload id, kind} pairs. Grounded on spec.md
// §3/§4.4 and original_source/src/frontend/data/ast/*.
package ast

// PayloadId is a typed handle into a specific payload arena: a newtype
// over a dense uint32 index. It carries the concrete payload type
// statically so callers never need a base-class pointer.
type PayloadId[T any] struct {
	idx   uint32
	valid bool
}

// NewPayloadId rebuilds a typed handle from a raw arena index, needed
// by consumers outside package ast (the resolver) that only have a
// Node's bare PayloadIdx and already know, from the Node's Kind, which
// arena it indexes into.
func NewPayloadId[T any](idx uint32) PayloadId[T] {
	return PayloadId[T]{idx: idx, valid: true}
}

// Valid reports whether id was produced by an Alloc call.
func (id PayloadId[T]) Valid() bool { return id.valid }

// Index returns the raw arena index backing id.
func (id PayloadId[T]) Index() uint32 { return id.idx }

// PayloadRange denotes a contiguous subsequence of an arena: Size
// entries starting at Begin. Producers allocating a PayloadRange must
// not interleave unrelated allocations into the same arena while the
// range is being built.
type PayloadRange[T any] struct {
	Begin PayloadId[T]
	Size  uint32
}

// Len returns the number of entries in r.
func (r PayloadRange[T]) Len() int { return int(r.Size) }

// Arena is an append-only vector of payloads of type T, addressed by
// dense PayloadId[T] handles.
type Arena[T any] struct {
	items []T
}

// Alloc appends payload and returns its handle.
func (a *Arena[T]) Alloc(payload T) PayloadId[T] {
	id := PayloadId[T]{idx: uint32(len(a.items)), valid: true}
	a.items = append(a.items, payload)
	return id
}

// AllocContiguous appends every element of payloads as one contiguous
// run and returns the resulting range. Calling this with an empty
// slice returns a zero-length range anchored at the arena's current
// end.
func (a *Arena[T]) AllocContiguous(payloads []T) PayloadRange[T] {
	begin := PayloadId[T]{idx: uint32(len(a.items)), valid: true}
	a.items = append(a.items, payloads...)
	return PayloadRange[T]{Begin: begin, Size: uint32(len(payloads))}
}

// Get returns a pointer to the payload at id. Panics if id is out of
// bounds, which indicates a bug in the producer, not recoverable input
// error.
func (a *Arena[T]) Get(id PayloadId[T]) *T {
	return &a.items[id.idx]
}

// Slice returns the contiguous run denoted by r as a slice view.
func (a *Arena[T]) Slice(r PayloadRange[T]) []T {
	return a.items[r.Begin.idx : r.Begin.idx+r.Size]
}

// Len returns the number of payloads allocated so far.
func (a *Arena[T]) Len() int { return len(a.items) }

// InBounds reports whether id indexes a live slot, used by property
// tests checking that every PayloadId stored in the tree is valid.
func (a *Arena[T]) InBounds(id PayloadId[T]) bool {
	return id.valid && int(id.idx) < len(a.items)
}

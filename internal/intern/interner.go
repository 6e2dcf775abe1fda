// Package intern implements the StringInterner required by the
// resolver's symbol table for O(1) name comparisons, grounded on
// spec.md §3/§9.
package intern

import "github.com/cespare/xxhash/v2"

// ID is a dense interned-string handle.
type ID uint32

// InvalidID marks the absence of an interned string.
const InvalidID ID = ^ID(0)

type bucketEntry struct {
	id   ID
	text string
}

// Interner maps byte slices to dense IDs. Lookup hashes the raw bytes
// with xxhash before any string is allocated, so a failed or repeat
// intern of the same text never pays for a fresh Go string until the
// name is actually new.
type Interner struct {
	buckets map[uint64][]bucketEntry
	strings []string
}

// New returns an empty Interner.
func New() *Interner {
	return &Interner{buckets: make(map[uint64][]bucketEntry)}
}

// Intern returns the ID for text, allocating a new one on first sight.
// intern(s) == intern(s) for byte-equal slices, and
// lookup(intern(s)) == s.
func (in *Interner) Intern(text []byte) ID {
	h := xxhash.Sum64(text)
	for _, e := range in.buckets[h] {
		if e.text == string(text) {
			return e.id
		}
	}
	s := string(text)
	id := ID(len(in.strings))
	in.strings = append(in.strings, s)
	in.buckets[h] = append(in.buckets[h], bucketEntry{id: id, text: s})
	return id
}

// InternString is a convenience wrapper over Intern for an already
// materialized Go string.
func (in *Interner) InternString(s string) ID {
	return in.Intern([]byte(s))
}

// Lookup returns the text for a previously interned ID.
func (in *Interner) Lookup(id ID) (string, bool) {
	if int(id) < 0 || int(id) >= len(in.strings) {
		return "", false
	}
	return in.strings[id], true
}

// Len returns the number of distinct interned strings.
func (in *Interner) Len() int { return len(in.strings) }

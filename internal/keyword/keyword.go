// Package keyword implements the two-tier keyword lookup described by
// spec.md §2/§4.3: a fast switch over short (<=5 byte) common keywords,
// falling back to an open-addressed hash table for everything else.
// Grounded on original_source/src/frontend/base/keyword/keyword.cc.
package keyword

import "go.redy.dev/internal/token"

const tableSize = 128

type entry struct {
	lexeme string
	kind   token.Kind
	used   bool
}

var table [tableSize]entry

// calcWordHash reproduces original_source's exact hash formula so the
// probe sequence (and therefore worst-case behavior) matches the
// reference implementation bit for bit.
func calcWordHash(word string) int {
	if len(word) == 0 {
		return 0
	}
	first := int(word[0])
	last := int(word[len(word)-1])
	return (first*7 + last*13 + len(word)*3) % tableSize
}

// fastSet lists the keywords handled by the fast path: the common
// keywords of length 2..5 bytes. The short keywords str, use, pub,
// async and await are not in it and are found by the hash table.
var fastSet = map[string]token.Kind{
	"i8": token.I8, "if": token.If, "fn": token.Function, "as": token.As, "u8": token.U8,
	"mut": token.Mutable, "for": token.For, "f32": token.F32, "f64": token.F64,
	"i16": token.I16, "i32": token.I32, "i64": token.I64,
	"u16": token.U16, "u32": token.U32, "u64": token.U64,
	"else": token.Else, "enum": token.Enumeration, "true": token.True, "this": token.This,
	"void": token.Void, "bool": token.Bool, "byte": token.Byte, "char": token.Char,
	"fast": token.Fast, "loop": token.Loop, "i128": token.I128, "impl": token.Implementation,
	"u128": token.U128,
	"while": token.While, "break": token.Break, "false": token.False, "const": token.Constant,
	"trait": token.Trait, "match": token.Match, "isize": token.Isize, "union": token.Union,
	"usize": token.Usize, "in": token.In,
}

// fullSet lists the keywords that are not in fastSet: the ones longer
// than 5 bytes plus a few short ones. Both sets are inserted into the
// hash table, which therefore holds every keyword.
var fullSet = map[string]token.Kind{
	"str": token.Str,
	"continue": token.Continue, "return": token.Return,
	"struct": token.Struct, "module": token.Module, "redirect": token.Redirect,
	"use": token.Use,
	"extern": token.Extern, "static": token.Static, "thread_local": token.ThreadLocal,
	"pub": token.Public, "async": token.Async,
	"await": token.Await, "unsafe": token.Unsafe,
}

func init() {
	for lexeme, kind := range fastSet {
		insert(lexeme, kind)
	}
	for lexeme, kind := range fullSet {
		insert(lexeme, kind)
	}
}

func insert(lexeme string, kind token.Kind) {
	h := calcWordHash(lexeme)
	for i := 0; i < tableSize; i++ {
		slot := (h + i) % tableSize
		if !table[slot].used {
			table[slot] = entry{lexeme: lexeme, kind: kind, used: true}
			return
		}
	}
	panic("keyword: table full, increase tableSize")
}

// fastEquals reports whether word (length 2..5) is a fast-path keyword,
// with a single lookup in fastSet.
func fastEquals(word string) (token.Kind, bool) {
	if len(word) < 2 || len(word) > 5 {
		return token.Unknown, false
	}
	kind, ok := fastSet[word]
	return kind, ok
}

func hashLookup(word string) (token.Kind, bool) {
	h := calcWordHash(word)
	for i := 0; i < tableSize; i++ {
		slot := (h + i) % tableSize
		if !table[slot].used {
			return token.Unknown, false
		}
		if table[slot].lexeme == word {
			return table[slot].kind, true
		}
	}
	return token.Unknown, false
}

// Lookup classifies word (already validated by the lexer as
// XID_START XID_CONTINUE*) as a keyword Kind, or returns
// token.Identifier if it is not one.
func Lookup(word string) token.Kind {
	if len(word) >= 2 && len(word) <= 5 {
		if kind, ok := fastEquals(word); ok {
			return kind
		}
	}
	if kind, ok := hashLookup(word); ok {
		return kind
	}
	return token.Identifier
}

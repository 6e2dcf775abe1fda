// Package compiler wires the front end's pieces (FileManager, Stream,
// Lexer, Parser, Resolver) into the single- and multi-file pipelines a
// driver needs, grounded on teacher pkg/compiler.go's "own a target,
// own a pipeline" shape minus the codegen stage it also carries.
package compiler

import (
	"go.redy.dev/internal/ast"
	"go.redy.dev/internal/diagnostic"
	"go.redy.dev/internal/hir"
	"go.redy.dev/internal/intern"
	"go.redy.dev/internal/lexer"
	"go.redy.dev/internal/parser"
	"go.redy.dev/internal/resolver"
	"go.redy.dev/internal/token"
	"go.redy.dev/internal/unicode/utf8"
)

// Options configures one file's compilation.
type Options struct {
	Mode   lexer.Mode
	Strict bool
}

// Result is everything a driver needs to report on one compiled file.
type Result struct {
	Path    string
	Entries []diagnostic.Entry
	Ast     *ast.Context
	Hir     *hir.Context
}

// File compiles the file at path through lexing, parsing and
// resolution, returning every diagnostic entry produced along the way.
// A fatal UTF-8 validation failure short-circuits the rest of the
// pipeline, matching spec.md §4.2's "a lexer must never run over an
// Invalid stream" rule.
func File(path string, opts Options) (Result, error) {
	manager := utf8.NewFileManager()
	id, err := manager.RegisterFile(path)
	if err != nil {
		return Result{}, err
	}
	if err := manager.Load(id); err != nil {
		return Result{}, err
	}

	fileID := diagnostic.FileID(id)
	l := lexer.New()
	fatal, err := l.Init(manager, id, opts.Mode)
	if err != nil {
		return Result{}, err
	}
	if fatal != nil {
		return Result{Path: path, Entries: []diagnostic.Entry{*fatal}}, nil
	}

	tokens, lexErrs := l.Tokenize(opts.Strict)
	ts := token.NewStream(tokens, manager, id)

	interner := intern.New()
	astCtx := ast.NewContext()
	p := parser.New(ts, astCtx, interner)
	items, parseErrs := p.ParseAll(opts.Strict)

	r := resolver.New(astCtx, interner, fileID)
	hirCtx := r.Analyze(items)

	entries := make([]diagnostic.Entry, 0, len(lexErrs)+len(parseErrs)+len(r.Errors()))
	for _, e := range lexErrs {
		entries = append(entries, e.ToEntry())
	}
	for _, e := range parseErrs {
		entries = append(entries, e.ToEntry())
	}
	for _, e := range r.Errors() {
		entries = append(entries, e.ToEntry())
	}

	return Result{Path: path, Entries: entries, Ast: astCtx, Hir: hirCtx}, nil
}

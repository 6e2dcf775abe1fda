// Package parser implements the recursive-descent, precedence-climbing
// parser described by spec.md §4.5, lowering a token.Stream into an
// ast.Context. Grounded on teacher pkg/parser.go's single-token-
// lookahead peek/next/expect/errorf shape, generalized to the full
// grammar sketch.
package parser

import (
	"go.redy.dev/internal/ast"
	"go.redy.dev/internal/diagnostic"
	"go.redy.dev/internal/intern"
	"go.redy.dev/internal/token"
)

// Parser drives one token.Stream into one ast.Context.
type Parser struct {
	ts       *token.Stream
	ctx      *ast.Context
	interner *intern.Interner
	fileID   diagnostic.FileID
	errors   []diagnostic.SourceError
	strict   bool
}

// New returns a Parser reading ts into ctx, interning identifier
// lexemes through interner.
func New(ts *token.Stream, ctx *ast.Context, interner *intern.Interner) *Parser {
	return &Parser{ts: ts, ctx: ctx, interner: interner, fileID: diagnostic.FileID(ts.FileID())}
}

// Errors returns every SourceError collected so far.
func (p *Parser) Errors() []diagnostic.SourceError { return p.errors }

// ParseAll drives parse_all(strict): a loop at root scope recognizing
// declarations and global assignments. In strict mode it returns after
// the first error; otherwise it synchronizes and keeps going.
func (p *Parser) ParseAll(strict bool) ([]ast.NodeId, []diagnostic.SourceError) {
	p.strict = strict
	var items []ast.NodeId
	for !p.ts.Eof() {
		if p.ts.Check(token.Newline, 0) {
			p.ts.Next()
			continue
		}
		id, err := p.parseRootItem()
		if err != nil {
			p.errors = append(p.errors, *err)
			if strict {
				return items, p.errors
			}
			p.synchronize()
			continue
		}
		items = append(items, id)
	}
	return items, p.errors
}

// synchronize advances until the next sync point: Semicolon,
// RightBrace, Newline, Eof, or any keyword that starts a declaration
// or control-flow construct.
func (p *Parser) synchronize() {
	for !p.ts.Eof() {
		k := p.ts.Peek(0).Kind
		switch k {
		case token.Semicolon:
			p.ts.Next()
			return
		case token.RightBrace, token.Newline:
			return
		}
		if token.IsDeclarationKeyword(k) || token.IsControlFlowKeyword(k) {
			return
		}
		p.ts.Next()
	}
}

// skipNewlines consumes any run of Newline tokens at the current
// position, used between statements inside a block.
func (p *Parser) skipNewlines() {
	for p.ts.Check(token.Newline, 0) {
		p.ts.Next()
	}
}

// atStatementEnd reports whether the current token closes an
// expression without a following operand, used to decide whether a
// bare `return`/`break` carries a value.
func (p *Parser) atStatementEnd() bool {
	switch p.ts.Peek(0).Kind {
	case token.Semicolon, token.RightBrace, token.Newline, token.Eof:
		return true
	default:
		return false
	}
}

// expect consumes the current token if it has kind, else produces an
// UnexpectedToken SourceError carrying both the expected and found
// kind names, per spec.md §4.5's "every consume(expected) failure"
// clause.
func (p *Parser) expect(kind token.Kind) (token.Token, *diagnostic.SourceError) {
	tok := p.ts.Peek(0)
	if tok.Kind == kind {
		p.ts.Next()
		return tok, nil
	}
	err := p.errorAt(tok, diagnostic.UnexpectedToken, "expected_but_found", kind.String(), tok.Kind.String())
	return tok, &err
}

func (p *Parser) errorAt(tok token.Token, id diagnostic.ID, key string, args ...string) diagnostic.SourceError {
	return diagnostic.SourceError{
		ID: id, Severity: diagnostic.SeverityError, FileID: p.fileID,
		Range: token.NewRange(tok.Start, tok.Length), MarkerType: diagnostic.MarkerLine,
		MessageKey: key, Args: diagnostic.NewFormatArgs(args...),
	}
}

// parseIdentifier consumes one Identifier token and interns its
// lexeme.
func (p *Parser) parseIdentifier() (ast.IdentifierPayload, *diagnostic.SourceError) {
	tok, err := p.expect(token.Identifier)
	if err != nil {
		return ast.IdentifierPayload{}, err
	}
	lex, lerr := p.ts.Lexeme(tok)
	if lerr != nil {
		lex = ""
	}
	return ast.IdentifierPayload{
		Name: p.interner.InternString(lex),
		Span: token.NewRange(tok.Start, tok.Length),
	}, nil
}

// parsePathPayload parses `ident ('::' ident)*` into an unallocated
// PathExpressionPayload; callers decide how to anchor it (as an
// expression node, a nested TypeRef, or a construct-expression head).
func (p *Parser) parsePathPayload() (ast.PathExpressionPayload, *diagnostic.SourceError) {
	first, err := p.parseIdentifier()
	if err != nil {
		return ast.PathExpressionPayload{}, err
	}
	parts := []ast.IdentifierPayload{first}
	for p.ts.Check(token.ColonColon, 0) {
		p.ts.Next()
		part, err := p.parseIdentifier()
		if err != nil {
			return ast.PathExpressionPayload{}, err
		}
		parts = append(parts, part)
	}
	return ast.PathExpressionPayload{Parts: p.ctx.Identifiers.AllocContiguous(parts)}, nil
}

// parsePathExpression parses a path and allocates it directly as an
// expression node.
func (p *Parser) parsePathExpression() (ast.NodeId, *diagnostic.SourceError) {
	payload, err := p.parsePathPayload()
	if err != nil {
		return ast.InvalidNodeId, err
	}
	return p.ctx.AllocPathExpression(payload), nil
}

func isPrimitiveType(k token.Kind) bool {
	switch k {
	case token.I8, token.I16, token.I32, token.I64, token.I128, token.Isize,
		token.U8, token.U16, token.U32, token.U64, token.U128, token.Usize,
		token.F32, token.F64, token.Void, token.Byte, token.Bool, token.Char, token.Str:
		return true
	default:
		return false
	}
}

// parseTypeRef parses a primitive keyword or a `::`-joined path as a
// type reference.
func (p *Parser) parseTypeRef() (ast.PayloadId[ast.TypeRefPayload], *diagnostic.SourceError) {
	if isPrimitiveType(p.ts.Peek(0).Kind) {
		tok := p.ts.Peek(0)
		p.ts.Next()
		lex, lerr := p.ts.Lexeme(tok)
		if lerr != nil {
			lex = tok.Kind.String()
		}
		ident := ast.IdentifierPayload{
			Name: p.interner.InternString(lex),
			Span: token.NewRange(tok.Start, tok.Length),
		}
		pathPid := p.ctx.PathExpressions.Alloc(ast.PathExpressionPayload{
			Parts: p.ctx.Identifiers.AllocContiguous([]ast.IdentifierPayload{ident}),
		})
		return p.ctx.TypeRefs.Alloc(ast.TypeRefPayload{Path: pathPid}), nil
	}
	payload, err := p.parsePathPayload()
	if err != nil {
		return ast.PayloadId[ast.TypeRefPayload]{}, err
	}
	pathPid := p.ctx.PathExpressions.Alloc(payload)
	return p.ctx.TypeRefs.Alloc(ast.TypeRefPayload{Path: pathPid}), nil
}

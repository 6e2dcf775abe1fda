package parser

import (
	"go.redy.dev/internal/ast"
	"go.redy.dev/internal/diagnostic"
	"go.redy.dev/internal/token"
)

// parseStorageAttrs greedily reads the longest run of attribute
// keywords. On a Mutable+Constant or Extern+Static conflict it emits
// ConflictingStorageSpecifiers against the conflicting keyword. In
// strict mode it returns that error at once; otherwise it records it,
// skips the conflicting keyword and keeps scanning, so the caller's
// declaration dispatch still sees the declaration that follows.
func (p *Parser) parseStorageAttrs() (ast.StorageAttribute, *diagnostic.SourceError) {
	var s ast.StorageAttribute
	for {
		k := p.ts.Peek(0).Kind
		if !token.IsAttributeKeyword(k) {
			return s, nil
		}
		var next ast.StorageAttribute
		switch k {
		case token.Mutable:
			next = ast.AttrMutable
		case token.Constant:
			next = ast.AttrConstant
		case token.Extern:
			next = ast.AttrExtern
		case token.Static:
			next = ast.AttrStatic
		case token.ThreadLocal:
			next = ast.AttrThreadLocal
		case token.Public:
			next = ast.AttrPublic
		case token.Async:
			next = ast.AttrAsync
		}
		candidate := s | next
		if candidate.MutableConstantConflict() || candidate.ExternStaticConflict() {
			tok := p.ts.Peek(0)
			err := p.errorAt(tok, diagnostic.ConflictingStorageSpecifiers, "conflicting_specifiers")
			if p.strict {
				return s, &err
			}
			p.errors = append(p.errors, err)
			p.ts.Next()
			continue
		}
		s = candidate
		p.ts.Next()
	}
}

// parseRootItem reads an optional storage-attribute prefix and
// dispatches to a declaration or a global assignment/expression
// statement. Shared between ParseAll (root scope) and block parsing,
// since the grammar does not otherwise distinguish statement position.
func (p *Parser) parseRootItem() (ast.NodeId, *diagnostic.SourceError) {
	storage, err := p.parseStorageAttrs()
	if err != nil {
		return ast.InvalidNodeId, err
	}
	switch p.ts.Peek(0).Kind {
	case token.Function:
		return p.parseFunctionDecl(storage)
	case token.Struct:
		return p.parseStructDecl(storage)
	case token.Enumeration:
		return p.parseEnumDecl(storage)
	case token.Union:
		return p.parseUnionDecl(storage)
	case token.Trait:
		return p.parseTraitDecl(storage)
	case token.Implementation:
		return p.parseImplDecl()
	case token.Module:
		return p.parseModuleDecl()
	case token.Redirect:
		return p.parseRedirectDecl()
	default:
		return p.parseAssignOrExprStatement(storage)
	}
}

func (p *Parser) parseParamList() (ast.PayloadRange[ast.ParamPayload], *diagnostic.SourceError) {
	if _, err := p.expect(token.LeftParen); err != nil {
		return ast.PayloadRange[ast.ParamPayload]{}, err
	}
	var params []ast.ParamPayload
	for !p.ts.Check(token.RightParen, 0) {
		name, err := p.parseIdentifier()
		if err != nil {
			return ast.PayloadRange[ast.ParamPayload]{}, err
		}
		if _, err := p.expect(token.Colon); err != nil {
			return ast.PayloadRange[ast.ParamPayload]{}, err
		}
		typ, err := p.parseTypeRef()
		if err != nil {
			return ast.PayloadRange[ast.ParamPayload]{}, err
		}
		params = append(params, ast.ParamPayload{Name: name, Type: typ})
		if !p.ts.Match(token.Comma) {
			break
		}
	}
	if _, err := p.expect(token.RightParen); err != nil {
		return ast.PayloadRange[ast.ParamPayload]{}, err
	}
	return p.ctx.Params.AllocContiguous(params), nil
}

// parseFunctionDecl parses `fn name(params) (-> type)? block?`; without
// a body an optional `;` ends the declaration. Trait and impl methods
// are parsed by parseMethodList instead.
func (p *Parser) parseFunctionDecl(storage ast.StorageAttribute) (ast.NodeId, *diagnostic.SourceError) {
	p.ts.Next() // 'fn'
	name, err := p.parseIdentifier()
	if err != nil {
		return ast.InvalidNodeId, err
	}
	params, err := p.parseParamList()
	if err != nil {
		return ast.InvalidNodeId, err
	}
	var retType ast.PayloadId[ast.TypeRefPayload]
	if p.ts.Match(token.Arrow) {
		retType, err = p.parseTypeRef()
		if err != nil {
			return ast.InvalidNodeId, err
		}
	}
	var body ast.PayloadId[ast.BlockExpressionPayload]
	if p.ts.Check(token.LeftBrace, 0) {
		_, body, err = p.parseBlock()
		if err != nil {
			return ast.InvalidNodeId, err
		}
	} else {
		p.ts.Match(token.Semicolon)
	}
	nodeId, _ := p.ctx.AllocFunctionDeclaration(ast.FunctionDeclarationPayload{
		Name: name, Parameters: params, ReturnType: retType, Body: body, Storage: storage,
	})
	return nodeId, nil
}

func (p *Parser) parseFieldList() (ast.PayloadRange[ast.FieldPayload], *diagnostic.SourceError) {
	if _, err := p.expect(token.LeftBrace); err != nil {
		return ast.PayloadRange[ast.FieldPayload]{}, err
	}
	var fields []ast.FieldPayload
	for !p.ts.Check(token.RightBrace, 0) {
		p.skipNewlines()
		if p.ts.Check(token.RightBrace, 0) {
			break
		}
		name, err := p.parseIdentifier()
		if err != nil {
			return ast.PayloadRange[ast.FieldPayload]{}, err
		}
		if _, err := p.expect(token.Colon); err != nil {
			return ast.PayloadRange[ast.FieldPayload]{}, err
		}
		typ, err := p.parseTypeRef()
		if err != nil {
			return ast.PayloadRange[ast.FieldPayload]{}, err
		}
		fields = append(fields, ast.FieldPayload{Name: name, Type: typ})
		if !p.ts.Match(token.Comma) {
			p.skipNewlines()
		}
	}
	if _, err := p.expect(token.RightBrace); err != nil {
		return ast.PayloadRange[ast.FieldPayload]{}, err
	}
	return p.ctx.Fields.AllocContiguous(fields), nil
}

func (p *Parser) parseStructDecl(storage ast.StorageAttribute) (ast.NodeId, *diagnostic.SourceError) {
	p.ts.Next() // 'struct'
	name, err := p.parseIdentifier()
	if err != nil {
		return ast.InvalidNodeId, err
	}
	fields, err := p.parseFieldList()
	if err != nil {
		return ast.InvalidNodeId, err
	}
	return p.ctx.AllocStructDeclaration(ast.StructDeclarationPayload{Name: name, Fields: fields, Storage: storage}), nil
}

func (p *Parser) parseUnionDecl(storage ast.StorageAttribute) (ast.NodeId, *diagnostic.SourceError) {
	p.ts.Next() // 'union'
	name, err := p.parseIdentifier()
	if err != nil {
		return ast.InvalidNodeId, err
	}
	fields, err := p.parseFieldList()
	if err != nil {
		return ast.InvalidNodeId, err
	}
	return p.ctx.AllocUnionDeclaration(ast.UnionDeclarationPayload{Name: name, Fields: fields, Storage: storage}), nil
}

// parseEnumVariant parses `Name`, `Name(value)`, `Name(T, ...)`, or
// `Name{field: Type, ...}`.
func (p *Parser) parseEnumVariant() (ast.EnumVariantPayload, *diagnostic.SourceError) {
	name, err := p.parseIdentifier()
	if err != nil {
		return ast.EnumVariantPayload{}, err
	}
	switch p.ts.Peek(0).Kind {
	case token.LeftParen:
		p.ts.Next()
		first, ferr := p.tryParseTypeRefOrInt()
		if ferr != nil {
			return ast.EnumVariantPayload{}, ferr
		}
		if first.isInt {
			if _, err := p.expect(token.RightParen); err != nil {
				return ast.EnumVariantPayload{}, err
			}
			return ast.EnumVariantPayload{Name: name, ShapeKind: ast.EnumVariantInteger, IntegerNode: first.intNode}, nil
		}
		types := []ast.TypeRefPayload{*p.ctx.TypeRefs.Get(first.typeRef)}
		for p.ts.Match(token.Comma) {
			if p.ts.Check(token.RightParen, 0) {
				break
			}
			t, terr := p.parseTypeRef()
			if terr != nil {
				return ast.EnumVariantPayload{}, terr
			}
			types = append(types, *p.ctx.TypeRefs.Get(t))
		}
		if _, err := p.expect(token.RightParen); err != nil {
			return ast.EnumVariantPayload{}, err
		}
		return ast.EnumVariantPayload{Name: name, ShapeKind: ast.EnumVariantTuple, TupleTypes: p.ctx.TypeRefs.AllocContiguous(types)}, nil
	case token.LeftBrace:
		fields, ferr := p.parseFieldList()
		if ferr != nil {
			return ast.EnumVariantPayload{}, ferr
		}
		return ast.EnumVariantPayload{Name: name, ShapeKind: ast.EnumVariantRecord, Fields: fields}, nil
	default:
		return ast.EnumVariantPayload{Name: name, ShapeKind: ast.EnumVariantEmpty}, nil
	}
}

type typeOrInt struct {
	isInt   bool
	intNode ast.NodeId
	typeRef ast.PayloadId[ast.TypeRefPayload]
}

// tryParseTypeRefOrInt disambiguates `Name(42)` (an integer-valued
// variant) from `Name(Type, ...)` (a tuple variant) by checking
// whether the first token is a numeric literal.
func (p *Parser) tryParseTypeRefOrInt() (typeOrInt, *diagnostic.SourceError) {
	if token.IsLiteral(p.ts.Peek(0).Kind) {
		n, err := p.parseLiteral()
		if err != nil {
			return typeOrInt{}, err
		}
		return typeOrInt{isInt: true, intNode: n}, nil
	}
	t, err := p.parseTypeRef()
	if err != nil {
		return typeOrInt{}, err
	}
	return typeOrInt{typeRef: t}, nil
}

func (p *Parser) parseEnumDecl(storage ast.StorageAttribute) (ast.NodeId, *diagnostic.SourceError) {
	p.ts.Next() // 'enum'
	name, err := p.parseIdentifier()
	if err != nil {
		return ast.InvalidNodeId, err
	}
	if _, err := p.expect(token.LeftBrace); err != nil {
		return ast.InvalidNodeId, err
	}
	var variants []ast.EnumVariantPayload
	for !p.ts.Check(token.RightBrace, 0) {
		p.skipNewlines()
		if p.ts.Check(token.RightBrace, 0) {
			break
		}
		v, verr := p.parseEnumVariant()
		if verr != nil {
			return ast.InvalidNodeId, verr
		}
		variants = append(variants, v)
		if !p.ts.Match(token.Comma) {
			p.skipNewlines()
		}
	}
	if _, err := p.expect(token.RightBrace); err != nil {
		return ast.InvalidNodeId, err
	}
	return p.ctx.AllocEnumDeclaration(ast.EnumDeclarationPayload{
		Name: name, Variants: p.ctx.EnumVariants.AllocContiguous(variants), Storage: storage,
	}), nil
}

// parseMethodList parses the `{ fn sig; fn sig { body } ... }` body
// shared by trait and impl declarations.
func (p *Parser) parseMethodList() (ast.PayloadRange[ast.FunctionDeclarationPayload], *diagnostic.SourceError) {
	if _, err := p.expect(token.LeftBrace); err != nil {
		return ast.PayloadRange[ast.FunctionDeclarationPayload]{}, err
	}
	var methods []ast.FunctionDeclarationPayload
	for !p.ts.Check(token.RightBrace, 0) {
		p.skipNewlines()
		if p.ts.Check(token.RightBrace, 0) {
			break
		}
		if _, err := p.expect(token.Function); err != nil {
			return ast.PayloadRange[ast.FunctionDeclarationPayload]{}, err
		}
		name, err := p.parseIdentifier()
		if err != nil {
			return ast.PayloadRange[ast.FunctionDeclarationPayload]{}, err
		}
		params, err := p.parseParamList()
		if err != nil {
			return ast.PayloadRange[ast.FunctionDeclarationPayload]{}, err
		}
		var retType ast.PayloadId[ast.TypeRefPayload]
		if p.ts.Match(token.Arrow) {
			retType, err = p.parseTypeRef()
			if err != nil {
				return ast.PayloadRange[ast.FunctionDeclarationPayload]{}, err
			}
		}
		var body ast.PayloadId[ast.BlockExpressionPayload]
		if p.ts.Check(token.LeftBrace, 0) {
			_, body, err = p.parseBlock()
			if err != nil {
				return ast.PayloadRange[ast.FunctionDeclarationPayload]{}, err
			}
		} else {
			p.ts.Match(token.Semicolon)
		}
		methods = append(methods, ast.FunctionDeclarationPayload{Name: name, Parameters: params, ReturnType: retType, Body: body})
		p.skipNewlines()
	}
	if _, err := p.expect(token.RightBrace); err != nil {
		return ast.PayloadRange[ast.FunctionDeclarationPayload]{}, err
	}
	return p.ctx.FunctionDeclarations.AllocContiguous(methods), nil
}

func (p *Parser) parseTraitDecl(storage ast.StorageAttribute) (ast.NodeId, *diagnostic.SourceError) {
	p.ts.Next() // 'trait'
	name, err := p.parseIdentifier()
	if err != nil {
		return ast.InvalidNodeId, err
	}
	methods, err := p.parseMethodList()
	if err != nil {
		return ast.InvalidNodeId, err
	}
	return p.ctx.AllocTraitDeclaration(ast.TraitDeclarationPayload{Name: name, Methods: methods, Storage: storage}), nil
}

// parseImplDecl parses `impl type { methods }` or `impl trait for type
// { methods }`.
func (p *Parser) parseImplDecl() (ast.NodeId, *diagnostic.SourceError) {
	p.ts.Next() // 'impl'
	first, err := p.parseTypeRef()
	if err != nil {
		return ast.InvalidNodeId, err
	}
	var traitRef, target ast.PayloadId[ast.TypeRefPayload]
	if p.ts.Match(token.For) {
		traitRef = first
		target, err = p.parseTypeRef()
		if err != nil {
			return ast.InvalidNodeId, err
		}
	} else {
		target = first
	}
	methods, err := p.parseMethodList()
	if err != nil {
		return ast.InvalidNodeId, err
	}
	return p.ctx.AllocImplDeclaration(ast.ImplDeclarationPayload{Target: target, Trait: traitRef, Methods: methods}), nil
}

func (p *Parser) parseModuleDecl() (ast.NodeId, *diagnostic.SourceError) {
	p.ts.Next() // 'module'
	name, err := p.parseIdentifier()
	if err != nil {
		return ast.InvalidNodeId, err
	}
	if _, err := p.expect(token.LeftBrace); err != nil {
		return ast.InvalidNodeId, err
	}
	var items []ast.NodeId
	for !p.ts.Check(token.RightBrace, 0) && !p.ts.Eof() {
		p.skipNewlines()
		if p.ts.Check(token.RightBrace, 0) {
			break
		}
		item, ierr := p.parseRootItem()
		if ierr != nil {
			p.errors = append(p.errors, *ierr)
			p.synchronize()
			continue
		}
		items = append(items, item)
	}
	if _, err := p.expect(token.RightBrace); err != nil {
		return ast.InvalidNodeId, err
	}
	return p.ctx.AllocModuleDeclaration(ast.ModuleDeclarationPayload{Name: name, Items: p.ctx.AllocNodeRange(items)}), nil
}

// parseRedirectDecl parses `redirect name -> target`. Per DESIGN.md's
// resolution of spec.md's open question, the resolver treats this as
// an alias binding and never diagnoses a missing target, so the parser
// only needs to record both identifiers.
func (p *Parser) parseRedirectDecl() (ast.NodeId, *diagnostic.SourceError) {
	p.ts.Next() // 'redirect'
	name, err := p.parseIdentifier()
	if err != nil {
		return ast.InvalidNodeId, err
	}
	if _, err := p.expect(token.Arrow); err != nil {
		return ast.InvalidNodeId, err
	}
	target, err := p.parseIdentifier()
	if err != nil {
		return ast.InvalidNodeId, err
	}
	p.ts.Match(token.Semicolon)
	return p.ctx.AllocRedirectDeclaration(ast.RedirectDeclarationPayload{Name: name, Target: target}), nil
}

package parser

import (
	"go.redy.dev/internal/ast"
	"go.redy.dev/internal/diagnostic"
	"go.redy.dev/internal/token"
)

// parseExpr implements precedence climbing: climb(primary, min_prec).
func (p *Parser) parseExpr(minPrec int) (ast.NodeId, *diagnostic.SourceError) {
	lhs, err := p.parseUnary()
	if err != nil {
		return ast.InvalidNodeId, err
	}
	for {
		opKind := p.ts.Peek(0).Kind
		prec, ok := binaryPrecedence[opKind]
		if !ok || prec < minPrec {
			return lhs, nil
		}
		p.ts.Next()
		nextMin := prec + 1
		if isRightAssoc(opKind) {
			nextMin = prec
		}
		rhs, err := p.parseExpr(nextMin)
		if err != nil {
			return ast.InvalidNodeId, err
		}
		lhs = p.ctx.AllocBinaryExpression(ast.BinaryExpressionPayload{Op: opKind, Lhs: lhs, Rhs: rhs})
	}
}

// parseUnary parses eager prefix operators (`! - ~ ++ --`) before
// dropping into the postfix chain.
func (p *Parser) parseUnary() (ast.NodeId, *diagnostic.SourceError) {
	k := p.ts.Peek(0).Kind
	if token.IsUnaryOperator(k) {
		p.ts.Next()
		operand, err := p.parseUnary()
		if err != nil {
			return ast.InvalidNodeId, err
		}
		return p.ctx.AllocUnaryExpression(ast.UnaryExpressionPayload{Op: k, Operand: operand}), nil
	}
	return p.parsePostfix()
}

// parsePostfix parses a primary then loops over the postfix chain:
// `::ident`, `[expr]`, `(args)`, `#(args)`, `.ident(...)` /
// `.ident#(...)` / `.ident`, `.await`, `++`/`--`, and `{fields}` when
// the receiver is a path and the brace is followed by `ident :`, so a
// block after a condition (`if a { 1 }`) is not taken as a construct
// expression; `Path{}` with no fields is not a construct expression.
func (p *Parser) parsePostfix() (ast.NodeId, *diagnostic.SourceError) {
	expr, err := p.parsePrimary()
	if err != nil {
		return ast.InvalidNodeId, err
	}
	for {
		switch p.ts.Peek(0).Kind {
		case token.PlusPlus, token.MinusMinus:
			opTok := p.ts.Peek(0)
			p.ts.Next()
			expr = p.ctx.AllocUnaryExpression(ast.UnaryExpressionPayload{Op: opTok.Kind, Operand: expr, IsPostfix: true})

		case token.ColonColon:
			if p.ctx.Node(expr).Kind != ast.KindPathExpression {
				return expr, nil
			}
			p.ts.Next()
			ident, ierr := p.parseIdentifier()
			if ierr != nil {
				return ast.InvalidNodeId, ierr
			}
			expr = p.extendPath(expr, ident)

		case token.LeftBracket:
			p.ts.Next()
			idx, ierr := p.parseExpr(precLowest)
			if ierr != nil {
				return ast.InvalidNodeId, ierr
			}
			if _, ierr := p.expect(token.RightBracket); ierr != nil {
				return ast.InvalidNodeId, ierr
			}
			expr = p.ctx.AllocIndexExpression(ast.IndexExpressionPayload{Target: expr, Index: idx})

		case token.LeftParen:
			args, aerr := p.parseArgList(token.RightParen)
			if aerr != nil {
				return ast.InvalidNodeId, aerr
			}
			expr = p.ctx.AllocCallExpression(ast.CallExpressionPayload{
				Kind: ast.CallFunction, Callee: expr, Receiver: ast.InvalidNodeId, Args: args,
			})

		case token.Hash:
			p.ts.Next()
			args, aerr := p.parseArgList(token.RightParen)
			if aerr != nil {
				return ast.InvalidNodeId, aerr
			}
			expr = p.ctx.AllocCallExpression(ast.CallExpressionPayload{
				Kind: ast.CallFunctionMacro, Callee: expr, Receiver: ast.InvalidNodeId, Args: args,
			})

		case token.Dot:
			p.ts.Next()
			if p.ts.Check(token.Await, 0) {
				p.ts.Next()
				expr = p.ctx.AllocAwaitExpression(ast.AwaitExpressionPayload{Target: expr})
				continue
			}
			field, ferr := p.parseIdentifier()
			if ferr != nil {
				return ast.InvalidNodeId, ferr
			}
			switch p.ts.Peek(0).Kind {
			case token.LeftParen:
				args, aerr := p.parseArgList(token.RightParen)
				if aerr != nil {
					return ast.InvalidNodeId, aerr
				}
				expr = p.ctx.AllocCallExpression(ast.CallExpressionPayload{
					Kind: ast.CallMethod, Receiver: expr, Method: field, Args: args,
				})
			case token.Hash:
				p.ts.Next()
				args, aerr := p.parseArgList(token.RightParen)
				if aerr != nil {
					return ast.InvalidNodeId, aerr
				}
				expr = p.ctx.AllocCallExpression(ast.CallExpressionPayload{
					Kind: ast.CallMethodMacro, Receiver: expr, Method: field, Args: args,
				})
			default:
				expr = p.ctx.AllocFieldAccess(ast.FieldAccessExpressionPayload{Target: expr, Field: field})
			}

		case token.LeftBrace:
			if p.ctx.Node(expr).Kind != ast.KindPathExpression {
				return expr, nil
			}
			if !p.ts.Check(token.Identifier, 1) || !p.ts.Check(token.Colon, 2) {
				return expr, nil
			}
			pathPid := p.ctx.PathPayloadId(expr)
			fields, ferr := p.parseFieldInitList()
			if ferr != nil {
				return ast.InvalidNodeId, ferr
			}
			expr = p.ctx.AllocConstructExpression(ast.ConstructExpressionPayload{Path: pathPid, Fields: fields})

		default:
			return expr, nil
		}
	}
}

// extendPath appends ident to an already-built path expression,
// recopying its parts into a fresh contiguous run since an arena
// Slice's backing array may have grown since the original allocation.
func (p *Parser) extendPath(expr ast.NodeId, ident ast.IdentifierPayload) ast.NodeId {
	pathPid := p.ctx.PathPayloadId(expr)
	old := p.ctx.PathExpressions.Get(pathPid)
	oldParts := p.ctx.Identifiers.Slice(old.Parts)
	parts := make([]ast.IdentifierPayload, len(oldParts), len(oldParts)+1)
	copy(parts, oldParts)
	parts = append(parts, ident)
	return p.ctx.AllocPathExpression(ast.PathExpressionPayload{Parts: p.ctx.Identifiers.AllocContiguous(parts)})
}

// parseArgList parses `(expr, expr, ...)`, consuming the opening
// LeftParen itself; for a macro call the caller has already consumed
// the Hash that sits immediately before it.
func (p *Parser) parseArgList(close token.Kind) (ast.PayloadRange[ast.Node], *diagnostic.SourceError) {
	if _, err := p.expect(token.LeftParen); err != nil {
		return ast.PayloadRange[ast.Node]{}, err
	}
	var args []ast.NodeId
	for !p.ts.Check(close, 0) {
		arg, err := p.parseExpr(precLowest)
		if err != nil {
			return ast.PayloadRange[ast.Node]{}, err
		}
		args = append(args, arg)
		if !p.ts.Match(token.Comma) {
			break
		}
	}
	if _, err := p.expect(close); err != nil {
		return ast.PayloadRange[ast.Node]{}, err
	}
	return p.ctx.AllocNodeRange(args), nil
}

func (p *Parser) parseFieldInitList() (ast.PayloadRange[ast.FieldInitPayload], *diagnostic.SourceError) {
	if _, err := p.expect(token.LeftBrace); err != nil {
		return ast.PayloadRange[ast.FieldInitPayload]{}, err
	}
	var fields []ast.FieldInitPayload
	for !p.ts.Check(token.RightBrace, 0) {
		name, err := p.parseIdentifier()
		if err != nil {
			return ast.PayloadRange[ast.FieldInitPayload]{}, err
		}
		if _, err := p.expect(token.Colon); err != nil {
			return ast.PayloadRange[ast.FieldInitPayload]{}, err
		}
		value, err := p.parseExpr(precLowest)
		if err != nil {
			return ast.PayloadRange[ast.FieldInitPayload]{}, err
		}
		fields = append(fields, ast.FieldInitPayload{Name: name, Value: value})
		if !p.ts.Match(token.Comma) {
			break
		}
	}
	if _, err := p.expect(token.RightBrace); err != nil {
		return ast.PayloadRange[ast.FieldInitPayload]{}, err
	}
	return p.ctx.FieldInits.AllocContiguous(fields), nil
}

// parsePrimary implements:
//
//	primary := literal | path_or_call | grouped | array | tuple
//	         | block | if | match | loop | while | for
//	         | unsafe | fast | closure | return | break | continue
func (p *Parser) parsePrimary() (ast.NodeId, *diagnostic.SourceError) {
	tok := p.ts.Peek(0)
	switch tok.Kind {
	case token.Decimal, token.Binary, token.Octal, token.Hexadecimal, token.String, token.Character, token.True, token.False:
		return p.parseLiteral()
	case token.Identifier, token.This:
		return p.parsePathExpression()
	case token.LeftParen:
		return p.parseParenOrTuple()
	case token.LeftBracket:
		return p.parseArrayExpr()
	case token.LeftBrace:
		nodeId, _, err := p.parseBlock()
		return nodeId, err
	case token.If:
		return p.parseIfExpr()
	case token.Match:
		return p.parseMatchExpr()
	case token.Loop:
		return p.parseLoopExpr()
	case token.While:
		return p.parseWhileExpr()
	case token.For:
		return p.parseForExpr()
	case token.Unsafe:
		p.ts.Next()
		_, body, err := p.parseBlock()
		if err != nil {
			return ast.InvalidNodeId, err
		}
		return p.ctx.AllocUnsafeExpression(ast.UnsafeExpressionPayload{Body: body}), nil
	case token.Fast:
		p.ts.Next()
		_, body, err := p.parseBlock()
		if err != nil {
			return ast.InvalidNodeId, err
		}
		return p.ctx.AllocFastExpression(ast.FastExpressionPayload{Body: body}), nil
	case token.Return:
		p.ts.Next()
		value := ast.InvalidNodeId
		if !p.atStatementEnd() {
			v, err := p.parseExpr(precLowest)
			if err != nil {
				return ast.InvalidNodeId, err
			}
			value = v
		}
		return p.ctx.AllocReturnExpression(ast.ReturnExpressionPayload{Value: value}), nil
	case token.Break:
		p.ts.Next()
		value := ast.InvalidNodeId
		if !p.atStatementEnd() {
			v, err := p.parseExpr(precLowest)
			if err != nil {
				return ast.InvalidNodeId, err
			}
			value = v
		}
		return p.ctx.AllocBreakExpression(ast.BreakExpressionPayload{Value: value}), nil
	case token.Continue:
		p.ts.Next()
		return p.ctx.AllocContinueExpression(ast.ContinueExpressionPayload{}), nil
	case token.Pipe:
		return p.parseClosureExpr()
	default:
		p.ts.Next()
		err := p.errorAt(tok, diagnostic.ExpectedExpression, "expected_but_found", "expression", tok.Kind.String())
		return ast.InvalidNodeId, &err
	}
}

func (p *Parser) parseLiteral() (ast.NodeId, *diagnostic.SourceError) {
	tok := p.ts.Peek(0)
	p.ts.Next()
	var lk ast.LiteralKind
	switch tok.Kind {
	case token.Decimal:
		lk = ast.LiteralDecimal
	case token.Binary:
		lk = ast.LiteralBinary
	case token.Octal:
		lk = ast.LiteralOctal
	case token.Hexadecimal:
		lk = ast.LiteralHexadecimal
	case token.String:
		lk = ast.LiteralString
	case token.Character:
		lk = ast.LiteralCharacter
	case token.True, token.False:
		lk = ast.LiteralBool
	}
	return p.ctx.AllocLiteralExpression(ast.LiteralExpressionPayload{
		Kind: lk, Lexeme: token.NewRange(tok.Start, tok.Length),
	}), nil
}

// parseParenOrTuple parses `(expr)` as a GroupedExpression, or
// `(expr, expr, ...)` / `()` as a TupleExpression.
func (p *Parser) parseParenOrTuple() (ast.NodeId, *diagnostic.SourceError) {
	if _, err := p.expect(token.LeftParen); err != nil {
		return ast.InvalidNodeId, err
	}
	if p.ts.Check(token.RightParen, 0) {
		p.ts.Next()
		return p.ctx.AllocTupleExpression(ast.TupleExpressionPayload{}), nil
	}
	first, err := p.parseExpr(precLowest)
	if err != nil {
		return ast.InvalidNodeId, err
	}
	if !p.ts.Check(token.Comma, 0) {
		if _, err := p.expect(token.RightParen); err != nil {
			return ast.InvalidNodeId, err
		}
		return p.ctx.AllocGroupedExpression(ast.GroupedExpressionPayload{Inner: first}), nil
	}
	elems := []ast.NodeId{first}
	for p.ts.Match(token.Comma) {
		if p.ts.Check(token.RightParen, 0) {
			break
		}
		e, err := p.parseExpr(precLowest)
		if err != nil {
			return ast.InvalidNodeId, err
		}
		elems = append(elems, e)
	}
	if _, err := p.expect(token.RightParen); err != nil {
		return ast.InvalidNodeId, err
	}
	return p.ctx.AllocTupleExpression(ast.TupleExpressionPayload{Elements: p.ctx.AllocNodeRange(elems)}), nil
}

func (p *Parser) parseArrayExpr() (ast.NodeId, *diagnostic.SourceError) {
	if _, err := p.expect(token.LeftBracket); err != nil {
		return ast.InvalidNodeId, err
	}
	var elems []ast.NodeId
	for !p.ts.Check(token.RightBracket, 0) {
		e, err := p.parseExpr(precLowest)
		if err != nil {
			return ast.InvalidNodeId, err
		}
		elems = append(elems, e)
		if !p.ts.Match(token.Comma) {
			break
		}
	}
	if _, err := p.expect(token.RightBracket); err != nil {
		return ast.InvalidNodeId, err
	}
	return p.ctx.AllocArrayExpression(ast.ArrayExpressionPayload{Elements: p.ctx.AllocNodeRange(elems)}), nil
}

func (p *Parser) parseIfExpr() (ast.NodeId, *diagnostic.SourceError) {
	p.ts.Next() // 'if'
	cond, err := p.parseExpr(precLowest)
	if err != nil {
		return ast.InvalidNodeId, err
	}
	_, thenBlock, err := p.parseBlock()
	if err != nil {
		return ast.InvalidNodeId, err
	}
	elseExpr := ast.InvalidNodeId
	if p.ts.Match(token.Else) {
		if p.ts.Check(token.If, 0) {
			e, err := p.parseIfExpr()
			if err != nil {
				return ast.InvalidNodeId, err
			}
			elseExpr = e
		} else {
			e, _, err := p.parseBlock()
			if err != nil {
				return ast.InvalidNodeId, err
			}
			elseExpr = e
		}
	}
	return p.ctx.AllocIfExpression(ast.IfExpressionPayload{Condition: cond, ThenBlock: thenBlock, Else: elseExpr}), nil
}

func (p *Parser) parseLoopExpr() (ast.NodeId, *diagnostic.SourceError) {
	p.ts.Next() // 'loop'
	_, body, err := p.parseBlock()
	if err != nil {
		return ast.InvalidNodeId, err
	}
	return p.ctx.AllocLoopExpression(ast.LoopExpressionPayload{Body: body}), nil
}

func (p *Parser) parseWhileExpr() (ast.NodeId, *diagnostic.SourceError) {
	p.ts.Next() // 'while'
	cond, err := p.parseExpr(precLowest)
	if err != nil {
		return ast.InvalidNodeId, err
	}
	_, body, err := p.parseBlock()
	if err != nil {
		return ast.InvalidNodeId, err
	}
	return p.ctx.AllocWhileExpression(ast.WhileExpressionPayload{Condition: cond, Body: body}), nil
}

func (p *Parser) parseForExpr() (ast.NodeId, *diagnostic.SourceError) {
	p.ts.Next() // 'for'
	binding, err := p.parseIdentifier()
	if err != nil {
		return ast.InvalidNodeId, err
	}
	if _, err := p.expect(token.In); err != nil {
		return ast.InvalidNodeId, err
	}
	iterable, err := p.parseExpr(precLowest)
	if err != nil {
		return ast.InvalidNodeId, err
	}
	_, body, err := p.parseBlock()
	if err != nil {
		return ast.InvalidNodeId, err
	}
	return p.ctx.AllocForExpression(ast.ForExpressionPayload{Binding: binding, Iterable: iterable, Body: body}), nil
}

// parseMatchExpr parses `match subject { pattern => body, ... }`.
// Patterns are parsed as ordinary expressions; the resolver decides
// which shapes are valid patterns.
func (p *Parser) parseMatchExpr() (ast.NodeId, *diagnostic.SourceError) {
	p.ts.Next() // 'match'
	subject, err := p.parseExpr(precLowest)
	if err != nil {
		return ast.InvalidNodeId, err
	}
	if _, err := p.expect(token.LeftBrace); err != nil {
		return ast.InvalidNodeId, err
	}
	var arms []ast.MatchArmPayload
	for !p.ts.Check(token.RightBrace, 0) {
		p.skipNewlines()
		if p.ts.Check(token.RightBrace, 0) {
			break
		}
		pattern, perr := p.parseExpr(precLowest)
		if perr != nil {
			return ast.InvalidNodeId, perr
		}
		if _, perr := p.expect(token.FatArrow); perr != nil {
			return ast.InvalidNodeId, perr
		}
		body, berr := p.parseExpr(precLowest)
		if berr != nil {
			return ast.InvalidNodeId, berr
		}
		arms = append(arms, ast.MatchArmPayload{Pattern: pattern, Body: body})
		if !p.ts.Match(token.Comma) {
			p.skipNewlines()
		}
	}
	if _, err := p.expect(token.RightBrace); err != nil {
		return ast.InvalidNodeId, err
	}
	return p.ctx.AllocMatchExpression(ast.MatchExpressionPayload{
		Subject: subject, Arms: p.ctx.MatchArms.AllocContiguous(arms),
	}), nil
}

// parseClosureExpr parses `|name (':' type)?, ...| body`.
func (p *Parser) parseClosureExpr() (ast.NodeId, *diagnostic.SourceError) {
	if _, err := p.expect(token.Pipe); err != nil {
		return ast.InvalidNodeId, err
	}
	var params []ast.ParamPayload
	for !p.ts.Check(token.Pipe, 0) {
		name, err := p.parseIdentifier()
		if err != nil {
			return ast.InvalidNodeId, err
		}
		var typ ast.PayloadId[ast.TypeRefPayload]
		if p.ts.Match(token.Colon) {
			typ, err = p.parseTypeRef()
			if err != nil {
				return ast.InvalidNodeId, err
			}
		}
		params = append(params, ast.ParamPayload{Name: name, Type: typ})
		if !p.ts.Match(token.Comma) {
			break
		}
	}
	if _, err := p.expect(token.Pipe); err != nil {
		return ast.InvalidNodeId, err
	}
	body, err := p.parseExpr(precLowest)
	if err != nil {
		return ast.InvalidNodeId, err
	}
	return p.ctx.AllocClosureExpression(ast.ClosureExpressionPayload{
		Params: p.ctx.Params.AllocContiguous(params), Body: body,
	}), nil
}

package parser

import (
	"go.redy.dev/internal/ast"
	"go.redy.dev/internal/diagnostic"
	"go.redy.dev/internal/token"
)

// parseStatement parses one block-scoped statement. The grammar does
// not distinguish block statements from root items beyond scope, so
// this simply re-enters the root dispatch.
func (p *Parser) parseStatement() (ast.NodeId, *diagnostic.SourceError) {
	return p.parseRootItem()
}

func (p *Parser) identifierPathNode(ident ast.IdentifierPayload) ast.NodeId {
	return p.ctx.AllocPathExpression(ast.PathExpressionPayload{
		Parts: p.ctx.Identifiers.AllocContiguous([]ast.IdentifierPayload{ident}),
	})
}

// parseAssignOrExprStatement implements `assign_stmt := ident (':='
// expr | ':' type_ref ('=' expr)? | assign_op expr)`, falling back to
// a bare expression statement when the lookahead after an identifier
// doesn't match any assignment form.
func (p *Parser) parseAssignOrExprStatement(storage ast.StorageAttribute) (ast.NodeId, *diagnostic.SourceError) {
	if p.ts.Check(token.Identifier, 0) {
		switch p.ts.Peek(1).Kind {
		case token.ColonEqual:
			return p.parseAssignDeclaration(storage)
		case token.Colon:
			return p.parseTypedAssignDeclaration(storage)
		default:
			if token.IsAssignmentOperator(p.ts.Peek(1).Kind) {
				return p.parseReassignment()
			}
		}
	}
	expr, err := p.parseExpr(precLowest)
	if err != nil {
		return ast.InvalidNodeId, err
	}
	return p.ctx.AllocExpressionStatement(ast.ExpressionStatementPayload{Expr: expr}), nil
}

func (p *Parser) parseAssignDeclaration(storage ast.StorageAttribute) (ast.NodeId, *diagnostic.SourceError) {
	ident, err := p.parseIdentifier()
	if err != nil {
		return ast.InvalidNodeId, err
	}
	target := p.identifierPathNode(ident)
	if _, err := p.expect(token.ColonEqual); err != nil {
		return ast.InvalidNodeId, err
	}
	value, err := p.parseExpr(precLowest)
	if err != nil {
		return ast.InvalidNodeId, err
	}
	p.ts.Match(token.Semicolon)
	return p.ctx.AllocAssignStatement(ast.AssignStatementPayload{
		Target: target, Value: value, Kind: ast.AssignDeclaration, Op: token.ColonEqual, Storage: storage,
	}), nil
}

func (p *Parser) parseTypedAssignDeclaration(storage ast.StorageAttribute) (ast.NodeId, *diagnostic.SourceError) {
	ident, err := p.parseIdentifier()
	if err != nil {
		return ast.InvalidNodeId, err
	}
	target := p.identifierPathNode(ident)
	if _, err := p.expect(token.Colon); err != nil {
		return ast.InvalidNodeId, err
	}
	typeRef, err := p.parseTypeRef()
	if err != nil {
		return ast.InvalidNodeId, err
	}
	value := ast.InvalidNodeId
	if p.ts.Match(token.Equal) {
		value, err = p.parseExpr(precLowest)
		if err != nil {
			return ast.InvalidNodeId, err
		}
	}
	p.ts.Match(token.Semicolon)
	return p.ctx.AllocAssignStatement(ast.AssignStatementPayload{
		Target: target, Type: typeRef, Value: value, Kind: ast.AssignDeclaration, Op: token.Colon, Storage: storage,
	}), nil
}

func (p *Parser) parseReassignment() (ast.NodeId, *diagnostic.SourceError) {
	ident, err := p.parseIdentifier()
	if err != nil {
		return ast.InvalidNodeId, err
	}
	target := p.identifierPathNode(ident)
	opTok := p.ts.Peek(0)
	p.ts.Next()
	value, err := p.parseExpr(precLowest)
	if err != nil {
		return ast.InvalidNodeId, err
	}
	p.ts.Match(token.Semicolon)
	return p.ctx.AllocAssignStatement(ast.AssignStatementPayload{
		Target: target, Value: value, Kind: ast.AssignReassignWithOp, Op: opTok.Kind,
	}), nil
}

// parseBlock parses `{ stmt; stmt; trailing? }`. A final statement
// directly before the closing brace becomes the block's trailing node;
// a bare expression statement is unwrapped to its expression.
func (p *Parser) parseBlock() (ast.NodeId, ast.PayloadId[ast.BlockExpressionPayload], *diagnostic.SourceError) {
	if _, err := p.expect(token.LeftBrace); err != nil {
		return ast.InvalidNodeId, ast.PayloadId[ast.BlockExpressionPayload]{}, err
	}
	var stmts []ast.NodeId
	trailing := ast.InvalidNodeId
	for !p.ts.Check(token.RightBrace, 0) && !p.ts.Eof() {
		p.skipNewlines()
		if p.ts.Check(token.RightBrace, 0) {
			break
		}
		stmtId, err := p.parseStatement()
		if err != nil {
			p.errors = append(p.errors, *err)
			p.synchronize()
			continue
		}
		if p.ts.Check(token.RightBrace, 0) {
			if n := p.ctx.Node(stmtId); n.Kind == ast.KindExpressionStatement {
				stmtId = p.ctx.ExpressionStatements.Get(ast.NewPayloadId[ast.ExpressionStatementPayload](n.PayloadIdx)).Expr
			}
			trailing = stmtId
			break
		}
		stmts = append(stmts, stmtId)
		p.skipNewlines()
	}
	if _, err := p.expect(token.RightBrace); err != nil {
		return ast.InvalidNodeId, ast.PayloadId[ast.BlockExpressionPayload]{}, err
	}
	nodeId, bodyId := p.ctx.AllocBlockExpression(ast.BlockExpressionPayload{
		Stmts: p.ctx.AllocNodeRange(stmts), Trailing: trailing,
	})
	return nodeId, bodyId, nil
}

package resolver

import (
	"github.com/hbollon/go-edlib"

	"go.redy.dev/internal/ast"
	"go.redy.dev/internal/diagnostic"
	"go.redy.dev/internal/hir"
	"go.redy.dev/internal/intern"
	"go.redy.dev/internal/token"
)

// suggestionSimilarityFloor is the minimum Levenshtein similarity (in
// [0,1], 1 meaning identical) a currently-visible name must reach
// before an UndefinedSymbol diagnostic attaches it as a "did you mean"
// suggestion.
const suggestionSimilarityFloor = 0.6

// Resolver lowers one ast.Context into one hir.Context, resolving
// every path expression's leading identifier against a SymbolTable
// that tracks lexical shadowing. Grounded on
// original_source/src/frontend/processor/resolver/resolver.cc.
type Resolver struct {
	astCtx    *ast.Context
	hirCtx    *hir.Context
	symbols   *SymbolTable
	interner  *intern.Interner
	fileID    diagnostic.FileID
	errors    []diagnostic.SourceError
	nextLocal uint32
}

// New returns a Resolver lowering astCtx into a fresh hir.Context,
// resolving names through interner.
func New(astCtx *ast.Context, interner *intern.Interner, fileID diagnostic.FileID) *Resolver {
	return &Resolver{
		astCtx:   astCtx,
		hirCtx:   hir.NewContext(),
		symbols:  NewSymbolTable(),
		interner: interner,
		fileID:   fileID,
	}
}

// Errors returns every diagnostic collected during Analyze.
func (r *Resolver) Errors() []diagnostic.SourceError { return r.errors }

// Analyze lowers items (the root-scope declarations returned by
// parser.ParseAll) into HIR. A resolver error never halts lowering:
// unresolved names produce a diagnostic and an InvalidHirId-carrying
// node, per spec.md §4.6's failure semantics.
func (r *Resolver) Analyze(items []ast.NodeId) *hir.Context {
	nodes := make([]ast.Node, len(items))
	for i, id := range items {
		nodes[i] = r.astCtx.Node(id)
	}
	r.lowerScope(nodes)
	return r.hirCtx
}

func payloadOf[T any](ctx *ast.Arena[T], n ast.Node) T {
	return *ctx.Get(ast.NewPayloadId[T](n.PayloadIdx))
}

func (r *Resolver) errorAt(rng token.Range, id diagnostic.ID, key string, args ...string) diagnostic.SourceError {
	return diagnostic.SourceError{
		ID: id, Severity: diagnostic.SeverityError, FileID: r.fileID,
		Range: rng, MarkerType: diagnostic.MarkerLine,
		MessageKey: key, Args: diagnostic.NewFormatArgs(args...),
	}
}

// declarationName extracts the name of any node kind lowerScope's
// first pass forward-declares.
func (r *Resolver) declarationName(n ast.Node) ast.IdentifierPayload {
	switch n.Kind {
	case ast.KindFunctionDeclaration:
		return payloadOf(&r.astCtx.FunctionDeclarations, n).Name
	case ast.KindStructDeclaration:
		return payloadOf(&r.astCtx.StructDeclarations, n).Name
	case ast.KindEnumDeclaration:
		return payloadOf(&r.astCtx.EnumDeclarations, n).Name
	case ast.KindTraitDeclaration:
		return payloadOf(&r.astCtx.TraitDeclarations, n).Name
	case ast.KindUnionDeclaration:
		return payloadOf(&r.astCtx.UnionDeclarations, n).Name
	case ast.KindModuleDeclaration:
		return payloadOf(&r.astCtx.ModuleDeclarations, n).Name
	default:
		return ast.IdentifierPayload{}
	}
}

// lowerScope implements the two-pass-per-scope rule: forward-
// referenceable declarations (functions, structs, unions, enums,
// traits, modules) are all bound to the symbol table before any body
// in the scope is lowered, so mutually recursive siblings resolve.
// Everything else (assignments, impls, redirects, expression
// statements) lowers sequentially in the second pass, in source order.
func (r *Resolver) lowerScope(nodes []ast.Node) []hir.NodeId {
	r.symbols.PushScope()
	defer r.symbols.PopScope()

	defs := make([]hir.DefId, len(nodes))
	for i, n := range nodes {
		switch n.Kind {
		case ast.KindFunctionDeclaration, ast.KindStructDeclaration, ast.KindEnumDeclaration,
			ast.KindTraitDeclaration, ast.KindUnionDeclaration, ast.KindModuleDeclaration:
			name := r.declarationName(n)
			if r.symbols.DeclaredInCurrentScope(name.Name) {
				r.errors = append(r.errors, r.errorAt(name.Span, diagnostic.Redeclaration, "redeclaration"))
			}
			def := r.hirCtx.NewDef(hir.InvalidNodeId)
			r.symbols.Declare(name.Name, hir.HirIdFromDef(def))
			defs[i] = def
		}
	}

	out := make([]hir.NodeId, 0, len(nodes))
	for i, n := range nodes {
		id := r.lowerDeclaredNode(n, defs[i])
		if id.Valid() {
			out = append(out, id)
		}
	}
	return out
}

// lowerDeclaredNode lowers one scope member. def is the DefId reserved
// by lowerScope's first pass for forward-referenceable kinds, and is
// invalid otherwise.
func (r *Resolver) lowerDeclaredNode(n ast.Node, def hir.DefId) hir.NodeId {
	switch n.Kind {
	case ast.KindFunctionDeclaration:
		return r.lowerFunctionDeclaration(payloadOf(&r.astCtx.FunctionDeclarations, n), def)
	case ast.KindStructDeclaration:
		p := payloadOf(&r.astCtx.StructDeclarations, n)
		id := r.hirCtx.AllocStructDeclaration(hir.StructDeclarationPayload{Def: def, Fields: r.lowerFields(p.Fields)})
		r.hirCtx.SetDefTarget(def, id)
		return id
	case ast.KindUnionDeclaration:
		p := payloadOf(&r.astCtx.UnionDeclarations, n)
		id := r.hirCtx.AllocUnionDeclaration(hir.UnionDeclarationPayload{Def: def, Fields: r.lowerFields(p.Fields)})
		r.hirCtx.SetDefTarget(def, id)
		return id
	case ast.KindEnumDeclaration:
		p := payloadOf(&r.astCtx.EnumDeclarations, n)
		id := r.hirCtx.AllocEnumDeclaration(hir.EnumDeclarationPayload{Def: def, Variants: r.lowerEnumVariants(p.Variants)})
		r.hirCtx.SetDefTarget(def, id)
		return id
	case ast.KindTraitDeclaration:
		p := payloadOf(&r.astCtx.TraitDeclarations, n)
		id := r.hirCtx.AllocTraitDeclaration(hir.TraitDeclarationPayload{Def: def, Methods: r.lowerMethodSigs(p.Methods)})
		r.hirCtx.SetDefTarget(def, id)
		return id
	case ast.KindModuleDeclaration:
		p := payloadOf(&r.astCtx.ModuleDeclarations, n)
		items := r.astCtx.Nodes.Slice(p.Items)
		lowered := r.lowerScope(items)
		id := r.hirCtx.AllocModuleDeclaration(hir.ModuleDeclarationPayload{Def: def, Items: r.hirCtx.AllocNodeRange(lowered)})
		r.hirCtx.SetDefTarget(def, id)
		return id
	case ast.KindImplDeclaration:
		p := payloadOf(&r.astCtx.ImplDeclarations, n)
		target := r.lowerTypeRefName(p.Target)
		trait := hir.InvalidHirId
		if p.Trait.Valid() {
			trait = r.lowerTypeRefName(p.Trait)
		}
		return r.hirCtx.AllocImplDeclaration(hir.ImplDeclarationPayload{
			Target: target, Trait: trait, Methods: r.lowerMethodSigs(p.Methods),
		})
	case ast.KindRedirectDeclaration:
		p := payloadOf(&r.astCtx.RedirectDeclarations, n)
		target := r.symbols.Resolve(p.Target.Name)
		r.symbols.Declare(p.Name.Name, target)
		return hir.InvalidNodeId
	case ast.KindAssignStatement:
		return r.lowerAssignStatement(payloadOf(&r.astCtx.AssignStatements, n))
	default:
		return r.lowerExprOrStmtNode(n)
	}
}

func (r *Resolver) lowerFunctionDeclaration(p ast.FunctionDeclarationPayload, def hir.DefId) hir.NodeId {
	r.symbols.PushScope()
	params := r.lowerParamsAsLocals(p.Parameters)
	var body hir.PayloadId[hir.BlockExpressionPayload]
	if p.Body.Valid() {
		_, body = r.lowerBlock(p.Body)
	}
	r.symbols.PopScope()
	id := r.hirCtx.AllocFunctionDeclaration(hir.FunctionDeclarationPayload{Def: def, Parameters: params, Body: body})
	r.hirCtx.SetDefTarget(def, id)
	return id
}

// lowerParamsAsLocals declares each parameter as a fresh local binding
// visible for the remainder of the current scope (the body, already
// pushed by the caller).
func (r *Resolver) lowerParamsAsLocals(params ast.PayloadRange[ast.ParamPayload]) hir.PayloadRange[hir.LocalId] {
	asts := r.astCtx.Params.Slice(params)
	locals := make([]hir.LocalId, len(asts))
	for i, p := range asts {
		local := r.newLocal()
		r.symbols.Declare(p.Name.Name, hir.HirIdFromLocal(local))
		locals[i] = local
	}
	return r.hirCtx.Locals.AllocContiguous(locals)
}

func (r *Resolver) newLocal() hir.LocalId {
	id := hir.NewLocalId(r.nextLocal)
	r.nextLocal++
	return id
}

func (r *Resolver) lowerFields(fields ast.PayloadRange[ast.FieldPayload]) hir.PayloadRange[hir.FieldPayload] {
	asts := r.astCtx.Fields.Slice(fields)
	out := make([]hir.FieldPayload, len(asts))
	for i, f := range asts {
		out[i] = hir.FieldPayload{Name: f.Name.Name}
	}
	return r.hirCtx.Fields.AllocContiguous(out)
}

func (r *Resolver) lowerEnumVariants(variants ast.PayloadRange[ast.EnumVariantPayload]) hir.PayloadRange[hir.EnumVariantPayload] {
	asts := r.astCtx.EnumVariants.Slice(variants)
	out := make([]hir.EnumVariantPayload, len(asts))
	for i, v := range asts {
		out[i] = hir.EnumVariantPayload{
			Name: v.Name.Name, ShapeKind: v.ShapeKind,
			IntegerNode: r.lowerExprIfValid(v.IntegerNode), Fields: r.lowerFields(v.Fields),
		}
	}
	return r.hirCtx.EnumVariants.AllocContiguous(out)
}

// lowerMethodSigs lowers trait/impl method lists. Each method gets its
// own scope for parameters but, unlike a free function, is not itself
// entered into the enclosing SymbolTable: member lookup is a
// type-directed concern this resolver defers.
func (r *Resolver) lowerMethodSigs(methods ast.PayloadRange[ast.FunctionDeclarationPayload]) hir.PayloadRange[hir.FunctionDeclarationPayload] {
	asts := r.astCtx.FunctionDeclarations.Slice(methods)
	out := make([]hir.FunctionDeclarationPayload, len(asts))
	for i, m := range asts {
		r.symbols.PushScope()
		params := r.lowerParamsAsLocals(m.Parameters)
		var body hir.PayloadId[hir.BlockExpressionPayload]
		if m.Body.Valid() {
			_, body = r.lowerBlock(m.Body)
		}
		r.symbols.PopScope()
		out[i] = hir.FunctionDeclarationPayload{Def: hir.InvalidDefId, Parameters: params, Body: body}
	}
	return r.hirCtx.FunctionDeclarations.AllocContiguous(out)
}

// lowerTypeRefName resolves a TypeRef's path head the same way an
// expression path resolves, without producing a diagnostic: type names
// are validated by a later type-checking pass this core does not
// implement, so an unresolved type ref here just carries InvalidHirId.
func (r *Resolver) lowerTypeRefName(id ast.PayloadId[ast.TypeRefPayload]) hir.HirId {
	t := r.astCtx.TypeRefs.Get(id)
	path := r.astCtx.PathExpressions.Get(t.Path)
	parts := r.astCtx.Identifiers.Slice(path.Parts)
	if len(parts) == 0 {
		return hir.InvalidHirId
	}
	return r.symbols.Resolve(parts[0].Name)
}

func (r *Resolver) lowerAssignStatement(p ast.AssignStatementPayload) hir.NodeId {
	switch p.Kind {
	case ast.AssignDeclaration:
		local := r.newLocal()
		name := r.targetName(p.Target)
		if r.symbols.DeclaredInCurrentScope(name.Name) {
			r.errors = append(r.errors, r.errorAt(name.Span, diagnostic.Redeclaration, "redeclaration"))
		}
		value := r.lowerExprIfValid(p.Value)
		r.symbols.Declare(name.Name, hir.HirIdFromLocal(local))
		return r.hirCtx.AllocAssignStatement(hir.AssignStatementPayload{
			Local: local, Target: hir.InvalidHirId, Value: value, Kind: hir.AssignDeclaration, Op: p.Op,
		})
	default:
		name := r.targetName(p.Target)
		target := r.resolveName(name)
		value := r.lowerExprIfValid(p.Value)
		return r.hirCtx.AllocAssignStatement(hir.AssignStatementPayload{
			Target: target, Value: value, Kind: hir.AssignReassignWithOp, Op: p.Op,
		})
	}
}

func (r *Resolver) targetName(target ast.NodeId) ast.IdentifierPayload {
	n := r.astCtx.Node(target)
	path := payloadOf(&r.astCtx.PathExpressions, n)
	parts := r.astCtx.Identifiers.Slice(path.Parts)
	if len(parts) == 0 {
		return ast.IdentifierPayload{}
	}
	return parts[0]
}

// resolveName resolves a single identifier against the symbol table,
// appending an UndefinedSymbol diagnostic (with a "did you mean"
// suggestion when a close candidate is visible) on failure.
func (r *Resolver) resolveName(ident ast.IdentifierPayload) hir.HirId {
	target := r.symbols.Resolve(ident.Name)
	if target.Valid() {
		return target
	}
	err := r.errorAt(ident.Span, diagnostic.UndefinedSymbol, "undefined_symbol")
	if suggestion, ok := r.suggest(ident.Name); ok {
		err.Annotations = append(err.Annotations, diagnostic.Annotation{
			Severity: diagnostic.AnnotationHelp, MessageTrKey: "did_you_mean",
			Args: diagnostic.NewFormatArgs(suggestion),
		})
	}
	r.errors = append(r.errors, err)
	return hir.InvalidHirId
}

func (r *Resolver) suggest(name intern.ID) (string, bool) {
	text, ok := r.interner.Lookup(name)
	if !ok {
		return "", false
	}
	best, bestScore := "", float32(0)
	for _, candidate := range r.symbols.VisibleNames() {
		candidateText, ok := r.interner.Lookup(candidate)
		if !ok || candidateText == text {
			continue
		}
		score, err := edlib.StringsSimilarity(text, candidateText, edlib.Levenshtein)
		if err != nil {
			continue
		}
		if score > bestScore {
			best, bestScore = candidateText, score
		}
	}
	if bestScore >= suggestionSimilarityFloor {
		return best, true
	}
	return "", false
}

func (r *Resolver) lowerExprIfValid(id ast.NodeId) hir.NodeId {
	if !id.Valid() {
		return hir.InvalidNodeId
	}
	return r.lowerExprOrStmtNode(r.astCtx.Node(id))
}

// lowerBlock pushes a fresh scope, two-pass-lowers its statement list,
// and lowers the trailing expression (if any) within that same scope.
func (r *Resolver) lowerBlock(astPid ast.PayloadId[ast.BlockExpressionPayload]) (hir.NodeId, hir.PayloadId[hir.BlockExpressionPayload]) {
	p := r.astCtx.BlockExpressions.Get(astPid)
	stmtNodes := r.astCtx.Nodes.Slice(p.Stmts)

	r.symbols.PushScope()
	lowered := r.lowerScopeBody(stmtNodes)
	trailing := r.lowerExprIfValid(p.Trailing)
	r.symbols.PopScope()

	return r.hirCtx.AllocBlockExpression(hir.BlockExpressionPayload{
		Stmts: r.hirCtx.AllocNodeRange(lowered), Trailing: trailing,
	})
}

// lowerScopeBody is lowerScope's two-pass body, factored out so
// lowerBlock can reuse it without pushing a second, redundant scope
// (the caller already pushed one to cover the trailing expression too).
func (r *Resolver) lowerScopeBody(nodes []ast.Node) []hir.NodeId {
	defs := make([]hir.DefId, len(nodes))
	for i, n := range nodes {
		switch n.Kind {
		case ast.KindFunctionDeclaration, ast.KindStructDeclaration, ast.KindEnumDeclaration,
			ast.KindTraitDeclaration, ast.KindUnionDeclaration, ast.KindModuleDeclaration:
			name := r.declarationName(n)
			if r.symbols.DeclaredInCurrentScope(name.Name) {
				r.errors = append(r.errors, r.errorAt(name.Span, diagnostic.Redeclaration, "redeclaration"))
			}
			def := r.hirCtx.NewDef(hir.InvalidNodeId)
			r.symbols.Declare(name.Name, hir.HirIdFromDef(def))
			defs[i] = def
		}
	}
	out := make([]hir.NodeId, 0, len(nodes))
	for i, n := range nodes {
		id := r.lowerDeclaredNode(n, defs[i])
		if id.Valid() {
			out = append(out, id)
		}
	}
	return out
}

// lowerExprOrStmtNode dispatches every expression/statement node kind
// that is not handled by lowerDeclaredNode's declaration cases.
func (r *Resolver) lowerExprOrStmtNode(n ast.Node) hir.NodeId {
	switch n.Kind {
	case ast.KindExpressionStatement:
		p := payloadOf(&r.astCtx.ExpressionStatements, n)
		return r.hirCtx.AllocExpressionStatement(hir.ExpressionStatementPayload{Expr: r.lowerExprIfValid(p.Expr)})

	case ast.KindLiteralExpression:
		p := payloadOf(&r.astCtx.LiteralExpressions, n)
		return r.hirCtx.AllocLiteralExpression(hir.LiteralExpressionPayload{Kind: p.Kind, Lexeme: p.Lexeme})

	case ast.KindPathExpression:
		p := payloadOf(&r.astCtx.PathExpressions, n)
		parts := r.astCtx.Identifiers.Slice(p.Parts)
		if len(parts) == 0 {
			return r.hirCtx.AllocResolvedPathExpression(hir.ResolvedPathExpressionPayload{Target: hir.InvalidHirId})
		}
		// Only the leading segment is name-resolved; trailing `::`
		// segments name a member of whatever the head resolves to,
		// which requires type information this resolver does not have.
		return r.hirCtx.AllocResolvedPathExpression(hir.ResolvedPathExpressionPayload{Target: r.resolveName(parts[0])})

	case ast.KindUnaryExpression:
		p := payloadOf(&r.astCtx.UnaryExpressions, n)
		return r.hirCtx.AllocUnaryExpression(hir.UnaryExpressionPayload{
			Op: p.Op, Operand: r.lowerExprIfValid(p.Operand), IsPostfix: p.IsPostfix,
		})

	case ast.KindBinaryExpression:
		p := payloadOf(&r.astCtx.BinaryExpressions, n)
		return r.hirCtx.AllocBinaryExpression(hir.BinaryExpressionPayload{
			Op: p.Op, Lhs: r.lowerExprIfValid(p.Lhs), Rhs: r.lowerExprIfValid(p.Rhs),
		})

	case ast.KindGroupedExpression:
		p := payloadOf(&r.astCtx.GroupedExpressions, n)
		return r.hirCtx.AllocGroupedExpression(hir.GroupedExpressionPayload{Inner: r.lowerExprIfValid(p.Inner)})

	case ast.KindArrayExpression:
		p := payloadOf(&r.astCtx.ArrayExpressions, n)
		return r.hirCtx.AllocArrayExpression(hir.ArrayExpressionPayload{Elements: r.lowerNodeRange(p.Elements)})

	case ast.KindTupleExpression:
		p := payloadOf(&r.astCtx.TupleExpressions, n)
		return r.hirCtx.AllocTupleExpression(hir.TupleExpressionPayload{Elements: r.lowerNodeRange(p.Elements)})

	case ast.KindIndexExpression:
		p := payloadOf(&r.astCtx.IndexExpressions, n)
		return r.hirCtx.AllocIndexExpression(hir.IndexExpressionPayload{
			Target: r.lowerExprIfValid(p.Target), Index: r.lowerExprIfValid(p.Index),
		})

	case ast.KindConstructExpression:
		p := payloadOf(&r.astCtx.ConstructExpressions, n)
		astFields := r.astCtx.FieldInits.Slice(p.Fields)
		fields := make([]hir.FieldInitPayload, len(astFields))
		for i, f := range astFields {
			fields[i] = hir.FieldInitPayload{Name: f.Name.Name, Value: r.lowerExprIfValid(f.Value)}
		}
		pathPayload := r.astCtx.PathExpressions.Get(p.Path)
		pathParts := r.astCtx.Identifiers.Slice(pathPayload.Parts)
		typeTarget := hir.InvalidHirId
		if len(pathParts) > 0 {
			typeTarget = r.resolveName(pathParts[0])
		}
		return r.hirCtx.AllocConstructExpression(hir.ConstructExpressionPayload{
			Type: typeTarget, Fields: r.hirCtx.FieldInits.AllocContiguous(fields),
		})

	case ast.KindFunctionCallExpression, ast.KindMethodCallExpression,
		ast.KindFunctionMacroCallExpression, ast.KindMethodMacroCallExpression:
		p := payloadOf(&r.astCtx.CallExpressions, n)
		kind := hir.CallKind(p.Kind)
		callee := hir.InvalidNodeId
		receiver := hir.InvalidNodeId
		if p.Callee.Valid() {
			callee = r.lowerExprIfValid(p.Callee)
		}
		if p.Receiver.Valid() {
			receiver = r.lowerExprIfValid(p.Receiver)
		}
		return r.hirCtx.AllocCallExpression(hir.CallExpressionPayload{
			Kind: kind, Callee: callee, Receiver: receiver, Method: p.Method.Name, Args: r.lowerNodeRange(p.Args),
		})

	case ast.KindFieldAccessExpression:
		p := payloadOf(&r.astCtx.FieldAccesses, n)
		return r.hirCtx.AllocFieldAccess(hir.FieldAccessExpressionPayload{
			Target: r.lowerExprIfValid(p.Target), Field: p.Field.Name,
		})

	case ast.KindAwaitExpression:
		p := payloadOf(&r.astCtx.AwaitExpressions, n)
		return r.hirCtx.AllocAwaitExpression(hir.AwaitExpressionPayload{Target: r.lowerExprIfValid(p.Target)})

	case ast.KindContinueExpression:
		return r.hirCtx.AllocContinueExpression(hir.ContinueExpressionPayload{})

	case ast.KindBreakExpression:
		p := payloadOf(&r.astCtx.BreakExpressions, n)
		return r.hirCtx.AllocBreakExpression(hir.BreakExpressionPayload{Value: r.lowerExprIfValid(p.Value)})

	case ast.KindReturnExpression:
		p := payloadOf(&r.astCtx.ReturnExpressions, n)
		return r.hirCtx.AllocReturnExpression(hir.ReturnExpressionPayload{Value: r.lowerExprIfValid(p.Value)})

	case ast.KindBlockExpression:
		astPid := ast.NewPayloadId[ast.BlockExpressionPayload](n.PayloadIdx)
		id, _ := r.lowerBlock(astPid)
		return id

	case ast.KindUnsafeExpression:
		p := payloadOf(&r.astCtx.UnsafeExpressions, n)
		_, body := r.lowerBlock(p.Body)
		return r.hirCtx.AllocUnsafeExpression(hir.UnsafeExpressionPayload{Body: body})

	case ast.KindFastExpression:
		p := payloadOf(&r.astCtx.FastExpressions, n)
		_, body := r.lowerBlock(p.Body)
		return r.hirCtx.AllocFastExpression(hir.FastExpressionPayload{Body: body})

	case ast.KindIfExpression:
		p := payloadOf(&r.astCtx.IfExpressions, n)
		cond := r.lowerExprIfValid(p.Condition)
		_, thenBlock := r.lowerBlock(p.ThenBlock)
		elseExpr := r.lowerExprIfValid(p.Else)
		return r.hirCtx.AllocIfExpression(hir.IfExpressionPayload{Condition: cond, ThenBlock: thenBlock, Else: elseExpr})

	case ast.KindLoopExpression:
		p := payloadOf(&r.astCtx.LoopExpressions, n)
		_, body := r.lowerBlock(p.Body)
		return r.hirCtx.AllocLoopExpression(hir.LoopExpressionPayload{Body: body})

	case ast.KindWhileExpression:
		p := payloadOf(&r.astCtx.WhileExpressions, n)
		cond := r.lowerExprIfValid(p.Condition)
		_, body := r.lowerBlock(p.Body)
		return r.hirCtx.AllocWhileExpression(hir.WhileExpressionPayload{Condition: cond, Body: body})

	case ast.KindForExpression:
		p := payloadOf(&r.astCtx.ForExpressions, n)
		iterable := r.lowerExprIfValid(p.Iterable)
		r.symbols.PushScope()
		binding := r.newLocal()
		r.symbols.Declare(p.Binding.Name, hir.HirIdFromLocal(binding))
		stmtNodes := r.astCtx.Nodes.Slice(r.astCtx.BlockExpressions.Get(p.Body).Stmts)
		lowered := r.lowerScopeBody(stmtNodes)
		trailing := r.lowerExprIfValid(r.astCtx.BlockExpressions.Get(p.Body).Trailing)
		_, body := r.hirCtx.AllocBlockExpression(hir.BlockExpressionPayload{
			Stmts: r.hirCtx.AllocNodeRange(lowered), Trailing: trailing,
		})
		r.symbols.PopScope()
		return r.hirCtx.AllocForExpression(hir.ForExpressionPayload{Binding: binding, Iterable: iterable, Body: body})

	case ast.KindMatchExpression:
		p := payloadOf(&r.astCtx.MatchExpressions, n)
		subject := r.lowerExprIfValid(p.Subject)
		astArms := r.astCtx.MatchArms.Slice(p.Arms)
		arms := make([]hir.MatchArmPayload, len(astArms))
		for i, a := range astArms {
			r.symbols.PushScope()
			pattern := r.lowerExprIfValid(a.Pattern)
			body := r.lowerExprIfValid(a.Body)
			r.symbols.PopScope()
			arms[i] = hir.MatchArmPayload{Pattern: pattern, Body: body}
		}
		return r.hirCtx.AllocMatchExpression(hir.MatchExpressionPayload{
			Subject: subject, Arms: r.hirCtx.MatchArms.AllocContiguous(arms),
		})

	case ast.KindClosureExpression:
		p := payloadOf(&r.astCtx.ClosureExpressions, n)
		r.symbols.PushScope()
		params := r.lowerParamsAsLocals(p.Params)
		body := r.lowerExprIfValid(p.Body)
		r.symbols.PopScope()
		return r.hirCtx.AllocClosureExpression(hir.ClosureExpressionPayload{Params: params, Body: body})

	default:
		return hir.InvalidNodeId
	}
}

func (r *Resolver) lowerNodeRange(nodes ast.PayloadRange[ast.Node]) hir.PayloadRange[hir.Node] {
	asts := r.astCtx.Nodes.Slice(nodes)
	out := make([]hir.NodeId, len(asts))
	for i, n := range asts {
		out[i] = r.lowerExprOrStmtNode(n)
	}
	return r.hirCtx.AllocNodeRange(out)
}

package hir

// Context is a bag of typed arenas mirroring ast.Context's shape,
// specialized over HIR payloads. Grounded on
// original_source/src/frontend/data/hir/context.h's per-kind arena
// partition.
type Context struct {
	Nodes Arena[Node]

	ResolvedPathExpressions Arena[ResolvedPathExpressionPayload]
	LiteralExpressions      Arena[LiteralExpressionPayload]
	UnaryExpressions        Arena[UnaryExpressionPayload]
	BinaryExpressions       Arena[BinaryExpressionPayload]
	GroupedExpressions      Arena[GroupedExpressionPayload]
	ArrayExpressions        Arena[ArrayExpressionPayload]
	TupleExpressions        Arena[TupleExpressionPayload]
	IndexExpressions        Arena[IndexExpressionPayload]
	FieldInits              Arena[FieldInitPayload]
	ConstructExpressions    Arena[ConstructExpressionPayload]
	CallExpressions         Arena[CallExpressionPayload]
	FieldAccesses           Arena[FieldAccessExpressionPayload]
	AwaitExpressions        Arena[AwaitExpressionPayload]
	ContinueExpressions     Arena[ContinueExpressionPayload]
	BreakExpressions        Arena[BreakExpressionPayload]
	ReturnExpressions       Arena[ReturnExpressionPayload]
	BlockExpressions        Arena[BlockExpressionPayload]
	UnsafeExpressions       Arena[UnsafeExpressionPayload]
	FastExpressions         Arena[FastExpressionPayload]
	IfExpressions           Arena[IfExpressionPayload]
	LoopExpressions         Arena[LoopExpressionPayload]
	WhileExpressions        Arena[WhileExpressionPayload]
	ForExpressions          Arena[ForExpressionPayload]
	MatchArms               Arena[MatchArmPayload]
	MatchExpressions        Arena[MatchExpressionPayload]
	ClosureExpressions      Arena[ClosureExpressionPayload]

	Locals Arena[LocalId]
	Fields Arena[FieldPayload]

	FunctionDeclarations Arena[FunctionDeclarationPayload]
	StructDeclarations   Arena[StructDeclarationPayload]
	UnionDeclarations    Arena[UnionDeclarationPayload]
	EnumVariants         Arena[EnumVariantPayload]
	EnumDeclarations     Arena[EnumDeclarationPayload]
	TraitDeclarations    Arena[TraitDeclarationPayload]
	ImplDeclarations     Arena[ImplDeclarationPayload]
	ModuleDeclarations   Arena[ModuleDeclarationPayload]

	AssignStatements     Arena[AssignStatementPayload]
	ExpressionStatements Arena[ExpressionStatementPayload]

	// Defs holds one entry per DefId, recording which Node that
	// declaration lowered to (so a later pass can look a definition's
	// body back up from a resolved use site).
	Defs []NodeId
}

// NewContext returns an empty Context.
func NewContext() *Context {
	return &Context{}
}

func (c *Context) allocNode(kind NodeKind, payloadIdx uint32) NodeId {
	id := c.Nodes.Alloc(Node{PayloadIdx: payloadIdx, Kind: kind})
	return NodeId{idx: id.idx, valid: true}
}

func (c *Context) Node(id NodeId) Node {
	return *c.Nodes.Get(PayloadId[Node]{idx: id.idx, valid: id.valid})
}

// AllocNodeRange copies each id's current Node value into a fresh
// contiguous run, matching ast.Context.AllocNodeRange's rationale:
// sibling root NodeIds are never naturally contiguous once their own
// sub-expressions have been interleaved into the shared Nodes arena.
func (c *Context) AllocNodeRange(ids []NodeId) PayloadRange[Node] {
	nodes := make([]Node, len(ids))
	for i, id := range ids {
		nodes[i] = c.Node(id)
	}
	return c.Nodes.AllocContiguous(nodes)
}

// NewDef reserves the next DefId and records target as the Node it
// lowers to. Callers allocate the Def before lowering the
// declaration's body so forward/mutually-recursive references within
// the same scope can resolve to it.
func (c *Context) NewDef(target NodeId) DefId {
	id := NewDefId(uint32(len(c.Defs)))
	c.Defs = append(c.Defs, target)
	return id
}

// SetDefTarget updates the Node a previously reserved DefId lowers to,
// used once the declaration's own Node has been allocated after its
// DefId was already handed out to populate a forward reference.
func (c *Context) SetDefTarget(id DefId, target NodeId) {
	c.Defs[id.idx] = target
}

func (c *Context) AllocAssignStatement(p AssignStatementPayload) NodeId {
	id := c.AssignStatements.Alloc(p)
	return c.allocNode(KindAssignStatement, id.idx)
}

func (c *Context) AllocExpressionStatement(p ExpressionStatementPayload) NodeId {
	id := c.ExpressionStatements.Alloc(p)
	return c.allocNode(KindExpressionStatement, id.idx)
}

func (c *Context) AllocLiteralExpression(p LiteralExpressionPayload) NodeId {
	id := c.LiteralExpressions.Alloc(p)
	return c.allocNode(KindLiteralExpression, id.idx)
}

func (c *Context) AllocResolvedPathExpression(p ResolvedPathExpressionPayload) NodeId {
	id := c.ResolvedPathExpressions.Alloc(p)
	return c.allocNode(KindResolvedPathExpression, id.idx)
}

func (c *Context) AllocUnaryExpression(p UnaryExpressionPayload) NodeId {
	id := c.UnaryExpressions.Alloc(p)
	return c.allocNode(KindUnaryExpression, id.idx)
}

func (c *Context) AllocBinaryExpression(p BinaryExpressionPayload) NodeId {
	id := c.BinaryExpressions.Alloc(p)
	return c.allocNode(KindBinaryExpression, id.idx)
}

func (c *Context) AllocGroupedExpression(p GroupedExpressionPayload) NodeId {
	id := c.GroupedExpressions.Alloc(p)
	return c.allocNode(KindGroupedExpression, id.idx)
}

func (c *Context) AllocArrayExpression(p ArrayExpressionPayload) NodeId {
	id := c.ArrayExpressions.Alloc(p)
	return c.allocNode(KindArrayExpression, id.idx)
}

func (c *Context) AllocTupleExpression(p TupleExpressionPayload) NodeId {
	id := c.TupleExpressions.Alloc(p)
	return c.allocNode(KindTupleExpression, id.idx)
}

func (c *Context) AllocIndexExpression(p IndexExpressionPayload) NodeId {
	id := c.IndexExpressions.Alloc(p)
	return c.allocNode(KindIndexExpression, id.idx)
}

func (c *Context) AllocConstructExpression(p ConstructExpressionPayload) NodeId {
	id := c.ConstructExpressions.Alloc(p)
	return c.allocNode(KindConstructExpression, id.idx)
}

func (c *Context) AllocCallExpression(p CallExpressionPayload) NodeId {
	id := c.CallExpressions.Alloc(p)
	kind := KindFunctionCallExpression
	switch p.Kind {
	case CallMethod:
		kind = KindMethodCallExpression
	case CallFunctionMacro:
		kind = KindFunctionMacroCallExpression
	case CallMethodMacro:
		kind = KindMethodMacroCallExpression
	}
	return c.allocNode(kind, id.idx)
}

func (c *Context) AllocFieldAccess(p FieldAccessExpressionPayload) NodeId {
	id := c.FieldAccesses.Alloc(p)
	return c.allocNode(KindFieldAccessExpression, id.idx)
}

func (c *Context) AllocAwaitExpression(p AwaitExpressionPayload) NodeId {
	id := c.AwaitExpressions.Alloc(p)
	return c.allocNode(KindAwaitExpression, id.idx)
}

func (c *Context) AllocContinueExpression(p ContinueExpressionPayload) NodeId {
	id := c.ContinueExpressions.Alloc(p)
	return c.allocNode(KindContinueExpression, id.idx)
}

func (c *Context) AllocBreakExpression(p BreakExpressionPayload) NodeId {
	id := c.BreakExpressions.Alloc(p)
	return c.allocNode(KindBreakExpression, id.idx)
}

func (c *Context) AllocReturnExpression(p ReturnExpressionPayload) NodeId {
	id := c.ReturnExpressions.Alloc(p)
	return c.allocNode(KindReturnExpression, id.idx)
}

func (c *Context) AllocBlockExpression(p BlockExpressionPayload) (NodeId, PayloadId[BlockExpressionPayload]) {
	id := c.BlockExpressions.Alloc(p)
	return c.allocNode(KindBlockExpression, id.idx), id
}

func (c *Context) AllocUnsafeExpression(p UnsafeExpressionPayload) NodeId {
	id := c.UnsafeExpressions.Alloc(p)
	return c.allocNode(KindUnsafeExpression, id.idx)
}

func (c *Context) AllocFastExpression(p FastExpressionPayload) NodeId {
	id := c.FastExpressions.Alloc(p)
	return c.allocNode(KindFastExpression, id.idx)
}

func (c *Context) AllocIfExpression(p IfExpressionPayload) NodeId {
	id := c.IfExpressions.Alloc(p)
	return c.allocNode(KindIfExpression, id.idx)
}

func (c *Context) AllocLoopExpression(p LoopExpressionPayload) NodeId {
	id := c.LoopExpressions.Alloc(p)
	return c.allocNode(KindLoopExpression, id.idx)
}

func (c *Context) AllocWhileExpression(p WhileExpressionPayload) NodeId {
	id := c.WhileExpressions.Alloc(p)
	return c.allocNode(KindWhileExpression, id.idx)
}

func (c *Context) AllocForExpression(p ForExpressionPayload) NodeId {
	id := c.ForExpressions.Alloc(p)
	return c.allocNode(KindForExpression, id.idx)
}

func (c *Context) AllocMatchExpression(p MatchExpressionPayload) NodeId {
	id := c.MatchExpressions.Alloc(p)
	return c.allocNode(KindMatchExpression, id.idx)
}

func (c *Context) AllocClosureExpression(p ClosureExpressionPayload) NodeId {
	id := c.ClosureExpressions.Alloc(p)
	return c.allocNode(KindClosureExpression, id.idx)
}

func (c *Context) AllocFunctionDeclaration(p FunctionDeclarationPayload) NodeId {
	id := c.FunctionDeclarations.Alloc(p)
	return c.allocNode(KindFunctionDeclaration, id.idx)
}

func (c *Context) AllocStructDeclaration(p StructDeclarationPayload) NodeId {
	id := c.StructDeclarations.Alloc(p)
	return c.allocNode(KindStructDeclaration, id.idx)
}

func (c *Context) AllocUnionDeclaration(p UnionDeclarationPayload) NodeId {
	id := c.UnionDeclarations.Alloc(p)
	return c.allocNode(KindUnionDeclaration, id.idx)
}

func (c *Context) AllocEnumDeclaration(p EnumDeclarationPayload) NodeId {
	id := c.EnumDeclarations.Alloc(p)
	return c.allocNode(KindEnumDeclaration, id.idx)
}

func (c *Context) AllocTraitDeclaration(p TraitDeclarationPayload) NodeId {
	id := c.TraitDeclarations.Alloc(p)
	return c.allocNode(KindTraitDeclaration, id.idx)
}

func (c *Context) AllocImplDeclaration(p ImplDeclarationPayload) NodeId {
	id := c.ImplDeclarations.Alloc(p)
	return c.allocNode(KindImplDeclaration, id.idx)
}

func (c *Context) AllocModuleDeclaration(p ModuleDeclarationPayload) NodeId {
	id := c.ModuleDeclarations.Alloc(p)
	return c.allocNode(KindModuleDeclaration, id.idx)
}

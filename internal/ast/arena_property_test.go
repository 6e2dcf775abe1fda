package ast

import "testing"

// nodeInBounds reports whether n's PayloadIdx addresses a live slot in
// the arena its Kind implies. KindUnknown has no arena and is always
// considered in bounds (it never appears on a real tree).
func nodeInBounds(c *Context, n Node) bool {
	switch n.Kind {
	case KindUnknown:
		return true
	case KindAssignStatement:
		return c.AssignStatements.InBounds(NewPayloadId[AssignStatementPayload](n.PayloadIdx))
	case KindAttributeStatement:
		return c.AttributeStatements.InBounds(NewPayloadId[AttributeStatementPayload](n.PayloadIdx))
	case KindExpressionStatement:
		return c.ExpressionStatements.InBounds(NewPayloadId[ExpressionStatementPayload](n.PayloadIdx))
	case KindLiteralExpression:
		return c.LiteralExpressions.InBounds(NewPayloadId[LiteralExpressionPayload](n.PayloadIdx))
	case KindPathExpression:
		return c.PathExpressions.InBounds(NewPayloadId[PathExpressionPayload](n.PayloadIdx))
	case KindUnaryExpression:
		return c.UnaryExpressions.InBounds(NewPayloadId[UnaryExpressionPayload](n.PayloadIdx))
	case KindBinaryExpression:
		return c.BinaryExpressions.InBounds(NewPayloadId[BinaryExpressionPayload](n.PayloadIdx))
	case KindGroupedExpression:
		return c.GroupedExpressions.InBounds(NewPayloadId[GroupedExpressionPayload](n.PayloadIdx))
	case KindArrayExpression:
		return c.ArrayExpressions.InBounds(NewPayloadId[ArrayExpressionPayload](n.PayloadIdx))
	case KindTupleExpression:
		return c.TupleExpressions.InBounds(NewPayloadId[TupleExpressionPayload](n.PayloadIdx))
	case KindIndexExpression:
		return c.IndexExpressions.InBounds(NewPayloadId[IndexExpressionPayload](n.PayloadIdx))
	case KindConstructExpression:
		return c.ConstructExpressions.InBounds(NewPayloadId[ConstructExpressionPayload](n.PayloadIdx))
	case KindFunctionCallExpression, KindMethodCallExpression,
		KindFunctionMacroCallExpression, KindMethodMacroCallExpression:
		return c.CallExpressions.InBounds(NewPayloadId[CallExpressionPayload](n.PayloadIdx))
	case KindFieldAccessExpression:
		return c.FieldAccesses.InBounds(NewPayloadId[FieldAccessExpressionPayload](n.PayloadIdx))
	case KindAwaitExpression:
		return c.AwaitExpressions.InBounds(NewPayloadId[AwaitExpressionPayload](n.PayloadIdx))
	case KindContinueExpression:
		return c.ContinueExpressions.InBounds(NewPayloadId[ContinueExpressionPayload](n.PayloadIdx))
	case KindBreakExpression:
		return c.BreakExpressions.InBounds(NewPayloadId[BreakExpressionPayload](n.PayloadIdx))
	case KindRangeExpression:
		return c.RangeExpressions.InBounds(NewPayloadId[RangeExpressionPayload](n.PayloadIdx))
	case KindReturnExpression:
		return c.ReturnExpressions.InBounds(NewPayloadId[ReturnExpressionPayload](n.PayloadIdx))
	case KindBlockExpression:
		return c.BlockExpressions.InBounds(NewPayloadId[BlockExpressionPayload](n.PayloadIdx))
	case KindUnsafeExpression:
		return c.UnsafeExpressions.InBounds(NewPayloadId[UnsafeExpressionPayload](n.PayloadIdx))
	case KindFastExpression:
		return c.FastExpressions.InBounds(NewPayloadId[FastExpressionPayload](n.PayloadIdx))
	case KindIfExpression:
		return c.IfExpressions.InBounds(NewPayloadId[IfExpressionPayload](n.PayloadIdx))
	case KindLoopExpression:
		return c.LoopExpressions.InBounds(NewPayloadId[LoopExpressionPayload](n.PayloadIdx))
	case KindWhileExpression:
		return c.WhileExpressions.InBounds(NewPayloadId[WhileExpressionPayload](n.PayloadIdx))
	case KindForExpression:
		return c.ForExpressions.InBounds(NewPayloadId[ForExpressionPayload](n.PayloadIdx))
	case KindMatchExpression:
		return c.MatchExpressions.InBounds(NewPayloadId[MatchExpressionPayload](n.PayloadIdx))
	case KindClosureExpression:
		return c.ClosureExpressions.InBounds(NewPayloadId[ClosureExpressionPayload](n.PayloadIdx))
	case KindFunctionDeclaration:
		return c.FunctionDeclarations.InBounds(NewPayloadId[FunctionDeclarationPayload](n.PayloadIdx))
	case KindStructDeclaration:
		return c.StructDeclarations.InBounds(NewPayloadId[StructDeclarationPayload](n.PayloadIdx))
	case KindEnumDeclaration:
		return c.EnumDeclarations.InBounds(NewPayloadId[EnumDeclarationPayload](n.PayloadIdx))
	case KindTraitDeclaration:
		return c.TraitDeclarations.InBounds(NewPayloadId[TraitDeclarationPayload](n.PayloadIdx))
	case KindImplDeclaration:
		return c.ImplDeclarations.InBounds(NewPayloadId[ImplDeclarationPayload](n.PayloadIdx))
	case KindUnionDeclaration:
		return c.UnionDeclarations.InBounds(NewPayloadId[UnionDeclarationPayload](n.PayloadIdx))
	case KindModuleDeclaration:
		return c.ModuleDeclarations.InBounds(NewPayloadId[ModuleDeclarationPayload](n.PayloadIdx))
	case KindRedirectDeclaration:
		return c.RedirectDeclarations.InBounds(NewPayloadId[RedirectDeclarationPayload](n.PayloadIdx))
	default:
		return false
	}
}

// TestArenaAllocationsStayInBounds is the P6 property from spec.md: a
// PayloadId handed out by Alloc/AllocContiguous always indexes a live
// slot, and every Node stored in the tree carries one. It is exercised
// here directly against the arenas (not through a parsed tree) since
// package ast cannot import the parser without a cycle.
func TestArenaAllocationsStayInBounds(t *testing.T) {
	c := NewContext()

	lit1 := c.LiteralExpressions.Alloc(LiteralExpressionPayload{})
	lit2 := c.LiteralExpressions.Alloc(LiteralExpressionPayload{})
	n1 := c.allocNode(KindLiteralExpression, lit1.Index())
	n2 := c.allocNode(KindLiteralExpression, lit2.Index())

	bin := c.BinaryExpressions.Alloc(BinaryExpressionPayload{Lhs: n1, Rhs: n2})
	n3 := c.allocNode(KindBinaryExpression, bin.Index())

	for _, n := range []NodeId{n1, n2, n3} {
		node := c.Node(n)
		if !nodeInBounds(c, node) {
			t.Fatalf("node %+v reports out of bounds for its own arena", node)
		}
	}

	// An id one past the end of an arena must report out of bounds.
	beyond := NewPayloadId[LiteralExpressionPayload](uint32(c.LiteralExpressions.Len()))
	if c.LiteralExpressions.InBounds(beyond) {
		t.Fatal("id one past the arena's end reported in bounds")
	}
}

// TestAllocContiguousRangeCoversExactlyItsPayloads checks that a range
// produced by AllocContiguous reports every one of its members, and
// nothing else, as in bounds relative to the range's own Begin/Size.
func TestAllocContiguousRangeCoversExactlyItsPayloads(t *testing.T) {
	c := NewContext()
	r := c.Params.AllocContiguous([]ParamPayload{{}, {}, {}})

	if r.Len() != 3 {
		t.Fatalf("range length = %d, want 3", r.Len())
	}
	for i := 0; i < r.Len(); i++ {
		id := NewPayloadId[ParamPayload](r.Begin.Index() + uint32(i))
		if !c.Params.InBounds(id) {
			t.Fatalf("range member %d reported out of bounds", i)
		}
	}
	past := NewPayloadId[ParamPayload](r.Begin.Index() + r.Size)
	if c.Params.InBounds(past) {
		t.Fatal("id just past the range reported in bounds")
	}
}

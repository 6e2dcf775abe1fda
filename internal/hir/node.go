package hir

// NodeKind discriminates which payload arena a Node's PayloadIdx
// indexes into. Mirrors ast.NodeKind's partition, with PathExpression
// replaced by ResolvedPathExpression.
type NodeKind uint8

const (
	KindUnknown NodeKind = iota
	KindAssignStatement
	KindExpressionStatement
	KindLiteralExpression
	KindResolvedPathExpression
	KindUnaryExpression
	KindBinaryExpression
	KindGroupedExpression
	KindArrayExpression
	KindTupleExpression
	KindIndexExpression
	KindConstructExpression
	KindFunctionCallExpression
	KindMethodCallExpression
	KindFunctionMacroCallExpression
	KindMethodMacroCallExpression
	KindFieldAccessExpression
	KindAwaitExpression
	KindContinueExpression
	KindBreakExpression
	KindReturnExpression
	KindBlockExpression
	KindUnsafeExpression
	KindFastExpression
	KindIfExpression
	KindLoopExpression
	KindWhileExpression
	KindForExpression
	KindMatchExpression
	KindClosureExpression
	KindFunctionDeclaration
	KindStructDeclaration
	KindEnumDeclaration
	KindTraitDeclaration
	KindImplDeclaration
	KindUnionDeclaration
	KindModuleDeclaration
)

// NodeId is an index into a Context's Node arena.
type NodeId struct {
	idx   uint32
	valid bool
}

var InvalidNodeId = NodeId{}

func (id NodeId) Valid() bool   { return id.valid }
func (id NodeId) Index() uint32 { return id.idx }

// Node is the tagged-variant cell every HIR node shares.
type Node struct {
	PayloadIdx uint32
	Kind       NodeKind
}

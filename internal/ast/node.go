package ast

// NodeKind discriminates which payload arena a Node's PayloadId indexes
// into. The full partition mirrors
// original_source/src/frontend/processor/resolver/resolver.cc's switch
// over ast::NodeKind.
type NodeKind uint8

const (
	KindUnknown NodeKind = iota
	KindAssignStatement
	KindAttributeStatement
	KindExpressionStatement
	KindLiteralExpression
	KindPathExpression
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
	KindRangeExpression
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
	KindRedirectDeclaration
)

// NodeId is an index into a Context's Node arena.
type NodeId struct {
	idx   uint32
	valid bool
}

// InvalidNodeId denotes the absence of a node (e.g. an omitted
// optional else-branch).
var InvalidNodeId = NodeId{}

func (id NodeId) Valid() bool    { return id.valid }
func (id NodeId) Index() uint32  { return id.idx }

// Node is the tagged-variant cell every AST node shares: a kind
// discriminator plus the index of its payload within the arena that
// kind implies. There is no virtual-method dispatch; visitors switch
// on Kind.
type Node struct {
	PayloadIdx uint32
	Kind       NodeKind
}

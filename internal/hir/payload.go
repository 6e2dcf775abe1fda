package hir

import (
	"go.redy.dev/internal/ast"
	"go.redy.dev/internal/intern"
	"go.redy.dev/internal/token"
)

// ResolvedPathExpressionPayload replaces ast.PathExpressionPayload's
// list of lexeme segments with a single resolved binding. Target is
// InvalidHirId when the resolver could not find a matching
// declaration; the diagnostic for that case is emitted at lowering
// time, not recoverable from the HIR alone.
type ResolvedPathExpressionPayload struct {
	Target HirId
}

// LiteralExpressionPayload carries the same shape as ast's: literals
// need no name resolution, only AST->HIR repackaging.
type LiteralExpressionPayload struct {
	Kind   ast.LiteralKind
	Lexeme token.Range
}

type UnaryExpressionPayload struct {
	Op        token.Kind
	Operand   NodeId
	IsPostfix bool
}

type BinaryExpressionPayload struct {
	Op  token.Kind
	Lhs NodeId
	Rhs NodeId
}

type GroupedExpressionPayload struct {
	Inner NodeId
}

type ArrayExpressionPayload struct {
	Elements PayloadRange[Node]
}

type TupleExpressionPayload struct {
	Elements PayloadRange[Node]
}

type IndexExpressionPayload struct {
	Target NodeId
	Index  NodeId
}

// FieldInitPayload names the field by its interned name, not a
// resolved id: field membership is a type-checking concern this core
// defers, matching spec.md's framing of the resolver as pure name
// resolution.
type FieldInitPayload struct {
	Name  intern.ID
	Value NodeId
}

type ConstructExpressionPayload struct {
	Type   HirId
	Fields PayloadRange[FieldInitPayload]
}

type CallKind uint8

const (
	CallFunction CallKind = iota
	CallMethod
	CallFunctionMacro
	CallMethodMacro
)

type CallExpressionPayload struct {
	Kind     CallKind
	Callee   NodeId
	Receiver NodeId
	Method   intern.ID
	Args     PayloadRange[Node]
}

type FieldAccessExpressionPayload struct {
	Target NodeId
	Field  intern.ID
}

type AwaitExpressionPayload struct {
	Target NodeId
}

type ContinueExpressionPayload struct{}

type BreakExpressionPayload struct {
	Value NodeId
}

type ReturnExpressionPayload struct {
	Value NodeId
}

type BlockExpressionPayload struct {
	Stmts    PayloadRange[Node]
	Trailing NodeId
}

type UnsafeExpressionPayload struct {
	Body PayloadId[BlockExpressionPayload]
}

type FastExpressionPayload struct {
	Body PayloadId[BlockExpressionPayload]
}

type IfExpressionPayload struct {
	Condition NodeId
	ThenBlock PayloadId[BlockExpressionPayload]
	Else      NodeId
}

type LoopExpressionPayload struct {
	Body PayloadId[BlockExpressionPayload]
}

type WhileExpressionPayload struct {
	Condition NodeId
	Body      PayloadId[BlockExpressionPayload]
}

// ForExpressionPayload's Binding is the LocalId introduced for the
// loop variable, visible only inside Body's scope.
type ForExpressionPayload struct {
	Binding  LocalId
	Iterable NodeId
	Body     PayloadId[BlockExpressionPayload]
}

type MatchArmPayload struct {
	Pattern NodeId
	Body    NodeId
}

type MatchExpressionPayload struct {
	Subject NodeId
	Arms    PayloadRange[MatchArmPayload]
}

type ClosureExpressionPayload struct {
	Params PayloadRange[LocalId]
	Body   NodeId
}

type FieldPayload struct {
	Name intern.ID
}

// FunctionDeclarationPayload's Def is the DefId other scopes resolve
// the function's name to; Parameters are fresh LocalIds bound for the
// body's scope.
type FunctionDeclarationPayload struct {
	Def        DefId
	Parameters PayloadRange[LocalId]
	Body       PayloadId[BlockExpressionPayload]
}

type StructDeclarationPayload struct {
	Def    DefId
	Fields PayloadRange[FieldPayload]
}

type UnionDeclarationPayload struct {
	Def    DefId
	Fields PayloadRange[FieldPayload]
}

type EnumVariantPayload struct {
	Name        intern.ID
	ShapeKind   ast.EnumVariantShapeKind
	IntegerNode NodeId
	Fields      PayloadRange[FieldPayload]
}

type EnumDeclarationPayload struct {
	Def      DefId
	Variants PayloadRange[EnumVariantPayload]
}

type TraitDeclarationPayload struct {
	Def     DefId
	Methods PayloadRange[FunctionDeclarationPayload]
}

type ImplDeclarationPayload struct {
	Target  HirId
	Trait   HirId
	Methods PayloadRange[FunctionDeclarationPayload]
}

type ModuleDeclarationPayload struct {
	Def   DefId
	Items PayloadRange[Node]
}

type AssignKind uint8

const (
	AssignDeclaration AssignKind = iota
	AssignReassignWithOp
)

// AssignStatementPayload's Local is the LocalId freshly declared
// (AssignDeclaration) and its Target is the HirId the assignment
// target resolved to (AssignReassignWithOp); the other field is left
// invalid, and for a reassignment whose target does not resolve both
// are invalid.
type AssignStatementPayload struct {
	Local  LocalId
	Target HirId
	Value  NodeId
	Kind   AssignKind
	Op     token.Kind
}

type ExpressionStatementPayload struct {
	Expr NodeId
}

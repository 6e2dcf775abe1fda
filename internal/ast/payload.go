package ast

import (
	"go.redy.dev/internal/intern"
	"go.redy.dev/internal/token"
)

// IdentifierPayload names a single path segment.
type IdentifierPayload struct {
	Name intern.ID
	Span token.Range
}

// PathExpressionPayload is a `::`-joined sequence of identifiers.
type PathExpressionPayload struct {
	Parts PayloadRange[IdentifierPayload]
}

// LiteralKind distinguishes numeric bases, strings, characters and
// booleans carried by a LiteralExpressionPayload.
type LiteralKind uint8

const (
	LiteralDecimal LiteralKind = iota
	LiteralBinary
	LiteralOctal
	LiteralHexadecimal
	LiteralString
	LiteralCharacter
	LiteralBool
)

// LiteralExpressionPayload carries the source range of a literal's
// lexeme; the lexeme itself is recovered on demand from the file.
type LiteralExpressionPayload struct {
	Kind   LiteralKind
	Lexeme token.Range
}

// UnaryExpressionPayload applies a prefix/postfix operator to operand.
type UnaryExpressionPayload struct {
	Op        token.Kind
	Operand   NodeId
	IsPostfix bool
}

// BinaryExpressionPayload is `lhs op rhs`.
type BinaryExpressionPayload struct {
	Op  token.Kind
	Lhs NodeId
	Rhs NodeId
}

// GroupedExpressionPayload is a parenthesized expression.
type GroupedExpressionPayload struct {
	Inner NodeId
}

// ArrayExpressionPayload is `[e1, e2, ...]`.
type ArrayExpressionPayload struct {
	Elements PayloadRange[Node]
}

// TupleExpressionPayload is `(e1, e2, ...)`; the empty `()` and the
// one-element `(e,)` are tuples too.
type TupleExpressionPayload struct {
	Elements PayloadRange[Node]
}

// IndexExpressionPayload is `target[index]`.
type IndexExpressionPayload struct {
	Target NodeId
	Index  NodeId
}

// FieldInitPayload is one `name: value` pair inside a construct
// expression.
type FieldInitPayload struct {
	Name  IdentifierPayload
	Value NodeId
}

// ConstructExpressionPayload is `Path{ field: value, ... }`.
type ConstructExpressionPayload struct {
	Path   PayloadId[PathExpressionPayload]
	Fields PayloadRange[FieldInitPayload]
}

// CallKind distinguishes the four call-shaped postfix forms.
type CallKind uint8

const (
	CallFunction CallKind = iota
	CallMethod
	CallFunctionMacro
	CallMethodMacro
)

// CallExpressionPayload covers function calls, method calls, and their
// macro-call (`#(...)`) counterparts; Receiver is InvalidNodeId for
// plain function/macro calls.
type CallExpressionPayload struct {
	Kind     CallKind
	Callee   NodeId
	Receiver NodeId
	Method   IdentifierPayload
	Args     PayloadRange[Node]
}

// FieldAccessExpressionPayload is `target.name` with no call.
type FieldAccessExpressionPayload struct {
	Target NodeId
	Field  IdentifierPayload
}

// AwaitExpressionPayload is `target.await`.
type AwaitExpressionPayload struct {
	Target NodeId
}

// ContinueExpressionPayload is a bare `continue`.
type ContinueExpressionPayload struct{}

// BreakExpressionPayload is `break` with an optional value.
type BreakExpressionPayload struct {
	Value NodeId
}

// RangeExpressionPayload is `lo..hi`.
type RangeExpressionPayload struct {
	Lo NodeId
	Hi NodeId
}

// ReturnExpressionPayload is `return` with an optional value.
type ReturnExpressionPayload struct {
	Value NodeId
}

// BlockExpressionPayload is `{ stmt; stmt; trailing }`.
type BlockExpressionPayload struct {
	Stmts    PayloadRange[Node]
	Trailing NodeId
}

// UnsafeExpressionPayload wraps a block entered via `unsafe`.
type UnsafeExpressionPayload struct {
	Body PayloadId[BlockExpressionPayload]
}

// FastExpressionPayload wraps a block entered via `fast`.
type FastExpressionPayload struct {
	Body PayloadId[BlockExpressionPayload]
}

// IfExpressionPayload is `if cond { then } else else`.
type IfExpressionPayload struct {
	Condition NodeId
	ThenBlock PayloadId[BlockExpressionPayload]
	Else      NodeId
}

// LoopExpressionPayload is a bare `loop { ... }`.
type LoopExpressionPayload struct {
	Body PayloadId[BlockExpressionPayload]
}

// WhileExpressionPayload is `while cond { ... }`.
type WhileExpressionPayload struct {
	Condition NodeId
	Body      PayloadId[BlockExpressionPayload]
}

// ForExpressionPayload is `for binding in iterable { ... }`.
type ForExpressionPayload struct {
	Binding  IdentifierPayload
	Iterable NodeId
	Body     PayloadId[BlockExpressionPayload]
}

// MatchArmPayload is one `pattern => body` arm.
type MatchArmPayload struct {
	Pattern NodeId
	Body    NodeId
}

// MatchExpressionPayload is `match subject { arm, arm, ... }`.
type MatchExpressionPayload struct {
	Subject NodeId
	Arms    PayloadRange[MatchArmPayload]
}

// ClosureExpressionPayload is `|params| body`.
type ClosureExpressionPayload struct {
	Params PayloadRange[ParamPayload]
	Body   NodeId
}

// TypeRefPayload names a referenced type by path only; no pointer or
// array wrapping is recorded, since this core does not check types
// beyond name resolution.
type TypeRefPayload struct {
	Path PayloadId[PathExpressionPayload]
}

// ParamPayload is one function/closure parameter.
type ParamPayload struct {
	Name IdentifierPayload
	Type PayloadId[TypeRefPayload]
}

// FieldPayload is one struct/union field declaration.
type FieldPayload struct {
	Name IdentifierPayload
	Type PayloadId[TypeRefPayload]
}

// FunctionDeclarationPayload is `fn name(params) -> ret { body }`.
type FunctionDeclarationPayload struct {
	Name       IdentifierPayload
	Parameters PayloadRange[ParamPayload]
	ReturnType PayloadId[TypeRefPayload]
	Body       PayloadId[BlockExpressionPayload]
	Storage    StorageAttribute
}

// StructDeclarationPayload is `struct name { fields }`.
type StructDeclarationPayload struct {
	Name    IdentifierPayload
	Fields  PayloadRange[FieldPayload]
	Storage StorageAttribute
}

// UnionDeclarationPayload is `union name { fields }`.
type UnionDeclarationPayload struct {
	Name    IdentifierPayload
	Fields  PayloadRange[FieldPayload]
	Storage StorageAttribute
}

// EnumVariantShapeKind discriminates the four variant shapes.
type EnumVariantShapeKind uint8

const (
	EnumVariantEmpty EnumVariantShapeKind = iota
	EnumVariantInteger
	EnumVariantTuple
	EnumVariantRecord
)

// EnumVariantPayload is one `Name`, `Name(value)`, `Name(T, ...)`, or
// `Name{field, ...}` variant.
type EnumVariantPayload struct {
	Name        IdentifierPayload
	ShapeKind   EnumVariantShapeKind
	IntegerNode NodeId
	TupleTypes  PayloadRange[TypeRefPayload]
	Fields      PayloadRange[FieldPayload]
}

// EnumDeclarationPayload is `enum name { variant, ... }`.
type EnumDeclarationPayload struct {
	Name     IdentifierPayload
	Variants PayloadRange[EnumVariantPayload]
	Storage  StorageAttribute
}

// TraitDeclarationPayload is `trait name { fn sigs... }`.
type TraitDeclarationPayload struct {
	Name    IdentifierPayload
	Methods PayloadRange[FunctionDeclarationPayload]
	Storage StorageAttribute
}

// ImplDeclarationPayload is `impl target { methods }` or `impl trait
// for target { methods }`; Trait is invalid in the first form.
type ImplDeclarationPayload struct {
	Target  PayloadId[TypeRefPayload]
	Trait   PayloadId[TypeRefPayload]
	Methods PayloadRange[FunctionDeclarationPayload]
}

// ModuleDeclarationPayload is `module name { items }`.
type ModuleDeclarationPayload struct {
	Name  IdentifierPayload
	Items PayloadRange[Node]
}

// RedirectDeclarationPayload is `redirect name -> target`. Per
// DESIGN.md's resolution of spec.md's open question, the resolver
// treats this as an alias binding and never diagnoses a missing
// target.
type RedirectDeclarationPayload struct {
	Name   IdentifierPayload
	Target IdentifierPayload
}

// AssignKind distinguishes a fresh declaration from a compound
// reassignment.
type AssignKind uint8

const (
	AssignDeclaration AssignKind = iota
	AssignReassignWithOp
)

// AssignStatementPayload covers `target := value`, `target: Type [= value]`,
// and `target op= value`.
type AssignStatementPayload struct {
	Target  NodeId
	Type    PayloadId[TypeRefPayload]
	Value   NodeId
	Kind    AssignKind
	Op      token.Kind
	Storage StorageAttribute
}

// AttributeStatementPayload records a storage-attribute prefix on its
// own. The parser does not produce this node: a prefix is stored in the
// following item's payload, and a conflicting prefix is reported as
// ConflictingStorageSpecifiers.
type AttributeStatementPayload struct {
	Storage StorageAttribute
}

// ExpressionStatementPayload wraps a bare expression used as a
// statement.
type ExpressionStatementPayload struct {
	Expr NodeId
}

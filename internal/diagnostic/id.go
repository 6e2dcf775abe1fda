package diagnostic

import "fmt"

// ID is a stable identifier for a diagnostic class, distinct from its
// severity. The full taxonomy mirrors
// original_source/src/frontend/diagnostic/data/diagnostic_id.h.
type ID uint8

const (
	Unknown ID = iota

	// Lexer.
	InvalidToken
	UnterminatedStringLiteral
	UnterminatedCharacterLiteral
	UnterminatedBlockComment
	UnrecognizedCharacter
	InvalidEscapeSequence
	InvalidNumericLiteral
	NumericLiteralOutOfRange
	UnexpectedEndOfFile

	// Parser.
	UnexpectedToken
	MissingToken
	ExpectedSemicolon
	ExpectedIdentifier
	ExpectedType
	ExpectedLParen
	ExpectedRParen
	ExpectedLBrace
	ExpectedRBrace
	ExpectedLBracket
	ExpectedRBracket
	ExpectedExpression
	ExpectedReturnExpression
	ExpectedBlock
	UnexpectedKeyword
	MalformedDeclaration
	DuplicateParameterName
	ParameterCountMismatch
	InvalidFunctionCall
	InvalidAssignmentTarget
	InvalidGenericArguments
	BreakOutsideLoop
	ContinueOutsideLoop
	InvalidPattern
	ConflictingStorageSpecifiers
	InvalidSyntax

	// Sema.
	UndefinedSymbol
	UndefinedVariable
	UndefinedFunction
	UndefinedType
	CallArgumentMismatch
	ReturnTypeMismatch
	NonCallableExpression
	InvalidOperatorOperands
	MemberNotFound
	AccessPrivateMember
	ImmutableBindingChanged
	ConstAssignment
	TypeMismatch
	TypeAnnotationRequired
	NonIterableExpression
	InfiniteLoopLiteral
	FunctionSignatureMismatch
	Redeclaration
	ConflictingDeclaration
	ConflictingTraitImplementation
	MissingTraitBound
	VariableNotInitialized
	MisplacedAttribute
	RecursiveTypeDefinition
	CyclicDependency

	// Lifetime / borrow.
	DanglingReference
	UnusedLifetimeParameter
	UnusedBorrow
	LifetimeConflict
	LifetimeAnnotationRequired
	ReturnedBorrowDoesNotLiveLongEnough
	MoveAfterBorrow
	BorrowAfterMove
	UseAfterMove
	MultipleMutBorrow
	MutableAlias
	ImmutableBorrowIntoMutable

	// Warnings.
	UnusedVariable
	UnusedFunction
	UnreachableCode
	ImplicitConversion
	MissingReturnStatement
	DeprecatedFeature
	DeprecatedApiUsage
	AmbiguousCall
	UnnecessaryCopy
	ShadowingVariable
	NumericDivisionByZero
	AlwaysTrueCondition
	AlwaysFalseCondition
	MissingDefaultCase
	InefficientLoop
	RedundantCast
	EmptyLoopBody
	IneffectiveAssignment

	// Internal.
	InvalidUtfSequence
)

var idNames = map[ID]string{
	Unknown: "unknown",

	InvalidToken: "invalid_token", UnterminatedStringLiteral: "unterminated_string_literal",
	UnterminatedCharacterLiteral: "unterminated_character_literal", UnterminatedBlockComment: "unterminated_block_comment",
	UnrecognizedCharacter: "unrecognized_character", InvalidEscapeSequence: "invalid_escape_sequence",
	InvalidNumericLiteral: "invalid_numeric_literal", NumericLiteralOutOfRange: "numeric_literal_out_of_range",
	UnexpectedEndOfFile: "unexpected_end_of_file",

	UnexpectedToken: "unexpected_token", MissingToken: "missing_token",
	ExpectedSemicolon: "expected_semicolon", ExpectedIdentifier: "expected_identifier",
	ExpectedType: "expected_type", ExpectedLParen: "expected_lparen", ExpectedRParen: "expected_rparen",
	ExpectedLBrace: "expected_lbrace", ExpectedRBrace: "expected_rbrace",
	ExpectedLBracket: "expected_lbracket", ExpectedRBracket: "expected_rbracket",
	ExpectedExpression: "expected_expression", ExpectedReturnExpression: "expected_return_expression",
	ExpectedBlock: "expected_block", UnexpectedKeyword: "unexpected_keyword",
	MalformedDeclaration: "malformed_declaration", DuplicateParameterName: "duplicate_parameter_name",
	ParameterCountMismatch: "parameter_count_mismatch", InvalidFunctionCall: "invalid_function_call",
	InvalidAssignmentTarget: "invalid_assignment_target", InvalidGenericArguments: "invalid_generic_arguments",
	BreakOutsideLoop: "break_outside_loop", ContinueOutsideLoop: "continue_outside_loop",
	InvalidPattern: "invalid_pattern", ConflictingStorageSpecifiers: "conflicting_storage_specifiers",
	InvalidSyntax: "invalid_syntax",

	UndefinedSymbol: "undefined_symbol", UndefinedVariable: "undefined_variable",
	UndefinedFunction: "undefined_function", UndefinedType: "undefined_type",
	CallArgumentMismatch: "call_argument_mismatch", ReturnTypeMismatch: "return_type_mismatch",
	NonCallableExpression: "non_callable_expression", InvalidOperatorOperands: "invalid_operator_operands",
	MemberNotFound: "member_not_found", AccessPrivateMember: "access_private_member",
	ImmutableBindingChanged: "immutable_binding_changed", ConstAssignment: "const_assignment",
	TypeMismatch: "type_mismatch", TypeAnnotationRequired: "type_annotation_required",
	NonIterableExpression: "non_iterable_expression", InfiniteLoopLiteral: "infinite_loop_literal",
	FunctionSignatureMismatch: "function_signature_mismatch", Redeclaration: "redeclaration",
	ConflictingDeclaration: "conflicting_declaration", ConflictingTraitImplementation: "conflicting_trait_implementation",
	MissingTraitBound: "missing_trait_bound", VariableNotInitialized: "variable_not_initialized",
	MisplacedAttribute: "misplaced_attribute", RecursiveTypeDefinition: "recursive_type_definition",
	CyclicDependency: "cyclic_dependency",

	DanglingReference: "dangling_reference", UnusedLifetimeParameter: "unused_lifetime_parameter",
	UnusedBorrow: "unused_borrow", LifetimeConflict: "lifetime_conflict",
	LifetimeAnnotationRequired: "lifetime_annotation_required",
	ReturnedBorrowDoesNotLiveLongEnough: "returned_borrow_does_not_live_long_enough",
	MoveAfterBorrow: "move_after_borrow", BorrowAfterMove: "borrow_after_move",
	UseAfterMove: "use_after_move", MultipleMutBorrow: "multiple_mut_borrow",
	MutableAlias: "mutable_alias", ImmutableBorrowIntoMutable: "immutable_borrow_into_mutable",

	UnusedVariable: "unused_variable", UnusedFunction: "unused_function",
	UnreachableCode: "unreachable_code", ImplicitConversion: "implicit_conversion",
	MissingReturnStatement: "missing_return_statement", DeprecatedFeature: "deprecated_feature",
	DeprecatedApiUsage: "deprecated_api_usage", AmbiguousCall: "ambiguous_call",
	UnnecessaryCopy: "unnecessary_copy", ShadowingVariable: "shadowing_variable",
	NumericDivisionByZero: "numeric_division_by_zero", AlwaysTrueCondition: "always_true_condition",
	AlwaysFalseCondition: "always_false_condition", MissingDefaultCase: "missing_default_case",
	InefficientLoop: "inefficient_loop", RedundantCast: "redundant_cast",
	EmptyLoopBody: "empty_loop_body", IneffectiveAssignment: "ineffective_assignment",

	InvalidUtfSequence: "invalid_utf_sequence",
}

// String returns the snake_case name used both for debugging and as
// the translation key for the diagnostic's short header title.
func (id ID) String() string {
	if s, ok := idNames[id]; ok {
		return s
	}
	return "unknown"
}

// Code renders the stable 6-character diagnostic code: a
// severity-prefix letter followed by a zero-padded 4-digit numeric id,
// e.g. "e0036". Promoted to its own function per SPEC_FULL so it is
// covered by its own test instead of only through full-entry
// rendering.
func Code(id ID, severity Severity) string {
	letter, ok := prefixLetters[severity]
	if !ok {
		letter = 'u'
	}
	return fmt.Sprintf("%c%04d", letter, uint8(id))
}

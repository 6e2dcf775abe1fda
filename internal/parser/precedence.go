package parser

import "go.redy.dev/internal/token"

// Precedence tiers for binary operators, low to high. The sketch in
// spec.md only requires that ** binds tighter than everything and is
// right-associative; the remaining tiers follow the grouping already
// implied by token/kind.go's declaration order.
const (
	precLowest = iota
	precLogicalOr
	precLogicalAnd
	precBitwiseOr
	precBitwiseXor
	precBitwiseAnd
	precComparison
	precShift
	precAdditive
	precMultiplicative
	precExponent
)

var binaryPrecedence = map[token.Kind]int{
	token.PipePipe: precLogicalOr,
	token.AndAnd:   precLogicalAnd,
	token.Pipe:     precBitwiseOr,
	token.Caret:    precBitwiseXor,
	token.And:      precBitwiseAnd,

	token.ThreeWay: precComparison, token.Lt: precComparison, token.Gt: precComparison,
	token.Le: precComparison, token.Ge: precComparison, token.EqEq: precComparison, token.NotEqual: precComparison,

	token.LtLt: precShift, token.GtGt: precShift,

	token.Plus: precAdditive, token.Minus: precAdditive,

	token.Star: precMultiplicative, token.Slash: precMultiplicative, token.Percent: precMultiplicative,

	token.StarStar: precExponent,
}

// isRightAssoc reports whether k's RHS should be parsed at the same
// precedence tier rather than one tier higher, matching spec.md's call
// out that `**` is right-associative and every other binary operator
// is left-associative.
func isRightAssoc(k token.Kind) bool { return k == token.StarStar }

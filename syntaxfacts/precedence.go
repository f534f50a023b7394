// Package syntaxfacts is a pure, stateless module of predicates and
// mappings consulted by both the lexer (keyword classification) and the
// parser (spec.md §4.7). Nothing here touches an arena, a stream, or a
// diagnostic sink. Grounded on original_source/Src/Parsing3/SyntaxFacts.cpp
// and Precidence.h, and on the teacher's (*parser).precedence() method
// generalized from devcmd's six-level table to the full C#-like grammar.
package syntaxfacts

import (
	"github.com/aledsdavies/alchemy/syntax"
	"github.com/aledsdavies/alchemy/token"
)

// Precedence levels, low to high (spec.md §4.8).
type Precedence uint8

const (
	PrecExpression Precedence = iota // loosest: accepts any expression
	PrecAssignment                   = PrecExpression
	PrecLambda                       = PrecAssignment // "=>" binds like "=", right-assoc
	PrecConditional Precedence = iota
	PrecCoalescing
	PrecConditionalOr
	PrecConditionalAnd
	PrecLogicalOr
	PrecLogicalXor
	PrecLogicalAnd
	PrecEquality
	PrecRelational
	PrecSwitchWith
	PrecShift
	PrecRange
	PrecAdditive
	PrecMultiplicative
	PrecUnary
	PrecCast
	PrecPrimary
)

// BinaryPrecedence returns the precedence of k as a binary operator, and
// whether k is a binary operator at all.
func BinaryPrecedence(k token.Kind) (Precedence, bool) {
	switch k {
	case token.BarBarToken:
		return PrecConditionalOr, true
	case token.AmpersandAmpersandToken:
		return PrecConditionalAnd, true
	case token.BarToken:
		return PrecLogicalOr, true
	case token.CaretToken:
		return PrecLogicalXor, true
	case token.AmpersandToken:
		return PrecLogicalAnd, true
	case token.EqualsEqualsToken, token.ExclamationEqualsToken:
		return PrecEquality, true
	case token.LessThanToken, token.LessThanEqualsToken, token.GreaterThanToken, token.GreaterThanEqualsToken,
		token.IsKeyword, token.AsKeyword:
		return PrecRelational, true
	case token.LessThanLessThanToken, token.GreaterThanGreaterThanToken, token.GreaterThanGreaterThanGreaterThanToken:
		return PrecShift, true
	case token.DotDotToken:
		return PrecRange, true
	case token.PlusToken, token.MinusToken:
		return PrecAdditive, true
	case token.AsteriskToken, token.SlashToken, token.PercentToken:
		return PrecMultiplicative, true
	}
	return 0, false
}

// IsRightAssociative reports whether operators at prec associate right to
// left: all assignments, `??`, and `?:` (spec.md §4.8).
func IsRightAssociative(prec Precedence) bool {
	return prec == PrecAssignment || prec == PrecCoalescing || prec == PrecConditional
}

// IsAssignmentOperator reports whether k starts an assignment expression.
func IsAssignmentOperator(k token.Kind) bool {
	switch k {
	case token.EqualsToken, token.PlusEqualsToken, token.MinusEqualsToken, token.AsteriskEqualsToken,
		token.SlashEqualsToken, token.PercentEqualsToken, token.AmpersandEqualsToken, token.BarEqualsToken,
		token.CaretEqualsToken, token.LessThanLessThanEqualsToken, token.QuestionQuestionEqualsToken,
		token.GreaterThanGreaterThanEqualsToken, token.GreaterThanGreaterThanGreaterThanEqualsToken:
		return true
	}
	return false
}

// AssignmentExpressionKind maps an assignment-operator token to its node kind.
func AssignmentExpressionKind(k token.Kind) syntax.Kind {
	if IsAssignmentOperator(k) {
		return syntax.KindAssignmentExpression
	}
	return syntax.KindNone
}

// PrefixUnaryExpressionKind maps a prefix-operator token to its node kind,
// or KindNone if k cannot start a prefix unary expression.
func PrefixUnaryExpressionKind(k token.Kind) syntax.Kind {
	switch k {
	case token.PlusToken, token.MinusToken, token.BangToken, token.TildeToken,
		token.PlusPlusToken, token.MinusMinusToken:
		return syntax.KindPrefixUnaryExpression
	}
	return syntax.KindNone
}

// PostfixUnaryExpressionKind maps a postfix-operator token to its node kind.
func PostfixUnaryExpressionKind(k token.Kind) syntax.Kind {
	switch k {
	case token.PlusPlusToken, token.MinusMinusToken:
		return syntax.KindPostfixUnaryExpression
	}
	return syntax.KindNone
}

// BinaryExpressionKind maps a binary-operator token to its node kind.
func BinaryExpressionKind(k token.Kind) syntax.Kind {
	if _, ok := BinaryPrecedence(k); ok {
		return syntax.KindBinaryExpression
	}
	return syntax.KindNone
}

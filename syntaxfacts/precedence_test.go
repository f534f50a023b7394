package syntaxfacts

import (
	"testing"

	"github.com/aledsdavies/alchemy/syntax"
	"github.com/aledsdavies/alchemy/token"
	"github.com/stretchr/testify/assert"
)

func TestBinaryPrecedenceOrdering(t *testing.T) {
	mulPrec, ok := BinaryPrecedence(token.AsteriskToken)
	assert.True(t, ok)
	addPrec, ok := BinaryPrecedence(token.PlusToken)
	assert.True(t, ok)
	assert.Greater(t, int(mulPrec), int(addPrec), "multiplicative must bind tighter than additive")

	orPrec, _ := BinaryPrecedence(token.BarBarToken)
	andPrec, _ := BinaryPrecedence(token.AmpersandAmpersandToken)
	assert.Greater(t, int(andPrec), int(orPrec), "conditional-and must bind tighter than conditional-or")
}

func TestBinaryPrecedenceRejectsNonOperator(t *testing.T) {
	_, ok := BinaryPrecedence(token.SemicolonToken)
	assert.False(t, ok)
}

func TestIsRightAssociative(t *testing.T) {
	assert.True(t, IsRightAssociative(PrecAssignment))
	assert.True(t, IsRightAssociative(PrecCoalescing))
	assert.True(t, IsRightAssociative(PrecConditional))
	assert.False(t, IsRightAssociative(PrecAdditive))
}

func TestIsAssignmentOperator(t *testing.T) {
	assert.True(t, IsAssignmentOperator(token.EqualsToken))
	assert.True(t, IsAssignmentOperator(token.PlusEqualsToken))
	assert.True(t, IsAssignmentOperator(token.QuestionQuestionEqualsToken))
	assert.False(t, IsAssignmentOperator(token.EqualsEqualsToken))
}

func TestAssignmentExpressionKind(t *testing.T) {
	assert.Equal(t, syntax.KindAssignmentExpression, AssignmentExpressionKind(token.EqualsToken))
	assert.Equal(t, syntax.KindNone, AssignmentExpressionKind(token.PlusToken))
}

func TestPrefixUnaryExpressionKind(t *testing.T) {
	assert.Equal(t, syntax.KindPrefixUnaryExpression, PrefixUnaryExpressionKind(token.BangToken))
	assert.Equal(t, syntax.KindPrefixUnaryExpression, PrefixUnaryExpressionKind(token.PlusPlusToken))
	assert.Equal(t, syntax.KindNone, PrefixUnaryExpressionKind(token.SlashToken))
}

func TestPostfixUnaryExpressionKind(t *testing.T) {
	assert.Equal(t, syntax.KindPostfixUnaryExpression, PostfixUnaryExpressionKind(token.MinusMinusToken))
	assert.Equal(t, syntax.KindNone, PostfixUnaryExpressionKind(token.BangToken))
}

func TestBinaryExpressionKind(t *testing.T) {
	assert.Equal(t, syntax.KindBinaryExpression, BinaryExpressionKind(token.PlusToken))
	assert.Equal(t, syntax.KindNone, BinaryExpressionKind(token.EqualsToken))
}

func TestRelationalPrecedenceIncludesIsAndAs(t *testing.T) {
	isPrec, ok := BinaryPrecedence(token.IsKeyword)
	assert.True(t, ok)
	asPrec, ok := BinaryPrecedence(token.AsKeyword)
	assert.True(t, ok)
	assert.Equal(t, isPrec, asPrec)
	assert.Equal(t, PrecRelational, isPrec)
}

package syntaxfacts

import (
	"testing"

	"github.com/aledsdavies/alchemy/syntax"
	"github.com/aledsdavies/alchemy/token"
	"github.com/stretchr/testify/assert"
)

func TestIsPredefinedType(t *testing.T) {
	assert.True(t, IsPredefinedType(token.IntKeyword))
	assert.True(t, IsPredefinedType(token.StringKeyword))
	assert.False(t, IsPredefinedType(token.IdentifierToken))
	assert.False(t, IsPredefinedType(token.ClassKeyword))
}

func TestIsContextualKeywordDelegatesToKind(t *testing.T) {
	assert.True(t, IsContextualKeyword(token.WhereKeyword))
	assert.False(t, IsContextualKeyword(token.ClassKeyword))
}

func TestIsBinaryExpressionOperator(t *testing.T) {
	assert.True(t, IsBinaryExpressionOperator(token.PlusToken))
	assert.False(t, IsBinaryExpressionOperator(token.BangToken))
}

func TestCanStartExpression(t *testing.T) {
	for _, k := range []token.Kind{
		token.IdentifierToken, token.NumericLiteralToken, token.OpenParenToken,
		token.BangToken, token.NewKeyword, token.ThrowKeyword, token.IntKeyword,
	} {
		assert.True(t, CanStartExpression(k), "%v must start an expression", k)
	}
	for _, k := range []token.Kind{token.SemicolonToken, token.CloseBraceToken, token.CommaToken} {
		assert.False(t, CanStartExpression(k), "%v must not start an expression", k)
	}
}

func TestLiteralExpressionKind(t *testing.T) {
	assert.Equal(t, syntax.KindLiteralExpression, LiteralExpressionKind(token.NumericLiteralToken))
	assert.Equal(t, syntax.KindLiteralExpression, LiteralExpressionKind(token.TrueKeyword))
	assert.Equal(t, syntax.KindNone, LiteralExpressionKind(token.IdentifierToken))
}

func TestCanFollowCastRejectsBinaryContinuations(t *testing.T) {
	assert.False(t, CanFollowCast(token.PlusEqualsToken))
	assert.False(t, CanFollowCast(token.SemicolonToken))
	assert.False(t, CanFollowCast(token.EndOfFileToken))
}

func TestCanFollowCastAcceptsExpressionStarts(t *testing.T) {
	assert.True(t, CanFollowCast(token.IdentifierToken))
	assert.True(t, CanFollowCast(token.NumericLiteralToken))
	assert.True(t, CanFollowCast(token.MinusToken))
}

func TestGetAccessorKind(t *testing.T) {
	assert.Equal(t, syntax.KindGetAccessorDeclaration, GetAccessorKind(token.GetKeyword))
	assert.Equal(t, syntax.KindSetAccessorDeclaration, GetAccessorKind(token.SetKeyword))
	assert.Equal(t, syntax.KindInitAccessorDeclaration, GetAccessorKind(token.InitKeyword))
	assert.Equal(t, syntax.KindNone, GetAccessorKind(token.IdentifierToken))
}

func TestPostGenericCloseFollowSet(t *testing.T) {
	assert.True(t, PostGenericCloseFollowSet(token.OpenParenToken))
	assert.True(t, PostGenericCloseFollowSet(token.EndOfFileToken))
	assert.False(t, PostGenericCloseFollowSet(token.PlusToken))
	assert.False(t, PostGenericCloseFollowSet(token.IdentifierToken))
}

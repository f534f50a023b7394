package syntaxfacts

import (
	"github.com/aledsdavies/alchemy/syntax"
	"github.com/aledsdavies/alchemy/token"
)

// IsPredefinedType reports whether k spells a built-in type keyword.
func IsPredefinedType(k token.Kind) bool {
	switch k {
	case token.VoidKeyword, token.IntKeyword, token.LongKeyword, token.UIntKeyword, token.ULongKeyword,
		token.FloatKeyword, token.DoubleKeyword, token.BoolKeyword, token.CharKeyword,
		token.StringKeyword, token.ObjectKeyword:
		return true
	}
	return false
}

// IsContextualKeyword reports whether k is only a keyword in specific
// grammar positions (spec.md glossary).
func IsContextualKeyword(k token.Kind) bool { return k.IsContextualKeyword() }

// IsBinaryExpressionOperator reports whether k can appear as a binary operator.
func IsBinaryExpressionOperator(k token.Kind) bool {
	_, ok := BinaryPrecedence(k)
	return ok
}

// CanStartExpression reports whether k can be the first token of an
// expression (used by statement/argument-list dispatch and recovery).
func CanStartExpression(k token.Kind) bool {
	switch k {
	case token.IdentifierToken, token.NumericLiteralToken, token.StringLiteralToken, token.CharacterLiteralToken,
		token.InterpolatedStringStart, token.TrueKeyword, token.FalseKeyword, token.NullKeyword,
		token.ThisKeyword, token.BaseKeyword, token.NewKeyword, token.TypeofKeyword, token.SizeofKeyword,
		token.DefaultKeyword, token.StackallocKeyword, token.OpenParenToken, token.OpenBracketToken,
		token.PlusToken, token.MinusToken, token.BangToken, token.TildeToken, token.PlusPlusToken,
		token.MinusMinusToken, token.CaretToken, token.AmpersandToken, token.AsteriskToken,
		token.ThrowKeyword, token.RefKeyword:
		return true
	}
	return IsPredefinedType(k)
}

// LiteralExpressionKind maps a literal/keyword-literal token kind to its
// expression node kind, or KindNone.
func LiteralExpressionKind(k token.Kind) syntax.Kind {
	switch k {
	case token.NumericLiteralToken, token.StringLiteralToken, token.CharacterLiteralToken,
		token.TrueKeyword, token.FalseKeyword, token.NullKeyword:
		return syntax.KindLiteralExpression
	}
	return syntax.KindNone
}

// CanFollowCast reports whether k can legally follow a parenthesized type in
// `(T) x`, disambiguating a cast from a parenthesized expression. This
// mirrors SyntaxFacts::CanFollowCast in the original implementation: it
// returns false for the listed tokens that close an expression or continue
// it as an equality, logical, shift, coalescing or assignment operator, and
// true for every other token, including '+', '-', '*', '<' and '>'.
func CanFollowCast(k token.Kind) bool {
	switch k {
	case token.AsKeyword, token.IsKeyword, token.SemicolonToken, token.CloseParenToken, token.CloseBracketToken,
		token.OpenBraceToken, token.CloseBraceToken, token.CommaToken, token.ColonToken, token.EqualsEqualsToken,
		token.ExclamationEqualsToken, token.BarBarToken, token.AmpersandAmpersandToken, token.BarToken,
		token.CaretToken, token.LessThanLessThanToken, token.GreaterThanGreaterThanToken, token.QuestionQuestionToken,
		token.EqualsToken, token.PlusEqualsToken, token.MinusEqualsToken, token.AsteriskEqualsToken,
		token.SlashEqualsToken, token.PercentEqualsToken, token.AmpersandEqualsToken, token.BarEqualsToken,
		token.CaretEqualsToken, token.EndOfFileToken:
		return false
	}
	return true
}

// GetAccessorKind maps `get`/`set`/`init` to their accessor node kind.
func GetAccessorKind(contextual token.Kind) syntax.Kind {
	switch contextual {
	case token.GetKeyword:
		return syntax.KindGetAccessorDeclaration
	case token.SetKeyword:
		return syntax.KindSetAccessorDeclaration
	case token.InitKeyword:
		return syntax.KindInitAccessorDeclaration
	}
	return syntax.KindNone
}

// PostGenericCloseFollowSet is the set of tokens that, found immediately
// after a tentatively-closed `>`, confirm a type-argument list rather than
// a pair of less-than/greater-than comparisons (spec.md §4.8).
func PostGenericCloseFollowSet(k token.Kind) bool {
	switch k {
	case token.OpenParenToken, token.CloseParenToken, token.CloseBracketToken, token.CloseBraceToken,
		token.ColonToken, token.SemicolonToken, token.CommaToken, token.DotToken, token.QuestionToken,
		token.EqualsEqualsToken, token.ExclamationEqualsToken, token.BarToken, token.CaretToken,
		token.AmpersandAmpersandToken, token.BarBarToken, token.AmpersandToken, token.OpenBracketToken,
		token.LessThanToken, token.LessThanEqualsToken, token.GreaterThanEqualsToken,
		token.IsKeyword, token.AsKeyword, token.OpenBraceToken, token.EqualsGreaterThanToken,
		token.EndOfFileToken:
		return true
	}
	return false
}

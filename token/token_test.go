package token

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFlagsHas(t *testing.T) {
	f := FlagMissing | FlagHasLeadingTrivia
	assert.True(t, f.Has(FlagMissing))
	assert.True(t, f.Has(FlagHasLeadingTrivia))
	assert.False(t, f.Has(FlagContainsError))
	assert.False(t, f.Has(FlagOmitted))
}

func TestTokenPredicates(t *testing.T) {
	missing := Token{Flags: FlagMissing}
	assert.True(t, missing.IsMissing())
	assert.False(t, missing.IsOmitted())
	assert.False(t, missing.ContainsError())

	dirty := Token{Flags: FlagContainsError | FlagOmitted}
	assert.True(t, dirty.IsOmitted())
	assert.True(t, dirty.ContainsError())
	assert.False(t, dirty.IsMissing())
}

func TestSpanLen(t *testing.T) {
	s := Span{Start: 3, End: 10}
	assert.Equal(t, 7, s.Len())

	zero := Span{Start: 5, End: 5}
	assert.Equal(t, 0, zero.Len())
}

func TestKindString(t *testing.T) {
	assert.Equal(t, "ClassKeyword", ClassKeyword.String())
	assert.Equal(t, "IdentifierToken", IdentifierToken.String())
	assert.Equal(t, "Kind(?)", Kind(65535).String())
}

func TestKindIsReservedKeyword(t *testing.T) {
	assert.True(t, ClassKeyword.IsReservedKeyword())
	assert.True(t, StackallocKeyword.IsReservedKeyword())
	assert.False(t, IdentifierToken.IsReservedKeyword())
	assert.False(t, WhereKeyword.IsReservedKeyword(), "contextual keywords are not reserved")
}

func TestKindIsContextualKeyword(t *testing.T) {
	assert.True(t, WhereKeyword.IsContextualKeyword())
	assert.True(t, VarKeyword.IsContextualKeyword())
	assert.True(t, AndKeyword.IsContextualKeyword())
	assert.True(t, NotKeyword.IsContextualKeyword())
	assert.False(t, ClassKeyword.IsContextualKeyword())
	assert.False(t, IdentifierToken.IsContextualKeyword())
}

func TestKindIsTrivia(t *testing.T) {
	assert.True(t, WhitespaceTrivia.IsTrivia())
	assert.True(t, SkippedTokensTrivia.IsTrivia())
	assert.True(t, SingleLineCommentTrivia.IsTrivia())
	assert.False(t, IdentifierToken.IsTrivia())
	assert.False(t, EndOfFileToken.IsTrivia())
}

// every non-trivia, non-sentinel Kind used by name in this package has a
// name table entry; a blank entry would silently fall back to "Kind(?)".
func TestAllKeywordKindsHaveNames(t *testing.T) {
	for k := NamespaceKeyword; k <= NotKeyword; k++ {
		assert.NotEqual(t, "Kind(?)", k.String(), "kind %d missing from kindNames", k)
	}
}

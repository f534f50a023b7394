package syntax

import (
	"testing"

	"github.com/aledsdavies/alchemy/token"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func tok(id token.ID, flags token.Flags) token.Token {
	return token.Token{ID: id, Kind: token.IdentifierToken, Flags: flags, Span: token.Span{Start: token.Position(id), End: token.Position(id) + 1}}
}

func TestNewComputesSpanFromTokenChildren(t *testing.T) {
	n := New(KindIdentifierName, TokenChild(tok(3, 0)), TokenChild(tok(4, 0)))
	assert.Equal(t, token.ID(3), n.FirstTokenID)
	assert.Equal(t, token.ID(4), n.LastTokenID)
	assert.False(t, n.IsMissing())
	assert.False(t, n.ContainsDiagnostics())
}

func TestNewPropagatesContainsDiagnostics(t *testing.T) {
	n := New(KindIdentifierName, TokenChild(tok(0, token.FlagContainsError)))
	assert.True(t, n.ContainsDiagnostics())
	assert.False(t, n.IsMissing())
}

func TestNewMarksMissingOnlyWhenAllChildrenMissing(t *testing.T) {
	allMissing := New(KindIdentifierName, TokenChild(tok(0, token.FlagMissing)), TokenChild(tok(1, token.FlagMissing)))
	assert.True(t, allMissing.IsMissing())

	partial := New(KindIdentifierName, TokenChild(tok(0, token.FlagMissing)), TokenChild(tok(1, 0)))
	assert.False(t, partial.IsMissing(), "missing must not propagate when at least one child is present")
}

func TestNewSkipsNilNodeChild(t *testing.T) {
	n := New(KindBlock, NodeChild(nil), TokenChild(tok(5, 0)))
	assert.Equal(t, token.ID(5), n.FirstTokenID)
	assert.Equal(t, token.ID(5), n.LastTokenID)
}

func TestNewNestedNodeChildPropagatesFlags(t *testing.T) {
	inner := New(KindIdentifierName, TokenChild(tok(0, token.FlagMissing)))
	outer := New(KindBlock, NodeChild(inner))
	assert.True(t, outer.IsMissing())
}

func TestNewListChildSpan(t *testing.T) {
	item1 := New(KindIdentifierName, TokenChild(tok(0, 0)))
	item2 := New(KindIdentifierName, TokenChild(tok(1, token.FlagContainsError)))
	n := New(KindBlock, ListChild(&List{Items: []*Node{item1, item2}}))
	assert.Equal(t, token.ID(0), n.FirstTokenID)
	assert.Equal(t, token.ID(1), n.LastTokenID)
	assert.True(t, n.ContainsDiagnostics())
}

func TestNewEmptyListChildIsSkipped(t *testing.T) {
	n := New(KindBlock, ListChild(&List{}), TokenChild(tok(9, 0)))
	assert.Equal(t, token.ID(9), n.FirstTokenID)
}

func TestSeparatedListValidAndCounts(t *testing.T) {
	a := New(KindIdentifierName, TokenChild(tok(0, 0)))
	b := New(KindIdentifierName, TokenChild(tok(2, 0)))
	comma := tok(1, 0)

	noTrailing := &SeparatedList{Items: []*Node{a, b}, Separators: []token.Token{comma}}
	assert.True(t, noTrailing.Valid())
	assert.False(t, noTrailing.HasTrailingSeparator())
	assert.Equal(t, 1, noTrailing.SeparatorCount())

	trailing := &SeparatedList{Items: []*Node{a, b}, Separators: []token.Token{comma, comma}}
	assert.True(t, trailing.Valid())
	assert.True(t, trailing.HasTrailingSeparator())

	invalid := &SeparatedList{Items: []*Node{a, b}, Separators: []token.Token{}}
	assert.False(t, invalid.Valid())
}

func TestNewSeparatedListChildSpanIncludesSeparators(t *testing.T) {
	a := New(KindIdentifierName, TokenChild(tok(0, 0)))
	b := New(KindIdentifierName, TokenChild(tok(2, 0)))
	comma := tok(1, 0)
	sep := &SeparatedList{Items: []*Node{a, b}, Separators: []token.Token{comma, tok(3, 0)}}

	n := New(KindBlock, SepListChild(sep))
	assert.Equal(t, token.ID(0), n.FirstTokenID)
	require.Equal(t, token.ID(3), n.LastTokenID, "trailing separator token must extend the span")
}

func TestNewEmptySeparatedListChildIsSkipped(t *testing.T) {
	n := New(KindBlock, SepListChild(&SeparatedList{}), TokenChild(tok(7, 0)))
	assert.Equal(t, token.ID(7), n.FirstTokenID)
}

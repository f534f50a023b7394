package keyword

import (
	"testing"

	"github.com/aledsdavies/alchemy/token"
	"github.com/stretchr/testify/assert"
)

func TestLookupReservedKeyword(t *testing.T) {
	kind, contextual := Lookup("class")
	assert.Equal(t, token.ClassKeyword, kind)
	assert.Equal(t, token.None, contextual, "a reserved keyword never carries a contextual kind")
}

func TestLookupContextualKeyword(t *testing.T) {
	kind, contextual := Lookup("where")
	assert.Equal(t, token.IdentifierToken, kind, "contextual keywords always lex as IdentifierToken")
	assert.Equal(t, token.WhereKeyword, contextual)
}

func TestLookupPlainIdentifier(t *testing.T) {
	kind, contextual := Lookup("myVariable")
	assert.Equal(t, token.IdentifierToken, kind)
	assert.Equal(t, token.None, contextual)
}

func TestLookupOutsideLengthBounds(t *testing.T) {
	// shorter than the shortest keyword and longer than the longest
	kind, contextual := Lookup("a")
	assert.Equal(t, token.IdentifierToken, kind)
	assert.Equal(t, token.None, contextual)

	kind, contextual = Lookup("thisIsDefinitelyNotAKeyword")
	assert.Equal(t, token.IdentifierToken, kind)
	assert.Equal(t, token.None, contextual)
}

func TestPatternCombinatorsAreContextual(t *testing.T) {
	for _, text := range []string{"and", "or", "not"} {
		kind, contextual := Lookup(text)
		assert.Equal(t, token.IdentifierToken, kind, "%q must lex as IdentifierToken", text)
		assert.NotEqual(t, token.None, contextual, "%q must carry a non-None contextual kind", text)
	}
}

func TestIsContextualKeyword(t *testing.T) {
	assert.True(t, IsContextualKeyword("var"))
	assert.True(t, IsContextualKeyword("nameof"))
	assert.False(t, IsContextualKeyword("class"), "reserved keywords are not contextual keywords")
	assert.False(t, IsContextualKeyword("notAKeyword"))
}

func TestAllReservedAndContextualNamesRoundTrip(t *testing.T) {
	for text, kind := range reserved {
		gotKind, gotContextual := Lookup(text)
		assert.Equal(t, kind, gotKind, "reserved word %q", text)
		assert.Equal(t, token.None, gotContextual, "reserved word %q", text)
	}
	for text, kind := range contextualKw {
		gotKind, gotContextual := Lookup(text)
		assert.Equal(t, token.IdentifierToken, gotKind, "contextual word %q", text)
		assert.Equal(t, kind, gotContextual, "contextual word %q", text)
	}
}

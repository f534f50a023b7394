package unicodetbl

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsIdentifierStart(t *testing.T) {
	assert.True(t, IsIdentifierStart('_'))
	assert.True(t, IsIdentifierStart('a'))
	assert.True(t, IsIdentifierStart('Z'))
	assert.True(t, IsIdentifierStart('é'), "Ll letters beyond ASCII must start an identifier")
	assert.True(t, IsIdentifierStart('λ'), "Greek Ll")
	assert.False(t, IsIdentifierStart('0'), "a digit may continue but never start an identifier")
	assert.False(t, IsIdentifierStart(' '))
	assert.False(t, IsIdentifierStart('$'))
}

func TestIsIdentifierPart(t *testing.T) {
	assert.True(t, IsIdentifierPart('0'))
	assert.True(t, IsIdentifierPart('_'))
	assert.True(t, IsIdentifierPart('a'))
	assert.False(t, IsIdentifierPart(' '))
	assert.False(t, IsIdentifierPart('+'))
}

func TestIsWhitespace(t *testing.T) {
	assert.True(t, IsWhitespace(' '))
	assert.True(t, IsWhitespace('\t'))
	assert.False(t, IsWhitespace('\n'), "newlines are line terminators, not horizontal whitespace")
	assert.False(t, IsWhitespace('a'))
}

func TestIsNewLine(t *testing.T) {
	for _, r := range []rune{'\r', '\n', ' ', ' '} {
		assert.True(t, IsNewLine(r))
	}
	assert.False(t, IsNewLine('x'))
}

func TestDigitClassifiers(t *testing.T) {
	assert.True(t, IsDigit('5'))
	assert.False(t, IsDigit('a'))

	assert.True(t, IsHexDigit('f'))
	assert.True(t, IsHexDigit('F'))
	assert.True(t, IsHexDigit('9'))
	assert.False(t, IsHexDigit('g'))

	assert.True(t, IsBinaryDigit('0'))
	assert.True(t, IsBinaryDigit('1'))
	assert.False(t, IsBinaryDigit('2'))
}

package textwindow

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPositionAndAdvance(t *testing.T) {
	w := New([]byte("héllo"))
	require.Equal(t, 0, w.Position())

	r, width, ok := w.TryPeekCodepoint()
	require.True(t, ok)
	assert.Equal(t, 'h', r)
	assert.Equal(t, 1, width)

	w.Advance(width)
	assert.Equal(t, 1, w.Position())

	r, width, ok = w.TryPeekCodepoint()
	require.True(t, ok)
	assert.Equal(t, 'é', r)
	assert.Equal(t, 2, width) // é is two UTF-8 bytes
}

func TestAtEndAndLen(t *testing.T) {
	w := New([]byte("ab"))
	assert.Equal(t, 2, w.Len())
	assert.False(t, w.AtEnd())
	w.Advance(2)
	assert.True(t, w.AtEnd())
	// advancing past the end clamps rather than overruns
	w.Advance(10)
	assert.Equal(t, 2, w.Position())
}

func TestTryPeekCodepointAtEOF(t *testing.T) {
	w := New([]byte(""))
	_, _, ok := w.TryPeekCodepoint()
	assert.False(t, ok)
}

func TestTryPeekCodepointMalformedUTF8(t *testing.T) {
	w := New([]byte{0xff, 0xfe})
	_, _, ok := w.TryPeekCodepoint()
	assert.False(t, ok)
}

func TestPeekByteOutOfRange(t *testing.T) {
	w := New([]byte("x"))
	assert.Equal(t, byte('x'), w.PeekByte(0))
	assert.Equal(t, byte(0), w.PeekByte(1))
	assert.Equal(t, byte(0), w.PeekByte(-1))
}

func TestTryAdvance(t *testing.T) {
	w := New([]byte("=="))
	ok := w.TryAdvance('=')
	require.True(t, ok)
	assert.Equal(t, 1, w.Position())

	ok = w.TryAdvance('x')
	assert.False(t, ok)
	assert.Equal(t, 1, w.Position(), "a failed TryAdvance must not move the cursor")
}

func TestStartsWith(t *testing.T) {
	w := New([]byte("foobar"))
	assert.True(t, w.StartsWith("foo"))
	assert.False(t, w.StartsWith("bar"))
	w.Advance(3)
	assert.True(t, w.StartsWith("bar"))
	assert.False(t, w.StartsWith("barbaz"), "a prefix longer than the remaining buffer never matches")
}

func TestSliceClampsToBuffer(t *testing.T) {
	w := New([]byte("hello"))
	assert.Equal(t, []byte("hello"), w.Slice(-5, 100))
	assert.Equal(t, []byte("ell"), w.Slice(1, 4))
	assert.Equal(t, []byte{}, w.Slice(4, 2), "an inverted range clamps to empty rather than panicking")
}

func TestResetRewindsCursor(t *testing.T) {
	w := New([]byte("abcdef"))
	w.Advance(4)
	mark := w.Position()
	w.Advance(2)
	assert.True(t, w.AtEnd())
	w.Reset(mark)
	assert.Equal(t, mark, w.Position())
}

// Package textwindow provides a read-only, byte-addressable cursor over a
// UTF-8 source buffer with codepoint-level lookahead (spec.md §4.1).
package textwindow

import "unicode/utf8"

// Window is a read-only view over a source buffer. It owns no memory; the
// caller must keep buf alive for the Window's lifetime.
type Window struct {
	buf []byte
	pos int
}

// New creates a Window positioned at the start of buf.
func New(buf []byte) *Window {
	return &Window{buf: buf}
}

// Position returns the current byte offset.
func (w *Window) Position() int { return w.pos }

// Len returns the total length of the underlying buffer.
func (w *Window) Len() int { return len(w.buf) }

// AtEnd reports whether the cursor has reached the end of the buffer.
func (w *Window) AtEnd() bool { return w.pos >= len(w.buf) }

// Slice returns the raw bytes in [start, end), clamped to the buffer.
func (w *Window) Slice(start, end int) []byte {
	if start < 0 {
		start = 0
	}
	if end > len(w.buf) {
		end = len(w.buf)
	}
	if start > end {
		start = end
	}
	return w.buf[start:end]
}

// PeekByte returns the byte at pos+offset, or 0 if that position is at or
// past the end of the buffer. offset may be negative to look behind.
func (w *Window) PeekByte(offset int) byte {
	i := w.pos + offset
	if i < 0 || i >= len(w.buf) {
		return 0
	}
	return w.buf[i]
}

// TryPeekCodepoint decodes the codepoint starting at the cursor without
// advancing. It returns ok == false on EOF or malformed UTF-8; the caller
// (the lexer) decides whether that becomes a bad-character token.
func (w *Window) TryPeekCodepoint() (r rune, width int, ok bool) {
	if w.AtEnd() {
		return 0, 0, false
	}
	r, width = utf8.DecodeRune(w.buf[w.pos:])
	if r == utf8.RuneError && width <= 1 {
		return 0, 0, false
	}
	return r, width, true
}

// Advance moves the cursor forward by n bytes, clamping at the end.
func (w *Window) Advance(n int) {
	w.pos += n
	if w.pos > len(w.buf) {
		w.pos = len(w.buf)
	}
}

// TryAdvance advances past b if it is the current byte, returning whether it did.
func (w *Window) TryAdvance(b byte) bool {
	if w.PeekByte(0) == b {
		w.Advance(1)
		return true
	}
	return false
}

// StartsWith reports whether the bytes at the cursor equal s, without advancing.
func (w *Window) StartsWith(s string) bool {
	if w.pos+len(s) > len(w.buf) {
		return false
	}
	return string(w.buf[w.pos:w.pos+len(s)]) == s
}

// Reset rewinds the cursor to an earlier position (used by reset points).
func (w *Window) Reset(pos int) { w.pos = pos }

package lexer

import (
	"strconv"
	"strings"

	"github.com/aledsdavies/alchemy/diagnostics"
	"github.com/aledsdavies/alchemy/token"
)

// lexCharacterLiteral scans 'c', including \-escapes, per spec.md §4.2's
// escape table. Grounded on Scanning.cpp's ScanCharacterLiteral: an empty
// literal ('') and a literal with more than one decoded character are both
// reported but still produce a single CharacterLiteralToken.
func (l *Lexer) lexCharacterLiteral(start int) (token.Token, token.LiteralValue) {
	l.win.Advance(1) // opening '
	var chars []rune
	closed := false
	for !l.win.AtEnd() {
		b := l.win.PeekByte(0)
		if b == '\'' {
			l.win.Advance(1)
			closed = true
			break
		}
		if b == '\r' || b == '\n' {
			break
		}
		if b == '\\' {
			r, ok := l.scanEscape(l.win.Position())
			if ok {
				chars = append(chars, r)
			}
			continue
		}
		r, width, ok := l.win.TryPeekCodepoint()
		if !ok {
			l.win.Advance(1)
			continue
		}
		l.win.Advance(width)
		chars = append(chars, r)
	}
	if !closed {
		l.sink.Report(diagnostics.ErrUnterminatedString, start, l.win.Position(), "")
	}
	switch len(chars) {
	case 0:
		l.sink.Report(diagnostics.ErrEmptyCharacterLiteral, start, l.win.Position(), "")
		return token.Token{Kind: token.CharacterLiteralToken, Span: spanOf(start, l.win.Position())},
			token.LiteralValue{Kind: token.LiteralChar}
	case 1:
		return token.Token{Kind: token.CharacterLiteralToken, Span: spanOf(start, l.win.Position())},
			token.LiteralValue{Kind: token.LiteralChar, I: uint64(chars[0])}
	default:
		l.sink.Report(diagnostics.ErrTooManyCharactersInLiteral, start, l.win.Position(), "")
		return token.Token{Kind: token.CharacterLiteralToken, Span: spanOf(start, l.win.Position())},
			token.LiteralValue{Kind: token.LiteralChar, I: uint64(chars[0])}
	}
}

// lexSimpleOrInterpolatedStart begins a string literal at the opening quote.
// For a plain string it scans the whole literal in one shot (spec.md §4.2);
// for an interpolated string ($"...") it emits InterpolatedStringStart and
// pushes a mode frame so subsequent scanOne calls alternate between text
// chunks and expression holes, per the state machine in spec.md §4.10.
func (l *Lexer) lexSimpleOrInterpolatedStart(start int, interpolated bool) (token.Token, token.LiteralValue) {
	l.win.Advance(1) // opening "
	if !interpolated {
		return l.scanSimpleStringFrom(start)
	}
	l.push(frame{mode: modeInterpolatedChunk, quote: '"'})
	return token.Token{Kind: token.InterpolatedStringStart, Span: spanOf(start, l.win.Position())}, token.LiteralValue{}
}

// scanSimpleStringFrom scans the body and closing quote of a non-interpolated
// string literal whose opening quote ends at the current cursor.
func (l *Lexer) scanSimpleStringFrom(start int) (token.Token, token.LiteralValue) {
	var sb strings.Builder
	closed := false
	for !l.win.AtEnd() {
		b := l.win.PeekByte(0)
		if b == '"' {
			l.win.Advance(1)
			closed = true
			break
		}
		if b == '\r' || b == '\n' {
			break
		}
		if b == '\\' {
			if r, ok := l.scanEscape(l.win.Position()); ok {
				sb.WriteRune(r)
			}
			continue
		}
		r, width, ok := l.win.TryPeekCodepoint()
		if !ok {
			l.win.Advance(1)
			continue
		}
		l.win.Advance(width)
		sb.WriteRune(r)
	}
	if !closed {
		l.sink.Report(diagnostics.ErrUnterminatedString, start, l.win.Position(), "")
	}
	return token.Token{Kind: token.StringLiteralToken, Span: spanOf(start, l.win.Position())},
		token.LiteralValue{Kind: token.LiteralStringChunk, Str: sb.String()}
}

// lexStringBody scans one step of an interpolated string while the mode
// stack's top frame is modeInterpolatedChunk: a run of literal text up to
// the next '{', '}}'/'{{ escape, the closing quote, or a line break. '{{'
// and '}}' decode to a literal brace and stay inside the same chunk; a lone
// '{' opens an interpolation hole and a lone '}' closes the string (it is
// only meaningful as a hole terminator from inside modeInterpolationExpr,
// handled in lexNormal).
func (l *Lexer) lexStringBody() (token.Token, token.LiteralValue) {
	start := l.win.Position()
	if l.win.AtEnd() || l.win.PeekByte(0) == '\r' || l.win.PeekByte(0) == '\n' {
		l.sink.Report(diagnostics.ErrUnterminatedString, start, l.win.Position(), "")
		l.pop()
		return token.Token{Kind: token.InterpolatedStringEnd, Span: spanOf(start, l.win.Position())}, token.LiteralValue{}
	}
	if l.win.PeekByte(0) == '"' {
		l.win.Advance(1)
		l.pop()
		return token.Token{Kind: token.InterpolatedStringEnd, Span: spanOf(start, l.win.Position())}, token.LiteralValue{}
	}
	if l.win.PeekByte(0) == '{' {
		if l.win.PeekByte(1) == '{' {
			l.win.Advance(2)
			return token.Token{Kind: token.InterpolatedStringTextToken, Span: spanOf(start, l.win.Position())},
				token.LiteralValue{Kind: token.LiteralStringChunk, Str: "{"}
		}
		l.win.Advance(1)
		l.push(frame{mode: modeInterpolationExpr})
		return token.Token{Kind: token.InterpolationStart, Span: spanOf(start, l.win.Position())}, token.LiteralValue{}
	}
	if l.win.PeekByte(0) == '}' && l.win.PeekByte(1) == '}' {
		l.win.Advance(2)
		return token.Token{Kind: token.InterpolatedStringTextToken, Span: spanOf(start, l.win.Position())},
			token.LiteralValue{Kind: token.LiteralStringChunk, Str: "}"}
	}
	if l.win.PeekByte(0) == '}' {
		l.win.Advance(1)
		l.pop()
		return token.Token{Kind: token.InterpolatedStringEnd, Span: spanOf(start, l.win.Position())}, token.LiteralValue{}
	}

	var sb strings.Builder
	for !l.win.AtEnd() {
		b := l.win.PeekByte(0)
		if b == '"' || b == '{' || b == '}' || b == '\r' || b == '\n' {
			break
		}
		if b == '\\' {
			if r, ok := l.scanEscape(l.win.Position()); ok {
				sb.WriteRune(r)
			}
			continue
		}
		r, width, ok := l.win.TryPeekCodepoint()
		if !ok {
			l.win.Advance(1)
			continue
		}
		l.win.Advance(width)
		sb.WriteRune(r)
	}
	return token.Token{Kind: token.InterpolatedStringTextToken, Span: spanOf(start, l.win.Position())},
		token.LiteralValue{Kind: token.LiteralStringChunk, Str: sb.String()}
}

// scanEscape decodes one backslash escape starting at the '\\' byte,
// reporting ErrIllegalEscape on an invalid form. Grounded on
// Scanning.cpp's ScanUnicodeEscape: \u takes exactly 4 hex digits, \U takes
// exactly 8 and is range-checked against the 0x10FFFF codepoint ceiling.
func (l *Lexer) scanEscape(start int) (rune, bool) {
	l.win.Advance(1) // backslash
	if l.win.AtEnd() {
		l.sink.Report(diagnostics.ErrIllegalEscape, start, l.win.Position(), "")
		return 0, false
	}
	b := l.win.PeekByte(0)
	switch b {
	case 'n':
		l.win.Advance(1)
		return '\n', true
	case 'r':
		l.win.Advance(1)
		return '\r', true
	case 't':
		l.win.Advance(1)
		return '\t', true
	case '0':
		l.win.Advance(1)
		return 0, true
	case '\\':
		l.win.Advance(1)
		return '\\', true
	case '\'':
		l.win.Advance(1)
		return '\'', true
	case '"':
		l.win.Advance(1)
		return '"', true
	case 'a':
		l.win.Advance(1)
		return '\a', true
	case 'b':
		l.win.Advance(1)
		return '\b', true
	case 'f':
		l.win.Advance(1)
		return '\f', true
	case 'v':
		l.win.Advance(1)
		return '\v', true
	case 'u':
		return l.scanUnicodeEscape(start, 4)
	case 'U':
		return l.scanUnicodeEscape(start, 8)
	case 'x':
		return l.scanHexEscape(start)
	}
	l.win.Advance(1)
	l.sink.Report(diagnostics.ErrIllegalEscape, start, l.win.Position(), "")
	return 0, false
}

func (l *Lexer) scanUnicodeEscape(start int, digits int) (rune, bool) {
	l.win.Advance(1) // 'u' or 'U'
	hexStart := l.win.Position()
	n := 0
	for n < digits {
		b := l.win.PeekByte(0)
		if !isHexByte(b) {
			break
		}
		l.win.Advance(1)
		n++
	}
	if n != digits {
		l.sink.Report(diagnostics.ErrIllegalEscape, start, l.win.Position(), "")
		return 0, false
	}
	v, err := strconv.ParseUint(string(l.src[hexStart:l.win.Position()]), 16, 32)
	if err != nil || v > 0x0010FFFF {
		l.sink.Report(diagnostics.ErrIllegalEscape, start, l.win.Position(), "")
		return 0, false
	}
	return rune(v), true
}

func (l *Lexer) scanHexEscape(start int) (rune, bool) {
	l.win.Advance(1) // 'x'
	hexStart := l.win.Position()
	for isHexByte(l.win.PeekByte(0)) {
		l.win.Advance(1)
	}
	if l.win.Position() == hexStart {
		l.sink.Report(diagnostics.ErrIllegalEscape, start, l.win.Position(), "")
		return 0, false
	}
	v, err := strconv.ParseUint(string(l.src[hexStart:l.win.Position()]), 16, 32)
	if err != nil {
		l.sink.Report(diagnostics.ErrIllegalEscape, start, l.win.Position(), "")
		return 0, false
	}
	return rune(v), true
}

func isHexByte(b byte) bool {
	return (b >= '0' && b <= '9') || (b >= 'a' && b <= 'f') || (b >= 'A' && b <= 'F')
}

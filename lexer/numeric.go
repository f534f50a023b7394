package lexer

import (
	"strconv"
	"strings"

	"github.com/aledsdavies/alchemy/diagnostics"
	"github.com/aledsdavies/alchemy/token"
	"github.com/aledsdavies/alchemy/unicodetbl"
)

// lexNumericLiteral scans a decimal, hex (0x), or binary (0b) integer, or a
// decimal real literal, with underscore digit separators and a type suffix,
// then decodes its value. Grounded on
// original_source/Src/Parsing2/Scanning.cpp's ScanNumericLiteralSingleInteger,
// BufferNumber, GetValueUInt64 and GetDoubleValue: digits are scanned with
// underscores stripped before conversion, and a misplaced separator (at the
// start/end of a digit run, or adjacent to a radix prefix) is reported but
// does not abort the scan.
func (l *Lexer) lexNumericLiteral(start int) (token.Token, token.LiteralValue) {
	isHex, isBinary := false, false
	if l.win.PeekByte(0) == '0' && (l.win.PeekByte(1) == 'x' || l.win.PeekByte(1) == 'X') {
		isHex = true
		l.win.Advance(2)
	} else if l.win.PeekByte(0) == '0' && (l.win.PeekByte(1) == 'b' || l.win.PeekByte(1) == 'B') {
		isBinary = true
		l.win.Advance(2)
	}

	digitOK := func(b byte) bool {
		switch {
		case isHex:
			return unicodetbl.IsHexDigit(rune(b))
		case isBinary:
			return unicodetbl.IsBinaryDigit(rune(b))
		default:
			return unicodetbl.IsDigit(rune(b))
		}
	}

	digitsStart := l.win.Position()
	sawDigit, sawUnderscore, misplaced := l.scanDigitRun(digitOK)
	if (isHex || isBinary) && !sawDigit {
		l.sink.Report(diagnostics.ErrInvalidNumber, start, l.win.Position(), "")
	}

	isReal := false
	if !isHex && !isBinary {
		if l.win.PeekByte(0) == '.' && unicodetbl.IsDigit(rune(l.win.PeekByte(1))) {
			isReal = true
			l.win.Advance(1)
			_, u2, m2 := l.scanDigitRun(func(b byte) bool { return unicodetbl.IsDigit(rune(b)) })
			sawUnderscore = sawUnderscore || u2
			misplaced = misplaced || m2
		}
		if l.win.PeekByte(0) == 'e' || l.win.PeekByte(0) == 'E' {
			save := l.win.Position()
			l.win.Advance(1)
			if l.win.PeekByte(0) == '+' || l.win.PeekByte(0) == '-' {
				l.win.Advance(1)
			}
			sawExp, _, _ := l.scanDigitRun(func(b byte) bool { return unicodetbl.IsDigit(rune(b)) })
			if !sawExp {
				l.win.Reset(save)
			} else {
				isReal = true
			}
		}
	}

	if misplaced {
		l.sink.Report(diagnostics.ErrUnderscoreDigitSeparator, digitsStart, l.win.Position(), "")
	}

	suffix := l.scanNumericSuffix()

	text := string(l.src[start:l.win.Position()])
	clean := strings.ReplaceAll(text, "_", "")
	lit := l.decodeNumeric(clean, isHex, isBinary, isReal, suffix, start)

	return token.Token{Kind: token.NumericLiteralToken, Span: spanOf(start, l.win.Position())}, lit
}

// scanDigitRun consumes a maximal run of digitOK bytes interleaved with `_`
// separators, reporting whether any digit was seen, whether an underscore
// was seen, and whether a separator was misplaced (leading, trailing, or
// doubled).
func (l *Lexer) scanDigitRun(digitOK func(byte) bool) (sawDigit, sawUnderscore, misplaced bool) {
	lastWasDigit := false
	firstCharWasUnderscore := false
	first := true
	for {
		b := l.win.PeekByte(0)
		switch {
		case digitOK(b):
			l.win.Advance(1)
			sawDigit = true
			lastWasDigit = true
			first = false
		case b == '_':
			sawUnderscore = true
			if first {
				firstCharWasUnderscore = true
			}
			if !lastWasDigit {
				misplaced = true
			}
			l.win.Advance(1)
			lastWasDigit = false
			first = false
		default:
			if sawUnderscore && !lastWasDigit {
				misplaced = true // trailing underscore
			}
			if firstCharWasUnderscore {
				misplaced = true
			}
			return
		}
	}
}

type numericSuffix uint8

const (
	suffixNone numericSuffix = iota
	suffixU
	suffixL
	suffixUL
	suffixF
	suffixD
	suffixM
)

func (l *Lexer) scanNumericSuffix() numericSuffix {
	b := l.win.PeekByte(0)
	switch b {
	case 'u', 'U':
		l.win.Advance(1)
		if c := l.win.PeekByte(0); c == 'l' || c == 'L' {
			l.win.Advance(1)
			return suffixUL
		}
		return suffixU
	case 'l', 'L':
		l.win.Advance(1)
		if c := l.win.PeekByte(0); c == 'u' || c == 'U' {
			l.win.Advance(1)
			return suffixUL
		}
		return suffixL
	case 'f', 'F':
		l.win.Advance(1)
		return suffixF
	case 'd', 'D':
		l.win.Advance(1)
		return suffixD
	case 'm', 'M':
		l.win.Advance(1)
		return suffixM
	}
	return suffixNone
}

// decodeNumeric parses the underscore-stripped text into a LiteralValue,
// reporting ErrIntegerOverflow or ErrInvalidReal and substituting a zero
// value rather than aborting (spec.md §4.4: a malformed literal is still one
// token, with its value best-effort and an attached diagnostic).
func (l *Lexer) decodeNumeric(clean string, isHex, isBinary, isReal bool, suffix numericSuffix, start int) token.LiteralValue {
	if isReal || suffix == suffixF || suffix == suffixD || suffix == suffixM {
		body := strings.TrimRight(clean, "fFdDmM")
		f, err := strconv.ParseFloat(body, 64)
		if err != nil {
			l.sink.Report(diagnostics.ErrInvalidReal, start, l.win.Position(), "")
			return token.LiteralValue{Kind: token.LiteralF64}
		}
		if suffix == suffixF {
			return token.LiteralValue{Kind: token.LiteralF32, F: f}
		}
		return token.LiteralValue{Kind: token.LiteralF64, F: f}
	}

	body := clean
	base := 10
	switch {
	case isHex:
		body = strings.TrimPrefix(strings.TrimPrefix(body, "0x"), "0X")
		base = 16
	case isBinary:
		body = strings.TrimPrefix(strings.TrimPrefix(body, "0b"), "0B")
		base = 2
	}
	body = strings.TrimRight(body, "uUlL")

	v, err := strconv.ParseUint(body, base, 64)
	if err != nil {
		l.sink.Report(diagnostics.ErrIntegerOverflow, start, l.win.Position(), "")
		return token.LiteralValue{Kind: token.LiteralI32}
	}

	switch suffix {
	case suffixUL:
		return token.LiteralValue{Kind: token.LiteralU64, I: v}
	case suffixU:
		if v > 0xFFFFFFFF {
			return token.LiteralValue{Kind: token.LiteralU64, I: v}
		}
		return token.LiteralValue{Kind: token.LiteralU32, I: v}
	case suffixL:
		return token.LiteralValue{Kind: token.LiteralI64, I: v}
	}
	switch {
	case v <= 0x7FFFFFFF:
		return token.LiteralValue{Kind: token.LiteralI32, I: v}
	case v <= 0xFFFFFFFF:
		return token.LiteralValue{Kind: token.LiteralU32, I: v}
	case v <= 0x7FFFFFFFFFFFFFFF:
		return token.LiteralValue{Kind: token.LiteralI64, I: v}
	default:
		return token.LiteralValue{Kind: token.LiteralU64, I: v}
	}
}

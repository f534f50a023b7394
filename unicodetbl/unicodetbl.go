// Package unicodetbl classifies codepoints for identifier and whitespace
// recognition (spec.md §4.2). ASCII is classified through a precomputed
// lookup table for the hot path, the same technique the teacher's lexer
// uses for its single-byte dispatch tables; anything above ASCII falls back
// to the standard library's Unicode range tables, which are themselves the
// idiomatic Go equivalent of the category index tables in
// original_source/Src/Unicode/Unicode.h — reproducing those tables by hand
// would just be a slower, bug-prone copy of what `unicode.In` already is.
package unicodetbl

import "unicode"

var (
	asciiIdentStart [128]bool
	asciiIdentPart  [128]bool
	asciiWhitespace [128]bool
)

func init() {
	for c := byte(0); c < 128; c++ {
		asciiIdentStart[c] = c == '_' || ('a' <= c && c <= 'z') || ('A' <= c && c <= 'Z')
		asciiIdentPart[c] = asciiIdentStart[c] || ('0' <= c && c <= '9')
		asciiWhitespace[c] = c == ' ' || c == '\t' || c == '\v' || c == '\f'
	}
}

// identifierContinueCategories are the Unicode general categories the
// lexer accepts after the first character of an identifier, per spec.md
// §4.2: {Lu,Ll,Lt,Lm,Lo,Mn,Mc,Nd,Nl,Pc,Cf}.
var identifierContinueCategories = []*unicode.RangeTable{
	unicode.Lu, unicode.Ll, unicode.Lt, unicode.Lm, unicode.Lo,
	unicode.Mn, unicode.Mc, unicode.Nd, unicode.Nl, unicode.Pc, unicode.Cf,
}

// identifierStartCategories excludes the digit/mark/format categories that
// may only continue an identifier, never start one.
var identifierStartCategories = []*unicode.RangeTable{
	unicode.Lu, unicode.Ll, unicode.Lt, unicode.Lm, unicode.Lo,
}

// IsIdentifierStart reports whether r may begin an identifier.
func IsIdentifierStart(r rune) bool {
	if r == '_' {
		return true
	}
	if r < 128 {
		return asciiIdentStart[r]
	}
	return unicode.In(r, identifierStartCategories...)
}

// IsIdentifierPart reports whether r may continue an identifier begun
// by IsIdentifierStart.
func IsIdentifierPart(r rune) bool {
	if r == '_' {
		return true
	}
	if r < 128 {
		return asciiIdentPart[r]
	}
	return unicode.In(r, identifierContinueCategories...)
}

// IsWhitespace reports whether r is horizontal whitespace (not a newline).
func IsWhitespace(r rune) bool {
	if r < 128 {
		return asciiWhitespace[r]
	}
	return unicode.Is(unicode.Zs, r)
}

// IsNewLine reports whether r starts a line terminator sequence recognized
// by the lexer: \r, \n, U+2028 (LINE SEPARATOR), U+2029 (PARAGRAPH SEPARATOR).
func IsNewLine(r rune) bool {
	switch r {
	case '\r', '\n', '\u2028', '\u2029':
		return true
	}
	return false
}

// IsDigit reports whether r is an ASCII decimal digit.
func IsDigit(r rune) bool { return r >= '0' && r <= '9' }

// IsHexDigit reports whether r is a hex digit (any case).
func IsHexDigit(r rune) bool {
	return IsDigit(r) || (r >= 'a' && r <= 'f') || (r >= 'A' && r <= 'F')
}

// IsBinaryDigit reports whether r is '0' or '1'.
func IsBinaryDigit(r rune) bool { return r == '0' || r == '1' }

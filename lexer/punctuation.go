package lexer

import (
	"github.com/aledsdavies/alchemy/diagnostics"
	"github.com/aledsdavies/alchemy/token"
)

// lexPunctuation scans one punctuation/operator token starting at start,
// where r/width is the already-decoded lead codepoint. Longest-match first;
// grounded on original_source/Src/Parsing2/Tokenizer.cpp's ScanSyntaxToken
// switch, adapted to never fuse '>' runs (spec.md §4.2, §4.9: that's the
// parser's job).
func (l *Lexer) lexPunctuation(start int, r rune, width int) (token.Token, token.LiteralValue) {
	b := byte(r)
	if r > 0x7F {
		// No multi-byte punctuation is defined; treat as a bad token.
		l.win.Advance(width)
		l.sink.Report(diagnostics.ErrUnexpectedCharacter, start, l.win.Position(), "")
		return l.bad(start), token.LiteralValue{}
	}

	one := func(k token.Kind) (token.Token, token.LiteralValue) {
		l.win.Advance(1)
		return token.Token{Kind: k, Span: spanOf(start, l.win.Position())}, token.LiteralValue{}
	}
	two := func(k token.Kind) (token.Token, token.LiteralValue) {
		l.win.Advance(2)
		return token.Token{Kind: k, Span: spanOf(start, l.win.Position())}, token.LiteralValue{}
	}
	three := func(k token.Kind) (token.Token, token.LiteralValue) {
		l.win.Advance(3)
		return token.Token{Kind: k, Span: spanOf(start, l.win.Position())}, token.LiteralValue{}
	}

	c1 := l.win.PeekByte(1)
	c2 := l.win.PeekByte(2)

	switch b {
	case '+':
		if c1 == '+' {
			return two(token.PlusPlusToken)
		}
		if c1 == '=' {
			return two(token.PlusEqualsToken)
		}
		return one(token.PlusToken)
	case '-':
		if c1 == '-' {
			return two(token.MinusMinusToken)
		}
		if c1 == '=' {
			return two(token.MinusEqualsToken)
		}
		if c1 == '>' {
			return two(token.MinusGreaterThanToken)
		}
		return one(token.MinusToken)
	case '*':
		if c1 == '=' {
			return two(token.AsteriskEqualsToken)
		}
		return one(token.AsteriskToken)
	case '/':
		// '//' and '/*' were already consumed as trivia by scanTriviaRun; a
		// lone '/' here is always the division operator or its compound form.
		if c1 == '=' {
			return two(token.SlashEqualsToken)
		}
		return one(token.SlashToken)
	case '%':
		if c1 == '=' {
			return two(token.PercentEqualsToken)
		}
		return one(token.PercentToken)
	case '!':
		if c1 == '=' {
			return two(token.ExclamationEqualsToken)
		}
		return one(token.BangToken)
	case '~':
		return one(token.TildeToken)
	case '&':
		if c1 == '&' {
			return two(token.AmpersandAmpersandToken)
		}
		if c1 == '=' {
			return two(token.AmpersandEqualsToken)
		}
		return one(token.AmpersandToken)
	case '|':
		if c1 == '|' {
			return two(token.BarBarToken)
		}
		if c1 == '=' {
			return two(token.BarEqualsToken)
		}
		return one(token.BarToken)
	case '^':
		if c1 == '=' {
			return two(token.CaretEqualsToken)
		}
		return one(token.CaretToken)
	case '=':
		if c1 == '=' {
			return two(token.EqualsEqualsToken)
		}
		if c1 == '>' {
			return two(token.EqualsGreaterThanToken)
		}
		return one(token.EqualsToken)
	case '<':
		if c1 == '<' && c2 == '=' {
			return three(token.LessThanLessThanEqualsToken)
		}
		if c1 == '<' {
			return two(token.LessThanLessThanToken)
		}
		if c1 == '=' {
			return two(token.LessThanEqualsToken)
		}
		return one(token.LessThanToken)
	case '>':
		// Deliberately never fused here (spec.md §4.2, §4.9): the lexer
		// always emits a lone GreaterThanToken, even when immediately
		// followed by another '>' or '='. The parser's currentFused and
		// advanceFused reassemble '>=', '>>', '>>>' and their '=' forms
		// outside type-argument contexts.
		return one(token.GreaterThanToken)
	case '?':
		if c1 == '?' && c2 == '=' {
			return three(token.QuestionQuestionEqualsToken)
		}
		if c1 == '?' {
			return two(token.QuestionQuestionToken)
		}
		return one(token.QuestionToken)
	case ':':
		if c1 == ':' {
			return two(token.ColonColonToken)
		}
		return one(token.ColonToken)
	case ';':
		return one(token.SemicolonToken)
	case ',':
		return one(token.CommaToken)
	case '.':
		if c1 == '.' {
			return two(token.DotDotToken)
		}
		return one(token.DotToken)
	case '(':
		return one(token.OpenParenToken)
	case ')':
		return one(token.CloseParenToken)
	case '{':
		return one(token.OpenBraceToken)
	case '}':
		return one(token.CloseBraceToken)
	case '[':
		return one(token.OpenBracketToken)
	case ']':
		return one(token.CloseBracketToken)
	case '@':
		return one(token.AtToken)
	case '$':
		return one(token.DollarToken)
	}

	l.win.Advance(1)
	l.sink.Report(diagnostics.ErrUnexpectedCharacter, start, l.win.Position(), "")
	return l.bad(start), token.LiteralValue{}
}
